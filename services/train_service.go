package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Abdul-Mateen-1/Railway-Management-System/models"
	"github.com/Abdul-Mateen-1/Railway-Management-System/repository"
	"gorm.io/gorm"
)

type TrainService struct {
	repo repository.Repository
}

func NewTrainService(repo repository.Repository) *TrainService {
	return &TrainService{repo: repo}
}

func (s *TrainService) GetTrains() ([]models.Train, error) {
	return s.repo.GetTrains()
}

// SearchTrains matches both station names as case-insensitive substrings of
// the freeform route string. The test is unordered: searching
// "Karachi"/"Lahore" matches "Lahore - Karachi" too. Results keep insertion
// order; there is no ranking.
func (s *TrainService) SearchTrains(from, to string) ([]models.Train, error) {
	trains, err := s.repo.GetTrains()
	if err != nil {
		return nil, err
	}

	normalizedFrom := strings.ToLower(strings.TrimSpace(from))
	normalizedTo := strings.ToLower(strings.TrimSpace(to))

	var matches []models.Train
	for _, train := range trains {
		route := strings.ToLower(train.Route)
		if strings.Contains(route, normalizedFrom) && strings.Contains(route, normalizedTo) {
			matches = append(matches, train)
		}
	}
	return matches, nil
}

func (s *TrainService) GetTrainByNumber(trainNumber string) (*models.Train, error) {
	train, err := s.repo.FindTrainByNumber(trainNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return train, nil
}

func (s *TrainService) CreateTrain(train *models.Train) (*models.Train, error) {
	if strings.TrimSpace(train.TrainNumber) == "" || strings.TrimSpace(train.TrainName) == "" {
		return nil, fmt.Errorf("%w: train number and name are required", ErrValidation)
	}

	if _, err := s.repo.FindTrainByNumber(train.TrainNumber); err == nil {
		return nil, fmt.Errorf("%w: train number already exists", ErrValidation)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := s.repo.AddTrain(train); err != nil {
		return nil, err
	}
	return train, nil
}

func (s *TrainService) UpdateTrain(train *models.Train) (*models.Train, error) {
	existing, err := s.repo.FindTrainByID(train.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	existing.TrainNumber = train.TrainNumber
	existing.TrainName = train.TrainName
	existing.Type = train.Type
	existing.Route = train.Route
	existing.Status = train.Status

	if err := s.repo.UpdateTrain(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteTrain removes the train together with its schedule rows. The store
// carries no cascading foreign key, so the cleanup lives here.
func (s *TrainService) DeleteTrain(id uint) error {
	train, err := s.repo.FindTrainByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.repo.RemoveSchedulesForTrain(train.TrainNumber); err != nil {
		return err
	}
	return s.repo.RemoveTrain(id)
}
