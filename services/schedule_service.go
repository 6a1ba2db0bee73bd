package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Abdul-Mateen-1/Railway-Management-System/models"
	"github.com/Abdul-Mateen-1/Railway-Management-System/repository"
	"gorm.io/gorm"
)

type ScheduleService struct {
	repo repository.Repository
}

func NewScheduleService(repo repository.Repository) *ScheduleService {
	return &ScheduleService{repo: repo}
}

func (s *ScheduleService) GetSchedules() ([]models.Schedule, error) {
	return s.repo.GetSchedules()
}

// GetScheduleForTrain returns the first (and assumed only) schedule row for
// the train number, matched case-insensitively.
func (s *ScheduleService) GetScheduleForTrain(trainNumber string) (*models.Schedule, error) {
	schedule, err := s.repo.FindScheduleByTrainNumber(trainNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return schedule, nil
}

func (s *ScheduleService) CreateSchedule(schedule *models.Schedule) (*models.Schedule, error) {
	if strings.TrimSpace(schedule.TrainNumber) == "" {
		return nil, fmt.Errorf("%w: train number is required", ErrValidation)
	}

	train, err := s.repo.FindTrainByNumber(schedule.TrainNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if schedule.TrainName == "" {
		schedule.TrainName = train.TrainName
	}
	if schedule.Route == "" {
		schedule.Route = train.Route
	}

	if err := s.repo.AddSchedule(schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

func (s *ScheduleService) UpdateSchedule(schedule *models.Schedule) (*models.Schedule, error) {
	existing, err := s.repo.FindScheduleByID(schedule.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	existing.TrainNumber = schedule.TrainNumber
	existing.DepartureTime = schedule.DepartureTime
	existing.ArrivalTime = schedule.ArrivalTime
	existing.Days = schedule.Days
	existing.Status = schedule.Status
	if schedule.TrainName != "" {
		existing.TrainName = schedule.TrainName
	}
	if schedule.Route != "" {
		existing.Route = schedule.Route
	}

	if err := s.repo.UpdateSchedule(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *ScheduleService) RemoveSchedule(id uint) error {
	if _, err := s.repo.FindScheduleByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.repo.RemoveSchedule(id)
}
