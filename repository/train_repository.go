package repository

import (
	"github.com/Abdul-Mateen-1/Railway-Management-System/models"
)

func (r *gormRepository) GetTrains() ([]models.Train, error) {
	var trains []models.Train
	if err := r.db.Order("id").Find(&trains).Error; err != nil {
		return nil, err
	}
	return trains, nil
}

func (r *gormRepository) FindTrainByID(id uint) (*models.Train, error) {
	var train models.Train
	if err := r.db.First(&train, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &train, nil
}

func (r *gormRepository) FindTrainByNumber(trainNumber string) (*models.Train, error) {
	var train models.Train
	if err := r.db.Where("LOWER(train_number) = LOWER(?)", trainNumber).First(&train).Error; err != nil {
		return nil, err
	}
	return &train, nil
}

func (r *gormRepository) AddTrain(train *models.Train) error {
	return r.db.Create(train).Error
}

func (r *gormRepository) UpdateTrain(train *models.Train) error {
	return r.db.Save(train).Error
}

func (r *gormRepository) RemoveTrain(id uint) error {
	return r.db.Delete(&models.Train{}, "id = ?", id).Error
}
