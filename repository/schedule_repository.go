package repository

import (
	"github.com/Abdul-Mateen-1/Railway-Management-System/models"
)

func (r *gormRepository) GetSchedules() ([]models.Schedule, error) {
	var schedules []models.Schedule
	if err := r.db.Order("id").Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *gormRepository) FindScheduleByID(id uint) (*models.Schedule, error) {
	var schedule models.Schedule
	if err := r.db.First(&schedule, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &schedule, nil
}

// FindScheduleByTrainNumber returns the first schedule row for the train.
// The pairing is assumed unique but not enforced by the store.
func (r *gormRepository) FindScheduleByTrainNumber(trainNumber string) (*models.Schedule, error) {
	var schedule models.Schedule
	if err := r.db.Where("LOWER(train_number) = LOWER(?)", trainNumber).Order("id").First(&schedule).Error; err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *gormRepository) AddSchedule(schedule *models.Schedule) error {
	return r.db.Create(schedule).Error
}

func (r *gormRepository) UpdateSchedule(schedule *models.Schedule) error {
	return r.db.Save(schedule).Error
}

func (r *gormRepository) RemoveSchedule(id uint) error {
	return r.db.Delete(&models.Schedule{}, "id = ?", id).Error
}

func (r *gormRepository) RemoveSchedulesForTrain(trainNumber string) error {
	return r.db.Where("LOWER(train_number) = LOWER(?)", trainNumber).Delete(&models.Schedule{}).Error
}
