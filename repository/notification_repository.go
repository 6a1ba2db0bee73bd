package repository

import (
	"github.com/Abdul-Mateen-1/Railway-Management-System/models"
)

func (r *gormRepository) AddNotification(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

func (r *gormRepository) GetNotificationsForUser(userID uint) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.Where("user_id = ?", userID).Order("timestamp desc").Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *gormRepository) FindNotificationByID(id uint) (*models.Notification, error) {
	var notification models.Notification
	if err := r.db.First(&notification, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &notification, nil
}

func (r *gormRepository) UpdateNotification(notification *models.Notification) error {
	return r.db.Save(notification).Error
}

func (r *gormRepository) CountUnreadNotifications(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}
