package services

import (
	"errors"
	"time"

	"github.com/Abdul-Mateen-1/Railway-Management-System/models"
	"github.com/Abdul-Mateen-1/Railway-Management-System/repository"
	"gorm.io/gorm"
)

// NotificationPusher delivers a freshly stored notification to a live
// client, if one is connected. The websocket hub implements it.
type NotificationPusher interface {
	Push(notification *models.Notification)
}

type NotificationService struct {
	repo   repository.Repository
	pusher NotificationPusher
}

func NewNotificationService(repo repository.Repository, pusher NotificationPusher) *NotificationService {
	return &NotificationService{repo: repo, pusher: pusher}
}

// Create stores a notification for the user and pushes it to their live
// stream when one is open.
func (s *NotificationService) Create(userID uint, message string) (*models.Notification, error) {
	notification := &models.Notification{
		UserID:    userID,
		Message:   message,
		Timestamp: time.Now(),
	}
	if err := s.repo.AddNotification(notification); err != nil {
		return nil, err
	}
	if s.pusher != nil {
		s.pusher.Push(notification)
	}
	return notification, nil
}

func (s *NotificationService) ForUser(userID uint) ([]models.Notification, error) {
	return s.repo.GetNotificationsForUser(userID)
}

func (s *NotificationService) UnreadCount(userID uint) (int64, error) {
	return s.repo.CountUnreadNotifications(userID)
}

// MarkRead flips the read flag. Notifications belong to their user; marking
// someone else's notification reports not found.
func (s *NotificationService) MarkRead(id, userID uint) error {
	notification, err := s.repo.FindNotificationByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if notification.UserID != userID {
		return ErrNotFound
	}
	if notification.IsRead {
		return nil
	}
	notification.IsRead = true
	return s.repo.UpdateNotification(notification)
}
