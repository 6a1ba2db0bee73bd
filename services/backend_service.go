package services

import (
	"github.com/Abdul-Mateen-1/Railway-Management-System/mailer"
	"github.com/Abdul-Mateen-1/Railway-Management-System/repository"
	"gorm.io/gorm"
)

// Backend aggregates the domain services behind a single access point for
// the HTTP layer. It is built once at startup by the composition root.
type Backend struct {
	Users         *UserService
	Trains        *TrainService
	Schedules     *ScheduleService
	Bookings      *BookingService
	Notifications *NotificationService
	Reports       *ReportService
}

func NewBackend(db *gorm.DB, repo repository.Repository, pusher NotificationPusher, mail *mailer.Brevo, policy CancellationPolicy) *Backend {
	notifications := NewNotificationService(repo, pusher)
	return &Backend{
		Users:         NewUserService(repo),
		Trains:        NewTrainService(repo),
		Schedules:     NewScheduleService(repo),
		Bookings:      NewBookingService(repo, db, notifications, mail, policy),
		Notifications: notifications,
		Reports:       NewReportService(repo),
	}
}
