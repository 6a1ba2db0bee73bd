package repository

import (
	"github.com/Abdul-Mateen-1/Railway-Management-System/models"
	"gorm.io/gorm"
)

// Repository is the single source of truth for persisted state. There is no
// in-memory cache layered on top: every accessor goes straight to the store.
type Repository interface {
	// Users
	FindUserByEmail(email string) (*models.User, error)
	FindUserByID(id uint) (*models.User, error)
	GetUsers() ([]models.User, error)
	AddUser(user *models.User) error
	UpdateUser(user *models.User) error
	EmailExists(email string, excludeUserID uint) (bool, error)

	// Trains
	GetTrains() ([]models.Train, error)
	FindTrainByID(id uint) (*models.Train, error)
	FindTrainByNumber(trainNumber string) (*models.Train, error)
	AddTrain(train *models.Train) error
	UpdateTrain(train *models.Train) error
	RemoveTrain(id uint) error

	// Schedules
	GetSchedules() ([]models.Schedule, error)
	FindScheduleByID(id uint) (*models.Schedule, error)
	FindScheduleByTrainNumber(trainNumber string) (*models.Schedule, error)
	AddSchedule(schedule *models.Schedule) error
	UpdateSchedule(schedule *models.Schedule) error
	RemoveSchedule(id uint) error
	RemoveSchedulesForTrain(trainNumber string) error

	// Bookings. Bookings are never deleted; cancellation is a status change.
	GetBookings() ([]models.Booking, error)
	FindBookingByPNR(pnr string) (*models.Booking, error)
	AddBooking(booking *models.Booking) error
	UpdateBooking(booking *models.Booking) error

	// Notifications
	AddNotification(notification *models.Notification) error
	GetNotificationsForUser(userID uint) ([]models.Notification, error)
	FindNotificationByID(id uint) (*models.Notification, error)
	UpdateNotification(notification *models.Notification) error
	CountUnreadNotifications(userID uint) (int64, error)
}

type gormRepository struct {
	db *gorm.DB
}

func New(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}
