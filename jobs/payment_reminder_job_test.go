package jobs_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/Abdul-Mateen-1/Railway-Management-System/database"
	"github.com/Abdul-Mateen-1/Railway-Management-System/jobs"
	"github.com/Abdul-Mateen-1/Railway-Management-System/models"
	"github.com/Abdul-Mateen-1/Railway-Management-System/repository"
	"github.com/Abdul-Mateen-1/Railway-Management-System/services"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func addBooking(t *testing.T, repo repository.Repository, pnr string, userID uint, travelDate time.Time, status, paymentStatus string) {
	t.Helper()
	require.NoError(t, repo.AddBooking(&models.Booking{
		PNR:             pnr,
		UserID:          userID,
		TrainID:         1,
		TrainNumber:     "1UP",
		TrainName:       "Karachi Express",
		FromStation:     "Karachi",
		ToStation:       "Lahore",
		TravelDate:      travelDate,
		NumberOfSeats:   1,
		SeatClass:       "Economy",
		TotalAmount:     3500,
		Status:          status,
		BookingDateTime: time.Now(),
		PaymentStatus:   paymentStatus,
	}))
}

func TestPaymentReminderJob(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "jobs_test.db")), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	repo := repository.New(db)
	user := &models.User{Name: "Sarah Khan", Email: "sarah.khan@example.com", Password: "password1", Role: "passenger"}
	require.NoError(t, repo.AddUser(user))

	// Only the unpaid booking inside the reminder window should trigger.
	addBooking(t, repo, "PNR-AAAAAA", user.ID, time.Now().AddDate(0, 0, 2),
		models.BookingStatusPending, models.PaymentStatusPending)
	addBooking(t, repo, "PNR-BBBBBB", user.ID, time.Now().AddDate(0, 0, 10),
		models.BookingStatusPending, models.PaymentStatusPending)
	addBooking(t, repo, "PNR-CCCCCC", user.ID, time.Now().AddDate(0, 0, 2),
		models.BookingStatusConfirmed, models.PaymentStatusPaid)
	addBooking(t, repo, "PNR-DDDDDD", user.ID, time.Now().AddDate(0, 0, -2),
		models.BookingStatusPending, models.PaymentStatusPending)

	notifications := services.NewNotificationService(repo, nil)
	jobs.NewPaymentReminderJob(repo, notifications).Run()

	stored, err := notifications.ForUser(user.ID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Contains(t, stored[0].Message, "PNR-AAAAAA")
	assert.Contains(t, stored[0].Message, "PKR 3,500")
}
