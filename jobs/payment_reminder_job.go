package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/Abdul-Mateen-1/Railway-Management-System/models"
	"github.com/Abdul-Mateen-1/Railway-Management-System/repository"
	"github.com/Abdul-Mateen-1/Railway-Management-System/services"
	"github.com/Abdul-Mateen-1/Railway-Management-System/utils"
)

// PaymentReminderJob nudges passengers who booked but never paid. Unpaid
// pending bookings whose travel date is coming up get a reminder
// notification each run.
type PaymentReminderJob struct {
	repo          repository.Repository
	notifications *services.NotificationService
}

func NewPaymentReminderJob(repo repository.Repository, notifications *services.NotificationService) *PaymentReminderJob {
	return &PaymentReminderJob{repo: repo, notifications: notifications}
}

func (j *PaymentReminderJob) Run() {
	log.Println("Running job: PaymentReminderJob...")

	bookings, err := j.repo.GetBookings()
	if err != nil {
		log.Printf("Error loading bookings for payment reminders: %v", err)
		return
	}

	now := time.Now()
	horizon := now.AddDate(0, 0, 3)
	reminded := 0

	for _, booking := range bookings {
		if booking.Status != models.BookingStatusPending || booking.PaymentStatus != models.PaymentStatusPending {
			continue
		}
		if booking.TravelDate.Before(now) || booking.TravelDate.After(horizon) {
			continue
		}

		message := fmt.Sprintf(
			"Reminder: booking %s for %s on %s is still awaiting payment of %s. Unpaid bookings are not confirmed.",
			booking.PNR, booking.TrainName,
			booking.TravelDate.Format("02 Jan 2006"),
			utils.FormatPKR(booking.TotalAmount),
		)
		if _, err := j.notifications.Create(booking.UserID, message); err != nil {
			log.Printf("Error creating payment reminder for booking %s: %v", booking.PNR, err)
			continue
		}
		reminded++
	}

	if reminded > 0 {
		log.Printf("PaymentReminderJob: sent %d reminders", reminded)
	}
}
