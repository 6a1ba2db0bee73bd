package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Abdul-Mateen-1/Railway-Management-System/mailer"
	"github.com/Abdul-Mateen-1/Railway-Management-System/models"
	"github.com/Abdul-Mateen-1/Railway-Management-System/repository"
	"github.com/Abdul-Mateen-1/Railway-Management-System/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cancellations refund a fixed share of the booking total. The refund is
// computed for display only and is never persisted as a ledger entry.
const refundRate = 0.8

// CancellationPolicy controls which booking states may be cancelled.
// Confirmed bookings are always cancellable; AllowPending extends that to
// bookings still awaiting payment.
type CancellationPolicy struct {
	AllowPending bool
}

type BookingService struct {
	repo          repository.Repository
	db            *gorm.DB
	notifications *NotificationService
	mail          *mailer.Brevo
	policy        CancellationPolicy
}

func NewBookingService(repo repository.Repository, db *gorm.DB, notifications *NotificationService, mail *mailer.Brevo, policy CancellationPolicy) *BookingService {
	return &BookingService{
		repo:          repo,
		db:            db,
		notifications: notifications,
		mail:          mail,
		policy:        policy,
	}
}

// BookTicket creates a booking in Pending/Pending state. The total is
// computed once here, fare x seats, and never recomputed. Train name and
// route are snapshotted onto the booking row.
func (s *BookingService) BookTicket(user *models.User, trainNumber, from, to string, travelDate time.Time, seats int, seatClass string) (*models.Booking, error) {
	from = strings.TrimSpace(from)
	to = strings.TrimSpace(to)

	if from == "" || to == "" {
		return nil, fmt.Errorf("%w: origin and destination stations are required", ErrValidation)
	}
	if strings.EqualFold(from, to) {
		return nil, fmt.Errorf("%w: origin and destination must differ", ErrValidation)
	}
	if seats < 1 {
		return nil, fmt.Errorf("%w: at least one seat is required", ErrValidation)
	}
	if strings.TrimSpace(seatClass) == "" {
		return nil, fmt.Errorf("%w: seat class is required", ErrValidation)
	}
	if travelDate.Before(startOfToday()) {
		return nil, fmt.Errorf("%w: travel date must not be in the past", ErrValidation)
	}

	train, err := s.repo.FindTrainByNumber(trainNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	pnr, err := utils.GeneratePNR(s.db)
	if err != nil {
		return nil, err
	}

	totalAmount := float64(BaseFare(train.Type) * seats)
	booking := &models.Booking{
		PNR:             pnr,
		UserID:          user.ID,
		TrainID:         train.ID,
		TrainNumber:     train.TrainNumber,
		TrainName:       train.TrainName,
		FromStation:     from,
		ToStation:       to,
		TravelDate:      travelDate,
		NumberOfSeats:   seats,
		SeatClass:       seatClass,
		TotalAmount:     totalAmount,
		Status:          models.BookingStatusPending,
		BookingDateTime: time.Now(),
		PaymentStatus:   models.PaymentStatusPending,
	}
	if err := s.repo.AddBooking(booking); err != nil {
		return nil, err
	}

	s.notify(user.ID, fmt.Sprintf(
		"Booking %s created for %s (%s) on %s. Total %s. Please complete payment to confirm your seat.",
		booking.PNR, train.TrainName, train.TrainNumber,
		travelDate.Format("02 Jan 2006"), utils.FormatPKR(totalAmount),
	))
	go s.mail.Send(user.Name, user.Email,
		"Your RailSafar booking "+booking.PNR,
		fmt.Sprintf("<h1>Booking Received</h1><p>Your booking <b>%s</b> for %s (%s &rarr; %s) has been created. Total: %s.</p><p>Please complete payment to confirm your seat.</p>",
			booking.PNR, train.TrainName, from, to, utils.FormatPKR(totalAmount)),
	)

	return booking, nil
}

// ProcessPayment records payment for a booking: the payment method and a
// transaction reference are stored, payment status moves to Paid and the
// booking to Confirmed. Cancelled is terminal and paid bookings stay paid.
func (s *BookingService) ProcessPayment(pnr, paymentMethod string) (*models.Booking, error) {
	booking, err := s.repo.FindBookingByPNR(pnr)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if booking.Status == models.BookingStatusCancelled {
		return nil, fmt.Errorf("%w: cancelled bookings cannot be paid", ErrValidation)
	}
	if booking.PaymentStatus == models.PaymentStatusPaid {
		return nil, fmt.Errorf("%w: booking is already paid", ErrValidation)
	}

	reference := uuid.NewString()
	booking.PaymentMethod = paymentMethod
	booking.PaymentStatus = models.PaymentStatusPaid
	booking.Status = models.BookingStatusConfirmed
	booking.PaymentReference = &reference
	if err := s.repo.UpdateBooking(booking); err != nil {
		return nil, err
	}

	s.notify(booking.UserID, fmt.Sprintf(
		"Payment successful for booking %s. Your ticket on %s is now confirmed.",
		booking.PNR, booking.TrainName,
	))
	s.emailOwner(booking,
		"Payment received for "+booking.PNR,
		fmt.Sprintf("<h1>Payment Successful</h1><p>We received %s via %s for booking <b>%s</b>. Your ticket is now confirmed.</p>",
			utils.FormatPKR(booking.TotalAmount), paymentMethod, booking.PNR),
	)

	return booking, nil
}

// CancelBooking moves an eligible booking to Cancelled and returns the
// refund amount shown to the user (80% of the total). The booking row is
// retained; nothing is ever deleted.
func (s *BookingService) CancelBooking(pnr string) (*models.Booking, float64, error) {
	booking, err := s.repo.FindBookingByPNR(pnr)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrNotFound
		}
		return nil, 0, err
	}

	switch booking.Status {
	case models.BookingStatusCancelled:
		return nil, 0, fmt.Errorf("%w: booking is already cancelled", ErrValidation)
	case models.BookingStatusPending:
		if !s.policy.AllowPending {
			return nil, 0, fmt.Errorf("%w: only confirmed bookings can be cancelled", ErrValidation)
		}
	}

	booking.Status = models.BookingStatusCancelled
	if err := s.repo.UpdateBooking(booking); err != nil {
		return nil, 0, err
	}

	refund := booking.TotalAmount * refundRate
	s.notify(booking.UserID, fmt.Sprintf(
		"Booking %s has been cancelled. Refund of %s (80%%) will be processed to your original payment method.",
		booking.PNR, utils.FormatPKR(refund),
	))
	s.emailOwner(booking,
		"Booking "+booking.PNR+" cancelled",
		fmt.Sprintf("<h1>Booking Cancelled</h1><p>Booking <b>%s</b> has been cancelled. Refund: %s (80%% of %s).</p>",
			booking.PNR, utils.FormatPKR(refund), utils.FormatPKR(booking.TotalAmount)),
	)

	return booking, refund, nil
}

func (s *BookingService) GetBookingsForUser(userID uint) ([]models.Booking, error) {
	bookings, err := s.repo.GetBookings()
	if err != nil {
		return nil, err
	}

	var owned []models.Booking
	for _, booking := range bookings {
		if booking.UserID == userID {
			owned = append(owned, booking)
		}
	}
	return owned, nil
}

func (s *BookingService) GetPendingPaymentsForUser(userID uint) ([]models.Booking, error) {
	bookings, err := s.GetBookingsForUser(userID)
	if err != nil {
		return nil, err
	}

	var pending []models.Booking
	for _, booking := range bookings {
		if booking.PaymentStatus == models.PaymentStatusPending {
			pending = append(pending, booking)
		}
	}
	return pending, nil
}

func (s *BookingService) GetAllBookings() ([]models.Booking, error) {
	return s.repo.GetBookings()
}

func (s *BookingService) GetBookingByPNR(pnr string) (*models.Booking, error) {
	booking, err := s.repo.FindBookingByPNR(pnr)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return booking, nil
}

// notify records an in-app notification. The booking mutation has already
// committed at this point, so a notification failure is logged, not
// surfaced.
func (s *BookingService) notify(userID uint, message string) {
	if s.notifications == nil {
		return
	}
	if _, err := s.notifications.Create(userID, message); err != nil {
		log.Printf("🔥 Failed to create notification for user %d: %v", userID, err)
	}
}

func (s *BookingService) emailOwner(booking *models.Booking, subject, body string) {
	user, err := s.repo.FindUserByID(booking.UserID)
	if err != nil {
		log.Printf("Failed to load booking owner %d for email: %v", booking.UserID, err)
		return
	}
	go s.mail.Send(user.Name, user.Email, subject, body)
}

func startOfToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
