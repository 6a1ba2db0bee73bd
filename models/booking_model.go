package models

import "time"

// Booking lifecycle statuses.
const (
	BookingStatusPending   = "Pending"
	BookingStatusConfirmed = "Confirmed"
	BookingStatusCancelled = "Cancelled"

	PaymentStatusPending = "Pending"
	PaymentStatusPaid    = "Paid"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// PNR is the user-facing reference code for the booking.
	PNR string `gorm:"column:pnr;size:12;not null;unique" json:"pnr"`

	UserID  uint `gorm:"not null" json:"user_id"`
	TrainID uint `gorm:"not null" json:"train_id"`

	// Train and route details are snapshotted at booking time and are not
	// re-derived if the train is later edited.
	TrainNumber string `gorm:"size:20;not null" json:"train_number"`
	TrainName   string `gorm:"size:255;not null" json:"train_name"`
	FromStation string `gorm:"size:100;not null" json:"from_station"`
	ToStation   string `gorm:"size:100;not null" json:"to_station"`

	TravelDate    time.Time `gorm:"not null" json:"travel_date"`
	NumberOfSeats int       `gorm:"not null" json:"number_of_seats"`
	SeatClass     string    `gorm:"size:50" json:"seat_class"`

	// Computed once at booking time as fare x seats, immutable thereafter.
	TotalAmount float64 `gorm:"type:numeric(10,2);not null" json:"total_amount"`

	Status          string    `gorm:"size:20;not null;default:'Pending'" json:"status"`
	BookingDateTime time.Time `gorm:"column:booking_date_time;not null" json:"booking_date_time"`
	PaymentMethod   string    `gorm:"size:50" json:"payment_method"`
	PaymentStatus   string    `gorm:"size:20;not null;default:'Pending'" json:"payment_status"`

	// Transaction reference assigned when the payment is recorded.
	PaymentReference *string `gorm:"size:36" json:"payment_reference,omitempty"`

	User  User  `gorm:"foreignKey:UserID" json:"-"`
	Train Train `gorm:"foreignKey:TrainID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
