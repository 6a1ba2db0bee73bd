package repository

import (
	"github.com/Abdul-Mateen-1/Railway-Management-System/models"
)

func (r *gormRepository) GetBookings() ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.db.Order("id").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *gormRepository) FindBookingByPNR(pnr string) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.Where("LOWER(pnr) = LOWER(?)", pnr).First(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *gormRepository) AddBooking(booking *models.Booking) error {
	return r.db.Create(booking).Error
}

func (r *gormRepository) UpdateBooking(booking *models.Booking) error {
	return r.db.Save(booking).Error
}
