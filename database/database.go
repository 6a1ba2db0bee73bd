package database

import (
	"fmt"
	"log"
	"time"

	"github.com/Abdul-Mateen-1/Railway-Management-System/models"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// Connect opens the local SQLite database file, creating it on first run.
func Connect(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	fmt.Println("✅ Database connected successfully")
	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Train{},
		&models.Schedule{},
		&models.Booking{},
		&models.Notification{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	fmt.Println("✅ Database migration successful")
	return nil
}

// Seed loads the demo data set on first run. It is a no-op once any user row
// exists, so repeated startups leave the database untouched.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Seed data already present, skipping.")
		return nil
	}

	users := []models.User{
		{
			Name:        "System Admin",
			Email:       "admin@railsafar.com",
			Phone:       "0300-0000000",
			Role:        "admin",
			Password:    "admin123",
			CNIC:        "35202-1234567-1",
			DateOfBirth: "1985-05-12",
			Gender:      "Male",
			Address:     "HQ, Rail Safar Building",
			City:        "Karachi",
			PostalCode:  "75500",
		},
		{
			Name:        "Sarah Khan",
			Email:       "sarah.khan@example.com",
			Phone:       "0300-1111111",
			Role:        "passenger",
			Password:    "password1",
			CNIC:        "35201-9876543-2",
			DateOfBirth: "1995-08-20",
			Gender:      "Female",
			Address:     "123 Main Street",
			City:        "Lahore",
			PostalCode:  "54000",
		},
		{
			Name:        "Ali Raza",
			Email:       "ali.raza@example.com",
			Phone:       "0300-2222222",
			Role:        "passenger",
			Password:    "password2",
			CNIC:        "42101-5554443-3",
			DateOfBirth: "1990-03-15",
			Gender:      "Male",
			Address:     "45 Canal Road",
			City:        "Faisalabad",
			PostalCode:  "38000",
		},
	}
	if err := db.Create(&users).Error; err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	trains := []models.Train{
		{TrainNumber: "1UP", TrainName: "Karachi Express", Type: "Express", Route: "Karachi - Lahore", Status: "On-time"},
		{TrainNumber: "2DN", TrainName: "Lahore Express", Type: "Express", Route: "Lahore - Karachi", Status: "Delayed"},
		{TrainNumber: "3UP", TrainName: "Green Line", Type: "Passenger", Route: "Islamabad - Multan", Status: "On-time"},
		{TrainNumber: "4DN", TrainName: "Freight Express", Type: "Freight", Route: "Port Qasim - Faisalabad", Status: "Cancelled"},
		{TrainNumber: "5UP", TrainName: "Business Express", Type: "Express", Route: "Rawalpindi - Quetta", Status: "On-time"},
		{TrainNumber: "6DN", TrainName: "Peshawar Mail", Type: "Passenger", Route: "Peshawar - Karachi", Status: "Delayed"},
	}
	if err := db.Create(&trains).Error; err != nil {
		return fmt.Errorf("failed to seed trains: %w", err)
	}

	schedules := []models.Schedule{
		{TrainNumber: "1UP", TrainName: "Karachi Express", DepartureTime: "08:00 AM", ArrivalTime: "08:00 PM", Route: "Karachi - Lahore", Days: "Daily", Status: "Active"},
		{TrainNumber: "2DN", TrainName: "Lahore Express", DepartureTime: "09:00 AM", ArrivalTime: "09:00 PM", Route: "Lahore - Karachi", Days: "Daily", Status: "Active"},
		{TrainNumber: "3UP", TrainName: "Green Line", DepartureTime: "10:30 AM", ArrivalTime: "06:30 PM", Route: "Islamabad - Multan", Days: "Mon-Fri", Status: "Active"},
		{TrainNumber: "5UP", TrainName: "Business Express", DepartureTime: "07:00 AM", ArrivalTime: "05:00 PM", Route: "Rawalpindi - Quetta", Days: "Daily", Status: "Active"},
		{TrainNumber: "6DN", TrainName: "Peshawar Mail", DepartureTime: "11:00 AM", ArrivalTime: "11:00 PM", Route: "Peshawar - Karachi", Days: "Daily", Status: "Active"},
	}
	if err := db.Create(&schedules).Error; err != nil {
		return fmt.Errorf("failed to seed schedules: %w", err)
	}

	sampleBooking := models.Booking{
		PNR:             "PNR-5K8W2T",
		UserID:          users[1].ID,
		TrainID:         trains[0].ID,
		TrainNumber:     "1UP",
		TrainName:       "Karachi Express",
		FromStation:     "Karachi",
		ToStation:       "Lahore",
		TravelDate:      time.Now().AddDate(0, 0, 2),
		NumberOfSeats:   2,
		SeatClass:       "Economy",
		TotalAmount:     5000,
		Status:          models.BookingStatusConfirmed,
		BookingDateTime: time.Now().AddDate(0, 0, -1),
		PaymentMethod:   "Card",
		PaymentStatus:   models.PaymentStatusPaid,
	}
	if err := db.Create(&sampleBooking).Error; err != nil {
		return fmt.Errorf("failed to seed bookings: %w", err)
	}

	log.Println("✅ Seed data loaded successfully")
	return nil
}
