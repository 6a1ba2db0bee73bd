package models

import (
	"time"
)

type User struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"size:255;not null" json:"name"`
	Email string `gorm:"size:255;not null;unique" json:"email"`
	Phone string `gorm:"size:20" json:"phone"`
	Role  string `gorm:"size:20;not null;default:'passenger'" json:"role"`

	// Stored in plain text to keep parity with the existing desktop client.
	Password string `gorm:"not null" json:"-"`

	CNIC        string `gorm:"column:cnic;size:20" json:"cnic"`
	DateOfBirth string `gorm:"column:date_of_birth;size:10" json:"date_of_birth"`
	Gender      string `gorm:"size:10" json:"gender"`
	Address     string `gorm:"size:255" json:"address"`
	City        string `gorm:"size:100" json:"city"`
	PostalCode  string `gorm:"size:10" json:"postal_code"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
