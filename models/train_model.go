package models

import "time"

// Train types recognised by the fare table.
const (
	TrainTypeExpress   = "Express"
	TrainTypePassenger = "Passenger"
	TrainTypeFreight   = "Freight"
)

type Train struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	TrainNumber string `gorm:"size:20;not null;unique" json:"train_number"`
	TrainName   string `gorm:"size:255;not null" json:"train_name"`
	Type        string `gorm:"size:20" json:"type"`

	// Freeform "A - B" string, matched by substring in search.
	Route  string `gorm:"size:255" json:"route"`
	Status string `gorm:"size:20" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
