package models

import "time"

type Schedule struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	TrainNumber   string `gorm:"size:20;not null" json:"train_number"`
	TrainName     string `gorm:"size:255;not null" json:"train_name"`
	DepartureTime string `gorm:"size:20" json:"departure_time"`
	ArrivalTime   string `gorm:"size:20" json:"arrival_time"`
	Route         string `gorm:"size:255" json:"route"`
	Days          string `gorm:"size:50" json:"days"`
	Status        string `gorm:"size:20" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
