package models

import "time"

type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Timestamp time.Time `gorm:"not null" json:"timestamp"`
	IsRead    bool      `gorm:"column:is_read;not null;default:false" json:"is_read"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
