package model

import "time"

// WeightEntry is a single body-weight measurement in kg.
type WeightEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Date      time.Time `gorm:"not null;index" json:"date"`
	Weight    float64   `gorm:"not null" json:"weight"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
