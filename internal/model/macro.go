package model

import "time"

// MacroEntry records macronutrient intake in grams.
type MacroEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Date      time.Time `gorm:"not null;index" json:"date"`
	Protein   float64   `gorm:"not null" json:"protein"`
	Carbs     float64   `gorm:"not null" json:"carbs"`
	Fats      float64   `gorm:"not null" json:"fats"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
