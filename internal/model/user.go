package model

import "time"

type User struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	Username        string     `gorm:"size:64;not null;uniqueIndex" json:"username"`
	Email           string     `gorm:"size:128;not null;uniqueIndex" json:"email"`
	PasswordHash    string     `gorm:"size:255;not null" json:"-"`
	DateOfBirth     *time.Time `json:"dateOfBirth,omitempty"`
	Sex             string     `gorm:"size:1" json:"sex,omitempty"`
	Height          *float64   `json:"height,omitempty"`
	InitialWeight   *float64   `json:"initialWeight,omitempty"`
	TargetWeight    *float64   `json:"targetWeight,omitempty"`
	WorkoutsPerWeek *int       `json:"workoutsPerWeek,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
