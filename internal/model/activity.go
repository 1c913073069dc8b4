package model

import "time"

// ActivityEvent is an audit row describing a write performed by a user.
// Events travel through the broker and are persisted by the activity worker.
type ActivityEvent struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	Action     string    `gorm:"size:32;not null" json:"action"`
	Entity     string    `gorm:"size:32;not null" json:"entity"`
	EntityID   uint      `json:"entity_id"`
	OccurredAt time.Time `gorm:"not null" json:"occurred_at"`
	CreatedAt  time.Time `json:"created_at"`
}
