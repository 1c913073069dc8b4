package repository

import (
	"fmt"

	"gorm.io/gorm"

	"fitmanager/internal/model"
)

type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Create(event *model.ActivityEvent) error {
	if err := r.db.Create(event).Error; err != nil {
		return fmt.Errorf("create activity event failed: %w", err)
	}
	return nil
}
