package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"fitmanager/internal/model"
)

type HydrationRepository struct {
	db *gorm.DB
}

func NewHydrationRepository(db *gorm.DB) *HydrationRepository {
	return &HydrationRepository{db: db}
}

func (r *HydrationRepository) Create(entry *model.HydrationEntry) error {
	if err := r.db.Create(entry).Error; err != nil {
		return fmt.Errorf("create hydration entry failed: %w", err)
	}
	return nil
}

func (r *HydrationRepository) ListByUserID(userID uint) ([]model.HydrationEntry, error) {
	var entries []model.HydrationEntry
	if err := r.db.Where("user_id = ?", userID).Order("date DESC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list hydration entries failed: %w", err)
	}
	return entries, nil
}

func (r *HydrationRepository) ListByUserIDAndRange(userID uint, start, end time.Time) ([]model.HydrationEntry, error) {
	var entries []model.HydrationEntry
	err := r.db.
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, start, end).
		Order("date DESC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("list hydration entries by range failed: %w", err)
	}
	return entries, nil
}

func (r *HydrationRepository) GetByID(id uint) (*model.HydrationEntry, error) {
	var entry model.HydrationEntry
	if err := r.db.First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query hydration entry failed: %w", err)
	}
	return &entry, nil
}

func (r *HydrationRepository) GetLastByUserID(userID uint) (*model.HydrationEntry, error) {
	var entry model.HydrationEntry
	if err := r.db.Where("user_id = ?", userID).Order("date DESC").First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query last hydration entry failed: %w", err)
	}
	return &entry, nil
}

func (r *HydrationRepository) Update(entry *model.HydrationEntry) error {
	if err := r.db.Save(entry).Error; err != nil {
		return fmt.Errorf("update hydration entry failed: %w", err)
	}
	return nil
}

func (r *HydrationRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.HydrationEntry{}, id).Error; err != nil {
		return fmt.Errorf("delete hydration entry failed: %w", err)
	}
	return nil
}

func (r *HydrationRepository) DeleteByUserID(userID uint) error {
	if err := r.db.Where("user_id = ?", userID).Delete(&model.HydrationEntry{}).Error; err != nil {
		return fmt.Errorf("delete hydration entries by user failed: %w", err)
	}
	return nil
}
