package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"fitmanager/internal/model"
)

type MacroRepository struct {
	db *gorm.DB
}

func NewMacroRepository(db *gorm.DB) *MacroRepository {
	return &MacroRepository{db: db}
}

func (r *MacroRepository) Create(entry *model.MacroEntry) error {
	if err := r.db.Create(entry).Error; err != nil {
		return fmt.Errorf("create macro entry failed: %w", err)
	}
	return nil
}

func (r *MacroRepository) ListByUserID(userID uint) ([]model.MacroEntry, error) {
	var entries []model.MacroEntry
	if err := r.db.Where("user_id = ?", userID).Order("date DESC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list macro entries failed: %w", err)
	}
	return entries, nil
}

func (r *MacroRepository) ListByUserIDAndRange(userID uint, start, end time.Time) ([]model.MacroEntry, error) {
	var entries []model.MacroEntry
	err := r.db.
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, start, end).
		Order("date DESC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("list macro entries by range failed: %w", err)
	}
	return entries, nil
}

func (r *MacroRepository) GetByID(id uint) (*model.MacroEntry, error) {
	var entry model.MacroEntry
	if err := r.db.First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query macro entry failed: %w", err)
	}
	return &entry, nil
}

func (r *MacroRepository) GetLastByUserID(userID uint) (*model.MacroEntry, error) {
	var entry model.MacroEntry
	if err := r.db.Where("user_id = ?", userID).Order("date DESC").First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query last macro entry failed: %w", err)
	}
	return &entry, nil
}

func (r *MacroRepository) Update(entry *model.MacroEntry) error {
	if err := r.db.Save(entry).Error; err != nil {
		return fmt.Errorf("update macro entry failed: %w", err)
	}
	return nil
}

func (r *MacroRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.MacroEntry{}, id).Error; err != nil {
		return fmt.Errorf("delete macro entry failed: %w", err)
	}
	return nil
}

func (r *MacroRepository) DeleteByUserID(userID uint) error {
	if err := r.db.Where("user_id = ?", userID).Delete(&model.MacroEntry{}).Error; err != nil {
		return fmt.Errorf("delete macro entries by user failed: %w", err)
	}
	return nil
}
