package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"fitmanager/internal/model"
)

type WeightRepository struct {
	db *gorm.DB
}

func NewWeightRepository(db *gorm.DB) *WeightRepository {
	return &WeightRepository{db: db}
}

func (r *WeightRepository) Create(entry *model.WeightEntry) error {
	if err := r.db.Create(entry).Error; err != nil {
		return fmt.Errorf("create weight entry failed: %w", err)
	}
	return nil
}

func (r *WeightRepository) ListByUserID(userID uint) ([]model.WeightEntry, error) {
	var entries []model.WeightEntry
	if err := r.db.Where("user_id = ?", userID).Order("date DESC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list weight entries failed: %w", err)
	}
	return entries, nil
}

func (r *WeightRepository) GetByID(id uint) (*model.WeightEntry, error) {
	var entry model.WeightEntry
	if err := r.db.First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query weight entry failed: %w", err)
	}
	return &entry, nil
}

func (r *WeightRepository) GetLastByUserID(userID uint) (*model.WeightEntry, error) {
	var entry model.WeightEntry
	if err := r.db.Where("user_id = ?", userID).Order("date DESC").First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query last weight entry failed: %w", err)
	}
	return &entry, nil
}

func (r *WeightRepository) Update(entry *model.WeightEntry) error {
	if err := r.db.Save(entry).Error; err != nil {
		return fmt.Errorf("update weight entry failed: %w", err)
	}
	return nil
}

func (r *WeightRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.WeightEntry{}, id).Error; err != nil {
		return fmt.Errorf("delete weight entry failed: %w", err)
	}
	return nil
}

func (r *WeightRepository) DeleteByUserID(userID uint) error {
	if err := r.db.Where("user_id = ?", userID).Delete(&model.WeightEntry{}).Error; err != nil {
		return fmt.Errorf("delete weight entries by user failed: %w", err)
	}
	return nil
}
