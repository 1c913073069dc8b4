package app

import (
	"context"
	"time"

	"fitmanager/internal/model"
)

// WeightService encapsulates body-weight tracking use cases. Every
// id-addressed operation verifies the entry belongs to the caller.
type WeightService struct {
	store  WeightStore
	events ActivityPublisher
	cache  CacheInvalidator
}

func NewWeightService(store WeightStore, events ActivityPublisher, cache CacheInvalidator) *WeightService {
	return &WeightService{store: store, events: events, cache: cache}
}

func (s *WeightService) Create(userID uint, date time.Time, weight float64) (*model.WeightEntry, error) {
	if weight < 0 || weight > 500 {
		return nil, ErrInvalidInput
	}
	entry := &model.WeightEntry{
		UserID: userID,
		Date:   date,
		Weight: weight,
	}
	if err := s.store.Create(entry); err != nil {
		return nil, err
	}
	s.afterWrite(userID, "create", entry.ID)
	return entry, nil
}

func (s *WeightService) List(userID uint) ([]model.WeightEntry, error) {
	return s.store.ListByUserID(userID)
}

func (s *WeightService) GetLast(userID uint) (*model.WeightEntry, error) {
	return s.store.GetLastByUserID(userID)
}

func (s *WeightService) GetByID(userID, id uint) (*model.WeightEntry, error) {
	return s.ownedEntry(userID, id)
}

func (s *WeightService) Update(userID, id uint, date time.Time, weight float64) (*model.WeightEntry, error) {
	if weight < 0 || weight > 500 {
		return nil, ErrInvalidInput
	}
	entry, err := s.ownedEntry(userID, id)
	if err != nil {
		return nil, err
	}
	entry.Date = date
	entry.Weight = weight
	if err := s.store.Update(entry); err != nil {
		return nil, err
	}
	s.afterWrite(userID, "update", entry.ID)
	return entry, nil
}

func (s *WeightService) Delete(userID, id uint) error {
	entry, err := s.ownedEntry(userID, id)
	if err != nil {
		return err
	}
	if err := s.store.Delete(entry.ID); err != nil {
		return err
	}
	s.afterWrite(userID, "delete", entry.ID)
	return nil
}

// DeleteLast removes the caller's most recent entry.
func (s *WeightService) DeleteLast(userID uint) error {
	entry, err := s.store.GetLastByUserID(userID)
	if err != nil {
		return err
	}
	if entry == nil {
		return ErrEntryNotFound
	}
	if err := s.store.Delete(entry.ID); err != nil {
		return err
	}
	s.afterWrite(userID, "delete", entry.ID)
	return nil
}

func (s *WeightService) ownedEntry(userID, id uint) (*model.WeightEntry, error) {
	entry, err := s.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrEntryNotFound
	}
	if entry.UserID != userID {
		return nil, ErrNotOwner
	}
	return entry, nil
}

func (s *WeightService) afterWrite(userID uint, action string, entryID uint) {
	ctx := context.Background()
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, userID)
	}
	if s.events != nil {
		_ = s.events.Publish(ctx, model.ActivityEvent{
			UserID:     userID,
			Action:     action,
			Entity:     "weight",
			EntityID:   entryID,
			OccurredAt: time.Now(),
		})
	}
}
