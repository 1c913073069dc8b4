package app

import (
	"context"
	"time"

	"fitmanager/internal/model"
)

type HydrationService struct {
	store  HydrationStore
	events ActivityPublisher
	cache  CacheInvalidator
}

func NewHydrationService(store HydrationStore, events ActivityPublisher, cache CacheInvalidator) *HydrationService {
	return &HydrationService{store: store, events: events, cache: cache}
}

func (s *HydrationService) Create(userID uint, date time.Time, amount float64) (*model.HydrationEntry, error) {
	if amount < 0 || amount > 10000 {
		return nil, ErrInvalidInput
	}
	entry := &model.HydrationEntry{
		UserID: userID,
		Date:   date,
		Amount: amount,
	}
	if err := s.store.Create(entry); err != nil {
		return nil, err
	}
	s.afterWrite(userID, "create", entry.ID)
	return entry, nil
}

func (s *HydrationService) List(userID uint) ([]model.HydrationEntry, error) {
	return s.store.ListByUserID(userID)
}

func (s *HydrationService) GetLast(userID uint) (*model.HydrationEntry, error) {
	return s.store.GetLastByUserID(userID)
}

func (s *HydrationService) ListToday(userID uint) ([]model.HydrationEntry, error) {
	start, end := dayRange(time.Now())
	return s.store.ListByUserIDAndRange(userID, start, end)
}

func (s *HydrationService) ListByDate(userID uint, day time.Time) ([]model.HydrationEntry, error) {
	start, end := dayRange(day)
	return s.store.ListByUserIDAndRange(userID, start, end)
}

func (s *HydrationService) GetByID(userID, id uint) (*model.HydrationEntry, error) {
	return s.ownedEntry(userID, id)
}

func (s *HydrationService) Update(userID, id uint, date time.Time, amount float64) (*model.HydrationEntry, error) {
	if amount < 0 || amount > 10000 {
		return nil, ErrInvalidInput
	}
	entry, err := s.ownedEntry(userID, id)
	if err != nil {
		return nil, err
	}
	entry.Date = date
	entry.Amount = amount
	if err := s.store.Update(entry); err != nil {
		return nil, err
	}
	s.afterWrite(userID, "update", entry.ID)
	return entry, nil
}

func (s *HydrationService) Delete(userID, id uint) error {
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

func (s *HydrationService) DeleteLast(userID uint) error {
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

func (s *HydrationService) ownedEntry(userID, id uint) (*model.HydrationEntry, error) {
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

func (s *HydrationService) afterWrite(userID uint, action string, entryID uint) {
	ctx := context.Background()
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, userID)
	}
	if s.events != nil {
		_ = s.events.Publish(ctx, model.ActivityEvent{
			UserID:     userID,
			Action:     action,
			Entity:     "hydration",
			EntityID:   entryID,
			OccurredAt: time.Now(),
		})
	}
}
