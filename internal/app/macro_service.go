package app

import (
	"context"
	"time"

	"fitmanager/internal/model"
)

type MacroService struct {
	store  MacroStore
	events ActivityPublisher
	cache  CacheInvalidator
}

type MacroInput struct {
	Date    time.Time
	Protein float64
	Carbs   float64
	Fats    float64
}

func NewMacroService(store MacroStore, events ActivityPublisher, cache CacheInvalidator) *MacroService {
	return &MacroService{store: store, events: events, cache: cache}
}

func (s *MacroService) Create(userID uint, input MacroInput) (*model.MacroEntry, error) {
	if !macroValuesValid(input) {
		return nil, ErrInvalidInput
	}
	entry := &model.MacroEntry{
		UserID:  userID,
		Date:    input.Date,
		Protein: input.Protein,
		Carbs:   input.Carbs,
		Fats:    input.Fats,
	}
	if err := s.store.Create(entry); err != nil {
		return nil, err
	}
	s.afterWrite(userID, "create", entry.ID)
	return entry, nil
}

func (s *MacroService) List(userID uint) ([]model.MacroEntry, error) {
	return s.store.ListByUserID(userID)
}

func (s *MacroService) GetLast(userID uint) (*model.MacroEntry, error) {
	return s.store.GetLastByUserID(userID)
}

func (s *MacroService) ListToday(userID uint) ([]model.MacroEntry, error) {
	start, end := dayRange(time.Now())
	return s.store.ListByUserIDAndRange(userID, start, end)
}

// ListByDate returns the entries whose date falls on the given calendar day.
func (s *MacroService) ListByDate(userID uint, day time.Time) ([]model.MacroEntry, error) {
	start, end := dayRange(day)
	return s.store.ListByUserIDAndRange(userID, start, end)
}

func (s *MacroService) GetByID(userID, id uint) (*model.MacroEntry, error) {
	return s.ownedEntry(userID, id)
}

func (s *MacroService) Update(userID, id uint, input MacroInput) (*model.MacroEntry, error) {
	if !macroValuesValid(input) {
		return nil, ErrInvalidInput
	}
	entry, err := s.ownedEntry(userID, id)
	if err != nil {
		return nil, err
	}
	entry.Date = input.Date
	entry.Protein = input.Protein
	entry.Carbs = input.Carbs
	entry.Fats = input.Fats
	if err := s.store.Update(entry); err != nil {
		return nil, err
	}
	s.afterWrite(userID, "update", entry.ID)
	return entry, nil
}

func (s *MacroService) Delete(userID, id uint) error {
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

func macroValuesValid(input MacroInput) bool {
	for _, v := range []float64{input.Protein, input.Carbs, input.Fats} {
		if v < 0 || v > 1000 {
			return false
		}
	}
	return true
}

func (s *MacroService) ownedEntry(userID, id uint) (*model.MacroEntry, error) {
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

func (s *MacroService) afterWrite(userID uint, action string, entryID uint) {
	ctx := context.Background()
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, userID)
	}
	if s.events != nil {
		_ = s.events.Publish(ctx, model.ActivityEvent{
			UserID:     userID,
			Action:     action,
			Entity:     "macro",
			EntityID:   entryID,
			OccurredAt: time.Now(),
		})
	}
}
