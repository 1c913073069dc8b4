package handler_test

import (
	"sort"
	"time"

	"fitmanager/internal/model"
)

// In-memory stores backing the route tests. They mirror the gorm
// repositories' contract: nil result and nil error when nothing matches.

type memUserStore struct {
	nextID uint
	users  map[uint]*model.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: map[uint]*model.User{}}
}

func (s *memUserStore) Create(user *model.User) error {
	s.nextID++
	user.ID = s.nextID
	stored := *user
	s.users[user.ID] = &stored
	return nil
}

func (s *memUserStore) GetByUsername(username string) (*model.User, error) {
	for _, u := range s.users {
		if u.Username == username {
			found := *u
			return &found, nil
		}
	}
	return nil, nil
}

func (s *memUserStore) GetByEmail(email string) (*model.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			found := *u
			return &found, nil
		}
	}
	return nil, nil
}

func (s *memUserStore) GetByID(id uint) (*model.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	found := *u
	return &found, nil
}

func (s *memUserStore) Update(id uint, fields map[string]interface{}) error {
	u, ok := s.users[id]
	if !ok {
		return nil
	}
	for k, v := range fields {
		switch k {
		case "username":
			u.Username = v.(string)
		case "sex":
			u.Sex = v.(string)
		case "height":
			h := v.(float64)
			u.Height = &h
		case "initial_weight":
			w := v.(float64)
			u.InitialWeight = &w
		case "target_weight":
			w := v.(float64)
			u.TargetWeight = &w
		case "workouts_per_week":
			n := v.(int)
			u.WorkoutsPerWeek = &n
		case "date_of_birth":
			d := v.(time.Time)
			u.DateOfBirth = &d
		}
	}
	return nil
}

func (s *memUserStore) Delete(id uint) error {
	delete(s.users, id)
	return nil
}

type memWeightStore struct {
	nextID  uint
	entries map[uint]*model.WeightEntry
}

func newMemWeightStore() *memWeightStore {
	return &memWeightStore{entries: map[uint]*model.WeightEntry{}}
}

func (s *memWeightStore) Create(entry *model.WeightEntry) error {
	s.nextID++
	entry.ID = s.nextID
	stored := *entry
	s.entries[entry.ID] = &stored
	return nil
}

func (s *memWeightStore) ListByUserID(userID uint) ([]model.WeightEntry, error) {
	var out []model.WeightEntry
	for _, e := range s.entries {
		if e.UserID == userID {
			out = append(out, *e)
		}
	}
	// Newest first, like the gorm repositories.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *memWeightStore) GetByID(id uint) (*model.WeightEntry, error) {
	e, ok := s.entries[id]
	if !ok {
		return nil, nil
	}
	found := *e
	return &found, nil
}

func (s *memWeightStore) GetLastByUserID(userID uint) (*model.WeightEntry, error) {
	var last *model.WeightEntry
	for _, e := range s.entries {
		if e.UserID != userID {
			continue
		}
		if last == nil || e.Date.After(last.Date) || (e.Date.Equal(last.Date) && e.ID > last.ID) {
			last = e
		}
	}
	if last == nil {
		return nil, nil
	}
	found := *last
	return &found, nil
}

func (s *memWeightStore) Update(entry *model.WeightEntry) error {
	stored := *entry
	s.entries[entry.ID] = &stored
	return nil
}

func (s *memWeightStore) Delete(id uint) error {
	delete(s.entries, id)
	return nil
}

func (s *memWeightStore) DeleteByUserID(userID uint) error {
	for id, e := range s.entries {
		if e.UserID == userID {
			delete(s.entries, id)
		}
	}
	return nil
}

type memMacroStore struct {
	nextID  uint
	entries map[uint]*model.MacroEntry
}

func newMemMacroStore() *memMacroStore {
	return &memMacroStore{entries: map[uint]*model.MacroEntry{}}
}

func (s *memMacroStore) Create(entry *model.MacroEntry) error {
	s.nextID++
	entry.ID = s.nextID
	stored := *entry
	s.entries[entry.ID] = &stored
	return nil
}

func (s *memMacroStore) ListByUserID(userID uint) ([]model.MacroEntry, error) {
	var out []model.MacroEntry
	for _, e := range s.entries {
		if e.UserID == userID {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *memMacroStore) ListByUserIDAndRange(userID uint, start, end time.Time) ([]model.MacroEntry, error) {
	var out []model.MacroEntry
	for _, e := range s.entries {
		if e.UserID == userID && !e.Date.Before(start) && !e.Date.After(end) {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (s *memMacroStore) GetByID(id uint) (*model.MacroEntry, error) {
	e, ok := s.entries[id]
	if !ok {
		return nil, nil
	}
	found := *e
	return &found, nil
}

func (s *memMacroStore) GetLastByUserID(userID uint) (*model.MacroEntry, error) {
	var last *model.MacroEntry
	for _, e := range s.entries {
		if e.UserID != userID {
			continue
		}
		if last == nil || e.Date.After(last.Date) || (e.Date.Equal(last.Date) && e.ID > last.ID) {
			last = e
		}
	}
	if last == nil {
		return nil, nil
	}
	found := *last
	return &found, nil
}

func (s *memMacroStore) Update(entry *model.MacroEntry) error {
	stored := *entry
	s.entries[entry.ID] = &stored
	return nil
}

func (s *memMacroStore) Delete(id uint) error {
	delete(s.entries, id)
	return nil
}

func (s *memMacroStore) DeleteByUserID(userID uint) error {
	for id, e := range s.entries {
		if e.UserID == userID {
			delete(s.entries, id)
		}
	}
	return nil
}

type memHydrationStore struct {
	nextID  uint
	entries map[uint]*model.HydrationEntry
}

func newMemHydrationStore() *memHydrationStore {
	return &memHydrationStore{entries: map[uint]*model.HydrationEntry{}}
}

func (s *memHydrationStore) Create(entry *model.HydrationEntry) error {
	s.nextID++
	entry.ID = s.nextID
	stored := *entry
	s.entries[entry.ID] = &stored
	return nil
}

func (s *memHydrationStore) ListByUserID(userID uint) ([]model.HydrationEntry, error) {
	var out []model.HydrationEntry
	for _, e := range s.entries {
		if e.UserID == userID {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s *memHydrationStore) ListByUserIDAndRange(userID uint, start, end time.Time) ([]model.HydrationEntry, error) {
	var out []model.HydrationEntry
	for _, e := range s.entries {
		if e.UserID == userID && !e.Date.Before(start) && !e.Date.After(end) {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (s *memHydrationStore) GetByID(id uint) (*model.HydrationEntry, error) {
	e, ok := s.entries[id]
	if !ok {
		return nil, nil
	}
	found := *e
	return &found, nil
}

func (s *memHydrationStore) GetLastByUserID(userID uint) (*model.HydrationEntry, error) {
	var last *model.HydrationEntry
	for _, e := range s.entries {
		if e.UserID != userID {
			continue
		}
		if last == nil || e.Date.After(last.Date) || (e.Date.Equal(last.Date) && e.ID > last.ID) {
			last = e
		}
	}
	if last == nil {
		return nil, nil
	}
	found := *last
	return &found, nil
}

func (s *memHydrationStore) Update(entry *model.HydrationEntry) error {
	stored := *entry
	s.entries[entry.ID] = &stored
	return nil
}

func (s *memHydrationStore) Delete(id uint) error {
	delete(s.entries, id)
	return nil
}

func (s *memHydrationStore) DeleteByUserID(userID uint) error {
	for id, e := range s.entries {
		if e.UserID == userID {
			delete(s.entries, id)
		}
	}
	return nil
}
