package app_test

import (
	"context"
	"time"

	"fitmanager/internal/model"
)

type mockUserStore struct {
	createFn        func(user *model.User) error
	getByUsernameFn func(username string) (*model.User, error)
	getByEmailFn    func(email string) (*model.User, error)
	getByIDFn       func(id uint) (*model.User, error)
	updateFn        func(id uint, fields map[string]interface{}) error
	deleteFn        func(id uint) error
}

func (m *mockUserStore) Create(user *model.User) error {
	if m.createFn != nil {
		return m.createFn(user)
	}
	user.ID = 1
	return nil
}

func (m *mockUserStore) GetByUsername(username string) (*model.User, error) {
	if m.getByUsernameFn != nil {
		return m.getByUsernameFn(username)
	}
	return nil, nil
}

func (m *mockUserStore) GetByEmail(email string) (*model.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(email)
	}
	return nil, nil
}

func (m *mockUserStore) GetByID(id uint) (*model.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(id)
	}
	return nil, nil
}

func (m *mockUserStore) Update(id uint, fields map[string]interface{}) error {
	if m.updateFn != nil {
		return m.updateFn(id, fields)
	}
	return nil
}

func (m *mockUserStore) Delete(id uint) error {
	if m.deleteFn != nil {
		return m.deleteFn(id)
	}
	return nil
}

type mockWeightStore struct {
	createFn         func(entry *model.WeightEntry) error
	listFn           func(userID uint) ([]model.WeightEntry, error)
	getByIDFn        func(id uint) (*model.WeightEntry, error)
	getLastFn        func(userID uint) (*model.WeightEntry, error)
	updateFn         func(entry *model.WeightEntry) error
	deleteFn         func(id uint) error
	deleteByUserIDFn func(userID uint) error
}

func (m *mockWeightStore) Create(entry *model.WeightEntry) error {
	if m.createFn != nil {
		return m.createFn(entry)
	}
	entry.ID = 1
	return nil
}

func (m *mockWeightStore) ListByUserID(userID uint) ([]model.WeightEntry, error) {
	if m.listFn != nil {
		return m.listFn(userID)
	}
	return nil, nil
}

func (m *mockWeightStore) GetByID(id uint) (*model.WeightEntry, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(id)
	}
	return nil, nil
}

func (m *mockWeightStore) GetLastByUserID(userID uint) (*model.WeightEntry, error) {
	if m.getLastFn != nil {
		return m.getLastFn(userID)
	}
	return nil, nil
}

func (m *mockWeightStore) Update(entry *model.WeightEntry) error {
	if m.updateFn != nil {
		return m.updateFn(entry)
	}
	return nil
}

func (m *mockWeightStore) Delete(id uint) error {
	if m.deleteFn != nil {
		return m.deleteFn(id)
	}
	return nil
}

func (m *mockWeightStore) DeleteByUserID(userID uint) error {
	if m.deleteByUserIDFn != nil {
		return m.deleteByUserIDFn(userID)
	}
	return nil
}

type mockMacroStore struct {
	createFn         func(entry *model.MacroEntry) error
	listFn           func(userID uint) ([]model.MacroEntry, error)
	listByRangeFn    func(userID uint, start, end time.Time) ([]model.MacroEntry, error)
	getByIDFn        func(id uint) (*model.MacroEntry, error)
	getLastFn        func(userID uint) (*model.MacroEntry, error)
	updateFn         func(entry *model.MacroEntry) error
	deleteFn         func(id uint) error
	deleteByUserIDFn func(userID uint) error
}

func (m *mockMacroStore) Create(entry *model.MacroEntry) error {
	if m.createFn != nil {
		return m.createFn(entry)
	}
	entry.ID = 1
	return nil
}

func (m *mockMacroStore) ListByUserID(userID uint) ([]model.MacroEntry, error) {
	if m.listFn != nil {
		return m.listFn(userID)
	}
	return nil, nil
}

func (m *mockMacroStore) ListByUserIDAndRange(userID uint, start, end time.Time) ([]model.MacroEntry, error) {
	if m.listByRangeFn != nil {
		return m.listByRangeFn(userID, start, end)
	}
	return nil, nil
}

func (m *mockMacroStore) GetByID(id uint) (*model.MacroEntry, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(id)
	}
	return nil, nil
}

func (m *mockMacroStore) GetLastByUserID(userID uint) (*model.MacroEntry, error) {
	if m.getLastFn != nil {
		return m.getLastFn(userID)
	}
	return nil, nil
}

func (m *mockMacroStore) Update(entry *model.MacroEntry) error {
	if m.updateFn != nil {
		return m.updateFn(entry)
	}
	return nil
}

func (m *mockMacroStore) Delete(id uint) error {
	if m.deleteFn != nil {
		return m.deleteFn(id)
	}
	return nil
}

func (m *mockMacroStore) DeleteByUserID(userID uint) error {
	if m.deleteByUserIDFn != nil {
		return m.deleteByUserIDFn(userID)
	}
	return nil
}

type mockHydrationStore struct {
	createFn         func(entry *model.HydrationEntry) error
	listFn           func(userID uint) ([]model.HydrationEntry, error)
	listByRangeFn    func(userID uint, start, end time.Time) ([]model.HydrationEntry, error)
	getByIDFn        func(id uint) (*model.HydrationEntry, error)
	getLastFn        func(userID uint) (*model.HydrationEntry, error)
	updateFn         func(entry *model.HydrationEntry) error
	deleteFn         func(id uint) error
	deleteByUserIDFn func(userID uint) error
}

func (m *mockHydrationStore) Create(entry *model.HydrationEntry) error {
	if m.createFn != nil {
		return m.createFn(entry)
	}
	entry.ID = 1
	return nil
}

func (m *mockHydrationStore) ListByUserID(userID uint) ([]model.HydrationEntry, error) {
	if m.listFn != nil {
		return m.listFn(userID)
	}
	return nil, nil
}

func (m *mockHydrationStore) ListByUserIDAndRange(userID uint, start, end time.Time) ([]model.HydrationEntry, error) {
	if m.listByRangeFn != nil {
		return m.listByRangeFn(userID, start, end)
	}
	return nil, nil
}

func (m *mockHydrationStore) GetByID(id uint) (*model.HydrationEntry, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(id)
	}
	return nil, nil
}

func (m *mockHydrationStore) GetLastByUserID(userID uint) (*model.HydrationEntry, error) {
	if m.getLastFn != nil {
		return m.getLastFn(userID)
	}
	return nil, nil
}

func (m *mockHydrationStore) Update(entry *model.HydrationEntry) error {
	if m.updateFn != nil {
		return m.updateFn(entry)
	}
	return nil
}

func (m *mockHydrationStore) Delete(id uint) error {
	if m.deleteFn != nil {
		return m.deleteFn(id)
	}
	return nil
}

func (m *mockHydrationStore) DeleteByUserID(userID uint) error {
	if m.deleteByUserIDFn != nil {
		return m.deleteByUserIDFn(userID)
	}
	return nil
}

type mockPublisher struct {
	published []model.ActivityEvent
}

func (m *mockPublisher) Publish(_ context.Context, event model.ActivityEvent) error {
	m.published = append(m.published, event)
	return nil
}

type mockCache struct {
	getFn        func(userID uint, out interface{}) (bool, error)
	setCount     int
	invalidated  []uint
	lastSetValue interface{}
}

func (m *mockCache) Get(_ context.Context, userID uint, out interface{}) (bool, error) {
	if m.getFn != nil {
		return m.getFn(userID, out)
	}
	return false, nil
}

func (m *mockCache) Set(_ context.Context, userID uint, payload interface{}) error {
	m.setCount++
	m.lastSetValue = payload
	return nil
}

func (m *mockCache) Invalidate(_ context.Context, userID uint) error {
	m.invalidated = append(m.invalidated, userID)
	return nil
}
