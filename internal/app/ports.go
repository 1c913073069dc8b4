package app

import (
	"context"
	"time"

	"fitmanager/internal/model"
)

// Store interfaces are the service-side ports over the gorm repositories,
// so tests can swap in mocks.

type UserStore interface {
	Create(user *model.User) error
	GetByUsername(username string) (*model.User, error)
	GetByEmail(email string) (*model.User, error)
	GetByID(id uint) (*model.User, error)
	Update(id uint, fields map[string]interface{}) error
	Delete(id uint) error
}

type WeightStore interface {
	Create(entry *model.WeightEntry) error
	ListByUserID(userID uint) ([]model.WeightEntry, error)
	GetByID(id uint) (*model.WeightEntry, error)
	GetLastByUserID(userID uint) (*model.WeightEntry, error)
	Update(entry *model.WeightEntry) error
	Delete(id uint) error
	DeleteByUserID(userID uint) error
}

type MacroStore interface {
	Create(entry *model.MacroEntry) error
	ListByUserID(userID uint) ([]model.MacroEntry, error)
	ListByUserIDAndRange(userID uint, start, end time.Time) ([]model.MacroEntry, error)
	GetByID(id uint) (*model.MacroEntry, error)
	GetLastByUserID(userID uint) (*model.MacroEntry, error)
	Update(entry *model.MacroEntry) error
	Delete(id uint) error
	DeleteByUserID(userID uint) error
}

type HydrationStore interface {
	Create(entry *model.HydrationEntry) error
	ListByUserID(userID uint) ([]model.HydrationEntry, error)
	ListByUserIDAndRange(userID uint, start, end time.Time) ([]model.HydrationEntry, error)
	GetByID(id uint) (*model.HydrationEntry, error)
	GetLastByUserID(userID uint) (*model.HydrationEntry, error)
	Update(entry *model.HydrationEntry) error
	Delete(id uint) error
	DeleteByUserID(userID uint) error
}

// ActivityPublisher enqueues audit events; publishing is best-effort and
// never fails a request.
type ActivityPublisher interface {
	Publish(ctx context.Context, event model.ActivityEvent) error
}

// CacheInvalidator drops a user's cached dashboard after a write.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, userID uint) error
}

// DashboardCache is the read/write side used by the aggregator.
type DashboardCache interface {
	Get(ctx context.Context, userID uint, out interface{}) (bool, error)
	Set(ctx context.Context, userID uint, payload interface{}) error
	Invalidate(ctx context.Context, userID uint) error
}
