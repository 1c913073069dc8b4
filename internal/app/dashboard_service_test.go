package app_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"fitmanager/internal/app"
	"fitmanager/internal/model"
)

func TestDashboardGet_AggregatesToday(t *testing.T) {
	users := &mockUserStore{
		getByIDFn: func(uint) (*model.User, error) {
			return &model.User{ID: 1, Username: "a"}, nil
		},
	}
	weights := &mockWeightStore{
		getLastFn: func(uint) (*model.WeightEntry, error) {
			return &model.WeightEntry{ID: 5, UserID: 1, Weight: 80}, nil
		},
	}
	macros := &mockMacroStore{
		listByRangeFn: func(uint, time.Time, time.Time) ([]model.MacroEntry, error) {
			return []model.MacroEntry{
				{Protein: 30, Carbs: 50, Fats: 10},
				{Protein: 25, Carbs: 40, Fats: 15},
			}, nil
		},
	}
	hydrations := &mockHydrationStore{
		listByRangeFn: func(uint, time.Time, time.Time) ([]model.HydrationEntry, error) {
			return []model.HydrationEntry{{Amount: 500}, {Amount: 250}}, nil
		},
	}
	svc := app.NewDashboardService(users, weights, macros, hydrations, nil)

	dashboard, err := svc.Get(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dashboard.User.Username != "a" {
		t.Fatalf("user = %+v", dashboard.User)
	}
	if dashboard.LatestWeight == nil || dashboard.LatestWeight.Weight != 80 {
		t.Fatalf("latest weight = %+v", dashboard.LatestWeight)
	}
	want := app.MacroTotals{Protein: 55, Carbs: 90, Fats: 25}
	if dashboard.LatestMacros != want {
		t.Fatalf("macro totals = %+v, want %+v", dashboard.LatestMacros, want)
	}
	if dashboard.TodayHydrationTotal != 750 {
		t.Fatalf("hydration total = %v, want 750", dashboard.TodayHydrationTotal)
	}
}

func TestDashboardGet_EmptyDay(t *testing.T) {
	users := &mockUserStore{
		getByIDFn: func(uint) (*model.User, error) {
			return &model.User{ID: 1, Username: "a"}, nil
		},
	}
	svc := app.NewDashboardService(users, &mockWeightStore{}, &mockMacroStore{}, &mockHydrationStore{}, nil)

	dashboard, err := svc.Get(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dashboard.LatestWeight != nil {
		t.Fatalf("latest weight should be nil, got %+v", dashboard.LatestWeight)
	}
	if (dashboard.LatestMacros != app.MacroTotals{}) {
		t.Fatalf("macro totals should be zero, got %+v", dashboard.LatestMacros)
	}
	if dashboard.TodayHydrationTotal != 0 {
		t.Fatalf("hydration total should be zero, got %v", dashboard.TodayHydrationTotal)
	}

	// Empty totals serialize as numbers, never null.
	body, err := json.Marshal(dashboard)
	if err != nil {
		t.Fatalf("marshal dashboard: %v", err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatalf("unmarshal dashboard: %v", err)
	}
	if decoded["latestMacros"] == nil {
		t.Fatal("latestMacros must not serialize as null")
	}
	if _, ok := decoded["todayHydrationTotal"].(float64); !ok {
		t.Fatalf("todayHydrationTotal must be a number, got %T", decoded["todayHydrationTotal"])
	}
}

func TestDashboardGet_UnknownUser(t *testing.T) {
	svc := app.NewDashboardService(&mockUserStore{}, &mockWeightStore{}, &mockMacroStore{}, &mockHydrationStore{}, nil)

	if _, err := svc.Get(99); !errors.Is(err, app.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestDashboardGet_CacheHitSkipsStores(t *testing.T) {
	users := &mockUserStore{
		getByIDFn: func(uint) (*model.User, error) {
			t.Fatal("store must not be read on a cache hit")
			return nil, nil
		},
	}
	cache := &mockCache{
		getFn: func(_ uint, out interface{}) (bool, error) {
			dashboard := out.(*app.Dashboard)
			dashboard.TodayHydrationTotal = 1250
			return true, nil
		},
	}
	svc := app.NewDashboardService(users, &mockWeightStore{}, &mockMacroStore{}, &mockHydrationStore{}, cache)

	dashboard, err := svc.Get(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dashboard.TodayHydrationTotal != 1250 {
		t.Fatalf("expected cached payload, got %+v", dashboard)
	}
}

func TestDashboardGet_CacheMissPopulates(t *testing.T) {
	users := &mockUserStore{
		getByIDFn: func(uint) (*model.User, error) {
			return &model.User{ID: 1, Username: "a"}, nil
		},
	}
	cache := &mockCache{}
	svc := app.NewDashboardService(users, &mockWeightStore{}, &mockMacroStore{}, &mockHydrationStore{}, cache)

	if _, err := svc.Get(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.setCount != 1 {
		t.Fatalf("expected one cache write, got %d", cache.setCount)
	}
	cached, ok := cache.lastSetValue.(*app.Dashboard)
	if !ok {
		t.Fatalf("cached payload has type %T, want *app.Dashboard", cache.lastSetValue)
	}
	if cached.User == nil || cached.User.Username != "a" {
		t.Fatalf("cached payload = %+v, want the assembled dashboard", cached)
	}
}
