package app

import (
	"context"
	"time"

	"fitmanager/internal/model"
)

// Dashboard is the composite daily view: profile, most recent weight, and
// today's macro/hydration totals.
type Dashboard struct {
	User                *model.User        `json:"user"`
	LatestWeight        *model.WeightEntry `json:"latestWeight"`
	LatestMacros        MacroTotals        `json:"latestMacros"`
	TodayHydrationTotal float64            `json:"todayHydrationTotal"`
}

// MacroTotals are grams summed across all of today's macro entries. Zeroes
// when the day has no entries, never null.
type MacroTotals struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fats    float64 `json:"fats"`
}

type DashboardService struct {
	users      UserStore
	weights    WeightStore
	macros     MacroStore
	hydrations HydrationStore
	cache      DashboardCache
}

func NewDashboardService(
	users UserStore,
	weights WeightStore,
	macros MacroStore,
	hydrations HydrationStore,
	cache DashboardCache,
) *DashboardService {
	return &DashboardService{
		users:      users,
		weights:    weights,
		macros:     macros,
		hydrations: hydrations,
		cache:      cache,
	}
}

// Get assembles the dashboard from four independent reads. Any failing read
// fails the whole request; there are no partial responses.
func (s *DashboardService) Get(userID uint) (*Dashboard, error) {
	ctx := context.Background()
	if s.cache != nil {
		var cached Dashboard
		if hit, err := s.cache.Get(ctx, userID, &cached); err == nil && hit {
			return &cached, nil
		}
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	latestWeight, err := s.weights.GetLastByUserID(userID)
	if err != nil {
		return nil, err
	}

	start, end := dayRange(time.Now())

	todayMacros, err := s.macros.ListByUserIDAndRange(userID, start, end)
	if err != nil {
		return nil, err
	}
	var totals MacroTotals
	for _, m := range todayMacros {
		totals.Protein += m.Protein
		totals.Carbs += m.Carbs
		totals.Fats += m.Fats
	}

	todayHydrations, err := s.hydrations.ListByUserIDAndRange(userID, start, end)
	if err != nil {
		return nil, err
	}
	var hydrationTotal float64
	for _, h := range todayHydrations {
		hydrationTotal += h.Amount
	}

	dashboard := &Dashboard{
		User:                user,
		LatestWeight:        latestWeight,
		LatestMacros:        totals,
		TodayHydrationTotal: hydrationTotal,
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, userID, dashboard)
	}
	return dashboard, nil
}
