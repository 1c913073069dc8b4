package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"
)

// DashboardCache keeps the assembled dashboard payload per user for a short
// TTL. Writes to any of the user's records invalidate the key, and entries
// expire no later than local midnight so "today" totals never carry over into
// the next day.
type DashboardCache struct {
	client *redisv9.Client
	ttl    time.Duration
}

func NewDashboardCache(client *redisv9.Client, ttl time.Duration) *DashboardCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &DashboardCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *DashboardCache) Get(ctx context.Context, userID uint, out interface{}) (bool, error) {
	raw, err := c.client.Get(ctx, c.key(userID)).Result()
	if err == redisv9.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get dashboard failed: %w", err)
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, fmt.Errorf("unmarshal cached dashboard failed: %w", err)
	}
	return true, nil
}

func (c *DashboardCache) Set(ctx context.Context, userID uint, payload interface{}) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal dashboard cache failed: %w", err)
	}
	if err := c.client.Set(ctx, c.key(userID), raw, ttlWithinDay(time.Now(), c.ttl)).Err(); err != nil {
		return fmt.Errorf("redis set dashboard failed: %w", err)
	}
	return nil
}

// ttlWithinDay caps ttl at the time remaining in the local calendar day, so a
// cached payload with day-scoped totals expires at midnight at the latest.
func ttlWithinDay(now time.Time, ttl time.Duration) time.Duration {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	if remaining := midnight.Sub(now); remaining < ttl {
		return remaining
	}
	return ttl
}

func (c *DashboardCache) Invalidate(ctx context.Context, userID uint) error {
	if err := c.client.Del(ctx, c.key(userID)).Err(); err != nil {
		return fmt.Errorf("redis delete dashboard failed: %w", err)
	}
	return nil
}

func (c *DashboardCache) key(userID uint) string {
	return fmt.Sprintf("dashboard:%d", userID)
}
