// Package cache provides Redis-backed shared state.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/financeflow/backend/internal/application/adapter"
)

const (
	advisoryBusyKey   = "advisory:busy"
	advisoryAdviceKey = "advisory:last"

	// busyTTL bounds how long a crashed request can keep the flag set.
	busyTTL = 2 * time.Minute

	// adviceTTL keeps the last advice around for a day.
	adviceTTL = 24 * time.Hour
)

// advisoryCache implements adapter.AdvisoryCache on Redis.
type advisoryCache struct {
	client *redis.Client
}

// NewAdvisoryCache creates a Redis-backed advisory cache.
func NewAdvisoryCache(client *redis.Client) adapter.AdvisoryCache {
	return &advisoryCache{client: client}
}

// TryAcquire sets the in-flight marker. SETNX makes acquisition atomic across
// instances.
func (c *advisoryCache) TryAcquire(ctx context.Context) (bool, error) {
	acquired, err := c.client.SetNX(ctx, advisoryBusyKey, "1", busyTTL).Result()
	if err != nil {
		return false, fmt.Errorf("failed to set busy flag: %w", err)
	}
	return acquired, nil
}

// Release clears the in-flight marker.
func (c *advisoryCache) Release(ctx context.Context) error {
	if err := c.client.Del(ctx, advisoryBusyKey).Err(); err != nil {
		return fmt.Errorf("failed to clear busy flag: %w", err)
	}
	return nil
}

// GetLastAdvice returns the cached last advice, or "" when none is cached.
func (c *advisoryCache) GetLastAdvice(ctx context.Context) (string, error) {
	advice, err := c.client.Get(ctx, advisoryAdviceKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read cached advice: %w", err)
	}
	return advice, nil
}

// SetLastAdvice caches the advice text.
func (c *advisoryCache) SetLastAdvice(ctx context.Context, advice string) error {
	if err := c.client.Set(ctx, advisoryAdviceKey, advice, adviceTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache advice: %w", err)
	}
	return nil
}
