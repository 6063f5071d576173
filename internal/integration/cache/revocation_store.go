// Package cache provides Redis-backed shared state.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/financeflow/backend/internal/integration/adapters"
)

const revokedTokenPrefix = "auth:revoked:"

// revocationStore implements adapters.RevocationStore on Redis. Entries live
// only as long as the token itself would.
type revocationStore struct {
	client *redis.Client
}

// NewRevocationStore creates a Redis-backed token revocation store.
func NewRevocationStore(client *redis.Client) adapters.RevocationStore {
	return &revocationStore{client: client}
}

// Revoke marks the token revoked until its ttl elapses.
func (s *revocationStore) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = time.Minute
	}
	if err := s.client.Set(ctx, revokedTokenPrefix+token, "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to store revocation: %w", err)
	}
	return nil
}

// IsRevoked reports whether the token has been revoked.
func (s *revocationStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	err := s.client.Get(ctx, revokedTokenPrefix+token).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check revocation: %w", err)
	}
	return true, nil
}
