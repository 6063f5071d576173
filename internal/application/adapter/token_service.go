// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/financeflow/backend/internal/domain/entity"
)

// TokenClaims represents the validated claims of a session token.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	Role      entity.Role
	ExpiresAt time.Time
}

// TokenService defines the interface for session token operations.
type TokenService interface {
	// GenerateToken issues a signed session token for the user.
	GenerateToken(ctx context.Context, user *entity.User) (string, error)

	// ValidateToken validates a session token and returns its claims.
	ValidateToken(ctx context.Context, token string) (*TokenClaims, error)

	// InvalidateToken revokes a session token.
	InvalidateToken(ctx context.Context, token string) error
}
