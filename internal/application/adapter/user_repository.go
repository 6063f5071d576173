// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/financeflow/backend/internal/domain/entity"
)

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// FindByID retrieves a user by id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by email (the login key).
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindAll retrieves all users.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// Update replaces an existing user record.
	Update(ctx context.Context, user *entity.User) error

	// SeedDefaults stores the given users if the user collection is empty.
	// Reading an empty collection falls back to the built-in demo accounts.
	SeedDefaults(ctx context.Context, users []*entity.User) error
}
