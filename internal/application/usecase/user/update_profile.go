// Package user contains account management use cases.
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/financeflow/backend/internal/application/adapter"
	"github.com/financeflow/backend/internal/domain/entity"
	domainerror "github.com/financeflow/backend/internal/domain/error"
)

// UpdateProfileInput represents the input for a profile update.
type UpdateProfileInput struct {
	Actor  entity.Actor
	UserID uuid.UUID
	Name   string
	Avatar string
	Role   entity.Role
}

// UpdateProfileOutput represents the output of a profile update.
type UpdateProfileOutput struct {
	User *entity.User
}

// UpdateProfileUseCase handles account profile changes. Users may edit their
// own name and avatar; role changes are Admin only.
type UpdateProfileUseCase struct {
	userRepo adapter.UserRepository
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(userRepo adapter.UserRepository) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo: userRepo,
	}
}

// Execute performs the profile update.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	editingSelf := input.Actor.UserID == input.UserID
	if !editingSelf && !input.Actor.Role.AtLeast(entity.RoleAdmin) {
		return nil, domainerror.NewPermissionDenied("update another user's profile")
	}

	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name != "" {
		user.Name = name
	}
	if input.Avatar != "" {
		user.Avatar = input.Avatar
	}

	if input.Role != "" && input.Role != user.Role {
		if !input.Actor.Role.AtLeast(entity.RoleAdmin) {
			return nil, domainerror.NewPermissionDenied("change user role")
		}
		if !input.Role.Valid() {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeInvalidRole,
				"role must be 'Admin', 'Editor' or 'Viewer'",
				domainerror.ErrInvalidRole,
			)
		}
		user.Role = input.Role
	}
	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return &UpdateProfileOutput{User: user}, nil
}
