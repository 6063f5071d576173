// Package settings contains foundation configuration use cases.
package settings

import (
	"context"
	"fmt"
	"strings"

	"github.com/financeflow/backend/internal/application/adapter"
	"github.com/financeflow/backend/internal/domain/entity"
	domainerror "github.com/financeflow/backend/internal/domain/error"
)

// UpdateFoundationProfileInput represents the input for a profile update.
type UpdateFoundationProfileInput struct {
	Actor   entity.Actor
	Profile entity.FoundationProfile
}

// UpdateFoundationProfileOutput represents the output of a profile update.
type UpdateFoundationProfileOutput struct {
	Profile entity.FoundationProfile
}

// UpdateFoundationProfileUseCase replaces the stored foundation identity.
type UpdateFoundationProfileUseCase struct {
	settingsRepo adapter.SettingsRepository
}

// NewUpdateFoundationProfileUseCase creates a new UpdateFoundationProfileUseCase instance.
func NewUpdateFoundationProfileUseCase(settingsRepo adapter.SettingsRepository) *UpdateFoundationProfileUseCase {
	return &UpdateFoundationProfileUseCase{
		settingsRepo: settingsRepo,
	}
}

// Execute stores the profile snapshot. Requires the Admin role. Blank fields
// fall back to the built-in defaults rather than persisting empty strings.
func (uc *UpdateFoundationProfileUseCase) Execute(ctx context.Context, input UpdateFoundationProfileInput) (*UpdateFoundationProfileOutput, error) {
	if !input.Actor.Role.AtLeast(entity.RoleAdmin) {
		return nil, domainerror.NewPermissionDenied("update foundation profile")
	}

	profile := entity.FoundationProfile{
		Name:    strings.TrimSpace(input.Profile.Name),
		Address: strings.TrimSpace(input.Profile.Address),
	}
	if profile.Name == "" {
		profile.Name = entity.DefaultFoundationName
	}
	if profile.Address == "" {
		profile.Address = entity.DefaultFoundationAddress
	}

	if err := uc.settingsRepo.SaveFoundationProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save foundation profile: %w", err)
	}

	return &UpdateFoundationProfileOutput{Profile: profile}, nil
}
