// Package settings contains foundation configuration use cases.
package settings

import (
	"context"
	"fmt"

	"github.com/financeflow/backend/internal/application/adapter"
	"github.com/financeflow/backend/internal/domain/entity"
)

// GetFoundationProfileOutput represents the output of reading the profile.
type GetFoundationProfileOutput struct {
	Profile entity.FoundationProfile
}

// GetFoundationProfileUseCase reads the foundation identity used on report
// headers.
type GetFoundationProfileUseCase struct {
	settingsRepo adapter.SettingsRepository
}

// NewGetFoundationProfileUseCase creates a new GetFoundationProfileUseCase instance.
func NewGetFoundationProfileUseCase(settingsRepo adapter.SettingsRepository) *GetFoundationProfileUseCase {
	return &GetFoundationProfileUseCase{
		settingsRepo: settingsRepo,
	}
}

// Execute returns the stored profile, or the built-in default when none has
// been stored. Readable by every role.
func (uc *GetFoundationProfileUseCase) Execute(ctx context.Context) (*GetFoundationProfileOutput, error) {
	profile, err := uc.settingsRepo.GetFoundationProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load foundation profile: %w", err)
	}
	return &GetFoundationProfileOutput{Profile: profile}, nil
}
