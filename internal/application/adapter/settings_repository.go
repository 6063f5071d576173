// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/financeflow/backend/internal/domain/entity"
)

// SettingsRepository defines the interface for key-value settings persistence.
// Values are whole-document snapshots; a missing key falls back to a built-in
// default.
type SettingsRepository interface {
	// GetFoundationProfile retrieves the stored foundation profile, or the
	// built-in default when none has been stored yet.
	GetFoundationProfile(ctx context.Context) (entity.FoundationProfile, error)

	// SaveFoundationProfile stores the foundation profile, replacing any
	// previous snapshot.
	SaveFoundationProfile(ctx context.Context, profile entity.FoundationProfile) error
}
