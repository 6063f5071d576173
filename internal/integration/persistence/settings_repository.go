// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/financeflow/backend/internal/application/adapter"
	"github.com/financeflow/backend/internal/domain/entity"
	"github.com/financeflow/backend/internal/integration/persistence/model"
)

const foundationProfileKey = "foundation_profile"

// settingsRepository implements the adapter.SettingsRepository interface on
// the key-value settings table. Values are JSON snapshots.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository instance.
func NewSettingsRepository(db *gorm.DB) adapter.SettingsRepository {
	return &settingsRepository{
		db: db,
	}
}

// GetFoundationProfile retrieves the stored foundation profile. A missing key
// or an unparsable snapshot falls back to the built-in default rather than
// erroring.
func (r *settingsRepository) GetFoundationProfile(ctx context.Context) (entity.FoundationProfile, error) {
	var settingModel model.SettingModel
	result := r.db.WithContext(ctx).Where("key = ?", foundationProfileKey).First(&settingModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return entity.DefaultFoundationProfile(), nil
		}
		return entity.FoundationProfile{}, result.Error
	}

	var profile entity.FoundationProfile
	if err := json.Unmarshal([]byte(settingModel.Value), &profile); err != nil {
		return entity.DefaultFoundationProfile(), nil
	}
	if profile.Name == "" {
		profile.Name = entity.DefaultFoundationName
	}
	if profile.Address == "" {
		profile.Address = entity.DefaultFoundationAddress
	}
	return profile, nil
}

// SaveFoundationProfile stores the profile snapshot, replacing any previous
// one (last write wins).
func (r *settingsRepository) SaveFoundationProfile(ctx context.Context, profile entity.FoundationProfile) error {
	value, err := json.Marshal(profile)
	if err != nil {
		return err
	}

	settingModel := model.SettingModel{
		Key:       foundationProfileKey,
		Value:     string(value),
		UpdatedAt: time.Now().UTC(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&settingModel).Error
}
