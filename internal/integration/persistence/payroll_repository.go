// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/financeflow/backend/internal/application/adapter"
	"github.com/financeflow/backend/internal/domain/entity"
	domainerror "github.com/financeflow/backend/internal/domain/error"
	"github.com/financeflow/backend/internal/integration/persistence/model"
)

// payrollRepository implements the adapter.PayrollRepository interface.
type payrollRepository struct {
	db *gorm.DB
}

// NewPayrollRepository creates a new payroll repository instance.
func NewPayrollRepository(db *gorm.DB) adapter.PayrollRepository {
	return &payrollRepository{
		db: db,
	}
}

// Create stores a new payroll entry.
func (r *payrollRepository) Create(ctx context.Context, entry *entity.PayrollEntry) error {
	return r.db.WithContext(ctx).Create(model.PayrollEntryFromEntity(entry)).Error
}

// FindByID retrieves a payroll entry by ID.
func (r *payrollRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PayrollEntry, error) {
	var entryModel model.PayrollEntryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&entryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewPayrollError(
				domainerror.ErrCodePayrollEntryNotFound,
				"payroll entry not found",
				domainerror.ErrPayrollEntryNotFound,
			)
		}
		return nil, result.Error
	}
	return entryModel.ToEntity(), nil
}

// FindAll retrieves all payroll entries, newest first.
func (r *payrollRepository) FindAll(ctx context.Context) ([]*entity.PayrollEntry, error) {
	var entryModels []model.PayrollEntryModel
	result := r.db.WithContext(ctx).Order("created_at DESC").Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.PayrollEntry, len(entryModels))
	for i := range entryModels {
		entries[i] = entryModels[i].ToEntity()
	}
	return entries, nil
}

// Update replaces an existing payroll entry record.
func (r *payrollRepository) Update(ctx context.Context, entry *entity.PayrollEntry) error {
	result := r.db.WithContext(ctx).
		Model(&model.PayrollEntryModel{}).
		Where("id = ?", entry.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model.PayrollEntryFromEntity(entry))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.NewPayrollError(
			domainerror.ErrCodePayrollEntryNotFound,
			"payroll entry not found",
			domainerror.ErrPayrollEntryNotFound,
		)
	}
	return nil
}

// Delete removes a payroll entry.
func (r *payrollRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.PayrollEntryModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.NewPayrollError(
			domainerror.ErrCodePayrollEntryNotFound,
			"payroll entry not found",
			domainerror.ErrPayrollEntryNotFound,
		)
	}
	return nil
}
