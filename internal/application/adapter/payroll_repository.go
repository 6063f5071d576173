// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/financeflow/backend/internal/domain/entity"
)

// PayrollRepository defines the interface for payroll persistence operations.
type PayrollRepository interface {
	// Create stores a new payroll entry.
	Create(ctx context.Context, entry *entity.PayrollEntry) error

	// FindByID retrieves a payroll entry by id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PayrollEntry, error)

	// FindAll retrieves all payroll entries, newest first.
	FindAll(ctx context.Context) ([]*entity.PayrollEntry, error)

	// Update replaces an existing payroll entry record.
	Update(ctx context.Context, entry *entity.PayrollEntry) error

	// Delete removes a payroll entry.
	Delete(ctx context.Context, id uuid.UUID) error
}
