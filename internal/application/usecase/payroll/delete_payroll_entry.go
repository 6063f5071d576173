// Package payroll contains payroll ledger use cases.
package payroll

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/financeflow/backend/internal/application/adapter"
	"github.com/financeflow/backend/internal/domain/entity"
	domainerror "github.com/financeflow/backend/internal/domain/error"
)

// DeletePayrollEntryInput represents the input for payroll entry deletion.
type DeletePayrollEntryInput struct {
	Actor entity.Actor
	ID    uuid.UUID
}

// DeletePayrollEntryUseCase handles payroll entry deletion logic.
type DeletePayrollEntryUseCase struct {
	payrollRepo adapter.PayrollRepository
}

// NewDeletePayrollEntryUseCase creates a new DeletePayrollEntryUseCase instance.
func NewDeletePayrollEntryUseCase(payrollRepo adapter.PayrollRepository) *DeletePayrollEntryUseCase {
	return &DeletePayrollEntryUseCase{
		payrollRepo: payrollRepo,
	}
}

// Execute performs the payroll entry deletion. Requires the Admin role.
func (uc *DeletePayrollEntryUseCase) Execute(ctx context.Context, input DeletePayrollEntryInput) error {
	if !input.Actor.Role.AtLeast(entity.RoleAdmin) {
		return domainerror.NewPermissionDenied("delete payroll entry")
	}

	if _, err := uc.payrollRepo.FindByID(ctx, input.ID); err != nil {
		return err
	}

	if err := uc.payrollRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete payroll entry: %w", err)
	}
	return nil
}
