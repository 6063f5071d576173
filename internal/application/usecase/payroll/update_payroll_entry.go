// Package payroll contains payroll ledger use cases.
package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/financeflow/backend/internal/application/adapter"
	"github.com/financeflow/backend/internal/domain/entity"
	domainerror "github.com/financeflow/backend/internal/domain/error"
)

// UpdatePayrollEntryInput represents the input for a full-record payroll update.
type UpdatePayrollEntryInput struct {
	Actor     entity.Actor
	ID        uuid.UUID
	Period    string
	Employee  entity.Employee
	Income    entity.IncomeComponents
	Deduction entity.DeductionComponents
}

// UpdatePayrollEntryOutput represents the output of a payroll entry update.
type UpdatePayrollEntryOutput struct {
	Entry *entity.PayrollEntry
}

// UpdatePayrollEntryUseCase handles payroll entry update logic.
type UpdatePayrollEntryUseCase struct {
	payrollRepo adapter.PayrollRepository
}

// NewUpdatePayrollEntryUseCase creates a new UpdatePayrollEntryUseCase instance.
func NewUpdatePayrollEntryUseCase(payrollRepo adapter.PayrollRepository) *UpdatePayrollEntryUseCase {
	return &UpdatePayrollEntryUseCase{
		payrollRepo: payrollRepo,
	}
}

// Execute performs the payroll entry update. Requires the Editor role.
func (uc *UpdatePayrollEntryUseCase) Execute(ctx context.Context, input UpdatePayrollEntryInput) (*UpdatePayrollEntryOutput, error) {
	if !input.Actor.Role.AtLeast(entity.RoleEditor) {
		return nil, domainerror.NewPermissionDenied("update payroll entry")
	}

	if err := validatePayrollFields(input.Period, input.Employee, input.Income, input.Deduction); err != nil {
		return nil, err
	}

	entry, err := uc.payrollRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	entry.Period = input.Period
	entry.Employee = input.Employee
	entry.Income = input.Income
	entry.Deduction = input.Deduction
	entry.UpdatedAt = time.Now().UTC()

	if err := uc.payrollRepo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to update payroll entry: %w", err)
	}

	return &UpdatePayrollEntryOutput{Entry: entry}, nil
}
