// Package payroll contains payroll ledger use cases.
package payroll

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/financeflow/backend/internal/application/adapter"
	"github.com/financeflow/backend/internal/domain/entity"
	domainerror "github.com/financeflow/backend/internal/domain/error"
)

// CreatePayrollEntryInput represents the input for payroll entry creation.
type CreatePayrollEntryInput struct {
	Actor     entity.Actor
	Period    string
	Employee  entity.Employee
	Income    entity.IncomeComponents
	Deduction entity.DeductionComponents
}

// CreatePayrollEntryOutput represents the output of payroll entry creation.
type CreatePayrollEntryOutput struct {
	Entry *entity.PayrollEntry
}

// CreatePayrollEntryUseCase handles payroll entry creation logic.
type CreatePayrollEntryUseCase struct {
	payrollRepo adapter.PayrollRepository
}

// NewCreatePayrollEntryUseCase creates a new CreatePayrollEntryUseCase instance.
func NewCreatePayrollEntryUseCase(payrollRepo adapter.PayrollRepository) *CreatePayrollEntryUseCase {
	return &CreatePayrollEntryUseCase{
		payrollRepo: payrollRepo,
	}
}

// Execute performs the payroll entry creation. Requires the Editor role.
func (uc *CreatePayrollEntryUseCase) Execute(ctx context.Context, input CreatePayrollEntryInput) (*CreatePayrollEntryOutput, error) {
	if !input.Actor.Role.AtLeast(entity.RoleEditor) {
		return nil, domainerror.NewPermissionDenied("create payroll entry")
	}

	if err := validatePayrollFields(input.Period, input.Employee, input.Income, input.Deduction); err != nil {
		return nil, err
	}

	entry := entity.NewPayrollEntry(input.Period, input.Employee, input.Income, input.Deduction)
	if err := uc.payrollRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create payroll entry: %w", err)
	}

	return &CreatePayrollEntryOutput{Entry: entry}, nil
}

// validatePayrollFields checks the shared create/update field constraints.
func validatePayrollFields(period string, employee entity.Employee, income entity.IncomeComponents, deduction entity.DeductionComponents) error {
	if strings.TrimSpace(employee.Name) == "" {
		return domainerror.NewPayrollError(
			domainerror.ErrCodeMissingEmployeeName,
			"employee name is required",
			domainerror.ErrMissingEmployeeName,
		)
	}
	if strings.TrimSpace(period) == "" {
		return domainerror.NewPayrollError(
			domainerror.ErrCodeMissingPayrollFields,
			"payroll period is required",
			domainerror.ErrMissingEmployeeName,
		)
	}
	if !isValidEmploymentStatus(employee.Status) {
		return domainerror.NewPayrollError(
			domainerror.ErrCodeInvalidEmploymentStatus,
			"employment status must be 'Tetap', 'Kontrak' or 'Honorer'",
			domainerror.ErrInvalidEmploymentStatus,
		)
	}
	for _, component := range []decimal.Decimal{
		income.Basic, income.Position, income.Transport, income.Meal, income.Family,
		income.Performance, income.SpecialTask, income.Overtime, income.Bonus,
		deduction.BPJSHealth, deduction.BPJSEmployment, deduction.TaxPPh21,
		deduction.Absence, deduction.Loan, deduction.Infaq, deduction.Others,
	} {
		if component.IsNegative() {
			return domainerror.NewPayrollError(
				domainerror.ErrCodeNegativePayrollComponent,
				"payroll components must be non-negative",
				domainerror.ErrNegativePayrollComponent,
			)
		}
	}
	return nil
}

// isValidEmploymentStatus validates the employment status.
func isValidEmploymentStatus(status entity.EmploymentStatus) bool {
	switch status {
	case entity.EmploymentStatusTetap, entity.EmploymentStatusKontrak, entity.EmploymentStatusHonorer:
		return true
	}
	return false
}
