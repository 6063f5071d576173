// Package payroll contains payroll ledger use cases.
package payroll

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/financeflow/backend/internal/application/adapter"
	"github.com/financeflow/backend/internal/domain/entity"
)

// PayrollSummary holds ledger-wide gross and net totals.
type PayrollSummary struct {
	TotalGross decimal.Decimal
	TotalNet   decimal.Decimal
	Entries    int
}

// GetPayrollSummaryInput represents the input for the payroll summary.
type GetPayrollSummaryInput struct {
	Filter ListFilter
}

// GetPayrollSummaryOutput represents the output of the payroll summary.
type GetPayrollSummaryOutput struct {
	Summary PayrollSummary
}

// GetPayrollSummaryUseCase computes gross and net totals over the (filtered)
// payroll ledger.
type GetPayrollSummaryUseCase struct {
	payrollRepo adapter.PayrollRepository
}

// NewGetPayrollSummaryUseCase creates a new GetPayrollSummaryUseCase instance.
func NewGetPayrollSummaryUseCase(payrollRepo adapter.PayrollRepository) *GetPayrollSummaryUseCase {
	return &GetPayrollSummaryUseCase{
		payrollRepo: payrollRepo,
	}
}

// Execute computes the summary. Readable by every role.
func (uc *GetPayrollSummaryUseCase) Execute(ctx context.Context, input GetPayrollSummaryInput) (*GetPayrollSummaryOutput, error) {
	entries, err := uc.payrollRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load payroll entries: %w", err)
	}

	return &GetPayrollSummaryOutput{Summary: Summarize(FilterEntries(entries, input.Filter))}, nil
}

// Summarize folds the entries into ledger-wide gross and net totals.
func Summarize(entries []*entity.PayrollEntry) PayrollSummary {
	summary := PayrollSummary{
		TotalGross: decimal.Zero,
		TotalNet:   decimal.Zero,
		Entries:    len(entries),
	}
	for _, entry := range entries {
		summary.TotalGross = summary.TotalGross.Add(entry.Gross())
		summary.TotalNet = summary.TotalNet.Add(entry.Net())
	}
	return summary
}
