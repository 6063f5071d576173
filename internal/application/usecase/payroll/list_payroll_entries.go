// Package payroll contains payroll ledger use cases.
package payroll

import (
	"context"
	"fmt"
	"strings"

	"github.com/financeflow/backend/internal/application/adapter"
	"github.com/financeflow/backend/internal/domain/entity"
)

// Passthrough value for the period filter.
const FilterAllPeriods = "ALL"

// ListFilter carries the search and period parameters of a payroll listing.
type ListFilter struct {
	SearchTerm string
	Period     string // "" or "ALL" for passthrough, otherwise exact label
}

// ListPayrollEntriesInput represents the input for listing payroll entries.
type ListPayrollEntriesInput struct {
	Filter ListFilter
}

// ListPayrollEntriesOutput represents the output of listing payroll entries.
type ListPayrollEntriesOutput struct {
	Entries []*entity.PayrollEntry
}

// ListPayrollEntriesUseCase handles filtered payroll listings.
type ListPayrollEntriesUseCase struct {
	payrollRepo adapter.PayrollRepository
}

// NewListPayrollEntriesUseCase creates a new ListPayrollEntriesUseCase instance.
func NewListPayrollEntriesUseCase(payrollRepo adapter.PayrollRepository) *ListPayrollEntriesUseCase {
	return &ListPayrollEntriesUseCase{
		payrollRepo: payrollRepo,
	}
}

// Execute returns the payroll entries matching the filter. Readable by every role.
func (uc *ListPayrollEntriesUseCase) Execute(ctx context.Context, input ListPayrollEntriesInput) (*ListPayrollEntriesOutput, error) {
	entries, err := uc.payrollRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll entries: %w", err)
	}

	return &ListPayrollEntriesOutput{Entries: FilterEntries(entries, input.Filter)}, nil
}

// FilterEntries returns the subsequence of entries matching the filter. The
// search term matches case-insensitively as a substring of the employee name,
// government id or position (OR across the three fields). The period filter is
// an exact label match with "" or "ALL" as passthrough.
func FilterEntries(entries []*entity.PayrollEntry, filter ListFilter) []*entity.PayrollEntry {
	term := strings.ToLower(strings.TrimSpace(filter.SearchTerm))

	result := make([]*entity.PayrollEntry, 0, len(entries))
	for _, entry := range entries {
		if term != "" &&
			!strings.Contains(strings.ToLower(entry.Employee.Name), term) &&
			!strings.Contains(strings.ToLower(entry.Employee.NIK), term) &&
			!strings.Contains(strings.ToLower(entry.Employee.Position), term) {
			continue
		}
		if filter.Period != "" && filter.Period != FilterAllPeriods && entry.Period != filter.Period {
			continue
		}
		result = append(result, entry)
	}
	return result
}
