// Package category exposes the static category catalog.
package category

import (
	"context"

	"github.com/financeflow/backend/internal/domain/entity"
)

// ListCategoriesInput represents the input for listing categories.
type ListCategoriesInput struct {
	// Type narrows the catalog to one transaction type; empty returns both.
	Type entity.TransactionType
}

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Income  []entity.Category
	Expense []entity.Category
}

// ListCategoriesUseCase serves the built-in category catalog.
type ListCategoriesUseCase struct{}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase() *ListCategoriesUseCase {
	return &ListCategoriesUseCase{}
}

// Execute returns the catalog. Readable by every role.
func (uc *ListCategoriesUseCase) Execute(_ context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	output := &ListCategoriesOutput{}
	switch input.Type {
	case entity.TransactionTypeIncome:
		output.Income = entity.IncomeCategories
	case entity.TransactionTypeExpense:
		output.Expense = entity.ExpenseCategories
	default:
		output.Income = entity.IncomeCategories
		output.Expense = entity.ExpenseCategories
	}
	return output, nil
}
