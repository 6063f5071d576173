// Package report computes financial summaries over the cash-flow journal.
package report

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/financeflow/backend/internal/application/adapter"
	"github.com/financeflow/backend/internal/domain/entity"
)

// Summary holds journal-wide income, expense and balance totals.
type Summary struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

// GetSummaryOutput represents the output of the summary report.
type GetSummaryOutput struct {
	Summary Summary
}

// GetSummaryUseCase folds the whole journal into income/expense/balance totals.
type GetSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(transactionRepo adapter.TransactionRepository) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute computes the summary. Readable by every role.
func (uc *GetSummaryUseCase) Execute(ctx context.Context) (*GetSummaryOutput, error) {
	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	return &GetSummaryOutput{Summary: Summarize(transactions)}, nil
}

// Summarize folds transactions into income and expense totals by type;
// balance is income minus expense. Pure and order-independent.
func Summarize(transactions []*entity.Transaction) Summary {
	summary := Summary{
		Income:  decimal.Zero,
		Expense: decimal.Zero,
	}
	for _, txn := range transactions {
		switch txn.Type {
		case entity.TransactionTypeIncome:
			summary.Income = summary.Income.Add(txn.Amount)
		case entity.TransactionTypeExpense:
			summary.Expense = summary.Expense.Add(txn.Amount)
		}
	}
	summary.Balance = summary.Income.Sub(summary.Expense)
	return summary
}
