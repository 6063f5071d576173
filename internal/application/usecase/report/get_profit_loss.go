// Package report computes financial summaries over the cash-flow journal.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/financeflow/backend/internal/application/adapter"
	"github.com/financeflow/backend/internal/domain/entity"
)

// ProfitLoss is a month's income and expense broken down by main category.
type ProfitLoss struct {
	Month        time.Month
	Year         int
	Income       map[string]decimal.Decimal // main category -> total
	Expense      map[string]decimal.Decimal // main category -> total
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Net          decimal.Decimal
}

// GetProfitLossInput represents the input for the profit & loss report.
type GetProfitLossInput struct {
	Month time.Month
	Year  int
}

// GetProfitLossOutput represents the output of the profit & loss report.
type GetProfitLossOutput struct {
	Report ProfitLoss
}

// GetProfitLossUseCase computes the monthly profit & loss report.
type GetProfitLossUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetProfitLossUseCase creates a new GetProfitLossUseCase instance.
func NewGetProfitLossUseCase(transactionRepo adapter.TransactionRepository) *GetProfitLossUseCase {
	return &GetProfitLossUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute computes the report for the given calendar month. Readable by every role.
func (uc *GetProfitLossUseCase) Execute(ctx context.Context, input GetProfitLossInput) (*GetProfitLossOutput, error) {
	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	return &GetProfitLossOutput{Report: ComputeProfitLoss(transactions, input.Month, input.Year)}, nil
}

// ComputeProfitLoss selects the transactions dated in the given calendar month
// and groups their amounts by type then main category. Dates compare as
// calendar days in their own location, never UTC-normalized.
func ComputeProfitLoss(transactions []*entity.Transaction, month time.Month, year int) ProfitLoss {
	report := ProfitLoss{
		Month:        month,
		Year:         year,
		Income:       map[string]decimal.Decimal{},
		Expense:      map[string]decimal.Decimal{},
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}

	for _, txn := range transactions {
		if txn.Date.Month() != month || txn.Date.Year() != year {
			continue
		}
		switch txn.Type {
		case entity.TransactionTypeIncome:
			report.Income[txn.MainCategory] = report.Income[txn.MainCategory].Add(txn.Amount)
			report.TotalIncome = report.TotalIncome.Add(txn.Amount)
		case entity.TransactionTypeExpense:
			report.Expense[txn.MainCategory] = report.Expense[txn.MainCategory].Add(txn.Amount)
			report.TotalExpense = report.TotalExpense.Add(txn.Amount)
		}
	}

	report.Net = report.TotalIncome.Sub(report.TotalExpense)
	return report
}
