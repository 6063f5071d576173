// Package report computes financial summaries over the cash-flow journal.
package report

import (
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/financeflow/backend/internal/domain/entity"
)

func txn(transactionType entity.TransactionType, mainCategory string, amount int64, date time.Time) *entity.Transaction {
	return &entity.Transaction{
		ID:           uuid.New(),
		Type:         transactionType,
		MainCategory: mainCategory,
		Amount:       decimal.NewFromInt(amount),
		Date:         date,
	}
}

func march(day int) time.Time {
	return time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC)
}

func TestSummarize(t *testing.T) {
	t.Run("empty journal", func(t *testing.T) {
		summary := Summarize(nil)
		assert.True(t, summary.Income.IsZero())
		assert.True(t, summary.Expense.IsZero())
		assert.True(t, summary.Balance.IsZero())
	})

	t.Run("income and expense fold by type", func(t *testing.T) {
		summary := Summarize([]*entity.Transaction{
			txn(entity.TransactionTypeIncome, "Pendapatan Operasional", 1500, march(5)),
			txn(entity.TransactionTypeExpense, "Beban Operasional Rutin", 300, march(10)),
		})
		assert.True(t, summary.Income.Equal(decimal.NewFromInt(1500)))
		assert.True(t, summary.Expense.Equal(decimal.NewFromInt(300)))
		assert.True(t, summary.Balance.Equal(decimal.NewFromInt(1200)))
	})

	t.Run("order-independent", func(t *testing.T) {
		transactions := []*entity.Transaction{
			txn(entity.TransactionTypeIncome, "Pendapatan Operasional", 100, march(1)),
			txn(entity.TransactionTypeIncome, "Pendapatan Keuangan", 250, march(2)),
			txn(entity.TransactionTypeExpense, "Beban Program", 75, march(3)),
			txn(entity.TransactionTypeExpense, "Beban Administrasi", 40, march(4)),
		}
		want := Summarize(transactions)

		shuffled := make([]*entity.Transaction, len(transactions))
		copy(shuffled, transactions)
		rand.New(rand.NewSource(1)).Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		got := Summarize(shuffled)
		assert.True(t, got.Income.Equal(want.Income))
		assert.True(t, got.Expense.Equal(want.Expense))
		assert.True(t, got.Balance.Equal(want.Balance))
	})
}

func TestComputeProfitLoss(t *testing.T) {
	transactions := []*entity.Transaction{
		txn(entity.TransactionTypeIncome, "Pendapatan Operasional", 1500, march(5)),
		txn(entity.TransactionTypeExpense, "Beban Operasional Rutin", 300, march(10)),
		// Outside the reporting month.
		txn(entity.TransactionTypeIncome, "Pendapatan Operasional", 9999, time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC)),
		txn(entity.TransactionTypeExpense, "Beban Program", 9999, time.Date(2023, 3, 10, 0, 0, 0, 0, time.UTC)),
	}

	report := ComputeProfitLoss(transactions, time.March, 2024)

	assert.True(t, report.Income["Pendapatan Operasional"].Equal(decimal.NewFromInt(1500)))
	assert.True(t, report.Expense["Beban Operasional Rutin"].Equal(decimal.NewFromInt(300)))
	assert.True(t, report.TotalIncome.Equal(decimal.NewFromInt(1500)))
	assert.True(t, report.TotalExpense.Equal(decimal.NewFromInt(300)))
	assert.True(t, report.Net.Equal(decimal.NewFromInt(1200)))
}

func TestComputeProfitLoss_GroupsByMainCategory(t *testing.T) {
	transactions := []*entity.Transaction{
		txn(entity.TransactionTypeExpense, "Beban Program", 200, march(1)),
		txn(entity.TransactionTypeExpense, "Beban Program", 300, march(15)),
		txn(entity.TransactionTypeExpense, "Beban Administrasi", 100, march(20)),
	}

	report := ComputeProfitLoss(transactions, time.March, 2024)

	assert.Len(t, report.Expense, 2)
	assert.True(t, report.Expense["Beban Program"].Equal(decimal.NewFromInt(500)))
	assert.True(t, report.Expense["Beban Administrasi"].Equal(decimal.NewFromInt(100)))
	assert.True(t, report.TotalExpense.Equal(decimal.NewFromInt(600)))
	assert.Empty(t, report.Income)
}

func TestComputeProfitLoss_CalendarDaySemantics(t *testing.T) {
	// Dated the last day of March in a UTC+7 location. Normalizing to UTC
	// would shift it into the previous day but must not move it out of the
	// month bucket, dates compare as local calendar days.
	jakarta := time.FixedZone("WIB", 7*3600)
	transactions := []*entity.Transaction{
		txn(entity.TransactionTypeIncome, "Pendapatan Operasional", 100, time.Date(2024, 3, 31, 0, 0, 0, 0, jakarta)),
	}

	report := ComputeProfitLoss(transactions, time.March, 2024)
	assert.True(t, report.TotalIncome.Equal(decimal.NewFromInt(100)))

	april := ComputeProfitLoss(transactions, time.April, 2024)
	assert.True(t, april.TotalIncome.IsZero())
}
