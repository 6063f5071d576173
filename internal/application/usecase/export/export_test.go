// Package export renders journal and ledger views as downloadable files.
package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/financeflow/backend/internal/application/usecase/report"
	"github.com/financeflow/backend/internal/domain/entity"
)

func journalFixture() []*entity.Transaction {
	mk := func(code string, transactionType entity.TransactionType, amount int64, day int) *entity.Transaction {
		return &entity.Transaction{
			ID:           uuid.New(),
			Code:         code,
			Date:         time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC),
			Description:  "entry " + code,
			Type:         transactionType,
			MainCategory: "Pendapatan Operasional",
			Amount:       decimal.NewFromInt(amount),
		}
	}
	return []*entity.Transaction{
		mk("IN-000001", entity.TransactionTypeIncome, 1500, 5),
		mk("EX-000002", entity.TransactionTypeExpense, 300, 10),
		mk("IN-000003", entity.TransactionTypeIncome, 200, 15),
	}
}

func parseCSV(t *testing.T, content []byte) [][]string {
	t.Helper()
	r := csv.NewReader(bytes.NewReader(content))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	require.NoError(t, err)
	return records
}

func TestRenderCashflowCSV_RunningBalance(t *testing.T) {
	content, err := RenderCashflowCSV(journalFixture(), entity.DefaultFoundationProfile())
	require.NoError(t, err)

	records := parseCSV(t, content)
	require.GreaterOrEqual(t, len(records), 7)

	assert.Equal(t, entity.DefaultFoundationName, records[0][0])

	// The reader drops the blank separator line, so the 4 surviving header
	// records precede the rows; running balance is column 6.
	rows := records[4:]
	require.Len(t, rows, 3)
	assert.Equal(t, "1500", rows[0][6])
	assert.Equal(t, "1200", rows[1][6])
	assert.Equal(t, "1400", rows[2][6])
}

func TestRenderCashflowCSV_BalanceEqualsSignedSum(t *testing.T) {
	transactions := journalFixture()
	content, err := RenderCashflowCSV(transactions, entity.DefaultFoundationProfile())
	require.NoError(t, err)

	sum := decimal.Zero
	for _, txn := range transactions {
		sum = sum.Add(txn.SignedAmount())
	}

	records := parseCSV(t, content)
	last := records[len(records)-1]
	assert.Equal(t, sum.String(), last[6], "final running balance must equal the signed sum")
}

func TestRenderCashflowCSV_IncomeExpenseColumns(t *testing.T) {
	content, err := RenderCashflowCSV(journalFixture(), entity.DefaultFoundationProfile())
	require.NoError(t, err)

	rows := parseCSV(t, content)[4:]
	assert.Equal(t, "1500", rows[0][4], "income lands in the Pemasukan column")
	assert.Empty(t, rows[0][5])
	assert.Equal(t, "300", rows[1][5], "expense lands in the Pengeluaran column")
	assert.Empty(t, rows[1][4])
}

func TestRenderPayrollCSV(t *testing.T) {
	entry := entity.NewPayrollEntry(
		"Maret 2025",
		entity.Employee{Name: "Ahmad Fauzi", NIK: "317", Position: "Guru", Unit: "SD", Status: entity.EmploymentStatusTetap},
		entity.IncomeComponents{Basic: decimal.NewFromInt(4000000), Position: decimal.NewFromInt(1500000)},
		entity.DeductionComponents{TaxPPh21: decimal.NewFromInt(350000)},
	)

	content, err := RenderPayrollCSV([]*entity.PayrollEntry{entry}, entity.DefaultFoundationProfile())
	require.NoError(t, err)

	records := parseCSV(t, content)
	rows := records[4:]
	require.Len(t, rows, 2, "one entry row plus totals")

	assert.Equal(t, "Ahmad Fauzi", rows[0][2])
	assert.Equal(t, "4000000", rows[0][7])
	assert.Equal(t, "5500000", rows[0][8])
	assert.Equal(t, "350000", rows[0][9])
	assert.Equal(t, "5150000", rows[0][10])

	totals := rows[1]
	assert.Equal(t, "5500000", totals[8])
	assert.Equal(t, "5150000", totals[10])
}

func TestRenderProfitLossCSV(t *testing.T) {
	pl := report.ComputeProfitLoss(journalFixture(), time.March, 2024)

	content, err := RenderProfitLossCSV(pl, entity.DefaultFoundationProfile())
	require.NoError(t, err)

	text := string(content)
	assert.Contains(t, text, "Laporan Laba Rugi March 2024")
	assert.Contains(t, text, "PENDAPATAN")
	assert.Contains(t, text, "BEBAN")
	assert.Contains(t, text, "Total Pendapatan,,1700")
	assert.Contains(t, text, "Total Beban,,300")
	assert.Contains(t, text, "Surplus (Defisit),,1400")
}
