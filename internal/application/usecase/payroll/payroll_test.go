// Package payroll contains payroll ledger use cases.
package payroll

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/financeflow/backend/internal/domain/entity"
)

func sampleEntry() *entity.PayrollEntry {
	return entity.NewPayrollEntry(
		"Maret 2025",
		entity.Employee{
			Name:     "Ahmad Fauzi",
			NIK:      "3171234567890001",
			Position: "Guru",
			Unit:     "SD",
			Status:   entity.EmploymentStatusTetap,
		},
		entity.IncomeComponents{
			Basic:     decimal.NewFromInt(4000000),
			Position:  decimal.NewFromInt(1000000),
			Transport: decimal.NewFromInt(500000),
		},
		entity.DeductionComponents{
			BPJSHealth: decimal.NewFromInt(150000),
			TaxPPh21:   decimal.NewFromInt(200000),
		},
	)
}

func TestPayrollEntry_GrossAndNet(t *testing.T) {
	entry := sampleEntry()

	assert.True(t, entry.Gross().Equal(decimal.NewFromInt(5500000)), "gross = %s", entry.Gross())
	assert.True(t, entry.Net().Equal(decimal.NewFromInt(5150000)), "net = %s", entry.Net())
}

func TestSummarize(t *testing.T) {
	t.Run("empty ledger yields zero totals", func(t *testing.T) {
		summary := Summarize(nil)
		assert.True(t, summary.TotalGross.IsZero())
		assert.True(t, summary.TotalNet.IsZero())
		assert.Equal(t, 0, summary.Entries)
	})

	t.Run("totals sum across entries", func(t *testing.T) {
		summary := Summarize([]*entity.PayrollEntry{sampleEntry(), sampleEntry()})
		assert.True(t, summary.TotalGross.Equal(decimal.NewFromInt(11000000)), "gross = %s", summary.TotalGross)
		assert.True(t, summary.TotalNet.Equal(decimal.NewFromInt(10300000)), "net = %s", summary.TotalNet)
		assert.Equal(t, 2, summary.Entries)
	})
}

func TestFilterEntries(t *testing.T) {
	guru := sampleEntry()
	admin := entity.NewPayrollEntry(
		"April 2025",
		entity.Employee{
			Name:     "Dewi Lestari",
			NIK:      "3171234567890002",
			Position: "Staf Administrasi",
			Unit:     "Yayasan",
			Status:   entity.EmploymentStatusKontrak,
		},
		entity.IncomeComponents{Basic: decimal.NewFromInt(3500000)},
		entity.DeductionComponents{},
	)
	entries := []*entity.PayrollEntry{guru, admin}

	t.Run("search matches name case-insensitively", func(t *testing.T) {
		got := FilterEntries(entries, ListFilter{SearchTerm: "dewi"})
		require.Len(t, got, 1)
		assert.Equal(t, "Dewi Lestari", got[0].Employee.Name)
	})

	t.Run("search matches government id", func(t *testing.T) {
		got := FilterEntries(entries, ListFilter{SearchTerm: "890001"})
		require.Len(t, got, 1)
		assert.Equal(t, "Ahmad Fauzi", got[0].Employee.Name)
	})

	t.Run("search matches position", func(t *testing.T) {
		got := FilterEntries(entries, ListFilter{SearchTerm: "administrasi"})
		require.Len(t, got, 1)
		assert.Equal(t, "Dewi Lestari", got[0].Employee.Name)
	})

	t.Run("period filter is exact", func(t *testing.T) {
		got := FilterEntries(entries, ListFilter{Period: "Maret 2025"})
		require.Len(t, got, 1)
		assert.Equal(t, "Ahmad Fauzi", got[0].Employee.Name)
	})

	t.Run("ALL period is passthrough", func(t *testing.T) {
		got := FilterEntries(entries, ListFilter{Period: FilterAllPeriods})
		assert.Len(t, got, 2)
	})
}

func TestRenderPayslip(t *testing.T) {
	body := RenderPayslip(sampleEntry(), entity.DefaultFoundationProfile())

	assert.Contains(t, body, entity.DefaultFoundationName)
	assert.Contains(t, body, "SLIP GAJI - Maret 2025")
	assert.Contains(t, body, "Ahmad Fauzi")
	assert.Contains(t, body, "Gaji Pokok")
	assert.Contains(t, body, "Rp 4.000.000")
	assert.Contains(t, body, "Pajak (PPh 21)")
	assert.Contains(t, body, "Take Home Pay (THP)")
	assert.Contains(t, body, "Rp 5.150.000")
}

func TestFormatRupiah(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, "0"},
		{500, "500"},
		{5150000, "5.150.000"},
		{1234567890, "1.234.567.890"},
		{-300000, "-300.000"},
	}
	for _, tc := range cases {
		got := FormatRupiah(decimal.NewFromInt(tc.amount))
		if got != tc.want {
			t.Errorf("FormatRupiah(%d) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestValidatePayrollFields(t *testing.T) {
	entry := sampleEntry()

	t.Run("valid entry passes", func(t *testing.T) {
		assert.NoError(t, validatePayrollFields(entry.Period, entry.Employee, entry.Income, entry.Deduction))
	})

	t.Run("blank name rejected", func(t *testing.T) {
		employee := entry.Employee
		employee.Name = "   "
		err := validatePayrollFields(entry.Period, employee, entry.Income, entry.Deduction)
		assert.Error(t, err)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		employee := entry.Employee
		employee.Status = "Magang"
		err := validatePayrollFields(entry.Period, employee, entry.Income, entry.Deduction)
		assert.Error(t, err)
	})

	t.Run("negative component rejected", func(t *testing.T) {
		income := entry.Income
		income.Overtime = decimal.NewFromInt(-1)
		err := validatePayrollFields(entry.Period, entry.Employee, income, entry.Deduction)
		assert.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "non-negative"))
	})
}
