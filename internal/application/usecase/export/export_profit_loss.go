// Package export renders journal and ledger views as downloadable files.
package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"sort"
	"time"

	"github.com/financeflow/backend/internal/application/adapter"
	"github.com/financeflow/backend/internal/application/usecase/report"
	"github.com/financeflow/backend/internal/domain/entity"
)

// ExportProfitLossInput represents the input for the profit & loss export.
type ExportProfitLossInput struct {
	Month time.Month
	Year  int
}

// ExportProfitLossOutput represents the output of the profit & loss export.
type ExportProfitLossOutput struct {
	File File
}

// ExportProfitLossUseCase renders a monthly profit & loss report as CSV.
type ExportProfitLossUseCase struct {
	transactionRepo adapter.TransactionRepository
	settingsRepo    adapter.SettingsRepository
}

// NewExportProfitLossUseCase creates a new ExportProfitLossUseCase instance.
func NewExportProfitLossUseCase(transactionRepo adapter.TransactionRepository, settingsRepo adapter.SettingsRepository) *ExportProfitLossUseCase {
	return &ExportProfitLossUseCase{
		transactionRepo: transactionRepo,
		settingsRepo:    settingsRepo,
	}
}

// Execute renders the export. Readable by every role.
func (uc *ExportProfitLossUseCase) Execute(ctx context.Context, input ExportProfitLossInput) (*ExportProfitLossOutput, error) {
	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	profile, err := uc.settingsRepo.GetFoundationProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load foundation profile: %w", err)
	}

	pl := report.ComputeProfitLoss(transactions, input.Month, input.Year)
	content, err := RenderProfitLossCSV(pl, profile)
	if err != nil {
		return nil, err
	}

	return &ExportProfitLossOutput{File: File{
		Name:        fmt.Sprintf("laba-rugi-%04d-%02d.csv", input.Year, int(input.Month)),
		ContentType: "text/csv",
		Content:     content,
	}}, nil
}

// RenderProfitLossCSV writes the report with an income section, an expense
// section, their totals and a net line. Categories print in sorted order so
// the document is deterministic.
func RenderProfitLossCSV(pl report.ProfitLoss, profile entity.FoundationProfile) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	rows := [][]string{
		{profile.Name},
		{profile.Address},
		{fmt.Sprintf("Laporan Laba Rugi %s %d", pl.Month, pl.Year)},
		{},
		{"PENDAPATAN"},
	}
	for _, category := range sortedKeys(pl.Income) {
		rows = append(rows, []string{"", category, pl.Income[category].String()})
	}
	rows = append(rows,
		[]string{"Total Pendapatan", "", pl.TotalIncome.String()},
		[]string{},
		[]string{"BEBAN"},
	)
	for _, category := range sortedKeys(pl.Expense) {
		rows = append(rows, []string{"", category, pl.Expense[category].String()})
	}
	rows = append(rows,
		[]string{"Total Beban", "", pl.TotalExpense.String()},
		[]string{},
		[]string{"Surplus (Defisit)", "", pl.Net.String()},
	)

	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
