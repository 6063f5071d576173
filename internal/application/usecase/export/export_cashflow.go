// Package export renders journal and ledger views as downloadable files.
package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/financeflow/backend/internal/application/adapter"
	"github.com/financeflow/backend/internal/application/usecase/transaction"
	"github.com/financeflow/backend/internal/domain/entity"
)

// File is a rendered export ready for download.
type File struct {
	Name        string
	ContentType string
	Content     []byte
}

// ExportCashflowInput represents the input for the cash-flow export.
type ExportCashflowInput struct {
	Filter transaction.ListFilter
}

// ExportCashflowOutput represents the output of the cash-flow export.
type ExportCashflowOutput struct {
	File File
}

// ExportCashflowUseCase renders the filtered journal as a CSV document with a
// running balance column.
type ExportCashflowUseCase struct {
	transactionRepo adapter.TransactionRepository
	settingsRepo    adapter.SettingsRepository
}

// NewExportCashflowUseCase creates a new ExportCashflowUseCase instance.
func NewExportCashflowUseCase(transactionRepo adapter.TransactionRepository, settingsRepo adapter.SettingsRepository) *ExportCashflowUseCase {
	return &ExportCashflowUseCase{
		transactionRepo: transactionRepo,
		settingsRepo:    settingsRepo,
	}
}

// Execute renders the export. Readable by every role.
func (uc *ExportCashflowUseCase) Execute(ctx context.Context, input ExportCashflowInput) (*ExportCashflowOutput, error) {
	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	profile, err := uc.settingsRepo.GetFoundationProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load foundation profile: %w", err)
	}

	view := transaction.FilterTransactions(transactions, input.Filter)
	transaction.SortTransactions(view, input.Filter.SortKey, input.Filter.SortDirection)

	content, err := RenderCashflowCSV(view, profile)
	if err != nil {
		return nil, err
	}

	return &ExportCashflowOutput{File: File{
		Name:        "laporan-arus-kas.csv",
		ContentType: "text/csv",
		Content:     content,
	}}, nil
}

// RenderCashflowCSV writes the transaction view as CSV. The running balance is
// the cumulative signed amount in list order, recomputed here rather than by
// the summary fold.
func RenderCashflowCSV(transactions []*entity.Transaction, profile entity.FoundationProfile) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := [][]string{
		{profile.Name},
		{profile.Address},
		{"Laporan Arus Kas"},
		{},
		{"No", "Kode", "Tanggal", "Deskripsi", "Pemasukan", "Pengeluaran", "Saldo Berjalan", "Keterangan"},
	}
	for _, row := range header {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write csv header: %w", err)
		}
	}

	balance := decimal.Zero
	for i, txn := range transactions {
		income, expense := "", ""
		if txn.Type == entity.TransactionTypeIncome {
			income = txn.Amount.String()
		} else {
			expense = txn.Amount.String()
		}
		balance = balance.Add(txn.SignedAmount())

		row := []string{
			strconv.Itoa(i + 1),
			txn.Code,
			txn.Date.Format("2006-01-02"),
			txn.Description,
			income,
			expense,
			balance.String(),
			txn.Remarks,
		}
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
