// Package export renders journal and ledger views as downloadable files.
package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/financeflow/backend/internal/application/adapter"
	"github.com/financeflow/backend/internal/application/usecase/payroll"
	"github.com/financeflow/backend/internal/domain/entity"
)

// ExportPayrollInput represents the input for the payroll export.
type ExportPayrollInput struct {
	Filter payroll.ListFilter
}

// ExportPayrollOutput represents the output of the payroll export.
type ExportPayrollOutput struct {
	File File
}

// ExportPayrollUseCase renders the filtered payroll ledger as a CSV document.
type ExportPayrollUseCase struct {
	payrollRepo  adapter.PayrollRepository
	settingsRepo adapter.SettingsRepository
}

// NewExportPayrollUseCase creates a new ExportPayrollUseCase instance.
func NewExportPayrollUseCase(payrollRepo adapter.PayrollRepository, settingsRepo adapter.SettingsRepository) *ExportPayrollUseCase {
	return &ExportPayrollUseCase{
		payrollRepo:  payrollRepo,
		settingsRepo: settingsRepo,
	}
}

// Execute renders the export. Readable by every role.
func (uc *ExportPayrollUseCase) Execute(ctx context.Context, input ExportPayrollInput) (*ExportPayrollOutput, error) {
	entries, err := uc.payrollRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load payroll entries: %w", err)
	}
	profile, err := uc.settingsRepo.GetFoundationProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load foundation profile: %w", err)
	}

	content, err := RenderPayrollCSV(payroll.FilterEntries(entries, input.Filter), profile)
	if err != nil {
		return nil, err
	}

	return &ExportPayrollOutput{File: File{
		Name:        "rekap-penggajian.csv",
		ContentType: "text/csv",
		Content:     content,
	}}, nil
}

// RenderPayrollCSV writes the payroll view as CSV with a totals row.
func RenderPayrollCSV(entries []*entity.PayrollEntry, profile entity.FoundationProfile) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := [][]string{
		{profile.Name},
		{profile.Address},
		{"Rekapitulasi Penggajian"},
		{},
		{"No", "Periode", "Nama", "NIK", "Jabatan", "Unit", "Status", "Gaji Pokok", "Bruto", "Potongan", "THP (Netto)"},
	}
	for _, row := range header {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write csv header: %w", err)
		}
	}

	summary := payroll.Summarize(entries)
	for i, entry := range entries {
		row := []string{
			strconv.Itoa(i + 1),
			entry.Period,
			entry.Employee.Name,
			entry.Employee.NIK,
			entry.Employee.Position,
			entry.Employee.Unit,
			string(entry.Employee.Status),
			entry.Income.Basic.String(),
			entry.Gross().String(),
			entry.Deduction.Total().String(),
			entry.Net().String(),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	totals := []string{"", "", "", "", "", "", "Total", "", summary.TotalGross.String(), "", summary.TotalNet.String()}
	if err := w.Write(totals); err != nil {
		return nil, fmt.Errorf("failed to write csv totals: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
