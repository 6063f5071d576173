// Package payroll contains payroll ledger use cases.
package payroll

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/financeflow/backend/internal/application/adapter"
	"github.com/financeflow/backend/internal/domain/entity"
	domainerror "github.com/financeflow/backend/internal/domain/error"
)

// EmailPayslipInput represents the input for sending a payslip by email.
type EmailPayslipInput struct {
	Actor   entity.Actor
	EntryID uuid.UUID
	To      string
}

// EmailPayslipUseCase renders a payslip for one payroll entry and delivers it
// by email.
type EmailPayslipUseCase struct {
	payrollRepo  adapter.PayrollRepository
	settingsRepo adapter.SettingsRepository
	emailSender  adapter.EmailSender
}

// NewEmailPayslipUseCase creates a new EmailPayslipUseCase instance.
func NewEmailPayslipUseCase(
	payrollRepo adapter.PayrollRepository,
	settingsRepo adapter.SettingsRepository,
	emailSender adapter.EmailSender,
) *EmailPayslipUseCase {
	return &EmailPayslipUseCase{
		payrollRepo:  payrollRepo,
		settingsRepo: settingsRepo,
		emailSender:  emailSender,
	}
}

// Execute renders and sends the payslip. Requires the Editor role.
func (uc *EmailPayslipUseCase) Execute(ctx context.Context, input EmailPayslipInput) error {
	if !input.Actor.Role.AtLeast(entity.RoleEditor) {
		return domainerror.NewPermissionDenied("email payslip")
	}
	if !uc.emailSender.IsConfigured() {
		return fmt.Errorf("email delivery is not configured")
	}

	entry, err := uc.payrollRepo.FindByID(ctx, input.EntryID)
	if err != nil {
		return err
	}

	profile, err := uc.settingsRepo.GetFoundationProfile(ctx)
	if err != nil {
		return fmt.Errorf("failed to load foundation profile: %w", err)
	}

	msg := adapter.EmailMessage{
		To:      input.To,
		Subject: fmt.Sprintf("Slip Gaji %s - %s", entry.Period, entry.Employee.Name),
		Body:    RenderPayslip(entry, profile),
	}
	if err := uc.emailSender.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send payslip: %w", err)
	}
	return nil
}

// RenderPayslip produces the plain-text payslip document for one entry.
func RenderPayslip(entry *entity.PayrollEntry, profile entity.FoundationProfile) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n%s\n\n", profile.Name, profile.Address)
	fmt.Fprintf(&b, "SLIP GAJI - %s\n\n", entry.Period)
	fmt.Fprintf(&b, "Nama      : %s\n", entry.Employee.Name)
	fmt.Fprintf(&b, "NIK       : %s\n", entry.Employee.NIK)
	fmt.Fprintf(&b, "Jabatan   : %s\n", entry.Employee.Position)
	fmt.Fprintf(&b, "Unit      : %s\n", entry.Employee.Unit)
	fmt.Fprintf(&b, "Status    : %s\n\n", entry.Employee.Status)

	b.WriteString("PENDAPATAN\n")
	writePayslipLine(&b, "Gaji Pokok", entry.Income.Basic)
	writePayslipLine(&b, "Tunjangan Jabatan", entry.Income.Position)
	writePayslipLine(&b, "Logistik / Transport", entry.Income.Transport)
	writePayslipLine(&b, "Uang Makan", entry.Income.Meal)
	writePayslipLine(&b, "Tunjangan Keluarga", entry.Income.Family)
	writePayslipLine(&b, "Tunjangan Kinerja", entry.Income.Performance)
	writePayslipLine(&b, "Tugas Khusus", entry.Income.SpecialTask)
	writePayslipLine(&b, "Lembur", entry.Income.Overtime)
	writePayslipLine(&b, "Bonus / THR", entry.Income.Bonus)
	writePayslipLine(&b, "Total Bruto", entry.Gross())

	b.WriteString("\nPOTONGAN\n")
	writePayslipLine(&b, "BPJS Kesehatan", entry.Deduction.BPJSHealth)
	writePayslipLine(&b, "BPJS Ketenagakerjaan", entry.Deduction.BPJSEmployment)
	writePayslipLine(&b, "Pajak (PPh 21)", entry.Deduction.TaxPPh21)
	writePayslipLine(&b, "Potongan Absensi", entry.Deduction.Absence)
	writePayslipLine(&b, "Cicilan / Pinjaman", entry.Deduction.Loan)
	writePayslipLine(&b, "Infaq", entry.Deduction.Infaq)
	writePayslipLine(&b, "Potongan Lainnya", entry.Deduction.Others)
	writePayslipLine(&b, "Total Potongan", entry.Deduction.Total())

	b.WriteString("\n")
	writePayslipLine(&b, "Take Home Pay (THP)", entry.Net())

	return b.String()
}

func writePayslipLine(b *strings.Builder, label string, amount decimal.Decimal) {
	fmt.Fprintf(b, "  %-24s Rp %s\n", label, FormatRupiah(amount))
}

// FormatRupiah renders an amount with Indonesian thousand separators,
// e.g. 5150000 -> "5.150.000".
func FormatRupiah(amount decimal.Decimal) string {
	negative := amount.IsNegative()
	digits := amount.Abs().Round(0).String()

	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	formatted := strings.Join(groups, ".")
	if negative {
		return "-" + formatted
	}
	return formatted
}
