// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/financeflow/backend/internal/domain/entity"
)

// EmployeeRequest represents the employee block of a payroll request.
type EmployeeRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	NIK      string `json:"nik" binding:"max=30"`
	Position string `json:"position" binding:"max=100"`
	Unit     string `json:"unit" binding:"max=100"`
	Status   string `json:"status" binding:"required,oneof=Tetap Kontrak Honorer"`
}

// IncomeComponentsRequest represents the earning components of a payroll request.
type IncomeComponentsRequest struct {
	Basic       string `json:"basic"`
	Position    string `json:"position"`
	Transport   string `json:"transport"`
	Meal        string `json:"meal"`
	Family      string `json:"family"`
	Performance string `json:"performance"`
	SpecialTask string `json:"special_task"`
	Overtime    string `json:"overtime"`
	Bonus       string `json:"bonus"`
}

// DeductionComponentsRequest represents the deduction components of a payroll request.
type DeductionComponentsRequest struct {
	BPJSHealth     string `json:"bpjs_health"`
	BPJSEmployment string `json:"bpjs_employment"`
	TaxPPh21       string `json:"tax_pph21"`
	Absence        string `json:"absence"`
	Loan           string `json:"loan"`
	Infaq          string `json:"infaq"`
	Others         string `json:"others"`
}

// PayrollEntryRequest represents the request body for payroll entry create/update.
type PayrollEntryRequest struct {
	Period    string                     `json:"period" binding:"required,min=1,max=50"`
	Employee  EmployeeRequest            `json:"employee" binding:"required"`
	Income    IncomeComponentsRequest    `json:"income"`
	Deduction DeductionComponentsRequest `json:"deduction"`
}

// EmailPayslipRequest represents the request body for sending a payslip.
type EmailPayslipRequest struct {
	To string `json:"to" binding:"required,email"`
}

// PayrollEntryResponse represents a payroll entry in API responses.
type PayrollEntryResponse struct {
	ID        string            `json:"id"`
	Period    string            `json:"period"`
	Employee  EmployeeResponse  `json:"employee"`
	Income    map[string]string `json:"income"`
	Deduction map[string]string `json:"deduction"`
	Gross     string            `json:"gross"`
	Net       string            `json:"net"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// EmployeeResponse represents the employee block in API responses.
type EmployeeResponse struct {
	Name     string `json:"name"`
	NIK      string `json:"nik"`
	Position string `json:"position"`
	Unit     string `json:"unit"`
	Status   string `json:"status"`
}

// PayrollListResponse represents the payroll listing response.
type PayrollListResponse struct {
	Entries []PayrollEntryResponse `json:"entries"`
	Total   int                    `json:"total"`
}

// PayrollSummaryResponse represents the payroll summary response.
type PayrollSummaryResponse struct {
	TotalGross string `json:"total_gross"`
	TotalNet   string `json:"total_net"`
	Entries    int    `json:"entries"`
}

// ToPayrollEntryResponse converts a domain PayrollEntry entity to a response DTO.
func ToPayrollEntryResponse(entry *entity.PayrollEntry) PayrollEntryResponse {
	return PayrollEntryResponse{
		ID:     entry.ID.String(),
		Period: entry.Period,
		Employee: EmployeeResponse{
			Name:     entry.Employee.Name,
			NIK:      entry.Employee.NIK,
			Position: entry.Employee.Position,
			Unit:     entry.Employee.Unit,
			Status:   string(entry.Employee.Status),
		},
		Income: map[string]string{
			"basic":        entry.Income.Basic.String(),
			"position":     entry.Income.Position.String(),
			"transport":    entry.Income.Transport.String(),
			"meal":         entry.Income.Meal.String(),
			"family":       entry.Income.Family.String(),
			"performance":  entry.Income.Performance.String(),
			"special_task": entry.Income.SpecialTask.String(),
			"overtime":     entry.Income.Overtime.String(),
			"bonus":        entry.Income.Bonus.String(),
		},
		Deduction: map[string]string{
			"bpjs_health":     entry.Deduction.BPJSHealth.String(),
			"bpjs_employment": entry.Deduction.BPJSEmployment.String(),
			"tax_pph21":       entry.Deduction.TaxPPh21.String(),
			"absence":         entry.Deduction.Absence.String(),
			"loan":            entry.Deduction.Loan.String(),
			"infaq":           entry.Deduction.Infaq.String(),
			"others":          entry.Deduction.Others.String(),
		},
		Gross:     entry.Gross().String(),
		Net:       entry.Net().String(),
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}
}

// ToPayrollListResponse converts a slice of payroll entries to the listing response.
func ToPayrollListResponse(entries []*entity.PayrollEntry) PayrollListResponse {
	responses := make([]PayrollEntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = ToPayrollEntryResponse(entry)
	}
	return PayrollListResponse{
		Entries: responses,
		Total:   len(responses),
	}
}
