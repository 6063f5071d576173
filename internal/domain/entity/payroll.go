// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EmploymentStatus represents the employment status of an employee.
type EmploymentStatus string

const (
	EmploymentStatusTetap   EmploymentStatus = "Tetap"
	EmploymentStatusKontrak EmploymentStatus = "Kontrak"
	EmploymentStatusHonorer EmploymentStatus = "Honorer"
)

// Employee holds the employee details embedded in a payroll entry.
type Employee struct {
	Name     string
	NIK      string // government employee id
	Position string
	Unit     string
	Status   EmploymentStatus
}

// IncomeComponents is the fixed set of named earning components.
type IncomeComponents struct {
	Basic       decimal.Decimal
	Position    decimal.Decimal
	Transport   decimal.Decimal
	Meal        decimal.Decimal
	Family      decimal.Decimal
	Performance decimal.Decimal
	SpecialTask decimal.Decimal
	Overtime    decimal.Decimal
	Bonus       decimal.Decimal
}

// Total sums all earning components.
func (c IncomeComponents) Total() decimal.Decimal {
	return c.Basic.
		Add(c.Position).
		Add(c.Transport).
		Add(c.Meal).
		Add(c.Family).
		Add(c.Performance).
		Add(c.SpecialTask).
		Add(c.Overtime).
		Add(c.Bonus)
}

// DeductionComponents is the fixed set of named deduction components.
type DeductionComponents struct {
	BPJSHealth     decimal.Decimal
	BPJSEmployment decimal.Decimal
	TaxPPh21       decimal.Decimal
	Absence        decimal.Decimal
	Loan           decimal.Decimal
	Infaq          decimal.Decimal
	Others         decimal.Decimal
}

// Total sums all deduction components.
func (c DeductionComponents) Total() decimal.Decimal {
	return c.BPJSHealth.
		Add(c.BPJSEmployment).
		Add(c.TaxPPh21).
		Add(c.Absence).
		Add(c.Loan).
		Add(c.Infaq).
		Add(c.Others)
}

// PayrollEntry represents one employee's disbursement for a payroll period.
// Payroll is a parallel ledger: entries are never reconciled into the
// cash-flow journal automatically.
type PayrollEntry struct {
	ID        uuid.UUID
	Period    string // free-form label, e.g. "Maret 2025"
	Employee  Employee
	Income    IncomeComponents
	Deduction DeductionComponents
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewPayrollEntry creates a new PayrollEntry entity.
func NewPayrollEntry(period string, employee Employee, income IncomeComponents, deduction DeductionComponents) *PayrollEntry {
	now := time.Now().UTC()
	return &PayrollEntry{
		ID:        uuid.New(),
		Period:    period,
		Employee:  employee,
		Income:    income,
		Deduction: deduction,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Gross returns the sum of all income components.
func (e *PayrollEntry) Gross() decimal.Decimal {
	return e.Income.Total()
}

// Net returns gross minus the sum of all deduction components (take home pay).
func (e *PayrollEntry) Net() decimal.Decimal {
	return e.Gross().Sub(e.Deduction.Total())
}
