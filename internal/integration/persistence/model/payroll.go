// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/financeflow/backend/internal/domain/entity"
)

// PayrollEntryModel represents the payroll_entries table in the database.
// Components are flattened into columns; the fixed component set makes a
// jsonb document unnecessary.
type PayrollEntryModel struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Period string    `gorm:"type:varchar(50);not null;index"`

	EmployeeName     string `gorm:"type:varchar(100);not null;index"`
	EmployeeNIK      string `gorm:"type:varchar(30);not null"`
	EmployeePosition string `gorm:"type:varchar(100);not null"`
	EmployeeUnit     string `gorm:"type:varchar(100)"`
	EmployeeStatus   string `gorm:"type:varchar(20);not null"`

	IncomeBasic       decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	IncomePosition    decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	IncomeTransport   decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	IncomeMeal        decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	IncomeFamily      decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	IncomePerformance decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	IncomeSpecialTask decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	IncomeOvertime    decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	IncomeBonus       decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`

	DeductionBPJSHealth     decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	DeductionBPJSEmployment decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	DeductionTaxPPh21       decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	DeductionAbsence        decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	DeductionLoan           decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	DeductionInfaq          decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	DeductionOthers         decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the PayrollEntryModel.
func (PayrollEntryModel) TableName() string {
	return "payroll_entries"
}

// ToEntity converts a PayrollEntryModel to a domain PayrollEntry entity.
func (m *PayrollEntryModel) ToEntity() *entity.PayrollEntry {
	return &entity.PayrollEntry{
		ID:     m.ID,
		Period: m.Period,
		Employee: entity.Employee{
			Name:     m.EmployeeName,
			NIK:      m.EmployeeNIK,
			Position: m.EmployeePosition,
			Unit:     m.EmployeeUnit,
			Status:   entity.EmploymentStatus(m.EmployeeStatus),
		},
		Income: entity.IncomeComponents{
			Basic:       m.IncomeBasic,
			Position:    m.IncomePosition,
			Transport:   m.IncomeTransport,
			Meal:        m.IncomeMeal,
			Family:      m.IncomeFamily,
			Performance: m.IncomePerformance,
			SpecialTask: m.IncomeSpecialTask,
			Overtime:    m.IncomeOvertime,
			Bonus:       m.IncomeBonus,
		},
		Deduction: entity.DeductionComponents{
			BPJSHealth:     m.DeductionBPJSHealth,
			BPJSEmployment: m.DeductionBPJSEmployment,
			TaxPPh21:       m.DeductionTaxPPh21,
			Absence:        m.DeductionAbsence,
			Loan:           m.DeductionLoan,
			Infaq:          m.DeductionInfaq,
			Others:         m.DeductionOthers,
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// PayrollEntryFromEntity creates a PayrollEntryModel from a domain PayrollEntry entity.
func PayrollEntryFromEntity(entry *entity.PayrollEntry) *PayrollEntryModel {
	return &PayrollEntryModel{
		ID:     entry.ID,
		Period: entry.Period,

		EmployeeName:     entry.Employee.Name,
		EmployeeNIK:      entry.Employee.NIK,
		EmployeePosition: entry.Employee.Position,
		EmployeeUnit:     entry.Employee.Unit,
		EmployeeStatus:   string(entry.Employee.Status),

		IncomeBasic:       entry.Income.Basic,
		IncomePosition:    entry.Income.Position,
		IncomeTransport:   entry.Income.Transport,
		IncomeMeal:        entry.Income.Meal,
		IncomeFamily:      entry.Income.Family,
		IncomePerformance: entry.Income.Performance,
		IncomeSpecialTask: entry.Income.SpecialTask,
		IncomeOvertime:    entry.Income.Overtime,
		IncomeBonus:       entry.Income.Bonus,

		DeductionBPJSHealth:     entry.Deduction.BPJSHealth,
		DeductionBPJSEmployment: entry.Deduction.BPJSEmployment,
		DeductionTaxPPh21:       entry.Deduction.TaxPPh21,
		DeductionAbsence:        entry.Deduction.Absence,
		DeductionLoan:           entry.Deduction.Loan,
		DeductionInfaq:          entry.Deduction.Infaq,
		DeductionOthers:         entry.Deduction.Others,

		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}
}
