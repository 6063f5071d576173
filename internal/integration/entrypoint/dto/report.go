// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/financeflow/backend/internal/application/usecase/report"
)

// SummaryResponse represents the journal summary response.
type SummaryResponse struct {
	Income  string `json:"income"`
	Expense string `json:"expense"`
	Balance string `json:"balance"`
}

// ProfitLossResponse represents the monthly profit & loss response.
type ProfitLossResponse struct {
	Month        int               `json:"month"`
	Year         int               `json:"year"`
	Income       map[string]string `json:"income"`
	Expense      map[string]string `json:"expense"`
	TotalIncome  string            `json:"total_income"`
	TotalExpense string            `json:"total_expense"`
	Net          string            `json:"net"`
}

// ToSummaryResponse converts a report summary to a response DTO.
func ToSummaryResponse(summary report.Summary) SummaryResponse {
	return SummaryResponse{
		Income:  summary.Income.String(),
		Expense: summary.Expense.String(),
		Balance: summary.Balance.String(),
	}
}

// ToProfitLossResponse converts a profit & loss report to a response DTO.
func ToProfitLossResponse(pl report.ProfitLoss) ProfitLossResponse {
	response := ProfitLossResponse{
		Month:        int(pl.Month),
		Year:         pl.Year,
		Income:       make(map[string]string, len(pl.Income)),
		Expense:      make(map[string]string, len(pl.Expense)),
		TotalIncome:  pl.TotalIncome.String(),
		TotalExpense: pl.TotalExpense.String(),
		Net:          pl.Net.String(),
	}
	for category, amount := range pl.Income {
		response.Income[category] = amount.String()
	}
	for category, amount := range pl.Expense {
		response.Expense[category] = amount.String()
	}
	return response
}
