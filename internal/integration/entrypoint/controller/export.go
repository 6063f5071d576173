// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/financeflow/backend/internal/application/usecase/export"
	"github.com/financeflow/backend/internal/integration/entrypoint/dto"
)

// ExportController handles CSV export endpoints.
type ExportController struct {
	cashflowUseCase   *export.ExportCashflowUseCase
	payrollUseCase    *export.ExportPayrollUseCase
	profitLossUseCase *export.ExportProfitLossUseCase
}

// NewExportController creates a new export controller instance.
func NewExportController(
	cashflowUseCase *export.ExportCashflowUseCase,
	payrollUseCase *export.ExportPayrollUseCase,
	profitLossUseCase *export.ExportProfitLossUseCase,
) *ExportController {
	return &ExportController{
		cashflowUseCase:   cashflowUseCase,
		payrollUseCase:    payrollUseCase,
		profitLossUseCase: profitLossUseCase,
	}
}

// Cashflow handles GET /exports/cashflow.csv requests. The listing query
// parameters apply, so the download matches what the journal view shows.
func (c *ExportController) Cashflow(ctx *gin.Context) {
	output, err := c.cashflowUseCase.Execute(ctx.Request.Context(), export.ExportCashflowInput{
		Filter: listFilterFromQuery(ctx),
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	writeFile(ctx, output.File)
}

// Payroll handles GET /exports/payroll.csv requests.
func (c *ExportController) Payroll(ctx *gin.Context) {
	output, err := c.payrollUseCase.Execute(ctx.Request.Context(), export.ExportPayrollInput{
		Filter: payrollFilterFromQuery(ctx),
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	writeFile(ctx, output.File)
}

// ProfitLoss handles GET /exports/profit-loss.csv requests.
func (c *ExportController) ProfitLoss(ctx *gin.Context) {
	month, year, err := monthYearFromQuery(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	output, err := c.profitLossUseCase.Execute(ctx.Request.Context(), export.ExportProfitLossInput{
		Month: month,
		Year:  year,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	writeFile(ctx, output.File)
}

// writeFile streams a rendered export as an attachment.
func writeFile(ctx *gin.Context, file export.File) {
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	ctx.Data(http.StatusOK, file.ContentType, file.Content)
}
