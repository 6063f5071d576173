// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/financeflow/backend/internal/application/usecase/report"
	"github.com/financeflow/backend/internal/integration/entrypoint/dto"
)

// ReportController handles reporting endpoints.
type ReportController struct {
	summaryUseCase    *report.GetSummaryUseCase
	profitLossUseCase *report.GetProfitLossUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(summaryUseCase *report.GetSummaryUseCase, profitLossUseCase *report.GetProfitLossUseCase) *ReportController {
	return &ReportController{
		summaryUseCase:    summaryUseCase,
		profitLossUseCase: profitLossUseCase,
	}
}

// Summary handles GET /reports/summary requests.
func (c *ReportController) Summary(ctx *gin.Context) {
	output, err := c.summaryUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output.Summary))
}

// ProfitLoss handles GET /reports/profit-loss requests. Month and year
// default to the current calendar month.
func (c *ReportController) ProfitLoss(ctx *gin.Context) {
	month, year, err := monthYearFromQuery(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	output, err := c.profitLossUseCase.Execute(ctx.Request.Context(), report.GetProfitLossInput{
		Month: month,
		Year:  year,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToProfitLossResponse(output.Report))
}

// monthYearFromQuery parses the month/year query parameters shared with the
// profit & loss export.
func monthYearFromQuery(ctx *gin.Context) (time.Month, int, error) {
	now := time.Now()

	month := now.Month()
	if raw := ctx.Query("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 12 {
			return 0, 0, errInvalidMonth
		}
		month = time.Month(parsed)
	}

	year := now.Year()
	if raw := ctx.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return 0, 0, errInvalidYear
		}
		year = parsed
	}

	return month, year, nil
}

var (
	errInvalidMonth = queryError("month must be a number between 1 and 12")
	errInvalidYear  = queryError("year must be a positive number")
)

type queryError string

func (e queryError) Error() string { return string(e) }
