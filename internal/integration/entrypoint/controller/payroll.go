// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/financeflow/backend/internal/application/usecase/payroll"
	"github.com/financeflow/backend/internal/domain/entity"
	domainerror "github.com/financeflow/backend/internal/domain/error"
	"github.com/financeflow/backend/internal/integration/entrypoint/dto"
	"github.com/financeflow/backend/internal/integration/entrypoint/middleware"
)

// PayrollController handles payroll ledger endpoints.
type PayrollController struct {
	listUseCase    *payroll.ListPayrollEntriesUseCase
	createUseCase  *payroll.CreatePayrollEntryUseCase
	updateUseCase  *payroll.UpdatePayrollEntryUseCase
	deleteUseCase  *payroll.DeletePayrollEntryUseCase
	summaryUseCase *payroll.GetPayrollSummaryUseCase
	payslipUseCase *payroll.EmailPayslipUseCase
}

// NewPayrollController creates a new payroll controller instance.
func NewPayrollController(
	listUseCase *payroll.ListPayrollEntriesUseCase,
	createUseCase *payroll.CreatePayrollEntryUseCase,
	updateUseCase *payroll.UpdatePayrollEntryUseCase,
	deleteUseCase *payroll.DeletePayrollEntryUseCase,
	summaryUseCase *payroll.GetPayrollSummaryUseCase,
	payslipUseCase *payroll.EmailPayslipUseCase,
) *PayrollController {
	return &PayrollController{
		listUseCase:    listUseCase,
		createUseCase:  createUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		summaryUseCase: summaryUseCase,
		payslipUseCase: payslipUseCase,
	}
}

// payrollFilterFromQuery parses the listing query parameters shared with the
// summary and export endpoints.
func payrollFilterFromQuery(ctx *gin.Context) payroll.ListFilter {
	return payroll.ListFilter{
		SearchTerm: ctx.Query("search"),
		Period:     ctx.DefaultQuery("period", payroll.FilterAllPeriods),
	}
}

// List handles GET /payroll requests.
func (c *PayrollController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context(), payroll.ListPayrollEntriesInput{
		Filter: payrollFilterFromQuery(ctx),
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToPayrollListResponse(output.Entries))
}

// Create handles POST /payroll requests.
func (c *PayrollController) Create(ctx *gin.Context) {
	actor, ok := middleware.GetActorFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.PayrollEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingEmployeeName),
		})
		return
	}

	income, deduction, err := parsePayrollComponents(req)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), payroll.CreatePayrollEntryInput{
		Actor:     actor,
		Period:    req.Period,
		Employee:  employeeFromRequest(req.Employee),
		Income:    income,
		Deduction: deduction,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPayrollEntryResponse(output.Entry))
}

// Update handles PUT /payroll/:id requests.
func (c *PayrollController) Update(ctx *gin.Context) {
	actor, ok := middleware.GetActorFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid payroll entry id"})
		return
	}

	var req dto.PayrollEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingEmployeeName),
		})
		return
	}

	income, deduction, err := parsePayrollComponents(req)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), payroll.UpdatePayrollEntryInput{
		Actor:     actor,
		ID:        id,
		Period:    req.Period,
		Employee:  employeeFromRequest(req.Employee),
		Income:    income,
		Deduction: deduction,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPayrollEntryResponse(output.Entry))
}

// Delete handles DELETE /payroll/:id requests.
func (c *PayrollController) Delete(ctx *gin.Context) {
	actor, ok := middleware.GetActorFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid payroll entry id"})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), payroll.DeletePayrollEntryInput{
		Actor: actor,
		ID:    id,
	}); err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Payroll entry deleted"})
}

// Summary handles GET /payroll/summary requests.
func (c *PayrollController) Summary(ctx *gin.Context) {
	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), payroll.GetPayrollSummaryInput{
		Filter: payrollFilterFromQuery(ctx),
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.PayrollSummaryResponse{
		TotalGross: output.Summary.TotalGross.String(),
		TotalNet:   output.Summary.TotalNet.String(),
		Entries:    output.Summary.Entries,
	})
}

// EmailPayslip handles POST /payroll/:id/payslip/email requests.
func (c *PayrollController) EmailPayslip(ctx *gin.Context) {
	actor, ok := middleware.GetActorFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid payroll entry id"})
		return
	}

	var req dto.EmailPayslipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	if err := c.payslipUseCase.Execute(ctx.Request.Context(), payroll.EmailPayslipInput{
		Actor:   actor,
		EntryID: id,
		To:      req.To,
	}); err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Payslip sent"})
}

// employeeFromRequest maps the employee request block to its entity.
func employeeFromRequest(req dto.EmployeeRequest) entity.Employee {
	return entity.Employee{
		Name:     req.Name,
		NIK:      req.NIK,
		Position: req.Position,
		Unit:     req.Unit,
		Status:   entity.EmploymentStatus(req.Status),
	}
}

// parsePayrollComponents parses every wire amount of a payroll request.
// Missing components default to zero.
func parsePayrollComponents(req dto.PayrollEntryRequest) (entity.IncomeComponents, entity.DeductionComponents, error) {
	var income entity.IncomeComponents
	var deduction entity.DeductionComponents
	var err error

	fields := []struct {
		raw string
		dst *decimal.Decimal
	}{
		{req.Income.Basic, &income.Basic},
		{req.Income.Position, &income.Position},
		{req.Income.Transport, &income.Transport},
		{req.Income.Meal, &income.Meal},
		{req.Income.Family, &income.Family},
		{req.Income.Performance, &income.Performance},
		{req.Income.SpecialTask, &income.SpecialTask},
		{req.Income.Overtime, &income.Overtime},
		{req.Income.Bonus, &income.Bonus},
		{req.Deduction.BPJSHealth, &deduction.BPJSHealth},
		{req.Deduction.BPJSEmployment, &deduction.BPJSEmployment},
		{req.Deduction.TaxPPh21, &deduction.TaxPPh21},
		{req.Deduction.Absence, &deduction.Absence},
		{req.Deduction.Loan, &deduction.Loan},
		{req.Deduction.Infaq, &deduction.Infaq},
		{req.Deduction.Others, &deduction.Others},
	}
	for _, field := range fields {
		if *field.dst, err = parseComponent(field.raw); err != nil {
			return entity.IncomeComponents{}, entity.DeductionComponents{}, err
		}
	}
	return income, deduction, nil
}

// parseComponent parses one wire amount, treating the empty string as zero.
func parseComponent(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, domainerror.NewPayrollError(
			domainerror.ErrCodeNegativePayrollComponent,
			"salary components must be decimal numbers",
			domainerror.ErrNegativePayrollComponent,
		)
	}
	return amount, nil
}
