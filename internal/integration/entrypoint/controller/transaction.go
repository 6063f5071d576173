// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/financeflow/backend/internal/application/usecase/recurrence"
	"github.com/financeflow/backend/internal/application/usecase/transaction"
	"github.com/financeflow/backend/internal/domain/entity"
	domainerror "github.com/financeflow/backend/internal/domain/error"
	"github.com/financeflow/backend/internal/integration/entrypoint/dto"
	"github.com/financeflow/backend/internal/integration/entrypoint/middleware"
)

// TransactionController handles cash-flow journal endpoints.
type TransactionController struct {
	listUseCase        *transaction.ListTransactionsUseCase
	getUseCase         *transaction.GetTransactionUseCase
	createUseCase      *transaction.CreateTransactionUseCase
	updateUseCase      *transaction.UpdateTransactionUseCase
	deleteUseCase      *transaction.DeleteTransactionUseCase
	addCommentUseCase  *transaction.AddCommentUseCase
	materializeUseCase *recurrence.MaterializeUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	getUseCase *transaction.GetTransactionUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
	addCommentUseCase *transaction.AddCommentUseCase,
	materializeUseCase *recurrence.MaterializeUseCase,
) *TransactionController {
	return &TransactionController{
		listUseCase:        listUseCase,
		getUseCase:         getUseCase,
		createUseCase:      createUseCase,
		updateUseCase:      updateUseCase,
		deleteUseCase:      deleteUseCase,
		addCommentUseCase:  addCommentUseCase,
		materializeUseCase: materializeUseCase,
	}
}

// listFilterFromQuery parses the listing query parameters shared with exports.
func listFilterFromQuery(ctx *gin.Context) transaction.ListFilter {
	return transaction.ListFilter{
		SearchTerm:    ctx.Query("search"),
		Type:          ctx.DefaultQuery("type", transaction.FilterAll),
		Category:      ctx.DefaultQuery("category", transaction.FilterAll),
		SortKey:       transaction.SortKey(ctx.Query("sort_key")),
		SortDirection: transaction.SortDirection(ctx.Query("sort_dir")),
	}
}

// List handles GET /transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context(), transaction.ListTransactionsInput{
		Filter: listFilterFromQuery(ctx),
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output.Transactions))
}

// Get handles GET /transactions/:id requests.
func (c *TransactionController) Get(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid transaction id"})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), transaction.GetTransactionInput{ID: id})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	actor, ok := middleware.GetActorFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingTransactionFields),
		})
		return
	}

	date, amount, err := parseDateAndAmount(req.Date, req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), transaction.CreateTransactionInput{
		Actor:        actor,
		Date:         date,
		Description:  req.Description,
		Type:         entity.TransactionType(req.Type),
		MainCategory: req.MainCategory,
		SubCategory:  req.SubCategory,
		Amount:       amount,
		Remarks:      req.Remarks,
		IsRecurring:  req.IsRecurring,
		Frequency:    entity.Frequency(req.Frequency),
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// Update handles PUT /transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	actor, ok := middleware.GetActorFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid transaction id"})
		return
	}

	var req dto.UpdateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingTransactionFields),
		})
		return
	}

	date, amount, err := parseDateAndAmount(req.Date, req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), transaction.UpdateTransactionInput{
		Actor:        actor,
		ID:           id,
		Date:         date,
		Description:  req.Description,
		Type:         entity.TransactionType(req.Type),
		MainCategory: req.MainCategory,
		SubCategory:  req.SubCategory,
		Amount:       amount,
		Remarks:      req.Remarks,
		IsRecurring:  req.IsRecurring,
		Frequency:    entity.Frequency(req.Frequency),
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	actor, ok := middleware.GetActorFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid transaction id"})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{
		Actor: actor,
		ID:    id,
	}); err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Transaction deleted"})
}

// AddComment handles POST /transactions/:id/comments requests.
func (c *TransactionController) AddComment(ctx *gin.Context) {
	actor, ok := middleware.GetActorFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid transaction id"})
		return
	}

	var req dto.AddCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeEmptyComment),
		})
		return
	}

	output, err := c.addCommentUseCase.Execute(ctx.Request.Context(), transaction.AddCommentInput{
		Actor:         actor,
		TransactionID: id,
		Text:          req.Text,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCommentResponse(output.Comment))
}

// RunRecurrence handles POST /transactions/recurrence/run requests.
func (c *TransactionController) RunRecurrence(ctx *gin.Context) {
	output, err := c.materializeUseCase.Execute(ctx.Request.Context(), recurrence.MaterializeInput{})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	response := dto.RecurrenceRunResponse{
		Generated:         make([]dto.TransactionResponse, len(output.Generated)),
		TemplatesAdvanced: output.TemplatesAdvanced,
	}
	for i, txn := range output.Generated {
		response.Generated[i] = dto.ToTransactionResponse(txn)
	}
	ctx.JSON(http.StatusOK, response)
}

// parseDateAndAmount parses the wire representations shared by create and
// update requests.
func parseDateAndAmount(dateStr, amountStr string) (time.Time, decimal.Decimal, error) {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, decimal.Decimal{}, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"date must be formatted YYYY-MM-DD",
			err,
		)
	}
	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return time.Time{}, decimal.Decimal{}, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be a decimal number",
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	return date, amount, nil
}
