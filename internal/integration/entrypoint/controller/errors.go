// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/financeflow/backend/internal/domain/error"
	"github.com/financeflow/backend/internal/integration/entrypoint/dto"
)

// respondDomainError maps a domain error to its HTTP status and error body.
// Permission denials are explicit 403s; the collections are guaranteed
// unchanged when one is returned.
func respondDomainError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := ""

	switch {
	case errors.Is(err, domainerror.ErrPermissionDenied):
		status = http.StatusForbidden
	case errors.Is(err, domainerror.ErrInvalidCredentials),
		errors.Is(err, domainerror.ErrMissingToken),
		errors.Is(err, domainerror.ErrInvalidToken):
		status = http.StatusUnauthorized
	case errors.Is(err, domainerror.ErrTransactionNotFound),
		errors.Is(err, domainerror.ErrPayrollEntryNotFound),
		errors.Is(err, domainerror.ErrUserNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domainerror.ErrInvalidTransactionType),
		errors.Is(err, domainerror.ErrInvalidTransactionAmount),
		errors.Is(err, domainerror.ErrInvalidFrequency),
		errors.Is(err, domainerror.ErrMissingCategory),
		errors.Is(err, domainerror.ErrEmptyComment),
		errors.Is(err, domainerror.ErrInvalidEmploymentStatus),
		errors.Is(err, domainerror.ErrMissingEmployeeName),
		errors.Is(err, domainerror.ErrNegativePayrollComponent),
		errors.Is(err, domainerror.ErrInvalidRole):
		status = http.StatusBadRequest
	case errors.Is(err, domainerror.ErrRateLimited):
		status = http.StatusTooManyRequests
	}

	var authErr *domainerror.AuthError
	var txnErr *domainerror.TransactionError
	var payErr *domainerror.PayrollError
	switch {
	case errors.As(err, &authErr):
		code = string(authErr.Code)
	case errors.As(err, &txnErr):
		code = string(txnErr.Code)
	case errors.As(err, &payErr):
		code = string(payErr.Code)
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		// Internal details stay in the logs.
		message = "internal server error"
	}

	c.JSON(status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// respondUnauthenticated writes the response for requests that reached a
// protected handler without an actor in context.
func respondUnauthenticated(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "User not authenticated",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}
