// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/financeflow/backend/internal/application/usecase/advisory"
	"github.com/financeflow/backend/internal/integration/entrypoint/dto"
	"github.com/financeflow/backend/internal/integration/entrypoint/middleware"
)

// AdvisoryController handles the financial advisory endpoint.
type AdvisoryController struct {
	getAdviceUseCase *advisory.GetAdviceUseCase
}

// NewAdvisoryController creates a new advisory controller instance.
func NewAdvisoryController(getAdviceUseCase *advisory.GetAdviceUseCase) *AdvisoryController {
	return &AdvisoryController{
		getAdviceUseCase: getAdviceUseCase,
	}
}

// GetAdvice handles POST /advisory requests. Advisor failures surface as a
// fixed message, never as an error status.
func (c *AdvisoryController) GetAdvice(ctx *gin.Context) {
	actor, ok := middleware.GetActorFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.getAdviceUseCase.Execute(ctx.Request.Context(), advisory.GetAdviceInput{Actor: actor})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.AdviceResponse{Advice: output.Advice})
}
