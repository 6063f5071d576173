// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/financeflow/backend/internal/application/usecase/category"
	"github.com/financeflow/backend/internal/application/usecase/settings"
	"github.com/financeflow/backend/internal/domain/entity"
	"github.com/financeflow/backend/internal/integration/entrypoint/dto"
	"github.com/financeflow/backend/internal/integration/entrypoint/middleware"
)

// SettingsController handles foundation profile and category catalog endpoints.
type SettingsController struct {
	getProfileUseCase     *settings.GetFoundationProfileUseCase
	updateProfileUseCase  *settings.UpdateFoundationProfileUseCase
	listCategoriesUseCase *category.ListCategoriesUseCase
}

// NewSettingsController creates a new settings controller instance.
func NewSettingsController(
	getProfileUseCase *settings.GetFoundationProfileUseCase,
	updateProfileUseCase *settings.UpdateFoundationProfileUseCase,
	listCategoriesUseCase *category.ListCategoriesUseCase,
) *SettingsController {
	return &SettingsController{
		getProfileUseCase:     getProfileUseCase,
		updateProfileUseCase:  updateProfileUseCase,
		listCategoriesUseCase: listCategoriesUseCase,
	}
}

// GetFoundationProfile handles GET /settings/foundation requests.
func (c *SettingsController) GetFoundationProfile(ctx *gin.Context) {
	output, err := c.getProfileUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToFoundationProfileResponse(output.Profile))
}

// UpdateFoundationProfile handles PUT /settings/foundation requests.
func (c *SettingsController) UpdateFoundationProfile(ctx *gin.Context) {
	actor, ok := middleware.GetActorFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.FoundationProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	output, err := c.updateProfileUseCase.Execute(ctx.Request.Context(), settings.UpdateFoundationProfileInput{
		Actor: actor,
		Profile: entity.FoundationProfile{
			Name:    req.Name,
			Address: req.Address,
		},
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFoundationProfileResponse(output.Profile))
}

// ListCategories handles GET /categories requests. An optional type query
// narrows the catalog to one transaction type.
func (c *SettingsController) ListCategories(ctx *gin.Context) {
	output, err := c.listCategoriesUseCase.Execute(ctx.Request.Context(), category.ListCategoriesInput{
		Type: entity.TransactionType(ctx.Query("type")),
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CategoryCatalogResponse{
		Income:  dto.ToCategoryResponses(output.Income),
		Expense: dto.ToCategoryResponses(output.Expense),
	})
}
