// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/financeflow/backend/internal/domain/entity"

// FoundationProfileRequest represents the request body for a profile update.
type FoundationProfileRequest struct {
	Name    string `json:"name" binding:"max=200"`
	Address string `json:"address" binding:"max=500"`
}

// FoundationProfileResponse represents the foundation profile in API responses.
type FoundationProfileResponse struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// ToFoundationProfileResponse converts a domain profile to a response DTO.
func ToFoundationProfileResponse(profile entity.FoundationProfile) FoundationProfileResponse {
	return FoundationProfileResponse{
		Name:    profile.Name,
		Address: profile.Address,
	}
}

// CategoryResponse represents a category catalog entry in API responses.
type CategoryResponse struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

// CategoryCatalogResponse represents the category catalog response.
type CategoryCatalogResponse struct {
	Income  []CategoryResponse `json:"income,omitempty"`
	Expense []CategoryResponse `json:"expense,omitempty"`
}

// ToCategoryResponses converts domain categories to response DTOs.
func ToCategoryResponses(categories []entity.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = CategoryResponse{
			ID:    category.ID,
			Name:  category.Name,
			Items: category.Items,
		}
	}
	return responses
}

// AdviceResponse represents the advisory response.
type AdviceResponse struct {
	Advice string `json:"advice"`
}

// RecurrenceRunResponse represents the outcome of a recurrence run.
type RecurrenceRunResponse struct {
	Generated         []TransactionResponse `json:"generated"`
	TemplatesAdvanced int                   `json:"templates_advanced"`
}
