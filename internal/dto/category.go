package dto

import (
	"github.com/minhvu-dev/personal_finance_app/internal/core/domain"
)

// CategoryResponse defines the data returned for a catalog category.
type CategoryResponse struct {
	CategoryID string                 `json:"categoryID"`
	Name       string                 `json:"name"`
	Type       domain.TransactionType `json:"type"`
}

// ToListCategoryResponse converts the category catalog to DTOs.
func ToListCategoryResponse(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		res[i] = CategoryResponse{CategoryID: c.CategoryID, Name: c.Name, Type: c.Type}
	}
	return res
}

// ListCategoriesResponse wraps the category catalog.
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}
