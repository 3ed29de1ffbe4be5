package services

import (
	"context"

	"github.com/minhvu-dev/personal_finance_app/internal/core/domain"
)

// CategorySvcFacade exposes the static category catalog.
type CategorySvcFacade interface {
	ListCategories(ctx context.Context) []domain.Category
	GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
}
