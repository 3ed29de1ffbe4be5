package services

import (
	"context"
	"fmt"

	"github.com/minhvu-dev/personal_finance_app/internal/apperrors"
	"github.com/minhvu-dev/personal_finance_app/internal/core/domain"
	portssvc "github.com/minhvu-dev/personal_finance_app/internal/core/ports/services"
)

// categoryService serves the fixed built-in catalog. Categories are never
// persisted; the catalog is rebuilt from the defaults on every startup.
type categoryService struct {
	BaseService
	catalog []domain.Category
	byID    map[string]domain.Category
}

// NewCategoryService creates a category service over the default catalog.
func NewCategoryService() portssvc.CategorySvcFacade {
	catalog := domain.DefaultCategories()
	byID := make(map[string]domain.Category, len(catalog))
	for _, c := range catalog {
		byID[c.CategoryID] = c
	}
	return &categoryService{catalog: catalog, byID: byID}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) ListCategories(ctx context.Context) []domain.Category {
	out := make([]domain.Category, len(s.catalog))
	copy(out, s.catalog)
	return out
}

func (s *categoryService) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	c, ok := s.byID[categoryID]
	if !ok {
		return nil, fmt.Errorf("category %s: %w", categoryID, apperrors.ErrNotFound)
	}
	return &c, nil
}
