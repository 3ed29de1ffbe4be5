package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/minhvu-dev/personal_finance_app/internal/core/ports/services"
	"github.com/minhvu-dev/personal_finance_app/internal/dto"
)

// categoryHandler handles HTTP requests related to the category catalog.
type categoryHandler struct {
	categoryService portssvc.CategorySvcFacade
}

// newCategoryHandler creates a new categoryHandler.
func newCategoryHandler(cs portssvc.CategorySvcFacade) *categoryHandler {
	return &categoryHandler{
		categoryService: cs,
	}
}

// registerCategoryRoutes registers routes related to categories.
func registerCategoryRoutes(rg *gin.RouterGroup, categoryService portssvc.CategorySvcFacade) {
	h := newCategoryHandler(categoryService)

	categories := rg.Group("/categories")
	{
		categories.GET("", h.listCategories)
	}
}

// listCategories godoc
// @Summary List all categories
// @Description Retrieves the fixed category catalog in its canonical order
// @Tags categories
// @Produce  json
// @Success 200 {object} dto.ListCategoriesResponse
// @Router /categories [get]
func (h *categoryHandler) listCategories(c *gin.Context) {
	categories := h.categoryService.ListCategories(c.Request.Context())
	c.JSON(http.StatusOK, dto.ListCategoriesResponse{Categories: dto.ToListCategoryResponse(categories)})
}
