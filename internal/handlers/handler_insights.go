package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/minhvu-dev/personal_finance_app/internal/apperrors"
	portssvc "github.com/minhvu-dev/personal_finance_app/internal/core/ports/services"
	"github.com/minhvu-dev/personal_finance_app/internal/dto"
	"github.com/minhvu-dev/personal_finance_app/internal/middleware"
	"github.com/minhvu-dev/personal_finance_app/internal/platform/config"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// insightsHandler handles HTTP requests for AI-generated spending tips.
type insightsHandler struct {
	insightsService portssvc.InsightsSvcFacade
}

// newInsightsHandler creates a new insightsHandler.
func newInsightsHandler(is portssvc.InsightsSvcFacade) *insightsHandler {
	return &insightsHandler{
		insightsService: is,
	}
}

// registerInsightsRoutes registers the insights route behind a rate limiter.
func registerInsightsRoutes(rg *gin.RouterGroup, cfg *config.Config, insightsService portssvc.InsightsSvcFacade) {
	h := newInsightsHandler(insightsService)

	rate, err := limiter.NewRateFromFormatted(cfg.InsightsRateLimit)
	if err != nil {
		// Bad formats fall back to a conservative default rather than
		// leaving the endpoint unprotected.
		rate = limiter.Rate{Period: time.Minute, Limit: 10}
	}
	limiterInstance := limiter.New(memory.NewStore(), rate)

	rg.POST("/insights", middleware.RateLimit(limiterInstance), h.getInsights)
}

// getInsights godoc
// @Summary Generate spending tips
// @Description Requests AI-generated spending tips based on recent expenses. Guard conditions return fixed displayable messages.
// @Tags insights
// @Produce  json
// @Success 200 {object} dto.InsightsResponse
// @Failure 409 {object} map[string]string "A request is already in progress"
// @Failure 429 {object} map[string]string "Rate limit exceeded"
// @Failure 500 {object} map[string]string "Failed to generate insights"
// @Router /insights [post]
func (h *insightsHandler) getInsights(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	insights, err := h.insightsService.GetFinancialInsights(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrInsightsInFlight) {
			logger.Warn("Insights request rejected, another is in progress")
			c.JSON(http.StatusConflict, gin.H{"error": "An insights request is already in progress"})
		} else {
			logger.Error("Failed to generate insights", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate insights"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.InsightsResponse{Insights: insights})
}
