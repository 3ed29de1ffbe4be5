package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/minhvu-dev/personal_finance_app/internal/core/domain"
	portssvc "github.com/minhvu-dev/personal_finance_app/internal/core/ports/services"
	"github.com/minhvu-dev/personal_finance_app/internal/middleware"
)

// dashboardHandler handles HTTP requests for the dashboard payload.
type dashboardHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newDashboardHandler creates a new dashboardHandler.
func newDashboardHandler(rs portssvc.ReportingSvcFacade) *dashboardHandler {
	return &dashboardHandler{
		reportingService: rs,
	}
}

// registerDashboardRoutes registers the dashboard route.
func registerDashboardRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newDashboardHandler(reportingService)

	rg.GET("/dashboard", h.getDashboard)
}

// getDashboard godoc
// @Summary Get the dashboard payload
// @Description Computes summary totals, both charts, recent transactions, accounts and goals for the selected reporting period
// @Tags dashboard
// @Produce  json
// @Param   period query string false "Reporting period" Enums(weekly, monthly, quarterly, yearly) default(monthly)
// @Success 200 {object} dto.DashboardResponse
// @Failure 500 {object} map[string]string "Failed to compute dashboard"
// @Router /dashboard [get]
func (h *dashboardHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	// Unrecognized or missing period values fall back to monthly.
	period := domain.ParseReportPeriod(c.Query("period"))

	dashboard, err := h.reportingService.Dashboard(c.Request.Context(), period)
	if err != nil {
		logger.Error("Failed to compute dashboard", slog.String("period", string(period)), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard"})
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
