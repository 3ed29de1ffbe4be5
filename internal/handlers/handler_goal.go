package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/minhvu-dev/personal_finance_app/internal/apperrors"
	portssvc "github.com/minhvu-dev/personal_finance_app/internal/core/ports/services"
	"github.com/minhvu-dev/personal_finance_app/internal/dto"
	"github.com/minhvu-dev/personal_finance_app/internal/middleware"
	"github.com/minhvu-dev/personal_finance_app/internal/utils"
)

// goalHandler handles HTTP requests related to savings goals.
type goalHandler struct {
	goalService portssvc.GoalSvcFacade
}

// newGoalHandler creates a new goalHandler.
func newGoalHandler(gs portssvc.GoalSvcFacade) *goalHandler {
	return &goalHandler{
		goalService: gs,
	}
}

// registerGoalRoutes registers routes related to savings goals.
func registerGoalRoutes(rg *gin.RouterGroup, goalService portssvc.GoalSvcFacade) {
	h := newGoalHandler(goalService)

	goals := rg.Group("/goals")
	{
		goals.POST("", h.createGoal)
		goals.GET("", h.listGoals)
		goals.POST("/:goalID/contributions", h.contribute)
	}
}

// createGoal godoc
// @Summary Create a savings goal
// @Description Creates a savings goal with zero progress
// @Tags goals
// @Accept  json
// @Produce  json
// @Param   goal body dto.CreateGoalRequest true "Goal details"
// @Success 201 {object} dto.GoalResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create goal"
// @Router /goals [post]
func (h *goalHandler) createGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateGoal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create goal", slog.String("name", req.Name))

	createdGoal, err := h.goalService.CreateGoal(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating goal", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create goal in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create goal"})
		}
		return
	}

	logger.Info("Goal created successfully", slog.String("goal_id", createdGoal.GoalID))
	c.JSON(http.StatusCreated, dto.ToGoalResponse(createdGoal, time.Now()))
}

// listGoals godoc
// @Summary List all savings goals
// @Description Retrieves every savings goal with its progress and days remaining
// @Tags goals
// @Produce  json
// @Success 200 {object} dto.ListGoalsResponse
// @Failure 500 {object} map[string]string "Failed to list goals"
// @Router /goals [get]
func (h *goalHandler) listGoals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	goals, err := h.goalService.ListGoals(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list goals", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list goals"})
		return
	}

	c.JSON(http.StatusOK, dto.ListGoalsResponse{Goals: dto.ToListGoalResponse(goals, time.Now())})
}

// contribute godoc
// @Summary Contribute to a savings goal
// @Description Moves money from an account into a savings goal's progress
// @Tags goals
// @Accept  json
// @Produce  json
// @Param   goalID path string true "Goal ID"
// @Param   contribution body dto.ContributeRequest true "Contribution details"
// @Success 200 {object} dto.GoalResponse
// @Failure 400 {object} map[string]string "Invalid input, insufficient balance, or goal exceeded"
// @Failure 404 {object} map[string]string "Goal or account not found"
// @Failure 500 {object} map[string]string "Failed to apply contribution"
// @Router /goals/{goalID}/contributions [post]
func (h *goalHandler) contribute(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	goalID := c.Param("goalID")

	var req dto.ContributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Contribute", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("goal_id", goalID), slog.String("account_id", req.AccountID))
	logger.Info("Received request to contribute to goal")

	updatedGoal, err := h.goalService.Contribute(c.Request.Context(), goalID, req)
	if err != nil {
		var exceeded *apperrors.GoalExceededError
		switch {
		case errors.As(err, &exceeded):
			logger.Warn("Contribution exceeds goal target", slog.String("remaining", exceeded.Remaining.String()))
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     fmt.Sprintf("Số tiền đóng góp vượt quá mục tiêu. Bạn chỉ cần thêm %s.", utils.FormatVNDCurrency(exceeded.Remaining)),
				"remaining": exceeded.Remaining,
			})
		case errors.Is(err, apperrors.ErrInsufficientBalance):
			logger.Warn("Insufficient balance for contribution")
			c.JSON(http.StatusBadRequest, gin.H{"error": "Số dư tài khoản không đủ để đóng góp."})
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Contribution references unknown resource", slog.String("error", err.Error()))
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error applying contribution", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to apply contribution in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to apply contribution"})
		}
		return
	}

	logger.Info("Contribution applied successfully", slog.String("current_amount", updatedGoal.CurrentAmount.String()))
	c.JSON(http.StatusOK, dto.ToGoalResponse(updatedGoal, time.Now()))
}
