package dto

import (
	"time"

	"github.com/minhvu-dev/personal_finance_app/internal/core/domain"
	"github.com/minhvu-dev/personal_finance_app/internal/core/reporting"
	"github.com/shopspring/decimal"
)

// CreateGoalRequest defines the data needed to create a savings goal.
// TargetDate accepts "2006-01-02" or RFC3339.
type CreateGoalRequest struct {
	Name         string          `json:"name" binding:"required"`
	TargetAmount decimal.Decimal `json:"targetAmount" binding:"required"`
	TargetDate   string          `json:"targetDate" binding:"required"`
}

// ContributeRequest defines a contribution into a savings goal from an account.
type ContributeRequest struct {
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	AccountID string          `json:"accountID" binding:"required"`
}

// GoalResponse mirrors domain.SavingsGoal plus the computed days remaining.
type GoalResponse struct {
	GoalID        string          `json:"goalID"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	TargetDate    time.Time       `json:"targetDate"`
	DaysRemaining int             `json:"daysRemaining"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToGoalResponse converts a domain.SavingsGoal to its response DTO,
// computing days remaining relative to now.
func ToGoalResponse(g *domain.SavingsGoal, now time.Time) GoalResponse {
	return GoalResponse{
		GoalID:        g.GoalID,
		Name:          g.Name,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		TargetDate:    g.TargetDate,
		DaysRemaining: reporting.DaysRemaining(g.TargetDate, now),
		CreatedAt:     g.CreatedAt,
	}
}

// ToListGoalResponse converts a slice of domain.SavingsGoal to DTOs.
func ToListGoalResponse(goals []domain.SavingsGoal, now time.Time) []GoalResponse {
	res := make([]GoalResponse, len(goals))
	for i := range goals {
		res[i] = ToGoalResponse(&goals[i], now)
	}
	return res
}

// ListGoalsResponse wraps the savings goal list.
type ListGoalsResponse struct {
	Goals []GoalResponse `json:"goals"`
}
