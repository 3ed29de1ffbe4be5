package services

import (
	"context"

	"github.com/minhvu-dev/personal_finance_app/internal/core/domain"
	"github.com/minhvu-dev/personal_finance_app/internal/dto"
)

// GoalSvcFacade defines operations on savings goals.
type GoalSvcFacade interface {
	CreateGoal(ctx context.Context, req dto.CreateGoalRequest) (*domain.SavingsGoal, error)
	ListGoals(ctx context.Context) ([]domain.SavingsGoal, error)
	// Contribute moves amount from the account into the goal's progress.
	// The goal credit and account debit apply together or not at all.
	Contribute(ctx context.Context, goalID string, req dto.ContributeRequest) (*domain.SavingsGoal, error)
}
