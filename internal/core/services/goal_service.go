package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/minhvu-dev/personal_finance_app/internal/apperrors"
	"github.com/minhvu-dev/personal_finance_app/internal/core/domain"
	"github.com/minhvu-dev/personal_finance_app/internal/core/ports"
	portssvc "github.com/minhvu-dev/personal_finance_app/internal/core/ports/services"
	"github.com/minhvu-dev/personal_finance_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// goalService implements the GoalSvcFacade interface.
type goalService struct {
	BaseService
	goalRepo    ports.GoalRepository
	accountRepo ports.AccountRepository
	now         func() time.Time
}

// GoalServiceOption is a functional option for configuring the goal service.
type GoalServiceOption func(*goalService)

// WithGoalClock overrides the clock, used by tests.
func WithGoalClock(now func() time.Time) GoalServiceOption {
	return func(s *goalService) {
		s.now = now
	}
}

// NewGoalService creates a new savings goal service.
func NewGoalService(goalRepo ports.GoalRepository, accountRepo ports.AccountRepository, options ...GoalServiceOption) portssvc.GoalSvcFacade {
	svc := &goalService{
		goalRepo:    goalRepo,
		accountRepo: accountRepo,
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.GoalSvcFacade = (*goalService)(nil)

func (s *goalService) CreateGoal(ctx context.Context, req dto.CreateGoalRequest) (*domain.SavingsGoal, error) {
	if !req.TargetAmount.IsPositive() {
		return nil, fmt.Errorf("target amount must be positive: %w", apperrors.ErrValidation)
	}

	targetDate, err := parseDate(req.TargetDate)
	if err != nil {
		return nil, err
	}

	goal := domain.SavingsGoal{
		GoalID:        uuid.NewString(),
		Name:          req.Name,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: decimal.Zero,
		TargetDate:    targetDate,
		CreatedAt:     s.now(),
	}

	if err := s.goalRepo.SaveGoal(ctx, goal); err != nil {
		s.LogError(ctx, err, "Failed to save savings goal",
			slog.String("goal_id", goal.GoalID))
		return nil, err
	}

	s.LogInfo(ctx, "Savings goal created",
		slog.String("goal_id", goal.GoalID),
		slog.String("name", goal.Name))
	return &goal, nil
}

func (s *goalService) ListGoals(ctx context.Context) ([]domain.SavingsGoal, error) {
	goals, err := s.goalRepo.ListGoals(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list savings goals")
		return nil, fmt.Errorf("failed to list savings goals: %w", err)
	}
	if goals == nil {
		return []domain.SavingsGoal{}, nil
	}
	return goals, nil
}

// Contribute moves amount from the account into the goal's progress. All
// guard conditions are checked here before any state is touched; the
// repository then applies the goal credit and account debit as one update.
func (s *goalService) Contribute(ctx context.Context, goalID string, req dto.ContributeRequest) (*domain.SavingsGoal, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("contribution amount must be positive: %w", apperrors.ErrValidation)
	}

	goal, err := s.goalRepo.FindGoalByID(ctx, goalID)
	if err != nil {
		s.LogError(ctx, err, "Unknown goal on contribution",
			slog.String("goal_id", goalID))
		return nil, fmt.Errorf("invalid goal: %w", err)
	}

	account, err := s.accountRepo.FindAccountByID(ctx, req.AccountID)
	if err != nil {
		s.LogError(ctx, err, "Unknown account on contribution",
			slog.String("account_id", req.AccountID))
		return nil, fmt.Errorf("invalid account: %w", err)
	}

	if account.Balance.LessThan(req.Amount) {
		err := apperrors.ErrInsufficientBalance
		s.LogError(ctx, err, "Account balance too low for contribution",
			slog.String("account_id", account.AccountID),
			slog.String("balance", account.Balance.String()),
			slog.String("amount", req.Amount.String()))
		return nil, fmt.Errorf("account %s: %w", account.AccountID, err)
	}

	if goal.CurrentAmount.Add(req.Amount).GreaterThan(goal.TargetAmount) {
		remaining := goal.TargetAmount.Sub(goal.CurrentAmount)
		s.LogDebug(ctx, "Contribution would exceed goal target",
			slog.String("goal_id", goalID),
			slog.String("remaining", remaining.String()))
		return nil, &apperrors.GoalExceededError{Remaining: remaining}
	}

	if err := s.goalRepo.ApplyContribution(ctx, goalID, req.AccountID, req.Amount); err != nil {
		s.LogError(ctx, err, "Failed to apply contribution",
			slog.String("goal_id", goalID),
			slog.String("account_id", req.AccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Contribution applied",
		slog.String("goal_id", goalID),
		slog.String("account_id", req.AccountID),
		slog.String("amount", req.Amount.String()))

	updated := *goal
	updated.CurrentAmount = goal.CurrentAmount.Add(req.Amount)
	return &updated, nil
}
