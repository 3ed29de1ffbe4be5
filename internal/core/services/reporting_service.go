package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/minhvu-dev/personal_finance_app/internal/core/domain"
	"github.com/minhvu-dev/personal_finance_app/internal/core/ports"
	portssvc "github.com/minhvu-dev/personal_finance_app/internal/core/ports/services"
	"github.com/minhvu-dev/personal_finance_app/internal/core/reporting"
	"github.com/minhvu-dev/personal_finance_app/internal/dto"
)

// recentTransactionCount is how many rows the dashboard table shows.
const recentTransactionCount = 5

// reportingService composes the pure aggregation functions over current
// store state into the dashboard payload.
type reportingService struct {
	BaseService
	txnRepo     ports.TransactionRepository
	accountRepo ports.AccountRepository
	goalRepo    ports.GoalRepository
	categorySvc portssvc.CategorySvcFacade
	now         func() time.Time
}

// ReportingServiceOption is a functional option for configuring the
// reporting service.
type ReportingServiceOption func(*reportingService)

// WithReportingClock overrides the clock, used by tests.
func WithReportingClock(now func() time.Time) ReportingServiceOption {
	return func(s *reportingService) {
		s.now = now
	}
}

// NewReportingService creates a new reporting service.
func NewReportingService(txnRepo ports.TransactionRepository, accountRepo ports.AccountRepository, goalRepo ports.GoalRepository, categorySvc portssvc.CategorySvcFacade, options ...ReportingServiceOption) portssvc.ReportingSvcFacade {
	svc := &reportingService{
		txnRepo:     txnRepo,
		accountRepo: accountRepo,
		goalRepo:    goalRepo,
		categorySvc: categorySvc,
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// Dashboard builds the whole dashboard for the given reporting period:
// summary cards, both charts, the last five transactions (most recent
// first), accounts and savings goals.
func (s *reportingService) Dashboard(ctx context.Context, period domain.ReportPeriod) (*dto.DashboardResponse, error) {
	txns, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for dashboard")
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load accounts for dashboard")
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	goals, err := s.goalRepo.ListGoals(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load savings goals for dashboard")
		return nil, fmt.Errorf("failed to load savings goals: %w", err)
	}
	categories := s.categorySvc.ListCategories(ctx)

	now := s.now()
	filtered := reporting.FilterByPeriod(txns, period, now)
	summary := reporting.Summarize(filtered)

	resp := &dto.DashboardResponse{
		Period:             period,
		PeriodLabel:        period.Label(),
		TotalIncome:        summary.TotalIncome,
		TotalExpense:       summary.TotalExpense,
		TotalBalance:       reporting.TotalBalance(accounts),
		ExpenseByCategory:  dto.ToCategorySpendResponses(reporting.ByCategory(filtered, categories)),
		IncomeVsExpense:    dto.ToTimeBucketResponses(reporting.ByTimeBucket(filtered, period)),
		RecentTransactions: dto.ToListTransactionResponse(recentTransactions(txns)),
		Accounts:           dto.ToListAccountResponse(accounts),
		Goals:              dto.ToListGoalResponse(goals, now),
	}

	s.LogDebug(ctx, "Dashboard computed",
		slog.String("period", string(period)),
		slog.Int("transactions", len(filtered)),
		slog.Int("buckets", len(resp.IncomeVsExpense)))
	return resp, nil
}

// recentTransactions returns the newest entries of the append-only ledger,
// most recent first.
func recentTransactions(txns []domain.Transaction) []domain.Transaction {
	n := len(txns)
	count := recentTransactionCount
	if n < count {
		count = n
	}
	out := make([]domain.Transaction, 0, count)
	for i := n - 1; i >= n-count; i-- {
		out = append(out, txns[i])
	}
	return out
}
