// Package ports defines the interfaces the core services depend on, keeping
// the storage and external-service implementations swappable.
package ports

import (
	"context"

	"github.com/minhvu-dev/personal_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionRepository persists the append-only transaction list.
// SaveTransaction applies the new transaction together with the account
// balance deltas it causes; both take effect atomically or not at all.
type TransactionRepository interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction, balanceChanges map[string]decimal.Decimal) error
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// AccountRepository reads the account collection. Accounts are only ever
// mutated through transactions and goal contributions.
type AccountRepository interface {
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// GoalRepository persists savings goals. ApplyContribution credits the goal
// and debits the account in one step; callers are responsible for the guard
// checks (positive amount, sufficient balance, target not exceeded).
type GoalRepository interface {
	SaveGoal(ctx context.Context, goal domain.SavingsGoal) error
	FindGoalByID(ctx context.Context, goalID string) (*domain.SavingsGoal, error)
	ListGoals(ctx context.Context) ([]domain.SavingsGoal, error)
	ApplyContribution(ctx context.Context, goalID string, accountID string, amount decimal.Decimal) error
}
