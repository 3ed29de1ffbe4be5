package services

import (
	"context"

	"github.com/minhvu-dev/personal_finance_app/internal/core/domain"
)

// AccountSvcFacade defines read operations on accounts. Account balances are
// only changed through transactions and goal contributions.
type AccountSvcFacade interface {
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
}
