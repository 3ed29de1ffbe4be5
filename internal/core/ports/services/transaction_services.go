package services

import (
	"context"

	"github.com/minhvu-dev/personal_finance_app/internal/core/domain"
	"github.com/minhvu-dev/personal_finance_app/internal/dto"
)

// TransactionSvcFacade defines operations on the transaction ledger.
type TransactionSvcFacade interface {
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}
