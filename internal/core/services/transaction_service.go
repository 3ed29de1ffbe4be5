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

// transactionService implements the TransactionSvcFacade interface.
type transactionService struct {
	BaseService
	txnRepo     ports.TransactionRepository
	accountRepo ports.AccountRepository
	categorySvc portssvc.CategorySvcFacade
	now         func() time.Time
}

// TransactionServiceOption is a functional option for configuring the
// transaction service.
type TransactionServiceOption func(*transactionService)

// WithTransactionClock overrides the clock, used by tests.
func WithTransactionClock(now func() time.Time) TransactionServiceOption {
	return func(s *transactionService) {
		s.now = now
	}
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(txnRepo ports.TransactionRepository, accountRepo ports.AccountRepository, categorySvc portssvc.CategorySvcFacade, options ...TransactionServiceOption) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		txnRepo:     txnRepo,
		accountRepo: accountRepo,
		categorySvc: categorySvc,
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// parseDate accepts the two wire formats the dashboard sends: plain calendar
// dates and full RFC3339 timestamps.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, apperrors.ErrValidation)
	}
	return t, nil
}

// CreateTransaction records a money movement and adjusts the referenced
// account's balance in the same state update. A transaction referencing an
// unknown account or category is rejected rather than silently skipping the
// balance adjustment, which would break the account balance invariant.
func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("amount must be positive: %w", apperrors.ErrValidation)
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	category, err := s.categorySvc.GetCategoryByID(ctx, req.CategoryID)
	if err != nil {
		s.LogError(ctx, err, "Unknown category on transaction",
			slog.String("category_id", req.CategoryID))
		return nil, fmt.Errorf("invalid category: %w", err)
	}
	if category.Type != req.Type {
		err := apperrors.ErrValidation
		s.LogError(ctx, err, "Category type does not match transaction type",
			slog.String("category_id", req.CategoryID),
			slog.String("category_type", string(category.Type)),
			slog.String("transaction_type", string(req.Type)))
		return nil, fmt.Errorf("category %s is not a %s category: %w", req.CategoryID, req.Type, err)
	}

	if _, err := s.accountRepo.FindAccountByID(ctx, req.AccountID); err != nil {
		s.LogError(ctx, err, "Unknown account on transaction",
			slog.String("account_id", req.AccountID))
		return nil, fmt.Errorf("invalid account: %w", err)
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Type:          req.Type,
		Description:   req.Description,
		Amount:        req.Amount,
		Date:          date,
		CategoryID:    req.CategoryID,
		AccountID:     req.AccountID,
		CreatedAt:     s.now(),
	}

	delta := req.Amount
	if req.Type == domain.Expense {
		delta = delta.Neg()
	}
	balanceChanges := map[string]decimal.Decimal{req.AccountID: delta}

	if err := s.txnRepo.SaveTransaction(ctx, txn, balanceChanges); err != nil {
		s.LogError(ctx, err, "Failed to save transaction",
			slog.String("transaction_id", txn.TransactionID),
			slog.String("account_id", txn.AccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)),
		slog.String("account_id", txn.AccountID))
	return &txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if txns == nil {
		return []domain.Transaction{}, nil
	}
	return txns, nil
}
