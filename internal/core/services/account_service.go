package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/minhvu-dev/personal_finance_app/internal/apperrors"
	"github.com/minhvu-dev/personal_finance_app/internal/core/domain"
	"github.com/minhvu-dev/personal_finance_app/internal/core/ports"
	portssvc "github.com/minhvu-dev/personal_finance_app/internal/core/ports/services"
)

// accountService implements the AccountSvcFacade interface.
type accountService struct {
	BaseService
	accountRepo ports.AccountRepository
}

// NewAccountService creates a new account service.
func NewAccountService(repo ports.AccountRepository) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: repo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID",
				slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}
