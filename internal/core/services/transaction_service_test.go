package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/minhvu-dev/personal_finance_app/internal/apperrors"
	"github.com/minhvu-dev/personal_finance_app/internal/core/domain"
	portssvc "github.com/minhvu-dev/personal_finance_app/internal/core/ports/services"
	"github.com/minhvu-dev/personal_finance_app/internal/core/services"
	"github.com/minhvu-dev/personal_finance_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo     *MockTransactionRepository
	mockAccountRepo *MockAccountRepository
	service         portssvc.TransactionSvcFacade
	fixedNow        time.Time
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.fixedNow = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	suite.service = services.NewTransactionService(
		suite.mockTxnRepo,
		suite.mockAccountRepo,
		services.NewCategoryService(),
		services.WithTransactionClock(func() time.Time { return suite.fixedNow }),
	)
}

// --- Test Cases ---

func (suite *TransactionServiceTestSuite) TestCreateTransaction_IncomeCreditsAccount() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Type:        domain.Income,
		Description: "Lương tháng 3",
		Amount:      decimal.NewFromInt(100000),
		Date:        "2024-03-15",
		CategoryID:  "salary",
		AccountID:   "bank",
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, "bank").
		Return(&domain.Account{AccountID: "bank", Name: "Tài khoản ngân hàng", Balance: decimal.NewFromInt(20000000)}, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx,
		mock.MatchedBy(func(t domain.Transaction) bool {
			return t.Type == domain.Income &&
				t.CategoryID == "salary" &&
				t.AccountID == "bank" &&
				t.Amount.Equal(decimal.NewFromInt(100000)) &&
				t.CreatedAt.Equal(suite.fixedNow) &&
				t.TransactionID != ""
		}),
		mock.MatchedBy(func(changes map[string]decimal.Decimal) bool {
			return len(changes) == 1 && changes["bank"].Equal(decimal.NewFromInt(100000))
		}),
	).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.Equal(domain.Income, txn.Type)
	suite.True(txn.Amount.Equal(decimal.NewFromInt(100000)))
	suite.Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), txn.Date)
	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_ExpenseDebitsAccount() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Type:        domain.Expense,
		Description: "Ăn trưa",
		Amount:      decimal.NewFromInt(55000),
		Date:        "2024-03-15",
		CategoryID:  "food",
		AccountID:   "cash",
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, "cash").
		Return(&domain.Account{AccountID: "cash", Name: "Tiền mặt", Balance: decimal.NewFromInt(5000000)}, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx,
		mock.AnythingOfType("domain.Transaction"),
		mock.MatchedBy(func(changes map[string]decimal.Decimal) bool {
			return len(changes) == 1 && changes["cash"].Equal(decimal.NewFromInt(-55000))
		}),
	).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_RFC3339Date() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Type:        domain.Expense,
		Description: "Cà phê",
		Amount:      decimal.NewFromInt(30000),
		Date:        "2024-03-15T09:30:00Z",
		CategoryID:  "food",
		AccountID:   "cash",
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, "cash").
		Return(&domain.Account{AccountID: "cash"}, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction"), mock.Anything).
		Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC), txn.Date)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Type:        domain.Expense,
		Description: "Nothing",
		Amount:      decimal.Zero,
		Date:        "2024-03-15",
		CategoryID:  "food",
		AccountID:   "cash",
	}

	txn, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_UnknownCategory() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Type:        domain.Expense,
		Description: "Mystery",
		Amount:      decimal.NewFromInt(10000),
		Date:        "2024-03-15",
		CategoryID:  "no-such-category",
		AccountID:   "cash",
	}

	txn, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_CategoryTypeMismatch() {
	ctx := context.Background()
	// salary is an income category
	req := dto.CreateTransactionRequest{
		Type:        domain.Expense,
		Description: "Wrong way",
		Amount:      decimal.NewFromInt(10000),
		Date:        "2024-03-15",
		CategoryID:  "salary",
		AccountID:   "cash",
	}

	txn, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_UnknownAccount() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Type:        domain.Expense,
		Description: "Ghost account",
		Amount:      decimal.NewFromInt(10000),
		Date:        "2024-03-15",
		CategoryID:  "food",
		AccountID:   "no-such-account",
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, "no-such-account").
		Return(nil, apperrors.ErrNotFound).Once()

	txn, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_NilBecomesEmpty() {
	ctx := context.Background()
	suite.mockTxnRepo.On("ListTransactions", ctx).Return(nil, nil).Once()

	txns, err := suite.service.ListTransactions(ctx)

	suite.Require().NoError(err)
	suite.NotNil(txns)
	suite.Empty(txns)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
