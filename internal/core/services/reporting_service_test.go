package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/minhvu-dev/personal_finance_app/internal/core/domain"
	portssvc "github.com/minhvu-dev/personal_finance_app/internal/core/ports/services"
	"github.com/minhvu-dev/personal_finance_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockTxnRepo     *MockTransactionRepository
	mockAccountRepo *MockAccountRepository
	mockGoalRepo    *MockGoalRepository
	service         portssvc.ReportingSvcFacade
	fixedNow        time.Time
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockGoalRepo = new(MockGoalRepository)
	// Friday, mid-March
	suite.fixedNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	suite.service = services.NewReportingService(
		suite.mockTxnRepo,
		suite.mockAccountRepo,
		suite.mockGoalRepo,
		services.NewCategoryService(),
		services.WithReportingClock(func() time.Time { return suite.fixedNow }),
	)
}

func (suite *ReportingServiceTestSuite) mockState(txns []domain.Transaction, accounts []domain.Account, goals []domain.SavingsGoal) {
	ctx := context.Background()
	suite.mockTxnRepo.On("ListTransactions", ctx).Return(txns, nil).Once()
	suite.mockAccountRepo.On("ListAccounts", ctx).Return(accounts, nil).Once()
	suite.mockGoalRepo.On("ListGoals", ctx).Return(goals, nil).Once()
}

// --- Test Cases ---

func (suite *ReportingServiceTestSuite) TestDashboard_MonthlyComposition() {
	ctx := context.Background()
	txns := []domain.Transaction{
		// February, outside the monthly window
		{TransactionID: "t0", Type: domain.Expense, Amount: decimal.NewFromInt(999000), Date: time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC), CategoryID: "food"},
		// March
		{TransactionID: "t1", Type: domain.Income, Amount: decimal.NewFromInt(15000000), Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), CategoryID: "salary"},
		{TransactionID: "t2", Type: domain.Expense, Amount: decimal.NewFromInt(200000), Date: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), CategoryID: "food"},
		{TransactionID: "t3", Type: domain.Expense, Amount: decimal.NewFromInt(300000), Date: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), CategoryID: "transport"},
	}
	accounts := []domain.Account{
		{AccountID: "cash", Balance: decimal.NewFromInt(5000000)},
		{AccountID: "bank", Balance: decimal.NewFromInt(20000000)},
	}
	goals := []domain.SavingsGoal{
		{GoalID: "g1", Name: "Du lịch", TargetAmount: decimal.NewFromInt(10000000), CurrentAmount: decimal.NewFromInt(2000000), TargetDate: time.Date(2024, 3, 25, 0, 0, 0, 0, time.UTC)},
	}
	suite.mockState(txns, accounts, goals)

	resp, err := suite.service.Dashboard(ctx, domain.Monthly)

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)

	suite.Equal(domain.Monthly, resp.Period)
	suite.Equal("Tháng", resp.PeriodLabel)
	suite.True(resp.TotalIncome.Equal(decimal.NewFromInt(15000000)))
	suite.True(resp.TotalExpense.Equal(decimal.NewFromInt(500000)))
	suite.True(resp.TotalBalance.Equal(decimal.NewFromInt(25000000)))

	suite.Require().Len(resp.ExpenseByCategory, 2)
	suite.Equal("Thực phẩm", resp.ExpenseByCategory[0].Name)
	suite.True(resp.ExpenseByCategory[0].Value.Equal(decimal.NewFromInt(200000)))
	suite.Equal("Di chuyển", resp.ExpenseByCategory[1].Name)

	// one bucket for March 1, one for March 5
	suite.Require().Len(resp.IncomeVsExpense, 2)
	suite.Equal("Ngày 1", resp.IncomeVsExpense[0].Name)
	suite.Equal("Ngày 5", resp.IncomeVsExpense[1].Name)
	suite.True(resp.IncomeVsExpense[1].Expense.Equal(decimal.NewFromInt(500000)))

	// recent transactions cover the whole ledger, most recent first
	suite.Require().Len(resp.RecentTransactions, 4)
	suite.Equal("t3", resp.RecentTransactions[0].TransactionID)
	suite.Equal("t0", resp.RecentTransactions[3].TransactionID)

	suite.Require().Len(resp.Goals, 1)
	suite.Equal(10, resp.Goals[0].DaysRemaining)
}

func (suite *ReportingServiceTestSuite) TestDashboard_RecentTransactionsCappedAtFive() {
	ctx := context.Background()
	txns := make([]domain.Transaction, 0, 7)
	for i := 0; i < 7; i++ {
		txns = append(txns, domain.Transaction{
			TransactionID: string(rune('a' + i)),
			Type:          domain.Expense,
			Amount:        decimal.NewFromInt(10000),
			Date:          time.Date(2024, 3, 1+i, 0, 0, 0, 0, time.UTC),
			CategoryID:    "food",
		})
	}
	suite.mockState(txns, []domain.Account{}, []domain.SavingsGoal{})

	resp, err := suite.service.Dashboard(ctx, domain.Monthly)

	suite.Require().NoError(err)
	suite.Require().Len(resp.RecentTransactions, 5)
	suite.Equal("g", resp.RecentTransactions[0].TransactionID)
	suite.Equal("c", resp.RecentTransactions[4].TransactionID)
}

func (suite *ReportingServiceTestSuite) TestDashboard_YearlyBucketsByMonth() {
	ctx := context.Background()
	txns := []domain.Transaction{
		{TransactionID: "t1", Type: domain.Expense, Amount: decimal.NewFromInt(100000), Date: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), CategoryID: "food"},
		{TransactionID: "t2", Type: domain.Expense, Amount: decimal.NewFromInt(150000), Date: time.Date(2024, 1, 25, 0, 0, 0, 0, time.UTC), CategoryID: "food"},
		{TransactionID: "t3", Type: domain.Income, Amount: decimal.NewFromInt(15000000), Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), CategoryID: "salary"},
	}
	suite.mockState(txns, []domain.Account{}, []domain.SavingsGoal{})

	resp, err := suite.service.Dashboard(ctx, domain.Yearly)

	suite.Require().NoError(err)
	suite.Equal("Năm", resp.PeriodLabel)
	suite.Require().Len(resp.IncomeVsExpense, 2)
	suite.Equal("Tháng 1", resp.IncomeVsExpense[0].Name)
	suite.True(resp.IncomeVsExpense[0].Expense.Equal(decimal.NewFromInt(250000)))
	suite.Equal("Tháng 3", resp.IncomeVsExpense[1].Name)
	suite.True(resp.IncomeVsExpense[1].Income.Equal(decimal.NewFromInt(15000000)))
}

func (suite *ReportingServiceTestSuite) TestDashboard_EmptyState() {
	ctx := context.Background()
	suite.mockState([]domain.Transaction{}, []domain.Account{}, []domain.SavingsGoal{})

	resp, err := suite.service.Dashboard(ctx, domain.Weekly)

	suite.Require().NoError(err)
	suite.Equal("Tuần", resp.PeriodLabel)
	suite.True(resp.TotalIncome.IsZero())
	suite.True(resp.TotalExpense.IsZero())
	suite.True(resp.TotalBalance.IsZero())
	suite.Empty(resp.ExpenseByCategory)
	suite.Empty(resp.IncomeVsExpense)
	suite.Empty(resp.RecentTransactions)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
