package dto

import (
	"time"

	"github.com/minhvu-dev/personal_finance_app/internal/core/domain"
	"github.com/minhvu-dev/personal_finance_app/internal/core/reporting"
	"github.com/shopspring/decimal"
)

// CategorySpendResponse is one slice of the expense-by-category pie chart.
type CategorySpendResponse struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// TimeBucketResponse is one bar of the income-vs-expense chart.
type TimeBucketResponse struct {
	Name    string          `json:"name"`
	Start   time.Time       `json:"start"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// DashboardResponse is the single payload behind the dashboard screen:
// summary cards, both charts, the recent-transactions table, accounts and
// savings goals.
type DashboardResponse struct {
	Period             domain.ReportPeriod     `json:"period"`
	PeriodLabel        string                  `json:"periodLabel"`
	TotalIncome        decimal.Decimal         `json:"totalIncome"`
	TotalExpense       decimal.Decimal         `json:"totalExpense"`
	TotalBalance       decimal.Decimal         `json:"totalBalance"`
	ExpenseByCategory  []CategorySpendResponse `json:"expenseByCategory"`
	IncomeVsExpense    []TimeBucketResponse    `json:"incomeVsExpense"`
	RecentTransactions []TransactionResponse   `json:"recentTransactions"`
	Accounts           []AccountResponse       `json:"accounts"`
	Goals              []GoalResponse          `json:"goals"`
}

// ToCategorySpendResponses converts aggregation output for the pie chart.
func ToCategorySpendResponses(spends []reporting.CategorySpend) []CategorySpendResponse {
	res := make([]CategorySpendResponse, len(spends))
	for i, s := range spends {
		res[i] = CategorySpendResponse{Name: s.Name, Value: s.Value}
	}
	return res
}

// ToTimeBucketResponses converts aggregation output for the bar chart.
func ToTimeBucketResponses(buckets []reporting.TimeBucket) []TimeBucketResponse {
	res := make([]TimeBucketResponse, len(buckets))
	for i, b := range buckets {
		res[i] = TimeBucketResponse{Name: b.Name, Start: b.Start, Income: b.Income, Expense: b.Expense}
	}
	return res
}
