package reporting_test

import (
	"testing"
	"time"

	"github.com/minhvu-dev/personal_finance_app/internal/core/domain"
	"github.com/minhvu-dev/personal_finance_app/internal/core/reporting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func txn(id string, typ domain.TransactionType, amount int64, d time.Time, categoryID string) domain.Transaction {
	return domain.Transaction{
		TransactionID: id,
		Type:          typ,
		Description:   id,
		Amount:        decimal.NewFromInt(amount),
		Date:          d,
		CategoryID:    categoryID,
		AccountID:     "cash",
	}
}

func TestFilterByPeriod(t *testing.T) {
	now := date(2026, time.August, 20)
	monthStart := date(2026, time.August, 1)

	txns := []domain.Transaction{
		txn("old", domain.Expense, 100, monthStart.AddDate(0, 0, -1), "food"),
		txn("boundary", domain.Expense, 200, monthStart, "food"),
		txn("mid", domain.Income, 300, date(2026, time.August, 10), "salary"),
		txn("today", domain.Expense, 400, now, "food"),
	}

	got := reporting.FilterByPeriod(txns, domain.Monthly, now)

	require.Len(t, got, 3)
	// Boundary date is included, relative order preserved.
	assert.Equal(t, "boundary", got[0].TransactionID)
	assert.Equal(t, "mid", got[1].TransactionID)
	assert.Equal(t, "today", got[2].TransactionID)
	start := reporting.StartOfPeriod(now, domain.Monthly)
	for _, tr := range got {
		assert.False(t, tr.Date.Before(start))
	}
}

func TestSummarize(t *testing.T) {
	txns := []domain.Transaction{
		txn("t1", domain.Income, 100000, date(2026, time.August, 2), "salary"),
		txn("t2", domain.Expense, 30000, date(2026, time.August, 3), "food"),
		txn("t3", domain.Expense, 20000, date(2026, time.August, 4), "transport"),
	}

	s := reporting.Summarize(txns)

	assert.True(t, s.TotalIncome.Equal(decimal.NewFromInt(100000)))
	assert.True(t, s.TotalExpense.Equal(decimal.NewFromInt(50000)))

	// Income + expense totals account for every filtered amount.
	sum := decimal.Zero
	for _, tr := range txns {
		sum = sum.Add(tr.Amount)
	}
	assert.True(t, s.TotalIncome.Add(s.TotalExpense).Equal(sum))
}

func TestSummarize_Empty(t *testing.T) {
	s := reporting.Summarize(nil)
	assert.True(t, s.TotalIncome.IsZero())
	assert.True(t, s.TotalExpense.IsZero())
}

func TestTotalBalance(t *testing.T) {
	accounts := []domain.Account{
		{AccountID: "cash", Balance: decimal.NewFromInt(5000000)},
		{AccountID: "bank", Balance: decimal.NewFromInt(20000000)},
		{AccountID: "credit", Balance: decimal.NewFromInt(-150000)},
	}
	assert.True(t, reporting.TotalBalance(accounts).Equal(decimal.NewFromInt(24850000)))
}

func TestByCategory(t *testing.T) {
	categories := domain.DefaultCategories()
	txns := []domain.Transaction{
		txn("t1", domain.Expense, 200000, date(2026, time.August, 5), "food"),
		txn("t2", domain.Expense, 50000, date(2026, time.August, 6), "transport"),
		txn("t3", domain.Expense, 100000, date(2026, time.August, 7), "food"),
		txn("t4", domain.Income, 900000, date(2026, time.August, 7), "salary"), // income excluded
		txn("t5", domain.Expense, 70000, date(2026, time.August, 8), "deleted_category"),
	}

	got := reporting.ByCategory(txns, categories)

	require.Len(t, got, 2)
	// First-seen order, income and unresolvable categories excluded.
	assert.Equal(t, "Thực phẩm", got[0].Name)
	assert.True(t, got[0].Value.Equal(decimal.NewFromInt(300000)))
	assert.Equal(t, "Di chuyển", got[1].Name)
	assert.True(t, got[1].Value.Equal(decimal.NewFromInt(50000)))
}

func TestByCategory_FoodScenario(t *testing.T) {
	// Single 200,000 expense categorized "food" must surface as Thực phẩm.
	got := reporting.ByCategory([]domain.Transaction{
		txn("t1", domain.Expense, 200000, date(2026, time.August, 31), "food"),
	}, domain.DefaultCategories())

	require.Len(t, got, 1)
	assert.Equal(t, "Thực phẩm", got[0].Name)
	assert.True(t, got[0].Value.Equal(decimal.NewFromInt(200000)))
}

func TestTopCategories(t *testing.T) {
	spends := []reporting.CategorySpend{
		{Name: "Thực phẩm", Value: decimal.NewFromInt(300000)},
		{Name: "Di chuyển", Value: decimal.NewFromInt(500000)},
		{Name: "Nhà ở", Value: decimal.NewFromInt(500000)},
		{Name: "Giải trí", Value: decimal.NewFromInt(100000)},
	}

	top := reporting.TopCategories(spends, 3)

	require.Len(t, top, 3)
	// Descending by value, ties keep first-seen order.
	assert.Equal(t, "Di chuyển", top[0].Name)
	assert.Equal(t, "Nhà ở", top[1].Name)
	assert.Equal(t, "Thực phẩm", top[2].Name)

	// Input is not reordered.
	assert.Equal(t, "Thực phẩm", spends[0].Name)
}

func TestByTimeBucket_MonthlyUsesDayBuckets(t *testing.T) {
	txns := []domain.Transaction{
		txn("t1", domain.Expense, 10000, date(2026, time.August, 5), "food"),
		txn("t2", domain.Income, 70000, date(2026, time.August, 5), "salary"),
		txn("t3", domain.Expense, 20000, date(2026, time.August, 3), "food"),
	}

	got := reporting.ByTimeBucket(txns, domain.Monthly)

	require.Len(t, got, 2)
	// Chronological by underlying date even though day 5 was seen first.
	assert.Equal(t, "Ngày 3", got[0].Name)
	assert.True(t, got[0].Expense.Equal(decimal.NewFromInt(20000)))
	assert.Equal(t, "Ngày 5", got[1].Name)
	assert.True(t, got[1].Income.Equal(decimal.NewFromInt(70000)))
	assert.True(t, got[1].Expense.Equal(decimal.NewFromInt(10000)))
}

func TestByTimeBucket_YearlyUsesMonthBuckets(t *testing.T) {
	txns := []domain.Transaction{
		txn("t1", domain.Expense, 10000, date(2026, time.October, 28), "food"),
		txn("t2", domain.Expense, 20000, date(2026, time.February, 2), "food"),
		txn("t3", domain.Income, 50000, date(2026, time.February, 14), "salary"),
	}

	got := reporting.ByTimeBucket(txns, domain.Yearly)

	require.Len(t, got, 2)
	assert.Equal(t, "Tháng 2", got[0].Name)
	assert.True(t, got[0].Expense.Equal(decimal.NewFromInt(20000)))
	assert.True(t, got[0].Income.Equal(decimal.NewFromInt(50000)))
	assert.Equal(t, "Tháng 10", got[1].Name)
	assert.True(t, date(2026, time.October, 1).Equal(got[1].Start))
}

func TestByTimeBucket_SameDayAcrossMonthsStaysChronological(t *testing.T) {
	// "Ngày 1" of September must sort after "Ngày 28" of August; label
	// strings alone cannot order these.
	txns := []domain.Transaction{
		txn("t1", domain.Expense, 10000, date(2026, time.September, 1), "food"),
		txn("t2", domain.Expense, 20000, date(2026, time.August, 28), "food"),
	}

	got := reporting.ByTimeBucket(txns, domain.Weekly)

	require.Len(t, got, 2)
	assert.Equal(t, "Ngày 28", got[0].Name)
	assert.Equal(t, "Ngày 1", got[1].Name)
	assert.True(t, got[0].Start.Before(got[1].Start))
}
