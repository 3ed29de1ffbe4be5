// Package reporting contains the pure aggregation functions behind the
// dashboard: period windows, summary totals, category breakdowns and
// time-bucketed chart series. Every function here is a pure function of its
// arguments so results can be recomputed on any state change.
package reporting

import (
	"fmt"
	"sort"
	"time"

	"github.com/minhvu-dev/personal_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Summary holds the income and expense totals over a filtered transaction set.
type Summary struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
}

// CategorySpend is one slice of the expense-by-category breakdown.
type CategorySpend struct {
	Name  string
	Value decimal.Decimal
}

// TimeBucket is one bar of the income-vs-expense chart. Start is the date the
// bucket represents; output ordering is by Start, never by the display label.
type TimeBucket struct {
	Name    string
	Start   time.Time
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// FilterByPeriod returns the transactions dated on or after the start of the
// reporting window containing now, preserving the input order.
func FilterByPeriod(txns []domain.Transaction, period domain.ReportPeriod, now time.Time) []domain.Transaction {
	start := StartOfPeriod(now, period)
	out := make([]domain.Transaction, 0, len(txns))
	for _, t := range txns {
		if !t.Date.Before(start) {
			out = append(out, t)
		}
	}
	return out
}

// Summarize sums transaction amounts by type over the given set.
func Summarize(txns []domain.Transaction) Summary {
	s := Summary{TotalIncome: decimal.Zero, TotalExpense: decimal.Zero}
	for _, t := range txns {
		switch t.Type {
		case domain.Income:
			s.TotalIncome = s.TotalIncome.Add(t.Amount)
		case domain.Expense:
			s.TotalExpense = s.TotalExpense.Add(t.Amount)
		}
	}
	return s
}

// TotalBalance sums the current balances of all accounts. It is a
// point-in-time snapshot and deliberately ignores the reporting period.
func TotalBalance(accounts []domain.Account) decimal.Decimal {
	total := decimal.Zero
	for _, a := range accounts {
		total = total.Add(a.Balance)
	}
	return total
}

// ByCategory groups expense transactions by resolved category name, summing
// amounts. Transactions whose category id resolves to no known category are
// silently excluded. Output keeps first-seen category order.
func ByCategory(txns []domain.Transaction, categories []domain.Category) []CategorySpend {
	byID := make(map[string]domain.Category, len(categories))
	for _, c := range categories {
		byID[c.CategoryID] = c
	}

	index := make(map[string]int)
	out := []CategorySpend{}
	for _, t := range txns {
		if t.Type != domain.Expense {
			continue
		}
		cat, ok := byID[t.CategoryID]
		if !ok {
			continue
		}
		if i, seen := index[cat.Name]; seen {
			out[i].Value = out[i].Value.Add(t.Amount)
		} else {
			index[cat.Name] = len(out)
			out = append(out, CategorySpend{Name: cat.Name, Value: t.Amount})
		}
	}
	return out
}

// TopCategories returns the n largest spends in descending order. Ties keep
// their first-seen relative order.
func TopCategories(spends []CategorySpend, n int) []CategorySpend {
	out := make([]CategorySpend, len(spends))
	copy(out, spends)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value.GreaterThan(out[j].Value)
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// ByTimeBucket accumulates separate income/expense sums per chart bucket:
// one bucket per day for weekly and monthly periods, one per month for
// quarterly and yearly. Buckets are keyed and sorted by the date they
// represent, so ordering stays chronological across month boundaries.
func ByTimeBucket(txns []domain.Transaction, period domain.ReportPeriod) []TimeBucket {
	index := make(map[int64]int)
	out := []TimeBucket{}
	for _, t := range txns {
		var start time.Time
		var label string
		switch period {
		case domain.Quarterly, domain.Yearly:
			start = time.Date(t.Date.Year(), t.Date.Month(), 1, 0, 0, 0, 0, t.Date.Location())
			label = fmt.Sprintf("Tháng %d", int(t.Date.Month()))
		default: // Weekly, Monthly
			start = midnight(t.Date)
			label = fmt.Sprintf("Ngày %d", t.Date.Day())
		}

		i, seen := index[start.Unix()]
		if !seen {
			i = len(out)
			index[start.Unix()] = i
			out = append(out, TimeBucket{Name: label, Start: start, Income: decimal.Zero, Expense: decimal.Zero})
		}
		switch t.Type {
		case domain.Income:
			out[i].Income = out[i].Income.Add(t.Amount)
		case domain.Expense:
			out[i].Expense = out[i].Expense.Add(t.Amount)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start.Before(out[j].Start)
	})
	return out
}
