package domain

import "strings"

// TransactionType classifies a money movement as income or expense.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// ReportPeriod is the time window used to filter transactions for summary display.
type ReportPeriod string

const (
	Weekly    ReportPeriod = "WEEKLY"
	Monthly   ReportPeriod = "MONTHLY"
	Quarterly ReportPeriod = "QUARTERLY"
	Yearly    ReportPeriod = "YEARLY"
)

// Label returns the Vietnamese display label shown by the dashboard.
func (p ReportPeriod) Label() string {
	switch p {
	case Weekly:
		return "Tuần"
	case Monthly:
		return "Tháng"
	case Quarterly:
		return "Quý"
	case Yearly:
		return "Năm"
	}
	return string(p)
}

// ParseReportPeriod maps a query-string value to a ReportPeriod.
// Unknown or empty values default to Monthly, the dashboard's initial view.
func ParseReportPeriod(s string) ReportPeriod {
	switch ReportPeriod(strings.ToUpper(strings.TrimSpace(s))) {
	case Weekly:
		return Weekly
	case Monthly:
		return Monthly
	case Quarterly:
		return Quarterly
	case Yearly:
		return Yearly
	}
	return Monthly
}
