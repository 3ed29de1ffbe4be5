package reporting

import (
	"time"

	"github.com/minhvu-dev/personal_finance_app/internal/core/domain"
)

// midnight truncates t to the start of its calendar day, keeping its location.
func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfPeriod returns midnight at the beginning of the reporting window
// containing ref. Weeks start on Monday (ISO): a Sunday counts as day 7 of
// the week that began the previous Monday.
func StartOfPeriod(ref time.Time, period domain.ReportPeriod) time.Time {
	day := midnight(ref)
	switch period {
	case domain.Weekly:
		wd := int(day.Weekday())
		if wd == 0 {
			wd = 7
		}
		return day.AddDate(0, 0, -(wd - 1))
	case domain.Monthly:
		return time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
	case domain.Quarterly:
		quarterStart := time.Month((int(day.Month())-1)/3*3 + 1)
		return time.Date(day.Year(), quarterStart, 1, 0, 0, 0, 0, day.Location())
	case domain.Yearly:
		return time.Date(day.Year(), time.January, 1, 0, 0, 0, 0, day.Location())
	}
	return day
}

// DaysRemaining returns the whole days left until target, measured from the
// start of now's calendar day. Targets on or before today yield 0.
func DaysRemaining(target, now time.Time) int {
	today := midnight(now)
	end := midnight(target)
	if !end.After(today) {
		return 0
	}
	days := int(end.Sub(today).Hours() / 24)
	if end.Sub(today)%(24*time.Hour) != 0 {
		days++
	}
	return days
}
