package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SavingsGoal tracks progress toward a target amount by a target date.
// CurrentAmount starts at zero and only grows via contributions; it must
// never exceed TargetAmount.
type SavingsGoal struct {
	GoalID        string          `json:"goalID"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	TargetDate    time.Time       `json:"targetDate"`
	CreatedAt     time.Time       `json:"createdAt"`
}
