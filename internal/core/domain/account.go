package domain

import (
	"github.com/shopspring/decimal"
)

// Account is a balance-holding bucket money moves into or out of.
// Balance may go negative for credit-type accounts.
type Account struct {
	AccountID string          `json:"accountID"`
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
}
