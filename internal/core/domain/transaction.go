package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a single recorded money movement against an account.
// Transactions are immutable once created: they are appended to the ledger and
// never updated or deleted.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	Type          TransactionType `json:"type"`          // INCOME or EXPENSE
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`     // Always positive; sign is carried by Type
	Date          time.Time       `json:"date"`       // Calendar date the movement occurred
	CategoryID    string          `json:"categoryID"` // Weak reference -> Category.CategoryID
	AccountID     string          `json:"accountID"`  // Weak reference -> Account.AccountID
	CreatedAt     time.Time       `json:"createdAt"`
}
