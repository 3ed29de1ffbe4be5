package dto

import (
	"time"

	"github.com/minhvu-dev/personal_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a transaction.
// Date accepts "2006-01-02" or RFC3339.
type CreateTransactionRequest struct {
	Type        domain.TransactionType `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Description string                 `json:"description" binding:"required"`
	Amount      decimal.Decimal        `json:"amount" binding:"required"`
	Date        string                 `json:"date" binding:"required"`
	CategoryID  string                 `json:"categoryID" binding:"required"`
	AccountID   string                 `json:"accountID" binding:"required"`
}

// TransactionResponse mirrors domain.Transaction.
type TransactionResponse struct {
	TransactionID string                 `json:"transactionID"`
	Type          domain.TransactionType `json:"type"`
	Description   string                 `json:"description"`
	Amount        decimal.Decimal        `json:"amount"`
	Date          time.Time              `json:"date"`
	CategoryID    string                 `json:"categoryID"`
	AccountID     string                 `json:"accountID"`
	CreatedAt     time.Time              `json:"createdAt"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		Type:          t.Type,
		Description:   t.Description,
		Amount:        t.Amount,
		Date:          t.Date,
		CategoryID:    t.CategoryID,
		AccountID:     t.AccountID,
		CreatedAt:     t.CreatedAt,
	}
}

// ToListTransactionResponse converts a slice of domain.Transaction to DTOs.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}

// ListTransactionsResponse wraps the full transaction list.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}
