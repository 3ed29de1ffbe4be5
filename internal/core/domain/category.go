package domain

// Category is a classification label for a transaction, scoped to income or
// expense. The catalog is seeded at startup and read-only thereafter; it is
// never persisted.
type Category struct {
	CategoryID string          `json:"categoryID"`
	Name       string          `json:"name"`
	Type       TransactionType `json:"type"`
}
