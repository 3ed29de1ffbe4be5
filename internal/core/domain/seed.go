package domain

import (
	"github.com/shopspring/decimal"
)

// DefaultAccounts returns the account set seeded on first run.
// Balances are in VND.
func DefaultAccounts() []Account {
	return []Account{
		{AccountID: "cash", Name: "Tiền mặt", Balance: decimal.NewFromInt(5000000)},
		{AccountID: "bank", Name: "Tài khoản ngân hàng", Balance: decimal.NewFromInt(20000000)},
		{AccountID: "credit", Name: "Thẻ tín dụng", Balance: decimal.Zero},
	}
}

// DefaultCategories returns the fixed built-in category catalog. It is
// rebuilt from this list on every startup and never stored.
func DefaultCategories() []Category {
	return []Category{
		// Expenses
		{CategoryID: "food", Name: "Thực phẩm", Type: Expense},
		{CategoryID: "transport", Name: "Di chuyển", Type: Expense},
		{CategoryID: "housing", Name: "Nhà ở", Type: Expense},
		{CategoryID: "utilities", Name: "Tiện ích", Type: Expense},
		{CategoryID: "entertainment", Name: "Giải trí", Type: Expense},
		{CategoryID: "health", Name: "Sức khỏe", Type: Expense},
		{CategoryID: "shopping", Name: "Mua sắm", Type: Expense},
		{CategoryID: "other_expense", Name: "Khác", Type: Expense},
		// Incomes
		{CategoryID: "salary", Name: "Lương", Type: Income},
		{CategoryID: "bonus", Name: "Thưởng", Type: Income},
		{CategoryID: "investment", Name: "Đầu tư", Type: Income},
		{CategoryID: "other_income", Name: "Khác", Type: Income},
	}
}
