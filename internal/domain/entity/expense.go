package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense represents a monthly expense in a single category. Amounts for
// the same category accumulate within a session.
type Expense struct {
	ID          uuid.UUID
	Category    string
	Amount      decimal.Decimal
	Description string
	CreatedAt   time.Time
}

// NewExpense creates a new Expense entity.
func NewExpense(category string, amount decimal.Decimal, description string) *Expense {
	return &Expense{
		ID:          uuid.New(),
		Category:    category,
		Amount:      amount,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
}

// TotalExpenses sums the amounts of a collection of expenses.
func TotalExpenses(expenses []*Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// ExpensesByCategory aggregates expense amounts per category.
func ExpensesByCategory(expenses []*Expense) map[string]decimal.Decimal {
	byCategory := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		byCategory[e.Category] = byCategory[e.Category].Add(e.Amount)
	}
	return byCategory
}
