package expense

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finova/backend/internal/application/adapter"
	"github.com/finova/backend/internal/domain/entity"
)

// ListExpensesInput represents the input for listing expenses.
type ListExpensesInput struct {
	SessionID uuid.UUID
}

// ListExpensesOutput represents the output of listing expenses.
type ListExpensesOutput struct {
	Expenses   []*entity.Expense
	ByCategory map[string]decimal.Decimal
	Total      decimal.Decimal
}

// ListExpensesUseCase lists the expenses recorded on the session.
type ListExpensesUseCase struct {
	sessionRepo adapter.SessionRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(sessionRepo adapter.SessionRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		sessionRepo: sessionRepo,
	}
}

// Execute returns the session's expense records with per-category totals.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	sess, err := uc.sessionRepo.FindByID(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	return &ListExpensesOutput{
		Expenses:   sess.Expenses,
		ByCategory: entity.ExpensesByCategory(sess.Expenses),
		Total:      entity.TotalExpenses(sess.Expenses),
	}, nil
}
