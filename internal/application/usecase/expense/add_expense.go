package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finova/backend/internal/application/adapter"
	"github.com/finova/backend/internal/domain/entity"
	domainerror "github.com/finova/backend/internal/domain/error"
	"github.com/finova/backend/internal/domain/valueobject"
)

// AddExpenseInput represents the input for adding an expense.
type AddExpenseInput struct {
	SessionID   uuid.UUID
	Category    string // optional; inferred from Description when empty
	Amount      decimal.Decimal
	Description string
}

// AddExpenseOutput represents the output of adding an expense.
type AddExpenseOutput struct {
	Expense *entity.Expense
}

// AddExpenseUseCase records a monthly expense on the session.
type AddExpenseUseCase struct {
	sessionRepo adapter.SessionRepository
	rules       valueobject.AdvisorRules
}

// NewAddExpenseUseCase creates a new AddExpenseUseCase instance.
func NewAddExpenseUseCase(sessionRepo adapter.SessionRepository, rules valueobject.AdvisorRules) *AddExpenseUseCase {
	return &AddExpenseUseCase{
		sessionRepo: sessionRepo,
		rules:       rules,
	}
}

// Execute validates and stores the expense. A missing category is inferred
// from the description; an explicit category must be in the configured set.
func (uc *AddExpenseUseCase) Execute(ctx context.Context, input AddExpenseInput) (*AddExpenseOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"expense amount must be greater than zero",
			domainerror.ErrInvalidExpenseAmount,
		)
	}

	category := input.Category
	if category == "" {
		category = CategorizeDescription(input.Description)
	}
	if !uc.rules.KnowsCategory(category) {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeUnknownCategory,
			fmt.Sprintf("unknown expense category %q", category),
			domainerror.ErrUnknownCategory,
		)
	}

	sess, err := uc.sessionRepo.FindByID(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	exp := entity.NewExpense(category, input.Amount, input.Description)
	sess.Expenses = append(sess.Expenses, exp)
	sess.Touch()

	if err := uc.sessionRepo.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to save expense: %w", err)
	}

	return &AddExpenseOutput{
		Expense: exp,
	}, nil
}
