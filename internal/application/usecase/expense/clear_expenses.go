package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finova/backend/internal/application/adapter"
)

// ClearExpensesInput represents the input for clearing expenses.
type ClearExpensesInput struct {
	SessionID uuid.UUID
}

// ClearExpensesUseCase removes all expense records from the session.
type ClearExpensesUseCase struct {
	sessionRepo adapter.SessionRepository
}

// NewClearExpensesUseCase creates a new ClearExpensesUseCase instance.
func NewClearExpensesUseCase(sessionRepo adapter.SessionRepository) *ClearExpensesUseCase {
	return &ClearExpensesUseCase{
		sessionRepo: sessionRepo,
	}
}

// Execute clears the session's expenses.
func (uc *ClearExpensesUseCase) Execute(ctx context.Context, input ClearExpensesInput) error {
	sess, err := uc.sessionRepo.FindByID(ctx, input.SessionID)
	if err != nil {
		return err
	}

	sess.Expenses = nil
	sess.Touch()

	if err := uc.sessionRepo.Save(ctx, sess); err != nil {
		return fmt.Errorf("failed to clear expenses: %w", err)
	}
	return nil
}
