package health

import (
	"context"

	"github.com/google/uuid"

	"github.com/finova/backend/internal/application/adapter"
	"github.com/finova/backend/internal/domain/entity"
	domainerror "github.com/finova/backend/internal/domain/error"
)

// ComputeScoreInput represents the input for computing the health score.
type ComputeScoreInput struct {
	SessionID uuid.UUID
}

// ComputeScoreOutput represents the output of computing the health score.
type ComputeScoreOutput struct {
	Score *entity.HealthScore
}

// ComputeScoreUseCase scores the session's profile and expenses.
type ComputeScoreUseCase struct {
	sessionRepo adapter.SessionRepository
	calculator  *Calculator
}

// NewComputeScoreUseCase creates a new ComputeScoreUseCase instance.
func NewComputeScoreUseCase(sessionRepo adapter.SessionRepository, calculator *Calculator) *ComputeScoreUseCase {
	return &ComputeScoreUseCase{
		sessionRepo: sessionRepo,
		calculator:  calculator,
	}
}

// Execute computes the health score. A profile must have been saved first.
func (uc *ComputeScoreUseCase) Execute(ctx context.Context, input ComputeScoreInput) (*ComputeScoreOutput, error) {
	sess, err := uc.sessionRepo.FindByID(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if sess.Profile == nil {
		return nil, domainerror.NewProfileError(
			domainerror.ErrCodeProfileNotFound,
			"save a profile before requesting a health score",
			domainerror.ErrProfileNotFound,
		)
	}

	return &ComputeScoreOutput{
		Score: uc.calculator.Compute(sess.Profile, sess.Expenses),
	}, nil
}
