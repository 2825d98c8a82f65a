package session

import (
	"context"

	"github.com/google/uuid"

	"github.com/finova/backend/internal/application/adapter"
	domainerror "github.com/finova/backend/internal/domain/error"
)

// EndSessionInput represents the input for ending a session.
type EndSessionInput struct {
	SessionID uuid.UUID
}

// EndSessionUseCase discards all state held for a session.
type EndSessionUseCase struct {
	sessionRepo adapter.SessionRepository
}

// NewEndSessionUseCase creates a new EndSessionUseCase instance.
func NewEndSessionUseCase(sessionRepo adapter.SessionRepository) *EndSessionUseCase {
	return &EndSessionUseCase{
		sessionRepo: sessionRepo,
	}
}

// Execute deletes the session from the store.
func (uc *EndSessionUseCase) Execute(ctx context.Context, input EndSessionInput) error {
	if err := uc.sessionRepo.Delete(ctx, input.SessionID); err != nil {
		return domainerror.NewSessionError(
			domainerror.ErrCodeSessionStoreFailure,
			"failed to end session",
			err,
		)
	}
	return nil
}
