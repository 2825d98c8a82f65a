package session

import (
	"context"

	"github.com/google/uuid"

	"github.com/finova/backend/internal/application/adapter"
	"github.com/finova/backend/internal/domain/entity"
)

// GetSessionInput represents the input for session retrieval.
type GetSessionInput struct {
	SessionID uuid.UUID
}

// GetSessionOutput represents the output of session retrieval.
type GetSessionOutput struct {
	Session *entity.Session
}

// GetSessionUseCase retrieves the current session snapshot.
type GetSessionUseCase struct {
	sessionRepo adapter.SessionRepository
}

// NewGetSessionUseCase creates a new GetSessionUseCase instance.
func NewGetSessionUseCase(sessionRepo adapter.SessionRepository) *GetSessionUseCase {
	return &GetSessionUseCase{
		sessionRepo: sessionRepo,
	}
}

// Execute retrieves the session by ID.
func (uc *GetSessionUseCase) Execute(ctx context.Context, input GetSessionInput) (*GetSessionOutput, error) {
	sess, err := uc.sessionRepo.FindByID(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	return &GetSessionOutput{
		Session: sess,
	}, nil
}
