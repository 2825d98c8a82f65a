// Package session contains session lifecycle use cases.
package session

import (
	"context"
	"fmt"

	"github.com/finova/backend/internal/application/adapter"
	"github.com/finova/backend/internal/domain/entity"
	domainerror "github.com/finova/backend/internal/domain/error"
)

// StartSessionOutput represents the output of session creation.
type StartSessionOutput struct {
	Session *entity.Session
	Token   string
}

// StartSessionUseCase creates a new anonymous session and issues its token.
type StartSessionUseCase struct {
	sessionRepo  adapter.SessionRepository
	tokenService adapter.SessionTokenService
}

// NewStartSessionUseCase creates a new StartSessionUseCase instance.
func NewStartSessionUseCase(sessionRepo adapter.SessionRepository, tokenService adapter.SessionTokenService) *StartSessionUseCase {
	return &StartSessionUseCase{
		sessionRepo:  sessionRepo,
		tokenService: tokenService,
	}
}

// Execute creates the session, persists it and signs its token.
func (uc *StartSessionUseCase) Execute(ctx context.Context) (*StartSessionOutput, error) {
	sess := entity.NewSession()

	if err := uc.sessionRepo.Save(ctx, sess); err != nil {
		return nil, domainerror.NewSessionError(
			domainerror.ErrCodeSessionStoreFailure,
			"failed to create session",
			err,
		)
	}

	token, err := uc.tokenService.GenerateToken(ctx, sess.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	return &StartSessionOutput{
		Session: sess,
		Token:   token,
	}, nil
}
