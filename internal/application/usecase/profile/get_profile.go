package profile

import (
	"context"

	"github.com/google/uuid"

	"github.com/finova/backend/internal/application/adapter"
	"github.com/finova/backend/internal/domain/entity"
	domainerror "github.com/finova/backend/internal/domain/error"
)

// GetProfileInput represents the input for retrieving a profile.
type GetProfileInput struct {
	SessionID uuid.UUID
}

// GetProfileOutput represents the output of retrieving a profile.
type GetProfileOutput struct {
	Profile *entity.Profile
}

// GetProfileUseCase retrieves the profile stored on the session.
type GetProfileUseCase struct {
	sessionRepo adapter.SessionRepository
}

// NewGetProfileUseCase creates a new GetProfileUseCase instance.
func NewGetProfileUseCase(sessionRepo adapter.SessionRepository) *GetProfileUseCase {
	return &GetProfileUseCase{
		sessionRepo: sessionRepo,
	}
}

// Execute returns the session's profile.
func (uc *GetProfileUseCase) Execute(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	sess, err := uc.sessionRepo.FindByID(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if sess.Profile == nil {
		return nil, domainerror.NewProfileError(
			domainerror.ErrCodeProfileNotFound,
			"no profile saved for this session",
			domainerror.ErrProfileNotFound,
		)
	}

	return &GetProfileOutput{
		Profile: sess.Profile,
	}, nil
}
