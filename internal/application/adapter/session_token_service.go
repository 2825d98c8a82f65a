package adapter

import (
	"context"

	"github.com/google/uuid"
)

// SessionTokenService issues and validates the signed tokens that identify
// anonymous sessions.
type SessionTokenService interface {
	// GenerateToken creates a signed token bound to the session ID.
	GenerateToken(ctx context.Context, sessionID uuid.UUID) (string, error)

	// ValidateToken verifies the token signature and expiry and returns the
	// session ID it is bound to.
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}
