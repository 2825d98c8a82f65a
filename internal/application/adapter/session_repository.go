// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finova/backend/internal/domain/entity"
)

// SessionRepository stores session state for the lifetime of a session.
// Implementations must expire sessions after the configured TTL; Save
// refreshes the TTL.
type SessionRepository interface {
	// Save persists the session and refreshes its TTL.
	Save(ctx context.Context, session *entity.Session) error

	// FindByID retrieves a session by its ID. Returns
	// domainerror.ErrSessionNotFound when absent or expired.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error)

	// Delete removes a session. Deleting an absent session is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
