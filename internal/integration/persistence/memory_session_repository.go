package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/finova/backend/internal/application/adapter"
	"github.com/finova/backend/internal/domain/entity"
	domainerror "github.com/finova/backend/internal/domain/error"
)

type memorySessionEntry struct {
	session   *entity.Session
	expiresAt time.Time
}

// memorySessionRepository is the in-process fallback session store used
// when no Redis address is configured. Expired entries are dropped lazily
// on access; suitable for single-instance deployments only.
//
// Sessions round-trip through JSON on Save and FindByID so callers always
// hold their own copy, matching the Redis repository: mutations only reach
// the store through Save, and concurrent handlers never share slices.
type memorySessionRepository struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]memorySessionEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemorySessionRepository creates a new in-memory session repository instance.
func NewMemorySessionRepository(ttl time.Duration) adapter.SessionRepository {
	return &memorySessionRepository{
		entries: make(map[uuid.UUID]memorySessionEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Save persists a copy of the session and refreshes its TTL.
func (r *memorySessionRepository) Save(_ context.Context, session *entity.Session) error {
	stored, err := cloneSession(session)
	if err != nil {
		return domainerror.NewSessionError(
			domainerror.ErrCodeSessionStoreFailure,
			"failed to store session",
			err,
		)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[session.ID] = memorySessionEntry{
		session:   stored,
		expiresAt: r.now().Add(r.ttl),
	}
	return nil
}

// FindByID retrieves a copy of the session by its ID.
func (r *memorySessionRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[id]
	if !ok || r.now().After(entry.expiresAt) {
		delete(r.entries, id)
		return nil, domainerror.NewSessionError(
			domainerror.ErrCodeSessionNotFound,
			"session not found or expired",
			domainerror.ErrSessionNotFound,
		)
	}

	loaded, err := cloneSession(entry.session)
	if err != nil {
		return nil, domainerror.NewSessionError(
			domainerror.ErrCodeSessionStoreFailure,
			"failed to load session",
			err,
		)
	}
	return loaded, nil
}

// Delete removes a session. Deleting an absent session is not an error.
func (r *memorySessionRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, id)
	return nil
}

// cloneSession deep-copies a session through its JSON form, the same
// encoding the Redis repository stores.
func cloneSession(session *entity.Session) (*entity.Session, error) {
	payload, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("failed to encode session: %w", err)
	}

	var clone entity.Session
	if err := json.Unmarshal(payload, &clone); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &clone, nil
}
