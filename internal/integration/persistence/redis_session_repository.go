// Package persistence implements repository interfaces for the session
// store and database operations.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/finova/backend/internal/application/adapter"
	"github.com/finova/backend/internal/domain/entity"
	domainerror "github.com/finova/backend/internal/domain/error"
)

const sessionKeyPrefix = "finova:session:"

// redisSessionRepository implements the adapter.SessionRepository interface
// on Redis. Sessions are stored as JSON under a TTL; Redis expiry is the
// only session expiry mechanism.
type redisSessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionRepository creates a new Redis session repository instance.
func NewRedisSessionRepository(client *redis.Client, ttl time.Duration) adapter.SessionRepository {
	return &redisSessionRepository{
		client: client,
		ttl:    ttl,
	}
}

// Save persists the session and refreshes its TTL.
func (r *redisSessionRepository) Save(ctx context.Context, session *entity.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := r.client.Set(ctx, sessionKey(session.ID), payload, r.ttl).Err(); err != nil {
		return domainerror.NewSessionError(
			domainerror.ErrCodeSessionStoreFailure,
			"failed to store session",
			err,
		)
	}
	return nil
}

// FindByID retrieves a session by its ID.
func (r *redisSessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	payload, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domainerror.NewSessionError(
			domainerror.ErrCodeSessionNotFound,
			"session not found or expired",
			domainerror.ErrSessionNotFound,
		)
	}
	if err != nil {
		return nil, domainerror.NewSessionError(
			domainerror.ErrCodeSessionStoreFailure,
			"failed to load session",
			err,
		)
	}

	var session entity.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &session, nil
}

// Delete removes a session. Deleting an absent session is not an error.
func (r *redisSessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return domainerror.NewSessionError(
			domainerror.ErrCodeSessionStoreFailure,
			"failed to delete session",
			err,
		)
	}
	return nil
}

func sessionKey(id uuid.UUID) string {
	return sessionKeyPrefix + id.String()
}
