package adapters

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/finova/backend/internal/application/adapter"
	domainerror "github.com/finova/backend/internal/domain/error"
)

// SessionClaims represents the claims carried by a session token.
type SessionClaims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

// sessionTokenService implements the adapter.SessionTokenService interface
// with HS256-signed JWTs. The token carries only the session ID; all state
// lives in the session store, so a token for an expired session validates
// but resolves to a not-found session.
type sessionTokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewSessionTokenService creates a new session token service instance.
func NewSessionTokenService(secret string, ttl time.Duration) adapter.SessionTokenService {
	return &sessionTokenService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// GenerateToken creates a signed token bound to the session ID.
func (s *sessionTokenService) GenerateToken(_ context.Context, sessionID uuid.UUID) (string, error) {
	now := time.Now().UTC()
	claims := SessionClaims{
		SessionID: sessionID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "finova-advisor",
			Subject:   sessionID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// ValidateToken verifies the signature and expiry and returns the session ID.
func (s *sessionTokenService) ValidateToken(_ context.Context, tokenString string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return uuid.Nil, domainerror.NewSessionError(
			domainerror.ErrCodeInvalidSessionToken,
			"session token failed validation",
			domainerror.ErrInvalidSessionToken,
		)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return uuid.Nil, domainerror.NewSessionError(
			domainerror.ErrCodeInvalidSessionToken,
			"session token carries invalid claims",
			domainerror.ErrInvalidSessionToken,
		)
	}

	sessionID, err := uuid.Parse(claims.SessionID)
	if err != nil {
		return uuid.Nil, domainerror.NewSessionError(
			domainerror.ErrCodeInvalidSessionToken,
			"session token carries a malformed session ID",
			domainerror.ErrInvalidSessionToken,
		)
	}
	return sessionID, nil
}
