package adapters

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	domainerror "github.com/finova/backend/internal/domain/error"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	svc := NewSessionTokenService("test-secret", time.Hour)
	sessionID := uuid.New()

	token, err := svc.GenerateToken(context.Background(), sessionID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("expected a signed token")
	}

	got, err := svc.ValidateToken(context.Background(), token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != sessionID {
		t.Errorf("session ID = %v, want %v", got, sessionID)
	}
}

func TestSessionTokenWrongSecret(t *testing.T) {
	issuer := NewSessionTokenService("secret-a", time.Hour)
	verifier := NewSessionTokenService("secret-b", time.Hour)

	token, err := issuer.GenerateToken(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := verifier.ValidateToken(context.Background(), token); !errors.Is(err, domainerror.ErrInvalidSessionToken) {
		t.Errorf("error = %v, want ErrInvalidSessionToken", err)
	}
}

func TestSessionTokenExpiry(t *testing.T) {
	svc := NewSessionTokenService("test-secret", -time.Minute)

	token, err := svc.GenerateToken(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.ValidateToken(context.Background(), token); !errors.Is(err, domainerror.ErrInvalidSessionToken) {
		t.Errorf("error = %v, want ErrInvalidSessionToken for an expired token", err)
	}
}

func TestSessionTokenGarbage(t *testing.T) {
	svc := NewSessionTokenService("test-secret", time.Hour)

	for _, token := range []string{"", "not-a-jwt", "aaa.bbb.ccc"} {
		if _, err := svc.ValidateToken(context.Background(), token); !errors.Is(err, domainerror.ErrInvalidSessionToken) {
			t.Errorf("token %q: error = %v, want ErrInvalidSessionToken", token, err)
		}
	}
}
