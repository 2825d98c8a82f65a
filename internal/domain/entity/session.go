package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session holds all state for one user's interaction with the advisor.
// Profile, expenses and transcript live only for the lifetime of the
// session; the session store discards them on TTL expiry.
type Session struct {
	ID         uuid.UUID
	Profile    *Profile
	Expenses   []*Expense
	Transcript []ChatTurn
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewSession creates an empty session.
func NewSession() *Session {
	now := time.Now().UTC()

	return &Session{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch updates the session's modification timestamp.
func (s *Session) Touch() {
	s.UpdatedAt = time.Now().UTC()
}

// MaskedID returns the privacy-masked form of the session ID used in the
// interaction log: first 8 characters followed by "****".
func (s *Session) MaskedID() string {
	id := s.ID.String()
	return id[:8] + "****"
}
