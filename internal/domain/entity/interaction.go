package entity

import (
	"time"

	"github.com/google/uuid"
)

// Interaction is a privacy-masked analytics record of one chat exchange.
// The session ID is masked before the record is created; raw user text is
// never stored.
type Interaction struct {
	ID              uuid.UUID
	MaskedSessionID string
	Intent          Intent
	Sentiment       Sentiment
	UserType        UserType
	GoalTags        []string
	CreatedAt       time.Time
}

// NewInteraction creates an interaction record.
func NewInteraction(maskedSessionID string, intent Intent, sentiment Sentiment, userType UserType, goalTags []string) *Interaction {
	return &Interaction{
		ID:              uuid.New(),
		MaskedSessionID: maskedSessionID,
		Intent:          intent,
		Sentiment:       sentiment,
		UserType:        userType,
		GoalTags:        goalTags,
		CreatedAt:       time.Now().UTC(),
	}
}
