package dto

import (
	"time"

	"github.com/finova/backend/internal/domain/entity"
)

// StartSessionResponse represents the response for session creation.
type StartSessionResponse struct {
	SessionID string    `json:"session_id"`
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionResponse represents the session snapshot in API responses.
type SessionResponse struct {
	SessionID    string             `json:"session_id"`
	HasProfile   bool               `json:"has_profile"`
	ExpenseCount int                `json:"expense_count"`
	Transcript   []ChatTurnResponse `json:"transcript"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// ChatTurnResponse represents one transcript entry in API responses.
type ChatTurnResponse struct {
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	Intent    string    `json:"intent,omitempty"`
	Sentiment string    `json:"sentiment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ToSessionResponse converts a domain Session entity to a SessionResponse DTO.
func ToSessionResponse(sess *entity.Session) SessionResponse {
	transcript := make([]ChatTurnResponse, len(sess.Transcript))
	for i, turn := range sess.Transcript {
		transcript[i] = ChatTurnResponse{
			Role:      string(turn.Role),
			Text:      turn.Text,
			Intent:    string(turn.Intent),
			Sentiment: string(turn.Sentiment),
			CreatedAt: turn.CreatedAt,
		}
	}

	return SessionResponse{
		SessionID:    sess.ID.String(),
		HasProfile:   sess.Profile != nil,
		ExpenseCount: len(sess.Expenses),
		Transcript:   transcript,
		CreatedAt:    sess.CreatedAt,
		UpdatedAt:    sess.UpdatedAt,
	}
}
