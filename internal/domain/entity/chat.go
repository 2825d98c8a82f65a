package entity

import (
	"time"
)

// ChatRole identifies the author of a chat turn.
type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ChatTurn is a single entry in the session transcript.
type ChatTurn struct {
	Role      ChatRole  `json:"role"`
	Text      string    `json:"text"`
	Intent    Intent    `json:"intent,omitempty"`
	Sentiment Sentiment `json:"sentiment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewChatTurn creates a chat turn stamped with the current time.
func NewChatTurn(role ChatRole, text string) ChatTurn {
	return ChatTurn{
		Role:      role,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
}

// AppendTurn appends a turn to the transcript and drops the oldest entries
// once the transcript exceeds maxTurns. Truncation bounds memory only; it
// carries no correctness weight.
func AppendTurn(transcript []ChatTurn, turn ChatTurn, maxTurns int) []ChatTurn {
	transcript = append(transcript, turn)
	if maxTurns > 0 && len(transcript) > maxTurns {
		transcript = transcript[len(transcript)-maxTurns:]
	}
	return transcript
}
