package error

import "errors"

// Chat domain errors.
var (
	// ErrEmptyMessage is returned when the message is empty after sanitization.
	ErrEmptyMessage = errors.New("message is empty")

	// ErrEmptyTranscript is returned when an operation needs at least one chat turn.
	ErrEmptyTranscript = errors.New("transcript is empty")
)

// ChatErrorCode defines error codes for chat errors.
// Format: CHT-XXYYYY where XX is category and YYYY is specific error.
type ChatErrorCode string

const (
	ErrCodeEmptyMessage    ChatErrorCode = "CHT-010001"
	ErrCodeEmptyTranscript ChatErrorCode = "CHT-010002"
)

// ChatError represents a chat error with code and message.
type ChatError struct {
	Code    ChatErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ChatError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ChatError) Unwrap() error {
	return e.Err
}

// NewChatError creates a new ChatError with the given code and message.
func NewChatError(code ChatErrorCode, message string, err error) *ChatError {
	return &ChatError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
