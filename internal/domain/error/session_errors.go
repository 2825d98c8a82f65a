// Package error defines domain-specific errors for the FINOVA advisor.
package error

import "errors"

// Session domain errors.
var (
	// ErrSessionNotFound is returned when a session does not exist or has expired.
	ErrSessionNotFound = errors.New("session not found or expired")

	// ErrMissingSessionToken is returned when no session token accompanies a request.
	ErrMissingSessionToken = errors.New("session token is required")

	// ErrInvalidSessionToken is returned when the session token fails validation.
	ErrInvalidSessionToken = errors.New("invalid session token")
)

// SessionErrorCode defines error codes for session errors.
// Format: SES-XXYYYY where XX is category and YYYY is specific error.
type SessionErrorCode string

const (
	ErrCodeSessionNotFound     SessionErrorCode = "SES-010001"
	ErrCodeMissingSessionToken SessionErrorCode = "SES-010002"
	ErrCodeInvalidSessionToken SessionErrorCode = "SES-010003"
	ErrCodeSessionStoreFailure SessionErrorCode = "SES-020001"
	ErrCodeRateLimited         SessionErrorCode = "SES-030001"
)

// SessionError represents a session error with code and message.
type SessionError struct {
	Code    SessionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SessionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SessionError) Unwrap() error {
	return e.Err
}

// NewSessionError creates a new SessionError with the given code and message.
func NewSessionError(code SessionErrorCode, message string, err error) *SessionError {
	return &SessionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
