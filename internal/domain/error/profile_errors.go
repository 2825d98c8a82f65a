package error

import "errors"

// Profile domain errors.
var (
	// ErrProfileNotFound is returned when the session has no saved profile yet.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrInvalidAge is returned when the age is outside the accepted range.
	ErrInvalidAge = errors.New("age must be between 18 and 100")

	// ErrNegativeAmount is returned when a currency field is negative.
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInvalidRiskTolerance is returned for an unknown risk tolerance value.
	ErrInvalidRiskTolerance = errors.New("invalid risk tolerance")

	// ErrInvalidUserType is returned for an unknown user type value.
	ErrInvalidUserType = errors.New("invalid user type")

	// ErrMissingName is returned when the profile name is empty after sanitization.
	ErrMissingName = errors.New("name is required")

	// ErrImplausibleExpenses is returned when monthly expenses exceed annual income.
	ErrImplausibleExpenses = errors.New("monthly expenses exceed annual income")
)

// ProfileErrorCode defines error codes for profile errors.
// Format: PRF-XXYYYY where XX is category and YYYY is specific error.
type ProfileErrorCode string

const (
	ErrCodeProfileNotFound      ProfileErrorCode = "PRF-010001"
	ErrCodeInvalidAge           ProfileErrorCode = "PRF-010002"
	ErrCodeNegativeAmount       ProfileErrorCode = "PRF-010003"
	ErrCodeInvalidRiskTolerance ProfileErrorCode = "PRF-010004"
	ErrCodeInvalidUserType      ProfileErrorCode = "PRF-010005"
	ErrCodeMissingName          ProfileErrorCode = "PRF-010006"
	ErrCodeImplausibleExpenses  ProfileErrorCode = "PRF-010007"
)

// ProfileError represents a profile error with code and message.
type ProfileError struct {
	Code    ProfileErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProfileError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProfileError) Unwrap() error {
	return e.Err
}

// NewProfileError creates a new ProfileError with the given code and message.
func NewProfileError(code ProfileErrorCode, message string, err error) *ProfileError {
	return &ProfileError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
