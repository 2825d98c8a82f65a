package error

import "errors"

// Report domain errors.
var (
	// ErrReportNeedsProfile is returned when report generation is requested
	// before a profile has been saved.
	ErrReportNeedsProfile = errors.New("a saved profile is required for report generation")

	// ErrInvalidRecipient is returned for a malformed email recipient.
	ErrInvalidRecipient = errors.New("invalid email recipient")

	// ErrPermanentEmailFailure is returned for delivery failures that must not be retried.
	ErrPermanentEmailFailure = errors.New("permanent email failure")

	// ErrTemporaryEmailFailure is returned for delivery failures that may be retried.
	ErrTemporaryEmailFailure = errors.New("temporary email failure")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	ErrCodeReportNeedsProfile    ReportErrorCode = "RPT-010001"
	ErrCodeInvalidRecipient      ReportErrorCode = "RPT-010002"
	ErrCodePermanentEmailFailure ReportErrorCode = "RPT-020001"
	ErrCodeTemporaryEmailFailure ReportErrorCode = "RPT-020002"
	ErrCodeQueueFailure          ReportErrorCode = "RPT-020003"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
