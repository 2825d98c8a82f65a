package error

import "errors"

// Inference domain errors. Hosted endpoint failures are surfaced to the
// user without automatic retry; the Retryable flag only informs the
// message shown ("try again in a moment" vs. a configuration error).
var (
	// ErrInferenceNotConfigured is returned when no credential is configured.
	ErrInferenceNotConfigured = errors.New("inference service is not configured")

	// ErrModelLoading is returned when the hosted model is still warming up (HTTP 503).
	ErrModelLoading = errors.New("model is loading")

	// ErrInferenceTimeout is returned when the hosted endpoint did not answer in time.
	ErrInferenceTimeout = errors.New("inference request timed out")

	// ErrInferenceFailed is returned for any other endpoint failure.
	ErrInferenceFailed = errors.New("inference request failed")

	// ErrEmptyInferenceResponse is returned when the endpoint answered with no usable content.
	ErrEmptyInferenceResponse = errors.New("empty inference response")
)

// InferenceErrorCode defines error codes for inference errors.
// Format: INF-XXYYYY where XX is category and YYYY is specific error.
type InferenceErrorCode string

const (
	ErrCodeInferenceNotConfigured InferenceErrorCode = "INF-010001"
	ErrCodeModelLoading           InferenceErrorCode = "INF-020001"
	ErrCodeInferenceTimeout       InferenceErrorCode = "INF-020002"
	ErrCodeInferenceRateLimited   InferenceErrorCode = "INF-020003"
	ErrCodeInferenceAuth          InferenceErrorCode = "INF-020004"
	ErrCodeInferenceFailed        InferenceErrorCode = "INF-020005"
	ErrCodeEmptyResponse          InferenceErrorCode = "INF-020006"
)

// InferenceError represents an inference error with code and message.
type InferenceError struct {
	Code      InferenceErrorCode
	Message   string
	Retryable bool
	Err       error
}

// Error implements the error interface.
func (e *InferenceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *InferenceError) Unwrap() error {
	return e.Err
}

// NewInferenceError creates a new InferenceError.
func NewInferenceError(code InferenceErrorCode, message string, retryable bool, err error) *InferenceError {
	return &InferenceError{
		Code:      code,
		Message:   message,
		Retryable: retryable,
		Err:       err,
	}
}
