package error

import "errors"

// Expense domain errors.
var (
	// ErrUnknownCategory is returned when the category is not in the configured set.
	ErrUnknownCategory = errors.New("unknown expense category")

	// ErrInvalidExpenseAmount is returned when the amount is zero or negative.
	ErrInvalidExpenseAmount = errors.New("expense amount must be greater than zero")

	// ErrNoExpenses is returned when an operation needs at least one expense record.
	ErrNoExpenses = errors.New("no expenses recorded")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	ErrCodeUnknownCategory      ExpenseErrorCode = "EXP-010001"
	ErrCodeInvalidExpenseAmount ExpenseErrorCode = "EXP-010002"
	ErrCodeNoExpenses           ExpenseErrorCode = "EXP-010003"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
