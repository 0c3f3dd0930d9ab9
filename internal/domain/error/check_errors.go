// Package error defines domain-specific errors for the PyME Finance application.
package error

import "errors"

// Check domain errors.
var (
	// ErrCheckNotFound is returned when a check does not exist.
	ErrCheckNotFound = errors.New("check not found")

	// ErrInvalidCheckStatus is returned when a check status value is not recognized.
	ErrInvalidCheckStatus = errors.New("check status must be: pending, paid, rejected, or cancelled")

	// ErrCheckStatusFinal is returned when transitioning out of a terminal check status.
	ErrCheckStatusFinal = errors.New("check status can only change while the check is pending")

	// ErrInvalidCheckDates is returned when a check due date precedes its issue date.
	ErrInvalidCheckDates = errors.New("due date must not be before issue date")
)

// CheckErrorCode defines error codes for check errors.
// Format: CHK-XXYYYY where XX is category and YYYY is specific error.
type CheckErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidCheckStatus CheckErrorCode = "CHK-010001"
	ErrCodeInvalidCheckDates  CheckErrorCode = "CHK-010002"

	// State errors (02XXXX)
	ErrCodeCheckStatusFinal CheckErrorCode = "CHK-020001"

	// Not found errors (03XXXX)
	ErrCodeCheckNotFound CheckErrorCode = "CHK-030001"
)

// CheckError represents a check error with code and message.
type CheckError struct {
	Code    CheckErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CheckError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CheckError) Unwrap() error {
	return e.Err
}

// NewCheckError creates a new CheckError with the given code and message.
func NewCheckError(code CheckErrorCode, message string, err error) *CheckError {
	return &CheckError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
