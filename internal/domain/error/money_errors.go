// Package error defines domain-specific errors for the PyME Finance application.
package error

import "errors"

// Money domain errors.
var (
	// ErrDivisionByZero is returned when a monetary amount is divided by zero.
	ErrDivisionByZero = errors.New("cannot divide by zero")

	// ErrInvalidAmount is returned when a monetary amount is not a valid finite number.
	ErrInvalidAmount = errors.New("amount must be a valid non-negative number")

	// ErrUnsupportedCurrency is returned when a currency code is not in the supported set.
	ErrUnsupportedCurrency = errors.New("currency is not supported")
)

// MoneyErrorCode defines error codes for money errors.
// Format: MNY-XXYYYY where XX is category and YYYY is specific error.
type MoneyErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidAmount       MoneyErrorCode = "MNY-010001"
	ErrCodeUnsupportedCurrency MoneyErrorCode = "MNY-010002"

	// Arithmetic errors (02XXXX)
	ErrCodeDivisionByZero MoneyErrorCode = "MNY-020001"
)

// MoneyError represents a money error with code and message.
type MoneyError struct {
	Code    MoneyErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *MoneyError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *MoneyError) Unwrap() error {
	return e.Err
}

// NewMoneyError creates a new MoneyError with the given code and message.
func NewMoneyError(code MoneyErrorCode, message string, err error) *MoneyError {
	return &MoneyError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
