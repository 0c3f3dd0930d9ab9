// Package error defines domain-specific errors for the PyME Finance application.
package error

import "errors"

// Credit domain errors.
var (
	// ErrInvalidTerm is returned when a credit term is not a positive number of months.
	ErrInvalidTerm = errors.New("term must be a positive number of months")

	// ErrInvalidInterestRate is returned when an interest rate is negative or not finite.
	ErrInvalidInterestRate = errors.New("interest rate must be a non-negative number")

	// ErrInvalidPrincipal is returned when a credit principal is not a positive amount.
	ErrInvalidPrincipal = errors.New("principal must be a positive amount")

	// ErrCreditNotFound is returned when a credit does not exist.
	ErrCreditNotFound = errors.New("credit not found")

	// ErrInvalidCreditStatus is returned when a credit status value is not recognized.
	ErrInvalidCreditStatus = errors.New("credit status must be: active, paid, or defaulted")

	// ErrCreditStatusFinal is returned when transitioning out of a terminal credit status.
	ErrCreditStatusFinal = errors.New("credit status can only change while the credit is active")
)

// CreditErrorCode defines error codes for credit errors.
// Format: CRD-XXYYYY where XX is category and YYYY is specific error.
type CreditErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTerm         CreditErrorCode = "CRD-010001"
	ErrCodeInvalidInterestRate CreditErrorCode = "CRD-010002"
	ErrCodeInvalidPrincipal    CreditErrorCode = "CRD-010003"
	ErrCodeInvalidCreditStatus CreditErrorCode = "CRD-010004"

	// State errors (02XXXX)
	ErrCodeCreditStatusFinal CreditErrorCode = "CRD-020001"

	// Not found errors (03XXXX)
	ErrCodeCreditNotFound CreditErrorCode = "CRD-030001"
)

// CreditError represents a credit error with code and message.
type CreditError struct {
	Code    CreditErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CreditError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CreditError) Unwrap() error {
	return e.Err
}

// NewCreditError creates a new CreditError with the given code and message.
func NewCreditError(code CreditErrorCode, message string, err error) *CreditError {
	return &CreditError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
