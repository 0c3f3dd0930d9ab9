// Package error defines domain-specific errors for the PyME Finance application.
package error

import "errors"

// Company domain errors.
var (
	// ErrCompanyNotFound is returned when a company does not exist.
	ErrCompanyNotFound = errors.New("company not found")

	// ErrCompanyNameRequired is returned when a company name is empty.
	ErrCompanyNameRequired = errors.New("company name is required")

	// ErrMissingCompanyID is returned when a request lacks the company scope.
	ErrMissingCompanyID = errors.New("company id is required")
)

// CompanyErrorCode defines error codes for company errors.
// Format: CMP-XXYYYY where XX is category and YYYY is specific error.
type CompanyErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCompanyNameRequired CompanyErrorCode = "CMP-010001"
	ErrCodeMissingCompanyID    CompanyErrorCode = "CMP-010002"

	// Not found errors (03XXXX)
	ErrCodeCompanyNotFound CompanyErrorCode = "CMP-030001"
)

// CompanyError represents a company error with code and message.
type CompanyError struct {
	Code    CompanyErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CompanyError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CompanyError) Unwrap() error {
	return e.Err
}

// NewCompanyError creates a new CompanyError with the given code and message.
func NewCompanyError(code CompanyErrorCode, message string, err error) *CompanyError {
	return &CompanyError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
