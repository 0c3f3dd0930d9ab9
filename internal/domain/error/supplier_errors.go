// Package error defines domain-specific errors for the PyME Finance application.
package error

import "errors"

// Supplier domain errors.
var (
	// ErrSupplierNotFound is returned when a supplier does not exist.
	ErrSupplierNotFound = errors.New("supplier not found")

	// ErrSupplierNameRequired is returned when a supplier name is empty.
	ErrSupplierNameRequired = errors.New("supplier name is required")
)

// SupplierErrorCode defines error codes for supplier errors.
// Format: SUP-XXYYYY where XX is category and YYYY is specific error.
type SupplierErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeSupplierNameRequired SupplierErrorCode = "SUP-010001"

	// Not found errors (03XXXX)
	ErrCodeSupplierNotFound SupplierErrorCode = "SUP-030001"
)

// SupplierError represents a supplier error with code and message.
type SupplierError struct {
	Code    SupplierErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SupplierError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SupplierError) Unwrap() error {
	return e.Err
}

// NewSupplierError creates a new SupplierError with the given code and message.
func NewSupplierError(code SupplierErrorCode, message string, err error) *SupplierError {
	return &SupplierError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
