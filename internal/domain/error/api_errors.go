// Package error defines domain-specific errors for the PyME Finance application.
package error

import "errors"

// API-level errors.
var (
	// ErrRateLimited is returned when a client exceeds the request rate limit.
	ErrRateLimited = errors.New("too many requests")
)

// APIErrorCode defines error codes for transport-level errors.
// Format: API-XXYYYY where XX is category and YYYY is specific error.
type APIErrorCode string

const (
	ErrCodeRateLimited    APIErrorCode = "API-010001"
	ErrCodeInvalidRequest APIErrorCode = "API-010002"
	ErrCodeInternalError  APIErrorCode = "API-990001"
)
