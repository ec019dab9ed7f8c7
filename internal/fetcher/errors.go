package fetcher

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// ErrorType represents the category of error that occurred during a fetch operation
type ErrorType string

const (
	// ErrorTypeNetwork indicates a network-level error (connection refused, DNS, etc.)
	ErrorTypeNetwork ErrorType = "network"
	// ErrorTypeRateLimit indicates the request was rejected due to rate limiting (HTTP 429)
	ErrorTypeRateLimit ErrorType = "rate_limit"
	// ErrorTypeServer indicates a server error (HTTP 5xx)
	ErrorTypeServer ErrorType = "server"
	// ErrorTypeClient indicates a client error (HTTP 4xx except 429)
	ErrorTypeClient ErrorType = "client"
	// ErrorTypeValidation indicates a body was received but is not a valid rates document
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeTimeout indicates the request timed out
	ErrorTypeTimeout ErrorType = "timeout"
	// ErrorTypeUnknown indicates an error of unknown type
	ErrorTypeUnknown ErrorType = "unknown"
)

// FetchError represents a structured error from a fetch operation
type FetchError struct {
	Type       ErrorType
	Source     string
	Retryable  bool
	StatusCode int
	Message    string
	Cause      error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	msg := e.Message
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s %s error (status %d): %s", e.Source, e.Type, e.StatusCode, msg)
	}
	return fmt.Sprintf("%s %s error: %s", e.Source, e.Type, msg)
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *FetchError) Unwrap() error {
	return e.Cause
}

// IsValidation reports whether err is a FetchError for a malformed document
func IsValidation(err error) bool {
	var fe *FetchError
	return errors.As(err, &fe) && fe.Type == ErrorTypeValidation
}

// NewNetworkError creates a network error
func NewNetworkError(source string, cause error) *FetchError {
	return &FetchError{
		Type:      ErrorTypeNetwork,
		Source:    source,
		Retryable: true,
		Message:   "request failed",
		Cause:     cause,
	}
}

// NewRateLimitError creates a rate limit error
func NewRateLimitError(source string, statusCode int) *FetchError {
	return &FetchError{
		Type:       ErrorTypeRateLimit,
		Source:     source,
		Retryable:  true,
		StatusCode: statusCode,
		Message:    "rate limit exceeded",
	}
}

// NewServerError creates a server error
func NewServerError(source string, statusCode int) *FetchError {
	return &FetchError{
		Type:       ErrorTypeServer,
		Source:     source,
		Retryable:  true,
		StatusCode: statusCode,
		Message:    "server returned an error",
	}
}

// NewClientError creates a client error
func NewClientError(source string, statusCode int, message string) *FetchError {
	return &FetchError{
		Type:       ErrorTypeClient,
		Source:     source,
		Retryable:  false,
		StatusCode: statusCode,
		Message:    message,
	}
}

// NewValidationError creates a validation error
func NewValidationError(source string, cause error) *FetchError {
	return &FetchError{
		Type:      ErrorTypeValidation,
		Source:    source,
		Retryable: false,
		Message:   "invalid rates document",
		Cause:     cause,
	}
}

// NewTimeoutError creates a timeout error
func NewTimeoutError(source string, cause error) *FetchError {
	return &FetchError{
		Type:      ErrorTypeTimeout,
		Source:    source,
		Retryable: true,
		Message:   "request timed out",
		Cause:     cause,
	}
}

// ClassifyHTTPError classifies an HTTP status code into an appropriate FetchError
func ClassifyHTTPError(source string, statusCode int) *FetchError {
	switch {
	case statusCode == http.StatusTooManyRequests:
		return NewRateLimitError(source, statusCode)
	case statusCode >= 500:
		return NewServerError(source, statusCode)
	case statusCode >= 400:
		return NewClientError(source, statusCode, fmt.Sprintf("client error: HTTP %d", statusCode))
	default:
		return &FetchError{
			Type:       ErrorTypeUnknown,
			Source:     source,
			Retryable:  false,
			StatusCode: statusCode,
			Message:    fmt.Sprintf("unexpected status code: %d", statusCode),
		}
	}
}

// ClassifyTransportError separates timeouts from other transport failures
func ClassifyTransportError(source string, err error) *FetchError {
	var ne net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
		return NewTimeoutError(source, err)
	}
	return NewNetworkError(source, err)
}
