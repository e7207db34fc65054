// Package transport defines the error contract of the HTTP layer that fetches
// provider payloads. The normalization core never performs requests itself;
// it only needs to recognise these errors when converting a failed call into
// a unified response.
package transport

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies transport failures.
type ErrorKind int

const (
	// KindTimeout indicates a request or connection timeout.
	KindTimeout ErrorKind = iota
	// KindConnection indicates a connection failure (refused, DNS, etc).
	KindConnection
	// KindAuth indicates an authentication/authorization failure (401/403).
	KindAuth
	// KindNotFound indicates the resource was not found (404).
	KindNotFound
	// KindRateLimit indicates rate limiting (429).
	KindRateLimit
	// KindValidation indicates the provider rejected the request body (4xx).
	KindValidation
	// KindServer indicates a provider-side error (5xx).
	KindServer
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindTimeout:
		return "timeout"
	case KindConnection:
		return "connection"
	case KindAuth:
		return "auth"
	case KindNotFound:
		return "not_found"
	case KindRateLimit:
		return "rate_limit"
	case KindValidation:
		return "validation"
	case KindServer:
		return "server"
	default:
		return "unknown"
	}
}

// Error is a failed provider call as reported by the transport layer.
type Error struct {
	// StatusCode is the HTTP status code (0 for connection-level errors).
	StatusCode int
	// Kind classifies the error.
	Kind ErrorKind
	// Message describes the error.
	Message string
	// Retryable indicates whether the call can be retried.
	Retryable bool
	// Body is the provider's response body, if any.
	Body []byte
	// Err is the underlying error.
	Err error
}

func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("transport: %s (HTTP %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("transport: %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewTimeoutError wraps err as a timeout.
func NewTimeoutError(err error) *Error {
	return &Error{Kind: KindTimeout, Message: err.Error(), Retryable: true, Err: err}
}

// NewConnectionError wraps err as a connection failure.
func NewConnectionError(err error) *Error {
	return &Error{Kind: KindConnection, Message: err.Error(), Retryable: true, Err: err}
}

// ClassifyStatusCode converts an HTTP status code and body into an Error.
// Returns nil for 2xx status codes.
func ClassifyStatusCode(statusCode int, body []byte) *Error {
	e := &Error{
		StatusCode: statusCode,
		Message:    fmt.Sprintf("HTTP %d", statusCode),
		Body:       body,
	}
	switch {
	case statusCode >= 200 && statusCode < 300:
		return nil
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		e.Kind = KindAuth
	case statusCode == http.StatusNotFound:
		e.Kind = KindNotFound
	case statusCode == http.StatusRequestTimeout || statusCode == http.StatusGatewayTimeout:
		e.Kind = KindTimeout
		e.Retryable = true
	case statusCode == http.StatusTooManyRequests:
		e.Kind = KindRateLimit
		e.Retryable = true
	case statusCode >= 400 && statusCode < 500:
		e.Kind = KindValidation
	case statusCode >= 500:
		e.Kind = KindServer
		e.Retryable = true
	default:
		e.Kind = KindServer
	}
	return e
}

// As extracts a transport Error from err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e, true
	}
	return nil, false
}

// IsTimeout reports whether err is a transport timeout.
func IsTimeout(err error) bool {
	e, ok := As(err)
	return ok && e.Kind == KindTimeout
}
