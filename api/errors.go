package api

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrAPIFailure is matched by every *APIError (non-2xx response).
	ErrAPIFailure = errors.New("api failure")

	// ErrServerUnreachable is matched by every *ServerUnreachableError.
	ErrServerUnreachable = errors.New("server unreachable")
)

// APIError is returned when the backend answers with a non-2xx status. It
// carries the backend's {"message": ...} body when one was present so the
// caller can surface it verbatim.
type APIError struct {
	StatusCode int
	Message    string
	RequestID  string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api: status %d", e.StatusCode)
}

// Is reports whether this error matches the target error.
// It supports errors.Is(err, ErrAPIFailure).
func (e *APIError) Is(target error) bool {
	return target == ErrAPIFailure
}

// ServerUnreachableError is returned when the backend cannot be contacted at
// all: DNS failure, connection refused, TLS handshake, timeout.
type ServerUnreachableError struct {
	Cause error
}

func (e *ServerUnreachableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("api: server unreachable: %v", e.Cause)
	}
	return "api: server unreachable"
}

// Unwrap returns the underlying error cause.
func (e *ServerUnreachableError) Unwrap() error {
	return e.Cause
}

// Is reports whether this error matches the target error.
// It supports errors.Is(err, ErrServerUnreachable).
func (e *ServerUnreachableError) Is(target error) bool {
	return target == ErrServerUnreachable
}

// Message extracts a human-readable message from an API error chain, falling
// back to def when the error carries none. The session layer uses it to fill
// Result.Message without leaking transport details to the UI.
func Message(err error, def string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return def
}
