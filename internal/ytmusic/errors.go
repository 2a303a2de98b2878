package ytmusic

import (
	"fmt"
	"net/http"
)

// NetworkError wraps a transport-level failure: refused connections, DNS,
// timeouts. It is the only error class the retry policy absorbs on its own.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return "network error: " + e.Err.Error() }
func (e *NetworkError) Unwrap() error { return e.Err }

// APIError is a non-2xx, non-auth response from the upstream service.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
}

// Transient reports whether the status is worth retrying: server-side
// failures and rate limiting, nothing else.
func (e *APIError) Transient() bool {
	return e.StatusCode >= 500 || e.StatusCode == http.StatusTooManyRequests
}

// ParseError means the upstream answered 2xx but the body was not the JSON
// object expected, or a required top-level shape was missing entirely.
// Field-level misses inside entity parsing never produce a ParseError; they
// degrade to zero values.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string { return "parse error: " + e.Message }
