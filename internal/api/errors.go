package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnauthorized marks a 401 from the backend. Callers match it with
// errors.Is to distinguish "no valid credential" from genuine failures;
// it is an expected state (guest usage), never a crash.
var ErrUnauthorized = errors.New("unauthorized")

// Error is a non-2xx backend response with the original status preserved
// for caller inspection.
type Error struct {
	Method     string
	Path       string
	Body       string
	StatusCode int
}

func (e *Error) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s %s: unexpected status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.Path, e.StatusCode)
}

// Is lets errors.Is(err, ErrUnauthorized) match 401 responses.
func (e *Error) Is(target error) bool {
	return target == ErrUnauthorized && e.StatusCode == http.StatusUnauthorized
}

// IsUnauthorized reports whether err represents a 401 from the backend.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}
