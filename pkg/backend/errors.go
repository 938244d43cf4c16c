package backend

import (
	"fmt"
	"unicode/utf8"

	"github.com/pkg/errors"
)

var (
	// ErrMissingCredential is returned before any I/O when no bearer token is configured.
	ErrMissingCredential = errors.New("need token keys: backend bearer credential is empty")
	// ErrBackendRequest matches every *RequestError.
	ErrBackendRequest = errors.New("backend request failed")
	// ErrMalformedResponse means a successful response lacked the expected field.
	ErrMalformedResponse = errors.New("malformed backend response")
	ErrInvalidConfig     = errors.New("invalid backend config")
)

const maxErrorBody = 512

// RequestError is a transport failure or a non-2xx answer from the backend.
type RequestError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
	Err        error
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
	}
	return fmt.Sprintf("%s %s: unexpected status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

func (e *RequestError) Unwrap() error { return e.Err }

func (e *RequestError) Is(target error) bool { return target == ErrBackendRequest }

func truncate(s string) string {
	if len(s) <= maxErrorBody {
		return s
	}
	cut := maxErrorBody
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
