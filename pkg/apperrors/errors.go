package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel classes for everything the HTTP layer needs to tell apart.
// Anything that wraps none of these is treated as an internal failure.
var (
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("conflict")
	ErrNotFound     = errors.New("not found")
)

func Validation(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func Conflict(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

func NotFound(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func Unauthorized(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrUnauthorized, fmt.Sprintf(format, args...))
}

// Status maps an error to its HTTP status. Conflicts report 400, matching
// the wire contract of the original API rather than 409.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrConflict):
		return 400
	case errors.Is(err, ErrUnauthorized):
		return 401
	case errors.Is(err, ErrNotFound):
		return 404
	default:
		return 500
	}
}

// Message returns the client-facing text for an error. Internal errors are
// masked so driver detail never reaches the response body.
func Message(err error) string {
	if Status(err) == 500 {
		return "internal server error"
	}
	msg := err.Error()
	for _, sentinel := range []error{ErrValidation, ErrUnauthorized, ErrConflict, ErrNotFound} {
		prefix := sentinel.Error() + ": "
		if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
			return msg[len(prefix):]
		}
	}
	return msg
}
