package apperr

import (
	"fmt"
	"net/http"
)

// Error is a status-coded application error. Every handler failure is one of
// these; the echo error handler translates it into the error envelope.
type Error struct {
	StatusCode int
	Message    string
	cause      error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap exposes the underlying cause for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.cause
}

// Validation signals a missing or malformed request field.
func Validation(message string) *Error {
	return &Error{StatusCode: http.StatusBadRequest, Message: message}
}

// NotFound signals an absent entity.
func NotFound(message string) *Error {
	return &Error{StatusCode: http.StatusNotFound, Message: message}
}

// Conflict signals a duplicate unique key.
func Conflict(message string) *Error {
	return &Error{StatusCode: http.StatusConflict, Message: message}
}

// Unauthorized signals a credential mismatch or missing session.
func Unauthorized(message string) *Error {
	return &Error{StatusCode: http.StatusUnauthorized, Message: message}
}

// Forbidden signals insufficient privilege.
func Forbidden(message string) *Error {
	return &Error{StatusCode: http.StatusForbidden, Message: message}
}

// Internal wraps an unexpected failure. The cause stays on the error chain
// for logging and is never serialized to the client.
func Internal(cause error) *Error {
	return &Error{StatusCode: http.StatusInternalServerError, Message: "Internal server error", cause: cause}
}
