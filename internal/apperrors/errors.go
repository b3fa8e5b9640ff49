package apperrors

import (
	"errors"
	"net/http"
)

// Error is an API error carrying the HTTP status it should map to and an
// optional details payload (field-level validation violations and the
// like). Repositories and services return *Error values; the server's
// error handler is the single translation point to an HTTP response.
type Error struct {
	Status  int    `json:"-"`
	Message string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func (e *Error) Error() string {
	return e.Message
}

// BadRequest builds a 400 error. Details, when given, should be a
// field-level breakdown of what failed.
func BadRequest(message string, details any) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message, Details: details}
}

// NotFound builds a 404 error.
func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

// Conflict builds a 409 error for uniqueness or foreign-key violations
// surfaced from storage.
func Conflict(message string) *Error {
	return &Error{Status: http.StatusConflict, Message: message}
}

// Internal builds a 500 error. The message is what the client sees, so
// callers must not leak internal detail into it.
func Internal(message string) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: message}
}

// As unwraps err into an *Error if it is one.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
