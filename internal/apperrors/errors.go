package apperrors

import (
	"errors"
	"net/http"
)

// StatusError is a service-level error carrying the HTTP status class the
// boundary should respond with. Services return it untouched; only the
// error-handling middleware maps it to a wire response.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	return e.Message
}

func New(status int, message string) *StatusError {
	return &StatusError{Status: status, Message: message}
}

func BadRequest(message string) *StatusError {
	return New(http.StatusBadRequest, message)
}

func Unauthorized(message string) *StatusError {
	return New(http.StatusUnauthorized, message)
}

func Forbidden(message string) *StatusError {
	return New(http.StatusForbidden, message)
}

func NotFound(message string) *StatusError {
	return New(http.StatusNotFound, message)
}

// StatusOf extracts the status classification from err, defaulting to 500
// for anything that is not a StatusError.
func StatusOf(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Status
	}
	return http.StatusInternalServerError
}
