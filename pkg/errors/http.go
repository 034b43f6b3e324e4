// Package errors provides HTTP-aware error values shared by delivery layers.
package errors

import "net/http"

// HTTPError is an error carrying the HTTP status code it should map to.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError with the given status code and message.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// Shared errors used by delivery layers when no domain error applies.
var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "invalid request")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
	ErrServiceUnavailable  = NewHTTPError(http.StatusServiceUnavailable, "service unavailable")
)
