package errors

import (
	"errors"
	"net/http"
)

// HTTPError is an error that carries the HTTP status it should be rendered with.
type HTTPError struct {
	StatusCode int
	Message    string
	// Data is merged into the error response body (e.g. missingVariables).
	Data map[string]any
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError with the given status and message.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// WithData returns a copy of e carrying extra response fields.
func (e *HTTPError) WithData(data map[string]any) *HTTPError {
	cp := *e
	cp.Data = data
	return &cp
}

// Common errors.
var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "bad request")
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "API endpoint not found")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "an internal server error occurred")
)

// AsHTTPError unwraps err into an HTTPError. Anything else becomes ErrInternalServerError.
func AsHTTPError(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return ErrInternalServerError
}
