package errors

import "net/http"

// HTTPError is an error that knows which HTTP status it maps to.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError with the given status code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

// ErrInternalServerError is returned for any failure the caller cannot fix.
var ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
