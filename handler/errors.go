package handler

import (
	"errors"
	"net/http"
)

// ErrNilResponse indicates a handler returned nil instead of a Response.
var ErrNilResponse = errors.New("handler returned nil response")

// HTTPError carries the status code and the client-facing message of a
// failed request. Err holds the cause for logs and is never sent to clients.
type HTTPError struct {
	Code    int
	Message string
	Err     error
}

func (e HTTPError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e HTTPError) Unwrap() error {
	return e.Err
}

// Wrap returns a copy of e with err attached as the cause.
func (e HTTPError) Wrap(err error) HTTPError {
	e.Err = err
	return e
}

// Client-facing errors used by the default classification.
var (
	ErrBadRequest            = HTTPError{Code: http.StatusBadRequest, Message: "Invalid request body"}
	ErrRequestEntityTooLarge = HTTPError{Code: http.StatusRequestEntityTooLarge, Message: "Request body too large"}
	ErrUnsupportedMediaType  = HTTPError{Code: http.StatusUnsupportedMediaType, Message: "Content-Type must be application/json"}
	ErrUnprocessableEntity   = HTTPError{Code: http.StatusUnprocessableEntity, Message: "Validation failed"}
	ErrInternalServerError   = HTTPError{Code: http.StatusInternalServerError, Message: "Internal server error"}
)

// NewHTTPError creates an HTTP error with the given status code and message.
func NewHTTPError(code int, message string) HTTPError {
	return HTTPError{Code: code, Message: message}
}
