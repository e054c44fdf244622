package handler

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error  string              `json:"error"`
	Fields map[string][]string `json:"fields,omitempty"`
}

// MessageBody is the JSON shape of a plain acknowledgement.
type MessageBody struct {
	Message string `json:"message"`
}

type jsonResponse struct {
	status int
	body   any
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

type JSONOption func(*jsonResponse)

func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) { r.status = status }
}

// JSON renders v as the response body with status 200 unless overridden.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK, body: v}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Message renders {"message": msg} with status 200.
func Message(msg string) Response {
	return JSON(MessageBody{Message: msg})
}

// JSONError renders an ErrorBody with the given status.
func JSONError(status int, message string, fields map[string][]string) Response {
	return JSON(ErrorBody{Error: message, Fields: fields}, WithJSONStatus(status))
}

type errorResponse struct {
	err error
}

// Render hands the error back to Wrap, which routes it to the error handler.
func (e errorResponse) Render(http.ResponseWriter, *http.Request) error {
	return e.err
}

// Fail returns a Response that delegates to the configured ErrorHandler, so
// failures are logged and rendered in one place.
func Fail(err error) Response {
	if err == nil {
		err = ErrInternalServerError
	}
	return errorResponse{err: err}
}
