package handler

import (
	"context"
	"net/http"
)

// Context is the request's context.Context plus access to the request and
// response writer. Pass it to blocking calls that should stop when the client
// goes away.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
}

type requestContext struct {
	context.Context
	w http.ResponseWriter
	r *http.Request
}

// NewContext binds w and r. The context is captured from r at call time.
func NewContext(w http.ResponseWriter, r *http.Request) Context {
	return requestContext{Context: r.Context(), w: w, r: r}
}

func (c requestContext) Request() *http.Request              { return c.r }
func (c requestContext) ResponseWriter() http.ResponseWriter { return c.w }
