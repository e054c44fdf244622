// Package handler turns typed request handlers into http.HandlerFuncs.
// Binding, rendering and error reporting happen in Wrap so individual
// handlers only deal with their request type and return a Response.
package handler

import "net/http"

// HandlerFunc handles one typed request.
type HandlerFunc[R any] func(ctx Context, req R) Response

// Response writes status, headers and body. A returned error is passed to
// the ErrorHandler, so it must not have written anything yet.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Bind fills v from the request.
type Bind func(r *http.Request, v any) error

// ErrorHandler reports a binding or rendering error to the client.
type ErrorHandler func(ctx Context, err error)

// WrapOption configures Wrap.
type WrapOption[R any] func(*wrapper[R])

type wrapper[R any] struct {
	handle  HandlerFunc[R]
	binders []Bind
	onError ErrorHandler
}

// WithBinders appends binders; they run in order before the handler.
func WithBinders[R any](binders ...Bind) WrapOption[R] {
	return func(w *wrapper[R]) { w.binders = append(w.binders, binders...) }
}

// WithErrorHandler replaces the default error handler. Nil is ignored.
func WithErrorHandler[R any](h ErrorHandler) WrapOption[R] {
	return func(w *wrapper[R]) {
		if h != nil {
			w.onError = h
		}
	}
}

// defaultErrorHandler writes the JSON error body without logging.
func defaultErrorHandler(ctx Context, err error) {
	info := classifyError(err)
	_ = JSONError(info.StatusCode, info.Message, info.Fields).Render(ctx.ResponseWriter(), ctx.Request())
}

// Wrap converts a typed HandlerFunc to http.HandlerFunc.
//
//	r.Post(contact.Route, handler.Wrap(svc.submit,
//		handler.WithBinders[contact.Submission](binder.JSON()),
//		handler.WithErrorHandler[contact.Submission](handler.NewErrorHandler(log)),
//	))
func Wrap[R any](h HandlerFunc[R], opts ...WrapOption[R]) http.HandlerFunc {
	wr := &wrapper[R]{handle: h, onError: defaultErrorHandler}
	for _, opt := range opts {
		opt(wr)
	}
	return wr.serveHTTP
}

func (wr *wrapper[R]) serveHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := NewContext(w, r)

	var req R
	for _, bind := range wr.binders {
		if err := bind(r, &req); err != nil {
			wr.onError(ctx, err)
			return
		}
	}

	resp := wr.handle(ctx, req)
	if resp == nil {
		wr.onError(ctx, ErrNilResponse)
		return
	}
	if err := resp.Render(w, r); err != nil {
		wr.onError(ctx, err)
	}
}
