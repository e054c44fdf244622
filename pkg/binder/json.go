// Package binder decodes HTTP request bodies into typed request structs.
package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// DefaultMaxJSONSize is the default maximum size for JSON request bodies (1MB).
const DefaultMaxJSONSize = 1 << 20

// Option configures a binder.
type Option func(*options)

type options struct {
	maxSize int64
}

// WithMaxBodySize caps the number of body bytes read. Non-positive values are ignored.
func WithMaxBodySize(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxSize = n
		}
	}
}

// JSON creates a JSON binder function.
//
// The body must be declared as application/json, fit in the size limit and
// hold exactly one JSON value with no fields unknown to v.
//
//	http.Handle("/api/get-in-touch", handler.Wrap(submit,
//		handler.WithBinders(binder.JSON(binder.WithMaxBodySize(64<<10))),
//	))
func JSON(opts ...Option) func(r *http.Request, v any) error {
	o := options{maxSize: DefaultMaxJSONSize}
	for _, opt := range opts {
		opt(&o)
	}

	return func(r *http.Request, v any) error {
		if err := r.Context().Err(); err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
		}

		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return fmt.Errorf("%w: expected application/json", ErrMissingContentType)
		}
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil || mediaType != "application/json" {
			return fmt.Errorf("%w: got %q, expected application/json", ErrUnsupportedMediaType, contentType)
		}

		if r.Body == nil {
			return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
		}
		body, err := io.ReadAll(io.LimitReader(r.Body, o.maxSize+1))
		if err != nil {
			return fmt.Errorf("%w: failed to read request body: %v", ErrFailedToParseJSON, err)
		}
		if int64(len(body)) > o.maxSize {
			return fmt.Errorf("%w: max %d bytes", ErrBodyTooLarge, o.maxSize)
		}

		decoder := json.NewDecoder(bytes.NewReader(body))
		decoder.DisallowUnknownFields()

		if err := decoder.Decode(v); err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
			}
			return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
		}

		var extra json.RawMessage
		if err := decoder.Decode(&extra); err != io.EOF {
			return fmt.Errorf("%w: unexpected data after JSON object", ErrFailedToParseJSON)
		}

		return nil
	}
}
