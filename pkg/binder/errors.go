package binder

import "errors"

var (
	ErrUnsupportedMediaType = errors.New("binder: content type is not application/json")
	ErrMissingContentType   = errors.New("binder: content type header missing")
	ErrFailedToParseJSON    = errors.New("binder: malformed JSON body")
	ErrBodyTooLarge         = errors.New("binder: body exceeds size limit")
)
