package email

import "errors"

var (
	// ErrFailedToSendEmail wraps every provider-side failure.
	ErrFailedToSendEmail = errors.New("email: send failed")
	ErrInvalidConfig     = errors.New("email: invalid configuration")
	// ErrInvalidParams is returned before any provider call for malformed messages.
	ErrInvalidParams   = errors.New("email: invalid message")
	ErrUnknownProvider = errors.New("email: unknown provider")
)
