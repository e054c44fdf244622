package contact

import "errors"

var (
	// ErrSendFailed means at least one of the two emails was not accepted
	// by the provider. The provider error is joined for logging.
	ErrSendFailed = errors.New("failed to send contact emails")
	// ErrRenderFailed means an email template could not be rendered.
	ErrRenderFailed = errors.New("failed to render contact email")
	// ErrInvalidConfig reports unusable contact configuration.
	ErrInvalidConfig = errors.New("invalid contact configuration")
)
