package config

import "errors"

var (
	ErrParsingConfig = errors.New("config: cannot parse environment")
	// ErrInvalidConfig carries the validator's field errors alongside it.
	ErrInvalidConfig = errors.New("config: validation failed")
	ErrNilPointer    = errors.New("config: nil target")
	ErrEnvFile       = errors.New("config: cannot load env file")
)
