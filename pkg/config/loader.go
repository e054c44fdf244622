// Package config loads typed configuration from environment variables.
//
// Structs describe their variables with caarlos0/env tags (`env`,
// `envDefault`, `required`) and their constraints with go-playground
// `validate` tags. A .env file in the working directory is read once
// before the first load; variables already set in the process win.
//
//	type MailConfig struct {
//		Provider string `env:"EMAIL_PROVIDER" envDefault:"dev" validate:"oneof=sendgrid postmark dev"`
//	}
//
//	var cfg MailConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
package config

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var (
	defaultEnvLoaded sync.Once
	validate         = validator.New(validator.WithRequiredStructEnabled())
)

// LoadEnvFile reads the given .env files into the process environment
// without overriding variables that are already set. Missing files are errors
// here, unlike the implicit default .env read by Load.
func LoadEnvFile(paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrEnvFile, err)
	}
	return nil
}

// Load parses environment variables into v and validates the result.
//
// Parsing failures (missing required variables, malformed durations) wrap
// ErrParsingConfig; constraint violations wrap ErrInvalidConfig together with
// the validator's field errors.
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	if err := validate.Struct(v); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			// Non-struct T: there is nothing to validate.
			return nil
		}
		return errors.Join(ErrInvalidConfig, err)
	}

	return nil
}
