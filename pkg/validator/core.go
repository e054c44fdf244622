// Package validator expresses input checks as lists of Rules. Apply runs
// every rule and returns the failures as ValidationErrors, one entry per
// failed rule, so callers can report all bad fields at once.
package validator

import (
	"errors"
	"strings"
)

// ValidationError is one failed rule: the field it concerns, a stable
// rule code and a human-readable message.
type ValidationError struct {
	Field   string
	Code    string
	Message string
}

// ValidationErrors lists failed rules in the order they were applied.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	var b strings.Builder
	b.WriteString("validation failed: ")
	for i, e := range ve {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(e.Field + ": " + e.Message)
	}
	return b.String()
}

// Is lets errors.Is(err, ErrValidationFailed) match.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

// Map groups messages by field, the shape used in JSON error bodies.
// Messages keep rule order within a field.
func (ve ValidationErrors) Map() map[string][]string {
	if len(ve) == 0 {
		return nil
	}
	out := make(map[string][]string, len(ve))
	for _, e := range ve {
		out[e.Field] = append(out[e.Field], e.Message)
	}
	return out
}

// Rule pairs a deferred check with the error reported when it fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// WithMessage returns a copy of r reporting msg instead of its default message.
func (r Rule) WithMessage(msg string) Rule {
	r.Error.Message = msg
	return r
}

// Apply runs every rule and returns ValidationErrors for the failed ones,
// or nil when all pass.
func Apply(rules ...Rule) error {
	var errs ValidationErrors
	for _, r := range rules {
		if !r.Check() {
			errs = append(errs, r.Error)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ExtractValidationErrors returns the ValidationErrors in err's chain, or nil.
func ExtractValidationErrors(err error) ValidationErrors {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}
