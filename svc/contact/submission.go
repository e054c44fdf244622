// Package contact implements the portfolio "get in touch" endpoint: it
// validates a submission, renders an owner notification and a thank-you
// email, and sends both through an email.Sender.
package contact

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/fezwebco/getintouch/pkg/validator"
)

// Field limits, counted in characters.
const (
	MaxNameLength    = 200
	MaxEmailLength   = 254
	MaxMessageLength = 10000
)

// Submission is one "get in touch" form post.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Normalize trims surrounding whitespace and converts every field to Unicode
// NFC so visually identical input validates and renders the same way.
func (s Submission) Normalize() Submission {
	return Submission{
		Name:    norm.NFC.String(strings.TrimSpace(s.Name)),
		Email:   norm.NFC.String(strings.TrimSpace(s.Email)),
		Message: norm.NFC.String(strings.TrimSpace(s.Message)),
	}
}

// Validate reports every invalid field at once as validator.ValidationErrors.
// It expects a normalized submission.
func (s Submission) Validate() error {
	return validator.Apply(
		validator.Required("name", s.Name).WithMessage("Name is required"),
		validator.MaxLen("name", s.Name, MaxNameLength).WithMessage("Name is too long"),
		validator.ValidEmail("email", s.Email).WithMessage("Invalid email address"),
		validator.MaxLen("email", s.Email, MaxEmailLength).WithMessage("Email is too long"),
		validator.Required("message", s.Message).WithMessage("Message is required"),
		validator.MaxLen("message", s.Message, MaxMessageLength).WithMessage("Message is too long"),
	)
}
