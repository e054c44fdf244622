// Package email sends transactional HTML emails through a pluggable
// provider. Callers depend on Sender; New picks SendGrid, Postmark or the
// development file sender from configuration.
package email

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/fezwebco/getintouch/pkg/validator"
)

// Sender delivers one message per call. Implementations validate the
// message first and wrap delivery failures with ErrFailedToSendEmail.
type Sender interface {
	SendEmail(ctx context.Context, msg Message) error
}

// HealthChecker is implemented by senders that can report readiness
// without sending anything.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Address is a mailbox with an optional display name.
type Address struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// String formats the address for a From header, quoting the name when needed.
func (a Address) String() string {
	if a.Name == "" {
		return a.Email
	}
	return (&mail.Address{Name: a.Name, Address: a.Email}).String()
}

// Message is one outbound email.
type Message struct {
	To       string  `json:"to"`
	From     Address `json:"from"`
	Subject  string  `json:"subject"`
	BodyHTML string  `json:"body_html"`
	ReplyTo  string  `json:"reply_to,omitempty"`
	Tag      string  `json:"tag,omitempty"`
}

// Validate checks that the message can be handed to a provider.
func (m Message) Validate() error {
	if strings.TrimSpace(m.To) == "" {
		return fmt.Errorf("%w: To is required", ErrInvalidParams)
	}
	if !validator.IsEmail(m.To) {
		return fmt.Errorf("%w: To must be a valid email address", ErrInvalidParams)
	}
	if strings.TrimSpace(m.From.Email) == "" {
		return fmt.Errorf("%w: From is required", ErrInvalidParams)
	}
	if !validator.IsEmail(m.From.Email) {
		return fmt.Errorf("%w: From must be a valid email address", ErrInvalidParams)
	}
	if m.ReplyTo != "" && !validator.IsEmail(m.ReplyTo) {
		return fmt.Errorf("%w: ReplyTo must be a valid email address", ErrInvalidParams)
	}
	if strings.TrimSpace(m.Subject) == "" {
		return fmt.Errorf("%w: Subject is required", ErrInvalidParams)
	}
	if strings.TrimSpace(m.BodyHTML) == "" {
		return fmt.Errorf("%w: BodyHTML is required", ErrInvalidParams)
	}
	return nil
}
