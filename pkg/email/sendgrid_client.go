package email

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

const sendGridSendEndpoint = "/v3/mail/send"

type sendGridClient struct {
	apiKey string
	host   string
}

// SendGridOption customizes the SendGrid sender.
type SendGridOption func(*sendGridClient)

// WithSendGridHost overrides the API host, e.g. for EU data residency or tests.
func WithSendGridHost(host string) SendGridOption {
	return func(c *sendGridClient) {
		if host != "" {
			c.host = host
		}
	}
}

// NewSendGridClient creates a sender backed by the SendGrid v3 mail send API.
func NewSendGridClient(apiKey string, opts ...SendGridOption) (Sender, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: SendGridAPIKey is required", ErrInvalidConfig)
	}

	c := &sendGridClient{apiKey: apiKey}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// SendEmail implements Sender. Any non-2xx response is a delivery failure.
func (c *sendGridClient) SendEmail(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	m := sgmail.NewV3MailInit(
		sgmail.NewEmail(msg.From.Name, msg.From.Email),
		msg.Subject,
		sgmail.NewEmail("", msg.To),
		sgmail.NewContent("text/html", msg.BodyHTML),
	)
	if msg.ReplyTo != "" {
		m.SetReplyTo(sgmail.NewEmail("", msg.ReplyTo))
	}
	if msg.Tag != "" {
		m.AddCategories(msg.Tag)
	}

	req := sendgrid.GetRequest(c.apiKey, sendGridSendEndpoint, c.host)
	req.Method = rest.Post
	req.Body = sgmail.GetRequestBody(m)

	resp, err := sendgrid.MakeRequestWithContext(ctx, req)
	if err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Join(
			ErrFailedToSendEmail,
			fmt.Errorf("sendgrid error: %d - %s", resp.StatusCode, resp.Body),
		)
	}
	return nil
}
