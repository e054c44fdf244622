package email

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/mrz1836/postmark"
)

type postmarkClient struct {
	client *postmark.Client
}

// PostmarkOption customizes the underlying Postmark client.
type PostmarkOption func(*postmark.Client)

// WithPostmarkBaseURL points the client at another API root, e.g. a test server.
func WithPostmarkBaseURL(url string) PostmarkOption {
	return func(c *postmark.Client) {
		if url != "" {
			c.BaseURL = url
		}
	}
}

// WithPostmarkHTTPClient replaces the HTTP client, e.g. to set a timeout.
func WithPostmarkHTTPClient(hc *http.Client) PostmarkOption {
	return func(c *postmark.Client) {
		if hc != nil {
			c.HTTPClient = hc
		}
	}
}

// NewPostmarkClient creates a Postmark-backed sender. The server token is
// required; the account token only matters for account-level API calls.
func NewPostmarkClient(serverToken, accountToken string, opts ...PostmarkOption) (Sender, error) {
	if serverToken == "" {
		return nil, fmt.Errorf("%w: PostmarkServerToken is required", ErrInvalidConfig)
	}

	client := postmark.NewClient(serverToken, accountToken)
	for _, opt := range opts {
		opt(client)
	}

	return &postmarkClient{client: client}, nil
}

// SendEmail implements Sender using Postmark's transactional API.
// Open and link tracking are left off.
func (c *postmarkClient) SendEmail(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	resp, err := c.client.SendEmail(ctx, postmark.Email{
		From:     msg.From.String(),
		To:       msg.To,
		ReplyTo:  msg.ReplyTo,
		Subject:  msg.Subject,
		Tag:      msg.Tag,
		HTMLBody: msg.BodyHTML,
	})
	if err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	if resp.ErrorCode > 0 {
		return errors.Join(
			ErrFailedToSendEmail,
			fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message),
		)
	}
	return nil
}
