package contact

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/fezwebco/getintouch/pkg/email/templates"
)

// TimestampLayout formats the received/sent time shown in both emails.
const TimestampLayout = "Monday, January 2, 2006 at 03:04 PM MST"

// Subject of the acknowledgement sent to the visitor.
const ThankYouSubject = "Thank you for your message - I'll be in touch soon!"

// OwnerSubject returns the subject of the owner notification. Runs of
// whitespace in name, line breaks included, collapse to one space.
func OwnerSubject(name string) string {
	return "New Contact Request from " + strings.Join(strings.Fields(name), " ")
}

// RenderedEmail is a subject plus a complete HTML document.
type RenderedEmail struct {
	Subject string
	HTML    string
}

// RenderedPair holds both emails for one submission.
type RenderedPair struct {
	OwnerNotification RenderedEmail
	ThankYou          RenderedEmail
}

// Renderer builds the HTML emails. It is safe for concurrent use.
type Renderer struct {
	signatureName  string
	signatureTitle string
	loc            *time.Location
	now            func() time.Time
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) RendererOption {
	return func(r *Renderer) {
		if now != nil {
			r.now = now
		}
	}
}

// WithLocation sets the time zone used for timestamps. Default UTC.
func WithLocation(loc *time.Location) RendererOption {
	return func(r *Renderer) {
		if loc != nil {
			r.loc = loc
		}
	}
}

// NewRenderer creates a Renderer that signs thank-you emails with the given
// name and title.
func NewRenderer(signatureName, signatureTitle string, opts ...RendererOption) *Renderer {
	r := &Renderer{
		signatureName:  signatureName,
		signatureTitle: signatureTitle,
		loc:            time.UTC,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Timestamp formats t in the renderer's time zone.
func (r *Renderer) Timestamp(t time.Time) string {
	return t.In(r.loc).Format(TimestampLayout)
}

// Render produces both emails for a validated submission, stamped with the
// renderer's current time.
func (r *Renderer) Render(ctx context.Context, s Submission) (RenderedPair, error) {
	return r.RenderAt(ctx, s, r.now())
}

// RenderAt is Render with an explicit timestamp.
func (r *Renderer) RenderAt(ctx context.Context, s Submission, at time.Time) (RenderedPair, error) {
	ts := r.Timestamp(at)

	owner, err := render(ctx, ownerNotificationEmail(ownerNotificationData{
		Name:       s.Name,
		Email:      s.Email,
		Message:    s.Message,
		ReceivedAt: ts,
	}))
	if err != nil {
		return RenderedPair{}, err
	}

	thanks, err := render(ctx, thankYouEmail(thankYouData{
		Name:           s.Name,
		SignatureName:  r.signatureName,
		SignatureTitle: r.signatureTitle,
		SentAt:         ts,
	}))
	if err != nil {
		return RenderedPair{}, err
	}

	return RenderedPair{
		OwnerNotification: RenderedEmail{Subject: OwnerSubject(s.Name), HTML: owner},
		ThankYou:          RenderedEmail{Subject: ThankYouSubject, HTML: thanks},
	}, nil
}

func render(ctx context.Context, c templ.Component) (string, error) {
	html, err := templates.Render(ctx, c)
	if err != nil {
		return "", errors.Join(ErrRenderFailed, err)
	}
	return html, nil
}
