package contact

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/fezwebco/getintouch/pkg/async"
	"github.com/fezwebco/getintouch/pkg/email"
	"github.com/fezwebco/getintouch/pkg/logger"
)

// Email kinds, used as provider tags, metric labels and log attributes.
const (
	KindOwnerNotification = "owner_notification"
	KindThankYou          = "thank_you"
)

// Metrics receives pipeline events. *metrics.Collector implements it.
type Metrics interface {
	Submission(outcome string)
	EmailSent(kind string, err error, took time.Duration)
}

type noopMetrics struct{}

func (noopMetrics) Submission(string)                      {}
func (noopMetrics) EmailSent(string, error, time.Duration) {}

// Dispatcher renders and sends the two emails of a submission.
type Dispatcher struct {
	cfg      Config
	sender   email.Sender
	renderer *Renderer
	log      *slog.Logger
	metrics  Metrics
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithLogger sets the logger. Default discards.
func WithLogger(l *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		if l != nil {
			d.log = l
		}
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(m Metrics) DispatcherOption {
	return func(d *Dispatcher) {
		if m != nil {
			d.metrics = m
		}
	}
}

// NewDispatcher wires a Dispatcher. Sender and renderer are shared by all
// requests and never mutated.
func NewDispatcher(cfg Config, sender email.Sender, renderer *Renderer, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		cfg:      cfg,
		sender:   sender,
		renderer: renderer,
		log:      logger.Discard(),
		metrics:  noopMetrics{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Messages renders both emails for s and addresses them. The owner
// notification goes to the owner with Reply-To set to the visitor; the
// thank-you goes to the visitor.
func (d *Dispatcher) Messages(ctx context.Context, s Submission) ([]email.Message, error) {
	pair, err := d.renderer.Render(ctx, s)
	if err != nil {
		return nil, err
	}

	return []email.Message{
		{
			To:       d.cfg.OwnerEmail,
			From:     email.Address{Email: d.cfg.NotifyFromEmail, Name: d.cfg.NotifyFromName},
			Subject:  pair.OwnerNotification.Subject,
			BodyHTML: pair.OwnerNotification.HTML,
			ReplyTo:  s.Email,
			Tag:      KindOwnerNotification,
		},
		{
			To:       s.Email,
			From:     email.Address{Email: d.cfg.ReplyFromEmail, Name: d.cfg.ReplyFromName},
			Subject:  pair.ThankYou.Subject,
			BodyHTML: pair.ThankYou.HTML,
			Tag:      KindThankYou,
		},
	}, nil
}

// Dispatch sends both emails concurrently and waits for both to finish,
// even when one fails early. Any failure returns an error wrapping
// ErrSendFailed; there are no retries.
// The submission must already be normalized and validated.
func (d *Dispatcher) Dispatch(ctx context.Context, s Submission) error {
	msgs, err := d.Messages(ctx, s)
	if err != nil {
		d.log.ErrorContext(ctx, "failed to render contact emails",
			logger.Error(err),
			logger.Component("contact"),
			logger.Event("render_failed"),
		)
		return err
	}

	// Checked once so a cancellation cannot land between the two starts.
	if err := ctx.Err(); err != nil {
		return errors.Join(ErrSendFailed, err)
	}

	futures := make([]*async.Future[struct{}], 0, len(msgs))
	for _, msg := range msgs {
		futures = append(futures, async.Async(ctx, msg, d.send))
	}

	if _, err := async.WaitAll(futures...); err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	return nil
}

func (d *Dispatcher) send(ctx context.Context, msg email.Message) (struct{}, error) {
	start := time.Now()
	err := d.sender.SendEmail(ctx, msg)
	took := time.Since(start)
	d.metrics.EmailSent(msg.Tag, err, took)

	if err != nil {
		d.log.ErrorContext(ctx, "failed to send contact email",
			logger.Error(err),
			logger.EmailKind(msg.Tag),
			logger.EmailDomain(msg.To),
			logger.Duration(took),
			logger.Component("contact"),
		)
		return struct{}{}, err
	}

	d.log.InfoContext(ctx, "contact email sent",
		logger.EmailKind(msg.Tag),
		logger.EmailDomain(msg.To),
		logger.Duration(took),
		logger.Component("contact"),
	)
	return struct{}{}, nil
}
