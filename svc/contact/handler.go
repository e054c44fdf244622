package contact

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fezwebco/getintouch/handler"
	"github.com/fezwebco/getintouch/pkg/binder"
	"github.com/fezwebco/getintouch/pkg/metrics"
)

// Route is the path of the contact endpoint.
const Route = "/api/get-in-touch"

// SuccessMessage is returned when both emails were accepted.
const SuccessMessage = "Message sent successfully"

// ErrFailedToSend is the only failure detail a client sees after a send error.
var ErrFailedToSend = handler.NewHTTPError(http.StatusInternalServerError, "Failed to send message")

// Submitter sends both emails of a validated submission. *Dispatcher implements it.
type Submitter interface {
	Dispatch(ctx context.Context, s Submission) error
}

// Service exposes the contact endpoint.
type Service struct {
	dispatcher   Submitter
	errorHandler handler.ErrorHandler
	metrics      Metrics
	maxBodyBytes int64
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithServiceMetrics records submission outcomes.
func WithServiceMetrics(m Metrics) ServiceOption {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithMaxBodyBytes caps the accepted request body size.
func WithMaxBodyBytes(n int64) ServiceOption {
	return func(s *Service) {
		if n > 0 {
			s.maxBodyBytes = n
		}
	}
}

// NewService creates the contact service. errorHandler renders and logs every
// failed request; use handler.NewErrorHandler.
func NewService(dispatcher Submitter, errorHandler handler.ErrorHandler, opts ...ServiceOption) *Service {
	s := &Service{
		dispatcher:   dispatcher,
		errorHandler: errorHandler,
		metrics:      noopMetrics{},
		maxBodyBytes: binder.DefaultMaxJSONSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handle returns a router serving POST /api/get-in-touch.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	r.Post(Route, handler.Wrap(s.submit,
		handler.WithBinders[Submission](binder.JSON(binder.WithMaxBodySize(s.maxBodyBytes))),
		handler.WithErrorHandler[Submission](s.handleError),
	))
	return r
}

func (s *Service) submit(ctx handler.Context, req Submission) handler.Response {
	sub := req.Normalize()
	if err := sub.Validate(); err != nil {
		s.metrics.Submission(metrics.OutcomeInvalid)
		return handler.Fail(err)
	}

	if err := s.dispatcher.Dispatch(ctx, sub); err != nil {
		s.metrics.Submission(metrics.OutcomeFailed)
		return handler.Fail(ErrFailedToSend.Wrap(err))
	}

	s.metrics.Submission(metrics.OutcomeSent)
	return handler.Message(SuccessMessage)
}

// handleError counts body binding failures before delegating, since those
// never reach submit.
func (s *Service) handleError(ctx handler.Context, err error) {
	if isBindError(err) {
		s.metrics.Submission(metrics.OutcomeMalformed)
	}
	if s.errorHandler != nil {
		s.errorHandler(ctx, err)
		return
	}
	handler.NewErrorHandler(nil)(ctx, err)
}

func isBindError(err error) bool {
	return errors.Is(err, binder.ErrFailedToParseJSON) ||
		errors.Is(err, binder.ErrUnsupportedMediaType) ||
		errors.Is(err, binder.ErrMissingContentType) ||
		errors.Is(err, binder.ErrBodyTooLarge)
}
