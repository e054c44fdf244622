// Package metrics exposes Prometheus collectors for the contact pipeline and
// the HTTP layer. Every Collector owns its registry so tests and multiple
// servers never share global state.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Submission outcomes.
const (
	OutcomeSent      = "sent"
	OutcomeInvalid   = "invalid"
	OutcomeMalformed = "malformed"
	OutcomeFailed    = "failed"
)

// Send results.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// Config controls whether /metrics is mounted.
type Config struct {
	Enabled   bool   `env:"METRICS_ENABLED" envDefault:"true"`
	Namespace string `env:"METRICS_NAMESPACE" envDefault:"getintouch"`
}

// Collector records submission, delivery and HTTP metrics.
type Collector struct {
	registry     *prometheus.Registry
	submissions  *prometheus.CounterVec
	sends        *prometheus.CounterVec
	sendDuration *prometheus.HistogramVec
	requests     *prometheus.CounterVec
	reqDuration  *prometheus.HistogramVec
}

// Option configures a Collector.
type Option func(*options)

type options struct {
	runtime bool
	buckets []float64
}

// WithRuntimeCollectors adds the Go runtime and process collectors.
func WithRuntimeCollectors() Option {
	return func(o *options) { o.runtime = true }
}

// WithSendBuckets overrides the histogram buckets of the send duration, in seconds.
func WithSendBuckets(buckets ...float64) Option {
	return func(o *options) {
		if len(buckets) > 0 {
			o.buckets = buckets
		}
	}
}

// New creates a Collector registered on a fresh registry.
func New(namespace string, opts ...Option) *Collector {
	o := options{buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10}}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Collector{
		registry: prometheus.NewRegistry(),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contact_submissions_total",
			Help:      "Contact form submissions by outcome.",
		}, []string{"outcome"}),
		sends: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "emails_sent_total",
			Help:      "Outbound email send attempts by kind and result.",
		}, []string{"kind", "result"}),
		sendDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "email_send_duration_seconds",
			Help:      "Duration of outbound email send calls.",
			Buckets:   o.buckets,
		}, []string{"kind"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		reqDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	c.registry.MustRegister(c.submissions, c.sends, c.sendDuration, c.requests, c.reqDuration)
	if o.runtime {
		c.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	return c
}

// Registry returns the underlying registry.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Submission counts one submission with the given outcome.
func (c *Collector) Submission(outcome string) {
	c.submissions.WithLabelValues(outcome).Inc()
}

// EmailSent records one send attempt of the given kind.
func (c *Collector) EmailSent(kind string, err error, took time.Duration) {
	result := ResultSuccess
	if err != nil {
		result = ResultError
	}
	c.sends.WithLabelValues(kind, result).Inc()
	c.sendDuration.WithLabelValues(kind).Observe(took.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

// Middleware records request counts and latency labelled by the matched chi
// route pattern. Requests no route matched share the "unmatched" label.
func (c *Collector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		c.requests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		c.reqDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
