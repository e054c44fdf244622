package main

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/fezwebco/getintouch/handler"
	"github.com/fezwebco/getintouch/pkg/clientip"
	"github.com/fezwebco/getintouch/pkg/email"
	"github.com/fezwebco/getintouch/pkg/environment"
	"github.com/fezwebco/getintouch/pkg/httpserver"
	"github.com/fezwebco/getintouch/pkg/logger"
	"github.com/fezwebco/getintouch/pkg/metrics"
	"github.com/fezwebco/getintouch/pkg/requestid"
	"github.com/fezwebco/getintouch/svc/contact"
)

const readinessTimeout = 2 * time.Second

type appConfig struct {
	Env  string `env:"APP_ENV" envDefault:"development"`
	Name string `env:"APP_NAME" envDefault:"getintouch"`

	Log      logger.Config
	HTTP     httpserver.Config
	ClientIP clientip.Config
	Metrics  metrics.Config
	Email    email.Config
	Contact  contact.Config
}

func newLogger(cfg appConfig, w io.Writer) *slog.Logger {
	return logger.New(
		logger.WithEnvironment(environment.Parse(cfg.Env), cfg.Name),
		logger.WithLevelName(cfg.Log.Level),
		logger.WithOutput(w),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	)
}

type app struct {
	router  http.Handler
	sender  email.Sender
	metrics *metrics.Collector
}

// newApp wires sender, renderer, dispatcher and routes from configuration.
func newApp(cfg appConfig, log *slog.Logger) (*app, error) {
	loc, err := cfg.Contact.Location()
	if err != nil {
		return nil, err
	}

	sender, err := email.New(cfg.Email)
	if err != nil {
		return nil, fmt.Errorf("email sender: %w", err)
	}

	var collector *metrics.Collector
	if cfg.Metrics.Enabled {
		collector = metrics.New(cfg.Metrics.Namespace, metrics.WithRuntimeCollectors())
	}

	renderer := contact.NewRenderer(cfg.Contact.SignatureName, cfg.Contact.SignatureTitle, contact.WithLocation(loc))

	dispatcherOpts := []contact.DispatcherOption{contact.WithLogger(log)}
	serviceOpts := []contact.ServiceOption{contact.WithMaxBodyBytes(cfg.Contact.MaxBodyBytes)}
	if collector != nil {
		dispatcherOpts = append(dispatcherOpts, contact.WithMetrics(collector))
		serviceOpts = append(serviceOpts, contact.WithServiceMetrics(collector))
	}

	dispatcher := contact.NewDispatcher(cfg.Contact, sender, renderer, dispatcherOpts...)
	svc := contact.NewService(dispatcher, handler.NewErrorHandler(log), serviceOpts...)

	var checks []httpserver.Check
	if hc, ok := sender.(email.HealthChecker); ok {
		checks = append(checks, httpserver.Check{Name: "email", Fn: hc.HealthCheck})
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(clientip.New(cfg.ClientIP.TrustedHeaders...).Middleware)
	if collector != nil {
		r.Use(collector.Middleware)
	}
	r.Use(middleware.Recoverer)

	r.Get("/healthz", httpserver.Liveness())
	r.Get("/readyz", httpserver.Readiness(log, readinessTimeout, checks...))
	if collector != nil {
		r.Handle("/metrics", collector.Handler())
	}
	r.Mount("/", svc.Handle())

	return &app{router: r, sender: sender, metrics: collector}, nil
}
