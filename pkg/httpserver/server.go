// Package httpserver runs an http.Handler with configured timeouts and
// graceful shutdown on context cancellation or SIGINT/SIGTERM, and provides
// liveness and readiness handlers.
package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/fezwebco/getintouch/pkg/logger"
)

type config struct {
	addr              string
	readTimeout       time.Duration
	readHeaderTimeout time.Duration
	writeTimeout      time.Duration
	idleTimeout       time.Duration
	shutdownTimeout   time.Duration
	logger            *slog.Logger
	startHooks        []func(addr string)
	stopHooks         []func()
}

func defaultConfig() *config {
	return &config{
		addr:            ":8080",
		shutdownTimeout: 5 * time.Second,
		logger:          logger.Discard(),
	}
}

// Server wraps http.Server with graceful shutdown and logging.
type Server struct {
	cfg  *config
	srv  *http.Server
	once sync.Once
	mu   sync.Mutex
}

// New returns a configured Server.
func New(opts ...Option) *Server {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Server{cfg: cfg}
}

func (s *Server) newHTTPServer(handler http.Handler) *http.Server {
	cfg := s.cfg
	readHeader := cfg.readHeaderTimeout
	if readHeader == 0 {
		readHeader = cfg.readTimeout
	}
	return &http.Server{
		Handler:           handler,
		ReadTimeout:       cfg.readTimeout,
		ReadHeaderTimeout: readHeader,
		WriteTimeout:      cfg.writeTimeout,
		IdleTimeout:       cfg.idleTimeout,
		ErrorLog:          slog.NewLogLogger(cfg.logger.Handler(), slog.LevelError),
	}
}

// Run binds the listener, serves handler and blocks until ctx is done, a
// termination signal arrives or Shutdown is called.
// Listen and serve failures are wrapped with ErrStart.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	s.mu.Lock()
	if s.srv != nil {
		s.mu.Unlock()
		return errors.Join(ErrStart, errors.New("server already running"))
	}
	srv := s.newHTTPServer(handler)
	s.srv = srv
	s.mu.Unlock()

	ln, err := net.Listen("tcp", s.cfg.addr)
	if err != nil {
		s.mu.Lock()
		s.srv = nil
		s.mu.Unlock()
		return errors.Join(ErrStart, err)
	}
	addr := ln.Addr().String()

	s.cfg.logger.Info("http server started", slog.String("addr", addr), logger.Component("httpserver"))
	for _, h := range s.cfg.startHooks {
		h(addr)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	var runErr error
	select {
	case <-ctx.Done():
		runErr = s.shutdownAndWait(errCh)
	case sig := <-stop:
		s.cfg.logger.Info("shutdown signal received", slog.String("signal", sig.String()), logger.Component("httpserver"))
		runErr = s.shutdownAndWait(errCh)
	case runErr = <-errCh:
	}

	if runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
		return errors.Join(ErrStart, runErr)
	}
	s.cfg.logger.Info("http server stopped", logger.Component("httpserver"))
	return nil
}

func (s *Server) shutdownAndWait(errCh <-chan error) error {
	if err := s.Shutdown(context.Background()); err != nil {
		s.cfg.logger.Error("graceful shutdown failed", logger.Error(err), logger.Component("httpserver"))
	}
	return <-errCh
}

// Shutdown stops the server gracefully, waiting at most the shutdown timeout
// for in-flight requests. Repeated calls are no-ops.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	s.once.Do(func() {
		s.mu.Lock()
		srv := s.srv
		s.mu.Unlock()
		if srv == nil {
			return
		}

		ctx, cancel := context.WithTimeout(ctx, s.cfg.shutdownTimeout)
		defer cancel()
		err = srv.Shutdown(ctx)
		for _, h := range s.cfg.stopHooks {
			h()
		}
	})

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Join(ErrShutdown, err)
	}
	return nil
}
