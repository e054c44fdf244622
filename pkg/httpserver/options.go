package httpserver

import (
	"log/slog"
	"time"
)

// Option configures the HTTP server.
type Option func(*config)

// WithAddr sets the address the server listens on. Port 0 picks a free port;
// the bound address is passed to start hooks.
func WithAddr(addr string) Option {
	if addr == "" {
		panic("WithAddr: addr cannot be empty")
	}
	return func(c *config) { c.addr = addr }
}

func timeout(name string, d time.Duration, set func(*config, time.Duration)) Option {
	if d <= 0 {
		panic(name + ": duration must be > 0")
	}
	return func(c *config) { set(c, d) }
}

// WithReadTimeout bounds reading the entire request, body included.
func WithReadTimeout(d time.Duration) Option {
	return timeout("WithReadTimeout", d, func(c *config, d time.Duration) { c.readTimeout = d })
}

// WithReadHeaderTimeout bounds reading request headers. Unset, the read
// timeout applies.
func WithReadHeaderTimeout(d time.Duration) Option {
	return timeout("WithReadHeaderTimeout", d, func(c *config, d time.Duration) { c.readHeaderTimeout = d })
}

// WithWriteTimeout bounds the whole handler, including outbound email calls
// made with the request context.
func WithWriteTimeout(d time.Duration) Option {
	return timeout("WithWriteTimeout", d, func(c *config, d time.Duration) { c.writeTimeout = d })
}

func WithIdleTimeout(d time.Duration) Option {
	return timeout("WithIdleTimeout", d, func(c *config, d time.Duration) { c.idleTimeout = d })
}

// WithShutdownTimeout caps how long in-flight requests get to finish.
func WithShutdownTimeout(d time.Duration) Option {
	return timeout("WithShutdownTimeout", d, func(c *config, d time.Duration) { c.shutdownTimeout = d })
}

// WithLogger sets the logger for lifecycle events. Nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithStartHook registers a callback that runs once the listener is bound.
func WithStartHook(h func(addr string)) Option {
	if h == nil {
		panic("WithStartHook: nil hook")
	}
	return func(c *config) {
		c.startHooks = append(c.startHooks, h)
	}
}

// WithStopHook registers a callback that runs after the server shuts down.
func WithStopHook(h func()) Option {
	if h == nil {
		panic("WithStopHook: nil hook")
	}
	return func(c *config) {
		c.stopHooks = append(c.stopHooks, h)
	}
}
