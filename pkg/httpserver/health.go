package httpserver

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/fezwebco/getintouch/pkg/logger"
)

// Check is one named readiness dependency.
type Check struct {
	Name string
	Fn   func(context.Context) error
}

// Liveness answers 200 "ALIVE" as long as the process serves requests.
func Liveness() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeProbe(w, http.StatusOK, "ALIVE")
	}
}

// Readiness runs every check with the request context bounded by timeout.
// All pass: 200 "READY". Any failure: 503 "NOT_READY", logged with the check name.
func Readiness(log *slog.Logger, timeout time.Duration, checks ...Check) http.HandlerFunc {
	if log == nil {
		log = logger.Discard()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		if err := Probe(ctx, checks...); err != nil {
			log.WarnContext(ctx, "readiness check failed", logger.Error(err), logger.Component("httpserver"))
			writeProbe(w, http.StatusServiceUnavailable, "NOT_READY")
			return
		}
		writeProbe(w, http.StatusOK, "READY")
	}
}

// Probe runs checks in order and stops at the first failure.
func Probe(ctx context.Context, checks ...Check) error {
	for _, c := range checks {
		if c.Fn == nil {
			continue
		}
		if err := c.Fn(ctx); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrNotReady, c.Name, err)
		}
	}
	return nil
}

func writeProbe(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
