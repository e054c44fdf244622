package httpserver

import "errors"

var (
	ErrStart    = errors.New("httpserver: failed to start")
	ErrShutdown = errors.New("httpserver: graceful shutdown failed")
	// ErrNotReady is returned by Probe when a readiness check fails.
	ErrNotReady = errors.New("httpserver: not ready")
)
