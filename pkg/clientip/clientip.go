// Package clientip resolves the address of the visitor behind a request and
// carries it in the request context so log records can name it.
//
// Forwarding headers are spoofable, so only the headers listed in Config are
// consulted; with none configured the connection's remote address is used.
package clientip

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"net/textproto"
	"strings"
)

// Config lists the proxy headers to trust, in priority order, e.g.
// "CF-Connecting-IP,X-Forwarded-For". X-Forwarded-For contributes its first
// valid entry.
type Config struct {
	TrustedHeaders []string `env:"HTTP_TRUSTED_IP_HEADERS" envSeparator:","`
}

// Resolver extracts client IPs using a fixed list of trusted headers.
type Resolver struct {
	headers []string
}

// New creates a Resolver. Blank header names are ignored.
func New(trustedHeaders ...string) *Resolver {
	headers := make([]string, 0, len(trustedHeaders))
	for _, h := range trustedHeaders {
		if h = strings.TrimSpace(h); h != "" {
			headers = append(headers, textproto.CanonicalMIMEHeaderKey(h))
		}
	}
	return &Resolver{headers: headers}
}

// IP returns the normalized client IP or "" when nothing valid is found.
func (res *Resolver) IP(r *http.Request) string {
	for _, h := range res.headers {
		value := r.Header.Get(h)
		if value == "" {
			continue
		}
		for candidate := range strings.SplitSeq(value, ",") {
			if ip := parseIP(candidate); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

// Middleware stores the resolved IP in the request context.
func (res *Resolver) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ip := res.IP(r); ip != "" {
			r = r.WithContext(WithContext(r.Context(), ip))
		}
		next.ServeHTTP(w, r)
	})
}

type contextKey struct{}

func WithContext(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, contextKey{}, ip)
}

// FromContext returns the client IP or "" when none is set.
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	ip, _ := ctx.Value(contextKey{}).(string)
	return ip
}

// LoggerExtractor adds client_ip to log records written with a request context.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if ip := FromContext(ctx); ip != "" {
			return slog.String("client_ip", ip), true
		}
		return slog.Attr{}, false
	}
}

func parseIP(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	ip := net.ParseIP(s)
	if ip == nil {
		return ""
	}
	return ip.String()
}
