package clientip_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fezwebco/getintouch/pkg/clientip"
	"github.com/fezwebco/getintouch/pkg/logger"
)

func TestResolver_IP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		trusted    []string
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{
			name:       "remote address without trusted headers",
			remoteAddr: "203.0.113.7:54321",
			want:       "203.0.113.7",
		},
		{
			name:       "untrusted forwarding header is ignored",
			headers:    map[string]string{"X-Forwarded-For": "198.51.100.1"},
			remoteAddr: "203.0.113.7:54321",
			want:       "203.0.113.7",
		},
		{
			name:       "first valid X-Forwarded-For entry",
			trusted:    []string{"x-forwarded-for"},
			headers:    map[string]string{"X-Forwarded-For": "garbage, 198.51.100.1, 10.0.0.1"},
			remoteAddr: "10.0.0.2:80",
			want:       "198.51.100.1",
		},
		{
			name:    "priority order of trusted headers",
			trusted: []string{"CF-Connecting-IP", "X-Forwarded-For"},
			headers: map[string]string{
				"CF-Connecting-IP": "198.51.100.9",
				"X-Forwarded-For":  "198.51.100.1",
			},
			remoteAddr: "10.0.0.2:80",
			want:       "198.51.100.9",
		},
		{
			name:       "falls through invalid trusted header",
			trusted:    []string{"X-Real-IP", " ", "X-Forwarded-For"},
			headers:    map[string]string{"X-Real-IP": "not-an-ip", "X-Forwarded-For": "198.51.100.1"},
			remoteAddr: "10.0.0.2:80",
			want:       "198.51.100.1",
		},
		{
			name:       "ipv6 remote address is normalized",
			remoteAddr: "[2001:0db8:0000:0000:0000:0000:0000:0001]:443",
			want:       "2001:db8::1",
		},
		{
			name:       "remote address without port",
			remoteAddr: "192.0.2.10",
			want:       "192.0.2.10",
		},
		{
			name:       "unparseable remote address",
			remoteAddr: "pipe",
			want:       "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodPost, "/", nil)
			r.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, clientip.New(tt.trusted...).IP(r))
		})
	}
}

func TestResolver_Middleware(t *testing.T) {
	t.Parallel()

	var got string
	h := clientip.New("X-Forwarded-For").Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = clientip.FromContext(r.Context())
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Forwarded-For", "198.51.100.1")
	h.ServeHTTP(httptest.NewRecorder(), r)

	assert.Equal(t, "198.51.100.1", got)
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	extract := clientip.LoggerExtractor()

	_, ok := extract(context.Background())
	assert.False(t, ok)

	attr, ok := extract(clientip.WithContext(context.Background(), "192.0.2.1"))
	require.True(t, ok)
	assert.Equal(t, "client_ip", attr.Key)
	assert.Equal(t, "192.0.2.1", attr.Value.String())

	var buf bytes.Buffer
	log := logger.New(
		logger.WithFormat(logger.FormatText),
		logger.WithOutput(&buf),
		logger.WithContextExtractors(extract),
	)
	log.InfoContext(clientip.WithContext(context.Background(), "192.0.2.1"), "hit")
	assert.Contains(t, buf.String(), "client_ip=192.0.2.1")
}
