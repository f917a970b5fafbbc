package clientip_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/validationkit/pkg/clientip"
	"github.com/dmitrymomot/validationkit/pkg/logger"
)

func TestFromRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		trusted    []string
		want       string
	}{
		{
			name:       "remote address",
			remoteAddr: "192.0.2.10:1234",
			want:       "192.0.2.10",
		},
		{
			name:       "remote address without port",
			remoteAddr: "192.0.2.10",
			want:       "192.0.2.10",
		},
		{
			name:       "cloudflare first",
			headers:    map[string]string{"CF-Connecting-IP": "203.0.113.1", "X-Forwarded-For": "203.0.113.2"},
			remoteAddr: "10.0.0.1:80",
			want:       "203.0.113.1",
		},
		{
			name:       "first valid forwarded entry",
			headers:    map[string]string{"X-Forwarded-For": "garbage, 203.0.113.5 , 10.0.0.1"},
			remoteAddr: "10.0.0.1:80",
			want:       "203.0.113.5",
		},
		{
			name:       "invalid headers fall back",
			headers:    map[string]string{"X-Real-IP": "not-an-ip"},
			remoteAddr: "[2001:db8::1]:443",
			want:       "2001:db8::1",
		},
		{
			name:       "ipv4 mapped ipv6 is unmapped",
			headers:    map[string]string{"X-Real-IP": "::ffff:198.51.100.7"},
			remoteAddr: "10.0.0.1:80",
			want:       "198.51.100.7",
		},
		{
			name:       "custom header list ignores defaults",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.2", "Fly-Client-IP": "203.0.113.9"},
			remoteAddr: "10.0.0.1:80",
			trusted:    []string{"Fly-Client-IP"},
			want:       "203.0.113.9",
		},
		{
			name:       "nothing valid",
			remoteAddr: "pipe",
			want:       "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, clientip.FromRequest(req, tt.trusted...))
		})
	}
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithContextExtractors(clientip.LoggerExtractor()))

	var seen string
	handler := clientip.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = clientip.FromContext(r.Context())
		log.InfoContext(r.Context(), "request")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Real-IP", "203.0.113.4")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "203.0.113.4", seen)
	assert.Contains(t, buf.String(), `"client_ip":"203.0.113.4"`)
}
