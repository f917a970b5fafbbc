package httpserver_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validationkit/pkg/httpserver"
	"github.com/dmitrymomot/validationkit/pkg/validation"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
}

func waitReady(t *testing.T, srv *httpserver.Server) {
	t.Helper()
	select {
	case <-srv.Ready():
	case <-time.After(time.Second):
		require.Fail(t, "server did not start")
	}
}

func waitDone(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(2 * time.Second):
		require.Fail(t, "run did not finish")
		return nil
	}
}

func TestRunAndCancel(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	srv := httpserver.New(
		httpserver.WithAddr("127.0.0.1:0"),
		httpserver.WithShutdownTimeout(100*time.Millisecond),
		httpserver.WithLogger(slog.New(slog.NewJSONHandler(buf, nil))),
	)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, okHandler()) }()
	waitReady(t, srv)

	resp, err := http.Get("http://" + srv.Addr())
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, "ok", string(body))

	cancel()
	require.NoError(t, waitDone(t, done))
	require.NoError(t, srv.Shutdown(context.Background()))
	assert.Contains(t, buf.String(), "http server started")
	assert.Contains(t, buf.String(), "http server stopped")
}

func TestManualShutdown(t *testing.T) {
	t.Parallel()
	srv := httpserver.New(httpserver.WithAddr("127.0.0.1:0"))

	done := make(chan error, 1)
	go func() { done <- srv.Run(context.Background(), nil) }()
	waitReady(t, srv)

	require.NoError(t, srv.Shutdown(context.Background()))
	require.NoError(t, waitDone(t, done))
}

func TestRunWaitsForExternalShutdown(t *testing.T) {
	t.Parallel()
	entered := make(chan struct{}, 1)
	release := make(chan struct{})
	t.Cleanup(func() { close(release) })
	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case entered <- struct{}{}:
		default:
		}
		<-release
	})

	srv := httpserver.New(
		httpserver.WithAddr("127.0.0.1:0"),
		httpserver.WithShutdownTimeout(50*time.Millisecond),
	)
	done := make(chan error, 1)
	go func() { done <- srv.Run(context.Background(), slow) }()
	waitReady(t, srv)

	go func() {
		resp, err := http.Get("http://" + srv.Addr())
		if err == nil {
			_ = resp.Body.Close()
		}
	}()
	select {
	case <-entered:
	case <-time.After(time.Second):
		require.Fail(t, "request did not reach the handler")
	}

	shutdownErr := make(chan error, 1)
	go func() { shutdownErr <- srv.Shutdown(context.Background()) }()

	assert.ErrorIs(t, waitDone(t, done), httpserver.ErrShutdown)
	assert.ErrorIs(t, waitDone(t, shutdownErr), httpserver.ErrShutdown)
}

func TestShutdownBeforeRun(t *testing.T) {
	t.Parallel()
	srv := httpserver.New(httpserver.WithAddr("127.0.0.1:0"))

	require.NoError(t, srv.Shutdown(context.Background()))
	err := srv.Run(context.Background(), okHandler())
	assert.ErrorIs(t, err, httpserver.ErrStart)
}

func TestRunTwice(t *testing.T) {
	t.Parallel()
	srv := httpserver.New(httpserver.WithAddr("127.0.0.1:0"))
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, okHandler()) }()
	waitReady(t, srv)

	err := srv.Run(ctx, okHandler())
	assert.ErrorIs(t, err, httpserver.ErrStart)

	cancel()
	require.NoError(t, waitDone(t, done))
}

func TestStartError(t *testing.T) {
	t.Parallel()
	srv := httpserver.New(httpserver.WithAddr(":invalid"))
	err := srv.Run(context.Background(), okHandler())
	require.Error(t, err)
	assert.ErrorIs(t, err, httpserver.ErrStart)
}

func TestOptionsPanic(t *testing.T) {
	assert.Panics(t, func() { httpserver.WithAddr("") })
	assert.Panics(t, func() { httpserver.WithReadHeaderTimeout(0) })
	assert.Panics(t, func() { httpserver.WithReadTimeout(0) })
	assert.Panics(t, func() { httpserver.WithWriteTimeout(-time.Second) })
	assert.Panics(t, func() { httpserver.WithIdleTimeout(0) })
	assert.Panics(t, func() { httpserver.WithShutdownTimeout(0) })
}

func validConfig() httpserver.Config {
	return httpserver.Config{
		Addr:              "127.0.0.1:0",
		ReadHeaderTimeout: time.Second,
		ReadTimeout:       time.Second,
		WriteTimeout:      time.Second,
		IdleTimeout:       time.Second,
		ShutdownTimeout:   time.Second,
	}
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		srv, err := httpserver.NewFromConfig(validConfig())
		require.NoError(t, err)
		assert.Equal(t, "127.0.0.1:0", srv.Addr())
	})

	t.Run("zero config", func(t *testing.T) {
		_, err := httpserver.NewFromConfig(httpserver.Config{})
		require.Error(t, err)
		assert.ErrorIs(t, err, httpserver.ErrInvalidConfig)
		assert.Equal(t, map[string][]string{
			"HTTP_ADDR":                {"is empty"},
			"HTTP_READ_HEADER_TIMEOUT": {"is less than 1ms"},
			"HTTP_READ_TIMEOUT":        {"is less than 1ms"},
			"HTTP_WRITE_TIMEOUT":       {"is less than 1ms"},
			"HTTP_IDLE_TIMEOUT":        {"is less than 1ms"},
			"HTTP_SHUTDOWN_TIMEOUT":    {"is less than 1ms"},
		}, validation.Details(err))
	})

	t.Run("malformed address", func(t *testing.T) {
		cfg := validConfig()
		cfg.Addr = "localhost"
		cfg.IdleTimeout = time.Hour

		_, err := httpserver.NewFromConfig(cfg)
		assert.Equal(t, map[string][]string{
			"HTTP_ADDR":         {"isn't a host:port address"},
			"HTTP_IDLE_TIMEOUT": {"is greater than 10m0s"},
		}, validation.Details(err))
	})
}

func TestHealthCheckHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		checks []func(context.Context) error
		status int
		body   string
	}{
		{name: "liveness", status: http.StatusOK, body: "ALIVE"},
		{
			name:   "ready",
			checks: []func(context.Context) error{func(context.Context) error { return nil }},
			status: http.StatusOK,
			body:   "READY",
		},
		{
			name: "not ready",
			checks: []func(context.Context) error{
				func(context.Context) error { return nil },
				func(context.Context) error { return errors.New("db down") },
			},
			status: http.StatusServiceUnavailable,
			body:   "NOT_READY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			httpserver.HealthCheckHandler(nil, tt.checks...).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.body, rec.Body.String())
		})
	}
}
