package requestid

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/validationkit/pkg/logger"
)

// Header is the canonical request identifier header.
const Header = "X-Request-ID"

// Option configures Middleware.
type Option func(*options)

type options struct {
	header   string
	generate func() string
	logger   *slog.Logger
}

// WithHeader reads and writes the identifier under name instead of Header.
func WithHeader(name string) Option {
	return func(o *options) {
		if name != "" {
			o.header = name
		}
	}
}

// WithGenerator replaces the UUID generator.
func WithGenerator(fn func() string) Option {
	return func(o *options) {
		if fn != nil {
			o.generate = fn
		}
	}
}

// WithLogger logs rejected client identifiers at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Middleware returns a middleware assigning a request identifier.
func Middleware(opts ...Option) func(http.Handler) http.Handler {
	o := &options{header: Header, generate: New}
	for _, opt := range opts {
		opt(o)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(o.header)
			if id != "" {
				if err := Validate(id); err != nil {
					if o.logger != nil {
						o.logger.DebugContext(r.Context(), "request id rejected",
							logger.Component("requestid"), logger.Error(err))
					}
					id = ""
				}
			}
			if id == "" {
				id = o.generate()
			}

			w.Header().Set(o.header, id)
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), id)))
		})
	}
}
