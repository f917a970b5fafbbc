package requestid

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/validationkit/pkg/logger"
)

type contextKey struct{}

// WithContext returns a copy of ctx carrying id.
func WithContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the request identifier stored in ctx, if any.
func FromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}

// LoggerExtractor adds the request identifier of the record's context under
// "request_id".
func LoggerExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		attr := logger.RequestID(FromContext(ctx))
		return attr, attr.Key != ""
	}
}
