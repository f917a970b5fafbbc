// Package logger builds *slog.Logger instances for the services of this
// module and provides attribute helpers for validation failures.
//
// New creates a logger from functional options: output format (text or
// json), minimum level, static attributes and ContextExtractor callbacks
// that pull request scoped values, such as a request id, out of the context
// passed to the *Context logging methods.
//
//	log := logger.New(
//		logger.WithEnvironment("production", "registration"),
//		logger.WithContextValue("request_id", requestIDKey),
//	)
//	log.InfoContext(ctx, "registration rejected",
//		logger.Component("registration"),
//		logger.Validation(err),
//	)
//
// Validation expands a validation error into a group of messages keyed by
// field path, so rejected payloads can be searched by field in log
// aggregation systems without logging the submitted values.
//
// Helpers returning an attribute for an optional value (Error, Errors,
// Validation, RequestID) return an empty slog.Attr for nil input, which
// slog drops, so call sites need no nil checks.
package logger
