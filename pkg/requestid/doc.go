// Package requestid attaches a correlation identifier to every HTTP request.
//
// Middleware reuses the identifier sent by the client in the X-Request-ID
// header when it passes Validate, and generates a UUID otherwise. The chosen
// identifier is stored in the request context and echoed in the response
// header.
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware(requestid.WithLogger(log)))
//
// LoggerExtractor plugs the identifier into records written through
// pkg/logger:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
package requestid
