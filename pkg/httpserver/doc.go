// Package httpserver runs an http.Handler with graceful shutdown.
//
// Run listens on the configured address, serves until its context is
// cancelled, SIGINT or SIGTERM is received, or Shutdown is called, then
// drains in-flight requests within the shutdown timeout.
//
//	cfg, err := config.LoadValidated[httpserver.Config]()
//	if err != nil {
//		return err
//	}
//	srv, err := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err != nil {
//		return err
//	}
//	return srv.Run(ctx, router)
//
// Config is a validation.Validatable: NewFromConfig rejects empty or
// malformed addresses and out of range timeouts, reporting each of them by
// environment variable name.
//
// Errors are wrapped with ErrStart, ErrShutdown or ErrInvalidConfig.
package httpserver
