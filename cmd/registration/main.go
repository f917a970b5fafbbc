package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/validationkit/internal/registration"
	"github.com/dmitrymomot/validationkit/pkg/clientip"
	"github.com/dmitrymomot/validationkit/pkg/config"
	"github.com/dmitrymomot/validationkit/pkg/httpserver"
	"github.com/dmitrymomot/validationkit/pkg/logger"
	"github.com/dmitrymomot/validationkit/pkg/requestid"
)

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("registration service stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.LoadValidated[appConfig]()
	if err != nil {
		return err
	}

	log := newLogger(cfg)
	logger.SetAsDefault(log)

	srvCfg, err := config.LoadValidated[httpserver.Config]()
	if err != nil {
		return err
	}
	srv, err := httpserver.NewFromConfig(srvCfg, httpserver.WithLogger(log))
	if err != nil {
		return err
	}

	store := registration.NewMemoryStore(registration.WithBcryptCost(cfg.BcryptCost))
	return srv.Run(ctx, newRouter(log, store))
}

func newLogger(cfg appConfig) *slog.Logger {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.Service),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	}
	if level, ok := cfg.loggerLevel(); ok {
		opts = append(opts, logger.WithLevel(level))
	}
	return logger.New(opts...)
}

func newRouter(log *slog.Logger, store registration.Store) chi.Router {
	r := chi.NewRouter()
	r.Use(
		clientip.Middleware(),
		requestid.Middleware(requestid.WithLogger(log)),
		middleware.Recoverer,
	)
	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Mount("/", registration.NewHandler(store, log).Routes())
	return r
}
