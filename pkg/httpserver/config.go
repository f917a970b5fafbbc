package httpserver

import (
	"errors"
	"net"
	"time"

	"github.com/dmitrymomot/validationkit/pkg/validation"
)

// Config holds the server settings read from the environment.
type Config struct {
	Addr              string        `env:"HTTP_ADDR" envDefault:":8080"`
	ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" envDefault:"10s"`
	ReadTimeout       time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"30s"`
	WriteTimeout      time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout       time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout   time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

var (
	configAddr              = validation.NewField("Addr", func(c Config) string { return c.Addr })
	configReadHeaderTimeout = validation.NewField("ReadHeaderTimeout", func(c Config) time.Duration { return c.ReadHeaderTimeout })
	configReadTimeout       = validation.NewField("ReadTimeout", func(c Config) time.Duration { return c.ReadTimeout })
	configWriteTimeout      = validation.NewField("WriteTimeout", func(c Config) time.Duration { return c.WriteTimeout })
	configIdleTimeout       = validation.NewField("IdleTimeout", func(c Config) time.Duration { return c.IdleTimeout })
	configShutdownTimeout   = validation.NewField("ShutdownTimeout", func(c Config) time.Duration { return c.ShutdownTimeout })
)

func hostPort() validation.Validator[string] {
	return validation.New("a host:port address", func(addr string) error {
		if _, _, err := net.SplitHostPort(addr); err != nil {
			return validation.NewError("isn't a host:port address")
		}
		return nil
	})
}

// Validations reports config problems under the environment variable names.
func (c Config) Validations() (*validation.Validations[Config], error) {
	vs := validation.NewValidations[Config]()
	validation.AddAt(vs, configAddr, []string{"HTTP_ADDR"},
		validation.Not(validation.Empty[string]()).And(hostPort()))

	timeout := validation.Range(time.Millisecond, 10*time.Minute)
	validation.AddAt(vs, configReadHeaderTimeout, []string{"HTTP_READ_HEADER_TIMEOUT"}, timeout)
	validation.AddAt(vs, configReadTimeout, []string{"HTTP_READ_TIMEOUT"}, timeout)
	validation.AddAt(vs, configWriteTimeout, []string{"HTTP_WRITE_TIMEOUT"}, timeout)
	validation.AddAt(vs, configIdleTimeout, []string{"HTTP_IDLE_TIMEOUT"}, timeout)
	validation.AddAt(vs, configShutdownTimeout, []string{"HTTP_SHUTDOWN_TIMEOUT"}, timeout)
	return vs, nil
}

// NewFromConfig validates cfg and creates a Server from it. opts are applied
// after the config values.
func NewFromConfig(cfg Config, opts ...Option) (*Server, error) {
	if err := validation.ValidateAll(cfg); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	configOpts := []Option{
		WithAddr(cfg.Addr),
		WithReadHeaderTimeout(cfg.ReadHeaderTimeout),
		WithReadTimeout(cfg.ReadTimeout),
		WithWriteTimeout(cfg.WriteTimeout),
		WithIdleTimeout(cfg.IdleTimeout),
		WithShutdownTimeout(cfg.ShutdownTimeout),
	}
	return New(append(configOpts, opts...)...), nil
}
