package config

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/validationkit/pkg/validation"
)

var (
	envOnce sync.Once
	envErr  error
)

// LoadEnv seeds the process environment from files, in order; earlier files
// take precedence over later ones and variables already set are never
// overridden. Without arguments the .env file of the working directory is
// loaded when it exists.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		if _, err := os.Stat(".env"); err != nil {
			return nil
		}
		files = []string{".env"}
	}
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnv, err)
	}
	return nil
}

// MustLoadEnv is like LoadEnv but panics on failure.
func MustLoadEnv(files ...string) {
	if err := LoadEnv(files...); err != nil {
		panic(err)
	}
}

// Load parses the environment into a new T. The default .env file is loaded
// on the first call.
func Load[T any]() (T, error) {
	envOnce.Do(func() { envErr = LoadEnv() })

	var cfg T
	if envErr != nil {
		return cfg, envErr
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// MustLoad is like Load but panics on failure.
func MustLoad[T any]() T {
	cfg, err := Load[T]()
	if err != nil {
		panic(err)
	}
	return cfg
}

// LoadValidated loads T and runs all its validations. Every failing rule is
// reported in the returned error, wrapped with ErrInvalidConfig.
func LoadValidated[T validation.Validatable[T]]() (T, error) {
	cfg, err := Load[T]()
	if err != nil {
		return cfg, err
	}
	if err := validation.ValidateAll(cfg); err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return cfg, nil
}
