package config

import "errors"

var (
	// ErrLoadingEnv is returned when a .env file cannot be read.
	ErrLoadingEnv = errors.New("failed to load env file")

	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrInvalidConfig is returned when a parsed config breaks its validations.
	ErrInvalidConfig = errors.New("invalid config")
)
