// Package config loads application configuration from environment
// variables into typed structs.
//
// Values are parsed with github.com/caarlos0/env/v11 after the process
// environment has been seeded, once, from the .env files given to LoadEnv
// (or the .env file of the working directory, when present). Variables
// already set in the environment always win over file values.
//
//	type Config struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	cfg, err := config.Load[Config]()
//
// Config structs implementing validation.Validatable can be loaded with
// LoadValidated, which rejects values breaking their rules:
//
//	func (c Config) Validations() (*validation.Validations[Config], error) {
//		vs := validation.NewValidations[Config]()
//		validation.AddAt(vs, configAddr, []string{"HTTP_ADDR"},
//			validation.Not(validation.Empty[string]()))
//		return vs, nil
//	}
//
//	cfg, err := config.LoadValidated[Config]()
//
// Failures can be compared with errors.Is against ErrLoadingEnv,
// ErrParsingConfig and ErrInvalidConfig.
package config
