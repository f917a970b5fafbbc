package main

import (
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/validationkit/pkg/validation"
)

type appConfig struct {
	Env        string `env:"APP_ENV" envDefault:"development"`
	Service    string `env:"APP_NAME" envDefault:"registration"`
	LogLevel   string `env:"LOG_LEVEL"`
	BcryptCost int    `env:"BCRYPT_COST" envDefault:"10"`
}

var (
	appEnv        = validation.NewField("Env", func(c appConfig) string { return c.Env })
	appService    = validation.NewField("Service", func(c appConfig) string { return c.Service })
	appLogLevel   = validation.NewField("LogLevel", func(c appConfig) string { return c.LogLevel })
	appBcryptCost = validation.NewField("BcryptCost", func(c appConfig) int { return c.BcryptCost })
)

func logLevel() validation.Validator[string] {
	return validation.New("a log level", func(name string) error {
		var l slog.Level
		if err := l.UnmarshalText([]byte(name)); err != nil {
			return validation.NewError("isn't a log level")
		}
		return nil
	})
}

func (c appConfig) Validations() (*validation.Validations[appConfig], error) {
	vs := validation.NewValidations[appConfig]()
	validation.AddAt(vs, appEnv, []string{"APP_ENV"},
		validation.In("development", "staging", "production"))
	validation.AddAt(vs, appService, []string{"APP_NAME"},
		validation.Not(validation.Empty[string]()).And(validation.CountAtMost[string](64)))
	validation.AddAt(vs, appLogLevel, []string{"LOG_LEVEL"},
		validation.Empty[string]().Or(logLevel()))
	validation.AddAt(vs, appBcryptCost, []string{"BCRYPT_COST"},
		validation.Range(bcrypt.MinCost, bcrypt.MaxCost))
	return vs, nil
}

func (c appConfig) loggerLevel() (slog.Level, bool) {
	var l slog.Level
	if c.LogLevel == "" || l.UnmarshalText([]byte(c.LogLevel)) != nil {
		return 0, false
	}
	return l, true
}
