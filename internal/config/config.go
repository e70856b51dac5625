// Package config reads the sinklog command defaults from the environment.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/muesli/termenv"

	"github.com/mordilloSan/sinklog/logger"
)

// Color modes accepted by SINKLOG_COLOR and --color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var (
	// ErrEnvVariablesNotValid wraps every environment parsing or validation failure.
	ErrEnvVariablesNotValid = errors.New("environment variables not valid")
)

// Config holds the defaults the command line flags start from.
type Config struct {
	Transports string `env:"SINKLOG_TRANSPORTS" envDefault:"file,console"`
	File       string `env:"SINKLOG_FILE" envDefault:"log.log"`
	Color      string `env:"SINKLOG_COLOR" envDefault:"auto"`
}

// Load parses the environment into a Config and validates it.
func Load() (*Config, error) {
	var envVars Config
	if err := env.Parse(&envVars); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrEnvVariablesNotValid, err.Error())
	}

	if err := validateEnvironmentVariables(&envVars); err != nil {
		return nil, err
	}
	return &envVars, nil
}

func validateEnvironmentVariables(envVars *Config) error {
	if err := ValidateColor(envVars.Color); err != nil {
		return fmt.Errorf("%w: SINKLOG_COLOR %s", ErrEnvVariablesNotValid, err.Error())
	}
	return nil
}

// ValidateColor checks a color mode name.
func ValidateColor(mode string) error {
	switch mode {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	}
	return fmt.Errorf("must be one of %s, %s, %s; got %q", ColorAuto, ColorAlways, ColorNever, mode)
}

// LoggerOptions turns the configuration into logger options.
func (c *Config) LoggerOptions() []logger.Option {
	opts := []logger.Option{
		logger.WithTransports(logger.ParseTransports(c.Transports)...),
		logger.WithFile(c.File),
	}
	switch c.Color {
	case ColorAlways:
		opts = append(opts, logger.WithColorProfile(termenv.ANSI))
	case ColorNever:
		opts = append(opts, logger.WithColorProfile(termenv.Ascii))
	}
	return opts
}
