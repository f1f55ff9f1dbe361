// Package config loads the subsystem's configuration from environment
// variables.
package config

import (
	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/meshverse/assetloader/errors"
)

// Config is the configuration the surrounding world/session supplies.
type Config struct {
	// AssetsRoot is the base address asset:// locators resolve against.
	// May be empty, in which case only absolute locators resolve.
	AssetsRoot string `env:"ASSETLOADER_ASSETS_ROOT"`

	// LogLevel selects the zap level for the subsystem's loggers.
	LogLevel string `env:"ASSETLOADER_LOG_LEVEL" envDefault:"info"`
}

// Load parses configuration from the environment.
func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, errors.New(errors.PhaseConfig, errors.KindInvalidInput).
			Detail("parse environment").
			Cause(err).
			Build()
	}
	return c, nil
}

// Logger builds a production zap logger at the configured level.
func (c Config) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, errors.New(errors.PhaseConfig, errors.KindInvalidInput).
			Detail("unknown log level %q", c.LogLevel).
			Cause(err).
			Build()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	return cfg.Build()
}
