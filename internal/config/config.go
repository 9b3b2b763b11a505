// Package config loads runtime configuration from the environment
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"

	"github.com/KirkDiggler/arm5e-effects/internal/effects"
	"github.com/KirkDiggler/arm5e-effects/internal/magic"
)

// Config holds all configuration for the application
type Config struct {
	Redis   RedisConfig
	Effects EffectsConfig
	Log     LogConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	URL string `env:"REDIS_URL"` // empty selects the in-memory stores
}

// EffectsConfig holds rendering and rule table configuration
type EffectsConfig struct {
	Locale         string `env:"EFFECTS_LOCALE" envDefault:"en-US"`
	HiddenMode     string `env:"EFFECTS_HIDDEN_MODE" envDefault:"mark"`
	TypeTablePath  string `env:"EFFECTS_TYPE_TABLE"`
	ParametersPath string `env:"EFFECTS_PARAMETERS"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if _, err := effects.ParseHiddenMode(cfg.Effects.HiddenMode); err != nil {
		return nil, fmt.Errorf("EFFECTS_HIDDEN_MODE: %w", err)
	}
	if _, err := zapcore.ParseLevel(cfg.Log.Level); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	return cfg, nil
}

// Hidden returns the parsed hidden record policy
func (c EffectsConfig) Hidden() effects.HiddenMode {
	mode, err := effects.ParseHiddenMode(c.HiddenMode)
	if err != nil {
		return effects.HiddenMark
	}
	return mode
}

// Table loads the type table override or returns the built-in table
func (c EffectsConfig) Table() (*effects.Table, error) {
	if c.TypeTablePath == "" {
		return effects.DefaultTable(), nil
	}

	f, err := os.Open(c.TypeTablePath)
	if err != nil {
		return nil, fmt.Errorf("open type table: %w", err)
	}
	defer f.Close()

	return effects.LoadTable(f)
}

// Parameters loads the parameter table override or returns the built-in tables
func (c EffectsConfig) Parameters() (*magic.Parameters, error) {
	if c.ParametersPath == "" {
		return magic.DefaultParameters(), nil
	}

	f, err := os.Open(c.ParametersPath)
	if err != nil {
		return nil, fmt.Errorf("open parameters: %w", err)
	}
	defer f.Close()

	return magic.LoadParameters(f)
}

// ZapLevel returns the configured log level
func (c LogConfig) ZapLevel() zapcore.Level {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}
