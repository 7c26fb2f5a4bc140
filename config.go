package mealrush

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is the environment-driven client configuration, MEALRUSH_*
// prefixed. Zero values fall back to the compiled-in defaults.
type Config struct {
	BaseURL      string        `envconfig:"BASE_URL"`
	Timeout      time.Duration `envconfig:"TIMEOUT"`
	HeavyTimeout time.Duration `envconfig:"HEAVY_TIMEOUT"`
	Debug        bool          `envconfig:"DEBUG"`
}

// ConfigFromEnv reads MEALRUSH_* environment overrides.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("MEALRUSH", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewFromConfig builds a Client from an environment-driven Config;
// explicit options still win over the config values.
func NewFromConfig(cfg Config, opts ...Option) (*Client, error) {
	base := []Option{}
	if cfg.Timeout > 0 {
		base = append(base, WithHTTPTimeout(cfg.Timeout))
	}
	if cfg.HeavyTimeout > 0 {
		base = append(base, WithHeavyTimeout(cfg.HeavyTimeout))
	}
	if cfg.Debug {
		base = append(base, WithDebugLogging(true))
	}
	return New(cfg.BaseURL, append(base, opts...)...)
}
