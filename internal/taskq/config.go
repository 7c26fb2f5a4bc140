package taskq

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config tunes the runner. Zero values fall back to defaults.
type Config struct {
	Shards         int           `envconfig:"SHARDS" default:"2"`
	QueueSize      int           `envconfig:"QUEUE_SIZE" default:"64"`
	EnqueueTimeout time.Duration `envconfig:"ENQUEUE_TIMEOUT" default:"100ms"`
	MaxAttempts    int           `envconfig:"MAX_ATTEMPTS" default:"5"`
	BaseBackoff    time.Duration `envconfig:"BASE_BACKOFF" default:"200ms"`
	MaxInterval    time.Duration `envconfig:"MAX_INTERVAL" default:"10s"`
}

// DefaultConfig returns the compiled-in defaults.
func DefaultConfig() Config {
	return Config{
		Shards:         2,
		QueueSize:      64,
		EnqueueTimeout: 100 * time.Millisecond,
		MaxAttempts:    5,
		BaseBackoff:    200 * time.Millisecond,
		MaxInterval:    10 * time.Second,
	}
}

// LoadConfig reads MEALRUSH_TASKS_* environment overrides.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("MEALRUSH_TASKS", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Shards <= 0 {
		c.Shards = d.Shards
	}
	if c.QueueSize <= 0 {
		c.QueueSize = d.QueueSize
	}
	if c.EnqueueTimeout <= 0 {
		c.EnqueueTimeout = d.EnqueueTimeout
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = d.MaxAttempts
	}
	if c.BaseBackoff <= 0 {
		c.BaseBackoff = d.BaseBackoff
	}
	if c.MaxInterval <= 0 {
		c.MaxInterval = d.MaxInterval
	}
	return c
}
