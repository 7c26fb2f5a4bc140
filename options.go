package mealrush

// Functional options applied by New. Keeping them in one file makes every
// construction knob discoverable at a glance.

import (
	"fmt"
	"time"

	"github.com/l423r/mealrush-mobile-v2-sub001/internal/taskq"
	"github.com/l423r/mealrush-mobile-v2-sub001/vault"
)

// Option configures a Client during construction in New. Options must be
// deterministic and side-effect free.
type Option func(*Client) error

// WithTokenVault replaces the default in-memory vault, typically with a
// vault.FileVault pointed at the platform's secure storage directory.
func WithTokenVault(v vault.TokenVault) Option {
	return func(c *Client) error {
		if v == nil {
			return fmt.Errorf("token vault cannot be nil")
		}
		c.vault = v
		return nil
	}
}

// WithHTTPTimeout bounds ordinary CRUD requests. The value must be
// greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.tcfg.Timeout = d
		return nil
	}
}

// WithHeavyTimeout bounds the payload-heavy analysis requests
// (photo/text/audio), which are allowed more time than CRUD calls.
func WithHeavyTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("heavy timeout must be > 0")
		}
		c.tcfg.HeavyTimeout = d
		return nil
	}
}

// WithDebugLogging dumps every request and response at debug level. Not
// for production; dumps include headers.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		c.tcfg.Debug = enabled
		return nil
	}
}

// WithClock substitutes the clock the TTL cache measures against. Tests
// use a fake; everything else keeps time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Client) error {
		if now == nil {
			return fmt.Errorf("clock cannot be nil")
		}
		c.clock = now
		return nil
	}
}

// WithTaskConfig tunes the background task runner.
func WithTaskConfig(cfg taskq.Config) Option {
	return func(c *Client) error {
		c.taskCfg = cfg
		return nil
	}
}
