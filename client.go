// Package mealrush is the client SDK for the mealrush nutrition service:
// it owns the session token lifecycle, the authenticated HTTP transport,
// and the observable domain stores the rendering layer consumes.
package mealrush

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/l423r/mealrush-mobile-v2-sub001/internal/taskq"
	"github.com/l423r/mealrush-mobile-v2-sub001/internal/transport"
	"github.com/l423r/mealrush-mobile-v2-sub001/store"
	"github.com/l423r/mealrush-mobile-v2-sub001/vault"
)

// Client wires vault, transport, background tasks, and the store tree.
// One Client spans one application session; Close releases the task
// runner.
type Client struct {
	baseURL string
	vault   vault.TokenVault
	tcfg    transport.Config
	taskCfg taskq.Config
	clock   func() time.Time

	tasks  *taskq.Runner
	stores *store.Root

	closedOnce uint32
}

// New constructs a Client for the given gateway base URL. The default
// token vault is in-memory; pass WithTokenVault(vault.NewFileVault(dir))
// to persist the session across launches.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("baseURL cannot be empty")
	}

	c := &Client{
		baseURL: baseURL,
		vault:   vault.NewMemVault(),
		taskCfg: taskq.DefaultConfig(),
		clock:   time.Now,
	}

	// Env toggle enables wire dumps without a code change.
	if transport.DebugLoggingRequested() {
		c.tcfg.Debug = true
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	tc := transport.New(c.baseURL, c.vault, c.tcfg)
	c.tasks = taskq.NewRunner(c.taskCfg)
	c.stores = store.NewRoot(store.Deps{
		Transport: tc,
		Vault:     c.vault,
		Tasks:     c.tasks,
		Now:       c.clock,
	})
	return c, nil
}

// Stores exposes the domain store tree.
func (c *Client) Stores() *store.Root { return c.stores }

// Auth is shorthand for Stores().Auth; the session store is the usual
// entry point.
func (c *Client) Auth() *store.Auth { return c.stores.Auth }

// Close drains and stops the background task runner. Safe to call
// multiple times.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	c.tasks.Stop()
	return nil
}
