// Package transport executes JSON requests against the nutrition gateway.
// It owns the bearer-token attachment policy (every endpoint except the
// three public auth ones), the 401 token-eviction rule, and the split
// between the standard and the long-deadline HTTP clients used by the
// payload-heavy analysis endpoints.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/l423r/mealrush-mobile-v2-sub001/internal/httperr"
	"github.com/l423r/mealrush-mobile-v2-sub001/vault"
)

// Deadlines per endpoint class. Analysis uploads carry base64 payloads and
// get a longer window, mirroring the gateway's own processing budget.
const (
	DefaultTimeout      = 30 * time.Second
	DefaultHeavyTimeout = 40 * time.Second
)

// maxErrorBody bounds how much of an error response is retained.
const maxErrorBody = 64 << 10

// Client executes HTTP requests against one configured base endpoint.
type Client struct {
	baseURL string
	std     *http.Client
	heavy   *http.Client
}

// Config carries construction knobs for New.
type Config struct {
	Timeout      time.Duration
	HeavyTimeout time.Duration
	Debug        bool
}

// New builds a Client whose transport chain attaches the bearer token from
// tv to every non-public request and evicts the token on any 401.
func New(baseURL string, tv vault.TokenVault, cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.HeavyTimeout <= 0 {
		cfg.HeavyTimeout = DefaultHeavyTimeout
	}
	base := http.DefaultTransport
	if cfg.Debug {
		base = &debugTransport{base: base}
	}
	rt := &authTransport{
		base:   base,
		vault:  tv,
		public: publicEndpoints(baseURL),
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		std:     &http.Client{Timeout: cfg.Timeout, Transport: rt},
		heavy:   &http.Client{Timeout: cfg.HeavyTimeout, Transport: rt},
	}
}

// publicEndpoints builds the fixed allow-list of unauthenticated calls,
// keyed by "METHOD path". GET /auth/user (current user) is authenticated;
// only the exact method+path pairs below skip the token.
func publicEndpoints(baseURL string) map[string]struct{} {
	prefix := ""
	if u, err := url.Parse(baseURL); err == nil {
		prefix = strings.TrimRight(u.Path, "/")
	}
	set := make(map[string]struct{}, 3)
	for _, p := range []string{"/auth/token", "/auth/user", "/auth/reset-password"} {
		set[http.MethodPost+" "+prefix+p] = struct{}{}
	}
	return set
}

// authTransport is the interceptor pair from the original client collapsed
// into one RoundTripper: token attachment on the way out, token eviction
// on a 401 on the way back.
type authTransport struct {
	base   http.RoundTripper
	vault  vault.TokenVault
	public map[string]struct{}
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	cloned := req.Clone(req.Context())
	cloned.Header.Set("X-Request-Id", uuid.NewString())

	if _, isPublic := t.public[req.Method+" "+req.URL.Path]; !isPublic {
		// Absent token: send unauthenticated and let the server reject.
		if tok, ok := t.vault.Get(req.Context()); ok {
			cloned.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := t.base.RoundTrip(cloned)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		// A dead token must not survive to the next launch. No retry;
		// the failure propagates to the caller unchanged.
		t.vault.Delete(req.Context())
		tokenEvictionsTotal.Inc()
	}
	return resp, nil
}

// Get issues a GET and decodes a 2xx JSON body into out.
func (c *Client) Get(ctx context.Context, op, path string, query url.Values, out any) error {
	return c.do(ctx, op, http.MethodGet, path, query, nil, out, false)
}

// Post issues a POST with a JSON body.
func (c *Client) Post(ctx context.Context, op, path string, body, out any) error {
	return c.do(ctx, op, http.MethodPost, path, nil, body, out, false)
}

// PostHeavy is Post on the long-deadline client (analysis endpoints).
func (c *Client) PostHeavy(ctx context.Context, op, path string, body, out any) error {
	return c.do(ctx, op, http.MethodPost, path, nil, body, out, true)
}

// Put issues a PUT with a JSON body.
func (c *Client) Put(ctx context.Context, op, path string, body, out any) error {
	return c.do(ctx, op, http.MethodPut, path, nil, body, out, false)
}

// Patch issues a PATCH with a JSON body.
func (c *Client) Patch(ctx context.Context, op, path string, body, out any) error {
	return c.do(ctx, op, http.MethodPatch, path, nil, body, out, false)
}

// Delete issues a DELETE; 2xx bodies are discarded.
func (c *Client) Delete(ctx context.Context, op, path string) error {
	return c.do(ctx, op, http.MethodDelete, path, nil, nil, nil, false)
}

func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body, out any, heavyClient bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	hc := c.std
	if heavyClient {
		hc = c.heavy
	}
	start := time.Now()
	resp, err := hc.Do(req)
	if err != nil {
		requestsTotal.WithLabelValues(method, "error").Inc()
		return httperr.FromTransport(op, err)
	}
	defer func() { _ = resp.Body.Close() }()
	requestsTotal.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()
	requestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return httperr.FromResponse(op, resp.StatusCode, raw)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}
