package mealrush

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/l423r/mealrush-mobile-v2-sub001/vault"
)

func TestNewRequiresBaseURL(t *testing.T) {
	if _, err := New(""); err == nil {
		t.Fatal("expected error for empty baseURL")
	}
}

func TestOptionValidation(t *testing.T) {
	cases := []struct {
		name string
		opt  Option
	}{
		{"zero http timeout", WithHTTPTimeout(0)},
		{"negative heavy timeout", WithHeavyTimeout(-time.Second)},
		{"nil vault", WithTokenVault(nil)},
		{"nil clock", WithClock(nil)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New("http://localhost", tc.opt); err == nil {
				t.Fatal("expected option error")
			}
		})
	}
}

func TestCloseIdempotent(t *testing.T) {
	c, err := New("http://localhost")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}

func TestEndToEndLoginFlow(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/token", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"jwtToken": "tok-e2e"})
	})
	mux.HandleFunc("GET /auth/user", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-e2e" {
			http.Error(w, `{"message":"unauthorized"}`, http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 1, "email": "e@f.g", "name": "Eve"})
	})
	mux.HandleFunc("GET /user-profile", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"not found"}`, http.StatusNotFound)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	mv := vault.NewMemVault()
	c, err := New(srv.URL, WithTokenVault(mv))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer func() { _ = c.Close() }()

	ctx := context.Background()
	if err := c.Auth().Login(ctx, "e@f.g", "pw"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !c.Auth().IsAuthenticated() {
		t.Fatal("expected authenticated session")
	}
	if !c.Stores().Profile.NeedsSetup() {
		t.Fatal("expected needs-setup with no profile")
	}
	if tok, ok := mv.Get(ctx); !ok || tok != "tok-e2e" {
		t.Fatalf("vault token = %q, %v", tok, ok)
	}

	c.Auth().Logout(ctx)
	if _, ok := mv.Get(ctx); ok {
		t.Fatal("token should be evicted after logout")
	}
}
