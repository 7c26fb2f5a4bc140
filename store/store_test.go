package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/l423r/mealrush-mobile-v2-sub001/internal/transport"
	"github.com/l423r/mealrush-mobile-v2-sub001/vault"
)

// fakeClock drives the TTL cache deterministically.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

type testEnv struct {
	root  *Root
	vault *vault.MemVault
	clock *fakeClock
}

func newTestEnv(t *testing.T, handler http.Handler) *testEnv {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	mv := vault.NewMemVault()
	clock := newFakeClock()
	tc := transport.New(srv.URL, mv, transport.Config{})
	root := NewRoot(Deps{Transport: tc, Vault: mv, Now: clock.Now})
	return &testEnv{root: root, vault: mv, clock: clock}
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestLoginWithMissingProfileNeedsSetup(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/token", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{"jwtToken": "tok-1", "tokenType": "Bearer"})
	})
	mux.HandleFunc("GET /auth/user", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{"id": 7, "email": "a@b.c", "name": "Ada"})
	})
	mux.HandleFunc("GET /user-profile", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"profile not found"}`, http.StatusNotFound)
	})
	env := newTestEnv(t, mux)

	require.NoError(t, env.root.Auth.Login(context.Background(), "a@b.c", "pw"))

	snap := env.root.Auth.Snapshot()
	require.Equal(t, StatusAuthenticated, snap.Status)
	require.NotNil(t, snap.User)
	require.Equal(t, "Ada", snap.User.Name)

	tok, ok := env.vault.Get(context.Background())
	require.True(t, ok)
	require.Equal(t, "tok-1", tok)

	require.True(t, env.root.Profile.NeedsSetup())
	require.Nil(t, env.root.Profile.Snapshot().Profile)
}

func TestLoginFailureSetsMessageAndClearsState(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/token", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"bad credentials"}`, http.StatusUnauthorized)
	})
	env := newTestEnv(t, mux)

	err := env.root.Auth.Login(context.Background(), "a@b.c", "wrong")
	require.Error(t, err)

	snap := env.root.Auth.Snapshot()
	require.Equal(t, StatusUnauthenticated, snap.Status)
	require.Equal(t, "bad credentials", snap.LastError)
	_, ok := env.vault.Get(context.Background())
	require.False(t, ok)
}

func TestCheckAuthDeadSessionEvictsToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /auth/user", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"expired"}`, http.StatusUnauthorized)
	})
	env := newTestEnv(t, mux)
	env.vault.Save(context.Background(), "dead-token")

	require.NoError(t, env.root.Auth.CheckAuth(context.Background()))

	require.Equal(t, StatusUnauthenticated, env.root.Auth.Snapshot().Status)
	_, ok := env.vault.Get(context.Background())
	require.False(t, ok)
}

func TestCheckAuthWithoutTokenStaysUnauthenticated(t *testing.T) {
	called := false
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) { called = true })
	env := newTestEnv(t, mux)

	require.NoError(t, env.root.Auth.CheckAuth(context.Background()))
	require.Equal(t, StatusUnauthenticated, env.root.Auth.Snapshot().Status)
	require.False(t, called)
}

func TestLogoutResetsEveryStore(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/token", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{"jwtToken": "tok-9"})
	})
	mux.HandleFunc("GET /auth/user", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{"id": 1, "email": "x@y.z", "name": "X"})
	})
	mux.HandleFunc("GET /user-profile", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{"id": 2, "userId": 1, "height": 180, "weight": 80})
	})
	env := newTestEnv(t, mux)
	ctx := context.Background()

	require.NoError(t, env.root.Auth.Login(ctx, "x@y.z", "pw"))
	env.root.UI.Notify(NoticeInfo, "hello")
	env.root.UI.SetDarkTheme(true)
	require.Equal(t, StatusAuthenticated, env.root.Auth.Snapshot().Status)
	require.NotNil(t, env.root.Profile.Snapshot().Profile)

	env.root.Auth.Logout(ctx)

	_, ok := env.vault.Get(ctx)
	require.False(t, ok)
	require.Equal(t, StatusUnauthenticated, env.root.Auth.Snapshot().Status)
	require.Nil(t, env.root.Auth.Snapshot().User)

	prof := env.root.Profile.Snapshot()
	require.Nil(t, prof.Profile)
	require.False(t, prof.Checked)
	require.False(t, env.root.Profile.NeedsSetup())

	require.Empty(t, env.root.Products.Snapshot().Mine.Items)
	require.Empty(t, env.root.Meals.Snapshot().Meals)
	require.Empty(t, env.root.Weight.Snapshot().History.Items)
	require.Empty(t, env.root.Recommendations.Snapshot().Insights)
	require.Nil(t, env.root.Nutrition.Snapshot().Daily)
	require.Nil(t, env.root.Notifications.Snapshot().Preferences)

	ui := env.root.UI.Snapshot()
	require.False(t, ui.DarkTheme)
	require.Empty(t, ui.Notices)

	// Idempotent.
	env.root.Auth.Logout(ctx)
}

func TestResetDropsLateWrites(t *testing.T) {
	release := make(chan struct{})
	mux := http.NewServeMux()
	mux.HandleFunc("GET /user-profile", func(w http.ResponseWriter, r *http.Request) {
		<-release
		writeJSON(t, w, map[string]any{"id": 2, "userId": 1, "height": 180, "weight": 80})
	})
	env := newTestEnv(t, mux)

	done := make(chan error, 1)
	go func() { done <- env.root.Profile.Refresh(context.Background()) }()

	// Let the request reach the server, reset mid-flight, then let the
	// response land.
	time.Sleep(20 * time.Millisecond)
	env.root.ResetAll()
	close(release)
	require.NoError(t, <-done)

	snap := env.root.Profile.Snapshot()
	require.Nil(t, snap.Profile)
	require.False(t, snap.Checked)
	require.False(t, snap.Loading)
}

func TestLogoutDuringLoginLeavesNoToken(t *testing.T) {
	release := make(chan struct{})
	userReached := make(chan struct{})
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/token", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, map[string]any{"jwtToken": "tok-race"})
	})
	mux.HandleFunc("GET /auth/user", func(w http.ResponseWriter, r *http.Request) {
		close(userReached)
		<-release
		writeJSON(t, w, map[string]any{"id": 1, "email": "x@y.z", "name": "X"})
	})
	mux.HandleFunc("GET /user-profile", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"not found"}`, http.StatusNotFound)
	})
	env := newTestEnv(t, mux)
	ctx := context.Background()

	done := make(chan error, 1)
	go func() { done <- env.root.Auth.Login(ctx, "x@y.z", "pw") }()

	// The token is already saved when the user fetch is held; log out,
	// then let the login finish against the reset stores.
	<-userReached
	env.root.Auth.Logout(ctx)
	close(release)
	require.NoError(t, <-done)

	_, ok := env.vault.Get(ctx)
	require.False(t, ok)
	require.Equal(t, StatusUnauthenticated, env.root.Auth.Snapshot().Status)
}

func TestSubscribeNotifiesAndCancelStops(t *testing.T) {
	env := newTestEnv(t, http.NewServeMux())

	var mu sync.Mutex
	calls := 0
	cancel := env.root.UI.Subscribe(func() {
		mu.Lock()
		calls++
		mu.Unlock()
	})

	env.root.UI.Notify(NoticeInfo, "one")
	mu.Lock()
	require.Equal(t, 1, calls)
	mu.Unlock()

	cancel()
	env.root.UI.Notify(NoticeInfo, "two")
	mu.Lock()
	require.Equal(t, 1, calls)
	mu.Unlock()
}
