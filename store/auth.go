package store

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/l423r/mealrush-mobile-v2-sub001/internal/api"
	"github.com/l423r/mealrush-mobile-v2-sub001/internal/types"
)

// Status is the session state machine.
type Status int

const (
	StatusUnauthenticated Status = iota
	StatusInitializing
	StatusAuthenticating
	StatusAuthenticated
)

func (st Status) String() string {
	switch st {
	case StatusUnauthenticated:
		return "unauthenticated"
	case StatusInitializing:
		return "initializing"
	case StatusAuthenticating:
		return "authenticating"
	case StatusAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Auth owns the session: the in-memory user of record plus the state
// machine over the stored bearer token. StatusAuthenticated always implies
// a verified user; a token that fails verification is evicted rather than
// kept around half-alive.
type Auth struct {
	state
	root *Root
	deps Deps

	status    Status
	user      *types.User
	lastError string
}

func newAuth(root *Root, deps Deps) *Auth {
	return &Auth{root: root, deps: deps}
}

// AuthSnapshot is an atomic copy of the session state.
type AuthSnapshot struct {
	Status    Status
	User      *types.User
	LastError string
}

func (s *Auth) Snapshot() AuthSnapshot {
	var snap AuthSnapshot
	s.read(func() {
		snap.Status = s.status
		snap.LastError = s.lastError
		if s.user != nil {
			u := *s.user
			snap.User = &u
		}
	})
	return snap
}

// IsAuthenticated reports whether the session reached Authenticated.
func (s *Auth) IsAuthenticated() bool {
	var ok bool
	s.read(func() { ok = s.status == StatusAuthenticated })
	return ok
}

// CheckAuth verifies a previously stored token at launch. An absent or
// dead token lands in Unauthenticated with the token evicted; the session
// is never left authenticated without a verified user.
func (s *Auth) CheckAuth(ctx context.Context) error {
	ep := s.begin(func() {
		s.status = StatusInitializing
		s.lastError = ""
	})

	tok, ok := s.deps.Vault.Get(ctx)
	if !ok || tok == "" {
		s.commit(ep, func() { s.status = StatusUnauthenticated })
		return nil
	}

	user, err := api.GetUser(ctx, s.deps.Transport)
	if err == nil {
		err = s.root.Profile.Refresh(ctx)
	}
	if err != nil {
		log.Warn().Err(err).Msg("store: stored session is dead, evicting token")
		s.deps.Vault.Delete(ctx)
		s.commit(ep, func() {
			s.status = StatusUnauthenticated
			s.user = nil
		})
		return nil
	}

	s.commit(ep, func() {
		s.status = StatusAuthenticated
		s.user = user
	})
	return nil
}

// Login exchanges credentials for a token, persists it, then loads the
// user and checks for an existing profile. A missing profile routes the
// user to onboarding and is not a login failure. Push-device registration
// is submitted as a background task whose failure never fails the login.
func (s *Auth) Login(ctx context.Context, email, password string) error {
	ep := s.begin(func() {
		s.status = StatusAuthenticating
		s.lastError = ""
	})

	resp, err := api.Login(ctx, s.deps.Transport, types.LoginRequest{Email: email, Password: password})
	if err != nil {
		s.commit(ep, func() {
			s.status = StatusUnauthenticated
			s.lastError = errMessage(err, "Could not sign in")
		})
		return err
	}
	s.deps.Vault.Save(ctx, resp.Token)

	user, err := api.GetUser(ctx, s.deps.Transport)
	if err != nil {
		s.commit(ep, func() {
			s.status = StatusUnauthenticated
			s.lastError = errMessage(err, "Could not load your account")
		})
		return err
	}

	if err := s.root.Profile.Refresh(ctx); err != nil {
		// A hard profile failure leaves the profile stale, not the login.
		log.Warn().Err(err).Msg("store: profile check failed during login")
	}

	if !s.commit(ep, func() {
		s.status = StatusAuthenticated
		s.user = user
	}) {
		// A logout reset the stores while this login was in flight; the
		// token saved above must not outlive it.
		s.deps.Vault.Delete(ctx)
		return nil
	}

	if s.deps.Tasks != nil {
		// Detach from the login context so the registration outlives it.
		if err := s.deps.Tasks.Submit(context.WithoutCancel(ctx), "notifications", "register-device",
			s.root.Notifications.RegisterPendingDevice); err != nil {
			log.Warn().Err(err).Msg("store: could not queue device registration")
		}
	}
	return nil
}

// Register creates the account and then logs in with the same
// credentials; registration alone does not yield a usable session.
func (s *Auth) Register(ctx context.Context, email, password, name string) error {
	ep := s.begin(func() {
		s.status = StatusAuthenticating
		s.lastError = ""
	})

	_, err := api.Register(ctx, s.deps.Transport, types.RegisterRequest{
		Email:    email,
		Password: password,
		Name:     name,
	})
	if err != nil {
		s.commit(ep, func() {
			s.status = StatusUnauthenticated
			s.lastError = errMessage(err, "Could not create the account")
		})
		return err
	}
	return s.Login(ctx, email, password)
}

// ResetPassword requests a password-reset email. Public endpoint; works
// without a session.
func (s *Auth) ResetPassword(ctx context.Context, email string) error {
	return api.ResetPassword(ctx, s.deps.Transport, email)
}

// Logout clears the session, evicts the token, and resets every domain
// store. Idempotent; never fails even when token eviction does.
func (s *Auth) Logout(ctx context.Context) {
	s.deps.Vault.Delete(ctx)
	s.root.ResetAll()
}

func (s *Auth) resetState() {
	s.reset(func() {
		s.status = StatusUnauthenticated
		s.user = nil
		s.lastError = ""
	})
}
