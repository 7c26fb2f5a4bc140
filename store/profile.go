package store

import (
	"context"

	"github.com/l423r/mealrush-mobile-v2-sub001/internal/api"
	"github.com/l423r/mealrush-mobile-v2-sub001/internal/httperr"
	"github.com/l423r/mealrush-mobile-v2-sub001/internal/types"
)

// Profile holds the user's body profile. A nil profile after a completed
// check means the user has not finished onboarding yet; a 404 from the
// server is that expected absence, never an error.
type Profile struct {
	state
	root *Root
	deps Deps

	profile   *types.Profile
	checked   bool
	loading   bool
	lastError string
}

func newProfile(root *Root, deps Deps) *Profile {
	return &Profile{root: root, deps: deps}
}

// ProfileSnapshot is an atomic copy of the profile state.
type ProfileSnapshot struct {
	Profile   *types.Profile
	Checked   bool
	Loading   bool
	LastError string
}

func (s *Profile) Snapshot() ProfileSnapshot {
	var snap ProfileSnapshot
	s.read(func() {
		snap.Checked = s.checked
		snap.Loading = s.loading
		snap.LastError = s.lastError
		if s.profile != nil {
			p := *s.profile
			snap.Profile = &p
		}
	})
	return snap
}

// NeedsSetup reports that the server was asked and has no profile yet;
// the rendering layer routes to onboarding on true.
func (s *Profile) NeedsSetup() bool {
	var need bool
	s.read(func() { need = s.checked && s.profile == nil })
	return need
}

// Refresh fetches the current profile. 404 commits a nil profile and
// returns nil.
func (s *Profile) Refresh(ctx context.Context) error {
	ep := s.begin(func() {
		s.loading = true
		s.lastError = ""
	})

	p, err := api.GetProfile(ctx, s.deps.Transport)
	if httperr.IsNotFound(err) {
		s.commit(ep, func() {
			s.loading = false
			s.checked = true
			s.profile = nil
		})
		return nil
	}
	if err != nil {
		s.commit(ep, func() {
			s.loading = false
			s.lastError = errMessage(err, "Could not load your profile")
		})
		return err
	}
	s.commit(ep, func() {
		s.loading = false
		s.checked = true
		s.profile = p
	})
	return nil
}

// Create submits the onboarding profile.
func (s *Profile) Create(ctx context.Context, req types.CreateProfileRequest) error {
	ep := s.begin(func() {
		s.loading = true
		s.lastError = ""
	})

	p, err := api.CreateProfile(ctx, s.deps.Transport, req)
	if err != nil {
		s.commit(ep, func() {
			s.loading = false
			s.lastError = errMessage(err, "Could not create your profile")
		})
		return err
	}
	s.commit(ep, func() {
		s.loading = false
		s.checked = true
		s.profile = p
	})
	return nil
}

// Update applies a partial profile change.
func (s *Profile) Update(ctx context.Context, req types.UpdateProfileRequest) error {
	ep := s.begin(func() {
		s.loading = true
		s.lastError = ""
	})

	p, err := api.UpdateProfile(ctx, s.deps.Transport, req)
	if err != nil {
		s.commit(ep, func() {
			s.loading = false
			s.lastError = errMessage(err, "Could not update your profile")
		})
		return err
	}
	s.commit(ep, func() {
		s.loading = false
		s.profile = p
	})
	return nil
}

func (s *Profile) resetState() {
	s.reset(func() {
		s.profile = nil
		s.checked = false
		s.loading = false
		s.lastError = ""
	})
}
