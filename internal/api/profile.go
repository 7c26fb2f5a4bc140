package api

import (
	"context"

	"github.com/l423r/mealrush-mobile-v2-sub001/internal/transport"
	"github.com/l423r/mealrush-mobile-v2-sub001/internal/types"
)

// CreateProfile completes onboarding for the authenticated user.
func CreateProfile(ctx context.Context, tc *transport.Client, req types.CreateProfileRequest) (*types.Profile, error) {
	var out types.Profile
	if err := tc.Post(ctx, "create profile", epProfile, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetProfile fetches the user's profile. A 404 means the user has not
// completed onboarding; callers map it to an empty state.
func GetProfile(ctx context.Context, tc *transport.Client) (*types.Profile, error) {
	var out types.Profile
	if err := tc.Get(ctx, "get profile", epProfile, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile applies a partial profile update.
func UpdateProfile(ctx context.Context, tc *transport.Client, req types.UpdateProfileRequest) (*types.Profile, error) {
	var out types.Profile
	if err := tc.Put(ctx, "update profile", epProfile, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
