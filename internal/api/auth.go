package api

import (
	"context"

	"github.com/l423r/mealrush-mobile-v2-sub001/internal/transport"
	"github.com/l423r/mealrush-mobile-v2-sub001/internal/types"
)

// Login submits credentials to the public token endpoint.
func Login(ctx context.Context, tc *transport.Client, req types.LoginRequest) (*types.LoginResponse, error) {
	var out types.LoginResponse
	if err := tc.Post(ctx, "login", epLogin, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates a new account. It does not yield a session; callers log
// in with the same credentials afterwards.
func Register(ctx context.Context, tc *transport.Client, req types.RegisterRequest) (*types.User, error) {
	var out types.User
	if err := tc.Post(ctx, "register", epRegister, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetUser fetches the account behind the current bearer token.
func GetUser(ctx context.Context, tc *transport.Client) (*types.User, error) {
	var out types.User
	if err := tc.Get(ctx, "get user", epUser, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResetPassword triggers the server-side reset flow for an email.
func ResetPassword(ctx context.Context, tc *transport.Client, email string) error {
	return tc.Post(ctx, "reset password", epResetPassword, types.ResetPasswordRequest{Email: email}, nil)
}
