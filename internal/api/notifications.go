package api

import (
	"context"

	"github.com/l423r/mealrush-mobile-v2-sub001/internal/transport"
	"github.com/l423r/mealrush-mobile-v2-sub001/internal/types"
)

// RegisterDevice submits this installation's push token.
func RegisterDevice(ctx context.Context, tc *transport.Client, req types.RegisterDeviceRequest) (*types.Device, error) {
	var out types.Device
	if err := tc.Post(ctx, "register device", epDevices, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UnregisterDevice removes a push token from the account.
func UnregisterDevice(ctx context.Context, tc *transport.Client, deviceToken string) error {
	return tc.Delete(ctx, "unregister device", epDevices+"/"+deviceToken)
}

// GetPreferences fetches reminder preferences. The server creates defaults
// on first request.
func GetPreferences(ctx context.Context, tc *transport.Client) (*types.NotificationPreferences, error) {
	var out types.NotificationPreferences
	if err := tc.Get(ctx, "get preferences", epPreferences, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePreferences applies a partial preference update.
func UpdatePreferences(ctx context.Context, tc *transport.Client, req types.UpdatePreferencesRequest) (*types.NotificationPreferences, error) {
	var out types.NotificationPreferences
	if err := tc.Patch(ctx, "update preferences", epPreferences, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResetPreferences restores server defaults.
func ResetPreferences(ctx context.Context, tc *transport.Client) (*types.NotificationPreferences, error) {
	var out types.NotificationPreferences
	if err := tc.Post(ctx, "reset preferences", epPreferencesReset, struct{}{}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
