package store

import (
	"context"
	"fmt"

	"github.com/l423r/mealrush-mobile-v2-sub001/internal/api"
	"github.com/l423r/mealrush-mobile-v2-sub001/internal/types"
)

// Notifications holds the push-device registration state and the reminder
// preferences. The OS-level permission dialog lives outside this layer;
// the rendering layer reports its outcome here and consumes the
// registration transitions.
type Notifications struct {
	state
	root *Root
	deps Deps

	deviceToken       string
	deviceType        types.DeviceType
	registered        bool
	permissionGranted *bool
	prefs             *types.NotificationPreferences
	loading           bool
	lastError         string
}

func newNotifications(root *Root, deps Deps) *Notifications {
	return &Notifications{root: root, deps: deps}
}

// NotificationsSnapshot is an atomic copy of the notification state.
type NotificationsSnapshot struct {
	DeviceToken       string
	DeviceType        types.DeviceType
	Registered        bool
	PermissionGranted *bool
	Preferences       *types.NotificationPreferences
	Loading           bool
	LastError         string
}

func (s *Notifications) Snapshot() NotificationsSnapshot {
	var snap NotificationsSnapshot
	s.read(func() {
		snap.DeviceToken = s.deviceToken
		snap.DeviceType = s.deviceType
		snap.Registered = s.registered
		if s.permissionGranted != nil {
			g := *s.permissionGranted
			snap.PermissionGranted = &g
		}
		if s.prefs != nil {
			p := *s.prefs
			snap.Preferences = &p
		}
		snap.Loading = s.loading
		snap.LastError = s.lastError
	})
	return snap
}

// SetDeviceToken records the push token handed over by the platform;
// registration happens on RegisterPendingDevice.
func (s *Notifications) SetDeviceToken(token string, dt types.DeviceType) {
	s.mutate(func() {
		s.deviceToken = token
		s.deviceType = dt
		s.registered = false
	})
}

// SetPermission records the outcome of the OS permission prompt.
func (s *Notifications) SetPermission(granted bool) {
	s.mutate(func() { s.permissionGranted = &granted })
}

// RegisterPendingDevice registers the stored device token with the
// backend. No token yet is a silent no-op; login submits this as a
// background task so a failure never blocks the session.
func (s *Notifications) RegisterPendingDevice(ctx context.Context) error {
	var token string
	var dt types.DeviceType
	s.read(func() {
		token = s.deviceToken
		dt = s.deviceType
	})
	if token == "" {
		return nil
	}

	ep := s.begin(func() { s.lastError = "" })
	_, err := api.RegisterDevice(ctx, s.deps.Transport, types.RegisterDeviceRequest{
		DeviceToken: token,
		DeviceType:  dt,
	})
	if err != nil {
		s.commit(ep, func() { s.registered = false })
		return err
	}
	s.commit(ep, func() { s.registered = true })
	return nil
}

// UnregisterDevice removes the device registration from the backend.
func (s *Notifications) UnregisterDevice(ctx context.Context) error {
	var token string
	s.read(func() { token = s.deviceToken })
	if token == "" {
		return nil
	}
	if err := api.UnregisterDevice(ctx, s.deps.Transport, token); err != nil {
		return err
	}
	s.mutate(func() { s.registered = false })
	return nil
}

// LoadPreferences fetches the reminder preferences.
func (s *Notifications) LoadPreferences(ctx context.Context) error {
	ep := s.begin(func() {
		s.loading = true
		s.lastError = ""
	})

	p, err := api.GetPreferences(ctx, s.deps.Transport)
	if err != nil {
		s.commit(ep, func() {
			s.loading = false
			s.lastError = errMessage(err, "Could not load notification settings")
		})
		return err
	}
	s.commit(ep, func() {
		s.loading = false
		s.prefs = p
	})
	return nil
}

// PreferenceUpdate is one updatable field group of the reminder
// preferences. Updates validate client-side before any request is built.
type PreferenceUpdate interface {
	apply(*types.UpdatePreferencesRequest) error
}

type globalEnabledUpdate bool

func (u globalEnabledUpdate) apply(req *types.UpdatePreferencesRequest) error {
	v := bool(u)
	req.GloballyEnabled = &v
	return nil
}

// SetGlobalEnabled toggles all notifications.
func SetGlobalEnabled(on bool) PreferenceUpdate { return globalEnabledUpdate(on) }

type achievementsEnabledUpdate bool

func (u achievementsEnabledUpdate) apply(req *types.UpdatePreferencesRequest) error {
	v := bool(u)
	req.AchievementsEnabled = &v
	return nil
}

// SetAchievementsEnabled toggles achievement notifications.
func SetAchievementsEnabled(on bool) PreferenceUpdate { return achievementsEnabledUpdate(on) }

type mealReminderUpdate struct {
	meal     types.MealType
	reminder types.MealReminder
}

func (u mealReminderUpdate) apply(req *types.UpdatePreferencesRequest) error {
	r := u.reminder
	// Zero values mean "leave unchanged" in the PATCH; only set fields
	// are validated. Enabled snack reminders are the exception below.
	if r.Time != "" {
		if err := types.ValidateReminderTime(r.Time); err != nil {
			return err
		}
	}
	if r.MinutesBefore != 0 {
		if err := types.ValidateReminderInterval(r.MinutesBefore); err != nil {
			return err
		}
	}
	switch u.meal {
	case types.MealBreakfast:
		req.Breakfast = &r
	case types.MealLunch:
		req.Lunch = &r
	case types.MealDinner:
		req.Dinner = &r
	case types.MealSupper, types.MealLateSupper:
		// Snack reminders have no server default; an enabled one must say
		// when to fire.
		if r.Enabled {
			if r.Time == "" {
				return fmt.Errorf("%s reminder requires a time", u.meal)
			}
			if err := types.ValidateReminderInterval(r.MinutesBefore); err != nil {
				return err
			}
		}
		if u.meal == types.MealSupper {
			req.Snack = &r
		} else {
			req.LateSnack = &r
		}
	default:
		return fmt.Errorf("unknown meal type %q", u.meal)
	}
	return nil
}

// SetMealReminder replaces one meal's reminder group.
func SetMealReminder(meal types.MealType, r types.MealReminder) PreferenceUpdate {
	return mealReminderUpdate{meal: meal, reminder: r}
}

// UpdatePreferences merges the given field-group updates into one PATCH.
// A validation failure aborts before any request is sent.
func (s *Notifications) UpdatePreferences(ctx context.Context, updates ...PreferenceUpdate) error {
	var req types.UpdatePreferencesRequest
	for _, u := range updates {
		if err := u.apply(&req); err != nil {
			s.mutate(func() { s.lastError = err.Error() })
			return err
		}
	}

	ep := s.begin(func() {
		s.loading = true
		s.lastError = ""
	})
	p, err := api.UpdatePreferences(ctx, s.deps.Transport, req)
	if err != nil {
		s.commit(ep, func() {
			s.loading = false
			s.lastError = errMessage(err, "Could not save notification settings")
		})
		return err
	}
	s.commit(ep, func() {
		s.loading = false
		s.prefs = p
	})
	return nil
}

// ResetPreferences restores the server-side defaults.
func (s *Notifications) ResetPreferences(ctx context.Context) error {
	ep := s.begin(func() {
		s.loading = true
		s.lastError = ""
	})

	p, err := api.ResetPreferences(ctx, s.deps.Transport)
	if err != nil {
		s.commit(ep, func() {
			s.loading = false
			s.lastError = errMessage(err, "Could not reset notification settings")
		})
		return err
	}
	s.commit(ep, func() {
		s.loading = false
		s.prefs = p
	})
	return nil
}

func (s *Notifications) resetState() {
	s.reset(func() {
		s.deviceToken = ""
		s.deviceType = ""
		s.registered = false
		s.permissionGranted = nil
		s.prefs = nil
		s.loading = false
		s.lastError = ""
	})
}
