package types

import "fmt"

// Reminder intervals accepted by the preferences endpoint.
const (
	MinReminderMinutes = 5
	MaxReminderMinutes = 120
)

// ValidateReminderInterval rejects reminder offsets outside the 5-120
// minute window before the request is built.
func ValidateReminderInterval(minutes int) error {
	if minutes < MinReminderMinutes || minutes > MaxReminderMinutes {
		return fmt.Errorf("minutesBefore must be between %d and %d, got %d",
			MinReminderMinutes, MaxReminderMinutes, minutes)
	}
	return nil
}

// ValidateReminderTime requires an HH:MM wall-clock value.
func ValidateReminderTime(t string) error {
	if len(t) != 5 || t[2] != ':' {
		return fmt.Errorf("time must be HH:MM, got %q", t)
	}
	hh := int(t[0]-'0')*10 + int(t[1]-'0')
	mm := int(t[3]-'0')*10 + int(t[4]-'0')
	for _, c := range []byte{t[0], t[1], t[3], t[4]} {
		if c < '0' || c > '9' {
			return fmt.Errorf("time must be HH:MM, got %q", t)
		}
	}
	if hh > 23 || mm > 59 {
		return fmt.Errorf("time out of range: %q", t)
	}
	return nil
}
