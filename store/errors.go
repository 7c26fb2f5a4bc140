package store

import "github.com/l423r/mealrush-mobile-v2-sub001/internal/httperr"

// errMessage derives the user-facing message for a failed action: the
// server's message body when present, otherwise the action's fallback.
func errMessage(err error, fallback string) string {
	if msg := httperr.ServerMessage(err); msg != "" {
		return msg
	}
	return fallback
}
