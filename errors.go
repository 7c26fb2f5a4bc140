package mealrush

import "github.com/l423r/mealrush-mobile-v2-sub001/internal/httperr"

// Error-classification helpers re-exported so callers compare against one
// set of symbols without importing internal packages.

// IsNotFound reports a 404 response; stores usually map these to empty
// state before callers ever see them.
func IsNotFound(err error) bool { return httperr.IsNotFound(err) }

// IsAuthExpired reports a 401 response. The stored token is already
// evicted by the time this returns true; route the user to the
// unauthenticated flow rather than showing a raw error.
func IsAuthExpired(err error) bool { return httperr.IsAuthExpired(err) }

// IsTimeout reports a request that exceeded its deadline.
func IsTimeout(err error) bool { return httperr.IsTimeout(err) }

// ErrorStatus returns the HTTP status carried by err, or 0 for transport
// failures that never produced a response.
func ErrorStatus(err error) int { return httperr.Status(err) }

// ServerMessage extracts the server's human-readable error message, if
// the response body carried one.
func ServerMessage(err error) string { return httperr.ServerMessage(err) }
