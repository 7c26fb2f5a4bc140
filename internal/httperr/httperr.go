// Package httperr carries the failure taxonomy surfaced by the transport
// layer: network failures, deadline expiries, and HTTP status failures with
// the server's error body attached. It also categorizes errors as
// recoverable or irrecoverable for the background task runner's retry
// policy.
package httperr

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// Kind separates transport failures that never produced a response from
// HTTP responses with a non-2xx status.
type Kind int

const (
	// KindNetwork: no response was received (DNS, connect, reset).
	KindNetwork Kind = iota
	// KindTimeout: the per-request deadline elapsed.
	KindTimeout
	// KindHTTP: a response arrived with a non-2xx status.
	KindHTTP
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindTimeout:
		return "timeout"
	case KindHTTP:
		return "http"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is the structured failure returned by every transport call.
type Error struct {
	Kind    Kind
	Op      string // e.g. "login", "list products"
	Status  int    // HTTP status, 0 for network/timeout
	Body    string // raw response body, for debugging
	Message string // server-provided "message" field, if any
	Err     error  // underlying error
}

func (e *Error) Error() string {
	if e.Kind == KindHTTP {
		return fmt.Sprintf("%s: status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// serverBody is the error envelope the backend uses for non-2xx responses.
type serverBody struct {
	Message string `json:"message"`
}

// FromResponse builds an HTTP-kind error from a non-2xx response body.
func FromResponse(op string, status int, body []byte) *Error {
	var sb serverBody
	_ = json.Unmarshal(body, &sb)
	return &Error{
		Kind:    KindHTTP,
		Op:      op,
		Status:  status,
		Body:    string(body),
		Message: sb.Message,
		Err:     fmt.Errorf("%s: status %d", op, status),
	}
}

// FromTransport classifies a failure from http.Client.Do: deadline expiry
// becomes KindTimeout, everything else KindNetwork.
func FromTransport(op string, err error) *Error {
	kind := KindNetwork
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		kind = KindTimeout
	}
	if errors.Is(err, context.DeadlineExceeded) {
		kind = KindTimeout
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// Status returns the HTTP status of err, or 0 when err carries none.
func Status(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return 0
}

// ServerMessage extracts the server's human-readable message, if present.
func ServerMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return ""
}

// IsNotFound reports a 404 response. Callers that treat absence as an
// expected empty state (no profile yet, no weight entries yet) branch on
// this rather than surfacing an error.
func IsNotFound(err error) bool { return Status(err) == http.StatusNotFound }

// IsAuthExpired reports a 401 response. The transport has already evicted
// the stored token by the time callers see this.
func IsAuthExpired(err error) bool { return Status(err) == http.StatusUnauthorized }

// IsTimeout reports a deadline expiry.
func IsTimeout(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindTimeout
}

// Recoverable reports whether a retry could plausibly succeed. Client
// errors are final except 408 and 429; server errors and transport
// failures are transient.
func Recoverable(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return true // unknown errors: be conservative and retry
	}
	switch e.Kind {
	case KindNetwork, KindTimeout:
		return true
	}
	switch {
	case e.Status == http.StatusRequestTimeout, e.Status == http.StatusTooManyRequests:
		return true
	case e.Status >= 400 && e.Status < 500:
		return false
	default:
		return true
	}
}
