package authclient

import (
	"io"

	"github.com/mockview/authclient/api"
	"github.com/mockview/authclient/claims"
	internalaudit "github.com/mockview/authclient/internal/audit"
)

// User is the hydrated profile record. It is present on a Snapshot if and
// only if the session is authenticated.
type User = api.User

// Claims is the locally decoded token payload (subject, expiry). Derived
// from the token on every change, never persisted separately.
type Claims = claims.Claims

// Phase is the session lifecycle state. Modeling the state as a tagged
// variant instead of independent booleans makes the illegal combinations
// (loading with a stale user, authenticated without a profile)
// unrepresentable.
type Phase uint8

const (
	// PhaseUninitialized is the state before Initialize has settled.
	// Readers treat it as loading.
	PhaseUninitialized Phase = iota
	// PhaseValidating means a login or validation round-trip is in flight.
	PhaseValidating
	// PhaseAuthenticated means the token is present, unexpired, and the
	// profile was hydrated with a role.
	PhaseAuthenticated
	// PhaseUnauthenticated is the settled signed-out state.
	PhaseUnauthenticated
)

func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "uninitialized"
	case PhaseValidating:
		return "validating"
	case PhaseAuthenticated:
		return "authenticated"
	case PhaseUnauthenticated:
		return "unauthenticated"
	}
	return "unknown"
}

// Snapshot is the immutable-at-a-point-in-time view of the session exposed
// to guards and UI callers. A new value is published on every state change;
// fields are never mutated in place.
type Snapshot struct {
	Token      string
	Claims     Claims
	User       *User
	Phase      Phase
	Generation uint64
}

// IsAuthenticated reports whether the session settled as authenticated.
func (s Snapshot) IsAuthenticated() bool {
	return s.Phase == PhaseAuthenticated
}

// IsLoading reports whether a session determination is still in flight.
func (s Snapshot) IsLoading() bool {
	return s.Phase == PhaseUninitialized || s.Phase == PhaseValidating
}

// Result is returned by Login, Signup, ForgotPassword, and ResetPassword.
// Operations never raise: failures arrive here as Success=false with a
// user-facing message.
type Result struct {
	Success bool
	User    *User
	Message string
}

// AuditEvent is a structured audit record emitted by the Manager.
type AuditEvent = internalaudit.Event

// AuditSink receives [AuditEvent] values from the Manager's dispatcher.
type AuditSink = internalaudit.Sink

// NoOpSink is an [AuditSink] that silently discards all events.
type NoOpSink = internalaudit.NoOpSink

// ChannelSink is a buffered channel-based [AuditSink].
type ChannelSink = internalaudit.ChannelSink

// JSONWriterSink is an [AuditSink] that writes JSON-encoded events to an
// io.Writer, one object per line.
type JSONWriterSink = internalaudit.JSONWriterSink

// NewChannelSink creates a ChannelSink with the given buffer size.
func NewChannelSink(buffer int) *ChannelSink {
	return internalaudit.NewChannelSink(buffer)
}

// NewJSONWriterSink creates a JSONWriterSink writing to w.
func NewJSONWriterSink(w io.Writer) *JSONWriterSink {
	return internalaudit.NewJSONWriterSink(w)
}
