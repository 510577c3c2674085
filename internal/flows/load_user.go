package flows

import (
	"context"
	"errors"
	"time"

	"github.com/mockview/authclient/api"
	"github.com/mockview/authclient/claims"
)

// ErrSuperseded is returned by a PersistToken dependency when a newer
// operation claimed the session while this one was starting. The flow aborts
// without touching anything else.
var ErrSuperseded = errors.New("operation superseded")

// Rejection reasons recorded in LoadUserOutcome.Reason and surfaced through
// audit events. Every non-authenticated outcome names exactly one.
const (
	ReasonStorageFailed      = "storage_failed"
	ReasonTokenMalformed     = "token_malformed"
	ReasonTokenExpired       = "token_expired"
	ReasonProfileFetchFailed = "profile_fetch_failed"
	ReasonRoleMissing        = "role_missing"
	ReasonSuperseded         = "superseded"
)

// LoadUserDeps captures the token validation flow's dependencies.
type LoadUserDeps struct {
	// PersistToken writes the token to durable storage and attaches it as
	// the ambient bearer header, or returns ErrSuperseded when a newer
	// operation owns the session.
	PersistToken func(ctx context.Context, token string) error

	// Decode parses the token locally, no network.
	Decode func(token string) (claims.Claims, error)

	// FetchProfile calls the current-profile endpoint using the attached
	// bearer header.
	FetchProfile func(ctx context.Context) (*api.User, error)

	Now    func() time.Time
	Leeway time.Duration
}

// LoadUserOutcome is the result of one validation pass. Authenticated false
// means the Manager must clear the store, detach the header, and publish the
// unauthenticated state, unless Reason is ReasonSuperseded, in which case
// nothing may be touched.
type LoadUserOutcome struct {
	Authenticated bool
	Claims        claims.Claims
	User          *api.User
	Reason        string
	Err           error
}

// RunLoadUser executes the validation algorithm: persist + attach, local
// decode, expiry check, profile fetch, role check. Each step that fails
// resolves the whole pass as unauthenticated; no step panics or propagates.
func RunLoadUser(ctx context.Context, token string, d LoadUserDeps) LoadUserOutcome {
	if err := d.PersistToken(ctx, token); err != nil {
		if errors.Is(err, ErrSuperseded) {
			return LoadUserOutcome{Reason: ReasonSuperseded, Err: err}
		}
		return LoadUserOutcome{Reason: ReasonStorageFailed, Err: err}
	}

	cl, err := d.Decode(token)
	if err != nil {
		return LoadUserOutcome{Reason: ReasonTokenMalformed, Err: err}
	}

	if cl.Expired(d.Now(), d.Leeway) {
		return LoadUserOutcome{Claims: cl, Reason: ReasonTokenExpired}
	}

	user, err := d.FetchProfile(ctx)
	if err != nil {
		return LoadUserOutcome{Claims: cl, Reason: ReasonProfileFetchFailed, Err: err}
	}
	if user == nil || user.Role == "" {
		return LoadUserOutcome{Claims: cl, Reason: ReasonRoleMissing}
	}

	return LoadUserOutcome{
		Authenticated: true,
		Claims:        cl,
		User:          user,
	}
}
