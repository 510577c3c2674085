package guard

import (
	"github.com/mockview/authclient"
)

// State is the guard verdict variant.
type State uint8

const (
	// Wait means the session determination is still in flight; render
	// nothing (or a loading shell) and re-evaluate on the next snapshot.
	Wait State = iota
	// Grant admits the request to the target.
	Grant
	// Redirect sends the caller to Decision.To, remembering Decision.From
	// so the flow can return after sign-in.
	Redirect
	// Forbid denies in place: the caller is signed in but not allowed, and
	// redirecting to sign-in would loop.
	Forbid
)

func (s State) String() string {
	switch s {
	case Wait:
		return "wait"
	case Grant:
		return "grant"
	case Redirect:
		return "redirect"
	case Forbid:
		return "forbid"
	}
	return "unknown"
}

// Decision is the outcome of evaluating a guard against one snapshot. To
// and From are set only for Redirect.
type Decision struct {
	State State
	To    string
	From  string
}

// DefaultSignInPath is where unauthenticated visitors are sent unless the
// guard was configured otherwise.
const DefaultSignInPath = "/login"

// Authenticated admits any signed-in session. The zero value uses
// [DefaultSignInPath].
type Authenticated struct {
	SignInPath string
}

// Evaluate maps the snapshot to a decision for target.
func (g Authenticated) Evaluate(snap authclient.Snapshot, target string) Decision {
	if snap.IsLoading() {
		return Decision{State: Wait}
	}
	if !snap.IsAuthenticated() {
		return Decision{State: Redirect, To: g.signInPath(), From: target}
	}
	return Decision{State: Grant}
}

func (g Authenticated) signInPath() string {
	if g.SignInPath == "" {
		return DefaultSignInPath
	}
	return g.SignInPath
}

// Role admits a signed-in session whose user carries Required. A signed-in
// user with a different role gets Forbid, never Redirect: bouncing an
// authenticated user to the sign-in page would loop them straight back.
type Role struct {
	SignInPath string
	Required   string
}

// Evaluate maps the snapshot to a decision for target.
func (g Role) Evaluate(snap authclient.Snapshot, target string) Decision {
	if snap.IsLoading() {
		return Decision{State: Wait}
	}
	if !snap.IsAuthenticated() {
		return Decision{State: Redirect, To: g.signInPath(), From: target}
	}
	if snap.User == nil || snap.User.Role != g.Required {
		return Decision{State: Forbid}
	}
	return Decision{State: Grant}
}

func (g Role) signInPath() string {
	if g.SignInPath == "" {
		return DefaultSignInPath
	}
	return g.SignInPath
}

// Guard is the common shape of the decision types, for callers that mount
// guards generically.
type Guard interface {
	Evaluate(snap authclient.Snapshot, target string) Decision
}
