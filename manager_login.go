package authclient

import (
	"context"

	"github.com/mockview/authclient/internal/flows"
)

// Login exchanges credentials for a token and hydrates the session. While
// the exchange is in flight the published phase is PhaseValidating; on
// failure the session settles unauthenticated and the Result carries the
// backend's message (or a default). The returned Result reports success only
// if the session actually settled authenticated under this call: a token
// that fails validation, or a logout that lands mid-flight, both count as
// failure.
func (m *Manager) Login(ctx context.Context, email, password string) Result {
	if m == nil {
		return Result{Message: flows.LoginFailedMessage}
	}

	gen := m.beginOp()
	m.publish(gen, Snapshot{Phase: PhaseValidating})

	out := flows.RunLogin(ctx, email, password, flows.LoginDeps{
		SignIn: m.api.SignIn,
	})
	if out.Err != nil {
		m.metricInc(MetricLoginFailure)
		m.emitAudit(AuditEvent{
			EventType:  EventLoginFailure,
			Generation: gen,
			Error:      out.Err.Error(),
		})
		m.publish(gen, unauthenticatedSnapshot())
		return Result{Message: out.Message}
	}

	// Hydrate under the login's generation: if a logout claimed a newer one
	// while the credential exchange was in flight, the hydration result is
	// discarded and the logout stands.
	if !m.loadUserWithGen(ctx, out.Token, gen) {
		m.metricInc(MetricLoginFailure)
		return Result{Message: flows.LoginFailedMessage}
	}

	snap := m.Snapshot()
	if snap.Generation != gen || !snap.IsAuthenticated() {
		m.metricInc(MetricLoginFailure)
		return Result{Message: flows.LoginFailedMessage}
	}

	m.metricInc(MetricLoginSuccess)
	m.emitAudit(AuditEvent{
		EventType:  EventLoginSuccess,
		UserID:     userID(snap.User),
		Generation: gen,
		Success:    true,
	})
	return Result{Success: true, User: snap.User}
}

// Signup registers a new account. It never touches session state: the
// product flow sends a fresh signup to the login screen rather than
// auto-authenticating.
func (m *Manager) Signup(ctx context.Context, username, email, password string) Result {
	if m == nil {
		return Result{Message: flows.SignupFailedMessage}
	}

	out := flows.RunSignup(ctx, username, email, password, flows.PassthroughDeps{
		SignUp: m.api.SignUp,
	})
	if !out.Success {
		m.metricInc(MetricSignupFailure)
		m.emitAudit(AuditEvent{
			EventType: EventSignup,
			Error:     out.Err.Error(),
		})
		return Result{Message: out.Message}
	}

	m.metricInc(MetricSignupSuccess)
	m.emitAudit(AuditEvent{EventType: EventSignup, Success: true})
	return Result{Success: true, Message: out.Message}
}

func userID(u *User) string {
	if u == nil {
		return ""
	}
	return u.ID
}
