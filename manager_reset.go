package authclient

import (
	"context"

	"github.com/mockview/authclient/internal/flows"
)

// ForgotPassword asks the backend to start a password reset for email. The
// session is untouched regardless of outcome; the Result message is meant to
// be shown to the user as-is.
func (m *Manager) ForgotPassword(ctx context.Context, email string) Result {
	if m == nil {
		return Result{Message: flows.ForgotPasswordFailedMessage}
	}

	out := flows.RunForgotPassword(ctx, email, flows.PassthroughDeps{
		ForgotPassword: m.api.ForgotPassword,
	})
	m.metricInc(MetricPasswordResetRequest)
	if !out.Success {
		m.emitAudit(AuditEvent{
			EventType: EventPasswordResetRequest,
			Error:     out.Err.Error(),
		})
		return Result{Message: out.Message}
	}

	m.emitAudit(AuditEvent{EventType: EventPasswordResetRequest, Success: true})
	return Result{Success: true, Message: out.Message}
}

// ResetPassword completes a reset using the emailed token. Even on success
// the session stays as it was: the user signs in again with the new
// password.
func (m *Manager) ResetPassword(ctx context.Context, resetToken, newPassword string) Result {
	if m == nil {
		return Result{Message: flows.ResetPasswordFailedMessage}
	}

	out := flows.RunResetPassword(ctx, resetToken, newPassword, flows.PassthroughDeps{
		ResetPassword: m.api.ResetPassword,
	})
	m.metricInc(MetricPasswordResetConfirm)
	if !out.Success {
		m.emitAudit(AuditEvent{
			EventType: EventPasswordResetConfirm,
			Error:     out.Err.Error(),
		})
		return Result{Message: out.Message}
	}

	m.emitAudit(AuditEvent{EventType: EventPasswordResetConfirm, Success: true})
	return Result{Success: true, Message: out.Message}
}
