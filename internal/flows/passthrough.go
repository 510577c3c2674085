package flows

import (
	"context"

	"github.com/mockview/authclient/api"
)

// MessageOutcome is the shape of every session-neutral operation: signup and
// the two password-reset calls succeed or fail with a message, and the
// session snapshot is untouched either way.
type MessageOutcome struct {
	Success bool
	Message string
	Err     error
}

// PassthroughDeps captures the stateless request/response operations.
type PassthroughDeps struct {
	SignUp         func(ctx context.Context, username, email, password string) (*api.MessageResponse, error)
	ForgotPassword func(ctx context.Context, email string) (*api.MessageResponse, error)
	ResetPassword  func(ctx context.Context, resetToken, newPassword string) (*api.MessageResponse, error)
}

// RunSignup registers a new account.
func RunSignup(ctx context.Context, username, email, password string, d PassthroughDeps) MessageOutcome {
	resp, err := d.SignUp(ctx, username, email, password)
	if err != nil {
		return MessageOutcome{Message: api.Message(err, SignupFailedMessage), Err: err}
	}
	return MessageOutcome{Success: true, Message: resp.Message}
}

// RunForgotPassword starts the password-reset flow for email.
func RunForgotPassword(ctx context.Context, email string, d PassthroughDeps) MessageOutcome {
	resp, err := d.ForgotPassword(ctx, email)
	if err != nil {
		return MessageOutcome{Message: api.Message(err, ForgotPasswordFailedMessage), Err: err}
	}
	return MessageOutcome{Success: true, Message: resp.Message}
}

// RunResetPassword completes the password-reset flow.
func RunResetPassword(ctx context.Context, resetToken, newPassword string, d PassthroughDeps) MessageOutcome {
	resp, err := d.ResetPassword(ctx, resetToken, newPassword)
	if err != nil {
		return MessageOutcome{Message: api.Message(err, ResetPasswordFailedMessage), Err: err}
	}
	return MessageOutcome{Success: true, Message: resp.Message}
}
