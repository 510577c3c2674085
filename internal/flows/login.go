package flows

import (
	"context"

	"github.com/mockview/authclient/api"
)

// Default failure messages, used when the backend response carried none.
// They match what the product's UI has always shown inline.
const (
	LoginFailedMessage          = "Login failed"
	SignupFailedMessage         = "Signup failed"
	ForgotPasswordFailedMessage = "Request failed"
	ResetPasswordFailedMessage  = "Password reset failed"
)

// LoginDeps captures the credential-exchange dependencies.
type LoginDeps struct {
	SignIn func(ctx context.Context, email, password string) (*api.SignInResponse, error)
}

// LoginOutcome carries the token to hydrate with, or the failure message to
// surface. The profile embedded in the sign-in response is deliberately not
// part of the outcome: hydration goes through RunLoadUser so a single code
// path decides what "authenticated" means.
type LoginOutcome struct {
	Token   string
	Err     error
	Message string
}

// RunLogin exchanges credentials for a token. It does not mutate session
// state; the Manager follows a successful outcome with a full RunLoadUser
// pass.
func RunLogin(ctx context.Context, email, password string, d LoginDeps) LoginOutcome {
	resp, err := d.SignIn(ctx, email, password)
	if err != nil {
		return LoginOutcome{
			Err:     err,
			Message: api.Message(err, LoginFailedMessage),
		}
	}
	return LoginOutcome{Token: resp.Token}
}
