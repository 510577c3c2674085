package flows

import (
	"context"
	"testing"

	"github.com/mockview/authclient/api"
)

func TestRunLoginSuccess(t *testing.T) {
	d := LoginDeps{
		SignIn: func(ctx context.Context, email, password string) (*api.SignInResponse, error) {
			return &api.SignInResponse{Token: "tok-1", User: &api.User{ID: "u1"}}, nil
		},
	}

	out := RunLogin(context.Background(), "a@b.c", "pw", d)
	if out.Err != nil {
		t.Fatalf("err = %v", out.Err)
	}
	if out.Token != "tok-1" {
		t.Fatalf("token = %q", out.Token)
	}
}

func TestRunLoginSurfacesBackendMessage(t *testing.T) {
	d := LoginDeps{
		SignIn: func(ctx context.Context, email, password string) (*api.SignInResponse, error) {
			return nil, &api.APIError{StatusCode: 401, Message: "Invalid credentials"}
		},
	}

	out := RunLogin(context.Background(), "a@b.c", "bad", d)
	if out.Err == nil {
		t.Fatal("expected error")
	}
	if out.Message != "Invalid credentials" {
		t.Fatalf("message = %q", out.Message)
	}
}

func TestRunLoginDefaultMessage(t *testing.T) {
	d := LoginDeps{
		SignIn: func(ctx context.Context, email, password string) (*api.SignInResponse, error) {
			return nil, &api.ServerUnreachableError{}
		},
	}

	out := RunLogin(context.Background(), "a@b.c", "pw", d)
	if out.Message != LoginFailedMessage {
		t.Fatalf("message = %q, want %q", out.Message, LoginFailedMessage)
	}
}

func passthroughDeps(msg string, err error) PassthroughDeps {
	resp := &api.MessageResponse{Message: msg}
	return PassthroughDeps{
		SignUp: func(ctx context.Context, username, email, password string) (*api.MessageResponse, error) {
			return resp, err
		},
		ForgotPassword: func(ctx context.Context, email string) (*api.MessageResponse, error) {
			return resp, err
		},
		ResetPassword: func(ctx context.Context, resetToken, newPassword string) (*api.MessageResponse, error) {
			return resp, err
		},
	}
}

func TestPassthroughSuccess(t *testing.T) {
	d := passthroughDeps("done", nil)

	for name, run := range map[string]func() MessageOutcome{
		"signup": func() MessageOutcome { return RunSignup(context.Background(), "bob", "b@c.d", "pw", d) },
		"forgot": func() MessageOutcome { return RunForgotPassword(context.Background(), "b@c.d", d) },
		"reset":  func() MessageOutcome { return RunResetPassword(context.Background(), "rt", "new-pw", d) },
	} {
		out := run()
		if !out.Success || out.Message != "done" {
			t.Errorf("%s outcome = %+v", name, out)
		}
	}
}

func TestPassthroughFailureDefaults(t *testing.T) {
	d := passthroughDeps("", &api.ServerUnreachableError{})

	if out := RunSignup(context.Background(), "bob", "b@c.d", "pw", d); out.Success || out.Message != SignupFailedMessage {
		t.Errorf("signup outcome = %+v", out)
	}
	if out := RunForgotPassword(context.Background(), "b@c.d", d); out.Success || out.Message != ForgotPasswordFailedMessage {
		t.Errorf("forgot outcome = %+v", out)
	}
	if out := RunResetPassword(context.Background(), "rt", "pw", d); out.Success || out.Message != ResetPasswordFailedMessage {
		t.Errorf("reset outcome = %+v", out)
	}
}
