package test

import (
	"context"
	"net/http"
	"testing"

	"github.com/mockview/authclient"
	"github.com/mockview/authclient/api"
	"github.com/mockview/authclient/claims"
	"github.com/mockview/authclient/guard"
	"github.com/mockview/authclient/store"
)

// This test intentionally guards public API compile-compat for consumers.
func TestPublicAPISurfaceCompile(t *testing.T) {
	_ = authclient.New
	_ = authclient.DefaultConfig

	var _ *authclient.Manager
	var _ authclient.Config
	var _ authclient.Snapshot
	var _ authclient.Result
	var _ authclient.Phase
	var _ *authclient.User
	var _ authclient.Claims
	var _ authclient.AuditSink
	var _ authclient.AuditEvent
	var _ authclient.MetricID
	var _ authclient.MetricsSnapshot

	var _ error = authclient.ErrBuilderUsed
	var _ error = authclient.ErrInvalidConfig
	var _ error = api.ErrAPIFailure
	var _ error = api.ErrServerUnreachable
	var _ error = claims.ErrMalformedToken
	var _ error = store.ErrTokenNotFound

	var _ store.TokenStore = store.NewMemory()
	var _ store.TokenStore = store.NewFile("")

	var _ guard.Guard = guard.Authenticated{}
	var _ guard.Guard = guard.Role{}
	var _ func(guard.SnapshotFunc) func(http.Handler) http.Handler = guard.RequireAuthenticated

	var _ func(*authclient.Manager, context.Context) = (*authclient.Manager).Initialize
	var _ func(*authclient.Manager, context.Context, string) = (*authclient.Manager).LoadUser
	var _ func(*authclient.Manager, context.Context, string, string) authclient.Result = (*authclient.Manager).Login
	var _ func(*authclient.Manager, context.Context, string, string, string) authclient.Result = (*authclient.Manager).Signup
	var _ func(*authclient.Manager) = (*authclient.Manager).Logout
	var _ func(*authclient.Manager, context.Context, string) authclient.Result = (*authclient.Manager).ForgotPassword
	var _ func(*authclient.Manager, context.Context, string, string) authclient.Result = (*authclient.Manager).ResetPassword
	var _ func(*authclient.Manager) authclient.Snapshot = (*authclient.Manager).Snapshot
	var _ func(*authclient.Manager) (<-chan authclient.Snapshot, func()) = (*authclient.Manager).Subscribe
}
