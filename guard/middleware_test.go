package guard

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mockview/authclient"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func serve(t *testing.T, mw func(http.Handler) http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	mw(okHandler()).ServeHTTP(rec, req)
	return rec
}

func TestMiddlewareGrantsThrough(t *testing.T) {
	snap := func() authclient.Snapshot { return authenticatedSnap("user") }
	rec := serve(t, RequireAuthenticated(snap), "/dashboard")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestMiddlewareRedirectsSignedOutWithFromParam(t *testing.T) {
	snap := func() authclient.Snapshot {
		return authclient.Snapshot{Phase: authclient.PhaseUnauthenticated}
	}
	rec := serve(t, RequireAuthenticated(snap), "/interview/42")
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	loc := rec.Header().Get("Location")
	if loc != "/login?from=%2Finterview%2F42" {
		t.Fatalf("unexpected location %q", loc)
	}
}

func TestMiddlewareAnswersServiceUnavailableWhilePending(t *testing.T) {
	snap := func() authclient.Snapshot {
		return authclient.Snapshot{Phase: authclient.PhaseValidating}
	}
	rec := serve(t, RequireAuthenticated(snap), "/dashboard")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Fatalf("expected Retry-After header")
	}
}

func TestMiddlewareForbidsWrongRoleWithoutRedirect(t *testing.T) {
	snap := func() authclient.Snapshot { return authenticatedSnap("user") }
	rec := serve(t, RequireRole(snap, "admin"), "/admin")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if rec.Header().Get("Location") != "" {
		t.Fatalf("forbid must not redirect")
	}
}

func TestMiddlewareNilGuardDeniesClosed(t *testing.T) {
	rec := serve(t, Middleware(nil, nil), "/x")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}
