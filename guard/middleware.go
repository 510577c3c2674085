package guard

import (
	"net/http"
	"net/url"

	"github.com/mockview/authclient"
)

// SnapshotFunc supplies the current session snapshot; normally this is
// Manager.Snapshot.
type SnapshotFunc func() authclient.Snapshot

// Middleware mounts a guard on an HTTP route. Each request is decided
// against the snapshot at that moment: Wait answers 503 with Retry-After,
// Redirect answers 302 to the sign-in path with the intended path in the
// "from" query parameter, Forbid answers 403 in place, and Grant passes
// through to next.
func Middleware(snapshot SnapshotFunc, g Guard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if snapshot == nil || g == nil {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}

			decision := g.Evaluate(snapshot(), r.URL.Path)
			switch decision.State {
			case Grant:
				next.ServeHTTP(w, r)
			case Wait:
				w.Header().Set("Retry-After", "1")
				http.Error(w, "session pending", http.StatusServiceUnavailable)
			case Redirect:
				to := decision.To
				if decision.From != "" {
					to += "?from=" + url.QueryEscape(decision.From)
				}
				http.Redirect(w, r, to, http.StatusFound)
			default:
				http.Error(w, "forbidden", http.StatusForbidden)
			}
		})
	}
}

// RequireAuthenticated mounts [Authenticated] with the default sign-in path.
func RequireAuthenticated(snapshot SnapshotFunc) func(http.Handler) http.Handler {
	return Middleware(snapshot, Authenticated{})
}

// RequireRole mounts [Role] for role with the default sign-in path.
func RequireRole(snapshot SnapshotFunc, role string) func(http.Handler) http.Handler {
	return Middleware(snapshot, Role{Required: role})
}
