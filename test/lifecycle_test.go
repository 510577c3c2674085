package test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"

	"github.com/mockview/authclient"
	"github.com/mockview/authclient/api"
	"github.com/mockview/authclient/store"
)

func startBackend(t *testing.T) *httptest.Server {
	t.Helper()

	key := []byte("integration-key")
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/signin", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email string `json:"email"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject:   req.Email,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}).SignedString(key)
		if err != nil {
			http.Error(w, `{"message":"signing failed"}`, http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(api.SignInResponse{Token: raw})
	})
	mux.HandleFunc("GET /auth/me", func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		var reg jwt.RegisteredClaims
		if _, err := jwt.NewParser().ParseWithClaims(raw, &reg, func(*jwt.Token) (any, error) {
			return key, nil
		}); err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "invalid token"})
			return
		}
		json.NewEncoder(w).Encode(api.MeResponse{User: &api.User{
			ID:       "it-user",
			Username: "it",
			Email:    reg.Subject,
			Role:     "user",
		}})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newRedisStore(t *testing.T) store.TokenStore {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run failed: %v", err)
	}
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = rdb.Close()
		mr.Close()
	})
	return store.NewRedis(rdb, "")
}

func buildManager(t *testing.T, srv *httptest.Server, tokens store.TokenStore) *authclient.Manager {
	t.Helper()

	m, err := authclient.New().
		WithAPIClient(api.NewClient(api.WithBaseURL(srv.URL))).
		WithTokenStore(tokens).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	t.Cleanup(m.Close)
	return m
}

// A login from one Manager must survive a "restart": a second Manager over
// the same token store hydrates the session from the persisted token alone.
func TestSessionSurvivesRestartThroughRedisStore(t *testing.T) {
	srv := startBackend(t)
	tokens := newRedisStore(t)
	ctx := context.Background()

	first := buildManager(t, srv, tokens)
	first.Initialize(ctx)
	if res := first.Login(ctx, "it@example.com", "pw"); !res.Success {
		t.Fatalf("login failed: %q", res.Message)
	}

	second := buildManager(t, srv, tokens)
	second.Initialize(ctx)

	snap := second.Snapshot()
	if !snap.IsAuthenticated() {
		t.Fatalf("phase after restart = %v, want authenticated", snap.Phase)
	}
	if snap.User == nil || snap.User.Email != "it@example.com" {
		t.Fatalf("restarted session user = %+v", snap.User)
	}
}

func TestLogoutPropagatesThroughSharedStore(t *testing.T) {
	srv := startBackend(t)
	tokens := newRedisStore(t)
	ctx := context.Background()

	first := buildManager(t, srv, tokens)
	first.Initialize(ctx)
	if res := first.Login(ctx, "it@example.com", "pw"); !res.Success {
		t.Fatalf("login failed: %q", res.Message)
	}
	first.Logout()

	second := buildManager(t, srv, tokens)
	second.Initialize(ctx)
	if snap := second.Snapshot(); snap.Phase != authclient.PhaseUnauthenticated {
		t.Fatalf("phase after logout+restart = %v, want unauthenticated", snap.Phase)
	}
}
