// Command authclient-probe exercises a full session lifecycle against an
// auth backend: initialize, login, snapshot, logout. When no backend URL is
// given it starts an in-process stub so the probe is self-contained.
//
// Run:
//
//	go run ./cmd/authclient-probe
//	go run ./cmd/authclient-probe -url https://api.example.com -email a@b.c -password secret
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"

	"github.com/mockview/authclient"
	"github.com/mockview/authclient/api"
	"github.com/mockview/authclient/store"
)

func main() {
	var (
		backendURL = flag.String("url", "", "auth backend base URL; empty starts an in-process stub")
		email      = flag.String("email", "probe@example.com", "login email")
		password   = flag.String("password", "probe-password", "login password")
		backend    = flag.String("store", "memory", "token store backend: memory, file, or redis")
		filePath   = flag.String("file", "", "token file path for -store file (default: temp file)")
		redisAddr  = flag.String("redis-addr", "", "redis address for -store redis; empty starts miniredis")
		leeway     = flag.Duration("leeway", 0, "expiry leeway for clock skew")
		audit      = flag.Bool("audit", false, "write JSON audit events to stderr")
	)
	flag.Parse()

	if err := run(*backendURL, *email, *password, *backend, *filePath, *redisAddr, *leeway, *audit); err != nil {
		fmt.Fprintln(os.Stderr, "probe failed:", err)
		os.Exit(1)
	}
}

func run(backendURL, email, password, backend, filePath, redisAddr string, leeway time.Duration, audit bool) error {
	ctx := context.Background()

	if backendURL == "" {
		stub, stop, err := startStubBackend()
		if err != nil {
			return fmt.Errorf("start stub backend: %w", err)
		}
		defer stop()
		backendURL = stub
		fmt.Println("using in-process stub backend at", backendURL)
	}

	cfg := authclient.DefaultConfig()
	cfg.Session.ExpiryLeeway = leeway
	builder := authclient.New().WithConfig(cfg)

	switch backend {
	case "memory":
	case "file":
		if filePath == "" {
			filePath = os.TempDir() + "/authclient-probe-token.json"
		}
		builder.WithTokenStore(store.NewFile(filePath))
		fmt.Println("token file:", filePath)
	case "redis":
		if redisAddr == "" {
			mr, err := miniredis.Run()
			if err != nil {
				return fmt.Errorf("start miniredis: %w", err)
			}
			defer mr.Close()
			redisAddr = mr.Addr()
			fmt.Println("using miniredis at", redisAddr)
		}
		client := redis.NewClient(&redis.Options{Addr: redisAddr})
		defer client.Close()
		builder.WithTokenStore(store.NewRedis(client, ""))
	default:
		return fmt.Errorf("unknown store backend %q", backend)
	}

	builder.WithAPIClient(api.NewClient(api.WithBaseURL(backendURL)))
	if audit {
		builder.WithAuditSink(authclient.NewJSONWriterSink(os.Stderr))
	}

	m, err := builder.Build()
	if err != nil {
		return err
	}
	defer m.Close()

	m.Initialize(ctx)
	fmt.Println("after initialize:", m.Snapshot().Phase)

	res := m.Login(ctx, email, password)
	if !res.Success {
		return fmt.Errorf("login: %s", res.Message)
	}
	snap := m.Snapshot()
	fmt.Printf("logged in as %s (%s, role %s)\n", snap.User.Username, snap.User.Email, snap.User.Role)
	fmt.Println("token expires:", snap.Claims.ExpiresAt.Format(time.RFC3339))

	m.Logout()
	fmt.Println("after logout:", m.Snapshot().Phase)

	counters := m.MetricsSnapshot().Counters
	fmt.Printf("metrics: login_success=%d logout=%d\n",
		counters[authclient.MetricLoginSuccess], counters[authclient.MetricLogout])
	return nil
}

// startStubBackend serves just enough of the auth API for one probe run:
// any credentials sign in, the issued token round-trips through /auth/me.
func startStubBackend() (string, func(), error) {
	signingKey := []byte("probe-stub-key")

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/signin", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Email string `json:"email"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)

		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject:   req.Email,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		}).SignedString(signingKey)
		if err != nil {
			http.Error(w, `{"message":"token signing failed"}`, http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(api.SignInResponse{Token: raw})
	})
	mux.HandleFunc("GET /auth/me", func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		var reg jwt.RegisteredClaims
		if _, err := jwt.NewParser().ParseWithClaims(raw, &reg, func(*jwt.Token) (any, error) {
			return signingKey, nil
		}); err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "invalid token"})
			return
		}
		json.NewEncoder(w).Encode(api.MeResponse{User: &api.User{
			ID:       "probe-user",
			Username: strings.SplitN(reg.Subject, "@", 2)[0],
			Email:    reg.Subject,
			Role:     "user",
		}})
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", nil, err
	}
	srv := &http.Server{Handler: mux}
	go srv.Serve(ln)

	stop := func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
	return "http://" + ln.Addr().String(), stop, nil
}
