package authclient

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config collects the tunables for a session Manager. Zero values are filled
// with defaults in Build; validation rejects combinations a Manager cannot
// run with.
type Config struct {
	API     APIConfig
	Storage StorageConfig
	Session SessionConfig
	Guard   GuardConfig
	Audit   AuditConfig
	Metrics MetricsConfig
}

// APIConfig configures the backend client constructed by Build when no
// client is injected.
type APIConfig struct {
	// BaseURL is the auth backend root. Empty falls back to the
	// AUTHCLIENT_API_URL environment variable.
	BaseURL   string        `validate:"omitempty,url"`
	Timeout   time.Duration `validate:"min=0"`
	UserAgent string
}

// StorageConfig selects and configures the token store constructed by Build
// when no store is injected.
type StorageConfig struct {
	// Backend is one of "memory", "file", "redis".
	Backend string `validate:"oneof=memory file redis"`
	// Path is the token file location for the file backend.
	Path string `validate:"required_if=Backend file"`
	// RedisAddr is the host:port for the redis backend.
	RedisAddr string `validate:"required_if=Backend redis"`
	// RedisKey overrides the storage key for the redis backend.
	RedisKey string
}

// SessionConfig tunes the validation algorithm.
type SessionConfig struct {
	// ExpiryLeeway is subtracted from "now" when checking token expiry, to
	// absorb clock skew between client and backend. Zero disables leeway.
	ExpiryLeeway time.Duration `validate:"min=0,max=5m"`
}

// GuardConfig carries the navigation constants guards are built from.
type GuardConfig struct {
	// SignInPath is where denied navigation redirects, remembering the
	// originally attempted destination.
	SignInPath string `validate:"required,startswith=/"`
	// AdminRole is the role required by the role guard in this product.
	AdminRole string `validate:"required"`
}

// AuditConfig controls the async audit dispatcher.
type AuditConfig struct {
	Enabled    bool
	BufferSize int `validate:"min=0"`
	DropIfFull bool
}

// MetricsConfig controls the counter registry.
type MetricsConfig struct {
	Enabled bool
}

// DefaultConfig returns the configuration [New] starts from: memory token
// store, backend URL from the environment, guards on "/login" and role
// "admin".
func DefaultConfig() Config {
	return defaultConfig()
}

func defaultConfig() Config {
	return Config{
		API: APIConfig{
			Timeout:   10 * time.Second,
			UserAgent: "authclient-go",
		},
		Storage: StorageConfig{
			Backend: "memory",
		},
		Guard: GuardConfig{
			SignInPath: "/login",
			AdminRole:  "admin",
		},
		Audit: AuditConfig{
			BufferSize: 64,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

var configValidator = validator.New(validator.WithRequiredStructEnabled())

func validateConfig(cfg Config) error {
	if err := configValidator.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
