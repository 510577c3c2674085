package authclient

import (
	"errors"
	"testing"
	"time"
)

func TestDefaultConfigValidates(t *testing.T) {
	if err := validateConfig(defaultConfig()); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidateConfigRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown storage backend", func(c *Config) { c.Storage.Backend = "sqlite" }},
		{"file backend without path", func(c *Config) { c.Storage.Backend = "file"; c.Storage.Path = "" }},
		{"redis backend without addr", func(c *Config) { c.Storage.Backend = "redis"; c.Storage.RedisAddr = "" }},
		{"relative sign-in path", func(c *Config) { c.Guard.SignInPath = "login" }},
		{"empty sign-in path", func(c *Config) { c.Guard.SignInPath = "" }},
		{"empty admin role", func(c *Config) { c.Guard.AdminRole = "" }},
		{"negative leeway", func(c *Config) { c.Session.ExpiryLeeway = -time.Second }},
		{"oversized leeway", func(c *Config) { c.Session.ExpiryLeeway = time.Hour }},
		{"malformed base url", func(c *Config) { c.API.BaseURL = "not a url" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultConfig()
			tc.mutate(&cfg)
			if err := validateConfig(cfg); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestValidateConfigAcceptsLeewayWithinBounds(t *testing.T) {
	cfg := defaultConfig()
	cfg.Session.ExpiryLeeway = 30 * time.Second
	if err := validateConfig(cfg); err != nil {
		t.Fatalf("config invalid: %v", err)
	}
}
