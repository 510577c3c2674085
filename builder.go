package authclient

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mockview/authclient/api"
	internalaudit "github.com/mockview/authclient/internal/audit"
	"github.com/mockview/authclient/store"
)

// Builder assembles a session Manager. Construction is allocation-only;
// nothing touches storage or the network until the first Manager operation.
type Builder struct {
	config    Config
	store     store.TokenStore
	apiClient *api.Client
	auditSink AuditSink
	clock     func() time.Time

	built bool
}

// New creates a Builder with the default configuration: memory token store,
// backend URL from the environment, guards on "/login" and role "admin".
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig replaces the whole configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cfg
	return b
}

// WithTokenStore injects a token store, overriding Config.Storage.
func (b *Builder) WithTokenStore(s store.TokenStore) *Builder {
	b.store = s
	return b
}

// WithAPIClient injects a backend client, overriding Config.API.
func (b *Builder) WithAPIClient(c *api.Client) *Builder {
	b.apiClient = c
	return b
}

// WithAuditSink sets the sink receiving audit events and enables auditing.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	b.config.Audit.Enabled = true
	return b
}

// WithClock injects the time source used for expiry checks. Tests use this
// to pin "now".
func (b *Builder) WithClock(clock func() time.Time) *Builder {
	b.clock = clock
	return b
}

// WithMetricsEnabled toggles the counter registry.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// Build validates the configuration and assembles the Manager. A Builder is
// single-use.
func (b *Builder) Build() (*Manager, error) {
	if b.built {
		return nil, ErrBuilderUsed
	}
	b.built = true

	if err := validateConfig(b.config); err != nil {
		return nil, err
	}

	tokenStore := b.store
	if tokenStore == nil {
		switch b.config.Storage.Backend {
		case "file":
			tokenStore = store.NewFile(b.config.Storage.Path)
		case "redis":
			client := redis.NewClient(&redis.Options{Addr: b.config.Storage.RedisAddr})
			tokenStore = store.NewRedis(client, b.config.Storage.RedisKey)
		default:
			tokenStore = store.NewMemory()
		}
	}

	apiClient := b.apiClient
	if apiClient == nil {
		opts := []api.Option{
			api.WithTimeout(b.config.API.Timeout),
			api.WithUserAgent(b.config.API.UserAgent),
		}
		if b.config.API.BaseURL != "" {
			opts = append(opts, api.WithBaseURL(b.config.API.BaseURL))
		}
		apiClient = api.NewClient(opts...)
	}

	clock := b.clock
	if clock == nil {
		clock = time.Now
	}

	m := &Manager{
		config:  b.config,
		api:     apiClient,
		store:   tokenStore,
		clock:   clock,
		metrics: newMetrics(b.config.Metrics),
		audit: internalaudit.NewDispatcher(internalaudit.Config{
			Enabled:    b.config.Audit.Enabled,
			BufferSize: b.config.Audit.BufferSize,
			DropIfFull: b.config.Audit.DropIfFull,
		}, b.auditSink),
		state: Snapshot{Phase: PhaseUninitialized},
		subs:  make(map[uint64]chan Snapshot),
	}
	return m, nil
}
