package authclient

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/mockview/authclient/api"
	"github.com/mockview/authclient/claims"
	internalaudit "github.com/mockview/authclient/internal/audit"
	"github.com/mockview/authclient/internal/flows"
	"github.com/mockview/authclient/store"
)

// Manager owns the session: it is the only writer of the published snapshot
// and of the token store, and it owns the ambient bearer header on the API
// client. Construct through [Builder.Build]; methods are safe for concurrent
// use after that.
type Manager struct {
	config  Config
	api     *api.Client
	store   store.TokenStore
	audit   *internalaudit.Dispatcher
	metrics *Metrics
	clock   func() time.Time

	mu         sync.Mutex
	state      Snapshot
	generation uint64
	subs       map[uint64]chan Snapshot
	nextSub    uint64
}

// Close flushes the audit dispatcher. The session state itself needs no
// teardown: the token store outlives the process and reseeds the next start.
func (m *Manager) Close() {
	if m == nil {
		return
	}
	m.audit.Close()
}

// Config returns the configuration the Manager was built with. Callers use
// it to construct guards that agree with the session's sign-in path and
// admin role.
func (m *Manager) Config() Config {
	if m == nil {
		return defaultConfig()
	}
	return m.config
}

// AuditDropped reports how many audit events were discarded under pressure.
func (m *Manager) AuditDropped() uint64 {
	if m == nil {
		return 0
	}
	return m.audit.Dropped()
}

// MetricsSnapshot returns a copy of the session counters.
func (m *Manager) MetricsSnapshot() MetricsSnapshot {
	if m == nil {
		return MetricsSnapshot{Counters: map[MetricID]uint64{}}
	}
	return m.metrics.Snapshot()
}

// Initialize performs the startup validation: read the token store and
// either settle unauthenticated or run the full validation pass on the
// persisted token. Call it once at application start; until it settles,
// Snapshot().IsLoading() is true.
func (m *Manager) Initialize(ctx context.Context) {
	if m == nil {
		return
	}
	m.metricInc(MetricInitialize)

	gen := m.beginOp()
	token, err := m.store.Load(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrTokenNotFound) {
			m.metricInc(MetricStorageFailure)
			m.emitAudit(AuditEvent{
				EventType:  EventSessionInitialize,
				Generation: gen,
				Error:      err.Error(),
			})
		} else {
			m.emitAudit(AuditEvent{
				EventType:  EventSessionInitialize,
				Generation: gen,
				Success:    true,
				Metadata:   map[string]string{"has_token": "false"},
			})
		}
		m.api.ClearToken()
		m.publish(gen, unauthenticatedSnapshot())
		return
	}

	m.emitAudit(AuditEvent{
		EventType:  EventSessionInitialize,
		Generation: gen,
		Success:    true,
		Metadata:   map[string]string{"has_token": "true"},
	})
	m.loadUserWithGen(ctx, token, gen)
}

// LoadUser runs the validation algorithm on token: persist + attach, local
// decode, expiry check, profile fetch, role check. Safe to call repeatedly;
// each call fully supersedes the previously published state.
func (m *Manager) LoadUser(ctx context.Context, token string) {
	if m == nil {
		return
	}
	gen := m.beginOp()
	m.loadUserWithGen(ctx, token, gen)
}

// Logout clears the token store, detaches the bearer header, and publishes
// the unauthenticated terminal state. Synchronous; no network call.
func (m *Manager) Logout() {
	if m == nil {
		return
	}

	m.mu.Lock()
	m.generation++
	gen := m.generation
	_ = m.store.Clear(context.Background())
	m.api.ClearToken()
	snap := unauthenticatedSnapshot()
	snap.Generation = gen
	m.state = snap
	m.notifyLocked(snap)
	m.mu.Unlock()

	m.metricInc(MetricLogout)
	m.emitAudit(AuditEvent{EventType: EventLogout, Generation: gen, Success: true})
}

// loadUserWithGen runs a validation pass under an already-claimed
// generation. Login reuses it so its hydration cannot overwrite a logout
// that arrived mid-flight.
func (m *Manager) loadUserWithGen(ctx context.Context, token string, gen uint64) bool {
	out := flows.RunLoadUser(ctx, token, flows.LoadUserDeps{
		PersistToken: m.persistTokenFunc(gen),
		Decode:       claims.Decode,
		FetchProfile: m.api.Me,
		Now:          m.clock,
		Leeway:       m.config.Session.ExpiryLeeway,
	})
	return m.finishLoadUser(ctx, token, gen, out)
}

// persistTokenFunc binds the store write and header attach to a generation:
// once superseded, the pass aborts before touching anything.
func (m *Manager) persistTokenFunc(gen uint64) func(context.Context, string) error {
	return func(ctx context.Context, token string) error {
		m.mu.Lock()
		defer m.mu.Unlock()
		if gen != m.generation {
			return flows.ErrSuperseded
		}
		if err := m.store.Save(ctx, token); err != nil {
			return err
		}
		m.api.SetToken(token)
		return nil
	}
}

// finishLoadUser applies a validation outcome, unless the generation moved
// on while the pass was in flight, in which case the result is discarded and the
// newer state stands (last write wins on the published snapshot).
func (m *Manager) finishLoadUser(ctx context.Context, token string, gen uint64, out flows.LoadUserOutcome) bool {
	if out.Reason == flows.ReasonSuperseded {
		m.discardStale(gen)
		return false
	}

	m.mu.Lock()
	if gen != m.generation {
		m.mu.Unlock()
		m.discardStale(gen)
		return false
	}

	var snap Snapshot
	if out.Authenticated {
		snap = Snapshot{
			Token:  token,
			Claims: out.Claims,
			User:   out.User,
			Phase:  PhaseAuthenticated,
		}
	} else {
		// Invalid token terminal step: clear storage, detach header.
		_ = m.store.Clear(ctx)
		m.api.ClearToken()
		snap = unauthenticatedSnapshot()
	}
	snap.Generation = gen
	m.state = snap
	m.notifyLocked(snap)
	m.mu.Unlock()

	if out.Authenticated {
		m.metricInc(MetricLoadUserSuccess)
		m.emitAudit(AuditEvent{
			EventType:  EventSessionHydrated,
			UserID:     out.User.ID,
			Generation: gen,
			Success:    true,
		})
		return true
	}

	m.metricInc(rejectionMetric(out.Reason))
	m.emitAudit(AuditEvent{
		EventType:  EventTokenRejected,
		Generation: gen,
		Error:      out.Reason,
		Metadata:   errMetadata(out.Err),
	})
	return false
}

func (m *Manager) discardStale(gen uint64) {
	m.metricInc(MetricStaleResultDiscarded)
	m.emitAudit(AuditEvent{
		EventType:  EventStaleResultDiscarded,
		Generation: gen,
	})
}

func rejectionMetric(reason string) MetricID {
	switch reason {
	case flows.ReasonTokenMalformed:
		return MetricTokenMalformed
	case flows.ReasonTokenExpired:
		return MetricTokenExpired
	case flows.ReasonProfileFetchFailed:
		return MetricProfileFetchFailure
	case flows.ReasonRoleMissing:
		return MetricRoleMissing
	}
	return MetricStorageFailure
}

func errMetadata(err error) map[string]string {
	if err == nil {
		return nil
	}
	return map[string]string{"error": err.Error()}
}

func (m *Manager) metricInc(id MetricID) {
	if m == nil || m.metrics == nil {
		return
	}
	m.metrics.Inc(id)
}

func (m *Manager) emitAudit(event AuditEvent) {
	if m == nil || m.audit == nil {
		return
	}
	event.Timestamp = m.clock()
	m.audit.Emit(event)
}
