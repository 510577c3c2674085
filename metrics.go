package authclient

import "sync/atomic"

// MetricID identifies one session counter.
type MetricID uint16

const (
	// MetricInitialize counts Initialize calls.
	MetricInitialize MetricID = iota
	// MetricLoadUserSuccess counts validation passes that settled authenticated.
	MetricLoadUserSuccess
	// MetricTokenMalformed counts tokens rejected by local decoding.
	MetricTokenMalformed
	// MetricTokenExpired counts tokens rejected by the local expiry check.
	MetricTokenExpired
	// MetricProfileFetchFailure counts /auth/me failures during validation.
	MetricProfileFetchFailure
	// MetricRoleMissing counts profiles rejected for lacking a role.
	MetricRoleMissing
	// MetricStorageFailure counts token-store write failures during validation.
	MetricStorageFailure
	// MetricLoginSuccess counts logins that settled authenticated.
	MetricLoginSuccess
	// MetricLoginFailure counts rejected or failed logins.
	MetricLoginFailure
	// MetricSignupSuccess counts accepted registrations.
	MetricSignupSuccess
	// MetricSignupFailure counts rejected registrations.
	MetricSignupFailure
	// MetricLogout counts logouts.
	MetricLogout
	// MetricPasswordResetRequest counts forgot-password requests.
	MetricPasswordResetRequest
	// MetricPasswordResetConfirm counts reset-password completions.
	MetricPasswordResetConfirm
	// MetricStaleResultDiscarded counts validation results dropped because a
	// newer operation superseded them.
	MetricStaleResultDiscarded

	metricCount
)

// Metrics is a fixed-size atomic counter registry. Incrementing is lock-free
// and allocation-free so session operations can count unconditionally.
type Metrics struct {
	enabled  bool
	counters [metricCount]atomic.Uint64
}

func newMetrics(cfg MetricsConfig) *Metrics {
	return &Metrics{enabled: cfg.Enabled}
}

// Inc increments the counter for id. No-op when metrics are disabled or id
// is out of range.
func (m *Metrics) Inc(id MetricID) {
	if m == nil || !m.enabled || id >= metricCount {
		return
	}
	m.counters[id].Add(1)
}

// MetricsSnapshot is a point-in-time copy of all counters.
type MetricsSnapshot struct {
	Counters map[MetricID]uint64
}

// Snapshot copies the current counter values.
func (m *Metrics) Snapshot() MetricsSnapshot {
	out := MetricsSnapshot{Counters: make(map[MetricID]uint64, int(metricCount))}
	if m == nil {
		return out
	}
	for id := MetricID(0); id < metricCount; id++ {
		out.Counters[id] = m.counters[id].Load()
	}
	return out
}
