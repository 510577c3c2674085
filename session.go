package authclient

// Session state container. The Manager is the single writer: every mutation
// claims a generation under the state lock, and publishes are rejected when
// the generation has moved on. Subscribers observe publishes in order; a
// slow subscriber is skipped forward to the latest snapshot rather than
// blocking the session path.

// Snapshot returns the currently published session state.
func (m *Manager) Snapshot() Snapshot {
	if m == nil {
		return Snapshot{Phase: PhaseUnauthenticated}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Subscribe registers a snapshot listener. The returned channel has a buffer
// of one and always holds the most recent snapshot not yet consumed; when a
// subscriber lags, intermediate snapshots are dropped in favor of the
// latest. The cancel function unregisters the listener.
func (m *Manager) Subscribe() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 1)
	if m == nil {
		return ch, func() {}
	}

	m.mu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = ch
	// Seed with the current state so a late subscriber doesn't wait for the
	// next mutation to learn where the session stands.
	ch <- m.state
	m.mu.Unlock()

	cancel := func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
	return ch, cancel
}

// beginOp claims a new generation. Results of any operation started earlier
// are superseded from this point on.
func (m *Manager) beginOp() uint64 {
	m.mu.Lock()
	m.generation++
	gen := m.generation
	m.mu.Unlock()
	return gen
}

// publish installs snap as the session state, provided gen has not been
// superseded. Returns false when the result was stale and discarded.
func (m *Manager) publish(gen uint64, snap Snapshot) bool {
	m.mu.Lock()
	if gen != m.generation {
		m.mu.Unlock()
		return false
	}
	snap.Generation = gen
	m.state = snap
	m.notifyLocked(snap)
	m.mu.Unlock()
	return true
}

// notifyLocked pushes snap to every subscriber without blocking: a full
// buffer is drained first so the subscriber always ends up with the latest
// value. Caller holds m.mu, which serializes notification order.
func (m *Manager) notifyLocked(snap Snapshot) {
	for _, ch := range m.subs {
		select {
		case ch <- snap:
			continue
		default:
		}
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snap:
		default:
		}
	}
}

func unauthenticatedSnapshot() Snapshot {
	return Snapshot{Phase: PhaseUnauthenticated}
}
