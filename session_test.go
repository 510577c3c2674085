package authclient

import (
	"context"
	"testing"
	"time"

	"github.com/mockview/authclient/api"
	"github.com/mockview/authclient/store"
)

func newBareManager(t *testing.T) *Manager {
	t.Helper()

	m, err := New().
		WithAPIClient(api.NewClient(api.WithBaseURL("http://127.0.0.1:0"))).
		WithTokenStore(store.NewMemory()).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	t.Cleanup(m.Close)
	return m
}

func TestSnapshotStartsUninitialized(t *testing.T) {
	m := newBareManager(t)

	snap := m.Snapshot()
	if snap.Phase != PhaseUninitialized {
		t.Fatalf("phase = %v, want uninitialized", snap.Phase)
	}
	if !snap.IsLoading() {
		t.Fatal("uninitialized must read as loading")
	}
	if snap.IsAuthenticated() {
		t.Fatal("uninitialized must not read as authenticated")
	}
}

func TestSubscribeSeedsCurrentState(t *testing.T) {
	m := newBareManager(t)

	ch, cancel := m.Subscribe()
	defer cancel()

	select {
	case snap := <-ch:
		if snap.Phase != PhaseUninitialized {
			t.Fatalf("seed phase = %v, want uninitialized", snap.Phase)
		}
	case <-time.After(time.Second):
		t.Fatal("subscription was not seeded")
	}
}

func TestSubscribeObservesPublishedChanges(t *testing.T) {
	m := newBareManager(t)

	ch, cancel := m.Subscribe()
	defer cancel()
	<-ch // seed

	m.Initialize(context.Background())

	select {
	case snap := <-ch:
		if snap.Phase != PhaseUnauthenticated {
			t.Fatalf("phase = %v, want unauthenticated", snap.Phase)
		}
	case <-time.After(time.Second):
		t.Fatal("initialize was not observed")
	}
}

func TestSlowSubscriberDropsToLatest(t *testing.T) {
	m := newBareManager(t)

	ch, cancel := m.Subscribe()
	defer cancel()
	// Never consume the seed: every publish after the first must displace
	// the unread value.
	gen1 := m.beginOp()
	m.publish(gen1, Snapshot{Phase: PhaseValidating})
	gen2 := m.beginOp()
	m.publish(gen2, unauthenticatedSnapshot())

	snap := <-ch
	if snap.Phase != PhaseUnauthenticated {
		t.Fatalf("phase = %v, want the latest published state", snap.Phase)
	}
	select {
	case extra := <-ch:
		t.Fatalf("unexpected queued snapshot %+v", extra)
	default:
	}
}

func TestCancelStopsDelivery(t *testing.T) {
	m := newBareManager(t)

	ch, cancel := m.Subscribe()
	<-ch // seed
	cancel()

	gen := m.beginOp()
	m.publish(gen, unauthenticatedSnapshot())

	select {
	case snap := <-ch:
		t.Fatalf("cancelled subscription still received %+v", snap)
	default:
	}
}

func TestPublishRejectsStaleGeneration(t *testing.T) {
	m := newBareManager(t)

	stale := m.beginOp()
	fresh := m.beginOp()

	if m.publish(stale, Snapshot{Phase: PhaseValidating}) {
		t.Fatal("stale publish must be rejected")
	}
	if !m.publish(fresh, unauthenticatedSnapshot()) {
		t.Fatal("fresh publish must be accepted")
	}
	if snap := m.Snapshot(); snap.Generation != fresh {
		t.Fatalf("generation = %d, want %d", snap.Generation, fresh)
	}
}

func TestNilManagerIsInert(t *testing.T) {
	var m *Manager

	if snap := m.Snapshot(); snap.Phase != PhaseUnauthenticated {
		t.Fatalf("nil manager snapshot phase = %v", snap.Phase)
	}
	m.Initialize(context.Background())
	m.LoadUser(context.Background(), "tok")
	m.Logout()
	m.Close()
	if res := m.Login(context.Background(), "a", "b"); res.Success {
		t.Fatal("nil manager login must fail closed")
	}
	ch, cancel := m.Subscribe()
	cancel()
	select {
	case <-ch:
		t.Fatal("nil manager subscription must stay silent")
	default:
	}
}
