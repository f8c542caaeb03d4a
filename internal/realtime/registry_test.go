package realtime

import (
	"testing"
	"time"
)

func newTestConn(userID string) *Conn {
	return NewConn(userID, nil, 8, 50*time.Millisecond)
}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	r := NewRegistry()

	if r.IsOnline("user-1") {
		t.Fatal("expected user-1 offline in empty registry")
	}

	c := newTestConn("user-1")
	if displaced := r.Register(c); displaced != nil {
		t.Fatalf("expected no displaced conn, got one for %s", displaced.UserID())
	}

	got, ok := r.Lookup("user-1")
	if !ok || got != c {
		t.Fatal("expected lookup to return the registered conn")
	}
	if !r.IsOnline("user-1") {
		t.Fatal("expected user-1 online after register")
	}
	if r.Count() != 1 {
		t.Fatalf("expected count 1, got %d", r.Count())
	}
}

func TestRegistry_ReconnectDisplacesOldConn(t *testing.T) {
	r := NewRegistry()

	oldConn := newTestConn("user-1")
	newConn := newTestConn("user-1")

	r.Register(oldConn)
	displaced := r.Register(newConn)

	if displaced != oldConn {
		t.Fatal("expected register to return the displaced connection")
	}
	got, _ := r.Lookup("user-1")
	if got != newConn {
		t.Fatal("expected the new connection to win")
	}
}

func TestRegistry_UnregisterMatchesByHandle(t *testing.T) {
	r := NewRegistry()

	oldConn := newTestConn("user-1")
	newConn := newTestConn("user-1")

	r.Register(oldConn)
	r.Register(newConn)

	// The stale socket's teardown fires after the reconnect. It must not
	// knock the fresh connection offline.
	if r.Unregister(oldConn) {
		t.Fatal("unregister of a displaced conn should be a no-op")
	}
	if !r.IsOnline("user-1") {
		t.Fatal("user-1 must stay online after stale unregister")
	}

	if !r.Unregister(newConn) {
		t.Fatal("expected unregister of the current conn to succeed")
	}
	if r.IsOnline("user-1") {
		t.Fatal("expected user-1 offline after current conn unregistered")
	}
}

func TestRegistry_PusherOffline(t *testing.T) {
	r := NewRegistry()
	if _, ok := r.Pusher("ghost"); ok {
		t.Fatal("expected no pusher for an offline user")
	}
}
