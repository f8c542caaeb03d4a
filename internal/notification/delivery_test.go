package notification

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"slopewatch.io/slopewatch/internal/pkg/worker"
)

// fakeStore is an in-memory Store for exercising router and flusher logic
// without Postgres.
type fakeStore struct {
	mu         sync.Mutex
	seq        int
	insertErr  error
	enqueueErr error
	payloads   map[string]Payload
	entries    []*fakeEntry
}

type fakeEntry struct {
	id             string
	notificationID string
	userID         string
	sent           bool
	lastAttemptAt  *time.Time
	createdAt      time.Time
}

func newFakeStore() *fakeStore {
	return &fakeStore{payloads: make(map[string]Payload)}
}

func (s *fakeStore) Insert(ctx context.Context, draft Draft) (Payload, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.insertErr != nil {
		return Payload{}, s.insertErr
	}
	s.seq++
	p := Payload{
		ID:        fmt.Sprintf("n-%d", s.seq),
		UserID:    draft.UserID,
		Type:      draft.Type,
		Title:     draft.Title,
		Body:      draft.Body,
		Metadata:  draft.Metadata,
		CreatedAt: time.Now().UTC(),
	}
	s.payloads[p.ID] = p
	return p, nil
}

func (s *fakeStore) Enqueue(ctx context.Context, notificationID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.enqueueErr != nil {
		return s.enqueueErr
	}
	s.seq++
	s.entries = append(s.entries, &fakeEntry{
		id:             fmt.Sprintf("q-%d", s.seq),
		notificationID: notificationID,
		userID:         userID,
		createdAt:      time.Now().UTC(),
	})
	return nil
}

func (s *fakeStore) FetchQueued(ctx context.Context, userID string) ([]QueueEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []QueueEntry
	for _, e := range s.entries {
		if e.userID == userID && !e.sent {
			out = append(out, s.toQueueEntryLocked(e))
		}
	}
	return out, nil
}

func (s *fakeStore) MarkSent(ctx context.Context, entryID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.entries {
		if e.id == entryID {
			if e.sent {
				return false, nil
			}
			e.sent = true
			return true, nil
		}
	}
	return false, errors.New("entry not found")
}

func (s *fakeStore) FetchStale(ctx context.Context, olderThan time.Time, limit int) ([]QueueEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []QueueEntry
	for _, e := range s.entries {
		if e.sent {
			continue
		}
		if e.lastAttemptAt != nil && !e.lastAttemptAt.Before(olderThan) {
			continue
		}
		out = append(out, s.toQueueEntryLocked(e))
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *fakeStore) TouchLastAttempt(ctx context.Context, entryID string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.entries {
		if e.id == entryID {
			at := at
			e.lastAttemptAt = &at
			return nil
		}
	}
	return errors.New("entry not found")
}

func (s *fakeStore) MarkRead(ctx context.Context, userID, notificationID string) error {
	return nil
}

func (s *fakeStore) MarkAllRead(ctx context.Context, userID string) (int, error) {
	return 0, nil
}

func (s *fakeStore) ListForUser(ctx context.Context, userID string, opts ListOptions) ([]Payload, int, error) {
	return nil, 0, nil
}

func (s *fakeStore) UnreadCount(ctx context.Context, userID string) (int, error) {
	return 0, nil
}

func (s *fakeStore) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	return 0, nil
}

func (s *fakeStore) toQueueEntryLocked(e *fakeEntry) QueueEntry {
	return QueueEntry{
		ID:             e.id,
		NotificationID: e.notificationID,
		UserID:         e.userID,
		Sent:           e.sent,
		LastAttemptAt:  e.lastAttemptAt,
		CreatedAt:      e.createdAt,
		Payload:        s.payloads[e.notificationID],
	}
}

func (s *fakeStore) queuedFor(userID string) []*fakeEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*fakeEntry
	for _, e := range s.entries {
		if e.userID == userID && !e.sent {
			out = append(out, e)
		}
	}
	return out
}

var _ Store = (*fakeStore)(nil)

// fakePusher records pushes and can fail after a given number of successes.
type fakePusher struct {
	mu        sync.Mutex
	pushed    []Payload
	failAfter int // -1 means never fail
}

func newFakePusher() *fakePusher {
	return &fakePusher{failAfter: -1}
}

func (p *fakePusher) Push(ctx context.Context, payload Payload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failAfter >= 0 && len(p.pushed) >= p.failAfter {
		return errors.New("push failed")
	}
	p.pushed = append(p.pushed, payload)
	return nil
}

func (p *fakePusher) pushedIDs() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	ids := make([]string, 0, len(p.pushed))
	for _, payload := range p.pushed {
		ids = append(ids, payload.ID)
	}
	return ids
}

// fakePresence maps user IDs to pushers.
type fakePresence struct {
	mu      sync.Mutex
	pushers map[string]Pusher
}

func newFakePresence() *fakePresence {
	return &fakePresence{pushers: make(map[string]Pusher)}
}

func (p *fakePresence) connect(userID string, pusher Pusher) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pushers[userID] = pusher
}

func (p *fakePresence) disconnect(userID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.pushers, userID)
}

func (p *fakePresence) Pusher(userID string) (Pusher, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	pusher, ok := p.pushers[userID]
	return pusher, ok
}

func newTestPools(t *testing.T) *worker.Pools {
	t.Helper()
	pools, err := worker.NewPools(context.Background(), worker.DefaultPoolConfig())
	if err != nil {
		t.Fatalf("create pools: %v", err)
	}
	t.Cleanup(pools.Shutdown)
	return pools
}

// --- Router tests ---

func TestRouter_DeliverOnlinePushes(t *testing.T) {
	store := newFakeStore()
	presence := newFakePresence()
	pusher := newFakePusher()
	presence.connect("user-1", pusher)

	router := NewRouter(store, presence, newTestPools(t))

	p, err := router.Deliver(context.Background(), Draft{
		UserID: "user-1",
		Type:   TypeTask,
		Title:  "New task assigned",
	})
	if err != nil {
		t.Fatalf("deliver failed: %v", err)
	}
	if p.ID == "" || p.UserID != "user-1" {
		t.Fatalf("deliver must return the stored payload, got %#v", p)
	}

	if len(pusher.pushedIDs()) != 1 {
		t.Fatalf("expected 1 live push, got %d", len(pusher.pushedIDs()))
	}
	if len(store.queuedFor("user-1")) != 0 {
		t.Fatal("online delivery must not enqueue")
	}
	if len(store.payloads) != 1 {
		t.Fatal("expected notification persisted")
	}
}

func TestRouter_DeliverOfflineEnqueues(t *testing.T) {
	store := newFakeStore()
	router := NewRouter(store, newFakePresence(), newTestPools(t))

	_, err := router.Deliver(context.Background(), Draft{
		UserID: "user-1",
		Type:   TypeAdvisory,
		Title:  "Advisory",
	})
	if err != nil {
		t.Fatalf("deliver failed: %v", err)
	}

	queued := store.queuedFor("user-1")
	if len(queued) != 1 {
		t.Fatalf("expected 1 queued entry, got %d", len(queued))
	}
}

func TestRouter_PushFailureFallsBackToQueue(t *testing.T) {
	store := newFakeStore()
	presence := newFakePresence()
	pusher := newFakePusher()
	pusher.failAfter = 0 // every push fails
	presence.connect("user-1", pusher)

	router := NewRouter(store, presence, newTestPools(t))

	_, err := router.Deliver(context.Background(), Draft{
		UserID: "user-1",
		Type:   TypeMessage,
		Title:  "Message",
	})
	if err != nil {
		t.Fatalf("a failed push must not surface as a delivery error: %v", err)
	}

	queued := store.queuedFor("user-1")
	if len(queued) != 1 {
		t.Fatalf("expected fallback queue entry, got %d", len(queued))
	}
}

func TestRouter_InsertFailureDropsNotification(t *testing.T) {
	store := newFakeStore()
	store.insertErr = errors.New("db down")
	presence := newFakePresence()
	pusher := newFakePusher()
	presence.connect("user-1", pusher)

	router := NewRouter(store, presence, newTestPools(t))

	_, err := router.Deliver(context.Background(), Draft{
		UserID: "user-1",
		Type:   TypeTask,
		Title:  "Task",
	})
	if err == nil {
		t.Fatal("expected insert failure to surface")
	}
	if len(pusher.pushedIDs()) != 0 {
		t.Fatal("nothing may be pushed when the insert failed")
	}
	if len(store.entries) != 0 {
		t.Fatal("nothing may be queued when the insert failed")
	}
}

func TestRouter_DeliverManyIsolatesRecipients(t *testing.T) {
	store := newFakeStore()
	presence := newFakePresence()

	good := newFakePusher()
	bad := newFakePusher()
	bad.failAfter = 0
	presence.connect("user-good", good)
	presence.connect("user-bad", bad)

	router := NewRouter(store, presence, newTestPools(t))

	drafts := []Draft{
		{UserID: "user-good", Type: TypeSOS, Title: "SOS alert"},
		{UserID: "user-bad", Type: TypeSOS, Title: "SOS alert"},
		{UserID: "user-offline", Type: TypeSOS, Title: "SOS alert"},
	}
	if err := router.DeliverMany(context.Background(), drafts); err != nil {
		t.Fatalf("deliver many failed: %v", err)
	}

	if len(good.pushedIDs()) != 1 {
		t.Fatalf("expected live push for user-good, got %d", len(good.pushedIDs()))
	}
	if len(store.queuedFor("user-bad")) != 1 {
		t.Fatal("expected queue fallback for user-bad")
	}
	if len(store.queuedFor("user-offline")) != 1 {
		t.Fatal("expected queue entry for user-offline")
	}
	if len(store.payloads) != 3 {
		t.Fatalf("expected all 3 notifications persisted, got %d", len(store.payloads))
	}
}

// --- Flusher tests ---

func seedQueue(t *testing.T, store *fakeStore, userID string, count int) []string {
	t.Helper()
	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		p, err := store.Insert(context.Background(), Draft{
			UserID: userID,
			Type:   TypeGeneric,
			Title:  fmt.Sprintf("queued %d", i),
		})
		if err != nil {
			t.Fatalf("seed insert: %v", err)
		}
		if err := store.Enqueue(context.Background(), p.ID, userID); err != nil {
			t.Fatalf("seed enqueue: %v", err)
		}
		ids = append(ids, p.ID)
	}
	return ids
}

func TestFlusher_DeliversOldestFirst(t *testing.T) {
	store := newFakeStore()
	ids := seedQueue(t, store, "user-1", 3)

	presence := newFakePresence()
	pusher := newFakePusher()
	presence.connect("user-1", pusher)

	flusher := NewFlusher(store, presence)
	if err := flusher.Flush(context.Background(), "user-1"); err != nil {
		t.Fatalf("flush failed: %v", err)
	}

	pushed := pusher.pushedIDs()
	if len(pushed) != 3 {
		t.Fatalf("expected 3 pushes, got %d", len(pushed))
	}
	for i, id := range ids {
		if pushed[i] != id {
			t.Fatalf("expected oldest-first order %v, got %v", ids, pushed)
		}
	}
	if len(store.queuedFor("user-1")) != 0 {
		t.Fatal("expected the queue drained")
	}
}

func TestFlusher_StopsOnFirstPushFailure(t *testing.T) {
	store := newFakeStore()
	seedQueue(t, store, "user-1", 3)

	presence := newFakePresence()
	pusher := newFakePusher()
	pusher.failAfter = 1 // first push succeeds, second fails
	presence.connect("user-1", pusher)

	flusher := NewFlusher(store, presence)
	if err := flusher.Flush(context.Background(), "user-1"); err != nil {
		t.Fatalf("flush failed: %v", err)
	}

	if len(pusher.pushedIDs()) != 1 {
		t.Fatalf("expected 1 push before stopping, got %d", len(pusher.pushedIDs()))
	}
	if remaining := store.queuedFor("user-1"); len(remaining) != 2 {
		t.Fatalf("expected 2 entries still queued, got %d", len(remaining))
	}
}

func TestFlusher_OfflineUserIsNoOp(t *testing.T) {
	store := newFakeStore()
	seedQueue(t, store, "user-1", 2)

	flusher := NewFlusher(store, newFakePresence())
	if err := flusher.Flush(context.Background(), "user-1"); err != nil {
		t.Fatalf("flush failed: %v", err)
	}
	if len(store.queuedFor("user-1")) != 2 {
		t.Fatal("entries must stay queued when the user went offline")
	}
}

func TestFlusher_ConcurrentFlushesMarkSentOnce(t *testing.T) {
	store := newFakeStore()
	seedQueue(t, store, "user-1", 5)

	presence := newFakePresence()
	pusher := newFakePusher()
	presence.connect("user-1", pusher)

	flusher := NewFlusher(store, presence)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := flusher.Flush(context.Background(), "user-1"); err != nil {
				t.Errorf("flush failed: %v", err)
			}
		}()
	}
	wg.Wait()

	// Duplicate pushes are allowed (at-least-once) but every entry must end
	// up sent exactly once.
	store.mu.Lock()
	defer store.mu.Unlock()
	for _, e := range store.entries {
		if !e.sent {
			t.Fatalf("entry %s still unsent after concurrent flushes", e.id)
		}
	}
}
