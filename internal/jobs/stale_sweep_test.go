package jobs

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/riverqueue/river"

	"slopewatch.io/slopewatch/internal/notification"
)

type sweepFakeStore struct {
	notification.Store

	stale     []notification.QueueEntry
	fetchErr  error
	touched   []string
	touchFail map[string]bool
}

func (s *sweepFakeStore) FetchStale(ctx context.Context, olderThan time.Time, limit int) ([]notification.QueueEntry, error) {
	if s.fetchErr != nil {
		return nil, s.fetchErr
	}
	if len(s.stale) > limit {
		return s.stale[:limit], nil
	}
	return s.stale, nil
}

func (s *sweepFakeStore) TouchLastAttempt(ctx context.Context, entryID string, at time.Time) error {
	if s.touchFail[entryID] {
		return errors.New("touch failed")
	}
	s.touched = append(s.touched, entryID)
	return nil
}

func TestStaleSweepArgsKind(t *testing.T) {
	t.Parallel()

	if got := (StaleSweepArgs{}).Kind(); got != "notification_stale_sweep" {
		t.Fatalf("Kind() = %q, want %q", got, "notification_stale_sweep")
	}
}

func TestStaleSweepArgsInsertOpts(t *testing.T) {
	t.Parallel()

	opts := (StaleSweepArgs{}).InsertOpts()
	if opts.Queue != river.QueueDefault {
		t.Fatalf("Queue = %q, want %q", opts.Queue, river.QueueDefault)
	}
	if opts.MaxAttempts != 1 {
		t.Fatalf("MaxAttempts = %d, want 1", opts.MaxAttempts)
	}
	if opts.UniqueOpts.ByPeriod != time.Minute {
		t.Fatalf("UniqueOpts.ByPeriod = %s, want %s", opts.UniqueOpts.ByPeriod, time.Minute)
	}
	if !opts.UniqueOpts.ByQueue {
		t.Fatal("UniqueOpts.ByQueue = false, want true")
	}
	if !opts.UniqueOpts.ByArgs {
		t.Fatal("UniqueOpts.ByArgs = false, want true")
	}
}

func TestNewStaleSweepWorkerDefaults(t *testing.T) {
	t.Parallel()

	t.Run("defaults stale threshold when non-positive", func(t *testing.T) {
		w := NewStaleSweepWorker(&sweepFakeStore{}, 0)
		if w.staleAfter != DefaultStaleAfter {
			t.Fatalf("staleAfter = %s, want %s", w.staleAfter, DefaultStaleAfter)
		}
	})

	t.Run("uses explicit threshold when provided", func(t *testing.T) {
		want := 5 * time.Minute
		w := NewStaleSweepWorker(&sweepFakeStore{}, want)
		if w.staleAfter != want {
			t.Fatalf("staleAfter = %s, want %s", w.staleAfter, want)
		}
	})
}

func TestStaleSweepWorkerWork_Uninitialized(t *testing.T) {
	t.Parallel()

	t.Run("nil receiver", func(t *testing.T) {
		var w *StaleSweepWorker
		err := w.Work(context.Background(), nil)
		if err == nil || !strings.Contains(err.Error(), "not initialized") {
			t.Fatalf("Work() error = %v, want contains %q", err, "not initialized")
		}
	})

	t.Run("nil store", func(t *testing.T) {
		w := &StaleSweepWorker{}
		err := w.Work(context.Background(), nil)
		if err == nil || !strings.Contains(err.Error(), "not initialized") {
			t.Fatalf("Work() error = %v, want contains %q", err, "not initialized")
		}
	})
}

func TestStaleSweepWorkerWork_EscalatesEntries(t *testing.T) {
	t.Parallel()

	created := time.Now().UTC().Add(-time.Hour)
	store := &sweepFakeStore{
		stale: []notification.QueueEntry{
			{ID: "q-1", NotificationID: "n-1", UserID: "user-1", CreatedAt: created},
			{ID: "q-2", NotificationID: "n-2", UserID: "user-2", CreatedAt: created},
		},
	}

	w := NewStaleSweepWorker(store, 10*time.Minute)
	if err := w.Work(context.Background(), nil); err != nil {
		t.Fatalf("Work() error = %v", err)
	}

	if len(store.touched) != 2 {
		t.Fatalf("touched = %v, want both entries", store.touched)
	}
}

func TestStaleSweepWorkerWork_IsolatesEntryFailures(t *testing.T) {
	t.Parallel()

	created := time.Now().UTC().Add(-time.Hour)
	store := &sweepFakeStore{
		stale: []notification.QueueEntry{
			{ID: "q-1", NotificationID: "n-1", UserID: "user-1", CreatedAt: created},
			{ID: "q-2", NotificationID: "n-2", UserID: "user-2", CreatedAt: created},
			{ID: "q-3", NotificationID: "n-3", UserID: "user-3", CreatedAt: created},
		},
		touchFail: map[string]bool{"q-2": true},
	}

	w := NewStaleSweepWorker(store, 10*time.Minute)
	if err := w.Work(context.Background(), nil); err != nil {
		t.Fatalf("one bad entry must not fail the sweep: %v", err)
	}

	if len(store.touched) != 2 {
		t.Fatalf("touched = %v, want q-1 and q-3", store.touched)
	}
}

func TestStaleSweepWorkerWork_FetchErrorSurfaces(t *testing.T) {
	t.Parallel()

	store := &sweepFakeStore{fetchErr: errors.New("db down")}
	w := NewStaleSweepWorker(store, 10*time.Minute)
	if err := w.Work(context.Background(), nil); err == nil {
		t.Fatal("expected fetch error to surface for River retry accounting")
	}
}
