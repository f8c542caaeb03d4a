package jobs

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/riverqueue/river"

	"slopewatch.io/slopewatch/internal/notification"
)

func TestNotificationCleanupArgsKind(t *testing.T) {
	t.Parallel()

	if got := (NotificationCleanupArgs{}).Kind(); got != "notification_cleanup" {
		t.Fatalf("Kind() = %q, want %q", got, "notification_cleanup")
	}
}

func TestNotificationCleanupArgsInsertOpts(t *testing.T) {
	t.Parallel()

	opts := (NotificationCleanupArgs{}).InsertOpts()
	if opts.Queue != river.QueueDefault {
		t.Fatalf("Queue = %q, want %q", opts.Queue, river.QueueDefault)
	}
	if opts.MaxAttempts != 1 {
		t.Fatalf("MaxAttempts = %d, want 1", opts.MaxAttempts)
	}
	if opts.UniqueOpts.ByPeriod != 24*time.Hour {
		t.Fatalf("UniqueOpts.ByPeriod = %s, want %s", opts.UniqueOpts.ByPeriod, 24*time.Hour)
	}
	if !opts.UniqueOpts.ByQueue {
		t.Fatal("UniqueOpts.ByQueue = false, want true")
	}
	if !opts.UniqueOpts.ByArgs {
		t.Fatal("UniqueOpts.ByArgs = false, want true")
	}
}

type cleanupFakeStore struct {
	notification.Store

	deleteCalls int
	lastCutoff  time.Time
	deleted     int
	deleteErr   error
}

func (s *cleanupFakeStore) DeleteOlderThan(_ context.Context, cutoff time.Time) (int, error) {
	s.deleteCalls++
	s.lastCutoff = cutoff
	return s.deleted, s.deleteErr
}

func TestNewNotificationCleanupWorkerRetention(t *testing.T) {
	t.Parallel()

	t.Run("keeps zero retention to disable cleanup", func(t *testing.T) {
		w := NewNotificationCleanupWorker(nil, 0)
		if w.retention != 0 {
			t.Fatalf("retention = %s, want 0", w.retention)
		}
	})

	t.Run("uses explicit retention when provided", func(t *testing.T) {
		want := 7 * 24 * time.Hour
		w := NewNotificationCleanupWorker(nil, want)
		if w.retention != want {
			t.Fatalf("retention = %s, want %s", w.retention, want)
		}
	})
}

func TestNotificationCleanupWorkerWork_DisabledRetention(t *testing.T) {
	t.Parallel()

	store := &cleanupFakeStore{deleted: 3}

	for _, retention := range []time.Duration{0, -time.Hour} {
		w := NewNotificationCleanupWorker(store, retention)
		if err := w.Work(context.Background(), nil); err != nil {
			t.Fatalf("Work() with retention %s: %v", retention, err)
		}
	}
	if store.deleteCalls != 0 {
		t.Fatalf("DeleteOlderThan calls = %d, want 0", store.deleteCalls)
	}
}

func TestNotificationCleanupWorkerWork_DeletesBeforeCutoff(t *testing.T) {
	t.Parallel()

	store := &cleanupFakeStore{deleted: 2}
	retention := 30 * 24 * time.Hour
	w := NewNotificationCleanupWorker(store, retention)

	before := time.Now().UTC().Add(-retention)
	if err := w.Work(context.Background(), nil); err != nil {
		t.Fatalf("Work() error = %v", err)
	}
	after := time.Now().UTC().Add(-retention)

	if store.deleteCalls != 1 {
		t.Fatalf("DeleteOlderThan calls = %d, want 1", store.deleteCalls)
	}
	if store.lastCutoff.Before(before) || store.lastCutoff.After(after) {
		t.Fatalf("cutoff = %s, want within [%s, %s]", store.lastCutoff, before, after)
	}
}

func TestNotificationCleanupWorkerWork_Uninitialized(t *testing.T) {
	t.Parallel()

	t.Run("nil receiver", func(t *testing.T) {
		var w *NotificationCleanupWorker
		err := w.Work(context.Background(), nil)
		if err == nil || !strings.Contains(err.Error(), "not initialized") {
			t.Fatalf("Work() error = %v, want contains %q", err, "not initialized")
		}
	})

	t.Run("nil store", func(t *testing.T) {
		w := &NotificationCleanupWorker{}
		err := w.Work(context.Background(), nil)
		if err == nil || !strings.Contains(err.Error(), "not initialized") {
			t.Fatalf("Work() error = %v, want contains %q", err, "not initialized")
		}
	})
}
