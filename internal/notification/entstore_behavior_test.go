package notification_test

import (
	"context"
	"testing"
	"time"

	"slopewatch.io/slopewatch/ent"
	"slopewatch.io/slopewatch/internal/notification"
	apperrors "slopewatch.io/slopewatch/internal/pkg/errors"
	"slopewatch.io/slopewatch/internal/testutil"
)

func seedUser(t *testing.T, client *ent.Client, id, username string) {
	t.Helper()
	_, err := client.User.Create().
		SetID(id).
		SetUsername(username).
		Save(context.Background())
	if err != nil {
		t.Fatalf("seed user %s: %v", id, err)
	}
}

func TestEntStore_InsertAndList(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "entstore_insert")
	store := notification.NewEntStore(client)
	ctx := context.Background()

	seedUser(t, client, "user-1", "arjun")

	p, err := store.Insert(ctx, notification.Draft{
		UserID: "user-1",
		Type:   notification.TypeTask,
		Title:  "Inspect barrier B-12",
		Body:   "Assigned by control room",
		Metadata: map[string]string{
			"task_id": "task-9",
		},
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if p.ID == "" {
		t.Fatal("insert returned empty id")
	}
	if p.IsRead {
		t.Fatal("fresh notification must be unread")
	}

	payloads, total, err := store.ListForUser(ctx, "user-1", notification.ListOptions{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 1 || len(payloads) != 1 {
		t.Fatalf("list total = %d, len = %d, want 1/1", total, len(payloads))
	}
	if payloads[0].Metadata["task_id"] != "task-9" {
		t.Fatalf("metadata lost: %#v", payloads[0].Metadata)
	}

	count, err := store.UnreadCount(ctx, "user-1")
	if err != nil {
		t.Fatalf("unread count: %v", err)
	}
	if count != 1 {
		t.Fatalf("unread count = %d, want 1", count)
	}
}

func TestEntStore_InsertRejectsUnknownUser(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "entstore_unknown_user")
	store := notification.NewEntStore(client)

	_, err := store.Insert(context.Background(), notification.Draft{
		UserID: "no-such-user",
		Title:  "orphan",
	})
	if err == nil {
		t.Fatal("insert for unknown user must fail")
	}
}

func TestEntStore_QueueLifecycle(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "entstore_queue")
	store := notification.NewEntStore(client)
	ctx := context.Background()

	seedUser(t, client, "user-1", "arjun")

	first, err := store.Insert(ctx, notification.Draft{UserID: "user-1", Title: "first"})
	if err != nil {
		t.Fatalf("insert first: %v", err)
	}
	second, err := store.Insert(ctx, notification.Draft{UserID: "user-1", Title: "second"})
	if err != nil {
		t.Fatalf("insert second: %v", err)
	}

	if err := store.Enqueue(ctx, first.ID, "user-1"); err != nil {
		t.Fatalf("enqueue first: %v", err)
	}
	if err := store.Enqueue(ctx, second.ID, "user-1"); err != nil {
		t.Fatalf("enqueue second: %v", err)
	}

	queued, err := store.FetchQueued(ctx, "user-1")
	if err != nil {
		t.Fatalf("fetch queued: %v", err)
	}
	if len(queued) != 2 {
		t.Fatalf("queued = %d, want 2", len(queued))
	}
	// Oldest first.
	if queued[0].NotificationID != first.ID {
		t.Fatalf("queue order wrong: got %s first", queued[0].NotificationID)
	}
	if queued[0].Payload.Title != "first" {
		t.Fatalf("queue entry missing payload: %#v", queued[0].Payload)
	}

	flipped, err := store.MarkSent(ctx, queued[0].ID)
	if err != nil {
		t.Fatalf("mark sent: %v", err)
	}
	if !flipped {
		t.Fatal("first MarkSent must report an affected row")
	}

	// Second flip of the same entry loses the race.
	flipped, err = store.MarkSent(ctx, queued[0].ID)
	if err != nil {
		t.Fatalf("mark sent again: %v", err)
	}
	if flipped {
		t.Fatal("second MarkSent must report no affected row")
	}

	queued, err = store.FetchQueued(ctx, "user-1")
	if err != nil {
		t.Fatalf("fetch queued after send: %v", err)
	}
	if len(queued) != 1 || queued[0].NotificationID != second.ID {
		t.Fatalf("remaining queue wrong: %#v", queued)
	}
}

func TestEntStore_FetchStaleAndTouch(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "entstore_stale")
	store := notification.NewEntStore(client)
	ctx := context.Background()

	seedUser(t, client, "user-1", "arjun")

	p, err := store.Insert(ctx, notification.Draft{UserID: "user-1", Title: "stuck"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := store.Enqueue(ctx, p.ID, "user-1"); err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	// Never-attempted entries are stale regardless of threshold.
	stale, err := store.FetchStale(ctx, time.Now().Add(-time.Hour), 10)
	if err != nil {
		t.Fatalf("fetch stale: %v", err)
	}
	if len(stale) != 1 {
		t.Fatalf("stale = %d, want 1", len(stale))
	}
	if stale[0].UserID != "user-1" {
		t.Fatalf("stale entry user = %q, want user-1", stale[0].UserID)
	}

	if err := store.TouchLastAttempt(ctx, stale[0].ID, time.Now()); err != nil {
		t.Fatalf("touch: %v", err)
	}

	// A freshly touched entry is no longer stale for an old threshold.
	stale, err = store.FetchStale(ctx, time.Now().Add(-time.Hour), 10)
	if err != nil {
		t.Fatalf("fetch stale after touch: %v", err)
	}
	if len(stale) != 0 {
		t.Fatalf("stale after touch = %d, want 0", len(stale))
	}

	if err := store.TouchLastAttempt(ctx, "missing-entry", time.Now()); err == nil {
		t.Fatal("touch on missing entry must fail")
	} else if appErr, ok := apperrors.IsAppError(err); !ok || appErr.Code != apperrors.CodeQueueEntryNotFound {
		t.Fatalf("touch on missing entry error = %v, want %s", err, apperrors.CodeQueueEntryNotFound)
	}
}

func TestEntStore_ReadFlow(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "entstore_read")
	store := notification.NewEntStore(client)
	ctx := context.Background()

	seedUser(t, client, "user-1", "arjun")
	seedUser(t, client, "user-2", "meera")

	mine, err := store.Insert(ctx, notification.Draft{UserID: "user-1", Title: "mine"})
	if err != nil {
		t.Fatalf("insert mine: %v", err)
	}
	theirs, err := store.Insert(ctx, notification.Draft{UserID: "user-2", Title: "theirs"})
	if err != nil {
		t.Fatalf("insert theirs: %v", err)
	}

	// Owner scoping: marking someone else's notification is not-found.
	err = store.MarkRead(ctx, "user-1", theirs.ID)
	if appErr, ok := apperrors.IsAppError(err); !ok || appErr.Code != apperrors.CodeNotificationNotFound {
		t.Fatalf("cross-user mark read error = %v, want %s", err, apperrors.CodeNotificationNotFound)
	}

	if err := store.MarkRead(ctx, "user-1", mine.ID); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	// Idempotent.
	if err := store.MarkRead(ctx, "user-1", mine.ID); err != nil {
		t.Fatalf("mark read twice: %v", err)
	}

	count, err := store.UnreadCount(ctx, "user-1")
	if err != nil {
		t.Fatalf("unread count: %v", err)
	}
	if count != 0 {
		t.Fatalf("unread count = %d, want 0", count)
	}

	if _, err := store.Insert(ctx, notification.Draft{UserID: "user-1", Title: "more"}); err != nil {
		t.Fatalf("insert more: %v", err)
	}
	updated, err := store.MarkAllRead(ctx, "user-1")
	if err != nil {
		t.Fatalf("mark all read: %v", err)
	}
	if updated != 1 {
		t.Fatalf("mark all read updated = %d, want 1", updated)
	}
}

func TestEntStore_ListPaginationAndUnreadFilter(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "entstore_pagination")
	store := notification.NewEntStore(client)
	ctx := context.Background()

	seedUser(t, client, "user-1", "arjun")

	var lastID string
	for i := 0; i < 5; i++ {
		p, err := store.Insert(ctx, notification.Draft{UserID: "user-1", Title: "n"})
		if err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
		lastID = p.ID
	}
	if err := store.MarkRead(ctx, "user-1", lastID); err != nil {
		t.Fatalf("mark read: %v", err)
	}

	page, total, err := store.ListForUser(ctx, "user-1", notification.ListOptions{Page: 1, PerPage: 2})
	if err != nil {
		t.Fatalf("list page 1: %v", err)
	}
	if total != 5 || len(page) != 2 {
		t.Fatalf("page 1 total = %d, len = %d, want 5/2", total, len(page))
	}

	page, total, err = store.ListForUser(ctx, "user-1", notification.ListOptions{Page: 3, PerPage: 2})
	if err != nil {
		t.Fatalf("list page 3: %v", err)
	}
	if total != 5 || len(page) != 1 {
		t.Fatalf("page 3 total = %d, len = %d, want 5/1", total, len(page))
	}

	unread, total, err := store.ListForUser(ctx, "user-1", notification.ListOptions{UnreadOnly: true})
	if err != nil {
		t.Fatalf("list unread: %v", err)
	}
	if total != 4 || len(unread) != 4 {
		t.Fatalf("unread total = %d, len = %d, want 4/4", total, len(unread))
	}
}

func TestEntStore_DeleteOlderThan(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "entstore_retention")
	store := notification.NewEntStore(client)
	ctx := context.Background()

	seedUser(t, client, "user-1", "arjun")

	p, err := store.Insert(ctx, notification.Draft{UserID: "user-1", Title: "old"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := store.Enqueue(ctx, p.ID, "user-1"); err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	// Cutoff in the future deletes everything, still-unsent queue
	// entries included: retention caps how long redelivery is owed.
	deleted, err := store.DeleteOlderThan(ctx, time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted != 1 {
		t.Fatalf("deleted = %d, want 1", deleted)
	}

	queued, err := store.FetchQueued(ctx, "user-1")
	if err != nil {
		t.Fatalf("fetch queued: %v", err)
	}
	if len(queued) != 0 {
		t.Fatalf("queued after retention = %d, want 0", len(queued))
	}
}
