package notification

import (
	"context"
	"time"
)

// Store is the persistence boundary for notifications and the delivery
// queue. EntStore is the production implementation; tests substitute an
// in-memory fake.
type Store interface {
	// Insert durably records a notification and returns its payload with
	// ID and CreatedAt populated. Insert happens before any delivery
	// attempt; if it fails the notification is dropped, never pushed.
	Insert(ctx context.Context, draft Draft) (Payload, error)

	// Enqueue creates an unsent delivery-queue entry for a stored
	// notification.
	Enqueue(ctx context.Context, notificationID, userID string) error

	// FetchQueued returns the unsent queue entries for a user, oldest
	// first.
	FetchQueued(ctx context.Context, userID string) ([]QueueEntry, error)

	// MarkSent flips a queue entry to sent only if it is still unsent.
	// Returns true when this call performed the flip, false when another
	// flusher already did. The conditional update is what makes concurrent
	// flushes of the same user safe.
	MarkSent(ctx context.Context, entryID string) (bool, error)

	// FetchStale returns unsent entries that have never been attempted or
	// whose last attempt is older than the threshold, up to limit.
	FetchStale(ctx context.Context, olderThan time.Time, limit int) ([]QueueEntry, error)

	// TouchLastAttempt records that the sweeper escalated an entry, so the
	// next sweep skips it until the threshold passes again.
	TouchLastAttempt(ctx context.Context, entryID string, at time.Time) error

	// MarkRead marks a single notification read. Unknown IDs or IDs owned
	// by another user return a not-found error.
	MarkRead(ctx context.Context, userID, notificationID string) error

	// MarkAllRead marks every unread notification for a user read and
	// returns how many were flipped.
	MarkAllRead(ctx context.Context, userID string) (int, error)

	// ListForUser returns a page of the user's notifications, newest
	// first, with the total count for pagination.
	ListForUser(ctx context.Context, userID string, opts ListOptions) ([]Payload, int, error)

	// UnreadCount returns the number of unread notifications for a user.
	UnreadCount(ctx context.Context, userID string) (int, error)

	// DeleteOlderThan removes notifications (and their queue entries)
	// created before the cutoff. Used by the retention job. Unsent queue
	// entries past the cutoff are removed too: retention bounds the
	// at-least-once redelivery window to the configured horizon.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}

// ListOptions controls pagination and filtering for ListForUser.
type ListOptions struct {
	UnreadOnly bool
	Page       int
	PerPage    int
}
