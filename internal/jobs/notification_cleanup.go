package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"slopewatch.io/slopewatch/internal/notification"
	"slopewatch.io/slopewatch/internal/pkg/logger"
)

// NotificationCleanupArgs is a periodic maintenance job that removes expired
// notifications and their delivery-queue entries.
type NotificationCleanupArgs struct{}

// Kind returns the job kind identifier for periodic notification cleanup.
func (NotificationCleanupArgs) Kind() string { return "notification_cleanup" }

// InsertOpts ensures at most one cleanup job is enqueued within the same day.
func (NotificationCleanupArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       river.QueueDefault,
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: 24 * time.Hour,
			ByQueue:  true,
			ByArgs:   true,
		},
	}
}

// NotificationCleanupWorker deletes notifications older than the configured
// retention duration.
type NotificationCleanupWorker struct {
	river.WorkerDefaults[NotificationCleanupArgs]
	store     notification.Store
	retention time.Duration
}

// NewNotificationCleanupWorker creates a cleanup worker. Non-positive
// retention disables it: Work becomes a no-op and deletes nothing.
func NewNotificationCleanupWorker(store notification.Store, retention time.Duration) *NotificationCleanupWorker {
	return &NotificationCleanupWorker{
		store:     store,
		retention: retention,
	}
}

// Work removes expired notification rows.
func (w *NotificationCleanupWorker) Work(ctx context.Context, _ *river.Job[NotificationCleanupArgs]) error {
	if w == nil || w.store == nil {
		return fmt.Errorf("notification cleanup worker is not initialized")
	}
	if w.retention <= 0 {
		// Retention disabled; a zero cutoff would otherwise wipe every row.
		return nil
	}

	cutoff := time.Now().UTC().Add(-w.retention)
	deleted, err := w.store.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("delete expired notifications before %s: %w", cutoff.Format(time.RFC3339), err)
	}

	logger.Info("notification cleanup completed",
		zap.Int("deleted_rows", deleted),
		zap.String("cutoff", cutoff.Format(time.RFC3339)),
		zap.Duration("retention", w.retention),
	)
	return nil
}
