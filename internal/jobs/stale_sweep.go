// Package jobs contains River background job workers.
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

const (
	// DefaultStaleAfter is how long a queue entry may sit unsent before the
	// sweeper escalates it.
	DefaultStaleAfter = 10 * time.Minute

	// DefaultStaleSweepLimit caps how many entries one sweep processes.
	DefaultStaleSweepLimit = 500
)

// StaleSweepArgs is the periodic job that escalates delivery-queue entries
// whose recipient has not reconnected.
type StaleSweepArgs struct{}

// Kind returns the job kind identifier for the stale sweep.
func (StaleSweepArgs) Kind() string { return "notification_stale_sweep" }

// InsertOpts makes the sweep non-reentrant: duplicate inserts within the same
// period collapse into one job, so two sweeps never run concurrently. The
// periodic schedule controls the actual cadence.
func (StaleSweepArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue:       river.QueueDefault,
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByPeriod: time.Minute,
			ByQueue:  true,
			ByArgs:   true,
		},
	}
}

// StaleSweepWorker finds unsent queue entries that have never been attempted,
// or whose last attempt is older than the threshold, and escalates each one
// through the fallback channel. Today the fallback is a structured log entry
// that operations alerting picks up; the sweep records the attempt so the
// next run skips the entry until the threshold passes again.
type StaleSweepWorker struct {
	river.WorkerDefaults[StaleSweepArgs]
	store      notification.Store
	staleAfter time.Duration
	limit      int
}

// NewStaleSweepWorker creates a sweep worker. Non-positive staleAfter falls
// back to the 10-minute default.
func NewStaleSweepWorker(store notification.Store, staleAfter time.Duration) *StaleSweepWorker {
	if staleAfter <= 0 {
		staleAfter = DefaultStaleAfter
	}
	return &StaleSweepWorker{
		store:      store,
		staleAfter: staleAfter,
		limit:      DefaultStaleSweepLimit,
	}
}

// Work escalates stale entries one by one. A failure on one entry never
// aborts the sweep: the rest of the batch still gets processed.
func (w *StaleSweepWorker) Work(ctx context.Context, _ *river.Job[StaleSweepArgs]) error {
	if w == nil || w.store == nil {
		return fmt.Errorf("stale sweep worker is not initialized")
	}

	now := time.Now().UTC()
	threshold := now.Add(-w.staleAfter)

	entries, err := w.store.FetchStale(ctx, threshold, w.limit)
	if err != nil {
		return fmt.Errorf("fetch stale queue entries: %w", err)
	}
	if len(entries) == 0 {
		return nil
	}

	var escalated, failed int
	for _, entry := range entries {
		// The fallback channel: a structured log record that alerting
		// watches. The entry itself stays queued for the reconnect flush.
		logger.Warn("Notification delivery stalled",
			zap.String("entry_id", entry.ID),
			zap.String("notification_id", entry.NotificationID),
			zap.String("user_id", entry.UserID),
			zap.String("type", entry.Payload.Type),
			zap.String("title", entry.Payload.Title),
			zap.Duration("queued_for", now.Sub(entry.CreatedAt)),
		)

		if err := w.store.TouchLastAttempt(ctx, entry.ID, now); err != nil {
			failed++
			logger.Error("Failed to record sweep attempt",
				zap.String("entry_id", entry.ID),
				zap.Error(err),
			)
			continue
		}
		escalated++
	}

	logger.Info("Stale sweep completed",
		zap.Int("escalated", escalated),
		zap.Int("failed", failed),
		zap.Duration("stale_after", w.staleAfter),
	)
	return nil
}
