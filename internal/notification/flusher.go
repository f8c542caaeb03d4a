package notification

import (
	"context"

	"go.uber.org/zap"

	apperrors "slopewatch.io/slopewatch/internal/pkg/errors"
	"slopewatch.io/slopewatch/internal/pkg/logger"
)

// Flusher drains a user's delivery queue after a reconnect, oldest first, so
// notifications arrive in the order they were produced.
type Flusher struct {
	store    Store
	presence Presence
}

// NewFlusher creates a reconnect flusher.
func NewFlusher(store Store, presence Presence) *Flusher {
	return &Flusher{
		store:    store,
		presence: presence,
	}
}

// Flush pushes every pending queue entry for the user over their live
// connection. Each successful push is confirmed with a conditional mark-sent,
// so two flushes racing over the same queue (a rapid reconnect) deliver
// duplicates at worst, never lose an entry. The first push failure stops the
// flush: the connection is likely gone, and the remaining entries stay
// queued for the next reconnect.
func (f *Flusher) Flush(ctx context.Context, userID string) error {
	entries, err := f.store.FetchQueued(ctx, userID)
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeInternal,
			"fetch queued notifications", apperrors.StatusFor(apperrors.CodeInternal))
	}
	if len(entries) == 0 {
		return nil
	}

	pusher, online := f.presence.Pusher(userID)
	if !online {
		// Disconnected between reconnect and flush; entries stay queued.
		return nil
	}

	var delivered, duplicates int
	for _, entry := range entries {
		if err := pusher.Push(ctx, entry.Payload); err != nil {
			logger.Warn("Flush push failed, stopping",
				zap.String("user_id", userID),
				zap.String("entry_id", entry.ID),
				zap.Int("delivered", delivered),
				zap.Int("remaining", len(entries)-delivered-duplicates),
				zap.Error(err),
			)
			break
		}

		flipped, err := f.store.MarkSent(ctx, entry.ID)
		if err != nil {
			// The push went out but the flip failed; the entry will be
			// delivered again on the next flush. At-least-once is the
			// contract, so keep going.
			logger.Error("Mark sent failed",
				zap.String("user_id", userID),
				zap.String("entry_id", entry.ID),
				zap.Error(err),
			)
			continue
		}
		if !flipped {
			// A concurrent flush already delivered this entry.
			duplicates++
			continue
		}
		delivered++
	}

	if delivered > 0 || duplicates > 0 {
		logger.Info("Reconnect flush completed",
			zap.String("user_id", userID),
			zap.Int("delivered", delivered),
			zap.Int("duplicates", duplicates),
			zap.Int("queued", len(entries)),
		)
	}
	return nil
}
