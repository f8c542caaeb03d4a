package notification

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	apperrors "slopewatch.io/slopewatch/internal/pkg/errors"
	"slopewatch.io/slopewatch/internal/pkg/logger"
	"slopewatch.io/slopewatch/internal/pkg/worker"
)

// Pusher delivers a payload over a live channel. The push is bounded: an
// implementation must fail rather than block indefinitely.
type Pusher interface {
	Push(ctx context.Context, p Payload) error
}

// Presence answers whether a recipient currently has a live channel.
type Presence interface {
	Pusher(userID string) (Pusher, bool)
}

// Router decides, per notification, between the live push path and the
// durable queue path. The rule is: persist first, then try live, and fall
// back to the queue on any push failure. A notification is never lost after
// Insert succeeds.
type Router struct {
	store    Store
	presence Presence
	pools    *worker.Pools
}

// NewRouter creates a delivery router.
func NewRouter(store Store, presence Presence, pools *worker.Pools) *Router {
	return &Router{
		store:    store,
		presence: presence,
		pools:    pools,
	}
}

// Deliver records one notification and routes it to its recipient. The
// stored payload is returned regardless of delivery path so callers can
// treat delivery as fire-and-forget. The returned error reports persistence
// problems; a failed live push is not an error, it just lands the
// notification in the queue.
func (r *Router) Deliver(ctx context.Context, draft Draft) (Payload, error) {
	payload, err := r.store.Insert(ctx, draft)
	if err != nil {
		// Nothing was persisted, so there is nothing to fall back on.
		// The notification is dropped; the business action that caused
		// it has already succeeded and must not be rolled back.
		logger.Error("Notification insert failed, dropping",
			zap.String("user_id", draft.UserID),
			zap.String("type", draft.Type),
			zap.Error(err),
		)
		return Payload{}, apperrors.Wrap(err, apperrors.CodeNotificationCreate,
			"insert notification", apperrors.StatusFor(apperrors.CodeNotificationCreate))
	}

	pusher, online := r.presence.Pusher(draft.UserID)
	if !online {
		return payload, r.enqueue(ctx, payload)
	}

	if err := pusher.Push(ctx, payload); err != nil {
		logger.Warn("Live push failed, falling back to queue",
			zap.String("user_id", draft.UserID),
			zap.String("notification_id", payload.ID),
			zap.Error(err),
		)
		return payload, r.enqueue(ctx, payload)
	}

	logger.Debug("Notification pushed live",
		zap.String("user_id", draft.UserID),
		zap.String("notification_id", payload.ID),
	)
	return payload, nil
}

// DeliverMany fans a batch of notifications out on the push pool. Each
// recipient is delivered independently: one slow or failing recipient never
// blocks the rest. Used for SOS and advisory broadcasts.
func (r *Router) DeliverMany(ctx context.Context, drafts []Draft) error {
	if len(drafts) == 0 {
		return nil
	}

	results := make(chan error, len(drafts))
	for _, draft := range drafts {
		draft := draft
		err := r.pools.Push.Submit(ctx, func(taskCtx context.Context) {
			_, err := r.Deliver(taskCtx, draft)
			results <- err
		})
		if err != nil {
			results <- err
		}
	}

	var failed int
	for i := 0; i < len(drafts); i++ {
		select {
		case err := <-results:
			if err != nil {
				failed++
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	if failed > 0 {
		return apperrors.Internal(apperrors.CodePushFailed,
			fmt.Sprintf("%d of %d deliveries failed", failed, len(drafts)))
	}
	return nil
}

func (r *Router) enqueue(ctx context.Context, payload Payload) error {
	if err := r.store.Enqueue(ctx, payload.ID, payload.UserID); err != nil {
		logger.Error("Queue fallback failed",
			zap.String("user_id", payload.UserID),
			zap.String("notification_id", payload.ID),
			zap.Error(err),
		)
		return apperrors.Wrap(err, apperrors.CodeNotificationCreate,
			"enqueue notification", apperrors.StatusFor(apperrors.CodeNotificationCreate))
	}
	logger.Debug("Notification queued for later delivery",
		zap.String("user_id", payload.UserID),
		zap.String("notification_id", payload.ID),
	)
	return nil
}
