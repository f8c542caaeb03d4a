package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"slopewatch.io/slopewatch/ent"
	"slopewatch.io/slopewatch/ent/deliveryqueueentry"
	entnotification "slopewatch.io/slopewatch/ent/notification"
	entuser "slopewatch.io/slopewatch/ent/user"
	apperrors "slopewatch.io/slopewatch/internal/pkg/errors"
)

// EntStore is the Ent-backed Store implementation.
type EntStore struct {
	client *ent.Client
}

// NewEntStore creates a store backed by the given Ent client.
func NewEntStore(client *ent.Client) *EntStore {
	return &EntStore{client: client}
}

// compile-time check
var _ Store = (*EntStore)(nil)

// Insert durably records a notification.
func (s *EntStore) Insert(ctx context.Context, draft Draft) (Payload, error) {
	if draft.UserID == "" {
		return Payload{}, fmt.Errorf("user_id is required")
	}
	if draft.Title == "" {
		return Payload{}, fmt.Errorf("title is required")
	}

	notifType, err := toEntType(draft.Type)
	if err != nil {
		return Payload{}, err
	}

	create := s.client.Notification.Create().
		SetID(uuid.NewString()).
		SetType(notifType).
		SetTitle(draft.Title).
		SetBody(draft.Body).
		SetRead(false).
		SetUserID(draft.UserID)
	if len(draft.Metadata) > 0 {
		create = create.SetMetadata(draft.Metadata)
	}

	n, err := create.Save(ctx)
	if err != nil {
		return Payload{}, fmt.Errorf("create notification for user %s: %w", draft.UserID, err)
	}
	return toPayload(n, draft.UserID), nil
}

// Enqueue creates an unsent delivery-queue entry for a stored notification.
func (s *EntStore) Enqueue(ctx context.Context, notificationID, userID string) error {
	_, err := s.client.DeliveryQueueEntry.Create().
		SetID(uuid.NewString()).
		SetSent(false).
		SetNotificationID(notificationID).
		SetUserID(userID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("enqueue notification %s: %w", notificationID, err)
	}
	return nil
}

// FetchQueued returns the unsent queue entries for a user, oldest first.
func (s *EntStore) FetchQueued(ctx context.Context, userID string) ([]QueueEntry, error) {
	entries, err := s.client.DeliveryQueueEntry.Query().
		Where(
			deliveryqueueentry.SentEQ(false),
			deliveryqueueentry.HasUserWith(entuser.IDEQ(userID)),
		).
		Order(ent.Asc(deliveryqueueentry.FieldCreatedAt)).
		WithNotification().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch queued for user %s: %w", userID, err)
	}

	result := make([]QueueEntry, 0, len(entries))
	for _, e := range entries {
		result = append(result, toQueueEntry(e, userID))
	}
	return result, nil
}

// MarkSent flips a queue entry to sent only if it is still unsent. The WHERE
// clause on sent=false makes the flip atomic: of two racing flushers exactly
// one observes an affected row.
func (s *EntStore) MarkSent(ctx context.Context, entryID string) (bool, error) {
	n, err := s.client.DeliveryQueueEntry.Update().
		Where(
			deliveryqueueentry.IDEQ(entryID),
			deliveryqueueentry.SentEQ(false),
		).
		SetSent(true).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("mark sent %s: %w", entryID, err)
	}
	return n > 0, nil
}

// FetchStale returns unsent entries never attempted or last attempted before
// the threshold, oldest first.
func (s *EntStore) FetchStale(ctx context.Context, olderThan time.Time, limit int) ([]QueueEntry, error) {
	entries, err := s.client.DeliveryQueueEntry.Query().
		Where(
			deliveryqueueentry.SentEQ(false),
			deliveryqueueentry.Or(
				deliveryqueueentry.LastAttemptAtIsNil(),
				deliveryqueueentry.LastAttemptAtLT(olderThan),
			),
		).
		Order(ent.Asc(deliveryqueueentry.FieldCreatedAt)).
		Limit(limit).
		WithNotification().
		WithUser().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch stale entries: %w", err)
	}

	result := make([]QueueEntry, 0, len(entries))
	for _, e := range entries {
		userID := ""
		if e.Edges.User != nil {
			userID = e.Edges.User.ID
		}
		result = append(result, toQueueEntry(e, userID))
	}
	return result, nil
}

// TouchLastAttempt records a sweeper escalation time on an entry.
func (s *EntStore) TouchLastAttempt(ctx context.Context, entryID string, at time.Time) error {
	_, err := s.client.DeliveryQueueEntry.UpdateOneID(entryID).
		SetLastAttemptAt(at).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return apperrors.NotFound(apperrors.CodeQueueEntryNotFound, "queue entry not found")
		}
		return fmt.Errorf("touch last attempt %s: %w", entryID, err)
	}
	return nil
}

// MarkRead marks a single notification read, scoped to its owner.
func (s *EntStore) MarkRead(ctx context.Context, userID, notificationID string) error {
	n, err := s.client.Notification.Query().
		Where(
			entnotification.IDEQ(notificationID),
			entnotification.HasUserWith(entuser.IDEQ(userID)),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return apperrors.NotFound(apperrors.CodeNotificationNotFound, "notification not found")
		}
		return fmt.Errorf("get notification %s: %w", notificationID, err)
	}

	if n.Read {
		// Already read; marking again is a no-op, not an error.
		return nil
	}

	_, err = s.client.Notification.UpdateOneID(notificationID).
		SetRead(true).
		SetReadAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("mark read %s: %w", notificationID, err)
	}
	return nil
}

// MarkAllRead marks every unread notification for a user read.
func (s *EntStore) MarkAllRead(ctx context.Context, userID string) (int, error) {
	n, err := s.client.Notification.Update().
		Where(
			entnotification.HasUserWith(entuser.IDEQ(userID)),
			entnotification.ReadEQ(false),
		).
		SetRead(true).
		SetReadAt(time.Now()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("mark all read for user %s: %w", userID, err)
	}
	return n, nil
}

// ListForUser returns a page of the user's notifications, newest first.
func (s *EntStore) ListForUser(ctx context.Context, userID string, opts ListOptions) ([]Payload, int, error) {
	query := s.client.Notification.Query().
		Where(entnotification.HasUserWith(entuser.IDEQ(userID)))
	if opts.UnreadOnly {
		query = query.Where(entnotification.ReadEQ(false))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count notifications for user %s: %w", userID, err)
	}

	page := opts.Page
	if page < 1 {
		page = 1
	}
	perPage := opts.PerPage
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	rows, err := query.
		Offset((page - 1) * perPage).
		Limit(perPage).
		Order(ent.Desc(entnotification.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list notifications for user %s: %w", userID, err)
	}

	payloads := make([]Payload, 0, len(rows))
	for _, n := range rows {
		payloads = append(payloads, toPayload(n, userID))
	}
	return payloads, total, nil
}

// UnreadCount returns the number of unread notifications for a user.
func (s *EntStore) UnreadCount(ctx context.Context, userID string) (int, error) {
	count, err := s.client.Notification.Query().
		Where(
			entnotification.HasUserWith(entuser.IDEQ(userID)),
			entnotification.ReadEQ(false),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count unread for user %s: %w", userID, err)
	}
	return count, nil
}

// DeleteOlderThan removes notifications created before the cutoff. Queue
// entries go first so the foreign key on notification never dangles; that
// includes unsent entries, so an undelivered notification older than the
// cutoff is pruned rather than redelivered.
func (s *EntStore) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	_, err := s.client.DeliveryQueueEntry.Delete().
		Where(deliveryqueueentry.HasNotificationWith(entnotification.CreatedAtLT(cutoff))).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete stale queue entries: %w", err)
	}

	n, err := s.client.Notification.Delete().
		Where(entnotification.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete old notifications: %w", err)
	}
	return n, nil
}

// --- Helpers ---

func toPayload(n *ent.Notification, userID string) Payload {
	return Payload{
		ID:        n.ID,
		UserID:    userID,
		Type:      n.Type.String(),
		Title:     n.Title,
		Body:      n.Body,
		Metadata:  n.Metadata,
		IsRead:    n.Read,
		CreatedAt: n.CreatedAt,
	}
}

func toQueueEntry(e *ent.DeliveryQueueEntry, userID string) QueueEntry {
	entry := QueueEntry{
		ID:            e.ID,
		UserID:        userID,
		Sent:          e.Sent,
		LastAttemptAt: e.LastAttemptAt,
		CreatedAt:     e.CreatedAt,
	}
	if n := e.Edges.Notification; n != nil {
		entry.NotificationID = n.ID
		entry.Payload = toPayload(n, userID)
	}
	return entry
}

func toEntType(t string) (entnotification.Type, error) {
	switch t {
	case TypeTask:
		return entnotification.TypeTask, nil
	case TypeComplaint:
		return entnotification.TypeComplaint, nil
	case TypeAdvisory:
		return entnotification.TypeAdvisory, nil
	case TypeMessage:
		return entnotification.TypeMessage, nil
	case TypeSOS:
		return entnotification.TypeSos, nil
	case TypeGeneric, "":
		return entnotification.TypeGeneric, nil
	default:
		return "", fmt.Errorf("unknown notification type: %s", t)
	}
}
