package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"slopewatch.io/slopewatch/ent"
	entuser "slopewatch.io/slopewatch/ent/user"
	"slopewatch.io/slopewatch/internal/domain"
	"slopewatch.io/slopewatch/internal/pkg/logger"
)

// Deliverer routes notifications to recipients. Router is the production
// implementation.
type Deliverer interface {
	Deliver(ctx context.Context, draft Draft) (Payload, error)
	DeliverMany(ctx context.Context, drafts []Draft) error
}

// Triggers translates domain events into notifications. Every trigger
// swallows delivery errors after logging them: the business action that
// raised the event has already committed and must never fail or roll back
// because a notification could not be produced.
type Triggers struct {
	deliverer Deliverer
	client    *ent.Client
}

// NewTriggers creates the notification trigger service.
func NewTriggers(deliverer Deliverer, client *ent.Client) *Triggers {
	return &Triggers{deliverer: deliverer, client: client}
}

// RegisterHandlers subscribes the triggers to the event dispatcher.
func (t *Triggers) RegisterHandlers(d *domain.EventDispatcher) {
	d.Register(domain.EventTaskAssigned, t.handleTaskAssigned)
	d.Register(domain.EventComplaintStatusChanged, t.handleComplaintStatusChanged)
	d.Register(domain.EventAdvisoryPublished, t.handleAdvisoryPublished)
	d.Register(domain.EventChatMessageSent, t.handleChatMessageSent)
	d.Register(domain.EventSOSRaised, t.handleSOSRaised)
}

// OnTaskAssigned notifies the assignee of a new inspection or mitigation task.
func (t *Triggers) OnTaskAssigned(ctx context.Context, p domain.TaskAssignedPayload) {
	draft := Draft{
		UserID: p.AssigneeID,
		Type:   TypeTask,
		Title:  "New task assigned",
		Body:   fmt.Sprintf("You have been assigned: %s", p.TaskTitle),
		Metadata: map[string]string{
			"task_id": p.TaskID,
		},
	}
	if _, err := t.deliverer.Deliver(ctx, draft); err != nil {
		logger.Error("Task assignment notification failed",
			zap.String("task_id", p.TaskID),
			zap.String("assignee", p.AssigneeID),
			zap.Error(err),
		)
	}
}

// OnComplaintStatusChanged notifies the reporter that their complaint moved.
func (t *Triggers) OnComplaintStatusChanged(ctx context.Context, p domain.ComplaintStatusPayload) {
	draft := Draft{
		UserID: p.ReporterID,
		Type:   TypeComplaint,
		Title:  fmt.Sprintf("Complaint %s", p.NewStatus),
		Body:   fmt.Sprintf("Your complaint %q changed from %s to %s", p.Subject, p.OldStatus, p.NewStatus),
		Metadata: map[string]string{
			"complaint_id": p.ComplaintID,
			"status":       p.NewStatus,
		},
	}
	if _, err := t.deliverer.Deliver(ctx, draft); err != nil {
		logger.Error("Complaint status notification failed",
			zap.String("complaint_id", p.ComplaintID),
			zap.String("reporter", p.ReporterID),
			zap.Error(err),
		)
	}
}

// OnAdvisoryPublished fans an advisory out to everyone in its target zone.
func (t *Triggers) OnAdvisoryPublished(ctx context.Context, p domain.AdvisoryPublishedPayload) {
	if len(p.RecipientIDs) == 0 {
		logger.Warn("Advisory published with no recipients",
			zap.String("advisory_id", p.AdvisoryID),
			zap.String("zone", p.Zone),
		)
		return
	}

	drafts := make([]Draft, 0, len(p.RecipientIDs))
	for _, userID := range p.RecipientIDs {
		drafts = append(drafts, Draft{
			UserID: userID,
			Type:   TypeAdvisory,
			Title:  fmt.Sprintf("Advisory: %s", p.Title),
			Body:   fmt.Sprintf("A %s severity advisory was issued for %s", p.Severity, p.Zone),
			Metadata: map[string]string{
				"advisory_id": p.AdvisoryID,
				"severity":    p.Severity,
				"zone":        p.Zone,
			},
		})
	}
	if err := t.deliverer.DeliverMany(ctx, drafts); err != nil {
		logger.Error("Advisory notifications failed",
			zap.String("advisory_id", p.AdvisoryID),
			zap.Int("recipients", len(p.RecipientIDs)),
			zap.Error(err),
		)
	}
}

// OnChatMessageSent notifies the recipient of a direct message.
func (t *Triggers) OnChatMessageSent(ctx context.Context, p domain.ChatMessagePayload) {
	draft := Draft{
		UserID: p.RecipientID,
		Type:   TypeMessage,
		Title:  fmt.Sprintf("Message from %s", p.SenderName),
		Body:   p.Preview,
		Metadata: map[string]string{
			"message_id": p.MessageID,
			"sender_id":  p.SenderID,
		},
	}
	if _, err := t.deliverer.Deliver(ctx, draft); err != nil {
		logger.Error("Chat notification failed",
			zap.String("message_id", p.MessageID),
			zap.String("recipient", p.RecipientID),
			zap.Error(err),
		)
	}
}

// OnSOSRaised fans an emergency alert out to every active officer and admin.
func (t *Triggers) OnSOSRaised(ctx context.Context, p domain.SOSPayload) {
	responderIDs, err := t.findResponderUserIDs(ctx)
	if err != nil {
		logger.Error("Failed to find responders for SOS",
			zap.String("sos_id", p.SOSID),
			zap.Error(err),
		)
		return
	}
	if len(responderIDs) == 0 {
		logger.Warn("No active responders for SOS", zap.String("sos_id", p.SOSID))
		return
	}

	body := fmt.Sprintf("%s raised an SOS at (%.5f, %.5f)", p.Reporter, p.Latitude, p.Longitude)
	if p.Message != "" {
		body += ": " + p.Message
	}

	drafts := make([]Draft, 0, len(responderIDs))
	for _, userID := range responderIDs {
		drafts = append(drafts, Draft{
			UserID: userID,
			Type:   TypeSOS,
			Title:  "SOS alert",
			Body:   body,
			Metadata: map[string]string{
				"sos_id":      p.SOSID,
				"reporter_id": p.ReporterID,
				"latitude":    fmt.Sprintf("%.6f", p.Latitude),
				"longitude":   fmt.Sprintf("%.6f", p.Longitude),
			},
		})
	}
	if err := t.deliverer.DeliverMany(ctx, drafts); err != nil {
		logger.Error("SOS notifications failed",
			zap.String("sos_id", p.SOSID),
			zap.Int("responders", len(responderIDs)),
			zap.Error(err),
		)
	}
}

// findResponderUserIDs returns the IDs of all active officers and admins.
func (t *Triggers) findResponderUserIDs(ctx context.Context) ([]string, error) {
	ids, err := t.client.User.Query().
		Where(
			entuser.ActiveEQ(true),
			entuser.RoleIn(entuser.RoleAdmin, entuser.RoleOfficer),
		).
		Select(entuser.FieldID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query responders: %w", err)
	}
	return ids, nil
}

// --- Dispatcher handlers ---

func (t *Triggers) handleTaskAssigned(ctx context.Context, event *domain.DomainEvent) error {
	var p domain.TaskAssignedPayload
	if err := json.Unmarshal(event.Payload, &p); err != nil {
		logger.Error("Bad TASK_ASSIGNED payload", zap.String("event_id", event.EventID), zap.Error(err))
		return nil
	}
	t.OnTaskAssigned(ctx, p)
	return nil
}

func (t *Triggers) handleComplaintStatusChanged(ctx context.Context, event *domain.DomainEvent) error {
	var p domain.ComplaintStatusPayload
	if err := json.Unmarshal(event.Payload, &p); err != nil {
		logger.Error("Bad COMPLAINT_STATUS_CHANGED payload", zap.String("event_id", event.EventID), zap.Error(err))
		return nil
	}
	t.OnComplaintStatusChanged(ctx, p)
	return nil
}

func (t *Triggers) handleAdvisoryPublished(ctx context.Context, event *domain.DomainEvent) error {
	var p domain.AdvisoryPublishedPayload
	if err := json.Unmarshal(event.Payload, &p); err != nil {
		logger.Error("Bad ADVISORY_PUBLISHED payload", zap.String("event_id", event.EventID), zap.Error(err))
		return nil
	}
	t.OnAdvisoryPublished(ctx, p)
	return nil
}

func (t *Triggers) handleChatMessageSent(ctx context.Context, event *domain.DomainEvent) error {
	var p domain.ChatMessagePayload
	if err := json.Unmarshal(event.Payload, &p); err != nil {
		logger.Error("Bad CHAT_MESSAGE_SENT payload", zap.String("event_id", event.EventID), zap.Error(err))
		return nil
	}
	t.OnChatMessageSent(ctx, p)
	return nil
}

func (t *Triggers) handleSOSRaised(ctx context.Context, event *domain.DomainEvent) error {
	var p domain.SOSPayload
	if err := json.Unmarshal(event.Payload, &p); err != nil {
		logger.Error("Bad SOS_RAISED payload", zap.String("event_id", event.EventID), zap.Error(err))
		return nil
	}
	t.OnSOSRaised(ctx, p)
	return nil
}

// compile-time check
var _ Deliverer = (*Router)(nil)
