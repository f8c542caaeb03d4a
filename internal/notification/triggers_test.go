package notification

import (
	"context"
	"errors"
	"sync"
	"testing"

	"slopewatch.io/slopewatch/internal/domain"
)

type recordingDeliverer struct {
	mu     sync.Mutex
	drafts []Draft
	err    error
}

func (d *recordingDeliverer) Deliver(ctx context.Context, draft Draft) (Payload, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.drafts = append(d.drafts, draft)
	return Payload{UserID: draft.UserID, Title: draft.Title}, d.err
}

func (d *recordingDeliverer) DeliverMany(ctx context.Context, drafts []Draft) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.drafts = append(d.drafts, drafts...)
	return d.err
}

func TestTriggers_OnTaskAssigned(t *testing.T) {
	deliverer := &recordingDeliverer{}
	triggers := NewTriggers(deliverer, nil)

	triggers.OnTaskAssigned(context.Background(), domain.TaskAssignedPayload{
		TaskID:     "task-9",
		TaskTitle:  "Inspect crack gauge CG-12",
		AssigneeID: "user-7",
	})

	if len(deliverer.drafts) != 1 {
		t.Fatalf("expected 1 draft, got %d", len(deliverer.drafts))
	}
	draft := deliverer.drafts[0]
	if draft.UserID != "user-7" {
		t.Fatalf("expected recipient user-7, got %s", draft.UserID)
	}
	if draft.Type != TypeTask {
		t.Fatalf("expected type %s, got %s", TypeTask, draft.Type)
	}
	if draft.Metadata["task_id"] != "task-9" {
		t.Fatalf("expected task_id metadata, got %v", draft.Metadata)
	}
}

func TestTriggers_OnAdvisoryPublishedFansOut(t *testing.T) {
	deliverer := &recordingDeliverer{}
	triggers := NewTriggers(deliverer, nil)

	triggers.OnAdvisoryPublished(context.Background(), domain.AdvisoryPublishedPayload{
		AdvisoryID:   "adv-3",
		Title:        "Rockfall risk elevated",
		Severity:     "high",
		Zone:         "zone-b",
		RecipientIDs: []string{"user-1", "user-2", "user-3"},
	})

	if len(deliverer.drafts) != 3 {
		t.Fatalf("expected 3 drafts, got %d", len(deliverer.drafts))
	}
	for _, draft := range deliverer.drafts {
		if draft.Type != TypeAdvisory {
			t.Fatalf("expected type %s, got %s", TypeAdvisory, draft.Type)
		}
		if draft.Metadata["advisory_id"] != "adv-3" {
			t.Fatalf("expected advisory_id metadata, got %v", draft.Metadata)
		}
	}
}

func TestTriggers_DeliveryErrorIsSwallowed(t *testing.T) {
	deliverer := &recordingDeliverer{err: errors.New("store down")}
	triggers := NewTriggers(deliverer, nil)

	// Must not panic and must not propagate: the business action that
	// raised the event already committed.
	triggers.OnChatMessageSent(context.Background(), domain.ChatMessagePayload{
		MessageID:   "msg-1",
		SenderID:    "user-1",
		SenderName:  "Pema",
		RecipientID: "user-2",
		Preview:     "shift change at 18:00",
	})

	if len(deliverer.drafts) != 1 {
		t.Fatalf("expected the delivery attempt to happen, got %d drafts", len(deliverer.drafts))
	}
}

func TestTriggers_DispatcherWiring(t *testing.T) {
	deliverer := &recordingDeliverer{}
	triggers := NewTriggers(deliverer, nil)

	dispatcher := domain.NewEventDispatcher()
	triggers.RegisterHandlers(dispatcher)

	payload, err := domain.ComplaintStatusPayload{
		ComplaintID: "cmp-4",
		Subject:     "Loose netting above road",
		ReporterID:  "user-5",
		OldStatus:   "open",
		NewStatus:   "resolved",
	}.ToJSON()
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}

	err = dispatcher.Dispatch(context.Background(), &domain.DomainEvent{
		EventID:   "evt-1",
		EventType: domain.EventComplaintStatusChanged,
		Payload:   payload,
	})
	if err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}

	if len(deliverer.drafts) != 1 {
		t.Fatalf("expected 1 draft from dispatched event, got %d", len(deliverer.drafts))
	}
	if deliverer.drafts[0].UserID != "user-5" {
		t.Fatalf("expected reporter user-5, got %s", deliverer.drafts[0].UserID)
	}
}

func TestTriggers_MalformedPayloadDoesNotFail(t *testing.T) {
	deliverer := &recordingDeliverer{}
	triggers := NewTriggers(deliverer, nil)

	dispatcher := domain.NewEventDispatcher()
	triggers.RegisterHandlers(dispatcher)

	err := dispatcher.Dispatch(context.Background(), &domain.DomainEvent{
		EventID:   "evt-2",
		EventType: domain.EventTaskAssigned,
		Payload:   []byte("{not json"),
	})
	if err != nil {
		t.Fatalf("malformed payload must be swallowed, got %v", err)
	}
	if len(deliverer.drafts) != 0 {
		t.Fatal("no draft expected for malformed payload")
	}
}
