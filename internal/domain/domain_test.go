package domain

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSOSPayload_ToJSON(t *testing.T) {
	payload := SOSPayload{
		SOSID:      "sos-1",
		ReporterID: "user-1",
		Reporter:   "Arjun",
		Latitude:   27.33,
		Longitude:  88.61,
		Message:    "trapped near the east retaining wall",
	}

	data, err := payload.ToJSON()
	require.NoError(t, err)

	var decoded SOSPayload
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, payload, decoded)
}

func TestAdvisoryPublishedPayload_ToJSON(t *testing.T) {
	payload := AdvisoryPublishedPayload{
		AdvisoryID:   "adv-7",
		Title:        "Heavy rainfall warning",
		Severity:     "high",
		Zone:         "zone-c",
		RecipientIDs: []string{"user-1", "user-2"},
	}

	data, err := payload.ToJSON()
	require.NoError(t, err)

	var decoded AdvisoryPublishedPayload
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, payload, decoded)
}

func TestEventDispatcher_Dispatch(t *testing.T) {
	d := NewEventDispatcher()

	var calls []string
	d.Register(EventTaskAssigned, func(ctx context.Context, event *DomainEvent) error {
		calls = append(calls, "first")
		return errors.New("handler blew up")
	})
	d.Register(EventTaskAssigned, func(ctx context.Context, event *DomainEvent) error {
		calls = append(calls, "second")
		return nil
	})

	err := d.Dispatch(context.Background(), &DomainEvent{
		EventID:   "evt-1",
		EventType: EventTaskAssigned,
	})

	// First handler failed but the second still ran.
	require.Error(t, err)
	require.Equal(t, []string{"first", "second"}, calls)
}

func TestEventDispatcher_NoHandlers(t *testing.T) {
	d := NewEventDispatcher()
	err := d.Dispatch(context.Background(), &DomainEvent{
		EventID:   "evt-2",
		EventType: EventSOSRaised,
	})
	require.NoError(t, err)
}
