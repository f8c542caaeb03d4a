package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slopewatch.io/slopewatch/internal/domain"
)

func TestRaiseSOS_DispatchesEvent(t *testing.T) {
	events := domain.NewEventDispatcher()

	var received *domain.DomainEvent
	events.Register(domain.EventSOSRaised, func(ctx context.Context, event *domain.DomainEvent) error {
		received = event
		return nil
	})

	r := newHandlerTestRouter(&handlerFakeStore{}, events)

	body := strings.NewReader(`{"latitude":27.33,"longitude":88.61,"message":"slope movement near camp"}`)
	req := httptest.NewRequest(http.MethodPost, "/sos", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusAccepted, w.Code)
	require.NotNil(t, received, "expected an SOS_RAISED event")
	assert.Equal(t, "user-1", received.Actor)

	var payload domain.SOSPayload
	require.NoError(t, json.Unmarshal(received.Payload, &payload))
	assert.Equal(t, "user-1", payload.ReporterID)
	assert.Equal(t, "arjun", payload.Reporter)
	assert.InDelta(t, 27.33, payload.Latitude, 0.001)
	assert.Equal(t, "slope movement near camp", payload.Message)
	assert.Contains(t, w.Body.String(), payload.SOSID)
}

func TestRaiseSOS_RejectsBadBody(t *testing.T) {
	r := newHandlerTestRouter(&handlerFakeStore{}, domain.NewEventDispatcher())

	req := httptest.NewRequest(http.MethodPost, "/sos", strings.NewReader(`{"latitude":"oops"}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRaiseSOS_HandlerErrorStillAccepted(t *testing.T) {
	events := domain.NewEventDispatcher()
	events.Register(domain.EventSOSRaised, func(ctx context.Context, event *domain.DomainEvent) error {
		return context.DeadlineExceeded
	})

	r := newHandlerTestRouter(&handlerFakeStore{}, events)

	body := strings.NewReader(`{"latitude":27.33,"longitude":88.61}`)
	req := httptest.NewRequest(http.MethodPost, "/sos", body)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// The SOS is raised even when notification fan-out misbehaves.
	assert.Equal(t, http.StatusAccepted, w.Code)
}
