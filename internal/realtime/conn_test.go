package realtime

import (
	"context"
	"testing"
	"time"

	"slopewatch.io/slopewatch/internal/notification"
	apperrors "slopewatch.io/slopewatch/internal/pkg/errors"
)

func TestConn_PushBuffers(t *testing.T) {
	c := NewConn("user-1", nil, 2, 50*time.Millisecond)

	if err := c.Push(context.Background(), notification.Payload{ID: "n1"}); err != nil {
		t.Fatalf("push into empty buffer failed: %v", err)
	}
	if err := c.Push(context.Background(), notification.Payload{ID: "n2"}); err != nil {
		t.Fatalf("push into non-full buffer failed: %v", err)
	}
}

func TestConn_PushTimesOutWhenBufferFull(t *testing.T) {
	c := NewConn("user-1", nil, 1, 20*time.Millisecond)

	if err := c.Push(context.Background(), notification.Payload{ID: "n1"}); err != nil {
		t.Fatalf("first push failed: %v", err)
	}

	// No write pump is draining, so the second push must time out.
	err := c.Push(context.Background(), notification.Payload{ID: "n2"})
	if err == nil {
		t.Fatal("expected push timeout with full buffer")
	}
	appErr, ok := apperrors.IsAppError(err)
	if !ok || appErr.Code != apperrors.CodePushTimeout {
		t.Fatalf("expected %s, got %v", apperrors.CodePushTimeout, err)
	}
}

func TestConn_PushAfterCloseFails(t *testing.T) {
	c := NewConn("user-1", nil, 1, time.Second)
	c.Close()

	err := c.Push(context.Background(), notification.Payload{ID: "n1"})
	if err == nil {
		t.Fatal("expected push on closed conn to fail")
	}
	appErr, ok := apperrors.IsAppError(err)
	if !ok || appErr.Code != apperrors.CodePushFailed {
		t.Fatalf("expected %s, got %v", apperrors.CodePushFailed, err)
	}
}

func TestConn_CloseIsIdempotent(t *testing.T) {
	c := NewConn("user-1", nil, 1, time.Second)
	c.Close()
	c.Close()
	if !c.Closed() {
		t.Fatal("expected conn closed")
	}
}
