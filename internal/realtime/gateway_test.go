package realtime

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"slopewatch.io/slopewatch/internal/config"
	"slopewatch.io/slopewatch/internal/notification"
	"slopewatch.io/slopewatch/internal/pkg/worker"
)

func testPayload(id, userID string) notification.Payload {
	return notification.Payload{
		ID:        id,
		UserID:    userID,
		Type:      notification.TypeGeneric,
		Title:     "test",
		CreatedAt: time.Now().UTC(),
	}
}

type recordingFlusher struct {
	mu    sync.Mutex
	users []string
	done  chan string
}

func newRecordingFlusher() *recordingFlusher {
	return &recordingFlusher{done: make(chan string, 8)}
}

func (f *recordingFlusher) Flush(ctx context.Context, userID string) error {
	f.mu.Lock()
	f.users = append(f.users, userID)
	f.mu.Unlock()
	f.done <- userID
	return nil
}

func testValidator(token string) (string, error) {
	if !strings.HasPrefix(token, "valid-") {
		return "", errors.New("invalid token")
	}
	return strings.TrimPrefix(token, "valid-"), nil
}

func testDeliveryConfig() config.DeliveryConfig {
	return config.DeliveryConfig{
		PushTimeout:     time.Second,
		SendBuffer:      16,
		IdentifyTimeout: time.Second,
	}
}

func newTestGateway(t *testing.T) (*Gateway, *Registry, *recordingFlusher, string, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	pools, err := worker.NewPools(context.Background(), worker.DefaultPoolConfig())
	if err != nil {
		t.Fatalf("create pools: %v", err)
	}

	registry := NewRegistry()
	flusher := newRecordingFlusher()
	gw := NewGateway(registry, flusher, pools, testValidator, testDeliveryConfig(), []string{"*"})

	router := gin.New()
	router.GET("/ws", gw.Handle)
	srv := httptest.NewServer(router)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	cleanup := func() {
		srv.Close()
		pools.Shutdown()
	}
	return gw, registry, flusher, wsURL, cleanup
}

func dialAndIdentify(t *testing.T, wsURL, token string) *websocket.Conn {
	t.Helper()
	ws, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	if err := ws.WriteJSON(map[string]string{"action": "identify", "token": token}); err != nil {
		t.Fatalf("send identify: %v", err)
	}
	return ws
}

func readFrame(t *testing.T, ws *websocket.Conn) map[string]interface{} {
	t.Helper()
	ws.SetReadDeadline(time.Now().Add(2 * time.Second))
	var frame map[string]interface{}
	if err := ws.ReadJSON(&frame); err != nil {
		t.Fatalf("read frame: %v", err)
	}
	return frame
}

func TestGateway_IdentifyRegistersAndFlushes(t *testing.T) {
	_, registry, flusher, wsURL, cleanup := newTestGateway(t)
	defer cleanup()

	ws := dialAndIdentify(t, wsURL, "valid-user-1")
	defer ws.Close()

	frame := readFrame(t, ws)
	if frame["event"] != EventIdentified {
		t.Fatalf("expected %s frame, got %v", EventIdentified, frame["event"])
	}

	select {
	case userID := <-flusher.done:
		if userID != "user-1" {
			t.Fatalf("expected flush for user-1, got %s", userID)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("expected a pending flush after identify")
	}

	if !registry.IsOnline("user-1") {
		t.Fatal("expected user-1 online after identify")
	}
}

func TestGateway_InvalidTokenRejected(t *testing.T) {
	_, registry, _, wsURL, cleanup := newTestGateway(t)
	defer cleanup()

	ws, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer ws.Close()

	if err := ws.WriteJSON(map[string]string{"action": "identify", "token": "bogus"}); err != nil {
		t.Fatalf("send identify: %v", err)
	}

	ws.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := ws.ReadMessage(); err == nil {
		t.Fatal("expected close after invalid token")
	}
	if registry.Count() != 0 {
		t.Fatal("expected nothing registered after rejected identify")
	}
}

func TestGateway_FirstFrameMustIdentify(t *testing.T) {
	_, registry, _, wsURL, cleanup := newTestGateway(t)
	defer cleanup()

	ws, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer ws.Close()

	if err := ws.WriteJSON(map[string]string{"action": "subscribe"}); err != nil {
		t.Fatalf("send frame: %v", err)
	}

	ws.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := ws.ReadMessage(); err == nil {
		t.Fatal("expected close when first frame is not an identify")
	}
	if registry.Count() != 0 {
		t.Fatal("expected nothing registered")
	}
}

func TestGateway_DisconnectUnregisters(t *testing.T) {
	_, registry, _, wsURL, cleanup := newTestGateway(t)
	defer cleanup()

	ws := dialAndIdentify(t, wsURL, "valid-user-2")
	readFrame(t, ws) // identified ack

	ws.Close()

	deadline := time.Now().Add(2 * time.Second)
	for registry.IsOnline("user-2") {
		if time.Now().After(deadline) {
			t.Fatal("expected user-2 offline after disconnect")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestGateway_PushReachesClient(t *testing.T) {
	_, registry, _, wsURL, cleanup := newTestGateway(t)
	defer cleanup()

	ws := dialAndIdentify(t, wsURL, "valid-user-3")
	defer ws.Close()
	readFrame(t, ws) // identified ack

	pusher, ok := registry.Pusher("user-3")
	if !ok {
		t.Fatal("expected user-3 online")
	}
	if err := pusher.Push(context.Background(), testPayload("n-1", "user-3")); err != nil {
		t.Fatalf("push: %v", err)
	}

	frame := readFrame(t, ws)
	if frame["event"] != EventNotification {
		t.Fatalf("expected notification frame, got %v", frame["event"])
	}
	data, ok := frame["data"].(map[string]interface{})
	if !ok || data["id"] != "n-1" {
		t.Fatalf("unexpected frame data: %v", frame["data"])
	}
}
