// Package realtime manages live WebSocket connections: the per-user presence
// registry, the connection write loop, and the HTTP upgrade gateway.
package realtime

import (
	"context"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"slopewatch.io/slopewatch/internal/notification"
	apperrors "slopewatch.io/slopewatch/internal/pkg/errors"
	"slopewatch.io/slopewatch/internal/pkg/logger"
)

// Frame is the envelope for every message written to a client.
type Frame struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Event names used in outbound frames.
const (
	EventNotification = "notification"
	EventIdentified   = "identified"
	EventError        = "error"
)

// Conn wraps a WebSocket connection with a buffered outbound queue so that a
// slow reader on one socket never blocks the caller. A single writePump
// goroutine owns all writes to the underlying connection.
type Conn struct {
	userID      string
	ws          *websocket.Conn
	send        chan Frame
	done        chan struct{}
	closeOnce   sync.Once
	pushTimeout time.Duration
}

// NewConn wraps an upgraded WebSocket connection for the given user.
func NewConn(userID string, ws *websocket.Conn, sendBuffer int, pushTimeout time.Duration) *Conn {
	return &Conn{
		userID:      userID,
		ws:          ws,
		send:        make(chan Frame, sendBuffer),
		done:        make(chan struct{}),
		pushTimeout: pushTimeout,
	}
}

// UserID returns the authenticated user this connection belongs to.
func (c *Conn) UserID() string {
	return c.userID
}

// Push queues a notification frame for delivery. It blocks for at most the
// configured push timeout: a full buffer past the deadline is a delivery
// failure, and the caller falls back to the durable queue.
//
// Success means the frame was admitted to the send buffer, not that it
// reached the socket. Buffered frames are lost if the connection dies
// before the write pump drains them, so a push acknowledged here can
// still go undelivered.
func (c *Conn) Push(ctx context.Context, p notification.Payload) error {
	if c.Closed() {
		return apperrors.New(apperrors.CodePushFailed, "connection closed",
			apperrors.StatusFor(apperrors.CodePushFailed))
	}

	timer := time.NewTimer(c.pushTimeout)
	defer timer.Stop()

	select {
	case c.send <- Frame{Event: EventNotification, Data: p}:
		return nil
	case <-c.done:
		return apperrors.New(apperrors.CodePushFailed, "connection closed",
			apperrors.StatusFor(apperrors.CodePushFailed))
	case <-ctx.Done():
		return apperrors.Wrap(ctx.Err(), apperrors.CodePushFailed, "push cancelled",
			apperrors.StatusFor(apperrors.CodePushFailed))
	case <-timer.C:
		return apperrors.New(apperrors.CodePushTimeout, "send buffer full",
			apperrors.StatusFor(apperrors.CodePushTimeout))
	}
}

// Send queues an arbitrary frame (identify acks, error frames) without the
// fallback semantics of Push. Best effort: dropped if the buffer is full.
func (c *Conn) Send(frame Frame) {
	select {
	case c.send <- frame:
	case <-c.done:
	default:
		logger.Debug("Dropping frame, send buffer full",
			zap.String("user_id", c.userID),
			zap.String("event", frame.Event),
		)
	}
}

// Close signals the write pump to stop. Safe to call multiple times and from
// any goroutine; the write pump closes the underlying socket, which in turn
// unblocks the read loop.
func (c *Conn) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
}

// Closed reports whether the connection has been closed.
func (c *Conn) Closed() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

// writePump drains the send queue onto the socket. It is the only goroutine
// that writes to the underlying connection.
func (c *Conn) writePump() {
	defer c.ws.Close()

	for {
		select {
		case frame := <-c.send:
			if err := c.ws.WriteJSON(frame); err != nil {
				logger.Debug("WebSocket write failed",
					zap.String("user_id", c.userID),
					zap.Error(err),
				)
				c.Close()
				return
			}
		case <-c.done:
			// Best-effort close frame so well-behaved clients see a
			// clean shutdown instead of an abrupt TCP reset.
			c.ws.WriteControl(
				websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(time.Second),
			)
			return
		}
	}
}
