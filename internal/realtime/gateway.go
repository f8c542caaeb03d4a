package realtime

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"slopewatch.io/slopewatch/internal/config"
	"slopewatch.io/slopewatch/internal/pkg/logger"
	"slopewatch.io/slopewatch/internal/pkg/worker"
)

var errFirstFrameNotIdentify = errors.New("first frame must be an identify")

// TokenValidator checks a JWT and returns the authenticated user ID.
type TokenValidator func(token string) (userID string, err error)

// PendingFlusher delivers queued notifications after a reconnect.
type PendingFlusher interface {
	Flush(ctx context.Context, userID string) error
}

// identifyMessage is the first frame a client must send after the upgrade.
type identifyMessage struct {
	Action string `json:"action"`
	Token  string `json:"token"`
}

// Gateway upgrades HTTP requests to WebSocket connections and runs the
// connection lifecycle: identify, register, flush pending, read until close,
// unregister.
type Gateway struct {
	registry *Registry
	flusher  PendingFlusher
	pools    *worker.Pools
	validate TokenValidator
	cfg      config.DeliveryConfig
	upgrader websocket.Upgrader
}

// NewGateway creates a WebSocket gateway.
func NewGateway(
	registry *Registry,
	flusher PendingFlusher,
	pools *worker.Pools,
	validate TokenValidator,
	cfg config.DeliveryConfig,
	allowedOrigins []string,
) *Gateway {
	allowed := make(map[string]bool, len(allowedOrigins))
	allowAll := false
	for _, origin := range allowedOrigins {
		if origin == "*" {
			allowAll = true
		}
		allowed[origin] = true
	}

	return &Gateway{
		registry: registry,
		flusher:  flusher,
		pools:    pools,
		validate: validate,
		cfg:      cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" || allowAll {
					return true
				}
				return allowed[origin]
			},
		},
	}
}

// Handle is the gin handler for GET /ws. Authentication happens over the
// socket itself: the client's first frame must be an identify carrying a
// valid JWT, sent within the identify timeout.
func (g *Gateway) Handle(c *gin.Context) {
	ws, err := g.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("WebSocket upgrade failed",
			zap.String("remote", c.Request.RemoteAddr),
			zap.Error(err),
		)
		return
	}

	userID, err := g.identify(ws)
	if err != nil {
		logger.Warn("WebSocket identify failed",
			zap.String("remote", c.Request.RemoteAddr),
			zap.Error(err),
		)
		ws.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "identify required"),
			time.Now().Add(time.Second),
		)
		ws.Close()
		return
	}

	conn := NewConn(userID, ws, g.cfg.SendBuffer, g.cfg.PushTimeout)
	if displaced := g.registry.Register(conn); displaced != nil {
		// New connection wins; shut the old socket down.
		displaced.Close()
	}

	// The write pump lives exactly as long as the socket; closing the conn
	// ends it and the pump closes the socket on its way out.
	go conn.writePump()

	conn.Send(Frame{Event: EventIdentified, Data: gin.H{"user_id": userID}})

	// Flush queued notifications on the push pool so a large backlog does
	// not hold up this handler, and so the flush survives request teardown.
	if err := g.pools.SubmitDetached("push", func(ctx context.Context) {
		if err := g.flusher.Flush(ctx, userID); err != nil {
			logger.Error("Reconnect flush failed",
				zap.String("user_id", userID),
				zap.Error(err),
			)
		}
	}); err != nil {
		logger.Error("Failed to submit reconnect flush",
			zap.String("user_id", userID),
			zap.Error(err),
		)
	}

	// Read until the client goes away. Inbound frames after identify are
	// ignored; the read loop exists to detect disconnect (and to let
	// gorilla answer ping control frames).
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}

	conn.Close()
	g.registry.Unregister(conn)
}

// identify reads and validates the first frame. The socket may stay
// anonymous only for the identify timeout.
func (g *Gateway) identify(ws *websocket.Conn) (string, error) {
	if err := ws.SetReadDeadline(time.Now().Add(g.cfg.IdentifyTimeout)); err != nil {
		return "", err
	}

	var msg identifyMessage
	if err := ws.ReadJSON(&msg); err != nil {
		return "", err
	}
	if msg.Action != "identify" {
		return "", errFirstFrameNotIdentify
	}

	userID, err := g.validate(msg.Token)
	if err != nil {
		return "", err
	}

	// Clear the deadline; disconnect detection takes over from here.
	if err := ws.SetReadDeadline(time.Time{}); err != nil {
		return "", err
	}
	return userID, nil
}
