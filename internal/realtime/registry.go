package realtime

import (
	"sync"

	"go.uber.org/zap"

	"slopewatch.io/slopewatch/internal/notification"
	"slopewatch.io/slopewatch/internal/pkg/logger"
)

// Registry tracks which users currently hold a live connection. At most one
// connection per user: a reconnect displaces the previous socket.
type Registry struct {
	mu    sync.RWMutex
	conns map[string]*Conn
}

// NewRegistry creates an empty presence registry.
func NewRegistry() *Registry {
	return &Registry{
		conns: make(map[string]*Conn),
	}
}

// Register associates a connection with its user. If the user already has a
// live connection the old one is displaced and returned so the caller can
// close it; the new connection always wins.
func (r *Registry) Register(c *Conn) (displaced *Conn) {
	r.mu.Lock()
	displaced = r.conns[c.UserID()]
	r.conns[c.UserID()] = c
	total := len(r.conns)
	r.mu.Unlock()

	logger.Debug("Client registered",
		zap.String("user_id", c.UserID()),
		zap.Int("online", total),
	)
	return displaced
}

// Unregister removes a connection, but only if it is still the one on
// record. A stale socket unregistering after its user reconnected must not
// knock the fresh connection offline, so the match is by connection handle,
// not by user ID.
func (r *Registry) Unregister(c *Conn) bool {
	r.mu.Lock()
	current, ok := r.conns[c.UserID()]
	if !ok || current != c {
		r.mu.Unlock()
		return false
	}
	delete(r.conns, c.UserID())
	total := len(r.conns)
	r.mu.Unlock()

	logger.Debug("Client unregistered",
		zap.String("user_id", c.UserID()),
		zap.Int("online", total),
	)
	return true
}

// Lookup returns the live connection for a user, if any.
func (r *Registry) Lookup(userID string) (*Conn, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.conns[userID]
	return c, ok
}

// Pusher returns the user's live connection as a delivery target. It reports
// false when the user is offline.
func (r *Registry) Pusher(userID string) (notification.Pusher, bool) {
	c, ok := r.Lookup(userID)
	if !ok {
		return nil, false
	}
	return c, true
}

// IsOnline reports whether a user has a live connection.
func (r *Registry) IsOnline(userID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.conns[userID]
	return ok
}

// Count returns the number of connected users.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.conns)
}

// CloseAll closes every live connection and empties the registry. Used on
// shutdown so clients reconnect promptly instead of waiting out a dead TCP
// session.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	conns := make([]*Conn, 0, len(r.conns))
	for _, c := range r.conns {
		conns = append(conns, c)
	}
	r.conns = make(map[string]*Conn)
	r.mu.Unlock()

	for _, c := range conns {
		c.Close()
	}
	if len(conns) > 0 {
		logger.Info("Closed all client connections", zap.Int("count", len(conns)))
	}
}
