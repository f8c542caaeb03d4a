// Package notification implements durable notification delivery: every
// notification is persisted first, then pushed over the live channel when the
// recipient is connected, or parked in the delivery queue until they
// reconnect.
package notification

import (
	"time"
)

// Notification type values. These mirror the enum on the Ent schema so the
// wire payload and the stored row never disagree.
const (
	TypeTask      = "task"
	TypeComplaint = "complaint"
	TypeAdvisory  = "advisory"
	TypeMessage   = "message"
	TypeSOS       = "sos"
	TypeGeneric   = "generic"
)

// Payload is the wire representation of a notification. The same shape is
// used for live pushes, reconnect flushes, and the REST list endpoint, so
// clients never need to distinguish how a notification reached them.
type Payload struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user_id"`
	Type      string            `json:"type"`
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	IsRead    bool              `json:"is_read"`
	CreatedAt time.Time         `json:"created_at"`
}

// Draft is the input for creating a notification. The router assigns the ID
// and timestamps on insert.
type Draft struct {
	UserID   string
	Type     string
	Title    string
	Body     string
	Metadata map[string]string
}

// QueueEntry is a pending delivery-queue row joined with its notification
// payload, as returned by FetchQueued and FetchStale.
type QueueEntry struct {
	ID             string
	NotificationID string
	UserID         string
	Sent           bool
	LastAttemptAt  *time.Time
	CreatedAt      time.Time
	Payload        Payload
}
