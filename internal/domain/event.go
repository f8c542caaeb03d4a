package domain

import (
	"encoding/json"
	"time"
)

// EventType defines the type of domain event.
type EventType string

const (
	// Task Events
	EventTaskAssigned EventType = "TASK_ASSIGNED"

	// Complaint Events
	EventComplaintStatusChanged EventType = "COMPLAINT_STATUS_CHANGED"

	// Advisory Events
	EventAdvisoryPublished EventType = "ADVISORY_PUBLISHED"

	// Chat Events
	EventChatMessageSent EventType = "CHAT_MESSAGE_SENT"

	// Emergency Events
	EventSOSRaised EventType = "SOS_RAISED"
)

// DomainEvent represents an immutable domain event. Business modules emit
// these; the delivery module subscribes and fans them out as notifications.
type DomainEvent struct {
	EventID   string    `json:"event_id"`
	EventType EventType `json:"event_type"`
	Payload   []byte    `json:"payload"`
	Actor     string    `json:"actor"`
	CreatedAt time.Time `json:"created_at"`
}

// TaskAssignedPayload is the payload for TASK_ASSIGNED events.
type TaskAssignedPayload struct {
	TaskID     string `json:"task_id"`
	TaskTitle  string `json:"task_title"`
	AssigneeID string `json:"assignee_id"`
	AssignedBy string `json:"assigned_by"`
}

// ToJSON converts payload to JSON bytes.
func (p TaskAssignedPayload) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}

// ComplaintStatusPayload is the payload for COMPLAINT_STATUS_CHANGED events.
type ComplaintStatusPayload struct {
	ComplaintID string `json:"complaint_id"`
	Subject     string `json:"subject"`
	ReporterID  string `json:"reporter_id"`
	OldStatus   string `json:"old_status"`
	NewStatus   string `json:"new_status"`
}

// ToJSON converts payload to JSON bytes.
func (p ComplaintStatusPayload) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}

// AdvisoryPublishedPayload is the payload for ADVISORY_PUBLISHED events.
// RecipientIDs lists everyone in the advisory's target zone.
type AdvisoryPublishedPayload struct {
	AdvisoryID   string   `json:"advisory_id"`
	Title        string   `json:"title"`
	Severity     string   `json:"severity"`
	Zone         string   `json:"zone"`
	RecipientIDs []string `json:"recipient_ids"`
}

// ToJSON converts payload to JSON bytes.
func (p AdvisoryPublishedPayload) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}

// ChatMessagePayload is the payload for CHAT_MESSAGE_SENT events.
type ChatMessagePayload struct {
	MessageID   string `json:"message_id"`
	SenderID    string `json:"sender_id"`
	SenderName  string `json:"sender_name"`
	RecipientID string `json:"recipient_id"`
	Preview     string `json:"preview"`
}

// ToJSON converts payload to JSON bytes.
func (p ChatMessagePayload) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}

// SOSPayload is the payload for SOS_RAISED events. Recipients are resolved
// at dispatch time (all active officers and admins), not carried here.
type SOSPayload struct {
	SOSID      string  `json:"sos_id"`
	ReporterID string  `json:"reporter_id"`
	Reporter   string  `json:"reporter"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Message    string  `json:"message"`
}

// ToJSON converts payload to JSON bytes.
func (p SOSPayload) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}
