package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DeliveryQueueEntry holds the schema definition for the DeliveryQueueEntry
// entity. An entry exists while a notification still needs a live push to its
// recipient: it is created when the recipient is offline or a push fails, and
// flipped to sent on successful delivery during a reconnect flush.
type DeliveryQueueEntry struct {
	ent.Schema
}

// Mixin of the DeliveryQueueEntry.
func (DeliveryQueueEntry) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{},
	}
}

// Fields of the DeliveryQueueEntry.
func (DeliveryQueueEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.Bool("sent").
			Default(false),
		field.Time("last_attempt_at").
			Optional().
			Nillable().
			Comment("Set by the stale sweeper when it escalates an entry"),
	}
}

// Edges of the DeliveryQueueEntry.
func (DeliveryQueueEntry) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("notification", Notification.Type).
			Ref("queue_entry").
			Unique().
			Required(),
		edge.From("user", User.Type).
			Ref("queue_entries").
			Unique().
			Required(),
	}
}

// Indexes of the DeliveryQueueEntry.
func (DeliveryQueueEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Edges("user").Fields("sent"),         // Reconnect flush fetch
		index.Fields("sent", "last_attempt_at"),    // Stale sweep scan
		index.Fields("created_at"),                 // Oldest-first ordering
	}
}
