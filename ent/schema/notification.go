package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Notification holds the schema definition for the Notification entity.
// Every notification intent is recorded here exactly once, regardless of
// whether the live push or the queue path delivered it.
type Notification struct {
	ent.Schema
}

// Mixin of the Notification.
func (Notification) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{}, // created_at only; rows are append-only except the read flip
	}
}

// Fields of the Notification.
func (Notification) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.Enum("type").
			Values(
				"task",
				"complaint",
				"advisory",
				"message",
				"sos",
				"generic",
			).
			Default("generic"),
		field.String("title").
			NotEmpty().
			MaxLen(255),
		field.String("body").
			MaxLen(2048),
		field.JSON("metadata", map[string]string{}).
			Optional().
			Comment("Related resource references, e.g. {\"task_id\": \"7\"}"),
		field.Bool("read").
			Default(false),
		field.Time("read_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Notification.
func (Notification) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("notifications").
			Unique().
			Required(),
		edge.To("queue_entry", DeliveryQueueEntry.Type).
			Unique(),
	}
}

// Indexes of the Notification.
func (Notification) Indexes() []ent.Index {
	return []ent.Index{
		index.Edges("user").Fields("read"),       // Fast unread count query
		index.Edges("user").Fields("created_at"), // Paginated list by user
		index.Fields("created_at"),               // Retention cleanup
	}
}
