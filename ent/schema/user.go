package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// User holds the schema definition for the User entity.
// Only the fields the delivery backend needs; profile data lives with the
// wider platform.
type User struct {
	ent.Schema
}

// Mixin of the User.
func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("username").
			NotEmpty().
			Unique(),
		field.String("display_name").
			Optional(),
		field.Enum("role").
			Values("admin", "officer", "field_worker", "resident").
			Default("resident"),
		field.String("password_hash").
			Sensitive().
			Optional(),
		field.Bool("active").
			Default(true),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("notifications", Notification.Type),
		edge.To("queue_entries", DeliveryQueueEntry.Type),
	}
}
