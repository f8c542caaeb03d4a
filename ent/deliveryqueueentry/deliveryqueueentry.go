// Code generated by ent, DO NOT EDIT.

package deliveryqueueentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the deliveryqueueentry type in the database.
	Label = "delivery_queue_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldSent holds the string denoting the sent field in the database.
	FieldSent = "sent"
	// FieldLastAttemptAt holds the string denoting the last_attempt_at field in the database.
	FieldLastAttemptAt = "last_attempt_at"
	// EdgeNotification holds the string denoting the notification edge name in mutations.
	EdgeNotification = "notification"
	// EdgeUser holds the string denoting the user edge name in mutations.
	EdgeUser = "user"
	// Table holds the table name of the deliveryqueueentry in the database.
	Table = "delivery_queue_entries"
	// NotificationTable is the table that holds the notification relation/edge.
	NotificationTable = "delivery_queue_entries"
	// NotificationInverseTable is the table name for the Notification entity.
	// It exists in this package in order to avoid circular dependency with the "notification" package.
	NotificationInverseTable = "notifications"
	// NotificationColumn is the table column denoting the notification relation/edge.
	NotificationColumn = "notification_queue_entry"
	// UserTable is the table that holds the user relation/edge.
	UserTable = "delivery_queue_entries"
	// UserInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UserInverseTable = "users"
	// UserColumn is the table column denoting the user relation/edge.
	UserColumn = "user_queue_entries"
)

// Columns holds all SQL columns for deliveryqueueentry fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldSent,
	FieldLastAttemptAt,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "delivery_queue_entries"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"notification_queue_entry",
	"user_queue_entries",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultSent holds the default value on creation for the "sent" field.
	DefaultSent bool
)

// OrderOption defines the ordering options for the DeliveryQueueEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// BySent orders the results by the sent field.
func BySent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSent, opts...).ToFunc()
}

// ByLastAttemptAt orders the results by the last_attempt_at field.
func ByLastAttemptAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastAttemptAt, opts...).ToFunc()
}

// ByNotificationField orders the results by notification field.
func ByNotificationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newNotificationStep(), sql.OrderByField(field, opts...))
	}
}

// ByUserField orders the results by user field.
func ByUserField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUserStep(), sql.OrderByField(field, opts...))
	}
}
func newNotificationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(NotificationInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, NotificationTable, NotificationColumn),
	)
}
func newUserStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UserInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
	)
}
