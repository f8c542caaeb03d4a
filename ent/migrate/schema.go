// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DeliveryQueueEntriesColumns holds the columns for the "delivery_queue_entries" table.
	DeliveryQueueEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "sent", Type: field.TypeBool, Default: false},
		{Name: "last_attempt_at", Type: field.TypeTime, Nullable: true},
		{Name: "notification_queue_entry", Type: field.TypeString, Unique: true},
		{Name: "user_queue_entries", Type: field.TypeString},
	}
	// DeliveryQueueEntriesTable holds the schema information for the "delivery_queue_entries" table.
	DeliveryQueueEntriesTable = &schema.Table{
		Name:       "delivery_queue_entries",
		Columns:    DeliveryQueueEntriesColumns,
		PrimaryKey: []*schema.Column{DeliveryQueueEntriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "delivery_queue_entries_notifications_queue_entry",
				Columns:    []*schema.Column{DeliveryQueueEntriesColumns[4]},
				RefColumns: []*schema.Column{NotificationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "delivery_queue_entries_users_queue_entries",
				Columns:    []*schema.Column{DeliveryQueueEntriesColumns[5]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "deliveryqueueentry_sent_user_queue_entries",
				Unique:  false,
				Columns: []*schema.Column{DeliveryQueueEntriesColumns[2], DeliveryQueueEntriesColumns[5]},
			},
			{
				Name:    "deliveryqueueentry_sent_last_attempt_at",
				Unique:  false,
				Columns: []*schema.Column{DeliveryQueueEntriesColumns[2], DeliveryQueueEntriesColumns[3]},
			},
			{
				Name:    "deliveryqueueentry_created_at",
				Unique:  false,
				Columns: []*schema.Column{DeliveryQueueEntriesColumns[1]},
			},
		},
	}
	// NotificationsColumns holds the columns for the "notifications" table.
	NotificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"task", "complaint", "advisory", "message", "sos", "generic"}, Default: "generic"},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "body", Type: field.TypeString, Size: 2048},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "read", Type: field.TypeBool, Default: false},
		{Name: "read_at", Type: field.TypeTime, Nullable: true},
		{Name: "user_notifications", Type: field.TypeString},
	}
	// NotificationsTable holds the schema information for the "notifications" table.
	NotificationsTable = &schema.Table{
		Name:       "notifications",
		Columns:    NotificationsColumns,
		PrimaryKey: []*schema.Column{NotificationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "notifications_users_notifications",
				Columns:    []*schema.Column{NotificationsColumns[8]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "notification_read_user_notifications",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[6], NotificationsColumns[8]},
			},
			{
				Name:    "notification_created_at_user_notifications",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[1], NotificationsColumns[8]},
			},
			{
				Name:    "notification_created_at",
				Unique:  false,
				Columns: []*schema.Column{NotificationsColumns[1]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "username", Type: field.TypeString, Unique: true},
		{Name: "display_name", Type: field.TypeString, Nullable: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"admin", "officer", "field_worker", "resident"}, Default: "resident"},
		{Name: "password_hash", Type: field.TypeString, Nullable: true},
		{Name: "active", Type: field.TypeBool, Default: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DeliveryQueueEntriesTable,
		NotificationsTable,
		UsersTable,
	}
)

func init() {
	DeliveryQueueEntriesTable.ForeignKeys[0].RefTable = NotificationsTable
	DeliveryQueueEntriesTable.ForeignKeys[1].RefTable = UsersTable
	NotificationsTable.ForeignKeys[0].RefTable = UsersTable
}
