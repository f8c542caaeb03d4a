// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"slopewatch.io/slopewatch/ent/deliveryqueueentry"
	"slopewatch.io/slopewatch/ent/notification"
	"slopewatch.io/slopewatch/ent/user"
)

// DeliveryQueueEntry is the model entity for the DeliveryQueueEntry schema.
type DeliveryQueueEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Sent holds the value of the "sent" field.
	Sent bool `json:"sent,omitempty"`
	// Set by the stale sweeper when it escalates an entry
	LastAttemptAt *time.Time `json:"last_attempt_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DeliveryQueueEntryQuery when eager-loading is set.
	Edges                    DeliveryQueueEntryEdges `json:"edges"`
	notification_queue_entry *string
	user_queue_entries       *string
	selectValues             sql.SelectValues
}

// DeliveryQueueEntryEdges holds the relations/edges for other nodes in the graph.
type DeliveryQueueEntryEdges struct {
	// Notification holds the value of the notification edge.
	Notification *Notification `json:"notification,omitempty"`
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// NotificationOrErr returns the Notification value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DeliveryQueueEntryEdges) NotificationOrErr() (*Notification, error) {
	if e.Notification != nil {
		return e.Notification, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: notification.Label}
	}
	return nil, &NotLoadedError{edge: "notification"}
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DeliveryQueueEntryEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DeliveryQueueEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case deliveryqueueentry.FieldSent:
			values[i] = new(sql.NullBool)
		case deliveryqueueentry.FieldID:
			values[i] = new(sql.NullString)
		case deliveryqueueentry.FieldCreatedAt, deliveryqueueentry.FieldLastAttemptAt:
			values[i] = new(sql.NullTime)
		case deliveryqueueentry.ForeignKeys[0]: // notification_queue_entry
			values[i] = new(sql.NullString)
		case deliveryqueueentry.ForeignKeys[1]: // user_queue_entries
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DeliveryQueueEntry fields.
func (_m *DeliveryQueueEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case deliveryqueueentry.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case deliveryqueueentry.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case deliveryqueueentry.FieldSent:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field sent", values[i])
			} else if value.Valid {
				_m.Sent = value.Bool
			}
		case deliveryqueueentry.FieldLastAttemptAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_attempt_at", values[i])
			} else if value.Valid {
				_m.LastAttemptAt = new(time.Time)
				*_m.LastAttemptAt = value.Time
			}
		case deliveryqueueentry.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notification_queue_entry", values[i])
			} else if value.Valid {
				_m.notification_queue_entry = new(string)
				*_m.notification_queue_entry = value.String
			}
		case deliveryqueueentry.ForeignKeys[1]:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_queue_entries", values[i])
			} else if value.Valid {
				_m.user_queue_entries = new(string)
				*_m.user_queue_entries = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DeliveryQueueEntry.
// This includes values selected through modifiers, order, etc.
func (_m *DeliveryQueueEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryNotification queries the "notification" edge of the DeliveryQueueEntry entity.
func (_m *DeliveryQueueEntry) QueryNotification() *NotificationQuery {
	return NewDeliveryQueueEntryClient(_m.config).QueryNotification(_m)
}

// QueryUser queries the "user" edge of the DeliveryQueueEntry entity.
func (_m *DeliveryQueueEntry) QueryUser() *UserQuery {
	return NewDeliveryQueueEntryClient(_m.config).QueryUser(_m)
}

// Update returns a builder for updating this DeliveryQueueEntry.
// Note that you need to call DeliveryQueueEntry.Unwrap() before calling this method if this DeliveryQueueEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DeliveryQueueEntry) Update() *DeliveryQueueEntryUpdateOne {
	return NewDeliveryQueueEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DeliveryQueueEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DeliveryQueueEntry) Unwrap() *DeliveryQueueEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DeliveryQueueEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DeliveryQueueEntry) String() string {
	var builder strings.Builder
	builder.WriteString("DeliveryQueueEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("sent=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sent))
	builder.WriteString(", ")
	if v := _m.LastAttemptAt; v != nil {
		builder.WriteString("last_attempt_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// DeliveryQueueEntries is a parsable slice of DeliveryQueueEntry.
type DeliveryQueueEntries []*DeliveryQueueEntry
