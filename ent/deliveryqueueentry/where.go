// Code generated by ent, DO NOT EDIT.

package deliveryqueueentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"slopewatch.io/slopewatch/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DeliveryQueueEntry {
	return predicate.DeliveryQueueEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DeliveryQueueEntry {
	return predicate.DeliveryQueueEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DeliveryQueueEntry {
	return predicate.DeliveryQueueEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DeliveryQueueEntry {
	return predicate.DeliveryQueueEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DeliveryQueueEntry {
	return predicate.DeliveryQueueEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DeliveryQueueEntry {
	return predicate.DeliveryQueueEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DeliveryQueueEntry {
	return predicate.DeliveryQueueEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DeliveryQueueEntry {
	return predicate.DeliveryQueueEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DeliveryQueueEntry {
	return predicate.DeliveryQueueEntry(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DeliveryQueueEntry {
	return predicate.DeliveryQueueEntry(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DeliveryQueueEntry {
	return predicate.DeliveryQueueEntry(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DeliveryQueueEntry {
	return predicate.DeliveryQueueEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// Sent applies equality check predicate on the "sent" field. It's identical to SentEQ.
func Sent(v bool) predicate.DeliveryQueueEntry {
	return predicate.DeliveryQueueEntry(sql.FieldEQ(FieldSent, v))
}

// LastAttemptAt applies equality check predicate on the "last_attempt_at" field. It's identical to LastAttemptAtEQ.
func LastAttemptAt(v time.Time) predicate.DeliveryQueueEntry {
	return predicate.DeliveryQueueEntry(sql.FieldEQ(FieldLastAttemptAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DeliveryQueueEntry {
	return predicate.DeliveryQueueEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DeliveryQueueEntry {
	return predicate.DeliveryQueueEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DeliveryQueueEntry {
	return predicate.DeliveryQueueEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DeliveryQueueEntry {
	return predicate.DeliveryQueueEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DeliveryQueueEntry {
	return predicate.DeliveryQueueEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DeliveryQueueEntry {
	return predicate.DeliveryQueueEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DeliveryQueueEntry {
	return predicate.DeliveryQueueEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DeliveryQueueEntry {
	return predicate.DeliveryQueueEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// SentEQ applies the EQ predicate on the "sent" field.
func SentEQ(v bool) predicate.DeliveryQueueEntry {
	return predicate.DeliveryQueueEntry(sql.FieldEQ(FieldSent, v))
}

// SentNEQ applies the NEQ predicate on the "sent" field.
func SentNEQ(v bool) predicate.DeliveryQueueEntry {
	return predicate.DeliveryQueueEntry(sql.FieldNEQ(FieldSent, v))
}

// LastAttemptAtEQ applies the EQ predicate on the "last_attempt_at" field.
func LastAttemptAtEQ(v time.Time) predicate.DeliveryQueueEntry {
	return predicate.DeliveryQueueEntry(sql.FieldEQ(FieldLastAttemptAt, v))
}

// LastAttemptAtNEQ applies the NEQ predicate on the "last_attempt_at" field.
func LastAttemptAtNEQ(v time.Time) predicate.DeliveryQueueEntry {
	return predicate.DeliveryQueueEntry(sql.FieldNEQ(FieldLastAttemptAt, v))
}

// LastAttemptAtIn applies the In predicate on the "last_attempt_at" field.
func LastAttemptAtIn(vs ...time.Time) predicate.DeliveryQueueEntry {
	return predicate.DeliveryQueueEntry(sql.FieldIn(FieldLastAttemptAt, vs...))
}

// LastAttemptAtNotIn applies the NotIn predicate on the "last_attempt_at" field.
func LastAttemptAtNotIn(vs ...time.Time) predicate.DeliveryQueueEntry {
	return predicate.DeliveryQueueEntry(sql.FieldNotIn(FieldLastAttemptAt, vs...))
}

// LastAttemptAtGT applies the GT predicate on the "last_attempt_at" field.
func LastAttemptAtGT(v time.Time) predicate.DeliveryQueueEntry {
	return predicate.DeliveryQueueEntry(sql.FieldGT(FieldLastAttemptAt, v))
}

// LastAttemptAtGTE applies the GTE predicate on the "last_attempt_at" field.
func LastAttemptAtGTE(v time.Time) predicate.DeliveryQueueEntry {
	return predicate.DeliveryQueueEntry(sql.FieldGTE(FieldLastAttemptAt, v))
}

// LastAttemptAtLT applies the LT predicate on the "last_attempt_at" field.
func LastAttemptAtLT(v time.Time) predicate.DeliveryQueueEntry {
	return predicate.DeliveryQueueEntry(sql.FieldLT(FieldLastAttemptAt, v))
}

// LastAttemptAtLTE applies the LTE predicate on the "last_attempt_at" field.
func LastAttemptAtLTE(v time.Time) predicate.DeliveryQueueEntry {
	return predicate.DeliveryQueueEntry(sql.FieldLTE(FieldLastAttemptAt, v))
}

// LastAttemptAtIsNil applies the IsNil predicate on the "last_attempt_at" field.
func LastAttemptAtIsNil() predicate.DeliveryQueueEntry {
	return predicate.DeliveryQueueEntry(sql.FieldIsNull(FieldLastAttemptAt))
}

// LastAttemptAtNotNil applies the NotNil predicate on the "last_attempt_at" field.
func LastAttemptAtNotNil() predicate.DeliveryQueueEntry {
	return predicate.DeliveryQueueEntry(sql.FieldNotNull(FieldLastAttemptAt))
}

// HasNotification applies the HasEdge predicate on the "notification" edge.
func HasNotification() predicate.DeliveryQueueEntry {
	return predicate.DeliveryQueueEntry(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, NotificationTable, NotificationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasNotificationWith applies the HasEdge predicate on the "notification" edge with a given conditions (other predicates).
func HasNotificationWith(preds ...predicate.Notification) predicate.DeliveryQueueEntry {
	return predicate.DeliveryQueueEntry(func(s *sql.Selector) {
		step := newNotificationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.DeliveryQueueEntry {
	return predicate.DeliveryQueueEntry(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.DeliveryQueueEntry {
	return predicate.DeliveryQueueEntry(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DeliveryQueueEntry) predicate.DeliveryQueueEntry {
	return predicate.DeliveryQueueEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DeliveryQueueEntry) predicate.DeliveryQueueEntry {
	return predicate.DeliveryQueueEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DeliveryQueueEntry) predicate.DeliveryQueueEntry {
	return predicate.DeliveryQueueEntry(sql.NotPredicates(p))
}
