// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"slopewatch.io/slopewatch/ent/deliveryqueueentry"
	"slopewatch.io/slopewatch/ent/notification"
	"slopewatch.io/slopewatch/ent/predicate"
	"slopewatch.io/slopewatch/ent/user"
)

// DeliveryQueueEntryUpdate is the builder for updating DeliveryQueueEntry entities.
type DeliveryQueueEntryUpdate struct {
	config
	hooks    []Hook
	mutation *DeliveryQueueEntryMutation
}

// Where appends a list predicates to the DeliveryQueueEntryUpdate builder.
func (_u *DeliveryQueueEntryUpdate) Where(ps ...predicate.DeliveryQueueEntry) *DeliveryQueueEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSent sets the "sent" field.
func (_u *DeliveryQueueEntryUpdate) SetSent(v bool) *DeliveryQueueEntryUpdate {
	_u.mutation.SetSent(v)
	return _u
}

// SetNillableSent sets the "sent" field if the given value is not nil.
func (_u *DeliveryQueueEntryUpdate) SetNillableSent(v *bool) *DeliveryQueueEntryUpdate {
	if v != nil {
		_u.SetSent(*v)
	}
	return _u
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (_u *DeliveryQueueEntryUpdate) SetLastAttemptAt(v time.Time) *DeliveryQueueEntryUpdate {
	_u.mutation.SetLastAttemptAt(v)
	return _u
}

// SetNillableLastAttemptAt sets the "last_attempt_at" field if the given value is not nil.
func (_u *DeliveryQueueEntryUpdate) SetNillableLastAttemptAt(v *time.Time) *DeliveryQueueEntryUpdate {
	if v != nil {
		_u.SetLastAttemptAt(*v)
	}
	return _u
}

// ClearLastAttemptAt clears the value of the "last_attempt_at" field.
func (_u *DeliveryQueueEntryUpdate) ClearLastAttemptAt() *DeliveryQueueEntryUpdate {
	_u.mutation.ClearLastAttemptAt()
	return _u
}

// SetNotificationID sets the "notification" edge to the Notification entity by ID.
func (_u *DeliveryQueueEntryUpdate) SetNotificationID(id string) *DeliveryQueueEntryUpdate {
	_u.mutation.SetNotificationID(id)
	return _u
}

// SetNotification sets the "notification" edge to the Notification entity.
func (_u *DeliveryQueueEntryUpdate) SetNotification(v *Notification) *DeliveryQueueEntryUpdate {
	return _u.SetNotificationID(v.ID)
}

// SetUserID sets the "user" edge to the User entity by ID.
func (_u *DeliveryQueueEntryUpdate) SetUserID(id string) *DeliveryQueueEntryUpdate {
	_u.mutation.SetUserID(id)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *DeliveryQueueEntryUpdate) SetUser(v *User) *DeliveryQueueEntryUpdate {
	return _u.SetUserID(v.ID)
}

// Mutation returns the DeliveryQueueEntryMutation object of the builder.
func (_u *DeliveryQueueEntryUpdate) Mutation() *DeliveryQueueEntryMutation {
	return _u.mutation
}

// ClearNotification clears the "notification" edge to the Notification entity.
func (_u *DeliveryQueueEntryUpdate) ClearNotification() *DeliveryQueueEntryUpdate {
	_u.mutation.ClearNotification()
	return _u
}

// ClearUser clears the "user" edge to the User entity.
func (_u *DeliveryQueueEntryUpdate) ClearUser() *DeliveryQueueEntryUpdate {
	_u.mutation.ClearUser()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DeliveryQueueEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeliveryQueueEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DeliveryQueueEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeliveryQueueEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DeliveryQueueEntryUpdate) check() error {
	if _u.mutation.NotificationCleared() && len(_u.mutation.NotificationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DeliveryQueueEntry.notification"`)
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DeliveryQueueEntry.user"`)
	}
	return nil
}

func (_u *DeliveryQueueEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(deliveryqueueentry.Table, deliveryqueueentry.Columns, sqlgraph.NewFieldSpec(deliveryqueueentry.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Sent(); ok {
		_spec.SetField(deliveryqueueentry.FieldSent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastAttemptAt(); ok {
		_spec.SetField(deliveryqueueentry.FieldLastAttemptAt, field.TypeTime, value)
	}
	if _u.mutation.LastAttemptAtCleared() {
		_spec.ClearField(deliveryqueueentry.FieldLastAttemptAt, field.TypeTime)
	}
	if _u.mutation.NotificationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   deliveryqueueentry.NotificationTable,
			Columns: []string{deliveryqueueentry.NotificationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(notification.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NotificationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   deliveryqueueentry.NotificationTable,
			Columns: []string{deliveryqueueentry.NotificationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(notification.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   deliveryqueueentry.UserTable,
			Columns: []string{deliveryqueueentry.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   deliveryqueueentry.UserTable,
			Columns: []string{deliveryqueueentry.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deliveryqueueentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DeliveryQueueEntryUpdateOne is the builder for updating a single DeliveryQueueEntry entity.
type DeliveryQueueEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DeliveryQueueEntryMutation
}

// SetSent sets the "sent" field.
func (_u *DeliveryQueueEntryUpdateOne) SetSent(v bool) *DeliveryQueueEntryUpdateOne {
	_u.mutation.SetSent(v)
	return _u
}

// SetNillableSent sets the "sent" field if the given value is not nil.
func (_u *DeliveryQueueEntryUpdateOne) SetNillableSent(v *bool) *DeliveryQueueEntryUpdateOne {
	if v != nil {
		_u.SetSent(*v)
	}
	return _u
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (_u *DeliveryQueueEntryUpdateOne) SetLastAttemptAt(v time.Time) *DeliveryQueueEntryUpdateOne {
	_u.mutation.SetLastAttemptAt(v)
	return _u
}

// SetNillableLastAttemptAt sets the "last_attempt_at" field if the given value is not nil.
func (_u *DeliveryQueueEntryUpdateOne) SetNillableLastAttemptAt(v *time.Time) *DeliveryQueueEntryUpdateOne {
	if v != nil {
		_u.SetLastAttemptAt(*v)
	}
	return _u
}

// ClearLastAttemptAt clears the value of the "last_attempt_at" field.
func (_u *DeliveryQueueEntryUpdateOne) ClearLastAttemptAt() *DeliveryQueueEntryUpdateOne {
	_u.mutation.ClearLastAttemptAt()
	return _u
}

// SetNotificationID sets the "notification" edge to the Notification entity by ID.
func (_u *DeliveryQueueEntryUpdateOne) SetNotificationID(id string) *DeliveryQueueEntryUpdateOne {
	_u.mutation.SetNotificationID(id)
	return _u
}

// SetNotification sets the "notification" edge to the Notification entity.
func (_u *DeliveryQueueEntryUpdateOne) SetNotification(v *Notification) *DeliveryQueueEntryUpdateOne {
	return _u.SetNotificationID(v.ID)
}

// SetUserID sets the "user" edge to the User entity by ID.
func (_u *DeliveryQueueEntryUpdateOne) SetUserID(id string) *DeliveryQueueEntryUpdateOne {
	_u.mutation.SetUserID(id)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *DeliveryQueueEntryUpdateOne) SetUser(v *User) *DeliveryQueueEntryUpdateOne {
	return _u.SetUserID(v.ID)
}

// Mutation returns the DeliveryQueueEntryMutation object of the builder.
func (_u *DeliveryQueueEntryUpdateOne) Mutation() *DeliveryQueueEntryMutation {
	return _u.mutation
}

// ClearNotification clears the "notification" edge to the Notification entity.
func (_u *DeliveryQueueEntryUpdateOne) ClearNotification() *DeliveryQueueEntryUpdateOne {
	_u.mutation.ClearNotification()
	return _u
}

// ClearUser clears the "user" edge to the User entity.
func (_u *DeliveryQueueEntryUpdateOne) ClearUser() *DeliveryQueueEntryUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// Where appends a list predicates to the DeliveryQueueEntryUpdate builder.
func (_u *DeliveryQueueEntryUpdateOne) Where(ps ...predicate.DeliveryQueueEntry) *DeliveryQueueEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DeliveryQueueEntryUpdateOne) Select(field string, fields ...string) *DeliveryQueueEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DeliveryQueueEntry entity.
func (_u *DeliveryQueueEntryUpdateOne) Save(ctx context.Context) (*DeliveryQueueEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeliveryQueueEntryUpdateOne) SaveX(ctx context.Context) *DeliveryQueueEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DeliveryQueueEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeliveryQueueEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DeliveryQueueEntryUpdateOne) check() error {
	if _u.mutation.NotificationCleared() && len(_u.mutation.NotificationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DeliveryQueueEntry.notification"`)
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DeliveryQueueEntry.user"`)
	}
	return nil
}

func (_u *DeliveryQueueEntryUpdateOne) sqlSave(ctx context.Context) (_node *DeliveryQueueEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(deliveryqueueentry.Table, deliveryqueueentry.Columns, sqlgraph.NewFieldSpec(deliveryqueueentry.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DeliveryQueueEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, deliveryqueueentry.FieldID)
		for _, f := range fields {
			if !deliveryqueueentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != deliveryqueueentry.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Sent(); ok {
		_spec.SetField(deliveryqueueentry.FieldSent, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastAttemptAt(); ok {
		_spec.SetField(deliveryqueueentry.FieldLastAttemptAt, field.TypeTime, value)
	}
	if _u.mutation.LastAttemptAtCleared() {
		_spec.ClearField(deliveryqueueentry.FieldLastAttemptAt, field.TypeTime)
	}
	if _u.mutation.NotificationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   deliveryqueueentry.NotificationTable,
			Columns: []string{deliveryqueueentry.NotificationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(notification.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NotificationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   deliveryqueueentry.NotificationTable,
			Columns: []string{deliveryqueueentry.NotificationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(notification.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   deliveryqueueentry.UserTable,
			Columns: []string{deliveryqueueentry.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   deliveryqueueentry.UserTable,
			Columns: []string{deliveryqueueentry.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DeliveryQueueEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deliveryqueueentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
