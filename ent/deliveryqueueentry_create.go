// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"slopewatch.io/slopewatch/ent/deliveryqueueentry"
	"slopewatch.io/slopewatch/ent/notification"
	"slopewatch.io/slopewatch/ent/user"
)

// DeliveryQueueEntryCreate is the builder for creating a DeliveryQueueEntry entity.
type DeliveryQueueEntryCreate struct {
	config
	mutation *DeliveryQueueEntryMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *DeliveryQueueEntryCreate) SetCreatedAt(v time.Time) *DeliveryQueueEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DeliveryQueueEntryCreate) SetNillableCreatedAt(v *time.Time) *DeliveryQueueEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetSent sets the "sent" field.
func (_c *DeliveryQueueEntryCreate) SetSent(v bool) *DeliveryQueueEntryCreate {
	_c.mutation.SetSent(v)
	return _c
}

// SetNillableSent sets the "sent" field if the given value is not nil.
func (_c *DeliveryQueueEntryCreate) SetNillableSent(v *bool) *DeliveryQueueEntryCreate {
	if v != nil {
		_c.SetSent(*v)
	}
	return _c
}

// SetLastAttemptAt sets the "last_attempt_at" field.
func (_c *DeliveryQueueEntryCreate) SetLastAttemptAt(v time.Time) *DeliveryQueueEntryCreate {
	_c.mutation.SetLastAttemptAt(v)
	return _c
}

// SetNillableLastAttemptAt sets the "last_attempt_at" field if the given value is not nil.
func (_c *DeliveryQueueEntryCreate) SetNillableLastAttemptAt(v *time.Time) *DeliveryQueueEntryCreate {
	if v != nil {
		_c.SetLastAttemptAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DeliveryQueueEntryCreate) SetID(v string) *DeliveryQueueEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNotificationID sets the "notification" edge to the Notification entity by ID.
func (_c *DeliveryQueueEntryCreate) SetNotificationID(id string) *DeliveryQueueEntryCreate {
	_c.mutation.SetNotificationID(id)
	return _c
}

// SetNotification sets the "notification" edge to the Notification entity.
func (_c *DeliveryQueueEntryCreate) SetNotification(v *Notification) *DeliveryQueueEntryCreate {
	return _c.SetNotificationID(v.ID)
}

// SetUserID sets the "user" edge to the User entity by ID.
func (_c *DeliveryQueueEntryCreate) SetUserID(id string) *DeliveryQueueEntryCreate {
	_c.mutation.SetUserID(id)
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *DeliveryQueueEntryCreate) SetUser(v *User) *DeliveryQueueEntryCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the DeliveryQueueEntryMutation object of the builder.
func (_c *DeliveryQueueEntryCreate) Mutation() *DeliveryQueueEntryMutation {
	return _c.mutation
}

// Save creates the DeliveryQueueEntry in the database.
func (_c *DeliveryQueueEntryCreate) Save(ctx context.Context) (*DeliveryQueueEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DeliveryQueueEntryCreate) SaveX(ctx context.Context) *DeliveryQueueEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeliveryQueueEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeliveryQueueEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DeliveryQueueEntryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := deliveryqueueentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.Sent(); !ok {
		v := deliveryqueueentry.DefaultSent
		_c.mutation.SetSent(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DeliveryQueueEntryCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DeliveryQueueEntry.created_at"`)}
	}
	if _, ok := _c.mutation.Sent(); !ok {
		return &ValidationError{Name: "sent", err: errors.New(`ent: missing required field "DeliveryQueueEntry.sent"`)}
	}
	if len(_c.mutation.NotificationIDs()) == 0 {
		return &ValidationError{Name: "notification", err: errors.New(`ent: missing required edge "DeliveryQueueEntry.notification"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "DeliveryQueueEntry.user"`)}
	}
	return nil
}

func (_c *DeliveryQueueEntryCreate) sqlSave(ctx context.Context) (*DeliveryQueueEntry, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected DeliveryQueueEntry.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DeliveryQueueEntryCreate) createSpec() (*DeliveryQueueEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &DeliveryQueueEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(deliveryqueueentry.Table, sqlgraph.NewFieldSpec(deliveryqueueentry.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(deliveryqueueentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Sent(); ok {
		_spec.SetField(deliveryqueueentry.FieldSent, field.TypeBool, value)
		_node.Sent = value
	}
	if value, ok := _c.mutation.LastAttemptAt(); ok {
		_spec.SetField(deliveryqueueentry.FieldLastAttemptAt, field.TypeTime, value)
		_node.LastAttemptAt = &value
	}
	if nodes := _c.mutation.NotificationIDs(); len(nodes) > 0 {
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
		_node.notification_queue_entry = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
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
		_node.user_queue_entries = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DeliveryQueueEntryCreateBulk is the builder for creating many DeliveryQueueEntry entities in bulk.
type DeliveryQueueEntryCreateBulk struct {
	config
	err      error
	builders []*DeliveryQueueEntryCreate
}

// Save creates the DeliveryQueueEntry entities in the database.
func (_c *DeliveryQueueEntryCreateBulk) Save(ctx context.Context) ([]*DeliveryQueueEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DeliveryQueueEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DeliveryQueueEntryMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DeliveryQueueEntryCreateBulk) SaveX(ctx context.Context) []*DeliveryQueueEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeliveryQueueEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeliveryQueueEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
