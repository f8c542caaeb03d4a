// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"slopewatch.io/slopewatch/ent/deliveryqueueentry"
	"slopewatch.io/slopewatch/ent/predicate"
)

// DeliveryQueueEntryDelete is the builder for deleting a DeliveryQueueEntry entity.
type DeliveryQueueEntryDelete struct {
	config
	hooks    []Hook
	mutation *DeliveryQueueEntryMutation
}

// Where appends a list predicates to the DeliveryQueueEntryDelete builder.
func (_d *DeliveryQueueEntryDelete) Where(ps ...predicate.DeliveryQueueEntry) *DeliveryQueueEntryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DeliveryQueueEntryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DeliveryQueueEntryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DeliveryQueueEntryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(deliveryqueueentry.Table, sqlgraph.NewFieldSpec(deliveryqueueentry.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// DeliveryQueueEntryDeleteOne is the builder for deleting a single DeliveryQueueEntry entity.
type DeliveryQueueEntryDeleteOne struct {
	_d *DeliveryQueueEntryDelete
}

// Where appends a list predicates to the DeliveryQueueEntryDelete builder.
func (_d *DeliveryQueueEntryDeleteOne) Where(ps ...predicate.DeliveryQueueEntry) *DeliveryQueueEntryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DeliveryQueueEntryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{deliveryqueueentry.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DeliveryQueueEntryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
