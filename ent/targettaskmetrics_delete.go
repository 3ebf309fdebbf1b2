// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/promptlens/promptlens/ent/predicate"
	"github.com/promptlens/promptlens/ent/targettaskmetrics"
)

// TargetTaskMetricsDelete is the builder for deleting a TargetTaskMetrics entity.
type TargetTaskMetricsDelete struct {
	config
	hooks    []Hook
	mutation *TargetTaskMetricsMutation
}

// Where appends a list predicates to the TargetTaskMetricsDelete builder.
func (_d *TargetTaskMetricsDelete) Where(ps ...predicate.TargetTaskMetrics) *TargetTaskMetricsDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *TargetTaskMetricsDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TargetTaskMetricsDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *TargetTaskMetricsDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(targettaskmetrics.Table, sqlgraph.NewFieldSpec(targettaskmetrics.FieldID, field.TypeString))
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

// TargetTaskMetricsDeleteOne is the builder for deleting a single TargetTaskMetrics entity.
type TargetTaskMetricsDeleteOne struct {
	_d *TargetTaskMetricsDelete
}

// Where appends a list predicates to the TargetTaskMetricsDelete builder.
func (_d *TargetTaskMetricsDeleteOne) Where(ps ...predicate.TargetTaskMetrics) *TargetTaskMetricsDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *TargetTaskMetricsDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{targettaskmetrics.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TargetTaskMetricsDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
