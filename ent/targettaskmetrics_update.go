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
	"github.com/promptlens/promptlens/ent/predicate"
	"github.com/promptlens/promptlens/ent/targettaskmetrics"
)

// TargetTaskMetricsUpdate is the builder for updating TargetTaskMetrics entities.
type TargetTaskMetricsUpdate struct {
	config
	hooks    []Hook
	mutation *TargetTaskMetricsMutation
}

// Where appends a list predicates to the TargetTaskMetricsUpdate builder.
func (_u *TargetTaskMetricsUpdate) Where(ps ...predicate.TargetTaskMetrics) *TargetTaskMetricsUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBestCost sets the "best_cost" field.
func (_u *TargetTaskMetricsUpdate) SetBestCost(v float64) *TargetTaskMetricsUpdate {
	_u.mutation.ResetBestCost()
	_u.mutation.SetBestCost(v)
	return _u
}

// SetNillableBestCost sets the "best_cost" field if the given value is not nil.
func (_u *TargetTaskMetricsUpdate) SetNillableBestCost(v *float64) *TargetTaskMetricsUpdate {
	if v != nil {
		_u.SetBestCost(*v)
	}
	return _u
}

// AddBestCost adds value to the "best_cost" field.
func (_u *TargetTaskMetricsUpdate) AddBestCost(v float64) *TargetTaskMetricsUpdate {
	_u.mutation.AddBestCost(v)
	return _u
}

// ClearBestCost clears the value of the "best_cost" field.
func (_u *TargetTaskMetricsUpdate) ClearBestCost() *TargetTaskMetricsUpdate {
	_u.mutation.ClearBestCost()
	return _u
}

// SetBestTimeMs sets the "best_time_ms" field.
func (_u *TargetTaskMetricsUpdate) SetBestTimeMs(v float64) *TargetTaskMetricsUpdate {
	_u.mutation.ResetBestTimeMs()
	_u.mutation.SetBestTimeMs(v)
	return _u
}

// SetNillableBestTimeMs sets the "best_time_ms" field if the given value is not nil.
func (_u *TargetTaskMetricsUpdate) SetNillableBestTimeMs(v *float64) *TargetTaskMetricsUpdate {
	if v != nil {
		_u.SetBestTimeMs(*v)
	}
	return _u
}

// AddBestTimeMs adds value to the "best_time_ms" field.
func (_u *TargetTaskMetricsUpdate) AddBestTimeMs(v float64) *TargetTaskMetricsUpdate {
	_u.mutation.AddBestTimeMs(v)
	return _u
}

// ClearBestTimeMs clears the value of the "best_time_ms" field.
func (_u *TargetTaskMetricsUpdate) ClearBestTimeMs() *TargetTaskMetricsUpdate {
	_u.mutation.ClearBestTimeMs()
	return _u
}

// SetLastUpdatedAt sets the "last_updated_at" field.
func (_u *TargetTaskMetricsUpdate) SetLastUpdatedAt(v time.Time) *TargetTaskMetricsUpdate {
	_u.mutation.SetLastUpdatedAt(v)
	return _u
}

// SetNillableLastUpdatedAt sets the "last_updated_at" field if the given value is not nil.
func (_u *TargetTaskMetricsUpdate) SetNillableLastUpdatedAt(v *time.Time) *TargetTaskMetricsUpdate {
	if v != nil {
		_u.SetLastUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the TargetTaskMetricsMutation object of the builder.
func (_u *TargetTaskMetricsUpdate) Mutation() *TargetTaskMetricsMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TargetTaskMetricsUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TargetTaskMetricsUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TargetTaskMetricsUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TargetTaskMetricsUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TargetTaskMetricsUpdate) check() error {
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TargetTaskMetrics.task"`)
	}
	return nil
}

func (_u *TargetTaskMetricsUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(targettaskmetrics.Table, targettaskmetrics.Columns, sqlgraph.NewFieldSpec(targettaskmetrics.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BestCost(); ok {
		_spec.SetField(targettaskmetrics.FieldBestCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBestCost(); ok {
		_spec.AddField(targettaskmetrics.FieldBestCost, field.TypeFloat64, value)
	}
	if _u.mutation.BestCostCleared() {
		_spec.ClearField(targettaskmetrics.FieldBestCost, field.TypeFloat64)
	}
	if value, ok := _u.mutation.BestTimeMs(); ok {
		_spec.SetField(targettaskmetrics.FieldBestTimeMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBestTimeMs(); ok {
		_spec.AddField(targettaskmetrics.FieldBestTimeMs, field.TypeFloat64, value)
	}
	if _u.mutation.BestTimeMsCleared() {
		_spec.ClearField(targettaskmetrics.FieldBestTimeMs, field.TypeFloat64)
	}
	if value, ok := _u.mutation.LastUpdatedAt(); ok {
		_spec.SetField(targettaskmetrics.FieldLastUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{targettaskmetrics.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TargetTaskMetricsUpdateOne is the builder for updating a single TargetTaskMetrics entity.
type TargetTaskMetricsUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TargetTaskMetricsMutation
}

// SetBestCost sets the "best_cost" field.
func (_u *TargetTaskMetricsUpdateOne) SetBestCost(v float64) *TargetTaskMetricsUpdateOne {
	_u.mutation.ResetBestCost()
	_u.mutation.SetBestCost(v)
	return _u
}

// SetNillableBestCost sets the "best_cost" field if the given value is not nil.
func (_u *TargetTaskMetricsUpdateOne) SetNillableBestCost(v *float64) *TargetTaskMetricsUpdateOne {
	if v != nil {
		_u.SetBestCost(*v)
	}
	return _u
}

// AddBestCost adds value to the "best_cost" field.
func (_u *TargetTaskMetricsUpdateOne) AddBestCost(v float64) *TargetTaskMetricsUpdateOne {
	_u.mutation.AddBestCost(v)
	return _u
}

// ClearBestCost clears the value of the "best_cost" field.
func (_u *TargetTaskMetricsUpdateOne) ClearBestCost() *TargetTaskMetricsUpdateOne {
	_u.mutation.ClearBestCost()
	return _u
}

// SetBestTimeMs sets the "best_time_ms" field.
func (_u *TargetTaskMetricsUpdateOne) SetBestTimeMs(v float64) *TargetTaskMetricsUpdateOne {
	_u.mutation.ResetBestTimeMs()
	_u.mutation.SetBestTimeMs(v)
	return _u
}

// SetNillableBestTimeMs sets the "best_time_ms" field if the given value is not nil.
func (_u *TargetTaskMetricsUpdateOne) SetNillableBestTimeMs(v *float64) *TargetTaskMetricsUpdateOne {
	if v != nil {
		_u.SetBestTimeMs(*v)
	}
	return _u
}

// AddBestTimeMs adds value to the "best_time_ms" field.
func (_u *TargetTaskMetricsUpdateOne) AddBestTimeMs(v float64) *TargetTaskMetricsUpdateOne {
	_u.mutation.AddBestTimeMs(v)
	return _u
}

// ClearBestTimeMs clears the value of the "best_time_ms" field.
func (_u *TargetTaskMetricsUpdateOne) ClearBestTimeMs() *TargetTaskMetricsUpdateOne {
	_u.mutation.ClearBestTimeMs()
	return _u
}

// SetLastUpdatedAt sets the "last_updated_at" field.
func (_u *TargetTaskMetricsUpdateOne) SetLastUpdatedAt(v time.Time) *TargetTaskMetricsUpdateOne {
	_u.mutation.SetLastUpdatedAt(v)
	return _u
}

// SetNillableLastUpdatedAt sets the "last_updated_at" field if the given value is not nil.
func (_u *TargetTaskMetricsUpdateOne) SetNillableLastUpdatedAt(v *time.Time) *TargetTaskMetricsUpdateOne {
	if v != nil {
		_u.SetLastUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the TargetTaskMetricsMutation object of the builder.
func (_u *TargetTaskMetricsUpdateOne) Mutation() *TargetTaskMetricsMutation {
	return _u.mutation
}

// Where appends a list predicates to the TargetTaskMetricsUpdate builder.
func (_u *TargetTaskMetricsUpdateOne) Where(ps ...predicate.TargetTaskMetrics) *TargetTaskMetricsUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TargetTaskMetricsUpdateOne) Select(field string, fields ...string) *TargetTaskMetricsUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TargetTaskMetrics entity.
func (_u *TargetTaskMetricsUpdateOne) Save(ctx context.Context) (*TargetTaskMetrics, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TargetTaskMetricsUpdateOne) SaveX(ctx context.Context) *TargetTaskMetrics {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TargetTaskMetricsUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TargetTaskMetricsUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TargetTaskMetricsUpdateOne) check() error {
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TargetTaskMetrics.task"`)
	}
	return nil
}

func (_u *TargetTaskMetricsUpdateOne) sqlSave(ctx context.Context) (_node *TargetTaskMetrics, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(targettaskmetrics.Table, targettaskmetrics.Columns, sqlgraph.NewFieldSpec(targettaskmetrics.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TargetTaskMetrics.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, targettaskmetrics.FieldID)
		for _, f := range fields {
			if !targettaskmetrics.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != targettaskmetrics.FieldID {
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
	if value, ok := _u.mutation.BestCost(); ok {
		_spec.SetField(targettaskmetrics.FieldBestCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBestCost(); ok {
		_spec.AddField(targettaskmetrics.FieldBestCost, field.TypeFloat64, value)
	}
	if _u.mutation.BestCostCleared() {
		_spec.ClearField(targettaskmetrics.FieldBestCost, field.TypeFloat64)
	}
	if value, ok := _u.mutation.BestTimeMs(); ok {
		_spec.SetField(targettaskmetrics.FieldBestTimeMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBestTimeMs(); ok {
		_spec.AddField(targettaskmetrics.FieldBestTimeMs, field.TypeFloat64, value)
	}
	if _u.mutation.BestTimeMsCleared() {
		_spec.ClearField(targettaskmetrics.FieldBestTimeMs, field.TypeFloat64)
	}
	if value, ok := _u.mutation.LastUpdatedAt(); ok {
		_spec.SetField(targettaskmetrics.FieldLastUpdatedAt, field.TypeTime, value)
	}
	_node = &TargetTaskMetrics{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{targettaskmetrics.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
