// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/promptlens/promptlens/ent/evaluationconfig"
	"github.com/promptlens/promptlens/ent/predicate"
)

// EvaluationConfigUpdate is the builder for updating EvaluationConfig entities.
type EvaluationConfigUpdate struct {
	config
	hooks    []Hook
	mutation *EvaluationConfigMutation
}

// Where appends a list predicates to the EvaluationConfigUpdate builder.
func (_u *EvaluationConfigUpdate) Where(ps ...predicate.EvaluationConfig) *EvaluationConfigUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQualityWeight sets the "quality_weight" field.
func (_u *EvaluationConfigUpdate) SetQualityWeight(v float64) *EvaluationConfigUpdate {
	_u.mutation.ResetQualityWeight()
	_u.mutation.SetQualityWeight(v)
	return _u
}

// SetNillableQualityWeight sets the "quality_weight" field if the given value is not nil.
func (_u *EvaluationConfigUpdate) SetNillableQualityWeight(v *float64) *EvaluationConfigUpdate {
	if v != nil {
		_u.SetQualityWeight(*v)
	}
	return _u
}

// AddQualityWeight adds value to the "quality_weight" field.
func (_u *EvaluationConfigUpdate) AddQualityWeight(v float64) *EvaluationConfigUpdate {
	_u.mutation.AddQualityWeight(v)
	return _u
}

// SetCostWeight sets the "cost_weight" field.
func (_u *EvaluationConfigUpdate) SetCostWeight(v float64) *EvaluationConfigUpdate {
	_u.mutation.ResetCostWeight()
	_u.mutation.SetCostWeight(v)
	return _u
}

// SetNillableCostWeight sets the "cost_weight" field if the given value is not nil.
func (_u *EvaluationConfigUpdate) SetNillableCostWeight(v *float64) *EvaluationConfigUpdate {
	if v != nil {
		_u.SetCostWeight(*v)
	}
	return _u
}

// AddCostWeight adds value to the "cost_weight" field.
func (_u *EvaluationConfigUpdate) AddCostWeight(v float64) *EvaluationConfigUpdate {
	_u.mutation.AddCostWeight(v)
	return _u
}

// SetTimeWeight sets the "time_weight" field.
func (_u *EvaluationConfigUpdate) SetTimeWeight(v float64) *EvaluationConfigUpdate {
	_u.mutation.ResetTimeWeight()
	_u.mutation.SetTimeWeight(v)
	return _u
}

// SetNillableTimeWeight sets the "time_weight" field if the given value is not nil.
func (_u *EvaluationConfigUpdate) SetNillableTimeWeight(v *float64) *EvaluationConfigUpdate {
	if v != nil {
		_u.SetTimeWeight(*v)
	}
	return _u
}

// AddTimeWeight adds value to the "time_weight" field.
func (_u *EvaluationConfigUpdate) AddTimeWeight(v float64) *EvaluationConfigUpdate {
	_u.mutation.AddTimeWeight(v)
	return _u
}

// SetGraderIds sets the "grader_ids" field.
func (_u *EvaluationConfigUpdate) SetGraderIds(v []string) *EvaluationConfigUpdate {
	_u.mutation.SetGraderIds(v)
	return _u
}

// AppendGraderIds appends value to the "grader_ids" field.
func (_u *EvaluationConfigUpdate) AppendGraderIds(v []string) *EvaluationConfigUpdate {
	_u.mutation.AppendGraderIds(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EvaluationConfigUpdate) SetUpdatedAt(v time.Time) *EvaluationConfigUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the EvaluationConfigMutation object of the builder.
func (_u *EvaluationConfigUpdate) Mutation() *EvaluationConfigMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EvaluationConfigUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvaluationConfigUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EvaluationConfigUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvaluationConfigUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EvaluationConfigUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := evaluationconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvaluationConfigUpdate) check() error {
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EvaluationConfig.task"`)
	}
	return nil
}

func (_u *EvaluationConfigUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evaluationconfig.Table, evaluationconfig.Columns, sqlgraph.NewFieldSpec(evaluationconfig.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QualityWeight(); ok {
		_spec.SetField(evaluationconfig.FieldQualityWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQualityWeight(); ok {
		_spec.AddField(evaluationconfig.FieldQualityWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CostWeight(); ok {
		_spec.SetField(evaluationconfig.FieldCostWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostWeight(); ok {
		_spec.AddField(evaluationconfig.FieldCostWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TimeWeight(); ok {
		_spec.SetField(evaluationconfig.FieldTimeWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTimeWeight(); ok {
		_spec.AddField(evaluationconfig.FieldTimeWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.GraderIds(); ok {
		_spec.SetField(evaluationconfig.FieldGraderIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGraderIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evaluationconfig.FieldGraderIds, value)
		})
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(evaluationconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evaluationconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EvaluationConfigUpdateOne is the builder for updating a single EvaluationConfig entity.
type EvaluationConfigUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EvaluationConfigMutation
}

// SetQualityWeight sets the "quality_weight" field.
func (_u *EvaluationConfigUpdateOne) SetQualityWeight(v float64) *EvaluationConfigUpdateOne {
	_u.mutation.ResetQualityWeight()
	_u.mutation.SetQualityWeight(v)
	return _u
}

// SetNillableQualityWeight sets the "quality_weight" field if the given value is not nil.
func (_u *EvaluationConfigUpdateOne) SetNillableQualityWeight(v *float64) *EvaluationConfigUpdateOne {
	if v != nil {
		_u.SetQualityWeight(*v)
	}
	return _u
}

// AddQualityWeight adds value to the "quality_weight" field.
func (_u *EvaluationConfigUpdateOne) AddQualityWeight(v float64) *EvaluationConfigUpdateOne {
	_u.mutation.AddQualityWeight(v)
	return _u
}

// SetCostWeight sets the "cost_weight" field.
func (_u *EvaluationConfigUpdateOne) SetCostWeight(v float64) *EvaluationConfigUpdateOne {
	_u.mutation.ResetCostWeight()
	_u.mutation.SetCostWeight(v)
	return _u
}

// SetNillableCostWeight sets the "cost_weight" field if the given value is not nil.
func (_u *EvaluationConfigUpdateOne) SetNillableCostWeight(v *float64) *EvaluationConfigUpdateOne {
	if v != nil {
		_u.SetCostWeight(*v)
	}
	return _u
}

// AddCostWeight adds value to the "cost_weight" field.
func (_u *EvaluationConfigUpdateOne) AddCostWeight(v float64) *EvaluationConfigUpdateOne {
	_u.mutation.AddCostWeight(v)
	return _u
}

// SetTimeWeight sets the "time_weight" field.
func (_u *EvaluationConfigUpdateOne) SetTimeWeight(v float64) *EvaluationConfigUpdateOne {
	_u.mutation.ResetTimeWeight()
	_u.mutation.SetTimeWeight(v)
	return _u
}

// SetNillableTimeWeight sets the "time_weight" field if the given value is not nil.
func (_u *EvaluationConfigUpdateOne) SetNillableTimeWeight(v *float64) *EvaluationConfigUpdateOne {
	if v != nil {
		_u.SetTimeWeight(*v)
	}
	return _u
}

// AddTimeWeight adds value to the "time_weight" field.
func (_u *EvaluationConfigUpdateOne) AddTimeWeight(v float64) *EvaluationConfigUpdateOne {
	_u.mutation.AddTimeWeight(v)
	return _u
}

// SetGraderIds sets the "grader_ids" field.
func (_u *EvaluationConfigUpdateOne) SetGraderIds(v []string) *EvaluationConfigUpdateOne {
	_u.mutation.SetGraderIds(v)
	return _u
}

// AppendGraderIds appends value to the "grader_ids" field.
func (_u *EvaluationConfigUpdateOne) AppendGraderIds(v []string) *EvaluationConfigUpdateOne {
	_u.mutation.AppendGraderIds(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EvaluationConfigUpdateOne) SetUpdatedAt(v time.Time) *EvaluationConfigUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the EvaluationConfigMutation object of the builder.
func (_u *EvaluationConfigUpdateOne) Mutation() *EvaluationConfigMutation {
	return _u.mutation
}

// Where appends a list predicates to the EvaluationConfigUpdate builder.
func (_u *EvaluationConfigUpdateOne) Where(ps ...predicate.EvaluationConfig) *EvaluationConfigUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EvaluationConfigUpdateOne) Select(field string, fields ...string) *EvaluationConfigUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EvaluationConfig entity.
func (_u *EvaluationConfigUpdateOne) Save(ctx context.Context) (*EvaluationConfig, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvaluationConfigUpdateOne) SaveX(ctx context.Context) *EvaluationConfig {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EvaluationConfigUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvaluationConfigUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EvaluationConfigUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := evaluationconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvaluationConfigUpdateOne) check() error {
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EvaluationConfig.task"`)
	}
	return nil
}

func (_u *EvaluationConfigUpdateOne) sqlSave(ctx context.Context) (_node *EvaluationConfig, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evaluationconfig.Table, evaluationconfig.Columns, sqlgraph.NewFieldSpec(evaluationconfig.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EvaluationConfig.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, evaluationconfig.FieldID)
		for _, f := range fields {
			if !evaluationconfig.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != evaluationconfig.FieldID {
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
	if value, ok := _u.mutation.QualityWeight(); ok {
		_spec.SetField(evaluationconfig.FieldQualityWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQualityWeight(); ok {
		_spec.AddField(evaluationconfig.FieldQualityWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CostWeight(); ok {
		_spec.SetField(evaluationconfig.FieldCostWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostWeight(); ok {
		_spec.AddField(evaluationconfig.FieldCostWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TimeWeight(); ok {
		_spec.SetField(evaluationconfig.FieldTimeWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTimeWeight(); ok {
		_spec.AddField(evaluationconfig.FieldTimeWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.GraderIds(); ok {
		_spec.SetField(evaluationconfig.FieldGraderIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGraderIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evaluationconfig.FieldGraderIds, value)
		})
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(evaluationconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &EvaluationConfig{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evaluationconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
