// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/promptlens/promptlens/ent/evaluationconfig"
	"github.com/promptlens/promptlens/ent/task"
)

// EvaluationConfigCreate is the builder for creating a EvaluationConfig entity.
type EvaluationConfigCreate struct {
	config
	mutation *EvaluationConfigMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (_c *EvaluationConfigCreate) SetTaskID(v string) *EvaluationConfigCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetQualityWeight sets the "quality_weight" field.
func (_c *EvaluationConfigCreate) SetQualityWeight(v float64) *EvaluationConfigCreate {
	_c.mutation.SetQualityWeight(v)
	return _c
}

// SetCostWeight sets the "cost_weight" field.
func (_c *EvaluationConfigCreate) SetCostWeight(v float64) *EvaluationConfigCreate {
	_c.mutation.SetCostWeight(v)
	return _c
}

// SetTimeWeight sets the "time_weight" field.
func (_c *EvaluationConfigCreate) SetTimeWeight(v float64) *EvaluationConfigCreate {
	_c.mutation.SetTimeWeight(v)
	return _c
}

// SetGraderIds sets the "grader_ids" field.
func (_c *EvaluationConfigCreate) SetGraderIds(v []string) *EvaluationConfigCreate {
	_c.mutation.SetGraderIds(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EvaluationConfigCreate) SetCreatedAt(v time.Time) *EvaluationConfigCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EvaluationConfigCreate) SetNillableCreatedAt(v *time.Time) *EvaluationConfigCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EvaluationConfigCreate) SetUpdatedAt(v time.Time) *EvaluationConfigCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EvaluationConfigCreate) SetNillableUpdatedAt(v *time.Time) *EvaluationConfigCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EvaluationConfigCreate) SetID(v string) *EvaluationConfigCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTask sets the "task" edge to the Task entity.
func (_c *EvaluationConfigCreate) SetTask(v *Task) *EvaluationConfigCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the EvaluationConfigMutation object of the builder.
func (_c *EvaluationConfigCreate) Mutation() *EvaluationConfigMutation {
	return _c.mutation
}

// Save creates the EvaluationConfig in the database.
func (_c *EvaluationConfigCreate) Save(ctx context.Context) (*EvaluationConfig, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EvaluationConfigCreate) SaveX(ctx context.Context) *EvaluationConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvaluationConfigCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvaluationConfigCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EvaluationConfigCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := evaluationconfig.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := evaluationconfig.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EvaluationConfigCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "EvaluationConfig.task_id"`)}
	}
	if _, ok := _c.mutation.QualityWeight(); !ok {
		return &ValidationError{Name: "quality_weight", err: errors.New(`ent: missing required field "EvaluationConfig.quality_weight"`)}
	}
	if _, ok := _c.mutation.CostWeight(); !ok {
		return &ValidationError{Name: "cost_weight", err: errors.New(`ent: missing required field "EvaluationConfig.cost_weight"`)}
	}
	if _, ok := _c.mutation.TimeWeight(); !ok {
		return &ValidationError{Name: "time_weight", err: errors.New(`ent: missing required field "EvaluationConfig.time_weight"`)}
	}
	if _, ok := _c.mutation.GraderIds(); !ok {
		return &ValidationError{Name: "grader_ids", err: errors.New(`ent: missing required field "EvaluationConfig.grader_ids"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EvaluationConfig.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "EvaluationConfig.updated_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "EvaluationConfig.task"`)}
	}
	return nil
}

func (_c *EvaluationConfigCreate) sqlSave(ctx context.Context) (*EvaluationConfig, error) {
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
			return nil, fmt.Errorf("unexpected EvaluationConfig.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EvaluationConfigCreate) createSpec() (*EvaluationConfig, *sqlgraph.CreateSpec) {
	var (
		_node = &EvaluationConfig{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(evaluationconfig.Table, sqlgraph.NewFieldSpec(evaluationconfig.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.QualityWeight(); ok {
		_spec.SetField(evaluationconfig.FieldQualityWeight, field.TypeFloat64, value)
		_node.QualityWeight = value
	}
	if value, ok := _c.mutation.CostWeight(); ok {
		_spec.SetField(evaluationconfig.FieldCostWeight, field.TypeFloat64, value)
		_node.CostWeight = value
	}
	if value, ok := _c.mutation.TimeWeight(); ok {
		_spec.SetField(evaluationconfig.FieldTimeWeight, field.TypeFloat64, value)
		_node.TimeWeight = value
	}
	if value, ok := _c.mutation.GraderIds(); ok {
		_spec.SetField(evaluationconfig.FieldGraderIds, field.TypeJSON, value)
		_node.GraderIds = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(evaluationconfig.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(evaluationconfig.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   evaluationconfig.TaskTable,
			Columns: []string{evaluationconfig.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TaskID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// EvaluationConfigCreateBulk is the builder for creating many EvaluationConfig entities in bulk.
type EvaluationConfigCreateBulk struct {
	config
	err      error
	builders []*EvaluationConfigCreate
}

// Save creates the EvaluationConfig entities in the database.
func (_c *EvaluationConfigCreateBulk) Save(ctx context.Context) ([]*EvaluationConfig, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EvaluationConfig, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EvaluationConfigMutation)
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
func (_c *EvaluationConfigCreateBulk) SaveX(ctx context.Context) []*EvaluationConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvaluationConfigCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvaluationConfigCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
