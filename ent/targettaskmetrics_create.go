// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/promptlens/promptlens/ent/targettaskmetrics"
	"github.com/promptlens/promptlens/ent/task"
)

// TargetTaskMetricsCreate is the builder for creating a TargetTaskMetrics entity.
type TargetTaskMetricsCreate struct {
	config
	mutation *TargetTaskMetricsMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (_c *TargetTaskMetricsCreate) SetTaskID(v string) *TargetTaskMetricsCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetBestCost sets the "best_cost" field.
func (_c *TargetTaskMetricsCreate) SetBestCost(v float64) *TargetTaskMetricsCreate {
	_c.mutation.SetBestCost(v)
	return _c
}

// SetNillableBestCost sets the "best_cost" field if the given value is not nil.
func (_c *TargetTaskMetricsCreate) SetNillableBestCost(v *float64) *TargetTaskMetricsCreate {
	if v != nil {
		_c.SetBestCost(*v)
	}
	return _c
}

// SetBestTimeMs sets the "best_time_ms" field.
func (_c *TargetTaskMetricsCreate) SetBestTimeMs(v float64) *TargetTaskMetricsCreate {
	_c.mutation.SetBestTimeMs(v)
	return _c
}

// SetNillableBestTimeMs sets the "best_time_ms" field if the given value is not nil.
func (_c *TargetTaskMetricsCreate) SetNillableBestTimeMs(v *float64) *TargetTaskMetricsCreate {
	if v != nil {
		_c.SetBestTimeMs(*v)
	}
	return _c
}

// SetLastUpdatedAt sets the "last_updated_at" field.
func (_c *TargetTaskMetricsCreate) SetLastUpdatedAt(v time.Time) *TargetTaskMetricsCreate {
	_c.mutation.SetLastUpdatedAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *TargetTaskMetricsCreate) SetID(v string) *TargetTaskMetricsCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTask sets the "task" edge to the Task entity.
func (_c *TargetTaskMetricsCreate) SetTask(v *Task) *TargetTaskMetricsCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the TargetTaskMetricsMutation object of the builder.
func (_c *TargetTaskMetricsCreate) Mutation() *TargetTaskMetricsMutation {
	return _c.mutation
}

// Save creates the TargetTaskMetrics in the database.
func (_c *TargetTaskMetricsCreate) Save(ctx context.Context) (*TargetTaskMetrics, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TargetTaskMetricsCreate) SaveX(ctx context.Context) *TargetTaskMetrics {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TargetTaskMetricsCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TargetTaskMetricsCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TargetTaskMetricsCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "TargetTaskMetrics.task_id"`)}
	}
	if _, ok := _c.mutation.LastUpdatedAt(); !ok {
		return &ValidationError{Name: "last_updated_at", err: errors.New(`ent: missing required field "TargetTaskMetrics.last_updated_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "TargetTaskMetrics.task"`)}
	}
	return nil
}

func (_c *TargetTaskMetricsCreate) sqlSave(ctx context.Context) (*TargetTaskMetrics, error) {
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
			return nil, fmt.Errorf("unexpected TargetTaskMetrics.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TargetTaskMetricsCreate) createSpec() (*TargetTaskMetrics, *sqlgraph.CreateSpec) {
	var (
		_node = &TargetTaskMetrics{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(targettaskmetrics.Table, sqlgraph.NewFieldSpec(targettaskmetrics.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.BestCost(); ok {
		_spec.SetField(targettaskmetrics.FieldBestCost, field.TypeFloat64, value)
		_node.BestCost = &value
	}
	if value, ok := _c.mutation.BestTimeMs(); ok {
		_spec.SetField(targettaskmetrics.FieldBestTimeMs, field.TypeFloat64, value)
		_node.BestTimeMs = &value
	}
	if value, ok := _c.mutation.LastUpdatedAt(); ok {
		_spec.SetField(targettaskmetrics.FieldLastUpdatedAt, field.TypeTime, value)
		_node.LastUpdatedAt = value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   targettaskmetrics.TaskTable,
			Columns: []string{targettaskmetrics.TaskColumn},
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

// TargetTaskMetricsCreateBulk is the builder for creating many TargetTaskMetrics entities in bulk.
type TargetTaskMetricsCreateBulk struct {
	config
	err      error
	builders []*TargetTaskMetricsCreate
}

// Save creates the TargetTaskMetrics entities in the database.
func (_c *TargetTaskMetricsCreateBulk) Save(ctx context.Context) ([]*TargetTaskMetrics, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TargetTaskMetrics, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TargetTaskMetricsMutation)
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
func (_c *TargetTaskMetricsCreateBulk) SaveX(ctx context.Context) []*TargetTaskMetrics {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TargetTaskMetricsCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TargetTaskMetricsCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
