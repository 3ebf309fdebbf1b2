// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/promptlens/promptlens/ent/evaluation"
	"github.com/promptlens/promptlens/ent/executionresult"
	"github.com/promptlens/promptlens/ent/implementation"
	"github.com/promptlens/promptlens/ent/task"
	"github.com/promptlens/promptlens/ent/trace"
	"github.com/promptlens/promptlens/pkg/models"
)

// ImplementationCreate is the builder for creating a Implementation entity.
type ImplementationCreate struct {
	config
	mutation *ImplementationMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (_c *ImplementationCreate) SetTaskID(v string) *ImplementationCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *ImplementationCreate) SetVersion(v string) *ImplementationCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *ImplementationCreate) SetPrompt(v string) *ImplementationCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *ImplementationCreate) SetModel(v string) *ImplementationCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetTemperature sets the "temperature" field.
func (_c *ImplementationCreate) SetTemperature(v float64) *ImplementationCreate {
	_c.mutation.SetTemperature(v)
	return _c
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_c *ImplementationCreate) SetNillableTemperature(v *float64) *ImplementationCreate {
	if v != nil {
		_c.SetTemperature(*v)
	}
	return _c
}

// SetReasoning sets the "reasoning" field.
func (_c *ImplementationCreate) SetReasoning(v map[string]interface{}) *ImplementationCreate {
	_c.mutation.SetReasoning(v)
	return _c
}

// SetTools sets the "tools" field.
func (_c *ImplementationCreate) SetTools(v []models.ToolDefinition) *ImplementationCreate {
	_c.mutation.SetTools(v)
	return _c
}

// SetToolChoice sets the "tool_choice" field.
func (_c *ImplementationCreate) SetToolChoice(v string) *ImplementationCreate {
	_c.mutation.SetToolChoice(v)
	return _c
}

// SetNillableToolChoice sets the "tool_choice" field if the given value is not nil.
func (_c *ImplementationCreate) SetNillableToolChoice(v *string) *ImplementationCreate {
	if v != nil {
		_c.SetToolChoice(*v)
	}
	return _c
}

// SetMaxOutputTokens sets the "max_output_tokens" field.
func (_c *ImplementationCreate) SetMaxOutputTokens(v int) *ImplementationCreate {
	_c.mutation.SetMaxOutputTokens(v)
	return _c
}

// SetResponseSchema sets the "response_schema" field.
func (_c *ImplementationCreate) SetResponseSchema(v map[string]interface{}) *ImplementationCreate {
	_c.mutation.SetResponseSchema(v)
	return _c
}

// SetTemp sets the "temp" field.
func (_c *ImplementationCreate) SetTemp(v bool) *ImplementationCreate {
	_c.mutation.SetTemp(v)
	return _c
}

// SetNillableTemp sets the "temp" field if the given value is not nil.
func (_c *ImplementationCreate) SetNillableTemp(v *bool) *ImplementationCreate {
	if v != nil {
		_c.SetTemp(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ImplementationCreate) SetCreatedAt(v time.Time) *ImplementationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ImplementationCreate) SetNillableCreatedAt(v *time.Time) *ImplementationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ImplementationCreate) SetID(v string) *ImplementationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTask sets the "task" edge to the Task entity.
func (_c *ImplementationCreate) SetTask(v *Task) *ImplementationCreate {
	return _c.SetTaskID(v.ID)
}

// AddTraceIDs adds the "traces" edge to the Trace entity by IDs.
func (_c *ImplementationCreate) AddTraceIDs(ids ...string) *ImplementationCreate {
	_c.mutation.AddTraceIDs(ids...)
	return _c
}

// AddTraces adds the "traces" edges to the Trace entity.
func (_c *ImplementationCreate) AddTraces(v ...*Trace) *ImplementationCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTraceIDs(ids...)
}

// AddExecutionResultIDs adds the "execution_results" edge to the ExecutionResult entity by IDs.
func (_c *ImplementationCreate) AddExecutionResultIDs(ids ...string) *ImplementationCreate {
	_c.mutation.AddExecutionResultIDs(ids...)
	return _c
}

// AddExecutionResults adds the "execution_results" edges to the ExecutionResult entity.
func (_c *ImplementationCreate) AddExecutionResults(v ...*ExecutionResult) *ImplementationCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddExecutionResultIDs(ids...)
}

// AddEvaluationIDs adds the "evaluations" edge to the Evaluation entity by IDs.
func (_c *ImplementationCreate) AddEvaluationIDs(ids ...string) *ImplementationCreate {
	_c.mutation.AddEvaluationIDs(ids...)
	return _c
}

// AddEvaluations adds the "evaluations" edges to the Evaluation entity.
func (_c *ImplementationCreate) AddEvaluations(v ...*Evaluation) *ImplementationCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEvaluationIDs(ids...)
}

// Mutation returns the ImplementationMutation object of the builder.
func (_c *ImplementationCreate) Mutation() *ImplementationMutation {
	return _c.mutation
}

// Save creates the Implementation in the database.
func (_c *ImplementationCreate) Save(ctx context.Context) (*Implementation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ImplementationCreate) SaveX(ctx context.Context) *Implementation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ImplementationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ImplementationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ImplementationCreate) defaults() {
	if _, ok := _c.mutation.Temp(); !ok {
		v := implementation.DefaultTemp
		_c.mutation.SetTemp(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := implementation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ImplementationCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "Implementation.task_id"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "Implementation.version"`)}
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "Implementation.prompt"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "Implementation.model"`)}
	}
	if _, ok := _c.mutation.MaxOutputTokens(); !ok {
		return &ValidationError{Name: "max_output_tokens", err: errors.New(`ent: missing required field "Implementation.max_output_tokens"`)}
	}
	if _, ok := _c.mutation.Temp(); !ok {
		return &ValidationError{Name: "temp", err: errors.New(`ent: missing required field "Implementation.temp"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Implementation.created_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "Implementation.task"`)}
	}
	return nil
}

func (_c *ImplementationCreate) sqlSave(ctx context.Context) (*Implementation, error) {
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
			return nil, fmt.Errorf("unexpected Implementation.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ImplementationCreate) createSpec() (*Implementation, *sqlgraph.CreateSpec) {
	var (
		_node = &Implementation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(implementation.Table, sqlgraph.NewFieldSpec(implementation.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(implementation.FieldVersion, field.TypeString, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(implementation.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(implementation.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.Temperature(); ok {
		_spec.SetField(implementation.FieldTemperature, field.TypeFloat64, value)
		_node.Temperature = &value
	}
	if value, ok := _c.mutation.Reasoning(); ok {
		_spec.SetField(implementation.FieldReasoning, field.TypeJSON, value)
		_node.Reasoning = value
	}
	if value, ok := _c.mutation.Tools(); ok {
		_spec.SetField(implementation.FieldTools, field.TypeJSON, value)
		_node.Tools = value
	}
	if value, ok := _c.mutation.ToolChoice(); ok {
		_spec.SetField(implementation.FieldToolChoice, field.TypeString, value)
		_node.ToolChoice = &value
	}
	if value, ok := _c.mutation.MaxOutputTokens(); ok {
		_spec.SetField(implementation.FieldMaxOutputTokens, field.TypeInt, value)
		_node.MaxOutputTokens = value
	}
	if value, ok := _c.mutation.ResponseSchema(); ok {
		_spec.SetField(implementation.FieldResponseSchema, field.TypeJSON, value)
		_node.ResponseSchema = value
	}
	if value, ok := _c.mutation.Temp(); ok {
		_spec.SetField(implementation.FieldTemp, field.TypeBool, value)
		_node.Temp = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(implementation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   implementation.TaskTable,
			Columns: []string{implementation.TaskColumn},
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
	if nodes := _c.mutation.TracesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   implementation.TracesTable,
			Columns: []string{implementation.TracesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trace.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ExecutionResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   implementation.ExecutionResultsTable,
			Columns: []string{implementation.ExecutionResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionresult.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EvaluationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   implementation.EvaluationsTable,
			Columns: []string{implementation.EvaluationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ImplementationCreateBulk is the builder for creating many Implementation entities in bulk.
type ImplementationCreateBulk struct {
	config
	err      error
	builders []*ImplementationCreate
}

// Save creates the Implementation entities in the database.
func (_c *ImplementationCreateBulk) Save(ctx context.Context) ([]*Implementation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Implementation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ImplementationMutation)
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
func (_c *ImplementationCreateBulk) SaveX(ctx context.Context) []*Implementation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ImplementationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ImplementationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
