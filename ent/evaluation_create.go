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
)

// EvaluationCreate is the builder for creating a Evaluation entity.
type EvaluationCreate struct {
	config
	mutation *EvaluationMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (_c *EvaluationCreate) SetTaskID(v string) *EvaluationCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetImplementationID sets the "implementation_id" field.
func (_c *EvaluationCreate) SetImplementationID(v string) *EvaluationCreate {
	_c.mutation.SetImplementationID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *EvaluationCreate) SetStatus(v evaluation.Status) *EvaluationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *EvaluationCreate) SetNillableStatus(v *evaluation.Status) *EvaluationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetGraderScores sets the "grader_scores" field.
func (_c *EvaluationCreate) SetGraderScores(v map[string]float64) *EvaluationCreate {
	_c.mutation.SetGraderScores(v)
	return _c
}

// SetQualityScore sets the "quality_score" field.
func (_c *EvaluationCreate) SetQualityScore(v float64) *EvaluationCreate {
	_c.mutation.SetQualityScore(v)
	return _c
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (_c *EvaluationCreate) SetNillableQualityScore(v *float64) *EvaluationCreate {
	if v != nil {
		_c.SetQualityScore(*v)
	}
	return _c
}

// SetAvgCost sets the "avg_cost" field.
func (_c *EvaluationCreate) SetAvgCost(v float64) *EvaluationCreate {
	_c.mutation.SetAvgCost(v)
	return _c
}

// SetNillableAvgCost sets the "avg_cost" field if the given value is not nil.
func (_c *EvaluationCreate) SetNillableAvgCost(v *float64) *EvaluationCreate {
	if v != nil {
		_c.SetAvgCost(*v)
	}
	return _c
}

// SetAvgExecutionTimeMs sets the "avg_execution_time_ms" field.
func (_c *EvaluationCreate) SetAvgExecutionTimeMs(v float64) *EvaluationCreate {
	_c.mutation.SetAvgExecutionTimeMs(v)
	return _c
}

// SetNillableAvgExecutionTimeMs sets the "avg_execution_time_ms" field if the given value is not nil.
func (_c *EvaluationCreate) SetNillableAvgExecutionTimeMs(v *float64) *EvaluationCreate {
	if v != nil {
		_c.SetAvgExecutionTimeMs(*v)
	}
	return _c
}

// SetTestCaseCount sets the "test_case_count" field.
func (_c *EvaluationCreate) SetTestCaseCount(v int) *EvaluationCreate {
	_c.mutation.SetTestCaseCount(v)
	return _c
}

// SetNillableTestCaseCount sets the "test_case_count" field if the given value is not nil.
func (_c *EvaluationCreate) SetNillableTestCaseCount(v *int) *EvaluationCreate {
	if v != nil {
		_c.SetTestCaseCount(*v)
	}
	return _c
}

// SetError sets the "error" field.
func (_c *EvaluationCreate) SetError(v string) *EvaluationCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *EvaluationCreate) SetNillableError(v *string) *EvaluationCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *EvaluationCreate) SetStartedAt(v time.Time) *EvaluationCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *EvaluationCreate) SetNillableStartedAt(v *time.Time) *EvaluationCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *EvaluationCreate) SetCompletedAt(v time.Time) *EvaluationCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *EvaluationCreate) SetNillableCompletedAt(v *time.Time) *EvaluationCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EvaluationCreate) SetID(v string) *EvaluationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTask sets the "task" edge to the Task entity.
func (_c *EvaluationCreate) SetTask(v *Task) *EvaluationCreate {
	return _c.SetTaskID(v.ID)
}

// SetImplementation sets the "implementation" edge to the Implementation entity.
func (_c *EvaluationCreate) SetImplementation(v *Implementation) *EvaluationCreate {
	return _c.SetImplementationID(v.ID)
}

// AddExecutionResultIDs adds the "execution_results" edge to the ExecutionResult entity by IDs.
func (_c *EvaluationCreate) AddExecutionResultIDs(ids ...string) *EvaluationCreate {
	_c.mutation.AddExecutionResultIDs(ids...)
	return _c
}

// AddExecutionResults adds the "execution_results" edges to the ExecutionResult entity.
func (_c *EvaluationCreate) AddExecutionResults(v ...*ExecutionResult) *EvaluationCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddExecutionResultIDs(ids...)
}

// Mutation returns the EvaluationMutation object of the builder.
func (_c *EvaluationCreate) Mutation() *EvaluationMutation {
	return _c.mutation
}

// Save creates the Evaluation in the database.
func (_c *EvaluationCreate) Save(ctx context.Context) (*Evaluation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EvaluationCreate) SaveX(ctx context.Context) *Evaluation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvaluationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvaluationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EvaluationCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := evaluation.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.TestCaseCount(); !ok {
		v := evaluation.DefaultTestCaseCount
		_c.mutation.SetTestCaseCount(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := evaluation.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EvaluationCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "Evaluation.task_id"`)}
	}
	if _, ok := _c.mutation.ImplementationID(); !ok {
		return &ValidationError{Name: "implementation_id", err: errors.New(`ent: missing required field "Evaluation.implementation_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Evaluation.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := evaluation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Evaluation.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TestCaseCount(); !ok {
		return &ValidationError{Name: "test_case_count", err: errors.New(`ent: missing required field "Evaluation.test_case_count"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "Evaluation.started_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "Evaluation.task"`)}
	}
	if len(_c.mutation.ImplementationIDs()) == 0 {
		return &ValidationError{Name: "implementation", err: errors.New(`ent: missing required edge "Evaluation.implementation"`)}
	}
	return nil
}

func (_c *EvaluationCreate) sqlSave(ctx context.Context) (*Evaluation, error) {
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
			return nil, fmt.Errorf("unexpected Evaluation.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EvaluationCreate) createSpec() (*Evaluation, *sqlgraph.CreateSpec) {
	var (
		_node = &Evaluation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(evaluation.Table, sqlgraph.NewFieldSpec(evaluation.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(evaluation.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.GraderScores(); ok {
		_spec.SetField(evaluation.FieldGraderScores, field.TypeJSON, value)
		_node.GraderScores = value
	}
	if value, ok := _c.mutation.QualityScore(); ok {
		_spec.SetField(evaluation.FieldQualityScore, field.TypeFloat64, value)
		_node.QualityScore = &value
	}
	if value, ok := _c.mutation.AvgCost(); ok {
		_spec.SetField(evaluation.FieldAvgCost, field.TypeFloat64, value)
		_node.AvgCost = &value
	}
	if value, ok := _c.mutation.AvgExecutionTimeMs(); ok {
		_spec.SetField(evaluation.FieldAvgExecutionTimeMs, field.TypeFloat64, value)
		_node.AvgExecutionTimeMs = &value
	}
	if value, ok := _c.mutation.TestCaseCount(); ok {
		_spec.SetField(evaluation.FieldTestCaseCount, field.TypeInt, value)
		_node.TestCaseCount = value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(evaluation.FieldError, field.TypeString, value)
		_node.Error = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(evaluation.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(evaluation.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   evaluation.TaskTable,
			Columns: []string{evaluation.TaskColumn},
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
	if nodes := _c.mutation.ImplementationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   evaluation.ImplementationTable,
			Columns: []string{evaluation.ImplementationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(implementation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ImplementationID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ExecutionResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   evaluation.ExecutionResultsTable,
			Columns: []string{evaluation.ExecutionResultsColumn},
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
	return _node, _spec
}

// EvaluationCreateBulk is the builder for creating many Evaluation entities in bulk.
type EvaluationCreateBulk struct {
	config
	err      error
	builders []*EvaluationCreate
}

// Save creates the Evaluation entities in the database.
func (_c *EvaluationCreateBulk) Save(ctx context.Context) ([]*Evaluation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Evaluation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EvaluationMutation)
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
func (_c *EvaluationCreateBulk) SaveX(ctx context.Context) []*Evaluation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvaluationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvaluationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
