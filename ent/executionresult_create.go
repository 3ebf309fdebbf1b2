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
	"github.com/promptlens/promptlens/ent/grade"
	"github.com/promptlens/promptlens/ent/implementation"
	"github.com/promptlens/promptlens/ent/task"
	"github.com/promptlens/promptlens/ent/testcase"
	"github.com/promptlens/promptlens/pkg/models"
)

// ExecutionResultCreate is the builder for creating a ExecutionResult entity.
type ExecutionResultCreate struct {
	config
	mutation *ExecutionResultMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (_c *ExecutionResultCreate) SetTaskID(v string) *ExecutionResultCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetImplementationID sets the "implementation_id" field.
func (_c *ExecutionResultCreate) SetImplementationID(v string) *ExecutionResultCreate {
	_c.mutation.SetImplementationID(v)
	return _c
}

// SetEvaluationID sets the "evaluation_id" field.
func (_c *ExecutionResultCreate) SetEvaluationID(v string) *ExecutionResultCreate {
	_c.mutation.SetEvaluationID(v)
	return _c
}

// SetNillableEvaluationID sets the "evaluation_id" field if the given value is not nil.
func (_c *ExecutionResultCreate) SetNillableEvaluationID(v *string) *ExecutionResultCreate {
	if v != nil {
		_c.SetEvaluationID(*v)
	}
	return _c
}

// SetTestCaseID sets the "test_case_id" field.
func (_c *ExecutionResultCreate) SetTestCaseID(v string) *ExecutionResultCreate {
	_c.mutation.SetTestCaseID(v)
	return _c
}

// SetNillableTestCaseID sets the "test_case_id" field if the given value is not nil.
func (_c *ExecutionResultCreate) SetNillableTestCaseID(v *string) *ExecutionResultCreate {
	if v != nil {
		_c.SetTestCaseID(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ExecutionResultCreate) SetStartedAt(v time.Time) *ExecutionResultCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ExecutionResultCreate) SetCompletedAt(v time.Time) *ExecutionResultCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetPromptRendered sets the "prompt_rendered" field.
func (_c *ExecutionResultCreate) SetPromptRendered(v string) *ExecutionResultCreate {
	_c.mutation.SetPromptRendered(v)
	return _c
}

// SetVariables sets the "variables" field.
func (_c *ExecutionResultCreate) SetVariables(v map[string]string) *ExecutionResultCreate {
	_c.mutation.SetVariables(v)
	return _c
}

// SetResultText sets the "result_text" field.
func (_c *ExecutionResultCreate) SetResultText(v string) *ExecutionResultCreate {
	_c.mutation.SetResultText(v)
	return _c
}

// SetNillableResultText sets the "result_text" field if the given value is not nil.
func (_c *ExecutionResultCreate) SetNillableResultText(v *string) *ExecutionResultCreate {
	if v != nil {
		_c.SetResultText(*v)
	}
	return _c
}

// SetResultJSON sets the "result_json" field.
func (_c *ExecutionResultCreate) SetResultJSON(v map[string]interface{}) *ExecutionResultCreate {
	_c.mutation.SetResultJSON(v)
	return _c
}

// SetToolCalls sets the "tool_calls" field.
func (_c *ExecutionResultCreate) SetToolCalls(v []models.ToolCall) *ExecutionResultCreate {
	_c.mutation.SetToolCalls(v)
	return _c
}

// SetError sets the "error" field.
func (_c *ExecutionResultCreate) SetError(v string) *ExecutionResultCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *ExecutionResultCreate) SetNillableError(v *string) *ExecutionResultCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_c *ExecutionResultCreate) SetPromptTokens(v int) *ExecutionResultCreate {
	_c.mutation.SetPromptTokens(v)
	return _c
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_c *ExecutionResultCreate) SetNillablePromptTokens(v *int) *ExecutionResultCreate {
	if v != nil {
		_c.SetPromptTokens(*v)
	}
	return _c
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_c *ExecutionResultCreate) SetCompletionTokens(v int) *ExecutionResultCreate {
	_c.mutation.SetCompletionTokens(v)
	return _c
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_c *ExecutionResultCreate) SetNillableCompletionTokens(v *int) *ExecutionResultCreate {
	if v != nil {
		_c.SetCompletionTokens(*v)
	}
	return _c
}

// SetCachedTokens sets the "cached_tokens" field.
func (_c *ExecutionResultCreate) SetCachedTokens(v int) *ExecutionResultCreate {
	_c.mutation.SetCachedTokens(v)
	return _c
}

// SetNillableCachedTokens sets the "cached_tokens" field if the given value is not nil.
func (_c *ExecutionResultCreate) SetNillableCachedTokens(v *int) *ExecutionResultCreate {
	if v != nil {
		_c.SetCachedTokens(*v)
	}
	return _c
}

// SetReasoningTokens sets the "reasoning_tokens" field.
func (_c *ExecutionResultCreate) SetReasoningTokens(v int) *ExecutionResultCreate {
	_c.mutation.SetReasoningTokens(v)
	return _c
}

// SetNillableReasoningTokens sets the "reasoning_tokens" field if the given value is not nil.
func (_c *ExecutionResultCreate) SetNillableReasoningTokens(v *int) *ExecutionResultCreate {
	if v != nil {
		_c.SetReasoningTokens(*v)
	}
	return _c
}

// SetTotalTokens sets the "total_tokens" field.
func (_c *ExecutionResultCreate) SetTotalTokens(v int) *ExecutionResultCreate {
	_c.mutation.SetTotalTokens(v)
	return _c
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_c *ExecutionResultCreate) SetNillableTotalTokens(v *int) *ExecutionResultCreate {
	if v != nil {
		_c.SetTotalTokens(*v)
	}
	return _c
}

// SetSystemFingerprint sets the "system_fingerprint" field.
func (_c *ExecutionResultCreate) SetSystemFingerprint(v string) *ExecutionResultCreate {
	_c.mutation.SetSystemFingerprint(v)
	return _c
}

// SetNillableSystemFingerprint sets the "system_fingerprint" field if the given value is not nil.
func (_c *ExecutionResultCreate) SetNillableSystemFingerprint(v *string) *ExecutionResultCreate {
	if v != nil {
		_c.SetSystemFingerprint(*v)
	}
	return _c
}

// SetCost sets the "cost" field.
func (_c *ExecutionResultCreate) SetCost(v float64) *ExecutionResultCreate {
	_c.mutation.SetCost(v)
	return _c
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_c *ExecutionResultCreate) SetNillableCost(v *float64) *ExecutionResultCreate {
	if v != nil {
		_c.SetCost(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExecutionResultCreate) SetCreatedAt(v time.Time) *ExecutionResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExecutionResultCreate) SetNillableCreatedAt(v *time.Time) *ExecutionResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExecutionResultCreate) SetID(v string) *ExecutionResultCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTask sets the "task" edge to the Task entity.
func (_c *ExecutionResultCreate) SetTask(v *Task) *ExecutionResultCreate {
	return _c.SetTaskID(v.ID)
}

// SetImplementation sets the "implementation" edge to the Implementation entity.
func (_c *ExecutionResultCreate) SetImplementation(v *Implementation) *ExecutionResultCreate {
	return _c.SetImplementationID(v.ID)
}

// SetEvaluation sets the "evaluation" edge to the Evaluation entity.
func (_c *ExecutionResultCreate) SetEvaluation(v *Evaluation) *ExecutionResultCreate {
	return _c.SetEvaluationID(v.ID)
}

// SetTestCase sets the "test_case" edge to the TestCase entity.
func (_c *ExecutionResultCreate) SetTestCase(v *TestCase) *ExecutionResultCreate {
	return _c.SetTestCaseID(v.ID)
}

// AddGradeIDs adds the "grades" edge to the Grade entity by IDs.
func (_c *ExecutionResultCreate) AddGradeIDs(ids ...string) *ExecutionResultCreate {
	_c.mutation.AddGradeIDs(ids...)
	return _c
}

// AddGrades adds the "grades" edges to the Grade entity.
func (_c *ExecutionResultCreate) AddGrades(v ...*Grade) *ExecutionResultCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddGradeIDs(ids...)
}

// Mutation returns the ExecutionResultMutation object of the builder.
func (_c *ExecutionResultCreate) Mutation() *ExecutionResultMutation {
	return _c.mutation
}

// Save creates the ExecutionResult in the database.
func (_c *ExecutionResultCreate) Save(ctx context.Context) (*ExecutionResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExecutionResultCreate) SaveX(ctx context.Context) *ExecutionResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExecutionResultCreate) defaults() {
	if _, ok := _c.mutation.PromptTokens(); !ok {
		v := executionresult.DefaultPromptTokens
		_c.mutation.SetPromptTokens(v)
	}
	if _, ok := _c.mutation.CompletionTokens(); !ok {
		v := executionresult.DefaultCompletionTokens
		_c.mutation.SetCompletionTokens(v)
	}
	if _, ok := _c.mutation.CachedTokens(); !ok {
		v := executionresult.DefaultCachedTokens
		_c.mutation.SetCachedTokens(v)
	}
	if _, ok := _c.mutation.ReasoningTokens(); !ok {
		v := executionresult.DefaultReasoningTokens
		_c.mutation.SetReasoningTokens(v)
	}
	if _, ok := _c.mutation.TotalTokens(); !ok {
		v := executionresult.DefaultTotalTokens
		_c.mutation.SetTotalTokens(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := executionresult.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExecutionResultCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "ExecutionResult.task_id"`)}
	}
	if _, ok := _c.mutation.ImplementationID(); !ok {
		return &ValidationError{Name: "implementation_id", err: errors.New(`ent: missing required field "ExecutionResult.implementation_id"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "ExecutionResult.started_at"`)}
	}
	if _, ok := _c.mutation.CompletedAt(); !ok {
		return &ValidationError{Name: "completed_at", err: errors.New(`ent: missing required field "ExecutionResult.completed_at"`)}
	}
	if _, ok := _c.mutation.PromptRendered(); !ok {
		return &ValidationError{Name: "prompt_rendered", err: errors.New(`ent: missing required field "ExecutionResult.prompt_rendered"`)}
	}
	if _, ok := _c.mutation.PromptTokens(); !ok {
		return &ValidationError{Name: "prompt_tokens", err: errors.New(`ent: missing required field "ExecutionResult.prompt_tokens"`)}
	}
	if _, ok := _c.mutation.CompletionTokens(); !ok {
		return &ValidationError{Name: "completion_tokens", err: errors.New(`ent: missing required field "ExecutionResult.completion_tokens"`)}
	}
	if _, ok := _c.mutation.CachedTokens(); !ok {
		return &ValidationError{Name: "cached_tokens", err: errors.New(`ent: missing required field "ExecutionResult.cached_tokens"`)}
	}
	if _, ok := _c.mutation.ReasoningTokens(); !ok {
		return &ValidationError{Name: "reasoning_tokens", err: errors.New(`ent: missing required field "ExecutionResult.reasoning_tokens"`)}
	}
	if _, ok := _c.mutation.TotalTokens(); !ok {
		return &ValidationError{Name: "total_tokens", err: errors.New(`ent: missing required field "ExecutionResult.total_tokens"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExecutionResult.created_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "ExecutionResult.task"`)}
	}
	if len(_c.mutation.ImplementationIDs()) == 0 {
		return &ValidationError{Name: "implementation", err: errors.New(`ent: missing required edge "ExecutionResult.implementation"`)}
	}
	return nil
}

func (_c *ExecutionResultCreate) sqlSave(ctx context.Context) (*ExecutionResult, error) {
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
			return nil, fmt.Errorf("unexpected ExecutionResult.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExecutionResultCreate) createSpec() (*ExecutionResult, *sqlgraph.CreateSpec) {
	var (
		_node = &ExecutionResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(executionresult.Table, sqlgraph.NewFieldSpec(executionresult.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(executionresult.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(executionresult.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = value
	}
	if value, ok := _c.mutation.PromptRendered(); ok {
		_spec.SetField(executionresult.FieldPromptRendered, field.TypeString, value)
		_node.PromptRendered = value
	}
	if value, ok := _c.mutation.Variables(); ok {
		_spec.SetField(executionresult.FieldVariables, field.TypeJSON, value)
		_node.Variables = value
	}
	if value, ok := _c.mutation.ResultText(); ok {
		_spec.SetField(executionresult.FieldResultText, field.TypeString, value)
		_node.ResultText = &value
	}
	if value, ok := _c.mutation.ResultJSON(); ok {
		_spec.SetField(executionresult.FieldResultJSON, field.TypeJSON, value)
		_node.ResultJSON = value
	}
	if value, ok := _c.mutation.ToolCalls(); ok {
		_spec.SetField(executionresult.FieldToolCalls, field.TypeJSON, value)
		_node.ToolCalls = value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(executionresult.FieldError, field.TypeString, value)
		_node.Error = &value
	}
	if value, ok := _c.mutation.PromptTokens(); ok {
		_spec.SetField(executionresult.FieldPromptTokens, field.TypeInt, value)
		_node.PromptTokens = value
	}
	if value, ok := _c.mutation.CompletionTokens(); ok {
		_spec.SetField(executionresult.FieldCompletionTokens, field.TypeInt, value)
		_node.CompletionTokens = value
	}
	if value, ok := _c.mutation.CachedTokens(); ok {
		_spec.SetField(executionresult.FieldCachedTokens, field.TypeInt, value)
		_node.CachedTokens = value
	}
	if value, ok := _c.mutation.ReasoningTokens(); ok {
		_spec.SetField(executionresult.FieldReasoningTokens, field.TypeInt, value)
		_node.ReasoningTokens = value
	}
	if value, ok := _c.mutation.TotalTokens(); ok {
		_spec.SetField(executionresult.FieldTotalTokens, field.TypeInt, value)
		_node.TotalTokens = value
	}
	if value, ok := _c.mutation.SystemFingerprint(); ok {
		_spec.SetField(executionresult.FieldSystemFingerprint, field.TypeString, value)
		_node.SystemFingerprint = &value
	}
	if value, ok := _c.mutation.Cost(); ok {
		_spec.SetField(executionresult.FieldCost, field.TypeFloat64, value)
		_node.Cost = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(executionresult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   executionresult.TaskTable,
			Columns: []string{executionresult.TaskColumn},
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
			Table:   executionresult.ImplementationTable,
			Columns: []string{executionresult.ImplementationColumn},
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
	if nodes := _c.mutation.EvaluationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   executionresult.EvaluationTable,
			Columns: []string{executionresult.EvaluationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.EvaluationID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TestCaseIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   executionresult.TestCaseTable,
			Columns: []string{executionresult.TestCaseColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(testcase.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TestCaseID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.GradesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   executionresult.GradesTable,
			Columns: []string{executionresult.GradesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(grade.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExecutionResultCreateBulk is the builder for creating many ExecutionResult entities in bulk.
type ExecutionResultCreateBulk struct {
	config
	err      error
	builders []*ExecutionResultCreate
}

// Save creates the ExecutionResult entities in the database.
func (_c *ExecutionResultCreateBulk) Save(ctx context.Context) ([]*ExecutionResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExecutionResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExecutionResultMutation)
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
func (_c *ExecutionResultCreateBulk) SaveX(ctx context.Context) []*ExecutionResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
