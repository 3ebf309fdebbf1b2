// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/promptlens/promptlens/ent/executionresult"
	"github.com/promptlens/promptlens/ent/grade"
	"github.com/promptlens/promptlens/ent/grader"
	"github.com/promptlens/promptlens/ent/trace"
)

// GradeCreate is the builder for creating a Grade entity.
type GradeCreate struct {
	config
	mutation *GradeMutation
	hooks    []Hook
}

// SetGraderID sets the "grader_id" field.
func (_c *GradeCreate) SetGraderID(v string) *GradeCreate {
	_c.mutation.SetGraderID(v)
	return _c
}

// SetTraceID sets the "trace_id" field.
func (_c *GradeCreate) SetTraceID(v string) *GradeCreate {
	_c.mutation.SetTraceID(v)
	return _c
}

// SetNillableTraceID sets the "trace_id" field if the given value is not nil.
func (_c *GradeCreate) SetNillableTraceID(v *string) *GradeCreate {
	if v != nil {
		_c.SetTraceID(*v)
	}
	return _c
}

// SetExecutionResultID sets the "execution_result_id" field.
func (_c *GradeCreate) SetExecutionResultID(v string) *GradeCreate {
	_c.mutation.SetExecutionResultID(v)
	return _c
}

// SetNillableExecutionResultID sets the "execution_result_id" field if the given value is not nil.
func (_c *GradeCreate) SetNillableExecutionResultID(v *string) *GradeCreate {
	if v != nil {
		_c.SetExecutionResultID(*v)
	}
	return _c
}

// SetScoreFloat sets the "score_float" field.
func (_c *GradeCreate) SetScoreFloat(v float64) *GradeCreate {
	_c.mutation.SetScoreFloat(v)
	return _c
}

// SetNillableScoreFloat sets the "score_float" field if the given value is not nil.
func (_c *GradeCreate) SetNillableScoreFloat(v *float64) *GradeCreate {
	if v != nil {
		_c.SetScoreFloat(*v)
	}
	return _c
}

// SetScoreBoolean sets the "score_boolean" field.
func (_c *GradeCreate) SetScoreBoolean(v bool) *GradeCreate {
	_c.mutation.SetScoreBoolean(v)
	return _c
}

// SetNillableScoreBoolean sets the "score_boolean" field if the given value is not nil.
func (_c *GradeCreate) SetNillableScoreBoolean(v *bool) *GradeCreate {
	if v != nil {
		_c.SetScoreBoolean(*v)
	}
	return _c
}

// SetReasoning sets the "reasoning" field.
func (_c *GradeCreate) SetReasoning(v string) *GradeCreate {
	_c.mutation.SetReasoning(v)
	return _c
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_c *GradeCreate) SetNillableReasoning(v *string) *GradeCreate {
	if v != nil {
		_c.SetReasoning(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *GradeCreate) SetConfidence(v float64) *GradeCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *GradeCreate) SetNillableConfidence(v *float64) *GradeCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_c *GradeCreate) SetPromptTokens(v int) *GradeCreate {
	_c.mutation.SetPromptTokens(v)
	return _c
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_c *GradeCreate) SetNillablePromptTokens(v *int) *GradeCreate {
	if v != nil {
		_c.SetPromptTokens(*v)
	}
	return _c
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_c *GradeCreate) SetCompletionTokens(v int) *GradeCreate {
	_c.mutation.SetCompletionTokens(v)
	return _c
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_c *GradeCreate) SetNillableCompletionTokens(v *int) *GradeCreate {
	if v != nil {
		_c.SetCompletionTokens(*v)
	}
	return _c
}

// SetTotalTokens sets the "total_tokens" field.
func (_c *GradeCreate) SetTotalTokens(v int) *GradeCreate {
	_c.mutation.SetTotalTokens(v)
	return _c
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_c *GradeCreate) SetNillableTotalTokens(v *int) *GradeCreate {
	if v != nil {
		_c.SetTotalTokens(*v)
	}
	return _c
}

// SetGradingStartedAt sets the "grading_started_at" field.
func (_c *GradeCreate) SetGradingStartedAt(v time.Time) *GradeCreate {
	_c.mutation.SetGradingStartedAt(v)
	return _c
}

// SetGradingCompletedAt sets the "grading_completed_at" field.
func (_c *GradeCreate) SetGradingCompletedAt(v time.Time) *GradeCreate {
	_c.mutation.SetGradingCompletedAt(v)
	return _c
}

// SetError sets the "error" field.
func (_c *GradeCreate) SetError(v string) *GradeCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *GradeCreate) SetNillableError(v *string) *GradeCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GradeCreate) SetID(v string) *GradeCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetGrader sets the "grader" edge to the Grader entity.
func (_c *GradeCreate) SetGrader(v *Grader) *GradeCreate {
	return _c.SetGraderID(v.ID)
}

// SetTrace sets the "trace" edge to the Trace entity.
func (_c *GradeCreate) SetTrace(v *Trace) *GradeCreate {
	return _c.SetTraceID(v.ID)
}

// SetExecutionResult sets the "execution_result" edge to the ExecutionResult entity.
func (_c *GradeCreate) SetExecutionResult(v *ExecutionResult) *GradeCreate {
	return _c.SetExecutionResultID(v.ID)
}

// Mutation returns the GradeMutation object of the builder.
func (_c *GradeCreate) Mutation() *GradeMutation {
	return _c.mutation
}

// Save creates the Grade in the database.
func (_c *GradeCreate) Save(ctx context.Context) (*Grade, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GradeCreate) SaveX(ctx context.Context) *Grade {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GradeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GradeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GradeCreate) check() error {
	if _, ok := _c.mutation.GraderID(); !ok {
		return &ValidationError{Name: "grader_id", err: errors.New(`ent: missing required field "Grade.grader_id"`)}
	}
	if _, ok := _c.mutation.GradingStartedAt(); !ok {
		return &ValidationError{Name: "grading_started_at", err: errors.New(`ent: missing required field "Grade.grading_started_at"`)}
	}
	if _, ok := _c.mutation.GradingCompletedAt(); !ok {
		return &ValidationError{Name: "grading_completed_at", err: errors.New(`ent: missing required field "Grade.grading_completed_at"`)}
	}
	if len(_c.mutation.GraderIDs()) == 0 {
		return &ValidationError{Name: "grader", err: errors.New(`ent: missing required edge "Grade.grader"`)}
	}
	return nil
}

func (_c *GradeCreate) sqlSave(ctx context.Context) (*Grade, error) {
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
			return nil, fmt.Errorf("unexpected Grade.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GradeCreate) createSpec() (*Grade, *sqlgraph.CreateSpec) {
	var (
		_node = &Grade{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(grade.Table, sqlgraph.NewFieldSpec(grade.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ScoreFloat(); ok {
		_spec.SetField(grade.FieldScoreFloat, field.TypeFloat64, value)
		_node.ScoreFloat = &value
	}
	if value, ok := _c.mutation.ScoreBoolean(); ok {
		_spec.SetField(grade.FieldScoreBoolean, field.TypeBool, value)
		_node.ScoreBoolean = &value
	}
	if value, ok := _c.mutation.Reasoning(); ok {
		_spec.SetField(grade.FieldReasoning, field.TypeString, value)
		_node.Reasoning = &value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(grade.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = &value
	}
	if value, ok := _c.mutation.PromptTokens(); ok {
		_spec.SetField(grade.FieldPromptTokens, field.TypeInt, value)
		_node.PromptTokens = &value
	}
	if value, ok := _c.mutation.CompletionTokens(); ok {
		_spec.SetField(grade.FieldCompletionTokens, field.TypeInt, value)
		_node.CompletionTokens = &value
	}
	if value, ok := _c.mutation.TotalTokens(); ok {
		_spec.SetField(grade.FieldTotalTokens, field.TypeInt, value)
		_node.TotalTokens = &value
	}
	if value, ok := _c.mutation.GradingStartedAt(); ok {
		_spec.SetField(grade.FieldGradingStartedAt, field.TypeTime, value)
		_node.GradingStartedAt = value
	}
	if value, ok := _c.mutation.GradingCompletedAt(); ok {
		_spec.SetField(grade.FieldGradingCompletedAt, field.TypeTime, value)
		_node.GradingCompletedAt = value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(grade.FieldError, field.TypeString, value)
		_node.Error = &value
	}
	if nodes := _c.mutation.GraderIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   grade.GraderTable,
			Columns: []string{grade.GraderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(grader.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.GraderID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TraceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   grade.TraceTable,
			Columns: []string{grade.TraceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trace.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TraceID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ExecutionResultIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   grade.ExecutionResultTable,
			Columns: []string{grade.ExecutionResultColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionresult.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ExecutionResultID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// GradeCreateBulk is the builder for creating many Grade entities in bulk.
type GradeCreateBulk struct {
	config
	err      error
	builders []*GradeCreate
}

// Save creates the Grade entities in the database.
func (_c *GradeCreateBulk) Save(ctx context.Context) ([]*Grade, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Grade, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GradeMutation)
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
func (_c *GradeCreateBulk) SaveX(ctx context.Context) []*Grade {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GradeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GradeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
