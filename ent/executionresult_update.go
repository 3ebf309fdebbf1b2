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
	"github.com/promptlens/promptlens/ent/evaluation"
	"github.com/promptlens/promptlens/ent/executionresult"
	"github.com/promptlens/promptlens/ent/grade"
	"github.com/promptlens/promptlens/ent/predicate"
	"github.com/promptlens/promptlens/ent/testcase"
	"github.com/promptlens/promptlens/pkg/models"
)

// ExecutionResultUpdate is the builder for updating ExecutionResult entities.
type ExecutionResultUpdate struct {
	config
	hooks    []Hook
	mutation *ExecutionResultMutation
}

// Where appends a list predicates to the ExecutionResultUpdate builder.
func (_u *ExecutionResultUpdate) Where(ps ...predicate.ExecutionResult) *ExecutionResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEvaluationID sets the "evaluation_id" field.
func (_u *ExecutionResultUpdate) SetEvaluationID(v string) *ExecutionResultUpdate {
	_u.mutation.SetEvaluationID(v)
	return _u
}

// SetNillableEvaluationID sets the "evaluation_id" field if the given value is not nil.
func (_u *ExecutionResultUpdate) SetNillableEvaluationID(v *string) *ExecutionResultUpdate {
	if v != nil {
		_u.SetEvaluationID(*v)
	}
	return _u
}

// ClearEvaluationID clears the value of the "evaluation_id" field.
func (_u *ExecutionResultUpdate) ClearEvaluationID() *ExecutionResultUpdate {
	_u.mutation.ClearEvaluationID()
	return _u
}

// SetTestCaseID sets the "test_case_id" field.
func (_u *ExecutionResultUpdate) SetTestCaseID(v string) *ExecutionResultUpdate {
	_u.mutation.SetTestCaseID(v)
	return _u
}

// SetNillableTestCaseID sets the "test_case_id" field if the given value is not nil.
func (_u *ExecutionResultUpdate) SetNillableTestCaseID(v *string) *ExecutionResultUpdate {
	if v != nil {
		_u.SetTestCaseID(*v)
	}
	return _u
}

// ClearTestCaseID clears the value of the "test_case_id" field.
func (_u *ExecutionResultUpdate) ClearTestCaseID() *ExecutionResultUpdate {
	_u.mutation.ClearTestCaseID()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExecutionResultUpdate) SetStartedAt(v time.Time) *ExecutionResultUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExecutionResultUpdate) SetNillableStartedAt(v *time.Time) *ExecutionResultUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ExecutionResultUpdate) SetCompletedAt(v time.Time) *ExecutionResultUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ExecutionResultUpdate) SetNillableCompletedAt(v *time.Time) *ExecutionResultUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// SetPromptRendered sets the "prompt_rendered" field.
func (_u *ExecutionResultUpdate) SetPromptRendered(v string) *ExecutionResultUpdate {
	_u.mutation.SetPromptRendered(v)
	return _u
}

// SetNillablePromptRendered sets the "prompt_rendered" field if the given value is not nil.
func (_u *ExecutionResultUpdate) SetNillablePromptRendered(v *string) *ExecutionResultUpdate {
	if v != nil {
		_u.SetPromptRendered(*v)
	}
	return _u
}

// SetVariables sets the "variables" field.
func (_u *ExecutionResultUpdate) SetVariables(v map[string]string) *ExecutionResultUpdate {
	_u.mutation.SetVariables(v)
	return _u
}

// ClearVariables clears the value of the "variables" field.
func (_u *ExecutionResultUpdate) ClearVariables() *ExecutionResultUpdate {
	_u.mutation.ClearVariables()
	return _u
}

// SetResultText sets the "result_text" field.
func (_u *ExecutionResultUpdate) SetResultText(v string) *ExecutionResultUpdate {
	_u.mutation.SetResultText(v)
	return _u
}

// SetNillableResultText sets the "result_text" field if the given value is not nil.
func (_u *ExecutionResultUpdate) SetNillableResultText(v *string) *ExecutionResultUpdate {
	if v != nil {
		_u.SetResultText(*v)
	}
	return _u
}

// ClearResultText clears the value of the "result_text" field.
func (_u *ExecutionResultUpdate) ClearResultText() *ExecutionResultUpdate {
	_u.mutation.ClearResultText()
	return _u
}

// SetResultJSON sets the "result_json" field.
func (_u *ExecutionResultUpdate) SetResultJSON(v map[string]interface{}) *ExecutionResultUpdate {
	_u.mutation.SetResultJSON(v)
	return _u
}

// ClearResultJSON clears the value of the "result_json" field.
func (_u *ExecutionResultUpdate) ClearResultJSON() *ExecutionResultUpdate {
	_u.mutation.ClearResultJSON()
	return _u
}

// SetToolCalls sets the "tool_calls" field.
func (_u *ExecutionResultUpdate) SetToolCalls(v []models.ToolCall) *ExecutionResultUpdate {
	_u.mutation.SetToolCalls(v)
	return _u
}

// AppendToolCalls appends value to the "tool_calls" field.
func (_u *ExecutionResultUpdate) AppendToolCalls(v []models.ToolCall) *ExecutionResultUpdate {
	_u.mutation.AppendToolCalls(v)
	return _u
}

// ClearToolCalls clears the value of the "tool_calls" field.
func (_u *ExecutionResultUpdate) ClearToolCalls() *ExecutionResultUpdate {
	_u.mutation.ClearToolCalls()
	return _u
}

// SetError sets the "error" field.
func (_u *ExecutionResultUpdate) SetError(v string) *ExecutionResultUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *ExecutionResultUpdate) SetNillableError(v *string) *ExecutionResultUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *ExecutionResultUpdate) ClearError() *ExecutionResultUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_u *ExecutionResultUpdate) SetPromptTokens(v int) *ExecutionResultUpdate {
	_u.mutation.ResetPromptTokens()
	_u.mutation.SetPromptTokens(v)
	return _u
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_u *ExecutionResultUpdate) SetNillablePromptTokens(v *int) *ExecutionResultUpdate {
	if v != nil {
		_u.SetPromptTokens(*v)
	}
	return _u
}

// AddPromptTokens adds value to the "prompt_tokens" field.
func (_u *ExecutionResultUpdate) AddPromptTokens(v int) *ExecutionResultUpdate {
	_u.mutation.AddPromptTokens(v)
	return _u
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_u *ExecutionResultUpdate) SetCompletionTokens(v int) *ExecutionResultUpdate {
	_u.mutation.ResetCompletionTokens()
	_u.mutation.SetCompletionTokens(v)
	return _u
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_u *ExecutionResultUpdate) SetNillableCompletionTokens(v *int) *ExecutionResultUpdate {
	if v != nil {
		_u.SetCompletionTokens(*v)
	}
	return _u
}

// AddCompletionTokens adds value to the "completion_tokens" field.
func (_u *ExecutionResultUpdate) AddCompletionTokens(v int) *ExecutionResultUpdate {
	_u.mutation.AddCompletionTokens(v)
	return _u
}

// SetCachedTokens sets the "cached_tokens" field.
func (_u *ExecutionResultUpdate) SetCachedTokens(v int) *ExecutionResultUpdate {
	_u.mutation.ResetCachedTokens()
	_u.mutation.SetCachedTokens(v)
	return _u
}

// SetNillableCachedTokens sets the "cached_tokens" field if the given value is not nil.
func (_u *ExecutionResultUpdate) SetNillableCachedTokens(v *int) *ExecutionResultUpdate {
	if v != nil {
		_u.SetCachedTokens(*v)
	}
	return _u
}

// AddCachedTokens adds value to the "cached_tokens" field.
func (_u *ExecutionResultUpdate) AddCachedTokens(v int) *ExecutionResultUpdate {
	_u.mutation.AddCachedTokens(v)
	return _u
}

// SetReasoningTokens sets the "reasoning_tokens" field.
func (_u *ExecutionResultUpdate) SetReasoningTokens(v int) *ExecutionResultUpdate {
	_u.mutation.ResetReasoningTokens()
	_u.mutation.SetReasoningTokens(v)
	return _u
}

// SetNillableReasoningTokens sets the "reasoning_tokens" field if the given value is not nil.
func (_u *ExecutionResultUpdate) SetNillableReasoningTokens(v *int) *ExecutionResultUpdate {
	if v != nil {
		_u.SetReasoningTokens(*v)
	}
	return _u
}

// AddReasoningTokens adds value to the "reasoning_tokens" field.
func (_u *ExecutionResultUpdate) AddReasoningTokens(v int) *ExecutionResultUpdate {
	_u.mutation.AddReasoningTokens(v)
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *ExecutionResultUpdate) SetTotalTokens(v int) *ExecutionResultUpdate {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *ExecutionResultUpdate) SetNillableTotalTokens(v *int) *ExecutionResultUpdate {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *ExecutionResultUpdate) AddTotalTokens(v int) *ExecutionResultUpdate {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// SetSystemFingerprint sets the "system_fingerprint" field.
func (_u *ExecutionResultUpdate) SetSystemFingerprint(v string) *ExecutionResultUpdate {
	_u.mutation.SetSystemFingerprint(v)
	return _u
}

// SetNillableSystemFingerprint sets the "system_fingerprint" field if the given value is not nil.
func (_u *ExecutionResultUpdate) SetNillableSystemFingerprint(v *string) *ExecutionResultUpdate {
	if v != nil {
		_u.SetSystemFingerprint(*v)
	}
	return _u
}

// ClearSystemFingerprint clears the value of the "system_fingerprint" field.
func (_u *ExecutionResultUpdate) ClearSystemFingerprint() *ExecutionResultUpdate {
	_u.mutation.ClearSystemFingerprint()
	return _u
}

// SetCost sets the "cost" field.
func (_u *ExecutionResultUpdate) SetCost(v float64) *ExecutionResultUpdate {
	_u.mutation.ResetCost()
	_u.mutation.SetCost(v)
	return _u
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_u *ExecutionResultUpdate) SetNillableCost(v *float64) *ExecutionResultUpdate {
	if v != nil {
		_u.SetCost(*v)
	}
	return _u
}

// AddCost adds value to the "cost" field.
func (_u *ExecutionResultUpdate) AddCost(v float64) *ExecutionResultUpdate {
	_u.mutation.AddCost(v)
	return _u
}

// ClearCost clears the value of the "cost" field.
func (_u *ExecutionResultUpdate) ClearCost() *ExecutionResultUpdate {
	_u.mutation.ClearCost()
	return _u
}

// SetEvaluation sets the "evaluation" edge to the Evaluation entity.
func (_u *ExecutionResultUpdate) SetEvaluation(v *Evaluation) *ExecutionResultUpdate {
	return _u.SetEvaluationID(v.ID)
}

// SetTestCase sets the "test_case" edge to the TestCase entity.
func (_u *ExecutionResultUpdate) SetTestCase(v *TestCase) *ExecutionResultUpdate {
	return _u.SetTestCaseID(v.ID)
}

// AddGradeIDs adds the "grades" edge to the Grade entity by IDs.
func (_u *ExecutionResultUpdate) AddGradeIDs(ids ...string) *ExecutionResultUpdate {
	_u.mutation.AddGradeIDs(ids...)
	return _u
}

// AddGrades adds the "grades" edges to the Grade entity.
func (_u *ExecutionResultUpdate) AddGrades(v ...*Grade) *ExecutionResultUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGradeIDs(ids...)
}

// Mutation returns the ExecutionResultMutation object of the builder.
func (_u *ExecutionResultUpdate) Mutation() *ExecutionResultMutation {
	return _u.mutation
}

// ClearEvaluation clears the "evaluation" edge to the Evaluation entity.
func (_u *ExecutionResultUpdate) ClearEvaluation() *ExecutionResultUpdate {
	_u.mutation.ClearEvaluation()
	return _u
}

// ClearTestCase clears the "test_case" edge to the TestCase entity.
func (_u *ExecutionResultUpdate) ClearTestCase() *ExecutionResultUpdate {
	_u.mutation.ClearTestCase()
	return _u
}

// ClearGrades clears all "grades" edges to the Grade entity.
func (_u *ExecutionResultUpdate) ClearGrades() *ExecutionResultUpdate {
	_u.mutation.ClearGrades()
	return _u
}

// RemoveGradeIDs removes the "grades" edge to Grade entities by IDs.
func (_u *ExecutionResultUpdate) RemoveGradeIDs(ids ...string) *ExecutionResultUpdate {
	_u.mutation.RemoveGradeIDs(ids...)
	return _u
}

// RemoveGrades removes "grades" edges to Grade entities.
func (_u *ExecutionResultUpdate) RemoveGrades(v ...*Grade) *ExecutionResultUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGradeIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExecutionResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExecutionResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExecutionResultUpdate) check() error {
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExecutionResult.task"`)
	}
	if _u.mutation.ImplementationCleared() && len(_u.mutation.ImplementationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExecutionResult.implementation"`)
	}
	return nil
}

func (_u *ExecutionResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(executionresult.Table, executionresult.Columns, sqlgraph.NewFieldSpec(executionresult.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(executionresult.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(executionresult.FieldCompletedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PromptRendered(); ok {
		_spec.SetField(executionresult.FieldPromptRendered, field.TypeString, value)
	}
	if value, ok := _u.mutation.Variables(); ok {
		_spec.SetField(executionresult.FieldVariables, field.TypeJSON, value)
	}
	if _u.mutation.VariablesCleared() {
		_spec.ClearField(executionresult.FieldVariables, field.TypeJSON)
	}
	if value, ok := _u.mutation.ResultText(); ok {
		_spec.SetField(executionresult.FieldResultText, field.TypeString, value)
	}
	if _u.mutation.ResultTextCleared() {
		_spec.ClearField(executionresult.FieldResultText, field.TypeString)
	}
	if value, ok := _u.mutation.ResultJSON(); ok {
		_spec.SetField(executionresult.FieldResultJSON, field.TypeJSON, value)
	}
	if _u.mutation.ResultJSONCleared() {
		_spec.ClearField(executionresult.FieldResultJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.ToolCalls(); ok {
		_spec.SetField(executionresult.FieldToolCalls, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedToolCalls(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, executionresult.FieldToolCalls, value)
		})
	}
	if _u.mutation.ToolCallsCleared() {
		_spec.ClearField(executionresult.FieldToolCalls, field.TypeJSON)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(executionresult.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(executionresult.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.PromptTokens(); ok {
		_spec.SetField(executionresult.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPromptTokens(); ok {
		_spec.AddField(executionresult.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletionTokens(); ok {
		_spec.SetField(executionresult.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletionTokens(); ok {
		_spec.AddField(executionresult.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CachedTokens(); ok {
		_spec.SetField(executionresult.FieldCachedTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCachedTokens(); ok {
		_spec.AddField(executionresult.FieldCachedTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReasoningTokens(); ok {
		_spec.SetField(executionresult.FieldReasoningTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReasoningTokens(); ok {
		_spec.AddField(executionresult.FieldReasoningTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(executionresult.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(executionresult.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SystemFingerprint(); ok {
		_spec.SetField(executionresult.FieldSystemFingerprint, field.TypeString, value)
	}
	if _u.mutation.SystemFingerprintCleared() {
		_spec.ClearField(executionresult.FieldSystemFingerprint, field.TypeString)
	}
	if value, ok := _u.mutation.Cost(); ok {
		_spec.SetField(executionresult.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCost(); ok {
		_spec.AddField(executionresult.FieldCost, field.TypeFloat64, value)
	}
	if _u.mutation.CostCleared() {
		_spec.ClearField(executionresult.FieldCost, field.TypeFloat64)
	}
	if _u.mutation.EvaluationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvaluationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TestCaseCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TestCaseIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.GradesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGradesIDs(); len(nodes) > 0 && !_u.mutation.GradesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GradesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{executionresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExecutionResultUpdateOne is the builder for updating a single ExecutionResult entity.
type ExecutionResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExecutionResultMutation
}

// SetEvaluationID sets the "evaluation_id" field.
func (_u *ExecutionResultUpdateOne) SetEvaluationID(v string) *ExecutionResultUpdateOne {
	_u.mutation.SetEvaluationID(v)
	return _u
}

// SetNillableEvaluationID sets the "evaluation_id" field if the given value is not nil.
func (_u *ExecutionResultUpdateOne) SetNillableEvaluationID(v *string) *ExecutionResultUpdateOne {
	if v != nil {
		_u.SetEvaluationID(*v)
	}
	return _u
}

// ClearEvaluationID clears the value of the "evaluation_id" field.
func (_u *ExecutionResultUpdateOne) ClearEvaluationID() *ExecutionResultUpdateOne {
	_u.mutation.ClearEvaluationID()
	return _u
}

// SetTestCaseID sets the "test_case_id" field.
func (_u *ExecutionResultUpdateOne) SetTestCaseID(v string) *ExecutionResultUpdateOne {
	_u.mutation.SetTestCaseID(v)
	return _u
}

// SetNillableTestCaseID sets the "test_case_id" field if the given value is not nil.
func (_u *ExecutionResultUpdateOne) SetNillableTestCaseID(v *string) *ExecutionResultUpdateOne {
	if v != nil {
		_u.SetTestCaseID(*v)
	}
	return _u
}

// ClearTestCaseID clears the value of the "test_case_id" field.
func (_u *ExecutionResultUpdateOne) ClearTestCaseID() *ExecutionResultUpdateOne {
	_u.mutation.ClearTestCaseID()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *ExecutionResultUpdateOne) SetStartedAt(v time.Time) *ExecutionResultUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *ExecutionResultUpdateOne) SetNillableStartedAt(v *time.Time) *ExecutionResultUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ExecutionResultUpdateOne) SetCompletedAt(v time.Time) *ExecutionResultUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ExecutionResultUpdateOne) SetNillableCompletedAt(v *time.Time) *ExecutionResultUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// SetPromptRendered sets the "prompt_rendered" field.
func (_u *ExecutionResultUpdateOne) SetPromptRendered(v string) *ExecutionResultUpdateOne {
	_u.mutation.SetPromptRendered(v)
	return _u
}

// SetNillablePromptRendered sets the "prompt_rendered" field if the given value is not nil.
func (_u *ExecutionResultUpdateOne) SetNillablePromptRendered(v *string) *ExecutionResultUpdateOne {
	if v != nil {
		_u.SetPromptRendered(*v)
	}
	return _u
}

// SetVariables sets the "variables" field.
func (_u *ExecutionResultUpdateOne) SetVariables(v map[string]string) *ExecutionResultUpdateOne {
	_u.mutation.SetVariables(v)
	return _u
}

// ClearVariables clears the value of the "variables" field.
func (_u *ExecutionResultUpdateOne) ClearVariables() *ExecutionResultUpdateOne {
	_u.mutation.ClearVariables()
	return _u
}

// SetResultText sets the "result_text" field.
func (_u *ExecutionResultUpdateOne) SetResultText(v string) *ExecutionResultUpdateOne {
	_u.mutation.SetResultText(v)
	return _u
}

// SetNillableResultText sets the "result_text" field if the given value is not nil.
func (_u *ExecutionResultUpdateOne) SetNillableResultText(v *string) *ExecutionResultUpdateOne {
	if v != nil {
		_u.SetResultText(*v)
	}
	return _u
}

// ClearResultText clears the value of the "result_text" field.
func (_u *ExecutionResultUpdateOne) ClearResultText() *ExecutionResultUpdateOne {
	_u.mutation.ClearResultText()
	return _u
}

// SetResultJSON sets the "result_json" field.
func (_u *ExecutionResultUpdateOne) SetResultJSON(v map[string]interface{}) *ExecutionResultUpdateOne {
	_u.mutation.SetResultJSON(v)
	return _u
}

// ClearResultJSON clears the value of the "result_json" field.
func (_u *ExecutionResultUpdateOne) ClearResultJSON() *ExecutionResultUpdateOne {
	_u.mutation.ClearResultJSON()
	return _u
}

// SetToolCalls sets the "tool_calls" field.
func (_u *ExecutionResultUpdateOne) SetToolCalls(v []models.ToolCall) *ExecutionResultUpdateOne {
	_u.mutation.SetToolCalls(v)
	return _u
}

// AppendToolCalls appends value to the "tool_calls" field.
func (_u *ExecutionResultUpdateOne) AppendToolCalls(v []models.ToolCall) *ExecutionResultUpdateOne {
	_u.mutation.AppendToolCalls(v)
	return _u
}

// ClearToolCalls clears the value of the "tool_calls" field.
func (_u *ExecutionResultUpdateOne) ClearToolCalls() *ExecutionResultUpdateOne {
	_u.mutation.ClearToolCalls()
	return _u
}

// SetError sets the "error" field.
func (_u *ExecutionResultUpdateOne) SetError(v string) *ExecutionResultUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *ExecutionResultUpdateOne) SetNillableError(v *string) *ExecutionResultUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *ExecutionResultUpdateOne) ClearError() *ExecutionResultUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_u *ExecutionResultUpdateOne) SetPromptTokens(v int) *ExecutionResultUpdateOne {
	_u.mutation.ResetPromptTokens()
	_u.mutation.SetPromptTokens(v)
	return _u
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_u *ExecutionResultUpdateOne) SetNillablePromptTokens(v *int) *ExecutionResultUpdateOne {
	if v != nil {
		_u.SetPromptTokens(*v)
	}
	return _u
}

// AddPromptTokens adds value to the "prompt_tokens" field.
func (_u *ExecutionResultUpdateOne) AddPromptTokens(v int) *ExecutionResultUpdateOne {
	_u.mutation.AddPromptTokens(v)
	return _u
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_u *ExecutionResultUpdateOne) SetCompletionTokens(v int) *ExecutionResultUpdateOne {
	_u.mutation.ResetCompletionTokens()
	_u.mutation.SetCompletionTokens(v)
	return _u
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_u *ExecutionResultUpdateOne) SetNillableCompletionTokens(v *int) *ExecutionResultUpdateOne {
	if v != nil {
		_u.SetCompletionTokens(*v)
	}
	return _u
}

// AddCompletionTokens adds value to the "completion_tokens" field.
func (_u *ExecutionResultUpdateOne) AddCompletionTokens(v int) *ExecutionResultUpdateOne {
	_u.mutation.AddCompletionTokens(v)
	return _u
}

// SetCachedTokens sets the "cached_tokens" field.
func (_u *ExecutionResultUpdateOne) SetCachedTokens(v int) *ExecutionResultUpdateOne {
	_u.mutation.ResetCachedTokens()
	_u.mutation.SetCachedTokens(v)
	return _u
}

// SetNillableCachedTokens sets the "cached_tokens" field if the given value is not nil.
func (_u *ExecutionResultUpdateOne) SetNillableCachedTokens(v *int) *ExecutionResultUpdateOne {
	if v != nil {
		_u.SetCachedTokens(*v)
	}
	return _u
}

// AddCachedTokens adds value to the "cached_tokens" field.
func (_u *ExecutionResultUpdateOne) AddCachedTokens(v int) *ExecutionResultUpdateOne {
	_u.mutation.AddCachedTokens(v)
	return _u
}

// SetReasoningTokens sets the "reasoning_tokens" field.
func (_u *ExecutionResultUpdateOne) SetReasoningTokens(v int) *ExecutionResultUpdateOne {
	_u.mutation.ResetReasoningTokens()
	_u.mutation.SetReasoningTokens(v)
	return _u
}

// SetNillableReasoningTokens sets the "reasoning_tokens" field if the given value is not nil.
func (_u *ExecutionResultUpdateOne) SetNillableReasoningTokens(v *int) *ExecutionResultUpdateOne {
	if v != nil {
		_u.SetReasoningTokens(*v)
	}
	return _u
}

// AddReasoningTokens adds value to the "reasoning_tokens" field.
func (_u *ExecutionResultUpdateOne) AddReasoningTokens(v int) *ExecutionResultUpdateOne {
	_u.mutation.AddReasoningTokens(v)
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *ExecutionResultUpdateOne) SetTotalTokens(v int) *ExecutionResultUpdateOne {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *ExecutionResultUpdateOne) SetNillableTotalTokens(v *int) *ExecutionResultUpdateOne {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *ExecutionResultUpdateOne) AddTotalTokens(v int) *ExecutionResultUpdateOne {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// SetSystemFingerprint sets the "system_fingerprint" field.
func (_u *ExecutionResultUpdateOne) SetSystemFingerprint(v string) *ExecutionResultUpdateOne {
	_u.mutation.SetSystemFingerprint(v)
	return _u
}

// SetNillableSystemFingerprint sets the "system_fingerprint" field if the given value is not nil.
func (_u *ExecutionResultUpdateOne) SetNillableSystemFingerprint(v *string) *ExecutionResultUpdateOne {
	if v != nil {
		_u.SetSystemFingerprint(*v)
	}
	return _u
}

// ClearSystemFingerprint clears the value of the "system_fingerprint" field.
func (_u *ExecutionResultUpdateOne) ClearSystemFingerprint() *ExecutionResultUpdateOne {
	_u.mutation.ClearSystemFingerprint()
	return _u
}

// SetCost sets the "cost" field.
func (_u *ExecutionResultUpdateOne) SetCost(v float64) *ExecutionResultUpdateOne {
	_u.mutation.ResetCost()
	_u.mutation.SetCost(v)
	return _u
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_u *ExecutionResultUpdateOne) SetNillableCost(v *float64) *ExecutionResultUpdateOne {
	if v != nil {
		_u.SetCost(*v)
	}
	return _u
}

// AddCost adds value to the "cost" field.
func (_u *ExecutionResultUpdateOne) AddCost(v float64) *ExecutionResultUpdateOne {
	_u.mutation.AddCost(v)
	return _u
}

// ClearCost clears the value of the "cost" field.
func (_u *ExecutionResultUpdateOne) ClearCost() *ExecutionResultUpdateOne {
	_u.mutation.ClearCost()
	return _u
}

// SetEvaluation sets the "evaluation" edge to the Evaluation entity.
func (_u *ExecutionResultUpdateOne) SetEvaluation(v *Evaluation) *ExecutionResultUpdateOne {
	return _u.SetEvaluationID(v.ID)
}

// SetTestCase sets the "test_case" edge to the TestCase entity.
func (_u *ExecutionResultUpdateOne) SetTestCase(v *TestCase) *ExecutionResultUpdateOne {
	return _u.SetTestCaseID(v.ID)
}

// AddGradeIDs adds the "grades" edge to the Grade entity by IDs.
func (_u *ExecutionResultUpdateOne) AddGradeIDs(ids ...string) *ExecutionResultUpdateOne {
	_u.mutation.AddGradeIDs(ids...)
	return _u
}

// AddGrades adds the "grades" edges to the Grade entity.
func (_u *ExecutionResultUpdateOne) AddGrades(v ...*Grade) *ExecutionResultUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGradeIDs(ids...)
}

// Mutation returns the ExecutionResultMutation object of the builder.
func (_u *ExecutionResultUpdateOne) Mutation() *ExecutionResultMutation {
	return _u.mutation
}

// ClearEvaluation clears the "evaluation" edge to the Evaluation entity.
func (_u *ExecutionResultUpdateOne) ClearEvaluation() *ExecutionResultUpdateOne {
	_u.mutation.ClearEvaluation()
	return _u
}

// ClearTestCase clears the "test_case" edge to the TestCase entity.
func (_u *ExecutionResultUpdateOne) ClearTestCase() *ExecutionResultUpdateOne {
	_u.mutation.ClearTestCase()
	return _u
}

// ClearGrades clears all "grades" edges to the Grade entity.
func (_u *ExecutionResultUpdateOne) ClearGrades() *ExecutionResultUpdateOne {
	_u.mutation.ClearGrades()
	return _u
}

// RemoveGradeIDs removes the "grades" edge to Grade entities by IDs.
func (_u *ExecutionResultUpdateOne) RemoveGradeIDs(ids ...string) *ExecutionResultUpdateOne {
	_u.mutation.RemoveGradeIDs(ids...)
	return _u
}

// RemoveGrades removes "grades" edges to Grade entities.
func (_u *ExecutionResultUpdateOne) RemoveGrades(v ...*Grade) *ExecutionResultUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGradeIDs(ids...)
}

// Where appends a list predicates to the ExecutionResultUpdate builder.
func (_u *ExecutionResultUpdateOne) Where(ps ...predicate.ExecutionResult) *ExecutionResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExecutionResultUpdateOne) Select(field string, fields ...string) *ExecutionResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExecutionResult entity.
func (_u *ExecutionResultUpdateOne) Save(ctx context.Context) (*ExecutionResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionResultUpdateOne) SaveX(ctx context.Context) *ExecutionResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExecutionResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExecutionResultUpdateOne) check() error {
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExecutionResult.task"`)
	}
	if _u.mutation.ImplementationCleared() && len(_u.mutation.ImplementationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExecutionResult.implementation"`)
	}
	return nil
}

func (_u *ExecutionResultUpdateOne) sqlSave(ctx context.Context) (_node *ExecutionResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(executionresult.Table, executionresult.Columns, sqlgraph.NewFieldSpec(executionresult.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExecutionResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, executionresult.FieldID)
		for _, f := range fields {
			if !executionresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != executionresult.FieldID {
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
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(executionresult.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(executionresult.FieldCompletedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PromptRendered(); ok {
		_spec.SetField(executionresult.FieldPromptRendered, field.TypeString, value)
	}
	if value, ok := _u.mutation.Variables(); ok {
		_spec.SetField(executionresult.FieldVariables, field.TypeJSON, value)
	}
	if _u.mutation.VariablesCleared() {
		_spec.ClearField(executionresult.FieldVariables, field.TypeJSON)
	}
	if value, ok := _u.mutation.ResultText(); ok {
		_spec.SetField(executionresult.FieldResultText, field.TypeString, value)
	}
	if _u.mutation.ResultTextCleared() {
		_spec.ClearField(executionresult.FieldResultText, field.TypeString)
	}
	if value, ok := _u.mutation.ResultJSON(); ok {
		_spec.SetField(executionresult.FieldResultJSON, field.TypeJSON, value)
	}
	if _u.mutation.ResultJSONCleared() {
		_spec.ClearField(executionresult.FieldResultJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.ToolCalls(); ok {
		_spec.SetField(executionresult.FieldToolCalls, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedToolCalls(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, executionresult.FieldToolCalls, value)
		})
	}
	if _u.mutation.ToolCallsCleared() {
		_spec.ClearField(executionresult.FieldToolCalls, field.TypeJSON)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(executionresult.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(executionresult.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.PromptTokens(); ok {
		_spec.SetField(executionresult.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPromptTokens(); ok {
		_spec.AddField(executionresult.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletionTokens(); ok {
		_spec.SetField(executionresult.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletionTokens(); ok {
		_spec.AddField(executionresult.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CachedTokens(); ok {
		_spec.SetField(executionresult.FieldCachedTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCachedTokens(); ok {
		_spec.AddField(executionresult.FieldCachedTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReasoningTokens(); ok {
		_spec.SetField(executionresult.FieldReasoningTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReasoningTokens(); ok {
		_spec.AddField(executionresult.FieldReasoningTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(executionresult.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(executionresult.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SystemFingerprint(); ok {
		_spec.SetField(executionresult.FieldSystemFingerprint, field.TypeString, value)
	}
	if _u.mutation.SystemFingerprintCleared() {
		_spec.ClearField(executionresult.FieldSystemFingerprint, field.TypeString)
	}
	if value, ok := _u.mutation.Cost(); ok {
		_spec.SetField(executionresult.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCost(); ok {
		_spec.AddField(executionresult.FieldCost, field.TypeFloat64, value)
	}
	if _u.mutation.CostCleared() {
		_spec.ClearField(executionresult.FieldCost, field.TypeFloat64)
	}
	if _u.mutation.EvaluationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvaluationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TestCaseCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TestCaseIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.GradesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGradesIDs(); len(nodes) > 0 && !_u.mutation.GradesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GradesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExecutionResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{executionresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
