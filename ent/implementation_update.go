// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/promptlens/promptlens/ent/evaluation"
	"github.com/promptlens/promptlens/ent/executionresult"
	"github.com/promptlens/promptlens/ent/implementation"
	"github.com/promptlens/promptlens/ent/predicate"
	"github.com/promptlens/promptlens/ent/trace"
	"github.com/promptlens/promptlens/pkg/models"
)

// ImplementationUpdate is the builder for updating Implementation entities.
type ImplementationUpdate struct {
	config
	hooks    []Hook
	mutation *ImplementationMutation
}

// Where appends a list predicates to the ImplementationUpdate builder.
func (_u *ImplementationUpdate) Where(ps ...predicate.Implementation) *ImplementationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVersion sets the "version" field.
func (_u *ImplementationUpdate) SetVersion(v string) *ImplementationUpdate {
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ImplementationUpdate) SetNillableVersion(v *string) *ImplementationUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *ImplementationUpdate) SetPrompt(v string) *ImplementationUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *ImplementationUpdate) SetNillablePrompt(v *string) *ImplementationUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *ImplementationUpdate) SetModel(v string) *ImplementationUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *ImplementationUpdate) SetNillableModel(v *string) *ImplementationUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetTemperature sets the "temperature" field.
func (_u *ImplementationUpdate) SetTemperature(v float64) *ImplementationUpdate {
	_u.mutation.ResetTemperature()
	_u.mutation.SetTemperature(v)
	return _u
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_u *ImplementationUpdate) SetNillableTemperature(v *float64) *ImplementationUpdate {
	if v != nil {
		_u.SetTemperature(*v)
	}
	return _u
}

// AddTemperature adds value to the "temperature" field.
func (_u *ImplementationUpdate) AddTemperature(v float64) *ImplementationUpdate {
	_u.mutation.AddTemperature(v)
	return _u
}

// ClearTemperature clears the value of the "temperature" field.
func (_u *ImplementationUpdate) ClearTemperature() *ImplementationUpdate {
	_u.mutation.ClearTemperature()
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *ImplementationUpdate) SetReasoning(v map[string]interface{}) *ImplementationUpdate {
	_u.mutation.SetReasoning(v)
	return _u
}

// ClearReasoning clears the value of the "reasoning" field.
func (_u *ImplementationUpdate) ClearReasoning() *ImplementationUpdate {
	_u.mutation.ClearReasoning()
	return _u
}

// SetTools sets the "tools" field.
func (_u *ImplementationUpdate) SetTools(v []models.ToolDefinition) *ImplementationUpdate {
	_u.mutation.SetTools(v)
	return _u
}

// AppendTools appends value to the "tools" field.
func (_u *ImplementationUpdate) AppendTools(v []models.ToolDefinition) *ImplementationUpdate {
	_u.mutation.AppendTools(v)
	return _u
}

// ClearTools clears the value of the "tools" field.
func (_u *ImplementationUpdate) ClearTools() *ImplementationUpdate {
	_u.mutation.ClearTools()
	return _u
}

// SetToolChoice sets the "tool_choice" field.
func (_u *ImplementationUpdate) SetToolChoice(v string) *ImplementationUpdate {
	_u.mutation.SetToolChoice(v)
	return _u
}

// SetNillableToolChoice sets the "tool_choice" field if the given value is not nil.
func (_u *ImplementationUpdate) SetNillableToolChoice(v *string) *ImplementationUpdate {
	if v != nil {
		_u.SetToolChoice(*v)
	}
	return _u
}

// ClearToolChoice clears the value of the "tool_choice" field.
func (_u *ImplementationUpdate) ClearToolChoice() *ImplementationUpdate {
	_u.mutation.ClearToolChoice()
	return _u
}

// SetMaxOutputTokens sets the "max_output_tokens" field.
func (_u *ImplementationUpdate) SetMaxOutputTokens(v int) *ImplementationUpdate {
	_u.mutation.ResetMaxOutputTokens()
	_u.mutation.SetMaxOutputTokens(v)
	return _u
}

// SetNillableMaxOutputTokens sets the "max_output_tokens" field if the given value is not nil.
func (_u *ImplementationUpdate) SetNillableMaxOutputTokens(v *int) *ImplementationUpdate {
	if v != nil {
		_u.SetMaxOutputTokens(*v)
	}
	return _u
}

// AddMaxOutputTokens adds value to the "max_output_tokens" field.
func (_u *ImplementationUpdate) AddMaxOutputTokens(v int) *ImplementationUpdate {
	_u.mutation.AddMaxOutputTokens(v)
	return _u
}

// SetResponseSchema sets the "response_schema" field.
func (_u *ImplementationUpdate) SetResponseSchema(v map[string]interface{}) *ImplementationUpdate {
	_u.mutation.SetResponseSchema(v)
	return _u
}

// ClearResponseSchema clears the value of the "response_schema" field.
func (_u *ImplementationUpdate) ClearResponseSchema() *ImplementationUpdate {
	_u.mutation.ClearResponseSchema()
	return _u
}

// SetTemp sets the "temp" field.
func (_u *ImplementationUpdate) SetTemp(v bool) *ImplementationUpdate {
	_u.mutation.SetTemp(v)
	return _u
}

// SetNillableTemp sets the "temp" field if the given value is not nil.
func (_u *ImplementationUpdate) SetNillableTemp(v *bool) *ImplementationUpdate {
	if v != nil {
		_u.SetTemp(*v)
	}
	return _u
}

// AddTraceIDs adds the "traces" edge to the Trace entity by IDs.
func (_u *ImplementationUpdate) AddTraceIDs(ids ...string) *ImplementationUpdate {
	_u.mutation.AddTraceIDs(ids...)
	return _u
}

// AddTraces adds the "traces" edges to the Trace entity.
func (_u *ImplementationUpdate) AddTraces(v ...*Trace) *ImplementationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTraceIDs(ids...)
}

// AddExecutionResultIDs adds the "execution_results" edge to the ExecutionResult entity by IDs.
func (_u *ImplementationUpdate) AddExecutionResultIDs(ids ...string) *ImplementationUpdate {
	_u.mutation.AddExecutionResultIDs(ids...)
	return _u
}

// AddExecutionResults adds the "execution_results" edges to the ExecutionResult entity.
func (_u *ImplementationUpdate) AddExecutionResults(v ...*ExecutionResult) *ImplementationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExecutionResultIDs(ids...)
}

// AddEvaluationIDs adds the "evaluations" edge to the Evaluation entity by IDs.
func (_u *ImplementationUpdate) AddEvaluationIDs(ids ...string) *ImplementationUpdate {
	_u.mutation.AddEvaluationIDs(ids...)
	return _u
}

// AddEvaluations adds the "evaluations" edges to the Evaluation entity.
func (_u *ImplementationUpdate) AddEvaluations(v ...*Evaluation) *ImplementationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEvaluationIDs(ids...)
}

// Mutation returns the ImplementationMutation object of the builder.
func (_u *ImplementationUpdate) Mutation() *ImplementationMutation {
	return _u.mutation
}

// ClearTraces clears all "traces" edges to the Trace entity.
func (_u *ImplementationUpdate) ClearTraces() *ImplementationUpdate {
	_u.mutation.ClearTraces()
	return _u
}

// RemoveTraceIDs removes the "traces" edge to Trace entities by IDs.
func (_u *ImplementationUpdate) RemoveTraceIDs(ids ...string) *ImplementationUpdate {
	_u.mutation.RemoveTraceIDs(ids...)
	return _u
}

// RemoveTraces removes "traces" edges to Trace entities.
func (_u *ImplementationUpdate) RemoveTraces(v ...*Trace) *ImplementationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTraceIDs(ids...)
}

// ClearExecutionResults clears all "execution_results" edges to the ExecutionResult entity.
func (_u *ImplementationUpdate) ClearExecutionResults() *ImplementationUpdate {
	_u.mutation.ClearExecutionResults()
	return _u
}

// RemoveExecutionResultIDs removes the "execution_results" edge to ExecutionResult entities by IDs.
func (_u *ImplementationUpdate) RemoveExecutionResultIDs(ids ...string) *ImplementationUpdate {
	_u.mutation.RemoveExecutionResultIDs(ids...)
	return _u
}

// RemoveExecutionResults removes "execution_results" edges to ExecutionResult entities.
func (_u *ImplementationUpdate) RemoveExecutionResults(v ...*ExecutionResult) *ImplementationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExecutionResultIDs(ids...)
}

// ClearEvaluations clears all "evaluations" edges to the Evaluation entity.
func (_u *ImplementationUpdate) ClearEvaluations() *ImplementationUpdate {
	_u.mutation.ClearEvaluations()
	return _u
}

// RemoveEvaluationIDs removes the "evaluations" edge to Evaluation entities by IDs.
func (_u *ImplementationUpdate) RemoveEvaluationIDs(ids ...string) *ImplementationUpdate {
	_u.mutation.RemoveEvaluationIDs(ids...)
	return _u
}

// RemoveEvaluations removes "evaluations" edges to Evaluation entities.
func (_u *ImplementationUpdate) RemoveEvaluations(v ...*Evaluation) *ImplementationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEvaluationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ImplementationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ImplementationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ImplementationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ImplementationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ImplementationUpdate) check() error {
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Implementation.task"`)
	}
	return nil
}

func (_u *ImplementationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(implementation.Table, implementation.Columns, sqlgraph.NewFieldSpec(implementation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(implementation.FieldVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(implementation.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(implementation.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Temperature(); ok {
		_spec.SetField(implementation.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTemperature(); ok {
		_spec.AddField(implementation.FieldTemperature, field.TypeFloat64, value)
	}
	if _u.mutation.TemperatureCleared() {
		_spec.ClearField(implementation.FieldTemperature, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(implementation.FieldReasoning, field.TypeJSON, value)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(implementation.FieldReasoning, field.TypeJSON)
	}
	if value, ok := _u.mutation.Tools(); ok {
		_spec.SetField(implementation.FieldTools, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTools(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, implementation.FieldTools, value)
		})
	}
	if _u.mutation.ToolsCleared() {
		_spec.ClearField(implementation.FieldTools, field.TypeJSON)
	}
	if value, ok := _u.mutation.ToolChoice(); ok {
		_spec.SetField(implementation.FieldToolChoice, field.TypeString, value)
	}
	if _u.mutation.ToolChoiceCleared() {
		_spec.ClearField(implementation.FieldToolChoice, field.TypeString)
	}
	if value, ok := _u.mutation.MaxOutputTokens(); ok {
		_spec.SetField(implementation.FieldMaxOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxOutputTokens(); ok {
		_spec.AddField(implementation.FieldMaxOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ResponseSchema(); ok {
		_spec.SetField(implementation.FieldResponseSchema, field.TypeJSON, value)
	}
	if _u.mutation.ResponseSchemaCleared() {
		_spec.ClearField(implementation.FieldResponseSchema, field.TypeJSON)
	}
	if value, ok := _u.mutation.Temp(); ok {
		_spec.SetField(implementation.FieldTemp, field.TypeBool, value)
	}
	if _u.mutation.TracesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTracesIDs(); len(nodes) > 0 && !_u.mutation.TracesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TracesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ExecutionResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExecutionResultsIDs(); len(nodes) > 0 && !_u.mutation.ExecutionResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExecutionResultsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EvaluationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEvaluationsIDs(); len(nodes) > 0 && !_u.mutation.EvaluationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvaluationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{implementation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ImplementationUpdateOne is the builder for updating a single Implementation entity.
type ImplementationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ImplementationMutation
}

// SetVersion sets the "version" field.
func (_u *ImplementationUpdateOne) SetVersion(v string) *ImplementationUpdateOne {
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ImplementationUpdateOne) SetNillableVersion(v *string) *ImplementationUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *ImplementationUpdateOne) SetPrompt(v string) *ImplementationUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *ImplementationUpdateOne) SetNillablePrompt(v *string) *ImplementationUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *ImplementationUpdateOne) SetModel(v string) *ImplementationUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *ImplementationUpdateOne) SetNillableModel(v *string) *ImplementationUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetTemperature sets the "temperature" field.
func (_u *ImplementationUpdateOne) SetTemperature(v float64) *ImplementationUpdateOne {
	_u.mutation.ResetTemperature()
	_u.mutation.SetTemperature(v)
	return _u
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_u *ImplementationUpdateOne) SetNillableTemperature(v *float64) *ImplementationUpdateOne {
	if v != nil {
		_u.SetTemperature(*v)
	}
	return _u
}

// AddTemperature adds value to the "temperature" field.
func (_u *ImplementationUpdateOne) AddTemperature(v float64) *ImplementationUpdateOne {
	_u.mutation.AddTemperature(v)
	return _u
}

// ClearTemperature clears the value of the "temperature" field.
func (_u *ImplementationUpdateOne) ClearTemperature() *ImplementationUpdateOne {
	_u.mutation.ClearTemperature()
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *ImplementationUpdateOne) SetReasoning(v map[string]interface{}) *ImplementationUpdateOne {
	_u.mutation.SetReasoning(v)
	return _u
}

// ClearReasoning clears the value of the "reasoning" field.
func (_u *ImplementationUpdateOne) ClearReasoning() *ImplementationUpdateOne {
	_u.mutation.ClearReasoning()
	return _u
}

// SetTools sets the "tools" field.
func (_u *ImplementationUpdateOne) SetTools(v []models.ToolDefinition) *ImplementationUpdateOne {
	_u.mutation.SetTools(v)
	return _u
}

// AppendTools appends value to the "tools" field.
func (_u *ImplementationUpdateOne) AppendTools(v []models.ToolDefinition) *ImplementationUpdateOne {
	_u.mutation.AppendTools(v)
	return _u
}

// ClearTools clears the value of the "tools" field.
func (_u *ImplementationUpdateOne) ClearTools() *ImplementationUpdateOne {
	_u.mutation.ClearTools()
	return _u
}

// SetToolChoice sets the "tool_choice" field.
func (_u *ImplementationUpdateOne) SetToolChoice(v string) *ImplementationUpdateOne {
	_u.mutation.SetToolChoice(v)
	return _u
}

// SetNillableToolChoice sets the "tool_choice" field if the given value is not nil.
func (_u *ImplementationUpdateOne) SetNillableToolChoice(v *string) *ImplementationUpdateOne {
	if v != nil {
		_u.SetToolChoice(*v)
	}
	return _u
}

// ClearToolChoice clears the value of the "tool_choice" field.
func (_u *ImplementationUpdateOne) ClearToolChoice() *ImplementationUpdateOne {
	_u.mutation.ClearToolChoice()
	return _u
}

// SetMaxOutputTokens sets the "max_output_tokens" field.
func (_u *ImplementationUpdateOne) SetMaxOutputTokens(v int) *ImplementationUpdateOne {
	_u.mutation.ResetMaxOutputTokens()
	_u.mutation.SetMaxOutputTokens(v)
	return _u
}

// SetNillableMaxOutputTokens sets the "max_output_tokens" field if the given value is not nil.
func (_u *ImplementationUpdateOne) SetNillableMaxOutputTokens(v *int) *ImplementationUpdateOne {
	if v != nil {
		_u.SetMaxOutputTokens(*v)
	}
	return _u
}

// AddMaxOutputTokens adds value to the "max_output_tokens" field.
func (_u *ImplementationUpdateOne) AddMaxOutputTokens(v int) *ImplementationUpdateOne {
	_u.mutation.AddMaxOutputTokens(v)
	return _u
}

// SetResponseSchema sets the "response_schema" field.
func (_u *ImplementationUpdateOne) SetResponseSchema(v map[string]interface{}) *ImplementationUpdateOne {
	_u.mutation.SetResponseSchema(v)
	return _u
}

// ClearResponseSchema clears the value of the "response_schema" field.
func (_u *ImplementationUpdateOne) ClearResponseSchema() *ImplementationUpdateOne {
	_u.mutation.ClearResponseSchema()
	return _u
}

// SetTemp sets the "temp" field.
func (_u *ImplementationUpdateOne) SetTemp(v bool) *ImplementationUpdateOne {
	_u.mutation.SetTemp(v)
	return _u
}

// SetNillableTemp sets the "temp" field if the given value is not nil.
func (_u *ImplementationUpdateOne) SetNillableTemp(v *bool) *ImplementationUpdateOne {
	if v != nil {
		_u.SetTemp(*v)
	}
	return _u
}

// AddTraceIDs adds the "traces" edge to the Trace entity by IDs.
func (_u *ImplementationUpdateOne) AddTraceIDs(ids ...string) *ImplementationUpdateOne {
	_u.mutation.AddTraceIDs(ids...)
	return _u
}

// AddTraces adds the "traces" edges to the Trace entity.
func (_u *ImplementationUpdateOne) AddTraces(v ...*Trace) *ImplementationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTraceIDs(ids...)
}

// AddExecutionResultIDs adds the "execution_results" edge to the ExecutionResult entity by IDs.
func (_u *ImplementationUpdateOne) AddExecutionResultIDs(ids ...string) *ImplementationUpdateOne {
	_u.mutation.AddExecutionResultIDs(ids...)
	return _u
}

// AddExecutionResults adds the "execution_results" edges to the ExecutionResult entity.
func (_u *ImplementationUpdateOne) AddExecutionResults(v ...*ExecutionResult) *ImplementationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExecutionResultIDs(ids...)
}

// AddEvaluationIDs adds the "evaluations" edge to the Evaluation entity by IDs.
func (_u *ImplementationUpdateOne) AddEvaluationIDs(ids ...string) *ImplementationUpdateOne {
	_u.mutation.AddEvaluationIDs(ids...)
	return _u
}

// AddEvaluations adds the "evaluations" edges to the Evaluation entity.
func (_u *ImplementationUpdateOne) AddEvaluations(v ...*Evaluation) *ImplementationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEvaluationIDs(ids...)
}

// Mutation returns the ImplementationMutation object of the builder.
func (_u *ImplementationUpdateOne) Mutation() *ImplementationMutation {
	return _u.mutation
}

// ClearTraces clears all "traces" edges to the Trace entity.
func (_u *ImplementationUpdateOne) ClearTraces() *ImplementationUpdateOne {
	_u.mutation.ClearTraces()
	return _u
}

// RemoveTraceIDs removes the "traces" edge to Trace entities by IDs.
func (_u *ImplementationUpdateOne) RemoveTraceIDs(ids ...string) *ImplementationUpdateOne {
	_u.mutation.RemoveTraceIDs(ids...)
	return _u
}

// RemoveTraces removes "traces" edges to Trace entities.
func (_u *ImplementationUpdateOne) RemoveTraces(v ...*Trace) *ImplementationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTraceIDs(ids...)
}

// ClearExecutionResults clears all "execution_results" edges to the ExecutionResult entity.
func (_u *ImplementationUpdateOne) ClearExecutionResults() *ImplementationUpdateOne {
	_u.mutation.ClearExecutionResults()
	return _u
}

// RemoveExecutionResultIDs removes the "execution_results" edge to ExecutionResult entities by IDs.
func (_u *ImplementationUpdateOne) RemoveExecutionResultIDs(ids ...string) *ImplementationUpdateOne {
	_u.mutation.RemoveExecutionResultIDs(ids...)
	return _u
}

// RemoveExecutionResults removes "execution_results" edges to ExecutionResult entities.
func (_u *ImplementationUpdateOne) RemoveExecutionResults(v ...*ExecutionResult) *ImplementationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExecutionResultIDs(ids...)
}

// ClearEvaluations clears all "evaluations" edges to the Evaluation entity.
func (_u *ImplementationUpdateOne) ClearEvaluations() *ImplementationUpdateOne {
	_u.mutation.ClearEvaluations()
	return _u
}

// RemoveEvaluationIDs removes the "evaluations" edge to Evaluation entities by IDs.
func (_u *ImplementationUpdateOne) RemoveEvaluationIDs(ids ...string) *ImplementationUpdateOne {
	_u.mutation.RemoveEvaluationIDs(ids...)
	return _u
}

// RemoveEvaluations removes "evaluations" edges to Evaluation entities.
func (_u *ImplementationUpdateOne) RemoveEvaluations(v ...*Evaluation) *ImplementationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEvaluationIDs(ids...)
}

// Where appends a list predicates to the ImplementationUpdate builder.
func (_u *ImplementationUpdateOne) Where(ps ...predicate.Implementation) *ImplementationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ImplementationUpdateOne) Select(field string, fields ...string) *ImplementationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Implementation entity.
func (_u *ImplementationUpdateOne) Save(ctx context.Context) (*Implementation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ImplementationUpdateOne) SaveX(ctx context.Context) *Implementation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ImplementationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ImplementationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ImplementationUpdateOne) check() error {
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Implementation.task"`)
	}
	return nil
}

func (_u *ImplementationUpdateOne) sqlSave(ctx context.Context) (_node *Implementation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(implementation.Table, implementation.Columns, sqlgraph.NewFieldSpec(implementation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Implementation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, implementation.FieldID)
		for _, f := range fields {
			if !implementation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != implementation.FieldID {
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
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(implementation.FieldVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(implementation.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(implementation.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Temperature(); ok {
		_spec.SetField(implementation.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTemperature(); ok {
		_spec.AddField(implementation.FieldTemperature, field.TypeFloat64, value)
	}
	if _u.mutation.TemperatureCleared() {
		_spec.ClearField(implementation.FieldTemperature, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(implementation.FieldReasoning, field.TypeJSON, value)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(implementation.FieldReasoning, field.TypeJSON)
	}
	if value, ok := _u.mutation.Tools(); ok {
		_spec.SetField(implementation.FieldTools, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTools(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, implementation.FieldTools, value)
		})
	}
	if _u.mutation.ToolsCleared() {
		_spec.ClearField(implementation.FieldTools, field.TypeJSON)
	}
	if value, ok := _u.mutation.ToolChoice(); ok {
		_spec.SetField(implementation.FieldToolChoice, field.TypeString, value)
	}
	if _u.mutation.ToolChoiceCleared() {
		_spec.ClearField(implementation.FieldToolChoice, field.TypeString)
	}
	if value, ok := _u.mutation.MaxOutputTokens(); ok {
		_spec.SetField(implementation.FieldMaxOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxOutputTokens(); ok {
		_spec.AddField(implementation.FieldMaxOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ResponseSchema(); ok {
		_spec.SetField(implementation.FieldResponseSchema, field.TypeJSON, value)
	}
	if _u.mutation.ResponseSchemaCleared() {
		_spec.ClearField(implementation.FieldResponseSchema, field.TypeJSON)
	}
	if value, ok := _u.mutation.Temp(); ok {
		_spec.SetField(implementation.FieldTemp, field.TypeBool, value)
	}
	if _u.mutation.TracesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTracesIDs(); len(nodes) > 0 && !_u.mutation.TracesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TracesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ExecutionResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExecutionResultsIDs(); len(nodes) > 0 && !_u.mutation.ExecutionResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExecutionResultsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EvaluationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEvaluationsIDs(); len(nodes) > 0 && !_u.mutation.EvaluationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvaluationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Implementation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{implementation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
