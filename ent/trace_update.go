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
	"github.com/promptlens/promptlens/ent/grade"
	"github.com/promptlens/promptlens/ent/implementation"
	"github.com/promptlens/promptlens/ent/predicate"
	"github.com/promptlens/promptlens/ent/trace"
	"github.com/promptlens/promptlens/pkg/models"
)

// TraceUpdate is the builder for updating Trace entities.
type TraceUpdate struct {
	config
	hooks    []Hook
	mutation *TraceMutation
}

// Where appends a list predicates to the TraceUpdate builder.
func (_u *TraceUpdate) Where(ps ...predicate.Trace) *TraceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetModel sets the "model" field.
func (_u *TraceUpdate) SetModel(v string) *TraceUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *TraceUpdate) SetNillableModel(v *string) *TraceUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetPath sets the "path" field.
func (_u *TraceUpdate) SetPath(v string) *TraceUpdate {
	_u.mutation.SetPath(v)
	return _u
}

// SetNillablePath sets the "path" field if the given value is not nil.
func (_u *TraceUpdate) SetNillablePath(v *string) *TraceUpdate {
	if v != nil {
		_u.SetPath(*v)
	}
	return _u
}

// ClearPath clears the value of the "path" field.
func (_u *TraceUpdate) ClearPath() *TraceUpdate {
	_u.mutation.ClearPath()
	return _u
}

// SetInputItems sets the "input_items" field.
func (_u *TraceUpdate) SetInputItems(v []models.TraceItem) *TraceUpdate {
	_u.mutation.SetInputItems(v)
	return _u
}

// AppendInputItems appends value to the "input_items" field.
func (_u *TraceUpdate) AppendInputItems(v []models.TraceItem) *TraceUpdate {
	_u.mutation.AppendInputItems(v)
	return _u
}

// SetOutputItems sets the "output_items" field.
func (_u *TraceUpdate) SetOutputItems(v []models.TraceItem) *TraceUpdate {
	_u.mutation.SetOutputItems(v)
	return _u
}

// AppendOutputItems appends value to the "output_items" field.
func (_u *TraceUpdate) AppendOutputItems(v []models.TraceItem) *TraceUpdate {
	_u.mutation.AppendOutputItems(v)
	return _u
}

// ClearOutputItems clears the value of the "output_items" field.
func (_u *TraceUpdate) ClearOutputItems() *TraceUpdate {
	_u.mutation.ClearOutputItems()
	return _u
}

// SetTools sets the "tools" field.
func (_u *TraceUpdate) SetTools(v []models.ToolDefinition) *TraceUpdate {
	_u.mutation.SetTools(v)
	return _u
}

// AppendTools appends value to the "tools" field.
func (_u *TraceUpdate) AppendTools(v []models.ToolDefinition) *TraceUpdate {
	_u.mutation.AppendTools(v)
	return _u
}

// ClearTools clears the value of the "tools" field.
func (_u *TraceUpdate) ClearTools() *TraceUpdate {
	_u.mutation.ClearTools()
	return _u
}

// SetResponseSchema sets the "response_schema" field.
func (_u *TraceUpdate) SetResponseSchema(v map[string]interface{}) *TraceUpdate {
	_u.mutation.SetResponseSchema(v)
	return _u
}

// ClearResponseSchema clears the value of the "response_schema" field.
func (_u *TraceUpdate) ClearResponseSchema() *TraceUpdate {
	_u.mutation.ClearResponseSchema()
	return _u
}

// SetTemperature sets the "temperature" field.
func (_u *TraceUpdate) SetTemperature(v float64) *TraceUpdate {
	_u.mutation.ResetTemperature()
	_u.mutation.SetTemperature(v)
	return _u
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_u *TraceUpdate) SetNillableTemperature(v *float64) *TraceUpdate {
	if v != nil {
		_u.SetTemperature(*v)
	}
	return _u
}

// AddTemperature adds value to the "temperature" field.
func (_u *TraceUpdate) AddTemperature(v float64) *TraceUpdate {
	_u.mutation.AddTemperature(v)
	return _u
}

// ClearTemperature clears the value of the "temperature" field.
func (_u *TraceUpdate) ClearTemperature() *TraceUpdate {
	_u.mutation.ClearTemperature()
	return _u
}

// SetMaxTokens sets the "max_tokens" field.
func (_u *TraceUpdate) SetMaxTokens(v int) *TraceUpdate {
	_u.mutation.ResetMaxTokens()
	_u.mutation.SetMaxTokens(v)
	return _u
}

// SetNillableMaxTokens sets the "max_tokens" field if the given value is not nil.
func (_u *TraceUpdate) SetNillableMaxTokens(v *int) *TraceUpdate {
	if v != nil {
		_u.SetMaxTokens(*v)
	}
	return _u
}

// AddMaxTokens adds value to the "max_tokens" field.
func (_u *TraceUpdate) AddMaxTokens(v int) *TraceUpdate {
	_u.mutation.AddMaxTokens(v)
	return _u
}

// ClearMaxTokens clears the value of the "max_tokens" field.
func (_u *TraceUpdate) ClearMaxTokens() *TraceUpdate {
	_u.mutation.ClearMaxTokens()
	return _u
}

// SetFinishReason sets the "finish_reason" field.
func (_u *TraceUpdate) SetFinishReason(v string) *TraceUpdate {
	_u.mutation.SetFinishReason(v)
	return _u
}

// SetNillableFinishReason sets the "finish_reason" field if the given value is not nil.
func (_u *TraceUpdate) SetNillableFinishReason(v *string) *TraceUpdate {
	if v != nil {
		_u.SetFinishReason(*v)
	}
	return _u
}

// ClearFinishReason clears the value of the "finish_reason" field.
func (_u *TraceUpdate) ClearFinishReason() *TraceUpdate {
	_u.mutation.ClearFinishReason()
	return _u
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_u *TraceUpdate) SetPromptTokens(v int) *TraceUpdate {
	_u.mutation.ResetPromptTokens()
	_u.mutation.SetPromptTokens(v)
	return _u
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_u *TraceUpdate) SetNillablePromptTokens(v *int) *TraceUpdate {
	if v != nil {
		_u.SetPromptTokens(*v)
	}
	return _u
}

// AddPromptTokens adds value to the "prompt_tokens" field.
func (_u *TraceUpdate) AddPromptTokens(v int) *TraceUpdate {
	_u.mutation.AddPromptTokens(v)
	return _u
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_u *TraceUpdate) SetCompletionTokens(v int) *TraceUpdate {
	_u.mutation.ResetCompletionTokens()
	_u.mutation.SetCompletionTokens(v)
	return _u
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_u *TraceUpdate) SetNillableCompletionTokens(v *int) *TraceUpdate {
	if v != nil {
		_u.SetCompletionTokens(*v)
	}
	return _u
}

// AddCompletionTokens adds value to the "completion_tokens" field.
func (_u *TraceUpdate) AddCompletionTokens(v int) *TraceUpdate {
	_u.mutation.AddCompletionTokens(v)
	return _u
}

// SetCachedTokens sets the "cached_tokens" field.
func (_u *TraceUpdate) SetCachedTokens(v int) *TraceUpdate {
	_u.mutation.ResetCachedTokens()
	_u.mutation.SetCachedTokens(v)
	return _u
}

// SetNillableCachedTokens sets the "cached_tokens" field if the given value is not nil.
func (_u *TraceUpdate) SetNillableCachedTokens(v *int) *TraceUpdate {
	if v != nil {
		_u.SetCachedTokens(*v)
	}
	return _u
}

// AddCachedTokens adds value to the "cached_tokens" field.
func (_u *TraceUpdate) AddCachedTokens(v int) *TraceUpdate {
	_u.mutation.AddCachedTokens(v)
	return _u
}

// SetReasoningTokens sets the "reasoning_tokens" field.
func (_u *TraceUpdate) SetReasoningTokens(v int) *TraceUpdate {
	_u.mutation.ResetReasoningTokens()
	_u.mutation.SetReasoningTokens(v)
	return _u
}

// SetNillableReasoningTokens sets the "reasoning_tokens" field if the given value is not nil.
func (_u *TraceUpdate) SetNillableReasoningTokens(v *int) *TraceUpdate {
	if v != nil {
		_u.SetReasoningTokens(*v)
	}
	return _u
}

// AddReasoningTokens adds value to the "reasoning_tokens" field.
func (_u *TraceUpdate) AddReasoningTokens(v int) *TraceUpdate {
	_u.mutation.AddReasoningTokens(v)
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *TraceUpdate) SetTotalTokens(v int) *TraceUpdate {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *TraceUpdate) SetNillableTotalTokens(v *int) *TraceUpdate {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *TraceUpdate) AddTotalTokens(v int) *TraceUpdate {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// SetSystemFingerprint sets the "system_fingerprint" field.
func (_u *TraceUpdate) SetSystemFingerprint(v string) *TraceUpdate {
	_u.mutation.SetSystemFingerprint(v)
	return _u
}

// SetNillableSystemFingerprint sets the "system_fingerprint" field if the given value is not nil.
func (_u *TraceUpdate) SetNillableSystemFingerprint(v *string) *TraceUpdate {
	if v != nil {
		_u.SetSystemFingerprint(*v)
	}
	return _u
}

// ClearSystemFingerprint clears the value of the "system_fingerprint" field.
func (_u *TraceUpdate) ClearSystemFingerprint() *TraceUpdate {
	_u.mutation.ClearSystemFingerprint()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TraceUpdate) SetStartedAt(v time.Time) *TraceUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TraceUpdate) SetNillableStartedAt(v *time.Time) *TraceUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TraceUpdate) SetCompletedAt(v time.Time) *TraceUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TraceUpdate) SetNillableCompletedAt(v *time.Time) *TraceUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// SetError sets the "error" field.
func (_u *TraceUpdate) SetError(v string) *TraceUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *TraceUpdate) SetNillableError(v *string) *TraceUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *TraceUpdate) ClearError() *TraceUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetImplementationID sets the "implementation_id" field.
func (_u *TraceUpdate) SetImplementationID(v string) *TraceUpdate {
	_u.mutation.SetImplementationID(v)
	return _u
}

// SetNillableImplementationID sets the "implementation_id" field if the given value is not nil.
func (_u *TraceUpdate) SetNillableImplementationID(v *string) *TraceUpdate {
	if v != nil {
		_u.SetImplementationID(*v)
	}
	return _u
}

// ClearImplementationID clears the value of the "implementation_id" field.
func (_u *TraceUpdate) ClearImplementationID() *TraceUpdate {
	_u.mutation.ClearImplementationID()
	return _u
}

// SetPromptVariables sets the "prompt_variables" field.
func (_u *TraceUpdate) SetPromptVariables(v map[string]string) *TraceUpdate {
	_u.mutation.SetPromptVariables(v)
	return _u
}

// ClearPromptVariables clears the value of the "prompt_variables" field.
func (_u *TraceUpdate) ClearPromptVariables() *TraceUpdate {
	_u.mutation.ClearPromptVariables()
	return _u
}

// SetImplementation sets the "implementation" edge to the Implementation entity.
func (_u *TraceUpdate) SetImplementation(v *Implementation) *TraceUpdate {
	return _u.SetImplementationID(v.ID)
}

// AddGradeIDs adds the "grades" edge to the Grade entity by IDs.
func (_u *TraceUpdate) AddGradeIDs(ids ...string) *TraceUpdate {
	_u.mutation.AddGradeIDs(ids...)
	return _u
}

// AddGrades adds the "grades" edges to the Grade entity.
func (_u *TraceUpdate) AddGrades(v ...*Grade) *TraceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGradeIDs(ids...)
}

// Mutation returns the TraceMutation object of the builder.
func (_u *TraceUpdate) Mutation() *TraceMutation {
	return _u.mutation
}

// ClearImplementation clears the "implementation" edge to the Implementation entity.
func (_u *TraceUpdate) ClearImplementation() *TraceUpdate {
	_u.mutation.ClearImplementation()
	return _u
}

// ClearGrades clears all "grades" edges to the Grade entity.
func (_u *TraceUpdate) ClearGrades() *TraceUpdate {
	_u.mutation.ClearGrades()
	return _u
}

// RemoveGradeIDs removes the "grades" edge to Grade entities by IDs.
func (_u *TraceUpdate) RemoveGradeIDs(ids ...string) *TraceUpdate {
	_u.mutation.RemoveGradeIDs(ids...)
	return _u
}

// RemoveGrades removes "grades" edges to Grade entities.
func (_u *TraceUpdate) RemoveGrades(v ...*Grade) *TraceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGradeIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TraceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TraceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TraceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TraceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TraceUpdate) check() error {
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Trace.project"`)
	}
	return nil
}

func (_u *TraceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(trace.Table, trace.Columns, sqlgraph.NewFieldSpec(trace.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(trace.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Path(); ok {
		_spec.SetField(trace.FieldPath, field.TypeString, value)
	}
	if _u.mutation.PathCleared() {
		_spec.ClearField(trace.FieldPath, field.TypeString)
	}
	if value, ok := _u.mutation.InputItems(); ok {
		_spec.SetField(trace.FieldInputItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInputItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, trace.FieldInputItems, value)
		})
	}
	if value, ok := _u.mutation.OutputItems(); ok {
		_spec.SetField(trace.FieldOutputItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOutputItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, trace.FieldOutputItems, value)
		})
	}
	if _u.mutation.OutputItemsCleared() {
		_spec.ClearField(trace.FieldOutputItems, field.TypeJSON)
	}
	if value, ok := _u.mutation.Tools(); ok {
		_spec.SetField(trace.FieldTools, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTools(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, trace.FieldTools, value)
		})
	}
	if _u.mutation.ToolsCleared() {
		_spec.ClearField(trace.FieldTools, field.TypeJSON)
	}
	if value, ok := _u.mutation.ResponseSchema(); ok {
		_spec.SetField(trace.FieldResponseSchema, field.TypeJSON, value)
	}
	if _u.mutation.ResponseSchemaCleared() {
		_spec.ClearField(trace.FieldResponseSchema, field.TypeJSON)
	}
	if value, ok := _u.mutation.Temperature(); ok {
		_spec.SetField(trace.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTemperature(); ok {
		_spec.AddField(trace.FieldTemperature, field.TypeFloat64, value)
	}
	if _u.mutation.TemperatureCleared() {
		_spec.ClearField(trace.FieldTemperature, field.TypeFloat64)
	}
	if value, ok := _u.mutation.MaxTokens(); ok {
		_spec.SetField(trace.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxTokens(); ok {
		_spec.AddField(trace.FieldMaxTokens, field.TypeInt, value)
	}
	if _u.mutation.MaxTokensCleared() {
		_spec.ClearField(trace.FieldMaxTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.FinishReason(); ok {
		_spec.SetField(trace.FieldFinishReason, field.TypeString, value)
	}
	if _u.mutation.FinishReasonCleared() {
		_spec.ClearField(trace.FieldFinishReason, field.TypeString)
	}
	if value, ok := _u.mutation.PromptTokens(); ok {
		_spec.SetField(trace.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPromptTokens(); ok {
		_spec.AddField(trace.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletionTokens(); ok {
		_spec.SetField(trace.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletionTokens(); ok {
		_spec.AddField(trace.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CachedTokens(); ok {
		_spec.SetField(trace.FieldCachedTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCachedTokens(); ok {
		_spec.AddField(trace.FieldCachedTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReasoningTokens(); ok {
		_spec.SetField(trace.FieldReasoningTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReasoningTokens(); ok {
		_spec.AddField(trace.FieldReasoningTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(trace.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(trace.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SystemFingerprint(); ok {
		_spec.SetField(trace.FieldSystemFingerprint, field.TypeString, value)
	}
	if _u.mutation.SystemFingerprintCleared() {
		_spec.ClearField(trace.FieldSystemFingerprint, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(trace.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(trace.FieldCompletedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(trace.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(trace.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.PromptVariables(); ok {
		_spec.SetField(trace.FieldPromptVariables, field.TypeJSON, value)
	}
	if _u.mutation.PromptVariablesCleared() {
		_spec.ClearField(trace.FieldPromptVariables, field.TypeJSON)
	}
	if _u.mutation.ImplementationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   trace.ImplementationTable,
			Columns: []string{trace.ImplementationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(implementation.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ImplementationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   trace.ImplementationTable,
			Columns: []string{trace.ImplementationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(implementation.FieldID, field.TypeString),
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
			Table:   trace.GradesTable,
			Columns: []string{trace.GradesColumn},
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
			Table:   trace.GradesTable,
			Columns: []string{trace.GradesColumn},
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
			Table:   trace.GradesTable,
			Columns: []string{trace.GradesColumn},
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
			err = &NotFoundError{trace.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TraceUpdateOne is the builder for updating a single Trace entity.
type TraceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TraceMutation
}

// SetModel sets the "model" field.
func (_u *TraceUpdateOne) SetModel(v string) *TraceUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *TraceUpdateOne) SetNillableModel(v *string) *TraceUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetPath sets the "path" field.
func (_u *TraceUpdateOne) SetPath(v string) *TraceUpdateOne {
	_u.mutation.SetPath(v)
	return _u
}

// SetNillablePath sets the "path" field if the given value is not nil.
func (_u *TraceUpdateOne) SetNillablePath(v *string) *TraceUpdateOne {
	if v != nil {
		_u.SetPath(*v)
	}
	return _u
}

// ClearPath clears the value of the "path" field.
func (_u *TraceUpdateOne) ClearPath() *TraceUpdateOne {
	_u.mutation.ClearPath()
	return _u
}

// SetInputItems sets the "input_items" field.
func (_u *TraceUpdateOne) SetInputItems(v []models.TraceItem) *TraceUpdateOne {
	_u.mutation.SetInputItems(v)
	return _u
}

// AppendInputItems appends value to the "input_items" field.
func (_u *TraceUpdateOne) AppendInputItems(v []models.TraceItem) *TraceUpdateOne {
	_u.mutation.AppendInputItems(v)
	return _u
}

// SetOutputItems sets the "output_items" field.
func (_u *TraceUpdateOne) SetOutputItems(v []models.TraceItem) *TraceUpdateOne {
	_u.mutation.SetOutputItems(v)
	return _u
}

// AppendOutputItems appends value to the "output_items" field.
func (_u *TraceUpdateOne) AppendOutputItems(v []models.TraceItem) *TraceUpdateOne {
	_u.mutation.AppendOutputItems(v)
	return _u
}

// ClearOutputItems clears the value of the "output_items" field.
func (_u *TraceUpdateOne) ClearOutputItems() *TraceUpdateOne {
	_u.mutation.ClearOutputItems()
	return _u
}

// SetTools sets the "tools" field.
func (_u *TraceUpdateOne) SetTools(v []models.ToolDefinition) *TraceUpdateOne {
	_u.mutation.SetTools(v)
	return _u
}

// AppendTools appends value to the "tools" field.
func (_u *TraceUpdateOne) AppendTools(v []models.ToolDefinition) *TraceUpdateOne {
	_u.mutation.AppendTools(v)
	return _u
}

// ClearTools clears the value of the "tools" field.
func (_u *TraceUpdateOne) ClearTools() *TraceUpdateOne {
	_u.mutation.ClearTools()
	return _u
}

// SetResponseSchema sets the "response_schema" field.
func (_u *TraceUpdateOne) SetResponseSchema(v map[string]interface{}) *TraceUpdateOne {
	_u.mutation.SetResponseSchema(v)
	return _u
}

// ClearResponseSchema clears the value of the "response_schema" field.
func (_u *TraceUpdateOne) ClearResponseSchema() *TraceUpdateOne {
	_u.mutation.ClearResponseSchema()
	return _u
}

// SetTemperature sets the "temperature" field.
func (_u *TraceUpdateOne) SetTemperature(v float64) *TraceUpdateOne {
	_u.mutation.ResetTemperature()
	_u.mutation.SetTemperature(v)
	return _u
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_u *TraceUpdateOne) SetNillableTemperature(v *float64) *TraceUpdateOne {
	if v != nil {
		_u.SetTemperature(*v)
	}
	return _u
}

// AddTemperature adds value to the "temperature" field.
func (_u *TraceUpdateOne) AddTemperature(v float64) *TraceUpdateOne {
	_u.mutation.AddTemperature(v)
	return _u
}

// ClearTemperature clears the value of the "temperature" field.
func (_u *TraceUpdateOne) ClearTemperature() *TraceUpdateOne {
	_u.mutation.ClearTemperature()
	return _u
}

// SetMaxTokens sets the "max_tokens" field.
func (_u *TraceUpdateOne) SetMaxTokens(v int) *TraceUpdateOne {
	_u.mutation.ResetMaxTokens()
	_u.mutation.SetMaxTokens(v)
	return _u
}

// SetNillableMaxTokens sets the "max_tokens" field if the given value is not nil.
func (_u *TraceUpdateOne) SetNillableMaxTokens(v *int) *TraceUpdateOne {
	if v != nil {
		_u.SetMaxTokens(*v)
	}
	return _u
}

// AddMaxTokens adds value to the "max_tokens" field.
func (_u *TraceUpdateOne) AddMaxTokens(v int) *TraceUpdateOne {
	_u.mutation.AddMaxTokens(v)
	return _u
}

// ClearMaxTokens clears the value of the "max_tokens" field.
func (_u *TraceUpdateOne) ClearMaxTokens() *TraceUpdateOne {
	_u.mutation.ClearMaxTokens()
	return _u
}

// SetFinishReason sets the "finish_reason" field.
func (_u *TraceUpdateOne) SetFinishReason(v string) *TraceUpdateOne {
	_u.mutation.SetFinishReason(v)
	return _u
}

// SetNillableFinishReason sets the "finish_reason" field if the given value is not nil.
func (_u *TraceUpdateOne) SetNillableFinishReason(v *string) *TraceUpdateOne {
	if v != nil {
		_u.SetFinishReason(*v)
	}
	return _u
}

// ClearFinishReason clears the value of the "finish_reason" field.
func (_u *TraceUpdateOne) ClearFinishReason() *TraceUpdateOne {
	_u.mutation.ClearFinishReason()
	return _u
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_u *TraceUpdateOne) SetPromptTokens(v int) *TraceUpdateOne {
	_u.mutation.ResetPromptTokens()
	_u.mutation.SetPromptTokens(v)
	return _u
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_u *TraceUpdateOne) SetNillablePromptTokens(v *int) *TraceUpdateOne {
	if v != nil {
		_u.SetPromptTokens(*v)
	}
	return _u
}

// AddPromptTokens adds value to the "prompt_tokens" field.
func (_u *TraceUpdateOne) AddPromptTokens(v int) *TraceUpdateOne {
	_u.mutation.AddPromptTokens(v)
	return _u
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_u *TraceUpdateOne) SetCompletionTokens(v int) *TraceUpdateOne {
	_u.mutation.ResetCompletionTokens()
	_u.mutation.SetCompletionTokens(v)
	return _u
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_u *TraceUpdateOne) SetNillableCompletionTokens(v *int) *TraceUpdateOne {
	if v != nil {
		_u.SetCompletionTokens(*v)
	}
	return _u
}

// AddCompletionTokens adds value to the "completion_tokens" field.
func (_u *TraceUpdateOne) AddCompletionTokens(v int) *TraceUpdateOne {
	_u.mutation.AddCompletionTokens(v)
	return _u
}

// SetCachedTokens sets the "cached_tokens" field.
func (_u *TraceUpdateOne) SetCachedTokens(v int) *TraceUpdateOne {
	_u.mutation.ResetCachedTokens()
	_u.mutation.SetCachedTokens(v)
	return _u
}

// SetNillableCachedTokens sets the "cached_tokens" field if the given value is not nil.
func (_u *TraceUpdateOne) SetNillableCachedTokens(v *int) *TraceUpdateOne {
	if v != nil {
		_u.SetCachedTokens(*v)
	}
	return _u
}

// AddCachedTokens adds value to the "cached_tokens" field.
func (_u *TraceUpdateOne) AddCachedTokens(v int) *TraceUpdateOne {
	_u.mutation.AddCachedTokens(v)
	return _u
}

// SetReasoningTokens sets the "reasoning_tokens" field.
func (_u *TraceUpdateOne) SetReasoningTokens(v int) *TraceUpdateOne {
	_u.mutation.ResetReasoningTokens()
	_u.mutation.SetReasoningTokens(v)
	return _u
}

// SetNillableReasoningTokens sets the "reasoning_tokens" field if the given value is not nil.
func (_u *TraceUpdateOne) SetNillableReasoningTokens(v *int) *TraceUpdateOne {
	if v != nil {
		_u.SetReasoningTokens(*v)
	}
	return _u
}

// AddReasoningTokens adds value to the "reasoning_tokens" field.
func (_u *TraceUpdateOne) AddReasoningTokens(v int) *TraceUpdateOne {
	_u.mutation.AddReasoningTokens(v)
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *TraceUpdateOne) SetTotalTokens(v int) *TraceUpdateOne {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *TraceUpdateOne) SetNillableTotalTokens(v *int) *TraceUpdateOne {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *TraceUpdateOne) AddTotalTokens(v int) *TraceUpdateOne {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// SetSystemFingerprint sets the "system_fingerprint" field.
func (_u *TraceUpdateOne) SetSystemFingerprint(v string) *TraceUpdateOne {
	_u.mutation.SetSystemFingerprint(v)
	return _u
}

// SetNillableSystemFingerprint sets the "system_fingerprint" field if the given value is not nil.
func (_u *TraceUpdateOne) SetNillableSystemFingerprint(v *string) *TraceUpdateOne {
	if v != nil {
		_u.SetSystemFingerprint(*v)
	}
	return _u
}

// ClearSystemFingerprint clears the value of the "system_fingerprint" field.
func (_u *TraceUpdateOne) ClearSystemFingerprint() *TraceUpdateOne {
	_u.mutation.ClearSystemFingerprint()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *TraceUpdateOne) SetStartedAt(v time.Time) *TraceUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *TraceUpdateOne) SetNillableStartedAt(v *time.Time) *TraceUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TraceUpdateOne) SetCompletedAt(v time.Time) *TraceUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TraceUpdateOne) SetNillableCompletedAt(v *time.Time) *TraceUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// SetError sets the "error" field.
func (_u *TraceUpdateOne) SetError(v string) *TraceUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *TraceUpdateOne) SetNillableError(v *string) *TraceUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *TraceUpdateOne) ClearError() *TraceUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetImplementationID sets the "implementation_id" field.
func (_u *TraceUpdateOne) SetImplementationID(v string) *TraceUpdateOne {
	_u.mutation.SetImplementationID(v)
	return _u
}

// SetNillableImplementationID sets the "implementation_id" field if the given value is not nil.
func (_u *TraceUpdateOne) SetNillableImplementationID(v *string) *TraceUpdateOne {
	if v != nil {
		_u.SetImplementationID(*v)
	}
	return _u
}

// ClearImplementationID clears the value of the "implementation_id" field.
func (_u *TraceUpdateOne) ClearImplementationID() *TraceUpdateOne {
	_u.mutation.ClearImplementationID()
	return _u
}

// SetPromptVariables sets the "prompt_variables" field.
func (_u *TraceUpdateOne) SetPromptVariables(v map[string]string) *TraceUpdateOne {
	_u.mutation.SetPromptVariables(v)
	return _u
}

// ClearPromptVariables clears the value of the "prompt_variables" field.
func (_u *TraceUpdateOne) ClearPromptVariables() *TraceUpdateOne {
	_u.mutation.ClearPromptVariables()
	return _u
}

// SetImplementation sets the "implementation" edge to the Implementation entity.
func (_u *TraceUpdateOne) SetImplementation(v *Implementation) *TraceUpdateOne {
	return _u.SetImplementationID(v.ID)
}

// AddGradeIDs adds the "grades" edge to the Grade entity by IDs.
func (_u *TraceUpdateOne) AddGradeIDs(ids ...string) *TraceUpdateOne {
	_u.mutation.AddGradeIDs(ids...)
	return _u
}

// AddGrades adds the "grades" edges to the Grade entity.
func (_u *TraceUpdateOne) AddGrades(v ...*Grade) *TraceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGradeIDs(ids...)
}

// Mutation returns the TraceMutation object of the builder.
func (_u *TraceUpdateOne) Mutation() *TraceMutation {
	return _u.mutation
}

// ClearImplementation clears the "implementation" edge to the Implementation entity.
func (_u *TraceUpdateOne) ClearImplementation() *TraceUpdateOne {
	_u.mutation.ClearImplementation()
	return _u
}

// ClearGrades clears all "grades" edges to the Grade entity.
func (_u *TraceUpdateOne) ClearGrades() *TraceUpdateOne {
	_u.mutation.ClearGrades()
	return _u
}

// RemoveGradeIDs removes the "grades" edge to Grade entities by IDs.
func (_u *TraceUpdateOne) RemoveGradeIDs(ids ...string) *TraceUpdateOne {
	_u.mutation.RemoveGradeIDs(ids...)
	return _u
}

// RemoveGrades removes "grades" edges to Grade entities.
func (_u *TraceUpdateOne) RemoveGrades(v ...*Grade) *TraceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGradeIDs(ids...)
}

// Where appends a list predicates to the TraceUpdate builder.
func (_u *TraceUpdateOne) Where(ps ...predicate.Trace) *TraceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TraceUpdateOne) Select(field string, fields ...string) *TraceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Trace entity.
func (_u *TraceUpdateOne) Save(ctx context.Context) (*Trace, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TraceUpdateOne) SaveX(ctx context.Context) *Trace {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TraceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TraceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TraceUpdateOne) check() error {
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Trace.project"`)
	}
	return nil
}

func (_u *TraceUpdateOne) sqlSave(ctx context.Context) (_node *Trace, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(trace.Table, trace.Columns, sqlgraph.NewFieldSpec(trace.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Trace.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, trace.FieldID)
		for _, f := range fields {
			if !trace.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != trace.FieldID {
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
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(trace.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Path(); ok {
		_spec.SetField(trace.FieldPath, field.TypeString, value)
	}
	if _u.mutation.PathCleared() {
		_spec.ClearField(trace.FieldPath, field.TypeString)
	}
	if value, ok := _u.mutation.InputItems(); ok {
		_spec.SetField(trace.FieldInputItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInputItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, trace.FieldInputItems, value)
		})
	}
	if value, ok := _u.mutation.OutputItems(); ok {
		_spec.SetField(trace.FieldOutputItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOutputItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, trace.FieldOutputItems, value)
		})
	}
	if _u.mutation.OutputItemsCleared() {
		_spec.ClearField(trace.FieldOutputItems, field.TypeJSON)
	}
	if value, ok := _u.mutation.Tools(); ok {
		_spec.SetField(trace.FieldTools, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTools(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, trace.FieldTools, value)
		})
	}
	if _u.mutation.ToolsCleared() {
		_spec.ClearField(trace.FieldTools, field.TypeJSON)
	}
	if value, ok := _u.mutation.ResponseSchema(); ok {
		_spec.SetField(trace.FieldResponseSchema, field.TypeJSON, value)
	}
	if _u.mutation.ResponseSchemaCleared() {
		_spec.ClearField(trace.FieldResponseSchema, field.TypeJSON)
	}
	if value, ok := _u.mutation.Temperature(); ok {
		_spec.SetField(trace.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTemperature(); ok {
		_spec.AddField(trace.FieldTemperature, field.TypeFloat64, value)
	}
	if _u.mutation.TemperatureCleared() {
		_spec.ClearField(trace.FieldTemperature, field.TypeFloat64)
	}
	if value, ok := _u.mutation.MaxTokens(); ok {
		_spec.SetField(trace.FieldMaxTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxTokens(); ok {
		_spec.AddField(trace.FieldMaxTokens, field.TypeInt, value)
	}
	if _u.mutation.MaxTokensCleared() {
		_spec.ClearField(trace.FieldMaxTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.FinishReason(); ok {
		_spec.SetField(trace.FieldFinishReason, field.TypeString, value)
	}
	if _u.mutation.FinishReasonCleared() {
		_spec.ClearField(trace.FieldFinishReason, field.TypeString)
	}
	if value, ok := _u.mutation.PromptTokens(); ok {
		_spec.SetField(trace.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPromptTokens(); ok {
		_spec.AddField(trace.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletionTokens(); ok {
		_spec.SetField(trace.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletionTokens(); ok {
		_spec.AddField(trace.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CachedTokens(); ok {
		_spec.SetField(trace.FieldCachedTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCachedTokens(); ok {
		_spec.AddField(trace.FieldCachedTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReasoningTokens(); ok {
		_spec.SetField(trace.FieldReasoningTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReasoningTokens(); ok {
		_spec.AddField(trace.FieldReasoningTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(trace.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(trace.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SystemFingerprint(); ok {
		_spec.SetField(trace.FieldSystemFingerprint, field.TypeString, value)
	}
	if _u.mutation.SystemFingerprintCleared() {
		_spec.ClearField(trace.FieldSystemFingerprint, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(trace.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(trace.FieldCompletedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(trace.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(trace.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.PromptVariables(); ok {
		_spec.SetField(trace.FieldPromptVariables, field.TypeJSON, value)
	}
	if _u.mutation.PromptVariablesCleared() {
		_spec.ClearField(trace.FieldPromptVariables, field.TypeJSON)
	}
	if _u.mutation.ImplementationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   trace.ImplementationTable,
			Columns: []string{trace.ImplementationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(implementation.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ImplementationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   trace.ImplementationTable,
			Columns: []string{trace.ImplementationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(implementation.FieldID, field.TypeString),
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
			Table:   trace.GradesTable,
			Columns: []string{trace.GradesColumn},
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
			Table:   trace.GradesTable,
			Columns: []string{trace.GradesColumn},
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
			Table:   trace.GradesTable,
			Columns: []string{trace.GradesColumn},
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
	_node = &Trace{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trace.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
