// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/promptlens/promptlens/ent/grade"
	"github.com/promptlens/promptlens/ent/predicate"
)

// GradeUpdate is the builder for updating Grade entities.
type GradeUpdate struct {
	config
	hooks    []Hook
	mutation *GradeMutation
}

// Where appends a list predicates to the GradeUpdate builder.
func (_u *GradeUpdate) Where(ps ...predicate.Grade) *GradeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetScoreFloat sets the "score_float" field.
func (_u *GradeUpdate) SetScoreFloat(v float64) *GradeUpdate {
	_u.mutation.ResetScoreFloat()
	_u.mutation.SetScoreFloat(v)
	return _u
}

// SetNillableScoreFloat sets the "score_float" field if the given value is not nil.
func (_u *GradeUpdate) SetNillableScoreFloat(v *float64) *GradeUpdate {
	if v != nil {
		_u.SetScoreFloat(*v)
	}
	return _u
}

// AddScoreFloat adds value to the "score_float" field.
func (_u *GradeUpdate) AddScoreFloat(v float64) *GradeUpdate {
	_u.mutation.AddScoreFloat(v)
	return _u
}

// ClearScoreFloat clears the value of the "score_float" field.
func (_u *GradeUpdate) ClearScoreFloat() *GradeUpdate {
	_u.mutation.ClearScoreFloat()
	return _u
}

// SetScoreBoolean sets the "score_boolean" field.
func (_u *GradeUpdate) SetScoreBoolean(v bool) *GradeUpdate {
	_u.mutation.SetScoreBoolean(v)
	return _u
}

// SetNillableScoreBoolean sets the "score_boolean" field if the given value is not nil.
func (_u *GradeUpdate) SetNillableScoreBoolean(v *bool) *GradeUpdate {
	if v != nil {
		_u.SetScoreBoolean(*v)
	}
	return _u
}

// ClearScoreBoolean clears the value of the "score_boolean" field.
func (_u *GradeUpdate) ClearScoreBoolean() *GradeUpdate {
	_u.mutation.ClearScoreBoolean()
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *GradeUpdate) SetReasoning(v string) *GradeUpdate {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *GradeUpdate) SetNillableReasoning(v *string) *GradeUpdate {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// ClearReasoning clears the value of the "reasoning" field.
func (_u *GradeUpdate) ClearReasoning() *GradeUpdate {
	_u.mutation.ClearReasoning()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *GradeUpdate) SetConfidence(v float64) *GradeUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *GradeUpdate) SetNillableConfidence(v *float64) *GradeUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *GradeUpdate) AddConfidence(v float64) *GradeUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *GradeUpdate) ClearConfidence() *GradeUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_u *GradeUpdate) SetPromptTokens(v int) *GradeUpdate {
	_u.mutation.ResetPromptTokens()
	_u.mutation.SetPromptTokens(v)
	return _u
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_u *GradeUpdate) SetNillablePromptTokens(v *int) *GradeUpdate {
	if v != nil {
		_u.SetPromptTokens(*v)
	}
	return _u
}

// AddPromptTokens adds value to the "prompt_tokens" field.
func (_u *GradeUpdate) AddPromptTokens(v int) *GradeUpdate {
	_u.mutation.AddPromptTokens(v)
	return _u
}

// ClearPromptTokens clears the value of the "prompt_tokens" field.
func (_u *GradeUpdate) ClearPromptTokens() *GradeUpdate {
	_u.mutation.ClearPromptTokens()
	return _u
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_u *GradeUpdate) SetCompletionTokens(v int) *GradeUpdate {
	_u.mutation.ResetCompletionTokens()
	_u.mutation.SetCompletionTokens(v)
	return _u
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_u *GradeUpdate) SetNillableCompletionTokens(v *int) *GradeUpdate {
	if v != nil {
		_u.SetCompletionTokens(*v)
	}
	return _u
}

// AddCompletionTokens adds value to the "completion_tokens" field.
func (_u *GradeUpdate) AddCompletionTokens(v int) *GradeUpdate {
	_u.mutation.AddCompletionTokens(v)
	return _u
}

// ClearCompletionTokens clears the value of the "completion_tokens" field.
func (_u *GradeUpdate) ClearCompletionTokens() *GradeUpdate {
	_u.mutation.ClearCompletionTokens()
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *GradeUpdate) SetTotalTokens(v int) *GradeUpdate {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *GradeUpdate) SetNillableTotalTokens(v *int) *GradeUpdate {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *GradeUpdate) AddTotalTokens(v int) *GradeUpdate {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// ClearTotalTokens clears the value of the "total_tokens" field.
func (_u *GradeUpdate) ClearTotalTokens() *GradeUpdate {
	_u.mutation.ClearTotalTokens()
	return _u
}

// SetGradingStartedAt sets the "grading_started_at" field.
func (_u *GradeUpdate) SetGradingStartedAt(v time.Time) *GradeUpdate {
	_u.mutation.SetGradingStartedAt(v)
	return _u
}

// SetNillableGradingStartedAt sets the "grading_started_at" field if the given value is not nil.
func (_u *GradeUpdate) SetNillableGradingStartedAt(v *time.Time) *GradeUpdate {
	if v != nil {
		_u.SetGradingStartedAt(*v)
	}
	return _u
}

// SetGradingCompletedAt sets the "grading_completed_at" field.
func (_u *GradeUpdate) SetGradingCompletedAt(v time.Time) *GradeUpdate {
	_u.mutation.SetGradingCompletedAt(v)
	return _u
}

// SetNillableGradingCompletedAt sets the "grading_completed_at" field if the given value is not nil.
func (_u *GradeUpdate) SetNillableGradingCompletedAt(v *time.Time) *GradeUpdate {
	if v != nil {
		_u.SetGradingCompletedAt(*v)
	}
	return _u
}

// SetError sets the "error" field.
func (_u *GradeUpdate) SetError(v string) *GradeUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *GradeUpdate) SetNillableError(v *string) *GradeUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *GradeUpdate) ClearError() *GradeUpdate {
	_u.mutation.ClearError()
	return _u
}

// Mutation returns the GradeMutation object of the builder.
func (_u *GradeUpdate) Mutation() *GradeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GradeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GradeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GradeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GradeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GradeUpdate) check() error {
	if _u.mutation.GraderCleared() && len(_u.mutation.GraderIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Grade.grader"`)
	}
	return nil
}

func (_u *GradeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(grade.Table, grade.Columns, sqlgraph.NewFieldSpec(grade.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ScoreFloat(); ok {
		_spec.SetField(grade.FieldScoreFloat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScoreFloat(); ok {
		_spec.AddField(grade.FieldScoreFloat, field.TypeFloat64, value)
	}
	if _u.mutation.ScoreFloatCleared() {
		_spec.ClearField(grade.FieldScoreFloat, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ScoreBoolean(); ok {
		_spec.SetField(grade.FieldScoreBoolean, field.TypeBool, value)
	}
	if _u.mutation.ScoreBooleanCleared() {
		_spec.ClearField(grade.FieldScoreBoolean, field.TypeBool)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(grade.FieldReasoning, field.TypeString, value)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(grade.FieldReasoning, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(grade.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(grade.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(grade.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PromptTokens(); ok {
		_spec.SetField(grade.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPromptTokens(); ok {
		_spec.AddField(grade.FieldPromptTokens, field.TypeInt, value)
	}
	if _u.mutation.PromptTokensCleared() {
		_spec.ClearField(grade.FieldPromptTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.CompletionTokens(); ok {
		_spec.SetField(grade.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletionTokens(); ok {
		_spec.AddField(grade.FieldCompletionTokens, field.TypeInt, value)
	}
	if _u.mutation.CompletionTokensCleared() {
		_spec.ClearField(grade.FieldCompletionTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(grade.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(grade.FieldTotalTokens, field.TypeInt, value)
	}
	if _u.mutation.TotalTokensCleared() {
		_spec.ClearField(grade.FieldTotalTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.GradingStartedAt(); ok {
		_spec.SetField(grade.FieldGradingStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.GradingCompletedAt(); ok {
		_spec.SetField(grade.FieldGradingCompletedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(grade.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(grade.FieldError, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{grade.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GradeUpdateOne is the builder for updating a single Grade entity.
type GradeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GradeMutation
}

// SetScoreFloat sets the "score_float" field.
func (_u *GradeUpdateOne) SetScoreFloat(v float64) *GradeUpdateOne {
	_u.mutation.ResetScoreFloat()
	_u.mutation.SetScoreFloat(v)
	return _u
}

// SetNillableScoreFloat sets the "score_float" field if the given value is not nil.
func (_u *GradeUpdateOne) SetNillableScoreFloat(v *float64) *GradeUpdateOne {
	if v != nil {
		_u.SetScoreFloat(*v)
	}
	return _u
}

// AddScoreFloat adds value to the "score_float" field.
func (_u *GradeUpdateOne) AddScoreFloat(v float64) *GradeUpdateOne {
	_u.mutation.AddScoreFloat(v)
	return _u
}

// ClearScoreFloat clears the value of the "score_float" field.
func (_u *GradeUpdateOne) ClearScoreFloat() *GradeUpdateOne {
	_u.mutation.ClearScoreFloat()
	return _u
}

// SetScoreBoolean sets the "score_boolean" field.
func (_u *GradeUpdateOne) SetScoreBoolean(v bool) *GradeUpdateOne {
	_u.mutation.SetScoreBoolean(v)
	return _u
}

// SetNillableScoreBoolean sets the "score_boolean" field if the given value is not nil.
func (_u *GradeUpdateOne) SetNillableScoreBoolean(v *bool) *GradeUpdateOne {
	if v != nil {
		_u.SetScoreBoolean(*v)
	}
	return _u
}

// ClearScoreBoolean clears the value of the "score_boolean" field.
func (_u *GradeUpdateOne) ClearScoreBoolean() *GradeUpdateOne {
	_u.mutation.ClearScoreBoolean()
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *GradeUpdateOne) SetReasoning(v string) *GradeUpdateOne {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *GradeUpdateOne) SetNillableReasoning(v *string) *GradeUpdateOne {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// ClearReasoning clears the value of the "reasoning" field.
func (_u *GradeUpdateOne) ClearReasoning() *GradeUpdateOne {
	_u.mutation.ClearReasoning()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *GradeUpdateOne) SetConfidence(v float64) *GradeUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *GradeUpdateOne) SetNillableConfidence(v *float64) *GradeUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *GradeUpdateOne) AddConfidence(v float64) *GradeUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *GradeUpdateOne) ClearConfidence() *GradeUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_u *GradeUpdateOne) SetPromptTokens(v int) *GradeUpdateOne {
	_u.mutation.ResetPromptTokens()
	_u.mutation.SetPromptTokens(v)
	return _u
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_u *GradeUpdateOne) SetNillablePromptTokens(v *int) *GradeUpdateOne {
	if v != nil {
		_u.SetPromptTokens(*v)
	}
	return _u
}

// AddPromptTokens adds value to the "prompt_tokens" field.
func (_u *GradeUpdateOne) AddPromptTokens(v int) *GradeUpdateOne {
	_u.mutation.AddPromptTokens(v)
	return _u
}

// ClearPromptTokens clears the value of the "prompt_tokens" field.
func (_u *GradeUpdateOne) ClearPromptTokens() *GradeUpdateOne {
	_u.mutation.ClearPromptTokens()
	return _u
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_u *GradeUpdateOne) SetCompletionTokens(v int) *GradeUpdateOne {
	_u.mutation.ResetCompletionTokens()
	_u.mutation.SetCompletionTokens(v)
	return _u
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_u *GradeUpdateOne) SetNillableCompletionTokens(v *int) *GradeUpdateOne {
	if v != nil {
		_u.SetCompletionTokens(*v)
	}
	return _u
}

// AddCompletionTokens adds value to the "completion_tokens" field.
func (_u *GradeUpdateOne) AddCompletionTokens(v int) *GradeUpdateOne {
	_u.mutation.AddCompletionTokens(v)
	return _u
}

// ClearCompletionTokens clears the value of the "completion_tokens" field.
func (_u *GradeUpdateOne) ClearCompletionTokens() *GradeUpdateOne {
	_u.mutation.ClearCompletionTokens()
	return _u
}

// SetTotalTokens sets the "total_tokens" field.
func (_u *GradeUpdateOne) SetTotalTokens(v int) *GradeUpdateOne {
	_u.mutation.ResetTotalTokens()
	_u.mutation.SetTotalTokens(v)
	return _u
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_u *GradeUpdateOne) SetNillableTotalTokens(v *int) *GradeUpdateOne {
	if v != nil {
		_u.SetTotalTokens(*v)
	}
	return _u
}

// AddTotalTokens adds value to the "total_tokens" field.
func (_u *GradeUpdateOne) AddTotalTokens(v int) *GradeUpdateOne {
	_u.mutation.AddTotalTokens(v)
	return _u
}

// ClearTotalTokens clears the value of the "total_tokens" field.
func (_u *GradeUpdateOne) ClearTotalTokens() *GradeUpdateOne {
	_u.mutation.ClearTotalTokens()
	return _u
}

// SetGradingStartedAt sets the "grading_started_at" field.
func (_u *GradeUpdateOne) SetGradingStartedAt(v time.Time) *GradeUpdateOne {
	_u.mutation.SetGradingStartedAt(v)
	return _u
}

// SetNillableGradingStartedAt sets the "grading_started_at" field if the given value is not nil.
func (_u *GradeUpdateOne) SetNillableGradingStartedAt(v *time.Time) *GradeUpdateOne {
	if v != nil {
		_u.SetGradingStartedAt(*v)
	}
	return _u
}

// SetGradingCompletedAt sets the "grading_completed_at" field.
func (_u *GradeUpdateOne) SetGradingCompletedAt(v time.Time) *GradeUpdateOne {
	_u.mutation.SetGradingCompletedAt(v)
	return _u
}

// SetNillableGradingCompletedAt sets the "grading_completed_at" field if the given value is not nil.
func (_u *GradeUpdateOne) SetNillableGradingCompletedAt(v *time.Time) *GradeUpdateOne {
	if v != nil {
		_u.SetGradingCompletedAt(*v)
	}
	return _u
}

// SetError sets the "error" field.
func (_u *GradeUpdateOne) SetError(v string) *GradeUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *GradeUpdateOne) SetNillableError(v *string) *GradeUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *GradeUpdateOne) ClearError() *GradeUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// Mutation returns the GradeMutation object of the builder.
func (_u *GradeUpdateOne) Mutation() *GradeMutation {
	return _u.mutation
}

// Where appends a list predicates to the GradeUpdate builder.
func (_u *GradeUpdateOne) Where(ps ...predicate.Grade) *GradeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GradeUpdateOne) Select(field string, fields ...string) *GradeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Grade entity.
func (_u *GradeUpdateOne) Save(ctx context.Context) (*Grade, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GradeUpdateOne) SaveX(ctx context.Context) *Grade {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GradeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GradeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GradeUpdateOne) check() error {
	if _u.mutation.GraderCleared() && len(_u.mutation.GraderIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Grade.grader"`)
	}
	return nil
}

func (_u *GradeUpdateOne) sqlSave(ctx context.Context) (_node *Grade, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(grade.Table, grade.Columns, sqlgraph.NewFieldSpec(grade.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Grade.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, grade.FieldID)
		for _, f := range fields {
			if !grade.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != grade.FieldID {
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
	if value, ok := _u.mutation.ScoreFloat(); ok {
		_spec.SetField(grade.FieldScoreFloat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScoreFloat(); ok {
		_spec.AddField(grade.FieldScoreFloat, field.TypeFloat64, value)
	}
	if _u.mutation.ScoreFloatCleared() {
		_spec.ClearField(grade.FieldScoreFloat, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ScoreBoolean(); ok {
		_spec.SetField(grade.FieldScoreBoolean, field.TypeBool, value)
	}
	if _u.mutation.ScoreBooleanCleared() {
		_spec.ClearField(grade.FieldScoreBoolean, field.TypeBool)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(grade.FieldReasoning, field.TypeString, value)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(grade.FieldReasoning, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(grade.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(grade.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(grade.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PromptTokens(); ok {
		_spec.SetField(grade.FieldPromptTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPromptTokens(); ok {
		_spec.AddField(grade.FieldPromptTokens, field.TypeInt, value)
	}
	if _u.mutation.PromptTokensCleared() {
		_spec.ClearField(grade.FieldPromptTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.CompletionTokens(); ok {
		_spec.SetField(grade.FieldCompletionTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletionTokens(); ok {
		_spec.AddField(grade.FieldCompletionTokens, field.TypeInt, value)
	}
	if _u.mutation.CompletionTokensCleared() {
		_spec.ClearField(grade.FieldCompletionTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.TotalTokens(); ok {
		_spec.SetField(grade.FieldTotalTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTokens(); ok {
		_spec.AddField(grade.FieldTotalTokens, field.TypeInt, value)
	}
	if _u.mutation.TotalTokensCleared() {
		_spec.ClearField(grade.FieldTotalTokens, field.TypeInt)
	}
	if value, ok := _u.mutation.GradingStartedAt(); ok {
		_spec.SetField(grade.FieldGradingStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.GradingCompletedAt(); ok {
		_spec.SetField(grade.FieldGradingCompletedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(grade.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(grade.FieldError, field.TypeString)
	}
	_node = &Grade{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{grade.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
