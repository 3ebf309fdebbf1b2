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
	"github.com/promptlens/promptlens/ent/evaluation"
	"github.com/promptlens/promptlens/ent/executionresult"
	"github.com/promptlens/promptlens/ent/predicate"
)

// EvaluationUpdate is the builder for updating Evaluation entities.
type EvaluationUpdate struct {
	config
	hooks    []Hook
	mutation *EvaluationMutation
}

// Where appends a list predicates to the EvaluationUpdate builder.
func (_u *EvaluationUpdate) Where(ps ...predicate.Evaluation) *EvaluationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *EvaluationUpdate) SetStatus(v evaluation.Status) *EvaluationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EvaluationUpdate) SetNillableStatus(v *evaluation.Status) *EvaluationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetGraderScores sets the "grader_scores" field.
func (_u *EvaluationUpdate) SetGraderScores(v map[string]float64) *EvaluationUpdate {
	_u.mutation.SetGraderScores(v)
	return _u
}

// ClearGraderScores clears the value of the "grader_scores" field.
func (_u *EvaluationUpdate) ClearGraderScores() *EvaluationUpdate {
	_u.mutation.ClearGraderScores()
	return _u
}

// SetQualityScore sets the "quality_score" field.
func (_u *EvaluationUpdate) SetQualityScore(v float64) *EvaluationUpdate {
	_u.mutation.ResetQualityScore()
	_u.mutation.SetQualityScore(v)
	return _u
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (_u *EvaluationUpdate) SetNillableQualityScore(v *float64) *EvaluationUpdate {
	if v != nil {
		_u.SetQualityScore(*v)
	}
	return _u
}

// AddQualityScore adds value to the "quality_score" field.
func (_u *EvaluationUpdate) AddQualityScore(v float64) *EvaluationUpdate {
	_u.mutation.AddQualityScore(v)
	return _u
}

// ClearQualityScore clears the value of the "quality_score" field.
func (_u *EvaluationUpdate) ClearQualityScore() *EvaluationUpdate {
	_u.mutation.ClearQualityScore()
	return _u
}

// SetAvgCost sets the "avg_cost" field.
func (_u *EvaluationUpdate) SetAvgCost(v float64) *EvaluationUpdate {
	_u.mutation.ResetAvgCost()
	_u.mutation.SetAvgCost(v)
	return _u
}

// SetNillableAvgCost sets the "avg_cost" field if the given value is not nil.
func (_u *EvaluationUpdate) SetNillableAvgCost(v *float64) *EvaluationUpdate {
	if v != nil {
		_u.SetAvgCost(*v)
	}
	return _u
}

// AddAvgCost adds value to the "avg_cost" field.
func (_u *EvaluationUpdate) AddAvgCost(v float64) *EvaluationUpdate {
	_u.mutation.AddAvgCost(v)
	return _u
}

// ClearAvgCost clears the value of the "avg_cost" field.
func (_u *EvaluationUpdate) ClearAvgCost() *EvaluationUpdate {
	_u.mutation.ClearAvgCost()
	return _u
}

// SetAvgExecutionTimeMs sets the "avg_execution_time_ms" field.
func (_u *EvaluationUpdate) SetAvgExecutionTimeMs(v float64) *EvaluationUpdate {
	_u.mutation.ResetAvgExecutionTimeMs()
	_u.mutation.SetAvgExecutionTimeMs(v)
	return _u
}

// SetNillableAvgExecutionTimeMs sets the "avg_execution_time_ms" field if the given value is not nil.
func (_u *EvaluationUpdate) SetNillableAvgExecutionTimeMs(v *float64) *EvaluationUpdate {
	if v != nil {
		_u.SetAvgExecutionTimeMs(*v)
	}
	return _u
}

// AddAvgExecutionTimeMs adds value to the "avg_execution_time_ms" field.
func (_u *EvaluationUpdate) AddAvgExecutionTimeMs(v float64) *EvaluationUpdate {
	_u.mutation.AddAvgExecutionTimeMs(v)
	return _u
}

// ClearAvgExecutionTimeMs clears the value of the "avg_execution_time_ms" field.
func (_u *EvaluationUpdate) ClearAvgExecutionTimeMs() *EvaluationUpdate {
	_u.mutation.ClearAvgExecutionTimeMs()
	return _u
}

// SetTestCaseCount sets the "test_case_count" field.
func (_u *EvaluationUpdate) SetTestCaseCount(v int) *EvaluationUpdate {
	_u.mutation.ResetTestCaseCount()
	_u.mutation.SetTestCaseCount(v)
	return _u
}

// SetNillableTestCaseCount sets the "test_case_count" field if the given value is not nil.
func (_u *EvaluationUpdate) SetNillableTestCaseCount(v *int) *EvaluationUpdate {
	if v != nil {
		_u.SetTestCaseCount(*v)
	}
	return _u
}

// AddTestCaseCount adds value to the "test_case_count" field.
func (_u *EvaluationUpdate) AddTestCaseCount(v int) *EvaluationUpdate {
	_u.mutation.AddTestCaseCount(v)
	return _u
}

// SetError sets the "error" field.
func (_u *EvaluationUpdate) SetError(v string) *EvaluationUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *EvaluationUpdate) SetNillableError(v *string) *EvaluationUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *EvaluationUpdate) ClearError() *EvaluationUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *EvaluationUpdate) SetCompletedAt(v time.Time) *EvaluationUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *EvaluationUpdate) SetNillableCompletedAt(v *time.Time) *EvaluationUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *EvaluationUpdate) ClearCompletedAt() *EvaluationUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddExecutionResultIDs adds the "execution_results" edge to the ExecutionResult entity by IDs.
func (_u *EvaluationUpdate) AddExecutionResultIDs(ids ...string) *EvaluationUpdate {
	_u.mutation.AddExecutionResultIDs(ids...)
	return _u
}

// AddExecutionResults adds the "execution_results" edges to the ExecutionResult entity.
func (_u *EvaluationUpdate) AddExecutionResults(v ...*ExecutionResult) *EvaluationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExecutionResultIDs(ids...)
}

// Mutation returns the EvaluationMutation object of the builder.
func (_u *EvaluationUpdate) Mutation() *EvaluationMutation {
	return _u.mutation
}

// ClearExecutionResults clears all "execution_results" edges to the ExecutionResult entity.
func (_u *EvaluationUpdate) ClearExecutionResults() *EvaluationUpdate {
	_u.mutation.ClearExecutionResults()
	return _u
}

// RemoveExecutionResultIDs removes the "execution_results" edge to ExecutionResult entities by IDs.
func (_u *EvaluationUpdate) RemoveExecutionResultIDs(ids ...string) *EvaluationUpdate {
	_u.mutation.RemoveExecutionResultIDs(ids...)
	return _u
}

// RemoveExecutionResults removes "execution_results" edges to ExecutionResult entities.
func (_u *EvaluationUpdate) RemoveExecutionResults(v ...*ExecutionResult) *EvaluationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExecutionResultIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EvaluationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvaluationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EvaluationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvaluationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvaluationUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := evaluation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Evaluation.status": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Evaluation.task"`)
	}
	if _u.mutation.ImplementationCleared() && len(_u.mutation.ImplementationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Evaluation.implementation"`)
	}
	return nil
}

func (_u *EvaluationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evaluation.Table, evaluation.Columns, sqlgraph.NewFieldSpec(evaluation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(evaluation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.GraderScores(); ok {
		_spec.SetField(evaluation.FieldGraderScores, field.TypeJSON, value)
	}
	if _u.mutation.GraderScoresCleared() {
		_spec.ClearField(evaluation.FieldGraderScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.QualityScore(); ok {
		_spec.SetField(evaluation.FieldQualityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQualityScore(); ok {
		_spec.AddField(evaluation.FieldQualityScore, field.TypeFloat64, value)
	}
	if _u.mutation.QualityScoreCleared() {
		_spec.ClearField(evaluation.FieldQualityScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AvgCost(); ok {
		_spec.SetField(evaluation.FieldAvgCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgCost(); ok {
		_spec.AddField(evaluation.FieldAvgCost, field.TypeFloat64, value)
	}
	if _u.mutation.AvgCostCleared() {
		_spec.ClearField(evaluation.FieldAvgCost, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AvgExecutionTimeMs(); ok {
		_spec.SetField(evaluation.FieldAvgExecutionTimeMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgExecutionTimeMs(); ok {
		_spec.AddField(evaluation.FieldAvgExecutionTimeMs, field.TypeFloat64, value)
	}
	if _u.mutation.AvgExecutionTimeMsCleared() {
		_spec.ClearField(evaluation.FieldAvgExecutionTimeMs, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TestCaseCount(); ok {
		_spec.SetField(evaluation.FieldTestCaseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTestCaseCount(); ok {
		_spec.AddField(evaluation.FieldTestCaseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(evaluation.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(evaluation.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(evaluation.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(evaluation.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.ExecutionResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExecutionResultsIDs(); len(nodes) > 0 && !_u.mutation.ExecutionResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExecutionResultsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evaluation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EvaluationUpdateOne is the builder for updating a single Evaluation entity.
type EvaluationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EvaluationMutation
}

// SetStatus sets the "status" field.
func (_u *EvaluationUpdateOne) SetStatus(v evaluation.Status) *EvaluationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EvaluationUpdateOne) SetNillableStatus(v *evaluation.Status) *EvaluationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetGraderScores sets the "grader_scores" field.
func (_u *EvaluationUpdateOne) SetGraderScores(v map[string]float64) *EvaluationUpdateOne {
	_u.mutation.SetGraderScores(v)
	return _u
}

// ClearGraderScores clears the value of the "grader_scores" field.
func (_u *EvaluationUpdateOne) ClearGraderScores() *EvaluationUpdateOne {
	_u.mutation.ClearGraderScores()
	return _u
}

// SetQualityScore sets the "quality_score" field.
func (_u *EvaluationUpdateOne) SetQualityScore(v float64) *EvaluationUpdateOne {
	_u.mutation.ResetQualityScore()
	_u.mutation.SetQualityScore(v)
	return _u
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (_u *EvaluationUpdateOne) SetNillableQualityScore(v *float64) *EvaluationUpdateOne {
	if v != nil {
		_u.SetQualityScore(*v)
	}
	return _u
}

// AddQualityScore adds value to the "quality_score" field.
func (_u *EvaluationUpdateOne) AddQualityScore(v float64) *EvaluationUpdateOne {
	_u.mutation.AddQualityScore(v)
	return _u
}

// ClearQualityScore clears the value of the "quality_score" field.
func (_u *EvaluationUpdateOne) ClearQualityScore() *EvaluationUpdateOne {
	_u.mutation.ClearQualityScore()
	return _u
}

// SetAvgCost sets the "avg_cost" field.
func (_u *EvaluationUpdateOne) SetAvgCost(v float64) *EvaluationUpdateOne {
	_u.mutation.ResetAvgCost()
	_u.mutation.SetAvgCost(v)
	return _u
}

// SetNillableAvgCost sets the "avg_cost" field if the given value is not nil.
func (_u *EvaluationUpdateOne) SetNillableAvgCost(v *float64) *EvaluationUpdateOne {
	if v != nil {
		_u.SetAvgCost(*v)
	}
	return _u
}

// AddAvgCost adds value to the "avg_cost" field.
func (_u *EvaluationUpdateOne) AddAvgCost(v float64) *EvaluationUpdateOne {
	_u.mutation.AddAvgCost(v)
	return _u
}

// ClearAvgCost clears the value of the "avg_cost" field.
func (_u *EvaluationUpdateOne) ClearAvgCost() *EvaluationUpdateOne {
	_u.mutation.ClearAvgCost()
	return _u
}

// SetAvgExecutionTimeMs sets the "avg_execution_time_ms" field.
func (_u *EvaluationUpdateOne) SetAvgExecutionTimeMs(v float64) *EvaluationUpdateOne {
	_u.mutation.ResetAvgExecutionTimeMs()
	_u.mutation.SetAvgExecutionTimeMs(v)
	return _u
}

// SetNillableAvgExecutionTimeMs sets the "avg_execution_time_ms" field if the given value is not nil.
func (_u *EvaluationUpdateOne) SetNillableAvgExecutionTimeMs(v *float64) *EvaluationUpdateOne {
	if v != nil {
		_u.SetAvgExecutionTimeMs(*v)
	}
	return _u
}

// AddAvgExecutionTimeMs adds value to the "avg_execution_time_ms" field.
func (_u *EvaluationUpdateOne) AddAvgExecutionTimeMs(v float64) *EvaluationUpdateOne {
	_u.mutation.AddAvgExecutionTimeMs(v)
	return _u
}

// ClearAvgExecutionTimeMs clears the value of the "avg_execution_time_ms" field.
func (_u *EvaluationUpdateOne) ClearAvgExecutionTimeMs() *EvaluationUpdateOne {
	_u.mutation.ClearAvgExecutionTimeMs()
	return _u
}

// SetTestCaseCount sets the "test_case_count" field.
func (_u *EvaluationUpdateOne) SetTestCaseCount(v int) *EvaluationUpdateOne {
	_u.mutation.ResetTestCaseCount()
	_u.mutation.SetTestCaseCount(v)
	return _u
}

// SetNillableTestCaseCount sets the "test_case_count" field if the given value is not nil.
func (_u *EvaluationUpdateOne) SetNillableTestCaseCount(v *int) *EvaluationUpdateOne {
	if v != nil {
		_u.SetTestCaseCount(*v)
	}
	return _u
}

// AddTestCaseCount adds value to the "test_case_count" field.
func (_u *EvaluationUpdateOne) AddTestCaseCount(v int) *EvaluationUpdateOne {
	_u.mutation.AddTestCaseCount(v)
	return _u
}

// SetError sets the "error" field.
func (_u *EvaluationUpdateOne) SetError(v string) *EvaluationUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *EvaluationUpdateOne) SetNillableError(v *string) *EvaluationUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *EvaluationUpdateOne) ClearError() *EvaluationUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *EvaluationUpdateOne) SetCompletedAt(v time.Time) *EvaluationUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *EvaluationUpdateOne) SetNillableCompletedAt(v *time.Time) *EvaluationUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *EvaluationUpdateOne) ClearCompletedAt() *EvaluationUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// AddExecutionResultIDs adds the "execution_results" edge to the ExecutionResult entity by IDs.
func (_u *EvaluationUpdateOne) AddExecutionResultIDs(ids ...string) *EvaluationUpdateOne {
	_u.mutation.AddExecutionResultIDs(ids...)
	return _u
}

// AddExecutionResults adds the "execution_results" edges to the ExecutionResult entity.
func (_u *EvaluationUpdateOne) AddExecutionResults(v ...*ExecutionResult) *EvaluationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExecutionResultIDs(ids...)
}

// Mutation returns the EvaluationMutation object of the builder.
func (_u *EvaluationUpdateOne) Mutation() *EvaluationMutation {
	return _u.mutation
}

// ClearExecutionResults clears all "execution_results" edges to the ExecutionResult entity.
func (_u *EvaluationUpdateOne) ClearExecutionResults() *EvaluationUpdateOne {
	_u.mutation.ClearExecutionResults()
	return _u
}

// RemoveExecutionResultIDs removes the "execution_results" edge to ExecutionResult entities by IDs.
func (_u *EvaluationUpdateOne) RemoveExecutionResultIDs(ids ...string) *EvaluationUpdateOne {
	_u.mutation.RemoveExecutionResultIDs(ids...)
	return _u
}

// RemoveExecutionResults removes "execution_results" edges to ExecutionResult entities.
func (_u *EvaluationUpdateOne) RemoveExecutionResults(v ...*ExecutionResult) *EvaluationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExecutionResultIDs(ids...)
}

// Where appends a list predicates to the EvaluationUpdate builder.
func (_u *EvaluationUpdateOne) Where(ps ...predicate.Evaluation) *EvaluationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EvaluationUpdateOne) Select(field string, fields ...string) *EvaluationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Evaluation entity.
func (_u *EvaluationUpdateOne) Save(ctx context.Context) (*Evaluation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvaluationUpdateOne) SaveX(ctx context.Context) *Evaluation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EvaluationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvaluationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvaluationUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := evaluation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Evaluation.status": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Evaluation.task"`)
	}
	if _u.mutation.ImplementationCleared() && len(_u.mutation.ImplementationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Evaluation.implementation"`)
	}
	return nil
}

func (_u *EvaluationUpdateOne) sqlSave(ctx context.Context) (_node *Evaluation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evaluation.Table, evaluation.Columns, sqlgraph.NewFieldSpec(evaluation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Evaluation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, evaluation.FieldID)
		for _, f := range fields {
			if !evaluation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != evaluation.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(evaluation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.GraderScores(); ok {
		_spec.SetField(evaluation.FieldGraderScores, field.TypeJSON, value)
	}
	if _u.mutation.GraderScoresCleared() {
		_spec.ClearField(evaluation.FieldGraderScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.QualityScore(); ok {
		_spec.SetField(evaluation.FieldQualityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQualityScore(); ok {
		_spec.AddField(evaluation.FieldQualityScore, field.TypeFloat64, value)
	}
	if _u.mutation.QualityScoreCleared() {
		_spec.ClearField(evaluation.FieldQualityScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AvgCost(); ok {
		_spec.SetField(evaluation.FieldAvgCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgCost(); ok {
		_spec.AddField(evaluation.FieldAvgCost, field.TypeFloat64, value)
	}
	if _u.mutation.AvgCostCleared() {
		_spec.ClearField(evaluation.FieldAvgCost, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AvgExecutionTimeMs(); ok {
		_spec.SetField(evaluation.FieldAvgExecutionTimeMs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgExecutionTimeMs(); ok {
		_spec.AddField(evaluation.FieldAvgExecutionTimeMs, field.TypeFloat64, value)
	}
	if _u.mutation.AvgExecutionTimeMsCleared() {
		_spec.ClearField(evaluation.FieldAvgExecutionTimeMs, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TestCaseCount(); ok {
		_spec.SetField(evaluation.FieldTestCaseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTestCaseCount(); ok {
		_spec.AddField(evaluation.FieldTestCaseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(evaluation.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(evaluation.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(evaluation.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(evaluation.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.ExecutionResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExecutionResultsIDs(); len(nodes) > 0 && !_u.mutation.ExecutionResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExecutionResultsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Evaluation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evaluation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
