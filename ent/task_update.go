// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/promptlens/promptlens/ent/evaluation"
	"github.com/promptlens/promptlens/ent/evaluationconfig"
	"github.com/promptlens/promptlens/ent/executionresult"
	"github.com/promptlens/promptlens/ent/implementation"
	"github.com/promptlens/promptlens/ent/predicate"
	"github.com/promptlens/promptlens/ent/targettaskmetrics"
	"github.com/promptlens/promptlens/ent/task"
	"github.com/promptlens/promptlens/ent/testcase"
)

// TaskUpdate is the builder for updating Task entities.
type TaskUpdate struct {
	config
	hooks    []Hook
	mutation *TaskMutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdate) Where(ps ...predicate.Task) *TaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *TaskUpdate) SetName(v string) *TaskUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableName(v *string) *TaskUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaskUpdate) SetDescription(v string) *TaskUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableDescription(v *string) *TaskUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetPath sets the "path" field.
func (_u *TaskUpdate) SetPath(v string) *TaskUpdate {
	_u.mutation.SetPath(v)
	return _u
}

// SetNillablePath sets the "path" field if the given value is not nil.
func (_u *TaskUpdate) SetNillablePath(v *string) *TaskUpdate {
	if v != nil {
		_u.SetPath(*v)
	}
	return _u
}

// ClearPath clears the value of the "path" field.
func (_u *TaskUpdate) ClearPath() *TaskUpdate {
	_u.mutation.ClearPath()
	return _u
}

// SetProductionVersionID sets the "production_version_id" field.
func (_u *TaskUpdate) SetProductionVersionID(v string) *TaskUpdate {
	_u.mutation.SetProductionVersionID(v)
	return _u
}

// SetNillableProductionVersionID sets the "production_version_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableProductionVersionID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetProductionVersionID(*v)
	}
	return _u
}

// ClearProductionVersionID clears the value of the "production_version_id" field.
func (_u *TaskUpdate) ClearProductionVersionID() *TaskUpdate {
	_u.mutation.ClearProductionVersionID()
	return _u
}

// SetResponseSchema sets the "response_schema" field.
func (_u *TaskUpdate) SetResponseSchema(v map[string]interface{}) *TaskUpdate {
	_u.mutation.SetResponseSchema(v)
	return _u
}

// ClearResponseSchema clears the value of the "response_schema" field.
func (_u *TaskUpdate) ClearResponseSchema() *TaskUpdate {
	_u.mutation.ClearResponseSchema()
	return _u
}

// AddImplementationIDs adds the "implementations" edge to the Implementation entity by IDs.
func (_u *TaskUpdate) AddImplementationIDs(ids ...string) *TaskUpdate {
	_u.mutation.AddImplementationIDs(ids...)
	return _u
}

// AddImplementations adds the "implementations" edges to the Implementation entity.
func (_u *TaskUpdate) AddImplementations(v ...*Implementation) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddImplementationIDs(ids...)
}

// AddTestCaseIDs adds the "test_cases" edge to the TestCase entity by IDs.
func (_u *TaskUpdate) AddTestCaseIDs(ids ...string) *TaskUpdate {
	_u.mutation.AddTestCaseIDs(ids...)
	return _u
}

// AddTestCases adds the "test_cases" edges to the TestCase entity.
func (_u *TaskUpdate) AddTestCases(v ...*TestCase) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTestCaseIDs(ids...)
}

// AddEvaluationIDs adds the "evaluations" edge to the Evaluation entity by IDs.
func (_u *TaskUpdate) AddEvaluationIDs(ids ...string) *TaskUpdate {
	_u.mutation.AddEvaluationIDs(ids...)
	return _u
}

// AddEvaluations adds the "evaluations" edges to the Evaluation entity.
func (_u *TaskUpdate) AddEvaluations(v ...*Evaluation) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEvaluationIDs(ids...)
}

// SetEvaluationConfigID sets the "evaluation_config" edge to the EvaluationConfig entity by ID.
func (_u *TaskUpdate) SetEvaluationConfigID(id string) *TaskUpdate {
	_u.mutation.SetEvaluationConfigID(id)
	return _u
}

// SetNillableEvaluationConfigID sets the "evaluation_config" edge to the EvaluationConfig entity by ID if the given value is not nil.
func (_u *TaskUpdate) SetNillableEvaluationConfigID(id *string) *TaskUpdate {
	if id != nil {
		_u = _u.SetEvaluationConfigID(*id)
	}
	return _u
}

// SetEvaluationConfig sets the "evaluation_config" edge to the EvaluationConfig entity.
func (_u *TaskUpdate) SetEvaluationConfig(v *EvaluationConfig) *TaskUpdate {
	return _u.SetEvaluationConfigID(v.ID)
}

// SetTargetMetricsID sets the "target_metrics" edge to the TargetTaskMetrics entity by ID.
func (_u *TaskUpdate) SetTargetMetricsID(id string) *TaskUpdate {
	_u.mutation.SetTargetMetricsID(id)
	return _u
}

// SetNillableTargetMetricsID sets the "target_metrics" edge to the TargetTaskMetrics entity by ID if the given value is not nil.
func (_u *TaskUpdate) SetNillableTargetMetricsID(id *string) *TaskUpdate {
	if id != nil {
		_u = _u.SetTargetMetricsID(*id)
	}
	return _u
}

// SetTargetMetrics sets the "target_metrics" edge to the TargetTaskMetrics entity.
func (_u *TaskUpdate) SetTargetMetrics(v *TargetTaskMetrics) *TaskUpdate {
	return _u.SetTargetMetricsID(v.ID)
}

// AddExecutionResultIDs adds the "execution_results" edge to the ExecutionResult entity by IDs.
func (_u *TaskUpdate) AddExecutionResultIDs(ids ...string) *TaskUpdate {
	_u.mutation.AddExecutionResultIDs(ids...)
	return _u
}

// AddExecutionResults adds the "execution_results" edges to the ExecutionResult entity.
func (_u *TaskUpdate) AddExecutionResults(v ...*ExecutionResult) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExecutionResultIDs(ids...)
}

// SetProductionVersion sets the "production_version" edge to the Implementation entity.
func (_u *TaskUpdate) SetProductionVersion(v *Implementation) *TaskUpdate {
	return _u.SetProductionVersionID(v.ID)
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdate) Mutation() *TaskMutation {
	return _u.mutation
}

// ClearImplementations clears all "implementations" edges to the Implementation entity.
func (_u *TaskUpdate) ClearImplementations() *TaskUpdate {
	_u.mutation.ClearImplementations()
	return _u
}

// RemoveImplementationIDs removes the "implementations" edge to Implementation entities by IDs.
func (_u *TaskUpdate) RemoveImplementationIDs(ids ...string) *TaskUpdate {
	_u.mutation.RemoveImplementationIDs(ids...)
	return _u
}

// RemoveImplementations removes "implementations" edges to Implementation entities.
func (_u *TaskUpdate) RemoveImplementations(v ...*Implementation) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveImplementationIDs(ids...)
}

// ClearTestCases clears all "test_cases" edges to the TestCase entity.
func (_u *TaskUpdate) ClearTestCases() *TaskUpdate {
	_u.mutation.ClearTestCases()
	return _u
}

// RemoveTestCaseIDs removes the "test_cases" edge to TestCase entities by IDs.
func (_u *TaskUpdate) RemoveTestCaseIDs(ids ...string) *TaskUpdate {
	_u.mutation.RemoveTestCaseIDs(ids...)
	return _u
}

// RemoveTestCases removes "test_cases" edges to TestCase entities.
func (_u *TaskUpdate) RemoveTestCases(v ...*TestCase) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTestCaseIDs(ids...)
}

// ClearEvaluations clears all "evaluations" edges to the Evaluation entity.
func (_u *TaskUpdate) ClearEvaluations() *TaskUpdate {
	_u.mutation.ClearEvaluations()
	return _u
}

// RemoveEvaluationIDs removes the "evaluations" edge to Evaluation entities by IDs.
func (_u *TaskUpdate) RemoveEvaluationIDs(ids ...string) *TaskUpdate {
	_u.mutation.RemoveEvaluationIDs(ids...)
	return _u
}

// RemoveEvaluations removes "evaluations" edges to Evaluation entities.
func (_u *TaskUpdate) RemoveEvaluations(v ...*Evaluation) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEvaluationIDs(ids...)
}

// ClearEvaluationConfig clears the "evaluation_config" edge to the EvaluationConfig entity.
func (_u *TaskUpdate) ClearEvaluationConfig() *TaskUpdate {
	_u.mutation.ClearEvaluationConfig()
	return _u
}

// ClearTargetMetrics clears the "target_metrics" edge to the TargetTaskMetrics entity.
func (_u *TaskUpdate) ClearTargetMetrics() *TaskUpdate {
	_u.mutation.ClearTargetMetrics()
	return _u
}

// ClearExecutionResults clears all "execution_results" edges to the ExecutionResult entity.
func (_u *TaskUpdate) ClearExecutionResults() *TaskUpdate {
	_u.mutation.ClearExecutionResults()
	return _u
}

// RemoveExecutionResultIDs removes the "execution_results" edge to ExecutionResult entities by IDs.
func (_u *TaskUpdate) RemoveExecutionResultIDs(ids ...string) *TaskUpdate {
	_u.mutation.RemoveExecutionResultIDs(ids...)
	return _u
}

// RemoveExecutionResults removes "execution_results" edges to ExecutionResult entities.
func (_u *TaskUpdate) RemoveExecutionResults(v ...*ExecutionResult) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExecutionResultIDs(ids...)
}

// ClearProductionVersion clears the "production_version" edge to the Implementation entity.
func (_u *TaskUpdate) ClearProductionVersion() *TaskUpdate {
	_u.mutation.ClearProductionVersion()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdate) check() error {
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Task.project"`)
	}
	return nil
}

func (_u *TaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(task.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Path(); ok {
		_spec.SetField(task.FieldPath, field.TypeString, value)
	}
	if _u.mutation.PathCleared() {
		_spec.ClearField(task.FieldPath, field.TypeString)
	}
	if value, ok := _u.mutation.ResponseSchema(); ok {
		_spec.SetField(task.FieldResponseSchema, field.TypeJSON, value)
	}
	if _u.mutation.ResponseSchemaCleared() {
		_spec.ClearField(task.FieldResponseSchema, field.TypeJSON)
	}
	if _u.mutation.ImplementationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ImplementationsTable,
			Columns: []string{task.ImplementationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(implementation.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedImplementationsIDs(); len(nodes) > 0 && !_u.mutation.ImplementationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ImplementationsTable,
			Columns: []string{task.ImplementationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(implementation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ImplementationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ImplementationsTable,
			Columns: []string{task.ImplementationsColumn},
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
	if _u.mutation.TestCasesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.TestCasesTable,
			Columns: []string{task.TestCasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(testcase.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTestCasesIDs(); len(nodes) > 0 && !_u.mutation.TestCasesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.TestCasesTable,
			Columns: []string{task.TestCasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(testcase.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TestCasesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.TestCasesTable,
			Columns: []string{task.TestCasesColumn},
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
	if _u.mutation.EvaluationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.EvaluationsTable,
			Columns: []string{task.EvaluationsColumn},
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
			Table:   task.EvaluationsTable,
			Columns: []string{task.EvaluationsColumn},
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
			Table:   task.EvaluationsTable,
			Columns: []string{task.EvaluationsColumn},
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
	if _u.mutation.EvaluationConfigCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   task.EvaluationConfigTable,
			Columns: []string{task.EvaluationConfigColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluationconfig.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvaluationConfigIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   task.EvaluationConfigTable,
			Columns: []string{task.EvaluationConfigColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluationconfig.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TargetMetricsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   task.TargetMetricsTable,
			Columns: []string{task.TargetMetricsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(targettaskmetrics.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TargetMetricsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   task.TargetMetricsTable,
			Columns: []string{task.TargetMetricsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(targettaskmetrics.FieldID, field.TypeString),
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
			Table:   task.ExecutionResultsTable,
			Columns: []string{task.ExecutionResultsColumn},
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
			Table:   task.ExecutionResultsTable,
			Columns: []string{task.ExecutionResultsColumn},
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
			Table:   task.ExecutionResultsTable,
			Columns: []string{task.ExecutionResultsColumn},
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
	if _u.mutation.ProductionVersionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   task.ProductionVersionTable,
			Columns: []string{task.ProductionVersionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(implementation.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProductionVersionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   task.ProductionVersionTable,
			Columns: []string{task.ProductionVersionColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskUpdateOne is the builder for updating a single Task entity.
type TaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskMutation
}

// SetName sets the "name" field.
func (_u *TaskUpdateOne) SetName(v string) *TaskUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableName(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaskUpdateOne) SetDescription(v string) *TaskUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableDescription(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetPath sets the "path" field.
func (_u *TaskUpdateOne) SetPath(v string) *TaskUpdateOne {
	_u.mutation.SetPath(v)
	return _u
}

// SetNillablePath sets the "path" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillablePath(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetPath(*v)
	}
	return _u
}

// ClearPath clears the value of the "path" field.
func (_u *TaskUpdateOne) ClearPath() *TaskUpdateOne {
	_u.mutation.ClearPath()
	return _u
}

// SetProductionVersionID sets the "production_version_id" field.
func (_u *TaskUpdateOne) SetProductionVersionID(v string) *TaskUpdateOne {
	_u.mutation.SetProductionVersionID(v)
	return _u
}

// SetNillableProductionVersionID sets the "production_version_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableProductionVersionID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetProductionVersionID(*v)
	}
	return _u
}

// ClearProductionVersionID clears the value of the "production_version_id" field.
func (_u *TaskUpdateOne) ClearProductionVersionID() *TaskUpdateOne {
	_u.mutation.ClearProductionVersionID()
	return _u
}

// SetResponseSchema sets the "response_schema" field.
func (_u *TaskUpdateOne) SetResponseSchema(v map[string]interface{}) *TaskUpdateOne {
	_u.mutation.SetResponseSchema(v)
	return _u
}

// ClearResponseSchema clears the value of the "response_schema" field.
func (_u *TaskUpdateOne) ClearResponseSchema() *TaskUpdateOne {
	_u.mutation.ClearResponseSchema()
	return _u
}

// AddImplementationIDs adds the "implementations" edge to the Implementation entity by IDs.
func (_u *TaskUpdateOne) AddImplementationIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.AddImplementationIDs(ids...)
	return _u
}

// AddImplementations adds the "implementations" edges to the Implementation entity.
func (_u *TaskUpdateOne) AddImplementations(v ...*Implementation) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddImplementationIDs(ids...)
}

// AddTestCaseIDs adds the "test_cases" edge to the TestCase entity by IDs.
func (_u *TaskUpdateOne) AddTestCaseIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.AddTestCaseIDs(ids...)
	return _u
}

// AddTestCases adds the "test_cases" edges to the TestCase entity.
func (_u *TaskUpdateOne) AddTestCases(v ...*TestCase) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTestCaseIDs(ids...)
}

// AddEvaluationIDs adds the "evaluations" edge to the Evaluation entity by IDs.
func (_u *TaskUpdateOne) AddEvaluationIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.AddEvaluationIDs(ids...)
	return _u
}

// AddEvaluations adds the "evaluations" edges to the Evaluation entity.
func (_u *TaskUpdateOne) AddEvaluations(v ...*Evaluation) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEvaluationIDs(ids...)
}

// SetEvaluationConfigID sets the "evaluation_config" edge to the EvaluationConfig entity by ID.
func (_u *TaskUpdateOne) SetEvaluationConfigID(id string) *TaskUpdateOne {
	_u.mutation.SetEvaluationConfigID(id)
	return _u
}

// SetNillableEvaluationConfigID sets the "evaluation_config" edge to the EvaluationConfig entity by ID if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableEvaluationConfigID(id *string) *TaskUpdateOne {
	if id != nil {
		_u = _u.SetEvaluationConfigID(*id)
	}
	return _u
}

// SetEvaluationConfig sets the "evaluation_config" edge to the EvaluationConfig entity.
func (_u *TaskUpdateOne) SetEvaluationConfig(v *EvaluationConfig) *TaskUpdateOne {
	return _u.SetEvaluationConfigID(v.ID)
}

// SetTargetMetricsID sets the "target_metrics" edge to the TargetTaskMetrics entity by ID.
func (_u *TaskUpdateOne) SetTargetMetricsID(id string) *TaskUpdateOne {
	_u.mutation.SetTargetMetricsID(id)
	return _u
}

// SetNillableTargetMetricsID sets the "target_metrics" edge to the TargetTaskMetrics entity by ID if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableTargetMetricsID(id *string) *TaskUpdateOne {
	if id != nil {
		_u = _u.SetTargetMetricsID(*id)
	}
	return _u
}

// SetTargetMetrics sets the "target_metrics" edge to the TargetTaskMetrics entity.
func (_u *TaskUpdateOne) SetTargetMetrics(v *TargetTaskMetrics) *TaskUpdateOne {
	return _u.SetTargetMetricsID(v.ID)
}

// AddExecutionResultIDs adds the "execution_results" edge to the ExecutionResult entity by IDs.
func (_u *TaskUpdateOne) AddExecutionResultIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.AddExecutionResultIDs(ids...)
	return _u
}

// AddExecutionResults adds the "execution_results" edges to the ExecutionResult entity.
func (_u *TaskUpdateOne) AddExecutionResults(v ...*ExecutionResult) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExecutionResultIDs(ids...)
}

// SetProductionVersion sets the "production_version" edge to the Implementation entity.
func (_u *TaskUpdateOne) SetProductionVersion(v *Implementation) *TaskUpdateOne {
	return _u.SetProductionVersionID(v.ID)
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdateOne) Mutation() *TaskMutation {
	return _u.mutation
}

// ClearImplementations clears all "implementations" edges to the Implementation entity.
func (_u *TaskUpdateOne) ClearImplementations() *TaskUpdateOne {
	_u.mutation.ClearImplementations()
	return _u
}

// RemoveImplementationIDs removes the "implementations" edge to Implementation entities by IDs.
func (_u *TaskUpdateOne) RemoveImplementationIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.RemoveImplementationIDs(ids...)
	return _u
}

// RemoveImplementations removes "implementations" edges to Implementation entities.
func (_u *TaskUpdateOne) RemoveImplementations(v ...*Implementation) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveImplementationIDs(ids...)
}

// ClearTestCases clears all "test_cases" edges to the TestCase entity.
func (_u *TaskUpdateOne) ClearTestCases() *TaskUpdateOne {
	_u.mutation.ClearTestCases()
	return _u
}

// RemoveTestCaseIDs removes the "test_cases" edge to TestCase entities by IDs.
func (_u *TaskUpdateOne) RemoveTestCaseIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.RemoveTestCaseIDs(ids...)
	return _u
}

// RemoveTestCases removes "test_cases" edges to TestCase entities.
func (_u *TaskUpdateOne) RemoveTestCases(v ...*TestCase) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTestCaseIDs(ids...)
}

// ClearEvaluations clears all "evaluations" edges to the Evaluation entity.
func (_u *TaskUpdateOne) ClearEvaluations() *TaskUpdateOne {
	_u.mutation.ClearEvaluations()
	return _u
}

// RemoveEvaluationIDs removes the "evaluations" edge to Evaluation entities by IDs.
func (_u *TaskUpdateOne) RemoveEvaluationIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.RemoveEvaluationIDs(ids...)
	return _u
}

// RemoveEvaluations removes "evaluations" edges to Evaluation entities.
func (_u *TaskUpdateOne) RemoveEvaluations(v ...*Evaluation) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEvaluationIDs(ids...)
}

// ClearEvaluationConfig clears the "evaluation_config" edge to the EvaluationConfig entity.
func (_u *TaskUpdateOne) ClearEvaluationConfig() *TaskUpdateOne {
	_u.mutation.ClearEvaluationConfig()
	return _u
}

// ClearTargetMetrics clears the "target_metrics" edge to the TargetTaskMetrics entity.
func (_u *TaskUpdateOne) ClearTargetMetrics() *TaskUpdateOne {
	_u.mutation.ClearTargetMetrics()
	return _u
}

// ClearExecutionResults clears all "execution_results" edges to the ExecutionResult entity.
func (_u *TaskUpdateOne) ClearExecutionResults() *TaskUpdateOne {
	_u.mutation.ClearExecutionResults()
	return _u
}

// RemoveExecutionResultIDs removes the "execution_results" edge to ExecutionResult entities by IDs.
func (_u *TaskUpdateOne) RemoveExecutionResultIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.RemoveExecutionResultIDs(ids...)
	return _u
}

// RemoveExecutionResults removes "execution_results" edges to ExecutionResult entities.
func (_u *TaskUpdateOne) RemoveExecutionResults(v ...*ExecutionResult) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExecutionResultIDs(ids...)
}

// ClearProductionVersion clears the "production_version" edge to the Implementation entity.
func (_u *TaskUpdateOne) ClearProductionVersion() *TaskUpdateOne {
	_u.mutation.ClearProductionVersion()
	return _u
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdateOne) Where(ps ...predicate.Task) *TaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskUpdateOne) Select(field string, fields ...string) *TaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Task entity.
func (_u *TaskUpdateOne) Save(ctx context.Context) (*Task, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdateOne) SaveX(ctx context.Context) *Task {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdateOne) check() error {
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Task.project"`)
	}
	return nil
}

func (_u *TaskUpdateOne) sqlSave(ctx context.Context) (_node *Task, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Task.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, task.FieldID)
		for _, f := range fields {
			if !task.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != task.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(task.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Path(); ok {
		_spec.SetField(task.FieldPath, field.TypeString, value)
	}
	if _u.mutation.PathCleared() {
		_spec.ClearField(task.FieldPath, field.TypeString)
	}
	if value, ok := _u.mutation.ResponseSchema(); ok {
		_spec.SetField(task.FieldResponseSchema, field.TypeJSON, value)
	}
	if _u.mutation.ResponseSchemaCleared() {
		_spec.ClearField(task.FieldResponseSchema, field.TypeJSON)
	}
	if _u.mutation.ImplementationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ImplementationsTable,
			Columns: []string{task.ImplementationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(implementation.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedImplementationsIDs(); len(nodes) > 0 && !_u.mutation.ImplementationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ImplementationsTable,
			Columns: []string{task.ImplementationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(implementation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ImplementationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ImplementationsTable,
			Columns: []string{task.ImplementationsColumn},
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
	if _u.mutation.TestCasesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.TestCasesTable,
			Columns: []string{task.TestCasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(testcase.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTestCasesIDs(); len(nodes) > 0 && !_u.mutation.TestCasesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.TestCasesTable,
			Columns: []string{task.TestCasesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(testcase.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TestCasesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.TestCasesTable,
			Columns: []string{task.TestCasesColumn},
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
	if _u.mutation.EvaluationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.EvaluationsTable,
			Columns: []string{task.EvaluationsColumn},
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
			Table:   task.EvaluationsTable,
			Columns: []string{task.EvaluationsColumn},
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
			Table:   task.EvaluationsTable,
			Columns: []string{task.EvaluationsColumn},
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
	if _u.mutation.EvaluationConfigCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   task.EvaluationConfigTable,
			Columns: []string{task.EvaluationConfigColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluationconfig.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvaluationConfigIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   task.EvaluationConfigTable,
			Columns: []string{task.EvaluationConfigColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evaluationconfig.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TargetMetricsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   task.TargetMetricsTable,
			Columns: []string{task.TargetMetricsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(targettaskmetrics.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TargetMetricsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   task.TargetMetricsTable,
			Columns: []string{task.TargetMetricsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(targettaskmetrics.FieldID, field.TypeString),
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
			Table:   task.ExecutionResultsTable,
			Columns: []string{task.ExecutionResultsColumn},
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
			Table:   task.ExecutionResultsTable,
			Columns: []string{task.ExecutionResultsColumn},
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
			Table:   task.ExecutionResultsTable,
			Columns: []string{task.ExecutionResultsColumn},
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
	if _u.mutation.ProductionVersionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   task.ProductionVersionTable,
			Columns: []string{task.ProductionVersionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(implementation.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProductionVersionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   task.ProductionVersionTable,
			Columns: []string{task.ProductionVersionColumn},
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
	_node = &Task{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
