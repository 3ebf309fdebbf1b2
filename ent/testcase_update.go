// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/promptlens/promptlens/ent/executionresult"
	"github.com/promptlens/promptlens/ent/predicate"
	"github.com/promptlens/promptlens/ent/testcase"
)

// TestCaseUpdate is the builder for updating TestCase entities.
type TestCaseUpdate struct {
	config
	hooks    []Hook
	mutation *TestCaseMutation
}

// Where appends a list predicates to the TestCaseUpdate builder.
func (_u *TestCaseUpdate) Where(ps ...predicate.TestCase) *TestCaseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDescription sets the "description" field.
func (_u *TestCaseUpdate) SetDescription(v string) *TestCaseUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TestCaseUpdate) SetNillableDescription(v *string) *TestCaseUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TestCaseUpdate) ClearDescription() *TestCaseUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetArguments sets the "arguments" field.
func (_u *TestCaseUpdate) SetArguments(v map[string]string) *TestCaseUpdate {
	_u.mutation.SetArguments(v)
	return _u
}

// SetExpectedOutput sets the "expected_output" field.
func (_u *TestCaseUpdate) SetExpectedOutput(v map[string]interface{}) *TestCaseUpdate {
	_u.mutation.SetExpectedOutput(v)
	return _u
}

// ClearExpectedOutput clears the value of the "expected_output" field.
func (_u *TestCaseUpdate) ClearExpectedOutput() *TestCaseUpdate {
	_u.mutation.ClearExpectedOutput()
	return _u
}

// AddExecutionResultIDs adds the "execution_results" edge to the ExecutionResult entity by IDs.
func (_u *TestCaseUpdate) AddExecutionResultIDs(ids ...string) *TestCaseUpdate {
	_u.mutation.AddExecutionResultIDs(ids...)
	return _u
}

// AddExecutionResults adds the "execution_results" edges to the ExecutionResult entity.
func (_u *TestCaseUpdate) AddExecutionResults(v ...*ExecutionResult) *TestCaseUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExecutionResultIDs(ids...)
}

// Mutation returns the TestCaseMutation object of the builder.
func (_u *TestCaseUpdate) Mutation() *TestCaseMutation {
	return _u.mutation
}

// ClearExecutionResults clears all "execution_results" edges to the ExecutionResult entity.
func (_u *TestCaseUpdate) ClearExecutionResults() *TestCaseUpdate {
	_u.mutation.ClearExecutionResults()
	return _u
}

// RemoveExecutionResultIDs removes the "execution_results" edge to ExecutionResult entities by IDs.
func (_u *TestCaseUpdate) RemoveExecutionResultIDs(ids ...string) *TestCaseUpdate {
	_u.mutation.RemoveExecutionResultIDs(ids...)
	return _u
}

// RemoveExecutionResults removes "execution_results" edges to ExecutionResult entities.
func (_u *TestCaseUpdate) RemoveExecutionResults(v ...*ExecutionResult) *TestCaseUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExecutionResultIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TestCaseUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestCaseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TestCaseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestCaseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TestCaseUpdate) check() error {
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TestCase.task"`)
	}
	return nil
}

func (_u *TestCaseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(testcase.Table, testcase.Columns, sqlgraph.NewFieldSpec(testcase.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(testcase.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(testcase.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Arguments(); ok {
		_spec.SetField(testcase.FieldArguments, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ExpectedOutput(); ok {
		_spec.SetField(testcase.FieldExpectedOutput, field.TypeJSON, value)
	}
	if _u.mutation.ExpectedOutputCleared() {
		_spec.ClearField(testcase.FieldExpectedOutput, field.TypeJSON)
	}
	if _u.mutation.ExecutionResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   testcase.ExecutionResultsTable,
			Columns: []string{testcase.ExecutionResultsColumn},
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
			Table:   testcase.ExecutionResultsTable,
			Columns: []string{testcase.ExecutionResultsColumn},
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
			Table:   testcase.ExecutionResultsTable,
			Columns: []string{testcase.ExecutionResultsColumn},
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
			err = &NotFoundError{testcase.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TestCaseUpdateOne is the builder for updating a single TestCase entity.
type TestCaseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TestCaseMutation
}

// SetDescription sets the "description" field.
func (_u *TestCaseUpdateOne) SetDescription(v string) *TestCaseUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TestCaseUpdateOne) SetNillableDescription(v *string) *TestCaseUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *TestCaseUpdateOne) ClearDescription() *TestCaseUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetArguments sets the "arguments" field.
func (_u *TestCaseUpdateOne) SetArguments(v map[string]string) *TestCaseUpdateOne {
	_u.mutation.SetArguments(v)
	return _u
}

// SetExpectedOutput sets the "expected_output" field.
func (_u *TestCaseUpdateOne) SetExpectedOutput(v map[string]interface{}) *TestCaseUpdateOne {
	_u.mutation.SetExpectedOutput(v)
	return _u
}

// ClearExpectedOutput clears the value of the "expected_output" field.
func (_u *TestCaseUpdateOne) ClearExpectedOutput() *TestCaseUpdateOne {
	_u.mutation.ClearExpectedOutput()
	return _u
}

// AddExecutionResultIDs adds the "execution_results" edge to the ExecutionResult entity by IDs.
func (_u *TestCaseUpdateOne) AddExecutionResultIDs(ids ...string) *TestCaseUpdateOne {
	_u.mutation.AddExecutionResultIDs(ids...)
	return _u
}

// AddExecutionResults adds the "execution_results" edges to the ExecutionResult entity.
func (_u *TestCaseUpdateOne) AddExecutionResults(v ...*ExecutionResult) *TestCaseUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExecutionResultIDs(ids...)
}

// Mutation returns the TestCaseMutation object of the builder.
func (_u *TestCaseUpdateOne) Mutation() *TestCaseMutation {
	return _u.mutation
}

// ClearExecutionResults clears all "execution_results" edges to the ExecutionResult entity.
func (_u *TestCaseUpdateOne) ClearExecutionResults() *TestCaseUpdateOne {
	_u.mutation.ClearExecutionResults()
	return _u
}

// RemoveExecutionResultIDs removes the "execution_results" edge to ExecutionResult entities by IDs.
func (_u *TestCaseUpdateOne) RemoveExecutionResultIDs(ids ...string) *TestCaseUpdateOne {
	_u.mutation.RemoveExecutionResultIDs(ids...)
	return _u
}

// RemoveExecutionResults removes "execution_results" edges to ExecutionResult entities.
func (_u *TestCaseUpdateOne) RemoveExecutionResults(v ...*ExecutionResult) *TestCaseUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExecutionResultIDs(ids...)
}

// Where appends a list predicates to the TestCaseUpdate builder.
func (_u *TestCaseUpdateOne) Where(ps ...predicate.TestCase) *TestCaseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TestCaseUpdateOne) Select(field string, fields ...string) *TestCaseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TestCase entity.
func (_u *TestCaseUpdateOne) Save(ctx context.Context) (*TestCase, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TestCaseUpdateOne) SaveX(ctx context.Context) *TestCase {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TestCaseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TestCaseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TestCaseUpdateOne) check() error {
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TestCase.task"`)
	}
	return nil
}

func (_u *TestCaseUpdateOne) sqlSave(ctx context.Context) (_node *TestCase, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(testcase.Table, testcase.Columns, sqlgraph.NewFieldSpec(testcase.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TestCase.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, testcase.FieldID)
		for _, f := range fields {
			if !testcase.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != testcase.FieldID {
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
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(testcase.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(testcase.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Arguments(); ok {
		_spec.SetField(testcase.FieldArguments, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ExpectedOutput(); ok {
		_spec.SetField(testcase.FieldExpectedOutput, field.TypeJSON, value)
	}
	if _u.mutation.ExpectedOutputCleared() {
		_spec.ClearField(testcase.FieldExpectedOutput, field.TypeJSON)
	}
	if _u.mutation.ExecutionResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   testcase.ExecutionResultsTable,
			Columns: []string{testcase.ExecutionResultsColumn},
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
			Table:   testcase.ExecutionResultsTable,
			Columns: []string{testcase.ExecutionResultsColumn},
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
			Table:   testcase.ExecutionResultsTable,
			Columns: []string{testcase.ExecutionResultsColumn},
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
	_node = &TestCase{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{testcase.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
