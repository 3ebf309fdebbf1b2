// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/promptlens/promptlens/ent/grade"
	"github.com/promptlens/promptlens/ent/grader"
	"github.com/promptlens/promptlens/ent/predicate"
)

// GraderUpdate is the builder for updating Grader entities.
type GraderUpdate struct {
	config
	hooks    []Hook
	mutation *GraderMutation
}

// Where appends a list predicates to the GraderUpdate builder.
func (_u *GraderUpdate) Where(ps ...predicate.Grader) *GraderUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *GraderUpdate) SetName(v string) *GraderUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *GraderUpdate) SetNillableName(v *string) *GraderUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *GraderUpdate) SetPrompt(v string) *GraderUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *GraderUpdate) SetNillablePrompt(v *string) *GraderUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetScoreType sets the "score_type" field.
func (_u *GraderUpdate) SetScoreType(v grader.ScoreType) *GraderUpdate {
	_u.mutation.SetScoreType(v)
	return _u
}

// SetNillableScoreType sets the "score_type" field if the given value is not nil.
func (_u *GraderUpdate) SetNillableScoreType(v *grader.ScoreType) *GraderUpdate {
	if v != nil {
		_u.SetScoreType(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *GraderUpdate) SetModel(v string) *GraderUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *GraderUpdate) SetNillableModel(v *string) *GraderUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetTemperature sets the "temperature" field.
func (_u *GraderUpdate) SetTemperature(v float64) *GraderUpdate {
	_u.mutation.ResetTemperature()
	_u.mutation.SetTemperature(v)
	return _u
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_u *GraderUpdate) SetNillableTemperature(v *float64) *GraderUpdate {
	if v != nil {
		_u.SetTemperature(*v)
	}
	return _u
}

// AddTemperature adds value to the "temperature" field.
func (_u *GraderUpdate) AddTemperature(v float64) *GraderUpdate {
	_u.mutation.AddTemperature(v)
	return _u
}

// ClearTemperature clears the value of the "temperature" field.
func (_u *GraderUpdate) ClearTemperature() *GraderUpdate {
	_u.mutation.ClearTemperature()
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *GraderUpdate) SetReasoning(v map[string]interface{}) *GraderUpdate {
	_u.mutation.SetReasoning(v)
	return _u
}

// ClearReasoning clears the value of the "reasoning" field.
func (_u *GraderUpdate) ClearReasoning() *GraderUpdate {
	_u.mutation.ClearReasoning()
	return _u
}

// SetResponseSchema sets the "response_schema" field.
func (_u *GraderUpdate) SetResponseSchema(v map[string]interface{}) *GraderUpdate {
	_u.mutation.SetResponseSchema(v)
	return _u
}

// ClearResponseSchema clears the value of the "response_schema" field.
func (_u *GraderUpdate) ClearResponseSchema() *GraderUpdate {
	_u.mutation.ClearResponseSchema()
	return _u
}

// SetMaxOutputTokens sets the "max_output_tokens" field.
func (_u *GraderUpdate) SetMaxOutputTokens(v int) *GraderUpdate {
	_u.mutation.ResetMaxOutputTokens()
	_u.mutation.SetMaxOutputTokens(v)
	return _u
}

// SetNillableMaxOutputTokens sets the "max_output_tokens" field if the given value is not nil.
func (_u *GraderUpdate) SetNillableMaxOutputTokens(v *int) *GraderUpdate {
	if v != nil {
		_u.SetMaxOutputTokens(*v)
	}
	return _u
}

// AddMaxOutputTokens adds value to the "max_output_tokens" field.
func (_u *GraderUpdate) AddMaxOutputTokens(v int) *GraderUpdate {
	_u.mutation.AddMaxOutputTokens(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *GraderUpdate) SetIsActive(v bool) *GraderUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *GraderUpdate) SetNillableIsActive(v *bool) *GraderUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// AddGradeIDs adds the "grades" edge to the Grade entity by IDs.
func (_u *GraderUpdate) AddGradeIDs(ids ...string) *GraderUpdate {
	_u.mutation.AddGradeIDs(ids...)
	return _u
}

// AddGrades adds the "grades" edges to the Grade entity.
func (_u *GraderUpdate) AddGrades(v ...*Grade) *GraderUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGradeIDs(ids...)
}

// Mutation returns the GraderMutation object of the builder.
func (_u *GraderUpdate) Mutation() *GraderMutation {
	return _u.mutation
}

// ClearGrades clears all "grades" edges to the Grade entity.
func (_u *GraderUpdate) ClearGrades() *GraderUpdate {
	_u.mutation.ClearGrades()
	return _u
}

// RemoveGradeIDs removes the "grades" edge to Grade entities by IDs.
func (_u *GraderUpdate) RemoveGradeIDs(ids ...string) *GraderUpdate {
	_u.mutation.RemoveGradeIDs(ids...)
	return _u
}

// RemoveGrades removes "grades" edges to Grade entities.
func (_u *GraderUpdate) RemoveGrades(v ...*Grade) *GraderUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGradeIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GraderUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GraderUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GraderUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GraderUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GraderUpdate) check() error {
	if v, ok := _u.mutation.ScoreType(); ok {
		if err := grader.ScoreTypeValidator(v); err != nil {
			return &ValidationError{Name: "score_type", err: fmt.Errorf(`ent: validator failed for field "Grader.score_type": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Grader.project"`)
	}
	return nil
}

func (_u *GraderUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(grader.Table, grader.Columns, sqlgraph.NewFieldSpec(grader.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(grader.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(grader.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScoreType(); ok {
		_spec.SetField(grader.FieldScoreType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(grader.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Temperature(); ok {
		_spec.SetField(grader.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTemperature(); ok {
		_spec.AddField(grader.FieldTemperature, field.TypeFloat64, value)
	}
	if _u.mutation.TemperatureCleared() {
		_spec.ClearField(grader.FieldTemperature, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(grader.FieldReasoning, field.TypeJSON, value)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(grader.FieldReasoning, field.TypeJSON)
	}
	if value, ok := _u.mutation.ResponseSchema(); ok {
		_spec.SetField(grader.FieldResponseSchema, field.TypeJSON, value)
	}
	if _u.mutation.ResponseSchemaCleared() {
		_spec.ClearField(grader.FieldResponseSchema, field.TypeJSON)
	}
	if value, ok := _u.mutation.MaxOutputTokens(); ok {
		_spec.SetField(grader.FieldMaxOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxOutputTokens(); ok {
		_spec.AddField(grader.FieldMaxOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(grader.FieldIsActive, field.TypeBool, value)
	}
	if _u.mutation.GradesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   grader.GradesTable,
			Columns: []string{grader.GradesColumn},
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
			Table:   grader.GradesTable,
			Columns: []string{grader.GradesColumn},
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
			Table:   grader.GradesTable,
			Columns: []string{grader.GradesColumn},
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
			err = &NotFoundError{grader.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GraderUpdateOne is the builder for updating a single Grader entity.
type GraderUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GraderMutation
}

// SetName sets the "name" field.
func (_u *GraderUpdateOne) SetName(v string) *GraderUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *GraderUpdateOne) SetNillableName(v *string) *GraderUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *GraderUpdateOne) SetPrompt(v string) *GraderUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *GraderUpdateOne) SetNillablePrompt(v *string) *GraderUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetScoreType sets the "score_type" field.
func (_u *GraderUpdateOne) SetScoreType(v grader.ScoreType) *GraderUpdateOne {
	_u.mutation.SetScoreType(v)
	return _u
}

// SetNillableScoreType sets the "score_type" field if the given value is not nil.
func (_u *GraderUpdateOne) SetNillableScoreType(v *grader.ScoreType) *GraderUpdateOne {
	if v != nil {
		_u.SetScoreType(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *GraderUpdateOne) SetModel(v string) *GraderUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *GraderUpdateOne) SetNillableModel(v *string) *GraderUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetTemperature sets the "temperature" field.
func (_u *GraderUpdateOne) SetTemperature(v float64) *GraderUpdateOne {
	_u.mutation.ResetTemperature()
	_u.mutation.SetTemperature(v)
	return _u
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_u *GraderUpdateOne) SetNillableTemperature(v *float64) *GraderUpdateOne {
	if v != nil {
		_u.SetTemperature(*v)
	}
	return _u
}

// AddTemperature adds value to the "temperature" field.
func (_u *GraderUpdateOne) AddTemperature(v float64) *GraderUpdateOne {
	_u.mutation.AddTemperature(v)
	return _u
}

// ClearTemperature clears the value of the "temperature" field.
func (_u *GraderUpdateOne) ClearTemperature() *GraderUpdateOne {
	_u.mutation.ClearTemperature()
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *GraderUpdateOne) SetReasoning(v map[string]interface{}) *GraderUpdateOne {
	_u.mutation.SetReasoning(v)
	return _u
}

// ClearReasoning clears the value of the "reasoning" field.
func (_u *GraderUpdateOne) ClearReasoning() *GraderUpdateOne {
	_u.mutation.ClearReasoning()
	return _u
}

// SetResponseSchema sets the "response_schema" field.
func (_u *GraderUpdateOne) SetResponseSchema(v map[string]interface{}) *GraderUpdateOne {
	_u.mutation.SetResponseSchema(v)
	return _u
}

// ClearResponseSchema clears the value of the "response_schema" field.
func (_u *GraderUpdateOne) ClearResponseSchema() *GraderUpdateOne {
	_u.mutation.ClearResponseSchema()
	return _u
}

// SetMaxOutputTokens sets the "max_output_tokens" field.
func (_u *GraderUpdateOne) SetMaxOutputTokens(v int) *GraderUpdateOne {
	_u.mutation.ResetMaxOutputTokens()
	_u.mutation.SetMaxOutputTokens(v)
	return _u
}

// SetNillableMaxOutputTokens sets the "max_output_tokens" field if the given value is not nil.
func (_u *GraderUpdateOne) SetNillableMaxOutputTokens(v *int) *GraderUpdateOne {
	if v != nil {
		_u.SetMaxOutputTokens(*v)
	}
	return _u
}

// AddMaxOutputTokens adds value to the "max_output_tokens" field.
func (_u *GraderUpdateOne) AddMaxOutputTokens(v int) *GraderUpdateOne {
	_u.mutation.AddMaxOutputTokens(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *GraderUpdateOne) SetIsActive(v bool) *GraderUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *GraderUpdateOne) SetNillableIsActive(v *bool) *GraderUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// AddGradeIDs adds the "grades" edge to the Grade entity by IDs.
func (_u *GraderUpdateOne) AddGradeIDs(ids ...string) *GraderUpdateOne {
	_u.mutation.AddGradeIDs(ids...)
	return _u
}

// AddGrades adds the "grades" edges to the Grade entity.
func (_u *GraderUpdateOne) AddGrades(v ...*Grade) *GraderUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGradeIDs(ids...)
}

// Mutation returns the GraderMutation object of the builder.
func (_u *GraderUpdateOne) Mutation() *GraderMutation {
	return _u.mutation
}

// ClearGrades clears all "grades" edges to the Grade entity.
func (_u *GraderUpdateOne) ClearGrades() *GraderUpdateOne {
	_u.mutation.ClearGrades()
	return _u
}

// RemoveGradeIDs removes the "grades" edge to Grade entities by IDs.
func (_u *GraderUpdateOne) RemoveGradeIDs(ids ...string) *GraderUpdateOne {
	_u.mutation.RemoveGradeIDs(ids...)
	return _u
}

// RemoveGrades removes "grades" edges to Grade entities.
func (_u *GraderUpdateOne) RemoveGrades(v ...*Grade) *GraderUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGradeIDs(ids...)
}

// Where appends a list predicates to the GraderUpdate builder.
func (_u *GraderUpdateOne) Where(ps ...predicate.Grader) *GraderUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GraderUpdateOne) Select(field string, fields ...string) *GraderUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Grader entity.
func (_u *GraderUpdateOne) Save(ctx context.Context) (*Grader, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GraderUpdateOne) SaveX(ctx context.Context) *Grader {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GraderUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GraderUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GraderUpdateOne) check() error {
	if v, ok := _u.mutation.ScoreType(); ok {
		if err := grader.ScoreTypeValidator(v); err != nil {
			return &ValidationError{Name: "score_type", err: fmt.Errorf(`ent: validator failed for field "Grader.score_type": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Grader.project"`)
	}
	return nil
}

func (_u *GraderUpdateOne) sqlSave(ctx context.Context) (_node *Grader, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(grader.Table, grader.Columns, sqlgraph.NewFieldSpec(grader.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Grader.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, grader.FieldID)
		for _, f := range fields {
			if !grader.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != grader.FieldID {
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
		_spec.SetField(grader.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(grader.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScoreType(); ok {
		_spec.SetField(grader.FieldScoreType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(grader.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Temperature(); ok {
		_spec.SetField(grader.FieldTemperature, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTemperature(); ok {
		_spec.AddField(grader.FieldTemperature, field.TypeFloat64, value)
	}
	if _u.mutation.TemperatureCleared() {
		_spec.ClearField(grader.FieldTemperature, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(grader.FieldReasoning, field.TypeJSON, value)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(grader.FieldReasoning, field.TypeJSON)
	}
	if value, ok := _u.mutation.ResponseSchema(); ok {
		_spec.SetField(grader.FieldResponseSchema, field.TypeJSON, value)
	}
	if _u.mutation.ResponseSchemaCleared() {
		_spec.ClearField(grader.FieldResponseSchema, field.TypeJSON)
	}
	if value, ok := _u.mutation.MaxOutputTokens(); ok {
		_spec.SetField(grader.FieldMaxOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxOutputTokens(); ok {
		_spec.AddField(grader.FieldMaxOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(grader.FieldIsActive, field.TypeBool, value)
	}
	if _u.mutation.GradesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   grader.GradesTable,
			Columns: []string{grader.GradesColumn},
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
			Table:   grader.GradesTable,
			Columns: []string{grader.GradesColumn},
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
			Table:   grader.GradesTable,
			Columns: []string{grader.GradesColumn},
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
	_node = &Grader{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{grader.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
