// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/promptlens/promptlens/ent/grade"
	"github.com/promptlens/promptlens/ent/grader"
	"github.com/promptlens/promptlens/ent/project"
)

// GraderCreate is the builder for creating a Grader entity.
type GraderCreate struct {
	config
	mutation *GraderMutation
	hooks    []Hook
}

// SetProjectID sets the "project_id" field.
func (_c *GraderCreate) SetProjectID(v string) *GraderCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *GraderCreate) SetName(v string) *GraderCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *GraderCreate) SetPrompt(v string) *GraderCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetScoreType sets the "score_type" field.
func (_c *GraderCreate) SetScoreType(v grader.ScoreType) *GraderCreate {
	_c.mutation.SetScoreType(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *GraderCreate) SetModel(v string) *GraderCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetTemperature sets the "temperature" field.
func (_c *GraderCreate) SetTemperature(v float64) *GraderCreate {
	_c.mutation.SetTemperature(v)
	return _c
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_c *GraderCreate) SetNillableTemperature(v *float64) *GraderCreate {
	if v != nil {
		_c.SetTemperature(*v)
	}
	return _c
}

// SetReasoning sets the "reasoning" field.
func (_c *GraderCreate) SetReasoning(v map[string]interface{}) *GraderCreate {
	_c.mutation.SetReasoning(v)
	return _c
}

// SetResponseSchema sets the "response_schema" field.
func (_c *GraderCreate) SetResponseSchema(v map[string]interface{}) *GraderCreate {
	_c.mutation.SetResponseSchema(v)
	return _c
}

// SetMaxOutputTokens sets the "max_output_tokens" field.
func (_c *GraderCreate) SetMaxOutputTokens(v int) *GraderCreate {
	_c.mutation.SetMaxOutputTokens(v)
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *GraderCreate) SetIsActive(v bool) *GraderCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *GraderCreate) SetNillableIsActive(v *bool) *GraderCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *GraderCreate) SetCreatedAt(v time.Time) *GraderCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GraderCreate) SetNillableCreatedAt(v *time.Time) *GraderCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GraderCreate) SetID(v string) *GraderCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *GraderCreate) SetProject(v *Project) *GraderCreate {
	return _c.SetProjectID(v.ID)
}

// AddGradeIDs adds the "grades" edge to the Grade entity by IDs.
func (_c *GraderCreate) AddGradeIDs(ids ...string) *GraderCreate {
	_c.mutation.AddGradeIDs(ids...)
	return _c
}

// AddGrades adds the "grades" edges to the Grade entity.
func (_c *GraderCreate) AddGrades(v ...*Grade) *GraderCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddGradeIDs(ids...)
}

// Mutation returns the GraderMutation object of the builder.
func (_c *GraderCreate) Mutation() *GraderMutation {
	return _c.mutation
}

// Save creates the Grader in the database.
func (_c *GraderCreate) Save(ctx context.Context) (*Grader, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GraderCreate) SaveX(ctx context.Context) *Grader {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GraderCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GraderCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GraderCreate) defaults() {
	if _, ok := _c.mutation.IsActive(); !ok {
		v := grader.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := grader.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GraderCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "Grader.project_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Grader.name"`)}
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "Grader.prompt"`)}
	}
	if _, ok := _c.mutation.ScoreType(); !ok {
		return &ValidationError{Name: "score_type", err: errors.New(`ent: missing required field "Grader.score_type"`)}
	}
	if v, ok := _c.mutation.ScoreType(); ok {
		if err := grader.ScoreTypeValidator(v); err != nil {
			return &ValidationError{Name: "score_type", err: fmt.Errorf(`ent: validator failed for field "Grader.score_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "Grader.model"`)}
	}
	if _, ok := _c.mutation.MaxOutputTokens(); !ok {
		return &ValidationError{Name: "max_output_tokens", err: errors.New(`ent: missing required field "Grader.max_output_tokens"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "Grader.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Grader.created_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "Grader.project"`)}
	}
	return nil
}

func (_c *GraderCreate) sqlSave(ctx context.Context) (*Grader, error) {
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
			return nil, fmt.Errorf("unexpected Grader.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GraderCreate) createSpec() (*Grader, *sqlgraph.CreateSpec) {
	var (
		_node = &Grader{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(grader.Table, sqlgraph.NewFieldSpec(grader.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(grader.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(grader.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.ScoreType(); ok {
		_spec.SetField(grader.FieldScoreType, field.TypeEnum, value)
		_node.ScoreType = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(grader.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.Temperature(); ok {
		_spec.SetField(grader.FieldTemperature, field.TypeFloat64, value)
		_node.Temperature = &value
	}
	if value, ok := _c.mutation.Reasoning(); ok {
		_spec.SetField(grader.FieldReasoning, field.TypeJSON, value)
		_node.Reasoning = value
	}
	if value, ok := _c.mutation.ResponseSchema(); ok {
		_spec.SetField(grader.FieldResponseSchema, field.TypeJSON, value)
		_node.ResponseSchema = value
	}
	if value, ok := _c.mutation.MaxOutputTokens(); ok {
		_spec.SetField(grader.FieldMaxOutputTokens, field.TypeInt, value)
		_node.MaxOutputTokens = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(grader.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(grader.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   grader.ProjectTable,
			Columns: []string{grader.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProjectID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.GradesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// GraderCreateBulk is the builder for creating many Grader entities in bulk.
type GraderCreateBulk struct {
	config
	err      error
	builders []*GraderCreate
}

// Save creates the Grader entities in the database.
func (_c *GraderCreateBulk) Save(ctx context.Context) ([]*Grader, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Grader, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GraderMutation)
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
func (_c *GraderCreateBulk) SaveX(ctx context.Context) []*Grader {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GraderCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GraderCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
