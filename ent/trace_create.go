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
	"github.com/promptlens/promptlens/ent/httptrace"
	"github.com/promptlens/promptlens/ent/implementation"
	"github.com/promptlens/promptlens/ent/project"
	"github.com/promptlens/promptlens/ent/trace"
	"github.com/promptlens/promptlens/pkg/models"
)

// TraceCreate is the builder for creating a Trace entity.
type TraceCreate struct {
	config
	mutation *TraceMutation
	hooks    []Hook
}

// SetProjectID sets the "project_id" field.
func (_c *TraceCreate) SetProjectID(v string) *TraceCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetHTTPTraceID sets the "http_trace_id" field.
func (_c *TraceCreate) SetHTTPTraceID(v string) *TraceCreate {
	_c.mutation.SetHTTPTraceID(v)
	return _c
}

// SetNillableHTTPTraceID sets the "http_trace_id" field if the given value is not nil.
func (_c *TraceCreate) SetNillableHTTPTraceID(v *string) *TraceCreate {
	if v != nil {
		_c.SetHTTPTraceID(*v)
	}
	return _c
}

// SetModel sets the "model" field.
func (_c *TraceCreate) SetModel(v string) *TraceCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetPath sets the "path" field.
func (_c *TraceCreate) SetPath(v string) *TraceCreate {
	_c.mutation.SetPath(v)
	return _c
}

// SetNillablePath sets the "path" field if the given value is not nil.
func (_c *TraceCreate) SetNillablePath(v *string) *TraceCreate {
	if v != nil {
		_c.SetPath(*v)
	}
	return _c
}

// SetInputItems sets the "input_items" field.
func (_c *TraceCreate) SetInputItems(v []models.TraceItem) *TraceCreate {
	_c.mutation.SetInputItems(v)
	return _c
}

// SetOutputItems sets the "output_items" field.
func (_c *TraceCreate) SetOutputItems(v []models.TraceItem) *TraceCreate {
	_c.mutation.SetOutputItems(v)
	return _c
}

// SetTools sets the "tools" field.
func (_c *TraceCreate) SetTools(v []models.ToolDefinition) *TraceCreate {
	_c.mutation.SetTools(v)
	return _c
}

// SetResponseSchema sets the "response_schema" field.
func (_c *TraceCreate) SetResponseSchema(v map[string]interface{}) *TraceCreate {
	_c.mutation.SetResponseSchema(v)
	return _c
}

// SetTemperature sets the "temperature" field.
func (_c *TraceCreate) SetTemperature(v float64) *TraceCreate {
	_c.mutation.SetTemperature(v)
	return _c
}

// SetNillableTemperature sets the "temperature" field if the given value is not nil.
func (_c *TraceCreate) SetNillableTemperature(v *float64) *TraceCreate {
	if v != nil {
		_c.SetTemperature(*v)
	}
	return _c
}

// SetMaxTokens sets the "max_tokens" field.
func (_c *TraceCreate) SetMaxTokens(v int) *TraceCreate {
	_c.mutation.SetMaxTokens(v)
	return _c
}

// SetNillableMaxTokens sets the "max_tokens" field if the given value is not nil.
func (_c *TraceCreate) SetNillableMaxTokens(v *int) *TraceCreate {
	if v != nil {
		_c.SetMaxTokens(*v)
	}
	return _c
}

// SetFinishReason sets the "finish_reason" field.
func (_c *TraceCreate) SetFinishReason(v string) *TraceCreate {
	_c.mutation.SetFinishReason(v)
	return _c
}

// SetNillableFinishReason sets the "finish_reason" field if the given value is not nil.
func (_c *TraceCreate) SetNillableFinishReason(v *string) *TraceCreate {
	if v != nil {
		_c.SetFinishReason(*v)
	}
	return _c
}

// SetPromptTokens sets the "prompt_tokens" field.
func (_c *TraceCreate) SetPromptTokens(v int) *TraceCreate {
	_c.mutation.SetPromptTokens(v)
	return _c
}

// SetNillablePromptTokens sets the "prompt_tokens" field if the given value is not nil.
func (_c *TraceCreate) SetNillablePromptTokens(v *int) *TraceCreate {
	if v != nil {
		_c.SetPromptTokens(*v)
	}
	return _c
}

// SetCompletionTokens sets the "completion_tokens" field.
func (_c *TraceCreate) SetCompletionTokens(v int) *TraceCreate {
	_c.mutation.SetCompletionTokens(v)
	return _c
}

// SetNillableCompletionTokens sets the "completion_tokens" field if the given value is not nil.
func (_c *TraceCreate) SetNillableCompletionTokens(v *int) *TraceCreate {
	if v != nil {
		_c.SetCompletionTokens(*v)
	}
	return _c
}

// SetCachedTokens sets the "cached_tokens" field.
func (_c *TraceCreate) SetCachedTokens(v int) *TraceCreate {
	_c.mutation.SetCachedTokens(v)
	return _c
}

// SetNillableCachedTokens sets the "cached_tokens" field if the given value is not nil.
func (_c *TraceCreate) SetNillableCachedTokens(v *int) *TraceCreate {
	if v != nil {
		_c.SetCachedTokens(*v)
	}
	return _c
}

// SetReasoningTokens sets the "reasoning_tokens" field.
func (_c *TraceCreate) SetReasoningTokens(v int) *TraceCreate {
	_c.mutation.SetReasoningTokens(v)
	return _c
}

// SetNillableReasoningTokens sets the "reasoning_tokens" field if the given value is not nil.
func (_c *TraceCreate) SetNillableReasoningTokens(v *int) *TraceCreate {
	if v != nil {
		_c.SetReasoningTokens(*v)
	}
	return _c
}

// SetTotalTokens sets the "total_tokens" field.
func (_c *TraceCreate) SetTotalTokens(v int) *TraceCreate {
	_c.mutation.SetTotalTokens(v)
	return _c
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_c *TraceCreate) SetNillableTotalTokens(v *int) *TraceCreate {
	if v != nil {
		_c.SetTotalTokens(*v)
	}
	return _c
}

// SetSystemFingerprint sets the "system_fingerprint" field.
func (_c *TraceCreate) SetSystemFingerprint(v string) *TraceCreate {
	_c.mutation.SetSystemFingerprint(v)
	return _c
}

// SetNillableSystemFingerprint sets the "system_fingerprint" field if the given value is not nil.
func (_c *TraceCreate) SetNillableSystemFingerprint(v *string) *TraceCreate {
	if v != nil {
		_c.SetSystemFingerprint(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *TraceCreate) SetStartedAt(v time.Time) *TraceCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *TraceCreate) SetCompletedAt(v time.Time) *TraceCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetError sets the "error" field.
func (_c *TraceCreate) SetError(v string) *TraceCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *TraceCreate) SetNillableError(v *string) *TraceCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetImplementationID sets the "implementation_id" field.
func (_c *TraceCreate) SetImplementationID(v string) *TraceCreate {
	_c.mutation.SetImplementationID(v)
	return _c
}

// SetNillableImplementationID sets the "implementation_id" field if the given value is not nil.
func (_c *TraceCreate) SetNillableImplementationID(v *string) *TraceCreate {
	if v != nil {
		_c.SetImplementationID(*v)
	}
	return _c
}

// SetPromptVariables sets the "prompt_variables" field.
func (_c *TraceCreate) SetPromptVariables(v map[string]string) *TraceCreate {
	_c.mutation.SetPromptVariables(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TraceCreate) SetCreatedAt(v time.Time) *TraceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TraceCreate) SetNillableCreatedAt(v *time.Time) *TraceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TraceCreate) SetID(v string) *TraceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *TraceCreate) SetProject(v *Project) *TraceCreate {
	return _c.SetProjectID(v.ID)
}

// SetHTTPTrace sets the "http_trace" edge to the HTTPTrace entity.
func (_c *TraceCreate) SetHTTPTrace(v *HTTPTrace) *TraceCreate {
	return _c.SetHTTPTraceID(v.ID)
}

// SetImplementation sets the "implementation" edge to the Implementation entity.
func (_c *TraceCreate) SetImplementation(v *Implementation) *TraceCreate {
	return _c.SetImplementationID(v.ID)
}

// AddGradeIDs adds the "grades" edge to the Grade entity by IDs.
func (_c *TraceCreate) AddGradeIDs(ids ...string) *TraceCreate {
	_c.mutation.AddGradeIDs(ids...)
	return _c
}

// AddGrades adds the "grades" edges to the Grade entity.
func (_c *TraceCreate) AddGrades(v ...*Grade) *TraceCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddGradeIDs(ids...)
}

// Mutation returns the TraceMutation object of the builder.
func (_c *TraceCreate) Mutation() *TraceMutation {
	return _c.mutation
}

// Save creates the Trace in the database.
func (_c *TraceCreate) Save(ctx context.Context) (*Trace, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TraceCreate) SaveX(ctx context.Context) *Trace {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TraceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TraceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TraceCreate) defaults() {
	if _, ok := _c.mutation.PromptTokens(); !ok {
		v := trace.DefaultPromptTokens
		_c.mutation.SetPromptTokens(v)
	}
	if _, ok := _c.mutation.CompletionTokens(); !ok {
		v := trace.DefaultCompletionTokens
		_c.mutation.SetCompletionTokens(v)
	}
	if _, ok := _c.mutation.CachedTokens(); !ok {
		v := trace.DefaultCachedTokens
		_c.mutation.SetCachedTokens(v)
	}
	if _, ok := _c.mutation.ReasoningTokens(); !ok {
		v := trace.DefaultReasoningTokens
		_c.mutation.SetReasoningTokens(v)
	}
	if _, ok := _c.mutation.TotalTokens(); !ok {
		v := trace.DefaultTotalTokens
		_c.mutation.SetTotalTokens(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := trace.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TraceCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "Trace.project_id"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "Trace.model"`)}
	}
	if _, ok := _c.mutation.InputItems(); !ok {
		return &ValidationError{Name: "input_items", err: errors.New(`ent: missing required field "Trace.input_items"`)}
	}
	if _, ok := _c.mutation.PromptTokens(); !ok {
		return &ValidationError{Name: "prompt_tokens", err: errors.New(`ent: missing required field "Trace.prompt_tokens"`)}
	}
	if _, ok := _c.mutation.CompletionTokens(); !ok {
		return &ValidationError{Name: "completion_tokens", err: errors.New(`ent: missing required field "Trace.completion_tokens"`)}
	}
	if _, ok := _c.mutation.CachedTokens(); !ok {
		return &ValidationError{Name: "cached_tokens", err: errors.New(`ent: missing required field "Trace.cached_tokens"`)}
	}
	if _, ok := _c.mutation.ReasoningTokens(); !ok {
		return &ValidationError{Name: "reasoning_tokens", err: errors.New(`ent: missing required field "Trace.reasoning_tokens"`)}
	}
	if _, ok := _c.mutation.TotalTokens(); !ok {
		return &ValidationError{Name: "total_tokens", err: errors.New(`ent: missing required field "Trace.total_tokens"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "Trace.started_at"`)}
	}
	if _, ok := _c.mutation.CompletedAt(); !ok {
		return &ValidationError{Name: "completed_at", err: errors.New(`ent: missing required field "Trace.completed_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Trace.created_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "Trace.project"`)}
	}
	return nil
}

func (_c *TraceCreate) sqlSave(ctx context.Context) (*Trace, error) {
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
			return nil, fmt.Errorf("unexpected Trace.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TraceCreate) createSpec() (*Trace, *sqlgraph.CreateSpec) {
	var (
		_node = &Trace{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(trace.Table, sqlgraph.NewFieldSpec(trace.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(trace.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.Path(); ok {
		_spec.SetField(trace.FieldPath, field.TypeString, value)
		_node.Path = &value
	}
	if value, ok := _c.mutation.InputItems(); ok {
		_spec.SetField(trace.FieldInputItems, field.TypeJSON, value)
		_node.InputItems = value
	}
	if value, ok := _c.mutation.OutputItems(); ok {
		_spec.SetField(trace.FieldOutputItems, field.TypeJSON, value)
		_node.OutputItems = value
	}
	if value, ok := _c.mutation.Tools(); ok {
		_spec.SetField(trace.FieldTools, field.TypeJSON, value)
		_node.Tools = value
	}
	if value, ok := _c.mutation.ResponseSchema(); ok {
		_spec.SetField(trace.FieldResponseSchema, field.TypeJSON, value)
		_node.ResponseSchema = value
	}
	if value, ok := _c.mutation.Temperature(); ok {
		_spec.SetField(trace.FieldTemperature, field.TypeFloat64, value)
		_node.Temperature = &value
	}
	if value, ok := _c.mutation.MaxTokens(); ok {
		_spec.SetField(trace.FieldMaxTokens, field.TypeInt, value)
		_node.MaxTokens = &value
	}
	if value, ok := _c.mutation.FinishReason(); ok {
		_spec.SetField(trace.FieldFinishReason, field.TypeString, value)
		_node.FinishReason = &value
	}
	if value, ok := _c.mutation.PromptTokens(); ok {
		_spec.SetField(trace.FieldPromptTokens, field.TypeInt, value)
		_node.PromptTokens = value
	}
	if value, ok := _c.mutation.CompletionTokens(); ok {
		_spec.SetField(trace.FieldCompletionTokens, field.TypeInt, value)
		_node.CompletionTokens = value
	}
	if value, ok := _c.mutation.CachedTokens(); ok {
		_spec.SetField(trace.FieldCachedTokens, field.TypeInt, value)
		_node.CachedTokens = value
	}
	if value, ok := _c.mutation.ReasoningTokens(); ok {
		_spec.SetField(trace.FieldReasoningTokens, field.TypeInt, value)
		_node.ReasoningTokens = value
	}
	if value, ok := _c.mutation.TotalTokens(); ok {
		_spec.SetField(trace.FieldTotalTokens, field.TypeInt, value)
		_node.TotalTokens = value
	}
	if value, ok := _c.mutation.SystemFingerprint(); ok {
		_spec.SetField(trace.FieldSystemFingerprint, field.TypeString, value)
		_node.SystemFingerprint = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(trace.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(trace.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(trace.FieldError, field.TypeString, value)
		_node.Error = &value
	}
	if value, ok := _c.mutation.PromptVariables(); ok {
		_spec.SetField(trace.FieldPromptVariables, field.TypeJSON, value)
		_node.PromptVariables = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(trace.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   trace.ProjectTable,
			Columns: []string{trace.ProjectColumn},
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
	if nodes := _c.mutation.HTTPTraceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   trace.HTTPTraceTable,
			Columns: []string{trace.HTTPTraceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(httptrace.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.HTTPTraceID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ImplementationIDs(); len(nodes) > 0 {
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
		_node.ImplementationID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.GradesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TraceCreateBulk is the builder for creating many Trace entities in bulk.
type TraceCreateBulk struct {
	config
	err      error
	builders []*TraceCreate
}

// Save creates the Trace entities in the database.
func (_c *TraceCreateBulk) Save(ctx context.Context) ([]*Trace, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Trace, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TraceMutation)
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
func (_c *TraceCreateBulk) SaveX(ctx context.Context) []*Trace {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TraceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TraceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
