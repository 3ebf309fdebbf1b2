// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/promptlens/promptlens/ent/httptrace"
	"github.com/promptlens/promptlens/ent/project"
	"github.com/promptlens/promptlens/ent/trace"
)

// HTTPTraceCreate is the builder for creating a HTTPTrace entity.
type HTTPTraceCreate struct {
	config
	mutation *HTTPTraceMutation
	hooks    []Hook
}

// SetProjectID sets the "project_id" field.
func (_c *HTTPTraceCreate) SetProjectID(v string) *HTTPTraceCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetURL sets the "url" field.
func (_c *HTTPTraceCreate) SetURL(v string) *HTTPTraceCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetMethod sets the "method" field.
func (_c *HTTPTraceCreate) SetMethod(v string) *HTTPTraceCreate {
	_c.mutation.SetMethod(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *HTTPTraceCreate) SetStartedAt(v time.Time) *HTTPTraceCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *HTTPTraceCreate) SetCompletedAt(v time.Time) *HTTPTraceCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetStatusCode sets the "status_code" field.
func (_c *HTTPTraceCreate) SetStatusCode(v int) *HTTPTraceCreate {
	_c.mutation.SetStatusCode(v)
	return _c
}

// SetNillableStatusCode sets the "status_code" field if the given value is not nil.
func (_c *HTTPTraceCreate) SetNillableStatusCode(v *int) *HTTPTraceCreate {
	if v != nil {
		_c.SetStatusCode(*v)
	}
	return _c
}

// SetError sets the "error" field.
func (_c *HTTPTraceCreate) SetError(v string) *HTTPTraceCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *HTTPTraceCreate) SetNillableError(v *string) *HTTPTraceCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetRequest sets the "request" field.
func (_c *HTTPTraceCreate) SetRequest(v []byte) *HTTPTraceCreate {
	_c.mutation.SetRequest(v)
	return _c
}

// SetRequestHeaders sets the "request_headers" field.
func (_c *HTTPTraceCreate) SetRequestHeaders(v map[string]string) *HTTPTraceCreate {
	_c.mutation.SetRequestHeaders(v)
	return _c
}

// SetResponse sets the "response" field.
func (_c *HTTPTraceCreate) SetResponse(v []byte) *HTTPTraceCreate {
	_c.mutation.SetResponse(v)
	return _c
}

// SetResponseHeaders sets the "response_headers" field.
func (_c *HTTPTraceCreate) SetResponseHeaders(v map[string]string) *HTTPTraceCreate {
	_c.mutation.SetResponseHeaders(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *HTTPTraceCreate) SetMetadata(v map[string]interface{}) *HTTPTraceCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetDedupHash sets the "dedup_hash" field.
func (_c *HTTPTraceCreate) SetDedupHash(v string) *HTTPTraceCreate {
	_c.mutation.SetDedupHash(v)
	return _c
}

// SetNillableDedupHash sets the "dedup_hash" field if the given value is not nil.
func (_c *HTTPTraceCreate) SetNillableDedupHash(v *string) *HTTPTraceCreate {
	if v != nil {
		_c.SetDedupHash(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *HTTPTraceCreate) SetCreatedAt(v time.Time) *HTTPTraceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *HTTPTraceCreate) SetNillableCreatedAt(v *time.Time) *HTTPTraceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *HTTPTraceCreate) SetID(v string) *HTTPTraceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *HTTPTraceCreate) SetProject(v *Project) *HTTPTraceCreate {
	return _c.SetProjectID(v.ID)
}

// SetTraceID sets the "trace" edge to the Trace entity by ID.
func (_c *HTTPTraceCreate) SetTraceID(id string) *HTTPTraceCreate {
	_c.mutation.SetTraceID(id)
	return _c
}

// SetNillableTraceID sets the "trace" edge to the Trace entity by ID if the given value is not nil.
func (_c *HTTPTraceCreate) SetNillableTraceID(id *string) *HTTPTraceCreate {
	if id != nil {
		_c = _c.SetTraceID(*id)
	}
	return _c
}

// SetTrace sets the "trace" edge to the Trace entity.
func (_c *HTTPTraceCreate) SetTrace(v *Trace) *HTTPTraceCreate {
	return _c.SetTraceID(v.ID)
}

// Mutation returns the HTTPTraceMutation object of the builder.
func (_c *HTTPTraceCreate) Mutation() *HTTPTraceMutation {
	return _c.mutation
}

// Save creates the HTTPTrace in the database.
func (_c *HTTPTraceCreate) Save(ctx context.Context) (*HTTPTrace, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HTTPTraceCreate) SaveX(ctx context.Context) *HTTPTrace {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HTTPTraceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HTTPTraceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HTTPTraceCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := httptrace.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HTTPTraceCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "HTTPTrace.project_id"`)}
	}
	if _, ok := _c.mutation.URL(); !ok {
		return &ValidationError{Name: "url", err: errors.New(`ent: missing required field "HTTPTrace.url"`)}
	}
	if _, ok := _c.mutation.Method(); !ok {
		return &ValidationError{Name: "method", err: errors.New(`ent: missing required field "HTTPTrace.method"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "HTTPTrace.started_at"`)}
	}
	if _, ok := _c.mutation.CompletedAt(); !ok {
		return &ValidationError{Name: "completed_at", err: errors.New(`ent: missing required field "HTTPTrace.completed_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "HTTPTrace.created_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "HTTPTrace.project"`)}
	}
	return nil
}

func (_c *HTTPTraceCreate) sqlSave(ctx context.Context) (*HTTPTrace, error) {
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
			return nil, fmt.Errorf("unexpected HTTPTrace.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *HTTPTraceCreate) createSpec() (*HTTPTrace, *sqlgraph.CreateSpec) {
	var (
		_node = &HTTPTrace{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(httptrace.Table, sqlgraph.NewFieldSpec(httptrace.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(httptrace.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.Method(); ok {
		_spec.SetField(httptrace.FieldMethod, field.TypeString, value)
		_node.Method = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(httptrace.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(httptrace.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = value
	}
	if value, ok := _c.mutation.StatusCode(); ok {
		_spec.SetField(httptrace.FieldStatusCode, field.TypeInt, value)
		_node.StatusCode = &value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(httptrace.FieldError, field.TypeString, value)
		_node.Error = &value
	}
	if value, ok := _c.mutation.Request(); ok {
		_spec.SetField(httptrace.FieldRequest, field.TypeBytes, value)
		_node.Request = value
	}
	if value, ok := _c.mutation.RequestHeaders(); ok {
		_spec.SetField(httptrace.FieldRequestHeaders, field.TypeJSON, value)
		_node.RequestHeaders = value
	}
	if value, ok := _c.mutation.Response(); ok {
		_spec.SetField(httptrace.FieldResponse, field.TypeBytes, value)
		_node.Response = value
	}
	if value, ok := _c.mutation.ResponseHeaders(); ok {
		_spec.SetField(httptrace.FieldResponseHeaders, field.TypeJSON, value)
		_node.ResponseHeaders = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(httptrace.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.DedupHash(); ok {
		_spec.SetField(httptrace.FieldDedupHash, field.TypeString, value)
		_node.DedupHash = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(httptrace.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   httptrace.ProjectTable,
			Columns: []string{httptrace.ProjectColumn},
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
	if nodes := _c.mutation.TraceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   httptrace.TraceTable,
			Columns: []string{httptrace.TraceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trace.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// HTTPTraceCreateBulk is the builder for creating many HTTPTrace entities in bulk.
type HTTPTraceCreateBulk struct {
	config
	err      error
	builders []*HTTPTraceCreate
}

// Save creates the HTTPTrace entities in the database.
func (_c *HTTPTraceCreateBulk) Save(ctx context.Context) ([]*HTTPTrace, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*HTTPTrace, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HTTPTraceMutation)
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
func (_c *HTTPTraceCreateBulk) SaveX(ctx context.Context) []*HTTPTrace {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HTTPTraceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HTTPTraceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
