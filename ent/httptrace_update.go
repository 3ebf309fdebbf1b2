// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/promptlens/promptlens/ent/httptrace"
	"github.com/promptlens/promptlens/ent/predicate"
	"github.com/promptlens/promptlens/ent/trace"
)

// HTTPTraceUpdate is the builder for updating HTTPTrace entities.
type HTTPTraceUpdate struct {
	config
	hooks    []Hook
	mutation *HTTPTraceMutation
}

// Where appends a list predicates to the HTTPTraceUpdate builder.
func (_u *HTTPTraceUpdate) Where(ps ...predicate.HTTPTrace) *HTTPTraceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRequestHeaders sets the "request_headers" field.
func (_u *HTTPTraceUpdate) SetRequestHeaders(v map[string]string) *HTTPTraceUpdate {
	_u.mutation.SetRequestHeaders(v)
	return _u
}

// ClearRequestHeaders clears the value of the "request_headers" field.
func (_u *HTTPTraceUpdate) ClearRequestHeaders() *HTTPTraceUpdate {
	_u.mutation.ClearRequestHeaders()
	return _u
}

// SetResponseHeaders sets the "response_headers" field.
func (_u *HTTPTraceUpdate) SetResponseHeaders(v map[string]string) *HTTPTraceUpdate {
	_u.mutation.SetResponseHeaders(v)
	return _u
}

// ClearResponseHeaders clears the value of the "response_headers" field.
func (_u *HTTPTraceUpdate) ClearResponseHeaders() *HTTPTraceUpdate {
	_u.mutation.ClearResponseHeaders()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *HTTPTraceUpdate) SetMetadata(v map[string]interface{}) *HTTPTraceUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *HTTPTraceUpdate) ClearMetadata() *HTTPTraceUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetTraceID sets the "trace" edge to the Trace entity by ID.
func (_u *HTTPTraceUpdate) SetTraceID(id string) *HTTPTraceUpdate {
	_u.mutation.SetTraceID(id)
	return _u
}

// SetNillableTraceID sets the "trace" edge to the Trace entity by ID if the given value is not nil.
func (_u *HTTPTraceUpdate) SetNillableTraceID(id *string) *HTTPTraceUpdate {
	if id != nil {
		_u = _u.SetTraceID(*id)
	}
	return _u
}

// SetTrace sets the "trace" edge to the Trace entity.
func (_u *HTTPTraceUpdate) SetTrace(v *Trace) *HTTPTraceUpdate {
	return _u.SetTraceID(v.ID)
}

// Mutation returns the HTTPTraceMutation object of the builder.
func (_u *HTTPTraceUpdate) Mutation() *HTTPTraceMutation {
	return _u.mutation
}

// ClearTrace clears the "trace" edge to the Trace entity.
func (_u *HTTPTraceUpdate) ClearTrace() *HTTPTraceUpdate {
	_u.mutation.ClearTrace()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HTTPTraceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HTTPTraceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HTTPTraceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HTTPTraceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HTTPTraceUpdate) check() error {
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "HTTPTrace.project"`)
	}
	return nil
}

func (_u *HTTPTraceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(httptrace.Table, httptrace.Columns, sqlgraph.NewFieldSpec(httptrace.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.StatusCodeCleared() {
		_spec.ClearField(httptrace.FieldStatusCode, field.TypeInt)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(httptrace.FieldError, field.TypeString)
	}
	if _u.mutation.RequestCleared() {
		_spec.ClearField(httptrace.FieldRequest, field.TypeBytes)
	}
	if value, ok := _u.mutation.RequestHeaders(); ok {
		_spec.SetField(httptrace.FieldRequestHeaders, field.TypeJSON, value)
	}
	if _u.mutation.RequestHeadersCleared() {
		_spec.ClearField(httptrace.FieldRequestHeaders, field.TypeJSON)
	}
	if _u.mutation.ResponseCleared() {
		_spec.ClearField(httptrace.FieldResponse, field.TypeBytes)
	}
	if value, ok := _u.mutation.ResponseHeaders(); ok {
		_spec.SetField(httptrace.FieldResponseHeaders, field.TypeJSON, value)
	}
	if _u.mutation.ResponseHeadersCleared() {
		_spec.ClearField(httptrace.FieldResponseHeaders, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(httptrace.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(httptrace.FieldMetadata, field.TypeJSON)
	}
	if _u.mutation.DedupHashCleared() {
		_spec.ClearField(httptrace.FieldDedupHash, field.TypeString)
	}
	if _u.mutation.TraceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TraceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{httptrace.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HTTPTraceUpdateOne is the builder for updating a single HTTPTrace entity.
type HTTPTraceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HTTPTraceMutation
}

// SetRequestHeaders sets the "request_headers" field.
func (_u *HTTPTraceUpdateOne) SetRequestHeaders(v map[string]string) *HTTPTraceUpdateOne {
	_u.mutation.SetRequestHeaders(v)
	return _u
}

// ClearRequestHeaders clears the value of the "request_headers" field.
func (_u *HTTPTraceUpdateOne) ClearRequestHeaders() *HTTPTraceUpdateOne {
	_u.mutation.ClearRequestHeaders()
	return _u
}

// SetResponseHeaders sets the "response_headers" field.
func (_u *HTTPTraceUpdateOne) SetResponseHeaders(v map[string]string) *HTTPTraceUpdateOne {
	_u.mutation.SetResponseHeaders(v)
	return _u
}

// ClearResponseHeaders clears the value of the "response_headers" field.
func (_u *HTTPTraceUpdateOne) ClearResponseHeaders() *HTTPTraceUpdateOne {
	_u.mutation.ClearResponseHeaders()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *HTTPTraceUpdateOne) SetMetadata(v map[string]interface{}) *HTTPTraceUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *HTTPTraceUpdateOne) ClearMetadata() *HTTPTraceUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetTraceID sets the "trace" edge to the Trace entity by ID.
func (_u *HTTPTraceUpdateOne) SetTraceID(id string) *HTTPTraceUpdateOne {
	_u.mutation.SetTraceID(id)
	return _u
}

// SetNillableTraceID sets the "trace" edge to the Trace entity by ID if the given value is not nil.
func (_u *HTTPTraceUpdateOne) SetNillableTraceID(id *string) *HTTPTraceUpdateOne {
	if id != nil {
		_u = _u.SetTraceID(*id)
	}
	return _u
}

// SetTrace sets the "trace" edge to the Trace entity.
func (_u *HTTPTraceUpdateOne) SetTrace(v *Trace) *HTTPTraceUpdateOne {
	return _u.SetTraceID(v.ID)
}

// Mutation returns the HTTPTraceMutation object of the builder.
func (_u *HTTPTraceUpdateOne) Mutation() *HTTPTraceMutation {
	return _u.mutation
}

// ClearTrace clears the "trace" edge to the Trace entity.
func (_u *HTTPTraceUpdateOne) ClearTrace() *HTTPTraceUpdateOne {
	_u.mutation.ClearTrace()
	return _u
}

// Where appends a list predicates to the HTTPTraceUpdate builder.
func (_u *HTTPTraceUpdateOne) Where(ps ...predicate.HTTPTrace) *HTTPTraceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HTTPTraceUpdateOne) Select(field string, fields ...string) *HTTPTraceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated HTTPTrace entity.
func (_u *HTTPTraceUpdateOne) Save(ctx context.Context) (*HTTPTrace, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HTTPTraceUpdateOne) SaveX(ctx context.Context) *HTTPTrace {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HTTPTraceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HTTPTraceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HTTPTraceUpdateOne) check() error {
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "HTTPTrace.project"`)
	}
	return nil
}

func (_u *HTTPTraceUpdateOne) sqlSave(ctx context.Context) (_node *HTTPTrace, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(httptrace.Table, httptrace.Columns, sqlgraph.NewFieldSpec(httptrace.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "HTTPTrace.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, httptrace.FieldID)
		for _, f := range fields {
			if !httptrace.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != httptrace.FieldID {
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
	if _u.mutation.StatusCodeCleared() {
		_spec.ClearField(httptrace.FieldStatusCode, field.TypeInt)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(httptrace.FieldError, field.TypeString)
	}
	if _u.mutation.RequestCleared() {
		_spec.ClearField(httptrace.FieldRequest, field.TypeBytes)
	}
	if value, ok := _u.mutation.RequestHeaders(); ok {
		_spec.SetField(httptrace.FieldRequestHeaders, field.TypeJSON, value)
	}
	if _u.mutation.RequestHeadersCleared() {
		_spec.ClearField(httptrace.FieldRequestHeaders, field.TypeJSON)
	}
	if _u.mutation.ResponseCleared() {
		_spec.ClearField(httptrace.FieldResponse, field.TypeBytes)
	}
	if value, ok := _u.mutation.ResponseHeaders(); ok {
		_spec.SetField(httptrace.FieldResponseHeaders, field.TypeJSON, value)
	}
	if _u.mutation.ResponseHeadersCleared() {
		_spec.ClearField(httptrace.FieldResponseHeaders, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(httptrace.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(httptrace.FieldMetadata, field.TypeJSON)
	}
	if _u.mutation.DedupHashCleared() {
		_spec.ClearField(httptrace.FieldDedupHash, field.TypeString)
	}
	if _u.mutation.TraceCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TraceIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &HTTPTrace{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{httptrace.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
