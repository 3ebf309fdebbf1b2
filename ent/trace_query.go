// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/promptlens/promptlens/ent/grade"
	"github.com/promptlens/promptlens/ent/httptrace"
	"github.com/promptlens/promptlens/ent/implementation"
	"github.com/promptlens/promptlens/ent/predicate"
	"github.com/promptlens/promptlens/ent/project"
	"github.com/promptlens/promptlens/ent/trace"
)

// TraceQuery is the builder for querying Trace entities.
type TraceQuery struct {
	config
	ctx                *QueryContext
	order              []trace.OrderOption
	inters             []Interceptor
	predicates         []predicate.Trace
	withProject        *ProjectQuery
	withHTTPTrace      *HTTPTraceQuery
	withImplementation *ImplementationQuery
	withGrades         *GradeQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the TraceQuery builder.
func (_q *TraceQuery) Where(ps ...predicate.Trace) *TraceQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *TraceQuery) Limit(limit int) *TraceQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *TraceQuery) Offset(offset int) *TraceQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *TraceQuery) Unique(unique bool) *TraceQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *TraceQuery) Order(o ...trace.OrderOption) *TraceQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryProject chains the current query on the "project" edge.
func (_q *TraceQuery) QueryProject() *ProjectQuery {
	query := (&ProjectClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(trace.Table, trace.FieldID, selector),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, trace.ProjectTable, trace.ProjectColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryHTTPTrace chains the current query on the "http_trace" edge.
func (_q *TraceQuery) QueryHTTPTrace() *HTTPTraceQuery {
	query := (&HTTPTraceClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(trace.Table, trace.FieldID, selector),
			sqlgraph.To(httptrace.Table, httptrace.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, trace.HTTPTraceTable, trace.HTTPTraceColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryImplementation chains the current query on the "implementation" edge.
func (_q *TraceQuery) QueryImplementation() *ImplementationQuery {
	query := (&ImplementationClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(trace.Table, trace.FieldID, selector),
			sqlgraph.To(implementation.Table, implementation.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, trace.ImplementationTable, trace.ImplementationColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryGrades chains the current query on the "grades" edge.
func (_q *TraceQuery) QueryGrades() *GradeQuery {
	query := (&GradeClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(trace.Table, trace.FieldID, selector),
			sqlgraph.To(grade.Table, grade.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, trace.GradesTable, trace.GradesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Trace entity from the query.
// Returns a *NotFoundError when no Trace was found.
func (_q *TraceQuery) First(ctx context.Context) (*Trace, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{trace.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *TraceQuery) FirstX(ctx context.Context) *Trace {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Trace ID from the query.
// Returns a *NotFoundError when no Trace ID was found.
func (_q *TraceQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{trace.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *TraceQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Trace entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Trace entity is found.
// Returns a *NotFoundError when no Trace entities are found.
func (_q *TraceQuery) Only(ctx context.Context) (*Trace, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{trace.Label}
	default:
		return nil, &NotSingularError{trace.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *TraceQuery) OnlyX(ctx context.Context) *Trace {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Trace ID in the query.
// Returns a *NotSingularError when more than one Trace ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *TraceQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{trace.Label}
	default:
		err = &NotSingularError{trace.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *TraceQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Traces.
func (_q *TraceQuery) All(ctx context.Context) ([]*Trace, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Trace, *TraceQuery]()
	return withInterceptors[[]*Trace](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *TraceQuery) AllX(ctx context.Context) []*Trace {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Trace IDs.
func (_q *TraceQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(trace.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *TraceQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *TraceQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*TraceQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *TraceQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *TraceQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *TraceQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the TraceQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *TraceQuery) Clone() *TraceQuery {
	if _q == nil {
		return nil
	}
	return &TraceQuery{
		config:             _q.config,
		ctx:                _q.ctx.Clone(),
		order:              append([]trace.OrderOption{}, _q.order...),
		inters:             append([]Interceptor{}, _q.inters...),
		predicates:         append([]predicate.Trace{}, _q.predicates...),
		withProject:        _q.withProject.Clone(),
		withHTTPTrace:      _q.withHTTPTrace.Clone(),
		withImplementation: _q.withImplementation.Clone(),
		withGrades:         _q.withGrades.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithProject tells the query-builder to eager-load the nodes that are connected to
// the "project" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TraceQuery) WithProject(opts ...func(*ProjectQuery)) *TraceQuery {
	query := (&ProjectClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withProject = query
	return _q
}

// WithHTTPTrace tells the query-builder to eager-load the nodes that are connected to
// the "http_trace" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TraceQuery) WithHTTPTrace(opts ...func(*HTTPTraceQuery)) *TraceQuery {
	query := (&HTTPTraceClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withHTTPTrace = query
	return _q
}

// WithImplementation tells the query-builder to eager-load the nodes that are connected to
// the "implementation" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TraceQuery) WithImplementation(opts ...func(*ImplementationQuery)) *TraceQuery {
	query := (&ImplementationClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withImplementation = query
	return _q
}

// WithGrades tells the query-builder to eager-load the nodes that are connected to
// the "grades" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TraceQuery) WithGrades(opts ...func(*GradeQuery)) *TraceQuery {
	query := (&GradeClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withGrades = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		ProjectID string `json:"project_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Trace.Query().
//		GroupBy(trace.FieldProjectID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *TraceQuery) GroupBy(field string, fields ...string) *TraceGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &TraceGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = trace.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		ProjectID string `json:"project_id,omitempty"`
//	}
//
//	client.Trace.Query().
//		Select(trace.FieldProjectID).
//		Scan(ctx, &v)
func (_q *TraceQuery) Select(fields ...string) *TraceSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &TraceSelect{TraceQuery: _q}
	sbuild.label = trace.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a TraceSelect configured with the given aggregations.
func (_q *TraceQuery) Aggregate(fns ...AggregateFunc) *TraceSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *TraceQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !trace.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *TraceQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Trace, error) {
	var (
		nodes       = []*Trace{}
		_spec       = _q.querySpec()
		loadedTypes = [4]bool{
			_q.withProject != nil,
			_q.withHTTPTrace != nil,
			_q.withImplementation != nil,
			_q.withGrades != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Trace).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Trace{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withProject; query != nil {
		if err := _q.loadProject(ctx, query, nodes, nil,
			func(n *Trace, e *Project) { n.Edges.Project = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withHTTPTrace; query != nil {
		if err := _q.loadHTTPTrace(ctx, query, nodes, nil,
			func(n *Trace, e *HTTPTrace) { n.Edges.HTTPTrace = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withImplementation; query != nil {
		if err := _q.loadImplementation(ctx, query, nodes, nil,
			func(n *Trace, e *Implementation) { n.Edges.Implementation = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withGrades; query != nil {
		if err := _q.loadGrades(ctx, query, nodes,
			func(n *Trace) { n.Edges.Grades = []*Grade{} },
			func(n *Trace, e *Grade) { n.Edges.Grades = append(n.Edges.Grades, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *TraceQuery) loadProject(ctx context.Context, query *ProjectQuery, nodes []*Trace, init func(*Trace), assign func(*Trace, *Project)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*Trace)
	for i := range nodes {
		fk := nodes[i].ProjectID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(project.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "project_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *TraceQuery) loadHTTPTrace(ctx context.Context, query *HTTPTraceQuery, nodes []*Trace, init func(*Trace), assign func(*Trace, *HTTPTrace)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*Trace)
	for i := range nodes {
		if nodes[i].HTTPTraceID == nil {
			continue
		}
		fk := *nodes[i].HTTPTraceID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(httptrace.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "http_trace_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *TraceQuery) loadImplementation(ctx context.Context, query *ImplementationQuery, nodes []*Trace, init func(*Trace), assign func(*Trace, *Implementation)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*Trace)
	for i := range nodes {
		if nodes[i].ImplementationID == nil {
			continue
		}
		fk := *nodes[i].ImplementationID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(implementation.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "implementation_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *TraceQuery) loadGrades(ctx context.Context, query *GradeQuery, nodes []*Trace, init func(*Trace), assign func(*Trace, *Grade)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Trace)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(grade.FieldTraceID)
	}
	query.Where(predicate.Grade(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(trace.GradesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.TraceID
		if fk == nil {
			return fmt.Errorf(`foreign-key "trace_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "trace_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *TraceQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *TraceQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(trace.Table, trace.Columns, sqlgraph.NewFieldSpec(trace.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, trace.FieldID)
		for i := range fields {
			if fields[i] != trace.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withProject != nil {
			_spec.Node.AddColumnOnce(trace.FieldProjectID)
		}
		if _q.withHTTPTrace != nil {
			_spec.Node.AddColumnOnce(trace.FieldHTTPTraceID)
		}
		if _q.withImplementation != nil {
			_spec.Node.AddColumnOnce(trace.FieldImplementationID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *TraceQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(trace.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = trace.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// TraceGroupBy is the group-by builder for Trace entities.
type TraceGroupBy struct {
	selector
	build *TraceQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *TraceGroupBy) Aggregate(fns ...AggregateFunc) *TraceGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *TraceGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TraceQuery, *TraceGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *TraceGroupBy) sqlScan(ctx context.Context, root *TraceQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// TraceSelect is the builder for selecting fields of Trace entities.
type TraceSelect struct {
	*TraceQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *TraceSelect) Aggregate(fns ...AggregateFunc) *TraceSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *TraceSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TraceQuery, *TraceSelect](ctx, _s.TraceQuery, _s, _s.inters, v)
}

func (_s *TraceSelect) sqlScan(ctx context.Context, root *TraceQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
