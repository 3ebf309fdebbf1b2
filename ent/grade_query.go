// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/promptlens/promptlens/ent/executionresult"
	"github.com/promptlens/promptlens/ent/grade"
	"github.com/promptlens/promptlens/ent/grader"
	"github.com/promptlens/promptlens/ent/predicate"
	"github.com/promptlens/promptlens/ent/trace"
)

// GradeQuery is the builder for querying Grade entities.
type GradeQuery struct {
	config
	ctx                 *QueryContext
	order               []grade.OrderOption
	inters              []Interceptor
	predicates          []predicate.Grade
	withGrader          *GraderQuery
	withTrace           *TraceQuery
	withExecutionResult *ExecutionResultQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the GradeQuery builder.
func (_q *GradeQuery) Where(ps ...predicate.Grade) *GradeQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *GradeQuery) Limit(limit int) *GradeQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *GradeQuery) Offset(offset int) *GradeQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *GradeQuery) Unique(unique bool) *GradeQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *GradeQuery) Order(o ...grade.OrderOption) *GradeQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryGrader chains the current query on the "grader" edge.
func (_q *GradeQuery) QueryGrader() *GraderQuery {
	query := (&GraderClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(grade.Table, grade.FieldID, selector),
			sqlgraph.To(grader.Table, grader.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, grade.GraderTable, grade.GraderColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryTrace chains the current query on the "trace" edge.
func (_q *GradeQuery) QueryTrace() *TraceQuery {
	query := (&TraceClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(grade.Table, grade.FieldID, selector),
			sqlgraph.To(trace.Table, trace.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, grade.TraceTable, grade.TraceColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryExecutionResult chains the current query on the "execution_result" edge.
func (_q *GradeQuery) QueryExecutionResult() *ExecutionResultQuery {
	query := (&ExecutionResultClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(grade.Table, grade.FieldID, selector),
			sqlgraph.To(executionresult.Table, executionresult.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, grade.ExecutionResultTable, grade.ExecutionResultColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Grade entity from the query.
// Returns a *NotFoundError when no Grade was found.
func (_q *GradeQuery) First(ctx context.Context) (*Grade, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{grade.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *GradeQuery) FirstX(ctx context.Context) *Grade {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Grade ID from the query.
// Returns a *NotFoundError when no Grade ID was found.
func (_q *GradeQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{grade.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *GradeQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Grade entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Grade entity is found.
// Returns a *NotFoundError when no Grade entities are found.
func (_q *GradeQuery) Only(ctx context.Context) (*Grade, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{grade.Label}
	default:
		return nil, &NotSingularError{grade.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *GradeQuery) OnlyX(ctx context.Context) *Grade {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Grade ID in the query.
// Returns a *NotSingularError when more than one Grade ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *GradeQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{grade.Label}
	default:
		err = &NotSingularError{grade.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *GradeQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Grades.
func (_q *GradeQuery) All(ctx context.Context) ([]*Grade, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Grade, *GradeQuery]()
	return withInterceptors[[]*Grade](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *GradeQuery) AllX(ctx context.Context) []*Grade {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Grade IDs.
func (_q *GradeQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(grade.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *GradeQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *GradeQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*GradeQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *GradeQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *GradeQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *GradeQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the GradeQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *GradeQuery) Clone() *GradeQuery {
	if _q == nil {
		return nil
	}
	return &GradeQuery{
		config:              _q.config,
		ctx:                 _q.ctx.Clone(),
		order:               append([]grade.OrderOption{}, _q.order...),
		inters:              append([]Interceptor{}, _q.inters...),
		predicates:          append([]predicate.Grade{}, _q.predicates...),
		withGrader:          _q.withGrader.Clone(),
		withTrace:           _q.withTrace.Clone(),
		withExecutionResult: _q.withExecutionResult.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithGrader tells the query-builder to eager-load the nodes that are connected to
// the "grader" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *GradeQuery) WithGrader(opts ...func(*GraderQuery)) *GradeQuery {
	query := (&GraderClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withGrader = query
	return _q
}

// WithTrace tells the query-builder to eager-load the nodes that are connected to
// the "trace" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *GradeQuery) WithTrace(opts ...func(*TraceQuery)) *GradeQuery {
	query := (&TraceClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTrace = query
	return _q
}

// WithExecutionResult tells the query-builder to eager-load the nodes that are connected to
// the "execution_result" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *GradeQuery) WithExecutionResult(opts ...func(*ExecutionResultQuery)) *GradeQuery {
	query := (&ExecutionResultClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withExecutionResult = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		GraderID string `json:"grader_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Grade.Query().
//		GroupBy(grade.FieldGraderID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *GradeQuery) GroupBy(field string, fields ...string) *GradeGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &GradeGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = grade.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		GraderID string `json:"grader_id,omitempty"`
//	}
//
//	client.Grade.Query().
//		Select(grade.FieldGraderID).
//		Scan(ctx, &v)
func (_q *GradeQuery) Select(fields ...string) *GradeSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &GradeSelect{GradeQuery: _q}
	sbuild.label = grade.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a GradeSelect configured with the given aggregations.
func (_q *GradeQuery) Aggregate(fns ...AggregateFunc) *GradeSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *GradeQuery) prepareQuery(ctx context.Context) error {
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
		if !grade.ValidColumn(f) {
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

func (_q *GradeQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Grade, error) {
	var (
		nodes       = []*Grade{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withGrader != nil,
			_q.withTrace != nil,
			_q.withExecutionResult != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Grade).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Grade{config: _q.config}
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
	if query := _q.withGrader; query != nil {
		if err := _q.loadGrader(ctx, query, nodes, nil,
			func(n *Grade, e *Grader) { n.Edges.Grader = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withTrace; query != nil {
		if err := _q.loadTrace(ctx, query, nodes, nil,
			func(n *Grade, e *Trace) { n.Edges.Trace = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withExecutionResult; query != nil {
		if err := _q.loadExecutionResult(ctx, query, nodes, nil,
			func(n *Grade, e *ExecutionResult) { n.Edges.ExecutionResult = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *GradeQuery) loadGrader(ctx context.Context, query *GraderQuery, nodes []*Grade, init func(*Grade), assign func(*Grade, *Grader)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*Grade)
	for i := range nodes {
		fk := nodes[i].GraderID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(grader.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "grader_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *GradeQuery) loadTrace(ctx context.Context, query *TraceQuery, nodes []*Grade, init func(*Grade), assign func(*Grade, *Trace)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*Grade)
	for i := range nodes {
		if nodes[i].TraceID == nil {
			continue
		}
		fk := *nodes[i].TraceID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(trace.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "trace_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *GradeQuery) loadExecutionResult(ctx context.Context, query *ExecutionResultQuery, nodes []*Grade, init func(*Grade), assign func(*Grade, *ExecutionResult)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*Grade)
	for i := range nodes {
		if nodes[i].ExecutionResultID == nil {
			continue
		}
		fk := *nodes[i].ExecutionResultID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(executionresult.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "execution_result_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *GradeQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *GradeQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(grade.Table, grade.Columns, sqlgraph.NewFieldSpec(grade.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, grade.FieldID)
		for i := range fields {
			if fields[i] != grade.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withGrader != nil {
			_spec.Node.AddColumnOnce(grade.FieldGraderID)
		}
		if _q.withTrace != nil {
			_spec.Node.AddColumnOnce(grade.FieldTraceID)
		}
		if _q.withExecutionResult != nil {
			_spec.Node.AddColumnOnce(grade.FieldExecutionResultID)
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

func (_q *GradeQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(grade.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = grade.Columns
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

// GradeGroupBy is the group-by builder for Grade entities.
type GradeGroupBy struct {
	selector
	build *GradeQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *GradeGroupBy) Aggregate(fns ...AggregateFunc) *GradeGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *GradeGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*GradeQuery, *GradeGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *GradeGroupBy) sqlScan(ctx context.Context, root *GradeQuery, v any) error {
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

// GradeSelect is the builder for selecting fields of Grade entities.
type GradeSelect struct {
	*GradeQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *GradeSelect) Aggregate(fns ...AggregateFunc) *GradeSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *GradeSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*GradeQuery, *GradeSelect](ctx, _s.GradeQuery, _s, _s.inters, v)
}

func (_s *GradeSelect) sqlScan(ctx context.Context, root *GradeQuery, v any) error {
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
