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
	"github.com/promptlens/promptlens/ent/predicate"
	"github.com/promptlens/promptlens/ent/targettaskmetrics"
	"github.com/promptlens/promptlens/ent/task"
)

// TargetTaskMetricsQuery is the builder for querying TargetTaskMetrics entities.
type TargetTaskMetricsQuery struct {
	config
	ctx        *QueryContext
	order      []targettaskmetrics.OrderOption
	inters     []Interceptor
	predicates []predicate.TargetTaskMetrics
	withTask   *TaskQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the TargetTaskMetricsQuery builder.
func (_q *TargetTaskMetricsQuery) Where(ps ...predicate.TargetTaskMetrics) *TargetTaskMetricsQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *TargetTaskMetricsQuery) Limit(limit int) *TargetTaskMetricsQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *TargetTaskMetricsQuery) Offset(offset int) *TargetTaskMetricsQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *TargetTaskMetricsQuery) Unique(unique bool) *TargetTaskMetricsQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *TargetTaskMetricsQuery) Order(o ...targettaskmetrics.OrderOption) *TargetTaskMetricsQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryTask chains the current query on the "task" edge.
func (_q *TargetTaskMetricsQuery) QueryTask() *TaskQuery {
	query := (&TaskClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(targettaskmetrics.Table, targettaskmetrics.FieldID, selector),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, targettaskmetrics.TaskTable, targettaskmetrics.TaskColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first TargetTaskMetrics entity from the query.
// Returns a *NotFoundError when no TargetTaskMetrics was found.
func (_q *TargetTaskMetricsQuery) First(ctx context.Context) (*TargetTaskMetrics, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{targettaskmetrics.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *TargetTaskMetricsQuery) FirstX(ctx context.Context) *TargetTaskMetrics {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first TargetTaskMetrics ID from the query.
// Returns a *NotFoundError when no TargetTaskMetrics ID was found.
func (_q *TargetTaskMetricsQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{targettaskmetrics.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *TargetTaskMetricsQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single TargetTaskMetrics entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one TargetTaskMetrics entity is found.
// Returns a *NotFoundError when no TargetTaskMetrics entities are found.
func (_q *TargetTaskMetricsQuery) Only(ctx context.Context) (*TargetTaskMetrics, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{targettaskmetrics.Label}
	default:
		return nil, &NotSingularError{targettaskmetrics.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *TargetTaskMetricsQuery) OnlyX(ctx context.Context) *TargetTaskMetrics {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only TargetTaskMetrics ID in the query.
// Returns a *NotSingularError when more than one TargetTaskMetrics ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *TargetTaskMetricsQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{targettaskmetrics.Label}
	default:
		err = &NotSingularError{targettaskmetrics.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *TargetTaskMetricsQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of TargetTaskMetricsSlice.
func (_q *TargetTaskMetricsQuery) All(ctx context.Context) ([]*TargetTaskMetrics, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*TargetTaskMetrics, *TargetTaskMetricsQuery]()
	return withInterceptors[[]*TargetTaskMetrics](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *TargetTaskMetricsQuery) AllX(ctx context.Context) []*TargetTaskMetrics {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of TargetTaskMetrics IDs.
func (_q *TargetTaskMetricsQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(targettaskmetrics.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *TargetTaskMetricsQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *TargetTaskMetricsQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*TargetTaskMetricsQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *TargetTaskMetricsQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *TargetTaskMetricsQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *TargetTaskMetricsQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the TargetTaskMetricsQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *TargetTaskMetricsQuery) Clone() *TargetTaskMetricsQuery {
	if _q == nil {
		return nil
	}
	return &TargetTaskMetricsQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]targettaskmetrics.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.TargetTaskMetrics{}, _q.predicates...),
		withTask:   _q.withTask.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithTask tells the query-builder to eager-load the nodes that are connected to
// the "task" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *TargetTaskMetricsQuery) WithTask(opts ...func(*TaskQuery)) *TargetTaskMetricsQuery {
	query := (&TaskClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTask = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		TaskID string `json:"task_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.TargetTaskMetrics.Query().
//		GroupBy(targettaskmetrics.FieldTaskID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *TargetTaskMetricsQuery) GroupBy(field string, fields ...string) *TargetTaskMetricsGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &TargetTaskMetricsGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = targettaskmetrics.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		TaskID string `json:"task_id,omitempty"`
//	}
//
//	client.TargetTaskMetrics.Query().
//		Select(targettaskmetrics.FieldTaskID).
//		Scan(ctx, &v)
func (_q *TargetTaskMetricsQuery) Select(fields ...string) *TargetTaskMetricsSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &TargetTaskMetricsSelect{TargetTaskMetricsQuery: _q}
	sbuild.label = targettaskmetrics.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a TargetTaskMetricsSelect configured with the given aggregations.
func (_q *TargetTaskMetricsQuery) Aggregate(fns ...AggregateFunc) *TargetTaskMetricsSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *TargetTaskMetricsQuery) prepareQuery(ctx context.Context) error {
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
		if !targettaskmetrics.ValidColumn(f) {
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

func (_q *TargetTaskMetricsQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*TargetTaskMetrics, error) {
	var (
		nodes       = []*TargetTaskMetrics{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withTask != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*TargetTaskMetrics).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &TargetTaskMetrics{config: _q.config}
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
	if query := _q.withTask; query != nil {
		if err := _q.loadTask(ctx, query, nodes, nil,
			func(n *TargetTaskMetrics, e *Task) { n.Edges.Task = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *TargetTaskMetricsQuery) loadTask(ctx context.Context, query *TaskQuery, nodes []*TargetTaskMetrics, init func(*TargetTaskMetrics), assign func(*TargetTaskMetrics, *Task)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*TargetTaskMetrics)
	for i := range nodes {
		fk := nodes[i].TaskID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(task.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "task_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *TargetTaskMetricsQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *TargetTaskMetricsQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(targettaskmetrics.Table, targettaskmetrics.Columns, sqlgraph.NewFieldSpec(targettaskmetrics.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, targettaskmetrics.FieldID)
		for i := range fields {
			if fields[i] != targettaskmetrics.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withTask != nil {
			_spec.Node.AddColumnOnce(targettaskmetrics.FieldTaskID)
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

func (_q *TargetTaskMetricsQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(targettaskmetrics.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = targettaskmetrics.Columns
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

// TargetTaskMetricsGroupBy is the group-by builder for TargetTaskMetrics entities.
type TargetTaskMetricsGroupBy struct {
	selector
	build *TargetTaskMetricsQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *TargetTaskMetricsGroupBy) Aggregate(fns ...AggregateFunc) *TargetTaskMetricsGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *TargetTaskMetricsGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TargetTaskMetricsQuery, *TargetTaskMetricsGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *TargetTaskMetricsGroupBy) sqlScan(ctx context.Context, root *TargetTaskMetricsQuery, v any) error {
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

// TargetTaskMetricsSelect is the builder for selecting fields of TargetTaskMetrics entities.
type TargetTaskMetricsSelect struct {
	*TargetTaskMetricsQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *TargetTaskMetricsSelect) Aggregate(fns ...AggregateFunc) *TargetTaskMetricsSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *TargetTaskMetricsSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TargetTaskMetricsQuery, *TargetTaskMetricsSelect](ctx, _s.TargetTaskMetricsQuery, _s, _s.inters, v)
}

func (_s *TargetTaskMetricsSelect) sqlScan(ctx context.Context, root *TargetTaskMetricsQuery, v any) error {
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
