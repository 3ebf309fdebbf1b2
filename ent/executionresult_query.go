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
	"github.com/promptlens/promptlens/ent/evaluation"
	"github.com/promptlens/promptlens/ent/executionresult"
	"github.com/promptlens/promptlens/ent/grade"
	"github.com/promptlens/promptlens/ent/implementation"
	"github.com/promptlens/promptlens/ent/predicate"
	"github.com/promptlens/promptlens/ent/task"
	"github.com/promptlens/promptlens/ent/testcase"
)

// ExecutionResultQuery is the builder for querying ExecutionResult entities.
type ExecutionResultQuery struct {
	config
	ctx                *QueryContext
	order              []executionresult.OrderOption
	inters             []Interceptor
	predicates         []predicate.ExecutionResult
	withTask           *TaskQuery
	withImplementation *ImplementationQuery
	withEvaluation     *EvaluationQuery
	withTestCase       *TestCaseQuery
	withGrades         *GradeQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the ExecutionResultQuery builder.
func (_q *ExecutionResultQuery) Where(ps ...predicate.ExecutionResult) *ExecutionResultQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *ExecutionResultQuery) Limit(limit int) *ExecutionResultQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *ExecutionResultQuery) Offset(offset int) *ExecutionResultQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *ExecutionResultQuery) Unique(unique bool) *ExecutionResultQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *ExecutionResultQuery) Order(o ...executionresult.OrderOption) *ExecutionResultQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryTask chains the current query on the "task" edge.
func (_q *ExecutionResultQuery) QueryTask() *TaskQuery {
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
			sqlgraph.From(executionresult.Table, executionresult.FieldID, selector),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, executionresult.TaskTable, executionresult.TaskColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryImplementation chains the current query on the "implementation" edge.
func (_q *ExecutionResultQuery) QueryImplementation() *ImplementationQuery {
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
			sqlgraph.From(executionresult.Table, executionresult.FieldID, selector),
			sqlgraph.To(implementation.Table, implementation.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, executionresult.ImplementationTable, executionresult.ImplementationColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryEvaluation chains the current query on the "evaluation" edge.
func (_q *ExecutionResultQuery) QueryEvaluation() *EvaluationQuery {
	query := (&EvaluationClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(executionresult.Table, executionresult.FieldID, selector),
			sqlgraph.To(evaluation.Table, evaluation.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, executionresult.EvaluationTable, executionresult.EvaluationColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryTestCase chains the current query on the "test_case" edge.
func (_q *ExecutionResultQuery) QueryTestCase() *TestCaseQuery {
	query := (&TestCaseClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(executionresult.Table, executionresult.FieldID, selector),
			sqlgraph.To(testcase.Table, testcase.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, executionresult.TestCaseTable, executionresult.TestCaseColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryGrades chains the current query on the "grades" edge.
func (_q *ExecutionResultQuery) QueryGrades() *GradeQuery {
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
			sqlgraph.From(executionresult.Table, executionresult.FieldID, selector),
			sqlgraph.To(grade.Table, grade.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, executionresult.GradesTable, executionresult.GradesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first ExecutionResult entity from the query.
// Returns a *NotFoundError when no ExecutionResult was found.
func (_q *ExecutionResultQuery) First(ctx context.Context) (*ExecutionResult, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{executionresult.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *ExecutionResultQuery) FirstX(ctx context.Context) *ExecutionResult {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first ExecutionResult ID from the query.
// Returns a *NotFoundError when no ExecutionResult ID was found.
func (_q *ExecutionResultQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{executionresult.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *ExecutionResultQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single ExecutionResult entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one ExecutionResult entity is found.
// Returns a *NotFoundError when no ExecutionResult entities are found.
func (_q *ExecutionResultQuery) Only(ctx context.Context) (*ExecutionResult, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{executionresult.Label}
	default:
		return nil, &NotSingularError{executionresult.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *ExecutionResultQuery) OnlyX(ctx context.Context) *ExecutionResult {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only ExecutionResult ID in the query.
// Returns a *NotSingularError when more than one ExecutionResult ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *ExecutionResultQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{executionresult.Label}
	default:
		err = &NotSingularError{executionresult.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *ExecutionResultQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of ExecutionResults.
func (_q *ExecutionResultQuery) All(ctx context.Context) ([]*ExecutionResult, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*ExecutionResult, *ExecutionResultQuery]()
	return withInterceptors[[]*ExecutionResult](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *ExecutionResultQuery) AllX(ctx context.Context) []*ExecutionResult {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of ExecutionResult IDs.
func (_q *ExecutionResultQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(executionresult.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *ExecutionResultQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *ExecutionResultQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*ExecutionResultQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *ExecutionResultQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *ExecutionResultQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *ExecutionResultQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the ExecutionResultQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *ExecutionResultQuery) Clone() *ExecutionResultQuery {
	if _q == nil {
		return nil
	}
	return &ExecutionResultQuery{
		config:             _q.config,
		ctx:                _q.ctx.Clone(),
		order:              append([]executionresult.OrderOption{}, _q.order...),
		inters:             append([]Interceptor{}, _q.inters...),
		predicates:         append([]predicate.ExecutionResult{}, _q.predicates...),
		withTask:           _q.withTask.Clone(),
		withImplementation: _q.withImplementation.Clone(),
		withEvaluation:     _q.withEvaluation.Clone(),
		withTestCase:       _q.withTestCase.Clone(),
		withGrades:         _q.withGrades.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithTask tells the query-builder to eager-load the nodes that are connected to
// the "task" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ExecutionResultQuery) WithTask(opts ...func(*TaskQuery)) *ExecutionResultQuery {
	query := (&TaskClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTask = query
	return _q
}

// WithImplementation tells the query-builder to eager-load the nodes that are connected to
// the "implementation" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ExecutionResultQuery) WithImplementation(opts ...func(*ImplementationQuery)) *ExecutionResultQuery {
	query := (&ImplementationClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withImplementation = query
	return _q
}

// WithEvaluation tells the query-builder to eager-load the nodes that are connected to
// the "evaluation" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ExecutionResultQuery) WithEvaluation(opts ...func(*EvaluationQuery)) *ExecutionResultQuery {
	query := (&EvaluationClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withEvaluation = query
	return _q
}

// WithTestCase tells the query-builder to eager-load the nodes that are connected to
// the "test_case" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ExecutionResultQuery) WithTestCase(opts ...func(*TestCaseQuery)) *ExecutionResultQuery {
	query := (&TestCaseClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTestCase = query
	return _q
}

// WithGrades tells the query-builder to eager-load the nodes that are connected to
// the "grades" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *ExecutionResultQuery) WithGrades(opts ...func(*GradeQuery)) *ExecutionResultQuery {
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
//		TaskID string `json:"task_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.ExecutionResult.Query().
//		GroupBy(executionresult.FieldTaskID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *ExecutionResultQuery) GroupBy(field string, fields ...string) *ExecutionResultGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &ExecutionResultGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = executionresult.Label
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
//	client.ExecutionResult.Query().
//		Select(executionresult.FieldTaskID).
//		Scan(ctx, &v)
func (_q *ExecutionResultQuery) Select(fields ...string) *ExecutionResultSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &ExecutionResultSelect{ExecutionResultQuery: _q}
	sbuild.label = executionresult.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a ExecutionResultSelect configured with the given aggregations.
func (_q *ExecutionResultQuery) Aggregate(fns ...AggregateFunc) *ExecutionResultSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *ExecutionResultQuery) prepareQuery(ctx context.Context) error {
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
		if !executionresult.ValidColumn(f) {
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

func (_q *ExecutionResultQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*ExecutionResult, error) {
	var (
		nodes       = []*ExecutionResult{}
		_spec       = _q.querySpec()
		loadedTypes = [5]bool{
			_q.withTask != nil,
			_q.withImplementation != nil,
			_q.withEvaluation != nil,
			_q.withTestCase != nil,
			_q.withGrades != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*ExecutionResult).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &ExecutionResult{config: _q.config}
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
			func(n *ExecutionResult, e *Task) { n.Edges.Task = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withImplementation; query != nil {
		if err := _q.loadImplementation(ctx, query, nodes, nil,
			func(n *ExecutionResult, e *Implementation) { n.Edges.Implementation = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withEvaluation; query != nil {
		if err := _q.loadEvaluation(ctx, query, nodes, nil,
			func(n *ExecutionResult, e *Evaluation) { n.Edges.Evaluation = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withTestCase; query != nil {
		if err := _q.loadTestCase(ctx, query, nodes, nil,
			func(n *ExecutionResult, e *TestCase) { n.Edges.TestCase = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withGrades; query != nil {
		if err := _q.loadGrades(ctx, query, nodes,
			func(n *ExecutionResult) { n.Edges.Grades = []*Grade{} },
			func(n *ExecutionResult, e *Grade) { n.Edges.Grades = append(n.Edges.Grades, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *ExecutionResultQuery) loadTask(ctx context.Context, query *TaskQuery, nodes []*ExecutionResult, init func(*ExecutionResult), assign func(*ExecutionResult, *Task)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*ExecutionResult)
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
func (_q *ExecutionResultQuery) loadImplementation(ctx context.Context, query *ImplementationQuery, nodes []*ExecutionResult, init func(*ExecutionResult), assign func(*ExecutionResult, *Implementation)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*ExecutionResult)
	for i := range nodes {
		fk := nodes[i].ImplementationID
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
func (_q *ExecutionResultQuery) loadEvaluation(ctx context.Context, query *EvaluationQuery, nodes []*ExecutionResult, init func(*ExecutionResult), assign func(*ExecutionResult, *Evaluation)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*ExecutionResult)
	for i := range nodes {
		if nodes[i].EvaluationID == nil {
			continue
		}
		fk := *nodes[i].EvaluationID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(evaluation.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "evaluation_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *ExecutionResultQuery) loadTestCase(ctx context.Context, query *TestCaseQuery, nodes []*ExecutionResult, init func(*ExecutionResult), assign func(*ExecutionResult, *TestCase)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*ExecutionResult)
	for i := range nodes {
		if nodes[i].TestCaseID == nil {
			continue
		}
		fk := *nodes[i].TestCaseID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(testcase.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "test_case_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *ExecutionResultQuery) loadGrades(ctx context.Context, query *GradeQuery, nodes []*ExecutionResult, init func(*ExecutionResult), assign func(*ExecutionResult, *Grade)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*ExecutionResult)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(grade.FieldExecutionResultID)
	}
	query.Where(predicate.Grade(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(executionresult.GradesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ExecutionResultID
		if fk == nil {
			return fmt.Errorf(`foreign-key "execution_result_id" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "execution_result_id" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *ExecutionResultQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *ExecutionResultQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(executionresult.Table, executionresult.Columns, sqlgraph.NewFieldSpec(executionresult.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, executionresult.FieldID)
		for i := range fields {
			if fields[i] != executionresult.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withTask != nil {
			_spec.Node.AddColumnOnce(executionresult.FieldTaskID)
		}
		if _q.withImplementation != nil {
			_spec.Node.AddColumnOnce(executionresult.FieldImplementationID)
		}
		if _q.withEvaluation != nil {
			_spec.Node.AddColumnOnce(executionresult.FieldEvaluationID)
		}
		if _q.withTestCase != nil {
			_spec.Node.AddColumnOnce(executionresult.FieldTestCaseID)
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

func (_q *ExecutionResultQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(executionresult.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = executionresult.Columns
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

// ExecutionResultGroupBy is the group-by builder for ExecutionResult entities.
type ExecutionResultGroupBy struct {
	selector
	build *ExecutionResultQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *ExecutionResultGroupBy) Aggregate(fns ...AggregateFunc) *ExecutionResultGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *ExecutionResultGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ExecutionResultQuery, *ExecutionResultGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *ExecutionResultGroupBy) sqlScan(ctx context.Context, root *ExecutionResultQuery, v any) error {
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

// ExecutionResultSelect is the builder for selecting fields of ExecutionResult entities.
type ExecutionResultSelect struct {
	*ExecutionResultQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *ExecutionResultSelect) Aggregate(fns ...AggregateFunc) *ExecutionResultSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *ExecutionResultSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*ExecutionResultQuery, *ExecutionResultSelect](ctx, _s.ExecutionResultQuery, _s, _s.inters, v)
}

func (_s *ExecutionResultSelect) sqlScan(ctx context.Context, root *ExecutionResultQuery, v any) error {
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
