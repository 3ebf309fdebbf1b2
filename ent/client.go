// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/promptlens/promptlens/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/promptlens/promptlens/ent/evaluation"
	"github.com/promptlens/promptlens/ent/evaluationconfig"
	"github.com/promptlens/promptlens/ent/executionresult"
	"github.com/promptlens/promptlens/ent/grade"
	"github.com/promptlens/promptlens/ent/grader"
	"github.com/promptlens/promptlens/ent/httptrace"
	"github.com/promptlens/promptlens/ent/implementation"
	"github.com/promptlens/promptlens/ent/project"
	"github.com/promptlens/promptlens/ent/targettaskmetrics"
	"github.com/promptlens/promptlens/ent/task"
	"github.com/promptlens/promptlens/ent/testcase"
	"github.com/promptlens/promptlens/ent/trace"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Evaluation is the client for interacting with the Evaluation builders.
	Evaluation *EvaluationClient
	// EvaluationConfig is the client for interacting with the EvaluationConfig builders.
	EvaluationConfig *EvaluationConfigClient
	// ExecutionResult is the client for interacting with the ExecutionResult builders.
	ExecutionResult *ExecutionResultClient
	// Grade is the client for interacting with the Grade builders.
	Grade *GradeClient
	// Grader is the client for interacting with the Grader builders.
	Grader *GraderClient
	// HTTPTrace is the client for interacting with the HTTPTrace builders.
	HTTPTrace *HTTPTraceClient
	// Implementation is the client for interacting with the Implementation builders.
	Implementation *ImplementationClient
	// Project is the client for interacting with the Project builders.
	Project *ProjectClient
	// TargetTaskMetrics is the client for interacting with the TargetTaskMetrics builders.
	TargetTaskMetrics *TargetTaskMetricsClient
	// Task is the client for interacting with the Task builders.
	Task *TaskClient
	// TestCase is the client for interacting with the TestCase builders.
	TestCase *TestCaseClient
	// Trace is the client for interacting with the Trace builders.
	Trace *TraceClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Evaluation = NewEvaluationClient(c.config)
	c.EvaluationConfig = NewEvaluationConfigClient(c.config)
	c.ExecutionResult = NewExecutionResultClient(c.config)
	c.Grade = NewGradeClient(c.config)
	c.Grader = NewGraderClient(c.config)
	c.HTTPTrace = NewHTTPTraceClient(c.config)
	c.Implementation = NewImplementationClient(c.config)
	c.Project = NewProjectClient(c.config)
	c.TargetTaskMetrics = NewTargetTaskMetricsClient(c.config)
	c.Task = NewTaskClient(c.config)
	c.TestCase = NewTestCaseClient(c.config)
	c.Trace = NewTraceClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		Evaluation:        NewEvaluationClient(cfg),
		EvaluationConfig:  NewEvaluationConfigClient(cfg),
		ExecutionResult:   NewExecutionResultClient(cfg),
		Grade:             NewGradeClient(cfg),
		Grader:            NewGraderClient(cfg),
		HTTPTrace:         NewHTTPTraceClient(cfg),
		Implementation:    NewImplementationClient(cfg),
		Project:           NewProjectClient(cfg),
		TargetTaskMetrics: NewTargetTaskMetricsClient(cfg),
		Task:              NewTaskClient(cfg),
		TestCase:          NewTestCaseClient(cfg),
		Trace:             NewTraceClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		Evaluation:        NewEvaluationClient(cfg),
		EvaluationConfig:  NewEvaluationConfigClient(cfg),
		ExecutionResult:   NewExecutionResultClient(cfg),
		Grade:             NewGradeClient(cfg),
		Grader:            NewGraderClient(cfg),
		HTTPTrace:         NewHTTPTraceClient(cfg),
		Implementation:    NewImplementationClient(cfg),
		Project:           NewProjectClient(cfg),
		TargetTaskMetrics: NewTargetTaskMetricsClient(cfg),
		Task:              NewTaskClient(cfg),
		TestCase:          NewTestCaseClient(cfg),
		Trace:             NewTraceClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Evaluation.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Evaluation, c.EvaluationConfig, c.ExecutionResult, c.Grade, c.Grader,
		c.HTTPTrace, c.Implementation, c.Project, c.TargetTaskMetrics, c.Task,
		c.TestCase, c.Trace,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Evaluation, c.EvaluationConfig, c.ExecutionResult, c.Grade, c.Grader,
		c.HTTPTrace, c.Implementation, c.Project, c.TargetTaskMetrics, c.Task,
		c.TestCase, c.Trace,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *EvaluationMutation:
		return c.Evaluation.mutate(ctx, m)
	case *EvaluationConfigMutation:
		return c.EvaluationConfig.mutate(ctx, m)
	case *ExecutionResultMutation:
		return c.ExecutionResult.mutate(ctx, m)
	case *GradeMutation:
		return c.Grade.mutate(ctx, m)
	case *GraderMutation:
		return c.Grader.mutate(ctx, m)
	case *HTTPTraceMutation:
		return c.HTTPTrace.mutate(ctx, m)
	case *ImplementationMutation:
		return c.Implementation.mutate(ctx, m)
	case *ProjectMutation:
		return c.Project.mutate(ctx, m)
	case *TargetTaskMetricsMutation:
		return c.TargetTaskMetrics.mutate(ctx, m)
	case *TaskMutation:
		return c.Task.mutate(ctx, m)
	case *TestCaseMutation:
		return c.TestCase.mutate(ctx, m)
	case *TraceMutation:
		return c.Trace.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// EvaluationClient is a client for the Evaluation schema.
type EvaluationClient struct {
	config
}

// NewEvaluationClient returns a client for the Evaluation from the given config.
func NewEvaluationClient(c config) *EvaluationClient {
	return &EvaluationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `evaluation.Hooks(f(g(h())))`.
func (c *EvaluationClient) Use(hooks ...Hook) {
	c.hooks.Evaluation = append(c.hooks.Evaluation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `evaluation.Intercept(f(g(h())))`.
func (c *EvaluationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Evaluation = append(c.inters.Evaluation, interceptors...)
}

// Create returns a builder for creating a Evaluation entity.
func (c *EvaluationClient) Create() *EvaluationCreate {
	mutation := newEvaluationMutation(c.config, OpCreate)
	return &EvaluationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Evaluation entities.
func (c *EvaluationClient) CreateBulk(builders ...*EvaluationCreate) *EvaluationCreateBulk {
	return &EvaluationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EvaluationClient) MapCreateBulk(slice any, setFunc func(*EvaluationCreate, int)) *EvaluationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EvaluationCreateBulk{err: fmt.Errorf("calling to EvaluationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EvaluationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EvaluationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Evaluation.
func (c *EvaluationClient) Update() *EvaluationUpdate {
	mutation := newEvaluationMutation(c.config, OpUpdate)
	return &EvaluationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EvaluationClient) UpdateOne(_m *Evaluation) *EvaluationUpdateOne {
	mutation := newEvaluationMutation(c.config, OpUpdateOne, withEvaluation(_m))
	return &EvaluationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EvaluationClient) UpdateOneID(id string) *EvaluationUpdateOne {
	mutation := newEvaluationMutation(c.config, OpUpdateOne, withEvaluationID(id))
	return &EvaluationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Evaluation.
func (c *EvaluationClient) Delete() *EvaluationDelete {
	mutation := newEvaluationMutation(c.config, OpDelete)
	return &EvaluationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EvaluationClient) DeleteOne(_m *Evaluation) *EvaluationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EvaluationClient) DeleteOneID(id string) *EvaluationDeleteOne {
	builder := c.Delete().Where(evaluation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EvaluationDeleteOne{builder}
}

// Query returns a query builder for Evaluation.
func (c *EvaluationClient) Query() *EvaluationQuery {
	return &EvaluationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvaluation},
		inters: c.Interceptors(),
	}
}

// Get returns a Evaluation entity by its id.
func (c *EvaluationClient) Get(ctx context.Context, id string) (*Evaluation, error) {
	return c.Query().Where(evaluation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EvaluationClient) GetX(ctx context.Context, id string) *Evaluation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a Evaluation.
func (c *EvaluationClient) QueryTask(_m *Evaluation) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(evaluation.Table, evaluation.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, evaluation.TaskTable, evaluation.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryImplementation queries the implementation edge of a Evaluation.
func (c *EvaluationClient) QueryImplementation(_m *Evaluation) *ImplementationQuery {
	query := (&ImplementationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(evaluation.Table, evaluation.FieldID, id),
			sqlgraph.To(implementation.Table, implementation.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, evaluation.ImplementationTable, evaluation.ImplementationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryExecutionResults queries the execution_results edge of a Evaluation.
func (c *EvaluationClient) QueryExecutionResults(_m *Evaluation) *ExecutionResultQuery {
	query := (&ExecutionResultClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(evaluation.Table, evaluation.FieldID, id),
			sqlgraph.To(executionresult.Table, executionresult.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, evaluation.ExecutionResultsTable, evaluation.ExecutionResultsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EvaluationClient) Hooks() []Hook {
	return c.hooks.Evaluation
}

// Interceptors returns the client interceptors.
func (c *EvaluationClient) Interceptors() []Interceptor {
	return c.inters.Evaluation
}

func (c *EvaluationClient) mutate(ctx context.Context, m *EvaluationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EvaluationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EvaluationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EvaluationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EvaluationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Evaluation mutation op: %q", m.Op())
	}
}

// EvaluationConfigClient is a client for the EvaluationConfig schema.
type EvaluationConfigClient struct {
	config
}

// NewEvaluationConfigClient returns a client for the EvaluationConfig from the given config.
func NewEvaluationConfigClient(c config) *EvaluationConfigClient {
	return &EvaluationConfigClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `evaluationconfig.Hooks(f(g(h())))`.
func (c *EvaluationConfigClient) Use(hooks ...Hook) {
	c.hooks.EvaluationConfig = append(c.hooks.EvaluationConfig, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `evaluationconfig.Intercept(f(g(h())))`.
func (c *EvaluationConfigClient) Intercept(interceptors ...Interceptor) {
	c.inters.EvaluationConfig = append(c.inters.EvaluationConfig, interceptors...)
}

// Create returns a builder for creating a EvaluationConfig entity.
func (c *EvaluationConfigClient) Create() *EvaluationConfigCreate {
	mutation := newEvaluationConfigMutation(c.config, OpCreate)
	return &EvaluationConfigCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EvaluationConfig entities.
func (c *EvaluationConfigClient) CreateBulk(builders ...*EvaluationConfigCreate) *EvaluationConfigCreateBulk {
	return &EvaluationConfigCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EvaluationConfigClient) MapCreateBulk(slice any, setFunc func(*EvaluationConfigCreate, int)) *EvaluationConfigCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EvaluationConfigCreateBulk{err: fmt.Errorf("calling to EvaluationConfigClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EvaluationConfigCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EvaluationConfigCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EvaluationConfig.
func (c *EvaluationConfigClient) Update() *EvaluationConfigUpdate {
	mutation := newEvaluationConfigMutation(c.config, OpUpdate)
	return &EvaluationConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EvaluationConfigClient) UpdateOne(_m *EvaluationConfig) *EvaluationConfigUpdateOne {
	mutation := newEvaluationConfigMutation(c.config, OpUpdateOne, withEvaluationConfig(_m))
	return &EvaluationConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EvaluationConfigClient) UpdateOneID(id string) *EvaluationConfigUpdateOne {
	mutation := newEvaluationConfigMutation(c.config, OpUpdateOne, withEvaluationConfigID(id))
	return &EvaluationConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EvaluationConfig.
func (c *EvaluationConfigClient) Delete() *EvaluationConfigDelete {
	mutation := newEvaluationConfigMutation(c.config, OpDelete)
	return &EvaluationConfigDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EvaluationConfigClient) DeleteOne(_m *EvaluationConfig) *EvaluationConfigDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EvaluationConfigClient) DeleteOneID(id string) *EvaluationConfigDeleteOne {
	builder := c.Delete().Where(evaluationconfig.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EvaluationConfigDeleteOne{builder}
}

// Query returns a query builder for EvaluationConfig.
func (c *EvaluationConfigClient) Query() *EvaluationConfigQuery {
	return &EvaluationConfigQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvaluationConfig},
		inters: c.Interceptors(),
	}
}

// Get returns a EvaluationConfig entity by its id.
func (c *EvaluationConfigClient) Get(ctx context.Context, id string) (*EvaluationConfig, error) {
	return c.Query().Where(evaluationconfig.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EvaluationConfigClient) GetX(ctx context.Context, id string) *EvaluationConfig {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a EvaluationConfig.
func (c *EvaluationConfigClient) QueryTask(_m *EvaluationConfig) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(evaluationconfig.Table, evaluationconfig.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, evaluationconfig.TaskTable, evaluationconfig.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EvaluationConfigClient) Hooks() []Hook {
	return c.hooks.EvaluationConfig
}

// Interceptors returns the client interceptors.
func (c *EvaluationConfigClient) Interceptors() []Interceptor {
	return c.inters.EvaluationConfig
}

func (c *EvaluationConfigClient) mutate(ctx context.Context, m *EvaluationConfigMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EvaluationConfigCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EvaluationConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EvaluationConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EvaluationConfigDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EvaluationConfig mutation op: %q", m.Op())
	}
}

// ExecutionResultClient is a client for the ExecutionResult schema.
type ExecutionResultClient struct {
	config
}

// NewExecutionResultClient returns a client for the ExecutionResult from the given config.
func NewExecutionResultClient(c config) *ExecutionResultClient {
	return &ExecutionResultClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `executionresult.Hooks(f(g(h())))`.
func (c *ExecutionResultClient) Use(hooks ...Hook) {
	c.hooks.ExecutionResult = append(c.hooks.ExecutionResult, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `executionresult.Intercept(f(g(h())))`.
func (c *ExecutionResultClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExecutionResult = append(c.inters.ExecutionResult, interceptors...)
}

// Create returns a builder for creating a ExecutionResult entity.
func (c *ExecutionResultClient) Create() *ExecutionResultCreate {
	mutation := newExecutionResultMutation(c.config, OpCreate)
	return &ExecutionResultCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExecutionResult entities.
func (c *ExecutionResultClient) CreateBulk(builders ...*ExecutionResultCreate) *ExecutionResultCreateBulk {
	return &ExecutionResultCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExecutionResultClient) MapCreateBulk(slice any, setFunc func(*ExecutionResultCreate, int)) *ExecutionResultCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExecutionResultCreateBulk{err: fmt.Errorf("calling to ExecutionResultClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExecutionResultCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExecutionResultCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExecutionResult.
func (c *ExecutionResultClient) Update() *ExecutionResultUpdate {
	mutation := newExecutionResultMutation(c.config, OpUpdate)
	return &ExecutionResultUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExecutionResultClient) UpdateOne(_m *ExecutionResult) *ExecutionResultUpdateOne {
	mutation := newExecutionResultMutation(c.config, OpUpdateOne, withExecutionResult(_m))
	return &ExecutionResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExecutionResultClient) UpdateOneID(id string) *ExecutionResultUpdateOne {
	mutation := newExecutionResultMutation(c.config, OpUpdateOne, withExecutionResultID(id))
	return &ExecutionResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExecutionResult.
func (c *ExecutionResultClient) Delete() *ExecutionResultDelete {
	mutation := newExecutionResultMutation(c.config, OpDelete)
	return &ExecutionResultDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExecutionResultClient) DeleteOne(_m *ExecutionResult) *ExecutionResultDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExecutionResultClient) DeleteOneID(id string) *ExecutionResultDeleteOne {
	builder := c.Delete().Where(executionresult.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExecutionResultDeleteOne{builder}
}

// Query returns a query builder for ExecutionResult.
func (c *ExecutionResultClient) Query() *ExecutionResultQuery {
	return &ExecutionResultQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExecutionResult},
		inters: c.Interceptors(),
	}
}

// Get returns a ExecutionResult entity by its id.
func (c *ExecutionResultClient) Get(ctx context.Context, id string) (*ExecutionResult, error) {
	return c.Query().Where(executionresult.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExecutionResultClient) GetX(ctx context.Context, id string) *ExecutionResult {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a ExecutionResult.
func (c *ExecutionResultClient) QueryTask(_m *ExecutionResult) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(executionresult.Table, executionresult.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, executionresult.TaskTable, executionresult.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryImplementation queries the implementation edge of a ExecutionResult.
func (c *ExecutionResultClient) QueryImplementation(_m *ExecutionResult) *ImplementationQuery {
	query := (&ImplementationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(executionresult.Table, executionresult.FieldID, id),
			sqlgraph.To(implementation.Table, implementation.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, executionresult.ImplementationTable, executionresult.ImplementationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvaluation queries the evaluation edge of a ExecutionResult.
func (c *ExecutionResultClient) QueryEvaluation(_m *ExecutionResult) *EvaluationQuery {
	query := (&EvaluationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(executionresult.Table, executionresult.FieldID, id),
			sqlgraph.To(evaluation.Table, evaluation.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, executionresult.EvaluationTable, executionresult.EvaluationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTestCase queries the test_case edge of a ExecutionResult.
func (c *ExecutionResultClient) QueryTestCase(_m *ExecutionResult) *TestCaseQuery {
	query := (&TestCaseClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(executionresult.Table, executionresult.FieldID, id),
			sqlgraph.To(testcase.Table, testcase.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, executionresult.TestCaseTable, executionresult.TestCaseColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryGrades queries the grades edge of a ExecutionResult.
func (c *ExecutionResultClient) QueryGrades(_m *ExecutionResult) *GradeQuery {
	query := (&GradeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(executionresult.Table, executionresult.FieldID, id),
			sqlgraph.To(grade.Table, grade.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, executionresult.GradesTable, executionresult.GradesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExecutionResultClient) Hooks() []Hook {
	return c.hooks.ExecutionResult
}

// Interceptors returns the client interceptors.
func (c *ExecutionResultClient) Interceptors() []Interceptor {
	return c.inters.ExecutionResult
}

func (c *ExecutionResultClient) mutate(ctx context.Context, m *ExecutionResultMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExecutionResultCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExecutionResultUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExecutionResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExecutionResultDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExecutionResult mutation op: %q", m.Op())
	}
}

// GradeClient is a client for the Grade schema.
type GradeClient struct {
	config
}

// NewGradeClient returns a client for the Grade from the given config.
func NewGradeClient(c config) *GradeClient {
	return &GradeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `grade.Hooks(f(g(h())))`.
func (c *GradeClient) Use(hooks ...Hook) {
	c.hooks.Grade = append(c.hooks.Grade, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `grade.Intercept(f(g(h())))`.
func (c *GradeClient) Intercept(interceptors ...Interceptor) {
	c.inters.Grade = append(c.inters.Grade, interceptors...)
}

// Create returns a builder for creating a Grade entity.
func (c *GradeClient) Create() *GradeCreate {
	mutation := newGradeMutation(c.config, OpCreate)
	return &GradeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Grade entities.
func (c *GradeClient) CreateBulk(builders ...*GradeCreate) *GradeCreateBulk {
	return &GradeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GradeClient) MapCreateBulk(slice any, setFunc func(*GradeCreate, int)) *GradeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GradeCreateBulk{err: fmt.Errorf("calling to GradeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GradeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GradeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Grade.
func (c *GradeClient) Update() *GradeUpdate {
	mutation := newGradeMutation(c.config, OpUpdate)
	return &GradeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GradeClient) UpdateOne(_m *Grade) *GradeUpdateOne {
	mutation := newGradeMutation(c.config, OpUpdateOne, withGrade(_m))
	return &GradeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GradeClient) UpdateOneID(id string) *GradeUpdateOne {
	mutation := newGradeMutation(c.config, OpUpdateOne, withGradeID(id))
	return &GradeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Grade.
func (c *GradeClient) Delete() *GradeDelete {
	mutation := newGradeMutation(c.config, OpDelete)
	return &GradeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GradeClient) DeleteOne(_m *Grade) *GradeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GradeClient) DeleteOneID(id string) *GradeDeleteOne {
	builder := c.Delete().Where(grade.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GradeDeleteOne{builder}
}

// Query returns a query builder for Grade.
func (c *GradeClient) Query() *GradeQuery {
	return &GradeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGrade},
		inters: c.Interceptors(),
	}
}

// Get returns a Grade entity by its id.
func (c *GradeClient) Get(ctx context.Context, id string) (*Grade, error) {
	return c.Query().Where(grade.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GradeClient) GetX(ctx context.Context, id string) *Grade {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryGrader queries the grader edge of a Grade.
func (c *GradeClient) QueryGrader(_m *Grade) *GraderQuery {
	query := (&GraderClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(grade.Table, grade.FieldID, id),
			sqlgraph.To(grader.Table, grader.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, grade.GraderTable, grade.GraderColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTrace queries the trace edge of a Grade.
func (c *GradeClient) QueryTrace(_m *Grade) *TraceQuery {
	query := (&TraceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(grade.Table, grade.FieldID, id),
			sqlgraph.To(trace.Table, trace.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, grade.TraceTable, grade.TraceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryExecutionResult queries the execution_result edge of a Grade.
func (c *GradeClient) QueryExecutionResult(_m *Grade) *ExecutionResultQuery {
	query := (&ExecutionResultClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(grade.Table, grade.FieldID, id),
			sqlgraph.To(executionresult.Table, executionresult.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, grade.ExecutionResultTable, grade.ExecutionResultColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *GradeClient) Hooks() []Hook {
	return c.hooks.Grade
}

// Interceptors returns the client interceptors.
func (c *GradeClient) Interceptors() []Interceptor {
	return c.inters.Grade
}

func (c *GradeClient) mutate(ctx context.Context, m *GradeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GradeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GradeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GradeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GradeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Grade mutation op: %q", m.Op())
	}
}

// GraderClient is a client for the Grader schema.
type GraderClient struct {
	config
}

// NewGraderClient returns a client for the Grader from the given config.
func NewGraderClient(c config) *GraderClient {
	return &GraderClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `grader.Hooks(f(g(h())))`.
func (c *GraderClient) Use(hooks ...Hook) {
	c.hooks.Grader = append(c.hooks.Grader, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `grader.Intercept(f(g(h())))`.
func (c *GraderClient) Intercept(interceptors ...Interceptor) {
	c.inters.Grader = append(c.inters.Grader, interceptors...)
}

// Create returns a builder for creating a Grader entity.
func (c *GraderClient) Create() *GraderCreate {
	mutation := newGraderMutation(c.config, OpCreate)
	return &GraderCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Grader entities.
func (c *GraderClient) CreateBulk(builders ...*GraderCreate) *GraderCreateBulk {
	return &GraderCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GraderClient) MapCreateBulk(slice any, setFunc func(*GraderCreate, int)) *GraderCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GraderCreateBulk{err: fmt.Errorf("calling to GraderClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GraderCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GraderCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Grader.
func (c *GraderClient) Update() *GraderUpdate {
	mutation := newGraderMutation(c.config, OpUpdate)
	return &GraderUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GraderClient) UpdateOne(_m *Grader) *GraderUpdateOne {
	mutation := newGraderMutation(c.config, OpUpdateOne, withGrader(_m))
	return &GraderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GraderClient) UpdateOneID(id string) *GraderUpdateOne {
	mutation := newGraderMutation(c.config, OpUpdateOne, withGraderID(id))
	return &GraderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Grader.
func (c *GraderClient) Delete() *GraderDelete {
	mutation := newGraderMutation(c.config, OpDelete)
	return &GraderDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GraderClient) DeleteOne(_m *Grader) *GraderDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GraderClient) DeleteOneID(id string) *GraderDeleteOne {
	builder := c.Delete().Where(grader.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GraderDeleteOne{builder}
}

// Query returns a query builder for Grader.
func (c *GraderClient) Query() *GraderQuery {
	return &GraderQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGrader},
		inters: c.Interceptors(),
	}
}

// Get returns a Grader entity by its id.
func (c *GraderClient) Get(ctx context.Context, id string) (*Grader, error) {
	return c.Query().Where(grader.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GraderClient) GetX(ctx context.Context, id string) *Grader {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProject queries the project edge of a Grader.
func (c *GraderClient) QueryProject(_m *Grader) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(grader.Table, grader.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, grader.ProjectTable, grader.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryGrades queries the grades edge of a Grader.
func (c *GraderClient) QueryGrades(_m *Grader) *GradeQuery {
	query := (&GradeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(grader.Table, grader.FieldID, id),
			sqlgraph.To(grade.Table, grade.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, grader.GradesTable, grader.GradesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *GraderClient) Hooks() []Hook {
	return c.hooks.Grader
}

// Interceptors returns the client interceptors.
func (c *GraderClient) Interceptors() []Interceptor {
	return c.inters.Grader
}

func (c *GraderClient) mutate(ctx context.Context, m *GraderMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GraderCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GraderUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GraderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GraderDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Grader mutation op: %q", m.Op())
	}
}

// HTTPTraceClient is a client for the HTTPTrace schema.
type HTTPTraceClient struct {
	config
}

// NewHTTPTraceClient returns a client for the HTTPTrace from the given config.
func NewHTTPTraceClient(c config) *HTTPTraceClient {
	return &HTTPTraceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `httptrace.Hooks(f(g(h())))`.
func (c *HTTPTraceClient) Use(hooks ...Hook) {
	c.hooks.HTTPTrace = append(c.hooks.HTTPTrace, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `httptrace.Intercept(f(g(h())))`.
func (c *HTTPTraceClient) Intercept(interceptors ...Interceptor) {
	c.inters.HTTPTrace = append(c.inters.HTTPTrace, interceptors...)
}

// Create returns a builder for creating a HTTPTrace entity.
func (c *HTTPTraceClient) Create() *HTTPTraceCreate {
	mutation := newHTTPTraceMutation(c.config, OpCreate)
	return &HTTPTraceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of HTTPTrace entities.
func (c *HTTPTraceClient) CreateBulk(builders ...*HTTPTraceCreate) *HTTPTraceCreateBulk {
	return &HTTPTraceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *HTTPTraceClient) MapCreateBulk(slice any, setFunc func(*HTTPTraceCreate, int)) *HTTPTraceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &HTTPTraceCreateBulk{err: fmt.Errorf("calling to HTTPTraceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*HTTPTraceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &HTTPTraceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for HTTPTrace.
func (c *HTTPTraceClient) Update() *HTTPTraceUpdate {
	mutation := newHTTPTraceMutation(c.config, OpUpdate)
	return &HTTPTraceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *HTTPTraceClient) UpdateOne(_m *HTTPTrace) *HTTPTraceUpdateOne {
	mutation := newHTTPTraceMutation(c.config, OpUpdateOne, withHTTPTrace(_m))
	return &HTTPTraceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *HTTPTraceClient) UpdateOneID(id string) *HTTPTraceUpdateOne {
	mutation := newHTTPTraceMutation(c.config, OpUpdateOne, withHTTPTraceID(id))
	return &HTTPTraceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for HTTPTrace.
func (c *HTTPTraceClient) Delete() *HTTPTraceDelete {
	mutation := newHTTPTraceMutation(c.config, OpDelete)
	return &HTTPTraceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *HTTPTraceClient) DeleteOne(_m *HTTPTrace) *HTTPTraceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *HTTPTraceClient) DeleteOneID(id string) *HTTPTraceDeleteOne {
	builder := c.Delete().Where(httptrace.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &HTTPTraceDeleteOne{builder}
}

// Query returns a query builder for HTTPTrace.
func (c *HTTPTraceClient) Query() *HTTPTraceQuery {
	return &HTTPTraceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeHTTPTrace},
		inters: c.Interceptors(),
	}
}

// Get returns a HTTPTrace entity by its id.
func (c *HTTPTraceClient) Get(ctx context.Context, id string) (*HTTPTrace, error) {
	return c.Query().Where(httptrace.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *HTTPTraceClient) GetX(ctx context.Context, id string) *HTTPTrace {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProject queries the project edge of a HTTPTrace.
func (c *HTTPTraceClient) QueryProject(_m *HTTPTrace) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(httptrace.Table, httptrace.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, httptrace.ProjectTable, httptrace.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTrace queries the trace edge of a HTTPTrace.
func (c *HTTPTraceClient) QueryTrace(_m *HTTPTrace) *TraceQuery {
	query := (&TraceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(httptrace.Table, httptrace.FieldID, id),
			sqlgraph.To(trace.Table, trace.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, httptrace.TraceTable, httptrace.TraceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *HTTPTraceClient) Hooks() []Hook {
	return c.hooks.HTTPTrace
}

// Interceptors returns the client interceptors.
func (c *HTTPTraceClient) Interceptors() []Interceptor {
	return c.inters.HTTPTrace
}

func (c *HTTPTraceClient) mutate(ctx context.Context, m *HTTPTraceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&HTTPTraceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&HTTPTraceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&HTTPTraceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&HTTPTraceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown HTTPTrace mutation op: %q", m.Op())
	}
}

// ImplementationClient is a client for the Implementation schema.
type ImplementationClient struct {
	config
}

// NewImplementationClient returns a client for the Implementation from the given config.
func NewImplementationClient(c config) *ImplementationClient {
	return &ImplementationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `implementation.Hooks(f(g(h())))`.
func (c *ImplementationClient) Use(hooks ...Hook) {
	c.hooks.Implementation = append(c.hooks.Implementation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `implementation.Intercept(f(g(h())))`.
func (c *ImplementationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Implementation = append(c.inters.Implementation, interceptors...)
}

// Create returns a builder for creating a Implementation entity.
func (c *ImplementationClient) Create() *ImplementationCreate {
	mutation := newImplementationMutation(c.config, OpCreate)
	return &ImplementationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Implementation entities.
func (c *ImplementationClient) CreateBulk(builders ...*ImplementationCreate) *ImplementationCreateBulk {
	return &ImplementationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ImplementationClient) MapCreateBulk(slice any, setFunc func(*ImplementationCreate, int)) *ImplementationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ImplementationCreateBulk{err: fmt.Errorf("calling to ImplementationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ImplementationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ImplementationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Implementation.
func (c *ImplementationClient) Update() *ImplementationUpdate {
	mutation := newImplementationMutation(c.config, OpUpdate)
	return &ImplementationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ImplementationClient) UpdateOne(_m *Implementation) *ImplementationUpdateOne {
	mutation := newImplementationMutation(c.config, OpUpdateOne, withImplementation(_m))
	return &ImplementationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ImplementationClient) UpdateOneID(id string) *ImplementationUpdateOne {
	mutation := newImplementationMutation(c.config, OpUpdateOne, withImplementationID(id))
	return &ImplementationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Implementation.
func (c *ImplementationClient) Delete() *ImplementationDelete {
	mutation := newImplementationMutation(c.config, OpDelete)
	return &ImplementationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ImplementationClient) DeleteOne(_m *Implementation) *ImplementationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ImplementationClient) DeleteOneID(id string) *ImplementationDeleteOne {
	builder := c.Delete().Where(implementation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ImplementationDeleteOne{builder}
}

// Query returns a query builder for Implementation.
func (c *ImplementationClient) Query() *ImplementationQuery {
	return &ImplementationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeImplementation},
		inters: c.Interceptors(),
	}
}

// Get returns a Implementation entity by its id.
func (c *ImplementationClient) Get(ctx context.Context, id string) (*Implementation, error) {
	return c.Query().Where(implementation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ImplementationClient) GetX(ctx context.Context, id string) *Implementation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a Implementation.
func (c *ImplementationClient) QueryTask(_m *Implementation) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(implementation.Table, implementation.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, implementation.TaskTable, implementation.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTraces queries the traces edge of a Implementation.
func (c *ImplementationClient) QueryTraces(_m *Implementation) *TraceQuery {
	query := (&TraceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(implementation.Table, implementation.FieldID, id),
			sqlgraph.To(trace.Table, trace.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, implementation.TracesTable, implementation.TracesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryExecutionResults queries the execution_results edge of a Implementation.
func (c *ImplementationClient) QueryExecutionResults(_m *Implementation) *ExecutionResultQuery {
	query := (&ExecutionResultClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(implementation.Table, implementation.FieldID, id),
			sqlgraph.To(executionresult.Table, executionresult.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, implementation.ExecutionResultsTable, implementation.ExecutionResultsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvaluations queries the evaluations edge of a Implementation.
func (c *ImplementationClient) QueryEvaluations(_m *Implementation) *EvaluationQuery {
	query := (&EvaluationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(implementation.Table, implementation.FieldID, id),
			sqlgraph.To(evaluation.Table, evaluation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, implementation.EvaluationsTable, implementation.EvaluationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ImplementationClient) Hooks() []Hook {
	return c.hooks.Implementation
}

// Interceptors returns the client interceptors.
func (c *ImplementationClient) Interceptors() []Interceptor {
	return c.inters.Implementation
}

func (c *ImplementationClient) mutate(ctx context.Context, m *ImplementationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ImplementationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ImplementationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ImplementationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ImplementationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Implementation mutation op: %q", m.Op())
	}
}

// ProjectClient is a client for the Project schema.
type ProjectClient struct {
	config
}

// NewProjectClient returns a client for the Project from the given config.
func NewProjectClient(c config) *ProjectClient {
	return &ProjectClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `project.Hooks(f(g(h())))`.
func (c *ProjectClient) Use(hooks ...Hook) {
	c.hooks.Project = append(c.hooks.Project, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `project.Intercept(f(g(h())))`.
func (c *ProjectClient) Intercept(interceptors ...Interceptor) {
	c.inters.Project = append(c.inters.Project, interceptors...)
}

// Create returns a builder for creating a Project entity.
func (c *ProjectClient) Create() *ProjectCreate {
	mutation := newProjectMutation(c.config, OpCreate)
	return &ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Project entities.
func (c *ProjectClient) CreateBulk(builders ...*ProjectCreate) *ProjectCreateBulk {
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProjectClient) MapCreateBulk(slice any, setFunc func(*ProjectCreate, int)) *ProjectCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProjectCreateBulk{err: fmt.Errorf("calling to ProjectClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProjectCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Project.
func (c *ProjectClient) Update() *ProjectUpdate {
	mutation := newProjectMutation(c.config, OpUpdate)
	return &ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProjectClient) UpdateOne(_m *Project) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProject(_m))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProjectClient) UpdateOneID(id string) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProjectID(id))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Project.
func (c *ProjectClient) Delete() *ProjectDelete {
	mutation := newProjectMutation(c.config, OpDelete)
	return &ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProjectClient) DeleteOne(_m *Project) *ProjectDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProjectClient) DeleteOneID(id string) *ProjectDeleteOne {
	builder := c.Delete().Where(project.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProjectDeleteOne{builder}
}

// Query returns a query builder for Project.
func (c *ProjectClient) Query() *ProjectQuery {
	return &ProjectQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProject},
		inters: c.Interceptors(),
	}
}

// Get returns a Project entity by its id.
func (c *ProjectClient) Get(ctx context.Context, id string) (*Project, error) {
	return c.Query().Where(project.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProjectClient) GetX(ctx context.Context, id string) *Project {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTasks queries the tasks edge of a Project.
func (c *ProjectClient) QueryTasks(_m *Project) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.TasksTable, project.TasksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryGraders queries the graders edge of a Project.
func (c *ProjectClient) QueryGraders(_m *Project) *GraderQuery {
	query := (&GraderClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(grader.Table, grader.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.GradersTable, project.GradersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTraces queries the traces edge of a Project.
func (c *ProjectClient) QueryTraces(_m *Project) *TraceQuery {
	query := (&TraceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(trace.Table, trace.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.TracesTable, project.TracesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryHTTPTraces queries the http_traces edge of a Project.
func (c *ProjectClient) QueryHTTPTraces(_m *Project) *HTTPTraceQuery {
	query := (&HTTPTraceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(httptrace.Table, httptrace.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.HTTPTracesTable, project.HTTPTracesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProjectClient) Hooks() []Hook {
	return c.hooks.Project
}

// Interceptors returns the client interceptors.
func (c *ProjectClient) Interceptors() []Interceptor {
	return c.inters.Project
}

func (c *ProjectClient) mutate(ctx context.Context, m *ProjectMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Project mutation op: %q", m.Op())
	}
}

// TargetTaskMetricsClient is a client for the TargetTaskMetrics schema.
type TargetTaskMetricsClient struct {
	config
}

// NewTargetTaskMetricsClient returns a client for the TargetTaskMetrics from the given config.
func NewTargetTaskMetricsClient(c config) *TargetTaskMetricsClient {
	return &TargetTaskMetricsClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `targettaskmetrics.Hooks(f(g(h())))`.
func (c *TargetTaskMetricsClient) Use(hooks ...Hook) {
	c.hooks.TargetTaskMetrics = append(c.hooks.TargetTaskMetrics, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `targettaskmetrics.Intercept(f(g(h())))`.
func (c *TargetTaskMetricsClient) Intercept(interceptors ...Interceptor) {
	c.inters.TargetTaskMetrics = append(c.inters.TargetTaskMetrics, interceptors...)
}

// Create returns a builder for creating a TargetTaskMetrics entity.
func (c *TargetTaskMetricsClient) Create() *TargetTaskMetricsCreate {
	mutation := newTargetTaskMetricsMutation(c.config, OpCreate)
	return &TargetTaskMetricsCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TargetTaskMetrics entities.
func (c *TargetTaskMetricsClient) CreateBulk(builders ...*TargetTaskMetricsCreate) *TargetTaskMetricsCreateBulk {
	return &TargetTaskMetricsCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TargetTaskMetricsClient) MapCreateBulk(slice any, setFunc func(*TargetTaskMetricsCreate, int)) *TargetTaskMetricsCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TargetTaskMetricsCreateBulk{err: fmt.Errorf("calling to TargetTaskMetricsClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TargetTaskMetricsCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TargetTaskMetricsCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TargetTaskMetrics.
func (c *TargetTaskMetricsClient) Update() *TargetTaskMetricsUpdate {
	mutation := newTargetTaskMetricsMutation(c.config, OpUpdate)
	return &TargetTaskMetricsUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TargetTaskMetricsClient) UpdateOne(_m *TargetTaskMetrics) *TargetTaskMetricsUpdateOne {
	mutation := newTargetTaskMetricsMutation(c.config, OpUpdateOne, withTargetTaskMetrics(_m))
	return &TargetTaskMetricsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TargetTaskMetricsClient) UpdateOneID(id string) *TargetTaskMetricsUpdateOne {
	mutation := newTargetTaskMetricsMutation(c.config, OpUpdateOne, withTargetTaskMetricsID(id))
	return &TargetTaskMetricsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TargetTaskMetrics.
func (c *TargetTaskMetricsClient) Delete() *TargetTaskMetricsDelete {
	mutation := newTargetTaskMetricsMutation(c.config, OpDelete)
	return &TargetTaskMetricsDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TargetTaskMetricsClient) DeleteOne(_m *TargetTaskMetrics) *TargetTaskMetricsDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TargetTaskMetricsClient) DeleteOneID(id string) *TargetTaskMetricsDeleteOne {
	builder := c.Delete().Where(targettaskmetrics.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TargetTaskMetricsDeleteOne{builder}
}

// Query returns a query builder for TargetTaskMetrics.
func (c *TargetTaskMetricsClient) Query() *TargetTaskMetricsQuery {
	return &TargetTaskMetricsQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTargetTaskMetrics},
		inters: c.Interceptors(),
	}
}

// Get returns a TargetTaskMetrics entity by its id.
func (c *TargetTaskMetricsClient) Get(ctx context.Context, id string) (*TargetTaskMetrics, error) {
	return c.Query().Where(targettaskmetrics.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TargetTaskMetricsClient) GetX(ctx context.Context, id string) *TargetTaskMetrics {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a TargetTaskMetrics.
func (c *TargetTaskMetricsClient) QueryTask(_m *TargetTaskMetrics) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(targettaskmetrics.Table, targettaskmetrics.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, targettaskmetrics.TaskTable, targettaskmetrics.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TargetTaskMetricsClient) Hooks() []Hook {
	return c.hooks.TargetTaskMetrics
}

// Interceptors returns the client interceptors.
func (c *TargetTaskMetricsClient) Interceptors() []Interceptor {
	return c.inters.TargetTaskMetrics
}

func (c *TargetTaskMetricsClient) mutate(ctx context.Context, m *TargetTaskMetricsMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TargetTaskMetricsCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TargetTaskMetricsUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TargetTaskMetricsUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TargetTaskMetricsDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TargetTaskMetrics mutation op: %q", m.Op())
	}
}

// TaskClient is a client for the Task schema.
type TaskClient struct {
	config
}

// NewTaskClient returns a client for the Task from the given config.
func NewTaskClient(c config) *TaskClient {
	return &TaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `task.Hooks(f(g(h())))`.
func (c *TaskClient) Use(hooks ...Hook) {
	c.hooks.Task = append(c.hooks.Task, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `task.Intercept(f(g(h())))`.
func (c *TaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.Task = append(c.inters.Task, interceptors...)
}

// Create returns a builder for creating a Task entity.
func (c *TaskClient) Create() *TaskCreate {
	mutation := newTaskMutation(c.config, OpCreate)
	return &TaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Task entities.
func (c *TaskClient) CreateBulk(builders ...*TaskCreate) *TaskCreateBulk {
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskClient) MapCreateBulk(slice any, setFunc func(*TaskCreate, int)) *TaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskCreateBulk{err: fmt.Errorf("calling to TaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Task.
func (c *TaskClient) Update() *TaskUpdate {
	mutation := newTaskMutation(c.config, OpUpdate)
	return &TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskClient) UpdateOne(_m *Task) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTask(_m))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskClient) UpdateOneID(id string) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTaskID(id))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Task.
func (c *TaskClient) Delete() *TaskDelete {
	mutation := newTaskMutation(c.config, OpDelete)
	return &TaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskClient) DeleteOne(_m *Task) *TaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskClient) DeleteOneID(id string) *TaskDeleteOne {
	builder := c.Delete().Where(task.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskDeleteOne{builder}
}

// Query returns a query builder for Task.
func (c *TaskClient) Query() *TaskQuery {
	return &TaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTask},
		inters: c.Interceptors(),
	}
}

// Get returns a Task entity by its id.
func (c *TaskClient) Get(ctx context.Context, id string) (*Task, error) {
	return c.Query().Where(task.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskClient) GetX(ctx context.Context, id string) *Task {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProject queries the project edge of a Task.
func (c *TaskClient) QueryProject(_m *Task) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, task.ProjectTable, task.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryImplementations queries the implementations edge of a Task.
func (c *TaskClient) QueryImplementations(_m *Task) *ImplementationQuery {
	query := (&ImplementationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(implementation.Table, implementation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.ImplementationsTable, task.ImplementationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTestCases queries the test_cases edge of a Task.
func (c *TaskClient) QueryTestCases(_m *Task) *TestCaseQuery {
	query := (&TestCaseClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(testcase.Table, testcase.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.TestCasesTable, task.TestCasesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvaluations queries the evaluations edge of a Task.
func (c *TaskClient) QueryEvaluations(_m *Task) *EvaluationQuery {
	query := (&EvaluationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(evaluation.Table, evaluation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.EvaluationsTable, task.EvaluationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvaluationConfig queries the evaluation_config edge of a Task.
func (c *TaskClient) QueryEvaluationConfig(_m *Task) *EvaluationConfigQuery {
	query := (&EvaluationConfigClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(evaluationconfig.Table, evaluationconfig.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, task.EvaluationConfigTable, task.EvaluationConfigColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTargetMetrics queries the target_metrics edge of a Task.
func (c *TaskClient) QueryTargetMetrics(_m *Task) *TargetTaskMetricsQuery {
	query := (&TargetTaskMetricsClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(targettaskmetrics.Table, targettaskmetrics.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, task.TargetMetricsTable, task.TargetMetricsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryExecutionResults queries the execution_results edge of a Task.
func (c *TaskClient) QueryExecutionResults(_m *Task) *ExecutionResultQuery {
	query := (&ExecutionResultClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(executionresult.Table, executionresult.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.ExecutionResultsTable, task.ExecutionResultsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryProductionVersion queries the production_version edge of a Task.
func (c *TaskClient) QueryProductionVersion(_m *Task) *ImplementationQuery {
	query := (&ImplementationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(implementation.Table, implementation.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, task.ProductionVersionTable, task.ProductionVersionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaskClient) Hooks() []Hook {
	return c.hooks.Task
}

// Interceptors returns the client interceptors.
func (c *TaskClient) Interceptors() []Interceptor {
	return c.inters.Task
}

func (c *TaskClient) mutate(ctx context.Context, m *TaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Task mutation op: %q", m.Op())
	}
}

// TestCaseClient is a client for the TestCase schema.
type TestCaseClient struct {
	config
}

// NewTestCaseClient returns a client for the TestCase from the given config.
func NewTestCaseClient(c config) *TestCaseClient {
	return &TestCaseClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `testcase.Hooks(f(g(h())))`.
func (c *TestCaseClient) Use(hooks ...Hook) {
	c.hooks.TestCase = append(c.hooks.TestCase, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `testcase.Intercept(f(g(h())))`.
func (c *TestCaseClient) Intercept(interceptors ...Interceptor) {
	c.inters.TestCase = append(c.inters.TestCase, interceptors...)
}

// Create returns a builder for creating a TestCase entity.
func (c *TestCaseClient) Create() *TestCaseCreate {
	mutation := newTestCaseMutation(c.config, OpCreate)
	return &TestCaseCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TestCase entities.
func (c *TestCaseClient) CreateBulk(builders ...*TestCaseCreate) *TestCaseCreateBulk {
	return &TestCaseCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TestCaseClient) MapCreateBulk(slice any, setFunc func(*TestCaseCreate, int)) *TestCaseCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TestCaseCreateBulk{err: fmt.Errorf("calling to TestCaseClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TestCaseCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TestCaseCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TestCase.
func (c *TestCaseClient) Update() *TestCaseUpdate {
	mutation := newTestCaseMutation(c.config, OpUpdate)
	return &TestCaseUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TestCaseClient) UpdateOne(_m *TestCase) *TestCaseUpdateOne {
	mutation := newTestCaseMutation(c.config, OpUpdateOne, withTestCase(_m))
	return &TestCaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TestCaseClient) UpdateOneID(id string) *TestCaseUpdateOne {
	mutation := newTestCaseMutation(c.config, OpUpdateOne, withTestCaseID(id))
	return &TestCaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TestCase.
func (c *TestCaseClient) Delete() *TestCaseDelete {
	mutation := newTestCaseMutation(c.config, OpDelete)
	return &TestCaseDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TestCaseClient) DeleteOne(_m *TestCase) *TestCaseDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TestCaseClient) DeleteOneID(id string) *TestCaseDeleteOne {
	builder := c.Delete().Where(testcase.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TestCaseDeleteOne{builder}
}

// Query returns a query builder for TestCase.
func (c *TestCaseClient) Query() *TestCaseQuery {
	return &TestCaseQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTestCase},
		inters: c.Interceptors(),
	}
}

// Get returns a TestCase entity by its id.
func (c *TestCaseClient) Get(ctx context.Context, id string) (*TestCase, error) {
	return c.Query().Where(testcase.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TestCaseClient) GetX(ctx context.Context, id string) *TestCase {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a TestCase.
func (c *TestCaseClient) QueryTask(_m *TestCase) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(testcase.Table, testcase.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, testcase.TaskTable, testcase.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryExecutionResults queries the execution_results edge of a TestCase.
func (c *TestCaseClient) QueryExecutionResults(_m *TestCase) *ExecutionResultQuery {
	query := (&ExecutionResultClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(testcase.Table, testcase.FieldID, id),
			sqlgraph.To(executionresult.Table, executionresult.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, testcase.ExecutionResultsTable, testcase.ExecutionResultsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TestCaseClient) Hooks() []Hook {
	return c.hooks.TestCase
}

// Interceptors returns the client interceptors.
func (c *TestCaseClient) Interceptors() []Interceptor {
	return c.inters.TestCase
}

func (c *TestCaseClient) mutate(ctx context.Context, m *TestCaseMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TestCaseCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TestCaseUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TestCaseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TestCaseDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TestCase mutation op: %q", m.Op())
	}
}

// TraceClient is a client for the Trace schema.
type TraceClient struct {
	config
}

// NewTraceClient returns a client for the Trace from the given config.
func NewTraceClient(c config) *TraceClient {
	return &TraceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `trace.Hooks(f(g(h())))`.
func (c *TraceClient) Use(hooks ...Hook) {
	c.hooks.Trace = append(c.hooks.Trace, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `trace.Intercept(f(g(h())))`.
func (c *TraceClient) Intercept(interceptors ...Interceptor) {
	c.inters.Trace = append(c.inters.Trace, interceptors...)
}

// Create returns a builder for creating a Trace entity.
func (c *TraceClient) Create() *TraceCreate {
	mutation := newTraceMutation(c.config, OpCreate)
	return &TraceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Trace entities.
func (c *TraceClient) CreateBulk(builders ...*TraceCreate) *TraceCreateBulk {
	return &TraceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TraceClient) MapCreateBulk(slice any, setFunc func(*TraceCreate, int)) *TraceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TraceCreateBulk{err: fmt.Errorf("calling to TraceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TraceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TraceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Trace.
func (c *TraceClient) Update() *TraceUpdate {
	mutation := newTraceMutation(c.config, OpUpdate)
	return &TraceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TraceClient) UpdateOne(_m *Trace) *TraceUpdateOne {
	mutation := newTraceMutation(c.config, OpUpdateOne, withTrace(_m))
	return &TraceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TraceClient) UpdateOneID(id string) *TraceUpdateOne {
	mutation := newTraceMutation(c.config, OpUpdateOne, withTraceID(id))
	return &TraceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Trace.
func (c *TraceClient) Delete() *TraceDelete {
	mutation := newTraceMutation(c.config, OpDelete)
	return &TraceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TraceClient) DeleteOne(_m *Trace) *TraceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TraceClient) DeleteOneID(id string) *TraceDeleteOne {
	builder := c.Delete().Where(trace.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TraceDeleteOne{builder}
}

// Query returns a query builder for Trace.
func (c *TraceClient) Query() *TraceQuery {
	return &TraceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTrace},
		inters: c.Interceptors(),
	}
}

// Get returns a Trace entity by its id.
func (c *TraceClient) Get(ctx context.Context, id string) (*Trace, error) {
	return c.Query().Where(trace.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TraceClient) GetX(ctx context.Context, id string) *Trace {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProject queries the project edge of a Trace.
func (c *TraceClient) QueryProject(_m *Trace) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(trace.Table, trace.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, trace.ProjectTable, trace.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryHTTPTrace queries the http_trace edge of a Trace.
func (c *TraceClient) QueryHTTPTrace(_m *Trace) *HTTPTraceQuery {
	query := (&HTTPTraceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(trace.Table, trace.FieldID, id),
			sqlgraph.To(httptrace.Table, httptrace.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, trace.HTTPTraceTable, trace.HTTPTraceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryImplementation queries the implementation edge of a Trace.
func (c *TraceClient) QueryImplementation(_m *Trace) *ImplementationQuery {
	query := (&ImplementationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(trace.Table, trace.FieldID, id),
			sqlgraph.To(implementation.Table, implementation.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, trace.ImplementationTable, trace.ImplementationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryGrades queries the grades edge of a Trace.
func (c *TraceClient) QueryGrades(_m *Trace) *GradeQuery {
	query := (&GradeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(trace.Table, trace.FieldID, id),
			sqlgraph.To(grade.Table, grade.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, trace.GradesTable, trace.GradesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TraceClient) Hooks() []Hook {
	return c.hooks.Trace
}

// Interceptors returns the client interceptors.
func (c *TraceClient) Interceptors() []Interceptor {
	return c.inters.Trace
}

func (c *TraceClient) mutate(ctx context.Context, m *TraceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TraceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TraceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TraceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TraceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Trace mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Evaluation, EvaluationConfig, ExecutionResult, Grade, Grader, HTTPTrace,
		Implementation, Project, TargetTaskMetrics, Task, TestCase, Trace []ent.Hook
	}
	inters struct {
		Evaluation, EvaluationConfig, ExecutionResult, Grade, Grader, HTTPTrace,
		Implementation, Project, TargetTaskMetrics, Task, TestCase,
		Trace []ent.Interceptor
	}
)
