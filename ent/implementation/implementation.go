// Code generated by ent, DO NOT EDIT.

package implementation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the implementation type in the database.
	Label = "implementation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldPrompt holds the string denoting the prompt field in the database.
	FieldPrompt = "prompt"
	// FieldModel holds the string denoting the model field in the database.
	FieldModel = "model"
	// FieldTemperature holds the string denoting the temperature field in the database.
	FieldTemperature = "temperature"
	// FieldReasoning holds the string denoting the reasoning field in the database.
	FieldReasoning = "reasoning"
	// FieldTools holds the string denoting the tools field in the database.
	FieldTools = "tools"
	// FieldToolChoice holds the string denoting the tool_choice field in the database.
	FieldToolChoice = "tool_choice"
	// FieldMaxOutputTokens holds the string denoting the max_output_tokens field in the database.
	FieldMaxOutputTokens = "max_output_tokens"
	// FieldResponseSchema holds the string denoting the response_schema field in the database.
	FieldResponseSchema = "response_schema"
	// FieldTemp holds the string denoting the temp field in the database.
	FieldTemp = "temp"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeTask holds the string denoting the task edge name in mutations.
	EdgeTask = "task"
	// EdgeTraces holds the string denoting the traces edge name in mutations.
	EdgeTraces = "traces"
	// EdgeExecutionResults holds the string denoting the execution_results edge name in mutations.
	EdgeExecutionResults = "execution_results"
	// EdgeEvaluations holds the string denoting the evaluations edge name in mutations.
	EdgeEvaluations = "evaluations"
	// Table holds the table name of the implementation in the database.
	Table = "implementations"
	// TaskTable is the table that holds the task relation/edge.
	TaskTable = "implementations"
	// TaskInverseTable is the table name for the Task entity.
	// It exists in this package in order to avoid circular dependency with the "task" package.
	TaskInverseTable = "tasks"
	// TaskColumn is the table column denoting the task relation/edge.
	TaskColumn = "task_id"
	// TracesTable is the table that holds the traces relation/edge.
	TracesTable = "traces"
	// TracesInverseTable is the table name for the Trace entity.
	// It exists in this package in order to avoid circular dependency with the "trace" package.
	TracesInverseTable = "traces"
	// TracesColumn is the table column denoting the traces relation/edge.
	TracesColumn = "implementation_id"
	// ExecutionResultsTable is the table that holds the execution_results relation/edge.
	ExecutionResultsTable = "execution_results"
	// ExecutionResultsInverseTable is the table name for the ExecutionResult entity.
	// It exists in this package in order to avoid circular dependency with the "executionresult" package.
	ExecutionResultsInverseTable = "execution_results"
	// ExecutionResultsColumn is the table column denoting the execution_results relation/edge.
	ExecutionResultsColumn = "implementation_id"
	// EvaluationsTable is the table that holds the evaluations relation/edge.
	EvaluationsTable = "evaluations"
	// EvaluationsInverseTable is the table name for the Evaluation entity.
	// It exists in this package in order to avoid circular dependency with the "evaluation" package.
	EvaluationsInverseTable = "evaluations"
	// EvaluationsColumn is the table column denoting the evaluations relation/edge.
	EvaluationsColumn = "implementation_id"
)

// Columns holds all SQL columns for implementation fields.
var Columns = []string{
	FieldID,
	FieldTaskID,
	FieldVersion,
	FieldPrompt,
	FieldModel,
	FieldTemperature,
	FieldReasoning,
	FieldTools,
	FieldToolChoice,
	FieldMaxOutputTokens,
	FieldResponseSchema,
	FieldTemp,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTemp holds the default value on creation for the "temp" field.
	DefaultTemp bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Implementation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByPrompt orders the results by the prompt field.
func ByPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrompt, opts...).ToFunc()
}

// ByModel orders the results by the model field.
func ByModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModel, opts...).ToFunc()
}

// ByTemperature orders the results by the temperature field.
func ByTemperature(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTemperature, opts...).ToFunc()
}

// ByToolChoice orders the results by the tool_choice field.
func ByToolChoice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToolChoice, opts...).ToFunc()
}

// ByMaxOutputTokens orders the results by the max_output_tokens field.
func ByMaxOutputTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxOutputTokens, opts...).ToFunc()
}

// ByTemp orders the results by the temp field.
func ByTemp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTemp, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByTaskField orders the results by task field.
func ByTaskField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTaskStep(), sql.OrderByField(field, opts...))
	}
}

// ByTracesCount orders the results by traces count.
func ByTracesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTracesStep(), opts...)
	}
}

// ByTraces orders the results by traces terms.
func ByTraces(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTracesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByExecutionResultsCount orders the results by execution_results count.
func ByExecutionResultsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newExecutionResultsStep(), opts...)
	}
}

// ByExecutionResults orders the results by execution_results terms.
func ByExecutionResults(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExecutionResultsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByEvaluationsCount orders the results by evaluations count.
func ByEvaluationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEvaluationsStep(), opts...)
	}
}

// ByEvaluations orders the results by evaluations terms.
func ByEvaluations(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEvaluationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newTaskStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TaskInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
	)
}
func newTracesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TracesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TracesTable, TracesColumn),
	)
}
func newExecutionResultsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExecutionResultsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ExecutionResultsTable, ExecutionResultsColumn),
	)
}
func newEvaluationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EvaluationsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EvaluationsTable, EvaluationsColumn),
	)
}
