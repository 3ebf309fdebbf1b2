// Code generated by ent, DO NOT EDIT.

package evaluation

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the evaluation type in the database.
	Label = "evaluation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldImplementationID holds the string denoting the implementation_id field in the database.
	FieldImplementationID = "implementation_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldGraderScores holds the string denoting the grader_scores field in the database.
	FieldGraderScores = "grader_scores"
	// FieldQualityScore holds the string denoting the quality_score field in the database.
	FieldQualityScore = "quality_score"
	// FieldAvgCost holds the string denoting the avg_cost field in the database.
	FieldAvgCost = "avg_cost"
	// FieldAvgExecutionTimeMs holds the string denoting the avg_execution_time_ms field in the database.
	FieldAvgExecutionTimeMs = "avg_execution_time_ms"
	// FieldTestCaseCount holds the string denoting the test_case_count field in the database.
	FieldTestCaseCount = "test_case_count"
	// FieldError holds the string denoting the error field in the database.
	FieldError = "error"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeTask holds the string denoting the task edge name in mutations.
	EdgeTask = "task"
	// EdgeImplementation holds the string denoting the implementation edge name in mutations.
	EdgeImplementation = "implementation"
	// EdgeExecutionResults holds the string denoting the execution_results edge name in mutations.
	EdgeExecutionResults = "execution_results"
	// Table holds the table name of the evaluation in the database.
	Table = "evaluations"
	// TaskTable is the table that holds the task relation/edge.
	TaskTable = "evaluations"
	// TaskInverseTable is the table name for the Task entity.
	// It exists in this package in order to avoid circular dependency with the "task" package.
	TaskInverseTable = "tasks"
	// TaskColumn is the table column denoting the task relation/edge.
	TaskColumn = "task_id"
	// ImplementationTable is the table that holds the implementation relation/edge.
	ImplementationTable = "evaluations"
	// ImplementationInverseTable is the table name for the Implementation entity.
	// It exists in this package in order to avoid circular dependency with the "implementation" package.
	ImplementationInverseTable = "implementations"
	// ImplementationColumn is the table column denoting the implementation relation/edge.
	ImplementationColumn = "implementation_id"
	// ExecutionResultsTable is the table that holds the execution_results relation/edge.
	ExecutionResultsTable = "execution_results"
	// ExecutionResultsInverseTable is the table name for the ExecutionResult entity.
	// It exists in this package in order to avoid circular dependency with the "executionresult" package.
	ExecutionResultsInverseTable = "execution_results"
	// ExecutionResultsColumn is the table column denoting the execution_results relation/edge.
	ExecutionResultsColumn = "evaluation_id"
)

// Columns holds all SQL columns for evaluation fields.
var Columns = []string{
	FieldID,
	FieldTaskID,
	FieldImplementationID,
	FieldStatus,
	FieldGraderScores,
	FieldQualityScore,
	FieldAvgCost,
	FieldAvgExecutionTimeMs,
	FieldTestCaseCount,
	FieldError,
	FieldStartedAt,
	FieldCompletedAt,
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
	// DefaultTestCaseCount holds the default value on creation for the "test_case_count" field.
	DefaultTestCaseCount int
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusRunning is the default value of the Status enum.
const DefaultStatus = StatusRunning

// Status values.
const (
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusRunning, StatusCompleted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("evaluation: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Evaluation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByImplementationID orders the results by the implementation_id field.
func ByImplementationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImplementationID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByQualityScore orders the results by the quality_score field.
func ByQualityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQualityScore, opts...).ToFunc()
}

// ByAvgCost orders the results by the avg_cost field.
func ByAvgCost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvgCost, opts...).ToFunc()
}

// ByAvgExecutionTimeMs orders the results by the avg_execution_time_ms field.
func ByAvgExecutionTimeMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvgExecutionTimeMs, opts...).ToFunc()
}

// ByTestCaseCount orders the results by the test_case_count field.
func ByTestCaseCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTestCaseCount, opts...).ToFunc()
}

// ByError orders the results by the error field.
func ByError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldError, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByTaskField orders the results by task field.
func ByTaskField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTaskStep(), sql.OrderByField(field, opts...))
	}
}

// ByImplementationField orders the results by implementation field.
func ByImplementationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newImplementationStep(), sql.OrderByField(field, opts...))
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
func newTaskStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TaskInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
	)
}
func newImplementationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ImplementationInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ImplementationTable, ImplementationColumn),
	)
}
func newExecutionResultsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExecutionResultsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ExecutionResultsTable, ExecutionResultsColumn),
	)
}
