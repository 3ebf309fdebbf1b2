// Code generated by ent, DO NOT EDIT.

package executionresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the executionresult type in the database.
	Label = "execution_result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldImplementationID holds the string denoting the implementation_id field in the database.
	FieldImplementationID = "implementation_id"
	// FieldEvaluationID holds the string denoting the evaluation_id field in the database.
	FieldEvaluationID = "evaluation_id"
	// FieldTestCaseID holds the string denoting the test_case_id field in the database.
	FieldTestCaseID = "test_case_id"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldPromptRendered holds the string denoting the prompt_rendered field in the database.
	FieldPromptRendered = "prompt_rendered"
	// FieldVariables holds the string denoting the variables field in the database.
	FieldVariables = "variables"
	// FieldResultText holds the string denoting the result_text field in the database.
	FieldResultText = "result_text"
	// FieldResultJSON holds the string denoting the result_json field in the database.
	FieldResultJSON = "result_json"
	// FieldToolCalls holds the string denoting the tool_calls field in the database.
	FieldToolCalls = "tool_calls"
	// FieldError holds the string denoting the error field in the database.
	FieldError = "error"
	// FieldPromptTokens holds the string denoting the prompt_tokens field in the database.
	FieldPromptTokens = "prompt_tokens"
	// FieldCompletionTokens holds the string denoting the completion_tokens field in the database.
	FieldCompletionTokens = "completion_tokens"
	// FieldCachedTokens holds the string denoting the cached_tokens field in the database.
	FieldCachedTokens = "cached_tokens"
	// FieldReasoningTokens holds the string denoting the reasoning_tokens field in the database.
	FieldReasoningTokens = "reasoning_tokens"
	// FieldTotalTokens holds the string denoting the total_tokens field in the database.
	FieldTotalTokens = "total_tokens"
	// FieldSystemFingerprint holds the string denoting the system_fingerprint field in the database.
	FieldSystemFingerprint = "system_fingerprint"
	// FieldCost holds the string denoting the cost field in the database.
	FieldCost = "cost"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeTask holds the string denoting the task edge name in mutations.
	EdgeTask = "task"
	// EdgeImplementation holds the string denoting the implementation edge name in mutations.
	EdgeImplementation = "implementation"
	// EdgeEvaluation holds the string denoting the evaluation edge name in mutations.
	EdgeEvaluation = "evaluation"
	// EdgeTestCase holds the string denoting the test_case edge name in mutations.
	EdgeTestCase = "test_case"
	// EdgeGrades holds the string denoting the grades edge name in mutations.
	EdgeGrades = "grades"
	// Table holds the table name of the executionresult in the database.
	Table = "execution_results"
	// TaskTable is the table that holds the task relation/edge.
	TaskTable = "execution_results"
	// TaskInverseTable is the table name for the Task entity.
	// It exists in this package in order to avoid circular dependency with the "task" package.
	TaskInverseTable = "tasks"
	// TaskColumn is the table column denoting the task relation/edge.
	TaskColumn = "task_id"
	// ImplementationTable is the table that holds the implementation relation/edge.
	ImplementationTable = "execution_results"
	// ImplementationInverseTable is the table name for the Implementation entity.
	// It exists in this package in order to avoid circular dependency with the "implementation" package.
	ImplementationInverseTable = "implementations"
	// ImplementationColumn is the table column denoting the implementation relation/edge.
	ImplementationColumn = "implementation_id"
	// EvaluationTable is the table that holds the evaluation relation/edge.
	EvaluationTable = "execution_results"
	// EvaluationInverseTable is the table name for the Evaluation entity.
	// It exists in this package in order to avoid circular dependency with the "evaluation" package.
	EvaluationInverseTable = "evaluations"
	// EvaluationColumn is the table column denoting the evaluation relation/edge.
	EvaluationColumn = "evaluation_id"
	// TestCaseTable is the table that holds the test_case relation/edge.
	TestCaseTable = "execution_results"
	// TestCaseInverseTable is the table name for the TestCase entity.
	// It exists in this package in order to avoid circular dependency with the "testcase" package.
	TestCaseInverseTable = "test_cases"
	// TestCaseColumn is the table column denoting the test_case relation/edge.
	TestCaseColumn = "test_case_id"
	// GradesTable is the table that holds the grades relation/edge.
	GradesTable = "grades"
	// GradesInverseTable is the table name for the Grade entity.
	// It exists in this package in order to avoid circular dependency with the "grade" package.
	GradesInverseTable = "grades"
	// GradesColumn is the table column denoting the grades relation/edge.
	GradesColumn = "execution_result_id"
)

// Columns holds all SQL columns for executionresult fields.
var Columns = []string{
	FieldID,
	FieldTaskID,
	FieldImplementationID,
	FieldEvaluationID,
	FieldTestCaseID,
	FieldStartedAt,
	FieldCompletedAt,
	FieldPromptRendered,
	FieldVariables,
	FieldResultText,
	FieldResultJSON,
	FieldToolCalls,
	FieldError,
	FieldPromptTokens,
	FieldCompletionTokens,
	FieldCachedTokens,
	FieldReasoningTokens,
	FieldTotalTokens,
	FieldSystemFingerprint,
	FieldCost,
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
	// DefaultPromptTokens holds the default value on creation for the "prompt_tokens" field.
	DefaultPromptTokens int
	// DefaultCompletionTokens holds the default value on creation for the "completion_tokens" field.
	DefaultCompletionTokens int
	// DefaultCachedTokens holds the default value on creation for the "cached_tokens" field.
	DefaultCachedTokens int
	// DefaultReasoningTokens holds the default value on creation for the "reasoning_tokens" field.
	DefaultReasoningTokens int
	// DefaultTotalTokens holds the default value on creation for the "total_tokens" field.
	DefaultTotalTokens int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the ExecutionResult queries.
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

// ByEvaluationID orders the results by the evaluation_id field.
func ByEvaluationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEvaluationID, opts...).ToFunc()
}

// ByTestCaseID orders the results by the test_case_id field.
func ByTestCaseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTestCaseID, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByPromptRendered orders the results by the prompt_rendered field.
func ByPromptRendered(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptRendered, opts...).ToFunc()
}

// ByResultText orders the results by the result_text field.
func ByResultText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResultText, opts...).ToFunc()
}

// ByError orders the results by the error field.
func ByError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldError, opts...).ToFunc()
}

// ByPromptTokens orders the results by the prompt_tokens field.
func ByPromptTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptTokens, opts...).ToFunc()
}

// ByCompletionTokens orders the results by the completion_tokens field.
func ByCompletionTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletionTokens, opts...).ToFunc()
}

// ByCachedTokens orders the results by the cached_tokens field.
func ByCachedTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCachedTokens, opts...).ToFunc()
}

// ByReasoningTokens orders the results by the reasoning_tokens field.
func ByReasoningTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReasoningTokens, opts...).ToFunc()
}

// ByTotalTokens orders the results by the total_tokens field.
func ByTotalTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalTokens, opts...).ToFunc()
}

// BySystemFingerprint orders the results by the system_fingerprint field.
func BySystemFingerprint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSystemFingerprint, opts...).ToFunc()
}

// ByCost orders the results by the cost field.
func ByCost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCost, opts...).ToFunc()
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

// ByImplementationField orders the results by implementation field.
func ByImplementationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newImplementationStep(), sql.OrderByField(field, opts...))
	}
}

// ByEvaluationField orders the results by evaluation field.
func ByEvaluationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEvaluationStep(), sql.OrderByField(field, opts...))
	}
}

// ByTestCaseField orders the results by test_case field.
func ByTestCaseField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTestCaseStep(), sql.OrderByField(field, opts...))
	}
}

// ByGradesCount orders the results by grades count.
func ByGradesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newGradesStep(), opts...)
	}
}

// ByGrades orders the results by grades terms.
func ByGrades(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newGradesStep(), append([]sql.OrderTerm{term}, terms...)...)
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
func newEvaluationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EvaluationInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, EvaluationTable, EvaluationColumn),
	)
}
func newTestCaseStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TestCaseInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TestCaseTable, TestCaseColumn),
	)
}
func newGradesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(GradesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, GradesTable, GradesColumn),
	)
}
