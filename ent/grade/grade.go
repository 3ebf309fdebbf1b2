// Code generated by ent, DO NOT EDIT.

package grade

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the grade type in the database.
	Label = "grade"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldGraderID holds the string denoting the grader_id field in the database.
	FieldGraderID = "grader_id"
	// FieldTraceID holds the string denoting the trace_id field in the database.
	FieldTraceID = "trace_id"
	// FieldExecutionResultID holds the string denoting the execution_result_id field in the database.
	FieldExecutionResultID = "execution_result_id"
	// FieldScoreFloat holds the string denoting the score_float field in the database.
	FieldScoreFloat = "score_float"
	// FieldScoreBoolean holds the string denoting the score_boolean field in the database.
	FieldScoreBoolean = "score_boolean"
	// FieldReasoning holds the string denoting the reasoning field in the database.
	FieldReasoning = "reasoning"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldPromptTokens holds the string denoting the prompt_tokens field in the database.
	FieldPromptTokens = "prompt_tokens"
	// FieldCompletionTokens holds the string denoting the completion_tokens field in the database.
	FieldCompletionTokens = "completion_tokens"
	// FieldTotalTokens holds the string denoting the total_tokens field in the database.
	FieldTotalTokens = "total_tokens"
	// FieldGradingStartedAt holds the string denoting the grading_started_at field in the database.
	FieldGradingStartedAt = "grading_started_at"
	// FieldGradingCompletedAt holds the string denoting the grading_completed_at field in the database.
	FieldGradingCompletedAt = "grading_completed_at"
	// FieldError holds the string denoting the error field in the database.
	FieldError = "error"
	// EdgeGrader holds the string denoting the grader edge name in mutations.
	EdgeGrader = "grader"
	// EdgeTrace holds the string denoting the trace edge name in mutations.
	EdgeTrace = "trace"
	// EdgeExecutionResult holds the string denoting the execution_result edge name in mutations.
	EdgeExecutionResult = "execution_result"
	// Table holds the table name of the grade in the database.
	Table = "grades"
	// GraderTable is the table that holds the grader relation/edge.
	GraderTable = "grades"
	// GraderInverseTable is the table name for the Grader entity.
	// It exists in this package in order to avoid circular dependency with the "grader" package.
	GraderInverseTable = "graders"
	// GraderColumn is the table column denoting the grader relation/edge.
	GraderColumn = "grader_id"
	// TraceTable is the table that holds the trace relation/edge.
	TraceTable = "grades"
	// TraceInverseTable is the table name for the Trace entity.
	// It exists in this package in order to avoid circular dependency with the "trace" package.
	TraceInverseTable = "traces"
	// TraceColumn is the table column denoting the trace relation/edge.
	TraceColumn = "trace_id"
	// ExecutionResultTable is the table that holds the execution_result relation/edge.
	ExecutionResultTable = "grades"
	// ExecutionResultInverseTable is the table name for the ExecutionResult entity.
	// It exists in this package in order to avoid circular dependency with the "executionresult" package.
	ExecutionResultInverseTable = "execution_results"
	// ExecutionResultColumn is the table column denoting the execution_result relation/edge.
	ExecutionResultColumn = "execution_result_id"
)

// Columns holds all SQL columns for grade fields.
var Columns = []string{
	FieldID,
	FieldGraderID,
	FieldTraceID,
	FieldExecutionResultID,
	FieldScoreFloat,
	FieldScoreBoolean,
	FieldReasoning,
	FieldConfidence,
	FieldPromptTokens,
	FieldCompletionTokens,
	FieldTotalTokens,
	FieldGradingStartedAt,
	FieldGradingCompletedAt,
	FieldError,
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

// OrderOption defines the ordering options for the Grade queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByGraderID orders the results by the grader_id field.
func ByGraderID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGraderID, opts...).ToFunc()
}

// ByTraceID orders the results by the trace_id field.
func ByTraceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTraceID, opts...).ToFunc()
}

// ByExecutionResultID orders the results by the execution_result_id field.
func ByExecutionResultID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutionResultID, opts...).ToFunc()
}

// ByScoreFloat orders the results by the score_float field.
func ByScoreFloat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScoreFloat, opts...).ToFunc()
}

// ByScoreBoolean orders the results by the score_boolean field.
func ByScoreBoolean(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScoreBoolean, opts...).ToFunc()
}

// ByReasoning orders the results by the reasoning field.
func ByReasoning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReasoning, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByPromptTokens orders the results by the prompt_tokens field.
func ByPromptTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptTokens, opts...).ToFunc()
}

// ByCompletionTokens orders the results by the completion_tokens field.
func ByCompletionTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletionTokens, opts...).ToFunc()
}

// ByTotalTokens orders the results by the total_tokens field.
func ByTotalTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalTokens, opts...).ToFunc()
}

// ByGradingStartedAt orders the results by the grading_started_at field.
func ByGradingStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGradingStartedAt, opts...).ToFunc()
}

// ByGradingCompletedAt orders the results by the grading_completed_at field.
func ByGradingCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGradingCompletedAt, opts...).ToFunc()
}

// ByError orders the results by the error field.
func ByError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldError, opts...).ToFunc()
}

// ByGraderField orders the results by grader field.
func ByGraderField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newGraderStep(), sql.OrderByField(field, opts...))
	}
}

// ByTraceField orders the results by trace field.
func ByTraceField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTraceStep(), sql.OrderByField(field, opts...))
	}
}

// ByExecutionResultField orders the results by execution_result field.
func ByExecutionResultField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExecutionResultStep(), sql.OrderByField(field, opts...))
	}
}
func newGraderStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(GraderInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, GraderTable, GraderColumn),
	)
}
func newTraceStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TraceInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TraceTable, TraceColumn),
	)
}
func newExecutionResultStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExecutionResultInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ExecutionResultTable, ExecutionResultColumn),
	)
}
