// Code generated by ent, DO NOT EDIT.

package trace

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the trace type in the database.
	Label = "trace"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldHTTPTraceID holds the string denoting the http_trace_id field in the database.
	FieldHTTPTraceID = "http_trace_id"
	// FieldModel holds the string denoting the model field in the database.
	FieldModel = "model"
	// FieldPath holds the string denoting the path field in the database.
	FieldPath = "path"
	// FieldInputItems holds the string denoting the input_items field in the database.
	FieldInputItems = "input_items"
	// FieldOutputItems holds the string denoting the output_items field in the database.
	FieldOutputItems = "output_items"
	// FieldTools holds the string denoting the tools field in the database.
	FieldTools = "tools"
	// FieldResponseSchema holds the string denoting the response_schema field in the database.
	FieldResponseSchema = "response_schema"
	// FieldTemperature holds the string denoting the temperature field in the database.
	FieldTemperature = "temperature"
	// FieldMaxTokens holds the string denoting the max_tokens field in the database.
	FieldMaxTokens = "max_tokens"
	// FieldFinishReason holds the string denoting the finish_reason field in the database.
	FieldFinishReason = "finish_reason"
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
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldError holds the string denoting the error field in the database.
	FieldError = "error"
	// FieldImplementationID holds the string denoting the implementation_id field in the database.
	FieldImplementationID = "implementation_id"
	// FieldPromptVariables holds the string denoting the prompt_variables field in the database.
	FieldPromptVariables = "prompt_variables"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeProject holds the string denoting the project edge name in mutations.
	EdgeProject = "project"
	// EdgeHTTPTrace holds the string denoting the http_trace edge name in mutations.
	EdgeHTTPTrace = "http_trace"
	// EdgeImplementation holds the string denoting the implementation edge name in mutations.
	EdgeImplementation = "implementation"
	// EdgeGrades holds the string denoting the grades edge name in mutations.
	EdgeGrades = "grades"
	// Table holds the table name of the trace in the database.
	Table = "traces"
	// ProjectTable is the table that holds the project relation/edge.
	ProjectTable = "traces"
	// ProjectInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectInverseTable = "projects"
	// ProjectColumn is the table column denoting the project relation/edge.
	ProjectColumn = "project_id"
	// HTTPTraceTable is the table that holds the http_trace relation/edge.
	HTTPTraceTable = "traces"
	// HTTPTraceInverseTable is the table name for the HTTPTrace entity.
	// It exists in this package in order to avoid circular dependency with the "httptrace" package.
	HTTPTraceInverseTable = "http_traces"
	// HTTPTraceColumn is the table column denoting the http_trace relation/edge.
	HTTPTraceColumn = "http_trace_id"
	// ImplementationTable is the table that holds the implementation relation/edge.
	ImplementationTable = "traces"
	// ImplementationInverseTable is the table name for the Implementation entity.
	// It exists in this package in order to avoid circular dependency with the "implementation" package.
	ImplementationInverseTable = "implementations"
	// ImplementationColumn is the table column denoting the implementation relation/edge.
	ImplementationColumn = "implementation_id"
	// GradesTable is the table that holds the grades relation/edge.
	GradesTable = "grades"
	// GradesInverseTable is the table name for the Grade entity.
	// It exists in this package in order to avoid circular dependency with the "grade" package.
	GradesInverseTable = "grades"
	// GradesColumn is the table column denoting the grades relation/edge.
	GradesColumn = "trace_id"
)

// Columns holds all SQL columns for trace fields.
var Columns = []string{
	FieldID,
	FieldProjectID,
	FieldHTTPTraceID,
	FieldModel,
	FieldPath,
	FieldInputItems,
	FieldOutputItems,
	FieldTools,
	FieldResponseSchema,
	FieldTemperature,
	FieldMaxTokens,
	FieldFinishReason,
	FieldPromptTokens,
	FieldCompletionTokens,
	FieldCachedTokens,
	FieldReasoningTokens,
	FieldTotalTokens,
	FieldSystemFingerprint,
	FieldStartedAt,
	FieldCompletedAt,
	FieldError,
	FieldImplementationID,
	FieldPromptVariables,
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

// OrderOption defines the ordering options for the Trace queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByHTTPTraceID orders the results by the http_trace_id field.
func ByHTTPTraceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHTTPTraceID, opts...).ToFunc()
}

// ByModel orders the results by the model field.
func ByModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModel, opts...).ToFunc()
}

// ByPath orders the results by the path field.
func ByPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPath, opts...).ToFunc()
}

// ByTemperature orders the results by the temperature field.
func ByTemperature(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTemperature, opts...).ToFunc()
}

// ByMaxTokens orders the results by the max_tokens field.
func ByMaxTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxTokens, opts...).ToFunc()
}

// ByFinishReason orders the results by the finish_reason field.
func ByFinishReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishReason, opts...).ToFunc()
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

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByError orders the results by the error field.
func ByError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldError, opts...).ToFunc()
}

// ByImplementationID orders the results by the implementation_id field.
func ByImplementationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImplementationID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByProjectField orders the results by project field.
func ByProjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProjectStep(), sql.OrderByField(field, opts...))
	}
}

// ByHTTPTraceField orders the results by http_trace field.
func ByHTTPTraceField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newHTTPTraceStep(), sql.OrderByField(field, opts...))
	}
}

// ByImplementationField orders the results by implementation field.
func ByImplementationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newImplementationStep(), sql.OrderByField(field, opts...))
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
func newProjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProjectInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
	)
}
func newHTTPTraceStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(HTTPTraceInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, HTTPTraceTable, HTTPTraceColumn),
	)
}
func newImplementationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ImplementationInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ImplementationTable, ImplementationColumn),
	)
}
func newGradesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(GradesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, GradesTable, GradesColumn),
	)
}
