// Code generated by ent, DO NOT EDIT.

package task

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the task type in the database.
	Label = "task"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldPath holds the string denoting the path field in the database.
	FieldPath = "path"
	// FieldProductionVersionID holds the string denoting the production_version_id field in the database.
	FieldProductionVersionID = "production_version_id"
	// FieldResponseSchema holds the string denoting the response_schema field in the database.
	FieldResponseSchema = "response_schema"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeProject holds the string denoting the project edge name in mutations.
	EdgeProject = "project"
	// EdgeImplementations holds the string denoting the implementations edge name in mutations.
	EdgeImplementations = "implementations"
	// EdgeTestCases holds the string denoting the test_cases edge name in mutations.
	EdgeTestCases = "test_cases"
	// EdgeEvaluations holds the string denoting the evaluations edge name in mutations.
	EdgeEvaluations = "evaluations"
	// EdgeEvaluationConfig holds the string denoting the evaluation_config edge name in mutations.
	EdgeEvaluationConfig = "evaluation_config"
	// EdgeTargetMetrics holds the string denoting the target_metrics edge name in mutations.
	EdgeTargetMetrics = "target_metrics"
	// EdgeExecutionResults holds the string denoting the execution_results edge name in mutations.
	EdgeExecutionResults = "execution_results"
	// EdgeProductionVersion holds the string denoting the production_version edge name in mutations.
	EdgeProductionVersion = "production_version"
	// Table holds the table name of the task in the database.
	Table = "tasks"
	// ProjectTable is the table that holds the project relation/edge.
	ProjectTable = "tasks"
	// ProjectInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectInverseTable = "projects"
	// ProjectColumn is the table column denoting the project relation/edge.
	ProjectColumn = "project_id"
	// ImplementationsTable is the table that holds the implementations relation/edge.
	ImplementationsTable = "implementations"
	// ImplementationsInverseTable is the table name for the Implementation entity.
	// It exists in this package in order to avoid circular dependency with the "implementation" package.
	ImplementationsInverseTable = "implementations"
	// ImplementationsColumn is the table column denoting the implementations relation/edge.
	ImplementationsColumn = "task_id"
	// TestCasesTable is the table that holds the test_cases relation/edge.
	TestCasesTable = "test_cases"
	// TestCasesInverseTable is the table name for the TestCase entity.
	// It exists in this package in order to avoid circular dependency with the "testcase" package.
	TestCasesInverseTable = "test_cases"
	// TestCasesColumn is the table column denoting the test_cases relation/edge.
	TestCasesColumn = "task_id"
	// EvaluationsTable is the table that holds the evaluations relation/edge.
	EvaluationsTable = "evaluations"
	// EvaluationsInverseTable is the table name for the Evaluation entity.
	// It exists in this package in order to avoid circular dependency with the "evaluation" package.
	EvaluationsInverseTable = "evaluations"
	// EvaluationsColumn is the table column denoting the evaluations relation/edge.
	EvaluationsColumn = "task_id"
	// EvaluationConfigTable is the table that holds the evaluation_config relation/edge.
	EvaluationConfigTable = "evaluation_configs"
	// EvaluationConfigInverseTable is the table name for the EvaluationConfig entity.
	// It exists in this package in order to avoid circular dependency with the "evaluationconfig" package.
	EvaluationConfigInverseTable = "evaluation_configs"
	// EvaluationConfigColumn is the table column denoting the evaluation_config relation/edge.
	EvaluationConfigColumn = "task_id"
	// TargetMetricsTable is the table that holds the target_metrics relation/edge.
	TargetMetricsTable = "target_task_metrics"
	// TargetMetricsInverseTable is the table name for the TargetTaskMetrics entity.
	// It exists in this package in order to avoid circular dependency with the "targettaskmetrics" package.
	TargetMetricsInverseTable = "target_task_metrics"
	// TargetMetricsColumn is the table column denoting the target_metrics relation/edge.
	TargetMetricsColumn = "task_id"
	// ExecutionResultsTable is the table that holds the execution_results relation/edge.
	ExecutionResultsTable = "execution_results"
	// ExecutionResultsInverseTable is the table name for the ExecutionResult entity.
	// It exists in this package in order to avoid circular dependency with the "executionresult" package.
	ExecutionResultsInverseTable = "execution_results"
	// ExecutionResultsColumn is the table column denoting the execution_results relation/edge.
	ExecutionResultsColumn = "task_id"
	// ProductionVersionTable is the table that holds the production_version relation/edge.
	ProductionVersionTable = "tasks"
	// ProductionVersionInverseTable is the table name for the Implementation entity.
	// It exists in this package in order to avoid circular dependency with the "implementation" package.
	ProductionVersionInverseTable = "implementations"
	// ProductionVersionColumn is the table column denoting the production_version relation/edge.
	ProductionVersionColumn = "production_version_id"
)

// Columns holds all SQL columns for task fields.
var Columns = []string{
	FieldID,
	FieldProjectID,
	FieldName,
	FieldDescription,
	FieldPath,
	FieldProductionVersionID,
	FieldResponseSchema,
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
	// DefaultDescription holds the default value on creation for the "description" field.
	DefaultDescription string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Task queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByPath orders the results by the path field.
func ByPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPath, opts...).ToFunc()
}

// ByProductionVersionID orders the results by the production_version_id field.
func ByProductionVersionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProductionVersionID, opts...).ToFunc()
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

// ByImplementationsCount orders the results by implementations count.
func ByImplementationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newImplementationsStep(), opts...)
	}
}

// ByImplementations orders the results by implementations terms.
func ByImplementations(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newImplementationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTestCasesCount orders the results by test_cases count.
func ByTestCasesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTestCasesStep(), opts...)
	}
}

// ByTestCases orders the results by test_cases terms.
func ByTestCases(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTestCasesStep(), append([]sql.OrderTerm{term}, terms...)...)
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

// ByEvaluationConfigField orders the results by evaluation_config field.
func ByEvaluationConfigField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEvaluationConfigStep(), sql.OrderByField(field, opts...))
	}
}

// ByTargetMetricsField orders the results by target_metrics field.
func ByTargetMetricsField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTargetMetricsStep(), sql.OrderByField(field, opts...))
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

// ByProductionVersionField orders the results by production_version field.
func ByProductionVersionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProductionVersionStep(), sql.OrderByField(field, opts...))
	}
}
func newProjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProjectInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
	)
}
func newImplementationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ImplementationsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ImplementationsTable, ImplementationsColumn),
	)
}
func newTestCasesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TestCasesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TestCasesTable, TestCasesColumn),
	)
}
func newEvaluationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EvaluationsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EvaluationsTable, EvaluationsColumn),
	)
}
func newEvaluationConfigStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EvaluationConfigInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, EvaluationConfigTable, EvaluationConfigColumn),
	)
}
func newTargetMetricsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TargetMetricsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, TargetMetricsTable, TargetMetricsColumn),
	)
}
func newExecutionResultsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExecutionResultsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ExecutionResultsTable, ExecutionResultsColumn),
	)
}
func newProductionVersionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProductionVersionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, ProductionVersionTable, ProductionVersionColumn),
	)
}
