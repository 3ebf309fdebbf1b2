// Code generated by ent, DO NOT EDIT.

package evaluationconfig

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the evaluationconfig type in the database.
	Label = "evaluation_config"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldQualityWeight holds the string denoting the quality_weight field in the database.
	FieldQualityWeight = "quality_weight"
	// FieldCostWeight holds the string denoting the cost_weight field in the database.
	FieldCostWeight = "cost_weight"
	// FieldTimeWeight holds the string denoting the time_weight field in the database.
	FieldTimeWeight = "time_weight"
	// FieldGraderIds holds the string denoting the grader_ids field in the database.
	FieldGraderIds = "grader_ids"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeTask holds the string denoting the task edge name in mutations.
	EdgeTask = "task"
	// Table holds the table name of the evaluationconfig in the database.
	Table = "evaluation_configs"
	// TaskTable is the table that holds the task relation/edge.
	TaskTable = "evaluation_configs"
	// TaskInverseTable is the table name for the Task entity.
	// It exists in this package in order to avoid circular dependency with the "task" package.
	TaskInverseTable = "tasks"
	// TaskColumn is the table column denoting the task relation/edge.
	TaskColumn = "task_id"
)

// Columns holds all SQL columns for evaluationconfig fields.
var Columns = []string{
	FieldID,
	FieldTaskID,
	FieldQualityWeight,
	FieldCostWeight,
	FieldTimeWeight,
	FieldGraderIds,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the EvaluationConfig queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByQualityWeight orders the results by the quality_weight field.
func ByQualityWeight(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQualityWeight, opts...).ToFunc()
}

// ByCostWeight orders the results by the cost_weight field.
func ByCostWeight(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCostWeight, opts...).ToFunc()
}

// ByTimeWeight orders the results by the time_weight field.
func ByTimeWeight(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeWeight, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByTaskField orders the results by task field.
func ByTaskField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTaskStep(), sql.OrderByField(field, opts...))
	}
}
func newTaskStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TaskInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, TaskTable, TaskColumn),
	)
}
