// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/promptlens/promptlens/ent/evaluation"
	"github.com/promptlens/promptlens/ent/implementation"
	"github.com/promptlens/promptlens/ent/task"
)

// Evaluation is the model entity for the Evaluation schema.
type Evaluation struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// ImplementationID holds the value of the "implementation_id" field.
	ImplementationID string `json:"implementation_id,omitempty"`
	// Status holds the value of the "status" field.
	Status evaluation.Status `json:"status,omitempty"`
	// grader_id → mean score over test cases
	GraderScores map[string]float64 `json:"grader_scores,omitempty"`
	// QualityScore holds the value of the "quality_score" field.
	QualityScore *float64 `json:"quality_score,omitempty"`
	// AvgCost holds the value of the "avg_cost" field.
	AvgCost *float64 `json:"avg_cost,omitempty"`
	// AvgExecutionTimeMs holds the value of the "avg_execution_time_ms" field.
	AvgExecutionTimeMs *float64 `json:"avg_execution_time_ms,omitempty"`
	// TestCaseCount holds the value of the "test_case_count" field.
	TestCaseCount int `json:"test_case_count,omitempty"`
	// Error holds the value of the "error" field.
	Error *string `json:"error,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EvaluationQuery when eager-loading is set.
	Edges        EvaluationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EvaluationEdges holds the relations/edges for other nodes in the graph.
type EvaluationEdges struct {
	// Task holds the value of the task edge.
	Task *Task `json:"task,omitempty"`
	// Implementation holds the value of the implementation edge.
	Implementation *Implementation `json:"implementation,omitempty"`
	// ExecutionResults holds the value of the execution_results edge.
	ExecutionResults []*ExecutionResult `json:"execution_results,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// TaskOrErr returns the Task value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EvaluationEdges) TaskOrErr() (*Task, error) {
	if e.Task != nil {
		return e.Task, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: task.Label}
	}
	return nil, &NotLoadedError{edge: "task"}
}

// ImplementationOrErr returns the Implementation value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EvaluationEdges) ImplementationOrErr() (*Implementation, error) {
	if e.Implementation != nil {
		return e.Implementation, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: implementation.Label}
	}
	return nil, &NotLoadedError{edge: "implementation"}
}

// ExecutionResultsOrErr returns the ExecutionResults value or an error if the edge
// was not loaded in eager-loading.
func (e EvaluationEdges) ExecutionResultsOrErr() ([]*ExecutionResult, error) {
	if e.loadedTypes[2] {
		return e.ExecutionResults, nil
	}
	return nil, &NotLoadedError{edge: "execution_results"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Evaluation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case evaluation.FieldGraderScores:
			values[i] = new([]byte)
		case evaluation.FieldQualityScore, evaluation.FieldAvgCost, evaluation.FieldAvgExecutionTimeMs:
			values[i] = new(sql.NullFloat64)
		case evaluation.FieldTestCaseCount:
			values[i] = new(sql.NullInt64)
		case evaluation.FieldID, evaluation.FieldTaskID, evaluation.FieldImplementationID, evaluation.FieldStatus, evaluation.FieldError:
			values[i] = new(sql.NullString)
		case evaluation.FieldStartedAt, evaluation.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Evaluation fields.
func (_m *Evaluation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case evaluation.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case evaluation.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case evaluation.FieldImplementationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field implementation_id", values[i])
			} else if value.Valid {
				_m.ImplementationID = value.String
			}
		case evaluation.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = evaluation.Status(value.String)
			}
		case evaluation.FieldGraderScores:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field grader_scores", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.GraderScores); err != nil {
					return fmt.Errorf("unmarshal field grader_scores: %w", err)
				}
			}
		case evaluation.FieldQualityScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field quality_score", values[i])
			} else if value.Valid {
				_m.QualityScore = new(float64)
				*_m.QualityScore = value.Float64
			}
		case evaluation.FieldAvgCost:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_cost", values[i])
			} else if value.Valid {
				_m.AvgCost = new(float64)
				*_m.AvgCost = value.Float64
			}
		case evaluation.FieldAvgExecutionTimeMs:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_execution_time_ms", values[i])
			} else if value.Valid {
				_m.AvgExecutionTimeMs = new(float64)
				*_m.AvgExecutionTimeMs = value.Float64
			}
		case evaluation.FieldTestCaseCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field test_case_count", values[i])
			} else if value.Valid {
				_m.TestCaseCount = int(value.Int64)
			}
		case evaluation.FieldError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error", values[i])
			} else if value.Valid {
				_m.Error = new(string)
				*_m.Error = value.String
			}
		case evaluation.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case evaluation.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Evaluation.
// This includes values selected through modifiers, order, etc.
func (_m *Evaluation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTask queries the "task" edge of the Evaluation entity.
func (_m *Evaluation) QueryTask() *TaskQuery {
	return NewEvaluationClient(_m.config).QueryTask(_m)
}

// QueryImplementation queries the "implementation" edge of the Evaluation entity.
func (_m *Evaluation) QueryImplementation() *ImplementationQuery {
	return NewEvaluationClient(_m.config).QueryImplementation(_m)
}

// QueryExecutionResults queries the "execution_results" edge of the Evaluation entity.
func (_m *Evaluation) QueryExecutionResults() *ExecutionResultQuery {
	return NewEvaluationClient(_m.config).QueryExecutionResults(_m)
}

// Update returns a builder for updating this Evaluation.
// Note that you need to call Evaluation.Unwrap() before calling this method if this Evaluation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Evaluation) Update() *EvaluationUpdateOne {
	return NewEvaluationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Evaluation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Evaluation) Unwrap() *Evaluation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Evaluation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Evaluation) String() string {
	var builder strings.Builder
	builder.WriteString("Evaluation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	builder.WriteString("implementation_id=")
	builder.WriteString(_m.ImplementationID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("grader_scores=")
	builder.WriteString(fmt.Sprintf("%v", _m.GraderScores))
	builder.WriteString(", ")
	if v := _m.QualityScore; v != nil {
		builder.WriteString("quality_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.AvgCost; v != nil {
		builder.WriteString("avg_cost=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.AvgExecutionTimeMs; v != nil {
		builder.WriteString("avg_execution_time_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("test_case_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.TestCaseCount))
	builder.WriteString(", ")
	if v := _m.Error; v != nil {
		builder.WriteString("error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Evaluations is a parsable slice of Evaluation.
type Evaluations []*Evaluation
