// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/promptlens/promptlens/ent/evaluationconfig"
	"github.com/promptlens/promptlens/ent/implementation"
	"github.com/promptlens/promptlens/ent/project"
	"github.com/promptlens/promptlens/ent/targettaskmetrics"
	"github.com/promptlens/promptlens/ent/task"
)

// Task is the model entity for the Task schema.
type Task struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Application call site this task was clustered from
	Path *string `json:"path,omitempty"`
	// ProductionVersionID holds the value of the "production_version_id" field.
	ProductionVersionID *string `json:"production_version_id,omitempty"`
	// ResponseSchema holds the value of the "response_schema" field.
	ResponseSchema map[string]interface{} `json:"response_schema,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TaskQuery when eager-loading is set.
	Edges        TaskEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TaskEdges holds the relations/edges for other nodes in the graph.
type TaskEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// Implementations holds the value of the implementations edge.
	Implementations []*Implementation `json:"implementations,omitempty"`
	// TestCases holds the value of the test_cases edge.
	TestCases []*TestCase `json:"test_cases,omitempty"`
	// Evaluations holds the value of the evaluations edge.
	Evaluations []*Evaluation `json:"evaluations,omitempty"`
	// EvaluationConfig holds the value of the evaluation_config edge.
	EvaluationConfig *EvaluationConfig `json:"evaluation_config,omitempty"`
	// TargetMetrics holds the value of the target_metrics edge.
	TargetMetrics *TargetTaskMetrics `json:"target_metrics,omitempty"`
	// ExecutionResults holds the value of the execution_results edge.
	ExecutionResults []*ExecutionResult `json:"execution_results,omitempty"`
	// ProductionVersion holds the value of the production_version edge.
	ProductionVersion *Implementation `json:"production_version,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [8]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TaskEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// ImplementationsOrErr returns the Implementations value or an error if the edge
// was not loaded in eager-loading.
func (e TaskEdges) ImplementationsOrErr() ([]*Implementation, error) {
	if e.loadedTypes[1] {
		return e.Implementations, nil
	}
	return nil, &NotLoadedError{edge: "implementations"}
}

// TestCasesOrErr returns the TestCases value or an error if the edge
// was not loaded in eager-loading.
func (e TaskEdges) TestCasesOrErr() ([]*TestCase, error) {
	if e.loadedTypes[2] {
		return e.TestCases, nil
	}
	return nil, &NotLoadedError{edge: "test_cases"}
}

// EvaluationsOrErr returns the Evaluations value or an error if the edge
// was not loaded in eager-loading.
func (e TaskEdges) EvaluationsOrErr() ([]*Evaluation, error) {
	if e.loadedTypes[3] {
		return e.Evaluations, nil
	}
	return nil, &NotLoadedError{edge: "evaluations"}
}

// EvaluationConfigOrErr returns the EvaluationConfig value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TaskEdges) EvaluationConfigOrErr() (*EvaluationConfig, error) {
	if e.EvaluationConfig != nil {
		return e.EvaluationConfig, nil
	} else if e.loadedTypes[4] {
		return nil, &NotFoundError{label: evaluationconfig.Label}
	}
	return nil, &NotLoadedError{edge: "evaluation_config"}
}

// TargetMetricsOrErr returns the TargetMetrics value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TaskEdges) TargetMetricsOrErr() (*TargetTaskMetrics, error) {
	if e.TargetMetrics != nil {
		return e.TargetMetrics, nil
	} else if e.loadedTypes[5] {
		return nil, &NotFoundError{label: targettaskmetrics.Label}
	}
	return nil, &NotLoadedError{edge: "target_metrics"}
}

// ExecutionResultsOrErr returns the ExecutionResults value or an error if the edge
// was not loaded in eager-loading.
func (e TaskEdges) ExecutionResultsOrErr() ([]*ExecutionResult, error) {
	if e.loadedTypes[6] {
		return e.ExecutionResults, nil
	}
	return nil, &NotLoadedError{edge: "execution_results"}
}

// ProductionVersionOrErr returns the ProductionVersion value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TaskEdges) ProductionVersionOrErr() (*Implementation, error) {
	if e.ProductionVersion != nil {
		return e.ProductionVersion, nil
	} else if e.loadedTypes[7] {
		return nil, &NotFoundError{label: implementation.Label}
	}
	return nil, &NotLoadedError{edge: "production_version"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Task) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case task.FieldResponseSchema:
			values[i] = new([]byte)
		case task.FieldID, task.FieldProjectID, task.FieldName, task.FieldDescription, task.FieldPath, task.FieldProductionVersionID:
			values[i] = new(sql.NullString)
		case task.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Task fields.
func (_m *Task) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case task.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case task.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case task.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case task.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case task.FieldPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field path", values[i])
			} else if value.Valid {
				_m.Path = new(string)
				*_m.Path = value.String
			}
		case task.FieldProductionVersionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field production_version_id", values[i])
			} else if value.Valid {
				_m.ProductionVersionID = new(string)
				*_m.ProductionVersionID = value.String
			}
		case task.FieldResponseSchema:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field response_schema", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ResponseSchema); err != nil {
					return fmt.Errorf("unmarshal field response_schema: %w", err)
				}
			}
		case task.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Task.
// This includes values selected through modifiers, order, etc.
func (_m *Task) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the Task entity.
func (_m *Task) QueryProject() *ProjectQuery {
	return NewTaskClient(_m.config).QueryProject(_m)
}

// QueryImplementations queries the "implementations" edge of the Task entity.
func (_m *Task) QueryImplementations() *ImplementationQuery {
	return NewTaskClient(_m.config).QueryImplementations(_m)
}

// QueryTestCases queries the "test_cases" edge of the Task entity.
func (_m *Task) QueryTestCases() *TestCaseQuery {
	return NewTaskClient(_m.config).QueryTestCases(_m)
}

// QueryEvaluations queries the "evaluations" edge of the Task entity.
func (_m *Task) QueryEvaluations() *EvaluationQuery {
	return NewTaskClient(_m.config).QueryEvaluations(_m)
}

// QueryEvaluationConfig queries the "evaluation_config" edge of the Task entity.
func (_m *Task) QueryEvaluationConfig() *EvaluationConfigQuery {
	return NewTaskClient(_m.config).QueryEvaluationConfig(_m)
}

// QueryTargetMetrics queries the "target_metrics" edge of the Task entity.
func (_m *Task) QueryTargetMetrics() *TargetTaskMetricsQuery {
	return NewTaskClient(_m.config).QueryTargetMetrics(_m)
}

// QueryExecutionResults queries the "execution_results" edge of the Task entity.
func (_m *Task) QueryExecutionResults() *ExecutionResultQuery {
	return NewTaskClient(_m.config).QueryExecutionResults(_m)
}

// QueryProductionVersion queries the "production_version" edge of the Task entity.
func (_m *Task) QueryProductionVersion() *ImplementationQuery {
	return NewTaskClient(_m.config).QueryProductionVersion(_m)
}

// Update returns a builder for updating this Task.
// Note that you need to call Task.Unwrap() before calling this method if this Task
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Task) Update() *TaskUpdateOne {
	return NewTaskClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Task entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Task) Unwrap() *Task {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Task is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Task) String() string {
	var builder strings.Builder
	builder.WriteString("Task(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	if v := _m.Path; v != nil {
		builder.WriteString("path=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ProductionVersionID; v != nil {
		builder.WriteString("production_version_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("response_schema=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResponseSchema))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Tasks is a parsable slice of Task.
type Tasks []*Task
