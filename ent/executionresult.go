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
	"github.com/promptlens/promptlens/ent/executionresult"
	"github.com/promptlens/promptlens/ent/implementation"
	"github.com/promptlens/promptlens/ent/task"
	"github.com/promptlens/promptlens/ent/testcase"
	"github.com/promptlens/promptlens/pkg/models"
)

// ExecutionResult is the model entity for the ExecutionResult schema.
type ExecutionResult struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// ImplementationID holds the value of the "implementation_id" field.
	ImplementationID string `json:"implementation_id,omitempty"`
	// EvaluationID holds the value of the "evaluation_id" field.
	EvaluationID *string `json:"evaluation_id,omitempty"`
	// TestCaseID holds the value of the "test_case_id" field.
	TestCaseID *string `json:"test_case_id,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt time.Time `json:"completed_at,omitempty"`
	// PromptRendered holds the value of the "prompt_rendered" field.
	PromptRendered string `json:"prompt_rendered,omitempty"`
	// Variables holds the value of the "variables" field.
	Variables map[string]string `json:"variables,omitempty"`
	// ResultText holds the value of the "result_text" field.
	ResultText *string `json:"result_text,omitempty"`
	// ResultJSON holds the value of the "result_json" field.
	ResultJSON map[string]interface{} `json:"result_json,omitempty"`
	// ToolCalls holds the value of the "tool_calls" field.
	ToolCalls []models.ToolCall `json:"tool_calls,omitempty"`
	// Error holds the value of the "error" field.
	Error *string `json:"error,omitempty"`
	// PromptTokens holds the value of the "prompt_tokens" field.
	PromptTokens int `json:"prompt_tokens,omitempty"`
	// CompletionTokens holds the value of the "completion_tokens" field.
	CompletionTokens int `json:"completion_tokens,omitempty"`
	// CachedTokens holds the value of the "cached_tokens" field.
	CachedTokens int `json:"cached_tokens,omitempty"`
	// ReasoningTokens holds the value of the "reasoning_tokens" field.
	ReasoningTokens int `json:"reasoning_tokens,omitempty"`
	// TotalTokens holds the value of the "total_tokens" field.
	TotalTokens int `json:"total_tokens,omitempty"`
	// SystemFingerprint holds the value of the "system_fingerprint" field.
	SystemFingerprint *string `json:"system_fingerprint,omitempty"`
	// USD, from the pricing table; null for unknown models
	Cost *float64 `json:"cost,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExecutionResultQuery when eager-loading is set.
	Edges        ExecutionResultEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExecutionResultEdges holds the relations/edges for other nodes in the graph.
type ExecutionResultEdges struct {
	// Task holds the value of the task edge.
	Task *Task `json:"task,omitempty"`
	// Implementation holds the value of the implementation edge.
	Implementation *Implementation `json:"implementation,omitempty"`
	// Evaluation holds the value of the evaluation edge.
	Evaluation *Evaluation `json:"evaluation,omitempty"`
	// TestCase holds the value of the test_case edge.
	TestCase *TestCase `json:"test_case,omitempty"`
	// Grades holds the value of the grades edge.
	Grades []*Grade `json:"grades,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// TaskOrErr returns the Task value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExecutionResultEdges) TaskOrErr() (*Task, error) {
	if e.Task != nil {
		return e.Task, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: task.Label}
	}
	return nil, &NotLoadedError{edge: "task"}
}

// ImplementationOrErr returns the Implementation value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExecutionResultEdges) ImplementationOrErr() (*Implementation, error) {
	if e.Implementation != nil {
		return e.Implementation, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: implementation.Label}
	}
	return nil, &NotLoadedError{edge: "implementation"}
}

// EvaluationOrErr returns the Evaluation value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExecutionResultEdges) EvaluationOrErr() (*Evaluation, error) {
	if e.Evaluation != nil {
		return e.Evaluation, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: evaluation.Label}
	}
	return nil, &NotLoadedError{edge: "evaluation"}
}

// TestCaseOrErr returns the TestCase value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExecutionResultEdges) TestCaseOrErr() (*TestCase, error) {
	if e.TestCase != nil {
		return e.TestCase, nil
	} else if e.loadedTypes[3] {
		return nil, &NotFoundError{label: testcase.Label}
	}
	return nil, &NotLoadedError{edge: "test_case"}
}

// GradesOrErr returns the Grades value or an error if the edge
// was not loaded in eager-loading.
func (e ExecutionResultEdges) GradesOrErr() ([]*Grade, error) {
	if e.loadedTypes[4] {
		return e.Grades, nil
	}
	return nil, &NotLoadedError{edge: "grades"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExecutionResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case executionresult.FieldVariables, executionresult.FieldResultJSON, executionresult.FieldToolCalls:
			values[i] = new([]byte)
		case executionresult.FieldCost:
			values[i] = new(sql.NullFloat64)
		case executionresult.FieldPromptTokens, executionresult.FieldCompletionTokens, executionresult.FieldCachedTokens, executionresult.FieldReasoningTokens, executionresult.FieldTotalTokens:
			values[i] = new(sql.NullInt64)
		case executionresult.FieldID, executionresult.FieldTaskID, executionresult.FieldImplementationID, executionresult.FieldEvaluationID, executionresult.FieldTestCaseID, executionresult.FieldPromptRendered, executionresult.FieldResultText, executionresult.FieldError, executionresult.FieldSystemFingerprint:
			values[i] = new(sql.NullString)
		case executionresult.FieldStartedAt, executionresult.FieldCompletedAt, executionresult.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExecutionResult fields.
func (_m *ExecutionResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case executionresult.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case executionresult.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case executionresult.FieldImplementationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field implementation_id", values[i])
			} else if value.Valid {
				_m.ImplementationID = value.String
			}
		case executionresult.FieldEvaluationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field evaluation_id", values[i])
			} else if value.Valid {
				_m.EvaluationID = new(string)
				*_m.EvaluationID = value.String
			}
		case executionresult.FieldTestCaseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field test_case_id", values[i])
			} else if value.Valid {
				_m.TestCaseID = new(string)
				*_m.TestCaseID = value.String
			}
		case executionresult.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case executionresult.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = value.Time
			}
		case executionresult.FieldPromptRendered:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_rendered", values[i])
			} else if value.Valid {
				_m.PromptRendered = value.String
			}
		case executionresult.FieldVariables:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field variables", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Variables); err != nil {
					return fmt.Errorf("unmarshal field variables: %w", err)
				}
			}
		case executionresult.FieldResultText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field result_text", values[i])
			} else if value.Valid {
				_m.ResultText = new(string)
				*_m.ResultText = value.String
			}
		case executionresult.FieldResultJSON:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field result_json", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ResultJSON); err != nil {
					return fmt.Errorf("unmarshal field result_json: %w", err)
				}
			}
		case executionresult.FieldToolCalls:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tool_calls", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ToolCalls); err != nil {
					return fmt.Errorf("unmarshal field tool_calls: %w", err)
				}
			}
		case executionresult.FieldError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error", values[i])
			} else if value.Valid {
				_m.Error = new(string)
				*_m.Error = value.String
			}
		case executionresult.FieldPromptTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_tokens", values[i])
			} else if value.Valid {
				_m.PromptTokens = int(value.Int64)
			}
		case executionresult.FieldCompletionTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completion_tokens", values[i])
			} else if value.Valid {
				_m.CompletionTokens = int(value.Int64)
			}
		case executionresult.FieldCachedTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cached_tokens", values[i])
			} else if value.Valid {
				_m.CachedTokens = int(value.Int64)
			}
		case executionresult.FieldReasoningTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reasoning_tokens", values[i])
			} else if value.Valid {
				_m.ReasoningTokens = int(value.Int64)
			}
		case executionresult.FieldTotalTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_tokens", values[i])
			} else if value.Valid {
				_m.TotalTokens = int(value.Int64)
			}
		case executionresult.FieldSystemFingerprint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field system_fingerprint", values[i])
			} else if value.Valid {
				_m.SystemFingerprint = new(string)
				*_m.SystemFingerprint = value.String
			}
		case executionresult.FieldCost:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cost", values[i])
			} else if value.Valid {
				_m.Cost = new(float64)
				*_m.Cost = value.Float64
			}
		case executionresult.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ExecutionResult.
// This includes values selected through modifiers, order, etc.
func (_m *ExecutionResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTask queries the "task" edge of the ExecutionResult entity.
func (_m *ExecutionResult) QueryTask() *TaskQuery {
	return NewExecutionResultClient(_m.config).QueryTask(_m)
}

// QueryImplementation queries the "implementation" edge of the ExecutionResult entity.
func (_m *ExecutionResult) QueryImplementation() *ImplementationQuery {
	return NewExecutionResultClient(_m.config).QueryImplementation(_m)
}

// QueryEvaluation queries the "evaluation" edge of the ExecutionResult entity.
func (_m *ExecutionResult) QueryEvaluation() *EvaluationQuery {
	return NewExecutionResultClient(_m.config).QueryEvaluation(_m)
}

// QueryTestCase queries the "test_case" edge of the ExecutionResult entity.
func (_m *ExecutionResult) QueryTestCase() *TestCaseQuery {
	return NewExecutionResultClient(_m.config).QueryTestCase(_m)
}

// QueryGrades queries the "grades" edge of the ExecutionResult entity.
func (_m *ExecutionResult) QueryGrades() *GradeQuery {
	return NewExecutionResultClient(_m.config).QueryGrades(_m)
}

// Update returns a builder for updating this ExecutionResult.
// Note that you need to call ExecutionResult.Unwrap() before calling this method if this ExecutionResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExecutionResult) Update() *ExecutionResultUpdateOne {
	return NewExecutionResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExecutionResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExecutionResult) Unwrap() *ExecutionResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExecutionResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExecutionResult) String() string {
	var builder strings.Builder
	builder.WriteString("ExecutionResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	builder.WriteString("implementation_id=")
	builder.WriteString(_m.ImplementationID)
	builder.WriteString(", ")
	if v := _m.EvaluationID; v != nil {
		builder.WriteString("evaluation_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.TestCaseID; v != nil {
		builder.WriteString("test_case_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("completed_at=")
	builder.WriteString(_m.CompletedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("prompt_rendered=")
	builder.WriteString(_m.PromptRendered)
	builder.WriteString(", ")
	builder.WriteString("variables=")
	builder.WriteString(fmt.Sprintf("%v", _m.Variables))
	builder.WriteString(", ")
	if v := _m.ResultText; v != nil {
		builder.WriteString("result_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("result_json=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResultJSON))
	builder.WriteString(", ")
	builder.WriteString("tool_calls=")
	builder.WriteString(fmt.Sprintf("%v", _m.ToolCalls))
	builder.WriteString(", ")
	if v := _m.Error; v != nil {
		builder.WriteString("error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("prompt_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.PromptTokens))
	builder.WriteString(", ")
	builder.WriteString("completion_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletionTokens))
	builder.WriteString(", ")
	builder.WriteString("cached_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.CachedTokens))
	builder.WriteString(", ")
	builder.WriteString("reasoning_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReasoningTokens))
	builder.WriteString(", ")
	builder.WriteString("total_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalTokens))
	builder.WriteString(", ")
	if v := _m.SystemFingerprint; v != nil {
		builder.WriteString("system_fingerprint=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Cost; v != nil {
		builder.WriteString("cost=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExecutionResults is a parsable slice of ExecutionResult.
type ExecutionResults []*ExecutionResult
