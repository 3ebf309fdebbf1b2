// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/promptlens/promptlens/ent/implementation"
	"github.com/promptlens/promptlens/ent/task"
	"github.com/promptlens/promptlens/pkg/models"
)

// Implementation is the model entity for the Implementation schema.
type Implementation struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// Version holds the value of the "version" field.
	Version string `json:"version,omitempty"`
	// Template with {{var}} placeholders
	Prompt string `json:"prompt,omitempty"`
	// Model holds the value of the "model" field.
	Model string `json:"model,omitempty"`
	// Temperature holds the value of the "temperature" field.
	Temperature *float64 `json:"temperature,omitempty"`
	// Reasoning holds the value of the "reasoning" field.
	Reasoning map[string]interface{} `json:"reasoning,omitempty"`
	// Tools holds the value of the "tools" field.
	Tools []models.ToolDefinition `json:"tools,omitempty"`
	// ToolChoice holds the value of the "tool_choice" field.
	ToolChoice *string `json:"tool_choice,omitempty"`
	// MaxOutputTokens holds the value of the "max_output_tokens" field.
	MaxOutputTokens int `json:"max_output_tokens,omitempty"`
	// ResponseSchema holds the value of the "response_schema" field.
	ResponseSchema map[string]interface{} `json:"response_schema,omitempty"`
	// Temp holds the value of the "temp" field.
	Temp bool `json:"temp,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ImplementationQuery when eager-loading is set.
	Edges        ImplementationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ImplementationEdges holds the relations/edges for other nodes in the graph.
type ImplementationEdges struct {
	// Task holds the value of the task edge.
	Task *Task `json:"task,omitempty"`
	// Traces holds the value of the traces edge.
	Traces []*Trace `json:"traces,omitempty"`
	// ExecutionResults holds the value of the execution_results edge.
	ExecutionResults []*ExecutionResult `json:"execution_results,omitempty"`
	// Evaluations holds the value of the evaluations edge.
	Evaluations []*Evaluation `json:"evaluations,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// TaskOrErr returns the Task value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ImplementationEdges) TaskOrErr() (*Task, error) {
	if e.Task != nil {
		return e.Task, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: task.Label}
	}
	return nil, &NotLoadedError{edge: "task"}
}

// TracesOrErr returns the Traces value or an error if the edge
// was not loaded in eager-loading.
func (e ImplementationEdges) TracesOrErr() ([]*Trace, error) {
	if e.loadedTypes[1] {
		return e.Traces, nil
	}
	return nil, &NotLoadedError{edge: "traces"}
}

// ExecutionResultsOrErr returns the ExecutionResults value or an error if the edge
// was not loaded in eager-loading.
func (e ImplementationEdges) ExecutionResultsOrErr() ([]*ExecutionResult, error) {
	if e.loadedTypes[2] {
		return e.ExecutionResults, nil
	}
	return nil, &NotLoadedError{edge: "execution_results"}
}

// EvaluationsOrErr returns the Evaluations value or an error if the edge
// was not loaded in eager-loading.
func (e ImplementationEdges) EvaluationsOrErr() ([]*Evaluation, error) {
	if e.loadedTypes[3] {
		return e.Evaluations, nil
	}
	return nil, &NotLoadedError{edge: "evaluations"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Implementation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case implementation.FieldReasoning, implementation.FieldTools, implementation.FieldResponseSchema:
			values[i] = new([]byte)
		case implementation.FieldTemp:
			values[i] = new(sql.NullBool)
		case implementation.FieldTemperature:
			values[i] = new(sql.NullFloat64)
		case implementation.FieldMaxOutputTokens:
			values[i] = new(sql.NullInt64)
		case implementation.FieldID, implementation.FieldTaskID, implementation.FieldVersion, implementation.FieldPrompt, implementation.FieldModel, implementation.FieldToolChoice:
			values[i] = new(sql.NullString)
		case implementation.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Implementation fields.
func (_m *Implementation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case implementation.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case implementation.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case implementation.FieldVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = value.String
			}
		case implementation.FieldPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt", values[i])
			} else if value.Valid {
				_m.Prompt = value.String
			}
		case implementation.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case implementation.FieldTemperature:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field temperature", values[i])
			} else if value.Valid {
				_m.Temperature = new(float64)
				*_m.Temperature = value.Float64
			}
		case implementation.FieldReasoning:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field reasoning", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Reasoning); err != nil {
					return fmt.Errorf("unmarshal field reasoning: %w", err)
				}
			}
		case implementation.FieldTools:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tools", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Tools); err != nil {
					return fmt.Errorf("unmarshal field tools: %w", err)
				}
			}
		case implementation.FieldToolChoice:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tool_choice", values[i])
			} else if value.Valid {
				_m.ToolChoice = new(string)
				*_m.ToolChoice = value.String
			}
		case implementation.FieldMaxOutputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_output_tokens", values[i])
			} else if value.Valid {
				_m.MaxOutputTokens = int(value.Int64)
			}
		case implementation.FieldResponseSchema:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field response_schema", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ResponseSchema); err != nil {
					return fmt.Errorf("unmarshal field response_schema: %w", err)
				}
			}
		case implementation.FieldTemp:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field temp", values[i])
			} else if value.Valid {
				_m.Temp = value.Bool
			}
		case implementation.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Implementation.
// This includes values selected through modifiers, order, etc.
func (_m *Implementation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTask queries the "task" edge of the Implementation entity.
func (_m *Implementation) QueryTask() *TaskQuery {
	return NewImplementationClient(_m.config).QueryTask(_m)
}

// QueryTraces queries the "traces" edge of the Implementation entity.
func (_m *Implementation) QueryTraces() *TraceQuery {
	return NewImplementationClient(_m.config).QueryTraces(_m)
}

// QueryExecutionResults queries the "execution_results" edge of the Implementation entity.
func (_m *Implementation) QueryExecutionResults() *ExecutionResultQuery {
	return NewImplementationClient(_m.config).QueryExecutionResults(_m)
}

// QueryEvaluations queries the "evaluations" edge of the Implementation entity.
func (_m *Implementation) QueryEvaluations() *EvaluationQuery {
	return NewImplementationClient(_m.config).QueryEvaluations(_m)
}

// Update returns a builder for updating this Implementation.
// Note that you need to call Implementation.Unwrap() before calling this method if this Implementation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Implementation) Update() *ImplementationUpdateOne {
	return NewImplementationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Implementation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Implementation) Unwrap() *Implementation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Implementation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Implementation) String() string {
	var builder strings.Builder
	builder.WriteString("Implementation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(_m.Version)
	builder.WriteString(", ")
	builder.WriteString("prompt=")
	builder.WriteString(_m.Prompt)
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteString(", ")
	if v := _m.Temperature; v != nil {
		builder.WriteString("temperature=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("reasoning=")
	builder.WriteString(fmt.Sprintf("%v", _m.Reasoning))
	builder.WriteString(", ")
	builder.WriteString("tools=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tools))
	builder.WriteString(", ")
	if v := _m.ToolChoice; v != nil {
		builder.WriteString("tool_choice=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("max_output_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxOutputTokens))
	builder.WriteString(", ")
	builder.WriteString("response_schema=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResponseSchema))
	builder.WriteString(", ")
	builder.WriteString("temp=")
	builder.WriteString(fmt.Sprintf("%v", _m.Temp))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Implementations is a parsable slice of Implementation.
type Implementations []*Implementation
