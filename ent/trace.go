// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/promptlens/promptlens/ent/httptrace"
	"github.com/promptlens/promptlens/ent/implementation"
	"github.com/promptlens/promptlens/ent/project"
	"github.com/promptlens/promptlens/ent/trace"
	"github.com/promptlens/promptlens/pkg/models"
)

// Trace is the model entity for the Trace schema.
type Trace struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// HTTPTraceID holds the value of the "http_trace_id" field.
	HTTPTraceID *string `json:"http_trace_id,omitempty"`
	// Model holds the value of the "model" field.
	Model string `json:"model,omitempty"`
	// Application call site, from SDK metadata
	Path *string `json:"path,omitempty"`
	// Ordered message / tool-call / tool-result items, position dense 0..n-1
	InputItems []models.TraceItem `json:"input_items,omitempty"`
	// OutputItems holds the value of the "output_items" field.
	OutputItems []models.TraceItem `json:"output_items,omitempty"`
	// Tools holds the value of the "tools" field.
	Tools []models.ToolDefinition `json:"tools,omitempty"`
	// ResponseSchema holds the value of the "response_schema" field.
	ResponseSchema map[string]interface{} `json:"response_schema,omitempty"`
	// Temperature holds the value of the "temperature" field.
	Temperature *float64 `json:"temperature,omitempty"`
	// MaxTokens holds the value of the "max_tokens" field.
	MaxTokens *int `json:"max_tokens,omitempty"`
	// FinishReason holds the value of the "finish_reason" field.
	FinishReason *string `json:"finish_reason,omitempty"`
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
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt time.Time `json:"completed_at,omitempty"`
	// Parser or provider failure; null = clean decode
	Error *string `json:"error,omitempty"`
	// ImplementationID holds the value of the "implementation_id" field.
	ImplementationID *string `json:"implementation_id,omitempty"`
	// PromptVariables holds the value of the "prompt_variables" field.
	PromptVariables map[string]string `json:"prompt_variables,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TraceQuery when eager-loading is set.
	Edges        TraceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TraceEdges holds the relations/edges for other nodes in the graph.
type TraceEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// HTTPTrace holds the value of the http_trace edge.
	HTTPTrace *HTTPTrace `json:"http_trace,omitempty"`
	// Implementation holds the value of the implementation edge.
	Implementation *Implementation `json:"implementation,omitempty"`
	// Grades holds the value of the grades edge.
	Grades []*Grade `json:"grades,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TraceEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// HTTPTraceOrErr returns the HTTPTrace value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TraceEdges) HTTPTraceOrErr() (*HTTPTrace, error) {
	if e.HTTPTrace != nil {
		return e.HTTPTrace, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: httptrace.Label}
	}
	return nil, &NotLoadedError{edge: "http_trace"}
}

// ImplementationOrErr returns the Implementation value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TraceEdges) ImplementationOrErr() (*Implementation, error) {
	if e.Implementation != nil {
		return e.Implementation, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: implementation.Label}
	}
	return nil, &NotLoadedError{edge: "implementation"}
}

// GradesOrErr returns the Grades value or an error if the edge
// was not loaded in eager-loading.
func (e TraceEdges) GradesOrErr() ([]*Grade, error) {
	if e.loadedTypes[3] {
		return e.Grades, nil
	}
	return nil, &NotLoadedError{edge: "grades"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Trace) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case trace.FieldInputItems, trace.FieldOutputItems, trace.FieldTools, trace.FieldResponseSchema, trace.FieldPromptVariables:
			values[i] = new([]byte)
		case trace.FieldTemperature:
			values[i] = new(sql.NullFloat64)
		case trace.FieldMaxTokens, trace.FieldPromptTokens, trace.FieldCompletionTokens, trace.FieldCachedTokens, trace.FieldReasoningTokens, trace.FieldTotalTokens:
			values[i] = new(sql.NullInt64)
		case trace.FieldID, trace.FieldProjectID, trace.FieldHTTPTraceID, trace.FieldModel, trace.FieldPath, trace.FieldFinishReason, trace.FieldSystemFingerprint, trace.FieldError, trace.FieldImplementationID:
			values[i] = new(sql.NullString)
		case trace.FieldStartedAt, trace.FieldCompletedAt, trace.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Trace fields.
func (_m *Trace) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case trace.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case trace.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case trace.FieldHTTPTraceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field http_trace_id", values[i])
			} else if value.Valid {
				_m.HTTPTraceID = new(string)
				*_m.HTTPTraceID = value.String
			}
		case trace.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case trace.FieldPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field path", values[i])
			} else if value.Valid {
				_m.Path = new(string)
				*_m.Path = value.String
			}
		case trace.FieldInputItems:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field input_items", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.InputItems); err != nil {
					return fmt.Errorf("unmarshal field input_items: %w", err)
				}
			}
		case trace.FieldOutputItems:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field output_items", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.OutputItems); err != nil {
					return fmt.Errorf("unmarshal field output_items: %w", err)
				}
			}
		case trace.FieldTools:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tools", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Tools); err != nil {
					return fmt.Errorf("unmarshal field tools: %w", err)
				}
			}
		case trace.FieldResponseSchema:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field response_schema", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ResponseSchema); err != nil {
					return fmt.Errorf("unmarshal field response_schema: %w", err)
				}
			}
		case trace.FieldTemperature:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field temperature", values[i])
			} else if value.Valid {
				_m.Temperature = new(float64)
				*_m.Temperature = value.Float64
			}
		case trace.FieldMaxTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_tokens", values[i])
			} else if value.Valid {
				_m.MaxTokens = new(int)
				*_m.MaxTokens = int(value.Int64)
			}
		case trace.FieldFinishReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field finish_reason", values[i])
			} else if value.Valid {
				_m.FinishReason = new(string)
				*_m.FinishReason = value.String
			}
		case trace.FieldPromptTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_tokens", values[i])
			} else if value.Valid {
				_m.PromptTokens = int(value.Int64)
			}
		case trace.FieldCompletionTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completion_tokens", values[i])
			} else if value.Valid {
				_m.CompletionTokens = int(value.Int64)
			}
		case trace.FieldCachedTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field cached_tokens", values[i])
			} else if value.Valid {
				_m.CachedTokens = int(value.Int64)
			}
		case trace.FieldReasoningTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reasoning_tokens", values[i])
			} else if value.Valid {
				_m.ReasoningTokens = int(value.Int64)
			}
		case trace.FieldTotalTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_tokens", values[i])
			} else if value.Valid {
				_m.TotalTokens = int(value.Int64)
			}
		case trace.FieldSystemFingerprint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field system_fingerprint", values[i])
			} else if value.Valid {
				_m.SystemFingerprint = new(string)
				*_m.SystemFingerprint = value.String
			}
		case trace.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case trace.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = value.Time
			}
		case trace.FieldError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error", values[i])
			} else if value.Valid {
				_m.Error = new(string)
				*_m.Error = value.String
			}
		case trace.FieldImplementationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field implementation_id", values[i])
			} else if value.Valid {
				_m.ImplementationID = new(string)
				*_m.ImplementationID = value.String
			}
		case trace.FieldPromptVariables:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_variables", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PromptVariables); err != nil {
					return fmt.Errorf("unmarshal field prompt_variables: %w", err)
				}
			}
		case trace.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Trace.
// This includes values selected through modifiers, order, etc.
func (_m *Trace) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the Trace entity.
func (_m *Trace) QueryProject() *ProjectQuery {
	return NewTraceClient(_m.config).QueryProject(_m)
}

// QueryHTTPTrace queries the "http_trace" edge of the Trace entity.
func (_m *Trace) QueryHTTPTrace() *HTTPTraceQuery {
	return NewTraceClient(_m.config).QueryHTTPTrace(_m)
}

// QueryImplementation queries the "implementation" edge of the Trace entity.
func (_m *Trace) QueryImplementation() *ImplementationQuery {
	return NewTraceClient(_m.config).QueryImplementation(_m)
}

// QueryGrades queries the "grades" edge of the Trace entity.
func (_m *Trace) QueryGrades() *GradeQuery {
	return NewTraceClient(_m.config).QueryGrades(_m)
}

// Update returns a builder for updating this Trace.
// Note that you need to call Trace.Unwrap() before calling this method if this Trace
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Trace) Update() *TraceUpdateOne {
	return NewTraceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Trace entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Trace) Unwrap() *Trace {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Trace is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Trace) String() string {
	var builder strings.Builder
	builder.WriteString("Trace(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	if v := _m.HTTPTraceID; v != nil {
		builder.WriteString("http_trace_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteString(", ")
	if v := _m.Path; v != nil {
		builder.WriteString("path=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("input_items=")
	builder.WriteString(fmt.Sprintf("%v", _m.InputItems))
	builder.WriteString(", ")
	builder.WriteString("output_items=")
	builder.WriteString(fmt.Sprintf("%v", _m.OutputItems))
	builder.WriteString(", ")
	builder.WriteString("tools=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tools))
	builder.WriteString(", ")
	builder.WriteString("response_schema=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResponseSchema))
	builder.WriteString(", ")
	if v := _m.Temperature; v != nil {
		builder.WriteString("temperature=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.MaxTokens; v != nil {
		builder.WriteString("max_tokens=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.FinishReason; v != nil {
		builder.WriteString("finish_reason=")
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
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("completed_at=")
	builder.WriteString(_m.CompletedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.Error; v != nil {
		builder.WriteString("error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ImplementationID; v != nil {
		builder.WriteString("implementation_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("prompt_variables=")
	builder.WriteString(fmt.Sprintf("%v", _m.PromptVariables))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Traces is a parsable slice of Trace.
type Traces []*Trace
