// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/promptlens/promptlens/ent/executionresult"
	"github.com/promptlens/promptlens/ent/grade"
	"github.com/promptlens/promptlens/ent/grader"
	"github.com/promptlens/promptlens/ent/trace"
)

// Grade is the model entity for the Grade schema.
type Grade struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// GraderID holds the value of the "grader_id" field.
	GraderID string `json:"grader_id,omitempty"`
	// TraceID holds the value of the "trace_id" field.
	TraceID *string `json:"trace_id,omitempty"`
	// ExecutionResultID holds the value of the "execution_result_id" field.
	ExecutionResultID *string `json:"execution_result_id,omitempty"`
	// ScoreFloat holds the value of the "score_float" field.
	ScoreFloat *float64 `json:"score_float,omitempty"`
	// ScoreBoolean holds the value of the "score_boolean" field.
	ScoreBoolean *bool `json:"score_boolean,omitempty"`
	// Reasoning holds the value of the "reasoning" field.
	Reasoning *string `json:"reasoning,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence *float64 `json:"confidence,omitempty"`
	// PromptTokens holds the value of the "prompt_tokens" field.
	PromptTokens *int `json:"prompt_tokens,omitempty"`
	// CompletionTokens holds the value of the "completion_tokens" field.
	CompletionTokens *int `json:"completion_tokens,omitempty"`
	// TotalTokens holds the value of the "total_tokens" field.
	TotalTokens *int `json:"total_tokens,omitempty"`
	// GradingStartedAt holds the value of the "grading_started_at" field.
	GradingStartedAt time.Time `json:"grading_started_at,omitempty"`
	// GradingCompletedAt holds the value of the "grading_completed_at" field.
	GradingCompletedAt time.Time `json:"grading_completed_at,omitempty"`
	// Render or provider failure; score fields null when set
	Error *string `json:"error,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the GradeQuery when eager-loading is set.
	Edges        GradeEdges `json:"edges"`
	selectValues sql.SelectValues
}

// GradeEdges holds the relations/edges for other nodes in the graph.
type GradeEdges struct {
	// Grader holds the value of the grader edge.
	Grader *Grader `json:"grader,omitempty"`
	// Trace holds the value of the trace edge.
	Trace *Trace `json:"trace,omitempty"`
	// ExecutionResult holds the value of the execution_result edge.
	ExecutionResult *ExecutionResult `json:"execution_result,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// GraderOrErr returns the Grader value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e GradeEdges) GraderOrErr() (*Grader, error) {
	if e.Grader != nil {
		return e.Grader, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: grader.Label}
	}
	return nil, &NotLoadedError{edge: "grader"}
}

// TraceOrErr returns the Trace value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e GradeEdges) TraceOrErr() (*Trace, error) {
	if e.Trace != nil {
		return e.Trace, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: trace.Label}
	}
	return nil, &NotLoadedError{edge: "trace"}
}

// ExecutionResultOrErr returns the ExecutionResult value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e GradeEdges) ExecutionResultOrErr() (*ExecutionResult, error) {
	if e.ExecutionResult != nil {
		return e.ExecutionResult, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: executionresult.Label}
	}
	return nil, &NotLoadedError{edge: "execution_result"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Grade) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case grade.FieldScoreBoolean:
			values[i] = new(sql.NullBool)
		case grade.FieldScoreFloat, grade.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case grade.FieldPromptTokens, grade.FieldCompletionTokens, grade.FieldTotalTokens:
			values[i] = new(sql.NullInt64)
		case grade.FieldID, grade.FieldGraderID, grade.FieldTraceID, grade.FieldExecutionResultID, grade.FieldReasoning, grade.FieldError:
			values[i] = new(sql.NullString)
		case grade.FieldGradingStartedAt, grade.FieldGradingCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Grade fields.
func (_m *Grade) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case grade.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case grade.FieldGraderID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field grader_id", values[i])
			} else if value.Valid {
				_m.GraderID = value.String
			}
		case grade.FieldTraceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trace_id", values[i])
			} else if value.Valid {
				_m.TraceID = new(string)
				*_m.TraceID = value.String
			}
		case grade.FieldExecutionResultID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field execution_result_id", values[i])
			} else if value.Valid {
				_m.ExecutionResultID = new(string)
				*_m.ExecutionResultID = value.String
			}
		case grade.FieldScoreFloat:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score_float", values[i])
			} else if value.Valid {
				_m.ScoreFloat = new(float64)
				*_m.ScoreFloat = value.Float64
			}
		case grade.FieldScoreBoolean:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field score_boolean", values[i])
			} else if value.Valid {
				_m.ScoreBoolean = new(bool)
				*_m.ScoreBoolean = value.Bool
			}
		case grade.FieldReasoning:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reasoning", values[i])
			} else if value.Valid {
				_m.Reasoning = new(string)
				*_m.Reasoning = value.String
			}
		case grade.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = new(float64)
				*_m.Confidence = value.Float64
			}
		case grade.FieldPromptTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_tokens", values[i])
			} else if value.Valid {
				_m.PromptTokens = new(int)
				*_m.PromptTokens = int(value.Int64)
			}
		case grade.FieldCompletionTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completion_tokens", values[i])
			} else if value.Valid {
				_m.CompletionTokens = new(int)
				*_m.CompletionTokens = int(value.Int64)
			}
		case grade.FieldTotalTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_tokens", values[i])
			} else if value.Valid {
				_m.TotalTokens = new(int)
				*_m.TotalTokens = int(value.Int64)
			}
		case grade.FieldGradingStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field grading_started_at", values[i])
			} else if value.Valid {
				_m.GradingStartedAt = value.Time
			}
		case grade.FieldGradingCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field grading_completed_at", values[i])
			} else if value.Valid {
				_m.GradingCompletedAt = value.Time
			}
		case grade.FieldError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error", values[i])
			} else if value.Valid {
				_m.Error = new(string)
				*_m.Error = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Grade.
// This includes values selected through modifiers, order, etc.
func (_m *Grade) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryGrader queries the "grader" edge of the Grade entity.
func (_m *Grade) QueryGrader() *GraderQuery {
	return NewGradeClient(_m.config).QueryGrader(_m)
}

// QueryTrace queries the "trace" edge of the Grade entity.
func (_m *Grade) QueryTrace() *TraceQuery {
	return NewGradeClient(_m.config).QueryTrace(_m)
}

// QueryExecutionResult queries the "execution_result" edge of the Grade entity.
func (_m *Grade) QueryExecutionResult() *ExecutionResultQuery {
	return NewGradeClient(_m.config).QueryExecutionResult(_m)
}

// Update returns a builder for updating this Grade.
// Note that you need to call Grade.Unwrap() before calling this method if this Grade
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Grade) Update() *GradeUpdateOne {
	return NewGradeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Grade entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Grade) Unwrap() *Grade {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Grade is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Grade) String() string {
	var builder strings.Builder
	builder.WriteString("Grade(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("grader_id=")
	builder.WriteString(_m.GraderID)
	builder.WriteString(", ")
	if v := _m.TraceID; v != nil {
		builder.WriteString("trace_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ExecutionResultID; v != nil {
		builder.WriteString("execution_result_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ScoreFloat; v != nil {
		builder.WriteString("score_float=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ScoreBoolean; v != nil {
		builder.WriteString("score_boolean=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Reasoning; v != nil {
		builder.WriteString("reasoning=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Confidence; v != nil {
		builder.WriteString("confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PromptTokens; v != nil {
		builder.WriteString("prompt_tokens=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CompletionTokens; v != nil {
		builder.WriteString("completion_tokens=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TotalTokens; v != nil {
		builder.WriteString("total_tokens=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("grading_started_at=")
	builder.WriteString(_m.GradingStartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("grading_completed_at=")
	builder.WriteString(_m.GradingCompletedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.Error; v != nil {
		builder.WriteString("error=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// Grades is a parsable slice of Grade.
type Grades []*Grade
