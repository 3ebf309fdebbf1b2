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
	"github.com/promptlens/promptlens/ent/project"
	"github.com/promptlens/promptlens/ent/trace"
)

// HTTPTrace is the model entity for the HTTPTrace schema.
type HTTPTrace struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// URL holds the value of the "url" field.
	URL string `json:"url,omitempty"`
	// Method holds the value of the "method" field.
	Method string `json:"method,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt time.Time `json:"completed_at,omitempty"`
	// StatusCode holds the value of the "status_code" field.
	StatusCode *int `json:"status_code,omitempty"`
	// Transport-level error reported by the SDK
	Error *string `json:"error,omitempty"`
	// Request holds the value of the "request" field.
	Request []byte `json:"request,omitempty"`
	// RequestHeaders holds the value of the "request_headers" field.
	RequestHeaders map[string]string `json:"request_headers,omitempty"`
	// Response holds the value of the "response" field.
	Response []byte `json:"response,omitempty"`
	// ResponseHeaders holds the value of the "response_headers" field.
	ResponseHeaders map[string]string `json:"response_headers,omitempty"`
	// Provider tag, app-supplied project, streaming flag, call path
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// Hash over (project, started_at, url, method) for idempotent ingest
	DedupHash *string `json:"dedup_hash,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the HTTPTraceQuery when eager-loading is set.
	Edges        HTTPTraceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// HTTPTraceEdges holds the relations/edges for other nodes in the graph.
type HTTPTraceEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// Trace holds the value of the trace edge.
	Trace *Trace `json:"trace,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e HTTPTraceEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// TraceOrErr returns the Trace value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e HTTPTraceEdges) TraceOrErr() (*Trace, error) {
	if e.Trace != nil {
		return e.Trace, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: trace.Label}
	}
	return nil, &NotLoadedError{edge: "trace"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*HTTPTrace) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case httptrace.FieldRequest, httptrace.FieldRequestHeaders, httptrace.FieldResponse, httptrace.FieldResponseHeaders, httptrace.FieldMetadata:
			values[i] = new([]byte)
		case httptrace.FieldStatusCode:
			values[i] = new(sql.NullInt64)
		case httptrace.FieldID, httptrace.FieldProjectID, httptrace.FieldURL, httptrace.FieldMethod, httptrace.FieldError, httptrace.FieldDedupHash:
			values[i] = new(sql.NullString)
		case httptrace.FieldStartedAt, httptrace.FieldCompletedAt, httptrace.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the HTTPTrace fields.
func (_m *HTTPTrace) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case httptrace.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case httptrace.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case httptrace.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				_m.URL = value.String
			}
		case httptrace.FieldMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field method", values[i])
			} else if value.Valid {
				_m.Method = value.String
			}
		case httptrace.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case httptrace.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = value.Time
			}
		case httptrace.FieldStatusCode:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field status_code", values[i])
			} else if value.Valid {
				_m.StatusCode = new(int)
				*_m.StatusCode = int(value.Int64)
			}
		case httptrace.FieldError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error", values[i])
			} else if value.Valid {
				_m.Error = new(string)
				*_m.Error = value.String
			}
		case httptrace.FieldRequest:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field request", values[i])
			} else if value != nil {
				_m.Request = *value
			}
		case httptrace.FieldRequestHeaders:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field request_headers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RequestHeaders); err != nil {
					return fmt.Errorf("unmarshal field request_headers: %w", err)
				}
			}
		case httptrace.FieldResponse:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field response", values[i])
			} else if value != nil {
				_m.Response = *value
			}
		case httptrace.FieldResponseHeaders:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field response_headers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ResponseHeaders); err != nil {
					return fmt.Errorf("unmarshal field response_headers: %w", err)
				}
			}
		case httptrace.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case httptrace.FieldDedupHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dedup_hash", values[i])
			} else if value.Valid {
				_m.DedupHash = new(string)
				*_m.DedupHash = value.String
			}
		case httptrace.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the HTTPTrace.
// This includes values selected through modifiers, order, etc.
func (_m *HTTPTrace) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the HTTPTrace entity.
func (_m *HTTPTrace) QueryProject() *ProjectQuery {
	return NewHTTPTraceClient(_m.config).QueryProject(_m)
}

// QueryTrace queries the "trace" edge of the HTTPTrace entity.
func (_m *HTTPTrace) QueryTrace() *TraceQuery {
	return NewHTTPTraceClient(_m.config).QueryTrace(_m)
}

// Update returns a builder for updating this HTTPTrace.
// Note that you need to call HTTPTrace.Unwrap() before calling this method if this HTTPTrace
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *HTTPTrace) Update() *HTTPTraceUpdateOne {
	return NewHTTPTraceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the HTTPTrace entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *HTTPTrace) Unwrap() *HTTPTrace {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: HTTPTrace is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *HTTPTrace) String() string {
	var builder strings.Builder
	builder.WriteString("HTTPTrace(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	builder.WriteString("url=")
	builder.WriteString(_m.URL)
	builder.WriteString(", ")
	builder.WriteString("method=")
	builder.WriteString(_m.Method)
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("completed_at=")
	builder.WriteString(_m.CompletedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StatusCode; v != nil {
		builder.WriteString("status_code=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Error; v != nil {
		builder.WriteString("error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("request=")
	builder.WriteString(fmt.Sprintf("%v", _m.Request))
	builder.WriteString(", ")
	builder.WriteString("request_headers=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequestHeaders))
	builder.WriteString(", ")
	builder.WriteString("response=")
	builder.WriteString(fmt.Sprintf("%v", _m.Response))
	builder.WriteString(", ")
	builder.WriteString("response_headers=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResponseHeaders))
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	if v := _m.DedupHash; v != nil {
		builder.WriteString("dedup_hash=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// HTTPTraces is a parsable slice of HTTPTrace.
type HTTPTraces []*HTTPTrace
