// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/promptlens/promptlens/ent/grader"
	"github.com/promptlens/promptlens/ent/project"
)

// Grader is the model entity for the Grader schema.
type Grader struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Prompt holds the value of the "prompt" field.
	Prompt string `json:"prompt,omitempty"`
	// ScoreType holds the value of the "score_type" field.
	ScoreType grader.ScoreType `json:"score_type,omitempty"`
	// Model holds the value of the "model" field.
	Model string `json:"model,omitempty"`
	// Temperature holds the value of the "temperature" field.
	Temperature *float64 `json:"temperature,omitempty"`
	// Reasoning holds the value of the "reasoning" field.
	Reasoning map[string]interface{} `json:"reasoning,omitempty"`
	// ResponseSchema holds the value of the "response_schema" field.
	ResponseSchema map[string]interface{} `json:"response_schema,omitempty"`
	// MaxOutputTokens holds the value of the "max_output_tokens" field.
	MaxOutputTokens int `json:"max_output_tokens,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the GraderQuery when eager-loading is set.
	Edges        GraderEdges `json:"edges"`
	selectValues sql.SelectValues
}

// GraderEdges holds the relations/edges for other nodes in the graph.
type GraderEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// Grades holds the value of the grades edge.
	Grades []*Grade `json:"grades,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e GraderEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// GradesOrErr returns the Grades value or an error if the edge
// was not loaded in eager-loading.
func (e GraderEdges) GradesOrErr() ([]*Grade, error) {
	if e.loadedTypes[1] {
		return e.Grades, nil
	}
	return nil, &NotLoadedError{edge: "grades"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Grader) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case grader.FieldReasoning, grader.FieldResponseSchema:
			values[i] = new([]byte)
		case grader.FieldIsActive:
			values[i] = new(sql.NullBool)
		case grader.FieldTemperature:
			values[i] = new(sql.NullFloat64)
		case grader.FieldMaxOutputTokens:
			values[i] = new(sql.NullInt64)
		case grader.FieldID, grader.FieldProjectID, grader.FieldName, grader.FieldPrompt, grader.FieldScoreType, grader.FieldModel:
			values[i] = new(sql.NullString)
		case grader.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Grader fields.
func (_m *Grader) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case grader.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case grader.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case grader.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case grader.FieldPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt", values[i])
			} else if value.Valid {
				_m.Prompt = value.String
			}
		case grader.FieldScoreType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field score_type", values[i])
			} else if value.Valid {
				_m.ScoreType = grader.ScoreType(value.String)
			}
		case grader.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case grader.FieldTemperature:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field temperature", values[i])
			} else if value.Valid {
				_m.Temperature = new(float64)
				*_m.Temperature = value.Float64
			}
		case grader.FieldReasoning:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field reasoning", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Reasoning); err != nil {
					return fmt.Errorf("unmarshal field reasoning: %w", err)
				}
			}
		case grader.FieldResponseSchema:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field response_schema", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ResponseSchema); err != nil {
					return fmt.Errorf("unmarshal field response_schema: %w", err)
				}
			}
		case grader.FieldMaxOutputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_output_tokens", values[i])
			} else if value.Valid {
				_m.MaxOutputTokens = int(value.Int64)
			}
		case grader.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case grader.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Grader.
// This includes values selected through modifiers, order, etc.
func (_m *Grader) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the Grader entity.
func (_m *Grader) QueryProject() *ProjectQuery {
	return NewGraderClient(_m.config).QueryProject(_m)
}

// QueryGrades queries the "grades" edge of the Grader entity.
func (_m *Grader) QueryGrades() *GradeQuery {
	return NewGraderClient(_m.config).QueryGrades(_m)
}

// Update returns a builder for updating this Grader.
// Note that you need to call Grader.Unwrap() before calling this method if this Grader
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Grader) Update() *GraderUpdateOne {
	return NewGraderClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Grader entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Grader) Unwrap() *Grader {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Grader is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Grader) String() string {
	var builder strings.Builder
	builder.WriteString("Grader(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("prompt=")
	builder.WriteString(_m.Prompt)
	builder.WriteString(", ")
	builder.WriteString("score_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScoreType))
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
	builder.WriteString("response_schema=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResponseSchema))
	builder.WriteString(", ")
	builder.WriteString("max_output_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxOutputTokens))
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Graders is a parsable slice of Grader.
type Graders []*Grader
