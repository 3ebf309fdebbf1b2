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
	"github.com/promptlens/promptlens/ent/task"
)

// EvaluationConfig is the model entity for the EvaluationConfig schema.
type EvaluationConfig struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// QualityWeight holds the value of the "quality_weight" field.
	QualityWeight float64 `json:"quality_weight,omitempty"`
	// CostWeight holds the value of the "cost_weight" field.
	CostWeight float64 `json:"cost_weight,omitempty"`
	// TimeWeight holds the value of the "time_weight" field.
	TimeWeight float64 `json:"time_weight,omitempty"`
	// GraderIds holds the value of the "grader_ids" field.
	GraderIds []string `json:"grader_ids,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EvaluationConfigQuery when eager-loading is set.
	Edges        EvaluationConfigEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EvaluationConfigEdges holds the relations/edges for other nodes in the graph.
type EvaluationConfigEdges struct {
	// Task holds the value of the task edge.
	Task *Task `json:"task,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TaskOrErr returns the Task value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EvaluationConfigEdges) TaskOrErr() (*Task, error) {
	if e.Task != nil {
		return e.Task, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: task.Label}
	}
	return nil, &NotLoadedError{edge: "task"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EvaluationConfig) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case evaluationconfig.FieldGraderIds:
			values[i] = new([]byte)
		case evaluationconfig.FieldQualityWeight, evaluationconfig.FieldCostWeight, evaluationconfig.FieldTimeWeight:
			values[i] = new(sql.NullFloat64)
		case evaluationconfig.FieldID, evaluationconfig.FieldTaskID:
			values[i] = new(sql.NullString)
		case evaluationconfig.FieldCreatedAt, evaluationconfig.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EvaluationConfig fields.
func (_m *EvaluationConfig) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case evaluationconfig.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case evaluationconfig.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case evaluationconfig.FieldQualityWeight:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field quality_weight", values[i])
			} else if value.Valid {
				_m.QualityWeight = value.Float64
			}
		case evaluationconfig.FieldCostWeight:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cost_weight", values[i])
			} else if value.Valid {
				_m.CostWeight = value.Float64
			}
		case evaluationconfig.FieldTimeWeight:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field time_weight", values[i])
			} else if value.Valid {
				_m.TimeWeight = value.Float64
			}
		case evaluationconfig.FieldGraderIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field grader_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.GraderIds); err != nil {
					return fmt.Errorf("unmarshal field grader_ids: %w", err)
				}
			}
		case evaluationconfig.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case evaluationconfig.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EvaluationConfig.
// This includes values selected through modifiers, order, etc.
func (_m *EvaluationConfig) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTask queries the "task" edge of the EvaluationConfig entity.
func (_m *EvaluationConfig) QueryTask() *TaskQuery {
	return NewEvaluationConfigClient(_m.config).QueryTask(_m)
}

// Update returns a builder for updating this EvaluationConfig.
// Note that you need to call EvaluationConfig.Unwrap() before calling this method if this EvaluationConfig
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EvaluationConfig) Update() *EvaluationConfigUpdateOne {
	return NewEvaluationConfigClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EvaluationConfig entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EvaluationConfig) Unwrap() *EvaluationConfig {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EvaluationConfig is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EvaluationConfig) String() string {
	var builder strings.Builder
	builder.WriteString("EvaluationConfig(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	builder.WriteString("quality_weight=")
	builder.WriteString(fmt.Sprintf("%v", _m.QualityWeight))
	builder.WriteString(", ")
	builder.WriteString("cost_weight=")
	builder.WriteString(fmt.Sprintf("%v", _m.CostWeight))
	builder.WriteString(", ")
	builder.WriteString("time_weight=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeWeight))
	builder.WriteString(", ")
	builder.WriteString("grader_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.GraderIds))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EvaluationConfigs is a parsable slice of EvaluationConfig.
type EvaluationConfigs []*EvaluationConfig
