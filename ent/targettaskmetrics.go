// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/promptlens/promptlens/ent/targettaskmetrics"
	"github.com/promptlens/promptlens/ent/task"
)

// TargetTaskMetrics is the model entity for the TargetTaskMetrics schema.
type TargetTaskMetrics struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// BestCost holds the value of the "best_cost" field.
	BestCost *float64 `json:"best_cost,omitempty"`
	// BestTimeMs holds the value of the "best_time_ms" field.
	BestTimeMs *float64 `json:"best_time_ms,omitempty"`
	// LastUpdatedAt holds the value of the "last_updated_at" field.
	LastUpdatedAt time.Time `json:"last_updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TargetTaskMetricsQuery when eager-loading is set.
	Edges        TargetTaskMetricsEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TargetTaskMetricsEdges holds the relations/edges for other nodes in the graph.
type TargetTaskMetricsEdges struct {
	// Task holds the value of the task edge.
	Task *Task `json:"task,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TaskOrErr returns the Task value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TargetTaskMetricsEdges) TaskOrErr() (*Task, error) {
	if e.Task != nil {
		return e.Task, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: task.Label}
	}
	return nil, &NotLoadedError{edge: "task"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TargetTaskMetrics) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case targettaskmetrics.FieldBestCost, targettaskmetrics.FieldBestTimeMs:
			values[i] = new(sql.NullFloat64)
		case targettaskmetrics.FieldID, targettaskmetrics.FieldTaskID:
			values[i] = new(sql.NullString)
		case targettaskmetrics.FieldLastUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TargetTaskMetrics fields.
func (_m *TargetTaskMetrics) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case targettaskmetrics.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case targettaskmetrics.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case targettaskmetrics.FieldBestCost:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field best_cost", values[i])
			} else if value.Valid {
				_m.BestCost = new(float64)
				*_m.BestCost = value.Float64
			}
		case targettaskmetrics.FieldBestTimeMs:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field best_time_ms", values[i])
			} else if value.Valid {
				_m.BestTimeMs = new(float64)
				*_m.BestTimeMs = value.Float64
			}
		case targettaskmetrics.FieldLastUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_updated_at", values[i])
			} else if value.Valid {
				_m.LastUpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TargetTaskMetrics.
// This includes values selected through modifiers, order, etc.
func (_m *TargetTaskMetrics) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTask queries the "task" edge of the TargetTaskMetrics entity.
func (_m *TargetTaskMetrics) QueryTask() *TaskQuery {
	return NewTargetTaskMetricsClient(_m.config).QueryTask(_m)
}

// Update returns a builder for updating this TargetTaskMetrics.
// Note that you need to call TargetTaskMetrics.Unwrap() before calling this method if this TargetTaskMetrics
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TargetTaskMetrics) Update() *TargetTaskMetricsUpdateOne {
	return NewTargetTaskMetricsClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TargetTaskMetrics entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TargetTaskMetrics) Unwrap() *TargetTaskMetrics {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TargetTaskMetrics is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TargetTaskMetrics) String() string {
	var builder strings.Builder
	builder.WriteString("TargetTaskMetrics(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	if v := _m.BestCost; v != nil {
		builder.WriteString("best_cost=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.BestTimeMs; v != nil {
		builder.WriteString("best_time_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("last_updated_at=")
	builder.WriteString(_m.LastUpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TargetTaskMetricsSlice is a parsable slice of TargetTaskMetrics.
type TargetTaskMetricsSlice []*TargetTaskMetrics
