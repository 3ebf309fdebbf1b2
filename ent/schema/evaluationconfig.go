package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// EvaluationConfig holds the schema definition for the EvaluationConfig
// entity: per-task score weights and grader selection. Weights must sum to
// 1.0 (±0.01), validated at the service layer.
type EvaluationConfig struct {
	ent.Schema
}

// Fields of the EvaluationConfig.
func (EvaluationConfig) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("task_id").
			Unique().
			Immutable(),
		field.Float("quality_weight"),
		field.Float("cost_weight"),
		field.Float("time_weight"),
		field.JSON("grader_ids", []string{}),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the EvaluationConfig.
func (EvaluationConfig) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("evaluation_config").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}
