package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Grade holds the schema definition for the Grade entity: one grader verdict
// over exactly one target. The trace_id XOR execution_result_id invariant is
// enforced by a CHECK constraint (pkg/database.CreateCheckConstraints) and
// validated again at the service layer. Immutable after write.
type Grade struct {
	ent.Schema
}

// Fields of the Grade.
func (Grade) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("grader_id").
			Immutable(),
		field.String("trace_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("execution_result_id").
			Optional().
			Nillable().
			Immutable(),
		field.Float("score_float").
			Optional().
			Nillable(),
		field.Bool("score_boolean").
			Optional().
			Nillable(),
		field.Text("reasoning").
			Optional().
			Nillable(),
		field.Float("confidence").
			Optional().
			Nillable(),
		field.Int("prompt_tokens").
			Optional().
			Nillable(),
		field.Int("completion_tokens").
			Optional().
			Nillable(),
		field.Int("total_tokens").
			Optional().
			Nillable(),
		field.Time("grading_started_at"),
		field.Time("grading_completed_at"),
		field.String("error").
			Optional().
			Nillable().
			Comment("Render or provider failure; score fields null when set"),
	}
}

// Edges of the Grade.
func (Grade) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("grader", Grader.Type).
			Ref("grades").
			Field("grader_id").
			Unique().
			Required().
			Immutable(),
		edge.From("trace", Trace.Type).
			Ref("grades").
			Field("trace_id").
			Unique().
			Immutable(),
		edge.From("execution_result", ExecutionResult.Type).
			Ref("grades").
			Field("execution_result_id").
			Unique().
			Immutable(),
	}
}

// Indexes of the Grade.
func (Grade) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("grader_id", "grading_started_at"),
		index.Fields("trace_id"),
		index.Fields("execution_result_id"),
	}
}
