package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Evaluation holds the schema definition for the Evaluation entity: a batch
// run of one implementation over all task test cases. Status machine:
// running → completed | failed; terminal states are final.
type Evaluation struct {
	ent.Schema
}

// Fields of the Evaluation.
func (Evaluation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.String("implementation_id").
			Immutable(),
		field.Enum("status").
			Values("running", "completed", "failed").
			Default("running"),
		field.JSON("grader_scores", map[string]float64{}).
			Optional().
			Comment("grader_id → mean score over test cases"),
		field.Float("quality_score").
			Optional().
			Nillable(),
		field.Float("avg_cost").
			Optional().
			Nillable(),
		field.Float("avg_execution_time_ms").
			Optional().
			Nillable(),
		field.Int("test_case_count").
			Default(0),
		field.String("error").
			Optional().
			Nillable(),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Evaluation.
func (Evaluation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("evaluations").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
		edge.From("implementation", Implementation.Type).
			Ref("evaluations").
			Field("implementation_id").
			Unique().
			Required().
			Immutable(),
		edge.To("execution_results", ExecutionResult.Type),
	}
}

// Indexes of the Evaluation.
func (Evaluation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "started_at"),
		index.Fields("implementation_id", "status"),
	}
}
