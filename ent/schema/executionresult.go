package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/promptlens/promptlens/pkg/models"
)

// ExecutionResult holds the schema definition for the ExecutionResult entity:
// a single LLM invocation of an implementation, either ad hoc or as part of
// an evaluation batch.
type ExecutionResult struct {
	ent.Schema
}

// Fields of the ExecutionResult.
func (ExecutionResult) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.String("implementation_id").
			Immutable(),
		field.String("evaluation_id").
			Optional().
			Nillable(),
		field.String("test_case_id").
			Optional().
			Nillable(),
		field.Time("started_at"),
		field.Time("completed_at"),
		field.Text("prompt_rendered"),
		field.JSON("variables", map[string]string{}).
			Optional(),
		field.Text("result_text").
			Optional().
			Nillable(),
		field.JSON("result_json", map[string]interface{}{}).
			Optional(),
		field.JSON("tool_calls", []models.ToolCall{}).
			Optional(),
		field.String("error").
			Optional().
			Nillable(),
		field.Int("prompt_tokens").
			Default(0),
		field.Int("completion_tokens").
			Default(0),
		field.Int("cached_tokens").
			Default(0),
		field.Int("reasoning_tokens").
			Default(0),
		field.Int("total_tokens").
			Default(0),
		field.String("system_fingerprint").
			Optional().
			Nillable(),
		field.Float("cost").
			Optional().
			Nillable().
			Comment("USD, from the pricing table; null for unknown models"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ExecutionResult.
func (ExecutionResult) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("execution_results").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
		edge.From("implementation", Implementation.Type).
			Ref("execution_results").
			Field("implementation_id").
			Unique().
			Required().
			Immutable(),
		edge.From("evaluation", Evaluation.Type).
			Ref("execution_results").
			Field("evaluation_id").
			Unique(),
		edge.From("test_case", TestCase.Type).
			Ref("execution_results").
			Field("test_case_id").
			Unique(),
		edge.To("grades", Grade.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the ExecutionResult.
func (ExecutionResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "created_at"),
		index.Fields("implementation_id"),
		index.Fields("evaluation_id"),
	}
}
