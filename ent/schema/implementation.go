package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/promptlens/promptlens/pkg/models"
)

// Implementation holds the schema definition for the Implementation entity:
// a concrete (prompt template, model, config) realizing a Task. Versions
// follow the "major.minor" convention; temp=true marks ephemeral variants
// created by execution overrides that are hidden from listings.
type Implementation struct {
	ent.Schema
}

// Fields of the Implementation.
func (Implementation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.String("version"),
		field.Text("prompt").
			Comment("Template with {{var}} placeholders"),
		field.String("model"),
		field.Float("temperature").
			Optional().
			Nillable(),
		field.JSON("reasoning", map[string]interface{}{}).
			Optional(),
		field.JSON("tools", []models.ToolDefinition{}).
			Optional(),
		field.String("tool_choice").
			Optional().
			Nillable(),
		field.Int("max_output_tokens"),
		field.JSON("response_schema", map[string]interface{}{}).
			Optional(),
		field.Bool("temp").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Implementation.
func (Implementation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("implementations").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
		edge.To("traces", Trace.Type),
		edge.To("execution_results", ExecutionResult.Type),
		edge.To("evaluations", Evaluation.Type),
	}
}

// Indexes of the Implementation.
func (Implementation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "version"),
		index.Fields("task_id", "temp"),
	}
}
