package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Grader holds the schema definition for the Grader entity: an LLM-driven
// scoring function. The prompt carries a {{context}} placeholder that is
// replaced with the flattened grading target.
type Grader struct {
	ent.Schema
}

// Fields of the Grader.
func (Grader) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.String("name"),
		field.Text("prompt"),
		field.Enum("score_type").
			Values("float", "boolean"),
		field.String("model"),
		field.Float("temperature").
			Optional().
			Nillable(),
		field.JSON("reasoning", map[string]interface{}{}).
			Optional(),
		field.JSON("response_schema", map[string]interface{}{}).
			Optional(),
		field.Int("max_output_tokens"),
		field.Bool("is_active").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Grader.
func (Grader) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("graders").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
		edge.To("grades", Grade.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Grader.
func (Grader) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "is_active"),
	}
}
