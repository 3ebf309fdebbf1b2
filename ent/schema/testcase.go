package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TestCase holds the schema definition for the TestCase entity: input
// arguments plus expected output items used during evaluation. Created by
// operators or derived from existing traces.
type TestCase struct {
	ent.Schema
}

// Fields of the TestCase.
func (TestCase) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.Text("description").
			Optional().
			Nillable(),
		field.JSON("arguments", map[string]string{}).
			Comment("Variable bindings fed to the implementation prompt"),
		field.JSON("expected_output", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the TestCase.
func (TestCase) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("test_cases").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
		edge.To("execution_results", ExecutionResult.Type),
	}
}

// Indexes of the TestCase.
func (TestCase) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "created_at"),
	}
}
