package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity: a logical unit of
// "what the app asks the LLM to do". Deleting a task cascades to its
// implementations, test cases, evaluations and config.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.String("name"),
		field.Text("description").
			Default(""),
		field.String("path").
			Optional().
			Nillable().
			Comment("Application call site this task was clustered from"),
		field.String("production_version_id").
			Optional().
			Nillable(),
		field.JSON("response_schema", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("tasks").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
		edge.To("implementations", Implementation.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("test_cases", TestCase.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("evaluations", Evaluation.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("evaluation_config", EvaluationConfig.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("target_metrics", TargetTaskMetrics.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("execution_results", ExecutionResult.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("production_version", Implementation.Type).
			Field("production_version_id").
			Unique(),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "path"),
		index.Fields("project_id", "name"),
	}
}
