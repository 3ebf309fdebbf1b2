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

// Trace holds the schema definition for the Trace entity: one normalized LLM
// call decoded from an HTTPTrace by a provider parser. Created by ingest,
// patched exactly once by the matcher (implementation_id + prompt_variables).
type Trace struct {
	ent.Schema
}

// Fields of the Trace.
func (Trace) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.String("http_trace_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("model"),
		field.String("path").
			Optional().
			Nillable().
			Comment("Application call site, from SDK metadata"),
		field.JSON("input_items", []models.TraceItem{}).
			Comment("Ordered message / tool-call / tool-result items, position dense 0..n-1"),
		field.JSON("output_items", []models.TraceItem{}).
			Optional(),
		field.JSON("tools", []models.ToolDefinition{}).
			Optional(),
		field.JSON("response_schema", map[string]interface{}{}).
			Optional(),
		field.Float("temperature").
			Optional().
			Nillable(),
		field.Int("max_tokens").
			Optional().
			Nillable(),
		field.String("finish_reason").
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
		field.Time("started_at"),
		field.Time("completed_at"),
		field.String("error").
			Optional().
			Nillable().
			Comment("Parser or provider failure; null = clean decode"),
		field.String("implementation_id").
			Optional().
			Nillable(),
		field.JSON("prompt_variables", map[string]string{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Trace.
func (Trace) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("traces").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
		edge.From("http_trace", HTTPTrace.Type).
			Ref("trace").
			Field("http_trace_id").
			Unique().
			Immutable(),
		edge.From("implementation", Implementation.Type).
			Ref("traces").
			Field("implementation_id").
			Unique(),
		edge.To("grades", Grade.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Trace.
func (Trace) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "created_at"),
		index.Fields("implementation_id"),
		// Clustering group key scans
		index.Fields("project_id", "model"),
	}
}
