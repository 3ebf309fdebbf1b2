package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// HTTPTrace holds the schema definition for the HTTPTrace entity: a verbatim
// captured provider call as submitted by the SDK. Immutable after write.
type HTTPTrace struct {
	ent.Schema
}

// Annotations of the HTTPTrace.
func (HTTPTrace) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "http_traces"},
	}
}

// Fields of the HTTPTrace.
func (HTTPTrace) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.String("url").
			Immutable(),
		field.String("method").
			Immutable(),
		field.Time("started_at").
			Immutable(),
		field.Time("completed_at").
			Immutable(),
		field.Int("status_code").
			Optional().
			Nillable().
			Immutable(),
		field.String("error").
			Optional().
			Nillable().
			Immutable().
			Comment("Transport-level error reported by the SDK"),
		field.Bytes("request").
			Optional().
			Immutable(),
		field.JSON("request_headers", map[string]string{}).
			Optional(),
		field.Bytes("response").
			Optional().
			Immutable(),
		field.JSON("response_headers", map[string]string{}).
			Optional(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("Provider tag, app-supplied project, streaming flag, call path"),
		field.String("dedup_hash").
			Optional().
			Nillable().
			Immutable().
			Comment("Hash over (project, started_at, url, method) for idempotent ingest"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the HTTPTrace.
func (HTTPTrace) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("http_traces").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
		edge.To("trace", Trace.Type).
			Unique(),
	}
}

// Indexes of the HTTPTrace.
func (HTTPTrace) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "created_at"),
		// Dedup hash uniqueness is a partial index (NULL allowed), created
		// via pkg/database.CreatePartialUniqueIndexes.
		index.Fields("dedup_hash"),
	}
}
