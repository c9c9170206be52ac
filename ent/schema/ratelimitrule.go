package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RateLimitRule holds the schema definition for the RateLimitRule entity.
type RateLimitRule struct {
	ent.Schema
}

// Fields of the RateLimitRule.
func (RateLimitRule) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("rule_id").
			Unique().
			Immutable(),
		field.String("action_type").
			Comment("Job type this rule constrains, or * for all"),
		field.Int("max_count"),
		field.Int("window_seconds"),
		field.Bool("is_active").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the RateLimitRule.
func (RateLimitRule) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("violations", Violation.Type).
			Annotations(entsql.OnDelete(entsql.Restrict)),
	}
}

// Indexes of the RateLimitRule.
func (RateLimitRule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("action_type", "is_active"),
	}
}
