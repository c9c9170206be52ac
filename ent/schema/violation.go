package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Violation holds the schema definition for the Violation entity.
// Unresolved violations feed the rolling risk score.
type Violation struct {
	ent.Schema
}

// Fields of the Violation.
func (Violation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("violation_id").
			Unique().
			Immutable(),
		field.String("account_id").
			Immutable(),
		field.String("rule_id").
			Immutable(),
		field.String("job_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("violation_type"),
		field.Enum("severity").
			Values("LOW", "MEDIUM", "HIGH", "CRITICAL"),
		field.Time("detected_at").
			Default(time.Now).
			Immutable(),
		field.Time("resolved_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Violation.
func (Violation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("account", Account.Type).
			Ref("violations").
			Field("account_id").
			Unique().
			Required().
			Immutable(),
		edge.From("rule", RateLimitRule.Type).
			Ref("violations").
			Field("rule_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Violation.
func (Violation) Indexes() []ent.Index {
	return []ent.Index{
		// Risk window scan: unresolved violations per account, newest first.
		index.Fields("account_id", "detected_at"),
	}
}
