package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RiskScore holds the schema definition for the RiskScore entity.
// Append-only history; the latest row per account is authoritative.
type RiskScore struct {
	ent.Schema
}

// Fields of the RiskScore.
func (RiskScore) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("score_id").
			Unique().
			Immutable(),
		field.String("account_id").
			Immutable(),
		field.Float("score").
			Immutable().
			Comment("Clamped to [0,1]"),
		field.Enum("level").
			Values("LOW", "MEDIUM", "HIGH", "CRITICAL").
			Immutable(),
		field.JSON("factors", map[string]interface{}{}).
			Optional().
			Immutable().
			Comment("Diagnostic breakdown of score contributions"),
		field.Time("calculated_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the RiskScore.
func (RiskScore) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("account", Account.Type).
			Ref("risk_scores").
			Field("account_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the RiskScore.
func (RiskScore) Indexes() []ent.Index {
	return []ent.Index{
		// Latest-score lookup.
		index.Fields("account_id", "calculated_at"),
	}
}
