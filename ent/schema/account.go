package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Account holds the schema definition for the Account entity.
// One account per user (enforced by the unique user_id). The account
// records session *validity* observed externally; credentials and cookies
// never touch the control plane.
type Account struct {
	ent.Schema
}

// Fields of the Account.
func (Account) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("account_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Unique().
			Immutable(),
		field.String("profile_url"),
		field.String("display_name"),
		field.Enum("validation_status").
			Values("CONNECTED", "EXPIRED", "DISCONNECTED").
			Default("CONNECTED"),
		field.Enum("health_status").
			Values("HEALTHY", "DEGRADED", "SUSPENDED").
			Default("HEALTHY"),
		field.Bool("user_paused").
			Default(false).
			Comment("Explicit control-plane pause; consumed by the risk oracle"),
		field.Time("session_valid_at").
			Optional().
			Nillable().
			Comment("Last time a valid platform session was observed"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Account.
func (Account) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("account").
			Field("user_id").
			Unique().
			Required().
			Immutable(),
		edge.To("agents", Agent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("jobs", Job.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("violations", Violation.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("risk_scores", RiskScore.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Account.
func (Account) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("validation_status"),
		index.Fields("health_status"),
	}
}
