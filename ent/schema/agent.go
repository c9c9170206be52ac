package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Agent holds the schema definition for the Agent entity.
// At most one non-terminated agent may exist per account at any time
// (partial unique index, see Indexes).
type Agent struct {
	ent.Schema
}

// Fields of the Agent.
func (Agent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_id").
			Unique().
			Immutable(),
		field.String("account_id").
			Immutable(),
		field.Enum("state").
			Values("REGISTERED", "IDLE", "ACTIVE", "TERMINATED").
			Default("REGISTERED"),
		field.String("agent_version").
			Optional(),
		field.String("platform").
			Optional().
			Comment("Executor platform, e.g. darwin-arm64"),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable(),
		field.Time("registered_at").
			Default(time.Now),
		field.Time("terminated_at").
			Optional().
			Nillable().
			Comment("Set on deregistration; terminated agents never come back"),
	}
}

// Edges of the Agent.
func (Agent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("account", Account.Type).
			Ref("agents").
			Field("account_id").
			Unique().
			Required().
			Immutable(),
		edge.To("tokens", AgentToken.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Agent.
func (Agent) Indexes() []ent.Index {
	return []ent.Index{
		// One live agent per account.
		index.Fields("account_id").
			Unique().
			Annotations(entsql.IndexWhere("terminated_at IS NULL")),
		index.Fields("state"),
	}
}
