package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentToken holds the schema definition for the AgentToken entity.
// Tokens are stored hashed; the plaintext exists only in the registration
// response. Rotation revokes all prior tokens for the agent in the same
// transaction that inserts the new one.
type AgentToken struct {
	ent.Schema
}

// Fields of the AgentToken.
func (AgentToken) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("token_id").
			Unique().
			Immutable(),
		field.String("agent_id").
			Immutable(),
		field.String("account_id").
			Immutable().
			Comment("Denormalized token scope: the only account this token authorizes"),
		field.String("token_hash").
			Unique().
			Sensitive().
			Immutable().
			Comment("SHA-256 of the 256-bit plaintext token"),
		field.Time("expires_at"),
		field.Time("revoked_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the AgentToken.
func (AgentToken) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("agent", Agent.Type).
			Ref("tokens").
			Field("agent_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the AgentToken.
func (AgentToken) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id"),
		index.Fields("expires_at"),
	}
}
