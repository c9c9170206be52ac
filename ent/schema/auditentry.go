package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditEntry holds the schema definition for the AuditEntry entity.
// Pure append-only log of domain events and screenshot metadata.
// No decision anywhere in the system reads audit content.
type AuditEntry struct {
	ent.Schema
}

// Fields of the AuditEntry.
func (AuditEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("log_id").
			Unique().
			Immutable(),
		field.String("domain").
			Immutable().
			Comment("Owning subsystem, e.g. dispatch, agents, accounts, risk"),
		field.String("event_type").
			Immutable(),
		field.String("entity_type").
			Immutable(),
		field.String("entity_id").
			Immutable(),
		field.Enum("actor_type").
			Values("USER", "AGENT", "SYSTEM").
			Immutable(),
		field.String("actor_id").
			Optional().
			Immutable(),
		field.JSON("payload", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the AuditEntry.
func (AuditEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("entity_type", "entity_id"),
		index.Fields("domain", "created_at"),
		index.Fields("event_type"),
	}
}
