package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// JobResult holds the schema definition for the JobResult entity.
// At most one result per job (unique job_id). Inserting the result and
// finalizing the job share one transaction; a result row existing implies
// the job is terminal.
type JobResult struct {
	ent.Schema
}

// Fields of the JobResult.
func (JobResult) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("result_id").
			Unique().
			Immutable(),
		field.String("job_id").
			Unique().
			Immutable(),
		field.String("agent_id").
			Immutable(),
		field.Enum("status").
			Values("SUCCESS", "FAILED", "SKIPPED").
			Immutable(),
		field.Enum("observed_state").
			Values("CONNECTED", "PENDING", "NONE").
			Optional().
			Nillable().
			Immutable().
			Comment("Factual platform state observed by the agent, when applicable"),
		field.Enum("failure_reason").
			Values("UI_CHANGED", "TIMEOUT", "SESSION_EXPIRED", "UNKNOWN").
			Optional().
			Nillable().
			Immutable(),
		field.Time("completed_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the JobResult.
func (JobResult) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", Job.Type).
			Ref("result").
			Field("job_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the JobResult.
func (JobResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_id"),
	}
}
