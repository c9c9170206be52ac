package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Job holds the schema definition for the Job entity.
//
// State machine (monotone, terminal states absorbing):
//
//	PENDING ──assign──► ASSIGNED ──ACTION_STARTED──► EXECUTING ──result──► COMPLETED|FAILED|SKIPPED
//
// assigned_agent_id is set iff state >= ASSIGNED. All transitions out of
// PENDING and ASSIGNED are conditional updates so concurrent pullers and
// reporters race safely.
type Job struct {
	ent.Schema
}

// Fields of the Job.
func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.String("account_id").
			Immutable(),
		field.String("created_by_user_id").
			Immutable(),
		field.String("assigned_agent_id").
			Optional().
			Nillable(),
		field.Enum("type").
			Values(
				"VISIT_PROFILE",
				"SEND_CONNECTION_REQUEST",
				"LIKE_POST",
				"COMMENT_POST",
				"SEND_MESSAGE",
			),
		field.JSON("parameters", map[string]interface{}{}).
			Comment("Tagged per type; validated at creation"),
		field.String("lead_id").
			Optional().
			Comment("Opaque passthrough for the lead/campaign layer"),
		field.Enum("state").
			Values("PENDING", "ASSIGNED", "EXECUTING", "COMPLETED", "FAILED", "SKIPPED").
			Default("PENDING"),
		field.Int("priority").
			Default(0).
			Comment("Higher first"),
		field.Time("earliest_execution_time"),
		field.Int("timeout_seconds"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("assigned_at").
			Optional().
			Nillable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.String("failure_reason").
			Optional().
			Nillable(),
	}
}

// Edges of the Job.
func (Job) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("account", Account.Type).
			Ref("jobs").
			Field("account_id").
			Unique().
			Required().
			Immutable(),
		edge.To("result", JobResult.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Job.
func (Job) Indexes() []ent.Index {
	return []ent.Index{
		// Eligibility scan: pending jobs per account ordered by priority.
		index.Fields("account_id", "state", "priority"),
		index.Fields("state", "earliest_execution_time"),
		// Reaper scan.
		index.Fields("state", "started_at"),
		index.Fields("assigned_agent_id"),
	}
}
