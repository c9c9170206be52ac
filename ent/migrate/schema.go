// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AccountsColumns holds the columns for the "accounts" table.
	AccountsColumns = []*schema.Column{
		{Name: "account_id", Type: field.TypeString, Unique: true},
		{Name: "profile_url", Type: field.TypeString},
		{Name: "display_name", Type: field.TypeString},
		{Name: "validation_status", Type: field.TypeEnum, Enums: []string{"CONNECTED", "EXPIRED", "DISCONNECTED"}, Default: "CONNECTED"},
		{Name: "health_status", Type: field.TypeEnum, Enums: []string{"HEALTHY", "DEGRADED", "SUSPENDED"}, Default: "HEALTHY"},
		{Name: "user_paused", Type: field.TypeBool, Default: false},
		{Name: "session_valid_at", Type: field.TypeTime, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString, Unique: true},
	}
	// AccountsTable holds the schema information for the "accounts" table.
	AccountsTable = &schema.Table{
		Name:       "accounts",
		Columns:    AccountsColumns,
		PrimaryKey: []*schema.Column{AccountsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "accounts_users_account",
				Columns:    []*schema.Column{AccountsColumns[9]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Restrict,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "account_validation_status",
				Unique:  false,
				Columns: []*schema.Column{AccountsColumns[3]},
			},
			{
				Name:    "account_health_status",
				Unique:  false,
				Columns: []*schema.Column{AccountsColumns[4]},
			},
		},
	}
	// AgentsColumns holds the columns for the "agents" table.
	AgentsColumns = []*schema.Column{
		{Name: "agent_id", Type: field.TypeString, Unique: true},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"REGISTERED", "IDLE", "ACTIVE", "TERMINATED"}, Default: "REGISTERED"},
		{Name: "agent_version", Type: field.TypeString, Nullable: true},
		{Name: "platform", Type: field.TypeString, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "registered_at", Type: field.TypeTime},
		{Name: "terminated_at", Type: field.TypeTime, Nullable: true},
		{Name: "account_id", Type: field.TypeString},
	}
	// AgentsTable holds the schema information for the "agents" table.
	AgentsTable = &schema.Table{
		Name:       "agents",
		Columns:    AgentsColumns,
		PrimaryKey: []*schema.Column{AgentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agents_accounts_agents",
				Columns:    []*schema.Column{AgentsColumns[7]},
				RefColumns: []*schema.Column{AccountsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agent_account_id",
				Unique:  true,
				Columns: []*schema.Column{AgentsColumns[7]},
				Annotation: &entsql.IndexAnnotation{
					Where: "terminated_at IS NULL",
				},
			},
			{
				Name:    "agent_state",
				Unique:  false,
				Columns: []*schema.Column{AgentsColumns[1]},
			},
		},
	}
	// AgentTokensColumns holds the columns for the "agent_tokens" table.
	AgentTokensColumns = []*schema.Column{
		{Name: "token_id", Type: field.TypeString, Unique: true},
		{Name: "account_id", Type: field.TypeString},
		{Name: "token_hash", Type: field.TypeString, Unique: true},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "revoked_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "agent_id", Type: field.TypeString},
	}
	// AgentTokensTable holds the schema information for the "agent_tokens" table.
	AgentTokensTable = &schema.Table{
		Name:       "agent_tokens",
		Columns:    AgentTokensColumns,
		PrimaryKey: []*schema.Column{AgentTokensColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_tokens_agents_tokens",
				Columns:    []*schema.Column{AgentTokensColumns[6]},
				RefColumns: []*schema.Column{AgentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agenttoken_agent_id",
				Unique:  false,
				Columns: []*schema.Column{AgentTokensColumns[6]},
			},
			{
				Name:    "agenttoken_expires_at",
				Unique:  false,
				Columns: []*schema.Column{AgentTokensColumns[3]},
			},
		},
	}
	// AuditEntriesColumns holds the columns for the "audit_entries" table.
	AuditEntriesColumns = []*schema.Column{
		{Name: "log_id", Type: field.TypeString, Unique: true},
		{Name: "domain", Type: field.TypeString},
		{Name: "event_type", Type: field.TypeString},
		{Name: "entity_type", Type: field.TypeString},
		{Name: "entity_id", Type: field.TypeString},
		{Name: "actor_type", Type: field.TypeEnum, Enums: []string{"USER", "AGENT", "SYSTEM"}},
		{Name: "actor_id", Type: field.TypeString, Nullable: true},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AuditEntriesTable holds the schema information for the "audit_entries" table.
	AuditEntriesTable = &schema.Table{
		Name:       "audit_entries",
		Columns:    AuditEntriesColumns,
		PrimaryKey: []*schema.Column{AuditEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditentry_entity_type_entity_id",
				Unique:  false,
				Columns: []*schema.Column{AuditEntriesColumns[3], AuditEntriesColumns[4]},
			},
			{
				Name:    "auditentry_domain_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditEntriesColumns[1], AuditEntriesColumns[8]},
			},
			{
				Name:    "auditentry_event_type",
				Unique:  false,
				Columns: []*schema.Column{AuditEntriesColumns[2]},
			},
		},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "created_by_user_id", Type: field.TypeString},
		{Name: "assigned_agent_id", Type: field.TypeString, Nullable: true},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"VISIT_PROFILE", "SEND_CONNECTION_REQUEST", "LIKE_POST", "COMMENT_POST", "SEND_MESSAGE"}},
		{Name: "parameters", Type: field.TypeJSON},
		{Name: "lead_id", Type: field.TypeString, Nullable: true},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"PENDING", "ASSIGNED", "EXECUTING", "COMPLETED", "FAILED", "SKIPPED"}, Default: "PENDING"},
		{Name: "priority", Type: field.TypeInt, Default: 0},
		{Name: "earliest_execution_time", Type: field.TypeTime},
		{Name: "timeout_seconds", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "assigned_at", Type: field.TypeTime, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "failure_reason", Type: field.TypeString, Nullable: true},
		{Name: "account_id", Type: field.TypeString},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "jobs_accounts_jobs",
				Columns:    []*schema.Column{JobsColumns[15]},
				RefColumns: []*schema.Column{AccountsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "job_account_id_state_priority",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[15], JobsColumns[6], JobsColumns[7]},
			},
			{
				Name:    "job_state_earliest_execution_time",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[6], JobsColumns[8]},
			},
			{
				Name:    "job_state_started_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[6], JobsColumns[12]},
			},
			{
				Name:    "job_assigned_agent_id",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[2]},
			},
		},
	}
	// JobResultsColumns holds the columns for the "job_results" table.
	JobResultsColumns = []*schema.Column{
		{Name: "result_id", Type: field.TypeString, Unique: true},
		{Name: "agent_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"SUCCESS", "FAILED", "SKIPPED"}},
		{Name: "observed_state", Type: field.TypeEnum, Nullable: true, Enums: []string{"CONNECTED", "PENDING", "NONE"}},
		{Name: "failure_reason", Type: field.TypeEnum, Nullable: true, Enums: []string{"UI_CHANGED", "TIMEOUT", "SESSION_EXPIRED", "UNKNOWN"}},
		{Name: "completed_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeString, Unique: true},
	}
	// JobResultsTable holds the schema information for the "job_results" table.
	JobResultsTable = &schema.Table{
		Name:       "job_results",
		Columns:    JobResultsColumns,
		PrimaryKey: []*schema.Column{JobResultsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "job_results_jobs_result",
				Columns:    []*schema.Column{JobResultsColumns[6]},
				RefColumns: []*schema.Column{JobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "jobresult_agent_id",
				Unique:  false,
				Columns: []*schema.Column{JobResultsColumns[1]},
			},
		},
	}
	// RateLimitRulesColumns holds the columns for the "rate_limit_rules" table.
	RateLimitRulesColumns = []*schema.Column{
		{Name: "rule_id", Type: field.TypeString, Unique: true},
		{Name: "action_type", Type: field.TypeString},
		{Name: "max_count", Type: field.TypeInt},
		{Name: "window_seconds", Type: field.TypeInt},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// RateLimitRulesTable holds the schema information for the "rate_limit_rules" table.
	RateLimitRulesTable = &schema.Table{
		Name:       "rate_limit_rules",
		Columns:    RateLimitRulesColumns,
		PrimaryKey: []*schema.Column{RateLimitRulesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "ratelimitrule_action_type_is_active",
				Unique:  false,
				Columns: []*schema.Column{RateLimitRulesColumns[1], RateLimitRulesColumns[4]},
			},
		},
	}
	// RiskScoresColumns holds the columns for the "risk_scores" table.
	RiskScoresColumns = []*schema.Column{
		{Name: "score_id", Type: field.TypeString, Unique: true},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "level", Type: field.TypeEnum, Enums: []string{"LOW", "MEDIUM", "HIGH", "CRITICAL"}},
		{Name: "factors", Type: field.TypeJSON, Nullable: true},
		{Name: "calculated_at", Type: field.TypeTime},
		{Name: "account_id", Type: field.TypeString},
	}
	// RiskScoresTable holds the schema information for the "risk_scores" table.
	RiskScoresTable = &schema.Table{
		Name:       "risk_scores",
		Columns:    RiskScoresColumns,
		PrimaryKey: []*schema.Column{RiskScoresColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "risk_scores_accounts_risk_scores",
				Columns:    []*schema.Column{RiskScoresColumns[5]},
				RefColumns: []*schema.Column{AccountsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "riskscore_account_id_calculated_at",
				Unique:  false,
				Columns: []*schema.Column{RiskScoresColumns[5], RiskScoresColumns[4]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "token_hash", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_token_hash",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[2]},
			},
		},
	}
	// ViolationsColumns holds the columns for the "violations" table.
	ViolationsColumns = []*schema.Column{
		{Name: "violation_id", Type: field.TypeString, Unique: true},
		{Name: "job_id", Type: field.TypeString, Nullable: true},
		{Name: "violation_type", Type: field.TypeString},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"LOW", "MEDIUM", "HIGH", "CRITICAL"}},
		{Name: "detected_at", Type: field.TypeTime},
		{Name: "resolved_at", Type: field.TypeTime, Nullable: true},
		{Name: "account_id", Type: field.TypeString},
		{Name: "rule_id", Type: field.TypeString},
	}
	// ViolationsTable holds the schema information for the "violations" table.
	ViolationsTable = &schema.Table{
		Name:       "violations",
		Columns:    ViolationsColumns,
		PrimaryKey: []*schema.Column{ViolationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "violations_accounts_violations",
				Columns:    []*schema.Column{ViolationsColumns[6]},
				RefColumns: []*schema.Column{AccountsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "violations_rate_limit_rules_violations",
				Columns:    []*schema.Column{ViolationsColumns[7]},
				RefColumns: []*schema.Column{RateLimitRulesColumns[0]},
				OnDelete:   schema.Restrict,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "violation_account_id_detected_at",
				Unique:  false,
				Columns: []*schema.Column{ViolationsColumns[6], ViolationsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AccountsTable,
		AgentsTable,
		AgentTokensTable,
		AuditEntriesTable,
		JobsTable,
		JobResultsTable,
		RateLimitRulesTable,
		RiskScoresTable,
		UsersTable,
		ViolationsTable,
	}
)

func init() {
	AccountsTable.ForeignKeys[0].RefTable = UsersTable
	AgentsTable.ForeignKeys[0].RefTable = AccountsTable
	AgentTokensTable.ForeignKeys[0].RefTable = AgentsTable
	JobsTable.ForeignKeys[0].RefTable = AccountsTable
	JobResultsTable.ForeignKeys[0].RefTable = JobsTable
	RiskScoresTable.ForeignKeys[0].RefTable = AccountsTable
	ViolationsTable.ForeignKeys[0].RefTable = AccountsTable
	ViolationsTable.ForeignKeys[1].RefTable = RateLimitRulesTable
}
