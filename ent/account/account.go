// Code generated by ent, DO NOT EDIT.

package account

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the account type in the database.
	Label = "account"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "account_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldProfileURL holds the string denoting the profile_url field in the database.
	FieldProfileURL = "profile_url"
	// FieldDisplayName holds the string denoting the display_name field in the database.
	FieldDisplayName = "display_name"
	// FieldValidationStatus holds the string denoting the validation_status field in the database.
	FieldValidationStatus = "validation_status"
	// FieldHealthStatus holds the string denoting the health_status field in the database.
	FieldHealthStatus = "health_status"
	// FieldUserPaused holds the string denoting the user_paused field in the database.
	FieldUserPaused = "user_paused"
	// FieldSessionValidAt holds the string denoting the session_valid_at field in the database.
	FieldSessionValidAt = "session_valid_at"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeUser holds the string denoting the user edge name in mutations.
	EdgeUser = "user"
	// EdgeAgents holds the string denoting the agents edge name in mutations.
	EdgeAgents = "agents"
	// EdgeJobs holds the string denoting the jobs edge name in mutations.
	EdgeJobs = "jobs"
	// EdgeViolations holds the string denoting the violations edge name in mutations.
	EdgeViolations = "violations"
	// EdgeRiskScores holds the string denoting the risk_scores edge name in mutations.
	EdgeRiskScores = "risk_scores"
	// UserFieldID holds the string denoting the ID field of the User.
	UserFieldID = "user_id"
	// AgentFieldID holds the string denoting the ID field of the Agent.
	AgentFieldID = "agent_id"
	// JobFieldID holds the string denoting the ID field of the Job.
	JobFieldID = "job_id"
	// ViolationFieldID holds the string denoting the ID field of the Violation.
	ViolationFieldID = "violation_id"
	// RiskScoreFieldID holds the string denoting the ID field of the RiskScore.
	RiskScoreFieldID = "score_id"
	// Table holds the table name of the account in the database.
	Table = "accounts"
	// UserTable is the table that holds the user relation/edge.
	UserTable = "accounts"
	// UserInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UserInverseTable = "users"
	// UserColumn is the table column denoting the user relation/edge.
	UserColumn = "user_id"
	// AgentsTable is the table that holds the agents relation/edge.
	AgentsTable = "agents"
	// AgentsInverseTable is the table name for the Agent entity.
	// It exists in this package in order to avoid circular dependency with the "agent" package.
	AgentsInverseTable = "agents"
	// AgentsColumn is the table column denoting the agents relation/edge.
	AgentsColumn = "account_id"
	// JobsTable is the table that holds the jobs relation/edge.
	JobsTable = "jobs"
	// JobsInverseTable is the table name for the Job entity.
	// It exists in this package in order to avoid circular dependency with the "job" package.
	JobsInverseTable = "jobs"
	// JobsColumn is the table column denoting the jobs relation/edge.
	JobsColumn = "account_id"
	// ViolationsTable is the table that holds the violations relation/edge.
	ViolationsTable = "violations"
	// ViolationsInverseTable is the table name for the Violation entity.
	// It exists in this package in order to avoid circular dependency with the "violation" package.
	ViolationsInverseTable = "violations"
	// ViolationsColumn is the table column denoting the violations relation/edge.
	ViolationsColumn = "account_id"
	// RiskScoresTable is the table that holds the risk_scores relation/edge.
	RiskScoresTable = "risk_scores"
	// RiskScoresInverseTable is the table name for the RiskScore entity.
	// It exists in this package in order to avoid circular dependency with the "riskscore" package.
	RiskScoresInverseTable = "risk_scores"
	// RiskScoresColumn is the table column denoting the risk_scores relation/edge.
	RiskScoresColumn = "account_id"
)

// Columns holds all SQL columns for account fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldProfileURL,
	FieldDisplayName,
	FieldValidationStatus,
	FieldHealthStatus,
	FieldUserPaused,
	FieldSessionValidAt,
	FieldMetadata,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultUserPaused holds the default value on creation for the "user_paused" field.
	DefaultUserPaused bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// ValidationStatus defines the type for the "validation_status" enum field.
type ValidationStatus string

// ValidationStatusCONNECTED is the default value of the ValidationStatus enum.
const DefaultValidationStatus = ValidationStatusCONNECTED

// ValidationStatus values.
const (
	ValidationStatusCONNECTED    ValidationStatus = "CONNECTED"
	ValidationStatusEXPIRED      ValidationStatus = "EXPIRED"
	ValidationStatusDISCONNECTED ValidationStatus = "DISCONNECTED"
)

func (vs ValidationStatus) String() string {
	return string(vs)
}

// ValidationStatusValidator is a validator for the "validation_status" field enum values. It is called by the builders before save.
func ValidationStatusValidator(vs ValidationStatus) error {
	switch vs {
	case ValidationStatusCONNECTED, ValidationStatusEXPIRED, ValidationStatusDISCONNECTED:
		return nil
	default:
		return fmt.Errorf("account: invalid enum value for validation_status field: %q", vs)
	}
}

// HealthStatus defines the type for the "health_status" enum field.
type HealthStatus string

// HealthStatusHEALTHY is the default value of the HealthStatus enum.
const DefaultHealthStatus = HealthStatusHEALTHY

// HealthStatus values.
const (
	HealthStatusHEALTHY   HealthStatus = "HEALTHY"
	HealthStatusDEGRADED  HealthStatus = "DEGRADED"
	HealthStatusSUSPENDED HealthStatus = "SUSPENDED"
)

func (hs HealthStatus) String() string {
	return string(hs)
}

// HealthStatusValidator is a validator for the "health_status" field enum values. It is called by the builders before save.
func HealthStatusValidator(hs HealthStatus) error {
	switch hs {
	case HealthStatusHEALTHY, HealthStatusDEGRADED, HealthStatusSUSPENDED:
		return nil
	default:
		return fmt.Errorf("account: invalid enum value for health_status field: %q", hs)
	}
}

// OrderOption defines the ordering options for the Account queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByProfileURL orders the results by the profile_url field.
func ByProfileURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProfileURL, opts...).ToFunc()
}

// ByDisplayName orders the results by the display_name field.
func ByDisplayName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisplayName, opts...).ToFunc()
}

// ByValidationStatus orders the results by the validation_status field.
func ByValidationStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidationStatus, opts...).ToFunc()
}

// ByHealthStatus orders the results by the health_status field.
func ByHealthStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHealthStatus, opts...).ToFunc()
}

// ByUserPaused orders the results by the user_paused field.
func ByUserPaused(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserPaused, opts...).ToFunc()
}

// BySessionValidAt orders the results by the session_valid_at field.
func BySessionValidAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionValidAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUserField orders the results by user field.
func ByUserField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUserStep(), sql.OrderByField(field, opts...))
	}
}

// ByAgentsCount orders the results by agents count.
func ByAgentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAgentsStep(), opts...)
	}
}

// ByAgents orders the results by agents terms.
func ByAgents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAgentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByJobsCount orders the results by jobs count.
func ByJobsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newJobsStep(), opts...)
	}
}

// ByJobs orders the results by jobs terms.
func ByJobs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByViolationsCount orders the results by violations count.
func ByViolationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newViolationsStep(), opts...)
	}
}

// ByViolations orders the results by violations terms.
func ByViolations(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newViolationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByRiskScoresCount orders the results by risk_scores count.
func ByRiskScoresCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRiskScoresStep(), opts...)
	}
}

// ByRiskScores orders the results by risk_scores terms.
func ByRiskScores(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRiskScoresStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newUserStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UserInverseTable, UserFieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, UserTable, UserColumn),
	)
}
func newAgentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AgentsInverseTable, AgentFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AgentsTable, AgentsColumn),
	)
}
func newJobsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobsInverseTable, JobFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
	)
}
func newViolationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ViolationsInverseTable, ViolationFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ViolationsTable, ViolationsColumn),
	)
}
func newRiskScoresStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RiskScoresInverseTable, RiskScoreFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RiskScoresTable, RiskScoresColumn),
	)
}
