// Code generated by ent, DO NOT EDIT.

package job

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the job type in the database.
	Label = "job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "job_id"
	// FieldAccountID holds the string denoting the account_id field in the database.
	FieldAccountID = "account_id"
	// FieldCreatedByUserID holds the string denoting the created_by_user_id field in the database.
	FieldCreatedByUserID = "created_by_user_id"
	// FieldAssignedAgentID holds the string denoting the assigned_agent_id field in the database.
	FieldAssignedAgentID = "assigned_agent_id"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldParameters holds the string denoting the parameters field in the database.
	FieldParameters = "parameters"
	// FieldLeadID holds the string denoting the lead_id field in the database.
	FieldLeadID = "lead_id"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldEarliestExecutionTime holds the string denoting the earliest_execution_time field in the database.
	FieldEarliestExecutionTime = "earliest_execution_time"
	// FieldTimeoutSeconds holds the string denoting the timeout_seconds field in the database.
	FieldTimeoutSeconds = "timeout_seconds"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldAssignedAt holds the string denoting the assigned_at field in the database.
	FieldAssignedAt = "assigned_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldFailureReason holds the string denoting the failure_reason field in the database.
	FieldFailureReason = "failure_reason"
	// EdgeAccount holds the string denoting the account edge name in mutations.
	EdgeAccount = "account"
	// EdgeResult holds the string denoting the result edge name in mutations.
	EdgeResult = "result"
	// AccountFieldID holds the string denoting the ID field of the Account.
	AccountFieldID = "account_id"
	// JobResultFieldID holds the string denoting the ID field of the JobResult.
	JobResultFieldID = "result_id"
	// Table holds the table name of the job in the database.
	Table = "jobs"
	// AccountTable is the table that holds the account relation/edge.
	AccountTable = "jobs"
	// AccountInverseTable is the table name for the Account entity.
	// It exists in this package in order to avoid circular dependency with the "account" package.
	AccountInverseTable = "accounts"
	// AccountColumn is the table column denoting the account relation/edge.
	AccountColumn = "account_id"
	// ResultTable is the table that holds the result relation/edge.
	ResultTable = "job_results"
	// ResultInverseTable is the table name for the JobResult entity.
	// It exists in this package in order to avoid circular dependency with the "jobresult" package.
	ResultInverseTable = "job_results"
	// ResultColumn is the table column denoting the result relation/edge.
	ResultColumn = "job_id"
)

// Columns holds all SQL columns for job fields.
var Columns = []string{
	FieldID,
	FieldAccountID,
	FieldCreatedByUserID,
	FieldAssignedAgentID,
	FieldType,
	FieldParameters,
	FieldLeadID,
	FieldState,
	FieldPriority,
	FieldEarliestExecutionTime,
	FieldTimeoutSeconds,
	FieldCreatedAt,
	FieldAssignedAt,
	FieldStartedAt,
	FieldCompletedAt,
	FieldFailureReason,
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
	// DefaultPriority holds the default value on creation for the "priority" field.
	DefaultPriority int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Type defines the type for the "type" enum field.
type Type string

// Type values.
const (
	TypeVISIT_PROFILE           Type = "VISIT_PROFILE"
	TypeSEND_CONNECTION_REQUEST Type = "SEND_CONNECTION_REQUEST"
	TypeLIKE_POST               Type = "LIKE_POST"
	TypeCOMMENT_POST            Type = "COMMENT_POST"
	TypeSEND_MESSAGE            Type = "SEND_MESSAGE"
)

func (_type Type) String() string {
	return string(_type)
}

// TypeValidator is a validator for the "type" field enum values. It is called by the builders before save.
func TypeValidator(_type Type) error {
	switch _type {
	case TypeVISIT_PROFILE, TypeSEND_CONNECTION_REQUEST, TypeLIKE_POST, TypeCOMMENT_POST, TypeSEND_MESSAGE:
		return nil
	default:
		return fmt.Errorf("job: invalid enum value for type field: %q", _type)
	}
}

// State defines the type for the "state" enum field.
type State string

// StatePENDING is the default value of the State enum.
const DefaultState = StatePENDING

// State values.
const (
	StatePENDING   State = "PENDING"
	StateASSIGNED  State = "ASSIGNED"
	StateEXECUTING State = "EXECUTING"
	StateCOMPLETED State = "COMPLETED"
	StateFAILED    State = "FAILED"
	StateSKIPPED   State = "SKIPPED"
)

func (s State) String() string {
	return string(s)
}

// StateValidator is a validator for the "state" field enum values. It is called by the builders before save.
func StateValidator(s State) error {
	switch s {
	case StatePENDING, StateASSIGNED, StateEXECUTING, StateCOMPLETED, StateFAILED, StateSKIPPED:
		return nil
	default:
		return fmt.Errorf("job: invalid enum value for state field: %q", s)
	}
}

// OrderOption defines the ordering options for the Job queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAccountID orders the results by the account_id field.
func ByAccountID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccountID, opts...).ToFunc()
}

// ByCreatedByUserID orders the results by the created_by_user_id field.
func ByCreatedByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedByUserID, opts...).ToFunc()
}

// ByAssignedAgentID orders the results by the assigned_agent_id field.
func ByAssignedAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignedAgentID, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByLeadID orders the results by the lead_id field.
func ByLeadID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeadID, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByEarliestExecutionTime orders the results by the earliest_execution_time field.
func ByEarliestExecutionTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEarliestExecutionTime, opts...).ToFunc()
}

// ByTimeoutSeconds orders the results by the timeout_seconds field.
func ByTimeoutSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeoutSeconds, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByAssignedAt orders the results by the assigned_at field.
func ByAssignedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByFailureReason orders the results by the failure_reason field.
func ByFailureReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailureReason, opts...).ToFunc()
}

// ByAccountField orders the results by account field.
func ByAccountField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAccountStep(), sql.OrderByField(field, opts...))
	}
}

// ByResultField orders the results by result field.
func ByResultField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newResultStep(), sql.OrderByField(field, opts...))
	}
}
func newAccountStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AccountInverseTable, AccountFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AccountTable, AccountColumn),
	)
}
func newResultStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ResultInverseTable, JobResultFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, ResultTable, ResultColumn),
	)
}
