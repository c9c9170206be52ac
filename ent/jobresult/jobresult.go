// Code generated by ent, DO NOT EDIT.

package jobresult

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the jobresult type in the database.
	Label = "job_result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "result_id"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldAgentID holds the string denoting the agent_id field in the database.
	FieldAgentID = "agent_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldObservedState holds the string denoting the observed_state field in the database.
	FieldObservedState = "observed_state"
	// FieldFailureReason holds the string denoting the failure_reason field in the database.
	FieldFailureReason = "failure_reason"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeJob holds the string denoting the job edge name in mutations.
	EdgeJob = "job"
	// JobFieldID holds the string denoting the ID field of the Job.
	JobFieldID = "job_id"
	// Table holds the table name of the jobresult in the database.
	Table = "job_results"
	// JobTable is the table that holds the job relation/edge.
	JobTable = "job_results"
	// JobInverseTable is the table name for the Job entity.
	// It exists in this package in order to avoid circular dependency with the "job" package.
	JobInverseTable = "jobs"
	// JobColumn is the table column denoting the job relation/edge.
	JobColumn = "job_id"
)

// Columns holds all SQL columns for jobresult fields.
var Columns = []string{
	FieldID,
	FieldJobID,
	FieldAgentID,
	FieldStatus,
	FieldObservedState,
	FieldFailureReason,
	FieldCompletedAt,
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
	// DefaultCompletedAt holds the default value on creation for the "completed_at" field.
	DefaultCompletedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// Status values.
const (
	StatusSUCCESS Status = "SUCCESS"
	StatusFAILED  Status = "FAILED"
	StatusSKIPPED Status = "SKIPPED"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusSUCCESS, StatusFAILED, StatusSKIPPED:
		return nil
	default:
		return fmt.Errorf("jobresult: invalid enum value for status field: %q", s)
	}
}

// ObservedState defines the type for the "observed_state" enum field.
type ObservedState string

// ObservedState values.
const (
	ObservedStateCONNECTED ObservedState = "CONNECTED"
	ObservedStatePENDING   ObservedState = "PENDING"
	ObservedStateNONE      ObservedState = "NONE"
)

func (os ObservedState) String() string {
	return string(os)
}

// ObservedStateValidator is a validator for the "observed_state" field enum values. It is called by the builders before save.
func ObservedStateValidator(os ObservedState) error {
	switch os {
	case ObservedStateCONNECTED, ObservedStatePENDING, ObservedStateNONE:
		return nil
	default:
		return fmt.Errorf("jobresult: invalid enum value for observed_state field: %q", os)
	}
}

// FailureReason defines the type for the "failure_reason" enum field.
type FailureReason string

// FailureReason values.
const (
	FailureReasonUI_CHANGED      FailureReason = "UI_CHANGED"
	FailureReasonTIMEOUT         FailureReason = "TIMEOUT"
	FailureReasonSESSION_EXPIRED FailureReason = "SESSION_EXPIRED"
	FailureReasonUNKNOWN         FailureReason = "UNKNOWN"
)

func (fr FailureReason) String() string {
	return string(fr)
}

// FailureReasonValidator is a validator for the "failure_reason" field enum values. It is called by the builders before save.
func FailureReasonValidator(fr FailureReason) error {
	switch fr {
	case FailureReasonUI_CHANGED, FailureReasonTIMEOUT, FailureReasonSESSION_EXPIRED, FailureReasonUNKNOWN:
		return nil
	default:
		return fmt.Errorf("jobresult: invalid enum value for failure_reason field: %q", fr)
	}
}

// OrderOption defines the ordering options for the JobResult queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// ByAgentID orders the results by the agent_id field.
func ByAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByObservedState orders the results by the observed_state field.
func ByObservedState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldObservedState, opts...).ToFunc()
}

// ByFailureReason orders the results by the failure_reason field.
func ByFailureReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailureReason, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByJobField orders the results by job field.
func ByJobField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobStep(), sql.OrderByField(field, opts...))
	}
}
func newJobStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobInverseTable, JobFieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, JobTable, JobColumn),
	)
}
