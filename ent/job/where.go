// Code generated by ent, DO NOT EDIT.

package job

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/leadrelay/relay/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldID, id))
}

// AccountID applies equality check predicate on the "account_id" field. It's identical to AccountIDEQ.
func AccountID(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldAccountID, v))
}

// CreatedByUserID applies equality check predicate on the "created_by_user_id" field. It's identical to CreatedByUserIDEQ.
func CreatedByUserID(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCreatedByUserID, v))
}

// AssignedAgentID applies equality check predicate on the "assigned_agent_id" field. It's identical to AssignedAgentIDEQ.
func AssignedAgentID(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldAssignedAgentID, v))
}

// LeadID applies equality check predicate on the "lead_id" field. It's identical to LeadIDEQ.
func LeadID(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldLeadID, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldPriority, v))
}

// EarliestExecutionTime applies equality check predicate on the "earliest_execution_time" field. It's identical to EarliestExecutionTimeEQ.
func EarliestExecutionTime(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldEarliestExecutionTime, v))
}

// TimeoutSeconds applies equality check predicate on the "timeout_seconds" field. It's identical to TimeoutSecondsEQ.
func TimeoutSeconds(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldTimeoutSeconds, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCreatedAt, v))
}

// AssignedAt applies equality check predicate on the "assigned_at" field. It's identical to AssignedAtEQ.
func AssignedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldAssignedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCompletedAt, v))
}

// FailureReason applies equality check predicate on the "failure_reason" field. It's identical to FailureReasonEQ.
func FailureReason(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldFailureReason, v))
}

// AccountIDEQ applies the EQ predicate on the "account_id" field.
func AccountIDEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldAccountID, v))
}

// AccountIDNEQ applies the NEQ predicate on the "account_id" field.
func AccountIDNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldAccountID, v))
}

// AccountIDIn applies the In predicate on the "account_id" field.
func AccountIDIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldAccountID, vs...))
}

// AccountIDNotIn applies the NotIn predicate on the "account_id" field.
func AccountIDNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldAccountID, vs...))
}

// AccountIDGT applies the GT predicate on the "account_id" field.
func AccountIDGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldAccountID, v))
}

// AccountIDGTE applies the GTE predicate on the "account_id" field.
func AccountIDGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldAccountID, v))
}

// AccountIDLT applies the LT predicate on the "account_id" field.
func AccountIDLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldAccountID, v))
}

// AccountIDLTE applies the LTE predicate on the "account_id" field.
func AccountIDLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldAccountID, v))
}

// AccountIDContains applies the Contains predicate on the "account_id" field.
func AccountIDContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldAccountID, v))
}

// AccountIDHasPrefix applies the HasPrefix predicate on the "account_id" field.
func AccountIDHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldAccountID, v))
}

// AccountIDHasSuffix applies the HasSuffix predicate on the "account_id" field.
func AccountIDHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldAccountID, v))
}

// AccountIDEqualFold applies the EqualFold predicate on the "account_id" field.
func AccountIDEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldAccountID, v))
}

// AccountIDContainsFold applies the ContainsFold predicate on the "account_id" field.
func AccountIDContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldAccountID, v))
}

// CreatedByUserIDEQ applies the EQ predicate on the "created_by_user_id" field.
func CreatedByUserIDEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCreatedByUserID, v))
}

// CreatedByUserIDNEQ applies the NEQ predicate on the "created_by_user_id" field.
func CreatedByUserIDNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldCreatedByUserID, v))
}

// CreatedByUserIDIn applies the In predicate on the "created_by_user_id" field.
func CreatedByUserIDIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldCreatedByUserID, vs...))
}

// CreatedByUserIDNotIn applies the NotIn predicate on the "created_by_user_id" field.
func CreatedByUserIDNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldCreatedByUserID, vs...))
}

// CreatedByUserIDGT applies the GT predicate on the "created_by_user_id" field.
func CreatedByUserIDGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldCreatedByUserID, v))
}

// CreatedByUserIDGTE applies the GTE predicate on the "created_by_user_id" field.
func CreatedByUserIDGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldCreatedByUserID, v))
}

// CreatedByUserIDLT applies the LT predicate on the "created_by_user_id" field.
func CreatedByUserIDLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldCreatedByUserID, v))
}

// CreatedByUserIDLTE applies the LTE predicate on the "created_by_user_id" field.
func CreatedByUserIDLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldCreatedByUserID, v))
}

// CreatedByUserIDContains applies the Contains predicate on the "created_by_user_id" field.
func CreatedByUserIDContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldCreatedByUserID, v))
}

// CreatedByUserIDHasPrefix applies the HasPrefix predicate on the "created_by_user_id" field.
func CreatedByUserIDHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldCreatedByUserID, v))
}

// CreatedByUserIDHasSuffix applies the HasSuffix predicate on the "created_by_user_id" field.
func CreatedByUserIDHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldCreatedByUserID, v))
}

// CreatedByUserIDEqualFold applies the EqualFold predicate on the "created_by_user_id" field.
func CreatedByUserIDEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldCreatedByUserID, v))
}

// CreatedByUserIDContainsFold applies the ContainsFold predicate on the "created_by_user_id" field.
func CreatedByUserIDContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldCreatedByUserID, v))
}

// AssignedAgentIDEQ applies the EQ predicate on the "assigned_agent_id" field.
func AssignedAgentIDEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldAssignedAgentID, v))
}

// AssignedAgentIDNEQ applies the NEQ predicate on the "assigned_agent_id" field.
func AssignedAgentIDNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldAssignedAgentID, v))
}

// AssignedAgentIDIn applies the In predicate on the "assigned_agent_id" field.
func AssignedAgentIDIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldAssignedAgentID, vs...))
}

// AssignedAgentIDNotIn applies the NotIn predicate on the "assigned_agent_id" field.
func AssignedAgentIDNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldAssignedAgentID, vs...))
}

// AssignedAgentIDGT applies the GT predicate on the "assigned_agent_id" field.
func AssignedAgentIDGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldAssignedAgentID, v))
}

// AssignedAgentIDGTE applies the GTE predicate on the "assigned_agent_id" field.
func AssignedAgentIDGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldAssignedAgentID, v))
}

// AssignedAgentIDLT applies the LT predicate on the "assigned_agent_id" field.
func AssignedAgentIDLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldAssignedAgentID, v))
}

// AssignedAgentIDLTE applies the LTE predicate on the "assigned_agent_id" field.
func AssignedAgentIDLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldAssignedAgentID, v))
}

// AssignedAgentIDContains applies the Contains predicate on the "assigned_agent_id" field.
func AssignedAgentIDContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldAssignedAgentID, v))
}

// AssignedAgentIDHasPrefix applies the HasPrefix predicate on the "assigned_agent_id" field.
func AssignedAgentIDHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldAssignedAgentID, v))
}

// AssignedAgentIDHasSuffix applies the HasSuffix predicate on the "assigned_agent_id" field.
func AssignedAgentIDHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldAssignedAgentID, v))
}

// AssignedAgentIDIsNil applies the IsNil predicate on the "assigned_agent_id" field.
func AssignedAgentIDIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldAssignedAgentID))
}

// AssignedAgentIDNotNil applies the NotNil predicate on the "assigned_agent_id" field.
func AssignedAgentIDNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldAssignedAgentID))
}

// AssignedAgentIDEqualFold applies the EqualFold predicate on the "assigned_agent_id" field.
func AssignedAgentIDEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldAssignedAgentID, v))
}

// AssignedAgentIDContainsFold applies the ContainsFold predicate on the "assigned_agent_id" field.
func AssignedAgentIDContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldAssignedAgentID, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldType, vs...))
}

// LeadIDEQ applies the EQ predicate on the "lead_id" field.
func LeadIDEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldLeadID, v))
}

// LeadIDNEQ applies the NEQ predicate on the "lead_id" field.
func LeadIDNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldLeadID, v))
}

// LeadIDIn applies the In predicate on the "lead_id" field.
func LeadIDIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldLeadID, vs...))
}

// LeadIDNotIn applies the NotIn predicate on the "lead_id" field.
func LeadIDNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldLeadID, vs...))
}

// LeadIDGT applies the GT predicate on the "lead_id" field.
func LeadIDGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldLeadID, v))
}

// LeadIDGTE applies the GTE predicate on the "lead_id" field.
func LeadIDGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldLeadID, v))
}

// LeadIDLT applies the LT predicate on the "lead_id" field.
func LeadIDLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldLeadID, v))
}

// LeadIDLTE applies the LTE predicate on the "lead_id" field.
func LeadIDLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldLeadID, v))
}

// LeadIDContains applies the Contains predicate on the "lead_id" field.
func LeadIDContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldLeadID, v))
}

// LeadIDHasPrefix applies the HasPrefix predicate on the "lead_id" field.
func LeadIDHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldLeadID, v))
}

// LeadIDHasSuffix applies the HasSuffix predicate on the "lead_id" field.
func LeadIDHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldLeadID, v))
}

// LeadIDIsNil applies the IsNil predicate on the "lead_id" field.
func LeadIDIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldLeadID))
}

// LeadIDNotNil applies the NotNil predicate on the "lead_id" field.
func LeadIDNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldLeadID))
}

// LeadIDEqualFold applies the EqualFold predicate on the "lead_id" field.
func LeadIDEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldLeadID, v))
}

// LeadIDContainsFold applies the ContainsFold predicate on the "lead_id" field.
func LeadIDContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldLeadID, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldState, vs...))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v int) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v int) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v int) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v int) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldPriority, v))
}

// EarliestExecutionTimeEQ applies the EQ predicate on the "earliest_execution_time" field.
func EarliestExecutionTimeEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldEarliestExecutionTime, v))
}

// EarliestExecutionTimeNEQ applies the NEQ predicate on the "earliest_execution_time" field.
func EarliestExecutionTimeNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldEarliestExecutionTime, v))
}

// EarliestExecutionTimeIn applies the In predicate on the "earliest_execution_time" field.
func EarliestExecutionTimeIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldEarliestExecutionTime, vs...))
}

// EarliestExecutionTimeNotIn applies the NotIn predicate on the "earliest_execution_time" field.
func EarliestExecutionTimeNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldEarliestExecutionTime, vs...))
}

// EarliestExecutionTimeGT applies the GT predicate on the "earliest_execution_time" field.
func EarliestExecutionTimeGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldEarliestExecutionTime, v))
}

// EarliestExecutionTimeGTE applies the GTE predicate on the "earliest_execution_time" field.
func EarliestExecutionTimeGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldEarliestExecutionTime, v))
}

// EarliestExecutionTimeLT applies the LT predicate on the "earliest_execution_time" field.
func EarliestExecutionTimeLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldEarliestExecutionTime, v))
}

// EarliestExecutionTimeLTE applies the LTE predicate on the "earliest_execution_time" field.
func EarliestExecutionTimeLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldEarliestExecutionTime, v))
}

// TimeoutSecondsEQ applies the EQ predicate on the "timeout_seconds" field.
func TimeoutSecondsEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldTimeoutSeconds, v))
}

// TimeoutSecondsNEQ applies the NEQ predicate on the "timeout_seconds" field.
func TimeoutSecondsNEQ(v int) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldTimeoutSeconds, v))
}

// TimeoutSecondsIn applies the In predicate on the "timeout_seconds" field.
func TimeoutSecondsIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldTimeoutSeconds, vs...))
}

// TimeoutSecondsNotIn applies the NotIn predicate on the "timeout_seconds" field.
func TimeoutSecondsNotIn(vs ...int) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldTimeoutSeconds, vs...))
}

// TimeoutSecondsGT applies the GT predicate on the "timeout_seconds" field.
func TimeoutSecondsGT(v int) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldTimeoutSeconds, v))
}

// TimeoutSecondsGTE applies the GTE predicate on the "timeout_seconds" field.
func TimeoutSecondsGTE(v int) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldTimeoutSeconds, v))
}

// TimeoutSecondsLT applies the LT predicate on the "timeout_seconds" field.
func TimeoutSecondsLT(v int) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldTimeoutSeconds, v))
}

// TimeoutSecondsLTE applies the LTE predicate on the "timeout_seconds" field.
func TimeoutSecondsLTE(v int) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldTimeoutSeconds, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldCreatedAt, v))
}

// AssignedAtEQ applies the EQ predicate on the "assigned_at" field.
func AssignedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldAssignedAt, v))
}

// AssignedAtNEQ applies the NEQ predicate on the "assigned_at" field.
func AssignedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldAssignedAt, v))
}

// AssignedAtIn applies the In predicate on the "assigned_at" field.
func AssignedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldAssignedAt, vs...))
}

// AssignedAtNotIn applies the NotIn predicate on the "assigned_at" field.
func AssignedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldAssignedAt, vs...))
}

// AssignedAtGT applies the GT predicate on the "assigned_at" field.
func AssignedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldAssignedAt, v))
}

// AssignedAtGTE applies the GTE predicate on the "assigned_at" field.
func AssignedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldAssignedAt, v))
}

// AssignedAtLT applies the LT predicate on the "assigned_at" field.
func AssignedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldAssignedAt, v))
}

// AssignedAtLTE applies the LTE predicate on the "assigned_at" field.
func AssignedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldAssignedAt, v))
}

// AssignedAtIsNil applies the IsNil predicate on the "assigned_at" field.
func AssignedAtIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldAssignedAt))
}

// AssignedAtNotNil applies the NotNil predicate on the "assigned_at" field.
func AssignedAtNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldAssignedAt))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldCompletedAt))
}

// FailureReasonEQ applies the EQ predicate on the "failure_reason" field.
func FailureReasonEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldFailureReason, v))
}

// FailureReasonNEQ applies the NEQ predicate on the "failure_reason" field.
func FailureReasonNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldFailureReason, v))
}

// FailureReasonIn applies the In predicate on the "failure_reason" field.
func FailureReasonIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldFailureReason, vs...))
}

// FailureReasonNotIn applies the NotIn predicate on the "failure_reason" field.
func FailureReasonNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldFailureReason, vs...))
}

// FailureReasonGT applies the GT predicate on the "failure_reason" field.
func FailureReasonGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldFailureReason, v))
}

// FailureReasonGTE applies the GTE predicate on the "failure_reason" field.
func FailureReasonGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldFailureReason, v))
}

// FailureReasonLT applies the LT predicate on the "failure_reason" field.
func FailureReasonLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldFailureReason, v))
}

// FailureReasonLTE applies the LTE predicate on the "failure_reason" field.
func FailureReasonLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldFailureReason, v))
}

// FailureReasonContains applies the Contains predicate on the "failure_reason" field.
func FailureReasonContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldFailureReason, v))
}

// FailureReasonHasPrefix applies the HasPrefix predicate on the "failure_reason" field.
func FailureReasonHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldFailureReason, v))
}

// FailureReasonHasSuffix applies the HasSuffix predicate on the "failure_reason" field.
func FailureReasonHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldFailureReason, v))
}

// FailureReasonIsNil applies the IsNil predicate on the "failure_reason" field.
func FailureReasonIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldFailureReason))
}

// FailureReasonNotNil applies the NotNil predicate on the "failure_reason" field.
func FailureReasonNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldFailureReason))
}

// FailureReasonEqualFold applies the EqualFold predicate on the "failure_reason" field.
func FailureReasonEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldFailureReason, v))
}

// FailureReasonContainsFold applies the ContainsFold predicate on the "failure_reason" field.
func FailureReasonContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldFailureReason, v))
}

// HasAccount applies the HasEdge predicate on the "account" edge.
func HasAccount() predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AccountTable, AccountColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAccountWith applies the HasEdge predicate on the "account" edge with a given conditions (other predicates).
func HasAccountWith(preds ...predicate.Account) predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := newAccountStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasResult applies the HasEdge predicate on the "result" edge.
func HasResult() predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, ResultTable, ResultColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasResultWith applies the HasEdge predicate on the "result" edge with a given conditions (other predicates).
func HasResultWith(preds ...predicate.JobResult) predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := newResultStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Job) predicate.Job {
	return predicate.Job(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Job) predicate.Job {
	return predicate.Job(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Job) predicate.Job {
	return predicate.Job(sql.NotPredicates(p))
}
