// Code generated by ent, DO NOT EDIT.

package violation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/leadrelay/relay/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Violation {
	return predicate.Violation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Violation {
	return predicate.Violation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Violation {
	return predicate.Violation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Violation {
	return predicate.Violation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Violation {
	return predicate.Violation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Violation {
	return predicate.Violation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Violation {
	return predicate.Violation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Violation {
	return predicate.Violation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Violation {
	return predicate.Violation(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Violation {
	return predicate.Violation(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Violation {
	return predicate.Violation(sql.FieldContainsFold(FieldID, id))
}

// AccountID applies equality check predicate on the "account_id" field. It's identical to AccountIDEQ.
func AccountID(v string) predicate.Violation {
	return predicate.Violation(sql.FieldEQ(FieldAccountID, v))
}

// RuleID applies equality check predicate on the "rule_id" field. It's identical to RuleIDEQ.
func RuleID(v string) predicate.Violation {
	return predicate.Violation(sql.FieldEQ(FieldRuleID, v))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v string) predicate.Violation {
	return predicate.Violation(sql.FieldEQ(FieldJobID, v))
}

// ViolationType applies equality check predicate on the "violation_type" field. It's identical to ViolationTypeEQ.
func ViolationType(v string) predicate.Violation {
	return predicate.Violation(sql.FieldEQ(FieldViolationType, v))
}

// DetectedAt applies equality check predicate on the "detected_at" field. It's identical to DetectedAtEQ.
func DetectedAt(v time.Time) predicate.Violation {
	return predicate.Violation(sql.FieldEQ(FieldDetectedAt, v))
}

// ResolvedAt applies equality check predicate on the "resolved_at" field. It's identical to ResolvedAtEQ.
func ResolvedAt(v time.Time) predicate.Violation {
	return predicate.Violation(sql.FieldEQ(FieldResolvedAt, v))
}

// AccountIDEQ applies the EQ predicate on the "account_id" field.
func AccountIDEQ(v string) predicate.Violation {
	return predicate.Violation(sql.FieldEQ(FieldAccountID, v))
}

// AccountIDNEQ applies the NEQ predicate on the "account_id" field.
func AccountIDNEQ(v string) predicate.Violation {
	return predicate.Violation(sql.FieldNEQ(FieldAccountID, v))
}

// AccountIDIn applies the In predicate on the "account_id" field.
func AccountIDIn(vs ...string) predicate.Violation {
	return predicate.Violation(sql.FieldIn(FieldAccountID, vs...))
}

// AccountIDNotIn applies the NotIn predicate on the "account_id" field.
func AccountIDNotIn(vs ...string) predicate.Violation {
	return predicate.Violation(sql.FieldNotIn(FieldAccountID, vs...))
}

// AccountIDGT applies the GT predicate on the "account_id" field.
func AccountIDGT(v string) predicate.Violation {
	return predicate.Violation(sql.FieldGT(FieldAccountID, v))
}

// AccountIDGTE applies the GTE predicate on the "account_id" field.
func AccountIDGTE(v string) predicate.Violation {
	return predicate.Violation(sql.FieldGTE(FieldAccountID, v))
}

// AccountIDLT applies the LT predicate on the "account_id" field.
func AccountIDLT(v string) predicate.Violation {
	return predicate.Violation(sql.FieldLT(FieldAccountID, v))
}

// AccountIDLTE applies the LTE predicate on the "account_id" field.
func AccountIDLTE(v string) predicate.Violation {
	return predicate.Violation(sql.FieldLTE(FieldAccountID, v))
}

// AccountIDContains applies the Contains predicate on the "account_id" field.
func AccountIDContains(v string) predicate.Violation {
	return predicate.Violation(sql.FieldContains(FieldAccountID, v))
}

// AccountIDHasPrefix applies the HasPrefix predicate on the "account_id" field.
func AccountIDHasPrefix(v string) predicate.Violation {
	return predicate.Violation(sql.FieldHasPrefix(FieldAccountID, v))
}

// AccountIDHasSuffix applies the HasSuffix predicate on the "account_id" field.
func AccountIDHasSuffix(v string) predicate.Violation {
	return predicate.Violation(sql.FieldHasSuffix(FieldAccountID, v))
}

// AccountIDEqualFold applies the EqualFold predicate on the "account_id" field.
func AccountIDEqualFold(v string) predicate.Violation {
	return predicate.Violation(sql.FieldEqualFold(FieldAccountID, v))
}

// AccountIDContainsFold applies the ContainsFold predicate on the "account_id" field.
func AccountIDContainsFold(v string) predicate.Violation {
	return predicate.Violation(sql.FieldContainsFold(FieldAccountID, v))
}

// RuleIDEQ applies the EQ predicate on the "rule_id" field.
func RuleIDEQ(v string) predicate.Violation {
	return predicate.Violation(sql.FieldEQ(FieldRuleID, v))
}

// RuleIDNEQ applies the NEQ predicate on the "rule_id" field.
func RuleIDNEQ(v string) predicate.Violation {
	return predicate.Violation(sql.FieldNEQ(FieldRuleID, v))
}

// RuleIDIn applies the In predicate on the "rule_id" field.
func RuleIDIn(vs ...string) predicate.Violation {
	return predicate.Violation(sql.FieldIn(FieldRuleID, vs...))
}

// RuleIDNotIn applies the NotIn predicate on the "rule_id" field.
func RuleIDNotIn(vs ...string) predicate.Violation {
	return predicate.Violation(sql.FieldNotIn(FieldRuleID, vs...))
}

// RuleIDGT applies the GT predicate on the "rule_id" field.
func RuleIDGT(v string) predicate.Violation {
	return predicate.Violation(sql.FieldGT(FieldRuleID, v))
}

// RuleIDGTE applies the GTE predicate on the "rule_id" field.
func RuleIDGTE(v string) predicate.Violation {
	return predicate.Violation(sql.FieldGTE(FieldRuleID, v))
}

// RuleIDLT applies the LT predicate on the "rule_id" field.
func RuleIDLT(v string) predicate.Violation {
	return predicate.Violation(sql.FieldLT(FieldRuleID, v))
}

// RuleIDLTE applies the LTE predicate on the "rule_id" field.
func RuleIDLTE(v string) predicate.Violation {
	return predicate.Violation(sql.FieldLTE(FieldRuleID, v))
}

// RuleIDContains applies the Contains predicate on the "rule_id" field.
func RuleIDContains(v string) predicate.Violation {
	return predicate.Violation(sql.FieldContains(FieldRuleID, v))
}

// RuleIDHasPrefix applies the HasPrefix predicate on the "rule_id" field.
func RuleIDHasPrefix(v string) predicate.Violation {
	return predicate.Violation(sql.FieldHasPrefix(FieldRuleID, v))
}

// RuleIDHasSuffix applies the HasSuffix predicate on the "rule_id" field.
func RuleIDHasSuffix(v string) predicate.Violation {
	return predicate.Violation(sql.FieldHasSuffix(FieldRuleID, v))
}

// RuleIDEqualFold applies the EqualFold predicate on the "rule_id" field.
func RuleIDEqualFold(v string) predicate.Violation {
	return predicate.Violation(sql.FieldEqualFold(FieldRuleID, v))
}

// RuleIDContainsFold applies the ContainsFold predicate on the "rule_id" field.
func RuleIDContainsFold(v string) predicate.Violation {
	return predicate.Violation(sql.FieldContainsFold(FieldRuleID, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v string) predicate.Violation {
	return predicate.Violation(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v string) predicate.Violation {
	return predicate.Violation(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...string) predicate.Violation {
	return predicate.Violation(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...string) predicate.Violation {
	return predicate.Violation(sql.FieldNotIn(FieldJobID, vs...))
}

// JobIDGT applies the GT predicate on the "job_id" field.
func JobIDGT(v string) predicate.Violation {
	return predicate.Violation(sql.FieldGT(FieldJobID, v))
}

// JobIDGTE applies the GTE predicate on the "job_id" field.
func JobIDGTE(v string) predicate.Violation {
	return predicate.Violation(sql.FieldGTE(FieldJobID, v))
}

// JobIDLT applies the LT predicate on the "job_id" field.
func JobIDLT(v string) predicate.Violation {
	return predicate.Violation(sql.FieldLT(FieldJobID, v))
}

// JobIDLTE applies the LTE predicate on the "job_id" field.
func JobIDLTE(v string) predicate.Violation {
	return predicate.Violation(sql.FieldLTE(FieldJobID, v))
}

// JobIDContains applies the Contains predicate on the "job_id" field.
func JobIDContains(v string) predicate.Violation {
	return predicate.Violation(sql.FieldContains(FieldJobID, v))
}

// JobIDHasPrefix applies the HasPrefix predicate on the "job_id" field.
func JobIDHasPrefix(v string) predicate.Violation {
	return predicate.Violation(sql.FieldHasPrefix(FieldJobID, v))
}

// JobIDHasSuffix applies the HasSuffix predicate on the "job_id" field.
func JobIDHasSuffix(v string) predicate.Violation {
	return predicate.Violation(sql.FieldHasSuffix(FieldJobID, v))
}

// JobIDIsNil applies the IsNil predicate on the "job_id" field.
func JobIDIsNil() predicate.Violation {
	return predicate.Violation(sql.FieldIsNull(FieldJobID))
}

// JobIDNotNil applies the NotNil predicate on the "job_id" field.
func JobIDNotNil() predicate.Violation {
	return predicate.Violation(sql.FieldNotNull(FieldJobID))
}

// JobIDEqualFold applies the EqualFold predicate on the "job_id" field.
func JobIDEqualFold(v string) predicate.Violation {
	return predicate.Violation(sql.FieldEqualFold(FieldJobID, v))
}

// JobIDContainsFold applies the ContainsFold predicate on the "job_id" field.
func JobIDContainsFold(v string) predicate.Violation {
	return predicate.Violation(sql.FieldContainsFold(FieldJobID, v))
}

// ViolationTypeEQ applies the EQ predicate on the "violation_type" field.
func ViolationTypeEQ(v string) predicate.Violation {
	return predicate.Violation(sql.FieldEQ(FieldViolationType, v))
}

// ViolationTypeNEQ applies the NEQ predicate on the "violation_type" field.
func ViolationTypeNEQ(v string) predicate.Violation {
	return predicate.Violation(sql.FieldNEQ(FieldViolationType, v))
}

// ViolationTypeIn applies the In predicate on the "violation_type" field.
func ViolationTypeIn(vs ...string) predicate.Violation {
	return predicate.Violation(sql.FieldIn(FieldViolationType, vs...))
}

// ViolationTypeNotIn applies the NotIn predicate on the "violation_type" field.
func ViolationTypeNotIn(vs ...string) predicate.Violation {
	return predicate.Violation(sql.FieldNotIn(FieldViolationType, vs...))
}

// ViolationTypeGT applies the GT predicate on the "violation_type" field.
func ViolationTypeGT(v string) predicate.Violation {
	return predicate.Violation(sql.FieldGT(FieldViolationType, v))
}

// ViolationTypeGTE applies the GTE predicate on the "violation_type" field.
func ViolationTypeGTE(v string) predicate.Violation {
	return predicate.Violation(sql.FieldGTE(FieldViolationType, v))
}

// ViolationTypeLT applies the LT predicate on the "violation_type" field.
func ViolationTypeLT(v string) predicate.Violation {
	return predicate.Violation(sql.FieldLT(FieldViolationType, v))
}

// ViolationTypeLTE applies the LTE predicate on the "violation_type" field.
func ViolationTypeLTE(v string) predicate.Violation {
	return predicate.Violation(sql.FieldLTE(FieldViolationType, v))
}

// ViolationTypeContains applies the Contains predicate on the "violation_type" field.
func ViolationTypeContains(v string) predicate.Violation {
	return predicate.Violation(sql.FieldContains(FieldViolationType, v))
}

// ViolationTypeHasPrefix applies the HasPrefix predicate on the "violation_type" field.
func ViolationTypeHasPrefix(v string) predicate.Violation {
	return predicate.Violation(sql.FieldHasPrefix(FieldViolationType, v))
}

// ViolationTypeHasSuffix applies the HasSuffix predicate on the "violation_type" field.
func ViolationTypeHasSuffix(v string) predicate.Violation {
	return predicate.Violation(sql.FieldHasSuffix(FieldViolationType, v))
}

// ViolationTypeEqualFold applies the EqualFold predicate on the "violation_type" field.
func ViolationTypeEqualFold(v string) predicate.Violation {
	return predicate.Violation(sql.FieldEqualFold(FieldViolationType, v))
}

// ViolationTypeContainsFold applies the ContainsFold predicate on the "violation_type" field.
func ViolationTypeContainsFold(v string) predicate.Violation {
	return predicate.Violation(sql.FieldContainsFold(FieldViolationType, v))
}

// SeverityEQ applies the EQ predicate on the "severity" field.
func SeverityEQ(v Severity) predicate.Violation {
	return predicate.Violation(sql.FieldEQ(FieldSeverity, v))
}

// SeverityNEQ applies the NEQ predicate on the "severity" field.
func SeverityNEQ(v Severity) predicate.Violation {
	return predicate.Violation(sql.FieldNEQ(FieldSeverity, v))
}

// SeverityIn applies the In predicate on the "severity" field.
func SeverityIn(vs ...Severity) predicate.Violation {
	return predicate.Violation(sql.FieldIn(FieldSeverity, vs...))
}

// SeverityNotIn applies the NotIn predicate on the "severity" field.
func SeverityNotIn(vs ...Severity) predicate.Violation {
	return predicate.Violation(sql.FieldNotIn(FieldSeverity, vs...))
}

// DetectedAtEQ applies the EQ predicate on the "detected_at" field.
func DetectedAtEQ(v time.Time) predicate.Violation {
	return predicate.Violation(sql.FieldEQ(FieldDetectedAt, v))
}

// DetectedAtNEQ applies the NEQ predicate on the "detected_at" field.
func DetectedAtNEQ(v time.Time) predicate.Violation {
	return predicate.Violation(sql.FieldNEQ(FieldDetectedAt, v))
}

// DetectedAtIn applies the In predicate on the "detected_at" field.
func DetectedAtIn(vs ...time.Time) predicate.Violation {
	return predicate.Violation(sql.FieldIn(FieldDetectedAt, vs...))
}

// DetectedAtNotIn applies the NotIn predicate on the "detected_at" field.
func DetectedAtNotIn(vs ...time.Time) predicate.Violation {
	return predicate.Violation(sql.FieldNotIn(FieldDetectedAt, vs...))
}

// DetectedAtGT applies the GT predicate on the "detected_at" field.
func DetectedAtGT(v time.Time) predicate.Violation {
	return predicate.Violation(sql.FieldGT(FieldDetectedAt, v))
}

// DetectedAtGTE applies the GTE predicate on the "detected_at" field.
func DetectedAtGTE(v time.Time) predicate.Violation {
	return predicate.Violation(sql.FieldGTE(FieldDetectedAt, v))
}

// DetectedAtLT applies the LT predicate on the "detected_at" field.
func DetectedAtLT(v time.Time) predicate.Violation {
	return predicate.Violation(sql.FieldLT(FieldDetectedAt, v))
}

// DetectedAtLTE applies the LTE predicate on the "detected_at" field.
func DetectedAtLTE(v time.Time) predicate.Violation {
	return predicate.Violation(sql.FieldLTE(FieldDetectedAt, v))
}

// ResolvedAtEQ applies the EQ predicate on the "resolved_at" field.
func ResolvedAtEQ(v time.Time) predicate.Violation {
	return predicate.Violation(sql.FieldEQ(FieldResolvedAt, v))
}

// ResolvedAtNEQ applies the NEQ predicate on the "resolved_at" field.
func ResolvedAtNEQ(v time.Time) predicate.Violation {
	return predicate.Violation(sql.FieldNEQ(FieldResolvedAt, v))
}

// ResolvedAtIn applies the In predicate on the "resolved_at" field.
func ResolvedAtIn(vs ...time.Time) predicate.Violation {
	return predicate.Violation(sql.FieldIn(FieldResolvedAt, vs...))
}

// ResolvedAtNotIn applies the NotIn predicate on the "resolved_at" field.
func ResolvedAtNotIn(vs ...time.Time) predicate.Violation {
	return predicate.Violation(sql.FieldNotIn(FieldResolvedAt, vs...))
}

// ResolvedAtGT applies the GT predicate on the "resolved_at" field.
func ResolvedAtGT(v time.Time) predicate.Violation {
	return predicate.Violation(sql.FieldGT(FieldResolvedAt, v))
}

// ResolvedAtGTE applies the GTE predicate on the "resolved_at" field.
func ResolvedAtGTE(v time.Time) predicate.Violation {
	return predicate.Violation(sql.FieldGTE(FieldResolvedAt, v))
}

// ResolvedAtLT applies the LT predicate on the "resolved_at" field.
func ResolvedAtLT(v time.Time) predicate.Violation {
	return predicate.Violation(sql.FieldLT(FieldResolvedAt, v))
}

// ResolvedAtLTE applies the LTE predicate on the "resolved_at" field.
func ResolvedAtLTE(v time.Time) predicate.Violation {
	return predicate.Violation(sql.FieldLTE(FieldResolvedAt, v))
}

// ResolvedAtIsNil applies the IsNil predicate on the "resolved_at" field.
func ResolvedAtIsNil() predicate.Violation {
	return predicate.Violation(sql.FieldIsNull(FieldResolvedAt))
}

// ResolvedAtNotNil applies the NotNil predicate on the "resolved_at" field.
func ResolvedAtNotNil() predicate.Violation {
	return predicate.Violation(sql.FieldNotNull(FieldResolvedAt))
}

// HasAccount applies the HasEdge predicate on the "account" edge.
func HasAccount() predicate.Violation {
	return predicate.Violation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AccountTable, AccountColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAccountWith applies the HasEdge predicate on the "account" edge with a given conditions (other predicates).
func HasAccountWith(preds ...predicate.Account) predicate.Violation {
	return predicate.Violation(func(s *sql.Selector) {
		step := newAccountStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRule applies the HasEdge predicate on the "rule" edge.
func HasRule() predicate.Violation {
	return predicate.Violation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RuleTable, RuleColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRuleWith applies the HasEdge predicate on the "rule" edge with a given conditions (other predicates).
func HasRuleWith(preds ...predicate.RateLimitRule) predicate.Violation {
	return predicate.Violation(func(s *sql.Selector) {
		step := newRuleStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Violation) predicate.Violation {
	return predicate.Violation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Violation) predicate.Violation {
	return predicate.Violation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Violation) predicate.Violation {
	return predicate.Violation(sql.NotPredicates(p))
}
