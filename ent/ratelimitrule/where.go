// Code generated by ent, DO NOT EDIT.

package ratelimitrule

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/leadrelay/relay/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.RateLimitRule {
	return predicate.RateLimitRule(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.RateLimitRule {
	return predicate.RateLimitRule(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.RateLimitRule {
	return predicate.RateLimitRule(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.RateLimitRule {
	return predicate.RateLimitRule(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.RateLimitRule {
	return predicate.RateLimitRule(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.RateLimitRule {
	return predicate.RateLimitRule(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.RateLimitRule {
	return predicate.RateLimitRule(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.RateLimitRule {
	return predicate.RateLimitRule(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.RateLimitRule {
	return predicate.RateLimitRule(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.RateLimitRule {
	return predicate.RateLimitRule(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.RateLimitRule {
	return predicate.RateLimitRule(sql.FieldContainsFold(FieldID, id))
}

// ActionType applies equality check predicate on the "action_type" field. It's identical to ActionTypeEQ.
func ActionType(v string) predicate.RateLimitRule {
	return predicate.RateLimitRule(sql.FieldEQ(FieldActionType, v))
}

// MaxCount applies equality check predicate on the "max_count" field. It's identical to MaxCountEQ.
func MaxCount(v int) predicate.RateLimitRule {
	return predicate.RateLimitRule(sql.FieldEQ(FieldMaxCount, v))
}

// WindowSeconds applies equality check predicate on the "window_seconds" field. It's identical to WindowSecondsEQ.
func WindowSeconds(v int) predicate.RateLimitRule {
	return predicate.RateLimitRule(sql.FieldEQ(FieldWindowSeconds, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.RateLimitRule {
	return predicate.RateLimitRule(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RateLimitRule {
	return predicate.RateLimitRule(sql.FieldEQ(FieldCreatedAt, v))
}

// ActionTypeEQ applies the EQ predicate on the "action_type" field.
func ActionTypeEQ(v string) predicate.RateLimitRule {
	return predicate.RateLimitRule(sql.FieldEQ(FieldActionType, v))
}

// ActionTypeNEQ applies the NEQ predicate on the "action_type" field.
func ActionTypeNEQ(v string) predicate.RateLimitRule {
	return predicate.RateLimitRule(sql.FieldNEQ(FieldActionType, v))
}

// ActionTypeIn applies the In predicate on the "action_type" field.
func ActionTypeIn(vs ...string) predicate.RateLimitRule {
	return predicate.RateLimitRule(sql.FieldIn(FieldActionType, vs...))
}

// ActionTypeNotIn applies the NotIn predicate on the "action_type" field.
func ActionTypeNotIn(vs ...string) predicate.RateLimitRule {
	return predicate.RateLimitRule(sql.FieldNotIn(FieldActionType, vs...))
}

// ActionTypeGT applies the GT predicate on the "action_type" field.
func ActionTypeGT(v string) predicate.RateLimitRule {
	return predicate.RateLimitRule(sql.FieldGT(FieldActionType, v))
}

// ActionTypeGTE applies the GTE predicate on the "action_type" field.
func ActionTypeGTE(v string) predicate.RateLimitRule {
	return predicate.RateLimitRule(sql.FieldGTE(FieldActionType, v))
}

// ActionTypeLT applies the LT predicate on the "action_type" field.
func ActionTypeLT(v string) predicate.RateLimitRule {
	return predicate.RateLimitRule(sql.FieldLT(FieldActionType, v))
}

// ActionTypeLTE applies the LTE predicate on the "action_type" field.
func ActionTypeLTE(v string) predicate.RateLimitRule {
	return predicate.RateLimitRule(sql.FieldLTE(FieldActionType, v))
}

// ActionTypeContains applies the Contains predicate on the "action_type" field.
func ActionTypeContains(v string) predicate.RateLimitRule {
	return predicate.RateLimitRule(sql.FieldContains(FieldActionType, v))
}

// ActionTypeHasPrefix applies the HasPrefix predicate on the "action_type" field.
func ActionTypeHasPrefix(v string) predicate.RateLimitRule {
	return predicate.RateLimitRule(sql.FieldHasPrefix(FieldActionType, v))
}

// ActionTypeHasSuffix applies the HasSuffix predicate on the "action_type" field.
func ActionTypeHasSuffix(v string) predicate.RateLimitRule {
	return predicate.RateLimitRule(sql.FieldHasSuffix(FieldActionType, v))
}

// ActionTypeEqualFold applies the EqualFold predicate on the "action_type" field.
func ActionTypeEqualFold(v string) predicate.RateLimitRule {
	return predicate.RateLimitRule(sql.FieldEqualFold(FieldActionType, v))
}

// ActionTypeContainsFold applies the ContainsFold predicate on the "action_type" field.
func ActionTypeContainsFold(v string) predicate.RateLimitRule {
	return predicate.RateLimitRule(sql.FieldContainsFold(FieldActionType, v))
}

// MaxCountEQ applies the EQ predicate on the "max_count" field.
func MaxCountEQ(v int) predicate.RateLimitRule {
	return predicate.RateLimitRule(sql.FieldEQ(FieldMaxCount, v))
}

// MaxCountNEQ applies the NEQ predicate on the "max_count" field.
func MaxCountNEQ(v int) predicate.RateLimitRule {
	return predicate.RateLimitRule(sql.FieldNEQ(FieldMaxCount, v))
}

// MaxCountIn applies the In predicate on the "max_count" field.
func MaxCountIn(vs ...int) predicate.RateLimitRule {
	return predicate.RateLimitRule(sql.FieldIn(FieldMaxCount, vs...))
}

// MaxCountNotIn applies the NotIn predicate on the "max_count" field.
func MaxCountNotIn(vs ...int) predicate.RateLimitRule {
	return predicate.RateLimitRule(sql.FieldNotIn(FieldMaxCount, vs...))
}

// MaxCountGT applies the GT predicate on the "max_count" field.
func MaxCountGT(v int) predicate.RateLimitRule {
	return predicate.RateLimitRule(sql.FieldGT(FieldMaxCount, v))
}

// MaxCountGTE applies the GTE predicate on the "max_count" field.
func MaxCountGTE(v int) predicate.RateLimitRule {
	return predicate.RateLimitRule(sql.FieldGTE(FieldMaxCount, v))
}

// MaxCountLT applies the LT predicate on the "max_count" field.
func MaxCountLT(v int) predicate.RateLimitRule {
	return predicate.RateLimitRule(sql.FieldLT(FieldMaxCount, v))
}

// MaxCountLTE applies the LTE predicate on the "max_count" field.
func MaxCountLTE(v int) predicate.RateLimitRule {
	return predicate.RateLimitRule(sql.FieldLTE(FieldMaxCount, v))
}

// WindowSecondsEQ applies the EQ predicate on the "window_seconds" field.
func WindowSecondsEQ(v int) predicate.RateLimitRule {
	return predicate.RateLimitRule(sql.FieldEQ(FieldWindowSeconds, v))
}

// WindowSecondsNEQ applies the NEQ predicate on the "window_seconds" field.
func WindowSecondsNEQ(v int) predicate.RateLimitRule {
	return predicate.RateLimitRule(sql.FieldNEQ(FieldWindowSeconds, v))
}

// WindowSecondsIn applies the In predicate on the "window_seconds" field.
func WindowSecondsIn(vs ...int) predicate.RateLimitRule {
	return predicate.RateLimitRule(sql.FieldIn(FieldWindowSeconds, vs...))
}

// WindowSecondsNotIn applies the NotIn predicate on the "window_seconds" field.
func WindowSecondsNotIn(vs ...int) predicate.RateLimitRule {
	return predicate.RateLimitRule(sql.FieldNotIn(FieldWindowSeconds, vs...))
}

// WindowSecondsGT applies the GT predicate on the "window_seconds" field.
func WindowSecondsGT(v int) predicate.RateLimitRule {
	return predicate.RateLimitRule(sql.FieldGT(FieldWindowSeconds, v))
}

// WindowSecondsGTE applies the GTE predicate on the "window_seconds" field.
func WindowSecondsGTE(v int) predicate.RateLimitRule {
	return predicate.RateLimitRule(sql.FieldGTE(FieldWindowSeconds, v))
}

// WindowSecondsLT applies the LT predicate on the "window_seconds" field.
func WindowSecondsLT(v int) predicate.RateLimitRule {
	return predicate.RateLimitRule(sql.FieldLT(FieldWindowSeconds, v))
}

// WindowSecondsLTE applies the LTE predicate on the "window_seconds" field.
func WindowSecondsLTE(v int) predicate.RateLimitRule {
	return predicate.RateLimitRule(sql.FieldLTE(FieldWindowSeconds, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.RateLimitRule {
	return predicate.RateLimitRule(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.RateLimitRule {
	return predicate.RateLimitRule(sql.FieldNEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RateLimitRule {
	return predicate.RateLimitRule(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RateLimitRule {
	return predicate.RateLimitRule(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RateLimitRule {
	return predicate.RateLimitRule(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RateLimitRule {
	return predicate.RateLimitRule(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RateLimitRule {
	return predicate.RateLimitRule(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RateLimitRule {
	return predicate.RateLimitRule(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RateLimitRule {
	return predicate.RateLimitRule(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RateLimitRule {
	return predicate.RateLimitRule(sql.FieldLTE(FieldCreatedAt, v))
}

// HasViolations applies the HasEdge predicate on the "violations" edge.
func HasViolations() predicate.RateLimitRule {
	return predicate.RateLimitRule(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ViolationsTable, ViolationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasViolationsWith applies the HasEdge predicate on the "violations" edge with a given conditions (other predicates).
func HasViolationsWith(preds ...predicate.Violation) predicate.RateLimitRule {
	return predicate.RateLimitRule(func(s *sql.Selector) {
		step := newViolationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RateLimitRule) predicate.RateLimitRule {
	return predicate.RateLimitRule(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RateLimitRule) predicate.RateLimitRule {
	return predicate.RateLimitRule(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RateLimitRule) predicate.RateLimitRule {
	return predicate.RateLimitRule(sql.NotPredicates(p))
}
