// Code generated by ent, DO NOT EDIT.

package riskscore

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/leadrelay/relay/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.RiskScore {
	return predicate.RiskScore(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.RiskScore {
	return predicate.RiskScore(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.RiskScore {
	return predicate.RiskScore(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.RiskScore {
	return predicate.RiskScore(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.RiskScore {
	return predicate.RiskScore(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.RiskScore {
	return predicate.RiskScore(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.RiskScore {
	return predicate.RiskScore(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.RiskScore {
	return predicate.RiskScore(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.RiskScore {
	return predicate.RiskScore(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.RiskScore {
	return predicate.RiskScore(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.RiskScore {
	return predicate.RiskScore(sql.FieldContainsFold(FieldID, id))
}

// AccountID applies equality check predicate on the "account_id" field. It's identical to AccountIDEQ.
func AccountID(v string) predicate.RiskScore {
	return predicate.RiskScore(sql.FieldEQ(FieldAccountID, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.RiskScore {
	return predicate.RiskScore(sql.FieldEQ(FieldScore, v))
}

// CalculatedAt applies equality check predicate on the "calculated_at" field. It's identical to CalculatedAtEQ.
func CalculatedAt(v time.Time) predicate.RiskScore {
	return predicate.RiskScore(sql.FieldEQ(FieldCalculatedAt, v))
}

// AccountIDEQ applies the EQ predicate on the "account_id" field.
func AccountIDEQ(v string) predicate.RiskScore {
	return predicate.RiskScore(sql.FieldEQ(FieldAccountID, v))
}

// AccountIDNEQ applies the NEQ predicate on the "account_id" field.
func AccountIDNEQ(v string) predicate.RiskScore {
	return predicate.RiskScore(sql.FieldNEQ(FieldAccountID, v))
}

// AccountIDIn applies the In predicate on the "account_id" field.
func AccountIDIn(vs ...string) predicate.RiskScore {
	return predicate.RiskScore(sql.FieldIn(FieldAccountID, vs...))
}

// AccountIDNotIn applies the NotIn predicate on the "account_id" field.
func AccountIDNotIn(vs ...string) predicate.RiskScore {
	return predicate.RiskScore(sql.FieldNotIn(FieldAccountID, vs...))
}

// AccountIDGT applies the GT predicate on the "account_id" field.
func AccountIDGT(v string) predicate.RiskScore {
	return predicate.RiskScore(sql.FieldGT(FieldAccountID, v))
}

// AccountIDGTE applies the GTE predicate on the "account_id" field.
func AccountIDGTE(v string) predicate.RiskScore {
	return predicate.RiskScore(sql.FieldGTE(FieldAccountID, v))
}

// AccountIDLT applies the LT predicate on the "account_id" field.
func AccountIDLT(v string) predicate.RiskScore {
	return predicate.RiskScore(sql.FieldLT(FieldAccountID, v))
}

// AccountIDLTE applies the LTE predicate on the "account_id" field.
func AccountIDLTE(v string) predicate.RiskScore {
	return predicate.RiskScore(sql.FieldLTE(FieldAccountID, v))
}

// AccountIDContains applies the Contains predicate on the "account_id" field.
func AccountIDContains(v string) predicate.RiskScore {
	return predicate.RiskScore(sql.FieldContains(FieldAccountID, v))
}

// AccountIDHasPrefix applies the HasPrefix predicate on the "account_id" field.
func AccountIDHasPrefix(v string) predicate.RiskScore {
	return predicate.RiskScore(sql.FieldHasPrefix(FieldAccountID, v))
}

// AccountIDHasSuffix applies the HasSuffix predicate on the "account_id" field.
func AccountIDHasSuffix(v string) predicate.RiskScore {
	return predicate.RiskScore(sql.FieldHasSuffix(FieldAccountID, v))
}

// AccountIDEqualFold applies the EqualFold predicate on the "account_id" field.
func AccountIDEqualFold(v string) predicate.RiskScore {
	return predicate.RiskScore(sql.FieldEqualFold(FieldAccountID, v))
}

// AccountIDContainsFold applies the ContainsFold predicate on the "account_id" field.
func AccountIDContainsFold(v string) predicate.RiskScore {
	return predicate.RiskScore(sql.FieldContainsFold(FieldAccountID, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.RiskScore {
	return predicate.RiskScore(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.RiskScore {
	return predicate.RiskScore(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.RiskScore {
	return predicate.RiskScore(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.RiskScore {
	return predicate.RiskScore(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.RiskScore {
	return predicate.RiskScore(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.RiskScore {
	return predicate.RiskScore(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.RiskScore {
	return predicate.RiskScore(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.RiskScore {
	return predicate.RiskScore(sql.FieldLTE(FieldScore, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v Level) predicate.RiskScore {
	return predicate.RiskScore(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v Level) predicate.RiskScore {
	return predicate.RiskScore(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...Level) predicate.RiskScore {
	return predicate.RiskScore(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...Level) predicate.RiskScore {
	return predicate.RiskScore(sql.FieldNotIn(FieldLevel, vs...))
}

// FactorsIsNil applies the IsNil predicate on the "factors" field.
func FactorsIsNil() predicate.RiskScore {
	return predicate.RiskScore(sql.FieldIsNull(FieldFactors))
}

// FactorsNotNil applies the NotNil predicate on the "factors" field.
func FactorsNotNil() predicate.RiskScore {
	return predicate.RiskScore(sql.FieldNotNull(FieldFactors))
}

// CalculatedAtEQ applies the EQ predicate on the "calculated_at" field.
func CalculatedAtEQ(v time.Time) predicate.RiskScore {
	return predicate.RiskScore(sql.FieldEQ(FieldCalculatedAt, v))
}

// CalculatedAtNEQ applies the NEQ predicate on the "calculated_at" field.
func CalculatedAtNEQ(v time.Time) predicate.RiskScore {
	return predicate.RiskScore(sql.FieldNEQ(FieldCalculatedAt, v))
}

// CalculatedAtIn applies the In predicate on the "calculated_at" field.
func CalculatedAtIn(vs ...time.Time) predicate.RiskScore {
	return predicate.RiskScore(sql.FieldIn(FieldCalculatedAt, vs...))
}

// CalculatedAtNotIn applies the NotIn predicate on the "calculated_at" field.
func CalculatedAtNotIn(vs ...time.Time) predicate.RiskScore {
	return predicate.RiskScore(sql.FieldNotIn(FieldCalculatedAt, vs...))
}

// CalculatedAtGT applies the GT predicate on the "calculated_at" field.
func CalculatedAtGT(v time.Time) predicate.RiskScore {
	return predicate.RiskScore(sql.FieldGT(FieldCalculatedAt, v))
}

// CalculatedAtGTE applies the GTE predicate on the "calculated_at" field.
func CalculatedAtGTE(v time.Time) predicate.RiskScore {
	return predicate.RiskScore(sql.FieldGTE(FieldCalculatedAt, v))
}

// CalculatedAtLT applies the LT predicate on the "calculated_at" field.
func CalculatedAtLT(v time.Time) predicate.RiskScore {
	return predicate.RiskScore(sql.FieldLT(FieldCalculatedAt, v))
}

// CalculatedAtLTE applies the LTE predicate on the "calculated_at" field.
func CalculatedAtLTE(v time.Time) predicate.RiskScore {
	return predicate.RiskScore(sql.FieldLTE(FieldCalculatedAt, v))
}

// HasAccount applies the HasEdge predicate on the "account" edge.
func HasAccount() predicate.RiskScore {
	return predicate.RiskScore(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AccountTable, AccountColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAccountWith applies the HasEdge predicate on the "account" edge with a given conditions (other predicates).
func HasAccountWith(preds ...predicate.Account) predicate.RiskScore {
	return predicate.RiskScore(func(s *sql.Selector) {
		step := newAccountStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RiskScore) predicate.RiskScore {
	return predicate.RiskScore(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RiskScore) predicate.RiskScore {
	return predicate.RiskScore(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RiskScore) predicate.RiskScore {
	return predicate.RiskScore(sql.NotPredicates(p))
}
