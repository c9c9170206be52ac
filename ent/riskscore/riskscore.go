// Code generated by ent, DO NOT EDIT.

package riskscore

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the riskscore type in the database.
	Label = "risk_score"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "score_id"
	// FieldAccountID holds the string denoting the account_id field in the database.
	FieldAccountID = "account_id"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldFactors holds the string denoting the factors field in the database.
	FieldFactors = "factors"
	// FieldCalculatedAt holds the string denoting the calculated_at field in the database.
	FieldCalculatedAt = "calculated_at"
	// EdgeAccount holds the string denoting the account edge name in mutations.
	EdgeAccount = "account"
	// AccountFieldID holds the string denoting the ID field of the Account.
	AccountFieldID = "account_id"
	// Table holds the table name of the riskscore in the database.
	Table = "risk_scores"
	// AccountTable is the table that holds the account relation/edge.
	AccountTable = "risk_scores"
	// AccountInverseTable is the table name for the Account entity.
	// It exists in this package in order to avoid circular dependency with the "account" package.
	AccountInverseTable = "accounts"
	// AccountColumn is the table column denoting the account relation/edge.
	AccountColumn = "account_id"
)

// Columns holds all SQL columns for riskscore fields.
var Columns = []string{
	FieldID,
	FieldAccountID,
	FieldScore,
	FieldLevel,
	FieldFactors,
	FieldCalculatedAt,
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
	// DefaultCalculatedAt holds the default value on creation for the "calculated_at" field.
	DefaultCalculatedAt func() time.Time
)

// Level defines the type for the "level" enum field.
type Level string

// Level values.
const (
	LevelLOW      Level = "LOW"
	LevelMEDIUM   Level = "MEDIUM"
	LevelHIGH     Level = "HIGH"
	LevelCRITICAL Level = "CRITICAL"
)

func (l Level) String() string {
	return string(l)
}

// LevelValidator is a validator for the "level" field enum values. It is called by the builders before save.
func LevelValidator(l Level) error {
	switch l {
	case LevelLOW, LevelMEDIUM, LevelHIGH, LevelCRITICAL:
		return nil
	default:
		return fmt.Errorf("riskscore: invalid enum value for level field: %q", l)
	}
}

// OrderOption defines the ordering options for the RiskScore queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAccountID orders the results by the account_id field.
func ByAccountID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccountID, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// ByCalculatedAt orders the results by the calculated_at field.
func ByCalculatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCalculatedAt, opts...).ToFunc()
}

// ByAccountField orders the results by account field.
func ByAccountField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAccountStep(), sql.OrderByField(field, opts...))
	}
}
func newAccountStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AccountInverseTable, AccountFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AccountTable, AccountColumn),
	)
}
