// Code generated by ent, DO NOT EDIT.

package ratelimitrule

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the ratelimitrule type in the database.
	Label = "rate_limit_rule"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "rule_id"
	// FieldActionType holds the string denoting the action_type field in the database.
	FieldActionType = "action_type"
	// FieldMaxCount holds the string denoting the max_count field in the database.
	FieldMaxCount = "max_count"
	// FieldWindowSeconds holds the string denoting the window_seconds field in the database.
	FieldWindowSeconds = "window_seconds"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeViolations holds the string denoting the violations edge name in mutations.
	EdgeViolations = "violations"
	// ViolationFieldID holds the string denoting the ID field of the Violation.
	ViolationFieldID = "violation_id"
	// Table holds the table name of the ratelimitrule in the database.
	Table = "rate_limit_rules"
	// ViolationsTable is the table that holds the violations relation/edge.
	ViolationsTable = "violations"
	// ViolationsInverseTable is the table name for the Violation entity.
	// It exists in this package in order to avoid circular dependency with the "violation" package.
	ViolationsInverseTable = "violations"
	// ViolationsColumn is the table column denoting the violations relation/edge.
	ViolationsColumn = "rule_id"
)

// Columns holds all SQL columns for ratelimitrule fields.
var Columns = []string{
	FieldID,
	FieldActionType,
	FieldMaxCount,
	FieldWindowSeconds,
	FieldIsActive,
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
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the RateLimitRule queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByActionType orders the results by the action_type field.
func ByActionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActionType, opts...).ToFunc()
}

// ByMaxCount orders the results by the max_count field.
func ByMaxCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxCount, opts...).ToFunc()
}

// ByWindowSeconds orders the results by the window_seconds field.
func ByWindowSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWindowSeconds, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
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
func newViolationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ViolationsInverseTable, ViolationFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ViolationsTable, ViolationsColumn),
	)
}
