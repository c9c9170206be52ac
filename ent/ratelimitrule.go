// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/leadrelay/relay/ent/ratelimitrule"
)

// RateLimitRule is the model entity for the RateLimitRule schema.
type RateLimitRule struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Job type this rule constrains, or * for all
	ActionType string `json:"action_type,omitempty"`
	// MaxCount holds the value of the "max_count" field.
	MaxCount int `json:"max_count,omitempty"`
	// WindowSeconds holds the value of the "window_seconds" field.
	WindowSeconds int `json:"window_seconds,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RateLimitRuleQuery when eager-loading is set.
	Edges        RateLimitRuleEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RateLimitRuleEdges holds the relations/edges for other nodes in the graph.
type RateLimitRuleEdges struct {
	// Violations holds the value of the violations edge.
	Violations []*Violation `json:"violations,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ViolationsOrErr returns the Violations value or an error if the edge
// was not loaded in eager-loading.
func (e RateLimitRuleEdges) ViolationsOrErr() ([]*Violation, error) {
	if e.loadedTypes[0] {
		return e.Violations, nil
	}
	return nil, &NotLoadedError{edge: "violations"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RateLimitRule) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case ratelimitrule.FieldIsActive:
			values[i] = new(sql.NullBool)
		case ratelimitrule.FieldMaxCount, ratelimitrule.FieldWindowSeconds:
			values[i] = new(sql.NullInt64)
		case ratelimitrule.FieldID, ratelimitrule.FieldActionType:
			values[i] = new(sql.NullString)
		case ratelimitrule.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RateLimitRule fields.
func (_m *RateLimitRule) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case ratelimitrule.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case ratelimitrule.FieldActionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action_type", values[i])
			} else if value.Valid {
				_m.ActionType = value.String
			}
		case ratelimitrule.FieldMaxCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_count", values[i])
			} else if value.Valid {
				_m.MaxCount = int(value.Int64)
			}
		case ratelimitrule.FieldWindowSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field window_seconds", values[i])
			} else if value.Valid {
				_m.WindowSeconds = int(value.Int64)
			}
		case ratelimitrule.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case ratelimitrule.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RateLimitRule.
// This includes values selected through modifiers, order, etc.
func (_m *RateLimitRule) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryViolations queries the "violations" edge of the RateLimitRule entity.
func (_m *RateLimitRule) QueryViolations() *ViolationQuery {
	return NewRateLimitRuleClient(_m.config).QueryViolations(_m)
}

// Update returns a builder for updating this RateLimitRule.
// Note that you need to call RateLimitRule.Unwrap() before calling this method if this RateLimitRule
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RateLimitRule) Update() *RateLimitRuleUpdateOne {
	return NewRateLimitRuleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RateLimitRule entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RateLimitRule) Unwrap() *RateLimitRule {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RateLimitRule is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RateLimitRule) String() string {
	var builder strings.Builder
	builder.WriteString("RateLimitRule(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("action_type=")
	builder.WriteString(_m.ActionType)
	builder.WriteString(", ")
	builder.WriteString("max_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxCount))
	builder.WriteString(", ")
	builder.WriteString("window_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.WindowSeconds))
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RateLimitRules is a parsable slice of RateLimitRule.
type RateLimitRules []*RateLimitRule
