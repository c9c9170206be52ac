// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/leadrelay/relay/ent/account"
	"github.com/leadrelay/relay/ent/ratelimitrule"
	"github.com/leadrelay/relay/ent/violation"
)

// Violation is the model entity for the Violation schema.
type Violation struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AccountID holds the value of the "account_id" field.
	AccountID string `json:"account_id,omitempty"`
	// RuleID holds the value of the "rule_id" field.
	RuleID string `json:"rule_id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID *string `json:"job_id,omitempty"`
	// ViolationType holds the value of the "violation_type" field.
	ViolationType string `json:"violation_type,omitempty"`
	// Severity holds the value of the "severity" field.
	Severity violation.Severity `json:"severity,omitempty"`
	// DetectedAt holds the value of the "detected_at" field.
	DetectedAt time.Time `json:"detected_at,omitempty"`
	// ResolvedAt holds the value of the "resolved_at" field.
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ViolationQuery when eager-loading is set.
	Edges        ViolationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ViolationEdges holds the relations/edges for other nodes in the graph.
type ViolationEdges struct {
	// Account holds the value of the account edge.
	Account *Account `json:"account,omitempty"`
	// Rule holds the value of the rule edge.
	Rule *RateLimitRule `json:"rule,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// AccountOrErr returns the Account value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ViolationEdges) AccountOrErr() (*Account, error) {
	if e.Account != nil {
		return e.Account, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: account.Label}
	}
	return nil, &NotLoadedError{edge: "account"}
}

// RuleOrErr returns the Rule value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ViolationEdges) RuleOrErr() (*RateLimitRule, error) {
	if e.Rule != nil {
		return e.Rule, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: ratelimitrule.Label}
	}
	return nil, &NotLoadedError{edge: "rule"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Violation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case violation.FieldID, violation.FieldAccountID, violation.FieldRuleID, violation.FieldJobID, violation.FieldViolationType, violation.FieldSeverity:
			values[i] = new(sql.NullString)
		case violation.FieldDetectedAt, violation.FieldResolvedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Violation fields.
func (_m *Violation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case violation.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case violation.FieldAccountID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field account_id", values[i])
			} else if value.Valid {
				_m.AccountID = value.String
			}
		case violation.FieldRuleID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rule_id", values[i])
			} else if value.Valid {
				_m.RuleID = value.String
			}
		case violation.FieldJobID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value.Valid {
				_m.JobID = new(string)
				*_m.JobID = value.String
			}
		case violation.FieldViolationType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field violation_type", values[i])
			} else if value.Valid {
				_m.ViolationType = value.String
			}
		case violation.FieldSeverity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field severity", values[i])
			} else if value.Valid {
				_m.Severity = violation.Severity(value.String)
			}
		case violation.FieldDetectedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field detected_at", values[i])
			} else if value.Valid {
				_m.DetectedAt = value.Time
			}
		case violation.FieldResolvedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_at", values[i])
			} else if value.Valid {
				_m.ResolvedAt = new(time.Time)
				*_m.ResolvedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Violation.
// This includes values selected through modifiers, order, etc.
func (_m *Violation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAccount queries the "account" edge of the Violation entity.
func (_m *Violation) QueryAccount() *AccountQuery {
	return NewViolationClient(_m.config).QueryAccount(_m)
}

// QueryRule queries the "rule" edge of the Violation entity.
func (_m *Violation) QueryRule() *RateLimitRuleQuery {
	return NewViolationClient(_m.config).QueryRule(_m)
}

// Update returns a builder for updating this Violation.
// Note that you need to call Violation.Unwrap() before calling this method if this Violation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Violation) Update() *ViolationUpdateOne {
	return NewViolationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Violation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Violation) Unwrap() *Violation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Violation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Violation) String() string {
	var builder strings.Builder
	builder.WriteString("Violation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("account_id=")
	builder.WriteString(_m.AccountID)
	builder.WriteString(", ")
	builder.WriteString("rule_id=")
	builder.WriteString(_m.RuleID)
	builder.WriteString(", ")
	if v := _m.JobID; v != nil {
		builder.WriteString("job_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("violation_type=")
	builder.WriteString(_m.ViolationType)
	builder.WriteString(", ")
	builder.WriteString("severity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Severity))
	builder.WriteString(", ")
	builder.WriteString("detected_at=")
	builder.WriteString(_m.DetectedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ResolvedAt; v != nil {
		builder.WriteString("resolved_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Violations is a parsable slice of Violation.
type Violations []*Violation
