// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/leadrelay/relay/ent/account"
	"github.com/leadrelay/relay/ent/riskscore"
)

// RiskScore is the model entity for the RiskScore schema.
type RiskScore struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// AccountID holds the value of the "account_id" field.
	AccountID string `json:"account_id,omitempty"`
	// Clamped to [0,1]
	Score float64 `json:"score,omitempty"`
	// Level holds the value of the "level" field.
	Level riskscore.Level `json:"level,omitempty"`
	// Diagnostic breakdown of score contributions
	Factors map[string]interface{} `json:"factors,omitempty"`
	// CalculatedAt holds the value of the "calculated_at" field.
	CalculatedAt time.Time `json:"calculated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RiskScoreQuery when eager-loading is set.
	Edges        RiskScoreEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RiskScoreEdges holds the relations/edges for other nodes in the graph.
type RiskScoreEdges struct {
	// Account holds the value of the account edge.
	Account *Account `json:"account,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AccountOrErr returns the Account value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RiskScoreEdges) AccountOrErr() (*Account, error) {
	if e.Account != nil {
		return e.Account, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: account.Label}
	}
	return nil, &NotLoadedError{edge: "account"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RiskScore) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case riskscore.FieldFactors:
			values[i] = new([]byte)
		case riskscore.FieldScore:
			values[i] = new(sql.NullFloat64)
		case riskscore.FieldID, riskscore.FieldAccountID, riskscore.FieldLevel:
			values[i] = new(sql.NullString)
		case riskscore.FieldCalculatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RiskScore fields.
func (_m *RiskScore) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case riskscore.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case riskscore.FieldAccountID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field account_id", values[i])
			} else if value.Valid {
				_m.AccountID = value.String
			}
		case riskscore.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = value.Float64
			}
		case riskscore.FieldLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = riskscore.Level(value.String)
			}
		case riskscore.FieldFactors:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field factors", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Factors); err != nil {
					return fmt.Errorf("unmarshal field factors: %w", err)
				}
			}
		case riskscore.FieldCalculatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field calculated_at", values[i])
			} else if value.Valid {
				_m.CalculatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RiskScore.
// This includes values selected through modifiers, order, etc.
func (_m *RiskScore) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAccount queries the "account" edge of the RiskScore entity.
func (_m *RiskScore) QueryAccount() *AccountQuery {
	return NewRiskScoreClient(_m.config).QueryAccount(_m)
}

// Update returns a builder for updating this RiskScore.
// Note that you need to call RiskScore.Unwrap() before calling this method if this RiskScore
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RiskScore) Update() *RiskScoreUpdateOne {
	return NewRiskScoreClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RiskScore entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RiskScore) Unwrap() *RiskScore {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RiskScore is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RiskScore) String() string {
	var builder strings.Builder
	builder.WriteString("RiskScore(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("account_id=")
	builder.WriteString(_m.AccountID)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("level=")
	builder.WriteString(fmt.Sprintf("%v", _m.Level))
	builder.WriteString(", ")
	builder.WriteString("factors=")
	builder.WriteString(fmt.Sprintf("%v", _m.Factors))
	builder.WriteString(", ")
	builder.WriteString("calculated_at=")
	builder.WriteString(_m.CalculatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RiskScores is a parsable slice of RiskScore.
type RiskScores []*RiskScore
