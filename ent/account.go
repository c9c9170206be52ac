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
	"github.com/leadrelay/relay/ent/user"
)

// Account is the model entity for the Account schema.
type Account struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// ProfileURL holds the value of the "profile_url" field.
	ProfileURL string `json:"profile_url,omitempty"`
	// DisplayName holds the value of the "display_name" field.
	DisplayName string `json:"display_name,omitempty"`
	// ValidationStatus holds the value of the "validation_status" field.
	ValidationStatus account.ValidationStatus `json:"validation_status,omitempty"`
	// HealthStatus holds the value of the "health_status" field.
	HealthStatus account.HealthStatus `json:"health_status,omitempty"`
	// Explicit control-plane pause; consumed by the risk oracle
	UserPaused bool `json:"user_paused,omitempty"`
	// Last time a valid platform session was observed
	SessionValidAt *time.Time `json:"session_valid_at,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AccountQuery when eager-loading is set.
	Edges        AccountEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AccountEdges holds the relations/edges for other nodes in the graph.
type AccountEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// Agents holds the value of the agents edge.
	Agents []*Agent `json:"agents,omitempty"`
	// Jobs holds the value of the jobs edge.
	Jobs []*Job `json:"jobs,omitempty"`
	// Violations holds the value of the violations edge.
	Violations []*Violation `json:"violations,omitempty"`
	// RiskScores holds the value of the risk_scores edge.
	RiskScores []*RiskScore `json:"risk_scores,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AccountEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// AgentsOrErr returns the Agents value or an error if the edge
// was not loaded in eager-loading.
func (e AccountEdges) AgentsOrErr() ([]*Agent, error) {
	if e.loadedTypes[1] {
		return e.Agents, nil
	}
	return nil, &NotLoadedError{edge: "agents"}
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e AccountEdges) JobsOrErr() ([]*Job, error) {
	if e.loadedTypes[2] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// ViolationsOrErr returns the Violations value or an error if the edge
// was not loaded in eager-loading.
func (e AccountEdges) ViolationsOrErr() ([]*Violation, error) {
	if e.loadedTypes[3] {
		return e.Violations, nil
	}
	return nil, &NotLoadedError{edge: "violations"}
}

// RiskScoresOrErr returns the RiskScores value or an error if the edge
// was not loaded in eager-loading.
func (e AccountEdges) RiskScoresOrErr() ([]*RiskScore, error) {
	if e.loadedTypes[4] {
		return e.RiskScores, nil
	}
	return nil, &NotLoadedError{edge: "risk_scores"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Account) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case account.FieldMetadata:
			values[i] = new([]byte)
		case account.FieldUserPaused:
			values[i] = new(sql.NullBool)
		case account.FieldID, account.FieldUserID, account.FieldProfileURL, account.FieldDisplayName, account.FieldValidationStatus, account.FieldHealthStatus:
			values[i] = new(sql.NullString)
		case account.FieldSessionValidAt, account.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Account fields.
func (_m *Account) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case account.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case account.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case account.FieldProfileURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field profile_url", values[i])
			} else if value.Valid {
				_m.ProfileURL = value.String
			}
		case account.FieldDisplayName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field display_name", values[i])
			} else if value.Valid {
				_m.DisplayName = value.String
			}
		case account.FieldValidationStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field validation_status", values[i])
			} else if value.Valid {
				_m.ValidationStatus = account.ValidationStatus(value.String)
			}
		case account.FieldHealthStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field health_status", values[i])
			} else if value.Valid {
				_m.HealthStatus = account.HealthStatus(value.String)
			}
		case account.FieldUserPaused:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field user_paused", values[i])
			} else if value.Valid {
				_m.UserPaused = value.Bool
			}
		case account.FieldSessionValidAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field session_valid_at", values[i])
			} else if value.Valid {
				_m.SessionValidAt = new(time.Time)
				*_m.SessionValidAt = value.Time
			}
		case account.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case account.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Account.
// This includes values selected through modifiers, order, etc.
func (_m *Account) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the Account entity.
func (_m *Account) QueryUser() *UserQuery {
	return NewAccountClient(_m.config).QueryUser(_m)
}

// QueryAgents queries the "agents" edge of the Account entity.
func (_m *Account) QueryAgents() *AgentQuery {
	return NewAccountClient(_m.config).QueryAgents(_m)
}

// QueryJobs queries the "jobs" edge of the Account entity.
func (_m *Account) QueryJobs() *JobQuery {
	return NewAccountClient(_m.config).QueryJobs(_m)
}

// QueryViolations queries the "violations" edge of the Account entity.
func (_m *Account) QueryViolations() *ViolationQuery {
	return NewAccountClient(_m.config).QueryViolations(_m)
}

// QueryRiskScores queries the "risk_scores" edge of the Account entity.
func (_m *Account) QueryRiskScores() *RiskScoreQuery {
	return NewAccountClient(_m.config).QueryRiskScores(_m)
}

// Update returns a builder for updating this Account.
// Note that you need to call Account.Unwrap() before calling this method if this Account
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Account) Update() *AccountUpdateOne {
	return NewAccountClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Account entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Account) Unwrap() *Account {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Account is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Account) String() string {
	var builder strings.Builder
	builder.WriteString("Account(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("profile_url=")
	builder.WriteString(_m.ProfileURL)
	builder.WriteString(", ")
	builder.WriteString("display_name=")
	builder.WriteString(_m.DisplayName)
	builder.WriteString(", ")
	builder.WriteString("validation_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.ValidationStatus))
	builder.WriteString(", ")
	builder.WriteString("health_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.HealthStatus))
	builder.WriteString(", ")
	builder.WriteString("user_paused=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserPaused))
	builder.WriteString(", ")
	if v := _m.SessionValidAt; v != nil {
		builder.WriteString("session_valid_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Accounts is a parsable slice of Account.
type Accounts []*Account
