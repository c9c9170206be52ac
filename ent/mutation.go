// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/leadrelay/relay/ent/account"
	"github.com/leadrelay/relay/ent/agent"
	"github.com/leadrelay/relay/ent/agenttoken"
	"github.com/leadrelay/relay/ent/auditentry"
	"github.com/leadrelay/relay/ent/job"
	"github.com/leadrelay/relay/ent/jobresult"
	"github.com/leadrelay/relay/ent/predicate"
	"github.com/leadrelay/relay/ent/ratelimitrule"
	"github.com/leadrelay/relay/ent/riskscore"
	"github.com/leadrelay/relay/ent/user"
	"github.com/leadrelay/relay/ent/violation"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAccount       = "Account"
	TypeAgent         = "Agent"
	TypeAgentToken    = "AgentToken"
	TypeAuditEntry    = "AuditEntry"
	TypeJob           = "Job"
	TypeJobResult     = "JobResult"
	TypeRateLimitRule = "RateLimitRule"
	TypeRiskScore     = "RiskScore"
	TypeUser          = "User"
	TypeViolation     = "Violation"
)

// AccountMutation represents an operation that mutates the Account nodes in the graph.
type AccountMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	profile_url        *string
	display_name       *string
	validation_status  *account.ValidationStatus
	health_status      *account.HealthStatus
	user_paused        *bool
	session_valid_at   *time.Time
	metadata           *map[string]interface{}
	created_at         *time.Time
	clearedFields      map[string]struct{}
	user               *string
	cleareduser        bool
	agents             map[string]struct{}
	removedagents      map[string]struct{}
	clearedagents      bool
	jobs               map[string]struct{}
	removedjobs        map[string]struct{}
	clearedjobs        bool
	violations         map[string]struct{}
	removedviolations  map[string]struct{}
	clearedviolations  bool
	risk_scores        map[string]struct{}
	removedrisk_scores map[string]struct{}
	clearedrisk_scores bool
	done               bool
	oldValue           func(context.Context) (*Account, error)
	predicates         []predicate.Account
}

var _ ent.Mutation = (*AccountMutation)(nil)

// accountOption allows management of the mutation configuration using functional options.
type accountOption func(*AccountMutation)

// newAccountMutation creates new mutation for the Account entity.
func newAccountMutation(c config, op Op, opts ...accountOption) *AccountMutation {
	m := &AccountMutation{
		config:        c,
		op:            op,
		typ:           TypeAccount,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAccountID sets the ID field of the mutation.
func withAccountID(id string) accountOption {
	return func(m *AccountMutation) {
		var (
			err   error
			once  sync.Once
			value *Account
		)
		m.oldValue = func(ctx context.Context) (*Account, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Account.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAccount sets the old Account of the mutation.
func withAccount(node *Account) accountOption {
	return func(m *AccountMutation) {
		m.oldValue = func(context.Context) (*Account, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AccountMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AccountMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Account entities.
func (m *AccountMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AccountMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AccountMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Account.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *AccountMutation) SetUserID(s string) {
	m.user = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *AccountMutation) UserID() (r string, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *AccountMutation) ResetUserID() {
	m.user = nil
}

// SetProfileURL sets the "profile_url" field.
func (m *AccountMutation) SetProfileURL(s string) {
	m.profile_url = &s
}

// ProfileURL returns the value of the "profile_url" field in the mutation.
func (m *AccountMutation) ProfileURL() (r string, exists bool) {
	v := m.profile_url
	if v == nil {
		return
	}
	return *v, true
}

// OldProfileURL returns the old "profile_url" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldProfileURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfileURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfileURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfileURL: %w", err)
	}
	return oldValue.ProfileURL, nil
}

// ResetProfileURL resets all changes to the "profile_url" field.
func (m *AccountMutation) ResetProfileURL() {
	m.profile_url = nil
}

// SetDisplayName sets the "display_name" field.
func (m *AccountMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *AccountMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *AccountMutation) ResetDisplayName() {
	m.display_name = nil
}

// SetValidationStatus sets the "validation_status" field.
func (m *AccountMutation) SetValidationStatus(as account.ValidationStatus) {
	m.validation_status = &as
}

// ValidationStatus returns the value of the "validation_status" field in the mutation.
func (m *AccountMutation) ValidationStatus() (r account.ValidationStatus, exists bool) {
	v := m.validation_status
	if v == nil {
		return
	}
	return *v, true
}

// OldValidationStatus returns the old "validation_status" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldValidationStatus(ctx context.Context) (v account.ValidationStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidationStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidationStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidationStatus: %w", err)
	}
	return oldValue.ValidationStatus, nil
}

// ResetValidationStatus resets all changes to the "validation_status" field.
func (m *AccountMutation) ResetValidationStatus() {
	m.validation_status = nil
}

// SetHealthStatus sets the "health_status" field.
func (m *AccountMutation) SetHealthStatus(as account.HealthStatus) {
	m.health_status = &as
}

// HealthStatus returns the value of the "health_status" field in the mutation.
func (m *AccountMutation) HealthStatus() (r account.HealthStatus, exists bool) {
	v := m.health_status
	if v == nil {
		return
	}
	return *v, true
}

// OldHealthStatus returns the old "health_status" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldHealthStatus(ctx context.Context) (v account.HealthStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHealthStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHealthStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHealthStatus: %w", err)
	}
	return oldValue.HealthStatus, nil
}

// ResetHealthStatus resets all changes to the "health_status" field.
func (m *AccountMutation) ResetHealthStatus() {
	m.health_status = nil
}

// SetUserPaused sets the "user_paused" field.
func (m *AccountMutation) SetUserPaused(b bool) {
	m.user_paused = &b
}

// UserPaused returns the value of the "user_paused" field in the mutation.
func (m *AccountMutation) UserPaused() (r bool, exists bool) {
	v := m.user_paused
	if v == nil {
		return
	}
	return *v, true
}

// OldUserPaused returns the old "user_paused" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldUserPaused(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserPaused is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserPaused requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserPaused: %w", err)
	}
	return oldValue.UserPaused, nil
}

// ResetUserPaused resets all changes to the "user_paused" field.
func (m *AccountMutation) ResetUserPaused() {
	m.user_paused = nil
}

// SetSessionValidAt sets the "session_valid_at" field.
func (m *AccountMutation) SetSessionValidAt(t time.Time) {
	m.session_valid_at = &t
}

// SessionValidAt returns the value of the "session_valid_at" field in the mutation.
func (m *AccountMutation) SessionValidAt() (r time.Time, exists bool) {
	v := m.session_valid_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionValidAt returns the old "session_valid_at" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldSessionValidAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionValidAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionValidAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionValidAt: %w", err)
	}
	return oldValue.SessionValidAt, nil
}

// ClearSessionValidAt clears the value of the "session_valid_at" field.
func (m *AccountMutation) ClearSessionValidAt() {
	m.session_valid_at = nil
	m.clearedFields[account.FieldSessionValidAt] = struct{}{}
}

// SessionValidAtCleared returns if the "session_valid_at" field was cleared in this mutation.
func (m *AccountMutation) SessionValidAtCleared() bool {
	_, ok := m.clearedFields[account.FieldSessionValidAt]
	return ok
}

// ResetSessionValidAt resets all changes to the "session_valid_at" field.
func (m *AccountMutation) ResetSessionValidAt() {
	m.session_valid_at = nil
	delete(m.clearedFields, account.FieldSessionValidAt)
}

// SetMetadata sets the "metadata" field.
func (m *AccountMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *AccountMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *AccountMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[account.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *AccountMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[account.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *AccountMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, account.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *AccountMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AccountMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AccountMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *AccountMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[account.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *AccountMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *AccountMutation) UserIDs() (ids []string) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *AccountMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// AddAgentIDs adds the "agents" edge to the Agent entity by ids.
func (m *AccountMutation) AddAgentIDs(ids ...string) {
	if m.agents == nil {
		m.agents = make(map[string]struct{})
	}
	for i := range ids {
		m.agents[ids[i]] = struct{}{}
	}
}

// ClearAgents clears the "agents" edge to the Agent entity.
func (m *AccountMutation) ClearAgents() {
	m.clearedagents = true
}

// AgentsCleared reports if the "agents" edge to the Agent entity was cleared.
func (m *AccountMutation) AgentsCleared() bool {
	return m.clearedagents
}

// RemoveAgentIDs removes the "agents" edge to the Agent entity by IDs.
func (m *AccountMutation) RemoveAgentIDs(ids ...string) {
	if m.removedagents == nil {
		m.removedagents = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.agents, ids[i])
		m.removedagents[ids[i]] = struct{}{}
	}
}

// RemovedAgents returns the removed IDs of the "agents" edge to the Agent entity.
func (m *AccountMutation) RemovedAgentsIDs() (ids []string) {
	for id := range m.removedagents {
		ids = append(ids, id)
	}
	return
}

// AgentsIDs returns the "agents" edge IDs in the mutation.
func (m *AccountMutation) AgentsIDs() (ids []string) {
	for id := range m.agents {
		ids = append(ids, id)
	}
	return
}

// ResetAgents resets all changes to the "agents" edge.
func (m *AccountMutation) ResetAgents() {
	m.agents = nil
	m.clearedagents = false
	m.removedagents = nil
}

// AddJobIDs adds the "jobs" edge to the Job entity by ids.
func (m *AccountMutation) AddJobIDs(ids ...string) {
	if m.jobs == nil {
		m.jobs = make(map[string]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the Job entity.
func (m *AccountMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the Job entity was cleared.
func (m *AccountMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the Job entity by IDs.
func (m *AccountMutation) RemoveJobIDs(ids ...string) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the Job entity.
func (m *AccountMutation) RemovedJobsIDs() (ids []string) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *AccountMutation) JobsIDs() (ids []string) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *AccountMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// AddViolationIDs adds the "violations" edge to the Violation entity by ids.
func (m *AccountMutation) AddViolationIDs(ids ...string) {
	if m.violations == nil {
		m.violations = make(map[string]struct{})
	}
	for i := range ids {
		m.violations[ids[i]] = struct{}{}
	}
}

// ClearViolations clears the "violations" edge to the Violation entity.
func (m *AccountMutation) ClearViolations() {
	m.clearedviolations = true
}

// ViolationsCleared reports if the "violations" edge to the Violation entity was cleared.
func (m *AccountMutation) ViolationsCleared() bool {
	return m.clearedviolations
}

// RemoveViolationIDs removes the "violations" edge to the Violation entity by IDs.
func (m *AccountMutation) RemoveViolationIDs(ids ...string) {
	if m.removedviolations == nil {
		m.removedviolations = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.violations, ids[i])
		m.removedviolations[ids[i]] = struct{}{}
	}
}

// RemovedViolations returns the removed IDs of the "violations" edge to the Violation entity.
func (m *AccountMutation) RemovedViolationsIDs() (ids []string) {
	for id := range m.removedviolations {
		ids = append(ids, id)
	}
	return
}

// ViolationsIDs returns the "violations" edge IDs in the mutation.
func (m *AccountMutation) ViolationsIDs() (ids []string) {
	for id := range m.violations {
		ids = append(ids, id)
	}
	return
}

// ResetViolations resets all changes to the "violations" edge.
func (m *AccountMutation) ResetViolations() {
	m.violations = nil
	m.clearedviolations = false
	m.removedviolations = nil
}

// AddRiskScoreIDs adds the "risk_scores" edge to the RiskScore entity by ids.
func (m *AccountMutation) AddRiskScoreIDs(ids ...string) {
	if m.risk_scores == nil {
		m.risk_scores = make(map[string]struct{})
	}
	for i := range ids {
		m.risk_scores[ids[i]] = struct{}{}
	}
}

// ClearRiskScores clears the "risk_scores" edge to the RiskScore entity.
func (m *AccountMutation) ClearRiskScores() {
	m.clearedrisk_scores = true
}

// RiskScoresCleared reports if the "risk_scores" edge to the RiskScore entity was cleared.
func (m *AccountMutation) RiskScoresCleared() bool {
	return m.clearedrisk_scores
}

// RemoveRiskScoreIDs removes the "risk_scores" edge to the RiskScore entity by IDs.
func (m *AccountMutation) RemoveRiskScoreIDs(ids ...string) {
	if m.removedrisk_scores == nil {
		m.removedrisk_scores = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.risk_scores, ids[i])
		m.removedrisk_scores[ids[i]] = struct{}{}
	}
}

// RemovedRiskScores returns the removed IDs of the "risk_scores" edge to the RiskScore entity.
func (m *AccountMutation) RemovedRiskScoresIDs() (ids []string) {
	for id := range m.removedrisk_scores {
		ids = append(ids, id)
	}
	return
}

// RiskScoresIDs returns the "risk_scores" edge IDs in the mutation.
func (m *AccountMutation) RiskScoresIDs() (ids []string) {
	for id := range m.risk_scores {
		ids = append(ids, id)
	}
	return
}

// ResetRiskScores resets all changes to the "risk_scores" edge.
func (m *AccountMutation) ResetRiskScores() {
	m.risk_scores = nil
	m.clearedrisk_scores = false
	m.removedrisk_scores = nil
}

// Where appends a list predicates to the AccountMutation builder.
func (m *AccountMutation) Where(ps ...predicate.Account) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AccountMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AccountMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Account, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AccountMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AccountMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Account).
func (m *AccountMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AccountMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.user != nil {
		fields = append(fields, account.FieldUserID)
	}
	if m.profile_url != nil {
		fields = append(fields, account.FieldProfileURL)
	}
	if m.display_name != nil {
		fields = append(fields, account.FieldDisplayName)
	}
	if m.validation_status != nil {
		fields = append(fields, account.FieldValidationStatus)
	}
	if m.health_status != nil {
		fields = append(fields, account.FieldHealthStatus)
	}
	if m.user_paused != nil {
		fields = append(fields, account.FieldUserPaused)
	}
	if m.session_valid_at != nil {
		fields = append(fields, account.FieldSessionValidAt)
	}
	if m.metadata != nil {
		fields = append(fields, account.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, account.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AccountMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case account.FieldUserID:
		return m.UserID()
	case account.FieldProfileURL:
		return m.ProfileURL()
	case account.FieldDisplayName:
		return m.DisplayName()
	case account.FieldValidationStatus:
		return m.ValidationStatus()
	case account.FieldHealthStatus:
		return m.HealthStatus()
	case account.FieldUserPaused:
		return m.UserPaused()
	case account.FieldSessionValidAt:
		return m.SessionValidAt()
	case account.FieldMetadata:
		return m.Metadata()
	case account.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AccountMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case account.FieldUserID:
		return m.OldUserID(ctx)
	case account.FieldProfileURL:
		return m.OldProfileURL(ctx)
	case account.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case account.FieldValidationStatus:
		return m.OldValidationStatus(ctx)
	case account.FieldHealthStatus:
		return m.OldHealthStatus(ctx)
	case account.FieldUserPaused:
		return m.OldUserPaused(ctx)
	case account.FieldSessionValidAt:
		return m.OldSessionValidAt(ctx)
	case account.FieldMetadata:
		return m.OldMetadata(ctx)
	case account.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Account field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AccountMutation) SetField(name string, value ent.Value) error {
	switch name {
	case account.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case account.FieldProfileURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfileURL(v)
		return nil
	case account.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case account.FieldValidationStatus:
		v, ok := value.(account.ValidationStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidationStatus(v)
		return nil
	case account.FieldHealthStatus:
		v, ok := value.(account.HealthStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHealthStatus(v)
		return nil
	case account.FieldUserPaused:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserPaused(v)
		return nil
	case account.FieldSessionValidAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionValidAt(v)
		return nil
	case account.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case account.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Account field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AccountMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AccountMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AccountMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Account numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AccountMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(account.FieldSessionValidAt) {
		fields = append(fields, account.FieldSessionValidAt)
	}
	if m.FieldCleared(account.FieldMetadata) {
		fields = append(fields, account.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AccountMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AccountMutation) ClearField(name string) error {
	switch name {
	case account.FieldSessionValidAt:
		m.ClearSessionValidAt()
		return nil
	case account.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown Account nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AccountMutation) ResetField(name string) error {
	switch name {
	case account.FieldUserID:
		m.ResetUserID()
		return nil
	case account.FieldProfileURL:
		m.ResetProfileURL()
		return nil
	case account.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case account.FieldValidationStatus:
		m.ResetValidationStatus()
		return nil
	case account.FieldHealthStatus:
		m.ResetHealthStatus()
		return nil
	case account.FieldUserPaused:
		m.ResetUserPaused()
		return nil
	case account.FieldSessionValidAt:
		m.ResetSessionValidAt()
		return nil
	case account.FieldMetadata:
		m.ResetMetadata()
		return nil
	case account.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Account field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AccountMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.user != nil {
		edges = append(edges, account.EdgeUser)
	}
	if m.agents != nil {
		edges = append(edges, account.EdgeAgents)
	}
	if m.jobs != nil {
		edges = append(edges, account.EdgeJobs)
	}
	if m.violations != nil {
		edges = append(edges, account.EdgeViolations)
	}
	if m.risk_scores != nil {
		edges = append(edges, account.EdgeRiskScores)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AccountMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case account.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	case account.EdgeAgents:
		ids := make([]ent.Value, 0, len(m.agents))
		for id := range m.agents {
			ids = append(ids, id)
		}
		return ids
	case account.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	case account.EdgeViolations:
		ids := make([]ent.Value, 0, len(m.violations))
		for id := range m.violations {
			ids = append(ids, id)
		}
		return ids
	case account.EdgeRiskScores:
		ids := make([]ent.Value, 0, len(m.risk_scores))
		for id := range m.risk_scores {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AccountMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedagents != nil {
		edges = append(edges, account.EdgeAgents)
	}
	if m.removedjobs != nil {
		edges = append(edges, account.EdgeJobs)
	}
	if m.removedviolations != nil {
		edges = append(edges, account.EdgeViolations)
	}
	if m.removedrisk_scores != nil {
		edges = append(edges, account.EdgeRiskScores)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AccountMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case account.EdgeAgents:
		ids := make([]ent.Value, 0, len(m.removedagents))
		for id := range m.removedagents {
			ids = append(ids, id)
		}
		return ids
	case account.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	case account.EdgeViolations:
		ids := make([]ent.Value, 0, len(m.removedviolations))
		for id := range m.removedviolations {
			ids = append(ids, id)
		}
		return ids
	case account.EdgeRiskScores:
		ids := make([]ent.Value, 0, len(m.removedrisk_scores))
		for id := range m.removedrisk_scores {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AccountMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.cleareduser {
		edges = append(edges, account.EdgeUser)
	}
	if m.clearedagents {
		edges = append(edges, account.EdgeAgents)
	}
	if m.clearedjobs {
		edges = append(edges, account.EdgeJobs)
	}
	if m.clearedviolations {
		edges = append(edges, account.EdgeViolations)
	}
	if m.clearedrisk_scores {
		edges = append(edges, account.EdgeRiskScores)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AccountMutation) EdgeCleared(name string) bool {
	switch name {
	case account.EdgeUser:
		return m.cleareduser
	case account.EdgeAgents:
		return m.clearedagents
	case account.EdgeJobs:
		return m.clearedjobs
	case account.EdgeViolations:
		return m.clearedviolations
	case account.EdgeRiskScores:
		return m.clearedrisk_scores
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AccountMutation) ClearEdge(name string) error {
	switch name {
	case account.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown Account unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AccountMutation) ResetEdge(name string) error {
	switch name {
	case account.EdgeUser:
		m.ResetUser()
		return nil
	case account.EdgeAgents:
		m.ResetAgents()
		return nil
	case account.EdgeJobs:
		m.ResetJobs()
		return nil
	case account.EdgeViolations:
		m.ResetViolations()
		return nil
	case account.EdgeRiskScores:
		m.ResetRiskScores()
		return nil
	}
	return fmt.Errorf("unknown Account edge %s", name)
}

// AgentMutation represents an operation that mutates the Agent nodes in the graph.
type AgentMutation struct {
	config
	op                Op
	typ               string
	id                *string
	state             *agent.State
	agent_version     *string
	platform          *string
	last_heartbeat_at *time.Time
	registered_at     *time.Time
	terminated_at     *time.Time
	clearedFields     map[string]struct{}
	account           *string
	clearedaccount    bool
	tokens            map[string]struct{}
	removedtokens     map[string]struct{}
	clearedtokens     bool
	done              bool
	oldValue          func(context.Context) (*Agent, error)
	predicates        []predicate.Agent
}

var _ ent.Mutation = (*AgentMutation)(nil)

// agentOption allows management of the mutation configuration using functional options.
type agentOption func(*AgentMutation)

// newAgentMutation creates new mutation for the Agent entity.
func newAgentMutation(c config, op Op, opts ...agentOption) *AgentMutation {
	m := &AgentMutation{
		config:        c,
		op:            op,
		typ:           TypeAgent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentID sets the ID field of the mutation.
func withAgentID(id string) agentOption {
	return func(m *AgentMutation) {
		var (
			err   error
			once  sync.Once
			value *Agent
		)
		m.oldValue = func(ctx context.Context) (*Agent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Agent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgent sets the old Agent of the mutation.
func withAgent(node *Agent) agentOption {
	return func(m *AgentMutation) {
		m.oldValue = func(context.Context) (*Agent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Agent entities.
func (m *AgentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Agent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAccountID sets the "account_id" field.
func (m *AgentMutation) SetAccountID(s string) {
	m.account = &s
}

// AccountID returns the value of the "account_id" field in the mutation.
func (m *AgentMutation) AccountID() (r string, exists bool) {
	v := m.account
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountID returns the old "account_id" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldAccountID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountID: %w", err)
	}
	return oldValue.AccountID, nil
}

// ResetAccountID resets all changes to the "account_id" field.
func (m *AgentMutation) ResetAccountID() {
	m.account = nil
}

// SetState sets the "state" field.
func (m *AgentMutation) SetState(a agent.State) {
	m.state = &a
}

// State returns the value of the "state" field in the mutation.
func (m *AgentMutation) State() (r agent.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldState(ctx context.Context) (v agent.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *AgentMutation) ResetState() {
	m.state = nil
}

// SetAgentVersion sets the "agent_version" field.
func (m *AgentMutation) SetAgentVersion(s string) {
	m.agent_version = &s
}

// AgentVersion returns the value of the "agent_version" field in the mutation.
func (m *AgentMutation) AgentVersion() (r string, exists bool) {
	v := m.agent_version
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentVersion returns the old "agent_version" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldAgentVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentVersion: %w", err)
	}
	return oldValue.AgentVersion, nil
}

// ClearAgentVersion clears the value of the "agent_version" field.
func (m *AgentMutation) ClearAgentVersion() {
	m.agent_version = nil
	m.clearedFields[agent.FieldAgentVersion] = struct{}{}
}

// AgentVersionCleared returns if the "agent_version" field was cleared in this mutation.
func (m *AgentMutation) AgentVersionCleared() bool {
	_, ok := m.clearedFields[agent.FieldAgentVersion]
	return ok
}

// ResetAgentVersion resets all changes to the "agent_version" field.
func (m *AgentMutation) ResetAgentVersion() {
	m.agent_version = nil
	delete(m.clearedFields, agent.FieldAgentVersion)
}

// SetPlatform sets the "platform" field.
func (m *AgentMutation) SetPlatform(s string) {
	m.platform = &s
}

// Platform returns the value of the "platform" field in the mutation.
func (m *AgentMutation) Platform() (r string, exists bool) {
	v := m.platform
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatform returns the old "platform" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldPlatform(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatform is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatform requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatform: %w", err)
	}
	return oldValue.Platform, nil
}

// ClearPlatform clears the value of the "platform" field.
func (m *AgentMutation) ClearPlatform() {
	m.platform = nil
	m.clearedFields[agent.FieldPlatform] = struct{}{}
}

// PlatformCleared returns if the "platform" field was cleared in this mutation.
func (m *AgentMutation) PlatformCleared() bool {
	_, ok := m.clearedFields[agent.FieldPlatform]
	return ok
}

// ResetPlatform resets all changes to the "platform" field.
func (m *AgentMutation) ResetPlatform() {
	m.platform = nil
	delete(m.clearedFields, agent.FieldPlatform)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *AgentMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *AgentMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *AgentMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[agent.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *AgentMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[agent.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *AgentMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, agent.FieldLastHeartbeatAt)
}

// SetRegisteredAt sets the "registered_at" field.
func (m *AgentMutation) SetRegisteredAt(t time.Time) {
	m.registered_at = &t
}

// RegisteredAt returns the value of the "registered_at" field in the mutation.
func (m *AgentMutation) RegisteredAt() (r time.Time, exists bool) {
	v := m.registered_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRegisteredAt returns the old "registered_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldRegisteredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRegisteredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRegisteredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRegisteredAt: %w", err)
	}
	return oldValue.RegisteredAt, nil
}

// ResetRegisteredAt resets all changes to the "registered_at" field.
func (m *AgentMutation) ResetRegisteredAt() {
	m.registered_at = nil
}

// SetTerminatedAt sets the "terminated_at" field.
func (m *AgentMutation) SetTerminatedAt(t time.Time) {
	m.terminated_at = &t
}

// TerminatedAt returns the value of the "terminated_at" field in the mutation.
func (m *AgentMutation) TerminatedAt() (r time.Time, exists bool) {
	v := m.terminated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldTerminatedAt returns the old "terminated_at" field's value of the Agent entity.
// If the Agent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentMutation) OldTerminatedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTerminatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTerminatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTerminatedAt: %w", err)
	}
	return oldValue.TerminatedAt, nil
}

// ClearTerminatedAt clears the value of the "terminated_at" field.
func (m *AgentMutation) ClearTerminatedAt() {
	m.terminated_at = nil
	m.clearedFields[agent.FieldTerminatedAt] = struct{}{}
}

// TerminatedAtCleared returns if the "terminated_at" field was cleared in this mutation.
func (m *AgentMutation) TerminatedAtCleared() bool {
	_, ok := m.clearedFields[agent.FieldTerminatedAt]
	return ok
}

// ResetTerminatedAt resets all changes to the "terminated_at" field.
func (m *AgentMutation) ResetTerminatedAt() {
	m.terminated_at = nil
	delete(m.clearedFields, agent.FieldTerminatedAt)
}

// ClearAccount clears the "account" edge to the Account entity.
func (m *AgentMutation) ClearAccount() {
	m.clearedaccount = true
	m.clearedFields[agent.FieldAccountID] = struct{}{}
}

// AccountCleared reports if the "account" edge to the Account entity was cleared.
func (m *AgentMutation) AccountCleared() bool {
	return m.clearedaccount
}

// AccountIDs returns the "account" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AccountID instead. It exists only for internal usage by the builders.
func (m *AgentMutation) AccountIDs() (ids []string) {
	if id := m.account; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAccount resets all changes to the "account" edge.
func (m *AgentMutation) ResetAccount() {
	m.account = nil
	m.clearedaccount = false
}

// AddTokenIDs adds the "tokens" edge to the AgentToken entity by ids.
func (m *AgentMutation) AddTokenIDs(ids ...string) {
	if m.tokens == nil {
		m.tokens = make(map[string]struct{})
	}
	for i := range ids {
		m.tokens[ids[i]] = struct{}{}
	}
}

// ClearTokens clears the "tokens" edge to the AgentToken entity.
func (m *AgentMutation) ClearTokens() {
	m.clearedtokens = true
}

// TokensCleared reports if the "tokens" edge to the AgentToken entity was cleared.
func (m *AgentMutation) TokensCleared() bool {
	return m.clearedtokens
}

// RemoveTokenIDs removes the "tokens" edge to the AgentToken entity by IDs.
func (m *AgentMutation) RemoveTokenIDs(ids ...string) {
	if m.removedtokens == nil {
		m.removedtokens = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.tokens, ids[i])
		m.removedtokens[ids[i]] = struct{}{}
	}
}

// RemovedTokens returns the removed IDs of the "tokens" edge to the AgentToken entity.
func (m *AgentMutation) RemovedTokensIDs() (ids []string) {
	for id := range m.removedtokens {
		ids = append(ids, id)
	}
	return
}

// TokensIDs returns the "tokens" edge IDs in the mutation.
func (m *AgentMutation) TokensIDs() (ids []string) {
	for id := range m.tokens {
		ids = append(ids, id)
	}
	return
}

// ResetTokens resets all changes to the "tokens" edge.
func (m *AgentMutation) ResetTokens() {
	m.tokens = nil
	m.clearedtokens = false
	m.removedtokens = nil
}

// Where appends a list predicates to the AgentMutation builder.
func (m *AgentMutation) Where(ps ...predicate.Agent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Agent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Agent).
func (m *AgentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.account != nil {
		fields = append(fields, agent.FieldAccountID)
	}
	if m.state != nil {
		fields = append(fields, agent.FieldState)
	}
	if m.agent_version != nil {
		fields = append(fields, agent.FieldAgentVersion)
	}
	if m.platform != nil {
		fields = append(fields, agent.FieldPlatform)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, agent.FieldLastHeartbeatAt)
	}
	if m.registered_at != nil {
		fields = append(fields, agent.FieldRegisteredAt)
	}
	if m.terminated_at != nil {
		fields = append(fields, agent.FieldTerminatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agent.FieldAccountID:
		return m.AccountID()
	case agent.FieldState:
		return m.State()
	case agent.FieldAgentVersion:
		return m.AgentVersion()
	case agent.FieldPlatform:
		return m.Platform()
	case agent.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case agent.FieldRegisteredAt:
		return m.RegisteredAt()
	case agent.FieldTerminatedAt:
		return m.TerminatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agent.FieldAccountID:
		return m.OldAccountID(ctx)
	case agent.FieldState:
		return m.OldState(ctx)
	case agent.FieldAgentVersion:
		return m.OldAgentVersion(ctx)
	case agent.FieldPlatform:
		return m.OldPlatform(ctx)
	case agent.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case agent.FieldRegisteredAt:
		return m.OldRegisteredAt(ctx)
	case agent.FieldTerminatedAt:
		return m.OldTerminatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Agent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agent.FieldAccountID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountID(v)
		return nil
	case agent.FieldState:
		v, ok := value.(agent.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case agent.FieldAgentVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentVersion(v)
		return nil
	case agent.FieldPlatform:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatform(v)
		return nil
	case agent.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case agent.FieldRegisteredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRegisteredAt(v)
		return nil
	case agent.FieldTerminatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTerminatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Agent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agent.FieldAgentVersion) {
		fields = append(fields, agent.FieldAgentVersion)
	}
	if m.FieldCleared(agent.FieldPlatform) {
		fields = append(fields, agent.FieldPlatform)
	}
	if m.FieldCleared(agent.FieldLastHeartbeatAt) {
		fields = append(fields, agent.FieldLastHeartbeatAt)
	}
	if m.FieldCleared(agent.FieldTerminatedAt) {
		fields = append(fields, agent.FieldTerminatedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentMutation) ClearField(name string) error {
	switch name {
	case agent.FieldAgentVersion:
		m.ClearAgentVersion()
		return nil
	case agent.FieldPlatform:
		m.ClearPlatform()
		return nil
	case agent.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	case agent.FieldTerminatedAt:
		m.ClearTerminatedAt()
		return nil
	}
	return fmt.Errorf("unknown Agent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentMutation) ResetField(name string) error {
	switch name {
	case agent.FieldAccountID:
		m.ResetAccountID()
		return nil
	case agent.FieldState:
		m.ResetState()
		return nil
	case agent.FieldAgentVersion:
		m.ResetAgentVersion()
		return nil
	case agent.FieldPlatform:
		m.ResetPlatform()
		return nil
	case agent.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case agent.FieldRegisteredAt:
		m.ResetRegisteredAt()
		return nil
	case agent.FieldTerminatedAt:
		m.ResetTerminatedAt()
		return nil
	}
	return fmt.Errorf("unknown Agent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.account != nil {
		edges = append(edges, agent.EdgeAccount)
	}
	if m.tokens != nil {
		edges = append(edges, agent.EdgeTokens)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agent.EdgeAccount:
		if id := m.account; id != nil {
			return []ent.Value{*id}
		}
	case agent.EdgeTokens:
		ids := make([]ent.Value, 0, len(m.tokens))
		for id := range m.tokens {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedtokens != nil {
		edges = append(edges, agent.EdgeTokens)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case agent.EdgeTokens:
		ids := make([]ent.Value, 0, len(m.removedtokens))
		for id := range m.removedtokens {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedaccount {
		edges = append(edges, agent.EdgeAccount)
	}
	if m.clearedtokens {
		edges = append(edges, agent.EdgeTokens)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentMutation) EdgeCleared(name string) bool {
	switch name {
	case agent.EdgeAccount:
		return m.clearedaccount
	case agent.EdgeTokens:
		return m.clearedtokens
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentMutation) ClearEdge(name string) error {
	switch name {
	case agent.EdgeAccount:
		m.ClearAccount()
		return nil
	}
	return fmt.Errorf("unknown Agent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentMutation) ResetEdge(name string) error {
	switch name {
	case agent.EdgeAccount:
		m.ResetAccount()
		return nil
	case agent.EdgeTokens:
		m.ResetTokens()
		return nil
	}
	return fmt.Errorf("unknown Agent edge %s", name)
}

// AgentTokenMutation represents an operation that mutates the AgentToken nodes in the graph.
type AgentTokenMutation struct {
	config
	op            Op
	typ           string
	id            *string
	account_id    *string
	token_hash    *string
	expires_at    *time.Time
	revoked_at    *time.Time
	created_at    *time.Time
	clearedFields map[string]struct{}
	agent         *string
	clearedagent  bool
	done          bool
	oldValue      func(context.Context) (*AgentToken, error)
	predicates    []predicate.AgentToken
}

var _ ent.Mutation = (*AgentTokenMutation)(nil)

// agenttokenOption allows management of the mutation configuration using functional options.
type agenttokenOption func(*AgentTokenMutation)

// newAgentTokenMutation creates new mutation for the AgentToken entity.
func newAgentTokenMutation(c config, op Op, opts ...agenttokenOption) *AgentTokenMutation {
	m := &AgentTokenMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentToken,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentTokenID sets the ID field of the mutation.
func withAgentTokenID(id string) agenttokenOption {
	return func(m *AgentTokenMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentToken
		)
		m.oldValue = func(ctx context.Context) (*AgentToken, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentToken.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentToken sets the old AgentToken of the mutation.
func withAgentToken(node *AgentToken) agenttokenOption {
	return func(m *AgentTokenMutation) {
		m.oldValue = func(context.Context) (*AgentToken, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentTokenMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentTokenMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentToken entities.
func (m *AgentTokenMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentTokenMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentTokenMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentToken.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentID sets the "agent_id" field.
func (m *AgentTokenMutation) SetAgentID(s string) {
	m.agent = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *AgentTokenMutation) AgentID() (r string, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the AgentToken entity.
// If the AgentToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTokenMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *AgentTokenMutation) ResetAgentID() {
	m.agent = nil
}

// SetAccountID sets the "account_id" field.
func (m *AgentTokenMutation) SetAccountID(s string) {
	m.account_id = &s
}

// AccountID returns the value of the "account_id" field in the mutation.
func (m *AgentTokenMutation) AccountID() (r string, exists bool) {
	v := m.account_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountID returns the old "account_id" field's value of the AgentToken entity.
// If the AgentToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTokenMutation) OldAccountID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountID: %w", err)
	}
	return oldValue.AccountID, nil
}

// ResetAccountID resets all changes to the "account_id" field.
func (m *AgentTokenMutation) ResetAccountID() {
	m.account_id = nil
}

// SetTokenHash sets the "token_hash" field.
func (m *AgentTokenMutation) SetTokenHash(s string) {
	m.token_hash = &s
}

// TokenHash returns the value of the "token_hash" field in the mutation.
func (m *AgentTokenMutation) TokenHash() (r string, exists bool) {
	v := m.token_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldTokenHash returns the old "token_hash" field's value of the AgentToken entity.
// If the AgentToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTokenMutation) OldTokenHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokenHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokenHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokenHash: %w", err)
	}
	return oldValue.TokenHash, nil
}

// ResetTokenHash resets all changes to the "token_hash" field.
func (m *AgentTokenMutation) ResetTokenHash() {
	m.token_hash = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *AgentTokenMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *AgentTokenMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the AgentToken entity.
// If the AgentToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTokenMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *AgentTokenMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetRevokedAt sets the "revoked_at" field.
func (m *AgentTokenMutation) SetRevokedAt(t time.Time) {
	m.revoked_at = &t
}

// RevokedAt returns the value of the "revoked_at" field in the mutation.
func (m *AgentTokenMutation) RevokedAt() (r time.Time, exists bool) {
	v := m.revoked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRevokedAt returns the old "revoked_at" field's value of the AgentToken entity.
// If the AgentToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTokenMutation) OldRevokedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRevokedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRevokedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRevokedAt: %w", err)
	}
	return oldValue.RevokedAt, nil
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (m *AgentTokenMutation) ClearRevokedAt() {
	m.revoked_at = nil
	m.clearedFields[agenttoken.FieldRevokedAt] = struct{}{}
}

// RevokedAtCleared returns if the "revoked_at" field was cleared in this mutation.
func (m *AgentTokenMutation) RevokedAtCleared() bool {
	_, ok := m.clearedFields[agenttoken.FieldRevokedAt]
	return ok
}

// ResetRevokedAt resets all changes to the "revoked_at" field.
func (m *AgentTokenMutation) ResetRevokedAt() {
	m.revoked_at = nil
	delete(m.clearedFields, agenttoken.FieldRevokedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentTokenMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentTokenMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentToken entity.
// If the AgentToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentTokenMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentTokenMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearAgent clears the "agent" edge to the Agent entity.
func (m *AgentTokenMutation) ClearAgent() {
	m.clearedagent = true
	m.clearedFields[agenttoken.FieldAgentID] = struct{}{}
}

// AgentCleared reports if the "agent" edge to the Agent entity was cleared.
func (m *AgentTokenMutation) AgentCleared() bool {
	return m.clearedagent
}

// AgentIDs returns the "agent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AgentID instead. It exists only for internal usage by the builders.
func (m *AgentTokenMutation) AgentIDs() (ids []string) {
	if id := m.agent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAgent resets all changes to the "agent" edge.
func (m *AgentTokenMutation) ResetAgent() {
	m.agent = nil
	m.clearedagent = false
}

// Where appends a list predicates to the AgentTokenMutation builder.
func (m *AgentTokenMutation) Where(ps ...predicate.AgentToken) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentTokenMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentTokenMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentToken, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentTokenMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentTokenMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentToken).
func (m *AgentTokenMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentTokenMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.agent != nil {
		fields = append(fields, agenttoken.FieldAgentID)
	}
	if m.account_id != nil {
		fields = append(fields, agenttoken.FieldAccountID)
	}
	if m.token_hash != nil {
		fields = append(fields, agenttoken.FieldTokenHash)
	}
	if m.expires_at != nil {
		fields = append(fields, agenttoken.FieldExpiresAt)
	}
	if m.revoked_at != nil {
		fields = append(fields, agenttoken.FieldRevokedAt)
	}
	if m.created_at != nil {
		fields = append(fields, agenttoken.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentTokenMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agenttoken.FieldAgentID:
		return m.AgentID()
	case agenttoken.FieldAccountID:
		return m.AccountID()
	case agenttoken.FieldTokenHash:
		return m.TokenHash()
	case agenttoken.FieldExpiresAt:
		return m.ExpiresAt()
	case agenttoken.FieldRevokedAt:
		return m.RevokedAt()
	case agenttoken.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentTokenMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agenttoken.FieldAgentID:
		return m.OldAgentID(ctx)
	case agenttoken.FieldAccountID:
		return m.OldAccountID(ctx)
	case agenttoken.FieldTokenHash:
		return m.OldTokenHash(ctx)
	case agenttoken.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case agenttoken.FieldRevokedAt:
		return m.OldRevokedAt(ctx)
	case agenttoken.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentToken field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentTokenMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agenttoken.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case agenttoken.FieldAccountID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountID(v)
		return nil
	case agenttoken.FieldTokenHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokenHash(v)
		return nil
	case agenttoken.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case agenttoken.FieldRevokedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRevokedAt(v)
		return nil
	case agenttoken.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentToken field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentTokenMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentTokenMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentTokenMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AgentToken numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentTokenMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agenttoken.FieldRevokedAt) {
		fields = append(fields, agenttoken.FieldRevokedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentTokenMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentTokenMutation) ClearField(name string) error {
	switch name {
	case agenttoken.FieldRevokedAt:
		m.ClearRevokedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentToken nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentTokenMutation) ResetField(name string) error {
	switch name {
	case agenttoken.FieldAgentID:
		m.ResetAgentID()
		return nil
	case agenttoken.FieldAccountID:
		m.ResetAccountID()
		return nil
	case agenttoken.FieldTokenHash:
		m.ResetTokenHash()
		return nil
	case agenttoken.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case agenttoken.FieldRevokedAt:
		m.ResetRevokedAt()
		return nil
	case agenttoken.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentToken field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentTokenMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.agent != nil {
		edges = append(edges, agenttoken.EdgeAgent)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentTokenMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agenttoken.EdgeAgent:
		if id := m.agent; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentTokenMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentTokenMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentTokenMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedagent {
		edges = append(edges, agenttoken.EdgeAgent)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentTokenMutation) EdgeCleared(name string) bool {
	switch name {
	case agenttoken.EdgeAgent:
		return m.clearedagent
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentTokenMutation) ClearEdge(name string) error {
	switch name {
	case agenttoken.EdgeAgent:
		m.ClearAgent()
		return nil
	}
	return fmt.Errorf("unknown AgentToken unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentTokenMutation) ResetEdge(name string) error {
	switch name {
	case agenttoken.EdgeAgent:
		m.ResetAgent()
		return nil
	}
	return fmt.Errorf("unknown AgentToken edge %s", name)
}

// AuditEntryMutation represents an operation that mutates the AuditEntry nodes in the graph.
type AuditEntryMutation struct {
	config
	op            Op
	typ           string
	id            *string
	domain        *string
	event_type    *string
	entity_type   *string
	entity_id     *string
	actor_type    *auditentry.ActorType
	actor_id      *string
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AuditEntry, error)
	predicates    []predicate.AuditEntry
}

var _ ent.Mutation = (*AuditEntryMutation)(nil)

// auditentryOption allows management of the mutation configuration using functional options.
type auditentryOption func(*AuditEntryMutation)

// newAuditEntryMutation creates new mutation for the AuditEntry entity.
func newAuditEntryMutation(c config, op Op, opts ...auditentryOption) *AuditEntryMutation {
	m := &AuditEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditEntryID sets the ID field of the mutation.
func withAuditEntryID(id string) auditentryOption {
	return func(m *AuditEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditEntry
		)
		m.oldValue = func(ctx context.Context) (*AuditEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditEntry sets the old AuditEntry of the mutation.
func withAuditEntry(node *AuditEntry) auditentryOption {
	return func(m *AuditEntryMutation) {
		m.oldValue = func(context.Context) (*AuditEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditEntry entities.
func (m *AuditEntryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditEntryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditEntryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDomain sets the "domain" field.
func (m *AuditEntryMutation) SetDomain(s string) {
	m.domain = &s
}

// Domain returns the value of the "domain" field in the mutation.
func (m *AuditEntryMutation) Domain() (r string, exists bool) {
	v := m.domain
	if v == nil {
		return
	}
	return *v, true
}

// OldDomain returns the old "domain" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldDomain(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomain: %w", err)
	}
	return oldValue.Domain, nil
}

// ResetDomain resets all changes to the "domain" field.
func (m *AuditEntryMutation) ResetDomain() {
	m.domain = nil
}

// SetEventType sets the "event_type" field.
func (m *AuditEntryMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *AuditEntryMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *AuditEntryMutation) ResetEventType() {
	m.event_type = nil
}

// SetEntityType sets the "entity_type" field.
func (m *AuditEntryMutation) SetEntityType(s string) {
	m.entity_type = &s
}

// EntityType returns the value of the "entity_type" field in the mutation.
func (m *AuditEntryMutation) EntityType() (r string, exists bool) {
	v := m.entity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityType returns the old "entity_type" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldEntityType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityType: %w", err)
	}
	return oldValue.EntityType, nil
}

// ResetEntityType resets all changes to the "entity_type" field.
func (m *AuditEntryMutation) ResetEntityType() {
	m.entity_type = nil
}

// SetEntityID sets the "entity_id" field.
func (m *AuditEntryMutation) SetEntityID(s string) {
	m.entity_id = &s
}

// EntityID returns the value of the "entity_id" field in the mutation.
func (m *AuditEntryMutation) EntityID() (r string, exists bool) {
	v := m.entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityID returns the old "entity_id" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldEntityID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityID: %w", err)
	}
	return oldValue.EntityID, nil
}

// ResetEntityID resets all changes to the "entity_id" field.
func (m *AuditEntryMutation) ResetEntityID() {
	m.entity_id = nil
}

// SetActorType sets the "actor_type" field.
func (m *AuditEntryMutation) SetActorType(at auditentry.ActorType) {
	m.actor_type = &at
}

// ActorType returns the value of the "actor_type" field in the mutation.
func (m *AuditEntryMutation) ActorType() (r auditentry.ActorType, exists bool) {
	v := m.actor_type
	if v == nil {
		return
	}
	return *v, true
}

// OldActorType returns the old "actor_type" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldActorType(ctx context.Context) (v auditentry.ActorType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorType: %w", err)
	}
	return oldValue.ActorType, nil
}

// ResetActorType resets all changes to the "actor_type" field.
func (m *AuditEntryMutation) ResetActorType() {
	m.actor_type = nil
}

// SetActorID sets the "actor_id" field.
func (m *AuditEntryMutation) SetActorID(s string) {
	m.actor_id = &s
}

// ActorID returns the value of the "actor_id" field in the mutation.
func (m *AuditEntryMutation) ActorID() (r string, exists bool) {
	v := m.actor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldActorID returns the old "actor_id" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldActorID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActorID: %w", err)
	}
	return oldValue.ActorID, nil
}

// ClearActorID clears the value of the "actor_id" field.
func (m *AuditEntryMutation) ClearActorID() {
	m.actor_id = nil
	m.clearedFields[auditentry.FieldActorID] = struct{}{}
}

// ActorIDCleared returns if the "actor_id" field was cleared in this mutation.
func (m *AuditEntryMutation) ActorIDCleared() bool {
	_, ok := m.clearedFields[auditentry.FieldActorID]
	return ok
}

// ResetActorID resets all changes to the "actor_id" field.
func (m *AuditEntryMutation) ResetActorID() {
	m.actor_id = nil
	delete(m.clearedFields, auditentry.FieldActorID)
}

// SetPayload sets the "payload" field.
func (m *AuditEntryMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *AuditEntryMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *AuditEntryMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[auditentry.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *AuditEntryMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[auditentry.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *AuditEntryMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, auditentry.FieldPayload)
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuditEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AuditEntryMutation builder.
func (m *AuditEntryMutation) Where(ps ...predicate.AuditEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditEntry).
func (m *AuditEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditEntryMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.domain != nil {
		fields = append(fields, auditentry.FieldDomain)
	}
	if m.event_type != nil {
		fields = append(fields, auditentry.FieldEventType)
	}
	if m.entity_type != nil {
		fields = append(fields, auditentry.FieldEntityType)
	}
	if m.entity_id != nil {
		fields = append(fields, auditentry.FieldEntityID)
	}
	if m.actor_type != nil {
		fields = append(fields, auditentry.FieldActorType)
	}
	if m.actor_id != nil {
		fields = append(fields, auditentry.FieldActorID)
	}
	if m.payload != nil {
		fields = append(fields, auditentry.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, auditentry.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditentry.FieldDomain:
		return m.Domain()
	case auditentry.FieldEventType:
		return m.EventType()
	case auditentry.FieldEntityType:
		return m.EntityType()
	case auditentry.FieldEntityID:
		return m.EntityID()
	case auditentry.FieldActorType:
		return m.ActorType()
	case auditentry.FieldActorID:
		return m.ActorID()
	case auditentry.FieldPayload:
		return m.Payload()
	case auditentry.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditentry.FieldDomain:
		return m.OldDomain(ctx)
	case auditentry.FieldEventType:
		return m.OldEventType(ctx)
	case auditentry.FieldEntityType:
		return m.OldEntityType(ctx)
	case auditentry.FieldEntityID:
		return m.OldEntityID(ctx)
	case auditentry.FieldActorType:
		return m.OldActorType(ctx)
	case auditentry.FieldActorID:
		return m.OldActorID(ctx)
	case auditentry.FieldPayload:
		return m.OldPayload(ctx)
	case auditentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AuditEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditentry.FieldDomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomain(v)
		return nil
	case auditentry.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case auditentry.FieldEntityType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityType(v)
		return nil
	case auditentry.FieldEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityID(v)
		return nil
	case auditentry.FieldActorType:
		v, ok := value.(auditentry.ActorType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorType(v)
		return nil
	case auditentry.FieldActorID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActorID(v)
		return nil
	case auditentry.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case auditentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AuditEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditEntryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditEntryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AuditEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditentry.FieldActorID) {
		fields = append(fields, auditentry.FieldActorID)
	}
	if m.FieldCleared(auditentry.FieldPayload) {
		fields = append(fields, auditentry.FieldPayload)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditEntryMutation) ClearField(name string) error {
	switch name {
	case auditentry.FieldActorID:
		m.ClearActorID()
		return nil
	case auditentry.FieldPayload:
		m.ClearPayload()
		return nil
	}
	return fmt.Errorf("unknown AuditEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditEntryMutation) ResetField(name string) error {
	switch name {
	case auditentry.FieldDomain:
		m.ResetDomain()
		return nil
	case auditentry.FieldEventType:
		m.ResetEventType()
		return nil
	case auditentry.FieldEntityType:
		m.ResetEntityType()
		return nil
	case auditentry.FieldEntityID:
		m.ResetEntityID()
		return nil
	case auditentry.FieldActorType:
		m.ResetActorType()
		return nil
	case auditentry.FieldActorID:
		m.ResetActorID()
		return nil
	case auditentry.FieldPayload:
		m.ResetPayload()
		return nil
	case auditentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AuditEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AuditEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AuditEntry edge %s", name)
}

// JobMutation represents an operation that mutates the Job nodes in the graph.
type JobMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	created_by_user_id      *string
	assigned_agent_id       *string
	_type                   *job.Type
	parameters              *map[string]interface{}
	lead_id                 *string
	state                   *job.State
	priority                *int
	addpriority             *int
	earliest_execution_time *time.Time
	timeout_seconds         *int
	addtimeout_seconds      *int
	created_at              *time.Time
	assigned_at             *time.Time
	started_at              *time.Time
	completed_at            *time.Time
	failure_reason          *string
	clearedFields           map[string]struct{}
	account                 *string
	clearedaccount          bool
	result                  *string
	clearedresult           bool
	done                    bool
	oldValue                func(context.Context) (*Job, error)
	predicates              []predicate.Job
}

var _ ent.Mutation = (*JobMutation)(nil)

// jobOption allows management of the mutation configuration using functional options.
type jobOption func(*JobMutation)

// newJobMutation creates new mutation for the Job entity.
func newJobMutation(c config, op Op, opts ...jobOption) *JobMutation {
	m := &JobMutation{
		config:        c,
		op:            op,
		typ:           TypeJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobID sets the ID field of the mutation.
func withJobID(id string) jobOption {
	return func(m *JobMutation) {
		var (
			err   error
			once  sync.Once
			value *Job
		)
		m.oldValue = func(ctx context.Context) (*Job, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Job.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJob sets the old Job of the mutation.
func withJob(node *Job) jobOption {
	return func(m *JobMutation) {
		m.oldValue = func(context.Context) (*Job, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Job entities.
func (m *JobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Job.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAccountID sets the "account_id" field.
func (m *JobMutation) SetAccountID(s string) {
	m.account = &s
}

// AccountID returns the value of the "account_id" field in the mutation.
func (m *JobMutation) AccountID() (r string, exists bool) {
	v := m.account
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountID returns the old "account_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldAccountID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountID: %w", err)
	}
	return oldValue.AccountID, nil
}

// ResetAccountID resets all changes to the "account_id" field.
func (m *JobMutation) ResetAccountID() {
	m.account = nil
}

// SetCreatedByUserID sets the "created_by_user_id" field.
func (m *JobMutation) SetCreatedByUserID(s string) {
	m.created_by_user_id = &s
}

// CreatedByUserID returns the value of the "created_by_user_id" field in the mutation.
func (m *JobMutation) CreatedByUserID() (r string, exists bool) {
	v := m.created_by_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedByUserID returns the old "created_by_user_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCreatedByUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedByUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedByUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedByUserID: %w", err)
	}
	return oldValue.CreatedByUserID, nil
}

// ResetCreatedByUserID resets all changes to the "created_by_user_id" field.
func (m *JobMutation) ResetCreatedByUserID() {
	m.created_by_user_id = nil
}

// SetAssignedAgentID sets the "assigned_agent_id" field.
func (m *JobMutation) SetAssignedAgentID(s string) {
	m.assigned_agent_id = &s
}

// AssignedAgentID returns the value of the "assigned_agent_id" field in the mutation.
func (m *JobMutation) AssignedAgentID() (r string, exists bool) {
	v := m.assigned_agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedAgentID returns the old "assigned_agent_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldAssignedAgentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedAgentID: %w", err)
	}
	return oldValue.AssignedAgentID, nil
}

// ClearAssignedAgentID clears the value of the "assigned_agent_id" field.
func (m *JobMutation) ClearAssignedAgentID() {
	m.assigned_agent_id = nil
	m.clearedFields[job.FieldAssignedAgentID] = struct{}{}
}

// AssignedAgentIDCleared returns if the "assigned_agent_id" field was cleared in this mutation.
func (m *JobMutation) AssignedAgentIDCleared() bool {
	_, ok := m.clearedFields[job.FieldAssignedAgentID]
	return ok
}

// ResetAssignedAgentID resets all changes to the "assigned_agent_id" field.
func (m *JobMutation) ResetAssignedAgentID() {
	m.assigned_agent_id = nil
	delete(m.clearedFields, job.FieldAssignedAgentID)
}

// SetType sets the "type" field.
func (m *JobMutation) SetType(j job.Type) {
	m._type = &j
}

// GetType returns the value of the "type" field in the mutation.
func (m *JobMutation) GetType() (r job.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldType(ctx context.Context) (v job.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *JobMutation) ResetType() {
	m._type = nil
}

// SetParameters sets the "parameters" field.
func (m *JobMutation) SetParameters(value map[string]interface{}) {
	m.parameters = &value
}

// Parameters returns the value of the "parameters" field in the mutation.
func (m *JobMutation) Parameters() (r map[string]interface{}, exists bool) {
	v := m.parameters
	if v == nil {
		return
	}
	return *v, true
}

// OldParameters returns the old "parameters" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldParameters(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParameters is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParameters requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParameters: %w", err)
	}
	return oldValue.Parameters, nil
}

// ResetParameters resets all changes to the "parameters" field.
func (m *JobMutation) ResetParameters() {
	m.parameters = nil
}

// SetLeadID sets the "lead_id" field.
func (m *JobMutation) SetLeadID(s string) {
	m.lead_id = &s
}

// LeadID returns the value of the "lead_id" field in the mutation.
func (m *JobMutation) LeadID() (r string, exists bool) {
	v := m.lead_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLeadID returns the old "lead_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLeadID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeadID: %w", err)
	}
	return oldValue.LeadID, nil
}

// ClearLeadID clears the value of the "lead_id" field.
func (m *JobMutation) ClearLeadID() {
	m.lead_id = nil
	m.clearedFields[job.FieldLeadID] = struct{}{}
}

// LeadIDCleared returns if the "lead_id" field was cleared in this mutation.
func (m *JobMutation) LeadIDCleared() bool {
	_, ok := m.clearedFields[job.FieldLeadID]
	return ok
}

// ResetLeadID resets all changes to the "lead_id" field.
func (m *JobMutation) ResetLeadID() {
	m.lead_id = nil
	delete(m.clearedFields, job.FieldLeadID)
}

// SetState sets the "state" field.
func (m *JobMutation) SetState(j job.State) {
	m.state = &j
}

// State returns the value of the "state" field in the mutation.
func (m *JobMutation) State() (r job.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldState(ctx context.Context) (v job.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *JobMutation) ResetState() {
	m.state = nil
}

// SetPriority sets the "priority" field.
func (m *JobMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *JobMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *JobMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *JobMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *JobMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetEarliestExecutionTime sets the "earliest_execution_time" field.
func (m *JobMutation) SetEarliestExecutionTime(t time.Time) {
	m.earliest_execution_time = &t
}

// EarliestExecutionTime returns the value of the "earliest_execution_time" field in the mutation.
func (m *JobMutation) EarliestExecutionTime() (r time.Time, exists bool) {
	v := m.earliest_execution_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEarliestExecutionTime returns the old "earliest_execution_time" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldEarliestExecutionTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEarliestExecutionTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEarliestExecutionTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEarliestExecutionTime: %w", err)
	}
	return oldValue.EarliestExecutionTime, nil
}

// ResetEarliestExecutionTime resets all changes to the "earliest_execution_time" field.
func (m *JobMutation) ResetEarliestExecutionTime() {
	m.earliest_execution_time = nil
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (m *JobMutation) SetTimeoutSeconds(i int) {
	m.timeout_seconds = &i
	m.addtimeout_seconds = nil
}

// TimeoutSeconds returns the value of the "timeout_seconds" field in the mutation.
func (m *JobMutation) TimeoutSeconds() (r int, exists bool) {
	v := m.timeout_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeoutSeconds returns the old "timeout_seconds" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldTimeoutSeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeoutSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeoutSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeoutSeconds: %w", err)
	}
	return oldValue.TimeoutSeconds, nil
}

// AddTimeoutSeconds adds i to the "timeout_seconds" field.
func (m *JobMutation) AddTimeoutSeconds(i int) {
	if m.addtimeout_seconds != nil {
		*m.addtimeout_seconds += i
	} else {
		m.addtimeout_seconds = &i
	}
}

// AddedTimeoutSeconds returns the value that was added to the "timeout_seconds" field in this mutation.
func (m *JobMutation) AddedTimeoutSeconds() (r int, exists bool) {
	v := m.addtimeout_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeoutSeconds resets all changes to the "timeout_seconds" field.
func (m *JobMutation) ResetTimeoutSeconds() {
	m.timeout_seconds = nil
	m.addtimeout_seconds = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *JobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetAssignedAt sets the "assigned_at" field.
func (m *JobMutation) SetAssignedAt(t time.Time) {
	m.assigned_at = &t
}

// AssignedAt returns the value of the "assigned_at" field in the mutation.
func (m *JobMutation) AssignedAt() (r time.Time, exists bool) {
	v := m.assigned_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedAt returns the old "assigned_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldAssignedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedAt: %w", err)
	}
	return oldValue.AssignedAt, nil
}

// ClearAssignedAt clears the value of the "assigned_at" field.
func (m *JobMutation) ClearAssignedAt() {
	m.assigned_at = nil
	m.clearedFields[job.FieldAssignedAt] = struct{}{}
}

// AssignedAtCleared returns if the "assigned_at" field was cleared in this mutation.
func (m *JobMutation) AssignedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldAssignedAt]
	return ok
}

// ResetAssignedAt resets all changes to the "assigned_at" field.
func (m *JobMutation) ResetAssignedAt() {
	m.assigned_at = nil
	delete(m.clearedFields, job.FieldAssignedAt)
}

// SetStartedAt sets the "started_at" field.
func (m *JobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *JobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *JobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[job.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *JobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *JobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, job.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *JobMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *JobMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *JobMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[job.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *JobMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *JobMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, job.FieldCompletedAt)
}

// SetFailureReason sets the "failure_reason" field.
func (m *JobMutation) SetFailureReason(s string) {
	m.failure_reason = &s
}

// FailureReason returns the value of the "failure_reason" field in the mutation.
func (m *JobMutation) FailureReason() (r string, exists bool) {
	v := m.failure_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureReason returns the old "failure_reason" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldFailureReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureReason: %w", err)
	}
	return oldValue.FailureReason, nil
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (m *JobMutation) ClearFailureReason() {
	m.failure_reason = nil
	m.clearedFields[job.FieldFailureReason] = struct{}{}
}

// FailureReasonCleared returns if the "failure_reason" field was cleared in this mutation.
func (m *JobMutation) FailureReasonCleared() bool {
	_, ok := m.clearedFields[job.FieldFailureReason]
	return ok
}

// ResetFailureReason resets all changes to the "failure_reason" field.
func (m *JobMutation) ResetFailureReason() {
	m.failure_reason = nil
	delete(m.clearedFields, job.FieldFailureReason)
}

// ClearAccount clears the "account" edge to the Account entity.
func (m *JobMutation) ClearAccount() {
	m.clearedaccount = true
	m.clearedFields[job.FieldAccountID] = struct{}{}
}

// AccountCleared reports if the "account" edge to the Account entity was cleared.
func (m *JobMutation) AccountCleared() bool {
	return m.clearedaccount
}

// AccountIDs returns the "account" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AccountID instead. It exists only for internal usage by the builders.
func (m *JobMutation) AccountIDs() (ids []string) {
	if id := m.account; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAccount resets all changes to the "account" edge.
func (m *JobMutation) ResetAccount() {
	m.account = nil
	m.clearedaccount = false
}

// SetResultID sets the "result" edge to the JobResult entity by id.
func (m *JobMutation) SetResultID(id string) {
	m.result = &id
}

// ClearResult clears the "result" edge to the JobResult entity.
func (m *JobMutation) ClearResult() {
	m.clearedresult = true
}

// ResultCleared reports if the "result" edge to the JobResult entity was cleared.
func (m *JobMutation) ResultCleared() bool {
	return m.clearedresult
}

// ResultID returns the "result" edge ID in the mutation.
func (m *JobMutation) ResultID() (id string, exists bool) {
	if m.result != nil {
		return *m.result, true
	}
	return
}

// ResultIDs returns the "result" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ResultID instead. It exists only for internal usage by the builders.
func (m *JobMutation) ResultIDs() (ids []string) {
	if id := m.result; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetResult resets all changes to the "result" edge.
func (m *JobMutation) ResetResult() {
	m.result = nil
	m.clearedresult = false
}

// Where appends a list predicates to the JobMutation builder.
func (m *JobMutation) Where(ps ...predicate.Job) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Job, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Job).
func (m *JobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.account != nil {
		fields = append(fields, job.FieldAccountID)
	}
	if m.created_by_user_id != nil {
		fields = append(fields, job.FieldCreatedByUserID)
	}
	if m.assigned_agent_id != nil {
		fields = append(fields, job.FieldAssignedAgentID)
	}
	if m._type != nil {
		fields = append(fields, job.FieldType)
	}
	if m.parameters != nil {
		fields = append(fields, job.FieldParameters)
	}
	if m.lead_id != nil {
		fields = append(fields, job.FieldLeadID)
	}
	if m.state != nil {
		fields = append(fields, job.FieldState)
	}
	if m.priority != nil {
		fields = append(fields, job.FieldPriority)
	}
	if m.earliest_execution_time != nil {
		fields = append(fields, job.FieldEarliestExecutionTime)
	}
	if m.timeout_seconds != nil {
		fields = append(fields, job.FieldTimeoutSeconds)
	}
	if m.created_at != nil {
		fields = append(fields, job.FieldCreatedAt)
	}
	if m.assigned_at != nil {
		fields = append(fields, job.FieldAssignedAt)
	}
	if m.started_at != nil {
		fields = append(fields, job.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, job.FieldCompletedAt)
	}
	if m.failure_reason != nil {
		fields = append(fields, job.FieldFailureReason)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case job.FieldAccountID:
		return m.AccountID()
	case job.FieldCreatedByUserID:
		return m.CreatedByUserID()
	case job.FieldAssignedAgentID:
		return m.AssignedAgentID()
	case job.FieldType:
		return m.GetType()
	case job.FieldParameters:
		return m.Parameters()
	case job.FieldLeadID:
		return m.LeadID()
	case job.FieldState:
		return m.State()
	case job.FieldPriority:
		return m.Priority()
	case job.FieldEarliestExecutionTime:
		return m.EarliestExecutionTime()
	case job.FieldTimeoutSeconds:
		return m.TimeoutSeconds()
	case job.FieldCreatedAt:
		return m.CreatedAt()
	case job.FieldAssignedAt:
		return m.AssignedAt()
	case job.FieldStartedAt:
		return m.StartedAt()
	case job.FieldCompletedAt:
		return m.CompletedAt()
	case job.FieldFailureReason:
		return m.FailureReason()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case job.FieldAccountID:
		return m.OldAccountID(ctx)
	case job.FieldCreatedByUserID:
		return m.OldCreatedByUserID(ctx)
	case job.FieldAssignedAgentID:
		return m.OldAssignedAgentID(ctx)
	case job.FieldType:
		return m.OldType(ctx)
	case job.FieldParameters:
		return m.OldParameters(ctx)
	case job.FieldLeadID:
		return m.OldLeadID(ctx)
	case job.FieldState:
		return m.OldState(ctx)
	case job.FieldPriority:
		return m.OldPriority(ctx)
	case job.FieldEarliestExecutionTime:
		return m.OldEarliestExecutionTime(ctx)
	case job.FieldTimeoutSeconds:
		return m.OldTimeoutSeconds(ctx)
	case job.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case job.FieldAssignedAt:
		return m.OldAssignedAt(ctx)
	case job.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case job.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case job.FieldFailureReason:
		return m.OldFailureReason(ctx)
	}
	return nil, fmt.Errorf("unknown Job field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case job.FieldAccountID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountID(v)
		return nil
	case job.FieldCreatedByUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedByUserID(v)
		return nil
	case job.FieldAssignedAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedAgentID(v)
		return nil
	case job.FieldType:
		v, ok := value.(job.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case job.FieldParameters:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParameters(v)
		return nil
	case job.FieldLeadID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeadID(v)
		return nil
	case job.FieldState:
		v, ok := value.(job.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case job.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case job.FieldEarliestExecutionTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEarliestExecutionTime(v)
		return nil
	case job.FieldTimeoutSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeoutSeconds(v)
		return nil
	case job.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case job.FieldAssignedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedAt(v)
		return nil
	case job.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case job.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case job.FieldFailureReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureReason(v)
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, job.FieldPriority)
	}
	if m.addtimeout_seconds != nil {
		fields = append(fields, job.FieldTimeoutSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case job.FieldPriority:
		return m.AddedPriority()
	case job.FieldTimeoutSeconds:
		return m.AddedTimeoutSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case job.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	case job.FieldTimeoutSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeoutSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown Job numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(job.FieldAssignedAgentID) {
		fields = append(fields, job.FieldAssignedAgentID)
	}
	if m.FieldCleared(job.FieldLeadID) {
		fields = append(fields, job.FieldLeadID)
	}
	if m.FieldCleared(job.FieldAssignedAt) {
		fields = append(fields, job.FieldAssignedAt)
	}
	if m.FieldCleared(job.FieldStartedAt) {
		fields = append(fields, job.FieldStartedAt)
	}
	if m.FieldCleared(job.FieldCompletedAt) {
		fields = append(fields, job.FieldCompletedAt)
	}
	if m.FieldCleared(job.FieldFailureReason) {
		fields = append(fields, job.FieldFailureReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobMutation) ClearField(name string) error {
	switch name {
	case job.FieldAssignedAgentID:
		m.ClearAssignedAgentID()
		return nil
	case job.FieldLeadID:
		m.ClearLeadID()
		return nil
	case job.FieldAssignedAt:
		m.ClearAssignedAt()
		return nil
	case job.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case job.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case job.FieldFailureReason:
		m.ClearFailureReason()
		return nil
	}
	return fmt.Errorf("unknown Job nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobMutation) ResetField(name string) error {
	switch name {
	case job.FieldAccountID:
		m.ResetAccountID()
		return nil
	case job.FieldCreatedByUserID:
		m.ResetCreatedByUserID()
		return nil
	case job.FieldAssignedAgentID:
		m.ResetAssignedAgentID()
		return nil
	case job.FieldType:
		m.ResetType()
		return nil
	case job.FieldParameters:
		m.ResetParameters()
		return nil
	case job.FieldLeadID:
		m.ResetLeadID()
		return nil
	case job.FieldState:
		m.ResetState()
		return nil
	case job.FieldPriority:
		m.ResetPriority()
		return nil
	case job.FieldEarliestExecutionTime:
		m.ResetEarliestExecutionTime()
		return nil
	case job.FieldTimeoutSeconds:
		m.ResetTimeoutSeconds()
		return nil
	case job.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case job.FieldAssignedAt:
		m.ResetAssignedAt()
		return nil
	case job.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case job.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case job.FieldFailureReason:
		m.ResetFailureReason()
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.account != nil {
		edges = append(edges, job.EdgeAccount)
	}
	if m.result != nil {
		edges = append(edges, job.EdgeResult)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case job.EdgeAccount:
		if id := m.account; id != nil {
			return []ent.Value{*id}
		}
	case job.EdgeResult:
		if id := m.result; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedaccount {
		edges = append(edges, job.EdgeAccount)
	}
	if m.clearedresult {
		edges = append(edges, job.EdgeResult)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobMutation) EdgeCleared(name string) bool {
	switch name {
	case job.EdgeAccount:
		return m.clearedaccount
	case job.EdgeResult:
		return m.clearedresult
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobMutation) ClearEdge(name string) error {
	switch name {
	case job.EdgeAccount:
		m.ClearAccount()
		return nil
	case job.EdgeResult:
		m.ClearResult()
		return nil
	}
	return fmt.Errorf("unknown Job unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobMutation) ResetEdge(name string) error {
	switch name {
	case job.EdgeAccount:
		m.ResetAccount()
		return nil
	case job.EdgeResult:
		m.ResetResult()
		return nil
	}
	return fmt.Errorf("unknown Job edge %s", name)
}

// JobResultMutation represents an operation that mutates the JobResult nodes in the graph.
type JobResultMutation struct {
	config
	op             Op
	typ            string
	id             *string
	agent_id       *string
	status         *jobresult.Status
	observed_state *jobresult.ObservedState
	failure_reason *jobresult.FailureReason
	completed_at   *time.Time
	clearedFields  map[string]struct{}
	job            *string
	clearedjob     bool
	done           bool
	oldValue       func(context.Context) (*JobResult, error)
	predicates     []predicate.JobResult
}

var _ ent.Mutation = (*JobResultMutation)(nil)

// jobresultOption allows management of the mutation configuration using functional options.
type jobresultOption func(*JobResultMutation)

// newJobResultMutation creates new mutation for the JobResult entity.
func newJobResultMutation(c config, op Op, opts ...jobresultOption) *JobResultMutation {
	m := &JobResultMutation{
		config:        c,
		op:            op,
		typ:           TypeJobResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobResultID sets the ID field of the mutation.
func withJobResultID(id string) jobresultOption {
	return func(m *JobResultMutation) {
		var (
			err   error
			once  sync.Once
			value *JobResult
		)
		m.oldValue = func(ctx context.Context) (*JobResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().JobResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJobResult sets the old JobResult of the mutation.
func withJobResult(node *JobResult) jobresultOption {
	return func(m *JobResultMutation) {
		m.oldValue = func(context.Context) (*JobResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of JobResult entities.
func (m *JobResultMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobResultMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobResultMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().JobResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *JobResultMutation) SetJobID(s string) {
	m.job = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *JobResultMutation) JobID() (r string, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the JobResult entity.
// If the JobResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobResultMutation) OldJobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *JobResultMutation) ResetJobID() {
	m.job = nil
}

// SetAgentID sets the "agent_id" field.
func (m *JobResultMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *JobResultMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the JobResult entity.
// If the JobResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobResultMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *JobResultMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetStatus sets the "status" field.
func (m *JobResultMutation) SetStatus(j jobresult.Status) {
	m.status = &j
}

// Status returns the value of the "status" field in the mutation.
func (m *JobResultMutation) Status() (r jobresult.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the JobResult entity.
// If the JobResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobResultMutation) OldStatus(ctx context.Context) (v jobresult.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *JobResultMutation) ResetStatus() {
	m.status = nil
}

// SetObservedState sets the "observed_state" field.
func (m *JobResultMutation) SetObservedState(js jobresult.ObservedState) {
	m.observed_state = &js
}

// ObservedState returns the value of the "observed_state" field in the mutation.
func (m *JobResultMutation) ObservedState() (r jobresult.ObservedState, exists bool) {
	v := m.observed_state
	if v == nil {
		return
	}
	return *v, true
}

// OldObservedState returns the old "observed_state" field's value of the JobResult entity.
// If the JobResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobResultMutation) OldObservedState(ctx context.Context) (v *jobresult.ObservedState, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObservedState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObservedState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObservedState: %w", err)
	}
	return oldValue.ObservedState, nil
}

// ClearObservedState clears the value of the "observed_state" field.
func (m *JobResultMutation) ClearObservedState() {
	m.observed_state = nil
	m.clearedFields[jobresult.FieldObservedState] = struct{}{}
}

// ObservedStateCleared returns if the "observed_state" field was cleared in this mutation.
func (m *JobResultMutation) ObservedStateCleared() bool {
	_, ok := m.clearedFields[jobresult.FieldObservedState]
	return ok
}

// ResetObservedState resets all changes to the "observed_state" field.
func (m *JobResultMutation) ResetObservedState() {
	m.observed_state = nil
	delete(m.clearedFields, jobresult.FieldObservedState)
}

// SetFailureReason sets the "failure_reason" field.
func (m *JobResultMutation) SetFailureReason(jr jobresult.FailureReason) {
	m.failure_reason = &jr
}

// FailureReason returns the value of the "failure_reason" field in the mutation.
func (m *JobResultMutation) FailureReason() (r jobresult.FailureReason, exists bool) {
	v := m.failure_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureReason returns the old "failure_reason" field's value of the JobResult entity.
// If the JobResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobResultMutation) OldFailureReason(ctx context.Context) (v *jobresult.FailureReason, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureReason: %w", err)
	}
	return oldValue.FailureReason, nil
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (m *JobResultMutation) ClearFailureReason() {
	m.failure_reason = nil
	m.clearedFields[jobresult.FieldFailureReason] = struct{}{}
}

// FailureReasonCleared returns if the "failure_reason" field was cleared in this mutation.
func (m *JobResultMutation) FailureReasonCleared() bool {
	_, ok := m.clearedFields[jobresult.FieldFailureReason]
	return ok
}

// ResetFailureReason resets all changes to the "failure_reason" field.
func (m *JobResultMutation) ResetFailureReason() {
	m.failure_reason = nil
	delete(m.clearedFields, jobresult.FieldFailureReason)
}

// SetCompletedAt sets the "completed_at" field.
func (m *JobResultMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *JobResultMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the JobResult entity.
// If the JobResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobResultMutation) OldCompletedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *JobResultMutation) ResetCompletedAt() {
	m.completed_at = nil
}

// ClearJob clears the "job" edge to the Job entity.
func (m *JobResultMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[jobresult.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the Job entity was cleared.
func (m *JobResultMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *JobResultMutation) JobIDs() (ids []string) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *JobResultMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// Where appends a list predicates to the JobResultMutation builder.
func (m *JobResultMutation) Where(ps ...predicate.JobResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.JobResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (JobResult).
func (m *JobResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobResultMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.job != nil {
		fields = append(fields, jobresult.FieldJobID)
	}
	if m.agent_id != nil {
		fields = append(fields, jobresult.FieldAgentID)
	}
	if m.status != nil {
		fields = append(fields, jobresult.FieldStatus)
	}
	if m.observed_state != nil {
		fields = append(fields, jobresult.FieldObservedState)
	}
	if m.failure_reason != nil {
		fields = append(fields, jobresult.FieldFailureReason)
	}
	if m.completed_at != nil {
		fields = append(fields, jobresult.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case jobresult.FieldJobID:
		return m.JobID()
	case jobresult.FieldAgentID:
		return m.AgentID()
	case jobresult.FieldStatus:
		return m.Status()
	case jobresult.FieldObservedState:
		return m.ObservedState()
	case jobresult.FieldFailureReason:
		return m.FailureReason()
	case jobresult.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case jobresult.FieldJobID:
		return m.OldJobID(ctx)
	case jobresult.FieldAgentID:
		return m.OldAgentID(ctx)
	case jobresult.FieldStatus:
		return m.OldStatus(ctx)
	case jobresult.FieldObservedState:
		return m.OldObservedState(ctx)
	case jobresult.FieldFailureReason:
		return m.OldFailureReason(ctx)
	case jobresult.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown JobResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case jobresult.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case jobresult.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case jobresult.FieldStatus:
		v, ok := value.(jobresult.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case jobresult.FieldObservedState:
		v, ok := value.(jobresult.ObservedState)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObservedState(v)
		return nil
	case jobresult.FieldFailureReason:
		v, ok := value.(jobresult.FailureReason)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureReason(v)
		return nil
	case jobresult.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown JobResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobResultMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobResultMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown JobResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobResultMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(jobresult.FieldObservedState) {
		fields = append(fields, jobresult.FieldObservedState)
	}
	if m.FieldCleared(jobresult.FieldFailureReason) {
		fields = append(fields, jobresult.FieldFailureReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobResultMutation) ClearField(name string) error {
	switch name {
	case jobresult.FieldObservedState:
		m.ClearObservedState()
		return nil
	case jobresult.FieldFailureReason:
		m.ClearFailureReason()
		return nil
	}
	return fmt.Errorf("unknown JobResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobResultMutation) ResetField(name string) error {
	switch name {
	case jobresult.FieldJobID:
		m.ResetJobID()
		return nil
	case jobresult.FieldAgentID:
		m.ResetAgentID()
		return nil
	case jobresult.FieldStatus:
		m.ResetStatus()
		return nil
	case jobresult.FieldObservedState:
		m.ResetObservedState()
		return nil
	case jobresult.FieldFailureReason:
		m.ResetFailureReason()
		return nil
	case jobresult.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown JobResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.job != nil {
		edges = append(edges, jobresult.EdgeJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobResultMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case jobresult.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjob {
		edges = append(edges, jobresult.EdgeJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobResultMutation) EdgeCleared(name string) bool {
	switch name {
	case jobresult.EdgeJob:
		return m.clearedjob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobResultMutation) ClearEdge(name string) error {
	switch name {
	case jobresult.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown JobResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobResultMutation) ResetEdge(name string) error {
	switch name {
	case jobresult.EdgeJob:
		m.ResetJob()
		return nil
	}
	return fmt.Errorf("unknown JobResult edge %s", name)
}

// RateLimitRuleMutation represents an operation that mutates the RateLimitRule nodes in the graph.
type RateLimitRuleMutation struct {
	config
	op                Op
	typ               string
	id                *string
	action_type       *string
	max_count         *int
	addmax_count      *int
	window_seconds    *int
	addwindow_seconds *int
	is_active         *bool
	created_at        *time.Time
	clearedFields     map[string]struct{}
	violations        map[string]struct{}
	removedviolations map[string]struct{}
	clearedviolations bool
	done              bool
	oldValue          func(context.Context) (*RateLimitRule, error)
	predicates        []predicate.RateLimitRule
}

var _ ent.Mutation = (*RateLimitRuleMutation)(nil)

// ratelimitruleOption allows management of the mutation configuration using functional options.
type ratelimitruleOption func(*RateLimitRuleMutation)

// newRateLimitRuleMutation creates new mutation for the RateLimitRule entity.
func newRateLimitRuleMutation(c config, op Op, opts ...ratelimitruleOption) *RateLimitRuleMutation {
	m := &RateLimitRuleMutation{
		config:        c,
		op:            op,
		typ:           TypeRateLimitRule,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRateLimitRuleID sets the ID field of the mutation.
func withRateLimitRuleID(id string) ratelimitruleOption {
	return func(m *RateLimitRuleMutation) {
		var (
			err   error
			once  sync.Once
			value *RateLimitRule
		)
		m.oldValue = func(ctx context.Context) (*RateLimitRule, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RateLimitRule.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRateLimitRule sets the old RateLimitRule of the mutation.
func withRateLimitRule(node *RateLimitRule) ratelimitruleOption {
	return func(m *RateLimitRuleMutation) {
		m.oldValue = func(context.Context) (*RateLimitRule, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RateLimitRuleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RateLimitRuleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RateLimitRule entities.
func (m *RateLimitRuleMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RateLimitRuleMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RateLimitRuleMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RateLimitRule.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetActionType sets the "action_type" field.
func (m *RateLimitRuleMutation) SetActionType(s string) {
	m.action_type = &s
}

// ActionType returns the value of the "action_type" field in the mutation.
func (m *RateLimitRuleMutation) ActionType() (r string, exists bool) {
	v := m.action_type
	if v == nil {
		return
	}
	return *v, true
}

// OldActionType returns the old "action_type" field's value of the RateLimitRule entity.
// If the RateLimitRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RateLimitRuleMutation) OldActionType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionType: %w", err)
	}
	return oldValue.ActionType, nil
}

// ResetActionType resets all changes to the "action_type" field.
func (m *RateLimitRuleMutation) ResetActionType() {
	m.action_type = nil
}

// SetMaxCount sets the "max_count" field.
func (m *RateLimitRuleMutation) SetMaxCount(i int) {
	m.max_count = &i
	m.addmax_count = nil
}

// MaxCount returns the value of the "max_count" field in the mutation.
func (m *RateLimitRuleMutation) MaxCount() (r int, exists bool) {
	v := m.max_count
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxCount returns the old "max_count" field's value of the RateLimitRule entity.
// If the RateLimitRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RateLimitRuleMutation) OldMaxCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxCount: %w", err)
	}
	return oldValue.MaxCount, nil
}

// AddMaxCount adds i to the "max_count" field.
func (m *RateLimitRuleMutation) AddMaxCount(i int) {
	if m.addmax_count != nil {
		*m.addmax_count += i
	} else {
		m.addmax_count = &i
	}
}

// AddedMaxCount returns the value that was added to the "max_count" field in this mutation.
func (m *RateLimitRuleMutation) AddedMaxCount() (r int, exists bool) {
	v := m.addmax_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxCount resets all changes to the "max_count" field.
func (m *RateLimitRuleMutation) ResetMaxCount() {
	m.max_count = nil
	m.addmax_count = nil
}

// SetWindowSeconds sets the "window_seconds" field.
func (m *RateLimitRuleMutation) SetWindowSeconds(i int) {
	m.window_seconds = &i
	m.addwindow_seconds = nil
}

// WindowSeconds returns the value of the "window_seconds" field in the mutation.
func (m *RateLimitRuleMutation) WindowSeconds() (r int, exists bool) {
	v := m.window_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldWindowSeconds returns the old "window_seconds" field's value of the RateLimitRule entity.
// If the RateLimitRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RateLimitRuleMutation) OldWindowSeconds(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWindowSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWindowSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWindowSeconds: %w", err)
	}
	return oldValue.WindowSeconds, nil
}

// AddWindowSeconds adds i to the "window_seconds" field.
func (m *RateLimitRuleMutation) AddWindowSeconds(i int) {
	if m.addwindow_seconds != nil {
		*m.addwindow_seconds += i
	} else {
		m.addwindow_seconds = &i
	}
}

// AddedWindowSeconds returns the value that was added to the "window_seconds" field in this mutation.
func (m *RateLimitRuleMutation) AddedWindowSeconds() (r int, exists bool) {
	v := m.addwindow_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetWindowSeconds resets all changes to the "window_seconds" field.
func (m *RateLimitRuleMutation) ResetWindowSeconds() {
	m.window_seconds = nil
	m.addwindow_seconds = nil
}

// SetIsActive sets the "is_active" field.
func (m *RateLimitRuleMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *RateLimitRuleMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the RateLimitRule entity.
// If the RateLimitRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RateLimitRuleMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *RateLimitRuleMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RateLimitRuleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RateLimitRuleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RateLimitRule entity.
// If the RateLimitRule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RateLimitRuleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RateLimitRuleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddViolationIDs adds the "violations" edge to the Violation entity by ids.
func (m *RateLimitRuleMutation) AddViolationIDs(ids ...string) {
	if m.violations == nil {
		m.violations = make(map[string]struct{})
	}
	for i := range ids {
		m.violations[ids[i]] = struct{}{}
	}
}

// ClearViolations clears the "violations" edge to the Violation entity.
func (m *RateLimitRuleMutation) ClearViolations() {
	m.clearedviolations = true
}

// ViolationsCleared reports if the "violations" edge to the Violation entity was cleared.
func (m *RateLimitRuleMutation) ViolationsCleared() bool {
	return m.clearedviolations
}

// RemoveViolationIDs removes the "violations" edge to the Violation entity by IDs.
func (m *RateLimitRuleMutation) RemoveViolationIDs(ids ...string) {
	if m.removedviolations == nil {
		m.removedviolations = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.violations, ids[i])
		m.removedviolations[ids[i]] = struct{}{}
	}
}

// RemovedViolations returns the removed IDs of the "violations" edge to the Violation entity.
func (m *RateLimitRuleMutation) RemovedViolationsIDs() (ids []string) {
	for id := range m.removedviolations {
		ids = append(ids, id)
	}
	return
}

// ViolationsIDs returns the "violations" edge IDs in the mutation.
func (m *RateLimitRuleMutation) ViolationsIDs() (ids []string) {
	for id := range m.violations {
		ids = append(ids, id)
	}
	return
}

// ResetViolations resets all changes to the "violations" edge.
func (m *RateLimitRuleMutation) ResetViolations() {
	m.violations = nil
	m.clearedviolations = false
	m.removedviolations = nil
}

// Where appends a list predicates to the RateLimitRuleMutation builder.
func (m *RateLimitRuleMutation) Where(ps ...predicate.RateLimitRule) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RateLimitRuleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RateLimitRuleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RateLimitRule, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RateLimitRuleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RateLimitRuleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RateLimitRule).
func (m *RateLimitRuleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RateLimitRuleMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.action_type != nil {
		fields = append(fields, ratelimitrule.FieldActionType)
	}
	if m.max_count != nil {
		fields = append(fields, ratelimitrule.FieldMaxCount)
	}
	if m.window_seconds != nil {
		fields = append(fields, ratelimitrule.FieldWindowSeconds)
	}
	if m.is_active != nil {
		fields = append(fields, ratelimitrule.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, ratelimitrule.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RateLimitRuleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ratelimitrule.FieldActionType:
		return m.ActionType()
	case ratelimitrule.FieldMaxCount:
		return m.MaxCount()
	case ratelimitrule.FieldWindowSeconds:
		return m.WindowSeconds()
	case ratelimitrule.FieldIsActive:
		return m.IsActive()
	case ratelimitrule.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RateLimitRuleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ratelimitrule.FieldActionType:
		return m.OldActionType(ctx)
	case ratelimitrule.FieldMaxCount:
		return m.OldMaxCount(ctx)
	case ratelimitrule.FieldWindowSeconds:
		return m.OldWindowSeconds(ctx)
	case ratelimitrule.FieldIsActive:
		return m.OldIsActive(ctx)
	case ratelimitrule.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RateLimitRule field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RateLimitRuleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ratelimitrule.FieldActionType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionType(v)
		return nil
	case ratelimitrule.FieldMaxCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxCount(v)
		return nil
	case ratelimitrule.FieldWindowSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWindowSeconds(v)
		return nil
	case ratelimitrule.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case ratelimitrule.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RateLimitRule field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RateLimitRuleMutation) AddedFields() []string {
	var fields []string
	if m.addmax_count != nil {
		fields = append(fields, ratelimitrule.FieldMaxCount)
	}
	if m.addwindow_seconds != nil {
		fields = append(fields, ratelimitrule.FieldWindowSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RateLimitRuleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case ratelimitrule.FieldMaxCount:
		return m.AddedMaxCount()
	case ratelimitrule.FieldWindowSeconds:
		return m.AddedWindowSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RateLimitRuleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case ratelimitrule.FieldMaxCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxCount(v)
		return nil
	case ratelimitrule.FieldWindowSeconds:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWindowSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown RateLimitRule numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RateLimitRuleMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RateLimitRuleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RateLimitRuleMutation) ClearField(name string) error {
	return fmt.Errorf("unknown RateLimitRule nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RateLimitRuleMutation) ResetField(name string) error {
	switch name {
	case ratelimitrule.FieldActionType:
		m.ResetActionType()
		return nil
	case ratelimitrule.FieldMaxCount:
		m.ResetMaxCount()
		return nil
	case ratelimitrule.FieldWindowSeconds:
		m.ResetWindowSeconds()
		return nil
	case ratelimitrule.FieldIsActive:
		m.ResetIsActive()
		return nil
	case ratelimitrule.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown RateLimitRule field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RateLimitRuleMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.violations != nil {
		edges = append(edges, ratelimitrule.EdgeViolations)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RateLimitRuleMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case ratelimitrule.EdgeViolations:
		ids := make([]ent.Value, 0, len(m.violations))
		for id := range m.violations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RateLimitRuleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedviolations != nil {
		edges = append(edges, ratelimitrule.EdgeViolations)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RateLimitRuleMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case ratelimitrule.EdgeViolations:
		ids := make([]ent.Value, 0, len(m.removedviolations))
		for id := range m.removedviolations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RateLimitRuleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedviolations {
		edges = append(edges, ratelimitrule.EdgeViolations)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RateLimitRuleMutation) EdgeCleared(name string) bool {
	switch name {
	case ratelimitrule.EdgeViolations:
		return m.clearedviolations
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RateLimitRuleMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown RateLimitRule unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RateLimitRuleMutation) ResetEdge(name string) error {
	switch name {
	case ratelimitrule.EdgeViolations:
		m.ResetViolations()
		return nil
	}
	return fmt.Errorf("unknown RateLimitRule edge %s", name)
}

// RiskScoreMutation represents an operation that mutates the RiskScore nodes in the graph.
type RiskScoreMutation struct {
	config
	op             Op
	typ            string
	id             *string
	score          *float64
	addscore       *float64
	level          *riskscore.Level
	factors        *map[string]interface{}
	calculated_at  *time.Time
	clearedFields  map[string]struct{}
	account        *string
	clearedaccount bool
	done           bool
	oldValue       func(context.Context) (*RiskScore, error)
	predicates     []predicate.RiskScore
}

var _ ent.Mutation = (*RiskScoreMutation)(nil)

// riskscoreOption allows management of the mutation configuration using functional options.
type riskscoreOption func(*RiskScoreMutation)

// newRiskScoreMutation creates new mutation for the RiskScore entity.
func newRiskScoreMutation(c config, op Op, opts ...riskscoreOption) *RiskScoreMutation {
	m := &RiskScoreMutation{
		config:        c,
		op:            op,
		typ:           TypeRiskScore,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRiskScoreID sets the ID field of the mutation.
func withRiskScoreID(id string) riskscoreOption {
	return func(m *RiskScoreMutation) {
		var (
			err   error
			once  sync.Once
			value *RiskScore
		)
		m.oldValue = func(ctx context.Context) (*RiskScore, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RiskScore.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRiskScore sets the old RiskScore of the mutation.
func withRiskScore(node *RiskScore) riskscoreOption {
	return func(m *RiskScoreMutation) {
		m.oldValue = func(context.Context) (*RiskScore, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RiskScoreMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RiskScoreMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RiskScore entities.
func (m *RiskScoreMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RiskScoreMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RiskScoreMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RiskScore.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAccountID sets the "account_id" field.
func (m *RiskScoreMutation) SetAccountID(s string) {
	m.account = &s
}

// AccountID returns the value of the "account_id" field in the mutation.
func (m *RiskScoreMutation) AccountID() (r string, exists bool) {
	v := m.account
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountID returns the old "account_id" field's value of the RiskScore entity.
// If the RiskScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RiskScoreMutation) OldAccountID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountID: %w", err)
	}
	return oldValue.AccountID, nil
}

// ResetAccountID resets all changes to the "account_id" field.
func (m *RiskScoreMutation) ResetAccountID() {
	m.account = nil
}

// SetScore sets the "score" field.
func (m *RiskScoreMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *RiskScoreMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the RiskScore entity.
// If the RiskScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RiskScoreMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *RiskScoreMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *RiskScoreMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *RiskScoreMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetLevel sets the "level" field.
func (m *RiskScoreMutation) SetLevel(r riskscore.Level) {
	m.level = &r
}

// Level returns the value of the "level" field in the mutation.
func (m *RiskScoreMutation) Level() (r riskscore.Level, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the RiskScore entity.
// If the RiskScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RiskScoreMutation) OldLevel(ctx context.Context) (v riskscore.Level, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// ResetLevel resets all changes to the "level" field.
func (m *RiskScoreMutation) ResetLevel() {
	m.level = nil
}

// SetFactors sets the "factors" field.
func (m *RiskScoreMutation) SetFactors(value map[string]interface{}) {
	m.factors = &value
}

// Factors returns the value of the "factors" field in the mutation.
func (m *RiskScoreMutation) Factors() (r map[string]interface{}, exists bool) {
	v := m.factors
	if v == nil {
		return
	}
	return *v, true
}

// OldFactors returns the old "factors" field's value of the RiskScore entity.
// If the RiskScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RiskScoreMutation) OldFactors(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFactors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFactors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFactors: %w", err)
	}
	return oldValue.Factors, nil
}

// ClearFactors clears the value of the "factors" field.
func (m *RiskScoreMutation) ClearFactors() {
	m.factors = nil
	m.clearedFields[riskscore.FieldFactors] = struct{}{}
}

// FactorsCleared returns if the "factors" field was cleared in this mutation.
func (m *RiskScoreMutation) FactorsCleared() bool {
	_, ok := m.clearedFields[riskscore.FieldFactors]
	return ok
}

// ResetFactors resets all changes to the "factors" field.
func (m *RiskScoreMutation) ResetFactors() {
	m.factors = nil
	delete(m.clearedFields, riskscore.FieldFactors)
}

// SetCalculatedAt sets the "calculated_at" field.
func (m *RiskScoreMutation) SetCalculatedAt(t time.Time) {
	m.calculated_at = &t
}

// CalculatedAt returns the value of the "calculated_at" field in the mutation.
func (m *RiskScoreMutation) CalculatedAt() (r time.Time, exists bool) {
	v := m.calculated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCalculatedAt returns the old "calculated_at" field's value of the RiskScore entity.
// If the RiskScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RiskScoreMutation) OldCalculatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCalculatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCalculatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCalculatedAt: %w", err)
	}
	return oldValue.CalculatedAt, nil
}

// ResetCalculatedAt resets all changes to the "calculated_at" field.
func (m *RiskScoreMutation) ResetCalculatedAt() {
	m.calculated_at = nil
}

// ClearAccount clears the "account" edge to the Account entity.
func (m *RiskScoreMutation) ClearAccount() {
	m.clearedaccount = true
	m.clearedFields[riskscore.FieldAccountID] = struct{}{}
}

// AccountCleared reports if the "account" edge to the Account entity was cleared.
func (m *RiskScoreMutation) AccountCleared() bool {
	return m.clearedaccount
}

// AccountIDs returns the "account" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AccountID instead. It exists only for internal usage by the builders.
func (m *RiskScoreMutation) AccountIDs() (ids []string) {
	if id := m.account; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAccount resets all changes to the "account" edge.
func (m *RiskScoreMutation) ResetAccount() {
	m.account = nil
	m.clearedaccount = false
}

// Where appends a list predicates to the RiskScoreMutation builder.
func (m *RiskScoreMutation) Where(ps ...predicate.RiskScore) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RiskScoreMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RiskScoreMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RiskScore, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RiskScoreMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RiskScoreMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RiskScore).
func (m *RiskScoreMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RiskScoreMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.account != nil {
		fields = append(fields, riskscore.FieldAccountID)
	}
	if m.score != nil {
		fields = append(fields, riskscore.FieldScore)
	}
	if m.level != nil {
		fields = append(fields, riskscore.FieldLevel)
	}
	if m.factors != nil {
		fields = append(fields, riskscore.FieldFactors)
	}
	if m.calculated_at != nil {
		fields = append(fields, riskscore.FieldCalculatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RiskScoreMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case riskscore.FieldAccountID:
		return m.AccountID()
	case riskscore.FieldScore:
		return m.Score()
	case riskscore.FieldLevel:
		return m.Level()
	case riskscore.FieldFactors:
		return m.Factors()
	case riskscore.FieldCalculatedAt:
		return m.CalculatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RiskScoreMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case riskscore.FieldAccountID:
		return m.OldAccountID(ctx)
	case riskscore.FieldScore:
		return m.OldScore(ctx)
	case riskscore.FieldLevel:
		return m.OldLevel(ctx)
	case riskscore.FieldFactors:
		return m.OldFactors(ctx)
	case riskscore.FieldCalculatedAt:
		return m.OldCalculatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RiskScore field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RiskScoreMutation) SetField(name string, value ent.Value) error {
	switch name {
	case riskscore.FieldAccountID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountID(v)
		return nil
	case riskscore.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case riskscore.FieldLevel:
		v, ok := value.(riskscore.Level)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case riskscore.FieldFactors:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFactors(v)
		return nil
	case riskscore.FieldCalculatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCalculatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RiskScore field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RiskScoreMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, riskscore.FieldScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RiskScoreMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case riskscore.FieldScore:
		return m.AddedScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RiskScoreMutation) AddField(name string, value ent.Value) error {
	switch name {
	case riskscore.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	}
	return fmt.Errorf("unknown RiskScore numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RiskScoreMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(riskscore.FieldFactors) {
		fields = append(fields, riskscore.FieldFactors)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RiskScoreMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RiskScoreMutation) ClearField(name string) error {
	switch name {
	case riskscore.FieldFactors:
		m.ClearFactors()
		return nil
	}
	return fmt.Errorf("unknown RiskScore nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RiskScoreMutation) ResetField(name string) error {
	switch name {
	case riskscore.FieldAccountID:
		m.ResetAccountID()
		return nil
	case riskscore.FieldScore:
		m.ResetScore()
		return nil
	case riskscore.FieldLevel:
		m.ResetLevel()
		return nil
	case riskscore.FieldFactors:
		m.ResetFactors()
		return nil
	case riskscore.FieldCalculatedAt:
		m.ResetCalculatedAt()
		return nil
	}
	return fmt.Errorf("unknown RiskScore field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RiskScoreMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.account != nil {
		edges = append(edges, riskscore.EdgeAccount)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RiskScoreMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case riskscore.EdgeAccount:
		if id := m.account; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RiskScoreMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RiskScoreMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RiskScoreMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedaccount {
		edges = append(edges, riskscore.EdgeAccount)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RiskScoreMutation) EdgeCleared(name string) bool {
	switch name {
	case riskscore.EdgeAccount:
		return m.clearedaccount
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RiskScoreMutation) ClearEdge(name string) error {
	switch name {
	case riskscore.EdgeAccount:
		m.ClearAccount()
		return nil
	}
	return fmt.Errorf("unknown RiskScore unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RiskScoreMutation) ResetEdge(name string) error {
	switch name {
	case riskscore.EdgeAccount:
		m.ResetAccount()
		return nil
	}
	return fmt.Errorf("unknown RiskScore edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op             Op
	typ            string
	id             *string
	email          *string
	token_hash     *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	account        *string
	clearedaccount bool
	done           bool
	oldValue       func(context.Context) (*User, error)
	predicates     []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id string) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetTokenHash sets the "token_hash" field.
func (m *UserMutation) SetTokenHash(s string) {
	m.token_hash = &s
}

// TokenHash returns the value of the "token_hash" field in the mutation.
func (m *UserMutation) TokenHash() (r string, exists bool) {
	v := m.token_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldTokenHash returns the old "token_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldTokenHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokenHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokenHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokenHash: %w", err)
	}
	return oldValue.TokenHash, nil
}

// ResetTokenHash resets all changes to the "token_hash" field.
func (m *UserMutation) ResetTokenHash() {
	m.token_hash = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetAccountID sets the "account" edge to the Account entity by id.
func (m *UserMutation) SetAccountID(id string) {
	m.account = &id
}

// ClearAccount clears the "account" edge to the Account entity.
func (m *UserMutation) ClearAccount() {
	m.clearedaccount = true
}

// AccountCleared reports if the "account" edge to the Account entity was cleared.
func (m *UserMutation) AccountCleared() bool {
	return m.clearedaccount
}

// AccountID returns the "account" edge ID in the mutation.
func (m *UserMutation) AccountID() (id string, exists bool) {
	if m.account != nil {
		return *m.account, true
	}
	return
}

// AccountIDs returns the "account" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AccountID instead. It exists only for internal usage by the builders.
func (m *UserMutation) AccountIDs() (ids []string) {
	if id := m.account; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAccount resets all changes to the "account" edge.
func (m *UserMutation) ResetAccount() {
	m.account = nil
	m.clearedaccount = false
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.token_hash != nil {
		fields = append(fields, user.FieldTokenHash)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldEmail:
		return m.Email()
	case user.FieldTokenHash:
		return m.TokenHash()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldTokenHash:
		return m.OldTokenHash(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldTokenHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokenHash(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldTokenHash:
		m.ResetTokenHash()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.account != nil {
		edges = append(edges, user.EdgeAccount)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeAccount:
		if id := m.account; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedaccount {
		edges = append(edges, user.EdgeAccount)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeAccount:
		return m.clearedaccount
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	case user.EdgeAccount:
		m.ClearAccount()
		return nil
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeAccount:
		m.ResetAccount()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}

// ViolationMutation represents an operation that mutates the Violation nodes in the graph.
type ViolationMutation struct {
	config
	op             Op
	typ            string
	id             *string
	job_id         *string
	violation_type *string
	severity       *violation.Severity
	detected_at    *time.Time
	resolved_at    *time.Time
	clearedFields  map[string]struct{}
	account        *string
	clearedaccount bool
	rule           *string
	clearedrule    bool
	done           bool
	oldValue       func(context.Context) (*Violation, error)
	predicates     []predicate.Violation
}

var _ ent.Mutation = (*ViolationMutation)(nil)

// violationOption allows management of the mutation configuration using functional options.
type violationOption func(*ViolationMutation)

// newViolationMutation creates new mutation for the Violation entity.
func newViolationMutation(c config, op Op, opts ...violationOption) *ViolationMutation {
	m := &ViolationMutation{
		config:        c,
		op:            op,
		typ:           TypeViolation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withViolationID sets the ID field of the mutation.
func withViolationID(id string) violationOption {
	return func(m *ViolationMutation) {
		var (
			err   error
			once  sync.Once
			value *Violation
		)
		m.oldValue = func(ctx context.Context) (*Violation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Violation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withViolation sets the old Violation of the mutation.
func withViolation(node *Violation) violationOption {
	return func(m *ViolationMutation) {
		m.oldValue = func(context.Context) (*Violation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ViolationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ViolationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Violation entities.
func (m *ViolationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ViolationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ViolationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Violation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAccountID sets the "account_id" field.
func (m *ViolationMutation) SetAccountID(s string) {
	m.account = &s
}

// AccountID returns the value of the "account_id" field in the mutation.
func (m *ViolationMutation) AccountID() (r string, exists bool) {
	v := m.account
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountID returns the old "account_id" field's value of the Violation entity.
// If the Violation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ViolationMutation) OldAccountID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountID: %w", err)
	}
	return oldValue.AccountID, nil
}

// ResetAccountID resets all changes to the "account_id" field.
func (m *ViolationMutation) ResetAccountID() {
	m.account = nil
}

// SetRuleID sets the "rule_id" field.
func (m *ViolationMutation) SetRuleID(s string) {
	m.rule = &s
}

// RuleID returns the value of the "rule_id" field in the mutation.
func (m *ViolationMutation) RuleID() (r string, exists bool) {
	v := m.rule
	if v == nil {
		return
	}
	return *v, true
}

// OldRuleID returns the old "rule_id" field's value of the Violation entity.
// If the Violation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ViolationMutation) OldRuleID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRuleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRuleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRuleID: %w", err)
	}
	return oldValue.RuleID, nil
}

// ResetRuleID resets all changes to the "rule_id" field.
func (m *ViolationMutation) ResetRuleID() {
	m.rule = nil
}

// SetJobID sets the "job_id" field.
func (m *ViolationMutation) SetJobID(s string) {
	m.job_id = &s
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *ViolationMutation) JobID() (r string, exists bool) {
	v := m.job_id
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the Violation entity.
// If the Violation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ViolationMutation) OldJobID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ClearJobID clears the value of the "job_id" field.
func (m *ViolationMutation) ClearJobID() {
	m.job_id = nil
	m.clearedFields[violation.FieldJobID] = struct{}{}
}

// JobIDCleared returns if the "job_id" field was cleared in this mutation.
func (m *ViolationMutation) JobIDCleared() bool {
	_, ok := m.clearedFields[violation.FieldJobID]
	return ok
}

// ResetJobID resets all changes to the "job_id" field.
func (m *ViolationMutation) ResetJobID() {
	m.job_id = nil
	delete(m.clearedFields, violation.FieldJobID)
}

// SetViolationType sets the "violation_type" field.
func (m *ViolationMutation) SetViolationType(s string) {
	m.violation_type = &s
}

// ViolationType returns the value of the "violation_type" field in the mutation.
func (m *ViolationMutation) ViolationType() (r string, exists bool) {
	v := m.violation_type
	if v == nil {
		return
	}
	return *v, true
}

// OldViolationType returns the old "violation_type" field's value of the Violation entity.
// If the Violation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ViolationMutation) OldViolationType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldViolationType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldViolationType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldViolationType: %w", err)
	}
	return oldValue.ViolationType, nil
}

// ResetViolationType resets all changes to the "violation_type" field.
func (m *ViolationMutation) ResetViolationType() {
	m.violation_type = nil
}

// SetSeverity sets the "severity" field.
func (m *ViolationMutation) SetSeverity(v violation.Severity) {
	m.severity = &v
}

// Severity returns the value of the "severity" field in the mutation.
func (m *ViolationMutation) Severity() (r violation.Severity, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the Violation entity.
// If the Violation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ViolationMutation) OldSeverity(ctx context.Context) (v violation.Severity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *ViolationMutation) ResetSeverity() {
	m.severity = nil
}

// SetDetectedAt sets the "detected_at" field.
func (m *ViolationMutation) SetDetectedAt(t time.Time) {
	m.detected_at = &t
}

// DetectedAt returns the value of the "detected_at" field in the mutation.
func (m *ViolationMutation) DetectedAt() (r time.Time, exists bool) {
	v := m.detected_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDetectedAt returns the old "detected_at" field's value of the Violation entity.
// If the Violation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ViolationMutation) OldDetectedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetectedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetectedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetectedAt: %w", err)
	}
	return oldValue.DetectedAt, nil
}

// ResetDetectedAt resets all changes to the "detected_at" field.
func (m *ViolationMutation) ResetDetectedAt() {
	m.detected_at = nil
}

// SetResolvedAt sets the "resolved_at" field.
func (m *ViolationMutation) SetResolvedAt(t time.Time) {
	m.resolved_at = &t
}

// ResolvedAt returns the value of the "resolved_at" field in the mutation.
func (m *ViolationMutation) ResolvedAt() (r time.Time, exists bool) {
	v := m.resolved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedAt returns the old "resolved_at" field's value of the Violation entity.
// If the Violation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ViolationMutation) OldResolvedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedAt: %w", err)
	}
	return oldValue.ResolvedAt, nil
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (m *ViolationMutation) ClearResolvedAt() {
	m.resolved_at = nil
	m.clearedFields[violation.FieldResolvedAt] = struct{}{}
}

// ResolvedAtCleared returns if the "resolved_at" field was cleared in this mutation.
func (m *ViolationMutation) ResolvedAtCleared() bool {
	_, ok := m.clearedFields[violation.FieldResolvedAt]
	return ok
}

// ResetResolvedAt resets all changes to the "resolved_at" field.
func (m *ViolationMutation) ResetResolvedAt() {
	m.resolved_at = nil
	delete(m.clearedFields, violation.FieldResolvedAt)
}

// ClearAccount clears the "account" edge to the Account entity.
func (m *ViolationMutation) ClearAccount() {
	m.clearedaccount = true
	m.clearedFields[violation.FieldAccountID] = struct{}{}
}

// AccountCleared reports if the "account" edge to the Account entity was cleared.
func (m *ViolationMutation) AccountCleared() bool {
	return m.clearedaccount
}

// AccountIDs returns the "account" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AccountID instead. It exists only for internal usage by the builders.
func (m *ViolationMutation) AccountIDs() (ids []string) {
	if id := m.account; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAccount resets all changes to the "account" edge.
func (m *ViolationMutation) ResetAccount() {
	m.account = nil
	m.clearedaccount = false
}

// ClearRule clears the "rule" edge to the RateLimitRule entity.
func (m *ViolationMutation) ClearRule() {
	m.clearedrule = true
	m.clearedFields[violation.FieldRuleID] = struct{}{}
}

// RuleCleared reports if the "rule" edge to the RateLimitRule entity was cleared.
func (m *ViolationMutation) RuleCleared() bool {
	return m.clearedrule
}

// RuleIDs returns the "rule" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RuleID instead. It exists only for internal usage by the builders.
func (m *ViolationMutation) RuleIDs() (ids []string) {
	if id := m.rule; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRule resets all changes to the "rule" edge.
func (m *ViolationMutation) ResetRule() {
	m.rule = nil
	m.clearedrule = false
}

// Where appends a list predicates to the ViolationMutation builder.
func (m *ViolationMutation) Where(ps ...predicate.Violation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ViolationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ViolationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Violation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ViolationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ViolationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Violation).
func (m *ViolationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ViolationMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.account != nil {
		fields = append(fields, violation.FieldAccountID)
	}
	if m.rule != nil {
		fields = append(fields, violation.FieldRuleID)
	}
	if m.job_id != nil {
		fields = append(fields, violation.FieldJobID)
	}
	if m.violation_type != nil {
		fields = append(fields, violation.FieldViolationType)
	}
	if m.severity != nil {
		fields = append(fields, violation.FieldSeverity)
	}
	if m.detected_at != nil {
		fields = append(fields, violation.FieldDetectedAt)
	}
	if m.resolved_at != nil {
		fields = append(fields, violation.FieldResolvedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ViolationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case violation.FieldAccountID:
		return m.AccountID()
	case violation.FieldRuleID:
		return m.RuleID()
	case violation.FieldJobID:
		return m.JobID()
	case violation.FieldViolationType:
		return m.ViolationType()
	case violation.FieldSeverity:
		return m.Severity()
	case violation.FieldDetectedAt:
		return m.DetectedAt()
	case violation.FieldResolvedAt:
		return m.ResolvedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ViolationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case violation.FieldAccountID:
		return m.OldAccountID(ctx)
	case violation.FieldRuleID:
		return m.OldRuleID(ctx)
	case violation.FieldJobID:
		return m.OldJobID(ctx)
	case violation.FieldViolationType:
		return m.OldViolationType(ctx)
	case violation.FieldSeverity:
		return m.OldSeverity(ctx)
	case violation.FieldDetectedAt:
		return m.OldDetectedAt(ctx)
	case violation.FieldResolvedAt:
		return m.OldResolvedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Violation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ViolationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case violation.FieldAccountID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountID(v)
		return nil
	case violation.FieldRuleID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRuleID(v)
		return nil
	case violation.FieldJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case violation.FieldViolationType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetViolationType(v)
		return nil
	case violation.FieldSeverity:
		v, ok := value.(violation.Severity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case violation.FieldDetectedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetectedAt(v)
		return nil
	case violation.FieldResolvedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Violation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ViolationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ViolationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ViolationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Violation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ViolationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(violation.FieldJobID) {
		fields = append(fields, violation.FieldJobID)
	}
	if m.FieldCleared(violation.FieldResolvedAt) {
		fields = append(fields, violation.FieldResolvedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ViolationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ViolationMutation) ClearField(name string) error {
	switch name {
	case violation.FieldJobID:
		m.ClearJobID()
		return nil
	case violation.FieldResolvedAt:
		m.ClearResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown Violation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ViolationMutation) ResetField(name string) error {
	switch name {
	case violation.FieldAccountID:
		m.ResetAccountID()
		return nil
	case violation.FieldRuleID:
		m.ResetRuleID()
		return nil
	case violation.FieldJobID:
		m.ResetJobID()
		return nil
	case violation.FieldViolationType:
		m.ResetViolationType()
		return nil
	case violation.FieldSeverity:
		m.ResetSeverity()
		return nil
	case violation.FieldDetectedAt:
		m.ResetDetectedAt()
		return nil
	case violation.FieldResolvedAt:
		m.ResetResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown Violation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ViolationMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.account != nil {
		edges = append(edges, violation.EdgeAccount)
	}
	if m.rule != nil {
		edges = append(edges, violation.EdgeRule)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ViolationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case violation.EdgeAccount:
		if id := m.account; id != nil {
			return []ent.Value{*id}
		}
	case violation.EdgeRule:
		if id := m.rule; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ViolationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ViolationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ViolationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedaccount {
		edges = append(edges, violation.EdgeAccount)
	}
	if m.clearedrule {
		edges = append(edges, violation.EdgeRule)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ViolationMutation) EdgeCleared(name string) bool {
	switch name {
	case violation.EdgeAccount:
		return m.clearedaccount
	case violation.EdgeRule:
		return m.clearedrule
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ViolationMutation) ClearEdge(name string) error {
	switch name {
	case violation.EdgeAccount:
		m.ClearAccount()
		return nil
	case violation.EdgeRule:
		m.ClearRule()
		return nil
	}
	return fmt.Errorf("unknown Violation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ViolationMutation) ResetEdge(name string) error {
	switch name {
	case violation.EdgeAccount:
		m.ResetAccount()
		return nil
	case violation.EdgeRule:
		m.ResetRule()
		return nil
	}
	return fmt.Errorf("unknown Violation edge %s", name)
}
