// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/leadrelay/relay/ent/account"
	"github.com/leadrelay/relay/ent/agent"
	"github.com/leadrelay/relay/ent/job"
	"github.com/leadrelay/relay/ent/predicate"
	"github.com/leadrelay/relay/ent/riskscore"
	"github.com/leadrelay/relay/ent/violation"
)

// AccountUpdate is the builder for updating Account entities.
type AccountUpdate struct {
	config
	hooks    []Hook
	mutation *AccountMutation
}

// Where appends a list predicates to the AccountUpdate builder.
func (_u *AccountUpdate) Where(ps ...predicate.Account) *AccountUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProfileURL sets the "profile_url" field.
func (_u *AccountUpdate) SetProfileURL(v string) *AccountUpdate {
	_u.mutation.SetProfileURL(v)
	return _u
}

// SetNillableProfileURL sets the "profile_url" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableProfileURL(v *string) *AccountUpdate {
	if v != nil {
		_u.SetProfileURL(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *AccountUpdate) SetDisplayName(v string) *AccountUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableDisplayName(v *string) *AccountUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetValidationStatus sets the "validation_status" field.
func (_u *AccountUpdate) SetValidationStatus(v account.ValidationStatus) *AccountUpdate {
	_u.mutation.SetValidationStatus(v)
	return _u
}

// SetNillableValidationStatus sets the "validation_status" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableValidationStatus(v *account.ValidationStatus) *AccountUpdate {
	if v != nil {
		_u.SetValidationStatus(*v)
	}
	return _u
}

// SetHealthStatus sets the "health_status" field.
func (_u *AccountUpdate) SetHealthStatus(v account.HealthStatus) *AccountUpdate {
	_u.mutation.SetHealthStatus(v)
	return _u
}

// SetNillableHealthStatus sets the "health_status" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableHealthStatus(v *account.HealthStatus) *AccountUpdate {
	if v != nil {
		_u.SetHealthStatus(*v)
	}
	return _u
}

// SetUserPaused sets the "user_paused" field.
func (_u *AccountUpdate) SetUserPaused(v bool) *AccountUpdate {
	_u.mutation.SetUserPaused(v)
	return _u
}

// SetNillableUserPaused sets the "user_paused" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableUserPaused(v *bool) *AccountUpdate {
	if v != nil {
		_u.SetUserPaused(*v)
	}
	return _u
}

// SetSessionValidAt sets the "session_valid_at" field.
func (_u *AccountUpdate) SetSessionValidAt(v time.Time) *AccountUpdate {
	_u.mutation.SetSessionValidAt(v)
	return _u
}

// SetNillableSessionValidAt sets the "session_valid_at" field if the given value is not nil.
func (_u *AccountUpdate) SetNillableSessionValidAt(v *time.Time) *AccountUpdate {
	if v != nil {
		_u.SetSessionValidAt(*v)
	}
	return _u
}

// ClearSessionValidAt clears the value of the "session_valid_at" field.
func (_u *AccountUpdate) ClearSessionValidAt() *AccountUpdate {
	_u.mutation.ClearSessionValidAt()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *AccountUpdate) SetMetadata(v map[string]interface{}) *AccountUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *AccountUpdate) ClearMetadata() *AccountUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// AddAgentIDs adds the "agents" edge to the Agent entity by IDs.
func (_u *AccountUpdate) AddAgentIDs(ids ...string) *AccountUpdate {
	_u.mutation.AddAgentIDs(ids...)
	return _u
}

// AddAgents adds the "agents" edges to the Agent entity.
func (_u *AccountUpdate) AddAgents(v ...*Agent) *AccountUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the Job entity by IDs.
func (_u *AccountUpdate) AddJobIDs(ids ...string) *AccountUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the Job entity.
func (_u *AccountUpdate) AddJobs(v ...*Job) *AccountUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// AddViolationIDs adds the "violations" edge to the Violation entity by IDs.
func (_u *AccountUpdate) AddViolationIDs(ids ...string) *AccountUpdate {
	_u.mutation.AddViolationIDs(ids...)
	return _u
}

// AddViolations adds the "violations" edges to the Violation entity.
func (_u *AccountUpdate) AddViolations(v ...*Violation) *AccountUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddViolationIDs(ids...)
}

// AddRiskScoreIDs adds the "risk_scores" edge to the RiskScore entity by IDs.
func (_u *AccountUpdate) AddRiskScoreIDs(ids ...string) *AccountUpdate {
	_u.mutation.AddRiskScoreIDs(ids...)
	return _u
}

// AddRiskScores adds the "risk_scores" edges to the RiskScore entity.
func (_u *AccountUpdate) AddRiskScores(v ...*RiskScore) *AccountUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRiskScoreIDs(ids...)
}

// Mutation returns the AccountMutation object of the builder.
func (_u *AccountUpdate) Mutation() *AccountMutation {
	return _u.mutation
}

// ClearAgents clears all "agents" edges to the Agent entity.
func (_u *AccountUpdate) ClearAgents() *AccountUpdate {
	_u.mutation.ClearAgents()
	return _u
}

// RemoveAgentIDs removes the "agents" edge to Agent entities by IDs.
func (_u *AccountUpdate) RemoveAgentIDs(ids ...string) *AccountUpdate {
	_u.mutation.RemoveAgentIDs(ids...)
	return _u
}

// RemoveAgents removes "agents" edges to Agent entities.
func (_u *AccountUpdate) RemoveAgents(v ...*Agent) *AccountUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the Job entity.
func (_u *AccountUpdate) ClearJobs() *AccountUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to Job entities by IDs.
func (_u *AccountUpdate) RemoveJobIDs(ids ...string) *AccountUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to Job entities.
func (_u *AccountUpdate) RemoveJobs(v ...*Job) *AccountUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// ClearViolations clears all "violations" edges to the Violation entity.
func (_u *AccountUpdate) ClearViolations() *AccountUpdate {
	_u.mutation.ClearViolations()
	return _u
}

// RemoveViolationIDs removes the "violations" edge to Violation entities by IDs.
func (_u *AccountUpdate) RemoveViolationIDs(ids ...string) *AccountUpdate {
	_u.mutation.RemoveViolationIDs(ids...)
	return _u
}

// RemoveViolations removes "violations" edges to Violation entities.
func (_u *AccountUpdate) RemoveViolations(v ...*Violation) *AccountUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveViolationIDs(ids...)
}

// ClearRiskScores clears all "risk_scores" edges to the RiskScore entity.
func (_u *AccountUpdate) ClearRiskScores() *AccountUpdate {
	_u.mutation.ClearRiskScores()
	return _u
}

// RemoveRiskScoreIDs removes the "risk_scores" edge to RiskScore entities by IDs.
func (_u *AccountUpdate) RemoveRiskScoreIDs(ids ...string) *AccountUpdate {
	_u.mutation.RemoveRiskScoreIDs(ids...)
	return _u
}

// RemoveRiskScores removes "risk_scores" edges to RiskScore entities.
func (_u *AccountUpdate) RemoveRiskScores(v ...*RiskScore) *AccountUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRiskScoreIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AccountUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AccountUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AccountUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AccountUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AccountUpdate) check() error {
	if v, ok := _u.mutation.ValidationStatus(); ok {
		if err := account.ValidationStatusValidator(v); err != nil {
			return &ValidationError{Name: "validation_status", err: fmt.Errorf(`ent: validator failed for field "Account.validation_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.HealthStatus(); ok {
		if err := account.HealthStatusValidator(v); err != nil {
			return &ValidationError{Name: "health_status", err: fmt.Errorf(`ent: validator failed for field "Account.health_status": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Account.user"`)
	}
	return nil
}

func (_u *AccountUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(account.Table, account.Columns, sqlgraph.NewFieldSpec(account.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProfileURL(); ok {
		_spec.SetField(account.FieldProfileURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(account.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ValidationStatus(); ok {
		_spec.SetField(account.FieldValidationStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.HealthStatus(); ok {
		_spec.SetField(account.FieldHealthStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UserPaused(); ok {
		_spec.SetField(account.FieldUserPaused, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SessionValidAt(); ok {
		_spec.SetField(account.FieldSessionValidAt, field.TypeTime, value)
	}
	if _u.mutation.SessionValidAtCleared() {
		_spec.ClearField(account.FieldSessionValidAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(account.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(account.FieldMetadata, field.TypeJSON)
	}
	if _u.mutation.AgentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   account.AgentsTable,
			Columns: []string{account.AgentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgentsIDs(); len(nodes) > 0 && !_u.mutation.AgentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   account.AgentsTable,
			Columns: []string{account.AgentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   account.AgentsTable,
			Columns: []string{account.AgentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   account.JobsTable,
			Columns: []string{account.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   account.JobsTable,
			Columns: []string{account.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   account.JobsTable,
			Columns: []string{account.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ViolationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   account.ViolationsTable,
			Columns: []string{account.ViolationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(violation.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedViolationsIDs(); len(nodes) > 0 && !_u.mutation.ViolationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   account.ViolationsTable,
			Columns: []string{account.ViolationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(violation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ViolationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   account.ViolationsTable,
			Columns: []string{account.ViolationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(violation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RiskScoresCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   account.RiskScoresTable,
			Columns: []string{account.RiskScoresColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(riskscore.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRiskScoresIDs(); len(nodes) > 0 && !_u.mutation.RiskScoresCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   account.RiskScoresTable,
			Columns: []string{account.RiskScoresColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(riskscore.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RiskScoresIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   account.RiskScoresTable,
			Columns: []string{account.RiskScoresColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(riskscore.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{account.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AccountUpdateOne is the builder for updating a single Account entity.
type AccountUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AccountMutation
}

// SetProfileURL sets the "profile_url" field.
func (_u *AccountUpdateOne) SetProfileURL(v string) *AccountUpdateOne {
	_u.mutation.SetProfileURL(v)
	return _u
}

// SetNillableProfileURL sets the "profile_url" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableProfileURL(v *string) *AccountUpdateOne {
	if v != nil {
		_u.SetProfileURL(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *AccountUpdateOne) SetDisplayName(v string) *AccountUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableDisplayName(v *string) *AccountUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetValidationStatus sets the "validation_status" field.
func (_u *AccountUpdateOne) SetValidationStatus(v account.ValidationStatus) *AccountUpdateOne {
	_u.mutation.SetValidationStatus(v)
	return _u
}

// SetNillableValidationStatus sets the "validation_status" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableValidationStatus(v *account.ValidationStatus) *AccountUpdateOne {
	if v != nil {
		_u.SetValidationStatus(*v)
	}
	return _u
}

// SetHealthStatus sets the "health_status" field.
func (_u *AccountUpdateOne) SetHealthStatus(v account.HealthStatus) *AccountUpdateOne {
	_u.mutation.SetHealthStatus(v)
	return _u
}

// SetNillableHealthStatus sets the "health_status" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableHealthStatus(v *account.HealthStatus) *AccountUpdateOne {
	if v != nil {
		_u.SetHealthStatus(*v)
	}
	return _u
}

// SetUserPaused sets the "user_paused" field.
func (_u *AccountUpdateOne) SetUserPaused(v bool) *AccountUpdateOne {
	_u.mutation.SetUserPaused(v)
	return _u
}

// SetNillableUserPaused sets the "user_paused" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableUserPaused(v *bool) *AccountUpdateOne {
	if v != nil {
		_u.SetUserPaused(*v)
	}
	return _u
}

// SetSessionValidAt sets the "session_valid_at" field.
func (_u *AccountUpdateOne) SetSessionValidAt(v time.Time) *AccountUpdateOne {
	_u.mutation.SetSessionValidAt(v)
	return _u
}

// SetNillableSessionValidAt sets the "session_valid_at" field if the given value is not nil.
func (_u *AccountUpdateOne) SetNillableSessionValidAt(v *time.Time) *AccountUpdateOne {
	if v != nil {
		_u.SetSessionValidAt(*v)
	}
	return _u
}

// ClearSessionValidAt clears the value of the "session_valid_at" field.
func (_u *AccountUpdateOne) ClearSessionValidAt() *AccountUpdateOne {
	_u.mutation.ClearSessionValidAt()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *AccountUpdateOne) SetMetadata(v map[string]interface{}) *AccountUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *AccountUpdateOne) ClearMetadata() *AccountUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// AddAgentIDs adds the "agents" edge to the Agent entity by IDs.
func (_u *AccountUpdateOne) AddAgentIDs(ids ...string) *AccountUpdateOne {
	_u.mutation.AddAgentIDs(ids...)
	return _u
}

// AddAgents adds the "agents" edges to the Agent entity.
func (_u *AccountUpdateOne) AddAgents(v ...*Agent) *AccountUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the Job entity by IDs.
func (_u *AccountUpdateOne) AddJobIDs(ids ...string) *AccountUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the Job entity.
func (_u *AccountUpdateOne) AddJobs(v ...*Job) *AccountUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// AddViolationIDs adds the "violations" edge to the Violation entity by IDs.
func (_u *AccountUpdateOne) AddViolationIDs(ids ...string) *AccountUpdateOne {
	_u.mutation.AddViolationIDs(ids...)
	return _u
}

// AddViolations adds the "violations" edges to the Violation entity.
func (_u *AccountUpdateOne) AddViolations(v ...*Violation) *AccountUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddViolationIDs(ids...)
}

// AddRiskScoreIDs adds the "risk_scores" edge to the RiskScore entity by IDs.
func (_u *AccountUpdateOne) AddRiskScoreIDs(ids ...string) *AccountUpdateOne {
	_u.mutation.AddRiskScoreIDs(ids...)
	return _u
}

// AddRiskScores adds the "risk_scores" edges to the RiskScore entity.
func (_u *AccountUpdateOne) AddRiskScores(v ...*RiskScore) *AccountUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRiskScoreIDs(ids...)
}

// Mutation returns the AccountMutation object of the builder.
func (_u *AccountUpdateOne) Mutation() *AccountMutation {
	return _u.mutation
}

// ClearAgents clears all "agents" edges to the Agent entity.
func (_u *AccountUpdateOne) ClearAgents() *AccountUpdateOne {
	_u.mutation.ClearAgents()
	return _u
}

// RemoveAgentIDs removes the "agents" edge to Agent entities by IDs.
func (_u *AccountUpdateOne) RemoveAgentIDs(ids ...string) *AccountUpdateOne {
	_u.mutation.RemoveAgentIDs(ids...)
	return _u
}

// RemoveAgents removes "agents" edges to Agent entities.
func (_u *AccountUpdateOne) RemoveAgents(v ...*Agent) *AccountUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the Job entity.
func (_u *AccountUpdateOne) ClearJobs() *AccountUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to Job entities by IDs.
func (_u *AccountUpdateOne) RemoveJobIDs(ids ...string) *AccountUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to Job entities.
func (_u *AccountUpdateOne) RemoveJobs(v ...*Job) *AccountUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// ClearViolations clears all "violations" edges to the Violation entity.
func (_u *AccountUpdateOne) ClearViolations() *AccountUpdateOne {
	_u.mutation.ClearViolations()
	return _u
}

// RemoveViolationIDs removes the "violations" edge to Violation entities by IDs.
func (_u *AccountUpdateOne) RemoveViolationIDs(ids ...string) *AccountUpdateOne {
	_u.mutation.RemoveViolationIDs(ids...)
	return _u
}

// RemoveViolations removes "violations" edges to Violation entities.
func (_u *AccountUpdateOne) RemoveViolations(v ...*Violation) *AccountUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveViolationIDs(ids...)
}

// ClearRiskScores clears all "risk_scores" edges to the RiskScore entity.
func (_u *AccountUpdateOne) ClearRiskScores() *AccountUpdateOne {
	_u.mutation.ClearRiskScores()
	return _u
}

// RemoveRiskScoreIDs removes the "risk_scores" edge to RiskScore entities by IDs.
func (_u *AccountUpdateOne) RemoveRiskScoreIDs(ids ...string) *AccountUpdateOne {
	_u.mutation.RemoveRiskScoreIDs(ids...)
	return _u
}

// RemoveRiskScores removes "risk_scores" edges to RiskScore entities.
func (_u *AccountUpdateOne) RemoveRiskScores(v ...*RiskScore) *AccountUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRiskScoreIDs(ids...)
}

// Where appends a list predicates to the AccountUpdate builder.
func (_u *AccountUpdateOne) Where(ps ...predicate.Account) *AccountUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AccountUpdateOne) Select(field string, fields ...string) *AccountUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Account entity.
func (_u *AccountUpdateOne) Save(ctx context.Context) (*Account, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AccountUpdateOne) SaveX(ctx context.Context) *Account {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AccountUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AccountUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AccountUpdateOne) check() error {
	if v, ok := _u.mutation.ValidationStatus(); ok {
		if err := account.ValidationStatusValidator(v); err != nil {
			return &ValidationError{Name: "validation_status", err: fmt.Errorf(`ent: validator failed for field "Account.validation_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.HealthStatus(); ok {
		if err := account.HealthStatusValidator(v); err != nil {
			return &ValidationError{Name: "health_status", err: fmt.Errorf(`ent: validator failed for field "Account.health_status": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Account.user"`)
	}
	return nil
}

func (_u *AccountUpdateOne) sqlSave(ctx context.Context) (_node *Account, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(account.Table, account.Columns, sqlgraph.NewFieldSpec(account.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Account.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, account.FieldID)
		for _, f := range fields {
			if !account.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != account.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProfileURL(); ok {
		_spec.SetField(account.FieldProfileURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(account.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ValidationStatus(); ok {
		_spec.SetField(account.FieldValidationStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.HealthStatus(); ok {
		_spec.SetField(account.FieldHealthStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UserPaused(); ok {
		_spec.SetField(account.FieldUserPaused, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SessionValidAt(); ok {
		_spec.SetField(account.FieldSessionValidAt, field.TypeTime, value)
	}
	if _u.mutation.SessionValidAtCleared() {
		_spec.ClearField(account.FieldSessionValidAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(account.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(account.FieldMetadata, field.TypeJSON)
	}
	if _u.mutation.AgentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   account.AgentsTable,
			Columns: []string{account.AgentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgentsIDs(); len(nodes) > 0 && !_u.mutation.AgentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   account.AgentsTable,
			Columns: []string{account.AgentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   account.AgentsTable,
			Columns: []string{account.AgentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   account.JobsTable,
			Columns: []string{account.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   account.JobsTable,
			Columns: []string{account.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   account.JobsTable,
			Columns: []string{account.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ViolationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   account.ViolationsTable,
			Columns: []string{account.ViolationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(violation.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedViolationsIDs(); len(nodes) > 0 && !_u.mutation.ViolationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   account.ViolationsTable,
			Columns: []string{account.ViolationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(violation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ViolationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   account.ViolationsTable,
			Columns: []string{account.ViolationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(violation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RiskScoresCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   account.RiskScoresTable,
			Columns: []string{account.RiskScoresColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(riskscore.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRiskScoresIDs(); len(nodes) > 0 && !_u.mutation.RiskScoresCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   account.RiskScoresTable,
			Columns: []string{account.RiskScoresColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(riskscore.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RiskScoresIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   account.RiskScoresTable,
			Columns: []string{account.RiskScoresColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(riskscore.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Account{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{account.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
