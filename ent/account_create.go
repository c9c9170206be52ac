// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/leadrelay/relay/ent/account"
	"github.com/leadrelay/relay/ent/agent"
	"github.com/leadrelay/relay/ent/job"
	"github.com/leadrelay/relay/ent/riskscore"
	"github.com/leadrelay/relay/ent/user"
	"github.com/leadrelay/relay/ent/violation"
)

// AccountCreate is the builder for creating a Account entity.
type AccountCreate struct {
	config
	mutation *AccountMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *AccountCreate) SetUserID(v string) *AccountCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetProfileURL sets the "profile_url" field.
func (_c *AccountCreate) SetProfileURL(v string) *AccountCreate {
	_c.mutation.SetProfileURL(v)
	return _c
}

// SetDisplayName sets the "display_name" field.
func (_c *AccountCreate) SetDisplayName(v string) *AccountCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetValidationStatus sets the "validation_status" field.
func (_c *AccountCreate) SetValidationStatus(v account.ValidationStatus) *AccountCreate {
	_c.mutation.SetValidationStatus(v)
	return _c
}

// SetNillableValidationStatus sets the "validation_status" field if the given value is not nil.
func (_c *AccountCreate) SetNillableValidationStatus(v *account.ValidationStatus) *AccountCreate {
	if v != nil {
		_c.SetValidationStatus(*v)
	}
	return _c
}

// SetHealthStatus sets the "health_status" field.
func (_c *AccountCreate) SetHealthStatus(v account.HealthStatus) *AccountCreate {
	_c.mutation.SetHealthStatus(v)
	return _c
}

// SetNillableHealthStatus sets the "health_status" field if the given value is not nil.
func (_c *AccountCreate) SetNillableHealthStatus(v *account.HealthStatus) *AccountCreate {
	if v != nil {
		_c.SetHealthStatus(*v)
	}
	return _c
}

// SetUserPaused sets the "user_paused" field.
func (_c *AccountCreate) SetUserPaused(v bool) *AccountCreate {
	_c.mutation.SetUserPaused(v)
	return _c
}

// SetNillableUserPaused sets the "user_paused" field if the given value is not nil.
func (_c *AccountCreate) SetNillableUserPaused(v *bool) *AccountCreate {
	if v != nil {
		_c.SetUserPaused(*v)
	}
	return _c
}

// SetSessionValidAt sets the "session_valid_at" field.
func (_c *AccountCreate) SetSessionValidAt(v time.Time) *AccountCreate {
	_c.mutation.SetSessionValidAt(v)
	return _c
}

// SetNillableSessionValidAt sets the "session_valid_at" field if the given value is not nil.
func (_c *AccountCreate) SetNillableSessionValidAt(v *time.Time) *AccountCreate {
	if v != nil {
		_c.SetSessionValidAt(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *AccountCreate) SetMetadata(v map[string]interface{}) *AccountCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AccountCreate) SetCreatedAt(v time.Time) *AccountCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AccountCreate) SetNillableCreatedAt(v *time.Time) *AccountCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AccountCreate) SetID(v string) *AccountCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *AccountCreate) SetUser(v *User) *AccountCreate {
	return _c.SetUserID(v.ID)
}

// AddAgentIDs adds the "agents" edge to the Agent entity by IDs.
func (_c *AccountCreate) AddAgentIDs(ids ...string) *AccountCreate {
	_c.mutation.AddAgentIDs(ids...)
	return _c
}

// AddAgents adds the "agents" edges to the Agent entity.
func (_c *AccountCreate) AddAgents(v ...*Agent) *AccountCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAgentIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the Job entity by IDs.
func (_c *AccountCreate) AddJobIDs(ids ...string) *AccountCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the Job entity.
func (_c *AccountCreate) AddJobs(v ...*Job) *AccountCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// AddViolationIDs adds the "violations" edge to the Violation entity by IDs.
func (_c *AccountCreate) AddViolationIDs(ids ...string) *AccountCreate {
	_c.mutation.AddViolationIDs(ids...)
	return _c
}

// AddViolations adds the "violations" edges to the Violation entity.
func (_c *AccountCreate) AddViolations(v ...*Violation) *AccountCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddViolationIDs(ids...)
}

// AddRiskScoreIDs adds the "risk_scores" edge to the RiskScore entity by IDs.
func (_c *AccountCreate) AddRiskScoreIDs(ids ...string) *AccountCreate {
	_c.mutation.AddRiskScoreIDs(ids...)
	return _c
}

// AddRiskScores adds the "risk_scores" edges to the RiskScore entity.
func (_c *AccountCreate) AddRiskScores(v ...*RiskScore) *AccountCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRiskScoreIDs(ids...)
}

// Mutation returns the AccountMutation object of the builder.
func (_c *AccountCreate) Mutation() *AccountMutation {
	return _c.mutation
}

// Save creates the Account in the database.
func (_c *AccountCreate) Save(ctx context.Context) (*Account, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AccountCreate) SaveX(ctx context.Context) *Account {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AccountCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AccountCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AccountCreate) defaults() {
	if _, ok := _c.mutation.ValidationStatus(); !ok {
		v := account.DefaultValidationStatus
		_c.mutation.SetValidationStatus(v)
	}
	if _, ok := _c.mutation.HealthStatus(); !ok {
		v := account.DefaultHealthStatus
		_c.mutation.SetHealthStatus(v)
	}
	if _, ok := _c.mutation.UserPaused(); !ok {
		v := account.DefaultUserPaused
		_c.mutation.SetUserPaused(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := account.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AccountCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Account.user_id"`)}
	}
	if _, ok := _c.mutation.ProfileURL(); !ok {
		return &ValidationError{Name: "profile_url", err: errors.New(`ent: missing required field "Account.profile_url"`)}
	}
	if _, ok := _c.mutation.DisplayName(); !ok {
		return &ValidationError{Name: "display_name", err: errors.New(`ent: missing required field "Account.display_name"`)}
	}
	if _, ok := _c.mutation.ValidationStatus(); !ok {
		return &ValidationError{Name: "validation_status", err: errors.New(`ent: missing required field "Account.validation_status"`)}
	}
	if v, ok := _c.mutation.ValidationStatus(); ok {
		if err := account.ValidationStatusValidator(v); err != nil {
			return &ValidationError{Name: "validation_status", err: fmt.Errorf(`ent: validator failed for field "Account.validation_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.HealthStatus(); !ok {
		return &ValidationError{Name: "health_status", err: errors.New(`ent: missing required field "Account.health_status"`)}
	}
	if v, ok := _c.mutation.HealthStatus(); ok {
		if err := account.HealthStatusValidator(v); err != nil {
			return &ValidationError{Name: "health_status", err: fmt.Errorf(`ent: validator failed for field "Account.health_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserPaused(); !ok {
		return &ValidationError{Name: "user_paused", err: errors.New(`ent: missing required field "Account.user_paused"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Account.created_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "Account.user"`)}
	}
	return nil
}

func (_c *AccountCreate) sqlSave(ctx context.Context) (*Account, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Account.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AccountCreate) createSpec() (*Account, *sqlgraph.CreateSpec) {
	var (
		_node = &Account{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(account.Table, sqlgraph.NewFieldSpec(account.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ProfileURL(); ok {
		_spec.SetField(account.FieldProfileURL, field.TypeString, value)
		_node.ProfileURL = value
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(account.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := _c.mutation.ValidationStatus(); ok {
		_spec.SetField(account.FieldValidationStatus, field.TypeEnum, value)
		_node.ValidationStatus = value
	}
	if value, ok := _c.mutation.HealthStatus(); ok {
		_spec.SetField(account.FieldHealthStatus, field.TypeEnum, value)
		_node.HealthStatus = value
	}
	if value, ok := _c.mutation.UserPaused(); ok {
		_spec.SetField(account.FieldUserPaused, field.TypeBool, value)
		_node.UserPaused = value
	}
	if value, ok := _c.mutation.SessionValidAt(); ok {
		_spec.SetField(account.FieldSessionValidAt, field.TypeTime, value)
		_node.SessionValidAt = &value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(account.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(account.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   account.UserTable,
			Columns: []string{account.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AgentsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ViolationsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RiskScoresIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AccountCreateBulk is the builder for creating many Account entities in bulk.
type AccountCreateBulk struct {
	config
	err      error
	builders []*AccountCreate
}

// Save creates the Account entities in the database.
func (_c *AccountCreateBulk) Save(ctx context.Context) ([]*Account, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Account, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AccountMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AccountCreateBulk) SaveX(ctx context.Context) []*Account {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AccountCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AccountCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
