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
	"github.com/leadrelay/relay/ent/job"
	"github.com/leadrelay/relay/ent/jobresult"
)

// JobCreate is the builder for creating a Job entity.
type JobCreate struct {
	config
	mutation *JobMutation
	hooks    []Hook
}

// SetAccountID sets the "account_id" field.
func (_c *JobCreate) SetAccountID(v string) *JobCreate {
	_c.mutation.SetAccountID(v)
	return _c
}

// SetCreatedByUserID sets the "created_by_user_id" field.
func (_c *JobCreate) SetCreatedByUserID(v string) *JobCreate {
	_c.mutation.SetCreatedByUserID(v)
	return _c
}

// SetAssignedAgentID sets the "assigned_agent_id" field.
func (_c *JobCreate) SetAssignedAgentID(v string) *JobCreate {
	_c.mutation.SetAssignedAgentID(v)
	return _c
}

// SetNillableAssignedAgentID sets the "assigned_agent_id" field if the given value is not nil.
func (_c *JobCreate) SetNillableAssignedAgentID(v *string) *JobCreate {
	if v != nil {
		_c.SetAssignedAgentID(*v)
	}
	return _c
}

// SetType sets the "type" field.
func (_c *JobCreate) SetType(v job.Type) *JobCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetParameters sets the "parameters" field.
func (_c *JobCreate) SetParameters(v map[string]interface{}) *JobCreate {
	_c.mutation.SetParameters(v)
	return _c
}

// SetLeadID sets the "lead_id" field.
func (_c *JobCreate) SetLeadID(v string) *JobCreate {
	_c.mutation.SetLeadID(v)
	return _c
}

// SetNillableLeadID sets the "lead_id" field if the given value is not nil.
func (_c *JobCreate) SetNillableLeadID(v *string) *JobCreate {
	if v != nil {
		_c.SetLeadID(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *JobCreate) SetState(v job.State) *JobCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *JobCreate) SetNillableState(v *job.State) *JobCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *JobCreate) SetPriority(v int) *JobCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *JobCreate) SetNillablePriority(v *int) *JobCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetEarliestExecutionTime sets the "earliest_execution_time" field.
func (_c *JobCreate) SetEarliestExecutionTime(v time.Time) *JobCreate {
	_c.mutation.SetEarliestExecutionTime(v)
	return _c
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (_c *JobCreate) SetTimeoutSeconds(v int) *JobCreate {
	_c.mutation.SetTimeoutSeconds(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *JobCreate) SetCreatedAt(v time.Time) *JobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableCreatedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetAssignedAt sets the "assigned_at" field.
func (_c *JobCreate) SetAssignedAt(v time.Time) *JobCreate {
	_c.mutation.SetAssignedAt(v)
	return _c
}

// SetNillableAssignedAt sets the "assigned_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableAssignedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetAssignedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *JobCreate) SetStartedAt(v time.Time) *JobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableStartedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *JobCreate) SetCompletedAt(v time.Time) *JobCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableCompletedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetFailureReason sets the "failure_reason" field.
func (_c *JobCreate) SetFailureReason(v string) *JobCreate {
	_c.mutation.SetFailureReason(v)
	return _c
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_c *JobCreate) SetNillableFailureReason(v *string) *JobCreate {
	if v != nil {
		_c.SetFailureReason(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *JobCreate) SetID(v string) *JobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetAccount sets the "account" edge to the Account entity.
func (_c *JobCreate) SetAccount(v *Account) *JobCreate {
	return _c.SetAccountID(v.ID)
}

// SetResultID sets the "result" edge to the JobResult entity by ID.
func (_c *JobCreate) SetResultID(id string) *JobCreate {
	_c.mutation.SetResultID(id)
	return _c
}

// SetNillableResultID sets the "result" edge to the JobResult entity by ID if the given value is not nil.
func (_c *JobCreate) SetNillableResultID(id *string) *JobCreate {
	if id != nil {
		_c = _c.SetResultID(*id)
	}
	return _c
}

// SetResult sets the "result" edge to the JobResult entity.
func (_c *JobCreate) SetResult(v *JobResult) *JobCreate {
	return _c.SetResultID(v.ID)
}

// Mutation returns the JobMutation object of the builder.
func (_c *JobCreate) Mutation() *JobMutation {
	return _c.mutation
}

// Save creates the Job in the database.
func (_c *JobCreate) Save(ctx context.Context) (*Job, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JobCreate) SaveX(ctx context.Context) *Job {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JobCreate) defaults() {
	if _, ok := _c.mutation.State(); !ok {
		v := job.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := job.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := job.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JobCreate) check() error {
	if _, ok := _c.mutation.AccountID(); !ok {
		return &ValidationError{Name: "account_id", err: errors.New(`ent: missing required field "Job.account_id"`)}
	}
	if _, ok := _c.mutation.CreatedByUserID(); !ok {
		return &ValidationError{Name: "created_by_user_id", err: errors.New(`ent: missing required field "Job.created_by_user_id"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "Job.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := job.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Job.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Parameters(); !ok {
		return &ValidationError{Name: "parameters", err: errors.New(`ent: missing required field "Job.parameters"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "Job.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := job.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Job.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Job.priority"`)}
	}
	if _, ok := _c.mutation.EarliestExecutionTime(); !ok {
		return &ValidationError{Name: "earliest_execution_time", err: errors.New(`ent: missing required field "Job.earliest_execution_time"`)}
	}
	if _, ok := _c.mutation.TimeoutSeconds(); !ok {
		return &ValidationError{Name: "timeout_seconds", err: errors.New(`ent: missing required field "Job.timeout_seconds"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Job.created_at"`)}
	}
	if len(_c.mutation.AccountIDs()) == 0 {
		return &ValidationError{Name: "account", err: errors.New(`ent: missing required edge "Job.account"`)}
	}
	return nil
}

func (_c *JobCreate) sqlSave(ctx context.Context) (*Job, error) {
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
			return nil, fmt.Errorf("unexpected Job.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *JobCreate) createSpec() (*Job, *sqlgraph.CreateSpec) {
	var (
		_node = &Job{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(job.Table, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedByUserID(); ok {
		_spec.SetField(job.FieldCreatedByUserID, field.TypeString, value)
		_node.CreatedByUserID = value
	}
	if value, ok := _c.mutation.AssignedAgentID(); ok {
		_spec.SetField(job.FieldAssignedAgentID, field.TypeString, value)
		_node.AssignedAgentID = &value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(job.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Parameters(); ok {
		_spec.SetField(job.FieldParameters, field.TypeJSON, value)
		_node.Parameters = value
	}
	if value, ok := _c.mutation.LeadID(); ok {
		_spec.SetField(job.FieldLeadID, field.TypeString, value)
		_node.LeadID = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(job.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(job.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.EarliestExecutionTime(); ok {
		_spec.SetField(job.FieldEarliestExecutionTime, field.TypeTime, value)
		_node.EarliestExecutionTime = value
	}
	if value, ok := _c.mutation.TimeoutSeconds(); ok {
		_spec.SetField(job.FieldTimeoutSeconds, field.TypeInt, value)
		_node.TimeoutSeconds = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(job.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.AssignedAt(); ok {
		_spec.SetField(job.FieldAssignedAt, field.TypeTime, value)
		_node.AssignedAt = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(job.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(job.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.FailureReason(); ok {
		_spec.SetField(job.FieldFailureReason, field.TypeString, value)
		_node.FailureReason = &value
	}
	if nodes := _c.mutation.AccountIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   job.AccountTable,
			Columns: []string{job.AccountColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(account.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AccountID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ResultIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   job.ResultTable,
			Columns: []string{job.ResultColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobresult.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// JobCreateBulk is the builder for creating many Job entities in bulk.
type JobCreateBulk struct {
	config
	err      error
	builders []*JobCreate
}

// Save creates the Job entities in the database.
func (_c *JobCreateBulk) Save(ctx context.Context) ([]*Job, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Job, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobMutation)
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
func (_c *JobCreateBulk) SaveX(ctx context.Context) []*Job {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
