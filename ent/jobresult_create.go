// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/leadrelay/relay/ent/job"
	"github.com/leadrelay/relay/ent/jobresult"
)

// JobResultCreate is the builder for creating a JobResult entity.
type JobResultCreate struct {
	config
	mutation *JobResultMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *JobResultCreate) SetJobID(v string) *JobResultCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *JobResultCreate) SetAgentID(v string) *JobResultCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *JobResultCreate) SetStatus(v jobresult.Status) *JobResultCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetObservedState sets the "observed_state" field.
func (_c *JobResultCreate) SetObservedState(v jobresult.ObservedState) *JobResultCreate {
	_c.mutation.SetObservedState(v)
	return _c
}

// SetNillableObservedState sets the "observed_state" field if the given value is not nil.
func (_c *JobResultCreate) SetNillableObservedState(v *jobresult.ObservedState) *JobResultCreate {
	if v != nil {
		_c.SetObservedState(*v)
	}
	return _c
}

// SetFailureReason sets the "failure_reason" field.
func (_c *JobResultCreate) SetFailureReason(v jobresult.FailureReason) *JobResultCreate {
	_c.mutation.SetFailureReason(v)
	return _c
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_c *JobResultCreate) SetNillableFailureReason(v *jobresult.FailureReason) *JobResultCreate {
	if v != nil {
		_c.SetFailureReason(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *JobResultCreate) SetCompletedAt(v time.Time) *JobResultCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *JobResultCreate) SetNillableCompletedAt(v *time.Time) *JobResultCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *JobResultCreate) SetID(v string) *JobResultCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetJob sets the "job" edge to the Job entity.
func (_c *JobResultCreate) SetJob(v *Job) *JobResultCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the JobResultMutation object of the builder.
func (_c *JobResultCreate) Mutation() *JobResultMutation {
	return _c.mutation
}

// Save creates the JobResult in the database.
func (_c *JobResultCreate) Save(ctx context.Context) (*JobResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JobResultCreate) SaveX(ctx context.Context) *JobResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JobResultCreate) defaults() {
	if _, ok := _c.mutation.CompletedAt(); !ok {
		v := jobresult.DefaultCompletedAt()
		_c.mutation.SetCompletedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JobResultCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "JobResult.job_id"`)}
	}
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "JobResult.agent_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "JobResult.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := jobresult.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "JobResult.status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ObservedState(); ok {
		if err := jobresult.ObservedStateValidator(v); err != nil {
			return &ValidationError{Name: "observed_state", err: fmt.Errorf(`ent: validator failed for field "JobResult.observed_state": %w`, err)}
		}
	}
	if v, ok := _c.mutation.FailureReason(); ok {
		if err := jobresult.FailureReasonValidator(v); err != nil {
			return &ValidationError{Name: "failure_reason", err: fmt.Errorf(`ent: validator failed for field "JobResult.failure_reason": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CompletedAt(); !ok {
		return &ValidationError{Name: "completed_at", err: errors.New(`ent: missing required field "JobResult.completed_at"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "JobResult.job"`)}
	}
	return nil
}

func (_c *JobResultCreate) sqlSave(ctx context.Context) (*JobResult, error) {
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
			return nil, fmt.Errorf("unexpected JobResult.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *JobResultCreate) createSpec() (*JobResult, *sqlgraph.CreateSpec) {
	var (
		_node = &JobResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(jobresult.Table, sqlgraph.NewFieldSpec(jobresult.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(jobresult.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(jobresult.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ObservedState(); ok {
		_spec.SetField(jobresult.FieldObservedState, field.TypeEnum, value)
		_node.ObservedState = &value
	}
	if value, ok := _c.mutation.FailureReason(); ok {
		_spec.SetField(jobresult.FieldFailureReason, field.TypeEnum, value)
		_node.FailureReason = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(jobresult.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   jobresult.JobTable,
			Columns: []string{jobresult.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.JobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// JobResultCreateBulk is the builder for creating many JobResult entities in bulk.
type JobResultCreateBulk struct {
	config
	err      error
	builders []*JobResultCreate
}

// Save creates the JobResult entities in the database.
func (_c *JobResultCreateBulk) Save(ctx context.Context) ([]*JobResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*JobResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobResultMutation)
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
func (_c *JobResultCreateBulk) SaveX(ctx context.Context) []*JobResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
