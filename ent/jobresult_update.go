// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/leadrelay/relay/ent/jobresult"
	"github.com/leadrelay/relay/ent/predicate"
)

// JobResultUpdate is the builder for updating JobResult entities.
type JobResultUpdate struct {
	config
	hooks    []Hook
	mutation *JobResultMutation
}

// Where appends a list predicates to the JobResultUpdate builder.
func (_u *JobResultUpdate) Where(ps ...predicate.JobResult) *JobResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the JobResultMutation object of the builder.
func (_u *JobResultUpdate) Mutation() *JobResultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobResultUpdate) check() error {
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "JobResult.job"`)
	}
	return nil
}

func (_u *JobResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobresult.Table, jobresult.Columns, sqlgraph.NewFieldSpec(jobresult.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ObservedStateCleared() {
		_spec.ClearField(jobresult.FieldObservedState, field.TypeEnum)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(jobresult.FieldFailureReason, field.TypeEnum)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{jobresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobResultUpdateOne is the builder for updating a single JobResult entity.
type JobResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobResultMutation
}

// Mutation returns the JobResultMutation object of the builder.
func (_u *JobResultUpdateOne) Mutation() *JobResultMutation {
	return _u.mutation
}

// Where appends a list predicates to the JobResultUpdate builder.
func (_u *JobResultUpdateOne) Where(ps ...predicate.JobResult) *JobResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobResultUpdateOne) Select(field string, fields ...string) *JobResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated JobResult entity.
func (_u *JobResultUpdateOne) Save(ctx context.Context) (*JobResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobResultUpdateOne) SaveX(ctx context.Context) *JobResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobResultUpdateOne) check() error {
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "JobResult.job"`)
	}
	return nil
}

func (_u *JobResultUpdateOne) sqlSave(ctx context.Context) (_node *JobResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobresult.Table, jobresult.Columns, sqlgraph.NewFieldSpec(jobresult.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "JobResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, jobresult.FieldID)
		for _, f := range fields {
			if !jobresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != jobresult.FieldID {
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
	if _u.mutation.ObservedStateCleared() {
		_spec.ClearField(jobresult.FieldObservedState, field.TypeEnum)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(jobresult.FieldFailureReason, field.TypeEnum)
	}
	_node = &JobResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{jobresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
