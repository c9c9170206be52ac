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
	"github.com/leadrelay/relay/ent/predicate"
	"github.com/leadrelay/relay/ent/violation"
)

// ViolationUpdate is the builder for updating Violation entities.
type ViolationUpdate struct {
	config
	hooks    []Hook
	mutation *ViolationMutation
}

// Where appends a list predicates to the ViolationUpdate builder.
func (_u *ViolationUpdate) Where(ps ...predicate.Violation) *ViolationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetViolationType sets the "violation_type" field.
func (_u *ViolationUpdate) SetViolationType(v string) *ViolationUpdate {
	_u.mutation.SetViolationType(v)
	return _u
}

// SetNillableViolationType sets the "violation_type" field if the given value is not nil.
func (_u *ViolationUpdate) SetNillableViolationType(v *string) *ViolationUpdate {
	if v != nil {
		_u.SetViolationType(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *ViolationUpdate) SetSeverity(v violation.Severity) *ViolationUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *ViolationUpdate) SetNillableSeverity(v *violation.Severity) *ViolationUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *ViolationUpdate) SetResolvedAt(v time.Time) *ViolationUpdate {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *ViolationUpdate) SetNillableResolvedAt(v *time.Time) *ViolationUpdate {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *ViolationUpdate) ClearResolvedAt() *ViolationUpdate {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the ViolationMutation object of the builder.
func (_u *ViolationUpdate) Mutation() *ViolationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ViolationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ViolationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ViolationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ViolationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ViolationUpdate) check() error {
	if v, ok := _u.mutation.Severity(); ok {
		if err := violation.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Violation.severity": %w`, err)}
		}
	}
	if _u.mutation.AccountCleared() && len(_u.mutation.AccountIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Violation.account"`)
	}
	if _u.mutation.RuleCleared() && len(_u.mutation.RuleIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Violation.rule"`)
	}
	return nil
}

func (_u *ViolationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(violation.Table, violation.Columns, sqlgraph.NewFieldSpec(violation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.JobIDCleared() {
		_spec.ClearField(violation.FieldJobID, field.TypeString)
	}
	if value, ok := _u.mutation.ViolationType(); ok {
		_spec.SetField(violation.FieldViolationType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(violation.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(violation.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(violation.FieldResolvedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{violation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ViolationUpdateOne is the builder for updating a single Violation entity.
type ViolationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ViolationMutation
}

// SetViolationType sets the "violation_type" field.
func (_u *ViolationUpdateOne) SetViolationType(v string) *ViolationUpdateOne {
	_u.mutation.SetViolationType(v)
	return _u
}

// SetNillableViolationType sets the "violation_type" field if the given value is not nil.
func (_u *ViolationUpdateOne) SetNillableViolationType(v *string) *ViolationUpdateOne {
	if v != nil {
		_u.SetViolationType(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *ViolationUpdateOne) SetSeverity(v violation.Severity) *ViolationUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *ViolationUpdateOne) SetNillableSeverity(v *violation.Severity) *ViolationUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetResolvedAt sets the "resolved_at" field.
func (_u *ViolationUpdateOne) SetResolvedAt(v time.Time) *ViolationUpdateOne {
	_u.mutation.SetResolvedAt(v)
	return _u
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_u *ViolationUpdateOne) SetNillableResolvedAt(v *time.Time) *ViolationUpdateOne {
	if v != nil {
		_u.SetResolvedAt(*v)
	}
	return _u
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (_u *ViolationUpdateOne) ClearResolvedAt() *ViolationUpdateOne {
	_u.mutation.ClearResolvedAt()
	return _u
}

// Mutation returns the ViolationMutation object of the builder.
func (_u *ViolationUpdateOne) Mutation() *ViolationMutation {
	return _u.mutation
}

// Where appends a list predicates to the ViolationUpdate builder.
func (_u *ViolationUpdateOne) Where(ps ...predicate.Violation) *ViolationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ViolationUpdateOne) Select(field string, fields ...string) *ViolationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Violation entity.
func (_u *ViolationUpdateOne) Save(ctx context.Context) (*Violation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ViolationUpdateOne) SaveX(ctx context.Context) *Violation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ViolationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ViolationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ViolationUpdateOne) check() error {
	if v, ok := _u.mutation.Severity(); ok {
		if err := violation.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Violation.severity": %w`, err)}
		}
	}
	if _u.mutation.AccountCleared() && len(_u.mutation.AccountIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Violation.account"`)
	}
	if _u.mutation.RuleCleared() && len(_u.mutation.RuleIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Violation.rule"`)
	}
	return nil
}

func (_u *ViolationUpdateOne) sqlSave(ctx context.Context) (_node *Violation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(violation.Table, violation.Columns, sqlgraph.NewFieldSpec(violation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Violation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, violation.FieldID)
		for _, f := range fields {
			if !violation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != violation.FieldID {
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
	if _u.mutation.JobIDCleared() {
		_spec.ClearField(violation.FieldJobID, field.TypeString)
	}
	if value, ok := _u.mutation.ViolationType(); ok {
		_spec.SetField(violation.FieldViolationType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(violation.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ResolvedAt(); ok {
		_spec.SetField(violation.FieldResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.ResolvedAtCleared() {
		_spec.ClearField(violation.FieldResolvedAt, field.TypeTime)
	}
	_node = &Violation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{violation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
