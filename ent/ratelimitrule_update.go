// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/leadrelay/relay/ent/predicate"
	"github.com/leadrelay/relay/ent/ratelimitrule"
	"github.com/leadrelay/relay/ent/violation"
)

// RateLimitRuleUpdate is the builder for updating RateLimitRule entities.
type RateLimitRuleUpdate struct {
	config
	hooks    []Hook
	mutation *RateLimitRuleMutation
}

// Where appends a list predicates to the RateLimitRuleUpdate builder.
func (_u *RateLimitRuleUpdate) Where(ps ...predicate.RateLimitRule) *RateLimitRuleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetActionType sets the "action_type" field.
func (_u *RateLimitRuleUpdate) SetActionType(v string) *RateLimitRuleUpdate {
	_u.mutation.SetActionType(v)
	return _u
}

// SetNillableActionType sets the "action_type" field if the given value is not nil.
func (_u *RateLimitRuleUpdate) SetNillableActionType(v *string) *RateLimitRuleUpdate {
	if v != nil {
		_u.SetActionType(*v)
	}
	return _u
}

// SetMaxCount sets the "max_count" field.
func (_u *RateLimitRuleUpdate) SetMaxCount(v int) *RateLimitRuleUpdate {
	_u.mutation.ResetMaxCount()
	_u.mutation.SetMaxCount(v)
	return _u
}

// SetNillableMaxCount sets the "max_count" field if the given value is not nil.
func (_u *RateLimitRuleUpdate) SetNillableMaxCount(v *int) *RateLimitRuleUpdate {
	if v != nil {
		_u.SetMaxCount(*v)
	}
	return _u
}

// AddMaxCount adds value to the "max_count" field.
func (_u *RateLimitRuleUpdate) AddMaxCount(v int) *RateLimitRuleUpdate {
	_u.mutation.AddMaxCount(v)
	return _u
}

// SetWindowSeconds sets the "window_seconds" field.
func (_u *RateLimitRuleUpdate) SetWindowSeconds(v int) *RateLimitRuleUpdate {
	_u.mutation.ResetWindowSeconds()
	_u.mutation.SetWindowSeconds(v)
	return _u
}

// SetNillableWindowSeconds sets the "window_seconds" field if the given value is not nil.
func (_u *RateLimitRuleUpdate) SetNillableWindowSeconds(v *int) *RateLimitRuleUpdate {
	if v != nil {
		_u.SetWindowSeconds(*v)
	}
	return _u
}

// AddWindowSeconds adds value to the "window_seconds" field.
func (_u *RateLimitRuleUpdate) AddWindowSeconds(v int) *RateLimitRuleUpdate {
	_u.mutation.AddWindowSeconds(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *RateLimitRuleUpdate) SetIsActive(v bool) *RateLimitRuleUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *RateLimitRuleUpdate) SetNillableIsActive(v *bool) *RateLimitRuleUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// AddViolationIDs adds the "violations" edge to the Violation entity by IDs.
func (_u *RateLimitRuleUpdate) AddViolationIDs(ids ...string) *RateLimitRuleUpdate {
	_u.mutation.AddViolationIDs(ids...)
	return _u
}

// AddViolations adds the "violations" edges to the Violation entity.
func (_u *RateLimitRuleUpdate) AddViolations(v ...*Violation) *RateLimitRuleUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddViolationIDs(ids...)
}

// Mutation returns the RateLimitRuleMutation object of the builder.
func (_u *RateLimitRuleUpdate) Mutation() *RateLimitRuleMutation {
	return _u.mutation
}

// ClearViolations clears all "violations" edges to the Violation entity.
func (_u *RateLimitRuleUpdate) ClearViolations() *RateLimitRuleUpdate {
	_u.mutation.ClearViolations()
	return _u
}

// RemoveViolationIDs removes the "violations" edge to Violation entities by IDs.
func (_u *RateLimitRuleUpdate) RemoveViolationIDs(ids ...string) *RateLimitRuleUpdate {
	_u.mutation.RemoveViolationIDs(ids...)
	return _u
}

// RemoveViolations removes "violations" edges to Violation entities.
func (_u *RateLimitRuleUpdate) RemoveViolations(v ...*Violation) *RateLimitRuleUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveViolationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RateLimitRuleUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RateLimitRuleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RateLimitRuleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RateLimitRuleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *RateLimitRuleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(ratelimitrule.Table, ratelimitrule.Columns, sqlgraph.NewFieldSpec(ratelimitrule.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ActionType(); ok {
		_spec.SetField(ratelimitrule.FieldActionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.MaxCount(); ok {
		_spec.SetField(ratelimitrule.FieldMaxCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxCount(); ok {
		_spec.AddField(ratelimitrule.FieldMaxCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WindowSeconds(); ok {
		_spec.SetField(ratelimitrule.FieldWindowSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWindowSeconds(); ok {
		_spec.AddField(ratelimitrule.FieldWindowSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(ratelimitrule.FieldIsActive, field.TypeBool, value)
	}
	if _u.mutation.ViolationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   ratelimitrule.ViolationsTable,
			Columns: []string{ratelimitrule.ViolationsColumn},
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
			Table:   ratelimitrule.ViolationsTable,
			Columns: []string{ratelimitrule.ViolationsColumn},
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
			Table:   ratelimitrule.ViolationsTable,
			Columns: []string{ratelimitrule.ViolationsColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ratelimitrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RateLimitRuleUpdateOne is the builder for updating a single RateLimitRule entity.
type RateLimitRuleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RateLimitRuleMutation
}

// SetActionType sets the "action_type" field.
func (_u *RateLimitRuleUpdateOne) SetActionType(v string) *RateLimitRuleUpdateOne {
	_u.mutation.SetActionType(v)
	return _u
}

// SetNillableActionType sets the "action_type" field if the given value is not nil.
func (_u *RateLimitRuleUpdateOne) SetNillableActionType(v *string) *RateLimitRuleUpdateOne {
	if v != nil {
		_u.SetActionType(*v)
	}
	return _u
}

// SetMaxCount sets the "max_count" field.
func (_u *RateLimitRuleUpdateOne) SetMaxCount(v int) *RateLimitRuleUpdateOne {
	_u.mutation.ResetMaxCount()
	_u.mutation.SetMaxCount(v)
	return _u
}

// SetNillableMaxCount sets the "max_count" field if the given value is not nil.
func (_u *RateLimitRuleUpdateOne) SetNillableMaxCount(v *int) *RateLimitRuleUpdateOne {
	if v != nil {
		_u.SetMaxCount(*v)
	}
	return _u
}

// AddMaxCount adds value to the "max_count" field.
func (_u *RateLimitRuleUpdateOne) AddMaxCount(v int) *RateLimitRuleUpdateOne {
	_u.mutation.AddMaxCount(v)
	return _u
}

// SetWindowSeconds sets the "window_seconds" field.
func (_u *RateLimitRuleUpdateOne) SetWindowSeconds(v int) *RateLimitRuleUpdateOne {
	_u.mutation.ResetWindowSeconds()
	_u.mutation.SetWindowSeconds(v)
	return _u
}

// SetNillableWindowSeconds sets the "window_seconds" field if the given value is not nil.
func (_u *RateLimitRuleUpdateOne) SetNillableWindowSeconds(v *int) *RateLimitRuleUpdateOne {
	if v != nil {
		_u.SetWindowSeconds(*v)
	}
	return _u
}

// AddWindowSeconds adds value to the "window_seconds" field.
func (_u *RateLimitRuleUpdateOne) AddWindowSeconds(v int) *RateLimitRuleUpdateOne {
	_u.mutation.AddWindowSeconds(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *RateLimitRuleUpdateOne) SetIsActive(v bool) *RateLimitRuleUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *RateLimitRuleUpdateOne) SetNillableIsActive(v *bool) *RateLimitRuleUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// AddViolationIDs adds the "violations" edge to the Violation entity by IDs.
func (_u *RateLimitRuleUpdateOne) AddViolationIDs(ids ...string) *RateLimitRuleUpdateOne {
	_u.mutation.AddViolationIDs(ids...)
	return _u
}

// AddViolations adds the "violations" edges to the Violation entity.
func (_u *RateLimitRuleUpdateOne) AddViolations(v ...*Violation) *RateLimitRuleUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddViolationIDs(ids...)
}

// Mutation returns the RateLimitRuleMutation object of the builder.
func (_u *RateLimitRuleUpdateOne) Mutation() *RateLimitRuleMutation {
	return _u.mutation
}

// ClearViolations clears all "violations" edges to the Violation entity.
func (_u *RateLimitRuleUpdateOne) ClearViolations() *RateLimitRuleUpdateOne {
	_u.mutation.ClearViolations()
	return _u
}

// RemoveViolationIDs removes the "violations" edge to Violation entities by IDs.
func (_u *RateLimitRuleUpdateOne) RemoveViolationIDs(ids ...string) *RateLimitRuleUpdateOne {
	_u.mutation.RemoveViolationIDs(ids...)
	return _u
}

// RemoveViolations removes "violations" edges to Violation entities.
func (_u *RateLimitRuleUpdateOne) RemoveViolations(v ...*Violation) *RateLimitRuleUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveViolationIDs(ids...)
}

// Where appends a list predicates to the RateLimitRuleUpdate builder.
func (_u *RateLimitRuleUpdateOne) Where(ps ...predicate.RateLimitRule) *RateLimitRuleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RateLimitRuleUpdateOne) Select(field string, fields ...string) *RateLimitRuleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RateLimitRule entity.
func (_u *RateLimitRuleUpdateOne) Save(ctx context.Context) (*RateLimitRule, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RateLimitRuleUpdateOne) SaveX(ctx context.Context) *RateLimitRule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RateLimitRuleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RateLimitRuleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *RateLimitRuleUpdateOne) sqlSave(ctx context.Context) (_node *RateLimitRule, err error) {
	_spec := sqlgraph.NewUpdateSpec(ratelimitrule.Table, ratelimitrule.Columns, sqlgraph.NewFieldSpec(ratelimitrule.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RateLimitRule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ratelimitrule.FieldID)
		for _, f := range fields {
			if !ratelimitrule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ratelimitrule.FieldID {
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
	if value, ok := _u.mutation.ActionType(); ok {
		_spec.SetField(ratelimitrule.FieldActionType, field.TypeString, value)
	}
	if value, ok := _u.mutation.MaxCount(); ok {
		_spec.SetField(ratelimitrule.FieldMaxCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxCount(); ok {
		_spec.AddField(ratelimitrule.FieldMaxCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WindowSeconds(); ok {
		_spec.SetField(ratelimitrule.FieldWindowSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWindowSeconds(); ok {
		_spec.AddField(ratelimitrule.FieldWindowSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(ratelimitrule.FieldIsActive, field.TypeBool, value)
	}
	if _u.mutation.ViolationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   ratelimitrule.ViolationsTable,
			Columns: []string{ratelimitrule.ViolationsColumn},
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
			Table:   ratelimitrule.ViolationsTable,
			Columns: []string{ratelimitrule.ViolationsColumn},
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
			Table:   ratelimitrule.ViolationsTable,
			Columns: []string{ratelimitrule.ViolationsColumn},
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
	_node = &RateLimitRule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ratelimitrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
