// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/leadrelay/relay/ent/ratelimitrule"
	"github.com/leadrelay/relay/ent/violation"
)

// RateLimitRuleCreate is the builder for creating a RateLimitRule entity.
type RateLimitRuleCreate struct {
	config
	mutation *RateLimitRuleMutation
	hooks    []Hook
}

// SetActionType sets the "action_type" field.
func (_c *RateLimitRuleCreate) SetActionType(v string) *RateLimitRuleCreate {
	_c.mutation.SetActionType(v)
	return _c
}

// SetMaxCount sets the "max_count" field.
func (_c *RateLimitRuleCreate) SetMaxCount(v int) *RateLimitRuleCreate {
	_c.mutation.SetMaxCount(v)
	return _c
}

// SetWindowSeconds sets the "window_seconds" field.
func (_c *RateLimitRuleCreate) SetWindowSeconds(v int) *RateLimitRuleCreate {
	_c.mutation.SetWindowSeconds(v)
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *RateLimitRuleCreate) SetIsActive(v bool) *RateLimitRuleCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *RateLimitRuleCreate) SetNillableIsActive(v *bool) *RateLimitRuleCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RateLimitRuleCreate) SetCreatedAt(v time.Time) *RateLimitRuleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RateLimitRuleCreate) SetNillableCreatedAt(v *time.Time) *RateLimitRuleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RateLimitRuleCreate) SetID(v string) *RateLimitRuleCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddViolationIDs adds the "violations" edge to the Violation entity by IDs.
func (_c *RateLimitRuleCreate) AddViolationIDs(ids ...string) *RateLimitRuleCreate {
	_c.mutation.AddViolationIDs(ids...)
	return _c
}

// AddViolations adds the "violations" edges to the Violation entity.
func (_c *RateLimitRuleCreate) AddViolations(v ...*Violation) *RateLimitRuleCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddViolationIDs(ids...)
}

// Mutation returns the RateLimitRuleMutation object of the builder.
func (_c *RateLimitRuleCreate) Mutation() *RateLimitRuleMutation {
	return _c.mutation
}

// Save creates the RateLimitRule in the database.
func (_c *RateLimitRuleCreate) Save(ctx context.Context) (*RateLimitRule, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RateLimitRuleCreate) SaveX(ctx context.Context) *RateLimitRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RateLimitRuleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RateLimitRuleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RateLimitRuleCreate) defaults() {
	if _, ok := _c.mutation.IsActive(); !ok {
		v := ratelimitrule.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := ratelimitrule.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RateLimitRuleCreate) check() error {
	if _, ok := _c.mutation.ActionType(); !ok {
		return &ValidationError{Name: "action_type", err: errors.New(`ent: missing required field "RateLimitRule.action_type"`)}
	}
	if _, ok := _c.mutation.MaxCount(); !ok {
		return &ValidationError{Name: "max_count", err: errors.New(`ent: missing required field "RateLimitRule.max_count"`)}
	}
	if _, ok := _c.mutation.WindowSeconds(); !ok {
		return &ValidationError{Name: "window_seconds", err: errors.New(`ent: missing required field "RateLimitRule.window_seconds"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "RateLimitRule.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RateLimitRule.created_at"`)}
	}
	return nil
}

func (_c *RateLimitRuleCreate) sqlSave(ctx context.Context) (*RateLimitRule, error) {
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
			return nil, fmt.Errorf("unexpected RateLimitRule.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RateLimitRuleCreate) createSpec() (*RateLimitRule, *sqlgraph.CreateSpec) {
	var (
		_node = &RateLimitRule{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ratelimitrule.Table, sqlgraph.NewFieldSpec(ratelimitrule.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ActionType(); ok {
		_spec.SetField(ratelimitrule.FieldActionType, field.TypeString, value)
		_node.ActionType = value
	}
	if value, ok := _c.mutation.MaxCount(); ok {
		_spec.SetField(ratelimitrule.FieldMaxCount, field.TypeInt, value)
		_node.MaxCount = value
	}
	if value, ok := _c.mutation.WindowSeconds(); ok {
		_spec.SetField(ratelimitrule.FieldWindowSeconds, field.TypeInt, value)
		_node.WindowSeconds = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(ratelimitrule.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(ratelimitrule.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ViolationsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RateLimitRuleCreateBulk is the builder for creating many RateLimitRule entities in bulk.
type RateLimitRuleCreateBulk struct {
	config
	err      error
	builders []*RateLimitRuleCreate
}

// Save creates the RateLimitRule entities in the database.
func (_c *RateLimitRuleCreateBulk) Save(ctx context.Context) ([]*RateLimitRule, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RateLimitRule, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RateLimitRuleMutation)
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
func (_c *RateLimitRuleCreateBulk) SaveX(ctx context.Context) []*RateLimitRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RateLimitRuleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RateLimitRuleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
