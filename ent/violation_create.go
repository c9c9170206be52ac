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
	"github.com/leadrelay/relay/ent/ratelimitrule"
	"github.com/leadrelay/relay/ent/violation"
)

// ViolationCreate is the builder for creating a Violation entity.
type ViolationCreate struct {
	config
	mutation *ViolationMutation
	hooks    []Hook
}

// SetAccountID sets the "account_id" field.
func (_c *ViolationCreate) SetAccountID(v string) *ViolationCreate {
	_c.mutation.SetAccountID(v)
	return _c
}

// SetRuleID sets the "rule_id" field.
func (_c *ViolationCreate) SetRuleID(v string) *ViolationCreate {
	_c.mutation.SetRuleID(v)
	return _c
}

// SetJobID sets the "job_id" field.
func (_c *ViolationCreate) SetJobID(v string) *ViolationCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_c *ViolationCreate) SetNillableJobID(v *string) *ViolationCreate {
	if v != nil {
		_c.SetJobID(*v)
	}
	return _c
}

// SetViolationType sets the "violation_type" field.
func (_c *ViolationCreate) SetViolationType(v string) *ViolationCreate {
	_c.mutation.SetViolationType(v)
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *ViolationCreate) SetSeverity(v violation.Severity) *ViolationCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetDetectedAt sets the "detected_at" field.
func (_c *ViolationCreate) SetDetectedAt(v time.Time) *ViolationCreate {
	_c.mutation.SetDetectedAt(v)
	return _c
}

// SetNillableDetectedAt sets the "detected_at" field if the given value is not nil.
func (_c *ViolationCreate) SetNillableDetectedAt(v *time.Time) *ViolationCreate {
	if v != nil {
		_c.SetDetectedAt(*v)
	}
	return _c
}

// SetResolvedAt sets the "resolved_at" field.
func (_c *ViolationCreate) SetResolvedAt(v time.Time) *ViolationCreate {
	_c.mutation.SetResolvedAt(v)
	return _c
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_c *ViolationCreate) SetNillableResolvedAt(v *time.Time) *ViolationCreate {
	if v != nil {
		_c.SetResolvedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ViolationCreate) SetID(v string) *ViolationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetAccount sets the "account" edge to the Account entity.
func (_c *ViolationCreate) SetAccount(v *Account) *ViolationCreate {
	return _c.SetAccountID(v.ID)
}

// SetRule sets the "rule" edge to the RateLimitRule entity.
func (_c *ViolationCreate) SetRule(v *RateLimitRule) *ViolationCreate {
	return _c.SetRuleID(v.ID)
}

// Mutation returns the ViolationMutation object of the builder.
func (_c *ViolationCreate) Mutation() *ViolationMutation {
	return _c.mutation
}

// Save creates the Violation in the database.
func (_c *ViolationCreate) Save(ctx context.Context) (*Violation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ViolationCreate) SaveX(ctx context.Context) *Violation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ViolationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ViolationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ViolationCreate) defaults() {
	if _, ok := _c.mutation.DetectedAt(); !ok {
		v := violation.DefaultDetectedAt()
		_c.mutation.SetDetectedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ViolationCreate) check() error {
	if _, ok := _c.mutation.AccountID(); !ok {
		return &ValidationError{Name: "account_id", err: errors.New(`ent: missing required field "Violation.account_id"`)}
	}
	if _, ok := _c.mutation.RuleID(); !ok {
		return &ValidationError{Name: "rule_id", err: errors.New(`ent: missing required field "Violation.rule_id"`)}
	}
	if _, ok := _c.mutation.ViolationType(); !ok {
		return &ValidationError{Name: "violation_type", err: errors.New(`ent: missing required field "Violation.violation_type"`)}
	}
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "Violation.severity"`)}
	}
	if v, ok := _c.mutation.Severity(); ok {
		if err := violation.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Violation.severity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DetectedAt(); !ok {
		return &ValidationError{Name: "detected_at", err: errors.New(`ent: missing required field "Violation.detected_at"`)}
	}
	if len(_c.mutation.AccountIDs()) == 0 {
		return &ValidationError{Name: "account", err: errors.New(`ent: missing required edge "Violation.account"`)}
	}
	if len(_c.mutation.RuleIDs()) == 0 {
		return &ValidationError{Name: "rule", err: errors.New(`ent: missing required edge "Violation.rule"`)}
	}
	return nil
}

func (_c *ViolationCreate) sqlSave(ctx context.Context) (*Violation, error) {
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
			return nil, fmt.Errorf("unexpected Violation.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ViolationCreate) createSpec() (*Violation, *sqlgraph.CreateSpec) {
	var (
		_node = &Violation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(violation.Table, sqlgraph.NewFieldSpec(violation.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.JobID(); ok {
		_spec.SetField(violation.FieldJobID, field.TypeString, value)
		_node.JobID = &value
	}
	if value, ok := _c.mutation.ViolationType(); ok {
		_spec.SetField(violation.FieldViolationType, field.TypeString, value)
		_node.ViolationType = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(violation.FieldSeverity, field.TypeEnum, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.DetectedAt(); ok {
		_spec.SetField(violation.FieldDetectedAt, field.TypeTime, value)
		_node.DetectedAt = value
	}
	if value, ok := _c.mutation.ResolvedAt(); ok {
		_spec.SetField(violation.FieldResolvedAt, field.TypeTime, value)
		_node.ResolvedAt = &value
	}
	if nodes := _c.mutation.AccountIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   violation.AccountTable,
			Columns: []string{violation.AccountColumn},
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
	if nodes := _c.mutation.RuleIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   violation.RuleTable,
			Columns: []string{violation.RuleColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ratelimitrule.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RuleID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ViolationCreateBulk is the builder for creating many Violation entities in bulk.
type ViolationCreateBulk struct {
	config
	err      error
	builders []*ViolationCreate
}

// Save creates the Violation entities in the database.
func (_c *ViolationCreateBulk) Save(ctx context.Context) ([]*Violation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Violation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ViolationMutation)
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
func (_c *ViolationCreateBulk) SaveX(ctx context.Context) []*Violation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ViolationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ViolationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
