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
	"github.com/leadrelay/relay/ent/riskscore"
)

// RiskScoreCreate is the builder for creating a RiskScore entity.
type RiskScoreCreate struct {
	config
	mutation *RiskScoreMutation
	hooks    []Hook
}

// SetAccountID sets the "account_id" field.
func (_c *RiskScoreCreate) SetAccountID(v string) *RiskScoreCreate {
	_c.mutation.SetAccountID(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *RiskScoreCreate) SetScore(v float64) *RiskScoreCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *RiskScoreCreate) SetLevel(v riskscore.Level) *RiskScoreCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetFactors sets the "factors" field.
func (_c *RiskScoreCreate) SetFactors(v map[string]interface{}) *RiskScoreCreate {
	_c.mutation.SetFactors(v)
	return _c
}

// SetCalculatedAt sets the "calculated_at" field.
func (_c *RiskScoreCreate) SetCalculatedAt(v time.Time) *RiskScoreCreate {
	_c.mutation.SetCalculatedAt(v)
	return _c
}

// SetNillableCalculatedAt sets the "calculated_at" field if the given value is not nil.
func (_c *RiskScoreCreate) SetNillableCalculatedAt(v *time.Time) *RiskScoreCreate {
	if v != nil {
		_c.SetCalculatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RiskScoreCreate) SetID(v string) *RiskScoreCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetAccount sets the "account" edge to the Account entity.
func (_c *RiskScoreCreate) SetAccount(v *Account) *RiskScoreCreate {
	return _c.SetAccountID(v.ID)
}

// Mutation returns the RiskScoreMutation object of the builder.
func (_c *RiskScoreCreate) Mutation() *RiskScoreMutation {
	return _c.mutation
}

// Save creates the RiskScore in the database.
func (_c *RiskScoreCreate) Save(ctx context.Context) (*RiskScore, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RiskScoreCreate) SaveX(ctx context.Context) *RiskScore {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RiskScoreCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RiskScoreCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RiskScoreCreate) defaults() {
	if _, ok := _c.mutation.CalculatedAt(); !ok {
		v := riskscore.DefaultCalculatedAt()
		_c.mutation.SetCalculatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RiskScoreCreate) check() error {
	if _, ok := _c.mutation.AccountID(); !ok {
		return &ValidationError{Name: "account_id", err: errors.New(`ent: missing required field "RiskScore.account_id"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "RiskScore.score"`)}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "RiskScore.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := riskscore.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "RiskScore.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CalculatedAt(); !ok {
		return &ValidationError{Name: "calculated_at", err: errors.New(`ent: missing required field "RiskScore.calculated_at"`)}
	}
	if len(_c.mutation.AccountIDs()) == 0 {
		return &ValidationError{Name: "account", err: errors.New(`ent: missing required edge "RiskScore.account"`)}
	}
	return nil
}

func (_c *RiskScoreCreate) sqlSave(ctx context.Context) (*RiskScore, error) {
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
			return nil, fmt.Errorf("unexpected RiskScore.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RiskScoreCreate) createSpec() (*RiskScore, *sqlgraph.CreateSpec) {
	var (
		_node = &RiskScore{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(riskscore.Table, sqlgraph.NewFieldSpec(riskscore.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(riskscore.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(riskscore.FieldLevel, field.TypeEnum, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Factors(); ok {
		_spec.SetField(riskscore.FieldFactors, field.TypeJSON, value)
		_node.Factors = value
	}
	if value, ok := _c.mutation.CalculatedAt(); ok {
		_spec.SetField(riskscore.FieldCalculatedAt, field.TypeTime, value)
		_node.CalculatedAt = value
	}
	if nodes := _c.mutation.AccountIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   riskscore.AccountTable,
			Columns: []string{riskscore.AccountColumn},
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
	return _node, _spec
}

// RiskScoreCreateBulk is the builder for creating many RiskScore entities in bulk.
type RiskScoreCreateBulk struct {
	config
	err      error
	builders []*RiskScoreCreate
}

// Save creates the RiskScore entities in the database.
func (_c *RiskScoreCreateBulk) Save(ctx context.Context) ([]*RiskScore, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RiskScore, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RiskScoreMutation)
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
func (_c *RiskScoreCreateBulk) SaveX(ctx context.Context) []*RiskScore {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RiskScoreCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RiskScoreCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
