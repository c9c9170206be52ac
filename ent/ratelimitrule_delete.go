// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/leadrelay/relay/ent/predicate"
	"github.com/leadrelay/relay/ent/ratelimitrule"
)

// RateLimitRuleDelete is the builder for deleting a RateLimitRule entity.
type RateLimitRuleDelete struct {
	config
	hooks    []Hook
	mutation *RateLimitRuleMutation
}

// Where appends a list predicates to the RateLimitRuleDelete builder.
func (_d *RateLimitRuleDelete) Where(ps ...predicate.RateLimitRule) *RateLimitRuleDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *RateLimitRuleDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *RateLimitRuleDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *RateLimitRuleDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(ratelimitrule.Table, sqlgraph.NewFieldSpec(ratelimitrule.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// RateLimitRuleDeleteOne is the builder for deleting a single RateLimitRule entity.
type RateLimitRuleDeleteOne struct {
	_d *RateLimitRuleDelete
}

// Where appends a list predicates to the RateLimitRuleDelete builder.
func (_d *RateLimitRuleDeleteOne) Where(ps ...predicate.RateLimitRule) *RateLimitRuleDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *RateLimitRuleDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{ratelimitrule.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *RateLimitRuleDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
