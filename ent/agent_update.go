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
	"github.com/leadrelay/relay/ent/agent"
	"github.com/leadrelay/relay/ent/agenttoken"
	"github.com/leadrelay/relay/ent/predicate"
)

// AgentUpdate is the builder for updating Agent entities.
type AgentUpdate struct {
	config
	hooks    []Hook
	mutation *AgentMutation
}

// Where appends a list predicates to the AgentUpdate builder.
func (_u *AgentUpdate) Where(ps ...predicate.Agent) *AgentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetState sets the "state" field.
func (_u *AgentUpdate) SetState(v agent.State) *AgentUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableState(v *agent.State) *AgentUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetAgentVersion sets the "agent_version" field.
func (_u *AgentUpdate) SetAgentVersion(v string) *AgentUpdate {
	_u.mutation.SetAgentVersion(v)
	return _u
}

// SetNillableAgentVersion sets the "agent_version" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableAgentVersion(v *string) *AgentUpdate {
	if v != nil {
		_u.SetAgentVersion(*v)
	}
	return _u
}

// ClearAgentVersion clears the value of the "agent_version" field.
func (_u *AgentUpdate) ClearAgentVersion() *AgentUpdate {
	_u.mutation.ClearAgentVersion()
	return _u
}

// SetPlatform sets the "platform" field.
func (_u *AgentUpdate) SetPlatform(v string) *AgentUpdate {
	_u.mutation.SetPlatform(v)
	return _u
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_u *AgentUpdate) SetNillablePlatform(v *string) *AgentUpdate {
	if v != nil {
		_u.SetPlatform(*v)
	}
	return _u
}

// ClearPlatform clears the value of the "platform" field.
func (_u *AgentUpdate) ClearPlatform() *AgentUpdate {
	_u.mutation.ClearPlatform()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *AgentUpdate) SetLastHeartbeatAt(v time.Time) *AgentUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableLastHeartbeatAt(v *time.Time) *AgentUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *AgentUpdate) ClearLastHeartbeatAt() *AgentUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetRegisteredAt sets the "registered_at" field.
func (_u *AgentUpdate) SetRegisteredAt(v time.Time) *AgentUpdate {
	_u.mutation.SetRegisteredAt(v)
	return _u
}

// SetNillableRegisteredAt sets the "registered_at" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableRegisteredAt(v *time.Time) *AgentUpdate {
	if v != nil {
		_u.SetRegisteredAt(*v)
	}
	return _u
}

// SetTerminatedAt sets the "terminated_at" field.
func (_u *AgentUpdate) SetTerminatedAt(v time.Time) *AgentUpdate {
	_u.mutation.SetTerminatedAt(v)
	return _u
}

// SetNillableTerminatedAt sets the "terminated_at" field if the given value is not nil.
func (_u *AgentUpdate) SetNillableTerminatedAt(v *time.Time) *AgentUpdate {
	if v != nil {
		_u.SetTerminatedAt(*v)
	}
	return _u
}

// ClearTerminatedAt clears the value of the "terminated_at" field.
func (_u *AgentUpdate) ClearTerminatedAt() *AgentUpdate {
	_u.mutation.ClearTerminatedAt()
	return _u
}

// AddTokenIDs adds the "tokens" edge to the AgentToken entity by IDs.
func (_u *AgentUpdate) AddTokenIDs(ids ...string) *AgentUpdate {
	_u.mutation.AddTokenIDs(ids...)
	return _u
}

// AddTokens adds the "tokens" edges to the AgentToken entity.
func (_u *AgentUpdate) AddTokens(v ...*AgentToken) *AgentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTokenIDs(ids...)
}

// Mutation returns the AgentMutation object of the builder.
func (_u *AgentUpdate) Mutation() *AgentMutation {
	return _u.mutation
}

// ClearTokens clears all "tokens" edges to the AgentToken entity.
func (_u *AgentUpdate) ClearTokens() *AgentUpdate {
	_u.mutation.ClearTokens()
	return _u
}

// RemoveTokenIDs removes the "tokens" edge to AgentToken entities by IDs.
func (_u *AgentUpdate) RemoveTokenIDs(ids ...string) *AgentUpdate {
	_u.mutation.RemoveTokenIDs(ids...)
	return _u
}

// RemoveTokens removes "tokens" edges to AgentToken entities.
func (_u *AgentUpdate) RemoveTokens(v ...*AgentToken) *AgentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTokenIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentUpdate) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := agent.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Agent.state": %w`, err)}
		}
	}
	if _u.mutation.AccountCleared() && len(_u.mutation.AccountIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Agent.account"`)
	}
	return nil
}

func (_u *AgentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(agent.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AgentVersion(); ok {
		_spec.SetField(agent.FieldAgentVersion, field.TypeString, value)
	}
	if _u.mutation.AgentVersionCleared() {
		_spec.ClearField(agent.FieldAgentVersion, field.TypeString)
	}
	if value, ok := _u.mutation.Platform(); ok {
		_spec.SetField(agent.FieldPlatform, field.TypeString, value)
	}
	if _u.mutation.PlatformCleared() {
		_spec.ClearField(agent.FieldPlatform, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(agent.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(agent.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RegisteredAt(); ok {
		_spec.SetField(agent.FieldRegisteredAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TerminatedAt(); ok {
		_spec.SetField(agent.FieldTerminatedAt, field.TypeTime, value)
	}
	if _u.mutation.TerminatedAtCleared() {
		_spec.ClearField(agent.FieldTerminatedAt, field.TypeTime)
	}
	if _u.mutation.TokensCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.TokensTable,
			Columns: []string{agent.TokensColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agenttoken.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTokensIDs(); len(nodes) > 0 && !_u.mutation.TokensCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.TokensTable,
			Columns: []string{agent.TokensColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agenttoken.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TokensIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.TokensTable,
			Columns: []string{agent.TokensColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agenttoken.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentUpdateOne is the builder for updating a single Agent entity.
type AgentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentMutation
}

// SetState sets the "state" field.
func (_u *AgentUpdateOne) SetState(v agent.State) *AgentUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableState(v *agent.State) *AgentUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetAgentVersion sets the "agent_version" field.
func (_u *AgentUpdateOne) SetAgentVersion(v string) *AgentUpdateOne {
	_u.mutation.SetAgentVersion(v)
	return _u
}

// SetNillableAgentVersion sets the "agent_version" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableAgentVersion(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetAgentVersion(*v)
	}
	return _u
}

// ClearAgentVersion clears the value of the "agent_version" field.
func (_u *AgentUpdateOne) ClearAgentVersion() *AgentUpdateOne {
	_u.mutation.ClearAgentVersion()
	return _u
}

// SetPlatform sets the "platform" field.
func (_u *AgentUpdateOne) SetPlatform(v string) *AgentUpdateOne {
	_u.mutation.SetPlatform(v)
	return _u
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillablePlatform(v *string) *AgentUpdateOne {
	if v != nil {
		_u.SetPlatform(*v)
	}
	return _u
}

// ClearPlatform clears the value of the "platform" field.
func (_u *AgentUpdateOne) ClearPlatform() *AgentUpdateOne {
	_u.mutation.ClearPlatform()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *AgentUpdateOne) SetLastHeartbeatAt(v time.Time) *AgentUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *AgentUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *AgentUpdateOne) ClearLastHeartbeatAt() *AgentUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetRegisteredAt sets the "registered_at" field.
func (_u *AgentUpdateOne) SetRegisteredAt(v time.Time) *AgentUpdateOne {
	_u.mutation.SetRegisteredAt(v)
	return _u
}

// SetNillableRegisteredAt sets the "registered_at" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableRegisteredAt(v *time.Time) *AgentUpdateOne {
	if v != nil {
		_u.SetRegisteredAt(*v)
	}
	return _u
}

// SetTerminatedAt sets the "terminated_at" field.
func (_u *AgentUpdateOne) SetTerminatedAt(v time.Time) *AgentUpdateOne {
	_u.mutation.SetTerminatedAt(v)
	return _u
}

// SetNillableTerminatedAt sets the "terminated_at" field if the given value is not nil.
func (_u *AgentUpdateOne) SetNillableTerminatedAt(v *time.Time) *AgentUpdateOne {
	if v != nil {
		_u.SetTerminatedAt(*v)
	}
	return _u
}

// ClearTerminatedAt clears the value of the "terminated_at" field.
func (_u *AgentUpdateOne) ClearTerminatedAt() *AgentUpdateOne {
	_u.mutation.ClearTerminatedAt()
	return _u
}

// AddTokenIDs adds the "tokens" edge to the AgentToken entity by IDs.
func (_u *AgentUpdateOne) AddTokenIDs(ids ...string) *AgentUpdateOne {
	_u.mutation.AddTokenIDs(ids...)
	return _u
}

// AddTokens adds the "tokens" edges to the AgentToken entity.
func (_u *AgentUpdateOne) AddTokens(v ...*AgentToken) *AgentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTokenIDs(ids...)
}

// Mutation returns the AgentMutation object of the builder.
func (_u *AgentUpdateOne) Mutation() *AgentMutation {
	return _u.mutation
}

// ClearTokens clears all "tokens" edges to the AgentToken entity.
func (_u *AgentUpdateOne) ClearTokens() *AgentUpdateOne {
	_u.mutation.ClearTokens()
	return _u
}

// RemoveTokenIDs removes the "tokens" edge to AgentToken entities by IDs.
func (_u *AgentUpdateOne) RemoveTokenIDs(ids ...string) *AgentUpdateOne {
	_u.mutation.RemoveTokenIDs(ids...)
	return _u
}

// RemoveTokens removes "tokens" edges to AgentToken entities.
func (_u *AgentUpdateOne) RemoveTokens(v ...*AgentToken) *AgentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTokenIDs(ids...)
}

// Where appends a list predicates to the AgentUpdate builder.
func (_u *AgentUpdateOne) Where(ps ...predicate.Agent) *AgentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentUpdateOne) Select(field string, fields ...string) *AgentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Agent entity.
func (_u *AgentUpdateOne) Save(ctx context.Context) (*Agent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentUpdateOne) SaveX(ctx context.Context) *Agent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentUpdateOne) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := agent.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Agent.state": %w`, err)}
		}
	}
	if _u.mutation.AccountCleared() && len(_u.mutation.AccountIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Agent.account"`)
	}
	return nil
}

func (_u *AgentUpdateOne) sqlSave(ctx context.Context) (_node *Agent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agent.Table, agent.Columns, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Agent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agent.FieldID)
		for _, f := range fields {
			if !agent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agent.FieldID {
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
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(agent.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AgentVersion(); ok {
		_spec.SetField(agent.FieldAgentVersion, field.TypeString, value)
	}
	if _u.mutation.AgentVersionCleared() {
		_spec.ClearField(agent.FieldAgentVersion, field.TypeString)
	}
	if value, ok := _u.mutation.Platform(); ok {
		_spec.SetField(agent.FieldPlatform, field.TypeString, value)
	}
	if _u.mutation.PlatformCleared() {
		_spec.ClearField(agent.FieldPlatform, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(agent.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(agent.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RegisteredAt(); ok {
		_spec.SetField(agent.FieldRegisteredAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TerminatedAt(); ok {
		_spec.SetField(agent.FieldTerminatedAt, field.TypeTime, value)
	}
	if _u.mutation.TerminatedAtCleared() {
		_spec.ClearField(agent.FieldTerminatedAt, field.TypeTime)
	}
	if _u.mutation.TokensCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.TokensTable,
			Columns: []string{agent.TokensColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agenttoken.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTokensIDs(); len(nodes) > 0 && !_u.mutation.TokensCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.TokensTable,
			Columns: []string{agent.TokensColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agenttoken.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TokensIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.TokensTable,
			Columns: []string{agent.TokensColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agenttoken.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Agent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
