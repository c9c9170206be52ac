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
	"github.com/leadrelay/relay/ent/job"
	"github.com/leadrelay/relay/ent/jobresult"
	"github.com/leadrelay/relay/ent/predicate"
)

// JobUpdate is the builder for updating Job entities.
type JobUpdate struct {
	config
	hooks    []Hook
	mutation *JobMutation
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdate) Where(ps ...predicate.Job) *JobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAssignedAgentID sets the "assigned_agent_id" field.
func (_u *JobUpdate) SetAssignedAgentID(v string) *JobUpdate {
	_u.mutation.SetAssignedAgentID(v)
	return _u
}

// SetNillableAssignedAgentID sets the "assigned_agent_id" field if the given value is not nil.
func (_u *JobUpdate) SetNillableAssignedAgentID(v *string) *JobUpdate {
	if v != nil {
		_u.SetAssignedAgentID(*v)
	}
	return _u
}

// ClearAssignedAgentID clears the value of the "assigned_agent_id" field.
func (_u *JobUpdate) ClearAssignedAgentID() *JobUpdate {
	_u.mutation.ClearAssignedAgentID()
	return _u
}

// SetType sets the "type" field.
func (_u *JobUpdate) SetType(v job.Type) *JobUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *JobUpdate) SetNillableType(v *job.Type) *JobUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetParameters sets the "parameters" field.
func (_u *JobUpdate) SetParameters(v map[string]interface{}) *JobUpdate {
	_u.mutation.SetParameters(v)
	return _u
}

// SetLeadID sets the "lead_id" field.
func (_u *JobUpdate) SetLeadID(v string) *JobUpdate {
	_u.mutation.SetLeadID(v)
	return _u
}

// SetNillableLeadID sets the "lead_id" field if the given value is not nil.
func (_u *JobUpdate) SetNillableLeadID(v *string) *JobUpdate {
	if v != nil {
		_u.SetLeadID(*v)
	}
	return _u
}

// ClearLeadID clears the value of the "lead_id" field.
func (_u *JobUpdate) ClearLeadID() *JobUpdate {
	_u.mutation.ClearLeadID()
	return _u
}

// SetState sets the "state" field.
func (_u *JobUpdate) SetState(v job.State) *JobUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *JobUpdate) SetNillableState(v *job.State) *JobUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *JobUpdate) SetPriority(v int) *JobUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *JobUpdate) SetNillablePriority(v *int) *JobUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *JobUpdate) AddPriority(v int) *JobUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetEarliestExecutionTime sets the "earliest_execution_time" field.
func (_u *JobUpdate) SetEarliestExecutionTime(v time.Time) *JobUpdate {
	_u.mutation.SetEarliestExecutionTime(v)
	return _u
}

// SetNillableEarliestExecutionTime sets the "earliest_execution_time" field if the given value is not nil.
func (_u *JobUpdate) SetNillableEarliestExecutionTime(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetEarliestExecutionTime(*v)
	}
	return _u
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (_u *JobUpdate) SetTimeoutSeconds(v int) *JobUpdate {
	_u.mutation.ResetTimeoutSeconds()
	_u.mutation.SetTimeoutSeconds(v)
	return _u
}

// SetNillableTimeoutSeconds sets the "timeout_seconds" field if the given value is not nil.
func (_u *JobUpdate) SetNillableTimeoutSeconds(v *int) *JobUpdate {
	if v != nil {
		_u.SetTimeoutSeconds(*v)
	}
	return _u
}

// AddTimeoutSeconds adds value to the "timeout_seconds" field.
func (_u *JobUpdate) AddTimeoutSeconds(v int) *JobUpdate {
	_u.mutation.AddTimeoutSeconds(v)
	return _u
}

// SetAssignedAt sets the "assigned_at" field.
func (_u *JobUpdate) SetAssignedAt(v time.Time) *JobUpdate {
	_u.mutation.SetAssignedAt(v)
	return _u
}

// SetNillableAssignedAt sets the "assigned_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableAssignedAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetAssignedAt(*v)
	}
	return _u
}

// ClearAssignedAt clears the value of the "assigned_at" field.
func (_u *JobUpdate) ClearAssignedAt() *JobUpdate {
	_u.mutation.ClearAssignedAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *JobUpdate) SetStartedAt(v time.Time) *JobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableStartedAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *JobUpdate) ClearStartedAt() *JobUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *JobUpdate) SetCompletedAt(v time.Time) *JobUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableCompletedAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *JobUpdate) ClearCompletedAt() *JobUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *JobUpdate) SetFailureReason(v string) *JobUpdate {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *JobUpdate) SetNillableFailureReason(v *string) *JobUpdate {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *JobUpdate) ClearFailureReason() *JobUpdate {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetResultID sets the "result" edge to the JobResult entity by ID.
func (_u *JobUpdate) SetResultID(id string) *JobUpdate {
	_u.mutation.SetResultID(id)
	return _u
}

// SetNillableResultID sets the "result" edge to the JobResult entity by ID if the given value is not nil.
func (_u *JobUpdate) SetNillableResultID(id *string) *JobUpdate {
	if id != nil {
		_u = _u.SetResultID(*id)
	}
	return _u
}

// SetResult sets the "result" edge to the JobResult entity.
func (_u *JobUpdate) SetResult(v *JobResult) *JobUpdate {
	return _u.SetResultID(v.ID)
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdate) Mutation() *JobMutation {
	return _u.mutation
}

// ClearResult clears the "result" edge to the JobResult entity.
func (_u *JobUpdate) ClearResult() *JobUpdate {
	_u.mutation.ClearResult()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdate) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := job.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Job.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := job.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Job.state": %w`, err)}
		}
	}
	if _u.mutation.AccountCleared() && len(_u.mutation.AccountIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Job.account"`)
	}
	return nil
}

func (_u *JobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AssignedAgentID(); ok {
		_spec.SetField(job.FieldAssignedAgentID, field.TypeString, value)
	}
	if _u.mutation.AssignedAgentIDCleared() {
		_spec.ClearField(job.FieldAssignedAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(job.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Parameters(); ok {
		_spec.SetField(job.FieldParameters, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.LeadID(); ok {
		_spec.SetField(job.FieldLeadID, field.TypeString, value)
	}
	if _u.mutation.LeadIDCleared() {
		_spec.ClearField(job.FieldLeadID, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(job.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(job.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(job.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EarliestExecutionTime(); ok {
		_spec.SetField(job.FieldEarliestExecutionTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TimeoutSeconds(); ok {
		_spec.SetField(job.FieldTimeoutSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeoutSeconds(); ok {
		_spec.AddField(job.FieldTimeoutSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AssignedAt(); ok {
		_spec.SetField(job.FieldAssignedAt, field.TypeTime, value)
	}
	if _u.mutation.AssignedAtCleared() {
		_spec.ClearField(job.FieldAssignedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(job.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(job.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(job.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(job.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(job.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(job.FieldFailureReason, field.TypeString)
	}
	if _u.mutation.ResultCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResultIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobUpdateOne is the builder for updating a single Job entity.
type JobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobMutation
}

// SetAssignedAgentID sets the "assigned_agent_id" field.
func (_u *JobUpdateOne) SetAssignedAgentID(v string) *JobUpdateOne {
	_u.mutation.SetAssignedAgentID(v)
	return _u
}

// SetNillableAssignedAgentID sets the "assigned_agent_id" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableAssignedAgentID(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetAssignedAgentID(*v)
	}
	return _u
}

// ClearAssignedAgentID clears the value of the "assigned_agent_id" field.
func (_u *JobUpdateOne) ClearAssignedAgentID() *JobUpdateOne {
	_u.mutation.ClearAssignedAgentID()
	return _u
}

// SetType sets the "type" field.
func (_u *JobUpdateOne) SetType(v job.Type) *JobUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableType(v *job.Type) *JobUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetParameters sets the "parameters" field.
func (_u *JobUpdateOne) SetParameters(v map[string]interface{}) *JobUpdateOne {
	_u.mutation.SetParameters(v)
	return _u
}

// SetLeadID sets the "lead_id" field.
func (_u *JobUpdateOne) SetLeadID(v string) *JobUpdateOne {
	_u.mutation.SetLeadID(v)
	return _u
}

// SetNillableLeadID sets the "lead_id" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableLeadID(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetLeadID(*v)
	}
	return _u
}

// ClearLeadID clears the value of the "lead_id" field.
func (_u *JobUpdateOne) ClearLeadID() *JobUpdateOne {
	_u.mutation.ClearLeadID()
	return _u
}

// SetState sets the "state" field.
func (_u *JobUpdateOne) SetState(v job.State) *JobUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableState(v *job.State) *JobUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *JobUpdateOne) SetPriority(v int) *JobUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillablePriority(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *JobUpdateOne) AddPriority(v int) *JobUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetEarliestExecutionTime sets the "earliest_execution_time" field.
func (_u *JobUpdateOne) SetEarliestExecutionTime(v time.Time) *JobUpdateOne {
	_u.mutation.SetEarliestExecutionTime(v)
	return _u
}

// SetNillableEarliestExecutionTime sets the "earliest_execution_time" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableEarliestExecutionTime(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetEarliestExecutionTime(*v)
	}
	return _u
}

// SetTimeoutSeconds sets the "timeout_seconds" field.
func (_u *JobUpdateOne) SetTimeoutSeconds(v int) *JobUpdateOne {
	_u.mutation.ResetTimeoutSeconds()
	_u.mutation.SetTimeoutSeconds(v)
	return _u
}

// SetNillableTimeoutSeconds sets the "timeout_seconds" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableTimeoutSeconds(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetTimeoutSeconds(*v)
	}
	return _u
}

// AddTimeoutSeconds adds value to the "timeout_seconds" field.
func (_u *JobUpdateOne) AddTimeoutSeconds(v int) *JobUpdateOne {
	_u.mutation.AddTimeoutSeconds(v)
	return _u
}

// SetAssignedAt sets the "assigned_at" field.
func (_u *JobUpdateOne) SetAssignedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetAssignedAt(v)
	return _u
}

// SetNillableAssignedAt sets the "assigned_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableAssignedAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetAssignedAt(*v)
	}
	return _u
}

// ClearAssignedAt clears the value of the "assigned_at" field.
func (_u *JobUpdateOne) ClearAssignedAt() *JobUpdateOne {
	_u.mutation.ClearAssignedAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *JobUpdateOne) SetStartedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableStartedAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *JobUpdateOne) ClearStartedAt() *JobUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *JobUpdateOne) SetCompletedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableCompletedAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *JobUpdateOne) ClearCompletedAt() *JobUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *JobUpdateOne) SetFailureReason(v string) *JobUpdateOne {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableFailureReason(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *JobUpdateOne) ClearFailureReason() *JobUpdateOne {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetResultID sets the "result" edge to the JobResult entity by ID.
func (_u *JobUpdateOne) SetResultID(id string) *JobUpdateOne {
	_u.mutation.SetResultID(id)
	return _u
}

// SetNillableResultID sets the "result" edge to the JobResult entity by ID if the given value is not nil.
func (_u *JobUpdateOne) SetNillableResultID(id *string) *JobUpdateOne {
	if id != nil {
		_u = _u.SetResultID(*id)
	}
	return _u
}

// SetResult sets the "result" edge to the JobResult entity.
func (_u *JobUpdateOne) SetResult(v *JobResult) *JobUpdateOne {
	return _u.SetResultID(v.ID)
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdateOne) Mutation() *JobMutation {
	return _u.mutation
}

// ClearResult clears the "result" edge to the JobResult entity.
func (_u *JobUpdateOne) ClearResult() *JobUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdateOne) Where(ps ...predicate.Job) *JobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobUpdateOne) Select(field string, fields ...string) *JobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Job entity.
func (_u *JobUpdateOne) Save(ctx context.Context) (*Job, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdateOne) SaveX(ctx context.Context) *Job {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdateOne) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := job.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Job.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := job.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Job.state": %w`, err)}
		}
	}
	if _u.mutation.AccountCleared() && len(_u.mutation.AccountIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Job.account"`)
	}
	return nil
}

func (_u *JobUpdateOne) sqlSave(ctx context.Context) (_node *Job, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Job.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, job.FieldID)
		for _, f := range fields {
			if !job.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != job.FieldID {
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
	if value, ok := _u.mutation.AssignedAgentID(); ok {
		_spec.SetField(job.FieldAssignedAgentID, field.TypeString, value)
	}
	if _u.mutation.AssignedAgentIDCleared() {
		_spec.ClearField(job.FieldAssignedAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(job.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Parameters(); ok {
		_spec.SetField(job.FieldParameters, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.LeadID(); ok {
		_spec.SetField(job.FieldLeadID, field.TypeString, value)
	}
	if _u.mutation.LeadIDCleared() {
		_spec.ClearField(job.FieldLeadID, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(job.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(job.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(job.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EarliestExecutionTime(); ok {
		_spec.SetField(job.FieldEarliestExecutionTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TimeoutSeconds(); ok {
		_spec.SetField(job.FieldTimeoutSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeoutSeconds(); ok {
		_spec.AddField(job.FieldTimeoutSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AssignedAt(); ok {
		_spec.SetField(job.FieldAssignedAt, field.TypeTime, value)
	}
	if _u.mutation.AssignedAtCleared() {
		_spec.ClearField(job.FieldAssignedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(job.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(job.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(job.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(job.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(job.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(job.FieldFailureReason, field.TypeString)
	}
	if _u.mutation.ResultCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResultIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Job{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
