package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/leadrelay/relay/ent"
	"github.com/leadrelay/relay/ent/account"
	"github.com/leadrelay/relay/ent/job"
	"github.com/leadrelay/relay/ent/jobresult"
	"github.com/leadrelay/relay/pkg/metrics"
	"github.com/leadrelay/relay/pkg/models"
)

const dispatchDomain = "dispatch"

// DefaultMaxBatch caps how many jobs a single pull may assign when no
// batch limit is configured.
const DefaultMaxBatch = 5

// DefaultTimeoutSeconds applies when a job is created without a timeout.
const DefaultTimeoutSeconds = 300

// jobParameterSpec declares, per job type, which parameter keys are
// required and which are allowed. Validation happens at creation; the
// dispatcher never interprets parameters afterwards.
var jobParameterSpec = map[job.Type]struct {
	required []string
	optional []string
}{
	job.TypeVISIT_PROFILE:           {required: []string{"profile_url"}},
	job.TypeSEND_CONNECTION_REQUEST: {required: []string{"profile_url"}, optional: []string{"note_text"}},
	job.TypeLIKE_POST:               {required: []string{"post_url"}},
	job.TypeCOMMENT_POST:            {required: []string{"post_url", "message_text"}},
	job.TypeSEND_MESSAGE:            {required: []string{"profile_url", "message_text"}},
}

// JobService is the dispatcher: it owns jobs and job results, eligibility
// ordering, assignment and the state machine
//
//	PENDING → ASSIGNED → EXECUTING → COMPLETED|FAILED|SKIPPED
//
// Assignment and the EXECUTING transition are conditional updates; the
// result commit inserts the result row and finalizes the job in one
// transaction. The risk oracle is consulted before any assignment and has
// veto power, but never mutates jobs itself.
type JobService struct {
	client       *ent.Client
	accounts     *AccountService
	identity     *IdentityService
	risk         *RiskService
	audit        *AuditService
	maxPullBatch int
}

// JobServiceConfig carries the dispatch policy knobs.
type JobServiceConfig struct {
	// MaxPullBatch caps the jobs assigned per pull. Zero means
	// DefaultMaxBatch.
	MaxPullBatch int
}

// NewJobService creates a new JobService.
func NewJobService(client *ent.Client, accounts *AccountService, identity *IdentityService, risk *RiskService, audit *AuditService, cfg JobServiceConfig) *JobService {
	maxPullBatch := cfg.MaxPullBatch
	if maxPullBatch <= 0 {
		maxPullBatch = DefaultMaxBatch
	}
	return &JobService{
		client:       client,
		accounts:     accounts,
		identity:     identity,
		risk:         risk,
		audit:        audit,
		maxPullBatch: maxPullBatch,
	}
}

// CreateJob validates and persists a new PENDING job.
func (s *JobService) CreateJob(ctx context.Context, params models.CreateJobParams) (*ent.Job, error) {
	jobType := job.Type(params.Type)
	if err := job.TypeValidator(jobType); err != nil {
		return nil, NewValidationError("type", err.Error())
	}
	if err := validateJobParameters(jobType, params.Parameters); err != nil {
		return nil, err
	}
	if params.TimeoutSeconds < 0 {
		return nil, NewValidationError("timeout_seconds", "must not be negative")
	}

	// Validate referenced account and user through their owners' reads.
	if _, err := s.accounts.GetByID(ctx, params.AccountID); err != nil {
		return nil, err
	}
	if _, err := s.identity.GetUser(ctx, params.CreatedByUserID); err != nil {
		return nil, err
	}

	earliest := params.EarliestExecutionTime
	if earliest.IsZero() {
		earliest = time.Now()
	}
	timeout := params.TimeoutSeconds
	if timeout == 0 {
		timeout = DefaultTimeoutSeconds
	}

	builder := s.client.Job.Create().
		SetID(uuid.New().String()).
		SetAccountID(params.AccountID).
		SetCreatedByUserID(params.CreatedByUserID).
		SetType(jobType).
		SetParameters(params.Parameters).
		SetPriority(params.Priority).
		SetEarliestExecutionTime(earliest).
		SetTimeoutSeconds(timeout)
	if params.LeadID != "" {
		builder.SetLeadID(params.LeadID)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	metrics.JobsCreated.WithLabelValues(params.Type).Inc()
	s.appendAudit(ctx, row.ID, "job.created", models.ActorUser, params.CreatedByUserID, map[string]interface{}{
		"account_id": params.AccountID,
		"type":       params.Type,
		"priority":   params.Priority,
	})

	return row, nil
}

// PullJobs assigns up to maxBatch eligible jobs to the calling agent.
//
// Eligibility: the risk oracle allows execution, earliest_execution_time
// has passed, and the job is still PENDING. Ordering is stable and
// observable: priority descending, then created_at ascending, then job id.
// Each assignment is a conditional update: a job raced away by a
// concurrent puller is silently skipped, which is what yields the
// single-execution guarantee.
func (s *JobService) PullJobs(ctx context.Context, agentID, accountID string, maxBatch int) ([]*ent.Job, error) {
	if maxBatch <= 0 || maxBatch > s.maxPullBatch {
		maxBatch = s.maxPullBatch
	}

	verdict, err := s.risk.IsExecutionAllowed(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if !verdict.Allowed {
		// The agent learns the reason from the heartbeat path.
		return []*ent.Job{}, nil
	}

	candidates, err := s.client.Job.Query().
		Where(
			job.AccountIDEQ(accountID),
			job.StateEQ(job.StatePENDING),
			job.EarliestExecutionTimeLTE(time.Now()),
		).
		Order(
			ent.Desc(job.FieldPriority),
			ent.Asc(job.FieldCreatedAt),
			ent.Asc(job.FieldID),
		).
		Limit(maxBatch).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query eligible jobs: %w", err)
	}

	assigned := make([]*ent.Job, 0, len(candidates))
	now := time.Now()
	for _, candidate := range candidates {
		count, err := s.client.Job.Update().
			Where(
				job.IDEQ(candidate.ID),
				job.StateEQ(job.StatePENDING),
			).
			SetState(job.StateASSIGNED).
			SetAssignedAgentID(agentID).
			SetAssignedAt(now).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to assign job %s: %w", candidate.ID, err)
		}
		if count == 0 {
			// Raced by a concurrent puller; exactly one wins.
			continue
		}

		row, err := s.client.Job.Get(ctx, candidate.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to refetch assigned job: %w", err)
		}
		assigned = append(assigned, row)

		metrics.JobsAssigned.Inc()
		s.appendAudit(ctx, row.ID, "job.assigned", models.ActorAgent, agentID, map[string]interface{}{
			"account_id": accountID,
		})
	}

	return assigned, nil
}

// RecordEvent appends an agent-side execution event. ACTION_STARTED on an
// ASSIGNED job transitions it to EXECUTING. Events for jobs not assigned
// to the reporting agent are rejected.
func (s *JobService) RecordEvent(ctx context.Context, agentID, jobID, eventType, message string, ts time.Time) error {
	switch eventType {
	case models.EventActionStarted, models.EventActionCompleted, models.EventWarning, models.EventInfo:
	default:
		return NewValidationError("event_type", "must be ACTION_STARTED, ACTION_COMPLETED, WARNING or INFO")
	}

	row, err := s.client.Job.Get(ctx, jobID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get job: %w", err)
	}
	if row.AssignedAgentID == nil || *row.AssignedAgentID != agentID {
		return ErrForbidden
	}

	if eventType == models.EventActionStarted && row.State == job.StateASSIGNED {
		// Conditional: a concurrent terminal commit wins over a late start.
		_, err := s.client.Job.Update().
			Where(
				job.IDEQ(jobID),
				job.StateEQ(job.StateASSIGNED),
			).
			SetState(job.StateEXECUTING).
			SetStartedAt(time.Now()).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to start job: %w", err)
		}
	}

	if ts.IsZero() {
		ts = time.Now()
	}
	s.appendAudit(ctx, jobID, "job.event", models.ActorAgent, agentID, map[string]interface{}{
		"event_type": eventType,
		"message":    message,
		"at":         ts.Format(time.RFC3339),
	})

	return nil
}

// SubmitResult is the idempotent result commit for agent-reported outcomes.
func (s *JobService) SubmitResult(ctx context.Context, agentID, jobID string, params models.SubmitResultParams) (*ent.JobResult, bool, error) {
	return s.submitResult(ctx, agentID, jobID, params, models.ActorAgent)
}

// submitResult loads the job, enforces ownership and state, and commits
// the result and the job's terminal transition in one transaction. If a
// result already exists it is returned verbatim, safe under transport
// retries and under the reaper losing its race to a late agent result.
func (s *JobService) submitResult(ctx context.Context, agentID, jobID string, params models.SubmitResultParams, actorType string) (*ent.JobResult, bool, error) {
	status := jobresult.Status(params.Status)
	if err := jobresult.StatusValidator(status); err != nil {
		return nil, false, NewValidationError("status", err.Error())
	}
	var failureReason jobresult.FailureReason
	if params.FailureReason != "" {
		failureReason = jobresult.FailureReason(params.FailureReason)
		if err := jobresult.FailureReasonValidator(failureReason); err != nil {
			return nil, false, NewValidationError("failure_reason", err.Error())
		}
	}
	var observedState jobresult.ObservedState
	if params.ObservedState != "" {
		observedState = jobresult.ObservedState(params.ObservedState)
		if err := jobresult.ObservedStateValidator(observedState); err != nil {
			return nil, false, NewValidationError("observed_state", err.Error())
		}
	}

	row, err := s.client.Job.Get(ctx, jobID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, false, ErrNotFound
		}
		return nil, false, fmt.Errorf("failed to get job: %w", err)
	}
	if row.AssignedAgentID == nil || *row.AssignedAgentID != agentID {
		return nil, false, ErrForbidden
	}

	// Duplicate commit → idempotent success.
	existing, err := s.resultForJob(ctx, jobID)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, true, nil
	}

	if row.State != job.StateASSIGNED && row.State != job.StateEXECUTING {
		return nil, false, ErrInvalidState
	}

	terminal := terminalStateFor(status)
	now := time.Now()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	builder := tx.JobResult.Create().
		SetID(uuid.New().String()).
		SetJobID(jobID).
		SetAgentID(agentID).
		SetStatus(status).
		SetCompletedAt(now)
	if params.FailureReason != "" {
		builder.SetFailureReason(failureReason)
	}
	if params.ObservedState != "" {
		builder.SetObservedState(observedState)
	}

	result, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Raced by a concurrent commit; return the winner's result.
			_ = tx.Rollback()
			winner, lookupErr := s.resultForJob(ctx, jobID)
			if lookupErr != nil {
				return nil, false, lookupErr
			}
			if winner != nil {
				return winner, true, nil
			}
			return nil, false, fmt.Errorf("failed to insert result: %w", err)
		}
		return nil, false, fmt.Errorf("failed to insert result: %w", err)
	}

	update := tx.Job.Update().
		Where(
			job.IDEQ(jobID),
			job.StateIn(job.StateASSIGNED, job.StateEXECUTING),
		).
		SetState(terminal).
		SetCompletedAt(now)
	if params.FailureReason != "" {
		update.SetFailureReason(params.FailureReason)
	}

	count, err := update.Save(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to finalize job: %w", err)
	}
	if count == 0 {
		// The unique result row guards this path; reaching it means the
		// job left ASSIGNED/EXECUTING without a result row.
		return nil, false, ErrInvalidState
	}

	if err := tx.Commit(); err != nil {
		return nil, false, fmt.Errorf("failed to commit result: %w", err)
	}

	metrics.JobsFinalized.WithLabelValues(params.Status).Inc()
	s.appendAudit(ctx, jobID, "job."+string(terminal), actorType, agentID, map[string]interface{}{
		"status":         params.Status,
		"failure_reason": params.FailureReason,
		"observed_state": params.ObservedState,
	})

	// Session expiry is a boundary fact the account registry and risk
	// oracle both care about. Best-effort after the commit; the result
	// itself is already durable.
	if failureReason == jobresult.FailureReasonSESSION_EXPIRED {
		s.propagateSessionExpiry(ctx, row.AccountID, jobID)
	}

	return result, false, nil
}

// ReapStuckJobs fails jobs stuck in EXECUTING past their deadline plus
// grace. It routes through the same idempotent commit as agent results, so
// a late agent result always beats the reaper.
func (s *JobService) ReapStuckJobs(ctx context.Context, grace time.Duration) (int, error) {
	stuck, err := s.client.Job.Query().
		Where(
			job.StateEQ(job.StateEXECUTING),
			job.StartedAtNotNil(),
			job.StartedAtLT(time.Now().Add(-grace)),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query stuck jobs: %w", err)
	}

	reaped := 0
	now := time.Now()
	for _, row := range stuck {
		deadline := row.StartedAt.Add(time.Duration(row.TimeoutSeconds)*time.Second + grace)
		if now.Before(deadline) {
			continue
		}
		if row.AssignedAgentID == nil {
			continue
		}

		_, already, err := s.submitResult(ctx, *row.AssignedAgentID, row.ID, models.SubmitResultParams{
			Status:        string(jobresult.StatusFAILED),
			FailureReason: string(jobresult.FailureReasonTIMEOUT),
		}, models.ActorSystem)
		if err != nil {
			slog.Error("Failed to reap stuck job", "job_id", row.ID, "error", err)
			continue
		}
		if !already {
			reaped++
			metrics.JobsReaped.Inc()
			slog.Warn("Reaped stuck job", "job_id", row.ID, "started_at", row.StartedAt)
		}
	}

	return reaped, nil
}

// GetJob returns a job with its result edge loaded, if any.
func (s *JobService) GetJob(ctx context.Context, jobID string) (*ent.Job, error) {
	row, err := s.client.Job.Query().
		Where(job.IDEQ(jobID)).
		WithResult().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return row, nil
}

// ListJobs lists jobs with filtering and pagination, newest first.
func (s *JobService) ListJobs(ctx context.Context, filters models.JobFilters) (*models.JobListResponse, error) {
	query := s.client.Job.Query()

	if filters.AccountID != "" {
		query = query.Where(job.AccountIDEQ(filters.AccountID))
	}
	if filters.State != "" {
		state := job.State(filters.State)
		if err := job.StateValidator(state); err != nil {
			return nil, NewValidationError("state", err.Error())
		}
		query = query.Where(job.StateEQ(state))
	}
	if filters.Type != "" {
		jobType := job.Type(filters.Type)
		if err := job.TypeValidator(jobType); err != nil {
			return nil, NewValidationError("type", err.Error())
		}
		query = query.Where(job.TypeEQ(jobType))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count jobs: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	jobs, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(job.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	return &models.JobListResponse{
		Jobs:       jobs,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// RecordScreenshot persists screenshot metadata as an audit entry. The
// blob itself lives in external object storage; the core never inlines
// image bytes.
func (s *JobService) RecordScreenshot(ctx context.Context, agentID, jobID, stage, imageURL string) error {
	switch stage {
	case models.ScreenshotBefore, models.ScreenshotAfter, models.ScreenshotFailure:
	default:
		return NewValidationError("stage", "must be BEFORE, AFTER or FAILURE")
	}
	if imageURL == "" {
		return NewValidationError("image_url", "required")
	}

	row, err := s.client.Job.Get(ctx, jobID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get job: %w", err)
	}
	if row.AssignedAgentID == nil || *row.AssignedAgentID != agentID {
		return ErrForbidden
	}

	s.appendAudit(ctx, jobID, "job.screenshot", models.ActorAgent, agentID, map[string]interface{}{
		"stage":     stage,
		"image_url": imageURL,
	})
	return nil
}

// resultForJob fetches the unique result row for a job, nil when absent.
func (s *JobService) resultForJob(ctx context.Context, jobID string) (*ent.JobResult, error) {
	existing, err := s.client.JobResult.Query().
		Where(jobresult.JobIDEQ(jobID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query result: %w", err)
	}
	return existing, nil
}

// propagateSessionExpiry reports a SESSION_EXPIRED failure to the account
// registry and the risk oracle. Both are owners of their own state; the
// dispatcher only calls their operations.
func (s *JobService) propagateSessionExpiry(ctx context.Context, accountID, jobID string) {
	if _, err := s.accounts.UpdateValidationStatus(ctx, accountID, account.ValidationStatusEXPIRED); err != nil {
		slog.Error("Failed to flip account validation on session expiry",
			"account_id", accountID, "error", err)
	}
	if _, err := s.risk.RecordSessionExpiry(ctx, accountID, jobID); err != nil {
		slog.Error("Failed to record session-expiry violation",
			"account_id", accountID, "error", err)
	}
}

// terminalStateFor maps a result status to the job's terminal state.
func terminalStateFor(status jobresult.Status) job.State {
	switch status {
	case jobresult.StatusSUCCESS:
		return job.StateCOMPLETED
	case jobresult.StatusFAILED:
		return job.StateFAILED
	default:
		return job.StateSKIPPED
	}
}

// validateJobParameters enforces the tagged-variant parameter schema.
func validateJobParameters(jobType job.Type, params map[string]interface{}) error {
	spec, ok := jobParameterSpec[jobType]
	if !ok {
		return NewValidationError("type", "unknown job type")
	}
	if params == nil {
		params = map[string]interface{}{}
	}

	for _, key := range spec.required {
		val, present := params[key]
		str, isString := val.(string)
		if !present || !isString || str == "" {
			return NewValidationError("parameters."+key, "required")
		}
	}

	allowed := make(map[string]bool, len(spec.required)+len(spec.optional))
	for _, key := range spec.required {
		allowed[key] = true
	}
	for _, key := range spec.optional {
		allowed[key] = true
	}
	for key := range params {
		if !allowed[key] {
			return NewValidationError("parameters."+key, "not allowed for "+string(jobType))
		}
	}

	return nil
}

func (s *JobService) appendAudit(ctx context.Context, jobID, eventType, actorType, actorID string, payload map[string]interface{}) {
	_, err := s.audit.Append(ctx, models.AuditAppend{
		Domain:     dispatchDomain,
		EventType:  eventType,
		EntityType: "job",
		EntityID:   jobID,
		ActorType:  actorType,
		ActorID:    actorID,
		Payload:    payload,
	})
	if err != nil {
		slog.Error("Failed to append dispatch audit entry",
			"job_id", jobID, "event_type", eventType, "error", err)
	}
}
