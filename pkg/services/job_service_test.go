package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadrelay/relay/ent/account"
	"github.com/leadrelay/relay/ent/auditentry"
	"github.com/leadrelay/relay/ent/job"
	"github.com/leadrelay/relay/ent/jobresult"
	"github.com/leadrelay/relay/pkg/models"
)

func TestJobService_CreateJob(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()
	usr, acct := ts.seedAccount(t, ctx)

	t.Run("creates pending job with defaults", func(t *testing.T) {
		row, err := ts.jobs.CreateJob(ctx, models.CreateJobParams{
			AccountID:       acct.ID,
			CreatedByUserID: usr.ID,
			Type:            "SEND_MESSAGE",
			Parameters: map[string]interface{}{
				"profile_url":  "https://example.com/in/target",
				"message_text": "hello",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, job.StatePENDING, row.State)
		assert.Equal(t, 0, row.Priority)
		assert.Equal(t, DefaultTimeoutSeconds, row.TimeoutSeconds)
		assert.Nil(t, row.AssignedAgentID)
		assert.False(t, row.EarliestExecutionTime.After(time.Now()))
	})

	t.Run("validates parameters per type", func(t *testing.T) {
		tests := []struct {
			name    string
			jobType string
			params  map[string]interface{}
			wantErr string
		}{
			{
				name:    "VISIT_PROFILE missing profile_url",
				jobType: "VISIT_PROFILE",
				params:  map[string]interface{}{},
				wantErr: "parameters.profile_url",
			},
			{
				name:    "COMMENT_POST missing message_text",
				jobType: "COMMENT_POST",
				params:  map[string]interface{}{"post_url": "https://example.com/p/1"},
				wantErr: "parameters.message_text",
			},
			{
				name:    "LIKE_POST with stray key",
				jobType: "LIKE_POST",
				params: map[string]interface{}{
					"post_url": "https://example.com/p/1",
					"extra":    "nope",
				},
				wantErr: "parameters.extra",
			},
			{
				name:    "required param wrong type",
				jobType: "VISIT_PROFILE",
				params:  map[string]interface{}{"profile_url": 42},
				wantErr: "parameters.profile_url",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := ts.jobs.CreateJob(ctx, models.CreateJobParams{
					AccountID:       acct.ID,
					CreatedByUserID: usr.ID,
					Type:            tt.jobType,
					Parameters:      tt.params,
				})
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
				assert.Contains(t, err.Error(), tt.wantErr)
			})
		}
	})

	t.Run("optional note_text accepted", func(t *testing.T) {
		_, err := ts.jobs.CreateJob(ctx, models.CreateJobParams{
			AccountID:       acct.ID,
			CreatedByUserID: usr.ID,
			Type:            "SEND_CONNECTION_REQUEST",
			Parameters: map[string]interface{}{
				"profile_url": "https://example.com/in/target",
				"note_text":   "hi there",
			},
		})
		require.NoError(t, err)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		_, err := ts.jobs.CreateJob(ctx, models.CreateJobParams{
			AccountID:       acct.ID,
			CreatedByUserID: usr.ID,
			Type:            "DANCE",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects unknown account", func(t *testing.T) {
		_, err := ts.jobs.CreateJob(ctx, models.CreateJobParams{
			AccountID:       "missing",
			CreatedByUserID: usr.ID,
			Type:            "VISIT_PROFILE",
			Parameters:      map[string]interface{}{"profile_url": "https://example.com/in/x"},
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestJobService_PullJobs(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()
	usr, acct := ts.seedAccount(t, ctx)
	reg := ts.seedAgent(t, ctx, usr.ID, acct.ID)

	t.Run("assigns eligible jobs in deterministic order", func(t *testing.T) {
		low := ts.seedJob(t, ctx, acct.ID, usr.ID)
		high := ts.seedJob(t, ctx, acct.ID, usr.ID, func(p *models.CreateJobParams) {
			p.Priority = 10
		})

		jobs, err := ts.jobs.PullJobs(ctx, reg.AgentID, acct.ID, 5)
		require.NoError(t, err)
		require.Len(t, jobs, 2)

		// Priority wins over creation order.
		assert.Equal(t, high.ID, jobs[0].ID)
		assert.Equal(t, low.ID, jobs[1].ID)
		for _, row := range jobs {
			assert.Equal(t, job.StateASSIGNED, row.State)
			require.NotNil(t, row.AssignedAgentID)
			assert.Equal(t, reg.AgentID, *row.AssignedAgentID)
			assert.NotNil(t, row.AssignedAt)
		}
	})

	t.Run("excludes future earliest_execution_time", func(t *testing.T) {
		ts.seedJob(t, ctx, acct.ID, usr.ID, func(p *models.CreateJobParams) {
			p.EarliestExecutionTime = time.Now().Add(time.Hour)
		})

		jobs, err := ts.jobs.PullJobs(ctx, reg.AgentID, acct.ID, 5)
		require.NoError(t, err)
		assert.Empty(t, jobs)
	})

	t.Run("empty batch when execution disallowed", func(t *testing.T) {
		ts.seedJob(t, ctx, acct.ID, usr.ID)

		_, err := ts.accounts.SetUserPaused(ctx, acct.ID, true)
		require.NoError(t, err)
		t.Cleanup(func() {
			_, err := ts.accounts.SetUserPaused(ctx, acct.ID, false)
			require.NoError(t, err)
		})

		jobs, err := ts.jobs.PullJobs(ctx, reg.AgentID, acct.ID, 5)
		require.NoError(t, err)
		assert.Empty(t, jobs)

		// The job itself stayed PENDING: the oracle vetoes, it never mutates.
		pending, err := ts.client.Job.Query().Where(job.StateEQ(job.StatePENDING)).Count(ctx)
		require.NoError(t, err)
		assert.Positive(t, pending)
	})
}

func TestJobService_PullJobs_OrderingTieBreaks(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()
	usr, acct := ts.seedAccount(t, ctx)
	reg := ts.seedAgent(t, ctx, usr.ID, acct.ID)

	// Rows inserted directly so created_at collisions are exact.
	base := time.Now().Add(-time.Hour)
	insert := func(id string, priority int, createdAt time.Time) {
		_, err := ts.client.Job.Create().
			SetID(id).
			SetAccountID(acct.ID).
			SetCreatedByUserID(usr.ID).
			SetType(job.TypeVISIT_PROFILE).
			SetParameters(map[string]interface{}{"profile_url": "https://example.com/in/target"}).
			SetPriority(priority).
			SetEarliestExecutionTime(base).
			SetTimeoutSeconds(300).
			SetCreatedAt(createdAt).
			Save(ctx)
		require.NoError(t, err)
	}

	// Insertion order deliberately scrambled relative to the pull order.
	insert("order-b", 0, base.Add(time.Minute)) // ties with order-a on (priority, created_at)
	insert("order-d", 5, base.Add(2*time.Minute))
	insert("order-a", 0, base.Add(time.Minute))
	insert("order-c", 0, base)

	// priority DESC, then created_at ASC, then id ASC.
	want := []string{"order-d", "order-c", "order-a", "order-b"}

	// Single-job pulls make the order itself observable.
	for i, expected := range want {
		batch, err := ts.jobs.PullJobs(ctx, reg.AgentID, acct.ID, 1)
		require.NoError(t, err)
		require.Len(t, batch, 1, "pull %d", i)
		assert.Equal(t, expected, batch[0].ID, "pull %d", i)
	}
}

func TestJobService_PullJobs_ConfiguredBatchCap(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()
	usr, acct := ts.seedAccount(t, ctx)
	reg := ts.seedAgent(t, ctx, usr.ID, acct.ID)

	capped := NewJobService(ts.client, ts.accounts, ts.identity, ts.risk, ts.audit, JobServiceConfig{
		MaxPullBatch: 2,
	})

	for i := 0; i < 3; i++ {
		ts.seedJob(t, ctx, acct.ID, usr.ID)
	}

	// Asking for more than the configured cap is clamped to it.
	batch, err := capped.PullJobs(ctx, reg.AgentID, acct.ID, 5)
	require.NoError(t, err)
	assert.Len(t, batch, 2)
}

func TestJobService_PullJobs_ConcurrentRace(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()
	usr, acct := ts.seedAccount(t, ctx)
	reg := ts.seedAgent(t, ctx, usr.ID, acct.ID)
	row := ts.seedJob(t, ctx, acct.ID, usr.ID)

	// Two concurrent pulls race for the same PENDING job; the conditional
	// update guarantees exactly one assignment.
	const pullers = 2
	counts := make([]int, pullers)
	errs := make([]error, pullers)
	var wg sync.WaitGroup
	for i := 0; i < pullers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			jobs, err := ts.jobs.PullJobs(ctx, reg.AgentID, acct.ID, 5)
			counts[i] = len(jobs)
			errs[i] = err
		}(i)
	}
	wg.Wait()

	for i := 0; i < pullers; i++ {
		require.NoError(t, errs[i])
	}
	assert.Equal(t, 1, counts[0]+counts[1], "exactly one puller wins the job")

	got, err := ts.client.Job.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StateASSIGNED, got.State)
}

func TestJobService_RecordEvent(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()
	usr, acct := ts.seedAccount(t, ctx)
	reg := ts.seedAgent(t, ctx, usr.ID, acct.ID)

	pullOne := func(t *testing.T) string {
		ts.seedJob(t, ctx, acct.ID, usr.ID)
		jobs, err := ts.jobs.PullJobs(ctx, reg.AgentID, acct.ID, 1)
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		return jobs[0].ID
	}

	t.Run("ACTION_STARTED transitions to EXECUTING", func(t *testing.T) {
		jobID := pullOne(t)

		err := ts.jobs.RecordEvent(ctx, reg.AgentID, jobID, models.EventActionStarted, "", time.Now())
		require.NoError(t, err)

		got, err := ts.client.Job.Get(ctx, jobID)
		require.NoError(t, err)
		assert.Equal(t, job.StateEXECUTING, got.State)
		assert.NotNil(t, got.StartedAt)
	})

	t.Run("rejects events from a different agent", func(t *testing.T) {
		jobID := pullOne(t)

		err := ts.jobs.RecordEvent(ctx, "someone-else", jobID, models.EventInfo, "peek", time.Now())
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("rejects unknown event type", func(t *testing.T) {
		jobID := pullOne(t)

		err := ts.jobs.RecordEvent(ctx, reg.AgentID, jobID, "EXPLODED", "", time.Now())
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestJobService_SubmitResult(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()
	usr, acct := ts.seedAccount(t, ctx)
	reg := ts.seedAgent(t, ctx, usr.ID, acct.ID)

	pullOne := func(t *testing.T) string {
		ts.seedJob(t, ctx, acct.ID, usr.ID)
		jobs, err := ts.jobs.PullJobs(ctx, reg.AgentID, acct.ID, 1)
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		return jobs[0].ID
	}

	t.Run("finalizes the job and result atomically", func(t *testing.T) {
		jobID := pullOne(t)

		result, already, err := ts.jobs.SubmitResult(ctx, reg.AgentID, jobID, models.SubmitResultParams{
			Status:        "SUCCESS",
			ObservedState: "CONNECTED",
		})
		require.NoError(t, err)
		assert.False(t, already)
		assert.Equal(t, jobresult.StatusSUCCESS, result.Status)

		got, err := ts.client.Job.Get(ctx, jobID)
		require.NoError(t, err)
		assert.Equal(t, job.StateCOMPLETED, got.State)
		assert.NotNil(t, got.CompletedAt)
	})

	t.Run("duplicate submission is idempotent and verbatim", func(t *testing.T) {
		jobID := pullOne(t)

		first, already, err := ts.jobs.SubmitResult(ctx, reg.AgentID, jobID, models.SubmitResultParams{
			Status:        "FAILED",
			FailureReason: "UI_CHANGED",
		})
		require.NoError(t, err)
		assert.False(t, already)

		// Retry reports a different outcome; the stored result wins.
		second, already, err := ts.jobs.SubmitResult(ctx, reg.AgentID, jobID, models.SubmitResultParams{
			Status: "SUCCESS",
		})
		require.NoError(t, err)
		assert.True(t, already)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, jobresult.StatusFAILED, second.Status)

		// Exactly one result row exists.
		count, err := ts.client.JobResult.Query().Where(jobresult.JobIDEQ(jobID)).Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("rejects result for PENDING job", func(t *testing.T) {
		row := ts.seedJob(t, ctx, acct.ID, usr.ID)

		_, _, err := ts.jobs.SubmitResult(ctx, reg.AgentID, row.ID, models.SubmitResultParams{
			Status: "SUCCESS",
		})
		// Not yet assigned to this agent, so ownership fails first.
		assert.ErrorIs(t, err, ErrForbidden)

		// Drain the PENDING job so later subtests see a clean queue.
		jobs, err := ts.jobs.PullJobs(ctx, reg.AgentID, acct.ID, 5)
		require.NoError(t, err)
		for _, j := range jobs {
			_, _, err := ts.jobs.SubmitResult(ctx, reg.AgentID, j.ID, models.SubmitResultParams{Status: "SKIPPED"})
			require.NoError(t, err)
		}
	})

	t.Run("rejects result from a different agent", func(t *testing.T) {
		jobID := pullOne(t)

		_, _, err := ts.jobs.SubmitResult(ctx, "intruder", jobID, models.SubmitResultParams{
			Status: "SUCCESS",
		})
		assert.ErrorIs(t, err, ErrForbidden)

		_, _, err = ts.jobs.SubmitResult(ctx, reg.AgentID, jobID, models.SubmitResultParams{Status: "SKIPPED"})
		require.NoError(t, err)
	})

	t.Run("SESSION_EXPIRED propagates to account and risk", func(t *testing.T) {
		jobID := pullOne(t)

		_, _, err := ts.jobs.SubmitResult(ctx, reg.AgentID, jobID, models.SubmitResultParams{
			Status:        "FAILED",
			FailureReason: "SESSION_EXPIRED",
		})
		require.NoError(t, err)

		got, err := ts.accounts.GetByID(ctx, acct.ID)
		require.NoError(t, err)
		assert.Equal(t, account.ValidationStatusEXPIRED, got.ValidationStatus)

		violations, err := ts.risk.ListViolations(ctx, acct.ID, true)
		require.NoError(t, err)
		require.NotEmpty(t, violations)
		assert.Equal(t, "SESSION_EXPIRED", violations[0].ViolationType)

		// Verdict flips immediately: fresh reads, no cache.
		verdict, err := ts.risk.IsExecutionAllowed(ctx, acct.ID)
		require.NoError(t, err)
		assert.False(t, verdict.Allowed)
		assert.Equal(t, models.ReasonSessionInvalid, verdict.Reason)
	})
}

func TestJobService_ReapStuckJobs(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()
	usr, acct := ts.seedAccount(t, ctx)
	reg := ts.seedAgent(t, ctx, usr.ID, acct.ID)

	startJob := func(t *testing.T, timeoutSeconds int) string {
		ts.seedJob(t, ctx, acct.ID, usr.ID, func(p *models.CreateJobParams) {
			p.TimeoutSeconds = timeoutSeconds
		})
		jobs, err := ts.jobs.PullJobs(ctx, reg.AgentID, acct.ID, 1)
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		require.NoError(t, ts.jobs.RecordEvent(ctx, reg.AgentID, jobs[0].ID, models.EventActionStarted, "", time.Now()))
		return jobs[0].ID
	}

	t.Run("fails jobs past deadline plus grace", func(t *testing.T) {
		jobID := startJob(t, 1)

		// Backdate started_at past timeout+grace.
		err := ts.client.Job.UpdateOneID(jobID).
			SetStartedAt(time.Now().Add(-time.Minute)).
			Exec(ctx)
		require.NoError(t, err)

		reaped, err := ts.jobs.ReapStuckJobs(ctx, time.Second)
		require.NoError(t, err)
		assert.Equal(t, 1, reaped)

		got, err := ts.jobs.GetJob(ctx, jobID)
		require.NoError(t, err)
		assert.Equal(t, job.StateFAILED, got.State)
		require.NotNil(t, got.Edges.Result)
		require.NotNil(t, got.Edges.Result.FailureReason)
		assert.Equal(t, jobresult.FailureReasonTIMEOUT, *got.Edges.Result.FailureReason)
	})

	t.Run("late agent result beats the reaper", func(t *testing.T) {
		jobID := startJob(t, 1)
		err := ts.client.Job.UpdateOneID(jobID).
			SetStartedAt(time.Now().Add(-time.Minute)).
			Exec(ctx)
		require.NoError(t, err)

		// Agent reports success just before the reaper runs.
		_, _, err = ts.jobs.SubmitResult(ctx, reg.AgentID, jobID, models.SubmitResultParams{
			Status: "SUCCESS",
		})
		require.NoError(t, err)

		reaped, err := ts.jobs.ReapStuckJobs(ctx, time.Second)
		require.NoError(t, err)
		assert.Zero(t, reaped)

		got, err := ts.jobs.GetJob(ctx, jobID)
		require.NoError(t, err)
		assert.Equal(t, job.StateCOMPLETED, got.State)
		assert.Equal(t, jobresult.StatusSUCCESS, got.Edges.Result.Status)
	})

	t.Run("leaves jobs within deadline alone", func(t *testing.T) {
		jobID := startJob(t, 600)

		reaped, err := ts.jobs.ReapStuckJobs(ctx, time.Second)
		require.NoError(t, err)
		assert.Zero(t, reaped)

		got, err := ts.client.Job.Get(ctx, jobID)
		require.NoError(t, err)
		assert.Equal(t, job.StateEXECUTING, got.State)
	})
}

func TestJobService_AuditTrail(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()
	usr, acct := ts.seedAccount(t, ctx)
	reg := ts.seedAgent(t, ctx, usr.ID, acct.ID)

	row := ts.seedJob(t, ctx, acct.ID, usr.ID)
	jobs, err := ts.jobs.PullJobs(ctx, reg.AgentID, acct.ID, 1)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	require.NoError(t, ts.jobs.RecordEvent(ctx, reg.AgentID, row.ID, models.EventActionStarted, "", time.Now()))
	require.NoError(t, ts.jobs.RecordScreenshot(ctx, reg.AgentID, row.ID, models.ScreenshotBefore, "https://blobs.example.com/x.png"))
	_, _, err = ts.jobs.SubmitResult(ctx, reg.AgentID, row.ID, models.SubmitResultParams{Status: "SUCCESS"})
	require.NoError(t, err)

	entries, err := ts.client.AuditEntry.Query().
		Where(
			auditentry.EntityTypeEQ("job"),
			auditentry.EntityIDEQ(row.ID),
		).
		All(ctx)
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, e := range entries {
		seen[e.EventType] = true
	}
	for _, want := range []string{"job.created", "job.assigned", "job.event", "job.screenshot", "job.COMPLETED"} {
		assert.True(t, seen[want], "missing audit event %s", want)
	}
}

func TestJobService_ListJobs(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()
	usr, acct := ts.seedAccount(t, ctx)

	for i := 0; i < 3; i++ {
		ts.seedJob(t, ctx, acct.ID, usr.ID)
	}

	t.Run("filters by account and state", func(t *testing.T) {
		result, err := ts.jobs.ListJobs(ctx, models.JobFilters{
			AccountID: acct.ID,
			State:     "PENDING",
		})
		require.NoError(t, err)
		assert.Equal(t, 3, result.TotalCount)
		assert.Len(t, result.Jobs, 3)
	})

	t.Run("rejects invalid state filter", func(t *testing.T) {
		_, err := ts.jobs.ListJobs(ctx, models.JobFilters{State: "LIMBO"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("paginates", func(t *testing.T) {
		result, err := ts.jobs.ListJobs(ctx, models.JobFilters{
			AccountID: acct.ID,
			Limit:     2,
		})
		require.NoError(t, err)
		assert.Len(t, result.Jobs, 2)
		assert.Equal(t, 3, result.TotalCount)
	})
}

func TestJobService_GetJob(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()

	_, err := ts.jobs.GetJob(ctx, "missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}
