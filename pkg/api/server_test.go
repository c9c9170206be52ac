package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadrelay/relay/pkg/services"
	"github.com/leadrelay/relay/test/util"
)

// e2eEnv serves the full route table over a per-test schema.
type e2eEnv struct {
	handler  http.Handler
	identity *services.IdentityService
}

func newE2EEnv(t *testing.T) *e2eEnv {
	client, _ := util.SetupTestDatabase(t)

	audit := services.NewAuditService(client)
	identity := services.NewIdentityService(client)
	accounts := services.NewAccountService(client, audit)
	risk := services.NewRiskService(client, accounts, audit)
	agents := services.NewAgentService(client, risk, audit, services.AgentServiceConfig{})
	jobs := services.NewJobService(client, accounts, identity, risk, audit, services.JobServiceConfig{})

	srv := NewServer(nil, identity, accounts, agents, risk, jobs, audit)
	return &e2eEnv{handler: srv.Handler(), identity: identity}
}

func (env *e2eEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, rdr)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func TestServer_EndToEnd(t *testing.T) {
	env := newE2EEnv(t)
	ctx := context.Background()

	const userToken = "user-token-e2e"
	usr, err := env.identity.EnsureUser(ctx, "e2e@example.com", userToken)
	require.NoError(t, err)

	t.Run("healthz is unhealthy without a database handle", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/healthz", "", nil)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var body HealthResponse
		decode(t, rec, &body)
		assert.Equal(t, "unhealthy", body.Status)
	})

	t.Run("control plane rejects missing bearer", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/v1/accounts/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		var body ErrorResponse
		decode(t, rec, &body)
		assert.Equal(t, CodeUnauthorized, body.ErrorCode)
	})

	var accountID string
	t.Run("create account", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/v1/accounts", userToken, CreateAccountRequest{
			ProfileURL:  "https://example.com/in/e2e",
			DisplayName: "E2E",
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var acct struct {
			ID string `json:"id"`
		}
		decode(t, rec, &acct)
		require.NotEmpty(t, acct.ID)
		accountID = acct.ID
	})

	var agentToken string
	t.Run("register agent", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/agent/register", "", RegisterAgentRequest{
			UserID:       usr.ID,
			AccountID:    accountID,
			AgentVersion: "1.0.0",
			Platform:     "darwin",
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var reg RegisterAgentResponse
		decode(t, rec, &reg)
		require.NotEmpty(t, reg.AgentToken)
		assert.Equal(t, accountID, reg.AccountID)
		assert.Positive(t, reg.PollIntervalSeconds)
		agentToken = reg.AgentToken
	})

	t.Run("agent plane rejects a user token", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/agent/jobs", userToken, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	var jobID string
	t.Run("create job", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/v1/jobs", userToken, CreateJobRequest{
			Type:       "VISIT_PROFILE",
			Parameters: map[string]interface{}{"profile_url": "https://example.com/in/target"},
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var row struct {
			ID    string `json:"id"`
			State string `json:"state"`
		}
		decode(t, rec, &row)
		require.NotEmpty(t, row.ID)
		assert.Equal(t, "PENDING", row.State)
		jobID = row.ID
	})

	t.Run("pull assigns the job", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/agent/jobs", agentToken, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var batch PullJobsResponse
		decode(t, rec, &batch)
		require.Len(t, batch.Jobs, 1)
		assert.Equal(t, jobID, batch.Jobs[0].JobID)
		assert.Equal(t, "VISIT_PROFILE", batch.Jobs[0].Type)
	})

	t.Run("action started event", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/agent/events", agentToken, AgentEventRequest{
			JobID:     jobID,
			EventType: "ACTION_STARTED",
			Timestamp: time.Now(),
		})
		assert.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
	})

	t.Run("submit result is idempotent", func(t *testing.T) {
		body := SubmitResultRequest{Status: "SUCCESS"}

		rec := env.do(t, http.MethodPost, "/agent/jobs/"+jobID+"/result", agentToken, body)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var first SubmitResultResponse
		decode(t, rec, &first)
		assert.Equal(t, "SUCCESS", first.Status)
		assert.False(t, first.AlreadyRecorded)

		rec = env.do(t, http.MethodPost, "/agent/jobs/"+jobID+"/result", agentToken, body)
		require.Equal(t, http.StatusOK, rec.Code)

		var second SubmitResultResponse
		decode(t, rec, &second)
		assert.True(t, second.AlreadyRecorded)
		assert.Equal(t, first.JobID, second.JobID)
	})

	t.Run("job is finalized on the control plane", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/v1/jobs/"+jobID, userToken, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp struct {
			Job struct {
				State string `json:"state"`
			} `json:"job"`
			Result *struct {
				Status string `json:"status"`
			} `json:"result"`
		}
		decode(t, rec, &resp)
		assert.Equal(t, "COMPLETED", resp.Job.State)
		require.NotNil(t, resp.Result)
		assert.Equal(t, "SUCCESS", resp.Result.Status)
	})

	t.Run("foreign user cannot read the job", func(t *testing.T) {
		const otherToken = "other-user-token"
		_, err := env.identity.EnsureUser(ctx, "other@example.com", otherToken)
		require.NoError(t, err)

		rec := env.do(t, http.MethodGet, "/api/v1/jobs/"+jobID, otherToken, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)

		var body ErrorResponse
		decode(t, rec, &body)
		assert.Equal(t, CodeForbidden, body.ErrorCode)
	})

	t.Run("pause flips the control-state verdict", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/v1/accounts/"+accountID+"/pause", userToken, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		rec = env.do(t, http.MethodGet, "/agent/control-state", agentToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var state ControlStateResponse
		decode(t, rec, &state)
		assert.False(t, state.ExecutionAllowed)
		assert.Equal(t, "USER_PAUSED", state.Reason)

		// Heartbeat carries the same verdict.
		rec = env.do(t, http.MethodPost, "/agent/heartbeat", agentToken, HeartbeatRequest{Status: "IDLE"})
		require.Equal(t, http.StatusOK, rec.Code)

		var verdict VerdictResponse
		decode(t, rec, &verdict)
		assert.False(t, verdict.Allowed)

		// And the pull returns an empty batch, not an error.
		rec = env.do(t, http.MethodGet, "/agent/jobs", agentToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var batch PullJobsResponse
		decode(t, rec, &batch)
		assert.Empty(t, batch.Jobs)
	})
}
