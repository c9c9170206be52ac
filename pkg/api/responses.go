package api

import (
	"time"

	"github.com/leadrelay/relay/ent"
	"github.com/leadrelay/relay/pkg/database"
)

// RegisterAgentResponse is returned by POST /agent/register. The token is
// shown exactly once; only its hash is stored.
type RegisterAgentResponse struct {
	AgentID             string `json:"agent_id"`
	AccountID           string `json:"account_id"`
	AgentToken          string `json:"agent_token"`
	PollIntervalSeconds int    `json:"poll_interval_seconds"`
}

// VerdictResponse is returned by the heartbeat endpoint.
type VerdictResponse struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

// ControlStateResponse is returned by GET /agent/control-state. Same verdict
// contract as heartbeat under the read-only probe's field name.
type ControlStateResponse struct {
	ExecutionAllowed bool   `json:"execution_allowed"`
	Reason           string `json:"reason,omitempty"`
}

// AgentJob is the agent-facing projection of an assigned job.
type AgentJob struct {
	JobID                 string                 `json:"job_id"`
	Type                  string                 `json:"type"`
	LeadID                string                 `json:"lead_id,omitempty"`
	Parameters            map[string]interface{} `json:"parameters"`
	EarliestExecutionTime time.Time              `json:"earliest_execution_time"`
	TimeoutSeconds        int                    `json:"timeout_seconds"`
}

// PullJobsResponse is returned by GET /agent/jobs.
type PullJobsResponse struct {
	Jobs []AgentJob `json:"jobs"`
}

// SubmitResultResponse is returned by POST /agent/jobs/:id/result.
type SubmitResultResponse struct {
	JobID           string `json:"job_id"`
	Status          string `json:"status"`
	FailureReason   string `json:"failure_reason,omitempty"`
	ObservedState   string `json:"observed_state,omitempty"`
	AlreadyRecorded bool   `json:"already_recorded"`
}

// JobResponse is the control-plane projection of a job.
type JobResponse struct {
	Job    *ent.Job       `json:"job"`
	Result *ent.JobResult `json:"result,omitempty"`
}

// RiskScoreResponse is returned by GET /api/v1/risk/score.
type RiskScoreResponse struct {
	Score   *ent.RiskScore  `json:"score"`
	Verdict VerdictResponse `json:"verdict"`
}

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	Status   string                 `json:"status"`
	Version  string                 `json:"version"`
	Database *database.HealthStatus `json:"database,omitempty"`
}
