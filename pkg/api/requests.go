package api

import "time"

// RegisterAgentRequest is the body of POST /agent/register.
type RegisterAgentRequest struct {
	UserID       string `json:"user_id"`
	AccountID    string `json:"account_id"`
	AgentVersion string `json:"agent_version"`
	Platform     string `json:"platform"`
}

// HeartbeatRequest is the body of POST /agent/heartbeat.
type HeartbeatRequest struct {
	AccountID    string `json:"account_id"`
	Status       string `json:"status"`
	CurrentJobID string `json:"current_job_id,omitempty"`
}

// SubmitResultRequest is the body of POST /agent/jobs/:id/result.
type SubmitResultRequest struct {
	Status        string         `json:"status"`
	FailureReason string         `json:"failure_reason,omitempty"`
	Metadata      ResultMetadata `json:"metadata,omitempty"`
}

// ResultMetadata carries optional agent observations alongside a result.
type ResultMetadata struct {
	ObservedState string `json:"observed_state,omitempty"`
}

// AgentEventRequest is the body of POST /agent/events.
type AgentEventRequest struct {
	JobID     string    `json:"job_id"`
	EventType string    `json:"event_type"`
	Message   string    `json:"message,omitempty"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// ScreenshotRequest is the body of POST /agent/screenshots.
type ScreenshotRequest struct {
	JobID    string `json:"job_id"`
	Stage    string `json:"stage"`
	ImageURL string `json:"image_url"`
}

// CreateAccountRequest is the body of POST /api/v1/accounts.
type CreateAccountRequest struct {
	ProfileURL  string `json:"profile_url"`
	DisplayName string `json:"display_name"`
}

// CreateJobRequest is the body of POST /api/v1/jobs.
type CreateJobRequest struct {
	Type                  string                 `json:"type"`
	Parameters            map[string]interface{} `json:"parameters"`
	LeadID                string                 `json:"lead_id,omitempty"`
	Priority              int                    `json:"priority,omitempty"`
	EarliestExecutionTime *time.Time             `json:"earliest_execution_time,omitempty"`
	TimeoutSeconds        int                    `json:"timeout_seconds,omitempty"`
}

// AcknowledgeViolationRequest is the body of POST /api/v1/risk/acknowledge.
type AcknowledgeViolationRequest struct {
	ViolationID string `json:"violation_id"`
}
