package models

import (
	"time"

	"github.com/leadrelay/relay/ent"
)

// CreateJobParams carries everything needed to enqueue a job.
type CreateJobParams struct {
	AccountID             string
	CreatedByUserID       string
	Type                  string
	Parameters            map[string]interface{}
	LeadID                string
	Priority              int
	EarliestExecutionTime time.Time
	TimeoutSeconds        int
}

// SubmitResultParams is the factual outcome an agent reports for a job.
type SubmitResultParams struct {
	Status        string // SUCCESS, FAILED, SKIPPED
	FailureReason string // UI_CHANGED, TIMEOUT, SESSION_EXPIRED, UNKNOWN
	ObservedState string // CONNECTED, PENDING, NONE
}

// JobFilters narrows control-plane job listings.
type JobFilters struct {
	AccountID string
	State     string
	Type      string
	Limit     int
	Offset    int
}

// JobListResponse is a paginated job listing.
type JobListResponse struct {
	Jobs       []*ent.Job `json:"jobs"`
	TotalCount int        `json:"total_count"`
	Limit      int        `json:"limit"`
	Offset     int        `json:"offset"`
}

// Agent-reported job event types.
const (
	EventActionStarted   = "ACTION_STARTED"
	EventActionCompleted = "ACTION_COMPLETED"
	EventWarning         = "WARNING"
	EventInfo            = "INFO"
)

// Screenshot stages.
const (
	ScreenshotBefore  = "BEFORE"
	ScreenshotAfter   = "AFTER"
	ScreenshotFailure = "FAILURE"
)
