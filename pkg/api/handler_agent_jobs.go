package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/leadrelay/relay/ent"
	"github.com/leadrelay/relay/pkg/models"
)

// pullJobsHandler handles GET /agent/jobs.
// An empty batch is a normal response: it covers both "nothing eligible"
// and "execution currently disallowed".
func (s *Server) pullJobsHandler(c *echo.Context) error {
	if err := requireAccountScope(c, c.QueryParam("account_id")); err != nil {
		return err
	}

	maxBatch := 0
	if v := c.QueryParam("max_batch"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return badRequest("max_batch must be a positive integer")
		}
		maxBatch = n
	}

	jobs, err := s.jobs.PullJobs(c.Request().Context(), contextAgentID(c), contextAccountID(c), maxBatch)
	if err != nil {
		return mapServiceError(err)
	}

	out := make([]AgentJob, 0, len(jobs))
	for _, row := range jobs {
		out = append(out, agentJobProjection(row))
	}

	return c.JSON(http.StatusOK, &PullJobsResponse{Jobs: out})
}

// submitResultHandler handles POST /agent/jobs/:id/result.
// Idempotent: a duplicate submission returns the stored result with
// already_recorded=true and changes nothing.
func (s *Server) submitResultHandler(c *echo.Context) error {
	jobID := c.Param("id")
	if jobID == "" {
		return badRequest("job id is required")
	}

	var req SubmitResultRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(err.Error())
	}
	if req.Status == "" {
		return badRequest("status is required")
	}

	result, already, err := s.jobs.SubmitResult(c.Request().Context(), contextAgentID(c), jobID, models.SubmitResultParams{
		Status:        req.Status,
		FailureReason: req.FailureReason,
		ObservedState: req.Metadata.ObservedState,
	})
	if err != nil {
		return mapServiceError(err)
	}

	resp := &SubmitResultResponse{
		JobID:           result.JobID,
		Status:          string(result.Status),
		AlreadyRecorded: already,
	}
	if result.FailureReason != nil {
		resp.FailureReason = string(*result.FailureReason)
	}
	if result.ObservedState != nil {
		resp.ObservedState = string(*result.ObservedState)
	}

	return c.JSON(http.StatusOK, resp)
}

// agentEventHandler handles POST /agent/events.
func (s *Server) agentEventHandler(c *echo.Context) error {
	var req AgentEventRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(err.Error())
	}
	if req.JobID == "" {
		return badRequest("job_id is required")
	}
	if req.EventType == "" {
		return badRequest("event_type is required")
	}

	err := s.jobs.RecordEvent(c.Request().Context(), contextAgentID(c), req.JobID, req.EventType, req.Message, req.Timestamp)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusAccepted, map[string]string{"status": "recorded"})
}

// agentScreenshotHandler handles POST /agent/screenshots.
func (s *Server) agentScreenshotHandler(c *echo.Context) error {
	var req ScreenshotRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(err.Error())
	}
	if req.JobID == "" {
		return badRequest("job_id is required")
	}

	err := s.jobs.RecordScreenshot(c.Request().Context(), contextAgentID(c), req.JobID, req.Stage, req.ImageURL)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusAccepted, map[string]string{"status": "recorded"})
}

func agentJobProjection(row *ent.Job) AgentJob {
	return AgentJob{
		JobID:                 row.ID,
		Type:                  string(row.Type),
		LeadID:                row.LeadID,
		Parameters:            row.Parameters,
		EarliestExecutionTime: row.EarliestExecutionTime,
		TimeoutSeconds:        row.TimeoutSeconds,
	}
}
