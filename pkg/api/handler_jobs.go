package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/leadrelay/relay/pkg/models"
)

// createJobHandler handles POST /api/v1/jobs.
func (s *Server) createJobHandler(c *echo.Context) error {
	var req CreateJobRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(err.Error())
	}
	if req.Type == "" {
		return badRequest("type is required")
	}

	acct, err := s.accounts.GetByUserID(c.Request().Context(), contextUserID(c))
	if err != nil {
		return mapServiceError(err)
	}

	params := models.CreateJobParams{
		AccountID:       acct.ID,
		CreatedByUserID: contextUserID(c),
		Type:            req.Type,
		Parameters:      req.Parameters,
		LeadID:          req.LeadID,
		Priority:        req.Priority,
		TimeoutSeconds:  req.TimeoutSeconds,
	}
	if req.EarliestExecutionTime != nil {
		params.EarliestExecutionTime = *req.EarliestExecutionTime
	}

	row, err := s.jobs.CreateJob(c.Request().Context(), params)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusCreated, row)
}

// listJobsHandler handles GET /api/v1/jobs. Scoped to the caller's account.
func (s *Server) listJobsHandler(c *echo.Context) error {
	acct, err := s.accounts.GetByUserID(c.Request().Context(), contextUserID(c))
	if err != nil {
		return mapServiceError(err)
	}

	filters := models.JobFilters{
		AccountID: acct.ID,
		State:     c.QueryParam("state"),
		Type:      c.QueryParam("type"),
	}
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return badRequest("limit must be a positive integer")
		}
		filters.Limit = n
	}
	if v := c.QueryParam("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return badRequest("offset must be a non-negative integer")
		}
		filters.Offset = n
	}

	result, err := s.jobs.ListJobs(c.Request().Context(), filters)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, result)
}

// getJobHandler handles GET /api/v1/jobs/:id.
func (s *Server) getJobHandler(c *echo.Context) error {
	jobID := c.Param("id")
	if jobID == "" {
		return badRequest("job id is required")
	}

	row, err := s.jobs.GetJob(c.Request().Context(), jobID)
	if err != nil {
		return mapServiceError(err)
	}

	// Ownership: the job's account must belong to the caller.
	if _, err := s.requireOwnAccount(c, row.AccountID); err != nil {
		return err
	}

	resp := &JobResponse{Job: row}
	if row.Edges.Result != nil {
		resp.Result = row.Edges.Result
	}

	return c.JSON(http.StatusOK, resp)
}
