package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// riskScoreHandler handles GET /api/v1/risk/score.
// Recomputes the score so the caller always sees a fresh value, and
// includes the current execution verdict.
func (s *Server) riskScoreHandler(c *echo.Context) error {
	acct, err := s.accounts.GetByUserID(c.Request().Context(), contextUserID(c))
	if err != nil {
		return mapServiceError(err)
	}

	score, err := s.risk.CalculateRiskScore(c.Request().Context(), acct.ID)
	if err != nil {
		return mapServiceError(err)
	}

	verdict, err := s.risk.IsExecutionAllowed(c.Request().Context(), acct.ID)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &RiskScoreResponse{
		Score: score,
		Verdict: VerdictResponse{
			Allowed: verdict.Allowed,
			Reason:  string(verdict.Reason),
		},
	})
}

// listViolationsHandler handles GET /api/v1/risk/violations.
func (s *Server) listViolationsHandler(c *echo.Context) error {
	acct, err := s.accounts.GetByUserID(c.Request().Context(), contextUserID(c))
	if err != nil {
		return mapServiceError(err)
	}

	unresolvedOnly := c.QueryParam("unresolved") == "true"
	violations, err := s.risk.ListViolations(c.Request().Context(), acct.ID, unresolvedOnly)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, violations)
}

// acknowledgeViolationHandler handles POST /api/v1/risk/acknowledge.
func (s *Server) acknowledgeViolationHandler(c *echo.Context) error {
	var req AcknowledgeViolationRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(err.Error())
	}
	if req.ViolationID == "" {
		return badRequest("violation_id is required")
	}

	acct, err := s.accounts.GetByUserID(c.Request().Context(), contextUserID(c))
	if err != nil {
		return mapServiceError(err)
	}

	v, err := s.risk.GetViolation(c.Request().Context(), req.ViolationID)
	if err != nil {
		return mapServiceError(err)
	}
	if v.AccountID != acct.ID {
		return newAPIError(http.StatusForbidden, CodeForbidden, "violation belongs to a different account")
	}

	v, err = s.risk.AcknowledgeViolation(c.Request().Context(), req.ViolationID)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, v)
}
