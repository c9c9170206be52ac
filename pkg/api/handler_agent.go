package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/leadrelay/relay/pkg/models"
)

// registerAgentHandler handles POST /agent/register.
// Trust bootstrap: authenticated by the validated (user, account)
// association in the body, not by an agent token. An accepted registration
// rotates the account's agent token.
func (s *Server) registerAgentHandler(c *echo.Context) error {
	var req RegisterAgentRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(err.Error())
	}
	if req.UserID == "" {
		return badRequest("user_id is required")
	}
	if req.AccountID == "" {
		return badRequest("account_id is required")
	}

	reg, err := s.agents.Register(c.Request().Context(), models.RegisterParams{
		UserID:       req.UserID,
		AccountID:    req.AccountID,
		AgentVersion: req.AgentVersion,
		Platform:     req.Platform,
	})
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusCreated, &RegisterAgentResponse{
		AgentID:             reg.AgentID,
		AccountID:           reg.AccountID,
		AgentToken:          reg.Token,
		PollIntervalSeconds: reg.PollIntervalSeconds,
	})
}

// heartbeatHandler handles POST /agent/heartbeat.
// Returns the execution verdict so agents learn about pauses on their next
// beat without a separate poll.
func (s *Server) heartbeatHandler(c *echo.Context) error {
	var req HeartbeatRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(err.Error())
	}
	if err := requireAccountScope(c, req.AccountID); err != nil {
		return err
	}

	verdict, err := s.agents.Heartbeat(
		c.Request().Context(),
		contextAgentID(c),
		contextAccountID(c),
		req.Status,
		req.CurrentJobID,
	)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &VerdictResponse{
		Allowed: verdict.Allowed,
		Reason:  string(verdict.Reason),
	})
}

// controlStateHandler handles GET /agent/control-state.
// Read-only verdict probe; unlike heartbeat it changes no agent state.
func (s *Server) controlStateHandler(c *echo.Context) error {
	if err := requireAccountScope(c, c.QueryParam("account_id")); err != nil {
		return err
	}

	verdict, err := s.risk.IsExecutionAllowed(c.Request().Context(), contextAccountID(c))
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &ControlStateResponse{
		ExecutionAllowed: verdict.Allowed,
		Reason:           string(verdict.Reason),
	})
}
