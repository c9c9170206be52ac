package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// getMyAgentHandler handles GET /api/v1/agents/me.
// Returns the live agent bound to the caller's account, with liveness.
func (s *Server) getMyAgentHandler(c *echo.Context) error {
	acct, err := s.accounts.GetByUserID(c.Request().Context(), contextUserID(c))
	if err != nil {
		return mapServiceError(err)
	}

	agentRow, err := s.agents.GetByAccountID(c.Request().Context(), acct.ID)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, agentRow)
}

// deregisterAgentHandler handles DELETE /api/v1/agents/me.
// Terminates the live agent and revokes its tokens.
func (s *Server) deregisterAgentHandler(c *echo.Context) error {
	acct, err := s.accounts.GetByUserID(c.Request().Context(), contextUserID(c))
	if err != nil {
		return mapServiceError(err)
	}

	agentRow, err := s.agents.GetByAccountID(c.Request().Context(), acct.ID)
	if err != nil {
		return mapServiceError(err)
	}

	if err := s.agents.Deregister(c.Request().Context(), agentRow.ID); err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "deregistered"})
}
