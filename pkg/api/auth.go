package api

import (
	"net/http"
	"strings"

	echo "github.com/labstack/echo/v5"
)

// Context keys set by the auth middlewares.
const (
	ctxUserID    = "auth.user_id"
	ctxAgentID   = "auth.agent_id"
	ctxAccountID = "auth.account_id"
)

// bearerToken extracts the bearer token from the Authorization header.
func bearerToken(c *echo.Context) string {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// userAuth authenticates control-plane requests with a user bearer token.
func (s *Server) userAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c *echo.Context) error {
		token := bearerToken(c)
		if token == "" {
			return newAPIError(http.StatusUnauthorized, CodeUnauthorized, "bearer token required")
		}

		usr, err := s.identity.ResolveBearer(c.Request().Context(), token)
		if err != nil {
			return mapServiceError(err)
		}

		c.Set(ctxUserID, usr.ID)
		return next(c)
	}
}

// agentAuth authenticates agent-plane requests with an agent bearer token
// and binds the token's (agent, account) scope to the request context.
func (s *Server) agentAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c *echo.Context) error {
		token := bearerToken(c)
		if token == "" {
			return newAPIError(http.StatusUnauthorized, CodeUnauthorized, "agent token required")
		}

		agentID, accountID, err := s.agents.ValidateToken(c.Request().Context(), token)
		if err != nil {
			return mapServiceError(err)
		}

		c.Set(ctxAgentID, agentID)
		c.Set(ctxAccountID, accountID)
		return next(c)
	}
}

func contextUserID(c *echo.Context) string {
	id, _ := c.Get(ctxUserID).(string)
	return id
}

func contextAgentID(c *echo.Context) string {
	id, _ := c.Get(ctxAgentID).(string)
	return id
}

func contextAccountID(c *echo.Context) string {
	id, _ := c.Get(ctxAccountID).(string)
	return id
}

// requireAccountScope rejects agent-plane requests that reference an
// account other than the one the token is scoped to. Empty means "the
// token's own account".
func requireAccountScope(c *echo.Context, accountID string) error {
	if accountID != "" && accountID != contextAccountID(c) {
		return newAPIError(http.StatusForbidden, CodeForbidden, "token is not scoped to this account")
	}
	return nil
}
