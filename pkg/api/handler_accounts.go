package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/leadrelay/relay/ent"
)

// requireOwnAccount loads an account and rejects callers who do not own it.
func (s *Server) requireOwnAccount(c *echo.Context, accountID string) (*ent.Account, error) {
	acct, err := s.accounts.GetByID(c.Request().Context(), accountID)
	if err != nil {
		return nil, mapServiceError(err)
	}
	if acct.UserID != contextUserID(c) {
		return nil, newAPIError(http.StatusForbidden, CodeForbidden, "account belongs to a different user")
	}
	return acct, nil
}

// createAccountHandler handles POST /api/v1/accounts.
func (s *Server) createAccountHandler(c *echo.Context) error {
	var req CreateAccountRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(err.Error())
	}

	acct, err := s.accounts.CreateAccount(c.Request().Context(), contextUserID(c), req.ProfileURL, req.DisplayName)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusCreated, acct)
}

// getMyAccountHandler handles GET /api/v1/accounts/me.
func (s *Server) getMyAccountHandler(c *echo.Context) error {
	acct, err := s.accounts.GetByUserID(c.Request().Context(), contextUserID(c))
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, acct)
}

// pauseAccountHandler handles POST /api/v1/accounts/:id/pause.
func (s *Server) pauseAccountHandler(c *echo.Context) error {
	return s.setPaused(c, true)
}

// resumeAccountHandler handles POST /api/v1/accounts/:id/resume.
func (s *Server) resumeAccountHandler(c *echo.Context) error {
	return s.setPaused(c, false)
}

func (s *Server) setPaused(c *echo.Context, paused bool) error {
	accountID := c.Param("id")
	if accountID == "" {
		return badRequest("account id is required")
	}
	if _, err := s.requireOwnAccount(c, accountID); err != nil {
		return err
	}

	acct, err := s.accounts.SetUserPaused(c.Request().Context(), accountID, paused)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, acct)
}

// sessionValidHandler handles POST /api/v1/accounts/:id/session-valid.
// Reports a freshly observed valid platform session.
func (s *Server) sessionValidHandler(c *echo.Context) error {
	accountID := c.Param("id")
	if accountID == "" {
		return badRequest("account id is required")
	}
	if _, err := s.requireOwnAccount(c, accountID); err != nil {
		return err
	}

	acct, err := s.accounts.MarkSessionValid(c.Request().Context(), accountID)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, acct)
}
