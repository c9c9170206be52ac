package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJSONContext(t *testing.T, method, target, body string) (*echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return c, rec
}

func requireAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()
	require.Error(t, err)
	apiErr, ok := err.(*apiError)
	require.True(t, ok, "expected *apiError, got %T", err)
	assert.Equal(t, status, apiErr.Status)
	assert.Equal(t, code, apiErr.Code)
}

func TestRegisterAgentHandler_Validation(t *testing.T) {
	// Validation only; the happy path needs a real service and is covered by
	// the service-level tests.
	s := &Server{}

	tests := []struct {
		name string
		body string
	}{
		{
			name: "missing user_id",
			body: `{"account_id":"acct-1"}`,
		},
		{
			name: "missing account_id",
			body: `{"user_id":"u-1"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newJSONContext(t, http.MethodPost, "/agent/register", tt.body)
			err := s.registerAgentHandler(c)
			requireAPIError(t, err, http.StatusBadRequest, CodeInvalidRequest)
		})
	}
}

func TestHeartbeatHandler_Scope(t *testing.T) {
	s := &Server{}

	c, _ := newJSONContext(t, http.MethodPost, "/agent/heartbeat", `{"account_id":"acct-other","status":"IDLE"}`)
	c.Set(ctxAccountID, "acct-1")

	err := s.heartbeatHandler(c)
	requireAPIError(t, err, http.StatusForbidden, CodeForbidden)
}

func TestControlStateHandler_Scope(t *testing.T) {
	s := &Server{}

	c, _ := newJSONContext(t, http.MethodGet, "/agent/control-state?account_id=acct-other", "")
	c.Set(ctxAccountID, "acct-1")

	err := s.controlStateHandler(c)
	requireAPIError(t, err, http.StatusForbidden, CodeForbidden)
}
