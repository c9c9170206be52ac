package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPullJobsHandler_Validation(t *testing.T) {
	s := &Server{}

	tests := []struct {
		name  string
		query string
	}{
		{name: "non-numeric max_batch", query: "max_batch=lots"},
		{name: "zero max_batch", query: "max_batch=0"},
		{name: "negative max_batch", query: "max_batch=-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newJSONContext(t, http.MethodGet, "/agent/jobs?"+tt.query, "")
			err := s.pullJobsHandler(c)
			requireAPIError(t, err, http.StatusBadRequest, CodeInvalidRequest)
		})
	}
}

func TestSubmitResultHandler_Validation(t *testing.T) {
	s := &Server{}

	t.Run("missing job id", func(t *testing.T) {
		c, _ := newJSONContext(t, http.MethodPost, "/agent/jobs//result", `{"status":"SUCCESS"}`)
		err := s.submitResultHandler(c)
		requireAPIError(t, err, http.StatusBadRequest, CodeInvalidRequest)
	})

	t.Run("missing status", func(t *testing.T) {
		// Through the router so :id is bound.
		e := echo.New()
		e.HTTPErrorHandler = errorHandler()
		e.POST("/agent/jobs/:id/result", s.submitResultHandler)

		req := httptest.NewRequest(http.MethodPost, "/agent/jobs/j-1/result", strings.NewReader(`{}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var body ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, CodeInvalidRequest, body.ErrorCode)
	})
}

func TestAgentEventHandler_Validation(t *testing.T) {
	s := &Server{}

	tests := []struct {
		name string
		body string
	}{
		{name: "missing job_id", body: `{"event_type":"ACTION_STARTED"}`},
		{name: "missing event_type", body: `{"job_id":"j-1"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newJSONContext(t, http.MethodPost, "/agent/events", tt.body)
			err := s.agentEventHandler(c)
			requireAPIError(t, err, http.StatusBadRequest, CodeInvalidRequest)
		})
	}
}

func TestAgentScreenshotHandler_Validation(t *testing.T) {
	s := &Server{}

	c, _ := newJSONContext(t, http.MethodPost, "/agent/screenshots", `{"stage":"BEFORE"}`)
	err := s.agentScreenshotHandler(c)
	requireAPIError(t, err, http.StatusBadRequest, CodeInvalidRequest)
}
