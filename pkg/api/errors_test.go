package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadrelay/relay/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectStatus int
		expectCode   string
		expectMsg    string
	}{
		{
			name:         "validation error maps to 400",
			err:          services.NewValidationError("type", "unknown job type"),
			expectStatus: http.StatusBadRequest,
			expectCode:   CodeInvalidRequest,
			expectMsg:    "unknown job type",
		},
		{
			name:         "unauthorized maps to 401",
			err:          fmt.Errorf("wrapped: %w", services.ErrUnauthorized),
			expectStatus: http.StatusUnauthorized,
			expectCode:   CodeUnauthorized,
			expectMsg:    "authentication required",
		},
		{
			name:         "forbidden maps to 403",
			err:          services.ErrForbidden,
			expectStatus: http.StatusForbidden,
			expectCode:   CodeForbidden,
			expectMsg:    "access denied",
		},
		{
			name:         "not found maps to 404",
			err:          fmt.Errorf("wrapped: %w", services.ErrNotFound),
			expectStatus: http.StatusNotFound,
			expectCode:   CodeNotFound,
			expectMsg:    "resource not found",
		},
		{
			name:         "already exists maps to 409",
			err:          services.ErrAlreadyExists,
			expectStatus: http.StatusConflict,
			expectCode:   CodeInvalidState,
			expectMsg:    "resource already exists",
		},
		{
			name:         "invalid state maps to 400",
			err:          services.ErrInvalidState,
			expectStatus: http.StatusBadRequest,
			expectCode:   CodeInvalidState,
			expectMsg:    "not valid in the current state",
		},
		{
			name:         "risk paused maps to 503",
			err:          services.ErrRiskPaused,
			expectStatus: http.StatusServiceUnavailable,
			expectCode:   CodeRiskPaused,
			expectMsg:    "paused",
		},
		{
			name:         "unknown error maps to 500",
			err:          fmt.Errorf("something unexpected happened"),
			expectStatus: http.StatusInternalServerError,
			expectCode:   CodeInternalError,
			expectMsg:    "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := mapServiceError(tt.err)
			assert.Equal(t, tt.expectStatus, apiErr.Status)
			assert.Equal(t, tt.expectCode, apiErr.Code)
			assert.Contains(t, apiErr.Error(), tt.expectMsg)
		})
	}
}

func TestErrorHandler(t *testing.T) {
	serve := func(t *testing.T, err error) (int, ErrorResponse) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		errorHandler()(c, err)

		var body ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		return rec.Code, body
	}

	t.Run("serializes apiError into the envelope", func(t *testing.T) {
		status, body := serve(t, newAPIError(http.StatusForbidden, CodeForbidden, "access denied"))
		assert.Equal(t, http.StatusForbidden, status)
		assert.Equal(t, CodeForbidden, body.ErrorCode)
		assert.Equal(t, "access denied", body.Message)
	})

	t.Run("converts echo.HTTPError", func(t *testing.T) {
		status, body := serve(t, echo.NewHTTPError(http.StatusNotFound, "no such route"))
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, CodeNotFound, body.ErrorCode)
		assert.Equal(t, "no such route", body.Message)
	})

	t.Run("unknown errors become 500 INTERNAL_ERROR", func(t *testing.T) {
		status, body := serve(t, fmt.Errorf("boom"))
		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, CodeInternalError, body.ErrorCode)
		assert.Equal(t, "internal server error", body.Message)
	})
}

func TestCodeForStatus(t *testing.T) {
	assert.Equal(t, CodeInvalidRequest, codeForStatus(http.StatusBadRequest))
	assert.Equal(t, CodeUnauthorized, codeForStatus(http.StatusUnauthorized))
	assert.Equal(t, CodeRateLimited, codeForStatus(http.StatusTooManyRequests))
	assert.Equal(t, CodeInternalError, codeForStatus(http.StatusTeapot))
}
