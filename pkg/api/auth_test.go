package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{
			name:     "no header",
			header:   "",
			expected: "",
		},
		{
			name:     "standard bearer",
			header:   "Bearer abc123",
			expected: "abc123",
		},
		{
			name:     "lowercase scheme accepted",
			header:   "bearer abc123",
			expected: "abc123",
		},
		{
			name:     "wrong scheme rejected",
			header:   "Basic abc123",
			expected: "",
		},
		{
			name:     "scheme without token",
			header:   "Bearer",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			assert.Equal(t, tt.expected, bearerToken(c))
		})
	}
}

func TestRequireAccountScope(t *testing.T) {
	newCtx := func(tokenAccountID string) *echo.Context {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set(ctxAccountID, tokenAccountID)
		return c
	}

	t.Run("empty means the token's own account", func(t *testing.T) {
		assert.NoError(t, requireAccountScope(newCtx("acct-1"), ""))
	})

	t.Run("matching account passes", func(t *testing.T) {
		assert.NoError(t, requireAccountScope(newCtx("acct-1"), "acct-1"))
	})

	t.Run("foreign account is rejected", func(t *testing.T) {
		err := requireAccountScope(newCtx("acct-1"), "acct-2")
		require.Error(t, err)

		apiErr, ok := err.(*apiError)
		require.True(t, ok)
		assert.Equal(t, http.StatusForbidden, apiErr.Status)
		assert.Equal(t, CodeForbidden, apiErr.Code)
	})
}
