package api

import (
	"net/http"
	"testing"
)

func TestAuditQueryHandler_Validation(t *testing.T) {
	s := &Server{}

	tests := []struct {
		name  string
		query string
	}{
		{name: "since not RFC3339", query: "since=2024-01-01"},
		{name: "non-numeric limit", query: "limit=many"},
		{name: "zero limit", query: "limit=0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newJSONContext(t, http.MethodGet, "/api/v1/audit?"+tt.query, "")
			err := s.auditQueryHandler(c)
			requireAPIError(t, err, http.StatusBadRequest, CodeInvalidRequest)
		})
	}
}
