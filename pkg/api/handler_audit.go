package api

import (
	"net/http"
	"strconv"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/leadrelay/relay/pkg/models"
)

// auditQueryHandler handles GET /api/v1/audit.
func (s *Server) auditQueryHandler(c *echo.Context) error {
	filters := models.AuditFilters{
		Domain:     c.QueryParam("domain"),
		EventType:  c.QueryParam("event_type"),
		EntityType: c.QueryParam("entity_type"),
		EntityID:   c.QueryParam("entity_id"),
	}

	if v := c.QueryParam("since"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return badRequest("invalid since: must be RFC3339")
		}
		filters.Since = &t
	}
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return badRequest("limit must be a positive integer")
		}
		filters.Limit = n
	}

	entries, err := s.audit.Query(c.Request().Context(), filters)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, entries)
}
