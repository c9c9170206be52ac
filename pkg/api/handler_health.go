package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/leadrelay/relay/pkg/database"
	"github.com/leadrelay/relay/pkg/version"
)

// healthHandler handles GET /healthz.
// Minimal and unauthenticated; only the database is checked so external
// orchestration never restarts the service over a collaborator's outage.
func (s *Server) healthHandler(c *echo.Context) error {
	if s.dbClient == nil {
		return c.JSON(http.StatusServiceUnavailable, &HealthResponse{
			Status:  "unhealthy",
			Version: version.GitCommit,
		})
	}

	reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(reqCtx, s.dbClient.DB())
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, &HealthResponse{
			Status:   "unhealthy",
			Version:  version.GitCommit,
			Database: dbHealth,
		})
	}

	return c.JSON(http.StatusOK, &HealthResponse{
		Status:   "healthy",
		Version:  version.GitCommit,
		Database: dbHealth,
	})
}
