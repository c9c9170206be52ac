// Package api exposes the two HTTP planes: the agent plane under /agent
// (desktop agents, agent bearer tokens) and the control plane under
// /api/v1 (users, user bearer tokens).
package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/leadrelay/relay/pkg/database"
	"github.com/leadrelay/relay/pkg/metrics"
	"github.com/leadrelay/relay/pkg/services"
)

// Server wires the domain services to the HTTP routes.
type Server struct {
	dbClient *database.Client

	identity *services.IdentityService
	accounts *services.AccountService
	agents   *services.AgentService
	risk     *services.RiskService
	jobs     *services.JobService
	audit    *services.AuditService

	echo *echo.Echo
	http *http.Server
}

// NewServer creates the API server and registers all routes.
func NewServer(
	dbClient *database.Client,
	identity *services.IdentityService,
	accounts *services.AccountService,
	agents *services.AgentService,
	risk *services.RiskService,
	jobs *services.JobService,
	audit *services.AuditService,
) *Server {
	s := &Server{
		dbClient: dbClient,
		identity: identity,
		accounts: accounts,
		agents:   agents,
		risk:     risk,
		jobs:     jobs,
		audit:    audit,
	}
	s.echo = s.buildEcho()
	return s
}

func (s *Server) buildEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = errorHandler()
	e.Use(securityHeaders())
	e.Use(metrics.RequestDuration())

	e.GET("/healthz", s.healthHandler)
	e.GET("/metrics", func(c *echo.Context) error {
		promhttp.Handler().ServeHTTP(c.Response(), c.Request())
		return nil
	})

	// Agent plane. Registration is the trust bootstrap and carries no agent
	// token yet; everything else requires one.
	e.POST("/agent/register", s.registerAgentHandler)

	agentGroup := e.Group("/agent", s.agentAuth)
	agentGroup.POST("/heartbeat", s.heartbeatHandler)
	agentGroup.GET("/control-state", s.controlStateHandler)
	agentGroup.GET("/jobs", s.pullJobsHandler)
	agentGroup.POST("/jobs/:id/result", s.submitResultHandler)
	agentGroup.POST("/events", s.agentEventHandler)
	agentGroup.POST("/screenshots", s.agentScreenshotHandler)

	// Control plane, scoped to the authenticated user's own account.
	v1 := e.Group("/api/v1", s.userAuth)
	v1.POST("/accounts", s.createAccountHandler)
	v1.GET("/accounts/me", s.getMyAccountHandler)
	v1.POST("/accounts/:id/pause", s.pauseAccountHandler)
	v1.POST("/accounts/:id/resume", s.resumeAccountHandler)
	v1.POST("/accounts/:id/session-valid", s.sessionValidHandler)

	v1.POST("/jobs", s.createJobHandler)
	v1.GET("/jobs", s.listJobsHandler)
	v1.GET("/jobs/:id", s.getJobHandler)

	v1.GET("/agents/me", s.getMyAgentHandler)
	v1.DELETE("/agents/me", s.deregisterAgentHandler)

	v1.GET("/risk/score", s.riskScoreHandler)
	v1.GET("/risk/violations", s.listViolationsHandler)
	v1.POST("/risk/acknowledge", s.acknowledgeViolationHandler)

	v1.GET("/audit", s.auditQueryHandler)

	return e
}

// Start serves HTTP on addr and blocks until the server stops.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.http.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// Handler exposes the configured router, used by tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}
