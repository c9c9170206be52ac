// Package metrics registers the service's Prometheus instruments and the
// HTTP timing middleware. Everything is registered on the default
// registry and served by promhttp on /metrics.
package metrics

import (
	"strconv"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// JobsCreated counts jobs accepted into the queue, by type.
	JobsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_jobs_created_total",
			Help: "Total number of jobs created",
		},
		[]string{"type"},
	)

	// JobsAssigned counts successful pull assignments.
	JobsAssigned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "relay_jobs_assigned_total",
			Help: "Total number of jobs assigned to agents",
		},
	)

	// JobsFinalized counts terminal result commits, by result status.
	JobsFinalized = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_jobs_finalized_total",
			Help: "Total number of jobs finalized with a result",
		},
		[]string{"status"},
	)

	// Heartbeats counts agent heartbeats, by reported status.
	Heartbeats = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_agent_heartbeats_total",
			Help: "Total number of agent heartbeats",
		},
		[]string{"status"},
	)

	// VerdictRefusals counts denied execution verdicts, by reason.
	VerdictRefusals = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_verdict_refusals_total",
			Help: "Total number of denied execution verdicts",
		},
		[]string{"reason"},
	)

	// JobsReaped counts jobs failed by the stuck-job reaper.
	JobsReaped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "relay_jobs_reaped_total",
			Help: "Total number of stuck jobs failed by the reaper",
		},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "relay_http_request_duration_seconds",
			Help:    "HTTP request duration by route and status",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

// RequestDuration returns echo middleware that times every request.
// Routes are labeled by their registered pattern, not the raw URL, to
// keep cardinality bounded.
func RequestDuration() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			start := time.Now()
			err := next(c)

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			status := 0
			if resp, uerr := echo.UnwrapResponse(c.Response()); uerr == nil {
				status = resp.Status
			}
			httpRequestDuration.WithLabelValues(
				c.Request().Method,
				path,
				strconv.Itoa(status),
			).Observe(time.Since(start).Seconds())

			return err
		}
	}
}
