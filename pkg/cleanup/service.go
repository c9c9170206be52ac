// Package cleanup runs the background maintenance loops.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/leadrelay/relay/pkg/config"
	"github.com/leadrelay/relay/pkg/services"
)

// Service periodically runs the maintenance backstops:
//   - Fails jobs stuck in EXECUTING past their deadline plus grace.
//   - Revokes expired agent tokens.
//
// Both operations are idempotent and safe to run from multiple replicas:
// the reaper routes through the same idempotent result commit agents use,
// and the token sweep is a conditional update.
type Service struct {
	cfg    *config.Config
	jobs   *services.JobService
	agents *services.AgentService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.Config, jobs *services.JobService, agents *services.AgentService) *Service {
	return &Service{
		cfg:    cfg,
		jobs:   jobs,
		agents: agents,
	}
}

// Start launches the background maintenance loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"reaper_interval", s.cfg.ReaperInterval,
		"reaper_grace", s.cfg.ReaperGrace,
		"token_sweep_interval", s.cfg.TokenSweepInterval)
}

// Stop signals the maintenance loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.reapStuckJobs(ctx)
	s.sweepExpiredTokens(ctx)

	reaper := time.NewTicker(s.cfg.ReaperInterval)
	defer reaper.Stop()
	sweeper := time.NewTicker(s.cfg.TokenSweepInterval)
	defer sweeper.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-reaper.C:
			s.reapStuckJobs(ctx)
		case <-sweeper.C:
			s.sweepExpiredTokens(ctx)
		}
	}
}

func (s *Service) reapStuckJobs(ctx context.Context) {
	count, err := s.jobs.ReapStuckJobs(ctx, s.cfg.ReaperGrace)
	if err != nil {
		slog.Error("Reaper: stuck-job sweep failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Reaper: failed stuck jobs", "count", count)
	}
}

func (s *Service) sweepExpiredTokens(ctx context.Context) {
	count, err := s.agents.SweepExpiredTokens(ctx)
	if err != nil {
		slog.Error("Token sweep failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Revoked expired agent tokens", "count", count)
	}
}
