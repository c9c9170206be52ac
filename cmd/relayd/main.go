// Relay control-plane server. Dispatches browser-automation jobs to
// desktop agents and enforces execution control.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/leadrelay/relay/pkg/api"
	"github.com/leadrelay/relay/pkg/cleanup"
	"github.com/leadrelay/relay/pkg/config"
	"github.com/leadrelay/relay/pkg/database"
	"github.com/leadrelay/relay/pkg/services"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	httpPort := getEnv("HTTP_PORT", "8080")

	slog.Info("Starting relay", "http_port", httpPort)

	ctx := context.Background()

	// 1. Policy configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Domain services
	audit := services.NewAuditService(dbClient.Client)
	identity := services.NewIdentityService(dbClient.Client)
	accounts := services.NewAccountService(dbClient.Client, audit)
	risk := services.NewRiskService(dbClient.Client, accounts, audit)
	agents := services.NewAgentService(dbClient.Client, risk, audit, services.AgentServiceConfig{
		PollIntervalSeconds: cfg.PollIntervalSeconds,
		TokenTTL:            cfg.TokenTTL,
	})
	jobs := services.NewJobService(dbClient.Client, accounts, identity, risk, audit, services.JobServiceConfig{
		MaxPullBatch: cfg.MaxPullBatch,
	})
	slog.Info("Services initialized")

	// 4. Background maintenance (stuck-job reaper, token sweep)
	cleanupService := cleanup.NewService(cfg, jobs, agents)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// 5. HTTP server
	httpServer := api.NewServer(dbClient, identity, accounts, agents, risk, jobs, audit)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Relay started successfully")

	// 6. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 7. Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
