package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/leadrelay/relay/ent"
	"github.com/leadrelay/relay/ent/agent"
	"github.com/leadrelay/relay/ent/agenttoken"
	"github.com/leadrelay/relay/pkg/metrics"
	"github.com/leadrelay/relay/pkg/models"
)

const agentDomain = "agents"

// AgentServiceConfig carries platform policy constants for the registry.
type AgentServiceConfig struct {
	// PollIntervalSeconds is the recommended agent poll cadence.
	PollIntervalSeconds int
	// TokenTTL bounds agent token lifetime.
	TokenTTL time.Duration
}

// AgentService is the agent registry: it binds one executing process to one
// account, mints scoped bearer tokens and tracks liveness. Registration and
// token rotation are a single transaction, so at most one token is valid
// per agent at any time.
type AgentService struct {
	client *ent.Client
	risk   *RiskService
	audit  *AuditService
	config AgentServiceConfig
}

// NewAgentService creates a new AgentService.
func NewAgentService(client *ent.Client, risk *RiskService, audit *AuditService, cfg AgentServiceConfig) *AgentService {
	if cfg.PollIntervalSeconds <= 0 {
		cfg.PollIntervalSeconds = 15
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 30 * 24 * time.Hour
	}
	return &AgentService{client: client, risk: risk, audit: audit, config: cfg}
}

// Register creates or reuses the single live agent row for an account and
// rotates its token. The previous token is revoked in the same transaction
// that issues the new one: an accepted re-registration is simultaneously a
// revocation.
func (s *AgentService) Register(ctx context.Context, params models.RegisterParams) (*models.Registration, error) {
	if params.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if params.AccountID == "" {
		return nil, NewValidationError("account_id", "required")
	}

	// Trust bootstrap: the account must exist and belong to the caller.
	acct, err := s.client.Account.Get(ctx, params.AccountID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if acct.UserID != params.UserID {
		return nil, ErrForbidden
	}

	plaintext, hash, err := newAgentToken()
	if err != nil {
		return nil, err
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	// Reuse the live agent row if one exists; otherwise create it.
	existing, err := tx.Agent.Query().
		Where(
			agent.AccountIDEQ(params.AccountID),
			agent.TerminatedAtIsNil(),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query agent: %w", err)
	}

	var agentRow *ent.Agent
	if existing != nil {
		agentRow, err = existing.Update().
			SetState(agent.StateREGISTERED).
			SetAgentVersion(params.AgentVersion).
			SetPlatform(params.Platform).
			SetRegisteredAt(time.Now()).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update agent: %w", err)
		}
	} else {
		agentRow, err = tx.Agent.Create().
			SetID(uuid.New().String()).
			SetAccountID(params.AccountID).
			SetAgentVersion(params.AgentVersion).
			SetPlatform(params.Platform).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				// Raced by a concurrent registration; the winner holds the row.
				return nil, ErrAlreadyExists
			}
			return nil, fmt.Errorf("failed to create agent: %w", err)
		}
	}

	// Rotation: revoke every live token for this agent, then issue the new
	// one. One transaction, so no interleaving leaves two valid tokens.
	_, err = tx.AgentToken.Update().
		Where(
			agenttoken.AgentIDEQ(agentRow.ID),
			agenttoken.RevokedAtIsNil(),
		).
		SetRevokedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to revoke previous tokens: %w", err)
	}

	_, err = tx.AgentToken.Create().
		SetID(uuid.New().String()).
		SetAgentID(agentRow.ID).
		SetAccountID(params.AccountID).
		SetTokenHash(hash).
		SetExpiresAt(time.Now().Add(s.config.TokenTTL)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit registration: %w", err)
	}

	s.appendAudit(ctx, agentRow.ID, "agent.registered", models.ActorUser, params.UserID, map[string]interface{}{
		"account_id":    params.AccountID,
		"agent_version": params.AgentVersion,
		"platform":      params.Platform,
	})

	return &models.Registration{
		AgentID:             agentRow.ID,
		AccountID:           params.AccountID,
		Token:               plaintext,
		PollIntervalSeconds: s.config.PollIntervalSeconds,
	}, nil
}

// ValidateToken resolves an agent bearer token to its (agent, account)
// binding. Pure lookup; unknown, revoked and expired tokens are rejected.
func (s *AgentService) ValidateToken(ctx context.Context, token string) (agentID, accountID string, err error) {
	if token == "" {
		return "", "", ErrUnauthorized
	}

	row, err := s.client.AgentToken.Query().
		Where(agenttoken.TokenHashEQ(hashToken(token))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", "", ErrUnauthorized
		}
		return "", "", fmt.Errorf("failed to look up token: %w", err)
	}

	if row.RevokedAt != nil || time.Now().After(row.ExpiresAt) {
		return "", "", ErrUnauthorized
	}

	return row.AgentID, row.AccountID, nil
}

// Heartbeat updates liveness and returns the execution verdict. Fast path:
// one update, one audit append, one verdict read, nothing else.
func (s *AgentService) Heartbeat(ctx context.Context, agentID, accountID, reportedStatus, currentJobID string) (models.Verdict, error) {
	var state agent.State
	switch reportedStatus {
	case models.HeartbeatIdle, models.HeartbeatPaused:
		state = agent.StateIDLE
	case models.HeartbeatExecuting:
		state = agent.StateACTIVE
	default:
		return models.Verdict{}, NewValidationError("status", "must be IDLE, EXECUTING or PAUSED")
	}

	err := s.client.Agent.UpdateOneID(agentID).
		SetState(state).
		SetLastHeartbeatAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return models.Verdict{}, ErrNotFound
		}
		return models.Verdict{}, fmt.Errorf("failed to record heartbeat: %w", err)
	}

	metrics.Heartbeats.WithLabelValues(reportedStatus).Inc()

	payload := map[string]interface{}{"status": reportedStatus}
	if currentJobID != "" {
		payload["current_job_id"] = currentJobID
	}
	s.appendAudit(ctx, agentID, "agent.heartbeat", models.ActorAgent, agentID, payload)

	return s.risk.IsExecutionAllowed(ctx, accountID)
}

// GetByAccountID returns the live agent bound to an account.
func (s *AgentService) GetByAccountID(ctx context.Context, accountID string) (*ent.Agent, error) {
	row, err := s.client.Agent.Query().
		Where(
			agent.AccountIDEQ(accountID),
			agent.TerminatedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}
	return row, nil
}

// Revoke marks a token revoked; the next call authenticated with it fails.
func (s *AgentService) Revoke(ctx context.Context, token string) error {
	count, err := s.client.AgentToken.Update().
		Where(
			agenttoken.TokenHashEQ(hashToken(token)),
			agenttoken.RevokedAtIsNil(),
		).
		SetRevokedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

// Deregister terminates an agent and revokes its tokens. The account may
// register a fresh agent afterwards.
func (s *AgentService) Deregister(ctx context.Context, agentID string) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	err = tx.Agent.UpdateOneID(agentID).
		SetState(agent.StateTERMINATED).
		SetTerminatedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to terminate agent: %w", err)
	}

	_, err = tx.AgentToken.Update().
		Where(
			agenttoken.AgentIDEQ(agentID),
			agenttoken.RevokedAtIsNil(),
		).
		SetRevokedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to revoke tokens: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit deregistration: %w", err)
	}

	s.appendAudit(ctx, agentID, "agent.deregistered", models.ActorSystem, "", nil)
	return nil
}

// SweepExpiredTokens marks expired-but-unrevoked tokens revoked. Pure
// housekeeping: ValidateToken already rejects expired tokens, so this only
// keeps the live-token set tidy.
func (s *AgentService) SweepExpiredTokens(ctx context.Context) (int, error) {
	count, err := s.client.AgentToken.Update().
		Where(
			agenttoken.RevokedAtIsNil(),
			agenttoken.ExpiresAtLT(time.Now()),
		).
		SetRevokedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to sweep expired tokens: %w", err)
	}
	return count, nil
}

func (s *AgentService) appendAudit(ctx context.Context, agentID, eventType, actorType, actorID string, payload map[string]interface{}) {
	_, err := s.audit.Append(ctx, models.AuditAppend{
		Domain:     agentDomain,
		EventType:  eventType,
		EntityType: "agent",
		EntityID:   agentID,
		ActorType:  actorType,
		ActorID:    actorID,
		Payload:    payload,
	})
	if err != nil {
		slog.Error("Failed to append agent audit entry",
			"agent_id", agentID, "event_type", eventType, "error", err)
	}
}
