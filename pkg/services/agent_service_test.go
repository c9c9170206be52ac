package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadrelay/relay/ent/agent"
	"github.com/leadrelay/relay/ent/agenttoken"
	"github.com/leadrelay/relay/pkg/models"
)

func TestAgentService_Register(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()

	t.Run("registers an agent and issues a token", func(t *testing.T) {
		usr, acct := ts.seedAccount(t, ctx)

		reg, err := ts.agents.Register(ctx, models.RegisterParams{
			UserID:       usr.ID,
			AccountID:    acct.ID,
			AgentVersion: "1.2.3",
			Platform:     "windows",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, reg.Token)
		assert.Equal(t, acct.ID, reg.AccountID)
		assert.Positive(t, reg.PollIntervalSeconds)

		agentID, accountID, err := ts.agents.ValidateToken(ctx, reg.Token)
		require.NoError(t, err)
		assert.Equal(t, reg.AgentID, agentID)
		assert.Equal(t, acct.ID, accountID)
	})

	t.Run("re-registration reuses the agent row and rotates the token", func(t *testing.T) {
		usr, acct := ts.seedAccount(t, ctx)

		first, err := ts.agents.Register(ctx, models.RegisterParams{
			UserID: usr.ID, AccountID: acct.ID, AgentVersion: "1.0.0", Platform: "darwin",
		})
		require.NoError(t, err)

		second, err := ts.agents.Register(ctx, models.RegisterParams{
			UserID: usr.ID, AccountID: acct.ID, AgentVersion: "1.1.0", Platform: "darwin",
		})
		require.NoError(t, err)

		// Same live agent row; one live agent per account.
		assert.Equal(t, first.AgentID, second.AgentID)
		live, err := ts.client.Agent.Query().
			Where(agent.AccountIDEQ(acct.ID), agent.TerminatedAtIsNil()).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, live)

		// Old token is dead, new one works.
		_, _, err = ts.agents.ValidateToken(ctx, first.Token)
		assert.ErrorIs(t, err, ErrUnauthorized)
		_, _, err = ts.agents.ValidateToken(ctx, second.Token)
		require.NoError(t, err)

		// Exactly one unrevoked token for the agent.
		liveTokens, err := ts.client.AgentToken.Query().
			Where(agenttoken.AgentIDEQ(second.AgentID), agenttoken.RevokedAtIsNil()).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, liveTokens)
	})

	t.Run("rejects registration against someone else's account", func(t *testing.T) {
		_, acct := ts.seedAccount(t, ctx)
		other, _ := ts.seedUser(t, ctx)

		_, err := ts.agents.Register(ctx, models.RegisterParams{
			UserID: other.ID, AccountID: acct.ID,
		})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("rejects unknown account", func(t *testing.T) {
		usr, _ := ts.seedUser(t, ctx)
		_, err := ts.agents.Register(ctx, models.RegisterParams{
			UserID: usr.ID, AccountID: "missing",
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestAgentService_ValidateToken(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()
	usr, acct := ts.seedAccount(t, ctx)
	reg := ts.seedAgent(t, ctx, usr.ID, acct.ID)

	t.Run("rejects garbage and empty tokens", func(t *testing.T) {
		_, _, err := ts.agents.ValidateToken(ctx, "not-a-token")
		assert.ErrorIs(t, err, ErrUnauthorized)
		_, _, err = ts.agents.ValidateToken(ctx, "")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("rejects revoked token", func(t *testing.T) {
		require.NoError(t, ts.agents.Revoke(ctx, reg.Token))
		_, _, err := ts.agents.ValidateToken(ctx, reg.Token)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		fresh := ts.seedAgent(t, ctx, usr.ID, acct.ID)

		// Backdate expiry.
		_, err := ts.client.AgentToken.Update().
			Where(agenttoken.AgentIDEQ(fresh.AgentID), agenttoken.RevokedAtIsNil()).
			SetExpiresAt(time.Now().Add(-time.Minute)).
			Save(ctx)
		require.NoError(t, err)

		_, _, err = ts.agents.ValidateToken(ctx, fresh.Token)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}

func TestAgentService_Heartbeat(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()
	usr, acct := ts.seedAccount(t, ctx)
	reg := ts.seedAgent(t, ctx, usr.ID, acct.ID)

	t.Run("updates liveness and returns allowed verdict", func(t *testing.T) {
		verdict, err := ts.agents.Heartbeat(ctx, reg.AgentID, acct.ID, models.HeartbeatExecuting, "")
		require.NoError(t, err)
		assert.True(t, verdict.Allowed)

		got, err := ts.client.Agent.Get(ctx, reg.AgentID)
		require.NoError(t, err)
		assert.Equal(t, agent.StateACTIVE, got.State)
		assert.NotNil(t, got.LastHeartbeatAt)
	})

	t.Run("returns denial when account is paused", func(t *testing.T) {
		_, err := ts.accounts.SetUserPaused(ctx, acct.ID, true)
		require.NoError(t, err)
		t.Cleanup(func() {
			_, err := ts.accounts.SetUserPaused(ctx, acct.ID, false)
			require.NoError(t, err)
		})

		verdict, err := ts.agents.Heartbeat(ctx, reg.AgentID, acct.ID, models.HeartbeatIdle, "")
		require.NoError(t, err)
		assert.False(t, verdict.Allowed)
		assert.Equal(t, models.ReasonUserPaused, verdict.Reason)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := ts.agents.Heartbeat(ctx, reg.AgentID, acct.ID, "NAPPING", "")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestAgentService_Deregister(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()
	usr, acct := ts.seedAccount(t, ctx)
	reg := ts.seedAgent(t, ctx, usr.ID, acct.ID)

	require.NoError(t, ts.agents.Deregister(ctx, reg.AgentID))

	got, err := ts.client.Agent.Get(ctx, reg.AgentID)
	require.NoError(t, err)
	assert.Equal(t, agent.StateTERMINATED, got.State)
	assert.NotNil(t, got.TerminatedAt)

	_, _, err = ts.agents.ValidateToken(ctx, reg.Token)
	assert.ErrorIs(t, err, ErrUnauthorized)

	// The account can register a fresh agent afterwards.
	fresh := ts.seedAgent(t, ctx, usr.ID, acct.ID)
	assert.NotEqual(t, reg.AgentID, fresh.AgentID)
}

func TestAgentService_SweepExpiredTokens(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()
	usr, acct := ts.seedAccount(t, ctx)
	reg := ts.seedAgent(t, ctx, usr.ID, acct.ID)

	_, err := ts.client.AgentToken.Update().
		Where(agenttoken.AgentIDEQ(reg.AgentID), agenttoken.RevokedAtIsNil()).
		SetExpiresAt(time.Now().Add(-time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	count, err := ts.agents.SweepExpiredTokens(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// Idempotent: second sweep finds nothing.
	count, err = ts.agents.SweepExpiredTokens(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
