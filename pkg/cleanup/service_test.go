package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/leadrelay/relay/ent/agenttoken"
	"github.com/leadrelay/relay/pkg/config"
	"github.com/leadrelay/relay/pkg/models"
	"github.com/leadrelay/relay/pkg/services"
	"github.com/leadrelay/relay/test/util"
)

func TestService_Lifecycle(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	audit := services.NewAuditService(client)
	identity := services.NewIdentityService(client)
	accounts := services.NewAccountService(client, audit)
	risk := services.NewRiskService(client, accounts, audit)
	agents := services.NewAgentService(client, risk, audit, services.AgentServiceConfig{})
	jobs := services.NewJobService(client, accounts, identity, risk, audit, services.JobServiceConfig{})

	usr, err := identity.EnsureUser(ctx, "cleanup@example.com", uuid.New().String())
	require.NoError(t, err)
	acct, err := accounts.CreateAccount(ctx, usr.ID, "https://example.com/in/cleanup", "Cleanup")
	require.NoError(t, err)
	reg, err := agents.Register(ctx, models.RegisterParams{
		UserID: usr.ID, AccountID: acct.ID, AgentVersion: "1.0.0", Platform: "linux",
	})
	require.NoError(t, err)

	// Backdate the token so the sweep has something to revoke.
	_, err = client.AgentToken.Update().
		Where(agenttoken.AgentIDEQ(reg.AgentID), agenttoken.RevokedAtIsNil()).
		SetExpiresAt(time.Now().Add(-time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	cfg := config.Default()
	cfg.ReaperInterval = 10 * time.Millisecond
	cfg.TokenSweepInterval = 10 * time.Millisecond

	svc := NewService(cfg, jobs, agents)
	svc.Start(ctx)
	svc.Start(ctx) // second Start is a no-op

	require.Eventually(t, func() bool {
		n, err := client.AgentToken.Query().
			Where(agenttoken.AgentIDEQ(reg.AgentID), agenttoken.RevokedAtNotNil()).
			Count(ctx)
		return err == nil && n == 1
	}, 5*time.Second, 20*time.Millisecond, "expired token was not swept")

	svc.Stop()

	_, _, err = agents.ValidateToken(ctx, reg.Token)
	require.ErrorIs(t, err, services.ErrUnauthorized)
}
