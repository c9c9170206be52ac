package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/leadrelay/relay/ent"
	"github.com/leadrelay/relay/pkg/models"
	"github.com/leadrelay/relay/test/util"
)

// testServices bundles the fully wired service graph over a per-test schema.
type testServices struct {
	client   *ent.Client
	audit    *AuditService
	identity *IdentityService
	accounts *AccountService
	risk     *RiskService
	agents   *AgentService
	jobs     *JobService
}

func newTestServices(t *testing.T) *testServices {
	client, _ := util.SetupTestDatabase(t)

	audit := NewAuditService(client)
	identity := NewIdentityService(client)
	accounts := NewAccountService(client, audit)
	risk := NewRiskService(client, accounts, audit)
	agents := NewAgentService(client, risk, audit, AgentServiceConfig{})
	jobs := NewJobService(client, accounts, identity, risk, audit, JobServiceConfig{})

	return &testServices{
		client:   client,
		audit:    audit,
		identity: identity,
		accounts: accounts,
		risk:     risk,
		agents:   agents,
		jobs:     jobs,
	}
}

// seedUser creates a user with a fresh bearer token and returns (user, token).
func (ts *testServices) seedUser(t *testing.T, ctx context.Context) (*ent.User, string) {
	token := uuid.New().String()
	usr, err := ts.identity.EnsureUser(ctx, uuid.New().String()+"@example.com", token)
	require.NoError(t, err)
	return usr, token
}

// seedAccount creates a user and its account.
func (ts *testServices) seedAccount(t *testing.T, ctx context.Context) (*ent.User, *ent.Account) {
	usr, _ := ts.seedUser(t, ctx)
	acct, err := ts.accounts.CreateAccount(ctx, usr.ID, "https://example.com/in/"+usr.ID, "Test Account")
	require.NoError(t, err)
	return usr, acct
}

// seedAgent registers an agent for the account and returns the registration
// (including the plaintext agent token).
func (ts *testServices) seedAgent(t *testing.T, ctx context.Context, userID, accountID string) *models.Registration {
	reg, err := ts.agents.Register(ctx, models.RegisterParams{
		UserID:       userID,
		AccountID:    accountID,
		AgentVersion: "1.0.0",
		Platform:     "darwin",
	})
	require.NoError(t, err)
	return reg
}

// seedJob creates a PENDING job with sane defaults for the account.
func (ts *testServices) seedJob(t *testing.T, ctx context.Context, accountID, userID string, opts ...func(*models.CreateJobParams)) *ent.Job {
	params := models.CreateJobParams{
		AccountID:       accountID,
		CreatedByUserID: userID,
		Type:            "VISIT_PROFILE",
		Parameters:      map[string]interface{}{"profile_url": "https://example.com/in/target"},
	}
	for _, opt := range opts {
		opt(&params)
	}
	row, err := ts.jobs.CreateJob(ctx, params)
	require.NoError(t, err)
	return row
}
