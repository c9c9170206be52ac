package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadrelay/relay/ent"
	"github.com/leadrelay/relay/ent/account"
	"github.com/leadrelay/relay/ent/riskscore"
	"github.com/leadrelay/relay/ent/violation"
	"github.com/leadrelay/relay/pkg/models"
)

func seedRule(t *testing.T, ctx context.Context, ts *testServices) *ent.RateLimitRule {
	rule, err := ts.risk.CreateRule(ctx, "CONNECTION_REQUEST", 20, 86400)
	require.NoError(t, err)
	return rule
}

func TestRiskService_Rules(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()

	t.Run("creates and lists active rules", func(t *testing.T) {
		seedRule(t, ctx, ts)

		rules, err := ts.risk.ListActiveRules(ctx, "CONNECTION_REQUEST")
		require.NoError(t, err)
		assert.Len(t, rules, 1)

		rules, err = ts.risk.ListActiveRules(ctx, "UNRELATED")
		require.NoError(t, err)
		assert.Empty(t, rules)
	})

	t.Run("validates rule fields", func(t *testing.T) {
		_, err := ts.risk.CreateRule(ctx, "", 1, 1)
		assert.True(t, IsValidationError(err))
		_, err = ts.risk.CreateRule(ctx, "X", 0, 1)
		assert.True(t, IsValidationError(err))
		_, err = ts.risk.CreateRule(ctx, "X", 1, 0)
		assert.True(t, IsValidationError(err))
	})
}

func TestRiskService_Violations(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()
	_, acct := ts.seedAccount(t, ctx)
	rule := seedRule(t, ctx, ts)

	t.Run("records and acknowledges", func(t *testing.T) {
		v, err := ts.risk.RecordViolation(ctx, acct.ID, rule.ID, "", "RATE_EXCEEDED", violation.SeverityMEDIUM)
		require.NoError(t, err)
		assert.Nil(t, v.ResolvedAt)

		acked, err := ts.risk.AcknowledgeViolation(ctx, v.ID)
		require.NoError(t, err)
		require.NotNil(t, acked.ResolvedAt)

		// Idempotent: resolution time is kept.
		again, err := ts.risk.AcknowledgeViolation(ctx, v.ID)
		require.NoError(t, err)
		assert.Equal(t, acked.ResolvedAt.Unix(), again.ResolvedAt.Unix())
	})

	t.Run("rejects unknown rule or account", func(t *testing.T) {
		_, err := ts.risk.RecordViolation(ctx, acct.ID, "missing", "", "X", violation.SeverityLOW)
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = ts.risk.RecordViolation(ctx, "missing", rule.ID, "", "X", violation.SeverityLOW)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRiskService_CalculateRiskScore(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()
	_, acct := ts.seedAccount(t, ctx)
	rule := seedRule(t, ctx, ts)

	record := func(t *testing.T, severity violation.Severity) *ent.Violation {
		v, err := ts.risk.RecordViolation(ctx, acct.ID, rule.ID, "", "RATE_EXCEEDED", severity)
		require.NoError(t, err)
		return v
	}

	t.Run("clean account scores zero LOW", func(t *testing.T) {
		score, err := ts.risk.CalculateRiskScore(ctx, acct.ID)
		require.NoError(t, err)
		assert.Zero(t, score.Score)
		assert.Equal(t, riskscore.LevelLOW, score.Level)
	})

	t.Run("weights unresolved violations by severity", func(t *testing.T) {
		record(t, violation.SeverityLOW)    // 0.1
		record(t, violation.SeverityMEDIUM) // 0.3

		score, err := ts.risk.CalculateRiskScore(ctx, acct.ID)
		require.NoError(t, err)
		assert.InDelta(t, 0.4, score.Score, 1e-9)
		assert.Equal(t, riskscore.LevelMEDIUM, score.Level)
	})

	t.Run("resolved violations stop counting", func(t *testing.T) {
		v := record(t, violation.SeverityHIGH)
		_, err := ts.risk.AcknowledgeViolation(ctx, v.ID)
		require.NoError(t, err)

		score, err := ts.risk.CalculateRiskScore(ctx, acct.ID)
		require.NoError(t, err)
		assert.InDelta(t, 0.4, score.Score, 1e-9)
	})

	t.Run("health penalty and clamp", func(t *testing.T) {
		record(t, violation.SeverityCRITICAL) // 1.0 on its own
		_, err := ts.accounts.UpdateHealthStatus(ctx, acct.ID, account.HealthStatusSUSPENDED)
		require.NoError(t, err)

		score, err := ts.risk.CalculateRiskScore(ctx, acct.ID)
		require.NoError(t, err)
		assert.Equal(t, 1.0, score.Score)
		assert.Equal(t, riskscore.LevelCRITICAL, score.Level)
		assert.Equal(t, 0.5, score.Factors["health_penalty"])
	})

	t.Run("latest score is the authoritative one", func(t *testing.T) {
		latest, err := ts.risk.LatestRiskScore(ctx, acct.ID)
		require.NoError(t, err)
		assert.Equal(t, riskscore.LevelCRITICAL, latest.Level)
	})
}

func TestRiskService_IsExecutionAllowed(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()

	t.Run("allows a healthy connected account", func(t *testing.T) {
		_, acct := ts.seedAccount(t, ctx)
		verdict, err := ts.risk.IsExecutionAllowed(ctx, acct.ID)
		require.NoError(t, err)
		assert.True(t, verdict.Allowed)
		assert.Empty(t, verdict.Reason)
	})

	t.Run("denies a missing account as SESSION_INVALID", func(t *testing.T) {
		verdict, err := ts.risk.IsExecutionAllowed(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, verdict.Allowed)
		assert.Equal(t, models.ReasonSessionInvalid, verdict.Reason)
	})

	t.Run("denies expired validation as SESSION_INVALID", func(t *testing.T) {
		_, acct := ts.seedAccount(t, ctx)
		_, err := ts.accounts.UpdateValidationStatus(ctx, acct.ID, account.ValidationStatusEXPIRED)
		require.NoError(t, err)

		verdict, err := ts.risk.IsExecutionAllowed(ctx, acct.ID)
		require.NoError(t, err)
		assert.Equal(t, models.ReasonSessionInvalid, verdict.Reason)
	})

	t.Run("denies suspended health as RISK_PAUSE", func(t *testing.T) {
		_, acct := ts.seedAccount(t, ctx)
		_, err := ts.accounts.UpdateHealthStatus(ctx, acct.ID, account.HealthStatusSUSPENDED)
		require.NoError(t, err)

		verdict, err := ts.risk.IsExecutionAllowed(ctx, acct.ID)
		require.NoError(t, err)
		assert.Equal(t, models.ReasonRiskPause, verdict.Reason)
	})

	t.Run("denies critical latest score as RISK_PAUSE", func(t *testing.T) {
		_, acct := ts.seedAccount(t, ctx)
		rule := seedRule(t, ctx, ts)
		_, err := ts.risk.RecordViolation(ctx, acct.ID, rule.ID, "", "RATE_EXCEEDED", violation.SeverityCRITICAL)
		require.NoError(t, err)
		_, err = ts.risk.CalculateRiskScore(ctx, acct.ID)
		require.NoError(t, err)

		verdict, err := ts.risk.IsExecutionAllowed(ctx, acct.ID)
		require.NoError(t, err)
		assert.Equal(t, models.ReasonRiskPause, verdict.Reason)
	})

	t.Run("denies user pause as USER_PAUSED", func(t *testing.T) {
		_, acct := ts.seedAccount(t, ctx)
		_, err := ts.accounts.SetUserPaused(ctx, acct.ID, true)
		require.NoError(t, err)

		verdict, err := ts.risk.IsExecutionAllowed(ctx, acct.ID)
		require.NoError(t, err)
		assert.Equal(t, models.ReasonUserPaused, verdict.Reason)

		// Resume restores execution immediately.
		_, err = ts.accounts.SetUserPaused(ctx, acct.ID, false)
		require.NoError(t, err)
		verdict, err = ts.risk.IsExecutionAllowed(ctx, acct.ID)
		require.NoError(t, err)
		assert.True(t, verdict.Allowed)
	})
}

func TestRiskService_RecordSessionExpiry(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()
	_, acct := ts.seedAccount(t, ctx)

	v, err := ts.risk.RecordSessionExpiry(ctx, acct.ID, "")
	require.NoError(t, err)
	assert.Equal(t, "SESSION_EXPIRED", v.ViolationType)
	assert.Equal(t, violation.SeverityHIGH, v.Severity)

	// Second expiry reuses the built-in rule.
	v2, err := ts.risk.RecordSessionExpiry(ctx, acct.ID, "")
	require.NoError(t, err)
	assert.Equal(t, v.RuleID, v2.RuleID)
}
