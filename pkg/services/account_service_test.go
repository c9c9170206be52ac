package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadrelay/relay/ent/account"
	"github.com/leadrelay/relay/ent/auditentry"
)

func TestAccountService_CreateAccount(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()

	t.Run("creates an account bound to the user", func(t *testing.T) {
		usr, _ := ts.seedUser(t, ctx)

		acct, err := ts.accounts.CreateAccount(ctx, usr.ID, "https://example.com/in/me", "Me")
		require.NoError(t, err)
		assert.Equal(t, usr.ID, acct.UserID)
		assert.Equal(t, account.ValidationStatusCONNECTED, acct.ValidationStatus)
		assert.Equal(t, account.HealthStatusHEALTHY, acct.HealthStatus)
		assert.False(t, acct.UserPaused)
	})

	t.Run("rejects a second account for the same user", func(t *testing.T) {
		usr, _ := ts.seedUser(t, ctx)
		_, err := ts.accounts.CreateAccount(ctx, usr.ID, "https://example.com/in/one", "One")
		require.NoError(t, err)

		_, err = ts.accounts.CreateAccount(ctx, usr.ID, "https://example.com/in/two", "Two")
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("rejects unknown user", func(t *testing.T) {
		_, err := ts.accounts.CreateAccount(ctx, "missing", "https://example.com/in/x", "X")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("validates required fields", func(t *testing.T) {
		usr, _ := ts.seedUser(t, ctx)
		_, err := ts.accounts.CreateAccount(ctx, usr.ID, "", "X")
		assert.True(t, IsValidationError(err))
		_, err = ts.accounts.CreateAccount(ctx, usr.ID, "https://example.com/in/x", "")
		assert.True(t, IsValidationError(err))
	})
}

func TestAccountService_StatusTransitions(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()
	_, acct := ts.seedAccount(t, ctx)

	t.Run("expired validation emits a boundary audit event", func(t *testing.T) {
		updated, err := ts.accounts.UpdateValidationStatus(ctx, acct.ID, account.ValidationStatusEXPIRED)
		require.NoError(t, err)
		assert.Equal(t, account.ValidationStatusEXPIRED, updated.ValidationStatus)

		entries, err := ts.client.AuditEntry.Query().
			Where(auditentry.EventTypeEQ("account.validation_changed"), auditentry.EntityIDEQ(acct.ID)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, entries)
	})

	t.Run("session-valid restores CONNECTED", func(t *testing.T) {
		updated, err := ts.accounts.MarkSessionValid(ctx, acct.ID)
		require.NoError(t, err)
		assert.Equal(t, account.ValidationStatusCONNECTED, updated.ValidationStatus)
		assert.NotNil(t, updated.SessionValidAt)
	})

	t.Run("suspension emits audit", func(t *testing.T) {
		_, err := ts.accounts.UpdateHealthStatus(ctx, acct.ID, account.HealthStatusSUSPENDED)
		require.NoError(t, err)

		entries, err := ts.client.AuditEntry.Query().
			Where(auditentry.EventTypeEQ("account.suspended"), auditentry.EntityIDEQ(acct.ID)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, entries)
	})

	t.Run("pause and resume emit audit", func(t *testing.T) {
		_, err := ts.accounts.SetUserPaused(ctx, acct.ID, true)
		require.NoError(t, err)
		_, err = ts.accounts.SetUserPaused(ctx, acct.ID, false)
		require.NoError(t, err)

		paused, err := ts.client.AuditEntry.Query().
			Where(auditentry.EventTypeEQ("account.paused"), auditentry.EntityIDEQ(acct.ID)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, paused)

		resumed, err := ts.client.AuditEntry.Query().
			Where(auditentry.EventTypeEQ("account.resumed"), auditentry.EntityIDEQ(acct.ID)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, resumed)
	})

	t.Run("rejects invalid status values", func(t *testing.T) {
		_, err := ts.accounts.UpdateValidationStatus(ctx, acct.ID, "WOBBLY")
		assert.True(t, IsValidationError(err))
		_, err = ts.accounts.UpdateHealthStatus(ctx, acct.ID, "WOBBLY")
		assert.True(t, IsValidationError(err))
	})
}

func TestAccountService_GetByUserID(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()
	usr, acct := ts.seedAccount(t, ctx)

	got, err := ts.accounts.GetByUserID(ctx, usr.ID)
	require.NoError(t, err)
	assert.Equal(t, acct.ID, got.ID)

	_, err = ts.accounts.GetByUserID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
