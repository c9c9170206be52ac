package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityService_EnsureUser(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()

	t.Run("creates and resolves", func(t *testing.T) {
		usr, err := ts.identity.EnsureUser(ctx, "alice@example.com", "token-1")
		require.NoError(t, err)

		resolved, err := ts.identity.ResolveBearer(ctx, "token-1")
		require.NoError(t, err)
		assert.Equal(t, usr.ID, resolved.ID)
	})

	t.Run("repeat call rotates the token hash", func(t *testing.T) {
		first, err := ts.identity.EnsureUser(ctx, "bob@example.com", "old-token")
		require.NoError(t, err)

		second, err := ts.identity.EnsureUser(ctx, "bob@example.com", "new-token")
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)

		_, err = ts.identity.ResolveBearer(ctx, "old-token")
		assert.ErrorIs(t, err, ErrUnauthorized)

		resolved, err := ts.identity.ResolveBearer(ctx, "new-token")
		require.NoError(t, err)
		assert.Equal(t, first.ID, resolved.ID)
	})

	t.Run("validates inputs", func(t *testing.T) {
		_, err := ts.identity.EnsureUser(ctx, "", "t")
		assert.True(t, IsValidationError(err))
		_, err = ts.identity.EnsureUser(ctx, "x@example.com", "")
		assert.True(t, IsValidationError(err))
	})
}

func TestIdentityService_ResolveBearer(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()

	_, err := ts.identity.ResolveBearer(ctx, "unknown")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = ts.identity.ResolveBearer(ctx, "")
	assert.ErrorIs(t, err, ErrUnauthorized)
}
