package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadrelay/relay/pkg/models"
)

func TestAuditService_Append(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()

	t.Run("appends an entry", func(t *testing.T) {
		entry, err := ts.audit.Append(ctx, models.AuditAppend{
			Domain:     "dispatch",
			EventType:  "job.created",
			EntityType: "job",
			EntityID:   "j-1",
			ActorType:  models.ActorUser,
			ActorID:    "u-1",
			Payload:    map[string]interface{}{"type": "VISIT_PROFILE"},
		})
		require.NoError(t, err)
		assert.NotEmpty(t, entry.ID)
		assert.False(t, entry.CreatedAt.IsZero())
	})

	t.Run("validates required fields", func(t *testing.T) {
		_, err := ts.audit.Append(ctx, models.AuditAppend{
			EventType: "x", EntityType: "job", EntityID: "j", ActorType: models.ActorSystem,
		})
		assert.True(t, IsValidationError(err))

		_, err = ts.audit.Append(ctx, models.AuditAppend{
			Domain: "d", EntityType: "job", EntityID: "j", ActorType: models.ActorSystem,
		})
		assert.True(t, IsValidationError(err))

		_, err = ts.audit.Append(ctx, models.AuditAppend{
			Domain: "d", EventType: "x", ActorType: models.ActorSystem,
		})
		assert.True(t, IsValidationError(err))
	})
}

func TestAuditService_Query(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()

	seed := func(domain, eventType, entityID string) {
		_, err := ts.audit.Append(ctx, models.AuditAppend{
			Domain:     domain,
			EventType:  eventType,
			EntityType: "job",
			EntityID:   entityID,
			ActorType:  models.ActorSystem,
		})
		require.NoError(t, err)
	}

	seed("dispatch", "job.created", "j-1")
	seed("dispatch", "job.assigned", "j-1")
	seed("risk", "risk.violation_recorded", "j-2")

	t.Run("filters by domain", func(t *testing.T) {
		entries, err := ts.audit.Query(ctx, models.AuditFilters{Domain: "dispatch"})
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("filters by entity", func(t *testing.T) {
		entries, err := ts.audit.Query(ctx, models.AuditFilters{EntityType: "job", EntityID: "j-2"})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "risk.violation_recorded", entries[0].EventType)
	})

	t.Run("since excludes older entries", func(t *testing.T) {
		future := time.Now().Add(time.Hour)
		entries, err := ts.audit.Query(ctx, models.AuditFilters{Since: &future})
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("respects limit", func(t *testing.T) {
		entries, err := ts.audit.Query(ctx, models.AuditFilters{Limit: 1})
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}
