// Package services implements the domain subsystems over the Ent client.
// Each service is the sole writer of its tables; cross-subsystem mutation
// happens only through the owning service's methods.
package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/leadrelay/relay/ent"
	"github.com/leadrelay/relay/ent/auditentry"
	"github.com/leadrelay/relay/pkg/models"
)

// AuditService is the append-only sink for domain events and screenshot
// metadata. It has no authority: nothing reads audit content to make a
// decision, and entries are never updated or deleted.
type AuditService struct {
	client *ent.Client
}

// NewAuditService creates a new AuditService.
func NewAuditService(client *ent.Client) *AuditService {
	return &AuditService{client: client}
}

// Append inserts one audit entry. Concurrent appends need no coordination
// beyond the database's own write serialization.
func (s *AuditService) Append(ctx context.Context, entry models.AuditAppend) (*ent.AuditEntry, error) {
	if entry.Domain == "" {
		return nil, NewValidationError("domain", "required")
	}
	if entry.EventType == "" {
		return nil, NewValidationError("event_type", "required")
	}
	if entry.EntityType == "" || entry.EntityID == "" {
		return nil, NewValidationError("entity", "entity_type and entity_id are required")
	}

	builder := s.client.AuditEntry.Create().
		SetID(uuid.New().String()).
		SetDomain(entry.Domain).
		SetEventType(entry.EventType).
		SetEntityType(entry.EntityType).
		SetEntityID(entry.EntityID).
		SetActorType(auditentry.ActorType(entry.ActorType)).
		SetActorID(entry.ActorID)

	if entry.Payload != nil {
		builder.SetPayload(entry.Payload)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to append audit entry: %w", err)
	}
	return row, nil
}

// Query returns matching audit entries, newest first. Read-only.
func (s *AuditService) Query(ctx context.Context, filters models.AuditFilters) ([]*ent.AuditEntry, error) {
	query := s.client.AuditEntry.Query()

	if filters.Domain != "" {
		query = query.Where(auditentry.DomainEQ(filters.Domain))
	}
	if filters.EventType != "" {
		query = query.Where(auditentry.EventTypeEQ(filters.EventType))
	}
	if filters.EntityType != "" {
		query = query.Where(auditentry.EntityTypeEQ(filters.EntityType))
	}
	if filters.EntityID != "" {
		query = query.Where(auditentry.EntityIDEQ(filters.EntityID))
	}
	if filters.Since != nil {
		query = query.Where(auditentry.CreatedAtGTE(*filters.Since))
	}

	limit := filters.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	entries, err := query.
		Order(ent.Desc(auditentry.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit entries: %w", err)
	}
	return entries, nil
}
