package models

import "time"

// Audit actor types.
const (
	ActorUser   = "USER"
	ActorAgent  = "AGENT"
	ActorSystem = "SYSTEM"
)

// AuditAppend describes one domain event to append to the audit log.
type AuditAppend struct {
	Domain     string
	EventType  string
	EntityType string
	EntityID   string
	ActorType  string
	ActorID    string
	Payload    map[string]interface{}
}

// AuditFilters narrows audit queries. Zero values mean "any".
type AuditFilters struct {
	Domain     string
	EventType  string
	EntityType string
	EntityID   string
	Since      *time.Time
	Limit      int
}
