// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Account is the predicate function for account builders.
type Account func(*sql.Selector)

// Agent is the predicate function for agent builders.
type Agent func(*sql.Selector)

// AgentToken is the predicate function for agenttoken builders.
type AgentToken func(*sql.Selector)

// AuditEntry is the predicate function for auditentry builders.
type AuditEntry func(*sql.Selector)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// JobResult is the predicate function for jobresult builders.
type JobResult func(*sql.Selector)

// RateLimitRule is the predicate function for ratelimitrule builders.
type RateLimitRule func(*sql.Selector)

// RiskScore is the predicate function for riskscore builders.
type RiskScore func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// Violation is the predicate function for violation builders.
type Violation func(*sql.Selector)
