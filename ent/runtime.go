// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/leadrelay/relay/ent/account"
	"github.com/leadrelay/relay/ent/agent"
	"github.com/leadrelay/relay/ent/agenttoken"
	"github.com/leadrelay/relay/ent/auditentry"
	"github.com/leadrelay/relay/ent/job"
	"github.com/leadrelay/relay/ent/jobresult"
	"github.com/leadrelay/relay/ent/ratelimitrule"
	"github.com/leadrelay/relay/ent/riskscore"
	"github.com/leadrelay/relay/ent/schema"
	"github.com/leadrelay/relay/ent/user"
	"github.com/leadrelay/relay/ent/violation"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	accountFields := schema.Account{}.Fields()
	_ = accountFields
	// accountDescUserPaused is the schema descriptor for user_paused field.
	accountDescUserPaused := accountFields[6].Descriptor()
	// account.DefaultUserPaused holds the default value on creation for the user_paused field.
	account.DefaultUserPaused = accountDescUserPaused.Default.(bool)
	// accountDescCreatedAt is the schema descriptor for created_at field.
	accountDescCreatedAt := accountFields[9].Descriptor()
	// account.DefaultCreatedAt holds the default value on creation for the created_at field.
	account.DefaultCreatedAt = accountDescCreatedAt.Default.(func() time.Time)
	agentFields := schema.Agent{}.Fields()
	_ = agentFields
	// agentDescRegisteredAt is the schema descriptor for registered_at field.
	agentDescRegisteredAt := agentFields[6].Descriptor()
	// agent.DefaultRegisteredAt holds the default value on creation for the registered_at field.
	agent.DefaultRegisteredAt = agentDescRegisteredAt.Default.(func() time.Time)
	agenttokenFields := schema.AgentToken{}.Fields()
	_ = agenttokenFields
	// agenttokenDescCreatedAt is the schema descriptor for created_at field.
	agenttokenDescCreatedAt := agenttokenFields[6].Descriptor()
	// agenttoken.DefaultCreatedAt holds the default value on creation for the created_at field.
	agenttoken.DefaultCreatedAt = agenttokenDescCreatedAt.Default.(func() time.Time)
	auditentryFields := schema.AuditEntry{}.Fields()
	_ = auditentryFields
	// auditentryDescCreatedAt is the schema descriptor for created_at field.
	auditentryDescCreatedAt := auditentryFields[8].Descriptor()
	// auditentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditentry.DefaultCreatedAt = auditentryDescCreatedAt.Default.(func() time.Time)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescPriority is the schema descriptor for priority field.
	jobDescPriority := jobFields[8].Descriptor()
	// job.DefaultPriority holds the default value on creation for the priority field.
	job.DefaultPriority = jobDescPriority.Default.(int)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[11].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	jobresultFields := schema.JobResult{}.Fields()
	_ = jobresultFields
	// jobresultDescCompletedAt is the schema descriptor for completed_at field.
	jobresultDescCompletedAt := jobresultFields[6].Descriptor()
	// jobresult.DefaultCompletedAt holds the default value on creation for the completed_at field.
	jobresult.DefaultCompletedAt = jobresultDescCompletedAt.Default.(func() time.Time)
	ratelimitruleFields := schema.RateLimitRule{}.Fields()
	_ = ratelimitruleFields
	// ratelimitruleDescIsActive is the schema descriptor for is_active field.
	ratelimitruleDescIsActive := ratelimitruleFields[4].Descriptor()
	// ratelimitrule.DefaultIsActive holds the default value on creation for the is_active field.
	ratelimitrule.DefaultIsActive = ratelimitruleDescIsActive.Default.(bool)
	// ratelimitruleDescCreatedAt is the schema descriptor for created_at field.
	ratelimitruleDescCreatedAt := ratelimitruleFields[5].Descriptor()
	// ratelimitrule.DefaultCreatedAt holds the default value on creation for the created_at field.
	ratelimitrule.DefaultCreatedAt = ratelimitruleDescCreatedAt.Default.(func() time.Time)
	riskscoreFields := schema.RiskScore{}.Fields()
	_ = riskscoreFields
	// riskscoreDescCalculatedAt is the schema descriptor for calculated_at field.
	riskscoreDescCalculatedAt := riskscoreFields[5].Descriptor()
	// riskscore.DefaultCalculatedAt holds the default value on creation for the calculated_at field.
	riskscore.DefaultCalculatedAt = riskscoreDescCalculatedAt.Default.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[3].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	violationFields := schema.Violation{}.Fields()
	_ = violationFields
	// violationDescDetectedAt is the schema descriptor for detected_at field.
	violationDescDetectedAt := violationFields[6].Descriptor()
	// violation.DefaultDetectedAt holds the default value on creation for the detected_at field.
	violation.DefaultDetectedAt = violationDescDetectedAt.Default.(func() time.Time)
}
