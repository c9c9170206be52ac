package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/leadrelay/relay/ent"
	"github.com/leadrelay/relay/ent/account"
	"github.com/leadrelay/relay/ent/ratelimitrule"
	"github.com/leadrelay/relay/ent/riskscore"
	"github.com/leadrelay/relay/ent/violation"
	"github.com/leadrelay/relay/pkg/metrics"
	"github.com/leadrelay/relay/pkg/models"
)

const riskDomain = "risk"

// violationWindow is the rolling window over which unresolved violations
// contribute to the risk score.
const violationWindow = 7 * 24 * time.Hour

// Severity weights for the risk score.
var severityWeights = map[violation.Severity]float64{
	violation.SeverityLOW:      0.1,
	violation.SeverityMEDIUM:   0.3,
	violation.SeverityHIGH:     0.6,
	violation.SeverityCRITICAL: 1.0,
}

// RiskService is the risk oracle: the single authority on whether execution
// is currently permitted for an account, and why. It owns rules, violations
// and risk scores. Veto-only: it never mutates jobs; consumers observe the
// verdict and stop issuing work.
type RiskService struct {
	client   *ent.Client
	accounts *AccountService
	audit    *AuditService
}

// NewRiskService creates a new RiskService.
func NewRiskService(client *ent.Client, accounts *AccountService, audit *AuditService) *RiskService {
	return &RiskService{client: client, accounts: accounts, audit: audit}
}

// CreateRule registers a rate-limit rule.
func (s *RiskService) CreateRule(ctx context.Context, actionType string, maxCount, windowSeconds int) (*ent.RateLimitRule, error) {
	if actionType == "" {
		return nil, NewValidationError("action_type", "required")
	}
	if maxCount <= 0 {
		return nil, NewValidationError("max_count", "must be positive")
	}
	if windowSeconds <= 0 {
		return nil, NewValidationError("window_seconds", "must be positive")
	}

	rule, err := s.client.RateLimitRule.Create().
		SetID(uuid.New().String()).
		SetActionType(actionType).
		SetMaxCount(maxCount).
		SetWindowSeconds(windowSeconds).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create rule: %w", err)
	}
	return rule, nil
}

// ListActiveRules returns active rules, optionally filtered by action type.
func (s *RiskService) ListActiveRules(ctx context.Context, actionType string) ([]*ent.RateLimitRule, error) {
	query := s.client.RateLimitRule.Query().
		Where(ratelimitrule.IsActive(true))
	if actionType != "" {
		query = query.Where(ratelimitrule.ActionTypeEQ(actionType))
	}

	rules, err := query.Order(ent.Asc(ratelimitrule.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rules: %w", err)
	}
	return rules, nil
}

// RecordViolation writes a violation row against an account and rule.
func (s *RiskService) RecordViolation(ctx context.Context, accountID, ruleID, jobID, violationType string, severity violation.Severity) (*ent.Violation, error) {
	if err := violation.SeverityValidator(severity); err != nil {
		return nil, NewValidationError("severity", err.Error())
	}
	if violationType == "" {
		return nil, NewValidationError("violation_type", "required")
	}

	// Validate referenced account and rule through reads.
	if _, err := s.accounts.GetByID(ctx, accountID); err != nil {
		return nil, err
	}
	if _, err := s.client.RateLimitRule.Get(ctx, ruleID); err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get rule: %w", err)
	}

	builder := s.client.Violation.Create().
		SetID(uuid.New().String()).
		SetAccountID(accountID).
		SetRuleID(ruleID).
		SetViolationType(violationType).
		SetSeverity(severity)
	if jobID != "" {
		builder.SetJobID(jobID)
	}

	v, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record violation: %w", err)
	}

	s.appendAudit(ctx, accountID, "risk.violation_recorded", map[string]interface{}{
		"violation_id":   v.ID,
		"violation_type": violationType,
		"severity":       string(severity),
	})

	return v, nil
}

// sessionValidityAction is the action type of the built-in rule backing
// session-expiry violations.
const sessionValidityAction = "SESSION_VALIDITY"

// RecordSessionExpiry records a HIGH violation for a SESSION_EXPIRED job
// failure, creating the built-in session-validity rule on first use.
func (s *RiskService) RecordSessionExpiry(ctx context.Context, accountID, jobID string) (*ent.Violation, error) {
	rule, err := s.client.RateLimitRule.Query().
		Where(
			ratelimitrule.ActionTypeEQ(sessionValidityAction),
			ratelimitrule.IsActive(true),
		).
		First(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return nil, fmt.Errorf("failed to look up session-validity rule: %w", err)
		}
		rule, err = s.client.RateLimitRule.Create().
			SetID(uuid.New().String()).
			SetActionType(sessionValidityAction).
			SetMaxCount(1).
			SetWindowSeconds(int(violationWindow.Seconds())).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				// Raced by a concurrent expiry; reuse the winner's rule.
				rule, err = s.client.RateLimitRule.Query().
					Where(ratelimitrule.ActionTypeEQ(sessionValidityAction)).
					First(ctx)
			}
			if err != nil {
				return nil, fmt.Errorf("failed to create session-validity rule: %w", err)
			}
		}
	}

	return s.RecordViolation(ctx, accountID, rule.ID, jobID, "SESSION_EXPIRED", violation.SeverityHIGH)
}

// AcknowledgeViolation marks a violation resolved. Idempotent: an already
// resolved violation keeps its original resolution time.
func (s *RiskService) AcknowledgeViolation(ctx context.Context, violationID string) (*ent.Violation, error) {
	v, err := s.client.Violation.Get(ctx, violationID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get violation: %w", err)
	}

	if v.ResolvedAt != nil {
		return v, nil
	}

	v, err = v.Update().SetResolvedAt(time.Now()).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acknowledge violation: %w", err)
	}

	s.appendAudit(ctx, v.AccountID, "risk.violation_acknowledged", map[string]interface{}{
		"violation_id": v.ID,
	})

	return v, nil
}

// GetViolation returns a violation by id.
func (s *RiskService) GetViolation(ctx context.Context, violationID string) (*ent.Violation, error) {
	v, err := s.client.Violation.Get(ctx, violationID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get violation: %w", err)
	}
	return v, nil
}

// ListViolations returns violations for an account, newest first.
func (s *RiskService) ListViolations(ctx context.Context, accountID string, unresolvedOnly bool) ([]*ent.Violation, error) {
	query := s.client.Violation.Query().
		Where(violation.AccountIDEQ(accountID))
	if unresolvedOnly {
		query = query.Where(violation.ResolvedAtIsNil())
	}

	violations, err := query.Order(ent.Desc(violation.FieldDetectedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list violations: %w", err)
	}
	return violations, nil
}

// CalculateRiskScore computes and persists the rolling risk score for an
// account: the severity-weighted sum of unresolved violations within the
// window, plus a health penalty, clamped to [0,1].
func (s *RiskService) CalculateRiskScore(ctx context.Context, accountID string) (*ent.RiskScore, error) {
	acct, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	cutoff := time.Now().Add(-violationWindow)
	violations, err := s.client.Violation.Query().
		Where(
			violation.AccountIDEQ(accountID),
			violation.ResolvedAtIsNil(),
			violation.DetectedAtGTE(cutoff),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query violations: %w", err)
	}

	var violationScore float64
	severityCounts := map[string]int{}
	for _, v := range violations {
		violationScore += severityWeights[v.Severity]
		severityCounts[string(v.Severity)]++
	}

	var healthPenalty float64
	switch acct.HealthStatus {
	case account.HealthStatusSUSPENDED:
		healthPenalty = 0.5
	case account.HealthStatusDEGRADED:
		healthPenalty = 0.2
	}

	score := violationScore + healthPenalty
	if score > 1.0 {
		score = 1.0
	}
	if score < 0 {
		score = 0
	}

	level := bucketRiskLevel(score)

	row, err := s.client.RiskScore.Create().
		SetID(uuid.New().String()).
		SetAccountID(accountID).
		SetScore(score).
		SetLevel(level).
		SetFactors(map[string]interface{}{
			"violation_score": violationScore,
			"health_penalty":  healthPenalty,
			"violation_count": len(violations),
			"severity_counts": severityCounts,
			"window_days":     int(violationWindow.Hours() / 24),
			"health_status":   string(acct.HealthStatus),
		}).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to persist risk score: %w", err)
	}

	s.appendAudit(ctx, accountID, "risk.score_calculated", map[string]interface{}{
		"score": score,
		"level": string(level),
	})

	return row, nil
}

// LatestRiskScore returns the most recent score row for an account, or
// ErrNotFound when none was ever calculated.
func (s *RiskService) LatestRiskScore(ctx context.Context, accountID string) (*ent.RiskScore, error) {
	row, err := s.client.RiskScore.Query().
		Where(riskscore.AccountIDEQ(accountID)).
		Order(ent.Desc(riskscore.FieldCalculatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get latest risk score: %w", err)
	}
	return row, nil
}

// IsExecutionAllowed is the veto predicate consulted by dispatch and
// heartbeat. It reads the account row and the latest risk score at call
// time, never cached, so a verdict issued after any state change is fresh.
func (s *RiskService) IsExecutionAllowed(ctx context.Context, accountID string) (models.Verdict, error) {
	acct, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return deny(models.ReasonSessionInvalid), nil
		}
		return models.Verdict{}, err
	}

	if acct.ValidationStatus == account.ValidationStatusEXPIRED ||
		acct.ValidationStatus == account.ValidationStatusDISCONNECTED {
		return deny(models.ReasonSessionInvalid), nil
	}

	if acct.HealthStatus == account.HealthStatusSUSPENDED {
		return deny(models.ReasonRiskPause), nil
	}

	latest, err := s.LatestRiskScore(ctx, accountID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return models.Verdict{}, err
	}
	if latest != nil && latest.Level == riskscore.LevelCRITICAL {
		return deny(models.ReasonRiskPause), nil
	}

	if acct.UserPaused {
		return deny(models.ReasonUserPaused), nil
	}

	return models.Allow(), nil
}

func deny(reason models.VerdictReason) models.Verdict {
	metrics.VerdictRefusals.WithLabelValues(string(reason)).Inc()
	return models.Deny(reason)
}

// bucketRiskLevel maps a clamped score to its level.
func bucketRiskLevel(score float64) riskscore.Level {
	switch {
	case score < 0.3:
		return riskscore.LevelLOW
	case score < 0.6:
		return riskscore.LevelMEDIUM
	case score < 0.8:
		return riskscore.LevelHIGH
	default:
		return riskscore.LevelCRITICAL
	}
}

func (s *RiskService) appendAudit(ctx context.Context, accountID, eventType string, payload map[string]interface{}) {
	_, err := s.audit.Append(ctx, models.AuditAppend{
		Domain:     riskDomain,
		EventType:  eventType,
		EntityType: "account",
		EntityID:   accountID,
		ActorType:  models.ActorSystem,
		Payload:    payload,
	})
	if err != nil {
		slog.Error("Failed to append risk audit entry",
			"account_id", accountID, "event_type", eventType, "error", err)
	}
}
