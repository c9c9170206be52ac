package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/leadrelay/relay/ent"
	"github.com/leadrelay/relay/ent/account"
	"github.com/leadrelay/relay/ent/user"
	"github.com/leadrelay/relay/pkg/models"
)

const accountDomain = "accounts"

// AccountService is the account registry: it owns the one-to-one
// user↔account binding and the account's observed session-validity and
// health state. It never blocks other subsystems itself: the risk oracle
// consumes these states and issues the verdict.
type AccountService struct {
	client *ent.Client
	audit  *AuditService
}

// NewAccountService creates a new AccountService.
func NewAccountService(client *ent.Client, audit *AuditService) *AccountService {
	return &AccountService{client: client, audit: audit}
}

// CreateAccount binds an account to a user. At most one account per user;
// a second create is rejected.
func (s *AccountService) CreateAccount(ctx context.Context, userID, profileURL, displayName string) (*ent.Account, error) {
	if userID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if profileURL == "" {
		return nil, NewValidationError("profile_url", "required")
	}
	if displayName == "" {
		return nil, NewValidationError("display_name", "required")
	}

	// Validate the referenced user exists.
	exists, err := s.client.User.Query().Where(user.IDEQ(userID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	acct, err := s.client.Account.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetProfileURL(profileURL).
		SetDisplayName(displayName).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.appendAudit(ctx, acct.ID, "account.created", models.ActorUser, userID, map[string]interface{}{
		"profile_url": profileURL,
	})

	return acct, nil
}

// GetByID returns an account by id.
func (s *AccountService) GetByID(ctx context.Context, accountID string) (*ent.Account, error) {
	acct, err := s.client.Account.Get(ctx, accountID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return acct, nil
}

// GetByUserID returns the account bound to a user.
func (s *AccountService) GetByUserID(ctx context.Context, userID string) (*ent.Account, error) {
	acct, err := s.client.Account.Query().
		Where(account.UserIDEQ(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get account by user: %w", err)
	}
	return acct, nil
}

// UpdateValidationStatus records the externally-observed session validity.
// Transitions into EXPIRED or DISCONNECTED emit a boundary audit event.
func (s *AccountService) UpdateValidationStatus(ctx context.Context, accountID string, status account.ValidationStatus) (*ent.Account, error) {
	if err := account.ValidationStatusValidator(status); err != nil {
		return nil, NewValidationError("validation_status", err.Error())
	}

	acct, err := s.client.Account.UpdateOneID(accountID).
		SetValidationStatus(status).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update validation status: %w", err)
	}

	if status == account.ValidationStatusEXPIRED || status == account.ValidationStatusDISCONNECTED {
		s.appendAudit(ctx, acct.ID, "account.validation_changed", models.ActorSystem, "", map[string]interface{}{
			"validation_status": string(status),
		})
	}

	return acct, nil
}

// UpdateHealthStatus records the account's health. SUSPENDED emits a
// boundary audit event.
func (s *AccountService) UpdateHealthStatus(ctx context.Context, accountID string, status account.HealthStatus) (*ent.Account, error) {
	if err := account.HealthStatusValidator(status); err != nil {
		return nil, NewValidationError("health_status", err.Error())
	}

	acct, err := s.client.Account.UpdateOneID(accountID).
		SetHealthStatus(status).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update health status: %w", err)
	}

	if status == account.HealthStatusSUSPENDED {
		s.appendAudit(ctx, acct.ID, "account.suspended", models.ActorSystem, "", nil)
	}

	return acct, nil
}

// MarkSessionValid records a freshly observed valid platform session and
// restores validation status to CONNECTED.
func (s *AccountService) MarkSessionValid(ctx context.Context, accountID string) (*ent.Account, error) {
	acct, err := s.client.Account.UpdateOneID(accountID).
		SetSessionValidAt(time.Now()).
		SetValidationStatus(account.ValidationStatusCONNECTED).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to mark session valid: %w", err)
	}
	return acct, nil
}

// SetUserPaused flips the explicit user pause flag. The risk oracle
// consults it; the registry itself blocks nothing.
func (s *AccountService) SetUserPaused(ctx context.Context, accountID string, paused bool) (*ent.Account, error) {
	acct, err := s.client.Account.UpdateOneID(accountID).
		SetUserPaused(paused).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to set user pause: %w", err)
	}

	event := "account.resumed"
	if paused {
		event = "account.paused"
	}
	s.appendAudit(ctx, acct.ID, event, models.ActorUser, acct.UserID, nil)

	return acct, nil
}

func (s *AccountService) appendAudit(ctx context.Context, accountID, eventType, actorType, actorID string, payload map[string]interface{}) {
	_, err := s.audit.Append(ctx, models.AuditAppend{
		Domain:     accountDomain,
		EventType:  eventType,
		EntityType: "account",
		EntityID:   accountID,
		ActorType:  actorType,
		ActorID:    actorID,
		Payload:    payload,
	})
	if err != nil {
		slog.Error("Failed to append account audit entry",
			"account_id", accountID, "event_type", eventType, "error", err)
	}
}
