package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/leadrelay/relay/ent"
	"github.com/leadrelay/relay/ent/user"
)

// IdentityService owns users. User credentials are minted by the upstream
// identity provider; the core only resolves an externally-issued bearer
// token to an internal user.
type IdentityService struct {
	client *ent.Client
}

// NewIdentityService creates a new IdentityService.
func NewIdentityService(client *ent.Client) *IdentityService {
	return &IdentityService{client: client}
}

// ResolveBearer maps a user bearer token to its user. Pure lookup.
func (s *IdentityService) ResolveBearer(ctx context.Context, token string) (*ent.User, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}

	u, err := s.client.User.Query().
		Where(user.TokenHashEQ(hashToken(token))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to resolve user token: %w", err)
	}
	return u, nil
}

// GetUser returns a user by id.
func (s *IdentityService) GetUser(ctx context.Context, userID string) (*ent.User, error) {
	u, err := s.client.User.Get(ctx, userID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

// EnsureUser upserts the user row for an externally-authenticated principal.
// Called by the identity-provider integration when a credential is issued or
// refreshed; repeat calls with the same email rotate the stored token hash.
func (s *IdentityService) EnsureUser(ctx context.Context, email, token string) (*ent.User, error) {
	if email == "" {
		return nil, NewValidationError("email", "required")
	}
	if token == "" {
		return nil, NewValidationError("token", "required")
	}

	existing, err := s.client.User.Query().
		Where(user.EmailEQ(email)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if existing != nil {
		updated, err := existing.Update().
			SetTokenHash(hashToken(token)).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to rotate user token: %w", err)
		}
		return updated, nil
	}

	created, err := s.client.User.Create().
		SetID(uuid.New().String()).
		SetEmail(email).
		SetTokenHash(hashToken(token)).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return created, nil
}
