package auth

import (
	"context"
	"fmt"

	"github.com/takeuforward/portal/internal/pkg/apperrors"
	"github.com/takeuforward/portal/internal/pkg/logger"
)

// UserLookup is the user store subset authorization needs
type UserLookup interface {
	UserExists(ctx context.Context, id string) (bool, error)
}

// AuthorizationService checks that an authenticated actor may own new rows
type AuthorizationService struct {
	users UserLookup
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(users UserLookup) *AuthorizationService {
	return &AuthorizationService{users: users}
}

// EnsureActor verifies the actor id is set and names an existing user.
// A valid session whose user row is gone yields ErrReferencedUserMissing.
func (s *AuthorizationService) EnsureActor(ctx context.Context, actorID string) error {
	if actorID == "" {
		return apperrors.ErrUnauthorized
	}

	exists, err := s.users.UserExists(ctx, actorID)
	if err != nil {
		logger.Error().Err(err).Str("userID", actorID).Msg("Error checking actor exists")
		return fmt.Errorf("check actor: %w", err)
	}
	if !exists {
		return apperrors.ErrReferencedUserMissing
	}
	return nil
}
