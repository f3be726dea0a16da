package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/takeuforward/portal/internal/app/models"
	"github.com/takeuforward/portal/internal/app/models/dto"
	"github.com/takeuforward/portal/internal/app/repositories"
	"github.com/takeuforward/portal/internal/pkg/apperrors"
	"github.com/takeuforward/portal/internal/pkg/helpers"
	"github.com/takeuforward/portal/internal/pkg/logger"
)

// UserService defines the interface for user-related operations
type UserService interface {
	GetCurrentUser(ctx context.Context, userID string) (*models.User, error)
	UpsertProfile(ctx context.Context, userID string, req dto.UpsertProfileRequest) (*models.User, error)
	SyncIdentity(ctx context.Context, claims dto.IdentityClaims) (*models.User, error)
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	userRepo UserStore
}

// NewUserService creates a new user service instance
func NewUserService(userRepo UserStore) UserService {
	return &userServiceImpl{userRepo: userRepo}
}

// GetCurrentUser returns the session's user. A session whose user row is gone is unauthenticated.
func (s *userServiceImpl) GetCurrentUser(ctx context.Context, userID string) (*models.User, error) {
	if userID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.NewCustomError(apperrors.ErrUnauthorized, "user not found")
		}
		return nil, fmt.Errorf("error retrieving current user: %w", err)
	}
	return user, nil
}

// UpsertProfile merges the supplied fields into the caller's user row, creating it when absent
func (s *userServiceImpl) UpsertProfile(ctx context.Context, userID string, req dto.UpsertProfileRequest) (*models.User, error) {
	if userID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	params := repositories.UpsertUserParams{
		ID:              userID,
		Email:           helpers.NilIfBlank(req.Email),
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		ProfileImageURL: req.ProfileImageURL,
		Year:            req.Year,
		Program:         req.Program,
		Department:      req.Department,
		Intro:           req.Intro,
		Skills:          req.Skills,
		Phone:           req.Phone,
		Socials:         req.Socials,
	}

	user, err := s.userRepo.UpsertUser(ctx, params)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error upserting profile: %w", err)
	}

	logger.Info().Str("userID", userID).Msg("Profile upserted")
	return user, nil
}

// SyncIdentity stores the identity provider's view of the user after login.
// Only non-empty claims are written so profile edits survive later logins.
func (s *userServiceImpl) SyncIdentity(ctx context.Context, claims dto.IdentityClaims) (*models.User, error) {
	if claims.Subject == "" {
		return nil, apperrors.NewCustomError(apperrors.ErrLoginFailed, "identity token has no subject")
	}

	params := repositories.UpsertUserParams{
		ID:              claims.Subject,
		Email:           helpers.NilIfBlank(&claims.Email),
		FirstName:       helpers.NilIfBlank(&claims.FirstName),
		LastName:        helpers.NilIfBlank(&claims.LastName),
		ProfileImageURL: helpers.NilIfBlank(&claims.ProfileImageURL),
	}

	user, err := s.userRepo.UpsertUser(ctx, params)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error syncing identity: %w", err)
	}
	return user, nil
}
