package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/takeuforward/portal/internal/app/models"
	"github.com/takeuforward/portal/internal/app/models/dto"
	"github.com/takeuforward/portal/internal/app/repositories"
	"github.com/takeuforward/portal/internal/pkg/apperrors"
	"github.com/takeuforward/portal/internal/pkg/helpers"
	"github.com/takeuforward/portal/internal/pkg/logger"
)

// MentorService defines the interface for mentor-related operations
type MentorService interface {
	ListMentors(ctx context.Context, filter dto.MentorFilter) ([]models.Mentor, error)
	CreateMentor(ctx context.Context, actorID string, req dto.CreateMentorRequest) (*models.Mentor, error)
	GetMyMentor(ctx context.Context, actorID string) (*models.Mentor, error)
	UpdateMyMentor(ctx context.Context, actorID string, req dto.UpdateMentorRequest) (*models.Mentor, error)
}

type mentorServiceImpl struct {
	mentorRepo MentorStore
	authz      ActorChecker
}

// NewMentorService creates a new mentor service instance
func NewMentorService(mentorRepo MentorStore, authz ActorChecker) MentorService {
	return &mentorServiceImpl{mentorRepo: mentorRepo, authz: authz}
}

// ListMentors returns available mentors matching filter
func (s *mentorServiceImpl) ListMentors(ctx context.Context, filter dto.MentorFilter) ([]models.Mentor, error) {
	mentors, err := s.mentorRepo.ListMentors(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error retrieving mentors: %w", err)
	}
	return mentors, nil
}

// CreateMentor registers the actor as a mentor. A user may own one mentor profile.
func (s *mentorServiceImpl) CreateMentor(ctx context.Context, actorID string, req dto.CreateMentorRequest) (*models.Mentor, error) {
	if err := s.authz.EnsureActor(ctx, actorID); err != nil {
		return nil, err
	}

	if _, err := s.mentorRepo.GetMentorByUserID(ctx, actorID); err == nil {
		return nil, apperrors.ErrMentorAlreadyExists
	} else if !errors.Is(err, apperrors.ErrMentorNotFound) {
		return nil, fmt.Errorf("error checking existing mentor: %w", err)
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	mentor := &models.Mentor{
		ID:              uuid.NewString(),
		UserID:          actorID,
		Interests:       helpers.NonNilStrings(req.Interests),
		Availability:    helpers.NilIfBlank(req.Availability),
		ContactWhatsapp: helpers.NilIfBlank(req.ContactWhatsapp),
		ContactEmail:    helpers.NilIfBlank(req.ContactEmail),
		Rating:          0,
		IsAvailable:     isAvailable,
	}

	created, err := s.mentorRepo.CreateMentor(ctx, mentor)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrMentorAlreadyExists, apperrors.ErrReferencedUserMissing) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating mentor: %w", err)
	}

	logger.Info().Str("mentorID", created.ID).Str("userID", actorID).Msg("Mentor created")
	return created, nil
}

// GetMyMentor returns the actor's own mentor profile
func (s *mentorServiceImpl) GetMyMentor(ctx context.Context, actorID string) (*models.Mentor, error) {
	if actorID == "" {
		return nil, apperrors.ErrUnauthorized
	}
	mentor, err := s.mentorRepo.GetMentorByUserID(ctx, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrMentorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error retrieving mentor: %w", err)
	}
	return mentor, nil
}

// UpdateMyMentor applies the supplied fields to the actor's mentor profile.
// An update naming no fields returns the stored profile unchanged.
func (s *mentorServiceImpl) UpdateMyMentor(ctx context.Context, actorID string, req dto.UpdateMentorRequest) (*models.Mentor, error) {
	if req.IsEmpty() {
		return s.GetMyMentor(ctx, actorID)
	}
	if actorID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	mentor, err := s.mentorRepo.UpdateMentorByUserID(ctx, actorID, repositories.UpdateMentorParams{
		Interests:       req.Interests,
		Availability:    req.Availability,
		ContactWhatsapp: req.ContactWhatsapp,
		ContactEmail:    req.ContactEmail,
		IsAvailable:     req.IsAvailable,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrMentorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error updating mentor: %w", err)
	}
	return mentor, nil
}
