package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/takeuforward/portal/internal/app/models"
	"github.com/takeuforward/portal/internal/app/models/dto"
	"github.com/takeuforward/portal/internal/pkg/apperrors"
	"github.com/takeuforward/portal/internal/pkg/helpers"
)

// EventService defines the interface for event-related operations
type EventService interface {
	ListEvents(ctx context.Context, filter dto.EventFilter) ([]models.Event, error)
	CreateEvent(ctx context.Context, actorID string, req dto.CreateEventRequest) (*models.Event, error)
}

type eventServiceImpl struct {
	eventRepo EventStore
	authz     ActorChecker
}

// NewEventService creates a new event service instance
func NewEventService(eventRepo EventStore, authz ActorChecker) EventService {
	return &eventServiceImpl{eventRepo: eventRepo, authz: authz}
}

func (s *eventServiceImpl) ListEvents(ctx context.Context, filter dto.EventFilter) ([]models.Event, error) {
	events, err := s.eventRepo.ListEvents(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error retrieving events: %w", err)
	}
	return events, nil
}

func (s *eventServiceImpl) CreateEvent(ctx context.Context, actorID string, req dto.CreateEventRequest) (*models.Event, error) {
	if req.Date == nil {
		return nil, apperrors.NewValidationError("invalid request body", map[string]string{"date": "is required"})
	}
	if err := s.authz.EnsureActor(ctx, actorID); err != nil {
		return nil, err
	}

	event := &models.Event{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(req.Title),
		Description: helpers.NilIfBlank(req.Description),
		Organizer:   strings.TrimSpace(req.Organizer),
		Date:        req.Date.UTC(),
		Location:    helpers.NilIfBlank(req.Location),
		Link:        helpers.NilIfBlank(req.Link),
		Tags:        helpers.NonNilStrings(req.Tags),
		CreatedBy:   actorID,
	}

	created, err := s.eventRepo.CreateEvent(ctx, event)
	if err != nil {
		if errors.Is(err, apperrors.ErrReferencedUserMissing) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating event: %w", err)
	}
	return created, nil
}
