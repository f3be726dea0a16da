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
	"github.com/takeuforward/portal/internal/pkg/logger"
)

// NoteService defines the interface for note-related operations
type NoteService interface {
	ListNotes(ctx context.Context, filter dto.NoteFilter) ([]models.Note, error)
	CreateNote(ctx context.Context, actorID string, req dto.CreateNoteRequest) (*models.Note, error)
	RecordDownload(ctx context.Context, noteID string) (int, error)
}

type noteServiceImpl struct {
	noteRepo NoteStore
	authz    ActorChecker
}

// NewNoteService creates a new note service instance
func NewNoteService(noteRepo NoteStore, authz ActorChecker) NoteService {
	return &noteServiceImpl{noteRepo: noteRepo, authz: authz}
}

// ListNotes returns notes matching filter, newest first
func (s *noteServiceImpl) ListNotes(ctx context.Context, filter dto.NoteFilter) ([]models.Note, error) {
	notes, err := s.noteRepo.ListNotes(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error retrieving notes: %w", err)
	}
	return notes, nil
}

// CreateNote stores a note uploaded by the actor with zeroed counters
func (s *noteServiceImpl) CreateNote(ctx context.Context, actorID string, req dto.CreateNoteRequest) (*models.Note, error) {
	if req.Semester == nil {
		return nil, apperrors.NewValidationError("invalid request body", map[string]string{"semester": "is required"})
	}
	if err := s.authz.EnsureActor(ctx, actorID); err != nil {
		return nil, err
	}

	pages := 0
	if req.Pages != nil {
		pages = *req.Pages
	}

	note := &models.Note{
		ID:          uuid.NewString(),
		Dept:        strings.TrimSpace(req.Dept),
		Semester:    *req.Semester,
		CourseCode:  strings.TrimSpace(req.CourseCode),
		Title:       strings.TrimSpace(req.Title),
		Description: helpers.NilIfBlank(req.Description),
		FileURL:     strings.TrimSpace(req.FileURL),
		Pages:       pages,
		UploadedBy:  actorID,
		Downloads:   0,
	}

	created, err := s.noteRepo.CreateNote(ctx, note)
	if err != nil {
		if errors.Is(err, apperrors.ErrReferencedUserMissing) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating note: %w", err)
	}

	logger.Info().Str("noteID", created.ID).Str("userID", actorID).Msg("Note created")
	return created, nil
}

// RecordDownload bumps the download counter and returns the new value
func (s *noteServiceImpl) RecordDownload(ctx context.Context, noteID string) (int, error) {
	if strings.TrimSpace(noteID) == "" {
		return 0, apperrors.ErrNoteNotFound
	}

	downloads, err := s.noteRepo.IncrementDownloads(ctx, noteID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoteNotFound) {
			return 0, err
		}
		return 0, fmt.Errorf("error recording download: %w", err)
	}
	return downloads, nil
}
