package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"

	"github.com/takeuforward/portal/internal/app/models/dto"
	"github.com/takeuforward/portal/internal/domain"
	"github.com/takeuforward/portal/internal/pkg/apperrors"
	"github.com/takeuforward/portal/internal/pkg/filestorage"
	"github.com/takeuforward/portal/internal/pkg/logger"
)

// FileService stores note documents and returns their public URL
type FileService interface {
	UploadNoteFile(ctx context.Context, actorID string, file *multipart.FileHeader) (*dto.FileUploadResponse, error)
}

type fileServiceImpl struct {
	storage  filestorage.FileStorage
	authz    ActorChecker
	maxBytes int64
}

// NewFileService creates a new file service; maxBytes <= 0 disables the size check
func NewFileService(storage filestorage.FileStorage, authz ActorChecker, maxBytes int64) FileService {
	return &fileServiceImpl{storage: storage, authz: authz, maxBytes: maxBytes}
}

func (s *fileServiceImpl) UploadNoteFile(ctx context.Context, actorID string, file *multipart.FileHeader) (*dto.FileUploadResponse, error) {
	if file == nil {
		return nil, apperrors.NewValidationError("no file uploaded", map[string]string{"file": "is required"})
	}
	if err := s.authz.EnsureActor(ctx, actorID); err != nil {
		return nil, err
	}

	if s.maxBytes > 0 && file.Size > s.maxBytes {
		return nil, apperrors.NewCustomError(apperrors.ErrFileTooLarge,
			fmt.Sprintf("file exceeds the %d MB limit", s.maxBytes>>20))
	}

	name := filepath.Base(file.Filename)
	contentType, ok := domain.NoteFileContentType(name)
	if !ok {
		return nil, apperrors.NewCustomError(apperrors.ErrUnsupportedFile,
			fmt.Sprintf("file type %q is not allowed", filepath.Ext(name)))
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("error opening uploaded file: %w", err)
	}
	defer src.Close()

	stored, err := s.storage.Save(ctx, filestorage.Upload{
		FileName:    name,
		ContentType: contentType,
		Size:        file.Size,
		Body:        src,
	})
	if err != nil {
		return nil, fmt.Errorf("error storing file: %w", err)
	}

	logger.Info().Str("userID", actorID).Str("key", stored.Key).Int64("size", stored.Size).Msg("Note file uploaded")
	return &dto.FileUploadResponse{
		URL:         stored.URL,
		Key:         stored.Key,
		FileName:    stored.FileName,
		Size:        stored.Size,
		ContentType: stored.ContentType,
	}, nil
}
