package filestorage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/takeuforward/portal/internal/domain"
	"github.com/takeuforward/portal/internal/pkg/logger"
)

// LocalStorage handles saving files to the local filesystem.
type LocalStorage struct {
	basePath string // root directory on disk
	baseURL  string // public URL the root directory is served under
	prefix   string
}

// NewLocalStorage creates a new LocalStorage instance.
func NewLocalStorage(basePath, baseURL, prefix string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		baseURL:  baseURL,
		prefix:   prefix,
	}, nil
}

// Root returns the directory files are written to
func (ls *LocalStorage) Root() string {
	return ls.basePath
}

// Save copies the upload to disk under a unique name
func (ls *LocalStorage) Save(ctx context.Context, upload Upload) (*domain.StoredFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := domain.NewObjectKey(ls.prefix, upload.FileName)
	dstPath := filepath.Join(ls.basePath, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create subdirectory: %w", err)
	}

	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return nil, fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, upload.Body)
	if err != nil {
		_ = os.Remove(dstPath)
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		return nil, fmt.Errorf("failed to save file content: %w", err)
	}

	stored := &domain.StoredFile{
		Key:         key,
		URL:         joinURL(ls.baseURL, key),
		FileName:    upload.FileName,
		Size:        written,
		ContentType: upload.ContentType,
	}
	logger.Info().Str("filename", upload.FileName).Str("key", key).Msg("File saved successfully")
	return stored, nil
}

// Delete removes a stored file. Keys escaping the storage root are rejected.
func (ls *LocalStorage) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	clean := filepath.Clean(filepath.FromSlash(key))
	if filepath.IsAbs(clean) || clean == "." || strings.HasPrefix(clean, "..") {
		return fmt.Errorf("invalid file key: %s", key)
	}

	physicalPath := filepath.Join(ls.basePath, clean)
	if err := os.Remove(physicalPath); err != nil {
		if os.IsNotExist(err) {
			logger.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
			return nil
		}
		logger.Error().Err(err).Str("path", physicalPath).Msg("Failed to delete file")
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
