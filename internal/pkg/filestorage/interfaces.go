package filestorage

import (
	"context"
	"io"

	"github.com/takeuforward/portal/internal/domain"
)

// Upload is a file to be written to storage
type Upload struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// FileStorage defines the interface for file storage operations
type FileStorage interface {
	// Save writes the upload under a fresh key and returns where it can be fetched
	Save(ctx context.Context, upload Upload) (*domain.StoredFile, error)

	// Delete removes the object stored under key; missing objects are not an error
	Delete(ctx context.Context, key string) error
}

func joinURL(base, key string) string {
	for len(base) > 0 && base[len(base)-1] == '/' {
		base = base[:len(base)-1]
	}
	return base + "/" + key
}
