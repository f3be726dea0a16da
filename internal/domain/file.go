package domain

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// StoredFile describes an object written to file storage
type StoredFile struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	FileName    string `json:"fileName"`
	Size        int64  `json:"size"`
	ContentType string `json:"contentType"`
}

// allowedNoteExtensions are the document formats accepted for note uploads
var allowedNoteExtensions = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".ppt":  "application/vnd.ms-powerpoint",
	".pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	".txt":  "text/plain",
	".md":   "text/markdown",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".zip":  "application/zip",
}

// NoteFileContentType returns the content type for an allowed note file name
func NoteFileContentType(fileName string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(fileName))
	ct, ok := allowedNoteExtensions[ext]
	return ct, ok
}

// NewObjectKey builds a collision-free key under prefix keeping the original extension
func NewObjectKey(prefix, fileName string) string {
	key := uuid.NewString() + strings.ToLower(filepath.Ext(fileName))
	if prefix = strings.Trim(prefix, "/"); prefix != "" {
		return path.Join(prefix, key)
	}
	return key
}
