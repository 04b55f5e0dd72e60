package service

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ImageStore writes uploaded meter photos into a local directory under
// generated unique filenames.
type ImageStore struct {
	dir string
}

// NewImageStore creates the storage directory if needed.
func NewImageStore(dir string) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("image store: create dir: %w", err)
	}
	return &ImageStore{dir: dir}, nil
}

// Save streams the upload to disk and returns the generated filename. The
// bytes are stored as received; no decoding or processing happens.
func (s *ImageStore) Save(r io.Reader) (string, error) {
	filename := uuid.NewString() + ".jpg"

	f, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return "", fmt.Errorf("image store: create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("image store: write file: %w", err)
	}
	return filename, nil
}
