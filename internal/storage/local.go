package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrFileNotFound is returned when a stored file cannot be located.
var ErrFileNotFound = errors.New("file not found")

// FileStore persists uploaded documents (CVs, agreement PDFs) and
// hands back the URL under which they are served.
type FileStore interface {
	Store(data []byte, originalName string) (url string, err error)
	Open(name string) (path string, err error)
}

type localFileStore struct {
	dir     string
	baseURL string
}

// NewLocalFileStore creates a FileStore writing to a local directory.
// The directory is created on first use if it does not exist.
func NewLocalFileStore(dir, baseURL string) (FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage dir: %w", err)
	}
	return &localFileStore{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Store writes the file under a random name, keeping the original
// extension, and returns its download URL.
func (s *localFileStore) Store(data []byte, originalName string) (string, error) {
	ext := filepath.Ext(originalName)
	name := uuid.New().String() + ext
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to store file: %w", err)
	}
	return s.baseURL + "/" + name, nil
}

// Open resolves a stored file name to its path on disk. Names are
// sanitized to the base component so a crafted name cannot escape the
// storage directory.
func (s *localFileStore) Open(name string) (string, error) {
	path := filepath.Join(s.dir, filepath.Base(name))
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", ErrFileNotFound
		}
		return "", err
	}
	return path, nil
}
