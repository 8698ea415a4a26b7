// pkg/filestorage/local_filestorage.go

package filestorage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStorageInterface gives read access to documents stored flat in one directory.
type FileStorageInterface interface {
	Read(name string) ([]byte, error)
	Path(name string) (string, error)
}

type LocalFileStorage struct {
	basePath string
}

func NewLocalFileStorage(basePath string) (FileStorageInterface, error) {
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve storage path %q: %w", basePath, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("storage directory %q: %w", abs, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("storage path %q is not a directory", abs)
	}
	return &LocalFileStorage{basePath: abs}, nil
}

// Path returns the absolute path of name. Only plain file names inside the
// base directory are allowed.
func (s *LocalFileStorage) Path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("invalid file name %q: %w", name, os.ErrNotExist)
	}
	return filepath.Join(s.basePath, name), nil
}

func (s *LocalFileStorage) Read(name string) ([]byte, error) {
	path, err := s.Path(name)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}
