package defaults

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// FileStore keeps the default directory as a single line of text. The file is
// rewritten wholesale on every Set.
type FileStore struct {
	path string

	logger *zap.Logger
}

func NewFileStore(path string, logger *zap.Logger) *FileStore {
	return &FileStore{
		path:   path,
		logger: logger,
	}
}

func (s *FileStore) Get(_ context.Context) (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", ErrNoDefault
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrStoreFailed, err)
	}

	dir := strings.TrimSpace(string(data))
	if dir == "" {
		return "", ErrNoDefault
	}

	return dir, nil
}

func (s *FileStore) Set(_ context.Context, path string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreFailed, err)
	}

	if err := os.WriteFile(s.path, []byte(path+"\n"), 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreFailed, err)
	}

	s.logger.Debug("default directory stored", zap.String("file", s.path), zap.String("path", path))

	return nil
}

var _ Store = (*FileStore)(nil)
