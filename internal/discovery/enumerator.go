package discovery

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Enumerator lists candidate repository directories.
type Enumerator struct {
	logger *zap.Logger
}

func NewEnumerator(logger *zap.Logger) *Enumerator {
	return &Enumerator{
		logger: logger,
	}
}

// CheckDirectory verifies that path exists and is a readable directory.
func (e *Enumerator) CheckDirectory(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return mapError(err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, path)
	}

	return nil
}

// ListDirectories returns the immediate child directories of root sorted by
// name. Symlinks to directories are included, files are ignored.
func (e *Enumerator) ListDirectories(root string) ([]string, error) {
	if err := e.CheckDirectory(root); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, mapError(err)
	}

	directories := lo.FilterMap(entries, func(entry os.DirEntry, _ int) (string, bool) {
		path := filepath.Join(root, entry.Name())
		if entry.IsDir() {
			return path, true
		}

		if entry.Type()&fs.ModeSymlink == 0 {
			return "", false
		}

		info, statErr := os.Stat(path)
		if statErr != nil {
			e.logger.Debug("skipping broken symlink", zap.String("path", path), zap.Error(statErr))
			return "", false
		}

		return path, info.IsDir()
	})

	e.logger.Debug("directories listed",
		zap.String("root", root),
		zap.Int("entries", len(entries)),
		zap.Int("directories", len(directories)))

	return directories, nil
}

func mapError(err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %w", ErrDirectoryNotFound, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	default:
		return fmt.Errorf("%w: %w", ErrReadFailed, err)
	}
}
