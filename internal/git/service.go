package git

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v6"
	"go.uber.org/zap"
)

type Service struct {
	logger *zap.Logger
}

// NewService creates a new GitService.
func NewService(logger *zap.Logger) *Service {
	return &Service{
		logger: logger,
	}
}

// Open opens the repository rooted exactly at path. Parent directories are
// not searched.
func (s *Service) Open(path string) (*Repository, error) {
	s.logger.Debug("opening repository", zap.String("path", path))

	repo, err := git.PlainOpen(path)
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return nil, fmt.Errorf("%w: %s", ErrRepositoryNotFound, path)
	}
	if err != nil {
		s.logger.Debug("failed to open repository", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrInvalidRepository, err)
	}

	return &Repository{
		path: path,
		repo: repo,
	}, nil
}
