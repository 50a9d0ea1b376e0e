package status

import (
	"context"
	"fmt"

	"github.com/apiarycd/gg/internal/git"
	"go.uber.org/zap"
)

type Service struct {
	gitSvc     *git.Service
	classifier *Classifier

	logger *zap.Logger
}

func NewService(gitSvc *git.Service, classifier *Classifier, logger *zap.Logger) *Service {
	return &Service{
		gitSvc:     gitSvc,
		classifier: classifier,
		logger:     logger,
	}
}

// Check opens the repository at path and classifies it. The handle is
// released when Check returns. A path that is not a repository root yields
// ErrNotRepository.
func (s *Service) Check(_ context.Context, path string) (GitStatus, error) {
	repo, err := s.gitSvc.Open(path)
	if err != nil {
		return NoChanges, fmt.Errorf("%w: %w", ErrNotRepository, err)
	}

	verdict, err := s.classifier.Classify(NewGitAdapter(repo))
	if err != nil {
		s.logger.Error("failed to classify repository", zap.String("path", path), zap.Error(err))
		return NoChanges, err
	}

	return verdict, nil
}
