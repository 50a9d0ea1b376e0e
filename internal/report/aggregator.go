package report

import (
	"context"
	"errors"

	"github.com/apiarycd/gg/internal/status"
	"go.uber.org/zap"
)

type Aggregator struct {
	checker Checker

	logger *zap.Logger
}

func NewAggregator(checker Checker, logger *zap.Logger) *Aggregator {
	return &Aggregator{
		checker: checker,
		logger:  logger,
	}
}

// Aggregate checks candidates one at a time in order and buckets the results.
func (a *Aggregator) Aggregate(ctx context.Context, candidates []string) Report {
	result := newReport()

	for _, path := range candidates {
		verdict, err := a.checker.Check(ctx, path)
		if errors.Is(err, status.ErrNotRepository) {
			a.logger.Debug("skipping non-repository", zap.String("path", path))
			result.Skipped++
			continue
		}
		if err != nil {
			a.logger.Warn("could not check status", zap.String("path", path), zap.Error(err))
			result.Failed = append(result.Failed, path)
			continue
		}

		if verdict == status.NoChanges {
			result.Clean++
			continue
		}

		result.Buckets[verdict] = append(result.Buckets[verdict], path)
	}

	a.logger.Info("scan completed",
		zap.Int("candidates", len(candidates)),
		zap.Int("repositories", result.Repositories()),
		zap.Int("clean", result.Clean),
		zap.Int("failed", len(result.Failed)))

	return result
}
