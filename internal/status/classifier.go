package status

import (
	"fmt"

	"go.uber.org/zap"
)

type state int

const (
	stateScanning state = iota
	stateStagedFound
	stateModifiedFound
	stateUnpushedFound
	stateClean
)

func (s state) verdict() GitStatus {
	switch s {
	case stateStagedFound:
		return Staged
	case stateModifiedFound:
		return Modified
	case stateUnpushedFound:
		return UnpushedCommits
	default:
		return NoChanges
	}
}

// Classifier picks one GitStatus per repository.
type Classifier struct {
	detector *Detector

	logger *zap.Logger
}

func NewClassifier(detector *Detector, logger *zap.Logger) *Classifier {
	return &Classifier{
		detector: detector,
		logger:   logger,
	}
}

// Classify walks the status entries in order. A staged entry settles the
// verdict at once; a modified entry outranks unpushed commits. Divergence is
// only checked for entries that are neither staged nor modified, so a
// repository without entries is never checked for unpushed commits.
func (c *Classifier) Classify(repo Repository) (GitStatus, error) {
	entries, err := repo.Statuses()
	if err != nil {
		return NoChanges, fmt.Errorf("%w: %w", ErrStatusQueryFailed, err)
	}

	current := stateScanning
	for _, entry := range entries {
		current = c.step(repo, current, entry)
		if current == stateStagedFound {
			break
		}
	}

	if current == stateScanning {
		current = stateClean
	}

	c.logger.Debug("repository classified",
		zap.String("path", repo.Path()),
		zap.Int("entries", len(entries)),
		zap.Stringer("status", current.verdict()))

	return current.verdict(), nil
}

func (c *Classifier) step(repo Repository, current state, entry Entry) state {
	switch {
	case entry.Flags.Intersects(stagedFlags):
		return stateStagedFound
	case entry.Flags.Intersects(modifiedFlags):
		return stateModifiedFound
	case current == stateScanning && c.detector.HasUnpushedCommits(repo):
		return stateUnpushedFound
	default:
		return current
	}
}
