package status

import "go.uber.org/zap"

// Detector decides whether the current branch differs from its upstream.
type Detector struct {
	logger *zap.Logger
}

func NewDetector(logger *zap.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// HasUnpushedCommits reports whether the local tip differs from the upstream
// tip. Ahead, behind and diverged all count. When the pair cannot be resolved
// the answer is false: a missing upstream reads the same as being in sync.
func (d *Detector) HasUnpushedCommits(repo Repository) bool {
	resolution := Inspect(repo)
	if resolution.Outcome != OutcomeResolved {
		d.logger.Debug("divergence undetermined",
			zap.String("path", repo.Path()),
			zap.Stringer("outcome", resolution.Outcome),
			zap.Error(resolution.Err))
		return false
	}

	return resolution.Diverges()
}
