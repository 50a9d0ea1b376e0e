package report

import (
	"context"

	"github.com/apiarycd/gg/internal/status"
)

// Checker classifies the repository at a path.
type Checker interface {
	// Check returns status.ErrNotRepository for paths that are not repositories.
	Check(ctx context.Context, path string) (status.GitStatus, error)
}
