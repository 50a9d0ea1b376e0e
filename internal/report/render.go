package report

import (
	"fmt"
	"io"

	"github.com/apiarycd/gg/internal/status"
)

var headers = map[status.GitStatus]string{
	status.UnpushedCommits: "Unpushed commits:",
	status.Staged:          "Staged changes:",
	status.Modified:        "Modified:",
}

// Render writes the human-readable summary of r to w.
func Render(w io.Writer, r Report) error {
	for _, path := range r.Failed {
		if _, err := fmt.Fprintf(w, "Could not check status for %s\n", path); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	if r.AllGood() {
		if _, err := fmt.Fprintln(w, "All good!"); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		return nil
	}

	for _, verdict := range Order {
		paths := r.Buckets[verdict]
		if len(paths) == 0 {
			continue
		}

		if _, err := fmt.Fprintln(w, headers[verdict]); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}

		for _, path := range paths {
			if _, err := fmt.Fprintf(w, "  - %s\n", path); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}
		}
	}

	return nil
}
