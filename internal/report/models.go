package report

import "github.com/apiarycd/gg/internal/status"

// Order is the order buckets are printed in.
var Order = []status.GitStatus{
	status.UnpushedCommits,
	status.Staged,
	status.Modified,
}

// Report holds repository paths bucketed by status, in enumeration order.
type Report struct {
	Buckets map[status.GitStatus][]string // Paths per non-clean status
	Clean   int                           // Number of repositories without changes
	Failed  []string                      // Repositories whose status could not be checked
	Skipped int                           // Candidates that are not repositories
}

func newReport() Report {
	return Report{
		Buckets: make(map[status.GitStatus][]string, len(Order)),
	}
}

// Repositories returns the number of repositories that were opened.
func (r Report) Repositories() int {
	total := r.Clean + len(r.Failed)
	for _, paths := range r.Buckets {
		total += len(paths)
	}

	return total
}

// AllGood reports whether every repository has no changes.
func (r Report) AllGood() bool {
	return r.Clean == r.Repositories()
}
