package status

// GitStatus is the single most urgent state of a repository.
type GitStatus int

const (
	NoChanges GitStatus = iota
	Modified
	Staged
	UnpushedCommits
)

func (s GitStatus) String() string {
	switch s {
	case NoChanges:
		return "no_changes"
	case Modified:
		return "modified"
	case Staged:
		return "staged"
	case UnpushedCommits:
		return "unpushed_commits"
	default:
		return "unknown"
	}
}

// Flags is a set of change flags of a status entry.
type Flags uint16

const (
	IndexNew Flags = 1 << iota
	IndexModified
	IndexDeleted
	IndexRenamed
	IndexTypeChange
	WorktreeNew
	WorktreeModified
	WorktreeDeleted
	WorktreeRenamed
	WorktreeTypeChange
	Conflicted
)

const (
	stagedFlags   = IndexNew | IndexModified | IndexDeleted
	modifiedFlags = WorktreeModified | WorktreeDeleted
)

// Intersects reports whether any flag of other is set in f.
func (f Flags) Intersects(other Flags) bool {
	return f&other != 0
}

// Entry is one changed path. Only Flags take part in classification.
type Entry struct {
	Path  string
	Flags Flags
}

// Head is the reference HEAD points to.
type Head struct {
	Name   string // Full reference name
	Branch string // Short branch name, empty when detached
}

// ReferencePair holds the current branch and its upstream, both resolved.
type ReferencePair struct {
	Local      string // Local reference name
	LocalID    string // Local commit id
	Upstream   string // Upstream reference name
	UpstreamID string // Upstream commit id
}

// Diverges reports whether the local and upstream tips differ.
func (p ReferencePair) Diverges() bool {
	return p.LocalID != p.UpstreamID
}

// Outcome is how far reference resolution got.
type Outcome int

const (
	OutcomeResolved Outcome = iota
	OutcomeNoHead
	OutcomeDetached
	OutcomeBranchNotFound
	OutcomeNoUpstream
	OutcomeResolutionFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeResolved:
		return "resolved"
	case OutcomeNoHead:
		return "no_head"
	case OutcomeDetached:
		return "detached"
	case OutcomeBranchNotFound:
		return "branch_not_found"
	case OutcomeNoUpstream:
		return "no_upstream"
	case OutcomeResolutionFailed:
		return "resolution_failed"
	default:
		return "unknown"
	}
}

// Resolution is the result of resolving the current branch pair.
// Pair is only meaningful when Outcome is OutcomeResolved.
type Resolution struct {
	Outcome Outcome
	Pair    ReferencePair
	Err     error
}

// Diverges reports whether the pair resolved and the tips differ.
func (r Resolution) Diverges() bool {
	return r.Outcome == OutcomeResolved && r.Pair.Diverges()
}
