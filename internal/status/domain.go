package status

// Repository represents the version control primitives classification needs.
type Repository interface {
	// Path returns the repository root directory.
	Path() string

	// Statuses returns index, working tree and untracked entries in a fixed order.
	Statuses() ([]Entry, error)

	// Head returns the reference HEAD points to.
	Head() (Head, error)

	// LocalBranch returns the full reference name of the named local branch.
	LocalBranch(name string) (string, error)

	// Upstream returns the full reference name of the branch's upstream.
	Upstream(branch string) (string, error)

	// ResolveReference resolves a full reference name to a commit id.
	ResolveReference(name string) (string, error)
}
