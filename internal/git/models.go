package git

import "github.com/go-git/go-git/v6"

// StatusEntry represents one changed path reported by the worktree status.
type StatusEntry struct {
	Path     string        // Path relative to the repository root
	Staging  git.StatusCode // Status in the index
	Worktree git.StatusCode // Status in the working tree
}

// Head represents the reference HEAD points to.
type Head struct {
	Name   string // Full reference name, "HEAD" when detached
	Branch string // Short branch name, empty when detached
	Hash   string // Commit hash HEAD resolves to
}
