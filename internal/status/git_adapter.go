package status

import (
	gogit "github.com/go-git/go-git/v6"

	"github.com/apiarycd/gg/internal/git"
)

// gitAdapter adapts a git.Repository to implement the status.Repository interface.
type gitAdapter struct {
	repo *git.Repository
}

// NewGitAdapter creates a new Git adapter.
func NewGitAdapter(repo *git.Repository) Repository {
	return &gitAdapter{repo: repo}
}

func (a *gitAdapter) Path() string {
	return a.repo.Path()
}

func (a *gitAdapter) Statuses() ([]Entry, error) {
	statuses, err := a.repo.Status()
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(statuses))
	for _, s := range statuses {
		entries = append(entries, Entry{
			Path:  s.Path,
			Flags: convertFlags(s.Staging, s.Worktree),
		})
	}

	return entries, nil
}

func (a *gitAdapter) Head() (Head, error) {
	head, err := a.repo.Head()
	if err != nil {
		return Head{}, err
	}

	return Head{Name: head.Name, Branch: head.Branch}, nil
}

func (a *gitAdapter) LocalBranch(name string) (string, error) {
	return a.repo.LocalBranch(name)
}

func (a *gitAdapter) Upstream(branch string) (string, error) {
	return a.repo.Upstream(branch)
}

func (a *gitAdapter) ResolveReference(name string) (string, error) {
	return a.repo.ResolveReference(name)
}

// convertFlags converts go-git status codes to status.Flags.
func convertFlags(staging, worktree gogit.StatusCode) Flags {
	if staging == gogit.Untracked || worktree == gogit.Untracked {
		return WorktreeNew
	}

	var flags Flags

	switch staging {
	case gogit.Added, gogit.Copied:
		flags |= IndexNew
	case gogit.Modified:
		flags |= IndexModified
	case gogit.Deleted:
		flags |= IndexDeleted
	case gogit.Renamed:
		flags |= IndexRenamed
	case gogit.UpdatedButUnmerged:
		flags |= Conflicted
	case gogit.Unmodified, gogit.Untracked:
	}

	switch worktree {
	case gogit.Added:
		flags |= WorktreeNew
	case gogit.Modified:
		flags |= WorktreeModified
	case gogit.Deleted:
		flags |= WorktreeDeleted
	case gogit.Renamed:
		flags |= WorktreeRenamed
	case gogit.UpdatedButUnmerged:
		flags |= Conflicted
	case gogit.Unmodified, gogit.Untracked, gogit.Copied:
	}

	return flags
}
