package git

import (
	"errors"
	"fmt"
	"sort"

	"github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing"
)

// remoteLocal is the branch remote value git uses for a local upstream.
const remoteLocal = "."

// Repository is an opened repository handle.
type Repository struct {
	path string
	repo *git.Repository
}

// Path returns the directory the repository was opened from.
func (r *Repository) Path() string {
	return r.path
}

// Status returns index, working tree and untracked entries sorted by path.
// Untracked directories are expanded into their files.
func (r *Repository) Status() ([]StatusEntry, error) {
	worktree, err := r.repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRepository, err)
	}

	status, err := worktree.Status()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStatusFailed, err)
	}

	entries := make([]StatusEntry, 0, len(status))
	for path, fileStatus := range status {
		if fileStatus.Staging == git.Unmodified && fileStatus.Worktree == git.Unmodified {
			continue
		}

		entries = append(entries, StatusEntry{
			Path:     path,
			Staging:  fileStatus.Staging,
			Worktree: fileStatus.Worktree,
		})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })

	return entries, nil
}

// Head returns the reference HEAD points to.
func (r *Repository) Head() (Head, error) {
	ref, err := r.repo.Head()
	if err != nil {
		return Head{}, fmt.Errorf("%w: %w", ErrHeadNotFound, err)
	}

	head := Head{
		Name: ref.Name().String(),
		Hash: ref.Hash().String(),
	}
	if ref.Name().IsBranch() {
		head.Branch = ref.Name().Short()
	}

	return head, nil
}

// LocalBranch returns the full reference name of the local branch.
func (r *Repository) LocalBranch(name string) (string, error) {
	refName := plumbing.NewBranchReferenceName(name)

	if _, err := r.repo.Reference(refName, false); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrBranchNotFound, name, err)
	}

	return refName.String(), nil
}

// Upstream returns the full reference name of the branch's configured
// upstream, e.g. "refs/remotes/origin/main".
func (r *Repository) Upstream(name string) (string, error) {
	branch, err := r.repo.Branch(name)
	if errors.Is(err, git.ErrBranchNotFound) {
		return "", fmt.Errorf("%w: %s", ErrUpstreamNotFound, name)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidRepository, err)
	}

	if branch.Remote == "" || branch.Merge == "" {
		return "", fmt.Errorf("%w: %s", ErrUpstreamNotFound, name)
	}

	if branch.Remote == remoteLocal {
		return branch.Merge.String(), nil
	}

	return plumbing.NewRemoteReferenceName(branch.Remote, branch.Merge.Short()).String(), nil
}

// ResolveReference resolves a full reference name to a commit hash.
func (r *Repository) ResolveReference(name string) (string, error) {
	ref, err := r.repo.Reference(plumbing.ReferenceName(name), true)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrReferenceNotFound, name, err)
	}

	return ref.Hash().String(), nil
}
