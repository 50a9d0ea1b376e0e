package status

import (
	"errors"
	"fmt"
)

// Resolve resolves the current branch and its upstream to commit ids.
func Resolve(repo Repository) (ReferencePair, error) {
	head, err := repo.Head()
	if err != nil {
		return ReferencePair{}, fmt.Errorf("%w: %w", ErrNoHead, err)
	}

	if head.Branch == "" {
		return ReferencePair{}, fmt.Errorf("%w: %s", ErrNoBranchName, head.Name)
	}

	local, err := repo.LocalBranch(head.Branch)
	if err != nil {
		return ReferencePair{}, fmt.Errorf("%w: %w", ErrBranchNotFound, err)
	}

	upstream, err := repo.Upstream(head.Branch)
	if err != nil {
		return ReferencePair{}, fmt.Errorf("%w: %w", ErrNoUpstream, err)
	}

	localID, err := repo.ResolveReference(local)
	if err != nil {
		return ReferencePair{}, fmt.Errorf("%w: %w", ErrRefResolutionFailed, err)
	}

	upstreamID, err := repo.ResolveReference(upstream)
	if err != nil {
		return ReferencePair{}, fmt.Errorf("%w: %w", ErrRefResolutionFailed, err)
	}

	return ReferencePair{
		Local:      local,
		LocalID:    localID,
		Upstream:   upstream,
		UpstreamID: upstreamID,
	}, nil
}

// Inspect is Resolve with the failure kind kept as an Outcome.
func Inspect(repo Repository) Resolution {
	pair, err := Resolve(repo)
	if err == nil {
		return Resolution{Outcome: OutcomeResolved, Pair: pair}
	}

	return Resolution{Outcome: outcomeOf(err), Err: err}
}

func outcomeOf(err error) Outcome {
	switch {
	case errors.Is(err, ErrNoHead):
		return OutcomeNoHead
	case errors.Is(err, ErrNoBranchName):
		return OutcomeDetached
	case errors.Is(err, ErrBranchNotFound):
		return OutcomeBranchNotFound
	case errors.Is(err, ErrNoUpstream):
		return OutcomeNoUpstream
	default:
		return OutcomeResolutionFailed
	}
}
