package status

import "errors"

var (
	ErrNotRepository     = errors.New("not a repository")
	ErrStatusQueryFailed = errors.New("failed to query status")

	ErrNoHead              = errors.New("no HEAD")
	ErrNoBranchName        = errors.New("HEAD is detached")
	ErrBranchNotFound      = errors.New("local branch not found")
	ErrNoUpstream          = errors.New("no upstream configured")
	ErrRefResolutionFailed = errors.New("failed to resolve reference")
)
