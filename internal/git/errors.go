package git

import "errors"

var (
	ErrRepositoryNotFound = errors.New("repository not found")
	ErrInvalidRepository  = errors.New("invalid repository")
	ErrHeadNotFound       = errors.New("HEAD not found")
	ErrBranchNotFound     = errors.New("branch not found")
	ErrUpstreamNotFound   = errors.New("upstream not configured")
	ErrReferenceNotFound  = errors.New("reference not found")
	ErrStatusFailed       = errors.New("failed to get status")
)
