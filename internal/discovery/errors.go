package discovery

import "errors"

var (
	ErrDirectoryNotFound = errors.New("directory not found")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrNotDirectory      = errors.New("not a directory")
	ErrReadFailed        = errors.New("failed to read directory")
)
