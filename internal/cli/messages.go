package cli

import (
	"errors"

	"github.com/apiarycd/gg/internal/discovery"
)

func environmentMessage(err error) string {
	switch {
	case errors.Is(err, discovery.ErrDirectoryNotFound):
		return "Directory not found."
	case errors.Is(err, discovery.ErrPermissionDenied):
		return "Permission denied."
	case errors.Is(err, discovery.ErrNotDirectory):
		return "Not a directory."
	default:
		return "Could not read directory."
	}
}
