package defaults

import "context"

// Store persists the directory scanned when no path is given.
type Store interface {
	// Get returns the stored directory or ErrNoDefault.
	Get(ctx context.Context) (string, error)

	// Set replaces the stored directory.
	Set(ctx context.Context, path string) error
}
