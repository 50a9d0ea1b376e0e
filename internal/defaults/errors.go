package defaults

import "errors"

var (
	ErrNoDefault   = errors.New("no default directory stored")
	ErrStoreFailed = errors.New("default directory store failed")
)
