package store

import "fmt"

// ErrNotFound reports a missing run or batch.
type ErrNotFound struct {
	RunID string
}

func (e ErrNotFound) Error() string {
	return fmt.Sprintf("run not found: %s", e.RunID)
}

// IsNotFound reports whether err is an ErrNotFound.
func IsNotFound(err error) bool {
	_, ok := err.(ErrNotFound)
	return ok
}
