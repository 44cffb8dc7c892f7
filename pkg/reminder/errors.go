package reminder

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by a KV when no value is stored under a key.
var ErrNotFound = errors.New("reminder: key not found")

// ValidationError rejects a reminder that cannot be stored.
type ValidationError struct {
	Date   Date
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("reminder: invalid reminder for %s: %s", e.Date, e.Reason)
}

// PersistError reports that the durable write after a mutation failed. It is a
// warning: the map returned alongside it already reflects the mutation and
// should be kept for the rest of the session.
type PersistError struct {
	Namespace string
	Err       error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("reminder: persist %q: %v", e.Namespace, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}

// IsWarning reports whether err only carries a persistence warning.
func IsWarning(err error) bool {
	var pe *PersistError
	return errors.As(err, &pe)
}
