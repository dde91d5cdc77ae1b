package vcs

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownBackend     = errors.New("invalid backend name")
	ErrNoRepository       = errors.New("no recognized repository: not inside a jj or git repository")
	ErrBackendUnavailable = errors.New("requested backend not usable")
	// ErrInconsistentDiff means pending changes were reported but the
	// captured diff came back empty.
	ErrInconsistentDiff = errors.New("internal consistency error: pending changes detected but the diff is empty")
)

// NoChangesError is returned by the change-set guard when there is nothing
// to describe.
type NoChangesError struct {
	Kind Kind
	Hint string
}

func (e *NoChangesError) Error() string {
	return e.Hint
}

// IsNoChanges reports whether err came from the change-set guard.
func IsNoChanges(err error) bool {
	var target *NoChangesError
	return errors.As(err, &target)
}

func unavailable(kind Kind) error {
	return fmt.Errorf("%w: %s is not installed or the current directory is not a %s repository",
		ErrBackendUnavailable, kind, kind)
}
