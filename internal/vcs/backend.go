// Package vcs detects the active version-control backend and adapts jj and
// git to one interface for checking, diffing and committing changes.
package vcs

import "context"

// Mode selects what happens to a generated message.
type Mode int

const (
	ModePrint Mode = iota
	ModeCommit
	ModeEdit
)

func (m Mode) String() string {
	switch m {
	case ModeCommit:
		return "commit"
	case ModeEdit:
		return "edit"
	default:
		return "print"
	}
}

// MessageFile stores a message on disk for tools that read it from a file.
// *tempfile.Scope satisfies it.
type MessageFile interface {
	Write(data []byte) (string, error)
}

// Backend is implemented by each version-control adapter.
type Backend interface {
	Kind() Kind
	HasPendingChanges(ctx context.Context) (bool, error)
	CaptureDiff(ctx context.Context) (string, error)
	// Apply records message for ModeCommit and ModeEdit. file is only used
	// by adapters that need the message on disk.
	Apply(ctx context.Context, message string, mode Mode, file MessageFile) error
	// NoChangesHint tells the user how to create pending changes.
	NoChangesHint() string
}
