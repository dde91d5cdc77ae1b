package vcs

import (
	"fmt"
	"strings"
)

// Kind identifies a version-control backend.
type Kind int

const (
	KindNone Kind = iota
	// KindJJ is the primary backend: the working copy is the pending change.
	KindJJ
	// KindGit is the legacy backend: only the staged index is pending.
	KindGit
)

func (k Kind) String() string {
	switch k {
	case KindJJ:
		return "jj"
	case KindGit:
		return "git"
	default:
		return "none"
	}
}

// ToolNames lists the values accepted by ParseKind.
func ToolNames() []string {
	return []string{KindJJ.String(), KindGit.String()}
}

// ParseKind converts a --tool value. The empty string means no preference.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return KindNone, nil
	case "jj", "jujutsu":
		return KindJJ, nil
	case "git":
		return KindGit, nil
	default:
		return KindNone, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownBackend, name, strings.Join(ToolNames(), ", "))
	}
}
