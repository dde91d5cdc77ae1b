package vcs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/samzong/vmc/internal/cmdexec"
)

// Git adapts Git. Only staged changes are pending.
type Git struct {
	exec Executor
}

// NewGit returns a git adapter running commands through exec.
func NewGit(exec Executor) *Git {
	return &Git{exec: exec}
}

func (g *Git) Kind() Kind { return KindGit }

func (g *Git) NoChangesHint() string {
	return "no staged Git changes found; stage files first with `git add <path>`"
}

// HasPendingChanges relies on `git diff --quiet` exiting 1 when the index
// differs from HEAD.
func (g *Git) HasPendingChanges(ctx context.Context) (bool, error) {
	result, err := g.exec.Run(ctx, "diff", "--cached", "--quiet")
	if err == nil {
		return false, nil
	}
	var exitErr *cmdexec.ExitError
	if errors.As(err, &exitErr) && exitErr.Code == 1 {
		return true, nil
	}
	return false, cmdexec.Wrap("failed to check staged changes", result, err)
}

func (g *Git) CaptureDiff(ctx context.Context) (string, error) {
	result, err := g.exec.Run(ctx, "diff", "--cached", "--no-color", "--no-ext-diff")
	if err != nil {
		return "", cmdexec.Wrap("failed to get git diff", result, err)
	}
	diff := result.StdoutString(false)
	if strings.TrimSpace(diff) == "" {
		return "", ErrInconsistentDiff
	}
	return diff, nil
}

// Apply commits the staged index. Edit mode hands the message to git's own
// editor integration, so file is unused.
func (g *Git) Apply(ctx context.Context, message string, mode Mode, _ MessageFile) error {
	var args []string
	switch mode {
	case ModeCommit:
		args = []string{"commit", "--message", message}
	case ModeEdit:
		args = []string{"commit", "--edit", "--message", message}
	default:
		return fmt.Errorf("git adapter cannot apply mode %s", mode)
	}

	if err := g.exec.RunAttached(ctx, nil, args...); err != nil {
		return fmt.Errorf("failed to commit changes: %w", err)
	}
	return nil
}
