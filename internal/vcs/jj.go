package vcs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/samzong/vmc/internal/cmdexec"
)

// JJ adapts Jujutsu. Every file change in the working copy is pending.
type JJ struct {
	exec Executor
}

// NewJJ returns a jj adapter running commands through exec.
func NewJJ(exec Executor) *JJ {
	return &JJ{exec: exec}
}

func (j *JJ) Kind() Kind { return KindJJ }

func (j *JJ) NoChangesHint() string {
	return "no working-copy changes found in jj; check `jj status`"
}

func (j *JJ) HasPendingChanges(ctx context.Context) (bool, error) {
	result, err := j.exec.Run(ctx, "diff", "--summary", "--color", "never")
	if err != nil {
		return false, cmdexec.Wrap("failed to summarize jj working-copy changes", result, err)
	}
	return result.StdoutString(true) != "", nil
}

func (j *JJ) CaptureDiff(ctx context.Context) (string, error) {
	result, err := j.exec.Run(ctx, "diff", "--git", "--color", "never")
	if err != nil {
		return "", cmdexec.Wrap("failed to get jj diff", result, err)
	}
	diff := result.StdoutString(false)
	if strings.TrimSpace(diff) == "" {
		return "", ErrInconsistentDiff
	}
	return diff, nil
}

func (j *JJ) Apply(ctx context.Context, message string, mode Mode, file MessageFile) error {
	switch mode {
	case ModeCommit:
		if err := j.exec.RunAttached(ctx, nil, "commit", "--message", message); err != nil {
			return fmt.Errorf("failed to commit jj change: %w", err)
		}
		return nil
	case ModeEdit:
		return j.describe(ctx, message, file)
	default:
		return fmt.Errorf("jj adapter cannot apply mode %s", mode)
	}
}

// describe hands the message file to `jj describe`, which opens the
// configured editor pre-filled with it.
func (j *JJ) describe(ctx context.Context, message string, file MessageFile) error {
	if file == nil {
		return errors.New("jj edit requires a message file")
	}
	path, err := file.Write([]byte(message))
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open message file: %w", err)
	}
	defer f.Close()

	if err := j.exec.RunAttached(ctx, f, "describe", "--stdin", "--edit"); err != nil {
		return fmt.Errorf("failed to describe jj change: %w", err)
	}
	return nil
}
