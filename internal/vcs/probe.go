package vcs

import (
	"context"
	"io"

	"github.com/samzong/vmc/internal/cmdexec"
)

// Executor runs one backend tool. cmdexec.Runner satisfies it.
type Executor interface {
	Installed() bool
	Run(ctx context.Context, args ...string) (cmdexec.Result, error)
	RunAttached(ctx context.Context, stdin io.Reader, args ...string) error
}

// Tools holds the executor for each backend.
type Tools struct {
	JJ  Executor
	Git Executor
}

// Availability records which backends are usable in the current directory.
type Availability struct {
	JJ  bool
	Git bool
}

// Has reports whether kind is available.
func (a Availability) Has(kind Kind) bool {
	switch kind {
	case KindJJ:
		return a.JJ
	case KindGit:
		return a.Git
	default:
		return false
	}
}

// Probe checks each backend. A failing check only marks that backend
// unavailable; probing never fails the run.
func Probe(ctx context.Context, tools Tools) Availability {
	return Availability{
		JJ:  probeJJ(ctx, tools.JJ),
		Git: probeGit(ctx, tools.Git),
	}
}

func probeJJ(ctx context.Context, jj Executor) bool {
	if jj == nil || !jj.Installed() {
		return false
	}
	_, err := jj.Run(ctx, "root", "--ignore-working-copy")
	return err == nil
}

func probeGit(ctx context.Context, git Executor) bool {
	if git == nil || !git.Installed() {
		return false
	}
	result, err := git.Run(ctx, "rev-parse", "--is-inside-work-tree")
	return err == nil && result.StdoutString(true) == "true"
}
