package workflow

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/samzong/vmc/internal/ui"
	"github.com/samzong/vmc/internal/vcs"
)

// Options is fixed for the whole run.
type Options struct {
	Model string
	Mode  vcs.Mode
	// TempDir holds the edit-mode message file; empty means os.TempDir.
	TempDir   string
	Stdin     io.Reader
	OutWriter io.Writer
	ErrWriter io.Writer
}

// Flow drives one run against a selected backend.
type Flow struct {
	backend vcs.Backend
	gen     Generator
	opts    Options
}

func NewFlow(backend vcs.Backend, gen Generator, opts Options) *Flow {
	if opts.OutWriter == nil {
		opts.OutWriter = os.Stdout
	}
	if opts.ErrWriter == nil {
		opts.ErrWriter = os.Stderr
	}
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	return &Flow{backend: backend, gen: gen, opts: opts}
}

// Run executes every step in order and stops at the first error.
func (f *Flow) Run(ctx context.Context) error {
	if err := f.checkPending(ctx); err != nil {
		return err
	}

	diff, err := f.backend.CaptureDiff(ctx)
	if err != nil {
		return err
	}

	message, err := f.generate(ctx, diff)
	if err != nil {
		return err
	}

	return f.dispatch(ctx, message)
}

// checkPending fails fast so an empty change set never reaches the
// generation service.
func (f *Flow) checkPending(ctx context.Context) error {
	pending, err := f.backend.HasPendingChanges(ctx)
	if err != nil {
		return err
	}
	if !pending {
		return &vcs.NoChangesError{Kind: f.backend.Kind(), Hint: f.backend.NoChangesHint()}
	}
	return nil
}

func (f *Flow) generate(ctx context.Context, diff string) (string, error) {
	status := fmt.Sprintf("Generating commit message with %s...", f.opts.Model)
	sp := ui.NewSpinner(f.opts.ErrWriter, status)
	if !sp.Enabled() {
		fmt.Fprintln(f.opts.ErrWriter, status)
	}

	sp.Start()
	message, err := f.gen.GenerateCommitMessage(ctx, f.opts.Model, diff)
	sp.Stop()

	if err != nil {
		return "", fmt.Errorf("failed to generate commit message: %w", err)
	}
	return message, nil
}
