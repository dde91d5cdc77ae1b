package workflow

import (
	"context"
	"fmt"

	"github.com/samzong/vmc/internal/tempfile"
	"github.com/samzong/vmc/internal/ui"
	"github.com/samzong/vmc/internal/vcs"
)

func (f *Flow) dispatch(ctx context.Context, message string) error {
	switch f.opts.Mode {
	case vcs.ModeCommit:
		return f.commit(ctx, message)
	case vcs.ModeEdit:
		return f.edit(ctx, message)
	default:
		fmt.Fprintln(f.opts.OutWriter, message)
		return nil
	}
}

func (f *Flow) commit(ctx context.Context, message string) error {
	fmt.Fprintln(f.opts.ErrWriter, "\nGenerated Commit Message:")
	fmt.Fprintln(f.opts.ErrWriter, message)
	fmt.Fprintln(f.opts.ErrWriter)

	if err := f.backend.Apply(ctx, message, vcs.ModeCommit, nil); err != nil {
		return err
	}
	ui.Successf(f.opts.ErrWriter, "Successfully committed changes with %s!", f.backend.Kind())
	return nil
}

// edit owns the message file for the duration of the backend's edit action
// and removes it on every return path, including panics.
func (f *Flow) edit(ctx context.Context, message string) error {
	if !ui.StdinIsTerminal(f.opts.Stdin) {
		ui.Warnf(f.opts.ErrWriter, "stdin is not a terminal; the %s editor may not be interactive", f.backend.Kind())
	}

	scope := tempfile.NewScope(f.opts.TempDir)
	defer func() {
		if releaseErr := scope.Release(); releaseErr != nil {
			ui.Warnf(f.opts.ErrWriter, "%v", releaseErr)
		}
	}()

	fmt.Fprintln(f.opts.ErrWriter, "Opening editor to review the commit message...")
	if err := f.backend.Apply(ctx, message, vcs.ModeEdit, scope); err != nil {
		return err
	}
	ui.Successf(f.opts.ErrWriter, "Successfully recorded edited message with %s!", f.backend.Kind())
	return nil
}
