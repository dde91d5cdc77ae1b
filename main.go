package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/samzong/vmc/cmd"
	"github.com/samzong/vmc/internal/cmdexec"
	"github.com/samzong/vmc/internal/ui"
)

func main() {
	// Signals cancel the context instead of killing the process, so deferred
	// cleanup (the edit-mode message file) still runs.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer cancel()

	cmd.SetContext(ctx)

	if err := cmd.Execute(); err != nil {
		if ctx.Err() != nil {
			fmt.Fprintln(os.Stderr, "\nOperation cancelled")
			os.Exit(130) // Standard exit code for SIGINT
		}
		ui.Errorf(os.Stderr, "%v", err)
		os.Exit(cmdexec.ExitCode(err))
	}
}
