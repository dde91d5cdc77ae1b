// Package cmdexec runs external tools synchronously and reports their exit
// status through a typed error.
package cmdexec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Runner executes one external tool with shared logging and output handling.
type Runner struct {
	Name    string
	Verbose bool
	Dir     string
	Env     []string
	Logger  io.Writer
	// Stdout and Stderr receive the output of attached commands.
	// Both default to os.Stderr so that stdout stays free for the caller.
	Stdout io.Writer
	Stderr io.Writer
}

// Result contains captured stdout/stderr for a command.
type Result struct {
	Stdout []byte
	Stderr []byte
}

func (r Result) StdoutString(trim bool) string {
	output := string(r.Stdout)
	if trim {
		return strings.TrimSpace(output)
	}
	return output
}

func (r Result) StderrString(trim bool) string {
	output := string(r.Stderr)
	if trim {
		return strings.TrimSpace(output)
	}
	return output
}

// Installed reports whether the tool can be found on PATH.
func (r Runner) Installed() bool {
	if r.Name == "" {
		return false
	}
	_, err := exec.LookPath(r.Name)
	return err == nil
}

func (r Runner) withDefaults() Runner {
	if r.Logger == nil {
		r.Logger = os.Stderr
	}
	if r.Stdout == nil {
		r.Stdout = os.Stderr
	}
	if r.Stderr == nil {
		r.Stderr = os.Stderr
	}
	return r
}

func (r Runner) command(ctx context.Context, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, r.Name, args...)
	if r.Dir != "" {
		cmd.Dir = r.Dir
	}
	if len(r.Env) > 0 {
		cmd.Env = append(os.Environ(), r.Env...)
	}
	return cmd
}

func (r Runner) log(args []string) {
	if !r.Verbose {
		return
	}
	fmt.Fprintf(r.Logger, "Running: %s %s\n", r.Name, strings.Join(args, " "))
}

// Run executes the tool and captures stdout/stderr.
func (r Runner) Run(ctx context.Context, args ...string) (Result, error) {
	return r.RunWithInput(ctx, nil, args...)
}

// RunWithInput executes the tool with stdin read from input and captures
// stdout/stderr.
func (r Runner) RunWithInput(ctx context.Context, input io.Reader, args ...string) (Result, error) {
	r = r.withDefaults()
	r.log(args)

	cmd := r.command(ctx, args...)
	var outBuf bytes.Buffer
	var errBuf bytes.Buffer
	cmd.Stdin = input
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	result := Result{Stdout: outBuf.Bytes(), Stderr: errBuf.Bytes()}
	return result, r.wrap(args, result.StderrString(true), err)
}

// RunAttached executes the tool connected to the terminal so that it can
// open an editor. A nil stdin means the process stdin is inherited.
func (r Runner) RunAttached(ctx context.Context, stdin io.Reader, args ...string) error {
	r = r.withDefaults()
	r.log(args)

	cmd := r.command(ctx, args...)
	if stdin == nil {
		stdin = os.Stdin
	}
	cmd.Stdin = stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	return r.wrap(args, "", cmd.Run())
}

func (r Runner) wrap(args []string, stderr string, err error) error {
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return &ExitError{
			Name:   r.Name,
			Args:   args,
			Code:   exitErr.ExitCode(),
			Stderr: stderr,
			Err:    err,
		}
	}
	return fmt.Errorf("failed to run %s: %w", r.Name, err)
}
