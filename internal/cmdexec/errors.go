package cmdexec

import (
	"errors"
	"fmt"
)

// ExitError reports a tool that ran and exited with a non-zero status.
type ExitError struct {
	Name   string
	Args   []string
	Code   int
	Stderr string
	Err    error
}

func (e *ExitError) Error() string {
	command := e.Name
	if len(e.Args) > 0 {
		command += " " + e.Args[0]
	}
	if e.Stderr != "" {
		return fmt.Sprintf("%s exited with status %d: %s", command, e.Code, e.Stderr)
	}
	return fmt.Sprintf("%s exited with status %d", command, e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode maps err to a process exit status. A wrapped ExitError keeps the
// tool's own code; any other error is a plain failure.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Code > 0 {
		return exitErr.Code
	}
	return 1
}

// Wrap builds an error message that prefers the tool's stderr output when present.
func Wrap(action string, result Result, err error) error {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return fmt.Errorf("%s: %w", action, err)
	}
	if msg := result.StderrString(true); msg != "" {
		return fmt.Errorf("%s: %s: %w", action, msg, err)
	}
	return fmt.Errorf("%s: %w", action, err)
}
