package vcs

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/samzong/vmc/internal/cmdexec"
)

type fakeResponse struct {
	stdout string
	stderr string
	code   int
}

type attachedCall struct {
	args      []string
	stdinPath string
	stdin     string
}

// fakeExec answers commands from a table keyed by the joined arguments.
type fakeExec struct {
	name      string
	installed bool
	responses map[string]fakeResponse
	calls     []string
	attached  []attachedCall
	attachErr error
}

func newFakeExec(name string) *fakeExec {
	return &fakeExec{name: name, installed: true, responses: map[string]fakeResponse{}}
}

func (f *fakeExec) on(args string, resp fakeResponse) *fakeExec {
	f.responses[args] = resp
	return f
}

func (f *fakeExec) Installed() bool { return f.installed }

func (f *fakeExec) Run(_ context.Context, args ...string) (cmdexec.Result, error) {
	key := strings.Join(args, " ")
	f.calls = append(f.calls, key)

	resp, ok := f.responses[key]
	if !ok {
		resp = fakeResponse{stderr: "unexpected command: " + key, code: 2}
	}
	result := cmdexec.Result{Stdout: []byte(resp.stdout), Stderr: []byte(resp.stderr)}
	if resp.code != 0 {
		return result, &cmdexec.ExitError{Name: f.name, Args: args, Code: resp.code, Stderr: resp.stderr}
	}
	return result, nil
}

func (f *fakeExec) RunAttached(_ context.Context, stdin io.Reader, args ...string) error {
	call := attachedCall{args: args}
	if file, ok := stdin.(*os.File); ok {
		call.stdinPath = file.Name()
	}
	if stdin != nil {
		data, _ := io.ReadAll(stdin)
		call.stdin = string(data)
	}
	f.attached = append(f.attached, call)
	f.calls = append(f.calls, strings.Join(args, " "))
	return f.attachErr
}

type fakeFile struct {
	path string
	data []byte
	err  error
}

func (f *fakeFile) Write(data []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.data = data
	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		return "", err
	}
	return f.path, nil
}
