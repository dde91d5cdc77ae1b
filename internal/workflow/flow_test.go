package workflow

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/samzong/vmc/internal/cmdexec"
	"github.com/samzong/vmc/internal/llm"
	"github.com/samzong/vmc/internal/tempfile"
	"github.com/samzong/vmc/internal/vcs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend records which operations the flow invoked.
type fakeBackend struct {
	kind       vcs.Kind
	pending    bool
	pendingErr error
	diff       string
	diffErr    error
	applyErr   error
	applyFn    func(ctx context.Context, file vcs.MessageFile) error

	calls   []string
	applied []vcs.Mode
	message string
}

func (b *fakeBackend) Kind() vcs.Kind { return b.kind }

func (b *fakeBackend) NoChangesHint() string {
	return "no staged Git changes found; stage files first with `git add <path>`"
}

func (b *fakeBackend) HasPendingChanges(context.Context) (bool, error) {
	b.calls = append(b.calls, "pending")
	return b.pending, b.pendingErr
}

func (b *fakeBackend) CaptureDiff(context.Context) (string, error) {
	b.calls = append(b.calls, "diff")
	return b.diff, b.diffErr
}

func (b *fakeBackend) Apply(ctx context.Context, message string, mode vcs.Mode, file vcs.MessageFile) error {
	b.calls = append(b.calls, "apply")
	b.applied = append(b.applied, mode)
	b.message = message
	if b.applyFn != nil {
		return b.applyFn(ctx, file)
	}
	return b.applyErr
}

type stubService struct {
	reply string
	err   error
	calls int
	diffs []string
}

func (s *stubService) Complete(_ context.Context, req llm.Request) (string, error) {
	s.calls++
	s.diffs = append(s.diffs, req.Content)
	return s.reply, s.err
}

// jjExec is a minimal jj executor used to drive the real adapter.
type jjExec struct {
	stdinPath    string
	stdinContent string
	existed      bool
	err          error
	describeArgs []string
}

func (e *jjExec) Installed() bool { return true }

func (e *jjExec) Run(_ context.Context, args ...string) (cmdexec.Result, error) {
	switch strings.Join(args, " ") {
	case "diff --summary --color never":
		return cmdexec.Result{Stdout: []byte("M main.go\n")}, nil
	case "diff --git --color never":
		return cmdexec.Result{Stdout: []byte("diff --git a/main.go b/main.go\n+// hi\n")}, nil
	}
	return cmdexec.Result{}, &cmdexec.ExitError{Name: "jj", Args: args, Code: 2}
}

func (e *jjExec) RunAttached(_ context.Context, stdin io.Reader, args ...string) error {
	e.describeArgs = args
	if f, ok := stdin.(*os.File); ok {
		e.stdinPath = f.Name()
		_, statErr := os.Stat(f.Name())
		e.existed = statErr == nil
		data, _ := io.ReadAll(f)
		e.stdinContent = string(data)
	}
	return e.err
}

type harness struct {
	out, errOut bytes.Buffer
	service     *stubService
}

func (h *harness) flow(backend vcs.Backend, mode vcs.Mode, tempDir string) *Flow {
	return NewFlow(backend, llm.NewClient(h.service), Options{
		Model:     "gpt-4o-mini",
		Mode:      mode,
		TempDir:   tempDir,
		Stdin:     strings.NewReader(""),
		OutWriter: &h.out,
		ErrWriter: &h.errOut,
	})
}

func newHarness(reply string) *harness {
	return &harness{service: &stubService{reply: reply}}
}

func TestRunPrintMode(t *testing.T) {
	h := newHarness("\n feat(vcs): add jj support\n\n- probe jj repositories \n")
	backend := &fakeBackend{kind: vcs.KindJJ, pending: true, diff: "diff --git a/a b/a\n"}

	require.NoError(t, h.flow(backend, vcs.ModePrint, "").Run(context.Background()))

	assert.Equal(t, "feat(vcs): add jj support\n\n- probe jj repositories\n", h.out.String())
	assert.Contains(t, h.errOut.String(), "Generating commit message with gpt-4o-mini")
	assert.Equal(t, []string{"pending", "diff"}, backend.calls)
	assert.Equal(t, []string{"diff --git a/a b/a\n"}, h.service.diffs)
}

func TestRunNoPendingChanges(t *testing.T) {
	h := newHarness("unused")
	backend := &fakeBackend{kind: vcs.KindGit, pending: false}

	err := h.flow(backend, vcs.ModeCommit, "").Run(context.Background())
	require.Error(t, err)
	assert.True(t, vcs.IsNoChanges(err))
	assert.Contains(t, err.Error(), "no staged Git changes found")
	assert.Contains(t, err.Error(), "stage files first")
	assert.Equal(t, 1, cmdexec.ExitCode(err))

	assert.Equal(t, []string{"pending"}, backend.calls, "diff must not be captured")
	assert.Zero(t, h.service.calls, "generation service must not be called")
	assert.Empty(t, h.out.String())
}

func TestRunPendingCheckError(t *testing.T) {
	h := newHarness("unused")
	backend := &fakeBackend{kind: vcs.KindGit, pendingErr: &cmdexec.ExitError{Name: "git", Code: 128}}

	err := h.flow(backend, vcs.ModePrint, "").Run(context.Background())
	assert.Equal(t, 128, cmdexec.ExitCode(err))
	assert.Zero(t, h.service.calls)
}

func TestRunInconsistentDiff(t *testing.T) {
	h := newHarness("unused")
	backend := &fakeBackend{kind: vcs.KindJJ, pending: true, diffErr: vcs.ErrInconsistentDiff}

	err := h.flow(backend, vcs.ModePrint, "").Run(context.Background())
	assert.ErrorIs(t, err, vcs.ErrInconsistentDiff)
	assert.Equal(t, 1, cmdexec.ExitCode(err))
	assert.Zero(t, h.service.calls)
}

func TestRunDiffToolFailure(t *testing.T) {
	h := newHarness("unused")
	backend := &fakeBackend{kind: vcs.KindGit, pending: true, diffErr: &cmdexec.ExitError{Name: "git", Code: 129}}

	err := h.flow(backend, vcs.ModePrint, "").Run(context.Background())
	assert.Equal(t, 129, cmdexec.ExitCode(err))
}

func TestRunEmptyGeneration(t *testing.T) {
	h := newHarness("  \n\t ")
	backend := &fakeBackend{kind: vcs.KindGit, pending: true, diff: "diff"}

	err := h.flow(backend, vcs.ModeCommit, "").Run(context.Background())
	assert.ErrorIs(t, err, llm.ErrEmptyResult)
	assert.Contains(t, err.Error(), "empty generation result")
	assert.Equal(t, 1, cmdexec.ExitCode(err))
	assert.Empty(t, backend.applied, "no commit on empty result")
	assert.Equal(t, 1, h.service.calls)
}

func TestRunGenerationServiceFailure(t *testing.T) {
	h := newHarness("")
	h.service.err = &cmdexec.ExitError{Name: "llm", Code: 7, Stderr: "no key"}
	backend := &fakeBackend{kind: vcs.KindGit, pending: true, diff: "diff"}

	err := h.flow(backend, vcs.ModeCommit, "").Run(context.Background())
	assert.Equal(t, 7, cmdexec.ExitCode(err))
	assert.Contains(t, err.Error(), "failed to generate commit message")
	assert.Empty(t, backend.applied)
}

func TestRunCommitMode(t *testing.T) {
	h := newHarness("fix(git): quote paths\n\n- escape spaces")
	backend := &fakeBackend{kind: vcs.KindGit, pending: true, diff: "diff"}

	require.NoError(t, h.flow(backend, vcs.ModeCommit, "").Run(context.Background()))
	assert.Equal(t, []vcs.Mode{vcs.ModeCommit}, backend.applied)
	assert.Equal(t, "fix(git): quote paths\n\n- escape spaces", backend.message)
	assert.Empty(t, h.out.String(), "stdout carries only the print payload")
	assert.Contains(t, h.errOut.String(), "Successfully committed changes with git!")
}

func TestRunCommitFailurePropagatesExitCode(t *testing.T) {
	h := newHarness("fix: x")
	backend := &fakeBackend{kind: vcs.KindGit, pending: true, diff: "diff",
		applyErr: &cmdexec.ExitError{Name: "git", Code: 1, Stderr: "pre-commit hook failed"}}

	err := h.flow(backend, vcs.ModeCommit, "").Run(context.Background())
	assert.Equal(t, 1, cmdexec.ExitCode(err))
	assert.NotContains(t, h.errOut.String(), "Successfully")
}

func TestRunEditModeJJ(t *testing.T) {
	h := newHarness("feat(cli): add edit flag\n\n- describe from file")
	exec := &jjExec{}
	dir := t.TempDir()

	require.NoError(t, h.flow(vcs.NewJJ(exec), vcs.ModeEdit, dir).Run(context.Background()))

	assert.Equal(t, []string{"describe", "--stdin", "--edit"}, exec.describeArgs)
	assert.True(t, exec.existed, "message file must exist while jj runs")
	assert.Equal(t, dir, filepath.Dir(exec.stdinPath))
	assert.Equal(t, "feat(cli): add edit flag\n\n- describe from file", exec.stdinContent)
	assert.NoFileExists(t, exec.stdinPath)
	assert.Empty(t, h.out.String())
	assert.Contains(t, h.errOut.String(), "Warning: stdin is not a terminal")
}

func TestRunEditModeJJFailureRemovesFile(t *testing.T) {
	h := newHarness("feat: x")
	exec := &jjExec{err: &cmdexec.ExitError{Name: "jj", Code: 1}}

	err := h.flow(vcs.NewJJ(exec), vcs.ModeEdit, t.TempDir()).Run(context.Background())
	assert.Equal(t, 1, cmdexec.ExitCode(err))
	require.NotEmpty(t, exec.stdinPath)
	assert.NoFileExists(t, exec.stdinPath)
}

func TestRunEditModeInterruptedRemovesFile(t *testing.T) {
	h := newHarness("feat: x")
	ctx, cancel := context.WithCancel(context.Background())
	var path string
	backend := &fakeBackend{kind: vcs.KindJJ, pending: true, diff: "diff",
		applyFn: func(ctx context.Context, file vcs.MessageFile) error {
			var err error
			path, err = file.Write([]byte("feat: x"))
			require.NoError(t, err)
			cancel()
			return ctx.Err()
		}}

	err := h.flow(backend, vcs.ModeEdit, t.TempDir()).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	require.NotEmpty(t, path)
	assert.NoFileExists(t, path)
}

func TestRunEditModePanicRemovesFile(t *testing.T) {
	h := newHarness("feat: x")
	var path string
	backend := &fakeBackend{kind: vcs.KindJJ, pending: true, diff: "diff",
		applyFn: func(_ context.Context, file vcs.MessageFile) error {
			path, _ = file.Write([]byte("feat: x"))
			panic("editor crashed")
		}}

	assert.Panics(t, func() {
		_ = h.flow(backend, vcs.ModeEdit, t.TempDir()).Run(context.Background())
	})
	require.NotEmpty(t, path)
	assert.NoFileExists(t, path)
}

func TestRunEditModeTempCreationFailure(t *testing.T) {
	h := newHarness("feat: x")
	exec := &jjExec{}

	missing := filepath.Join(t.TempDir(), "does", "not", "exist")
	err := h.flow(vcs.NewJJ(exec), vcs.ModeEdit, missing).Run(context.Background())
	assert.ErrorIs(t, err, tempfile.ErrCreate)
	assert.Contains(t, err.Error(), "could not create temporary resource")
	assert.Equal(t, 1, cmdexec.ExitCode(err))
	assert.Nil(t, exec.describeArgs, "jj must not run without the message file")
}

func TestRunEditModeGitCreatesNoFile(t *testing.T) {
	h := newHarness("docs: readme")
	backend := &recordingGit{}
	dir := t.TempDir()

	require.NoError(t, h.flow(vcs.NewGit(backend), vcs.ModeEdit, dir).Run(context.Background()))
	assert.Equal(t, []string{"commit", "--edit", "--message", "docs: readme"}, backend.attached)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

type recordingGit struct {
	attached []string
}

func (g *recordingGit) Installed() bool { return true }

func (g *recordingGit) Run(_ context.Context, args ...string) (cmdexec.Result, error) {
	switch strings.Join(args, " ") {
	case "diff --cached --quiet":
		return cmdexec.Result{}, &cmdexec.ExitError{Name: "git", Args: args, Code: 1}
	case "diff --cached --no-color --no-ext-diff":
		return cmdexec.Result{Stdout: []byte("diff --git a/README b/README\n")}, nil
	}
	return cmdexec.Result{}, errors.New("unexpected git command")
}

func (g *recordingGit) RunAttached(_ context.Context, _ io.Reader, args ...string) error {
	g.attached = args
	return nil
}
