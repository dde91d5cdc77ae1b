package llm

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/samzong/vmc/internal/cmdexec"
)

// InputRunner runs a tool with stdin. cmdexec.Runner satisfies it.
type InputRunner interface {
	RunWithInput(ctx context.Context, input io.Reader, args ...string) (cmdexec.Result, error)
}

// CommandService calls the `llm` command-line tool:
// `llm -m <model> -s <system>` with the content on stdin.
type CommandService struct {
	runner InputRunner
}

func NewCommandService(runner InputRunner) *CommandService {
	return &CommandService{runner: runner}
}

func (s *CommandService) Complete(ctx context.Context, req Request) (string, error) {
	args := []string{"-s", req.System}
	if req.Model != "" {
		args = append([]string{"-m", req.Model}, args...)
	}

	result, err := s.runner.RunWithInput(ctx, strings.NewReader(req.Content), args...)
	if err != nil {
		return "", fmt.Errorf("generation service error: %w", err)
	}
	return result.StdoutString(false), nil
}
