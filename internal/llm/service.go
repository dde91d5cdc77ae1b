// Package llm turns a diff into a commit message through a text-generation
// service.
package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/samzong/vmc/internal/cmdexec"
)

const (
	ProviderCommand = "llm"
	ProviderOpenAI  = "openai"

	DefaultCommand = "llm"
	DefaultTimeout = 60 * time.Second
)

var (
	ErrEmptyResult     = errors.New("empty generation result")
	ErrMissingAPIKey   = errors.New("API key not set, export VMC_API_KEY or set api_key in the config file")
	ErrUnknownProvider = errors.New("unknown generation provider")
)

// Request is one generation call: a system instruction, a model and the
// user content (the diff).
type Request struct {
	System  string
	Model   string
	Content string
}

// Service is a text-generation backend.
type Service interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// Options configures NewService.
type Options struct {
	Provider string
	Command  string
	APIKey   string
	APIBase  string
	Timeout  time.Duration
	Verbose  bool
	Logger   io.Writer
}

// NewService builds the service named by opts.Provider.
func NewService(opts Options) (Service, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Provider)) {
	case "", ProviderCommand:
		command := opts.Command
		if command == "" {
			command = DefaultCommand
		}
		return NewCommandService(cmdexec.Runner{
			Name:    command,
			Verbose: opts.Verbose,
			Logger:  opts.Logger,
		}), nil
	case ProviderOpenAI:
		return NewOpenAIService(opts)
	default:
		return nil, fmt.Errorf("%w: %q (valid: %s, %s)", ErrUnknownProvider, opts.Provider, ProviderCommand, ProviderOpenAI)
	}
}
