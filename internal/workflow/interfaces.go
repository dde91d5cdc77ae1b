// Package workflow runs the commit-message pipeline: guard, capture,
// generate, then print, commit or edit.
package workflow

import "context"

// Generator abstracts the message generator for testability.
type Generator interface {
	GenerateCommitMessage(ctx context.Context, model string, diff string) (string, error)
}
