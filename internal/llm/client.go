package llm

import (
	"context"
	"strings"
)

// Client generates commit messages from diffs.
type Client struct {
	service Service
	system  string
}

func NewClient(service Service) *Client {
	return &Client{service: service, system: SystemPrompt}
}

// GenerateCommitMessage sends diff unchanged as the only user content and
// returns the trimmed result. There is no retry.
func (c *Client) GenerateCommitMessage(ctx context.Context, model string, diff string) (string, error) {
	message, err := c.service.Complete(ctx, Request{
		System:  c.system,
		Model:   model,
		Content: diff,
	})
	if err != nil {
		return "", err
	}

	message = strings.TrimSpace(message)
	if message == "" {
		return "", ErrEmptyResult
	}
	return message, nil
}
