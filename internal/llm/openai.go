package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"
)

// ChatCompleter is the part of the go-openai client used here.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIService calls an OpenAI-compatible chat completion endpoint.
type OpenAIService struct {
	client  ChatCompleter
	timeout time.Duration
}

func NewOpenAIService(opts Options) (*OpenAIService, error) {
	if opts.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	clientConfig := openai.DefaultConfig(opts.APIKey)
	if opts.APIBase != "" {
		clientConfig.BaseURL = opts.APIBase
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &OpenAIService{
		client:  openai.NewClientWithConfig(clientConfig),
		timeout: timeout,
	}, nil
}

func (s *OpenAIService) Complete(ctx context.Context, req Request) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: req.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.Content},
		},
	})
	if err != nil {
		return "", fmt.Errorf("generation service error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("generation service error: response has no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
