// Package ai provides the LLM-backed implementation of the natural-language
// date/time inference capability.
package ai

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	openai "github.com/sashabaranov/go-openai"
)

// Message is a chat message.
type Message struct {
	Role    string // system, user, assistant
	Content string
}

// LLMService is the chat interface the inferrer depends on. It is an
// interface so tests can substitute a fake client.
type LLMService interface {
	Chat(ctx context.Context, messages []Message) (string, error)
}

type llmService struct {
	client *openai.Client
	cfg    *Config
}

// NewLLMService creates an LLMService backed by an OpenAI-compatible API.
func NewLLMService(cfg *Config) (LLMService, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.APIKey == "" {
		return nil, errors.New("missing API key")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &llmService{
		client: openai.NewClientWithConfig(clientConfig),
		cfg:    cfg,
	}, nil
}

// Chat performs a synchronous chat completion with retry on transient errors.
func (s *llmService) Chat(ctx context.Context, messages []Message) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:    s.cfg.Model,
		Messages: make([]openai.ChatCompletionMessage, 0, len(messages)),
	}
	for _, m := range messages {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	var lastErr error
	for attempt := 0; attempt < s.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(attempt) * time.Second
			slog.Warn("retrying chat completion", "attempt", attempt, "backoff", backoff, "error", lastErr)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		callCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
		resp, err := s.client.CreateChatCompletion(callCtx, req)
		cancel()
		if err != nil {
			lastErr = err
			continue
		}
		if len(resp.Choices) == 0 {
			lastErr = errors.New("empty response")
			continue
		}
		return resp.Choices[0].Message.Content, nil
	}

	return "", errors.Wrap(lastErr, "chat completion failed")
}
