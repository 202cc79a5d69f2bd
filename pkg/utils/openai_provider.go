package utils

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"tripmate/internal/models/request_models"
)

// Backoff schedule for rate-limited calls: attempt 2 after 3s, attempt 3
// after 15s.
var openAIBackoff = []time.Duration{0, 3 * time.Second, 15 * time.Second}

type OpenAIPlanProvider struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

func NewOpenAIPlanProvider(apiKey, model string, timeout time.Duration) PlanProviderInterface {
	return &OpenAIPlanProvider{
		client:  openai.NewClient(apiKey),
		model:   model,
		timeout: timeout,
	}
}

func (p *OpenAIPlanProvider) Name() string {
	return "openai"
}

func (p *OpenAIPlanProvider) GeneratePlan(ctx context.Context, messages []request_models.ChatMessage, planCtx request_models.ChatContext) (map[string]any, error) {
	prompt := BuildPlanPrompt(messages, planCtx)

	var lastErr error
	for attempt, wait := range openAIBackoff {
		if wait > 0 {
			log.Printf("openai: rate limited, retrying in %s (attempt %d/%d)", wait, attempt+1, len(openAIBackoff))
			if err := sleepBackoff(ctx, wait); err != nil {
				return nil, err
			}
		}

		content, err := p.complete(ctx, prompt)
		if err == nil {
			return ParseRawPlan(content)
		}
		lastErr = err

		var apiErr *openai.APIError
		if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
			continue
		}
		return nil, err
	}

	return nil, fmt.Errorf("openai: rate limited after %d attempts: %w", len(openAIBackoff), lastErr)
}

func (p *OpenAIPlanProvider) complete(ctx context.Context, prompt string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	resp, err := p.client.CreateChatCompletion(callCtx, openai.ChatCompletionRequest{
		Model:       p.model,
		Temperature: 0.2,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: response contained no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
