package utils

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"tripmate/internal/models/request_models"
)

type GeminiPlanProvider struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

func NewGeminiPlanProvider(apiKey, model string, timeout time.Duration) (PlanProviderInterface, error) {
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiPlanProvider{
		client:  client,
		model:   model,
		timeout: timeout,
	}, nil
}

func (p *GeminiPlanProvider) Name() string {
	return "gemini"
}

func (p *GeminiPlanProvider) GeneratePlan(ctx context.Context, messages []request_models.ChatMessage, planCtx request_models.ChatContext) (map[string]any, error) {
	prompt := BuildPlanPrompt(messages, planCtx)

	content, err := p.generate(ctx, prompt)
	if err != nil && isRateLimited(err) {
		log.Printf("gemini: rate limited, retrying in 3s")
		if sleepErr := sleepBackoff(ctx, 3*time.Second); sleepErr != nil {
			return nil, sleepErr
		}
		content, err = p.generate(ctx, prompt)
	}
	if err != nil {
		return nil, err
	}

	return ParseRawPlan(content)
}

func (p *GeminiPlanProvider) generate(ctx context.Context, prompt string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	model := p.client.GenerativeModel(p.model)
	model.ResponseMIMEType = "application/json"
	model.SetTemperature(0.2)
	model.SetTopP(0.5)

	resp, err := model.GenerateContent(callCtx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: no content generated")
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("gemini: unexpected part type %T", resp.Candidates[0].Content.Parts[0])
	}
	return string(text), nil
}

func (p *GeminiPlanProvider) Close() error {
	return p.client.Close()
}

func isRateLimited(err error) bool {
	var apiErr *googleapi.Error
	return errors.As(err, &apiErr) && apiErr.Code == http.StatusTooManyRequests
}
