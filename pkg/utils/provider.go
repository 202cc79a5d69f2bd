package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"tripmate/internal/models/request_models"
)

const defaultProviderTimeout = 8 * time.Second

// PlanProviderInterface is one generative-model vendor. GeneratePlan returns
// the raw decoded JSON candidate; callers are expected to run it through the
// plan normalizer before trusting any field.
type PlanProviderInterface interface {
	Name() string
	GeneratePlan(ctx context.Context, messages []request_models.ChatMessage, planCtx request_models.ChatContext) (map[string]any, error)
}

// NewPlanProviders builds the active adapter list from environment variables.
// List order is priority order for the chat race: Gemini first (free tier),
// then OpenAI. Providers with missing or placeholder-looking keys are skipped
// entirely, never invoked. An empty list is a valid configuration.
func NewPlanProviders() []PlanProviderInterface {
	timeout := providerTimeout()
	var providers []PlanProviderInterface

	if key := os.Getenv("GEMINI_API_KEY"); !IsPlaceholderKey(key) {
		provider, err := NewGeminiPlanProvider(key, envWithDefault("GEMINI_MODEL", "gemini-1.5-flash"), timeout)
		if err != nil {
			log.Printf("Failed to initialize Gemini provider: %v", err)
		} else {
			providers = append(providers, provider)
		}
	}

	if key := os.Getenv("OPENAI_API_KEY"); !IsPlaceholderKey(key) {
		providers = append(providers, NewOpenAIPlanProvider(key, envWithDefault("OPENAI_MODEL", "gpt-4o-mini"), timeout))
	}

	log.Printf("Configured %d plan provider(s)", len(providers))
	return providers
}

// IsPlaceholderKey reports whether an API key is unset or obviously a template
// value copied from documentation.
func IsPlaceholderKey(key string) bool {
	key = strings.TrimSpace(key)
	if key == "" || key == "xxx" || key == "sk-..." {
		return true
	}
	lower := strings.ToLower(key)
	return strings.Contains(lower, "your-") && strings.Contains(lower, "api-key")
}

func providerTimeout() time.Duration {
	if raw := os.Getenv("AI_TIMEOUT_MS"); raw != "" {
		if ms, err := strconv.Atoi(raw); err == nil && ms > 0 {
			return time.Duration(ms) * time.Millisecond
		}
		log.Printf("Ignoring invalid AI_TIMEOUT_MS value: %q", raw)
	}
	return defaultProviderTimeout
}

func envWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// BuildPlanPrompt combines the fixed schema instructions, the conversation
// transcript and the trailing answer-briefly instruction into one prompt.
func BuildPlanPrompt(messages []request_models.ChatMessage, planCtx request_models.ChatContext) string {
	days := planCtx.Days
	if days <= 0 {
		days = 3
	}

	var prompt strings.Builder
	prompt.WriteString("You are a trip-itinerary assistant. Return ONLY a JSON object, no prose, no markdown, matching exactly this shape:\n")
	prompt.WriteString(`{"destination":"string","pace":"relaxed|balanced|fast","days":N,"itinerary":[{"day":1,"area":"string","slots":[{"timeOfDay":"morning|afternoon|evening","items":[{"name":"string","category":"landmark|museum|park|food|cafe|market|nightlife|shopping|viewpoint|experience","area":"string","durationHours":1.5}]}]}]}`)
	prompt.WriteString("\n\nHard constraints:\n")
	prompt.WriteString(fmt.Sprintf("- \"days\" must be exactly %d and \"itinerary\" must contain exactly %d day objects.\n", days, days))
	prompt.WriteString("- Every day has exactly three slots: morning, afternoon, evening, in that order.\n")
	prompt.WriteString("- Use only the listed category values.\n")

	if planCtx.Destination != "" {
		prompt.WriteString(fmt.Sprintf("\nDestination: %s\n", planCtx.Destination))
	}
	if planCtx.Pace != "" {
		prompt.WriteString(fmt.Sprintf("Pace: %s\n", planCtx.Pace))
	}
	if len(planCtx.CurrentItinerary) > 0 {
		if current, err := json.Marshal(planCtx.CurrentItinerary); err == nil {
			prompt.WriteString("\nCurrent itinerary (edit this rather than starting over):\n")
			prompt.Write(current)
			prompt.WriteString("\n")
		}
	}

	prompt.WriteString("\nConversation so far:\n")
	for _, message := range messages {
		role := "User"
		if message.Role == "assistant" {
			role = "Assistant"
		}
		prompt.WriteString(fmt.Sprintf("%s: %s\n", role, message.Content))
	}

	prompt.WriteString("\nIf the last user message is a question rather than an edit request, still return the JSON plan, and answer the question directly and briefly in an extra top-level \"assistantMessage\" string field. Do not restate the plan.\n")
	return prompt.String()
}

// StripCodeFences removes Markdown code-fence wrapping that models add despite
// being told not to.
func StripCodeFences(content string) string {
	content = strings.ReplaceAll(content, "```json", "")
	content = strings.ReplaceAll(content, "```JSON", "")
	content = strings.ReplaceAll(content, "```", "")
	return strings.TrimSpace(content)
}

// ParseRawPlan decodes a model reply into the raw candidate map. A parse
// failure here is the adapter's failure, not the system's.
func ParseRawPlan(content string) (map[string]any, error) {
	cleaned := StripCodeFences(content)

	var raw map[string]any
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return nil, fmt.Errorf("plan response is not a JSON object: %w", err)
	}
	return raw, nil
}

// sleepBackoff waits out a retry delay but gives up early if the caller's
// context is done.
func sleepBackoff(ctx context.Context, wait time.Duration) error {
	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
