package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"

	"tripmate/internal/models/request_models"
	rm "tripmate/internal/models/response_models"
	"tripmate/pkg/utils"
)

type ChatServiceInterface interface {
	Chat(ctx context.Context, messages []request_models.ChatMessage, chatCtx request_models.ChatContext) *rm.ChatResult
}

// ChatService turns free-text chat into plan edits. It races every configured
// provider, falls back to the deterministic planner when they are absent or
// all fail, and pushes whatever plan wins through the normalizer. It never
// returns an error to the caller.
type ChatService struct {
	providers []utils.PlanProviderInterface
	planner   PlannerServiceInterface
}

func NewChatService(providers []utils.PlanProviderInterface, planner PlannerServiceInterface) ChatServiceInterface {
	return &ChatService{providers: providers, planner: planner}
}

func (s *ChatService) Chat(ctx context.Context, messages []request_models.ChatMessage, chatCtx request_models.ChatContext) *rm.ChatResult {
	lastUserMessage := lastUserContent(messages)
	intent := ParseIntent(lastUserMessage, chatCtx.Days)

	result := &rm.ChatResult{}

	var raw map[string]any
	switch {
	case len(s.providers) == 0:
		result.AIUnconfigured = true
		raw = planToRaw(s.planner.BuildPlan(chatCtx.Destination, intent.RequestedDays, chatCtx.Pace, nil))
	default:
		raw = s.raceProviders(ctx, messages, chatCtx, intent.RequestedDays)
		if raw == nil {
			result.AgentUnavailable = true
			raw = planToRaw(s.planner.BuildPlan(chatCtx.Destination, intent.RequestedDays, chatCtx.Pace, nil))
		}
	}

	plan := NormalizePlan(raw, NormalizeContext{
		Destination:   chatCtx.Destination,
		Days:          chatCtx.Days,
		Pace:          chatCtx.Pace,
		PreferredDays: intent.RequestedDays,
	})

	message := s.composeReply(plan, intent, raw)
	plan.AssistantMessage = message

	result.Plan = plan
	result.AssistantMessage = message
	return result
}

// raceProviders launches every adapter concurrently and waits for all of them
// to settle. The winner is the first configured adapter that succeeded with a
// non-empty itinerary; configured order encodes provider preference, so a
// faster response from a later adapter never wins. Returns nil when every
// adapter failed.
func (s *ChatService) raceProviders(ctx context.Context, messages []request_models.ChatMessage, chatCtx request_models.ChatContext, requestedDays int) map[string]any {
	raceCtx := chatCtx
	raceCtx.Days = requestedDays

	type outcome struct {
		raw map[string]any
		err error
	}
	outcomes := make([]outcome, len(s.providers))

	var wg sync.WaitGroup
	for i, provider := range s.providers {
		wg.Add(1)
		go func(i int, provider utils.PlanProviderInterface) {
			defer wg.Done()
			raw, err := provider.GeneratePlan(ctx, messages, raceCtx)
			outcomes[i] = outcome{raw: raw, err: err}
		}(i, provider)
	}
	wg.Wait()

	for i, settled := range outcomes {
		if settled.err != nil {
			log.Printf("Plan provider %s failed: %v", s.providers[i].Name(), settled.err)
			continue
		}
		if !hasItinerary(settled.raw) {
			log.Printf("Plan provider %s returned a plan without an itinerary, skipping", s.providers[i].Name())
			continue
		}
		log.Printf("Using plan from provider %s", s.providers[i].Name())
		return settled.raw
	}
	return nil
}

// composeReply builds the user-facing text. Day changes get a confirmation;
// everything else gets a short direct answer, never the long-form plan
// summary.
func (s *ChatService) composeReply(plan *rm.Plan, intent Intent, raw map[string]any) string {
	if intent.IsDayChangeRequest {
		return fmt.Sprintf("Done, your %s itinerary is now %d days. Anything else you'd like to change?", plan.Destination, plan.Days)
	}

	if answer := strings.TrimSpace(asString(raw["assistantMessage"])); answer != "" {
		return answer
	}
	return fmt.Sprintf("You're set with %d days in %s. Ask me to adjust the length, change the pace, or swap activities.", plan.Days, plan.Destination)
}

func lastUserContent(messages []request_models.ChatMessage) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == "user" {
			return messages[i].Content
		}
	}
	return ""
}

func hasItinerary(raw map[string]any) bool {
	itinerary, ok := raw["itinerary"].([]any)
	return ok && len(itinerary) > 0
}

// planToRaw round-trips a builder plan through JSON so the normalizer is the
// single path every plan takes, whatever produced it.
func planToRaw(plan *rm.Plan) map[string]any {
	encoded, err := json.Marshal(plan)
	if err != nil {
		return map[string]any{}
	}
	var raw map[string]any
	if err := json.Unmarshal(encoded, &raw); err != nil {
		return map[string]any{}
	}
	return raw
}
