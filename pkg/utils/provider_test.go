package utils

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripmate/internal/models/request_models"
	rm "tripmate/internal/models/response_models"
)

func planForPromptTest() []rm.Day {
	return []rm.Day{{
		Day:  1,
		Area: "Centro Storico",
		Slots: []rm.Slot{{
			TimeOfDay: "morning",
			Items: []rm.PointOfInterest{
				{Name: "Colosseum", Category: rm.CategoryLandmark, Area: "Centro Storico", DurationHours: 2.5},
			},
		}},
	}}
}

func TestIsPlaceholderKey(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{key: "", want: true},
		{key: "   ", want: true},
		{key: "xxx", want: true},
		{key: "sk-...", want: true},
		{key: "your-api-key", want: true},
		{key: "YOUR-OPENAI-API-KEY-HERE", want: true},
		{key: "sk-proj-abc123", want: false},
		{key: "AIzaSyReallyARealKey", want: false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsPlaceholderKey(tt.key), "key %q", tt.key)
	}
}

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain json untouched", in: `{"days":3}`, want: `{"days":3}`},
		{name: "json fence", in: "```json\n{\"days\":3}\n```", want: `{"days":3}`},
		{name: "uppercase fence", in: "```JSON\n{\"days\":3}\n```", want: `{"days":3}`},
		{name: "bare fence", in: "```\n{\"days\":3}\n```", want: `{"days":3}`},
		{name: "surrounding whitespace", in: "  \n{\"days\":3}\n  ", want: `{"days":3}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripCodeFences(tt.in))
		})
	}
}

func TestParseRawPlan(t *testing.T) {
	t.Run("decodes fenced object", func(t *testing.T) {
		raw, err := ParseRawPlan("```json\n{\"destination\":\"Paris\",\"days\":3}\n```")
		require.NoError(t, err)
		assert.Equal(t, "Paris", raw["destination"])
		assert.Equal(t, 3.0, raw["days"])
	})

	t.Run("rejects prose", func(t *testing.T) {
		_, err := ParseRawPlan("Sure! Here is your plan: ...")
		assert.Error(t, err)
	})

	t.Run("rejects top-level array", func(t *testing.T) {
		_, err := ParseRawPlan(`[{"day":1}]`)
		assert.Error(t, err)
	})
}

func TestBuildPlanPromptPinsDayCount(t *testing.T) {
	prompt := BuildPlanPrompt(
		[]request_models.ChatMessage{{Role: "user", Content: "make it 5 days"}},
		request_models.ChatContext{Destination: "Paris", Days: 5, Pace: "balanced"},
	)

	assert.Contains(t, prompt, `"days" must be exactly 5`)
	assert.Contains(t, prompt, "exactly 5 day objects")
	assert.Contains(t, prompt, "Destination: Paris")
	assert.Contains(t, prompt, "Pace: balanced")
	assert.Contains(t, prompt, "User: make it 5 days")
	assert.Contains(t, prompt, `"assistantMessage"`)
}

func TestBuildPlanPromptDefaultsDays(t *testing.T) {
	prompt := BuildPlanPrompt(nil, request_models.ChatContext{})

	assert.Contains(t, prompt, `"days" must be exactly 3`)
}

func TestBuildPlanPromptIncludesCurrentItinerary(t *testing.T) {
	ctx := request_models.ChatContext{
		Destination: "Rome",
		Days:        2,
	}
	ctx.CurrentItinerary = planForPromptTest()

	prompt := BuildPlanPrompt(nil, ctx)

	assert.Contains(t, prompt, "Current itinerary")
	assert.Contains(t, prompt, "Colosseum")
}

func TestProviderTimeoutOverride(t *testing.T) {
	t.Setenv("AI_TIMEOUT_MS", "2500")
	assert.Equal(t, 2500*time.Millisecond, providerTimeout())

	t.Setenv("AI_TIMEOUT_MS", "not-a-number")
	assert.Equal(t, defaultProviderTimeout, providerTimeout())

	t.Setenv("AI_TIMEOUT_MS", "")
	assert.Equal(t, defaultProviderTimeout, providerTimeout())
}

func TestNewPlanProvidersSkipsPlaceholderKeys(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "your-gemini-api-key")
	t.Setenv("OPENAI_API_KEY", "sk-...")

	assert.Empty(t, NewPlanProviders())
}

func TestSleepBackoffHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := sleepBackoff(ctx, time.Minute)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}
