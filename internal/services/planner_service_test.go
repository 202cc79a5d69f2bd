package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rm "tripmate/internal/models/response_models"
)

func newTestPlanner() PlannerServiceInterface {
	return NewPlannerService(NewCatalogService())
}

func seedOf(v int64) *int64 {
	return &v
}

func TestBuildPlanIsDeterministicForSameSeed(t *testing.T) {
	planner := newTestPlanner()

	first := planner.BuildPlan("paris", 3, "balanced", seedOf(42))
	second := planner.BuildPlan("paris", 3, "balanced", seedOf(42))

	first.GeneratedAt = ""
	second.GeneratedAt = ""
	require.Equal(t, first, second)
}

func TestBuildPlanDiffersForDifferentSeeds(t *testing.T) {
	planner := newTestPlanner()

	first := planner.BuildPlan("paris", 3, "balanced", seedOf(1))
	second := planner.BuildPlan("paris", 3, "balanced", seedOf(2))

	assert.NotEqual(t, first.Itinerary, second.Itinerary)
}

func TestBuildPlanDayCountClamping(t *testing.T) {
	planner := newTestPlanner()

	tests := []struct {
		name     string
		days     int
		wantDays int
	}{
		{name: "zero defaults", days: 0, wantDays: 3},
		{name: "negative defaults", days: -5, wantDays: 3},
		{name: "in range kept", days: 7, wantDays: 7},
		{name: "over cap clamps", days: 99, wantDays: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := planner.BuildPlan("tokyo", tt.days, "balanced", seedOf(7))
			assert.Equal(t, tt.wantDays, plan.Days)
			assert.Len(t, plan.Itinerary, tt.wantDays)
		})
	}
}

func TestBuildPlanFastPaceSlotCounts(t *testing.T) {
	planner := newTestPlanner()

	plan := planner.BuildPlan("paris", 3, "fast", seedOf(99))

	require.Equal(t, 3, plan.Days)
	require.Len(t, plan.Itinerary, 3)
	for _, day := range plan.Itinerary {
		require.Len(t, day.Slots, 3)
		assert.Equal(t, "morning", day.Slots[0].TimeOfDay)
		assert.Equal(t, "afternoon", day.Slots[1].TimeOfDay)
		assert.Equal(t, "evening", day.Slots[2].TimeOfDay)
		assert.Len(t, day.Slots[0].Items, 2)
		assert.Len(t, day.Slots[1].Items, 2)
		assert.Len(t, day.Slots[2].Items, 1)
	}
	assert.Equal(t, 5, plan.Meta.MaxStopsPerDay)
	assert.Equal(t, 8.0, plan.Meta.MaxHoursPerDay)
}

func TestBuildPlanFallbackCity(t *testing.T) {
	planner := newTestPlanner()

	plan := planner.BuildPlan("Nowhereville", 2, "balanced", seedOf(5))

	assert.True(t, plan.IsFallback)
	require.Equal(t, 2, plan.Days)
	require.Len(t, plan.Itinerary, 2)
	for _, day := range plan.Itinerary {
		require.Len(t, day.Slots, 3)
		for _, slot := range day.Slots {
			for _, item := range slot.Items {
				assert.Contains(t, item.Name, "Nowhereville")
			}
		}
	}
}

func TestBuildPlanNoDuplicatePlaces(t *testing.T) {
	planner := newTestPlanner()

	plan := planner.BuildPlan("rome", 3, "balanced", seedOf(11))

	seen := make(map[string]bool)
	for _, day := range plan.Itinerary {
		for _, slot := range day.Slots {
			for _, item := range slot.Items {
				assert.False(t, seen[item.Name], "place %q scheduled twice", item.Name)
				seen[item.Name] = true
			}
		}
	}
}

func TestBuildPlanMetaConsistency(t *testing.T) {
	planner := newTestPlanner()

	plan := planner.BuildPlan("lisbon", 4, "fast", seedOf(3))

	totalStops := 0
	totalHours := 0.0
	for _, day := range plan.Itinerary {
		slotHours := 0.0
		for _, slot := range day.Slots {
			totalStops += len(slot.Items)
			itemHours := 0.0
			for _, item := range slot.Items {
				itemHours += item.DurationHours
			}
			assert.InDelta(t, itemHours, slot.TotalHours, 0.05)
			slotHours += slot.TotalHours
		}
		assert.InDelta(t, slotHours, day.TotalHours, 0.05)
		totalHours += day.TotalHours
	}

	assert.Equal(t, totalStops, plan.Meta.TotalStops)
	assert.InDelta(t, totalHours, plan.Meta.AvgHoursPerDay*float64(plan.Days), 0.5)
	assert.True(t, math.Abs(plan.Meta.AvgStopsPerDay*float64(plan.Days)-float64(totalStops)) < 0.5)
}

func TestBuildPlanPaceAliases(t *testing.T) {
	planner := newTestPlanner()

	assert.Equal(t, "fast", planner.BuildPlan("paris", 2, "active", seedOf(1)).Pace)
	assert.Equal(t, "relaxed", planner.BuildPlan("paris", 2, "slow", seedOf(1)).Pace)
	assert.Equal(t, "balanced", planner.BuildPlan("paris", 2, "whatever", seedOf(1)).Pace)
	assert.Equal(t, "balanced", planner.BuildPlan("paris", 2, "", seedOf(1)).Pace)
}

func TestBuildPlanPadsWhenPoolExhausted(t *testing.T) {
	planner := newTestPlanner()

	// 10 days at fast pace needs 50 stops, far beyond any catalog city.
	plan := planner.BuildPlan("paris", 10, "fast", seedOf(13))

	require.Len(t, plan.Itinerary, 10)
	for _, day := range plan.Itinerary {
		assert.Len(t, day.Slots[0].Items, 2)
		assert.Len(t, day.Slots[1].Items, 2)
		assert.Len(t, day.Slots[2].Items, 1)
	}
	assert.Equal(t, 50, plan.Meta.TotalStops)

	// Placeholder names must still be unique.
	seen := make(map[string]bool)
	for _, day := range plan.Itinerary {
		for _, slot := range day.Slots {
			for _, item := range slot.Items {
				assert.False(t, seen[item.Name], "duplicate %q", item.Name)
				seen[item.Name] = true
			}
		}
	}
}

func TestDrawPlacesCascadePrefersAreaAndCategory(t *testing.T) {
	pool := []rm.PointOfInterest{
		{Name: "Far Museum", Category: rm.CategoryMuseum, Area: "Far"},
		{Name: "Near Cafe", Category: rm.CategoryCafe, Area: "Near"},
		{Name: "Near Museum", Category: rm.CategoryMuseum, Area: "Near"},
	}

	picked, remaining := drawPlaces(pool, 1, "Near", []string{rm.CategoryMuseum})

	require.Len(t, picked, 1)
	assert.Equal(t, "Near Museum", picked[0].Name)
	assert.Len(t, remaining, 2)
}

func TestDrawPlacesFallsThroughTiers(t *testing.T) {
	pool := []rm.PointOfInterest{
		{Name: "Elsewhere Park", Category: rm.CategoryPark, Area: "Elsewhere"},
	}

	// Nothing matches area or category; tier four hands out whatever is left.
	picked, remaining := drawPlaces(pool, 2, "Near", []string{rm.CategoryMuseum})

	require.Len(t, picked, 1)
	assert.Equal(t, "Elsewhere Park", picked[0].Name)
	assert.Empty(t, remaining)
}
