package services

import (
	"strings"
	"time"

	rm "tripmate/internal/models/response_models"
)

// NormalizeContext carries the trusted request-side hints used to fill gaps in
// untrusted plan output. PreferredDays, when positive, overrides every other
// day-count source.
type NormalizeContext struct {
	Destination   string
	Days          int
	Pace          string
	PreferredDays int
}

// NormalizePlan coerces an arbitrary decoded JSON value (typically a
// generative model's reply) into a canonical Plan. Every field is defaulted
// independently and aggregate numbers are always recomputed; nothing from the
// raw input is trusted past this function. It never panics.
func NormalizePlan(raw any, ctx NormalizeContext) *rm.Plan {
	obj, _ := raw.(map[string]any)

	plan := &rm.Plan{
		Destination: resolveDestination(obj, ctx),
		Pace:        resolvePaceField(obj, ctx),
		Days:        resolveDayCount(obj, ctx),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		IsFallback:  asBool(obj["isFallback"]),
	}

	plan.Itinerary = normalizeItinerary(obj["itinerary"], plan.Days)
	plan.Meta = computeMeta(plan.Itinerary, plan.Days, rm.PaceRules[plan.Pace])
	return plan
}

func resolveDestination(obj map[string]any, ctx NormalizeContext) string {
	if dest := asString(obj["destination"]); strings.TrimSpace(dest) != "" {
		return strings.TrimSpace(dest)
	}
	if strings.TrimSpace(ctx.Destination) != "" {
		return strings.TrimSpace(ctx.Destination)
	}
	return "Your Trip"
}

func resolvePaceField(obj map[string]any, ctx NormalizeContext) string {
	if pace := asString(obj["pace"]); pace != "" {
		return rm.ResolvePace(pace)
	}
	return rm.ResolvePace(ctx.Pace)
}

func resolveDayCount(obj map[string]any, ctx NormalizeContext) int {
	if ctx.PreferredDays > 0 {
		return rm.ClampDays(ctx.PreferredDays)
	}
	if days, ok := asPositiveInt(obj["days"]); ok {
		return rm.ClampDays(days)
	}
	if ctx.Days > 0 {
		return rm.ClampDays(ctx.Days)
	}
	return rm.DefaultPlanDays
}

// normalizeItinerary rebuilds each incoming day field by field, then pads or
// trims to exactly the resolved day count. Entries past the hard cap are
// discarded before anything else, whatever day count was requested.
func normalizeItinerary(raw any, days int) []rm.Day {
	var cleaned []rm.Day

	if entries, ok := raw.([]any); ok {
		if len(entries) > rm.MaxPlanDays {
			entries = entries[:rm.MaxPlanDays]
		}
		for _, entry := range entries {
			dayObj, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			cleaned = append(cleaned, normalizeDay(dayObj))
		}
	}

	for len(cleaned) < days {
		cleaned = append(cleaned, emptyDay())
	}
	cleaned = cleaned[:days]

	for i := range cleaned {
		cleaned[i].Day = i + 1
	}
	return cleaned
}

func normalizeDay(obj map[string]any) rm.Day {
	day := emptyDay()
	day.Area = asString(obj["area"])

	rawSlots, _ := obj["slots"].([]any)
	for _, rawSlot := range rawSlots {
		slotObj, ok := rawSlot.(map[string]any)
		if !ok {
			continue
		}

		slotIdx := slotIndex(asString(slotObj["timeOfDay"]))
		rawItems, _ := slotObj["items"].([]any)
		for _, rawItem := range rawItems {
			if item, ok := normalizeItem(rawItem); ok {
				day.Slots[slotIdx].Items = append(day.Slots[slotIdx].Items, item)
			}
		}
	}

	for i := range day.Slots {
		day.Slots[i].TotalHours = sumHours(day.Slots[i].Items)
		day.TotalHours = roundHours(day.TotalHours + day.Slots[i].TotalHours)
	}
	return day
}

func normalizeItem(raw any) (rm.PointOfInterest, bool) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return rm.PointOfInterest{}, false
	}

	name := strings.TrimSpace(asString(obj["name"]))
	if name == "" {
		return rm.PointOfInterest{}, false
	}

	category := asString(obj["category"])
	if !rm.IsKnownCategory(category) {
		category = rm.CategoryExperience
	}

	duration, ok := asPositiveFloat(obj["durationHours"])
	if !ok {
		duration = 1
	}

	return rm.PointOfInterest{
		Name:          name,
		Category:      category,
		Area:          asString(obj["area"]),
		DurationHours: duration,
	}, true
}

// emptyDay is a structurally complete day with all three slots and no items.
func emptyDay() rm.Day {
	slots := make([]rm.Slot, 0, len(rm.SlotOrder))
	for _, timeOfDay := range rm.SlotOrder {
		slots = append(slots, rm.Slot{TimeOfDay: timeOfDay, Items: []rm.PointOfInterest{}})
	}
	return rm.Day{Slots: slots}
}

func slotIndex(timeOfDay string) int {
	for i, known := range rm.SlotOrder {
		if known == timeOfDay {
			return i
		}
	}
	return 0
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asBool(v any) bool {
	b, _ := v.(bool)
	return b
}

func asPositiveInt(v any) (int, bool) {
	f, ok := asPositiveFloat(v)
	if !ok {
		return 0, false
	}
	return int(f), true
}

func asPositiveFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		if n > 0 {
			return n, true
		}
	case int:
		if n > 0 {
			return float64(n), true
		}
	}
	return 0, false
}
