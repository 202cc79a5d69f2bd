package response_models

// MaxPlanDays is the hard cap on itinerary length. Requests and model output
// beyond this are clamped, never rejected.
const MaxPlanDays = 10

const DefaultPlanDays = 3

// The three fixed subdivisions of an itinerary day, always in this order.
var SlotOrder = [3]string{"morning", "afternoon", "evening"}

// The ten known place categories. Anything else coming back from a model
// is coerced to CategoryExperience.
const (
	CategoryLandmark   = "landmark"
	CategoryMuseum     = "museum"
	CategoryPark       = "park"
	CategoryFood       = "food"
	CategoryCafe       = "cafe"
	CategoryMarket     = "market"
	CategoryNightlife  = "nightlife"
	CategoryShopping   = "shopping"
	CategoryViewpoint  = "viewpoint"
	CategoryExperience = "experience"
)

var KnownCategories = []string{
	CategoryLandmark, CategoryMuseum, CategoryPark, CategoryFood, CategoryCafe,
	CategoryMarket, CategoryNightlife, CategoryShopping, CategoryViewpoint,
	CategoryExperience,
}

func IsKnownCategory(category string) bool {
	for _, c := range KnownCategories {
		if c == category {
			return true
		}
	}
	return false
}

type PointOfInterest struct {
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Area          string  `json:"area"`
	DurationHours float64 `json:"durationHours"`
}

type Slot struct {
	TimeOfDay  string            `json:"timeOfDay"`
	Items      []PointOfInterest `json:"items"`
	TotalHours float64           `json:"totalHours"`
}

type Day struct {
	Day        int     `json:"day"`
	Area       string  `json:"area"`
	TotalHours float64 `json:"totalHours"`
	Slots      []Slot  `json:"slots"`
}

type PlanMeta struct {
	TotalStops     int     `json:"totalStops"`
	AvgStopsPerDay float64 `json:"avgStopsPerDay"`
	AvgHoursPerDay float64 `json:"avgHoursPerDay"`
	MaxHoursPerDay float64 `json:"maxHoursPerDay"`
	MaxStopsPerDay int     `json:"maxStopsPerDay"`
}

type Plan struct {
	Destination      string   `json:"destination"`
	Pace             string   `json:"pace"`
	Days             int      `json:"days"`
	GeneratedAt      string   `json:"generatedAt"`
	IsFallback       bool     `json:"isFallback"`
	Meta             PlanMeta `json:"meta"`
	Itinerary        []Day    `json:"itinerary"`
	AssistantMessage string   `json:"assistantMessage,omitempty"`
}

// PaceRule caps a day's load and fixes how many stops each slot gets.
type PaceRule struct {
	MaxStopsPerDay int
	MaxHoursPerDay float64
	SlotCounts     [3]int
}

var PaceRules = map[string]PaceRule{
	"relaxed":  {MaxStopsPerDay: 3, MaxHoursPerDay: 6, SlotCounts: [3]int{1, 1, 1}},
	"balanced": {MaxStopsPerDay: 4, MaxHoursPerDay: 7, SlotCounts: [3]int{2, 1, 1}},
	"fast":     {MaxStopsPerDay: 5, MaxHoursPerDay: 8, SlotCounts: [3]int{2, 2, 1}},
}

var paceAliases = map[string]string{
	"relaxed":  "relaxed",
	"relax":    "relaxed",
	"slow":     "relaxed",
	"easy":     "relaxed",
	"chill":    "relaxed",
	"balanced": "balanced",
	"balance":  "balanced",
	"medium":   "balanced",
	"moderate": "balanced",
	"normal":   "balanced",
	"fast":     "fast",
	"active":   "fast",
	"busy":     "fast",
	"packed":   "fast",
	"intense":  "fast",
}

// ResolvePace maps loose user wording onto a pace key, defaulting to balanced.
func ResolvePace(pace string) string {
	if resolved, ok := paceAliases[normalizeToken(pace)]; ok {
		return resolved
	}
	return "balanced"
}

// ClampDays forces a requested day count into [1, MaxPlanDays], with zero or
// negative input falling back to the default.
func ClampDays(days int) int {
	if days <= 0 {
		return DefaultPlanDays
	}
	if days > MaxPlanDays {
		return MaxPlanDays
	}
	return days
}

func normalizeToken(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
		}
	}
	return string(out)
}
