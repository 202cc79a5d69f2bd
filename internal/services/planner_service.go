package services

import (
	"fmt"
	"hash/fnv"
	"log"
	"math"
	"strconv"
	"time"

	rm "tripmate/internal/models/response_models"
)

type PlannerServiceInterface interface {
	BuildPlan(destination string, days int, pace string, seed *int64) *rm.Plan
}

type PlannerService struct {
	catalog CatalogServiceInterface
}

func NewPlannerService(catalog CatalogServiceInterface) PlannerServiceInterface {
	return &PlannerService{catalog: catalog}
}

// Categories each slot is allowed to draw from. Evening skews social, morning
// skews sights; the cascade relaxes these when the pool runs thin.
var slotCategories = map[string][]string{
	"morning":   {rm.CategoryLandmark, rm.CategoryMuseum, rm.CategoryPark, rm.CategoryMarket, rm.CategoryCafe, rm.CategoryViewpoint},
	"afternoon": {rm.CategoryMuseum, rm.CategoryPark, rm.CategoryShopping, rm.CategoryExperience, rm.CategoryLandmark, rm.CategoryMarket},
	"evening":   {rm.CategoryFood, rm.CategoryNightlife, rm.CategoryViewpoint, rm.CategoryExperience, rm.CategoryCafe},
}

var categoryLabels = map[string]string{
	rm.CategoryLandmark:   "Landmark Visit",
	rm.CategoryMuseum:     "Museum Stop",
	rm.CategoryPark:       "Green Escape",
	rm.CategoryFood:       "Local Food Spot",
	rm.CategoryCafe:       "Coffee Break",
	rm.CategoryMarket:     "Market Browse",
	rm.CategoryNightlife:  "Evening Out",
	rm.CategoryShopping:   "Shopping Stop",
	rm.CategoryViewpoint:  "Scenic Lookout",
	rm.CategoryExperience: "Local Experience",
}

// BuildPlan turns a destination, day count and pace into a full schedule.
// It never fails: unknown destinations synthesize a fallback city, out-of-range
// day counts clamp, unknown paces default, and an exhausted place pool pads
// with placeholder stops. Passing the same seed reproduces the same plan.
func (s *PlannerService) BuildPlan(destination string, days int, pace string, seed *int64) *rm.Plan {
	city := s.catalog.ResolveCity(destination)
	days = rm.ClampDays(days)
	paceKey := rm.ResolvePace(pace)
	rule := rm.PaceRules[paceKey]

	seedToken := strconv.FormatInt(time.Now().UnixNano(), 10)
	if seed != nil {
		seedToken = strconv.FormatInt(*seed, 10)
	}
	rng := newSeededRand(hashSeed(destination + ":" + seedToken))

	areas := distinctAreas(city.Places)
	rng.shuffle(len(areas), func(i, j int) { areas[i], areas[j] = areas[j], areas[i] })

	pool := make([]rm.PointOfInterest, len(city.Places))
	copy(pool, city.Places)
	rng.shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	fallbackIdx := 1
	itinerary := make([]rm.Day, 0, days)

	for d := 0; d < days; d++ {
		area := ""
		if len(areas) > 0 {
			area = areas[d%len(areas)]
		}
		day := rm.Day{Day: d + 1, Area: area, Slots: make([]rm.Slot, 0, len(rm.SlotOrder))}

		for si, timeOfDay := range rm.SlotOrder {
			want := rule.SlotCounts[si]
			allowed := slotCategories[timeOfDay]

			var picked []rm.PointOfInterest
			picked, pool = drawPlaces(pool, want, area, allowed)

			for len(picked) < want {
				category := allowed[(fallbackIdx-1)%len(allowed)]
				picked = append(picked, rm.PointOfInterest{
					Name:          fmt.Sprintf("%s %s %d", city.DisplayName, categoryLabels[category], fallbackIdx),
					Category:      category,
					Area:          area,
					DurationHours: 1.5,
				})
				fallbackIdx++
			}

			slot := rm.Slot{TimeOfDay: timeOfDay, Items: picked, TotalHours: sumHours(picked)}
			day.Slots = append(day.Slots, slot)
			day.TotalHours = roundHours(day.TotalHours + slot.TotalHours)
		}

		itinerary = append(itinerary, day)
	}

	if fallbackIdx > 1 {
		log.Printf("planner: pool exhausted for %q, padded %d placeholder stops", city.DisplayName, fallbackIdx-1)
	}

	plan := &rm.Plan{
		Destination: city.DisplayName,
		Pace:        paceKey,
		Days:        days,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		IsFallback:  city.IsFallback,
		Itinerary:   itinerary,
	}
	plan.Meta = computeMeta(itinerary, days, rule)
	return plan
}

// drawPlaces takes up to want places from the pool using a four-tier cascade:
// area+category, area only, category only, then anything left. The pool comes
// in as a snapshot and goes out as the remainder, so no shared state is
// mutated.
func drawPlaces(pool []rm.PointOfInterest, want int, area string, categories []string) ([]rm.PointOfInterest, []rm.PointOfInterest) {
	picked := make([]rm.PointOfInterest, 0, want)

	tiers := []func(p rm.PointOfInterest) bool{
		func(p rm.PointOfInterest) bool { return p.Area == area && containsCategory(categories, p.Category) },
		func(p rm.PointOfInterest) bool { return p.Area == area },
		func(p rm.PointOfInterest) bool { return containsCategory(categories, p.Category) },
		func(p rm.PointOfInterest) bool { return true },
	}

	for _, match := range tiers {
		if len(picked) >= want {
			break
		}
		remaining := pool[:0:0]
		for _, place := range pool {
			if len(picked) < want && match(place) {
				picked = append(picked, place)
			} else {
				remaining = append(remaining, place)
			}
		}
		pool = remaining
	}

	return picked, pool
}

func containsCategory(categories []string, category string) bool {
	for _, c := range categories {
		if c == category {
			return true
		}
	}
	return false
}

// distinctAreas preserves first-appearance order so the subsequent shuffle is
// the only source of variation.
func distinctAreas(places []rm.PointOfInterest) []string {
	seen := make(map[string]bool)
	var areas []string
	for _, place := range places {
		if place.Area != "" && !seen[place.Area] {
			seen[place.Area] = true
			areas = append(areas, place.Area)
		}
	}
	return areas
}

func computeMeta(itinerary []rm.Day, days int, rule rm.PaceRule) rm.PlanMeta {
	totalStops := 0
	totalHours := 0.0
	for _, day := range itinerary {
		for _, slot := range day.Slots {
			totalStops += len(slot.Items)
		}
		totalHours += day.TotalHours
	}

	meta := rm.PlanMeta{
		TotalStops:     totalStops,
		MaxHoursPerDay: rule.MaxHoursPerDay,
		MaxStopsPerDay: rule.MaxStopsPerDay,
	}
	if days > 0 {
		meta.AvgStopsPerDay = roundHours(float64(totalStops) / float64(days))
		meta.AvgHoursPerDay = roundHours(totalHours / float64(days))
	}
	return meta
}

func sumHours(places []rm.PointOfInterest) float64 {
	total := 0.0
	for _, place := range places {
		total += place.DurationHours
	}
	return roundHours(total)
}

func roundHours(hours float64) float64 {
	return math.Round(hours*10) / 10
}

// hashSeed folds an arbitrary seed string into 32 bits.
func hashSeed(input string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(input))
	return h.Sum32()
}

// seededRand is a small linear congruential generator. Same seed, same
// sequence; that is the whole contract.
type seededRand struct {
	state uint32
}

func newSeededRand(seed uint32) *seededRand {
	if seed == 0 {
		seed = 1
	}
	return &seededRand{state: seed}
}

func (r *seededRand) next() uint32 {
	r.state = r.state*1664525 + 1013904223
	return r.state
}

func (r *seededRand) intn(n int) int {
	if n <= 0 {
		return 0
	}
	// Drop the low bits, they cycle quickly in an LCG.
	return int((r.next() >> 8) % uint32(n))
}

// shuffle is a Fisher-Yates pass driven by the seeded generator.
func (r *seededRand) shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		swap(i, r.intn(i+1))
	}
}
