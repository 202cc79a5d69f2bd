package services

import (
	"fmt"
	"strings"
	"unicode"

	rm "tripmate/internal/models/response_models"
)

// City is a planning-time value object: either a curated catalog entry or a
// synthesized fallback. It is rebuilt per request and never persisted.
type City struct {
	Key         string
	DisplayName string
	Country     string
	IsFallback  bool
	Places      []rm.PointOfInterest
}

type CatalogServiceInterface interface {
	ResolveCity(destination string) City
	ListCityKeys() []string
}

type CatalogService struct{}

func NewCatalogService() CatalogServiceInterface {
	return &CatalogService{}
}

// ResolveCity matches a free-text destination against the alias table. A miss
// is not an error: it synthesizes a generic city from the fallback template so
// the builder always has a full place pool to work with.
func (s *CatalogService) ResolveCity(destination string) City {
	normalized := NormalizeDestination(destination)

	if key, ok := cityAliases[normalized]; ok {
		city := cityCatalog[key]
		return City{
			Key:         city.Key,
			DisplayName: city.DisplayName,
			Country:     city.Country,
			Places:      city.Places,
		}
	}

	return synthesizeFallbackCity(destination)
}

func (s *CatalogService) ListCityKeys() []string {
	keys := make([]string, 0, len(cityCatalog))
	for key := range cityCatalog {
		keys = append(keys, key)
	}
	return keys
}

// NormalizeDestination lowercases, strips punctuation and collapses runs of
// whitespace so "  Paris,  France! " and "paris france" resolve identically.
// Hyphens and underscores count as spaces so catalog keys round-trip.
func NormalizeDestination(destination string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(destination) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-' || r == '_':
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func synthesizeFallbackCity(destination string) City {
	display := displayNameFromInput(destination)

	places := make([]rm.PointOfInterest, 0, len(fallbackPlaceTemplate))
	for _, tpl := range fallbackPlaceTemplate {
		place := tpl
		place.Name = fmt.Sprintf(tpl.Name, display)
		places = append(places, place)
	}

	return City{
		Key:         NormalizeDestination(destination),
		DisplayName: display,
		Country:     "",
		IsFallback:  true,
		Places:      places,
	}
}

// displayNameFromInput title-cases the cleaned user input for use in
// synthesized place names.
func displayNameFromInput(destination string) string {
	normalized := NormalizeDestination(destination)
	if normalized == "" {
		return "Your Destination"
	}

	words := strings.Fields(normalized)
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
