package services

import (
	"regexp"
	"strconv"
	"strings"

	rm "tripmate/internal/models/response_models"
)

// Intent is what the conversational layer extracts from the latest user turn:
// the day count the rest of the pipeline should target, and whether the user
// explicitly asked to change it (as opposed to asking a question about it).
type Intent struct {
	RequestedDays      int
	IsDayChangeRequest bool
}

var (
	imperativeDaysRe = regexp.MustCompile(`(?:make it|change (?:it )?to|set (?:it )?to|want)\s+(\d+)`)
	forDaysRe        = regexp.MustCompile(`for\s+(\d+)\s*days?`)
	daysInsteadRe    = regexp.MustCompile(`(\d+)\s*days?\s*(?:instead|please)`)
	bareDaysRe       = regexp.MustCompile(`(\d+)\s*days?`)
)

var questionWords = []string{"enough", "worth", "how many", "should i"}

// ParseIntent decides the requested day count from free text. Pattern families
// run in priority order: imperative phrasing always wins, "for N days" and bare
// "N days" mentions are gated by the question heuristic so "is 3 days enough?"
// never resizes the plan. Matched counts clamp to the valid range.
func ParseIntent(message string, currentDays int) Intent {
	text := strings.ToLower(strings.TrimSpace(message))
	if text == "" {
		return Intent{RequestedDays: currentDays}
	}

	if days, ok := matchDays(imperativeDaysRe, text); ok {
		return Intent{RequestedDays: days, IsDayChangeRequest: true}
	}

	if days, ok := matchDays(forDaysRe, text); ok {
		if looksLikeQuestion(text) {
			return Intent{RequestedDays: currentDays}
		}
		return Intent{RequestedDays: days, IsDayChangeRequest: true}
	}

	if days, ok := matchDays(daysInsteadRe, text); ok {
		return Intent{RequestedDays: days, IsDayChangeRequest: true}
	}

	if days, ok := matchDays(bareDaysRe, text); ok {
		if looksLikeQuestion(text) {
			return Intent{RequestedDays: currentDays}
		}
		return Intent{RequestedDays: days, IsDayChangeRequest: true}
	}

	return Intent{RequestedDays: currentDays}
}

func matchDays(re *regexp.Regexp, text string) (int, bool) {
	match := re.FindStringSubmatch(text)
	if len(match) < 2 {
		return 0, false
	}
	days, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	return rm.ClampDays(days), true
}

func looksLikeQuestion(text string) bool {
	if strings.Contains(text, "?") {
		return true
	}
	for _, word := range questionWords {
		if strings.Contains(text, word) {
			return true
		}
	}
	return false
}
