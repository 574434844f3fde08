package intent

import (
	"regexp"
	"strings"

	"catholic-discovery-be/pkg/discovery/category"
	"catholic-discovery-be/pkg/discovery/geo"
)

// categoryKeywords drives the deterministic classifier. Order follows
// category.All so results are stable.
var categoryKeywords = map[category.Category][]string{
	category.Church:     {"church", "churches", "parish", "parishes", "mass", "chapel", "cathedral", "basilica", "confession", "adoration"},
	category.School:     {"school", "schools", "academy", "education", "high school", "elementary", "homeschool"},
	category.Retreat:    {"retreat", "retreats", "silent retreat", "spiritual exercises"},
	category.Pilgrimage: {"pilgrimage", "pilgrimages", "shrine", "shrines", "holy site"},
	category.Missionary: {"missionary", "missionaries", "mission trip", "missions"},
	category.Vocation:   {"vocation", "vocations", "seminary", "religious order", "priesthood", "discernment", "convent", "monastery"},
	category.Business:   {"business", "businesses", "bookstore", "catholic store", "gift shop"},
	category.Campus:     {"campus", "newman center", "college ministry", "university ministry"},
}

var greetingPrefixes = []string{
	"hi", "hello", "hey", "good morning", "good afternoon", "good evening",
	"thanks", "thank you", "god bless",
}

var scheduleMarkers = []string{"mass time", "mass times", "schedule", "what time", "when is", "confession time", "service time"}

var eventMarkers = []string{"event", "events", "happening", "this weekend", "this week", "festival", "upcoming"}

var learnMoreMarkers = []string{"tell me more", "more about", "what is", "what's", "who is", "who are", "details on", "details about"}

// locationPattern captures the phrase after a proximity preposition, up to
// the next clause boundary.
var locationPattern = regexp.MustCompile(`\b(?:near|in|around|close to)\s+([a-z][a-z .']*[a-z.])`)

// ClassifyFallback is the deterministic classifier used when the LLM path is
// unavailable or returns garbage. It must produce the same shape as the
// primary path.
func ClassifyFallback(query string) *Classification {
	q := strings.ToLower(strings.TrimSpace(query))

	classification := &Classification{
		Intent:   IntentDiscover,
		Location: extractLocation(q),
	}

	if isGreeting(q) {
		classification.Intent = IntentGeneral
		classification.normalize()
		return classification
	}

	for _, cat := range category.All {
		for _, kw := range categoryKeywords[cat] {
			if strings.Contains(q, kw) {
				classification.Categories = append(classification.Categories, cat)
				break
			}
		}
	}

	switch {
	case containsAny(q, scheduleMarkers):
		classification.Intent = IntentSchedule
	case containsAny(q, eventMarkers):
		classification.Intent = IntentEvents
	case containsAny(q, learnMoreMarkers):
		classification.Intent = IntentLearnMore
		classification.EntityName = extractEntityName(q)
	case strings.Contains(q, "near me") || strings.Contains(q, "nearby") || classification.Location != "":
		classification.Intent = IntentNearby
	}

	classification.normalize()
	return classification
}

func isGreeting(q string) bool {
	for _, prefix := range greetingPrefixes {
		if q == prefix || strings.HasPrefix(q, prefix+" ") || strings.HasPrefix(q, prefix+",") || strings.HasPrefix(q, prefix+"!") {
			return true
		}
	}
	return false
}

func containsAny(q string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(q, m) {
			return true
		}
	}
	return false
}

// extractLocation tries the "near/in/around X" pattern first, then scans for
// the longest known-city phrase anywhere in the query.
func extractLocation(q string) string {
	if m := locationPattern.FindStringSubmatch(q); m != nil {
		candidate := strings.TrimSpace(m[1])
		if candidate == "me" {
			candidate = ""
		}
		if candidate != "" && geo.KnownCity(candidate) {
			return candidate
		}
		// The captured phrase may run past the city name ("near denver this
		// weekend"). Shrink from the right until something resolves.
		words := strings.Fields(candidate)
		for n := len(words); n >= 1; n-- {
			phrase := strings.Join(words[:n], " ")
			if geo.KnownCity(phrase) {
				return phrase
			}
		}
	}

	// Longest-match scan over every word window in the query.
	words := strings.Fields(strings.Map(stripPunct, q))
	best := ""
	for i := 0; i < len(words); i++ {
		for j := i + 1; j <= len(words) && j-i <= 3; j++ {
			phrase := strings.Join(words[i:j], " ")
			if geo.KnownCity(phrase) && len(phrase) > len(best) {
				best = phrase
			}
		}
	}
	return best
}

// extractEntityName pulls the subject out of a "tell me more about X" style
// query.
func extractEntityName(q string) string {
	for _, marker := range learnMoreMarkers {
		if idx := strings.Index(q, marker); idx >= 0 {
			rest := strings.TrimSpace(q[idx+len(marker):])
			rest = strings.TrimPrefix(rest, "about ")
			rest = strings.Trim(rest, " ?!.")
			return rest
		}
	}
	return ""
}

func stripPunct(r rune) rune {
	switch r {
	case ',', '?', '!', ';', ':':
		return ' '
	}
	return r
}
