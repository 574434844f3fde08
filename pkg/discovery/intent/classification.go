package intent

import (
	"catholic-discovery-be/pkg/discovery/category"
)

// Intent is the closed set of conversational goals the assistant recognizes.
type Intent string

const (
	IntentDiscover  Intent = "discover"
	IntentNearby    Intent = "nearby"
	IntentSchedule  Intent = "schedule"
	IntentEvents    Intent = "events"
	IntentLearnMore Intent = "learn_more"
	IntentGeneral   Intent = "general"
)

var knownIntents = map[Intent]bool{
	IntentDiscover:  true,
	IntentNearby:    true,
	IntentSchedule:  true,
	IntentEvents:    true,
	IntentLearnMore: true,
	IntentGeneral:   true,
}

// maxCategories bounds how many categories a single turn activates.
const maxCategories = 3

// Classification is the normalized result of classifying one query. The LLM
// path and the deterministic fallback both produce this shape so downstream
// code never branches on which path ran.
type Classification struct {
	Categories []category.Category `json:"categories"`
	Intent     Intent              `json:"intent"`
	Location   string              `json:"location"`
	EntityName string              `json:"entity_name"`
}

// normalize coerces a raw classification into a valid one. Unknown category
// tags are dropped, the list is truncated, and an unknown intent becomes
// discover. Coercion never fails; a broken upstream shape degrades, it does
// not error.
func (c *Classification) normalize() {
	valid := make([]category.Category, 0, len(c.Categories))
	seen := make(map[category.Category]bool)
	for _, tag := range c.Categories {
		cat, ok := category.Parse(string(tag))
		if !ok || seen[cat] {
			continue
		}
		seen[cat] = true
		valid = append(valid, cat)
		if len(valid) == maxCategories {
			break
		}
	}
	c.Categories = valid

	if !knownIntents[c.Intent] {
		c.Intent = IntentDiscover
	}

	// A non-general turn always activates at least the most general category.
	if len(c.Categories) == 0 && c.Intent != IntentGeneral {
		c.Categories = []category.Category{category.Default}
	}
}
