package scoring

import (
	"math"
	"sort"
	"strings"

	"catholic-discovery-be/pkg/discovery/category"
	"catholic-discovery-be/pkg/discovery/fuzzy"
	"catholic-discovery-be/pkg/discovery/geo"
	"catholic-discovery-be/pkg/discovery/records"
)

// Candidate is the per-query projection of a record: scored, ranked, and
// discarded after the turn except for the few retained for follow-ups.
type Candidate struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Category      category.Category `json:"category"`
	Subtitle      string            `json:"subtitle"`
	Description   string            `json:"description,omitempty"`
	Location      string            `json:"location,omitempty"`
	DistanceMiles *float64          `json:"distance_miles,omitempty"`
	Score         int               `json:"score"`
}

const (
	nameWeight      = 3
	unlockedBonus   = 5
	scheduleBonus   = 3
	eventsBonus     = 3
	eliminatedScore = -1000
)

// ScoreCategory ranks one category's records against a query. Candidates come
// back sorted by descending score, ties broken by ascending distance, capped
// to the category's maximum. Records whose declared region conflicts with the
// center's expected region are eliminated outright, not merely deprioritized.
func ScoreCategory(cat category.Category, recs []records.Record, query string, center *geo.Center) []Candidate {
	candidates := make([]Candidate, 0, len(recs))

	for _, rec := range recs {
		name := rec.Name()
		if name == "" {
			continue
		}

		c := Candidate{
			ID:          rec.ID,
			Name:        name,
			Category:    cat,
			Subtitle:    subtitle(cat, rec),
			Description: rec.Description(),
			Location:    rec.City(),
			Score:       scoreRecord(cat, rec, query, center),
		}
		if center != nil {
			if coords := geo.ExtractCoordinates(rec.Fields); coords != nil {
				d := geo.Distance(center.Lat, center.Lng, coords.Lat, coords.Lng)
				c.DistanceMiles = &d
			}
		}

		if c.Score > 0 {
			candidates = append(candidates, c)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return distanceOf(candidates[i]) < distanceOf(candidates[j])
	})

	if max := cat.MaxResults(); len(candidates) > max {
		candidates = candidates[:max]
	}
	return candidates
}

// scoreRecord composes the text base score, the linear proximity bonus, the
// region elimination rule, and the small domain boosts.
func scoreRecord(cat category.Category, rec records.Record, query string, center *geo.Center) int {
	blob := buildSearchBlob(rec)
	base := int(math.Round(fuzzy.Score(query, blob) * 50))
	if base < 1 {
		// A category the classifier activated must still return an ordering
		// even with zero textual overlap.
		base = 1
	}
	score := base

	if center != nil {
		if region := rec.Region(); region != "" && center.Region != "" && region != center.Region {
			return eliminatedScore
		}
		if coords := geo.ExtractCoordinates(rec.Fields); coords != nil {
			d := geo.Distance(center.Lat, center.Lng, coords.Lat, coords.Lng)
			radius := cat.ProximityRadiusMiles()
			if d <= radius {
				bonus := int(radius) - int(math.Round(d))
				if bonus > 0 {
					score += bonus
				}
			}
		}
	}

	if rec.Unlocked() {
		score += unlockedBonus
	}
	if rec.HasSchedule() {
		score += scheduleBonus
	}
	if rec.HasUpcomingEvents() {
		score += eventsBonus
	}
	return score
}

// buildSearchBlob assembles the text the fuzzy matcher scores against. The
// name repeats so name hits dominate description hits.
func buildSearchBlob(rec records.Record) string {
	var b strings.Builder
	name := rec.Name()
	for i := 0; i < nameWeight; i++ {
		b.WriteString(name)
		b.WriteByte(' ')
	}
	if city := rec.City(); city != "" {
		b.WriteString(city)
		b.WriteByte(' ')
	}
	if region := rec.Region(); region != "" {
		b.WriteString(region)
		b.WriteByte(' ')
	}
	b.WriteString(rec.Description())
	return b.String()
}

func subtitle(cat category.Category, rec records.Record) string {
	label := cat.DisplayName()
	if city := rec.City(); city != "" {
		if region := rec.Region(); region != "" {
			return label + " · " + city + ", " + region
		}
		return label + " · " + city
	}
	return label
}

func distanceOf(c Candidate) float64 {
	if c.DistanceMiles == nil {
		return math.MaxFloat64
	}
	return *c.DistanceMiles
}

// ScoreAll runs the scorer for every requested category against the warmed
// record map.
func ScoreAll(cats []category.Category, data records.ByCategory, query string, center *geo.Center) map[category.Category][]Candidate {
	out := make(map[category.Category][]Candidate, len(cats))
	for _, cat := range cats {
		out[cat] = ScoreCategory(cat, data[cat], query, center)
	}
	return out
}
