package recommend

import (
	"strings"

	"catholic-discovery-be/pkg/discovery/scoring"
)

// Suggestion is one resolved recommendation, traced back to a real candidate
// from the current turn. Event fields are set only for event tags.
type Suggestion struct {
	Candidate  scoring.Candidate `json:"candidate"`
	Tag        TagType           `json:"tag"`
	EventTitle string            `json:"event_title,omitempty"`
	EventDate  string            `json:"event_date,omitempty"`
	EventTime  string            `json:"event_time,omitempty"`
}

// Resolver maps parsed tags back to the turn's candidates. Every surfaced
// suggestion must trace to a real candidate; tags that resolve to nothing are
// dropped silently.
type Resolver struct{}

func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve matches each tag against the candidate pool in tiers: exact
// case-insensitive name, substring containment either direction, then
// containment with a leading honorific stripped. A candidate already claimed
// by an earlier tag is excluded so one record never backs two suggestions.
func (r *Resolver) Resolve(tags []ParsedTag, candidates []scoring.Candidate) []Suggestion {
	suggestions := make([]Suggestion, 0, len(tags))
	claimed := make(map[string]bool)

	for _, tag := range tags {
		name := tag.Name
		if tag.Type == TagEvent && tag.EventParent != "" {
			// Events resolve by their hosting resource.
			name = tag.EventParent
		}

		candidate, ok := r.match(name, candidates, claimed)
		if !ok {
			continue
		}
		claimed[candidate.ID] = true

		suggestion := Suggestion{Candidate: candidate, Tag: tag.Type}
		if tag.Type == TagEvent {
			suggestion.EventTitle = tag.Name
			suggestion.EventDate = tag.EventDate
			suggestion.EventTime = tag.EventTime
		}
		suggestions = append(suggestions, suggestion)
	}

	return suggestions
}

func (r *Resolver) match(name string, candidates []scoring.Candidate, claimed map[string]bool) (scoring.Candidate, bool) {
	target := strings.ToLower(strings.TrimSpace(name))
	if target == "" {
		return scoring.Candidate{}, false
	}

	// Tier 1: exact case-insensitive match.
	for _, c := range candidates {
		if claimed[c.ID] {
			continue
		}
		if strings.ToLower(c.Name) == target {
			return c, true
		}
	}

	// Tier 2: substring containment either direction.
	for _, c := range candidates {
		if claimed[c.ID] {
			continue
		}
		cname := strings.ToLower(c.Name)
		if strings.Contains(cname, target) || strings.Contains(target, cname) {
			return c, true
		}
	}

	// Tier 3: containment after stripping a leading honorific on both sides.
	stripped := stripHonorific(target)
	for _, c := range candidates {
		if claimed[c.ID] {
			continue
		}
		cname := stripHonorific(strings.ToLower(c.Name))
		if stripped != "" && cname != "" &&
			(strings.Contains(cname, stripped) || strings.Contains(stripped, cname)) {
			return c, true
		}
	}

	return scoring.Candidate{}, false
}

var honorifics = []string{"st. ", "st ", "saint "}

func stripHonorific(name string) string {
	for _, h := range honorifics {
		if strings.HasPrefix(name, h) {
			return strings.TrimSpace(name[len(h):])
		}
	}
	return name
}
