package prompt

import (
	"fmt"
	"strings"

	"catholic-discovery-be/pkg/discovery/category"
	"catholic-discovery-be/pkg/discovery/intent"
	"catholic-discovery-be/pkg/discovery/scoring"
)

// DiscoveryBuilder assembles the answer-generation prompt for one turn: the
// ranked candidates per category, intent-specific instructions, and the tag
// contract the recommendation resolver depends on.
type DiscoveryBuilder struct {
	query          string
	classification *intent.Classification
	candidates     map[category.Category][]scoring.Candidate
}

func NewDiscoveryBuilder(query string, classification *intent.Classification, candidates map[category.Category][]scoring.Candidate) *DiscoveryBuilder {
	return &DiscoveryBuilder{
		query:          query,
		classification: classification,
		candidates:     candidates,
	}
}

func (b *DiscoveryBuilder) Build() string {
	var prompt strings.Builder

	b.writeTask(&prompt)
	b.writeCandidates(&prompt)
	b.writeIntentGuidance(&prompt)
	b.writeTagContract(&prompt)
	b.writeUserQuery(&prompt)

	return prompt.String()
}

func (b *DiscoveryBuilder) writeTask(prompt *strings.Builder) {
	prompt.WriteString("<task>\n")
	prompt.WriteString("You are a warm, knowledgeable assistant helping the user discover Catholic resources.\n")
	prompt.WriteString("Recommend ONLY from the candidate list below. Never invent a resource that is not listed.\n")
	prompt.WriteString("</task>\n\n")
}

func (b *DiscoveryBuilder) writeCandidates(prompt *strings.Builder) {
	prompt.WriteString("<candidates>\n")
	empty := true
	for _, cat := range category.All {
		list := b.candidates[cat]
		if len(list) == 0 {
			continue
		}
		empty = false
		prompt.WriteString(fmt.Sprintf("%s:\n", cat.DisplayName()))
		for i, c := range list {
			prompt.WriteString(fmt.Sprintf("  %d. %s", i+1, c.Name))
			if c.Location != "" {
				prompt.WriteString(" (" + c.Location)
				if c.DistanceMiles != nil {
					prompt.WriteString(fmt.Sprintf(", %.0f mi", *c.DistanceMiles))
				}
				prompt.WriteString(")")
			} else if c.DistanceMiles != nil {
				prompt.WriteString(fmt.Sprintf(" (%.0f mi)", *c.DistanceMiles))
			}
			if c.Description != "" {
				prompt.WriteString(" - " + truncate(c.Description, 160))
			}
			prompt.WriteString("\n")
		}
	}
	if empty {
		prompt.WriteString("No matching resources were found for this query.\n")
		prompt.WriteString("Say so gently and suggest the user broaden the search or try another area.\n")
	}
	prompt.WriteString("</candidates>\n\n")
}

func (b *DiscoveryBuilder) writeIntentGuidance(prompt *strings.Builder) {
	prompt.WriteString("<guidance>\n")
	switch b.classification.Intent {
	case intent.IntentNearby:
		prompt.WriteString("The user is looking for resources close to a place. Lead with the nearest candidates and mention their distance.\n")
	case intent.IntentSchedule:
		prompt.WriteString("The user is asking about mass or service schedules. Mention schedule details where the candidates have them; otherwise suggest contacting the parish.\n")
	case intent.IntentEvents:
		prompt.WriteString("The user is asking about upcoming events. Highlight candidates with event activity.\n")
	case intent.IntentLearnMore:
		prompt.WriteString("The user wants detail on one specific resource. Answer in depth about the best-matching candidate only.\n")
	case intent.IntentGeneral:
		prompt.WriteString("This is conversational. Respond warmly and briefly; do not push recommendations.\n")
	default:
		prompt.WriteString("Recommend the 2-4 strongest candidates and say briefly why each fits.\n")
	}
	if b.classification.Location != "" {
		prompt.WriteString(fmt.Sprintf("The user's area of interest is %s.\n", b.classification.Location))
	}
	prompt.WriteString("Keep the tone pastoral and concise. Do not use markdown headers.\n")
	prompt.WriteString("</guidance>\n\n")
}

func (b *DiscoveryBuilder) writeTagContract(prompt *strings.Builder) {
	prompt.WriteString("<recommendation_tags>\n")
	prompt.WriteString("Every resource you recommend MUST be marked inline with a tag, immediately after you mention it:\n")
	prompt.WriteString("  [RECOMMEND: exact candidate name]\n")
	prompt.WriteString("For a specific event at a resource, use:\n")
	prompt.WriteString("  [RECOMMEND_EVENT: event title|date|time|resource name]\n")
	prompt.WriteString("For an organization or ministry, use:\n")
	prompt.WriteString("  [RECOMMEND_ORG: exact organization name]\n")
	prompt.WriteString("Use the candidate's name exactly as listed. Tag each resource at most once.\n")
	prompt.WriteString("</recommendation_tags>\n\n")
}

func (b *DiscoveryBuilder) writeUserQuery(prompt *strings.Builder) {
	prompt.WriteString("<user_question>\n")
	prompt.WriteString(b.query)
	prompt.WriteString("\n</user_question>\n\n")
	prompt.WriteString("Now write your response, tagging every recommendation:")
}

// FollowUpBuilder assembles the narrower prompt used when the user asks for
// more detail about something already recommended. The scorers are bypassed;
// only the one candidate's detail view is in play.
type FollowUpBuilder struct {
	query     string
	candidate scoring.Candidate
	detail    map[string]interface{}
}

func NewFollowUpBuilder(query string, candidate scoring.Candidate, detail map[string]interface{}) *FollowUpBuilder {
	return &FollowUpBuilder{
		query:     query,
		candidate: candidate,
		detail:    detail,
	}
}

func (b *FollowUpBuilder) Build() string {
	var prompt strings.Builder

	prompt.WriteString("<task>\n")
	prompt.WriteString("You are a warm, knowledgeable assistant. The user is asking a follow-up question about a resource you already recommended.\n")
	prompt.WriteString("Answer from the resource details below only. If a detail is not present, say you do not have it.\n")
	prompt.WriteString("</task>\n\n")

	prompt.WriteString("<resource>\n")
	prompt.WriteString("Name: " + b.candidate.Name + "\n")
	prompt.WriteString("Type: " + b.candidate.Category.DisplayName() + "\n")
	if b.candidate.Location != "" {
		prompt.WriteString("Location: " + b.candidate.Location + "\n")
	}
	for _, key := range detailKeys {
		if v, ok := b.detail[key]; ok && v != nil {
			prompt.WriteString(fmt.Sprintf("%s: %v\n", detailLabels[key], v))
		}
	}
	prompt.WriteString("</resource>\n\n")

	prompt.WriteString("<user_question>\n")
	prompt.WriteString(b.query)
	prompt.WriteString("\n</user_question>\n\n")
	prompt.WriteString("Answer the question about this resource:")
	return prompt.String()
}

// detailKeys is the ordered subset of record fields surfaced in follow-ups.
var detailKeys = []string{
	"description", "address", "phone", "email", "website",
	"massSchedule", "schedule", "massTimes", "upcomingEvents", "pastor",
}

var detailLabels = map[string]string{
	"description":    "About",
	"address":        "Address",
	"phone":          "Phone",
	"email":          "Email",
	"website":        "Website",
	"massSchedule":   "Mass schedule",
	"schedule":       "Schedule",
	"massTimes":      "Mass times",
	"upcomingEvents": "Upcoming events",
	"pastor":         "Pastor",
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return strings.TrimSpace(s[:n]) + "..."
}
