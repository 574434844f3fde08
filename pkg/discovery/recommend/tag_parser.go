package recommend

import (
	"regexp"
	"strings"
)

// TagType indicates which reference syntax the answer used.
type TagType string

const (
	TagResource     TagType = "resource"
	TagEvent        TagType = "event"
	TagOrganization TagType = "organization"
)

// ParsedTag is a single bracketed reference extracted from an answer.
type ParsedTag struct {
	Type        TagType
	Name        string // resource/organization name, or the event title
	EventDate   string
	EventTime   string
	EventParent string // name of the resource hosting the event
	OriginalRaw string
}

// TagParseResult contains the parsed tags and the answer with tag syntax
// stripped.
type TagParseResult struct {
	Tags      []ParsedTag
	CleanText string
	HasTags   bool
}

// Tag patterns:
// [RECOMMEND: name]                       - resource reference
// [RECOMMEND_EVENT: title|date|time|name] - event at a resource
// [RECOMMEND_ORG: name]                   - organization reference
var (
	eventTagPattern    = regexp.MustCompile(`\[RECOMMEND_EVENT:\s*([^\]]+)\]`)
	orgTagPattern      = regexp.MustCompile(`\[RECOMMEND_ORG:\s*([^\]]+)\]`)
	resourceTagPattern = regexp.MustCompile(`\[RECOMMEND:\s*([^\]]+)\]`)
)

// ParseTags extracts every recommendation tag from an LLM answer and returns
// them alongside the cleaned answer text.
func ParseTags(answer string) *TagParseResult {
	result := &TagParseResult{
		Tags:      make([]ParsedTag, 0),
		CleanText: answer,
	}

	for _, match := range eventTagPattern.FindAllStringSubmatch(answer, -1) {
		tag := ParsedTag{Type: TagEvent, OriginalRaw: match[0]}
		parts := strings.SplitN(match[1], "|", 4)
		tag.Name = strings.TrimSpace(parts[0])
		if len(parts) > 1 {
			tag.EventDate = strings.TrimSpace(parts[1])
		}
		if len(parts) > 2 {
			tag.EventTime = strings.TrimSpace(parts[2])
		}
		if len(parts) > 3 {
			tag.EventParent = strings.TrimSpace(parts[3])
		}
		if tag.Name != "" {
			result.Tags = append(result.Tags, tag)
		}
	}

	for _, match := range orgTagPattern.FindAllStringSubmatch(answer, -1) {
		name := strings.TrimSpace(match[1])
		if name == "" {
			continue
		}
		result.Tags = append(result.Tags, ParsedTag{
			Type:        TagOrganization,
			Name:        name,
			OriginalRaw: match[0],
		})
	}

	// Scan for plain resource tags with the longer variants removed.
	remaining := eventTagPattern.ReplaceAllString(answer, "")
	remaining = orgTagPattern.ReplaceAllString(remaining, "")
	for _, match := range resourceTagPattern.FindAllStringSubmatch(remaining, -1) {
		name := strings.TrimSpace(match[1])
		if name == "" {
			continue
		}
		result.Tags = append(result.Tags, ParsedTag{
			Type:        TagResource,
			Name:        name,
			OriginalRaw: match[0],
		})
	}

	result.CleanText = CleanText(answer)
	result.HasTags = len(result.Tags) > 0
	return result
}

var (
	whitespaceRun   = regexp.MustCompile(`[ \t]+`)
	spaceBeforeStop = regexp.MustCompile(`\s+([.,!?;:])`)
	missingSpace    = regexp.MustCompile(`([.!?])([A-Z])`)
)

// CleanText strips all tag syntax from an answer and repairs the spacing the
// removal leaves behind. The visible text must read as if the tags were
// never there.
func CleanText(answer string) string {
	text := eventTagPattern.ReplaceAllString(answer, "")
	text = orgTagPattern.ReplaceAllString(text, "")
	text = resourceTagPattern.ReplaceAllString(text, "")

	text = whitespaceRun.ReplaceAllString(text, " ")
	text = spaceBeforeStop.ReplaceAllString(text, "$1")
	text = missingSpace.ReplaceAllString(text, "$1 $2")

	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
