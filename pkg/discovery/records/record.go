package records

import (
	"context"
	"strings"

	"catholic-discovery-be/pkg/discovery/category"
)

// Record is a raw document from the external store. Attribute shapes vary by
// collection; the engine only reads, never writes.
type Record struct {
	ID         string
	Collection string
	Fields     map[string]interface{}
}

// Source abstracts the external document store: one bulk, unfiltered read per
// named collection. All relevance filtering happens in the engine.
type Source interface {
	ReadCollection(ctx context.Context, collection string) ([]Record, error)
}

// Name returns the record's display name, checking the legacy field variants.
func (r Record) Name() string {
	for _, key := range []string{"name", "title", "displayName"} {
		if v, ok := r.Fields[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// Description returns the record's free-text description.
func (r Record) Description() string {
	for _, key := range []string{"description", "about", "summary"} {
		if v, ok := r.Fields[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// City returns the record's declared city, checking flat and nested shapes.
func (r Record) City() string {
	if v, ok := r.Fields["city"].(string); ok {
		return v
	}
	if loc, ok := r.Fields["location"].(map[string]interface{}); ok {
		if v, ok := loc["city"].(string); ok {
			return v
		}
	}
	if v, ok := r.Fields["address"].(string); ok {
		return v
	}
	return ""
}

// Region returns the record's declared two-letter state code, or "".
func (r Record) Region() string {
	for _, key := range []string{"state", "region"} {
		if v, ok := r.Fields[key].(string); ok && v != "" {
			return strings.ToUpper(strings.TrimSpace(v))
		}
	}
	if loc, ok := r.Fields["location"].(map[string]interface{}); ok {
		if v, ok := loc["state"].(string); ok && v != "" {
			return strings.ToUpper(strings.TrimSpace(v))
		}
	}
	return ""
}

// Unlocked reports whether the record has the richer, claimed profile.
func (r Record) Unlocked() bool {
	v, ok := r.Fields["unlocked"].(bool)
	return ok && v
}

// HasSchedule reports whether structured schedule data is present.
func (r Record) HasSchedule() bool {
	for _, key := range []string{"massSchedule", "schedule", "massTimes"} {
		if v, ok := r.Fields[key]; ok && v != nil {
			return true
		}
	}
	return false
}

// HasUpcomingEvents reports whether the record carries upcoming-event data.
func (r Record) HasUpcomingEvents() bool {
	if v, ok := r.Fields["upcomingEvents"].([]interface{}); ok {
		return len(v) > 0
	}
	return false
}

// ByCategory is the cache's view of the store: all records grouped by the
// category their collection feeds.
type ByCategory map[category.Category][]Record
