package recommend

import (
	"testing"

	"catholic-discovery-be/pkg/discovery/category"
	"catholic-discovery-be/pkg/discovery/scoring"
)

func candidates() []scoring.Candidate {
	return []scoring.Candidate{
		{ID: "1", Name: "St. Mary Parish", Category: category.Church},
		{ID: "2", Name: "Holy Cross Church", Category: category.Church},
	}
}

func TestResolveSubstringNeverClaimsWrongRecord(t *testing.T) {
	tags := []ParsedTag{{Type: TagResource, Name: "Holy Cross"}}

	got := NewResolver().Resolve(tags, candidates())

	if len(got) != 1 {
		t.Fatalf("got %d suggestions, want 1", len(got))
	}
	if got[0].Candidate.ID != "2" {
		t.Errorf("resolved to id %s, want 2", got[0].Candidate.ID)
	}
}

func TestResolveExactCaseInsensitive(t *testing.T) {
	tags := []ParsedTag{{Type: TagResource, Name: "st. mary parish"}}

	got := NewResolver().Resolve(tags, candidates())

	if len(got) != 1 || got[0].Candidate.ID != "1" {
		t.Fatalf("got %+v, want exact match on id 1", got)
	}
}

func TestResolveHonorificStripped(t *testing.T) {
	tags := []ParsedTag{{Type: TagResource, Name: "Saint Mary Parish"}}

	got := NewResolver().Resolve(tags, candidates())

	if len(got) != 1 || got[0].Candidate.ID != "1" {
		t.Fatalf("got %+v, want honorific-insensitive match on id 1", got)
	}
}

func TestResolveClaimedRecordsExcluded(t *testing.T) {
	tags := []ParsedTag{
		{Type: TagResource, Name: "St. Mary Parish"},
		{Type: TagResource, Name: "Mary Parish"},
	}

	got := NewResolver().Resolve(tags, candidates())

	if len(got) != 1 {
		t.Fatalf("got %d suggestions, want 1 (second tag has no unclaimed match)", len(got))
	}
	if got[0].Candidate.ID != "1" {
		t.Errorf("resolved to id %s, want 1", got[0].Candidate.ID)
	}
}

func TestResolveUnmatchedTagDroppedSilently(t *testing.T) {
	tags := []ParsedTag{
		{Type: TagResource, Name: "Our Lady of Guadalupe Shrine"},
		{Type: TagResource, Name: "Holy Cross Church"},
	}

	got := NewResolver().Resolve(tags, candidates())

	if len(got) != 1 {
		t.Fatalf("got %d suggestions, want 1 (unmatched tag dropped)", len(got))
	}
	if got[0].Candidate.ID != "2" {
		t.Errorf("resolved to id %s, want 2", got[0].Candidate.ID)
	}
}

func TestResolveEventByParentResource(t *testing.T) {
	tags := []ParsedTag{{
		Type:        TagEvent,
		Name:        "Parish Picnic",
		EventDate:   "June 14",
		EventTime:   "12:00 PM",
		EventParent: "St. Mary Parish",
	}}

	got := NewResolver().Resolve(tags, candidates())

	if len(got) != 1 {
		t.Fatalf("got %d suggestions, want 1", len(got))
	}
	s := got[0]
	if s.Candidate.ID != "1" || s.Tag != TagEvent {
		t.Errorf("got %+v, want event suggestion backed by id 1", s)
	}
	if s.EventTitle != "Parish Picnic" || s.EventDate != "June 14" || s.EventTime != "12:00 PM" {
		t.Errorf("event fields dropped: %+v", s)
	}
}

func TestResolveEmptyInputs(t *testing.T) {
	if got := NewResolver().Resolve(nil, candidates()); len(got) != 0 {
		t.Errorf("nil tags produced %d suggestions", len(got))
	}
	tags := []ParsedTag{{Type: TagResource, Name: "St. Mary Parish"}}
	if got := NewResolver().Resolve(tags, nil); len(got) != 0 {
		t.Errorf("empty candidate pool produced %d suggestions", len(got))
	}
}
