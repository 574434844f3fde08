package fuzzy

import (
	"testing"
)

func TestScoreBounds(t *testing.T) {
	pairs := []struct{ query, target string }{
		{"parish near denver", "St. Mary Parish in Denver Colorado"},
		{"catholic school", "Holy Cross Academy"},
		{"", "anything"},
		{"xyzzy plugh", "St. Mary Parish"},
		{"parish parish parish", "parish"},
	}

	for _, p := range pairs {
		score := Score(p.query, p.target)
		if score < 0 || score > 1 {
			t.Errorf("Score(%q, %q) = %f, out of [0,1]", p.query, p.target, score)
		}
	}
}

func TestScoreIdenticalStrings(t *testing.T) {
	if got := Score("catholic parish denver", "catholic parish denver"); got != 1.0 {
		t.Errorf("identical strings scored %f, want 1.0", got)
	}
}

func TestScoreDisjointVocabulary(t *testing.T) {
	// No exact, prefix, synonym, edit-distance, or substring relation.
	if got := Score("zucchini marmalade", "parish cathedral"); got != 0 {
		t.Errorf("disjoint vocabularies scored %f, want 0", got)
	}
}

func TestScoreEmptyQuery(t *testing.T) {
	if got := Score("the and for", "St. Mary Parish"); got != 0 {
		t.Errorf("query with zero normalized tokens scored %f, want 0", got)
	}
}

func TestScorePure(t *testing.T) {
	a := Score("parishes near philadelphia", "St. Patrick Parish Philadelphia PA")
	b := Score("parishes near philadelphia", "St. Patrick Parish Philadelphia PA")
	if a != b {
		t.Errorf("Score is not deterministic: %f vs %f", a, b)
	}
}

func TestScoreTiers(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		target string
		want   float64
	}{
		{
			name:   "exact token match",
			query:  "parish",
			target: "parish directory",
			want:   1.0,
		},
		{
			name:   "exact via stem",
			query:  "parishes",
			target: "parish directory",
			want:   1.0,
		},
		{
			name:   "prefix match",
			query:  "cath",
			target: "cathedral downtown",
			want:   0.8,
		},
		{
			name:   "synonym cluster",
			query:  "parish",
			target: "chapel services",
			want:   0.7,
		},
		{
			name:   "edit distance within 2",
			query:  "parrish", // one insertion away from "parrish"->"parish"
			target: "parish directory",
			want:   0.5,
		},
		{
			name:   "substring fallback",
			query:  "thol",
			target: "catholic resources",
			want:   0.4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.query, tt.target); got != tt.want {
				t.Errorf("Score(%q, %q) = %f, want %f", tt.query, tt.target, got, tt.want)
			}
		})
	}
}

func TestSynonymBeatsUnrelated(t *testing.T) {
	synonym := Score("parish", "chapel")
	unrelated := Score("zebra", "chapel")
	if synonym <= unrelated {
		t.Errorf("synonym score %f not greater than unrelated score %f", synonym, unrelated)
	}
}

func TestEditDistanceTier(t *testing.T) {
	// Two edits away still matches the typo tier.
	if got := Score("parixx", "parish events"); got != 0.5 {
		t.Errorf("distance-2 typo scored %f, want 0.5", got)
	}
	// Three edits away must not match via the typo tier.
	if got := Score("parxxx", "parish events"); got != 0 {
		t.Errorf("distance-3 typo scored %f, want 0", got)
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"parish", "parish", 0},
		{"parish", "parrish", 1},
		{"parish", "pariah", 1},
		{"kitten", "sitting", 3},
		{"church", "chapel", 4},
	}

	for _, tt := range tests {
		if got := levenshtein(tt.a, tt.b); got != tt.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
