package textnorm

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "drops stop words and short tokens",
			text: "Find me a parish near St. Louis",
			want: []string{"parish", "louis"},
		},
		{
			name: "splits on punctuation",
			text: "schools,retreats;pilgrimages",
			want: []string{"schools", "retreats", "pilgrimages"},
		},
		{
			name: "lowercases everything",
			text: "CATHOLIC High-Schools",
			want: []string{"catholic", "high", "schools"},
		},
		{
			name: "empty query",
			text: "   ",
			want: []string{},
		},
		{
			name: "all stop words",
			text: "can you find me some",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestTokenizeRestartable(t *testing.T) {
	tokens := Tokenize("catholic schools in Denver")
	again := Tokenize("catholic schools in Denver")
	if !reflect.DeepEqual(tokens, again) {
		t.Errorf("Tokenize is not deterministic: %v vs %v", tokens, again)
	}
}

func TestStem(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"parishes", "parish"},
		{"schools", "school"},
		{"teaching", "teach"},
		{"adoration", "ador"},
		{"retreats", "retreat"},
		{"holy", "holy"},        // "ly" would leave "ho" (<3 chars)
		{"mass", "mas"},         // single "s" strips
		{"ed", "ed"},            // too short to strip anything
		{"missionaries", "missionar"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			if got := Stem(tt.token); got != tt.want {
				t.Errorf("Stem(%q) = %q, want %q", tt.token, got, tt.want)
			}
		})
	}
}
