package textnorm

import (
	"strings"
	"unicode"
)

// stopWords are tokens that carry no relevance signal for resource discovery.
// Generic discovery verbs ("find", "near") are included because they appear in
// nearly every query and would otherwise dilute every score equally.
var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "are": {}, "was": {}, "were": {},
	"this": {}, "that": {}, "with": {}, "from": {}, "what": {}, "where": {},
	"when": {}, "who": {}, "how": {}, "can": {}, "could": {}, "would": {},
	"should": {}, "will": {}, "shall": {}, "may": {}, "might": {}, "must": {},
	"have": {}, "has": {}, "had": {}, "does": {}, "did": {}, "you": {},
	"your": {}, "they": {}, "them": {}, "their": {}, "she": {}, "her": {},
	"him": {}, "his": {}, "its": {}, "our": {}, "any": {}, "some": {},
	"all": {}, "there": {}, "here": {}, "about": {}, "into": {}, "onto": {},
	"find": {}, "near": {}, "nearby": {}, "looking": {}, "show": {},
	"want": {}, "need": {}, "please": {}, "give": {}, "get": {}, "around": {},
}

// suffixes is ordered longest/most specific first; the first suffix that
// leaves a stem of at least 3 characters wins.
var suffixes = []string{
	"ingly", "ation", "fulness", "ously",
	"ments", "ment", "ness", "tion", "sion",
	"ings", "ing", "ers", "ies", "ly",
	"ed", "er", "es", "al", "s",
}

// Tokenize splits text on non-alphanumeric boundaries, lowercases, and drops
// short tokens and stop words. The returned slice is finite and safe to
// iterate repeatedly.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) <= 2 {
			continue
		}
		if _, stop := stopWords[f]; stop {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// Stem strips a known suffix when the remaining stem keeps at least 3
// characters. This is a heuristic stemmer, not linguistically exhaustive;
// collisions are acceptable for relevance scoring.
func Stem(token string) string {
	for _, suffix := range suffixes {
		if strings.HasSuffix(token, suffix) {
			stem := token[:len(token)-len(suffix)]
			if len(stem) >= 3 {
				return stem
			}
		}
	}
	return token
}

// IsStopWord reports whether a lowercased token is in the stop-word set.
func IsStopWord(token string) bool {
	_, ok := stopWords[token]
	return ok
}
