package fuzzy

import (
	"strings"

	"catholic-discovery-be/pkg/discovery/textnorm"
)

// Match tier weights. Each query token contributes at most one weight; tiers
// are tried in declaration order and the first hit wins.
const (
	weightExact     = 1.0
	weightPrefix    = 0.8
	weightSynonym   = 0.7
	weightEdit      = 0.5
	weightSubstring = 0.4
)

// Score rates how well a query matches a target text blob, in [0,1].
// It is pure: no state, and equal inputs always produce equal outputs.
// A query with zero normalized tokens scores 0 against everything.
func Score(query, target string) float64 {
	queryTokens := textnorm.Tokenize(query)
	if len(queryTokens) == 0 {
		return 0
	}

	targetTokens := textnorm.Tokenize(target)
	targetLower := strings.ToLower(target)

	var total float64
	for _, qt := range queryTokens {
		total += tokenWeight(qt, targetTokens, targetLower)
	}

	score := total / float64(len(queryTokens))
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// tokenWeight evaluates the match tiers for one query token.
// Order matters: exact, prefix, edit distance, synonym, substring.
func tokenWeight(queryToken string, targetTokens []string, targetLower string) float64 {
	queryStem := textnorm.Stem(queryToken)

	// Tier 1: exact match against a target token or its stem
	for _, tt := range targetTokens {
		if tt == queryToken || tt == queryStem || textnorm.Stem(tt) == queryStem {
			return weightExact
		}
	}

	// Tier 2: prefix match
	for _, tt := range targetTokens {
		if strings.HasPrefix(tt, queryToken) || strings.HasPrefix(tt, queryStem) {
			return weightPrefix
		}
	}

	// Tier 3: typo tolerance, only worthwhile for tokens longer than 3 chars
	if len(queryToken) > 3 {
		for _, tt := range targetTokens {
			if len(tt) > 3 && levenshtein(queryToken, tt) <= 2 {
				return weightEdit
			}
		}
	}

	// Tier 4: domain synonym clusters
	for _, tt := range targetTokens {
		if SameCluster(queryToken, tt) || SameCluster(queryStem, textnorm.Stem(tt)) {
			return weightSynonym
		}
	}

	// Tier 5: substring fallback inside the full target text
	if len(queryStem) >= 3 && strings.Contains(targetLower, queryStem) {
		return weightSubstring
	}

	return 0
}
