package conversation

import (
	"regexp"
	"strings"

	"catholic-discovery-be/pkg/discovery/fuzzy"
	"catholic-discovery-be/pkg/discovery/scoring"
)

// Role tags one side of the conversation.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one utterance in a conversation.
type Turn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// maxRecommended bounds how many candidates a turn leaves behind for
// follow-up resolution.
const maxRecommended = 5

// State is one conversation's memory: the ordered turns plus the candidates
// most recently surfaced to the user. Reset explicitly between independent
// conversations.
type State struct {
	ID              string              `json:"id"`
	Turns           []Turn              `json:"turns"`
	LastRecommended []scoring.Candidate `json:"last_recommended"`
}

func NewState(id string) *State {
	return &State{ID: id}
}

// AppendTurn records one utterance.
func (s *State) AppendTurn(role Role, text string) {
	s.Turns = append(s.Turns, Turn{Role: role, Text: text})
}

// RememberRecommended stores up to maxRecommended candidates as the
// follow-up pool for the next turn. An empty list leaves the previous pool
// in place so "tell me more" still works after a small-talk turn.
func (s *State) RememberRecommended(candidates []scoring.Candidate) {
	if len(candidates) == 0 {
		return
	}
	if len(candidates) > maxRecommended {
		candidates = candidates[:maxRecommended]
	}
	s.LastRecommended = append([]scoring.Candidate(nil), candidates...)
}

// Reset clears everything; the next query starts a fresh conversation.
func (s *State) Reset() {
	s.Turns = nil
	s.LastRecommended = nil
}

var followUpPattern = regexp.MustCompile(`^(?:tell me more about|more about|tell me about|what is|what's|who is|who are)\s+(.+?)[\s?!.]*$`)

// followUpThreshold is the minimum fuzzy score between the extracted subject
// and a remembered candidate name.
const followUpThreshold = 0.5

// DetectFollowUp reports whether a raw query is a follow-up about something
// already recommended. On a hit it returns the remembered candidate, and the
// caller skips classification and scoring entirely.
func (s *State) DetectFollowUp(query string) (scoring.Candidate, bool) {
	if len(s.LastRecommended) == 0 {
		return scoring.Candidate{}, false
	}

	m := followUpPattern.FindStringSubmatch(strings.ToLower(strings.TrimSpace(query)))
	if m == nil {
		return scoring.Candidate{}, false
	}
	subject := strings.TrimSpace(m[1])
	if subject == "" {
		return scoring.Candidate{}, false
	}

	best := scoring.Candidate{}
	bestScore := 0.0
	for _, c := range s.LastRecommended {
		score := fuzzy.Score(subject, c.Name)
		if score > bestScore {
			best = c
			bestScore = score
		}
	}
	if bestScore < followUpThreshold {
		return scoring.Candidate{}, false
	}
	return best, true
}
