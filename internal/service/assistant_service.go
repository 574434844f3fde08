package service

import (
	"context"
	"fmt"

	"catholic-discovery-be/internal/dto"
	"catholic-discovery-be/internal/pkg/logger"
	"catholic-discovery-be/pkg/discovery/category"
	"catholic-discovery-be/pkg/discovery/conversation"
	"catholic-discovery-be/pkg/discovery/geo"
	"catholic-discovery-be/pkg/discovery/intent"
	"catholic-discovery-be/pkg/discovery/prompt"
	"catholic-discovery-be/pkg/discovery/recommend"
	"catholic-discovery-be/pkg/discovery/records"
	"catholic-discovery-be/pkg/discovery/scoring"
	"catholic-discovery-be/pkg/events"
	"catholic-discovery-be/pkg/llm"

	"github.com/google/uuid"
)

// EventPublisher mirrors domain events onto the external bus. A nil publisher
// means no external bus is connected; mirroring is always best effort.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type IAssistantService interface {
	Query(ctx context.Context, req dto.AssistantQueryRequest) (*dto.AssistantQueryResponse, error)
	CreateConversation() string
	ResetConversation(conversationId string)
	CacheStats() records.Stats
	InvalidateCache(ctx context.Context, reason string)
}

type assistantService struct {
	llmProvider llm.LLMProvider
	classifier  *intent.Classifier
	cache       *records.Cache
	convManager *conversation.Manager
	resolver    *recommend.Resolver
	natsPub     EventPublisher
	logger      logger.ILogger
	llmOpts     []llm.Option
}

func NewAssistantService(
	llmProvider llm.LLMProvider,
	classifier *intent.Classifier,
	cache *records.Cache,
	convManager *conversation.Manager,
	natsPub EventPublisher,
	log logger.ILogger,
	opts ...llm.Option,
) IAssistantService {
	return &assistantService{
		llmProvider: llmProvider,
		classifier:  classifier,
		cache:       cache,
		convManager: convManager,
		resolver:    recommend.NewResolver(),
		natsPub:     natsPub,
		logger:      log,
		llmOpts:     opts,
	}
}

// Query runs one conversational turn end to end: follow-up shortcut,
// classification, cache warm, scoring, answer generation, and tag
// resolution. Every suggestion in the response traces back to a cached
// record from this turn.
func (as *assistantService) Query(ctx context.Context, req dto.AssistantQueryRequest) (*dto.AssistantQueryResponse, error) {
	if req.Query == "" {
		return nil, fmt.Errorf("query is required")
	}
	if req.ConversationId == "" {
		req.ConversationId = uuid.New().String()
	}

	state := as.convManager.LoadOrCreate(req.ConversationId)

	if candidate, ok := state.DetectFollowUp(req.Query); ok {
		return as.answerFollowUp(ctx, req, state, candidate)
	}

	classification := as.classifier.Classify(ctx, req.Query)
	center := resolveCenter(req, classification)

	scored := map[category.Category][]scoring.Candidate{}
	if len(classification.Categories) > 0 {
		data, err := as.cache.Warm(ctx)
		if err != nil {
			return nil, fmt.Errorf("warm record cache: %w", err)
		}
		scored = scoring.ScoreAll(classification.Categories, data, req.Query, center)
	}

	systemPrompt := prompt.NewDiscoveryBuilder(req.Query, classification, scored).Build()
	answer, err := as.llmProvider.Chat(ctx, as.buildHistory(systemPrompt, state, req.Query), as.llmOpts...)
	if err != nil {
		return nil, fmt.Errorf("generate answer: %w", err)
	}

	parsed := recommend.ParseTags(answer)
	pool := flattenCandidates(classification.Categories, scored)
	suggestions := as.resolver.Resolve(parsed.Tags, pool)

	state.AppendTurn(conversation.RoleUser, req.Query)
	state.AppendTurn(conversation.RoleAssistant, parsed.CleanText)
	state.RememberRecommended(recommendedCandidates(suggestions, pool))
	as.convManager.Save(state)

	as.publishRecommendations(ctx, req.ConversationId, suggestions)

	as.logger.Info("assistant", "turn completed", map[string]interface{}{
		"conversation_id": req.ConversationId,
		"intent":          classification.Intent,
		"categories":      classification.Categories,
		"suggestions":     len(suggestions),
	})

	return &dto.AssistantQueryResponse{
		ConversationId: req.ConversationId,
		Text:           parsed.CleanText,
		Suggestions:    suggestions,
		Intent:         classification.Intent,
		Categories:     classification.Categories,
	}, nil
}

// answerFollowUp bypasses classification and scoring: the subject is already
// known, so only its detail view goes into a narrower prompt.
func (as *assistantService) answerFollowUp(
	ctx context.Context,
	req dto.AssistantQueryRequest,
	state *conversation.State,
	candidate scoring.Candidate,
) (*dto.AssistantQueryResponse, error) {
	detail := as.lookupDetail(ctx, candidate)

	followUpPrompt := prompt.NewFollowUpBuilder(req.Query, candidate, detail).Build()
	answer, err := as.llmProvider.Chat(ctx, as.buildHistory(followUpPrompt, state, req.Query), as.llmOpts...)
	if err != nil {
		return nil, fmt.Errorf("generate follow-up answer: %w", err)
	}

	text := recommend.CleanText(answer)
	state.AppendTurn(conversation.RoleUser, req.Query)
	state.AppendTurn(conversation.RoleAssistant, text)
	as.convManager.Save(state)

	as.logger.Info("assistant", "follow-up answered", map[string]interface{}{
		"conversation_id": req.ConversationId,
		"candidate":       candidate.Name,
	})

	return &dto.AssistantQueryResponse{
		ConversationId: req.ConversationId,
		Text:           text,
		Suggestions: []recommend.Suggestion{
			{Candidate: candidate, Tag: recommend.TagResource},
		},
		Intent:     intent.IntentLearnMore,
		Categories: []category.Category{candidate.Category},
		FollowUp:   true,
	}, nil
}

// lookupDetail fetches the full field map of the remembered candidate. A
// cache miss degrades to the candidate's summary fields.
func (as *assistantService) lookupDetail(ctx context.Context, candidate scoring.Candidate) map[string]interface{} {
	data, err := as.cache.Warm(ctx)
	if err != nil {
		as.logger.Warn("assistant", "detail lookup failed, using summary", map[string]interface{}{
			"candidate": candidate.ID,
			"error":     err.Error(),
		})
		return nil
	}
	for _, rec := range data[candidate.Category] {
		if rec.ID == candidate.ID {
			return rec.Fields
		}
	}
	return nil
}

func (as *assistantService) buildHistory(systemPrompt string, state *conversation.State, query string) []llm.Message {
	messages := make([]llm.Message, 0, len(state.Turns)+2)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: systemPrompt})
	for _, turn := range state.Turns {
		role := llm.RoleUser
		if turn.Role == conversation.RoleAssistant {
			role = llm.RoleAssistant
		}
		messages = append(messages, llm.Message{Role: role, Content: turn.Text})
	}
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: query})
	return messages
}

func (as *assistantService) publishRecommendations(ctx context.Context, conversationId string, suggestions []recommend.Suggestion) {
	if as.natsPub == nil {
		return
	}
	for _, s := range suggestions {
		if err := as.natsPub.Publish(ctx, events.NewResourceRecommended(s.Candidate.ID, conversationId)); err != nil {
			as.logger.Warn("assistant", "failed to publish recommendation event", map[string]interface{}{
				"resource_id": s.Candidate.ID,
				"error":       err.Error(),
			})
		}
	}
}

func (as *assistantService) CreateConversation() string {
	id := uuid.New().String()
	as.convManager.Save(as.convManager.LoadOrCreate(id))
	return id
}

func (as *assistantService) ResetConversation(conversationId string) {
	as.convManager.Reset(conversationId)
}

func (as *assistantService) CacheStats() records.Stats {
	return as.cache.Stats()
}

func (as *assistantService) InvalidateCache(ctx context.Context, reason string) {
	as.cache.Invalidate()
	as.logger.Info("assistant", "cache invalidated by operator", map[string]interface{}{
		"reason": reason,
	})

	if as.natsPub == nil {
		return
	}
	// Other instances drop their snapshots on this event.
	if err := as.natsPub.Publish(ctx, events.NewCacheInvalidated(reason)); err != nil {
		as.logger.Warn("assistant", "failed to publish cache invalidation event", map[string]interface{}{
			"reason": reason,
			"error":  err.Error(),
		})
	}
}

// resolveCenter picks the proximity origin for this turn. Device coordinates
// win when the user asked for nearby results or named no location; otherwise
// the textual location is resolved, with the device point as a fallback for
// unknown place names. A device center carries no region, so it never
// triggers region elimination.
func resolveCenter(req dto.AssistantQueryRequest, classification *intent.Classification) *geo.Center {
	var device *geo.Center
	if req.Latitude != nil && req.Longitude != nil {
		device = &geo.Center{Lat: *req.Latitude, Lng: *req.Longitude}
	}

	if device != nil && (classification.Intent == intent.IntentNearby || classification.Location == "") {
		return device
	}
	if classification.Location != "" {
		if center := geo.ResolveCenter(classification.Location); center != nil {
			return center
		}
	}
	return device
}

// flattenCandidates merges per-category rankings into one resolution pool in
// stable category order.
func flattenCandidates(cats []category.Category, scored map[category.Category][]scoring.Candidate) []scoring.Candidate {
	var pool []scoring.Candidate
	for _, cat := range cats {
		pool = append(pool, scored[cat]...)
	}
	return pool
}

// recommendedCandidates picks what the next turn's follow-up detection
// remembers: resolved suggestions first, otherwise the top of the pool.
func recommendedCandidates(suggestions []recommend.Suggestion, pool []scoring.Candidate) []scoring.Candidate {
	if len(suggestions) > 0 {
		out := make([]scoring.Candidate, 0, len(suggestions))
		for _, s := range suggestions {
			out = append(out, s.Candidate)
		}
		return out
	}
	if len(pool) > 5 {
		pool = pool[:5]
	}
	return pool
}
