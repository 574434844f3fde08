package memory

import (
	"time"

	"github.com/patrickmn/go-cache"

	"catholic-discovery-be/pkg/discovery/conversation"
)

type ConversationRepository struct {
	cache *cache.Cache
}

func NewConversationRepository() *ConversationRepository {
	// Conversations idle for an hour are dropped; expired entries are purged
	// every 10 minutes.
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &ConversationRepository{
		cache: c,
	}
}

func (r *ConversationRepository) Save(state *conversation.State) {
	r.cache.Set(state.ID, state, cache.DefaultExpiration)
}

func (r *ConversationRepository) Get(conversationID string) (*conversation.State, bool) {
	if x, found := r.cache.Get(conversationID); found {
		return x.(*conversation.State), true
	}
	return nil, false
}

func (r *ConversationRepository) Delete(conversationID string) {
	r.cache.Delete(conversationID)
}
