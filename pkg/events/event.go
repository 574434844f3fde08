package events

import "time"

// Event type codes published on the internal and external buses.
const (
	TypeResourceSubmitted   = "RESOURCE_SUBMITTED"
	TypeResourceRecommended = "RESOURCE_RECOMMENDED"
	TypeCacheInvalidated    = "CACHE_INVALIDATED"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "RESOURCE_SUBMITTED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the generic implementation every concrete event builds on.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewResourceSubmitted signals a new or updated resource document; consumers
// invalidate the record cache so the next query sees it.
func NewResourceSubmitted(resourceID, collection string) BaseEvent {
	return BaseEvent{
		Type: TypeResourceSubmitted,
		Data: map[string]interface{}{
			"resource_id": resourceID,
			"collection":  collection,
		},
		OccurredAt: time.Now(),
	}
}

// NewResourceRecommended records that the assistant surfaced a resource to a
// user, for downstream analytics.
func NewResourceRecommended(resourceID, conversationID string) BaseEvent {
	return BaseEvent{
		Type: TypeResourceRecommended,
		Data: map[string]interface{}{
			"resource_id":     resourceID,
			"conversation_id": conversationID,
		},
		OccurredAt: time.Now(),
	}
}

// NewCacheInvalidated signals an operator-initiated cache flush.
func NewCacheInvalidated(reason string) BaseEvent {
	return BaseEvent{
		Type: TypeCacheInvalidated,
		Data: map[string]interface{}{
			"reason": reason,
		},
		OccurredAt: time.Now(),
	}
}
