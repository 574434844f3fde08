package service

import (
	"context"
	"encoding/json"
	"strings"

	"catholic-discovery-be/internal/dto"
	"catholic-discovery-be/internal/pkg/logger"
	"catholic-discovery-be/pkg/discovery/records"
	"catholic-discovery-be/pkg/events"
	pkgNats "catholic-discovery-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
	Start()
	HandleRemoteEvent(ctx context.Context, event events.Event) error
}

// consumerService listens for resource submissions and invalidates the record
// cache so the next warm picks up the new document. Local submissions arrive
// on the internal bus; submissions from other instances arrive through the
// NATS mirror.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	cache      *records.Cache
	subscriber *pkgNats.Subscriber
	logger     logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	cache *records.Cache,
	subscriber *pkgNats.Subscriber,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		cache:      cache,
		subscriber: subscriber,
		logger:     log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

// Start begins listening to the external event bus on a durable consumer.
func (cs *consumerService) Start() {
	err := cs.subscriber.Subscribe(pkgNats.SubjectFor(">"), "discovery-cache-worker", cs.HandleRemoteEvent)
	if err != nil {
		cs.logger.Error("consumer", "failed to start external subscriber", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	cs.logger.Info("consumer", "listening to external event bus", nil)
}

// HandleRemoteEvent invalidates the record cache when another instance
// mutates the store or flushes its cache. Other event types pass through.
func (cs *consumerService) HandleRemoteEvent(ctx context.Context, event events.Event) error {
	// NATS subjects carry the stream prefix.
	typeCode := event.EventType()
	if idx := strings.LastIndex(typeCode, "."); idx >= 0 {
		typeCode = typeCode[idx+1:]
	}

	switch typeCode {
	case events.TypeResourceSubmitted, events.TypeCacheInvalidated:
		cs.cache.Invalidate()
		cs.logger.Info("consumer", "record cache invalidated by remote event", map[string]interface{}{
			"event": typeCode,
		})
	}
	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var payload dto.ResourceSubmittedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("consumer", "failed to unmarshal message", map[string]interface{}{
			"error": err.Error(),
		})
		// Ack invalid messages to prevent infinite retry.
		msg.Ack()
		return
	}

	cs.cache.Invalidate()

	cs.logger.Info("consumer", "record cache invalidated", map[string]interface{}{
		"resource_id": payload.ResourceId,
		"collection":  payload.Collection,
	})
	msg.Ack()
}
