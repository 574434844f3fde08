package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"catholic-discovery-be/internal/dto"
	"catholic-discovery-be/internal/entity"
	"catholic-discovery-be/internal/pkg/logger"
	"catholic-discovery-be/internal/repository/contract"
	"catholic-discovery-be/pkg/discovery/category"
	"catholic-discovery-be/pkg/events"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type IResourceService interface {
	Submit(ctx context.Context, req dto.ResourceSubmitRequest) (*dto.ResourceSubmitResponse, error)
}

type resourceService struct {
	repo      contract.ResourceRepository
	publisher IPublisherService
	natsPub   EventPublisher
	logger    logger.ILogger
}

func NewResourceService(
	repo contract.ResourceRepository,
	publisher IPublisherService,
	natsPub EventPublisher,
	log logger.ILogger,
) IResourceService {
	return &resourceService{
		repo:      repo,
		publisher: publisher,
		natsPub:   natsPub,
		logger:    log,
	}
}

// knownCollections is every collection some category reads from.
var knownCollections = func() map[string]bool {
	set := make(map[string]bool)
	for _, cat := range category.All {
		for _, collection := range cat.Collections() {
			set[collection] = true
		}
	}
	return set
}()

func (rs *resourceService) Submit(ctx context.Context, req dto.ResourceSubmitRequest) (*dto.ResourceSubmitResponse, error) {
	if !knownCollections[req.Collection] {
		return nil, fmt.Errorf("unknown collection %q", req.Collection)
	}
	if len(req.Attributes) == 0 {
		return nil, fmt.Errorf("attributes are required")
	}

	attrs, err := json.Marshal(req.Attributes)
	if err != nil {
		return nil, fmt.Errorf("marshal attributes: %w", err)
	}

	doc := &entity.ResourceDocument{
		Id:         uuid.New(),
		Collection: req.Collection,
		Attributes: datatypes.JSON(attrs),
		CreatedAt:  time.Now(),
	}

	if err := rs.repo.Create(ctx, doc); err != nil {
		return nil, fmt.Errorf("store resource: %w", err)
	}

	// Internal bus first: the consumer invalidates the record cache so the
	// next query sees the new document.
	if err := rs.publisher.PublishResourceSubmitted(dto.ResourceSubmittedMessage{
		ResourceId: doc.Id.String(),
		Collection: doc.Collection,
	}); err != nil {
		rs.logger.Error("resource", "failed to publish submitted message", map[string]interface{}{
			"resource_id": doc.Id.String(),
			"error":       err.Error(),
		})
	}

	// External mirror is best effort.
	if rs.natsPub != nil {
		if err := rs.natsPub.Publish(ctx, events.NewResourceSubmitted(doc.Id.String(), doc.Collection)); err != nil {
			rs.logger.Warn("resource", "failed to mirror event to NATS", map[string]interface{}{
				"resource_id": doc.Id.String(),
				"error":       err.Error(),
			})
		}
	}

	rs.logger.Info("resource", "resource submitted", map[string]interface{}{
		"resource_id": doc.Id.String(),
		"collection":  doc.Collection,
	})

	return &dto.ResourceSubmitResponse{
		Id:         doc.Id.String(),
		Collection: doc.Collection,
	}, nil
}
