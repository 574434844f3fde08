package contract

import (
	"context"

	"catholic-discovery-be/internal/entity"

	"github.com/google/uuid"
)

type ResourceRepository interface {
	Create(ctx context.Context, doc *entity.ResourceDocument) error
	FindById(ctx context.Context, id uuid.UUID) (*entity.ResourceDocument, error)
	FindAllByCollection(ctx context.Context, collection string) ([]*entity.ResourceDocument, error)
}
