package implementation

import (
	"context"
	"errors"

	"catholic-discovery-be/internal/entity"
	"catholic-discovery-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ResourceRepositoryImpl struct {
	db *gorm.DB
}

func NewResourceRepository(db *gorm.DB) contract.ResourceRepository {
	return &ResourceRepositoryImpl{db: db}
}

func (r *ResourceRepositoryImpl) Create(ctx context.Context, doc *entity.ResourceDocument) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

func (r *ResourceRepositoryImpl) FindById(ctx context.Context, id uuid.UUID) (*entity.ResourceDocument, error) {
	var doc entity.ResourceDocument
	if err := r.db.WithContext(ctx).First(&doc, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doc, nil
}

func (r *ResourceRepositoryImpl) FindAllByCollection(ctx context.Context, collection string) ([]*entity.ResourceDocument, error) {
	var docs []*entity.ResourceDocument
	if err := r.db.WithContext(ctx).Where("collection = ?", collection).Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}
