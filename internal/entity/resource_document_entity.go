package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ResourceDocument is one directory entry as stored: a schemaless attribute
// blob under a named collection. Attribute shapes vary by collection and by
// the era the record was imported in; the engine normalizes on read.
type ResourceDocument struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Collection string         `gorm:"index;not null"`
	Attributes datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

func (ResourceDocument) TableName() string {
	return "resource_documents"
}
