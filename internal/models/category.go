package models

import (
	"time"

	"github.com/google/uuid"
)

// Category groups products. Deleting a category removes its products via the
// ON DELETE CASCADE constraint on products.category_id.
type Category struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"not null"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"not null"`
}
