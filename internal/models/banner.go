package models

import (
	"time"

	"github.com/google/uuid"
)

// Banner is a promotional entry shown on the storefront.
type Banner struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title     string    `json:"title" gorm:"type:varchar(100);not null"`
	Status    bool      `json:"status" gorm:"not null;default:false"`
	ImageURL  string    `json:"image_url" gorm:"column:image_url;type:varchar(10000);not null"`
	Discovery string    `json:"discovery" gorm:"type:varchar(100);not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"not null"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"not null"`
}
