package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog item. Price and stock are stored as exact decimals;
// they are parsed from request text and rendered back as plain strings, so
// float64 would lose digits here.
type Product struct {
	ID         uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	Name       string          `json:"name" gorm:"type:varchar(50);not null"`
	ImageURL   string          `json:"image_url" gorm:"column:image_url;type:varchar(10000);not null"`
	Price      decimal.Decimal `json:"price" gorm:"type:numeric;not null"`
	Stock      decimal.Decimal `json:"stock" gorm:"type:numeric;not null"`
	CategoryID *uuid.UUID      `json:"CategoryId" gorm:"type:uuid;not null;index"`
	Category   *Category       `json:"Category,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time       `json:"createdAt" gorm:"not null"`
	UpdatedAt  time.Time       `json:"updatedAt" gorm:"not null"`
}
