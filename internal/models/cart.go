package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cart links a user to a product. Rows are removed by the database when the
// referenced product or user is deleted.
type Cart struct {
	ID        uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID       `json:"ProductId" gorm:"type:uuid;not null;index"`
	Product   *Product        `json:"Product,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	UserID    uuid.UUID       `json:"UserId" gorm:"type:uuid;not null;index"`
	User      *User           `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Quantity  decimal.Decimal `json:"quantity" gorm:"type:numeric(10,2);not null"`
	Status    string          `json:"status" gorm:"type:varchar(100);not null"`
	CreatedAt time.Time       `json:"createdAt" gorm:"not null"`
	UpdatedAt time.Time       `json:"updatedAt" gorm:"not null"`
}
