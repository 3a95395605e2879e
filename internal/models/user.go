package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. Password holds the bcrypt hash, never
// plaintext, and is excluded from JSON output.
type User struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	DisplayName string    `json:"displayName" gorm:"column:display_name;type:varchar(50);not null"`
	Email       string    `json:"email" gorm:"type:varchar(50);uniqueIndex;not null"`
	Password    string    `json:"-" gorm:"type:varchar(10000);not null"`
	Role        string    `json:"role" gorm:"type:varchar(50);not null;default:customer"`
	CreatedAt   time.Time `json:"createdAt" gorm:"not null"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"not null"`
}
