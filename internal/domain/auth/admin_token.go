package auth

import (
	"time"

	"github.com/google/uuid"
)

// AdminToken pairs an issued access token with its refresh token. One row per
// live session; refresh rotates the row, logout deletes it.
type AdminToken struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AdminID      uuid.UUID `gorm:"type:uuid;not null;index;column:admin_id" json:"admin_id"`
	AccessToken  string    `gorm:"not null;index;column:access_token" json:"-"`
	RefreshToken string    `gorm:"not null;uniqueIndex;column:refresh_token" json:"-"`
	ExpiresAt    time.Time `gorm:"not null;column:expires_at" json:"expires_at"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (AdminToken) TableName() string { return "admin_token" }
