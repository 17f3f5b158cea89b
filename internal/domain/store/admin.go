package store

import (
	"time"

	"github.com/google/uuid"
)

type Admin struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Email         string     `gorm:"uniqueIndex;not null;column:email" json:"email"`
	Password      string     `gorm:"not null;column:password" json:"-"`
	FirstName     string     `gorm:"not null;column:first_name" json:"first_name"`
	LastName      string     `gorm:"not null;column:last_name" json:"last_name"`
	Phone         string     `gorm:"column:phone" json:"phone"`
	PhoneVerified bool       `gorm:"not null;default:false;column:phone_verified" json:"phone_verified"`
	StoreID       *uuid.UUID `gorm:"type:uuid;index;column:store_id" json:"store_id,omitempty"`
	Store         *Store     `gorm:"foreignKey:StoreID" json:"store,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Admin) TableName() string { return "admin" }
