package store

import (
	"time"

	"github.com/google/uuid"
)

// Store is the tenant boundary. Every product and composition edge is scoped
// to exactly one store; lookups outside the acting admin's store see nothing.
type Store struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name    string    `gorm:"not null;column:name" json:"name"`
	Address string    `gorm:"column:address" json:"address"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Store) TableName() string { return "store" }
