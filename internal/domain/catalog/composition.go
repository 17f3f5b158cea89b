package catalog

import (
	"time"

	"github.com/google/uuid"
)

// CompositionEdge links a composite product to one of its flower constituents
// with a quantity. Edges are append-only; they are never mutated after creation.
// The edge carries the store id of both endpoints so tenant scoping survives
// even when an edge row is read without its parent.
type CompositionEdge struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ParentID uuid.UUID `gorm:"type:uuid;not null;index;column:parent_id" json:"parent_id"`
	ChildID  uuid.UUID `gorm:"type:uuid;not null;index;column:child_id" json:"child_id"`
	StoreID  uuid.UUID `gorm:"type:uuid;not null;index;column:store_id" json:"store_id"`
	Quantity int       `gorm:"not null;column:quantity" json:"quantity"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (CompositionEdge) TableName() string { return "composition_edge" }
