package catalog

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Packaging is embedded into Product. The symmetry rule: Required=true demands
// a concrete Mode and a Color, Required=false demands neither.
type Packaging struct {
	Required bool          `gorm:"not null;column:packaging_required" json:"required"`
	Mode     PackagingMode `gorm:"not null;default:'none';column:packaging_mode" json:"mode"`
	Color    *Color        `gorm:"column:packaging_color" json:"color,omitempty"`
}

type Product struct {
	ID      uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	StoreID uuid.UUID    `gorm:"type:uuid;not null;index;column:store_id" json:"store_id"`
	Shape   ProductShape `gorm:"not null;index;column:shape" json:"shape"`
	Name    string       `gorm:"not null;column:name" json:"name"`

	// Flower-only attribute group. NULL on every composite shape.
	Variety            *string        `gorm:"column:variety" json:"variety,omitempty"`
	Colors             datatypes.JSON `gorm:"column:colors" json:"colors,omitempty"`
	OriginCountry      *string        `gorm:"column:origin_country" json:"origin_country,omitempty"`
	FragranceIntensity *int           `gorm:"column:fragrance_intensity" json:"fragrance_intensity,omitempty"`

	Packaging Packaging `gorm:"embedded" json:"packaging"`

	Compositions []CompositionEdge `gorm:"foreignKey:ParentID" json:"compositions"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Product) TableName() string { return "product" }

// EncodeColors packs a color list into the JSON column representation.
// An empty list encodes as NULL so "no colors" and "absent" stay the same thing.
func EncodeColors(colors []Color) datatypes.JSON {
	if len(colors) == 0 {
		return nil
	}
	raw, err := json.Marshal(colors)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}

func DecodeColors(raw datatypes.JSON) []Color {
	if len(raw) == 0 {
		return nil
	}
	var colors []Color
	if err := json.Unmarshal(raw, &colors); err != nil {
		return nil
	}
	return colors
}
