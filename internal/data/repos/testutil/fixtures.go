package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/bloomhaus/floristry-backend/internal/domain"
	"github.com/bloomhaus/floristry-backend/internal/domain/catalog"
)

func SeedStore(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.Store {
	tb.Helper()
	s := &types.Store{
		ID:      uuid.New(),
		Name:    name,
		Address: "1 Flower Market Rd",
	}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed store: %v", err)
	}
	return s
}

func SeedAdmin(tb testing.TB, ctx context.Context, tx *gorm.DB, email string, storeID *uuid.UUID) *types.Admin {
	tb.Helper()
	a := &types.Admin{
		ID:        uuid.New(),
		Email:     email,
		Password:  "pw",
		FirstName: "A",
		LastName:  "B",
		Phone:     "+15550100",
		StoreID:   storeID,
	}
	if err := tx.WithContext(ctx).Create(a).Error; err != nil {
		tb.Fatalf("seed admin: %v", err)
	}
	return a
}

func SeedFlower(tb testing.TB, ctx context.Context, tx *gorm.DB, storeID uuid.UUID, name string) *types.Product {
	tb.Helper()
	variety := "Rose"
	p := &types.Product{
		ID:      uuid.New(),
		StoreID: storeID,
		Shape:   types.ShapeFlower,
		Name:    name,
		Variety: &variety,
		Colors:  catalog.EncodeColors([]catalog.Color{catalog.ColorRed}),
		Packaging: types.Packaging{
			Required: false,
			Mode:     types.ModeNone,
		},
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed flower: %v", err)
	}
	return p
}

func SeedComposite(tb testing.TB, ctx context.Context, tx *gorm.DB, storeID uuid.UUID, shape types.ProductShape, name string) *types.Product {
	tb.Helper()
	color := catalog.ColorWhite
	p := &types.Product{
		ID:      uuid.New(),
		StoreID: storeID,
		Shape:   shape,
		Name:    name,
		Packaging: types.Packaging{
			Required: true,
			Mode:     types.ModePaper,
			Color:    &color,
		},
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed composite: %v", err)
	}
	return p
}

func PtrUUID(v uuid.UUID) *uuid.UUID { return &v }
