package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/bloomhaus/floristry-backend/internal/data/repos/testutil"
	types "github.com/bloomhaus/floristry-backend/internal/domain"
)

func TestProductRepo_GetOneScoped_StoreBoundary(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewProductRepo(db, testutil.Logger(t))

	storeA := testutil.SeedStore(t, ctx, tx, "Store A")
	storeB := testutil.SeedStore(t, ctx, tx, "Store B")
	flower := testutil.SeedFlower(t, ctx, tx, storeA.ID, "Rose")

	got, err := repo.GetOneScoped(ctx, tx, ProductFilter{ID: flower.ID, StoreID: storeA.ID})
	if err != nil {
		t.Fatalf("lookup in owning store: %v", err)
	}
	if got == nil || got.ID != flower.ID {
		t.Fatalf("expected to find flower in its own store")
	}

	got, err = repo.GetOneScoped(ctx, tx, ProductFilter{ID: flower.ID, StoreID: storeB.ID})
	if err != nil {
		t.Fatalf("lookup in foreign store: %v", err)
	}
	if got != nil {
		t.Fatalf("expected foreign-store lookup to come back empty, got %+v", got)
	}
}

func TestProductRepo_GetOneScoped_ShapeFilter(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	repo := NewProductRepo(db, testutil.Logger(t))

	store := testutil.SeedStore(t, ctx, tx, "Store A")
	bouquet := testutil.SeedComposite(t, ctx, tx, store.ID, types.ShapeBouquet, "Mix")

	flowerShape := types.ShapeFlower
	got, err := repo.GetOneScoped(ctx, tx, ProductFilter{ID: bouquet.ID, StoreID: store.ID, Shape: &flowerShape})
	if err != nil {
		t.Fatalf("shape-filtered lookup: %v", err)
	}
	if got != nil {
		t.Fatalf("expected bouquet to be invisible under the flower filter")
	}
}

func TestCompositionEdgeRepo_CreateAndFetchByParent(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()
	productRepo := NewProductRepo(db, testutil.Logger(t))
	edgeRepo := NewCompositionEdgeRepo(db, testutil.Logger(t))

	store := testutil.SeedStore(t, ctx, tx, "Store A")
	parent := testutil.SeedComposite(t, ctx, tx, store.ID, types.ShapeBasket, "Basket")
	rose := testutil.SeedFlower(t, ctx, tx, store.ID, "Rose")

	edges := []*types.CompositionEdge{
		{ID: uuid.New(), ParentID: parent.ID, ChildID: rose.ID, StoreID: store.ID, Quantity: 2},
		{ID: uuid.New(), ParentID: parent.ID, ChildID: rose.ID, StoreID: store.ID, Quantity: 1},
	}
	if _, err := edgeRepo.Create(ctx, tx, edges); err != nil {
		t.Fatalf("create edges: %v", err)
	}

	fetched, err := edgeRepo.GetByParentIDs(ctx, tx, []uuid.UUID{parent.ID})
	if err != nil {
		t.Fatalf("fetch edges: %v", err)
	}
	if len(fetched) != 2 {
		t.Fatalf("expected 2 edges, got %d", len(fetched))
	}

	reloaded, err := productRepo.GetOneScoped(ctx, tx, ProductFilter{ID: parent.ID, StoreID: store.ID})
	if err != nil {
		t.Fatalf("reload parent: %v", err)
	}
	if len(reloaded.Compositions) != 2 {
		t.Fatalf("expected 2 preloaded edges, got %d", len(reloaded.Compositions))
	}
}
