package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bloomhaus/floristry-backend/internal/data/repos"
	"github.com/bloomhaus/floristry-backend/internal/data/repos/testutil"
	types "github.com/bloomhaus/floristry-backend/internal/domain"
	"github.com/bloomhaus/floristry-backend/internal/domain/catalog"
)

type compositionFixture struct {
	db      *gorm.DB
	svc     CompositionService
	store   *types.Store
	adminID uuid.UUID
}

func newCompositionFixture(t *testing.T) *compositionFixture {
	t.Helper()
	db := testutil.MemoryDB(t)
	log := testutil.Logger(t)
	ctx := context.Background()

	store := testutil.SeedStore(t, ctx, db, "Bloomhaus Central")
	admin := testutil.SeedAdmin(t, ctx, db, "owner@bloomhaus.test", testutil.PtrUUID(store.ID))

	adminRepo := repos.NewAdminRepo(db, log)
	productRepo := repos.NewProductRepo(db, log)
	edgeRepo := repos.NewCompositionEdgeRepo(db, log)
	svc := NewCompositionService(db, log, adminRepo, productRepo, edgeRepo)

	return &compositionFixture{db: db, svc: svc, store: store, adminID: admin.ID}
}

func (f *compositionFixture) countEdges(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(&types.CompositionEdge{}).Count(&n).Error)
	return n
}

func TestAddFlowers_KeepsRequestOrderAndDuplicates(t *testing.T) {
	f := newCompositionFixture(t)
	ctx := context.Background()

	parent := testutil.SeedComposite(t, ctx, f.db, f.store.ID, types.ShapeBouquet, "Spring Mix")
	rose := testutil.SeedFlower(t, ctx, f.db, f.store.ID, "Rose")
	tulip := testutil.SeedFlower(t, ctx, f.db, f.store.ID, "Tulip")

	// The same flower appears twice; both entries must survive as edges.
	got, err := f.svc.AddFlowers(ctx, f.adminID, parent.ID, []EdgeInput{
		{ChildID: rose.ID, Quantity: 3},
		{ChildID: tulip.ID, Quantity: 5},
		{ChildID: rose.ID, Quantity: 2},
	})
	require.NoError(t, err)
	require.Len(t, got.Compositions, 3)
	require.Equal(t, rose.ID, got.Compositions[0].ChildID)
	require.Equal(t, 3, got.Compositions[0].Quantity)
	require.Equal(t, tulip.ID, got.Compositions[1].ChildID)
	require.Equal(t, rose.ID, got.Compositions[2].ChildID)
	require.Equal(t, 2, got.Compositions[2].Quantity)
	require.EqualValues(t, 3, f.countEdges(t))
}

func TestAddFlowers_RejectsNonPositiveQuantity(t *testing.T) {
	f := newCompositionFixture(t)
	ctx := context.Background()

	parent := testutil.SeedComposite(t, ctx, f.db, f.store.ID, types.ShapeBouquet, "Spring Mix")
	rose := testutil.SeedFlower(t, ctx, f.db, f.store.ID, "Rose")

	_, err := f.svc.AddFlowers(ctx, f.adminID, parent.ID, []EdgeInput{
		{ChildID: rose.ID, Quantity: 0},
	})
	require.True(t, catalog.IsCode(err, catalog.CodeInvalidQuantity))
	require.EqualValues(t, 0, f.countEdges(t))
}

func TestAddFlowers_ParentInOtherStoreLooksMissing(t *testing.T) {
	f := newCompositionFixture(t)
	ctx := context.Background()

	otherStore := testutil.SeedStore(t, ctx, f.db, "Rival Florist")
	foreignParent := testutil.SeedComposite(t, ctx, f.db, otherStore.ID, types.ShapeBasket, "Their Basket")
	rose := testutil.SeedFlower(t, ctx, f.db, f.store.ID, "Rose")

	_, err := f.svc.AddFlowers(ctx, f.adminID, foreignParent.ID, []EdgeInput{
		{ChildID: rose.ID, Quantity: 1},
	})
	require.True(t, catalog.IsCode(err, catalog.CodeParentProductNotFound))
}

func TestAddFlowers_ParentMustBeComposite(t *testing.T) {
	f := newCompositionFixture(t)
	ctx := context.Background()

	flowerParent := testutil.SeedFlower(t, ctx, f.db, f.store.ID, "Lonely Rose")
	rose := testutil.SeedFlower(t, ctx, f.db, f.store.ID, "Rose")

	_, err := f.svc.AddFlowers(ctx, f.adminID, flowerParent.ID, []EdgeInput{
		{ChildID: rose.ID, Quantity: 1},
	})
	require.True(t, catalog.IsCode(err, catalog.CodeInvalidParentShape))
	require.EqualValues(t, 0, f.countEdges(t))
}

func TestAddFlowers_MissingChildCommitsNothing(t *testing.T) {
	f := newCompositionFixture(t)
	ctx := context.Background()

	parent := testutil.SeedComposite(t, ctx, f.db, f.store.ID, types.ShapePackage, "Deluxe")
	rose := testutil.SeedFlower(t, ctx, f.db, f.store.ID, "Rose")
	tulip := testutil.SeedFlower(t, ctx, f.db, f.store.ID, "Tulip")

	_, err := f.svc.AddFlowers(ctx, f.adminID, parent.ID, []EdgeInput{
		{ChildID: rose.ID, Quantity: 1},
		{ChildID: uuid.New(), Quantity: 1},
		{ChildID: tulip.ID, Quantity: 1},
	})
	require.True(t, catalog.IsCode(err, catalog.CodeFlowerNotFound))
	require.EqualValues(t, 0, f.countEdges(t))
}

func TestAddFlowers_ChildInOtherStoreLooksMissing(t *testing.T) {
	f := newCompositionFixture(t)
	ctx := context.Background()

	parent := testutil.SeedComposite(t, ctx, f.db, f.store.ID, types.ShapeBouquet, "Spring Mix")
	otherStore := testutil.SeedStore(t, ctx, f.db, "Rival Florist")
	foreignRose := testutil.SeedFlower(t, ctx, f.db, otherStore.ID, "Foreign Rose")

	_, err := f.svc.AddFlowers(ctx, f.adminID, parent.ID, []EdgeInput{
		{ChildID: foreignRose.ID, Quantity: 1},
	})
	require.True(t, catalog.IsCode(err, catalog.CodeFlowerNotFound))
	require.EqualValues(t, 0, f.countEdges(t))
}

func TestAddFlowers_CompositeChildRejected(t *testing.T) {
	f := newCompositionFixture(t)
	ctx := context.Background()

	parent := testutil.SeedComposite(t, ctx, f.db, f.store.ID, types.ShapeBasket, "Gift Basket")
	bouquet := testutil.SeedComposite(t, ctx, f.db, f.store.ID, types.ShapeBouquet, "Inner Bouquet")

	_, err := f.svc.AddFlowers(ctx, f.adminID, parent.ID, []EdgeInput{
		{ChildID: bouquet.ID, Quantity: 1},
	})
	require.True(t, catalog.IsCode(err, catalog.CodeFlowerNotFound))
	require.EqualValues(t, 0, f.countEdges(t))
}
