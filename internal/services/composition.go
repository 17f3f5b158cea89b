package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bloomhaus/floristry-backend/internal/data/repos"
	types "github.com/bloomhaus/floristry-backend/internal/domain"
	"github.com/bloomhaus/floristry-backend/internal/domain/catalog"
	"github.com/bloomhaus/floristry-backend/internal/pkg/logger"
)

// EdgeInput is one requested parent→flower link. The same child id may appear
// more than once; each occurrence becomes its own edge.
type EdgeInput struct {
	ChildID  uuid.UUID `json:"child_id"`
	Quantity int       `json:"quantity"`
}

type CompositionService interface {
	// AddFlowers validates and appends composition edges to a composite
	// product. All lookups and writes run under one transaction: either every
	// requested edge is committed or none are.
	AddFlowers(ctx context.Context, adminID uuid.UUID, parentID uuid.UUID, entries []EdgeInput) (*types.Product, error)
}

type compositionService struct {
	db          *gorm.DB
	log         *logger.Logger
	adminRepo   repos.AdminRepo
	productRepo repos.ProductRepo
	edgeRepo    repos.CompositionEdgeRepo
}

func NewCompositionService(
	db *gorm.DB,
	baseLog *logger.Logger,
	adminRepo repos.AdminRepo,
	productRepo repos.ProductRepo,
	edgeRepo repos.CompositionEdgeRepo,
) CompositionService {
	serviceLog := baseLog.With("service", "CompositionService")
	return &compositionService{
		db:          db,
		log:         serviceLog,
		adminRepo:   adminRepo,
		productRepo: productRepo,
		edgeRepo:    edgeRepo,
	}
}

func (cs *compositionService) AddFlowers(ctx context.Context, adminID uuid.UUID, parentID uuid.UUID, entries []EdgeInput) (*types.Product, error) {
	// Quantities are checked before anything is looked up so a bad request
	// never touches storage.
	for _, e := range entries {
		if e.Quantity < 1 {
			err := catalog.NewRuleError(
				catalog.CodeInvalidQuantity,
				fmt.Sprintf("quantity must be positive, got %d for flower %s", e.Quantity, e.ChildID),
				"quantity",
			)
			cs.log.Warn("AddFlowers rejected", "admin_id", adminID, "parent_id", parentID, "error", err)
			return nil, err
		}
	}

	storeID, err := resolveAdminStore(ctx, cs.adminRepo, adminID)
	if err != nil {
		cs.log.Warn("AddFlowers admin resolution failed", "admin_id", adminID, "error", err)
		return nil, err
	}

	var parent *types.Product
	err = cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var lookupErr error
		parent, lookupErr = cs.productRepo.GetOneScoped(ctx, tx, repos.ProductFilter{ID: parentID, StoreID: storeID})
		if lookupErr != nil {
			return catalog.WrapPersistence(lookupErr)
		}
		if parent == nil {
			return catalog.NewRuleError(catalog.CodeParentProductNotFound, "parent product not found")
		}
		if !parent.Shape.Composite() {
			return catalog.NewRuleError(
				catalog.CodeInvalidParentShape,
				fmt.Sprintf("cannot add flowers to a product of shape %q", parent.Shape),
			)
		}

		// Resolve every child before constructing a single edge. A flower in
		// another store is indistinguishable from a missing one.
		flowerShape := types.ShapeFlower
		for _, e := range entries {
			child, childErr := cs.productRepo.GetOneScoped(ctx, tx, repos.ProductFilter{
				ID:      e.ChildID,
				StoreID: storeID,
				Shape:   &flowerShape,
			})
			if childErr != nil {
				return catalog.WrapPersistence(childErr)
			}
			if child == nil {
				return catalog.NewRuleError(
					catalog.CodeFlowerNotFound,
					fmt.Sprintf("flower %s not found", e.ChildID),
				)
			}
		}

		// Edges are built and persisted in request order, duplicates kept.
		edges := make([]*types.CompositionEdge, 0, len(entries))
		for _, e := range entries {
			edges = append(edges, &types.CompositionEdge{
				ID:       uuid.New(),
				ParentID: parent.ID,
				ChildID:  e.ChildID,
				StoreID:  storeID,
				Quantity: e.Quantity,
			})
		}
		if _, createErr := cs.edgeRepo.Create(ctx, tx, edges); createErr != nil {
			return catalog.WrapPersistence(createErr)
		}

		for _, edge := range edges {
			parent.Compositions = append(parent.Compositions, *edge)
		}
		return nil
	})
	if err != nil {
		cs.log.Warn("AddFlowers failed", "admin_id", adminID, "parent_id", parentID, "error", err)
		return nil, err
	}

	cs.log.Info("flowers attached", "parent_id", parent.ID, "store_id", storeID, "edges", len(entries))
	return parent, nil
}
