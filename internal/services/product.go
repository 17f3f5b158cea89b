package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bloomhaus/floristry-backend/internal/data/repos"
	types "github.com/bloomhaus/floristry-backend/internal/domain"
	"github.com/bloomhaus/floristry-backend/internal/domain/catalog"
	"github.com/bloomhaus/floristry-backend/internal/pkg/logger"
)

type ProductService interface {
	// CreateProduct runs the full rule set for the proposed product and, on
	// success, persists it under the acting admin's store.
	CreateProduct(ctx context.Context, adminID uuid.UUID, in catalog.CreateProductInput) (*types.Product, error)
	GetProduct(ctx context.Context, adminID uuid.UUID, productID uuid.UUID) (*types.Product, error)
	ListProducts(ctx context.Context, adminID uuid.UUID) ([]*types.Product, error)
}

type productService struct {
	db          *gorm.DB
	log         *logger.Logger
	adminRepo   repos.AdminRepo
	productRepo repos.ProductRepo
}

func NewProductService(
	db *gorm.DB,
	baseLog *logger.Logger,
	adminRepo repos.AdminRepo,
	productRepo repos.ProductRepo,
) ProductService {
	serviceLog := baseLog.With("service", "ProductService")
	return &productService{
		db:          db,
		log:         serviceLog,
		adminRepo:   adminRepo,
		productRepo: productRepo,
	}
}

// resolveAdminStore loads the acting admin and returns its store id. Both
// product creation and composition building start here; every later lookup is
// scoped to the returned store.
func resolveAdminStore(ctx context.Context, adminRepo repos.AdminRepo, adminID uuid.UUID) (uuid.UUID, error) {
	admin, err := adminRepo.GetByIDWithStore(ctx, nil, adminID)
	if err != nil {
		return uuid.Nil, catalog.WrapPersistence(err)
	}
	if admin == nil {
		return uuid.Nil, catalog.NewRuleError(catalog.CodeAdminNotFound, "admin not found")
	}
	if admin.StoreID == nil {
		return uuid.Nil, catalog.NewRuleError(catalog.CodeAdminHasNoStore, "admin has no store")
	}
	return *admin.StoreID, nil
}

func (ps *productService) CreateProduct(ctx context.Context, adminID uuid.UUID, in catalog.CreateProductInput) (*types.Product, error) {
	storeID, err := resolveAdminStore(ctx, ps.adminRepo, adminID)
	if err != nil {
		ps.log.Warn("CreateProduct admin resolution failed", "admin_id", adminID, "error", err)
		return nil, err
	}

	if err := catalog.ValidateCreate(in); err != nil {
		ps.log.Warn("CreateProduct validation failed", "admin_id", adminID, "shape", in.Shape, "error", err)
		return nil, err
	}

	product := &types.Product{
		ID:      uuid.New(),
		StoreID: storeID,
		Shape:   in.Shape,
		Name:    strings.TrimSpace(in.Name),
		Packaging: types.Packaging{
			Required: in.Packaging.Required,
			Mode:     in.Packaging.ModeOrNone(),
			Color:    in.Packaging.Color,
		},
		Compositions: []types.CompositionEdge{},
	}
	if in.Shape == types.ShapeFlower {
		product.Variety = in.Variety
		product.Colors = catalog.EncodeColors(in.Colors)
		product.OriginCountry = in.OriginCountry
		product.FragranceIntensity = in.FragranceIntensity
	}

	err = ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, createErr := ps.productRepo.Create(ctx, tx, []*types.Product{product})
		return createErr
	})
	if err != nil {
		ps.log.Error("CreateProduct persistence failed", "admin_id", adminID, "store_id", storeID, "error", err)
		return nil, catalog.WrapPersistence(err)
	}

	ps.log.Info("product created", "product_id", product.ID, "store_id", storeID, "shape", product.Shape)
	return product, nil
}

func (ps *productService) GetProduct(ctx context.Context, adminID uuid.UUID, productID uuid.UUID) (*types.Product, error) {
	storeID, err := resolveAdminStore(ctx, ps.adminRepo, adminID)
	if err != nil {
		return nil, err
	}
	product, err := ps.productRepo.GetOneScoped(ctx, nil, repos.ProductFilter{ID: productID, StoreID: storeID})
	if err != nil {
		return nil, catalog.WrapPersistence(err)
	}
	if product == nil {
		return nil, catalog.NewRuleError(catalog.CodeParentProductNotFound, "product not found")
	}
	return product, nil
}

func (ps *productService) ListProducts(ctx context.Context, adminID uuid.UUID) ([]*types.Product, error) {
	storeID, err := resolveAdminStore(ctx, ps.adminRepo, adminID)
	if err != nil {
		return nil, err
	}
	products, err := ps.productRepo.ListByStore(ctx, nil, storeID)
	if err != nil {
		return nil, catalog.WrapPersistence(err)
	}
	return products, nil
}
