package catalog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/bloomhaus/floristry-backend/internal/domain"
	"github.com/bloomhaus/floristry-backend/internal/pkg/logger"
)

// ProductFilter scopes a single-product lookup. StoreID is part of the WHERE
// clause on purpose: a product in another store resolves to "not found", so
// nothing above this layer can learn that it exists.
type ProductFilter struct {
	ID      uuid.UUID
	StoreID uuid.UUID
	Shape   *types.ProductShape
}

type ProductRepo interface {
	Create(ctx context.Context, tx *gorm.DB, products []*types.Product) ([]*types.Product, error)
	// GetOneScoped resolves one product inside a store. Returns nil (no error)
	// when no row matches the full filter.
	GetOneScoped(ctx context.Context, tx *gorm.DB, filter ProductFilter) (*types.Product, error)
	ListByStore(ctx context.Context, tx *gorm.DB, storeID uuid.UUID) ([]*types.Product, error)
}

type productRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProductRepo(db *gorm.DB, baseLog *logger.Logger) ProductRepo {
	repoLog := baseLog.With("repo", "ProductRepo")
	return &productRepo{db: db, log: repoLog}
}

func (pr *productRepo) Create(ctx context.Context, tx *gorm.DB, products []*types.Product) ([]*types.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	if len(products) == 0 {
		return []*types.Product{}, nil
	}

	if err := transaction.WithContext(ctx).Omit("Compositions").Create(&products).Error; err != nil {
		return nil, err
	}

	return products, nil
}

func (pr *productRepo) GetOneScoped(ctx context.Context, tx *gorm.DB, filter ProductFilter) (*types.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	query := transaction.WithContext(ctx).
		Preload("Compositions", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("id = ? AND store_id = ?", filter.ID, filter.StoreID)
	if filter.Shape != nil {
		query = query.Where("shape = ?", *filter.Shape)
	}

	var results []*types.Product
	if err := query.Limit(1).Find(&results).Error; err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}

func (pr *productRepo) ListByStore(ctx context.Context, tx *gorm.DB, storeID uuid.UUID) ([]*types.Product, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var results []*types.Product
	if err := transaction.WithContext(ctx).
		Preload("Compositions").
		Where("store_id = ?", storeID).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
