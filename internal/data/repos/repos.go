package repos

import (
	"gorm.io/gorm"

	"github.com/bloomhaus/floristry-backend/internal/data/repos/auth"
	"github.com/bloomhaus/floristry-backend/internal/data/repos/catalog"
	"github.com/bloomhaus/floristry-backend/internal/data/repos/store"
	"github.com/bloomhaus/floristry-backend/internal/pkg/logger"
)

type StoreRepo = store.StoreRepo
type AdminRepo = store.AdminRepo
type AdminTokenRepo = auth.AdminTokenRepo

type ProductRepo = catalog.ProductRepo
type ProductFilter = catalog.ProductFilter
type CompositionEdgeRepo = catalog.CompositionEdgeRepo

func NewStoreRepo(db *gorm.DB, baseLog *logger.Logger) StoreRepo {
	return store.NewStoreRepo(db, baseLog)
}

func NewAdminRepo(db *gorm.DB, baseLog *logger.Logger) AdminRepo {
	return store.NewAdminRepo(db, baseLog)
}

func NewAdminTokenRepo(db *gorm.DB, baseLog *logger.Logger) AdminTokenRepo {
	return auth.NewAdminTokenRepo(db, baseLog)
}

func NewProductRepo(db *gorm.DB, baseLog *logger.Logger) ProductRepo {
	return catalog.NewProductRepo(db, baseLog)
}

func NewCompositionEdgeRepo(db *gorm.DB, baseLog *logger.Logger) CompositionEdgeRepo {
	return catalog.NewCompositionEdgeRepo(db, baseLog)
}
