package app

import (
	"gorm.io/gorm"

	"github.com/bloomhaus/floristry-backend/internal/data/repos"
	"github.com/bloomhaus/floristry-backend/internal/pkg/logger"
)

type Repos struct {
	Store      repos.StoreRepo
	Admin      repos.AdminRepo
	AdminToken repos.AdminTokenRepo

	Product         repos.ProductRepo
	CompositionEdge repos.CompositionEdgeRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Store:           repos.NewStoreRepo(db, log),
		Admin:           repos.NewAdminRepo(db, log),
		AdminToken:      repos.NewAdminTokenRepo(db, log),
		Product:         repos.NewProductRepo(db, log),
		CompositionEdge: repos.NewCompositionEdgeRepo(db, log),
	}
}
