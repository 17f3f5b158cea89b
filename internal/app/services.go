package app

import (
	"gorm.io/gorm"

	"github.com/bloomhaus/floristry-backend/internal/pkg/logger"
	"github.com/bloomhaus/floristry-backend/internal/services"
)

type Services struct {
	Auth         services.AuthService
	Verification services.VerificationService

	Product     services.ProductService
	Composition services.CompositionService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, repoSet Repos, clients Clients) Services {
	log.Info("Wiring services...")

	authService := services.NewAuthService(
		db, log,
		repoSet.Admin,
		repoSet.Store,
		repoSet.AdminToken,
		cfg.JWTSecretKey,
		cfg.AccessTokenTTL,
		cfg.RefreshTokenTTL,
	)

	verificationService := services.NewVerificationService(
		db, log,
		repoSet.Admin,
		clients.CodeStore,
		clients.SMS,
		cfg.VerificationCodeTTL,
	)

	productService := services.NewProductService(db, log, repoSet.Admin, repoSet.Product)
	compositionService := services.NewCompositionService(db, log, repoSet.Admin, repoSet.Product, repoSet.CompositionEdge)

	return Services{
		Auth:         authService,
		Verification: verificationService,
		Product:      productService,
		Composition:  compositionService,
	}
}
