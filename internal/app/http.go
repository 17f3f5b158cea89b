package app

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bloomhaus/floristry-backend/internal/http"
	httpH "github.com/bloomhaus/floristry-backend/internal/http/handlers"
	httpMW "github.com/bloomhaus/floristry-backend/internal/http/middleware"
	"github.com/bloomhaus/floristry-backend/internal/pkg/logger"
)

type Middleware struct {
	Auth *httpMW.AuthMiddleware
}

type Handlers struct {
	Health  *httpH.HealthHandler
	Auth    *httpH.AuthHandler
	Product *httpH.ProductHandler
}

func wireHandlers(db *gorm.DB, log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:  httpH.NewHealthHandler(db),
		Auth:    httpH.NewAuthHandler(services.Auth, services.Verification),
		Product: httpH.NewProductHandler(services.Product, services.Composition),
	}
}

func wireMiddleware(log *logger.Logger, services Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth: httpMW.NewAuthMiddleware(log, services.Auth),
	}
}

func wireRouter(log *logger.Logger, handlers Handlers, middleware Middleware) *gin.Engine {
	return http.NewRouter(http.RouterConfig{
		Log:            log,
		AuthMiddleware: middleware.Auth,
		HealthHandler:  handlers.Health,
		AuthHandler:    handlers.Auth,
		ProductHandler: handlers.Product,
	})
}
