package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/bloomhaus/floristry-backend/internal/http/handlers"
	httpMW "github.com/bloomhaus/floristry-backend/internal/http/middleware"
	"github.com/bloomhaus/floristry-backend/internal/pkg/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	AuthMiddleware *httpMW.AuthMiddleware

	HealthHandler  *httpH.HealthHandler
	AuthHandler    *httpH.AuthHandler
	ProductHandler *httpH.ProductHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware("floristry-backend"))
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS())

	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.Check)
	}

	api := r.Group("/api")
	{
		if cfg.AuthHandler != nil {
			api.POST("/register", cfg.AuthHandler.Register)
			api.POST("/login", cfg.AuthHandler.Login)
		}
	}

	protected := api.Group("/")
	{
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireAuth())
		}

		if cfg.AuthHandler != nil {
			protected.POST("/refresh", cfg.AuthHandler.Refresh)
			protected.POST("/logout", cfg.AuthHandler.Logout)
			protected.POST("/verification/request", cfg.AuthHandler.RequestPhoneCode)
			protected.POST("/verification/confirm", cfg.AuthHandler.ConfirmPhoneCode)
		}

		if cfg.ProductHandler != nil {
			protected.POST("/products", cfg.ProductHandler.Create)
			protected.GET("/products", cfg.ProductHandler.List)
			protected.GET("/products/:id", cfg.ProductHandler.Get)
			protected.POST("/products/:id/flowers", cfg.ProductHandler.AddFlowers)
		}
	}

	return r
}
