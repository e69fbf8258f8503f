package server

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/openshelf/catalog-backend/internal/http/handlers"
	"github.com/openshelf/catalog-backend/internal/http/middleware"
	"github.com/openshelf/catalog-backend/internal/observability"
	"github.com/openshelf/catalog-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log     *logger.Logger
	Metrics *observability.Metrics

	HealthHandler   *handlers.HealthHandler
	ProductHandler  *handlers.ProductHandler
	CategoryHandler *handlers.CategoryHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(otelgin.Middleware("catalog-backend"))
	router.Use(middleware.AttachTraceContext())
	router.Use(middleware.RequestLogger(cfg.Log))
	router.Use(middleware.Metrics(cfg.Metrics))

	router.GET("/healthcheck", cfg.HealthHandler.HealthCheck)

	api := router.Group("/api")
	{
		products := api.Group("/products")
		{
			products.POST("", cfg.ProductHandler.CreateProduct)
			products.POST("/sku", cfg.ProductHandler.GenerateSKU)
			products.GET("/:id", cfg.ProductHandler.GetProduct)
			products.POST("/:id/match", cfg.ProductHandler.Match)
		}

		categories := api.Group("/categories")
		{
			categories.GET("/pending", cfg.CategoryHandler.ListPendingReview)
			categories.POST("/approve", cfg.CategoryHandler.BulkApprove)
			categories.POST("/:id/approve", cfg.CategoryHandler.Approve)
			categories.POST("/:id/merge", cfg.CategoryHandler.Merge)
			categories.POST("/:id/rename", cfg.CategoryHandler.Rename)
			categories.DELETE("/:id", cfg.CategoryHandler.Delete)
		}
	}

	return router
}
