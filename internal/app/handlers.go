package app

import (
	"github.com/openshelf/catalog-backend/internal/http/handlers"
	"github.com/openshelf/catalog-backend/internal/platform/logger"
)

type Handlers struct {
	Health   *handlers.HealthHandler
	Product  *handlers.ProductHandler
	Category *handlers.CategoryHandler
}

func wireHandlers(log *logger.Logger, reposet Repos, aggset Aggregates) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:   handlers.NewHealthHandler(),
		Product:  handlers.NewProductHandler(aggset.Product, aggset.Linkage, aggset.SKUs, reposet.Product, reposet.SupplierItem),
		Category: handlers.NewCategoryHandler(aggset.Category, reposet.Category),
	}
}
