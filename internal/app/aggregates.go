package app

import (
	"gorm.io/gorm"

	"github.com/openshelf/catalog-backend/internal/data/aggregates"
	"github.com/openshelf/catalog-backend/internal/domain/catalog"
	"github.com/openshelf/catalog-backend/internal/observability"
	"github.com/openshelf/catalog-backend/internal/platform/logger"
)

type Aggregates struct {
	Linkage  catalog.LinkageAggregate
	Product  catalog.ProductAggregate
	Category catalog.CategoryAggregate

	SKUs catalog.SKUGenerator
}

func wireAggregates(db *gorm.DB, log *logger.Logger, metrics *observability.Metrics, reposet Repos) Aggregates {
	log.Info("Wiring aggregates...")
	hooks := aggregates.NewObservabilityHooks(metrics)
	base := aggregates.BaseDeps{
		DB:        db,
		Log:       log,
		Runner:    aggregates.NewGormTxRunner(db),
		Hooks:     hooks,
		LinkGuard: aggregates.NewLinkGuard(db),
	}
	skus := aggregates.NewSKUGenerator(reposet.Product, hooks, log)
	return Aggregates{
		Linkage: aggregates.NewLinkageAggregate(aggregates.LinkageAggregateDeps{
			Base:     base,
			Products: reposet.Product,
			Items:    reposet.SupplierItem,
		}),
		Product: aggregates.NewProductAggregate(aggregates.ProductAggregateDeps{
			Base:       base,
			Products:   reposet.Product,
			Categories: reposet.Category,
			Items:      reposet.SupplierItem,
			SKUs:       skus,
		}),
		Category: aggregates.NewCategoryAggregate(aggregates.CategoryAggregateDeps{
			Base:       base,
			Categories: reposet.Category,
			Products:   reposet.Product,
		}),
		SKUs: skus,
	}
}
