package app

import (
	"gorm.io/gorm"

	"github.com/openshelf/catalog-backend/internal/data/repos"
	"github.com/openshelf/catalog-backend/internal/platform/logger"
)

type Repos struct {
	Product      repos.ProductRepo
	Category     repos.CategoryRepo
	Supplier     repos.SupplierRepo
	SupplierItem repos.SupplierItemRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Product:      repos.NewProductRepo(db, log),
		Category:     repos.NewCategoryRepo(db, log),
		Supplier:     repos.NewSupplierRepo(db, log),
		SupplierItem: repos.NewSupplierItemRepo(db, log),
	}
}
