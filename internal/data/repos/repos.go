package repos

import (
	"gorm.io/gorm"

	"github.com/openshelf/catalog-backend/internal/data/repos/catalog"
	"github.com/openshelf/catalog-backend/internal/platform/logger"
)

type ProductRepo = catalog.ProductRepo
type CategoryRepo = catalog.CategoryRepo
type SupplierRepo = catalog.SupplierRepo
type SupplierItemRepo = catalog.SupplierItemRepo

func NewProductRepo(db *gorm.DB, baseLog *logger.Logger) ProductRepo {
	return catalog.NewProductRepo(db, baseLog)
}

func NewCategoryRepo(db *gorm.DB, baseLog *logger.Logger) CategoryRepo {
	return catalog.NewCategoryRepo(db, baseLog)
}

func NewSupplierRepo(db *gorm.DB, baseLog *logger.Logger) SupplierRepo {
	return catalog.NewSupplierRepo(db, baseLog)
}

func NewSupplierItemRepo(db *gorm.DB, baseLog *logger.Logger) SupplierItemRepo {
	return catalog.NewSupplierItemRepo(db, baseLog)
}
