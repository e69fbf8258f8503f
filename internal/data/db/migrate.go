package db

import (
	"fmt"

	"gorm.io/gorm"

	types "github.com/openshelf/catalog-backend/internal/domain"
)

// Migrate applies the schema plus the constraints AutoMigrate cannot express:
// the partial unique indexes on active category names and the foreign keys
// the linkage and governance invariants rely on.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&types.Supplier{},
		&types.Category{},
		&types.Product{},
		&types.SupplierItem{},
	); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}

	// (name, parent_id) unique among active categories. Postgres treats NULL
	// parents as distinct, so root names need their own index.
	indexes := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_category_name_parent_active
			ON category (name, parent_id) WHERE is_active AND parent_id IS NOT NULL`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_category_name_root_active
			ON category (name) WHERE is_active AND parent_id IS NULL`,
	}
	for _, ddl := range indexes {
		if err := db.Exec(ddl).Error; err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}

	constraints := []struct {
		table string
		name  string
		ddl   string
	}{
		{"product", "fk_product_category",
			`ALTER TABLE product ADD CONSTRAINT fk_product_category
				FOREIGN KEY (category_id) REFERENCES category(id)`},
		{"category", "fk_category_parent",
			`ALTER TABLE category ADD CONSTRAINT fk_category_parent
				FOREIGN KEY (parent_id) REFERENCES category(id)`},
		{"supplier_item", "fk_supplier_item_product",
			`ALTER TABLE supplier_item ADD CONSTRAINT fk_supplier_item_product
				FOREIGN KEY (product_id) REFERENCES product(id)`},
		{"supplier_item", "fk_supplier_item_supplier",
			`ALTER TABLE supplier_item ADD CONSTRAINT fk_supplier_item_supplier
				FOREIGN KEY (supplier_id) REFERENCES supplier(id)`},
	}
	for _, c := range constraints {
		ok, err := constraintExists(db, c.table, c.name)
		if err != nil {
			return err
		}
		if ok {
			continue
		}
		if err := db.Exec(c.ddl).Error; err != nil {
			return fmt.Errorf("add constraint %s: %w", c.name, err)
		}
	}
	return nil
}

func constraintExists(db *gorm.DB, table, name string) (bool, error) {
	var count int64
	err := db.Raw(
		`SELECT count(*) FROM pg_constraint c
			JOIN pg_class t ON c.conrelid = t.oid
			WHERE t.relname = ? AND c.conname = ?`,
		table, name,
	).Scan(&count).Error
	if err != nil {
		return false, fmt.Errorf("check constraint %s: %w", name, err)
	}
	return count > 0, nil
}
