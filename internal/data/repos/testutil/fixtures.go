package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	types "github.com/openshelf/catalog-backend/internal/domain"
)

func SeedSupplier(tb testing.TB, ctx context.Context, tx *gorm.DB, code string) *types.Supplier {
	tb.Helper()
	s := &types.Supplier{
		ID:   uuid.New(),
		Name: "Supplier " + code,
		Code: code,
	}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed supplier: %v", err)
	}
	return s
}

func SeedCategory(tb testing.TB, ctx context.Context, tx *gorm.DB, name string, parentID *uuid.UUID) *types.Category {
	tb.Helper()
	c := &types.Category{
		ID:          uuid.New(),
		Name:        name,
		ParentID:    parentID,
		NeedsReview: true,
		IsActive:    true,
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed category: %v", err)
	}
	return c
}

func SeedProduct(tb testing.TB, ctx context.Context, tx *gorm.DB, sku, status string, categoryID *uuid.UUID) *types.Product {
	tb.Helper()
	p := &types.Product{
		ID:          uuid.New(),
		InternalSKU: sku,
		Name:        "Product " + sku,
		CategoryID:  categoryID,
		Status:      status,
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed product: %v", err)
	}
	return p
}

func SeedSupplierItem(tb testing.TB, ctx context.Context, tx *gorm.DB, supplierID uuid.UUID, supplierSKU string, productID *uuid.UUID) *types.SupplierItem {
	tb.Helper()
	now := time.Now().UTC()
	item := &types.SupplierItem{
		ID:           uuid.New(),
		SupplierID:   supplierID,
		SupplierSKU:  supplierSKU,
		ProductID:    productID,
		CurrentPrice: decimal.NewFromFloat(19.99),
		Characteristics: datatypes.JSONMap{
			"color": "black",
		},
		LastIngestedAt: &now,
	}
	if err := tx.WithContext(ctx).Create(item).Error; err != nil {
		tb.Fatalf("seed supplier item: %v", err)
	}
	return item
}

// UniqueSKU keeps seeded SKUs from colliding across tests sharing one database.
func UniqueSKU(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.New().String()[:8])
}
