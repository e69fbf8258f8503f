package aggregates

import (
	"context"
	"strings"
	"testing"

	catrepos "github.com/openshelf/catalog-backend/internal/data/repos/catalog"
	repotest "github.com/openshelf/catalog-backend/internal/data/repos/testutil"
	"github.com/openshelf/catalog-backend/internal/domain"
	"github.com/openshelf/catalog-backend/internal/domain/catalog"
	"gorm.io/gorm"
)

func newProductAggForTest(t *testing.T, tx *gorm.DB) catalog.ProductAggregate {
	t.Helper()
	log := repotest.Logger(t)
	products := catrepos.NewProductRepo(tx, log)
	return NewProductAggregate(ProductAggregateDeps{
		Base:       BaseDeps{DB: tx, Log: log, Runner: NewGormTxRunner(tx), LinkGuard: NewLinkGuard(tx)},
		Products:   products,
		Categories: catrepos.NewCategoryRepo(tx, log),
		Items:      catrepos.NewSupplierItemRepo(tx, log),
		SKUs:       NewSKUGenerator(products, &hooksRecorder{}, log),
	})
}

func TestProductCreateWithExplicitSKUAndLink(t *testing.T) {
	db := repotest.DB(t)
	tx := repotest.Tx(t, db)
	ctx := context.Background()
	agg := newProductAggForTest(t, tx)

	sup := repotest.SeedSupplier(t, ctx, tx, repotest.UniqueSKU("SUP"))
	cat := repotest.SeedCategory(t, ctx, tx, repotest.UniqueSKU("Cat"), nil)
	item := repotest.SeedSupplierItem(t, ctx, tx, sup.ID, repotest.UniqueSKU("ITM"), nil)

	sku := repotest.UniqueSKU("PRD")
	res, err := agg.CreateProduct(ctx, catalog.CreateProductInput{
		Name:           "Wireless Mouse",
		InternalSKU:    &sku,
		CategoryID:     &cat.ID,
		SupplierItemID: &item.ID,
	})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	if res.Product == nil || res.Product.InternalSKU != sku {
		t.Fatalf("product sku: %+v", res.Product)
	}
	if res.Product.Status != domain.ProductStatusDraft {
		t.Fatalf("status should default to draft, got %q", res.Product.Status)
	}
	if res.Product.CategoryID == nil || *res.Product.CategoryID != cat.ID {
		t.Fatalf("category: %+v", res.Product.CategoryID)
	}
	if len(res.LinkedItems) != 1 || res.LinkedItems[0].ID != item.ID {
		t.Fatalf("linked items: %+v", res.LinkedItems)
	}
	if res.LinkedItems[0].ProductID == nil || *res.LinkedItems[0].ProductID != res.Product.ID {
		t.Fatalf("item should be linked to new product")
	}
}

func TestProductCreateGeneratesSKUWhenAbsent(t *testing.T) {
	db := repotest.DB(t)
	tx := repotest.Tx(t, db)
	ctx := context.Background()
	agg := newProductAggForTest(t, tx)

	res, err := agg.CreateProduct(ctx, catalog.CreateProductInput{Name: "Desk Lamp"})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	if !strings.HasPrefix(res.Product.InternalSKU, "PRD-") {
		t.Fatalf("generated sku: %q", res.Product.InternalSKU)
	}
	if len(res.LinkedItems) != 0 {
		t.Fatalf("expected no linked items, got %+v", res.LinkedItems)
	}
}

func TestProductCreateDuplicateSKU(t *testing.T) {
	db := repotest.DB(t)
	tx := repotest.Tx(t, db)
	ctx := context.Background()
	agg := newProductAggForTest(t, tx)

	existing := repotest.SeedProduct(t, ctx, tx, repotest.UniqueSKU("PRD"), "active", nil)

	_, err := agg.CreateProduct(ctx, catalog.CreateProductInput{
		Name:        "Duplicate",
		InternalSKU: &existing.InternalSKU,
	})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !catalog.IsCode(err, catalog.CodeValidation) {
		t.Fatalf("expected validation code, got %v", err)
	}
}

func TestProductCreateMissingCategory(t *testing.T) {
	db := repotest.DB(t)
	tx := repotest.Tx(t, db)
	ctx := context.Background()
	agg := newProductAggForTest(t, tx)

	ghost := repotest.SeedProduct(t, ctx, tx, repotest.UniqueSKU("PRD"), "draft", nil)

	_, err := agg.CreateProduct(ctx, catalog.CreateProductInput{
		Name:       "Orphan",
		CategoryID: &ghost.ID, // a product id, not a category id
	})
	if !catalog.IsCode(err, catalog.CodeValidation) {
		t.Fatalf("expected validation for missing category, got %v", err)
	}
}

func TestProductCreateItemAlreadyLinked(t *testing.T) {
	db := repotest.DB(t)
	tx := repotest.Tx(t, db)
	ctx := context.Background()
	agg := newProductAggForTest(t, tx)

	sup := repotest.SeedSupplier(t, ctx, tx, repotest.UniqueSKU("SUP"))
	owner := repotest.SeedProduct(t, ctx, tx, repotest.UniqueSKU("PRD"), "active", nil)
	item := repotest.SeedSupplierItem(t, ctx, tx, sup.ID, repotest.UniqueSKU("ITM"), &owner.ID)

	_, err := agg.CreateProduct(ctx, catalog.CreateProductInput{
		Name:           "Taken Item",
		SupplierItemID: &item.ID,
	})
	if !catalog.IsCode(err, catalog.CodeValidation) {
		t.Fatalf("expected validation for already-linked item, got %v", err)
	}

	// Failed creation must not leave a product behind.
	var count int64
	if err := tx.WithContext(ctx).Model(&domain.Product{}).Where("name = ?", "Taken Item").Count(&count).Error; err != nil {
		t.Fatalf("count products: %v", err)
	}
	if count != 0 {
		t.Fatalf("rolled-back product should not exist, found %d", count)
	}
}

func TestProductCreateInputValidation(t *testing.T) {
	agg := NewProductAggregate(ProductAggregateDeps{
		Products:   &fakeProductRepo{},
		Categories: nil,
		Items:      nil,
	})

	_, err := agg.CreateProduct(context.Background(), catalog.CreateProductInput{Name: "   "})
	if !catalog.IsCode(err, catalog.CodeValidation) {
		t.Fatalf("blank name: want validation, got %v", err)
	}

	long := strings.Repeat("x", domain.ProductNameMaxLen+1)
	_, err = agg.CreateProduct(context.Background(), catalog.CreateProductInput{Name: long})
	if !catalog.IsCode(err, catalog.CodeValidation) {
		t.Fatalf("oversized name: want validation, got %v", err)
	}

	bad := "published"
	_, err = agg.CreateProduct(context.Background(), catalog.CreateProductInput{Name: "ok", Status: &bad})
	if !catalog.IsCode(err, catalog.CodeValidation) {
		t.Fatalf("invalid status: want validation, got %v", err)
	}
}
