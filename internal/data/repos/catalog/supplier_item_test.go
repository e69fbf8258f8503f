package catalog

import (
	"context"
	"testing"

	repotest "github.com/openshelf/catalog-backend/internal/data/repos/testutil"
	"github.com/openshelf/catalog-backend/internal/platform/dbctx"
)

func TestSupplierItemRepoListByProductIDOrdered(t *testing.T) {
	db := repotest.DB(t)
	tx := repotest.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewSupplierItemRepo(tx, repotest.Logger(t))

	sup := repotest.SeedSupplier(t, ctx, tx, repotest.UniqueSKU("SUP"))
	p := repotest.SeedProduct(t, ctx, tx, repotest.UniqueSKU("PRD"), "active", nil)
	repotest.SeedSupplierItem(t, ctx, tx, sup.ID, "B-"+repotest.UniqueSKU("ITM"), &p.ID)
	repotest.SeedSupplierItem(t, ctx, tx, sup.ID, "A-"+repotest.UniqueSKU("ITM"), &p.ID)
	repotest.SeedSupplierItem(t, ctx, tx, sup.ID, repotest.UniqueSKU("OTHER"), nil)

	rows, err := repo.ListByProductID(dbc, p.ID)
	if err != nil {
		t.Fatalf("ListByProductID: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows: want=2 got=%d", len(rows))
	}
	if rows[0].SupplierSKU > rows[1].SupplierSKU {
		t.Fatalf("rows should be ordered by supplier_sku: %q, %q", rows[0].SupplierSKU, rows[1].SupplierSKU)
	}
}

func TestSupplierItemRepoUpdateFieldsClearsLink(t *testing.T) {
	db := repotest.DB(t)
	tx := repotest.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewSupplierItemRepo(tx, repotest.Logger(t))

	sup := repotest.SeedSupplier(t, ctx, tx, repotest.UniqueSKU("SUP"))
	p := repotest.SeedProduct(t, ctx, tx, repotest.UniqueSKU("PRD"), "active", nil)
	item := repotest.SeedSupplierItem(t, ctx, tx, sup.ID, repotest.UniqueSKU("ITM"), &p.ID)

	if err := repo.UpdateFields(dbc, item.ID, map[string]interface{}{"product_id": nil}); err != nil {
		t.Fatalf("UpdateFields: %v", err)
	}

	got, err := repo.GetByID(dbc, item.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.ProductID != nil {
		t.Fatalf("link should be cleared, got %+v", got.ProductID)
	}
}
