package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"

	repotest "github.com/openshelf/catalog-backend/internal/data/repos/testutil"
	"github.com/openshelf/catalog-backend/internal/platform/dbctx"
)

func TestProductRepoExistsByInternalSKU(t *testing.T) {
	db := repotest.DB(t)
	tx := repotest.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewProductRepo(tx, repotest.Logger(t))

	sku := repotest.UniqueSKU("PRD")
	repotest.SeedProduct(t, ctx, tx, sku, "draft", nil)

	exists, err := repo.ExistsByInternalSKU(dbc, sku)
	if err != nil {
		t.Fatalf("ExistsByInternalSKU: %v", err)
	}
	if !exists {
		t.Fatalf("expected sku to exist")
	}

	exists, err = repo.ExistsByInternalSKU(dbc, repotest.UniqueSKU("PRD"))
	if err != nil {
		t.Fatalf("ExistsByInternalSKU fresh: %v", err)
	}
	if exists {
		t.Fatalf("fresh sku should not exist")
	}
}

func TestProductRepoGetByIDNotFound(t *testing.T) {
	db := repotest.DB(t)
	tx := repotest.Tx(t, db)
	repo := NewProductRepo(tx, repotest.Logger(t))

	got, err := repo.GetByID(dbctx.Context{Ctx: context.Background(), Tx: tx}, uuid.New())
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for missing row, got %+v", got)
	}
}

func TestProductRepoLockByIDRequiresTx(t *testing.T) {
	db := repotest.DB(t)
	tx := repotest.Tx(t, db)
	repo := NewProductRepo(tx, repotest.Logger(t))

	if _, err := repo.LockByID(dbctx.Context{Ctx: context.Background()}, uuid.New()); err == nil {
		t.Fatalf("LockByID without tx should fail")
	}
}

func TestProductRepoReassignCategory(t *testing.T) {
	db := repotest.DB(t)
	tx := repotest.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	repo := NewProductRepo(tx, repotest.Logger(t))

	from := repotest.SeedCategory(t, ctx, tx, repotest.UniqueSKU("From"), nil)
	to := repotest.SeedCategory(t, ctx, tx, repotest.UniqueSKU("To"), nil)
	repotest.SeedProduct(t, ctx, tx, repotest.UniqueSKU("PRD"), "active", &from.ID)
	repotest.SeedProduct(t, ctx, tx, repotest.UniqueSKU("PRD"), "draft", &from.ID)
	repotest.SeedProduct(t, ctx, tx, repotest.UniqueSKU("PRD"), "draft", &to.ID)

	moved, err := repo.ReassignCategory(dbc, from.ID, &to.ID)
	if err != nil {
		t.Fatalf("ReassignCategory: %v", err)
	}
	if moved != 2 {
		t.Fatalf("moved: want=2 got=%d", moved)
	}

	count, err := repo.CountByCategory(dbc, to.ID)
	if err != nil {
		t.Fatalf("CountByCategory: %v", err)
	}
	if count != 3 {
		t.Fatalf("target count: want=3 got=%d", count)
	}

	// Detach to root.
	moved, err = repo.ReassignCategory(dbc, to.ID, nil)
	if err != nil {
		t.Fatalf("ReassignCategory to nil: %v", err)
	}
	if moved != 3 {
		t.Fatalf("detached: want=3 got=%d", moved)
	}
}
