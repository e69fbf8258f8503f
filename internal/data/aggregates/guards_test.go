package aggregates

import (
	"context"
	"testing"

	repotest "github.com/openshelf/catalog-backend/internal/data/repos/testutil"
	"github.com/openshelf/catalog-backend/internal/domain/catalog"
	"github.com/openshelf/catalog-backend/internal/platform/dbctx"
)

func TestRequireCASSuccess(t *testing.T) {
	if err := RequireCASSuccess(true, "should not fire"); err != nil {
		t.Fatalf("expected nil on success, got %v", err)
	}
	err := RequireCASSuccess(false, "item claimed concurrently")
	if err == nil {
		t.Fatalf("expected conflict error")
	}
	if !catalog.IsCode(MapError("op", err), catalog.CodeConflict) {
		t.Fatalf("expected conflict code, got %v", err)
	}
}

func TestLinkGuardLinkIfUnlinked(t *testing.T) {
	db := repotest.DB(t)
	tx := repotest.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	sup := repotest.SeedSupplier(t, ctx, tx, repotest.UniqueSKU("SUP"))
	p1 := repotest.SeedProduct(t, ctx, tx, repotest.UniqueSKU("PRD"), "draft", nil)
	p2 := repotest.SeedProduct(t, ctx, tx, repotest.UniqueSKU("PRD"), "draft", nil)
	item := repotest.SeedSupplierItem(t, ctx, tx, sup.ID, repotest.UniqueSKU("ITM"), nil)

	guard := NewLinkGuard(tx)

	ok, err := guard.LinkIfUnlinked(dbc, item.ID, p1.ID)
	if err != nil {
		t.Fatalf("LinkIfUnlinked: %v", err)
	}
	if !ok {
		t.Fatalf("expected first link to succeed")
	}

	// A second claim loses: the expected prior state (unlinked) is gone.
	ok, err = guard.LinkIfUnlinked(dbc, item.ID, p2.ID)
	if err != nil {
		t.Fatalf("LinkIfUnlinked second: %v", err)
	}
	if ok {
		t.Fatalf("expected second link attempt to be a zero-row no-op")
	}
}

func TestLinkGuardUnlinkFromProduct(t *testing.T) {
	db := repotest.DB(t)
	tx := repotest.Tx(t, db)
	ctx := context.Background()
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	sup := repotest.SeedSupplier(t, ctx, tx, repotest.UniqueSKU("SUP"))
	p1 := repotest.SeedProduct(t, ctx, tx, repotest.UniqueSKU("PRD"), "draft", nil)
	p2 := repotest.SeedProduct(t, ctx, tx, repotest.UniqueSKU("PRD"), "draft", nil)
	item := repotest.SeedSupplierItem(t, ctx, tx, sup.ID, repotest.UniqueSKU("ITM"), &p1.ID)

	guard := NewLinkGuard(tx)

	// Wrong owner: no rows match, nothing is cleared.
	ok, err := guard.UnlinkFromProduct(dbc, item.ID, p2.ID)
	if err != nil {
		t.Fatalf("UnlinkFromProduct wrong owner: %v", err)
	}
	if ok {
		t.Fatalf("unlink with wrong owner should not affect rows")
	}

	ok, err = guard.UnlinkFromProduct(dbc, item.ID, p1.ID)
	if err != nil {
		t.Fatalf("UnlinkFromProduct: %v", err)
	}
	if !ok {
		t.Fatalf("expected unlink to succeed")
	}
}
