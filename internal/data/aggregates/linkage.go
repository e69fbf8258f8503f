package aggregates

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/openshelf/catalog-backend/internal/data/repos"
	"github.com/openshelf/catalog-backend/internal/domain"
	"github.com/openshelf/catalog-backend/internal/domain/catalog"
	"github.com/openshelf/catalog-backend/internal/platform/dbctx"
)

type LinkageAggregateDeps struct {
	Base BaseDeps

	Products repos.ProductRepo
	Items    repos.SupplierItemRepo
}

type linkageAggregate struct {
	deps LinkageAggregateDeps
}

func NewLinkageAggregate(deps LinkageAggregateDeps) catalog.LinkageAggregate {
	deps.Base = deps.Base.withDefaults()
	return &linkageAggregate{deps: deps}
}

func (a *linkageAggregate) Contract() catalog.Contract {
	return catalog.LinkageAggregateContract
}

func (a *linkageAggregate) Match(ctx context.Context, in catalog.MatchInput) (catalog.MatchResult, error) {
	const op = "Catalog.Linkage.Match"
	var out catalog.MatchResult
	if in.ProductID == uuid.Nil {
		return out, catalog.NewError(catalog.CodeValidation, op, "missing product_id", nil)
	}
	if in.SupplierItemID == uuid.Nil {
		return out, catalog.NewError(catalog.CodeValidation, op, "missing supplier_item_id", nil)
	}
	if !in.Action.Valid() {
		return out, catalog.NewError(catalog.CodeValidation, op,
			fmt.Sprintf("invalid action %q, want %q or %q", in.Action, catalog.MatchActionLink, catalog.MatchActionUnlink), nil)
	}
	if a.deps.Products == nil || a.deps.Items == nil {
		return out, catalog.NewError(catalog.CodeInternal, op, "linkage aggregate repos not configured", nil)
	}

	err := executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		// Lock order is product then item, everywhere linkage rows are
		// touched, so two writers on the same pair cannot deadlock.
		p, err := a.deps.Products.LockByID(dbc, in.ProductID)
		if err != nil {
			return err
		}
		if p == nil || p.ID == uuid.Nil {
			return catalog.NewError(catalog.CodeNotFound, op, fmt.Sprintf("product not found: %s", in.ProductID.String()), nil)
		}
		if in.Action == catalog.MatchActionLink && p.Status == domain.ProductStatusArchived {
			return ValidationError("cannot link supplier item to an archived product")
		}

		item, err := a.deps.Items.LockByID(dbc, in.SupplierItemID)
		if err != nil {
			return err
		}
		if item == nil || item.ID == uuid.Nil {
			return catalog.NewError(catalog.CodeNotFound, op, fmt.Sprintf("supplier item not found: %s", in.SupplierItemID.String()), nil)
		}

		switch in.Action {
		case catalog.MatchActionLink:
			switch {
			case item.ProductID == nil:
				ok, err := a.deps.Base.LinkGuard.LinkIfUnlinked(dbc, item.ID, p.ID)
				if err != nil {
					return err
				}
				if err := RequireCASSuccess(ok, "supplier item was linked concurrently"); err != nil {
					return err
				}
			case *item.ProductID == p.ID:
				// Already linked to this product: idempotent no-op.
			default:
				return ConflictError(fmt.Sprintf("supplier item already linked to product %s", item.ProductID.String()))
			}
		case catalog.MatchActionUnlink:
			if item.ProductID == nil || *item.ProductID != p.ID {
				return ValidationError("supplier item is not linked to this product")
			}
			ok, err := a.deps.Base.LinkGuard.UnlinkFromProduct(dbc, item.ID, p.ID)
			if err != nil {
				return err
			}
			if err := RequireCASSuccess(ok, "supplier item link changed concurrently"); err != nil {
				return err
			}
		}

		linked, err := a.deps.Items.ListByProductID(dbc, p.ID)
		if err != nil {
			return err
		}
		out = catalog.MatchResult{Product: p, LinkedItems: linked}
		return nil
	})
	if err != nil {
		return catalog.MatchResult{}, err
	}
	return out, nil
}
