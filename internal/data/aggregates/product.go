package aggregates

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/openshelf/catalog-backend/internal/data/repos"
	"github.com/openshelf/catalog-backend/internal/domain"
	"github.com/openshelf/catalog-backend/internal/domain/catalog"
	"github.com/openshelf/catalog-backend/internal/platform/dbctx"
)

type ProductAggregateDeps struct {
	Base BaseDeps

	Products   repos.ProductRepo
	Categories repos.CategoryRepo
	Items      repos.SupplierItemRepo
	SKUs       catalog.SKUGenerator
}

type productAggregate struct {
	deps ProductAggregateDeps
}

func NewProductAggregate(deps ProductAggregateDeps) catalog.ProductAggregate {
	deps.Base = deps.Base.withDefaults()
	return &productAggregate{deps: deps}
}

func (a *productAggregate) Contract() catalog.Contract {
	return catalog.ProductAggregateContract
}

func (a *productAggregate) CreateProduct(ctx context.Context, in catalog.CreateProductInput) (catalog.CreateProductResult, error) {
	const op = "Catalog.Product.Create"
	var out catalog.CreateProductResult

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return out, catalog.NewError(catalog.CodeValidation, op, "missing name", nil)
	}
	if len(name) > domain.ProductNameMaxLen {
		return out, catalog.NewError(catalog.CodeValidation, op,
			fmt.Sprintf("name exceeds %d characters", domain.ProductNameMaxLen), nil)
	}
	status := domain.ProductStatusDraft
	if in.Status != nil {
		status = strings.TrimSpace(*in.Status)
		if !domain.ValidProductStatus(status) {
			return out, catalog.NewError(catalog.CodeValidation, op, fmt.Sprintf("invalid status %q", status), nil)
		}
	}
	if a.deps.Products == nil || a.deps.Categories == nil || a.deps.Items == nil {
		return out, catalog.NewError(catalog.CodeInternal, op, "product aggregate repos not configured", nil)
	}
	if in.InternalSKU == nil && a.deps.SKUs == nil {
		return out, catalog.NewError(catalog.CodeInternal, op, "sku generator not configured", nil)
	}

	err := executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		var sku string
		if in.InternalSKU != nil {
			sku = strings.TrimSpace(*in.InternalSKU)
			if sku == "" {
				return ValidationError("internal_sku must not be blank when provided")
			}
			exists, err := a.deps.Products.ExistsByInternalSKU(dbc, sku)
			if err != nil {
				return err
			}
			if exists {
				return ValidationError(fmt.Sprintf("internal_sku %q is already in use", sku))
			}
		} else {
			generated, err := a.deps.SKUs.Generate(dbc.Ctx)
			if err != nil {
				return err
			}
			sku = generated
		}

		if in.CategoryID != nil {
			cat, err := a.deps.Categories.GetByID(dbc, *in.CategoryID)
			if err != nil {
				return err
			}
			if cat == nil || cat.ID == uuid.Nil {
				return ValidationError(fmt.Sprintf("category not found: %s", in.CategoryID.String()))
			}
		}

		var item *domain.SupplierItem
		if in.SupplierItemID != nil {
			locked, err := a.deps.Items.LockByID(dbc, *in.SupplierItemID)
			if err != nil {
				return err
			}
			if locked == nil || locked.ID == uuid.Nil {
				return ValidationError(fmt.Sprintf("supplier item not found: %s", in.SupplierItemID.String()))
			}
			if locked.ProductID != nil {
				return ValidationError(fmt.Sprintf("supplier item already linked to product %s", locked.ProductID.String()))
			}
			item = locked
		}

		rows, err := a.deps.Products.Create(dbc, []*domain.Product{{
			ID:          uuid.New(),
			InternalSKU: sku,
			Name:        name,
			CategoryID:  in.CategoryID,
			Status:      status,
		}})
		if err != nil {
			return err
		}
		p := rows[0]

		linked := []*domain.SupplierItem{}
		if item != nil {
			ok, err := a.deps.Base.LinkGuard.LinkIfUnlinked(dbc, item.ID, p.ID)
			if err != nil {
				return err
			}
			if err := RequireCASSuccess(ok, "supplier item was linked concurrently"); err != nil {
				return err
			}
			linked, err = a.deps.Items.ListByProductID(dbc, p.ID)
			if err != nil {
				return err
			}
		}

		out = catalog.CreateProductResult{Product: p, LinkedItems: linked}
		return nil
	})
	if err != nil {
		return catalog.CreateProductResult{}, err
	}
	return out, nil
}
