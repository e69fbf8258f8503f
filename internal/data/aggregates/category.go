package aggregates

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/openshelf/catalog-backend/internal/data/repos"
	"github.com/openshelf/catalog-backend/internal/domain/catalog"
	"github.com/openshelf/catalog-backend/internal/platform/dbctx"
)

type CategoryAggregateDeps struct {
	Base BaseDeps

	Categories repos.CategoryRepo
	Products   repos.ProductRepo
}

type categoryAggregate struct {
	deps CategoryAggregateDeps
}

func NewCategoryAggregate(deps CategoryAggregateDeps) catalog.CategoryAggregate {
	deps.Base = deps.Base.withDefaults()
	return &categoryAggregate{deps: deps}
}

func (a *categoryAggregate) Contract() catalog.Contract {
	return catalog.CategoryAggregateContract
}

func (a *categoryAggregate) Approve(ctx context.Context, in catalog.ApproveCategoryInput) (catalog.ApproveCategoryResult, error) {
	const op = "Catalog.Category.Approve"
	var out catalog.ApproveCategoryResult
	if in.CategoryID == uuid.Nil {
		return out, catalog.NewError(catalog.CodeValidation, op, "missing category_id", nil)
	}
	if a.deps.Categories == nil {
		return out, catalog.NewError(catalog.CodeInternal, op, "category aggregate repos not configured", nil)
	}

	err := executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		c, err := a.deps.Categories.LockByID(dbc, in.CategoryID)
		if err != nil {
			return err
		}
		if c == nil || c.ID == uuid.Nil {
			return catalog.NewError(catalog.CodeNotFound, op, fmt.Sprintf("category not found: %s", in.CategoryID.String()), nil)
		}
		if !c.NeedsReview {
			// Approving twice is a no-op, not an error.
			out = catalog.ApproveCategoryResult{Category: c}
			return nil
		}
		if err := a.deps.Categories.UpdateFields(dbc, c.ID, map[string]interface{}{
			"needs_review": false,
		}); err != nil {
			return err
		}
		c.NeedsReview = false
		out = catalog.ApproveCategoryResult{Category: c}
		return nil
	})
	if err != nil {
		return catalog.ApproveCategoryResult{}, err
	}
	return out, nil
}

func (a *categoryAggregate) BulkApprove(ctx context.Context, in catalog.BulkApproveCategoriesInput) (catalog.BulkApproveCategoriesResult, error) {
	const op = "Catalog.Category.BulkApprove"
	var out catalog.BulkApproveCategoriesResult
	if len(in.CategoryIDs) == 0 {
		// Empty input succeeds without touching storage.
		return out, nil
	}
	for _, id := range in.CategoryIDs {
		if id == uuid.Nil {
			return out, catalog.NewError(catalog.CodeValidation, op, "category_ids must not contain a nil id", nil)
		}
	}
	if a.deps.Categories == nil {
		return out, catalog.NewError(catalog.CodeInternal, op, "category aggregate repos not configured", nil)
	}

	err := executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		approved, err := a.deps.Categories.BulkApprove(dbc, in.CategoryIDs)
		if err != nil {
			return err
		}
		out = catalog.BulkApproveCategoriesResult{Approved: approved}
		return nil
	})
	if err != nil {
		return catalog.BulkApproveCategoriesResult{}, err
	}
	return out, nil
}

func (a *categoryAggregate) Merge(ctx context.Context, in catalog.MergeCategoriesInput) (catalog.MergeCategoriesResult, error) {
	const op = "Catalog.Category.Merge"
	var out catalog.MergeCategoriesResult
	if in.SourceID == uuid.Nil {
		return out, catalog.NewError(catalog.CodeValidation, op, "missing source_id", nil)
	}
	if in.TargetID == uuid.Nil {
		return out, catalog.NewError(catalog.CodeValidation, op, "missing target_id", nil)
	}
	if in.SourceID == in.TargetID {
		return out, catalog.NewError(catalog.CodeValidation, op, "cannot merge a category into itself", nil)
	}
	if a.deps.Categories == nil || a.deps.Products == nil {
		return out, catalog.NewError(catalog.CodeInternal, op, "category aggregate repos not configured", nil)
	}

	err := executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		src, err := a.deps.Categories.LockByID(dbc, in.SourceID)
		if err != nil {
			return err
		}
		if src == nil || src.ID == uuid.Nil {
			return catalog.NewError(catalog.CodeNotFound, op, fmt.Sprintf("source category not found: %s", in.SourceID.String()), nil)
		}
		tgt, err := a.deps.Categories.LockByID(dbc, in.TargetID)
		if err != nil {
			return err
		}
		if tgt == nil || tgt.ID == uuid.Nil {
			return catalog.NewError(catalog.CodeNotFound, op, fmt.Sprintf("target category not found: %s", in.TargetID.String()), nil)
		}

		// Dependents move before the source row goes away, so no statement in
		// between can observe a product or child pointing at a missing row.
		movedProducts, err := a.deps.Products.ReassignCategory(dbc, src.ID, &tgt.ID)
		if err != nil {
			return err
		}
		movedChildren, err := a.deps.Categories.ReparentChildren(dbc, src.ID, &tgt.ID)
		if err != nil {
			return err
		}
		if err := a.deps.Categories.DeleteByID(dbc, src.ID); err != nil {
			return err
		}

		out = catalog.MergeCategoriesResult{
			AffectedProducts:   movedProducts,
			ReparentedChildren: movedChildren,
			Summary: fmt.Sprintf("merged category %q into %q: %d products moved, %d children reparented",
				src.Name, tgt.Name, movedProducts, movedChildren),
		}
		return nil
	})
	if err != nil {
		return catalog.MergeCategoriesResult{}, err
	}
	return out, nil
}

func (a *categoryAggregate) Rename(ctx context.Context, in catalog.RenameCategoryInput) (catalog.RenameCategoryResult, error) {
	const op = "Catalog.Category.Rename"
	var out catalog.RenameCategoryResult
	if in.CategoryID == uuid.Nil {
		return out, catalog.NewError(catalog.CodeValidation, op, "missing category_id", nil)
	}
	newName := strings.TrimSpace(in.NewName)
	if newName == "" {
		return out, catalog.NewError(catalog.CodeValidation, op, "missing new_name", nil)
	}
	if a.deps.Categories == nil {
		return out, catalog.NewError(catalog.CodeInternal, op, "category aggregate repos not configured", nil)
	}

	err := executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		c, err := a.deps.Categories.LockByID(dbc, in.CategoryID)
		if err != nil {
			return err
		}
		if c == nil || c.ID == uuid.Nil {
			return catalog.NewError(catalog.CodeNotFound, op, fmt.Sprintf("category not found: %s", in.CategoryID.String()), nil)
		}
		existing, err := a.deps.Categories.FindActiveByNameAndParent(dbc, newName, c.ParentID)
		if err != nil {
			return err
		}
		if existing != nil && existing.ID != c.ID {
			return DuplicateError(fmt.Sprintf("active category %q already exists under the same parent", newName))
		}
		if err := a.deps.Categories.UpdateFields(dbc, c.ID, map[string]interface{}{
			"name": newName,
		}); err != nil {
			return err
		}
		c.Name = newName
		out = catalog.RenameCategoryResult{Category: c}
		return nil
	})
	if err != nil {
		return catalog.RenameCategoryResult{}, err
	}
	return out, nil
}

func (a *categoryAggregate) Delete(ctx context.Context, in catalog.DeleteCategoryInput) (catalog.DeleteCategoryResult, error) {
	const op = "Catalog.Category.Delete"
	var out catalog.DeleteCategoryResult
	if in.CategoryID == uuid.Nil {
		return out, catalog.NewError(catalog.CodeValidation, op, "missing category_id", nil)
	}
	if a.deps.Categories == nil || a.deps.Products == nil {
		return out, catalog.NewError(catalog.CodeInternal, op, "category aggregate repos not configured", nil)
	}

	err := executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		c, err := a.deps.Categories.LockByID(dbc, in.CategoryID)
		if err != nil {
			return err
		}
		if c == nil || c.ID == uuid.Nil {
			return catalog.NewError(catalog.CodeNotFound, op, fmt.Sprintf("category not found: %s", in.CategoryID.String()), nil)
		}

		// Dependents climb to the deleted category's parent; for a root
		// category that means products detach and children become roots.
		movedProducts, err := a.deps.Products.ReassignCategory(dbc, c.ID, c.ParentID)
		if err != nil {
			return err
		}
		movedChildren, err := a.deps.Categories.ReparentChildren(dbc, c.ID, c.ParentID)
		if err != nil {
			return err
		}
		if err := a.deps.Categories.DeleteByID(dbc, c.ID); err != nil {
			return err
		}

		out = catalog.DeleteCategoryResult{
			AffectedProducts:   movedProducts,
			ReparentedChildren: movedChildren,
		}
		return nil
	})
	if err != nil {
		return catalog.DeleteCategoryResult{}, err
	}
	return out, nil
}
