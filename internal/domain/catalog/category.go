package catalog

import (
	"context"

	"github.com/google/uuid"

	types "github.com/openshelf/catalog-backend/internal/domain"
)

var CategoryAggregateContract = Contract{
	Name:             "Catalog.Category",
	WriteTxOwnership: WriteTxOwnedByAggregate,
	Notes:            "Owns approve/merge/rename/delete on the category forest with atomic reparenting.",
}

type ApproveCategoryInput struct {
	CategoryID uuid.UUID
}

type ApproveCategoryResult struct {
	Category *types.Category
}

type BulkApproveCategoriesInput struct {
	CategoryIDs []uuid.UUID
}

// BulkApproveCategoriesResult reports how many rows actually flipped from
// pending to approved; already-approved or absent ids do not count.
type BulkApproveCategoriesResult struct {
	Approved int64
}

type MergeCategoriesInput struct {
	SourceID uuid.UUID
	TargetID uuid.UUID
}

type MergeCategoriesResult struct {
	AffectedProducts   int64
	ReparentedChildren int64
	Summary            string
}

type RenameCategoryInput struct {
	CategoryID uuid.UUID
	NewName    string
}

type RenameCategoryResult struct {
	Category *types.Category
}

type DeleteCategoryInput struct {
	CategoryID uuid.UUID
}

type DeleteCategoryResult struct {
	AffectedProducts   int64
	ReparentedChildren int64
}

// CategoryAggregate owns the governance lifecycle of ingestion-created
// categories. Merge and delete reassign dependents before removing the row;
// no state is ever observable where a product or child points at a missing
// category.
type CategoryAggregate interface {
	Aggregate

	Approve(ctx context.Context, in ApproveCategoryInput) (ApproveCategoryResult, error)
	BulkApprove(ctx context.Context, in BulkApproveCategoriesInput) (BulkApproveCategoriesResult, error)
	Merge(ctx context.Context, in MergeCategoriesInput) (MergeCategoriesResult, error)
	Rename(ctx context.Context, in RenameCategoryInput) (RenameCategoryResult, error)
	Delete(ctx context.Context, in DeleteCategoryInput) (DeleteCategoryResult, error)
}
