package catalog

import (
	"context"

	"github.com/google/uuid"

	types "github.com/openshelf/catalog-backend/internal/domain"
)

var ProductAggregateContract = Contract{
	Name:             "Catalog.Product",
	WriteTxOwnership: WriteTxOwnedByAggregate,
	Notes:            "Owns atomic product creation, optionally pre-linked to a supplier item.",
}

type CreateProductInput struct {
	Name string

	// InternalSKU, when nil, is generated via the SKU generator.
	InternalSKU *string

	CategoryID *uuid.UUID

	// Status defaults to draft.
	Status *string

	// SupplierItemID, when set, links the (currently unlinked) item to the
	// new product inside the same transaction.
	SupplierItemID *uuid.UUID
}

type CreateProductResult struct {
	Product     *types.Product
	LinkedItems []*types.SupplierItem
}

// ProductAggregate owns product creation: SKU uniqueness, category existence,
// and the optional pre-link, all inside one transaction.
type ProductAggregate interface {
	Aggregate

	CreateProduct(ctx context.Context, in CreateProductInput) (CreateProductResult, error)
}

// SKUGenerator produces collision-checked internal SKUs. Generate performs
// read-only uniqueness probes; the unique constraint at insert time remains
// the authoritative guard.
type SKUGenerator interface {
	Generate(ctx context.Context) (string, error)
}
