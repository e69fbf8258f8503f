package catalog

import (
	"context"

	"github.com/google/uuid"

	types "github.com/openshelf/catalog-backend/internal/domain"
)

var LinkageAggregateContract = Contract{
	Name:             "Catalog.Linkage",
	WriteTxOwnership: WriteTxOwnedByAggregate,
	Notes:            "Owns atomic supplier-item to product link/unlink consistency.",
}

// MatchAction selects the linkage mutation performed by Match.
type MatchAction string

const (
	MatchActionLink   MatchAction = "link"
	MatchActionUnlink MatchAction = "unlink"
)

func (a MatchAction) Valid() bool {
	return a == MatchActionLink || a == MatchActionUnlink
}

type MatchInput struct {
	ProductID      uuid.UUID
	SupplierItemID uuid.UUID
	Action         MatchAction
}

// MatchResult carries the product and the full set of items linked to it,
// read within the same transaction as the write so the response reflects one
// consistent snapshot.
type MatchResult struct {
	Product     *types.Product
	LinkedItems []*types.SupplierItem
}

// LinkageAggregate owns the supplier-item linkage invariants:
// an item belongs to at most one product, linking is idempotent against the
// same product, re-linking to a different product is a conflict, and archived
// products never gain new links.
//
// Write method failures return *catalog.Error with codes CodeValidation,
// CodeNotFound, CodeConflict, CodeInternal.
type LinkageAggregate interface {
	Aggregate

	Match(ctx context.Context, in MatchInput) (MatchResult, error)
}
