package aggregates

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/openshelf/catalog-backend/internal/domain"
	"github.com/openshelf/catalog-backend/internal/platform/dbctx"
)

// LinkGuard provides compare-and-set helpers for supplier-item linkage.
// The WHERE clauses carry the expected prior state, so a concurrent writer
// that got there first makes the update a zero-row no-op instead of a
// silent overwrite.
type LinkGuard struct {
	db *gorm.DB
}

func NewLinkGuard(db *gorm.DB) LinkGuard {
	return LinkGuard{db: db}
}

func (g LinkGuard) baseDB(dbc dbctx.Context) (*gorm.DB, error) {
	if dbc.Tx != nil {
		return dbc.Tx.WithContext(dbc.Ctx), nil
	}
	if g.db != nil {
		return g.db.WithContext(dbc.Ctx), nil
	}
	return nil, ValidationError("missing db transaction context")
}

// LinkIfUnlinked points the item at the product only while the item is still
// unlinked. Returns false when another writer claimed the item first.
func (g LinkGuard) LinkIfUnlinked(dbc dbctx.Context, itemID, productID uuid.UUID) (bool, error) {
	db, err := g.baseDB(dbc)
	if err != nil {
		return false, err
	}
	if itemID == uuid.Nil || productID == uuid.Nil {
		return false, ValidationError("item id and product id are required for LinkIfUnlinked")
	}
	res := db.Model(&types.SupplierItem{}).
		Where("id = ? AND product_id IS NULL", itemID).
		Updates(map[string]interface{}{
			"product_id": productID,
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// UnlinkFromProduct clears the item's link only while it still points at the
// given product.
func (g LinkGuard) UnlinkFromProduct(dbc dbctx.Context, itemID, productID uuid.UUID) (bool, error) {
	db, err := g.baseDB(dbc)
	if err != nil {
		return false, err
	}
	if itemID == uuid.Nil || productID == uuid.Nil {
		return false, ValidationError("item id and product id are required for UnlinkFromProduct")
	}
	res := db.Model(&types.SupplierItem{}).
		Where("id = ? AND product_id = ?", itemID, productID).
		Updates(map[string]interface{}{
			"product_id": nil,
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// RequireCASSuccess converts a failed compare-and-set into a typed conflict error.
func RequireCASSuccess(ok bool, message string) error {
	if ok {
		return nil
	}
	return ConflictError(strings.TrimSpace(message))
}
